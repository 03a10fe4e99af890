package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"pagerd/internal/pager"
	"pagerd/pkg/types"
)

type handlers struct {
	svc Service
}

// listInstances godoc
// @Summary      List pagination instances
// @Tags         instances
// @Produce      json
// @Success      200  {object}  types.InstancesResponse
// @Router       /instances [get]
func (h *handlers) listInstances(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.InstancesResponse{Instances: h.svc.Instances()})
}

// bind godoc
// @Summary      Bind a pagination instance
// @Description  Parses the repeat expression, registers the instance and creates its controls.
// @Tags         instances
// @Accept       json
// @Produce      json
// @Param        body  body      types.BindRequest  true  "Binding"
// @Success      201   {object}  types.Instance
// @Failure      400   {object}  types.ErrorResponse
// @Failure      415   {object}  types.ErrorResponse
// @Router       /instances [post]
func (h *handlers) bind(w http.ResponseWriter, r *http.Request) {
	var req types.BindRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Expression) == "" {
		writeJSONError(w, http.StatusBadRequest, "expression is required")
		return
	}
	inst, err := h.svc.Bind(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, inst)
}

// getInstance godoc
// @Summary      Get a pagination instance
// @Tags         instances
// @Produce      json
// @Param        id   path      string  true  "Instance id"
// @Success      200  {object}  types.Instance
// @Failure      404  {object}  types.ErrorResponse
// @Router       /instances/{id} [get]
func (h *handlers) getInstance(w http.ResponseWriter, r *http.Request) {
	inst, err := h.svc.Instance(chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inst)
}

// unbind godoc
// @Summary      Deregister a pagination instance
// @Tags         instances
// @Param        id   path  string  true  "Instance id"
// @Success      204
// @Failure      404  {object}  types.ErrorResponse
// @Router       /instances/{id} [delete]
func (h *handlers) unbind(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Unbind(chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// setLength godoc
// @Summary      Report the collection length
// @Description  Sets the collection length, or the server-side total when total_items is given.
// @Tags         instances
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Instance id"
// @Param        body  body      types.LengthRequest  true  "Length"
// @Success      200   {object}  types.Instance
// @Failure      400   {object}  types.ErrorResponse
// @Failure      404   {object}  types.ErrorResponse
// @Router       /instances/{id}/length [put]
func (h *handlers) setLength(w http.ResponseWriter, r *http.Request) {
	var req types.LengthRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	id := chi.URLParam(r, "id")
	var err error
	switch {
	case req.TotalItems != nil:
		err = h.svc.SetTotalItems(id, *req.TotalItems)
	case req.Length != nil:
		err = h.svc.SetCollectionLength(id, *req.Length)
	default:
		writeJSONError(w, http.StatusBadRequest, "length or total_items is required")
		return
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.getInstance(w, r)
}

// setPage godoc
// @Summary      Navigate to a page
// @Description  Invalid page numbers are ignored and reported with accepted=false.
// @Tags         instances
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Instance id"
// @Param        body  body      types.PageRequest  true  "Page"
// @Success      200   {object}  types.PageResponse
// @Failure      404   {object}  types.ErrorResponse
// @Router       /instances/{id}/page [put]
func (h *handlers) setPage(w http.ResponseWriter, r *http.Request) {
	var req types.PageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	label, err := pageLabel(req.Page)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := h.svc.SetPage(chi.URLParam(r, "id"), label)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// pageLabel accepts a JSON number or string.
func pageLabel(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", errors.New("page is required")
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("invalid page: %w", err)
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("page must be a number or string")
	}
	return n.String(), nil
}

// slice godoc
// @Summary      Slice the current page out of a collection
// @Tags         instances
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Instance id"
// @Param        body  body      types.SliceRequest  true  "Collection"
// @Success      200   {object}  types.SliceResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      404   {object}  types.ErrorResponse
// @Router       /instances/{id}/slice [post]
func (h *handlers) slice(w http.ResponseWriter, r *http.Request) {
	var req types.SliceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.svc.Slice(chi.URLParam(r, "id"), req.Items, req.ItemsPerPage)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// controls godoc
// @Summary      Controls view of an instance
// @Tags         instances
// @Produce      json
// @Param        id        path      string  true   "Instance id"
// @Param        max_size  query     int     false  "Number of page links"
// @Success      200       {object}  types.ControlsView
// @Failure      400       {object}  types.ErrorResponse
// @Failure      404       {object}  types.ErrorResponse
// @Router       /instances/{id}/controls [get]
func (h *handlers) controls(w http.ResponseWriter, r *http.Request) {
	maxSize, ok := queryInt(w, r, "max_size", 0)
	if !ok {
		return
	}
	view, err := h.svc.Controls(chi.URLParam(r, "id"), maxSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// pages godoc
// @Summary      Page link sequence
// @Description  Stateless: computes the link sequence without any instance.
// @Tags         pages
// @Produce      json
// @Param        current   query     int  false  "Current page"  default(1)
// @Param        total     query     int  true   "Total items"
// @Param        per_page  query     int  true   "Items per page"
// @Param        max_size  query     int  false  "Number of page links"  default(9)
// @Success      200       {object}  types.PagesResponse
// @Failure      400       {object}  types.ErrorResponse
// @Router       /pages [get]
func (h *handlers) pages(w http.ResponseWriter, r *http.Request) {
	current, ok := queryInt(w, r, "current", 1)
	if !ok {
		return
	}
	total, ok := queryInt(w, r, "total", 0)
	if !ok {
		return
	}
	perPage, ok := queryInt(w, r, "per_page", 0)
	if !ok {
		return
	}
	maxSize, ok := queryInt(w, r, "max_size", 0)
	if !ok {
		return
	}
	if total < 0 {
		writeJSONError(w, http.StatusBadRequest, "total must not be negative")
		return
	}
	writeJSON(w, http.StatusOK, pager.Pages(current, total, perPage, maxSize))
}

func queryInt(w http.ResponseWriter, r *http.Request, key string, def int) (int, bool) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, true
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, key+" must be an integer")
		return 0, false
	}
	return n, true
}

// decodeJSON enforces the JSON content type and the body size limit.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		IncrementRejected("content_type")
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			IncrementRejected("body_too_large")
			writeJSONError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		if errors.Is(err, io.EOF) {
			IncrementRejected("empty_body")
			writeJSONError(w, http.StatusBadRequest, "request body is empty")
			return false
		}
		IncrementRejected("invalid_json")
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
