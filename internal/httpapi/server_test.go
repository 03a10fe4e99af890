package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pagerd/pkg/types"
)

type mockService struct {
	instances []types.Instance
	ready     bool
	err       error

	// recorded arguments
	bound     types.BindRequest
	length    int
	total     int
	label     string
	items     []byte
	perPage   any
	maxSize   int
	unboundID string
}

func (m *mockService) Bind(req types.BindRequest) (types.Instance, error) {
	m.bound = req
	if m.err != nil {
		return types.Instance{}, m.err
	}
	return types.Instance{ID: req.ID, Expression: req.Expression}, nil
}

func (m *mockService) Unbind(id string) error {
	m.unboundID = id
	return m.err
}

func (m *mockService) Instances() []types.Instance {
	return append([]types.Instance(nil), m.instances...)
}

func (m *mockService) Instance(id string) (types.Instance, error) {
	if m.err != nil {
		return types.Instance{}, m.err
	}
	return types.Instance{ID: id, CollectionLength: m.length}, nil
}

func (m *mockService) SetCollectionLength(id string, n int) error {
	m.length = n
	return m.err
}

func (m *mockService) SetTotalItems(id string, n int) error {
	m.total = n
	return m.err
}

func (m *mockService) SetPage(id, label string) (types.PageResponse, error) {
	m.label = label
	if m.err != nil {
		return types.PageResponse{}, m.err
	}
	return types.PageResponse{Accepted: label == "2", Current: 2, Last: 5}, nil
}

func (m *mockService) Slice(id string, raw []byte, itemsPerPage any) (types.SliceResponse, error) {
	m.items, m.perPage = raw, itemsPerPage
	if m.err != nil {
		return types.SliceResponse{}, m.err
	}
	return types.SliceResponse{ID: id, Items: []any{"a"}, Page: 1, ItemsPerPage: 1}, nil
}

func (m *mockService) Controls(id string, maxSize int) (types.ControlsView, error) {
	m.maxSize = maxSize
	if m.err != nil {
		return types.ControlsView{}, m.err
	}
	return types.ControlsView{ID: id, Visible: true, Current: 1, Last: 3}, nil
}

func (m *mockService) Ready() bool { return m.ready }

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestListInstances(t *testing.T) {
	svc := &mockService{instances: []types.Instance{{ID: "a"}, {ID: "b"}}}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/instances", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Fatalf("content-type=%s", ct)
	}
	var body types.InstancesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(body.Instances) != 2 {
		t.Fatalf("instances len=%d", len(body.Instances))
	}
}

func TestBindCreates(t *testing.T) {
	svc := &mockService{}
	w := doJSON(t, NewMux(svc), http.MethodPost, "/instances", `{"id":"users","expression":"u in users | itemsPerPage: 5","total_items":40}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if svc.bound.ID != "users" || svc.bound.TotalItems == nil || *svc.bound.TotalItems != 40 {
		t.Fatalf("unexpected bind request: %+v", svc.bound)
	}
}

func TestBindRequiresExpression(t *testing.T) {
	w := doJSON(t, NewMux(&mockService{}), http.MethodPost, "/instances", `{"id":"users"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
	var body types.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if body.Code != http.StatusBadRequest || body.Error != "expression is required" {
		t.Fatalf("unexpected error body: %+v", body)
	}
}

func TestBindBadJSON(t *testing.T) {
	w := doJSON(t, NewMux(&mockService{}), http.MethodPost, "/instances", "not-json")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestGetAndDeleteInstance(t *testing.T) {
	svc := &mockService{}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/instances/users", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"id":"users"`) {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/instances/users", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("status=%d", w.Code)
	}
	if svc.unboundID != "users" {
		t.Fatalf("unbound %q", svc.unboundID)
	}
}

func TestSetLength(t *testing.T) {
	svc := &mockService{}
	r := NewMux(svc)
	if w := doJSON(t, r, http.MethodPut, "/instances/users/length", `{"length":144}`); w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if svc.length != 144 {
		t.Fatalf("length=%d", svc.length)
	}
	if w := doJSON(t, r, http.MethodPut, "/instances/users/length", `{"total_items":900}`); w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if svc.total != 900 {
		t.Fatalf("total=%d", svc.total)
	}
	if w := doJSON(t, r, http.MethodPut, "/instances/users/length", `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without length, got %d", w.Code)
	}
}

func TestSetPageAcceptsNumberOrString(t *testing.T) {
	svc := &mockService{}
	r := NewMux(svc)
	for _, body := range []string{`{"page":2}`, `{"page":"2"}`} {
		w := doJSON(t, r, http.MethodPut, "/instances/users/page", body)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status=%d", body, w.Code)
		}
		var res types.PageResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("json: %v", err)
		}
		if !res.Accepted || svc.label != "2" {
			t.Fatalf("%s: res=%+v label=%q", body, res, svc.label)
		}
	}
}

func TestSetPageSoftInvalid(t *testing.T) {
	svc := &mockService{}
	w := doJSON(t, NewMux(svc), http.MethodPut, "/instances/users/page", `{"page":"..."}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"accepted":false`) {
		t.Fatalf("body=%s", w.Body.String())
	}
	if w := doJSON(t, NewMux(svc), http.MethodPut, "/instances/users/page", `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("missing page: status=%d", w.Code)
	}
}

func TestSlice(t *testing.T) {
	svc := &mockService{}
	w := doJSON(t, NewMux(svc), http.MethodPost, "/instances/users/slice", `{"items":[1,2,3],"items_per_page":"2"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if string(svc.items) != "[1,2,3]" || svc.perPage != "2" {
		t.Fatalf("items=%s perPage=%v", svc.items, svc.perPage)
	}
}

func TestControls(t *testing.T) {
	svc := &mockService{}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/instances/users/controls?max_size=7", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if svc.maxSize != 7 {
		t.Fatalf("max_size=%d", svc.maxSize)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/instances/users/controls?max_size=x", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestPages(t *testing.T) {
	r := NewMux(&mockService{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pages?current=5&total=95&per_page=10", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var res struct {
		Pages      []any `json:"pages"`
		TotalPages int   `json:"total_pages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("json: %v", err)
	}
	want := []any{1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0, "...", 10.0}
	if len(res.Pages) != len(want) || res.TotalPages != 10 {
		t.Fatalf("unexpected pages: %+v", res)
	}
	for i := range want {
		if res.Pages[i] != want[i] {
			t.Fatalf("pages[%d]=%v want %v", i, res.Pages[i], want[i])
		}
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pages?total=-1", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("negative total: status=%d", w.Code)
	}
}

func TestReadyz(t *testing.T) {
	r := NewMux(&mockService{ready: true})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestReadyz_NotReady(t *testing.T) {
	r := NewMux(&mockService{ready: false})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "shutting down") {
		t.Fatalf("body=%q", w.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	w := httptest.NewRecorder()
	NewMux(&mockService{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Fatalf("status=%d body=%q", w.Code, w.Body.String())
	}
}
