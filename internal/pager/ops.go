package pager

import (
	"fmt"

	"pagerd/internal/paging"
	"pagerd/pkg/types"
)

// SetCollectionLength reports a new collection length for id. In async mode
// the value is taken as the server-side total.
func (p *Pager) SetCollectionLength(id string, n int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	id, e, err := p.lookup(id)
	if err != nil {
		return err
	}
	if n < 0 {
		return ErrBadRequest(fmt.Errorf("set length %s: negative length %d", id, n))
	}
	async, err := p.reg.IsAsyncMode(id)
	if err != nil {
		return err
	}
	if async {
		err = e.binding.TotalItemsChanged(n)
	} else {
		err = e.binding.CollectionChanged(n)
	}
	if err != nil {
		return fmt.Errorf("set length %s: %w", id, err)
	}
	e.controls.Sync()
	return nil
}

// SetTotalItems switches id to async mode and records the server-side total.
func (p *Pager) SetTotalItems(id string, n int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	id, e, err := p.lookup(id)
	if err != nil {
		return err
	}
	if err := p.reg.SetAsyncMode(id, true); err != nil {
		return err
	}
	if err := e.binding.TotalItemsChanged(n); err != nil {
		return fmt.Errorf("set total items %s: %w", id, err)
	}
	e.controls.Sync()
	return nil
}

// SetPage navigates id to the page named by label. A label that is not a
// page number between 1 and the last page is ignored: the response reports
// Accepted false and no error.
func (p *Pager) SetPage(id, label string) (types.PageResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id, e, err := p.lookup(id)
	if err != nil {
		return types.PageResponse{}, err
	}
	e.controls.Sync()
	ok := e.controls.SetCurrent(label)
	if !ok {
		navigationRejectedTotal.Inc()
		p.log.Debug().Str("id", id).Str("page", label).Msg("navigation ignored")
	}
	return types.PageResponse{Accepted: ok, Current: e.controls.Current(), Last: e.controls.Last()}, nil
}

// Slice decodes raw as a JSON array or object and returns the current page of
// it for id. A nil itemsPerPage uses the page size from the expression.
func (p *Pager) Slice(id string, raw []byte, itemsPerPage any) (types.SliceResponse, error) {
	collection, err := paging.DecodeCollection(raw)
	if err != nil {
		return types.SliceResponse{}, ErrBadRequest(fmt.Errorf("slice: decode items: %w", err))
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	id, e, err := p.lookup(id)
	if err != nil {
		return types.SliceResponse{}, err
	}
	out, err := e.binding.Slice(collection, itemsPerPage)
	if err != nil {
		return types.SliceResponse{}, fmt.Errorf("slice %s: %w", id, err)
	}
	async, _ := p.reg.IsAsyncMode(id)
	slicesTotal.WithLabelValues(sliceMode(async)).Inc()

	e.controls.Sync()
	page, _ := p.reg.CurrentPage(id)
	ipp, _ := p.reg.ItemsPerPage(id)
	return types.SliceResponse{ID: id, Items: out, Page: page, ItemsPerPage: ipp}, nil
}

// Controls returns the controls view of id. A non-zero maxSize changes the
// number of links for this and later views.
func (p *Pager) Controls(id string, maxSize int) (types.ControlsView, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, e, err := p.lookup(id)
	if err != nil {
		return types.ControlsView{}, err
	}
	e.controls.SetMaxSize(maxSize)
	e.controls.Sync()
	return e.controls.View(), nil
}

// Pages runs the sequence generator without touching any instance.
func Pages(current, total, perPage, maxSize int) types.PagesResponse {
	if current < 1 {
		current = 1
	}
	if perPage <= 0 {
		perPage = paging.UnboundedItemsPerPage
	}
	current = min(current, max(paging.TotalPages(total, perPage), 1))
	labels := paging.Pages(current, total, perPage, paging.EffectiveRange(maxSize))
	out := make([]any, len(labels))
	for i, l := range labels {
		if l.Ellipsis {
			out[i] = paging.Ellipsis
			continue
		}
		out[i] = l.Page
	}
	r := paging.ComputeRange(current, perPage, total)
	return types.PagesResponse{
		Pages:      out,
		TotalPages: paging.TotalPages(total, perPage),
		Range:      types.Range{Lower: r.Lower, Upper: r.Upper, Total: r.Total},
	}
}
