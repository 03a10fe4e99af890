// Package controls computes the navigation view model for a pagination
// instance: the link sequence, the current and last page, the item range and
// the state of the direction and boundary links.
//
// A Controls does not watch anything. Its owner reports changes through
// SetMaxSize, CollectionLengthChanged, ItemsPerPageChanged and
// CurrentPageChanged, or calls Sync to check all of them at once.
// Controls is not safe for concurrent use.
package controls

import (
	"strconv"

	"github.com/rs/zerolog"

	"pagerd/internal/paging"
	"pagerd/pkg/types"
)

// Options configures a Controls. The zero value gives nine links, auto-hide on,
// direction links on and boundary links off.
type Options struct {
	MaxSize            int
	ShowSinglePage     bool
	HideDirectionLinks bool
	BoundaryLinks      bool
	TemplateURL        string
	// OnPageChange runs after every successful navigation.
	OnPageChange func(newPage, oldPage int)
	Logger       *zerolog.Logger
}

// observed holds the registry values seen by the last update call. The
// length check covers the page size too, so a page size change also
// regenerates the links and the last page.
type observed struct {
	length       int
	lengthSize   int
	itemsPerPage int
	currentPage  int
	primed       bool
}

type Controls struct {
	reg       *paging.Registry
	id        string
	opts      Options
	template  types.Template
	pageRange int

	pages   []paging.Label
	current int
	last    int
	rng     paging.Range

	seen observed
}

// New creates the controls for id and renders them once. A warning is
// logged when id is not registered yet; the controls become live once it is.
func New(reg *paging.Registry, id string, opts Options, tpl TemplateConfig) *Controls {
	if id == "" {
		id = paging.DefaultID
	}
	c := &Controls{
		reg:       reg,
		id:        id,
		opts:      opts,
		template:  tpl.Resolve(opts.TemplateURL),
		pageRange: paging.EffectiveRange(opts.MaxSize),
		current:   1,
		last:      1,
		rng:       paging.Range{Lower: 1, Upper: 1, Total: 1},
	}
	if !reg.IsRegistered(id) && opts.Logger != nil {
		opts.Logger.Warn().Str("id", id).Msg("pagination controls created without a registered pagination instance")
	}
	c.observe()
	c.Refresh()
	return c
}

func (c *Controls) ID() string { return c.id }

// Current returns the page the controls are showing.
func (c *Controls) Current() int { return c.current }

// Last returns the last page as of the latest Refresh.
func (c *Controls) Last() int { return c.last }

func (c *Controls) Pages() []paging.Label { return append([]paging.Label(nil), c.pages...) }

func (c *Controls) Range() paging.Range { return c.rng }

// PageRange is the effective number of links.
func (c *Controls) PageRange() int { return c.pageRange }

// observe records the watched registry values without reacting to them.
func (c *Controls) observe() {
	if !c.reg.IsRegistered(c.id) {
		return
	}
	c.seen.length, _ = c.reg.CollectionLength(c.id)
	c.seen.itemsPerPage, _ = c.reg.ItemsPerPage(c.id)
	c.seen.lengthSize = c.seen.itemsPerPage
	c.seen.currentPage, _ = c.reg.CurrentPage(c.id)
	c.seen.primed = true
}

// Refresh regenerates the links from the registry. When the current page lies
// beyond the last page it navigates to the last page.
func (c *Controls) Refresh() {
	if !c.reg.IsRegistered(c.id) {
		return
	}
	page, _ := c.reg.CurrentPage(c.id)
	if page < 1 {
		page = 1
	}
	length, _ := c.reg.CollectionLength(c.id)
	ipp, _ := c.reg.ItemsPerPage(c.id)

	c.pages = paging.Pages(page, length, ipp, c.pageRange)
	c.current = page
	c.last = 0
	if n := len(c.pages); n > 0 {
		c.last = c.pages[n-1].Page
	}
	if c.last > 0 && c.last < c.current {
		c.SetCurrentPage(c.last)
		return
	}
	c.updateRange()
}

// GoToPage shows page n if it is a valid page and notifies OnPageChange.
func (c *Controls) GoToPage(n int) bool {
	if !c.reg.IsRegistered(c.id) || !paging.ValidPage(n, c.last) {
		return false
	}
	old := c.current
	length, _ := c.reg.CollectionLength(c.id)
	ipp, _ := c.reg.ItemsPerPage(c.id)
	c.pages = paging.Pages(n, length, ipp, c.pageRange)
	c.current = n
	c.updateRange()
	if c.opts.OnPageChange != nil {
		c.opts.OnPageChange(n, old)
	}
	return true
}

// SetCurrent handles navigation input such as a clicked label. Input that is
// not a page number in range is ignored and reported as false.
func (c *Controls) SetCurrent(label string) bool {
	n, ok := paging.ParsePageNumber(label, c.last)
	if !ok {
		return false
	}
	return c.SetCurrentPage(n)
}

// SetCurrentPage writes n to the instance's page storage and navigates to it.
// The view only moves once the storage reads back n; it reports whether the
// controls now show n.
func (c *Controls) SetCurrentPage(n int) bool {
	if !c.reg.IsRegistered(c.id) || !paging.ValidPage(n, c.last) {
		return false
	}
	if err := c.reg.SetCurrentPage(c.id, n); err != nil {
		return false
	}
	c.CurrentPageChanged()
	if c.current != n {
		// storage was already at n, so no change was observed
		if stored, _ := c.reg.CurrentPage(c.id); stored == n {
			c.GoToPage(n)
		}
	}
	return c.current == n
}

// SetMaxSize changes the number of links and refreshes. Zero is ignored.
func (c *Controls) SetMaxSize(n int) {
	if n == 0 {
		return
	}
	c.opts.MaxSize = n
	c.pageRange = paging.EffectiveRange(n)
	c.Refresh()
}

// CollectionLengthChanged refreshes when the collection length or page size
// differs from the last observed values.
func (c *Controls) CollectionLengthChanged() {
	if !c.reg.IsRegistered(c.id) {
		return
	}
	length, _ := c.reg.CollectionLength(c.id)
	ipp, _ := c.reg.ItemsPerPage(c.id)
	if c.seen.primed && length == c.seen.length && ipp == c.seen.lengthSize {
		return
	}
	c.seen.length, c.seen.lengthSize = length, ipp
	c.Refresh()
}

// ItemsPerPageChanged re-renders the current page after a page size change.
func (c *Controls) ItemsPerPageChanged() {
	if !c.reg.IsRegistered(c.id) {
		return
	}
	ipp, _ := c.reg.ItemsPerPage(c.id)
	prev, primed := c.seen.itemsPerPage, c.seen.primed
	c.seen.itemsPerPage = ipp
	if primed && ipp != prev {
		c.GoToPage(c.current)
	}
}

// CurrentPageChanged navigates when the page storage holds a new page.
func (c *Controls) CurrentPageChanged() {
	if !c.reg.IsRegistered(c.id) {
		return
	}
	cur, _ := c.reg.CurrentPage(c.id)
	prev, primed := c.seen.currentPage, c.seen.primed
	c.seen.currentPage = cur
	c.seen.primed = true
	if !primed || cur != prev {
		c.GoToPage(cur)
	}
}

// Sync checks every watched value in order: length, page size, current page.
func (c *Controls) Sync() {
	c.CollectionLengthChanged()
	c.ItemsPerPageChanged()
	c.CurrentPageChanged()
}

func (c *Controls) updateRange() {
	if !c.reg.IsRegistered(c.id) {
		return
	}
	cur, _ := c.reg.CurrentPage(c.id)
	ipp, _ := c.reg.ItemsPerPage(c.id)
	total, _ := c.reg.CollectionLength(c.id)
	c.rng = paging.ComputeRange(cur, ipp, total)
}

// View returns the view model a renderer needs.
func (c *Controls) View() types.ControlsView {
	autoHide := !c.opts.ShowSinglePage
	v := types.ControlsView{
		ID:       c.id,
		Visible:  len(c.pages) > 1 || !autoHide,
		Pages:    make([]types.PageLink, 0, len(c.pages)),
		Current:  c.current,
		Last:     c.last,
		Range:    types.Range{Lower: c.rng.Lower, Upper: c.rng.Upper, Total: c.rng.Total},
		Template: c.template,
	}
	for i, l := range c.pages {
		v.Pages = append(v.Pages, types.PageLink{
			Label:    l.String(),
			Page:     l.Page,
			Active:   !l.Ellipsis && l.Page == c.current,
			Disabled: l.Ellipsis || (!autoHide && len(c.pages) == 1),
			Key:      l.String() + "_" + strconv.Itoa(i),
		})
	}
	if c.opts.BoundaryLinks {
		v.First = &types.NavLink{Target: 1, Disabled: c.current == 1}
		v.LastLink = &types.NavLink{Target: c.last, Disabled: c.current == c.last}
	}
	if !c.opts.HideDirectionLinks {
		v.Previous = &types.NavLink{Target: c.current - 1, Disabled: c.current == 1}
		v.Next = &types.NavLink{Target: c.current + 1, Disabled: c.current == c.last}
	}
	return v
}
