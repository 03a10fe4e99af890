package types

// Instance summarizes one pagination instance.
type Instance struct {
	// Instance id.
	// example: users
	ID string `json:"id" example:"users"`
	// Current page (1-based).
	// example: 3
	CurrentPage int `json:"current_page" example:"3"`
	// Last recorded page size. Unset page sizes report the unbounded sentinel.
	// example: 20
	ItemsPerPage int `json:"items_per_page" example:"20"`
	// Number of items in the collection (or server-side total in async mode).
	// example: 144
	CollectionLength int `json:"collection_length" example:"144"`
	// Number of pages for the current length and page size.
	// example: 8
	TotalPages int `json:"total_pages" example:"8"`
	// True when the caller supplies only the current page's items.
	// example: false
	AsyncMode bool `json:"async_mode" example:"false"`
	// Repeat expression with the instance id made explicit.
	// example: user in users | itemsPerPage: 20 : 'users'
	Expression string `json:"expression,omitempty" example:"user in users | itemsPerPage: 20 : 'users'"`
	// Label of the page storage backing this instance.
	// example: _users__currentPage
	PageStorage string `json:"page_storage,omitempty" example:"_users__currentPage"`
}

// PageLink is one entry of a controls view.
type PageLink struct {
	// Page number or "..." for an ellipsis.
	// example: 4
	Label string `json:"label" example:"4"`
	// Target page; zero for an ellipsis.
	// example: 4
	Page int `json:"page,omitempty" example:"4"`
	// True for the current page.
	Active bool `json:"active"`
	// True for ellipses and for a lone page when auto-hide is off.
	Disabled bool `json:"disabled"`
	// Stable key combining label and position, unique even with two ellipses.
	// example: 4_3
	Key string `json:"key" example:"4_3"`
}

// NavLink is a first/previous/next/last control.
type NavLink struct {
	// example: 2
	Target   int  `json:"target" example:"2"`
	Disabled bool `json:"disabled"`
}

// Template names the markup a renderer should use for the controls.
type Template struct {
	// Template path, empty when an inline template is configured.
	// example: pagerd.controls.template
	Path string `json:"path,omitempty" example:"pagerd.controls.template"`
	// Inline template, takes precedence over any path.
	Inline string `json:"inline,omitempty"`
}

// ControlsView is the view model of a pagination control.
type ControlsView struct {
	// example: users
	ID string `json:"id" example:"users"`
	// False when auto-hide is on and there is at most one page.
	Visible bool       `json:"visible"`
	Pages   []PageLink `json:"pages"`
	// example: 3
	Current int `json:"current" example:"3"`
	// example: 8
	Last     int      `json:"last" example:"8"`
	Range    Range    `json:"range"`
	First    *NavLink `json:"first,omitempty"`
	Previous *NavLink `json:"previous,omitempty"`
	Next     *NavLink `json:"next,omitempty"`
	LastLink *NavLink `json:"last_link,omitempty"`
	Template Template `json:"template"`
}

// Range describes the items on the current page, e.g. "showing 41 - 60 of 144".
type Range struct {
	// example: 41
	Lower int `json:"lower" example:"41"`
	// example: 60
	Upper int `json:"upper" example:"60"`
	// example: 144
	Total int `json:"total" example:"144"`
}
