package paging

import "sync"

// PageAccessor reads and writes the current page in caller-owned storage.
// The registry never stores page numbers itself.
type PageAccessor interface {
	CurrentPage() int
	SetCurrentPage(int)
}

// PageVar is a standalone current-page cell. The zero value reads as page 0,
// use NewPageVar for a cell starting at page 1.
type PageVar struct {
	mu   sync.Mutex
	page int
	// Name labels the cell in status output.
	Name string
}

// NewPageVar returns a cell holding page 1.
func NewPageVar(name string) *PageVar { return &PageVar{page: 1, Name: name} }

func (v *PageVar) CurrentPage() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page
}

func (v *PageVar) SetCurrentPage(n int) {
	v.mu.Lock()
	v.page = n
	v.mu.Unlock()
}

// AccessorFunc adapts a getter/setter pair to PageAccessor.
// A nil Set makes writes a no-op.
type AccessorFunc struct {
	Get func() int
	Set func(int)
}

func (a AccessorFunc) CurrentPage() int {
	if a.Get == nil {
		return 1
	}
	return a.Get()
}

func (a AccessorFunc) SetCurrentPage(n int) {
	if a.Set != nil {
		a.Set(n)
	}
}
