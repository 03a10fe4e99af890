// Package binding connects a paginated collection to the registry: it parses
// the repeat expression, registers the instance, installs the current page
// accessor and forwards collection size changes.
package binding

import (
	"fmt"
	"strings"
	"unicode"

	"pagerd/internal/paging"
)

// Options configures Bind.
type Options struct {
	// ID of the instance. When empty the id named in the expression is used,
	// then DefaultID.
	ID string
	// DefaultID overrides paging.DefaultID as the fallback id.
	DefaultID string
	// Expression is the repeat expression; it must carry the itemsPerPage filter.
	Expression string
	// Accessor stores the current page. When nil the binding reuses an
	// existing accessor, borrows SharePageWith's, or creates a PageVar.
	Accessor      paging.PageAccessor
	SharePageWith string
	// TotalItems switches the instance to async mode: the caller supplies only
	// the current page and reports the total separately.
	TotalItems *int
}

// Binding is one bound pagination instance.
type Binding struct {
	reg       *paging.Registry
	id        string
	defaultID string
	expr      Expression
}

// Bind parses opts.Expression and registers the instance. Setup fails before
// anything is registered when the expression is invalid.
func Bind(reg *paging.Registry, opts Options) (*Binding, error) {
	expr, err := ParseExpression(opts.Expression)
	if err != nil {
		return nil, err
	}
	defaultID := opts.DefaultID
	if defaultID == "" {
		defaultID = paging.DefaultID
	}
	id := opts.ID
	if id == "" {
		id = expr.ID
	}
	if id == "" {
		id = defaultID
	}
	if expr.ID != "" && expr.ID != id {
		return nil, fmt.Errorf("bind %s: expression names instance %q", id, expr.ID)
	}

	accessor := opts.Accessor
	if accessor == nil && opts.SharePageWith != "" {
		accessor, err = reg.Accessor(opts.SharePageWith)
		if err != nil {
			return nil, fmt.Errorf("bind %s: share page: %w", id, err)
		}
		if accessor == nil {
			return nil, fmt.Errorf("bind %s: instance %q has no page accessor to share", id, opts.SharePageWith)
		}
	}

	reg.Register(id)
	if accessor == nil {
		existing, err := reg.Accessor(id)
		if err != nil {
			return nil, err
		}
		accessor = existing
	}
	if accessor == nil {
		accessor = paging.NewPageVar(DefaultPageVarName(id))
	}
	if err := reg.SetCurrentPageAccessor(id, accessor); err != nil {
		return nil, err
	}

	b := &Binding{reg: reg, id: id, defaultID: defaultID, expr: expr}
	if opts.TotalItems != nil {
		if err := reg.SetAsyncMode(id, true); err != nil {
			return nil, err
		}
		if err := b.TotalItemsChanged(*opts.TotalItems); err != nil {
			return nil, err
		}
		return b, nil
	}
	if err := reg.SetAsyncMode(id, false); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Binding) ID() string { return b.id }

func (b *Binding) Expression() Expression { return b.expr }

// RepeatExpression is the expression with the instance id made explicit.
func (b *Binding) RepeatExpression() string { return b.expr.WithID(b.id, b.defaultID) }

// CollectionChanged records the size of a fully supplied collection.
func (b *Binding) CollectionChanged(n int) error {
	if n < 0 {
		n = 0
	}
	return b.reg.SetCollectionLength(b.id, n)
}

// TotalItemsChanged records the server-side total in async mode.
// Negative totals are ignored.
func (b *Binding) TotalItemsChanged(n int) error {
	if n < 0 {
		return nil
	}
	return b.reg.SetCollectionLength(b.id, n)
}

// Slice cuts the current page out of collection. A nil itemsPerPage falls
// back to the expression's page size argument.
func (b *Binding) Slice(collection, itemsPerPage any) (any, error) {
	if itemsPerPage == nil {
		itemsPerPage = b.expr.PageSize
	}
	return paging.Slice(b.reg, collection, itemsPerPage, b.id)
}

// DefaultPageVarName names the page cell created for id when the caller
// supplies no storage, e.g. "_my_list__currentPage" for "my-list".
func DefaultPageVarName(id string) string {
	var sb strings.Builder
	sb.WriteByte('_')
	for _, r := range id + "__currentPage" {
		if r < unicode.MaxASCII && (r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)) {
			sb.WriteRune(r)
			continue
		}
		sb.WriteByte('_')
	}
	return sb.String()
}
