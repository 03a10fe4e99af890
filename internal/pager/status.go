package pager

import (
	"pagerd/internal/paging"
	"pagerd/pkg/types"
)

// Instances lists every bound instance sorted by id.
func (p *Pager) Instances() []types.Instance {
	p.mu.Lock()
	defer p.mu.Unlock()
	ids := p.reg.IDs()
	out := make([]types.Instance, 0, len(ids))
	for _, id := range ids {
		e, ok := p.entries[id]
		if !ok {
			continue
		}
		out = append(out, p.instanceLocked(id, e))
	}
	return out
}

// Instance returns the summary of id.
func (p *Pager) Instance(id string) (types.Instance, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id, e, err := p.lookup(id)
	if err != nil {
		return types.Instance{}, err
	}
	return p.instanceLocked(id, e), nil
}

func (p *Pager) instanceLocked(id string, e *entry) types.Instance {
	st, err := p.reg.Snapshot(id)
	if err != nil {
		return types.Instance{ID: id}
	}
	inst := types.Instance{
		ID:               id,
		CurrentPage:      st.CurrentPage,
		ItemsPerPage:     st.ItemsPerPage,
		CollectionLength: st.CollectionLength,
		TotalPages:       paging.TotalPages(st.CollectionLength, st.ItemsPerPage),
		AsyncMode:        st.AsyncMode,
	}
	if e != nil {
		inst.Expression = e.binding.RepeatExpression()
	}
	if a, _ := p.reg.Accessor(id); a != nil {
		if v, ok := a.(*paging.PageVar); ok {
			inst.PageStorage = v.Name
		}
	}
	return inst
}
