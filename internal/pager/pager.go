package pager

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"pagerd/internal/binding"
	"pagerd/internal/controls"
	"pagerd/internal/paging"
	"pagerd/pkg/types"
)

type entry struct {
	binding  *binding.Binding
	controls *controls.Controls
}

type Pager struct {
	mu        sync.Mutex
	reg       *paging.Registry
	defaultID string
	ctlOpts   controls.Options
	template  controls.TemplateConfig
	entries   map[string]*entry
	log       zerolog.Logger
	pub       EventPublisher
	closed    bool
}

// SetEventPublisher installs pub; nil restores the no-op publisher.
func (p *Pager) SetEventPublisher(pub EventPublisher) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if pub == nil {
		pub = noopPublisher{}
	}
	p.pub = pub
}

// DefaultID is the id given to instances bound without one.
func (p *Pager) DefaultID() string { return p.defaultID }

// Ready reports whether the pager accepts requests.
func (p *Pager) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.closed
}

// Close marks the pager as shutting down. Instances stay readable.
func (p *Pager) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	return nil
}

// Bind parses req.Expression, registers the instance and creates its
// controls. Binding an id again replaces its expression and controls but
// keeps its page.
func (p *Pager) Bind(req types.BindRequest) (types.Instance, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	b, err := binding.Bind(p.reg, binding.Options{
		ID:            req.ID,
		DefaultID:     p.defaultID,
		Expression:    req.Expression,
		SharePageWith: req.SharePageWith,
		TotalItems:    req.TotalItems,
	})
	if err != nil {
		return types.Instance{}, ErrBadRequest(err)
	}
	id := b.ID()
	opts := p.controlsOptions(id, req.Controls)
	e := &entry{binding: b, controls: controls.New(p.reg, id, opts, p.template)}
	p.entries[id] = e
	instancesRegistered.Set(float64(p.reg.Len()))

	p.log.Info().Str("id", id).Str("expression", b.RepeatExpression()).Bool("async", req.TotalItems != nil).Msg("pagination instance bound")
	p.publish(EventBind, id, map[string]any{"expression": b.RepeatExpression()})
	return p.instanceLocked(id, e), nil
}

func (p *Pager) controlsOptions(id string, o *types.ControlsOptions) controls.Options {
	opts := p.ctlOpts
	if o != nil {
		if o.MaxSize != 0 {
			opts.MaxSize = o.MaxSize
		}
		if o.AutoHide != nil {
			opts.ShowSinglePage = !*o.AutoHide
		}
		if o.DirectionLinks != nil {
			opts.HideDirectionLinks = !*o.DirectionLinks
		}
		if o.BoundaryLinks != nil {
			opts.BoundaryLinks = *o.BoundaryLinks
		}
		if o.TemplateURL != "" {
			opts.TemplateURL = o.TemplateURL
		}
	}
	opts.OnPageChange = func(newPage, oldPage int) {
		if newPage == oldPage {
			return
		}
		pageChangesTotal.Inc()
		p.log.Debug().Str("id", id).Int("page", newPage).Int("previous", oldPage).Msg("page changed")
		p.publish(EventPageChange, id, map[string]any{"page": newPage, "previous": oldPage})
	}
	return opts
}

// Unbind deregisters id and drops its controls.
func (p *Pager) Unbind(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	id = p.resolve(id)
	if !p.reg.IsRegistered(id) {
		return paging.ErrNotRegistered(id)
	}
	p.reg.Deregister(id)
	delete(p.entries, id)
	instancesRegistered.Set(float64(p.reg.Len()))
	p.log.Info().Str("id", id).Msg("pagination instance unbound")
	p.publish(EventUnbind, id, nil)
	return nil
}

func (p *Pager) resolve(id string) string {
	if id == "" {
		return p.defaultID
	}
	return id
}

// lookup returns the entry for id. Callers hold p.mu.
func (p *Pager) lookup(id string) (string, *entry, error) {
	id = p.resolve(id)
	e, ok := p.entries[id]
	if !ok || !p.reg.IsRegistered(id) {
		return id, nil, paging.ErrNotRegistered(id)
	}
	return id, e, nil
}

func (p *Pager) publish(name, id string, fields map[string]any) {
	p.pub.Publish(Event{
		ID:         uuid.NewString(),
		Name:       name,
		InstanceID: id,
		Time:       time.Now(),
		Fields:     fields,
	})
}
