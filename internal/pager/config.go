package pager

import (
	"github.com/rs/zerolog"

	"pagerd/internal/controls"
	"pagerd/internal/paging"
)

// Config encapsulates all tunables for Pager construction.
type Config struct {
	// DefaultID names instances bound without an id. Empty selects paging.DefaultID.
	DefaultID string
	// Controls holds the defaults applied to every instance's controls.
	// OnPageChange and Logger are set by the Pager and ignored here.
	Controls controls.Options
	Template controls.TemplateConfig
	// Logger defaults to a no-op logger.
	Logger    *zerolog.Logger
	Publisher EventPublisher
}

// NewWithConfig constructs a Pager from Config.
func NewWithConfig(cfg Config) *Pager {
	p := &Pager{
		reg:       paging.NewRegistry(),
		defaultID: cfg.DefaultID,
		ctlOpts:   cfg.Controls,
		template:  cfg.Template,
		entries:   make(map[string]*entry),
		pub:       cfg.Publisher,
	}
	if p.defaultID == "" {
		p.defaultID = paging.DefaultID
	}
	if cfg.Logger != nil {
		p.log = *cfg.Logger
	} else {
		p.log = zerolog.Nop()
	}
	if p.pub == nil {
		p.pub = noopPublisher{}
	}
	p.ctlOpts.OnPageChange = nil
	p.ctlOpts.Logger = &p.log
	return p
}

// New returns a Pager with default settings.
func New() *Pager { return NewWithConfig(Config{}) }
