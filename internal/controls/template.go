package controls

import "pagerd/pkg/types"

// DefaultTemplatePath is the template reference used when nothing else is configured.
const DefaultTemplatePath = "pagerd.controls.template"

// TemplateConfig selects the controls template for every instance. It is set
// once from configuration and read whenever a Controls is created.
type TemplateConfig struct {
	Path   string `json:"path" yaml:"path" toml:"path"`
	String string `json:"string" yaml:"string" toml:"string"`
}

// Resolve picks the template in priority order: inline string, the
// per-instance templateURL, then the configured path.
func (c TemplateConfig) Resolve(templateURL string) types.Template {
	if c.String != "" {
		return types.Template{Inline: c.String}
	}
	if templateURL != "" {
		return types.Template{Path: templateURL}
	}
	if c.Path != "" {
		return types.Template{Path: c.Path}
	}
	return types.Template{Path: DefaultTemplatePath}
}
