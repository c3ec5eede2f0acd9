// Package loader exposes the loaded configuration to the documentation-
// rendering host: fixed values on request, theme resolution with fallback,
// and the one-shot setup hook.
package loader

import (
	"sync"

	"git.home.luguber.info/inful/docconf/internal/config"
	"git.home.luguber.info/inful/docconf/internal/host"
	"git.home.luguber.info/inful/docconf/internal/links"
	"git.home.luguber.info/inful/docconf/internal/theme"
)

// Snapshot is the read-only view of the configuration handed to the host.
type Snapshot struct {
	Project config.ProjectConfig
	Links   *links.Set
	Output  OutputOptions
}

// OutputOptions groups the per-builder output settings.
type OutputOptions struct {
	HTML     config.HTMLConfig
	LaTeX    config.LaTeXConfig
	ManPages []config.ManPage
}

// Loader supplies static settings to the host. It is constructed once per
// build invocation and safe for concurrent reads.
type Loader struct {
	cfg  *config.SiteConfig
	once sync.Once
	snap Snapshot
}

// New creates a Loader over an already validated configuration.
func New(cfg *config.SiteConfig) *Loader {
	return &Loader{cfg: cfg}
}

// Load returns the fixed configuration values. It always succeeds and
// repeated calls within one process return identical values.
func (l *Loader) Load() Snapshot {
	l.once.Do(func() {
		l.snap = Snapshot{
			Project: l.cfg.Project,
			Links:   links.NewSet(l.cfg.Links),
			Output: OutputOptions{
				HTML:     l.cfg.HTML,
				LaTeX:    l.cfg.LaTeX,
				ManPages: l.cfg.ManPages,
			},
		}
	})
	return l.snap
}

// ResolveTheme returns the effective theme identifier, falling back to the
// default theme when the preferred one is unavailable.
func (l *Loader) ResolveTheme() config.Theme {
	name, _ := theme.Resolve(l.cfg)
	return name
}

// OnSetup registers the stylesheet override with the host application.
func (l *Loader) OnSetup(app host.App) {
	app.AddStylesheet(host.StylesheetOverride)
}
