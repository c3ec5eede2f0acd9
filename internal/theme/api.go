// Package theme holds the pluggable HTML theme registry. Built-in themes live
// under internal/theme/themes and register via their own init().
package theme

import (
	"sync"

	"git.home.luguber.info/inful/docconf/internal/config"
)

// Features describes capability flags declared by a theme.
type Features struct {
	Name                       config.Theme
	ProvidesStylesheetOverride bool   // theme ships a stylesheet override hook (wide tables)
	Responsive                 bool   // theme layout adapts to small screens
	SupportsVersionBanner      bool   // theme can surface the prolog banner
	DefaultPygmentsStyle       string // syntax highlighting style the theme expects
}

// Theme provides hooks for configuring the host's HTML output.
type Theme interface {
	Name() config.Theme
	Features() Features
	ApplyOptions(params map[string]any)
}

var (
	regMu sync.RWMutex
	reg   = map[config.Theme]Theme{}
)

// RegisterTheme registers a Theme implementation (idempotent, nil ignored).
func RegisterTheme(t Theme) {
	if t == nil {
		return
	}
	regMu.Lock()
	defer regMu.Unlock()
	if _, exists := reg[t.Name()]; exists {
		return
	}
	reg[t.Name()] = t
}

// Get retrieves a theme by name, or nil when none is registered.
func Get(name config.Theme) Theme {
	regMu.RLock()
	defer regMu.RUnlock()
	return reg[name]
}

// NullTheme is a no-op theme used when nothing suitable is registered.
type NullTheme struct{}

func (NullTheme) Name() config.Theme            { return config.ThemeDefault }
func (NullTheme) Features() Features            { return Features{Name: config.ThemeDefault} }
func (NullTheme) ApplyOptions(_ map[string]any) {}
