package basic

import (
	"git.home.luguber.info/inful/docconf/internal/config"
	th "git.home.luguber.info/inful/docconf/internal/theme"
)

// Theme is the built-in default theme. It ships with every host install, so
// resolution can always fall back to it.
type Theme struct{}

func (Theme) Name() config.Theme { return config.ThemeDefault }

func (Theme) Features() th.Features {
	return th.Features{
		Name:                  config.ThemeDefault,
		Responsive:            false,
		SupportsVersionBanner: false,
		DefaultPygmentsStyle:  "sphinx",
	}
}

func (Theme) ApplyOptions(params map[string]any) {
	if params["rightsidebar"] == nil {
		params["rightsidebar"] = false
	}
	if params["stickysidebar"] == nil {
		params["stickysidebar"] = false
	}
	if params["collapsiblesidebar"] == nil {
		params["collapsiblesidebar"] = false
	}
}

func init() { th.RegisterTheme(Theme{}) }
