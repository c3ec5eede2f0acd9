package rtd

import (
	"git.home.luguber.info/inful/docconf/internal/config"
	th "git.home.luguber.info/inful/docconf/internal/theme"
)

// Theme is the Read the Docs theme integration. Its tables render too wide
// without the stylesheet override, hence ProvidesStylesheetOverride.
type Theme struct{}

func (Theme) Name() config.Theme { return config.ThemeRTD }

func (Theme) Features() th.Features {
	return th.Features{
		Name:                       config.ThemeRTD,
		ProvidesStylesheetOverride: true,
		Responsive:                 true,
		SupportsVersionBanner:      true,
		DefaultPygmentsStyle:       "sphinx",
	}
}

func (Theme) ApplyOptions(params map[string]any) {
	if params["collapse_navigation"] == nil {
		params["collapse_navigation"] = false
	}
	if params["sticky_navigation"] == nil {
		params["sticky_navigation"] = true
	}
	if params["navigation_depth"] == nil {
		params["navigation_depth"] = 4
	}
	if params["prev_next_buttons_location"] == nil {
		params["prev_next_buttons_location"] = "bottom"
	}
}

func init() { th.RegisterTheme(Theme{}) }
