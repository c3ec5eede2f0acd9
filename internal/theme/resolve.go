package theme

import (
	"log/slog"
	"os"

	"git.home.luguber.info/inful/docconf/internal/config"
	"git.home.luguber.info/inful/docconf/internal/logfields"
)

// envHostedBuild marks builds running on the documentation hosting service,
// which injects its own theme and ignores local theme selection.
const envHostedBuild = "READTHEDOCS"

// Resolve picks the effective theme for the build. The preferred theme is
// used when its implementation is registered and the build is not running on
// the hosting service; otherwise Resolve silently falls back to the default
// theme. Resolution never fails.
func Resolve(cfg *config.SiteConfig) (config.Theme, Theme) {
	return resolve(cfg.HTML.ThemeType(), hostedBuild(), Get)
}

func resolve(preferred config.Theme, hosted bool, lookup func(config.Theme) Theme) (config.Theme, Theme) {
	if preferred == "" {
		preferred = config.ThemeDefault
	}
	if hosted {
		return config.ThemeDefault, defaultTheme(lookup)
	}
	if t := lookup(preferred); t != nil {
		return preferred, t
	}
	if preferred != config.ThemeDefault {
		slog.Debug("Theme unavailable, falling back to default", logfields.Theme(string(preferred)))
	}
	return config.ThemeDefault, defaultTheme(lookup)
}

func defaultTheme(lookup func(config.Theme) Theme) Theme {
	if t := lookup(config.ThemeDefault); t != nil {
		return t
	}
	return NullTheme{}
}

func hostedBuild() bool {
	return os.Getenv(envHostedBuild) == "True"
}
