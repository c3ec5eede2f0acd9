package config

import "git.home.luguber.info/inful/docconf/internal/foundation/normalization"

// Theme is a typed enumeration of supported HTML theme integrations.
type Theme string

// Theme constants to avoid magic strings across generator logic.
const (
	ThemeDefault Theme = "default"
	ThemeRTD     Theme = "rtd"
)

var themeNormalizer = normalization.NewNormalizer(map[string]Theme{
	"default":       ThemeDefault,
	"rtd":           ThemeRTD,
	"sphinx_rtd":    ThemeRTD,
	"read-the-docs": ThemeRTD,
	"read_the_docs": ThemeRTD,
}, "")

// ThemeType returns the normalized theme, or "" for unknown/empty raw values.
func (h *HTMLConfig) ThemeType() Theme {
	return themeNormalizer.Normalize(h.Theme)
}

// ValidThemes returns the recognized theme spellings for error messages.
func ValidThemes() []string { return themeNormalizer.ValidKeys() }
