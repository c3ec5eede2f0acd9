package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyGenerationID = "generation_id"
	KeyTemplate     = "template"
	KeyTheme        = "theme"
	KeyPath         = "path"
	KeyVersion      = "version"
	KeyDurationMS   = "duration_ms"
	KeyError        = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func GenerationID(id string) slog.Attr { return slog.String(KeyGenerationID, id) }
func Template(name string) slog.Attr   { return slog.String(KeyTemplate, name) }
func Theme(name string) slog.Attr      { return slog.String(KeyTheme, name) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func Version(v string) slog.Attr       { return slog.String(KeyVersion, v) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
