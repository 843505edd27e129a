package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID    = "build_id"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyPath       = "path"
	KeyFile       = "file"
	KeyDir        = "dir"
	KeyDest       = "dest"
	KeyReason     = "reason"
	KeyCount      = "count"
	KeyLanguage   = "language"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func File(name string) slog.Attr      { return slog.String(KeyFile, name) }
func Dir(d string) slog.Attr          { return slog.String(KeyDir, d) }
func Dest(p string) slog.Attr         { return slog.String(KeyDest, p) }
func Reason(r string) slog.Attr       { return slog.String(KeyReason, r) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Language(tag string) slog.Attr   { return slog.String(KeyLanguage, tag) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
