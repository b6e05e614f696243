package logger

import (
	"log/slog"
	"time"
)

// Attribute keys shared by all packages of the module.
const (
	KeyAttribute = "attribute"
	KeyMessages  = "messages"
	KeyLocale    = "locale"
	KeyPath      = "path"
	KeyComponent = "component"
	KeyDuration  = "duration"
	KeyError     = "error"
)

// Error returns an empty Attr for a nil err so it can be passed unconditionally.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any(KeyError, err)
}

// Attribute names the record attribute being validated.
func Attribute(name string) slog.Attr {
	return slog.String(KeyAttribute, name)
}

// Messages returns an empty Attr when msgs is empty.
func Messages(msgs []string) slog.Attr {
	if len(msgs) == 0 {
		return slog.Attr{}
	}
	return slog.Any(KeyMessages, msgs)
}

func Locale(lang string) slog.Attr {
	return slog.String(KeyLocale, lang)
}

func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// Duration logs d as a string like "1.5ms" in both text and JSON output.
func Duration(d time.Duration) slog.Attr {
	return slog.String(KeyDuration, d.String())
}
