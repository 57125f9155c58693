package logger

import (
	"log/slog"
	"time"
)

// Error logs err under "error". A nil err yields an empty Attr, which slog
// drops, so callers need no nil check.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID logs id under "request_id"; empty ids are dropped.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Language(code string) slog.Attr { return slog.String("language", code) }

// FileName logs a document name; empty names are dropped.
func FileName(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("file_name", name)
}

// FileSize logs a document size in bytes.
func FileSize(size int64) slog.Attr { return slog.Int64("file_size", size) }

func StatusCode(code int) slog.Attr { return slog.Int("status_code", code) }

func URL(u string) slog.Attr { return slog.String("url", u) }

func Duration(d time.Duration) slog.Attr { return slog.Duration("duration", d) }

func Component(name string) slog.Attr { return slog.String("component", name) }

func Event(name string) slog.Attr { return slog.String("event", name) }

func Handler(name string) slog.Attr { return slog.String("handler", name) }
