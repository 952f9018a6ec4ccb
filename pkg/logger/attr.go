package logger

import "log/slog"

// Error records err under "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the emitting component under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the lifecycle event under "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Field records a request field key under "field".
func Field(key string) slog.Attr {
	return slog.String("field", key)
}

// Fields records request field keys under "fields".
func Fields(keys []string) slog.Attr {
	return slog.Any("fields", keys)
}

// Destination records a log channel or sink name under "destination".
func Destination(name string) slog.Attr {
	return slog.String("destination", name)
}

// Request records the request type under "request".
func Request(name string) slog.Attr {
	return slog.String("request", name)
}
