package sl

import "log/slog"

// Module tags log records with the subsystem that emitted them.
func Module(name string) slog.Attr {
	return slog.String("module", name)
}

// Err renders an error as a log attribute.
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Secret logs only the presence and length of a sensitive value.
func Secret(key, value string) slog.Attr {
	masked := "empty"
	if len(value) > 0 {
		masked = "set"
	}
	return slog.Group(key,
		slog.String("value", masked),
		slog.Int("length", len(value)),
	)
}
