package logging

import "log/slog"

// LevelTrace sits below slog.LevelDebug for the most detailed output,
// reached with -vvv.
const LevelTrace slog.Level = slog.LevelDebug - 4

// LevelFromVerbosity maps a -v flag count to a log level. Zero shows
// warnings and errors only; each additional -v lowers the threshold
// through Info and Debug down to LevelTrace.
func LevelFromVerbosity(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelWarn
	case v == 1:
		return slog.LevelInfo
	case v == 2:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}
