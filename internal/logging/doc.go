// Package logging builds the slog loggers availgen runs with.
//
// [New] assembles a logger from a [Config]: text records go through the
// colorized terminal [Handler], JSON records through slog's own JSON
// handler, and [MultiHandler] tees records to both when --log-file is set.
//
// # Verbosity
//
// Repeatable -v flags map to levels via [LevelFromVerbosity]: the default
// shows warnings only, -v adds info, -vv debug, and -vvv [LevelTrace].
//
// # Context
//
// Commands attach their logger to the context with [NewContext]; the
// resolution pipeline retrieves it with [FromContext] instead of reaching
// for a global:
//
//	logger := logging.FromContext(ctx)
//	logger.Debug("resolved declarations", "apis", len(artifacts))
//
// # Testing
//
// [ForTest] routes records through testing.TB.Log so they surface only on
// failure or under -v; [NewDiscard] drops records entirely (quiet mode).
package logging
