// Package logging provides structured logging for the envc CLI on top of
// log/slog.
//
// The default text handler is TTY-aware: it colorizes levels and attribute
// keys when writing to a terminal and degrades to plain text when the output
// is redirected, NO_COLOR is set, or TERM is "dumb". A JSON handler and a
// multi-handler (for simultaneous console and file output) are also provided.
//
// Verbosity flags map to levels via [LevelFromVerbosity], and loggers travel
// through command trees via [NewContext] and [FromContext] instead of package
// level mutable state.
package logging
