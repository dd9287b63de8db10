// Package logify provides a minimalist leveled logging library: it
// timestamps records, tags them with a severity and call-site location,
// optionally colorizes console output, optionally duplicates records to a
// caller-owned file handle, and optionally serializes concurrent writers
// through a caller-supplied Locker.
//
// Key features:
//   - Six severity levels (Trace through Fatal) with name and numeric-string
//     conversions
//   - Dual sinks: console (os.Stderr by default) plus an optional file writer
//   - Quiet mode that silences the console while file logging continues
//   - One-time level bootstrap from the LOG_LEVEL environment variable
//   - Package-level default logger and configurable instances
package logify

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"time"
)

// Timestamp layouts are part of the output contract: time-only on the
// console, full date-time in the file sink.
const (
	consoleTimeFormat = "15:04:05"
	fileTimeFormat    = "2006-01-02 15:04:05"
)

// New creates a Logger writing to the given console writer at the Trace
// threshold, so a fresh logger emits everything. Color is auto-detected from
// the writer (enabled only for terminals). The console writer must be
// non-nil; use os.Stderr for conventional console logging.
//
// Example:
//
//	logger := logify.New(os.Stderr, logify.WithLevel(logify.Info))
func New(console io.Writer, opts ...Option) *Logger {
	if console == nil {
		panic("logify: nil console writer")
	}
	l := &Logger{
		level:   Trace,
		console: console,
		color:   isTerminal(console),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// WithLevel returns an Option that sets the initial severity threshold.
// Invalid levels are ignored, leaving the Trace default in place.
func WithLevel(level Level) Option {
	return func(l *Logger) {
		if level.Valid() {
			l.level = level
		}
	}
}

// WithQuiet returns an Option that sets quiet mode, suppressing the console
// sink while leaving the file sink active.
func WithQuiet(quiet bool) Option {
	return func(l *Logger) {
		l.quiet = quiet
	}
}

// WithFile returns an Option that sets the file sink. The caller owns the
// handle: the logger only writes to it, never opens or closes it.
func WithFile(w io.Writer) Option {
	return func(l *Logger) {
		l.file = w
	}
}

// WithLocker returns an Option that sets the Locker bracketing emissions.
func WithLocker(lock Locker) Option {
	return func(l *Logger) {
		l.lock = lock
	}
}

// WithColor returns an Option that overrides the terminal auto-detection for
// console color.
func WithColor(color bool) Option {
	return func(l *Logger) {
		l.color = color
	}
}

// SetLevel changes the severity threshold. If level is out of range the
// threshold is left unchanged and the bad value is reported as an ERROR
// record through this logger itself.
func (l *Logger) SetLevel(level Level) {
	if !level.Valid() {
		l.output(Error, 2, "tried to set bad log level %d", int(level))
		return
	}
	l.level = level
}

// SetLevelByName resolves a canonical level name (case-insensitive) and sets
// it as the threshold. On failure the threshold is unchanged, the bad name is
// reported as an ERROR record, and ErrUnknownLevelName is returned.
func (l *Logger) SetLevelByName(name string) (Level, error) {
	level, err := ParseLevel(name)
	if err != nil {
		l.output(Error, 2, "level name %q not found", name)
		return 0, err
	}
	l.level = level
	return level, nil
}

// SetLevelFromString sets the threshold from a string that is either a
// canonical numeric form ("-1" for Trace through "4" for Fatal) or a level
// name (case-insensitive). Numeric forms are tried first. An empty string
// fails with ErrEmptyInput; an unrecognized one with ErrUnknownLevelName.
// Failures leave the threshold unchanged and are reported as ERROR records.
func (l *Logger) SetLevelFromString(s string) (Level, error) {
	if s == "" {
		l.output(Error, 2, "received empty level string")
		return 0, ErrEmptyInput
	}
	for level := Trace; level <= Fatal; level++ {
		if num, _ := level.Numeric(); s == num {
			l.level = level
			return level, nil
		}
	}
	level, err := ParseLevel(s)
	if err != nil {
		l.output(Error, 2, "level name %q not found", s)
		return 0, err
	}
	l.level = level
	return level, nil
}

// GetLevel returns the current severity threshold.
func (l *Logger) GetLevel() Level {
	return l.level
}

// GetLevelName returns the canonical name of the current threshold. The
// threshold is always valid by construction, so no error is possible.
func (l *Logger) GetLevelName() string {
	name, _ := l.level.Name()
	return name
}

// SetQuiet toggles quiet mode: the console sink is suppressed while the file
// sink, if configured, keeps receiving records.
func (l *Logger) SetQuiet(quiet bool) {
	l.quiet = quiet
}

// GetQuiet reports whether quiet mode is enabled.
func (l *Logger) GetQuiet() bool {
	return l.quiet
}

// SetFile sets the file sink, or removes it when w is nil. Ownership of the
// handle stays with the caller; the logger never opens or closes it.
func (l *Logger) SetFile(w io.Writer) {
	l.file = w
}

// GetFile returns the configured file sink, nil if none.
func (l *Logger) GetFile() io.Writer {
	return l.file
}

// SetLocker sets the Locker bracketing emissions, or removes it when lock is
// nil. Without a Locker, concurrent emissions may interleave their console
// and file writes at the byte level.
func (l *Logger) SetLocker(lock Locker) {
	l.lock = lock
}

// SetColor overrides the terminal auto-detection for console color.
func (l *Logger) SetColor(color bool) {
	l.color = color
}

// SetOutput replaces the console writer and re-runs color auto-detection.
// A nil writer is rejected, leaving the current console in place.
func (l *Logger) SetOutput(w io.Writer) bool {
	if w == nil {
		return false
	}
	l.console = w
	l.color = isTerminal(w)
	return true
}

// Log writes one record to the configured sinks. file and line identify the
// call site cited in the record; format and args build the message with
// fmt.Sprintf semantics.
//
// The level is assumed valid: the leveled methods guarantee this, and passing
// an out-of-range level here is a precondition violation rather than a
// handled error. The record is still written, with a "LEVEL(<n>)" placeholder
// name and no color, but callers must not rely on that.
//
// Records below the threshold return before any formatting or lock
// acquisition. Past the check, the Locker (if any) brackets the rest of the
// call even when quiet mode and a missing file sink skip both writes. Both
// sinks stamp the same captured instant, in local time.
func (l *Logger) Log(level Level, file string, line int, format string, args ...any) {
	if level < l.level {
		return
	}

	if l.lock != nil {
		l.lock.Lock()
		defer l.lock.Unlock()
	}

	now := time.Now()
	name := level.String()
	msg := fmt.Sprintf(format, args...)

	if !l.quiet {
		if color, err := level.Color(); err == nil && l.color {
			fmt.Fprintf(l.console, "%s %s%-5s%s %s%s:%d:%s %s\n",
				now.Format(consoleTimeFormat), color, name, ansiReset,
				ansiGray, file, line, ansiReset, msg)
		} else {
			fmt.Fprintf(l.console, "%s %-5s %s:%d: %s\n",
				now.Format(consoleTimeFormat), name, file, line, msg)
		}
	}

	if l.file != nil {
		fmt.Fprintf(l.file, "%s %-5s %s:%d: %s\n",
			now.Format(fileTimeFormat), name, file, line, msg)
	}
}

// output forwards to Log with the call site captured skip frames up the
// stack. skip follows runtime.Caller conventions relative to output itself:
// 2 cites the caller of output's caller.
func (l *Logger) output(level Level, skip int, format string, args ...any) {
	file := "???"
	line := 0
	if _, f, ln, ok := runtime.Caller(skip); ok {
		file = filepath.Base(f)
		line = ln
	}
	l.Log(level, file, line, format, args...)
}

// Tracef logs a trace-level message with fmt.Sprintf semantics, citing the
// caller's file and line.
func (l *Logger) Tracef(format string, args ...any) {
	l.output(Trace, 2, format, args...)
}

// Debugf logs a debug-level message with fmt.Sprintf semantics, citing the
// caller's file and line.
func (l *Logger) Debugf(format string, args ...any) {
	l.output(Debug, 2, format, args...)
}

// Infof logs an informational message with fmt.Sprintf semantics, citing the
// caller's file and line.
func (l *Logger) Infof(format string, args ...any) {
	l.output(Info, 2, format, args...)
}

// Warnf logs a warning message with fmt.Sprintf semantics, citing the
// caller's file and line.
func (l *Logger) Warnf(format string, args ...any) {
	l.output(Warn, 2, format, args...)
}

// Errorf logs an error message with fmt.Sprintf semantics, citing the
// caller's file and line.
func (l *Logger) Errorf(format string, args ...any) {
	l.output(Error, 2, format, args...)
}

// Fatalf logs a fatal-level message with fmt.Sprintf semantics, citing the
// caller's file and line. It does not terminate the process; exiting is the
// caller's decision.
func (l *Logger) Fatalf(format string, args ...any) {
	l.output(Fatal, 2, format, args...)
}

// SetLevel changes the Default logger's threshold. See Logger.SetLevel.
func SetLevel(level Level) {
	if !level.Valid() {
		Default.output(Error, 2, "tried to set bad log level %d", int(level))
		return
	}
	Default.level = level
}

// SetLevelByName sets the Default logger's threshold by canonical name.
// See Logger.SetLevelByName.
func SetLevelByName(name string) (Level, error) {
	level, err := ParseLevel(name)
	if err != nil {
		Default.output(Error, 2, "level name %q not found", name)
		return 0, err
	}
	Default.level = level
	return level, nil
}

// SetLevelFromString sets the Default logger's threshold from a numeric or
// name string. See Logger.SetLevelFromString.
func SetLevelFromString(s string) (Level, error) {
	if s == "" {
		Default.output(Error, 2, "received empty level string")
		return 0, ErrEmptyInput
	}
	for level := Trace; level <= Fatal; level++ {
		if num, _ := level.Numeric(); s == num {
			Default.level = level
			return level, nil
		}
	}
	level, err := ParseLevel(s)
	if err != nil {
		Default.output(Error, 2, "level name %q not found", s)
		return 0, err
	}
	Default.level = level
	return level, nil
}

// GetLevel returns the Default logger's threshold.
func GetLevel() Level {
	return Default.GetLevel()
}

// GetLevelName returns the canonical name of the Default logger's threshold.
func GetLevelName() string {
	return Default.GetLevelName()
}

// SetQuiet toggles the Default logger's quiet mode.
func SetQuiet(quiet bool) {
	Default.SetQuiet(quiet)
}

// GetQuiet reports whether the Default logger is in quiet mode.
func GetQuiet() bool {
	return Default.GetQuiet()
}

// SetFile sets the Default logger's file sink.
func SetFile(w io.Writer) {
	Default.SetFile(w)
}

// GetFile returns the Default logger's file sink, nil if none.
func GetFile() io.Writer {
	return Default.GetFile()
}

// SetLocker sets the Locker bracketing the Default logger's emissions.
func SetLocker(lock Locker) {
	Default.SetLocker(lock)
}

// SetColor overrides console color detection on the Default logger.
func SetColor(color bool) {
	Default.SetColor(color)
}

// SetOutput replaces the Default logger's console writer.
func SetOutput(w io.Writer) bool {
	return Default.SetOutput(w)
}

// Tracef logs a trace-level message through the Default logger.
func Tracef(format string, args ...any) {
	Default.output(Trace, 2, format, args...)
}

// Debugf logs a debug-level message through the Default logger.
func Debugf(format string, args ...any) {
	Default.output(Debug, 2, format, args...)
}

// Infof logs an informational message through the Default logger.
func Infof(format string, args ...any) {
	Default.output(Info, 2, format, args...)
}

// Warnf logs a warning message through the Default logger.
func Warnf(format string, args ...any) {
	Default.output(Warn, 2, format, args...)
}

// Errorf logs an error message through the Default logger.
func Errorf(format string, args ...any) {
	Default.output(Error, 2, format, args...)
}

// Fatalf logs a fatal-level message through the Default logger. It does not
// terminate the process.
func Fatalf(format string, args ...any) {
	Default.output(Fatal, 2, format, args...)
}
