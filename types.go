package logify

import (
	"io"
	"sync"
)

// Level is the severity of a log record. Levels are contiguous integers
// ordered from Trace (most verbose) to Fatal (most severe). Trace sits at -1
// so that Debug through Fatal keep the canonical numeric strings "0" through
// "4" accepted by SetLevelFromString and the level environment variable.
type Level int

// Logger holds the state of one logging instance: the severity threshold,
// the console and optional file sinks, the quiet flag, the color toggle, and
// an optional Locker that serializes emissions. The zero value is not usable;
// construct instances with New. The package-level Default instance backs the
// package-level functions and may be replaced by the embedding application.
type Logger struct {
	level   Level     // Minimum severity to emit; lower records are dropped.
	quiet   bool      // Suppresses the console sink; the file sink still runs.
	console io.Writer // Console sink, os.Stderr by default.
	file    io.Writer // Optional file sink; the caller owns the handle.
	lock    Locker    // Optional; nil means emissions are not serialized.
	color   bool      // ANSI color on the console sink.
	envOnce sync.Once // Guards the one-time environment bootstrap.
}

// Locker serializes emissions across concurrent callers. The logger brackets
// each emitted record with one Lock/Unlock pair; records dropped by the
// threshold check never touch the Locker. sync.Mutex satisfies the interface,
// as does any other mutual-exclusion primitive the host application uses.
type Locker interface {
	Lock()
	Unlock()
}

// LockFunc adapts a single function to the Locker interface. The function
// receives true to acquire and false to release; any context it needs is
// carried in its closure.
type LockFunc func(acquire bool)

func (f LockFunc) Lock()   { f(true) }
func (f LockFunc) Unlock() { f(false) }

// Option defines a functional option for configuring a Logger instance during
// creation. Each Option is a function that accepts a pointer to a Logger and
// modifies its configuration.
type Option func(*Logger)
