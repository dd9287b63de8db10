package logify

import "os"

// The available severity levels. Values must stay contiguous: the name,
// color, and numeric-string tables are indexed by level - Trace.
const (
	// Trace represents the most verbose diagnostics, below Debug.
	Trace Level = iota - 1

	// Debug represents development diagnostics.
	Debug

	// Info indicates normal operational messages for tracking progress.
	Info

	// Warn signifies potential issues that don't disrupt core functionality.
	Warn

	// Error denotes failures in specific operations or components.
	Error

	// Fatal represents critical errors leading to application termination.
	// Logging at Fatal does not itself terminate the process.
	Fatal
)

// envVarSuffix is the fixed part of the level environment variable name.
// The full name is EnvPrefix + envVarSuffix; see EnvVar.
const envVarSuffix = "LOG_LEVEL"

// EnvPrefix is prepended to the level environment variable name consulted by
// InitFromEnv. It is empty by default and intended for build-time injection:
//
//	go build -ldflags "-X github.com/sivaosorg/logify.EnvPrefix=MYAPP_"
var EnvPrefix = ""

// Canonical uppercase names, indexed by level - Trace.
var levelNames = []string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

// ANSI escape sequences per level, same order as levelNames.
var levelColors = []string{
	"\x1b[94m", // TRACE bright blue
	"\x1b[36m", // DEBUG cyan
	"\x1b[32m", // INFO  green
	"\x1b[33m", // WARN  yellow
	"\x1b[31m", // ERROR red
	"\x1b[35m", // FATAL magenta
}

const (
	ansiReset = "\x1b[0m"
	ansiGray  = "\x1b[90m"
)

// Default is a pre-configured Logger instance intended for general use. It
// writes to os.Stderr at the Trace threshold and backs every package-level
// function. Applications wanting different defaults may reconfigure it
// through the accessors or replace it outright with their own instance.
var Default = New(os.Stderr)
