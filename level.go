package logify

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Sentinel errors returned by the level registry and the level setters.
// Callers can match them with errors.Is; the setters additionally report
// failures as ERROR records through the logger being configured.
var (
	// ErrInvalidLevel indicates a level integer outside the defined range.
	ErrInvalidLevel = errors.New("logify: invalid level")

	// ErrUnknownLevelName indicates a name that matches no canonical level
	// name after case-folding.
	ErrUnknownLevelName = errors.New("logify: unknown level name")

	// ErrEmptyInput indicates an empty string passed to a level setter.
	ErrEmptyInput = errors.New("logify: empty input")
)

// Valid reports whether l lies within the defined range, Trace through Fatal.
func (l Level) Valid() bool {
	return l >= Trace && l <= Fatal
}

// Name returns the canonical uppercase name for the level, e.g. "DEBUG".
// It fails with ErrInvalidLevel when l is out of range.
func (l Level) Name() (string, error) {
	if !l.Valid() {
		return "", fmt.Errorf("%w: %d", ErrInvalidLevel, int(l))
	}
	return levelNames[l-Trace], nil
}

// String implements fmt.Stringer. Valid levels render as their canonical
// name; out-of-range values render as "LEVEL(<n>)" so that %v formatting
// never needs error plumbing. Use Name when rejection of bad input matters.
func (l Level) String() string {
	if name, err := l.Name(); err == nil {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel resolves a level name case-insensitively against the canonical
// names. It fails with ErrUnknownLevelName when nothing matches.
func ParseLevel(name string) (Level, error) {
	for l := Trace; l <= Fatal; l++ {
		if strings.EqualFold(name, levelNames[l-Trace]) {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevelName, name)
}

// Canonical decimal strings per level, built once on first use and immutable
// afterwards, so concurrent readers need no synchronization.
var (
	numericOnce    sync.Once
	numericStrings []string
)

func levelNumerics() []string {
	numericOnce.Do(func() {
		numericStrings = make([]string, len(levelNames))
		for l := Trace; l <= Fatal; l++ {
			numericStrings[l-Trace] = strconv.Itoa(int(l))
		}
	})
	return numericStrings
}

// Numeric returns the canonical decimal string for the level, e.g. "-1" for
// Trace and "2" for Warn. These are the numeric forms SetLevelFromString and
// the level environment variable accept. Fails with ErrInvalidLevel when l
// is out of range.
func (l Level) Numeric() (string, error) {
	if !l.Valid() {
		return "", fmt.Errorf("%w: %d", ErrInvalidLevel, int(l))
	}
	return levelNumerics()[l-Trace], nil
}
