package logify

import (
	"errors"
	"strings"
	"testing"
)

// TestLevelNameRoundTrip verifies that every valid level survives a
// name -> level -> name round trip.
func TestLevelNameRoundTrip(t *testing.T) {
	for level := Trace; level <= Fatal; level++ {
		name, err := level.Name()
		if err != nil {
			t.Fatalf("Name(%d) returned unexpected error: %v", int(level), err)
		}
		back, err := ParseLevel(name)
		if err != nil {
			t.Fatalf("ParseLevel(%q) returned unexpected error: %v", name, err)
		}
		if back != level {
			t.Errorf("Round trip for level %d gave %d", int(level), int(back))
		}
	}
}

// TestInvalidLevelLookups ensures every registry lookup rejects out-of-range
// levels with ErrInvalidLevel instead of returning a value.
func TestInvalidLevelLookups(t *testing.T) {
	for _, level := range []Level{Trace - 1, Fatal + 1, Level(666)} {
		if level.Valid() {
			t.Errorf("Expected Valid() to be false for level %d", int(level))
		}
		if name, err := level.Name(); !errors.Is(err, ErrInvalidLevel) || name != "" {
			t.Errorf("Name(%d) = (%q, %v), want ErrInvalidLevel", int(level), name, err)
		}
		if num, err := level.Numeric(); !errors.Is(err, ErrInvalidLevel) || num != "" {
			t.Errorf("Numeric(%d) = (%q, %v), want ErrInvalidLevel", int(level), num, err)
		}
		if color, err := level.Color(); !errors.Is(err, ErrInvalidLevel) || color != "" {
			t.Errorf("Color(%d) = (%q, %v), want ErrInvalidLevel", int(level), color, err)
		}
	}
}

// TestParseLevelCaseInsensitive verifies case-folding lookup and the error
// for unknown names.
func TestParseLevelCaseInsensitive(t *testing.T) {
	for _, name := range []string{"debug", "DEBUG", "Debug", "dEbUg"} {
		level, err := ParseLevel(name)
		if err != nil {
			t.Fatalf("ParseLevel(%q) returned unexpected error: %v", name, err)
		}
		if level != Debug {
			t.Errorf("ParseLevel(%q) = %d, want %d", name, int(level), int(Debug))
		}
	}
	if _, err := ParseLevel("VERBOSE"); !errors.Is(err, ErrUnknownLevelName) {
		t.Errorf("ParseLevel(\"VERBOSE\") error = %v, want ErrUnknownLevelName", err)
	}
}

// TestNumericStrings checks the canonical decimal forms, including the
// negative Trace sentinel.
func TestNumericStrings(t *testing.T) {
	cases := map[Level]string{
		Trace: "-1",
		Debug: "0",
		Info:  "1",
		Warn:  "2",
		Error: "3",
		Fatal: "4",
	}
	for level, want := range cases {
		got, err := level.Numeric()
		if err != nil {
			t.Fatalf("Numeric(%d) returned unexpected error: %v", int(level), err)
		}
		if got != want {
			t.Errorf("Numeric(%d) = %q, want %q", int(level), got, want)
		}
	}
}

// TestLevelString verifies Stringer behavior for valid and invalid levels.
func TestLevelString(t *testing.T) {
	if got := Warn.String(); got != "WARN" {
		t.Errorf("Warn.String() = %q, want \"WARN\"", got)
	}
	if got := Level(99).String(); got != "LEVEL(99)" {
		t.Errorf("Level(99).String() = %q, want \"LEVEL(99)\"", got)
	}
}

// TestColorTable ensures every valid level has an ANSI escape sequence.
func TestColorTable(t *testing.T) {
	seen := make(map[string]bool)
	for level := Trace; level <= Fatal; level++ {
		color, err := level.Color()
		if err != nil {
			t.Fatalf("Color(%d) returned unexpected error: %v", int(level), err)
		}
		if !strings.HasPrefix(color, "\x1b[") {
			t.Errorf("Color(%d) = %q, want an ANSI escape sequence", int(level), color)
		}
		if seen[color] {
			t.Errorf("Color(%d) = %q is not unique", int(level), color)
		}
		seen[color] = true
	}
}
