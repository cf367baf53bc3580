package adjacency

import (
	"fmt"
	"strings"
)

// Mode selects which edit operations connect two words.
type Mode int

const (
	// FixedLength connects words that differ by one substituted letter.
	FixedLength Mode = iota

	// VariableLength adds single-letter insertion and deletion edges.
	VariableLength
)

var modeNames = map[Mode]string{
	FixedLength:    "fixed",
	VariableLength: "variable",
}

// String returns "fixed" or "variable".
func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// ParseMode accepts "fixed"/"fixed-length" and "variable"/"variable-length",
// case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fixed", "fixed-length", "":
		return FixedLength, nil
	case "variable", "variable-length":
		return VariableLength, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// UnmarshalText lets a Mode be decoded from configuration files.
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// MarshalText is the inverse of UnmarshalText.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	return []byte(m.String()), nil
}
