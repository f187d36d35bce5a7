package textclass

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPolicy is returned by ParsePolicy for unrecognised names.
var ErrUnknownPolicy = errors.New("textclass: unknown text policy")

// Policy controls which byte strings are considered displayable text.
// A Policy is chosen once per session and never changes afterwards.
type Policy int

const (
	// PolicyUTF8 accepts strictly valid UTF-8 that contains no NUL byte.
	PolicyUTF8 Policy = iota
	// PolicyASCII accepts printable ASCII, newline and tab.
	PolicyASCII
	// PolicyJunk accepts every byte string as text.
	PolicyJunk
)

// String returns the canonical name of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyUTF8:
		return "utf8"
	case PolicyASCII:
		return "ascii"
	case PolicyJunk:
		return "junk"
	default:
		return "unknown"
	}
}

// ParsePolicy parses a policy name. Matching is case-insensitive and the
// long names ("valid-utf8", "ascii-only", "always-text") are accepted too.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "utf8", "utf-8", "valid-utf8":
		return PolicyUTF8, nil
	case "ascii", "ascii-only":
		return PolicyASCII, nil
	case "junk", "always-text":
		return PolicyJunk, nil
	default:
		return PolicyUTF8, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler so a Policy can be
// read straight from configuration files and environment variables.
func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Policy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
