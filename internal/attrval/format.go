package attrval

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned by ParseFormat for unrecognised names.
var ErrUnknownFormat = errors.New("attrval: unknown output format")

// Format selects the target text format.
type Format int

const (
	// FormatReview is the compact, human-editable review format.
	FormatReview Format = iota
	// FormatLDIF is the RFC 2849 interchange format.
	FormatLDIF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatReview:
		return "review"
	case FormatLDIF:
		return "ldif"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "review", "ldapvi":
		return FormatReview, nil
	case "ldif":
		return FormatLDIF, nil
	default:
		return FormatReview, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Encoding is the representation chosen for one value.
type Encoding int

const (
	// Raw values are written verbatim.
	Raw Encoding = iota
	// Escaped values have LF and backslash prefixed by a backslash.
	Escaped
	// Base64 values are written as standard padded base64.
	Base64
)

// String returns the string representation of the encoding.
func (e Encoding) String() string {
	switch e {
	case Raw:
		return "raw"
	case Escaped:
		return "escaped"
	case Base64:
		return "base64"
	default:
		return "unknown"
	}
}

// Marker returns the separator written between the attribute type and the
// encoded value.
func (e Encoding) Marker() string {
	switch e {
	case Escaped:
		return ":; "
	case Base64:
		return ":: "
	default:
		return ": "
	}
}
