// Package dn splits distinguished names into their relative components.
//
// DNs are handled as byte strings: values may carry arbitrary bytes and
// are never normalized, so the components rejoined with commas reproduce
// the input spelling apart from whitespace around separators.
package dn

import (
	"bytes"
	"errors"
)

// DN parsing errors.
var (
	ErrEmptyDN    = errors.New("dn: DN has no components")
	ErrEmptyRDN   = errors.New("dn: empty RDN component")
	ErrInvalidRDN = errors.New("dn: invalid RDN format")
	ErrUnbalanced = errors.New("dn: unterminated quote or escape")
)

// Split parses a distinguished name into its RDN components in forward
// order (leaf first).
//
// Example:
//
//	"uid=alice,ou=users,dc=example,dc=com" -> ["uid=alice", "ou=users", "dc=example", "dc=com"]
//
// Commas inside a quoted value or escaped with a backslash do not split.
// Multi-valued RDNs ("cn=a+sn=b") stay one component.
func Split(dn []byte) ([][]byte, error) {
	if len(bytes.TrimSpace(dn)) == 0 {
		return nil, ErrEmptyDN
	}

	var components [][]byte
	var current []byte
	// keep marks the end of the escaped or quoted part of current, which
	// must survive trimming of trailing spaces.
	keep := 0
	escaped := false
	quoted := false

	flush := func() error {
		comp := trimComponent(current, keep)
		if len(comp) == 0 {
			return ErrEmptyRDN
		}
		if err := checkRDN(comp); err != nil {
			return err
		}
		components = append(components, comp)
		current = nil
		keep = 0
		return nil
	}

	for _, c := range dn {
		if escaped {
			current = append(current, c)
			keep = len(current)
			escaped = false
			continue
		}

		switch {
		case c == '\\':
			current = append(current, c)
			escaped = true
		case c == '"':
			current = append(current, c)
			quoted = !quoted
			keep = len(current)
		case c == ',' && !quoted:
			if err := flush(); err != nil {
				return nil, err
			}
		default:
			current = append(current, c)
			if quoted {
				keep = len(current)
			}
		}
	}

	if escaped || quoted {
		return nil, ErrUnbalanced
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return components, nil
}

// trimComponent strips unescaped whitespace around an RDN. Bytes before
// keep are never removed from the right.
func trimComponent(comp []byte, keep int) []byte {
	end := len(comp)
	for end > keep && isSpace(comp[end-1]) {
		end--
	}
	start := 0
	for start < end && isSpace(comp[start]) {
		start++
	}
	out := make([]byte, end-start)
	copy(out, comp[start:end])
	return out
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// checkRDN requires every "+"-separated part of an RDN to have a
// non-empty attribute type before an unescaped '='.
func checkRDN(rdn []byte) error {
	typeLen := 0
	sawEquals := false
	escaped := false
	quoted := false

	for _, c := range rdn {
		if escaped {
			escaped = false
			continue
		}
		switch {
		case c == '\\':
			escaped = true
		case c == '"':
			quoted = !quoted
		case quoted:
		case c == '=' && !sawEquals:
			if typeLen == 0 {
				return ErrInvalidRDN
			}
			sawEquals = true
		case c == '+':
			if !sawEquals {
				return ErrInvalidRDN
			}
			sawEquals = false
			typeLen = 0
		case !sawEquals && !isSpace(c):
			typeLen++
		}
	}

	if !sawEquals {
		return ErrInvalidRDN
	}
	return nil
}

// Join rejoins RDN components with commas.
func Join(rdns [][]byte) []byte {
	return bytes.Join(rdns, []byte{','})
}

// Decompose returns the leading RDN of dn and the remaining components
// rejoined as the superior DN. The superior is empty when dn has a single
// component.
//
// Example:
//
//	"cn=new,ou=people,dc=example" -> "cn=new", "ou=people,dc=example"
func Decompose(dn []byte) (rdn, superior []byte, err error) {
	components, err := Split(dn)
	if err != nil {
		return nil, nil, err
	}
	return components[0], Join(components[1:]), nil
}
