package attrval

import "errors"

// ErrDanglingEscape is returned by Unescape when the input ends with a
// lone backslash.
var ErrDanglingEscape = errors.New("attrval: dangling backslash")

// AppendEscaped appends b to dst with every LF and backslash prefixed by a
// backslash. All other bytes are copied unchanged.
func AppendEscaped(dst, b []byte) []byte {
	for _, c := range b {
		if c == '\n' || c == '\\' {
			dst = append(dst, '\\')
		}
		dst = append(dst, c)
	}
	return dst
}

// Unescape reverses AppendEscaped: a backslash makes the following byte
// literal.
func Unescape(b []byte) ([]byte, error) {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c == '\\' {
			i++
			if i == len(b) {
				return nil, ErrDanglingEscape
			}
			c = b[i]
		}
		out = append(out, c)
	}
	return out, nil
}
