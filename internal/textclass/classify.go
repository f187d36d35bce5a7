package textclass

// Class is the result of classifying a byte string.
type Class int

const (
	// Binary values must be base64 encoded.
	Binary Class = iota
	// Readable values can be written as (possibly escaped) text.
	Readable
)

// String returns the string representation of the class.
func (c Class) String() string {
	switch c {
	case Binary:
		return "binary"
	case Readable:
		return "readable"
	default:
		return "unknown"
	}
}

// Classify decides whether b is displayable text under policy p.
// The empty string is Readable under every policy.
func Classify(b []byte, p Policy) Class {
	var ok bool
	switch p {
	case PolicyJunk:
		ok = true
	case PolicyASCII:
		ok = PrintableASCII(b)
	default:
		ok = ValidUTF8(b)
	}
	if ok {
		return Readable
	}
	return Binary
}

// PrintableASCII reports whether every byte of b is a newline, a tab or
// in the range 0x20..0x7f.
func PrintableASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
		if c < 0x20 && c != '\n' && c != '\t' {
			return false
		}
	}
	return true
}
