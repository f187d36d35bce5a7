package textclass

// SafeLDIF reports whether a readable value may appear unencoded after
// "attr: " in an LDIF line. RFC 2849 forbids a leading space, colon or
// less-than sign, and any NUL, CR, LF or non-ASCII byte.
func SafeLDIF(b []byte) bool {
	if len(b) == 0 {
		return true
	}

	switch b[0] {
	case ' ', ':', '<':
		return false
	}

	for _, c := range b {
		if c == 0 || c == '\r' || c == '\n' || c >= 0x80 {
			return false
		}
	}
	return true
}

// SafeInline reports whether a readable value may be written verbatim in
// the review format. Values containing NUL, CR, LF or a backslash need the
// escaped form.
func SafeInline(b []byte) bool {
	for _, c := range b {
		switch c {
		case 0, '\r', '\n', '\\':
			return false
		}
	}
	return true
}
