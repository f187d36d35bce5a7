package textclass

// ValidUTF8 reports whether b is strictly valid UTF-8 text.
//
// Unlike unicode/utf8.Valid it accepts the legacy five and six byte forms
// (lead bytes up to 0xfd) while rejecting NUL, overlong encodings,
// UTF-16 surrogates and the non-characters U+FFFE and U+FFFF.
func ValidUTF8(b []byte) bool {
	for i := 0; i < len(b); {
		c := b[i]
		i++

		if c < 0x80 {
			if c == 0 {
				return false
			}
			continue
		}

		n, minFirst, ok := sequence(c)
		if !ok || len(b)-i < n {
			return false
		}
		for _, d := range b[i : i+n] {
			if d&0xc0 != 0x80 {
				return false
			}
		}
		// Overlong forms have a first continuation byte below the minimum
		// for the shortest lead byte of each length.
		if b[i] < minFirst {
			return false
		}
		if n == 2 {
			code := rune(c&0x0f)<<12 | rune(b[i]&0x3f)<<6 | rune(b[i+1]&0x3f)
			if (code >= 0xd800 && code <= 0xdfff) || code == 0xfffe || code == 0xffff {
				return false
			}
		}
		i += n
	}
	return true
}

// sequence returns the number of continuation bytes that follow lead byte c
// and the smallest first continuation byte that is not overlong.
// Stray continuation bytes, 0xc0, 0xc1, 0xfe and 0xff are never valid leads.
func sequence(c byte) (n int, minFirst byte, ok bool) {
	minFirst = 0x80
	switch {
	case c >= 0xfe:
		return 0, 0, false
	case c >= 0xfc:
		n = 5
		if c == 0xfc {
			minFirst = 0x84
		}
	case c >= 0xf8:
		n = 4
		if c == 0xf8 {
			minFirst = 0x88
		}
	case c >= 0xf0:
		n = 3
		if c == 0xf0 {
			minFirst = 0x90
		}
	case c >= 0xe0:
		n = 2
		if c == 0xe0 {
			minFirst = 0xa0
		}
	case c >= 0xc2:
		n = 1
	default:
		return 0, 0, false
	}
	return n, minFirst, true
}
