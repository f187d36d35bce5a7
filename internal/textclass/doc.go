// Package textclass decides how attribute values can be shown as text.
//
// # Classification
//
// Classify judges whether a byte string is displayable under a Policy:
//
//	textclass.Classify([]byte("caf\xc3\xa9"), textclass.PolicyUTF8) // Readable
//	textclass.Classify([]byte{0xff, 0xd8}, textclass.PolicyUTF8)     // Binary
//
// Three policies are supported:
//
//   - PolicyASCII: only printable ASCII plus newline and tab
//   - PolicyUTF8: strictly valid UTF-8 without NUL (the default)
//   - PolicyJunk: everything is treated as text
//
// # Safety
//
// Readable values are further checked against the grammar they will be
// written into. SafeLDIF implements the RFC 2849 SAFE-STRING rule used by
// the LDIF writer; SafeInline implements the rule of the review format,
// which can escape newlines and backslashes instead of falling back to
// base64.
package textclass
