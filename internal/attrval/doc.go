// Package attrval renders single attribute values as line fragments.
//
// An Encoder classifies each value with the session's text policy and picks
// one of three encodings:
//
//	Raw      "cn: foo"            value written verbatim
//	Escaped  "path:; C:\\tmp"     review format only, LF and '\' escaped
//	Base64   "jpegPhoto:: /9g="   binary values, and unsafe LDIF values
//
// The fragment returned by Encode starts with the marker (": ", ":; " or
// ":: ") so callers only prepend the attribute type and append the line
// terminator. Encoding never fails.
package attrval
