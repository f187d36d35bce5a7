package attrval

import (
	"encoding/base64"

	"github.com/KilimcininKorOglu/obavi/internal/textclass"
)

// Fragment is one encoded value.
type Fragment struct {
	// Encoding is the representation that was chosen.
	Encoding Encoding
	// Text is the encoded value without marker.
	Text []byte
}

// Marker returns the separator for the fragment's encoding.
func (f Fragment) Marker() string {
	return f.Encoding.Marker()
}

// Bytes returns marker and text as a single slice.
func (f Fragment) Bytes() []byte {
	out := make([]byte, 0, len(f.Marker())+len(f.Text))
	out = append(out, f.Marker()...)
	return append(out, f.Text...)
}

// Encoder encodes attribute values under a fixed text policy.
// An Encoder holds no mutable state and may be shared between goroutines.
type Encoder struct {
	policy textclass.Policy
}

// NewEncoder creates an Encoder for the given policy.
func NewEncoder(policy textclass.Policy) *Encoder {
	return &Encoder{policy: policy}
}

// Policy returns the text policy of the encoder.
func (e *Encoder) Policy() textclass.Policy {
	return e.policy
}

// Choose returns the encoding Encode would pick for b in format f.
func (e *Encoder) Choose(b []byte, f Format) Encoding {
	if textclass.Classify(b, e.policy) == textclass.Binary {
		return Base64
	}

	if f == FormatLDIF {
		if textclass.SafeLDIF(b) {
			return Raw
		}
		// LDIF has no escaped form.
		return Base64
	}

	if textclass.SafeInline(b) {
		return Raw
	}
	return Escaped
}

// Encode renders b for format f. Text is never nil, even for an empty b.
func (e *Encoder) Encode(b []byte, f Format) Fragment {
	enc := e.Choose(b, f)
	return Fragment{Encoding: enc, Text: appendText(make([]byte, 0, len(b)), b, enc)}
}

// AppendValue appends marker and encoded value to dst and returns the
// extended slice.
func (e *Encoder) AppendValue(dst, b []byte, f Format) []byte {
	enc := e.Choose(b, f)
	dst = append(dst, enc.Marker()...)
	return appendText(dst, b, enc)
}

func appendText(dst, b []byte, enc Encoding) []byte {
	switch enc {
	case Base64:
		return base64.StdEncoding.AppendEncode(dst, b)
	case Escaped:
		return AppendEscaped(dst, b)
	default:
		return append(dst, b...)
	}
}
