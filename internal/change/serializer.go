package change

import (
	"fmt"
	"io"

	"github.com/KilimcininKorOglu/obavi/internal/attrval"
	"github.com/KilimcininKorOglu/obavi/internal/textclass"
)

// Serializer writes change records in one output format.
// It is immutable after construction.
type Serializer struct {
	enc    *attrval.Encoder
	format attrval.Format
}

// NewSerializer creates a Serializer for the given text policy and format.
func NewSerializer(policy textclass.Policy, format attrval.Format) *Serializer {
	return &Serializer{
		enc:    attrval.NewEncoder(policy),
		format: format,
	}
}

// Format returns the output format.
func (s *Serializer) Format() attrval.Format {
	return s.format
}

// Policy returns the text policy.
func (s *Serializer) Policy() textclass.Policy {
	return s.enc.Policy()
}

// Write validates rec and writes it to w.
// Output may be partial if w fails; the returned error then wraps
// ErrSinkWrite and the writer's error.
func (s *Serializer) Write(w io.Writer, rec Record) error {
	if err := Validate(rec); err != nil {
		return err
	}

	lw := &lineWriter{w: w, enc: s.enc, format: s.format}
	if s.format == attrval.FormatLDIF {
		return writeLDIF(lw, rec)
	}
	return writeReview(lw, rec)
}

// WriteAll writes recs in order and stops at the first error.
func (s *Serializer) WriteAll(w io.Writer, recs []Record) error {
	for i, rec := range recs {
		if err := s.Write(w, rec); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}

// WriteEntry writes a complete entry. In the review format the entry is
// introduced by key ("entry" if empty) followed by the DN; in LDIF it is a
// content record without changetype.
//
// The review header writes the DN verbatim, not through the encoder, so a
// DN containing LF or NUL cannot be read back from review output. Use LDIF
// for such entries.
func (s *Serializer) WriteEntry(w io.Writer, key string, entry *Entry) error {
	if entry == nil {
		return malformed("nil entry")
	}

	lw := &lineWriter{w: w, enc: s.enc, format: s.format}
	if s.format == attrval.FormatLDIF {
		return writeLDIFEntry(lw, entry)
	}
	return writeReviewEntry(lw, key, entry)
}

// lineWriter assembles one output line at a time and hands it to w.
type lineWriter struct {
	w      io.Writer
	enc    *attrval.Encoder
	format attrval.Format
	line   []byte
}

// blank writes an empty line.
func (lw *lineWriter) blank() error {
	lw.line = append(lw.line[:0], '\n')
	return lw.flush()
}

// text writes a line holding s verbatim.
func (lw *lineWriter) text(s string) error {
	lw.line = append(lw.line[:0], s...)
	lw.line = append(lw.line, '\n')
	return lw.flush()
}

// value writes a line of the form <prefix><marker><encoded value>.
func (lw *lineWriter) value(prefix string, v []byte) error {
	lw.line = append(lw.line[:0], prefix...)
	lw.line = lw.enc.AppendValue(lw.line, v, lw.format)
	lw.line = append(lw.line, '\n')
	return lw.flush()
}

// writeAttributes writes one "<type><value>" line per attribute value.
func writeAttributes(lw *lineWriter, attrs []AttributeValue) error {
	for _, av := range attrs {
		if err := lw.value(av.Type, av.Value); err != nil {
			return err
		}
	}
	return nil
}

func (lw *lineWriter) flush() error {
	if _, err := lw.w.Write(lw.line); err != nil {
		return sinkError(err)
	}
	return nil
}
