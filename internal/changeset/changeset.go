// Package changeset reads change records from YAML documents.
//
// A changeset document lists records and, optionally, full entries:
//
//	records:
//	  - type: add
//	    dn: cn=foo,dc=example,dc=com
//	    attributes:
//	      - {type: cn, value: foo}
//	      - {type: jpegPhoto, value: !!binary /9g=}
//	  - type: modify
//	    dn: uid=alice,dc=example,dc=com
//	    modifications:
//	      - {op: replace, type: mail, values: [alice@example.com]}
//	      - {op: delete, type: description}
//	  - type: rename
//	    dn: cn=old,dc=example,dc=com
//	    newdn: cn=new,dc=example,dc=com
//	    deleteoldrdn: true
//	  - type: delete
//	    dn: cn=gone,dc=example,dc=com
//	entries:
//	  - key: "0"
//	    dn: cn=foo,dc=example,dc=com
//	    attributes:
//	      - {type: cn, value: foo}
//
// Values and DNs are strings, !!binary scalars, or mappings with a single
// "base64" or "hex" key, so any byte string can be expressed.
package changeset

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KilimcininKorOglu/obavi/internal/change"
)

// Changeset errors.
var (
	ErrInvalidChangeset = errors.New("changeset: invalid document")
	ErrUnknownType      = errors.New("changeset: unknown record type")
	ErrInvalidValue     = errors.New("changeset: invalid value")
)

// Value is a byte string decoded from YAML.
type Value []byte

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!null":
			*v = Value{}
		case "!!binary":
			data, err := decodeBase64(node.Value)
			if err != nil {
				return fmt.Errorf("%w: line %d: %v", ErrInvalidValue, node.Line, err)
			}
			*v = data
		default:
			*v = Value(node.Value)
		}
		return nil

	case yaml.MappingNode:
		var m map[string]string
		if err := node.Decode(&m); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrInvalidValue, node.Line, err)
		}
		if len(m) != 1 {
			return fmt.Errorf("%w: line %d: expected exactly one of base64, hex", ErrInvalidValue, node.Line)
		}
		var (
			data []byte
			err  error
		)
		if s, ok := m["base64"]; ok {
			data, err = decodeBase64(s)
		} else if s, ok := m["hex"]; ok {
			data, err = hex.DecodeString(strings.Join(strings.Fields(s), ""))
		} else {
			return fmt.Errorf("%w: line %d: expected exactly one of base64, hex", ErrInvalidValue, node.Line)
		}
		if err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrInvalidValue, node.Line, err)
		}
		*v = data
		return nil

	default:
		return fmt.Errorf("%w: line %d: value must be a scalar or mapping", ErrInvalidValue, node.Line)
	}
}

func decodeBase64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(strings.Join(strings.Fields(s), ""))
}

// AttributeSpec is one attribute value.
type AttributeSpec struct {
	Type  string `yaml:"type"`
	Value Value  `yaml:"value"`
}

// ModificationSpec is one modify directive.
type ModificationSpec struct {
	Op     string  `yaml:"op"`
	Type   string  `yaml:"type"`
	Values []Value `yaml:"values"`
}

// RecordSpec is the YAML form of a change record.
type RecordSpec struct {
	Type          string             `yaml:"type"`
	DN            Value              `yaml:"dn"`
	Attributes    []AttributeSpec    `yaml:"attributes"`
	Modifications []ModificationSpec `yaml:"modifications"`
	NewDN         Value              `yaml:"newdn"`
	DeleteOldRDN  bool               `yaml:"deleteoldrdn"`
}

// EntrySpec is the YAML form of a full entry.
type EntrySpec struct {
	Key        string          `yaml:"key"`
	DN         Value           `yaml:"dn"`
	Attributes []AttributeSpec `yaml:"attributes"`
}

// Document is a decoded changeset file.
type Document struct {
	Records []RecordSpec `yaml:"records"`
	Entries []EntrySpec  `yaml:"entries"`
}

// KeyedEntry is an entry together with the key it is shown under.
type KeyedEntry struct {
	Key   string
	Entry *change.Entry
}

// Changeset holds the records and entries of a document.
type Changeset struct {
	Records []change.Record
	Entries []KeyedEntry
}

// Decode reads a changeset document from r.
func Decode(r io.Reader) (*Changeset, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &Changeset{}, nil
		}
		if errors.Is(err, ErrInvalidValue) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidChangeset, err)
	}
	return doc.Build()
}

// Parse decodes a changeset document held in memory.
func Parse(data []byte) (*Changeset, error) {
	return Decode(bytes.NewReader(data))
}

// Build converts the document into change records and entries.
func (d *Document) Build() (*Changeset, error) {
	cs := &Changeset{
		Records: make([]change.Record, 0, len(d.Records)),
	}

	for i, spec := range d.Records {
		rec, err := spec.Record()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		cs.Records = append(cs.Records, rec)
	}

	for _, spec := range d.Entries {
		cs.Entries = append(cs.Entries, KeyedEntry{Key: spec.Key, Entry: spec.Entry()})
	}

	return cs, nil
}

// Record converts s into a change record.
func (s RecordSpec) Record() (change.Record, error) {
	switch strings.ToLower(s.Type) {
	case "add":
		return &change.Add{DN: s.DN, Attributes: attributes(s.Attributes)}, nil

	case "delete":
		return &change.Delete{DN: s.DN}, nil

	case "modify":
		mods := make([]change.Modification, 0, len(s.Modifications))
		for _, m := range s.Modifications {
			op, ok := change.ParseModifyOp(strings.ToLower(m.Op))
			if !ok {
				return nil, fmt.Errorf("%w: unknown modify operation %q", ErrInvalidChangeset, m.Op)
			}
			values := make([][]byte, len(m.Values))
			for i, v := range m.Values {
				values[i] = v
			}
			mods = append(mods, change.Modification{Op: op, Type: m.Type, Values: values})
		}
		return &change.Modify{DN: s.DN, Modifications: mods}, nil

	case "rename", "modrdn":
		return &change.Rename{DN: s.DN, NewDN: s.NewDN, DeleteOldRDN: s.DeleteOldRDN}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, s.Type)
	}
}

// Entry converts s into an entry.
func (s EntrySpec) Entry() *change.Entry {
	return &change.Entry{DN: s.DN, Attributes: attributes(s.Attributes)}
}

func attributes(specs []AttributeSpec) []change.AttributeValue {
	out := make([]change.AttributeValue, len(specs))
	for i, a := range specs {
		out[i] = change.AttributeValue{Type: a.Type, Value: a.Value}
	}
	return out
}
