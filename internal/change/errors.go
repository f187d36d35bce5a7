package change

import (
	"errors"
	"fmt"

	"github.com/KilimcininKorOglu/obavi/internal/dn"
)

// Serializer errors.
var (
	// ErrSinkWrite wraps errors returned by the output writer.
	ErrSinkWrite = errors.New("change: write to output failed")
	// ErrMalformedRecord is returned for records that violate the record
	// invariants. Nothing is written for such a record.
	ErrMalformedRecord = errors.New("change: malformed record")
)

func sinkError(err error) error {
	return fmt.Errorf("%w: %w", ErrSinkWrite, err)
}

func malformed(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformedRecord, fmt.Sprintf(format, args...))
}

// Validate checks rec against the record invariants.
func Validate(rec Record) error {
	switch r := rec.(type) {
	case *Add:
		if r == nil {
			return malformed("nil add record")
		}
	case *Delete:
		if r == nil {
			return malformed("nil delete record")
		}
	case *Modify:
		if r == nil {
			return malformed("nil modify record")
		}
		for i, mod := range r.Modifications {
			if err := validateModification(mod); err != nil {
				return fmt.Errorf("%w (modification %d)", err, i)
			}
		}
	case *Rename:
		if r == nil {
			return malformed("nil rename record")
		}
		if _, _, err := dn.Decompose(r.NewDN); err != nil {
			return fmt.Errorf("%w: new DN %q: %w", ErrMalformedRecord, r.NewDN, err)
		}
	case nil:
		return malformed("nil record")
	default:
		return malformed("unsupported record type %T", rec)
	}
	return nil
}

func validateModification(mod Modification) error {
	switch mod.Op {
	case ModifyAdd, ModifyReplace:
		if len(mod.Values) == 0 {
			return malformed("%s of %q without values", mod.Op, mod.Type)
		}
	case ModifyDelete:
	default:
		return malformed("invalid modify operation %d", int(mod.Op))
	}
	return nil
}
