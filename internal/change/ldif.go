package change

import (
	"github.com/KilimcininKorOglu/obavi/internal/dn"
)

// writeLDIF writes rec as an RFC 2849 change record.
func writeLDIF(lw *lineWriter, rec Record) error {
	if err := lw.blank(); err != nil {
		return err
	}

	switch r := rec.(type) {
	case *Add:
		if err := writeLDIFHeader(lw, r.DN, KindAdd); err != nil {
			return err
		}
		return writeAttributes(lw, r.Attributes)

	case *Delete:
		return writeLDIFHeader(lw, r.DN, KindDelete)

	case *Modify:
		if err := writeLDIFHeader(lw, r.DN, KindModify); err != nil {
			return err
		}
		for _, mod := range r.Modifications {
			if err := lw.text(mod.Op.String() + ": " + mod.Type); err != nil {
				return err
			}
			for _, v := range mod.Values {
				if err := lw.value(mod.Type, v); err != nil {
					return err
				}
			}
			if err := lw.text("-"); err != nil {
				return err
			}
		}
		return nil

	case *Rename:
		// Validate has already checked that NewDN decomposes.
		rdn, superior, err := dn.Decompose(r.NewDN)
		if err != nil {
			return err
		}
		if err := writeLDIFHeader(lw, r.DN, KindRename); err != nil {
			return err
		}
		if err := lw.value("newrdn", rdn); err != nil {
			return err
		}
		deleteOld := "deleteoldrdn: 0"
		if r.DeleteOldRDN {
			deleteOld = "deleteoldrdn: 1"
		}
		if err := lw.text(deleteOld); err != nil {
			return err
		}
		return lw.value("newsuperior", superior)
	}

	return nil
}

func writeLDIFHeader(lw *lineWriter, entryDN []byte, kind Kind) error {
	if err := lw.value("dn", entryDN); err != nil {
		return err
	}
	return lw.text("changetype: " + kind.changeType())
}

// writeLDIFEntry writes entry as a content record.
func writeLDIFEntry(lw *lineWriter, entry *Entry) error {
	if err := lw.blank(); err != nil {
		return err
	}
	if err := lw.value("dn", entry.DN); err != nil {
		return err
	}
	return writeAttributes(lw, entry.Attributes)
}
