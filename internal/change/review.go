package change

// writeReview writes rec in the review format. Every header and value line
// is a keyword or attribute type followed by an encoded value.
func writeReview(lw *lineWriter, rec Record) error {
	if err := lw.blank(); err != nil {
		return err
	}

	switch r := rec.(type) {
	case *Add:
		if err := lw.value("add", r.DN); err != nil {
			return err
		}
		return writeAttributes(lw, r.Attributes)

	case *Delete:
		return lw.value("delete", r.DN)

	case *Modify:
		if err := lw.value("modify", r.DN); err != nil {
			return err
		}
		for _, mod := range r.Modifications {
			if err := lw.value(mod.Op.String(), []byte(mod.Type)); err != nil {
				return err
			}
			for _, v := range mod.Values {
				if err := lw.value("", v); err != nil {
					return err
				}
			}
		}
		return nil

	case *Rename:
		if err := lw.value("rename", r.DN); err != nil {
			return err
		}
		keyword := "add"
		if r.DeleteOldRDN {
			keyword = "replace"
		}
		return lw.value(keyword, r.NewDN)
	}

	return nil
}

// writeReviewEntry writes "<key> <dn>" followed by the attribute lines.
func writeReviewEntry(lw *lineWriter, key string, entry *Entry) error {
	if key == "" {
		key = "entry"
	}

	if err := lw.blank(); err != nil {
		return err
	}
	lw.line = append(lw.line[:0], key...)
	lw.line = append(lw.line, ' ')
	lw.line = append(lw.line, entry.DN...)
	lw.line = append(lw.line, '\n')
	if err := lw.flush(); err != nil {
		return err
	}
	return writeAttributes(lw, entry.Attributes)
}
