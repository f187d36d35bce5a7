// Package change models directory change records and writes them as text.
//
// # Records
//
// A Record is one of *Add, *Delete, *Modify or *Rename. DNs and values are
// byte slices; nothing in a record is assumed to be clean ASCII.
//
//	rec := &change.Modify{
//	    DN: []byte("uid=alice,ou=users,dc=example,dc=com"),
//	    Modifications: []change.Modification{
//	        {Op: change.ModifyReplace, Type: "mail", Values: [][]byte{[]byte("alice@example.com")}},
//	        {Op: change.ModifyDelete, Type: "description"},
//	    },
//	}
//
// # Serializer
//
// A Serializer renders records in the review format or in LDIF:
//
//	s := change.NewSerializer(textclass.PolicyUTF8, attrval.FormatLDIF)
//	if err := s.Write(os.Stdout, rec); err != nil {
//	    // handle error
//	}
//
// Output (LDIF):
//
//	dn: uid=alice,ou=users,dc=example,dc=com
//	changetype: modify
//	replace: mail
//	mail: alice@example.com
//	-
//	delete: description
//	-
//
// Every record is preceded by an empty line. Records are validated before
// the first byte is written; a failing writer aborts the record and the
// error wraps ErrSinkWrite.
package change
