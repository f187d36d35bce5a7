package change

// Kind identifies the type of a change record.
type Kind int

const (
	// KindAdd creates an entry.
	KindAdd Kind = iota
	// KindDelete removes an entry.
	KindDelete
	// KindModify changes attributes of an entry.
	KindModify
	// KindRename moves or renames an entry.
	KindRename
)

// String returns the keyword used for the kind in the review format.
func (k Kind) String() string {
	switch k {
	case KindAdd:
		return "add"
	case KindDelete:
		return "delete"
	case KindModify:
		return "modify"
	case KindRename:
		return "rename"
	default:
		return "unknown"
	}
}

// changeType returns the LDIF changetype keyword for the kind.
func (k Kind) changeType() string {
	if k == KindRename {
		return "modrdn"
	}
	return k.String()
}

// ModifyOp is the operation of a single modification.
type ModifyOp int

const (
	// ModifyAdd adds values to an attribute.
	ModifyAdd ModifyOp = iota
	// ModifyDelete deletes values, or the whole attribute when no values
	// are given.
	ModifyDelete
	// ModifyReplace replaces all values of an attribute.
	ModifyReplace
)

// String returns the keyword of the operation.
func (m ModifyOp) String() string {
	switch m {
	case ModifyAdd:
		return "add"
	case ModifyDelete:
		return "delete"
	case ModifyReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// ParseModifyOp parses an operation keyword.
func ParseModifyOp(s string) (ModifyOp, bool) {
	switch s {
	case "add":
		return ModifyAdd, true
	case "delete":
		return ModifyDelete, true
	case "replace":
		return ModifyReplace, true
	default:
		return 0, false
	}
}

// AttributeValue is one value of an attribute.
type AttributeValue struct {
	Type  string
	Value []byte
}

// Modification is one directive of a Modify record.
type Modification struct {
	Op     ModifyOp
	Type   string
	Values [][]byte
}

// Record is a change record. The concrete types are *Add, *Delete,
// *Modify and *Rename.
type Record interface {
	Kind() Kind
	isRecord()
}

// Add creates the entry DN with the given attribute values, in order.
type Add struct {
	DN         []byte
	Attributes []AttributeValue
}

// Delete removes the entry DN.
type Delete struct {
	DN []byte
}

// Modify applies Modifications, in order, to the entry DN.
type Modify struct {
	DN            []byte
	Modifications []Modification
}

// Rename moves the entry DN to NewDN. DeleteOldRDN removes the values of
// the old RDN from the entry.
type Rename struct {
	DN           []byte
	NewDN        []byte
	DeleteOldRDN bool
}

// Kind returns KindAdd.
func (*Add) Kind() Kind { return KindAdd }

// Kind returns KindDelete.
func (*Delete) Kind() Kind { return KindDelete }

// Kind returns KindModify.
func (*Modify) Kind() Kind { return KindModify }

// Kind returns KindRename.
func (*Rename) Kind() Kind { return KindRename }

func (*Add) isRecord()    {}
func (*Delete) isRecord() {}
func (*Modify) isRecord() {}
func (*Rename) isRecord() {}

// Entry is a directory entry shown in full rather than as a change.
type Entry struct {
	DN         []byte
	Attributes []AttributeValue
}

// AddAttributeValue appends a value for attrType.
func (e *Entry) AddAttributeValue(attrType string, value []byte) {
	e.Attributes = append(e.Attributes, AttributeValue{Type: attrType, Value: value})
}
