package classmap

// SelfKeyword is the field name meaning "the whole value". Map-style
// descriptors pair it with a Key naming the logical entry.
const SelfKeyword = "this"

// Field describes one endpoint of a correspondence.
type Field struct {
	Name         string
	Key          string // logical entry name when Name is SelfKeyword
	MapGetMethod string
	MapSetMethod string
}

// SelfField returns a whole-value descriptor.
func SelfField() Field {
	return Field{Name: SelfKeyword}
}

// IsSelf reports whether the descriptor refers to the whole value.
func (f Field) IsSelf() bool {
	return f.Name == SelfKeyword
}

// Matches reports whether the descriptor refers to name, either directly or
// as the key of a map-style descriptor.
func (f Field) Matches(name string) bool {
	if f.Name == name {
		return true
	}

	return f.IsSelf() && f.Key != "" && f.Key == name
}

func (f Field) String() string {
	if f.IsSelf() && f.Key != "" {
		return f.Name + "[" + f.Key + "]"
	}

	return f.Name
}

// FieldMapKind distinguishes plain correspondences from map-style ones.
type FieldMapKind int

const (
	KindGeneric FieldMapKind = iota
	KindMap
)

func (k FieldMapKind) String() string {
	switch k {
	case KindGeneric:
		return "generic"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Access tells the copier how to reach the members of a correspondence.
type Access int

const (
	AccessProperty Access = iota // exported field or getter/setter
	AccessField                  // declared field, exported or not
	AccessSelf                   // the value itself
)

func (a Access) String() string {
	switch a {
	case AccessProperty:
		return "property"
	case AccessField:
		return "field"
	case AccessSelf:
		return "self"
	default:
		return "unknown"
	}
}

// ParseAccess is the inverse of Access.String. The empty string is
// AccessProperty.
func ParseAccess(s string) (Access, bool) {
	switch s {
	case "", "property":
		return AccessProperty, true
	case "field":
		return AccessField, true
	case "self":
		return AccessSelf, true
	default:
		return AccessProperty, false
	}
}

// FieldMap is one resolved correspondence between a source and a
// destination member.
type FieldMap struct {
	Src    Field
	Dest   Field
	Kind   FieldMapKind
	Access Access
	// Excluded entries are never copied. They still count as mapped, so no
	// generator fills them in.
	Excluded bool
}

func (fm FieldMap) String() string {
	s := fm.Src.String() + " -> " + fm.Dest.String()
	if fm.Excluded {
		s += " (excluded)"
	}

	return s
}
