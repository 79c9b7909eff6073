package analyze

// TypeStringer renders TypeInfo values in short Go syntax.
type TypeStringer struct{}

// NewTypeStringer creates a new TypeStringer.
func NewTypeStringer() *TypeStringer {
	return &TypeStringer{}
}

// TypeString returns a human-readable string representation of a TypeInfo.
// Named types render as their bare name; external ones keep the package path.
func (s *TypeStringer) TypeString(t *TypeInfo) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind {
	case TypeKindBasic:
		return t.GoType.String()

	case TypeKindStruct:
		if t.IsNamed() {
			return t.ID.Name
		}
		return "struct{...}"

	case TypeKindPointer:
		return "*" + s.elem(t.ElemType)

	case TypeKindSlice:
		return "[]" + s.elem(t.ElemType)

	case TypeKindArray:
		return "[...]" + s.elem(t.ElemType)

	case TypeKindMap:
		return "map[" + s.elem(t.KeyType) + "]" + s.elem(t.ElemType)

	case TypeKindAlias:
		if t.IsNamed() {
			return t.ID.Name
		}
		return s.TypeString(t.Underlying)

	case TypeKindExternal:
		if t.IsNamed() {
			return t.ID.String()
		}
		return t.GoType.String()

	default:
		if t.GoType == nil {
			return "<unknown>"
		}
		return t.GoType.String()
	}
}

func (s *TypeStringer) elem(t *TypeInfo) string {
	if t == nil {
		return "<unknown>"
	}

	return s.TypeString(t)
}
