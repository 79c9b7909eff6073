package introspect

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Method summarizes an exported method signature, receiver excluded.
type Method struct {
	Name    string
	Params  int
	Results int
	// ReturnsBool is set when the only result is a boolean.
	ReturnsBool bool
}

// MergeAccessors adds the properties backed by accessor methods to props.
// GetX() and IsX() bool are readers and SetX(v) a writer; a bare X()
// counts as a reader only when SetX exists. Properties already in props gain the accessor's
// capabilities; new ones are appended in method order.
func MergeAccessors(props []Property, methods []Method) []Property {
	index := make(map[string]int, len(props))
	for i, p := range props {
		index[p.Name] = i
	}

	type accessors struct{ get, set, bare bool }

	found := make(map[string]*accessors)

	var order []string

	touch := func(name string) *accessors {
		a, ok := found[name]
		if !ok {
			a = &accessors{}
			found[name] = a
			order = append(order, name)
		}

		return a
	}

	for _, m := range methods {
		switch {
		case accessorName(m.Name, "Get") != "" && m.Params == 0 && m.Results == 1:
			touch(accessorName(m.Name, "Get")).get = true
		case accessorName(m.Name, "Is") != "" && m.Params == 0 && m.Results == 1 && m.ReturnsBool:
			touch(accessorName(m.Name, "Is")).get = true
		case accessorName(m.Name, "Set") != "" && m.Params == 1 && m.Results == 0:
			touch(accessorName(m.Name, "Set")).set = true
		case m.Params == 0 && m.Results == 1:
			touch(m.Name).bare = true
		}
	}

	for _, name := range order {
		a := found[name]
		readable := a.get || (a.bare && a.set)

		if !readable && !a.set {
			continue
		}

		if i, ok := index[name]; ok {
			props[i].Readable = props[i].Readable || readable
			props[i].Writable = props[i].Writable || a.set

			continue
		}

		index[name] = len(props)
		props = append(props, Property{Name: name, Readable: readable, Writable: a.set})
	}

	return props
}

// GetterNames returns the method names that may read property name, in
// lookup order.
func GetterNames(name string) []string {
	return []string{"Get" + name, "Is" + name, name}
}

// accessorName strips prefix from a method name such as GetName, returning
// "" when the remainder is not an exported identifier.
func accessorName(method, prefix string) string {
	rest, ok := strings.CutPrefix(method, prefix)
	if !ok || rest == "" {
		return ""
	}

	if r, _ := utf8.DecodeRuneInString(rest); !unicode.IsUpper(r) {
		return ""
	}

	return rest
}
