package classmap

import (
	"structmapper/introspect"
	"structmapper/options"
)

// Class describes one side of a class map.
type Class struct {
	Type         introspect.Type
	Shape        introspect.Shape
	BeanFactory  string
	MapGetMethod string
	MapSetMethod string

	MapNull        options.Value
	MapEmptyString options.Value
}

// Name returns the type name, or "<nil>" for a class without a type.
func (c *Class) Name() string {
	if c == nil || c.Type == nil {
		return "<nil>"
	}

	return c.Type.String()
}

func (c *Class) IsMapLike() bool {
	return c.Shape == introspect.ShapeMap
}

func (c *Class) IsCollection() bool {
	return c.Shape == introspect.ShapeCollection
}

// HasMapAccessors reports whether custom map-style get/set methods are
// declared for this side.
func (c *Class) HasMapAccessors() bool {
	return c.MapGetMethod != "" || c.MapSetMethod != ""
}
