package classmap

import (
	"slices"

	"structmapper/options"
)

// ClassMap is the set of field correspondences and options for one
// (source, destination) type pair.
//
// A ClassMap is mutated by exactly one resolution pass and is read-only
// afterwards; it is not safe for concurrent mutation. Correspondences are
// only ever appended.
type ClassMap struct {
	cfg    *Configuration
	src    *Class
	dest   *Class
	fields []FieldMap

	wildcard       options.Value
	stopOnErrors   options.Value
	mapNull        options.Value
	mapEmptyString options.Value
	dateFormat     string
}

// New creates an empty class map. A nil cfg means DefaultConfiguration.
func New(cfg *Configuration, src, dest *Class) *ClassMap {
	if cfg == nil {
		def := DefaultConfiguration()
		cfg = &def
	}

	return &ClassMap{cfg: cfg, src: src, dest: dest}
}

func (cm *ClassMap) Src() *Class  { return cm.src }
func (cm *ClassMap) Dest() *Class { return cm.dest }

// Configuration returns the global configuration the class map falls back to.
func (cm *ClassMap) Configuration() *Configuration { return cm.cfg }

// Options returns the options set on the class map itself, without
// falling back to the classes or the global configuration.
func (cm *ClassMap) Options() options.Bundle {
	return options.Bundle{
		Wildcard:       cm.wildcard,
		StopOnErrors:   cm.stopOnErrors,
		MapNull:        cm.mapNull,
		MapEmptyString: cm.mapEmptyString,
		DateFormat:     cm.dateFormat,
	}
}

// SetOptions replaces the class-map level options, as declared by an
// explicit mapping.
func (cm *ClassMap) SetOptions(b options.Bundle) {
	cm.wildcard = b.Wildcard
	cm.stopOnErrors = b.StopOnErrors
	cm.mapNull = b.MapNull
	cm.mapEmptyString = b.MapEmptyString
	cm.dateFormat = b.DateFormat
}

// ApplyOptions applies a reconciled type-level bundle. Wildcard and
// stop-on-errors are overwritten, inherited values included. Null and
// empty-string handling is pushed down to both classes. The date format is
// only replaced by a non-empty value.
func (cm *ClassMap) ApplyOptions(b options.Bundle) {
	cm.wildcard = b.Wildcard
	cm.stopOnErrors = b.StopOnErrors
	cm.mapNull = b.MapNull
	cm.mapEmptyString = b.MapEmptyString

	for _, c := range []*Class{cm.src, cm.dest} {
		if c != nil {
			c.MapNull = b.MapNull
			c.MapEmptyString = b.MapEmptyString
		}
	}

	if b.DateFormat != "" {
		cm.dateFormat = b.DateFormat
	}
}

// Wildcard reports whether the class map wants default inference.
func (cm *ClassMap) Wildcard() bool {
	return cm.wildcard.Bool(cm.cfg.Wildcard)
}

func (cm *ClassMap) StopOnErrors() bool {
	return cm.stopOnErrors.Bool(cm.cfg.StopOnErrors)
}

func (cm *ClassMap) DateFormat() string {
	if cm.dateFormat != "" {
		return cm.dateFormat
	}

	return cm.cfg.DateFormat
}

// MapNull resolves null propagation: destination class, then class map,
// then the global configuration.
func (cm *ClassMap) MapNull() bool {
	return cm.destValue(func(c *Class) options.Value { return c.MapNull }).
		Or(cm.mapNull).
		Bool(cm.cfg.MapNull)
}

func (cm *ClassMap) MapEmptyString() bool {
	return cm.destValue(func(c *Class) options.Value { return c.MapEmptyString }).
		Or(cm.mapEmptyString).
		Bool(cm.cfg.MapEmptyString)
}

func (cm *ClassMap) destValue(get func(*Class) options.Value) options.Value {
	if cm.dest == nil {
		return options.Inherited
	}

	return get(cm.dest)
}

// FieldMaps returns a copy of the correspondences in insertion order.
func (cm *ClassMap) FieldMaps() []FieldMap {
	return slices.Clone(cm.fields)
}

// Len returns the number of correspondences.
func (cm *ClassMap) Len() int {
	return len(cm.fields)
}

// FieldMapUsingSrc finds the correspondence whose source side refers to name.
func (cm *ClassMap) FieldMapUsingSrc(name string) (FieldMap, bool) {
	for _, fm := range cm.fields {
		if fm.Src.Matches(name) {
			return fm, true
		}
	}

	return FieldMap{}, false
}

// FieldMapUsingDest finds the correspondence whose destination side refers
// to name.
func (cm *ClassMap) FieldMapUsingDest(name string) (FieldMap, bool) {
	for _, fm := range cm.fields {
		if fm.Dest.Matches(name) {
			return fm, true
		}
	}

	return FieldMap{}, false
}

// AddFieldMapping appends a correspondence. Callers check for existing
// correspondences first.
func (cm *ClassMap) AddFieldMapping(fm FieldMap) {
	cm.fields = append(cm.fields, fm)
}

func (cm *ClassMap) String() string {
	return cm.src.Name() + "->" + cm.dest.Name()
}
