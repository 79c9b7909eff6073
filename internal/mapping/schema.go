package mapping

import (
	"fmt"

	"structmapper/classmap"
	"structmapper/options"
)

// SchemaVersion is the only mapping file version understood.
const SchemaVersion = "1"

// MappingFile represents the root of a YAML mapping definition file.
// It declares class maps explicitly; whatever it leaves open is inferred
// by the builder when wildcard is on.
type MappingFile struct {
	// Version of the mapping schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// TypeMappings is a list of type pair mappings.
	TypeMappings []TypeMapping `yaml:"mappings"`
}

// TypeMapping declares the class map of one source type to one target type.
type TypeMapping struct {
	// Source type identifier (e.g., "store.Order" or full path).
	Source string `yaml:"source"`

	// Target type identifier (e.g., "warehouse.Order" or full path).
	Target string `yaml:"target"`

	// Class-map level options. Unset options inherit the global configuration.
	Wildcard       options.Value `yaml:"wildcard,omitempty"`
	StopOnErrors   options.Value `yaml:"stop-on-errors,omitempty"`
	MapNull        options.Value `yaml:"map-null,omitempty"`
	MapEmptyString options.Value `yaml:"map-empty-string,omitempty"`
	DateFormat     string        `yaml:"date-format,omitempty"`

	// BeanFactory is the default factory for both classes.
	BeanFactory string `yaml:"bean-factory,omitempty"`

	// SourceClass and TargetClass override per-side settings.
	SourceClass *ClassSpec `yaml:"source-class,omitempty"`
	TargetClass *ClassSpec `yaml:"target-class,omitempty"`

	// OneToOne is a simplified mapping syntax where keys are source fields
	// and values are target fields. Entries come before Fields.
	// Example: { "OrderID": "ID", "CustomerName": "Customer" }
	OneToOne OneToOne `yaml:"121,omitempty"`

	// Fields defines explicit field mappings with full control.
	Fields []FieldMapping `yaml:"fields,omitempty"`

	// Exclude lists members, present under the same name on both sides,
	// that must never be mapped.
	Exclude StringArray `yaml:"exclude,omitempty"`
}

// Pair returns the "source->target" label used in diagnostics.
func (tm *TypeMapping) Pair() string {
	return tm.Source + "->" + tm.Target
}

// Options returns the class-map level option bundle.
func (tm *TypeMapping) Options() options.Bundle {
	return options.Bundle{
		Wildcard:       tm.Wildcard,
		StopOnErrors:   tm.StopOnErrors,
		MapNull:        tm.MapNull,
		MapEmptyString: tm.MapEmptyString,
		DateFormat:     tm.DateFormat,
	}
}

// ClassSpec holds per-side class settings.
type ClassSpec struct {
	MapGetMethod   string        `yaml:"map-get-method,omitempty"`
	MapSetMethod   string        `yaml:"map-set-method,omitempty"`
	BeanFactory    string        `yaml:"bean-factory,omitempty"`
	MapNull        options.Value `yaml:"map-null,omitempty"`
	MapEmptyString options.Value `yaml:"map-empty-string,omitempty"`
}

// apply overlays the concrete settings of s onto c.
func (s *ClassSpec) apply(c *classmap.Class) {
	if s == nil {
		return
	}

	if s.MapGetMethod != "" {
		c.MapGetMethod = s.MapGetMethod
	}

	if s.MapSetMethod != "" {
		c.MapSetMethod = s.MapSetMethod
	}

	if s.BeanFactory != "" {
		c.BeanFactory = s.BeanFactory
	}

	c.MapNull = s.MapNull.Or(c.MapNull)
	c.MapEmptyString = s.MapEmptyString.Or(c.MapEmptyString)
}

// hasMapAccessors mirrors classmap.Class.HasMapAccessors for a ClassSpec that
// has not been applied yet.
func (s *ClassSpec) hasMapAccessors() bool {
	return s != nil && (s.MapGetMethod != "" || s.MapSetMethod != "")
}

// FieldMapping declares one field correspondence.
//
// A side named "this" refers to the whole value; with a key it refers to
// one entry of a map-style value.
type FieldMapping struct {
	Source    string `yaml:"source"`
	Target    string `yaml:"target"`
	SourceKey string `yaml:"source-key,omitempty"`
	TargetKey string `yaml:"target-key,omitempty"`

	// Access is "property" (default), "field" or "self".
	Access string `yaml:"access,omitempty"`

	// Excluded pins the pair as never mapped.
	Excluded bool `yaml:"excluded,omitempty"`
}

// FieldMap converts the declaration to a correspondence.
func (fm FieldMapping) FieldMap() (classmap.FieldMap, error) {
	access, ok := classmap.ParseAccess(fm.Access)
	if !ok {
		return classmap.FieldMap{}, fmt.Errorf("invalid access %q for %s -> %s", fm.Access, fm.Source, fm.Target)
	}

	kind := classmap.KindGeneric
	if fm.SourceKey != "" || fm.TargetKey != "" {
		kind = classmap.KindMap
	}

	return classmap.FieldMap{
		Src:      classmap.Field{Name: fm.Source, Key: fm.SourceKey},
		Dest:     classmap.Field{Name: fm.Target, Key: fm.TargetKey},
		Kind:     kind,
		Access:   access,
		Excluded: fm.Excluded,
	}, nil
}

// fieldMappingOf is the inverse of FieldMapping.FieldMap. The default
// access is left out.
func fieldMappingOf(fm classmap.FieldMap) FieldMapping {
	out := FieldMapping{
		Source:    fm.Src.Name,
		Target:    fm.Dest.Name,
		SourceKey: fm.Src.Key,
		TargetKey: fm.Dest.Key,
		Excluded:  fm.Excluded,
	}

	if fm.Access != classmap.AccessProperty {
		out.Access = fm.Access.String()
	}

	return out
}

// NamePair is one entry of the 121 shorthand.
type NamePair struct {
	Source string
	Target string
}
