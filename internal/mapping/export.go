package mapping

import (
	"structmapper/classmap"
	"structmapper/options"
)

// Export renders resolved class maps back into the mapping file schema,
// in the given order. Only settings that differ from the global
// configuration are written, so a re-loaded export resolves the same way.
func Export(cms []*classmap.ClassMap) *MappingFile {
	mf := &MappingFile{Version: SchemaVersion}

	for _, cm := range cms {
		mf.TypeMappings = append(mf.TypeMappings, exportClassMap(cm))
	}

	return mf
}

// ExportMappings exports every registered class map in registration order.
func ExportMappings(m *classmap.ClassMappings) *MappingFile {
	return Export(m.All())
}

func exportClassMap(cm *classmap.ClassMap) TypeMapping {
	opts := cm.Options()

	tm := TypeMapping{
		Source:         cm.Src().Name(),
		Target:         cm.Dest().Name(),
		Wildcard:       opts.Wildcard,
		StopOnErrors:   opts.StopOnErrors,
		MapNull:        opts.MapNull,
		MapEmptyString: opts.MapEmptyString,
		DateFormat:     opts.DateFormat,
		SourceClass:    exportClass(cm.Src(), cm.Configuration()),
		TargetClass:    exportClass(cm.Dest(), cm.Configuration()),
	}

	for _, fm := range cm.FieldMaps() {
		tm.Fields = append(tm.Fields, fieldMappingOf(fm))
	}

	return tm
}

// exportClass returns nil when c carries nothing beyond the configuration.
func exportClass(c *classmap.Class, cfg *classmap.Configuration) *ClassSpec {
	spec := ClassSpec{
		MapGetMethod: c.MapGetMethod,
		MapSetMethod: c.MapSetMethod,
	}

	if c.BeanFactory != cfg.BeanFactory {
		spec.BeanFactory = c.BeanFactory
	}

	if c.MapNull.IsSet() && c.MapNull != options.FromBool(cfg.MapNull) {
		spec.MapNull = c.MapNull
	}

	if c.MapEmptyString.IsSet() && c.MapEmptyString != options.FromBool(cfg.MapEmptyString) {
		spec.MapEmptyString = c.MapEmptyString
	}

	if spec == (ClassSpec{}) {
		return nil
	}

	return &spec
}
