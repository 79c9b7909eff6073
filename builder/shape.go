package builder

import "structmapper/classmap"

// MapGenerator maps a record onto a map-style value, one entry per property.
// It accepts when either side is map-like or declares map accessors, and it
// always stops the pipeline.
//
// When the source is map-style the destination properties are enumerated;
// otherwise the source properties are enumerated and the destination is the
// map side. The map side descriptor is SelfKeyword keyed by the property
// name and carries that side's custom accessors.
type MapGenerator struct{}

func (MapGenerator) Name() string { return "map" }

func (MapGenerator) Accepts(cm *classmap.ClassMap) bool {
	return isMapStyle(cm.Src()) || isMapStyle(cm.Dest())
}

func (MapGenerator) Apply(cm *classmap.ClassMap, env *Env) (bool, error) {
	propertySide, mapSide := cm.Src(), cm.Dest()

	destIsMap := true
	if isMapStyle(cm.Src()) {
		propertySide, mapSide = cm.Dest(), cm.Src()
		destIsMap = false
	}

	for _, p := range env.Oracle.Properties(propertySide.Type) {
		if env.excluded(p.Name) {
			continue
		}

		if destIsMap {
			if _, ok := cm.FieldMapUsingSrc(p.Name); ok {
				continue
			}
		} else if _, ok := cm.FieldMapUsingDest(p.Name); ok {
			continue
		}

		entry := classmap.Field{
			Name:         classmap.SelfKeyword,
			Key:          p.Name,
			MapGetMethod: mapSide.MapGetMethod,
			MapSetMethod: mapSide.MapSetMethod,
		}
		plain := classmap.Field{Name: p.Name}

		fm := classmap.FieldMap{Kind: classmap.KindMap, Access: classmap.AccessProperty}
		if destIsMap {
			fm.Src, fm.Dest = plain, entry
		} else {
			fm.Src, fm.Dest = entry, plain
		}

		cm.AddFieldMapping(fm)

		env.Log.Trace().Stringer("field", fm).Msg("Map entry added")
	}

	return true, nil
}

func isMapStyle(c *classmap.Class) bool {
	return c.IsMapLike() || c.HasMapAccessors()
}

// CollectionGenerator pairs two collections as whole values. It accepts only
// when both sides are collections and always stops the pipeline.
type CollectionGenerator struct{}

func (CollectionGenerator) Name() string { return "collection" }

func (CollectionGenerator) Accepts(cm *classmap.ClassMap) bool {
	return cm.Src().IsCollection() && cm.Dest().IsCollection()
}

func (CollectionGenerator) Apply(cm *classmap.ClassMap, env *Env) (bool, error) {
	if _, ok := cm.FieldMapUsingSrc(classmap.SelfKeyword); ok {
		return true, nil
	}

	fm := classmap.FieldMap{
		Src:    classmap.SelfField(),
		Dest:   classmap.SelfField(),
		Kind:   classmap.KindGeneric,
		Access: classmap.AccessSelf,
	}
	cm.AddFieldMapping(fm)

	env.Log.Trace().Stringer("field", fm).Msg("Collection pair added")

	return true, nil
}
