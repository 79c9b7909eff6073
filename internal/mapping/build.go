package mapping

import (
	"errors"
	"fmt"

	"structmapper/builder"
	"structmapper/classmap"
)

// ErrUnknownType is returned when a type reference does not resolve.
var ErrUnknownType = errors.New("unknown type")

// Build turns the declared type mappings into explicit class maps. Classes
// are seeded by b from the global configuration, then overridden by the
// mapping and its class specs. Declared correspondences keep file order,
// 121 entries first and excludes last. Nothing is inferred here; run
// b.AddDefaultFieldMappings on the result for that.
//
// Every type mapping is processed; failures are joined.
func Build(mf *MappingFile, resolver Resolver, b *builder.Builder) (*classmap.ClassMappings, error) {
	mappings := classmap.NewClassMappings()
	if mf == nil {
		return mappings, nil
	}

	var errs []error

	for i := range mf.TypeMappings {
		cm, err := buildClassMap(&mf.TypeMappings[i], resolver, b)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if err := mappings.Add(cm); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return mappings, nil
}

func buildClassMap(tm *TypeMapping, resolver Resolver, b *builder.Builder) (*classmap.ClassMap, error) {
	srcT, ok := resolver.ResolveType(tm.Source)
	if !ok {
		return nil, fmt.Errorf("mapping %s: %w %q", tm.Pair(), ErrUnknownType, tm.Source)
	}

	dstT, ok := resolver.ResolveType(tm.Target)
	if !ok {
		return nil, fmt.Errorf("mapping %s: %w %q", tm.Pair(), ErrUnknownType, tm.Target)
	}

	src, dst := b.NewClass(srcT), b.NewClass(dstT)

	for _, pair := range []struct {
		class *classmap.Class
		spec  *ClassSpec
	}{{src, tm.SourceClass}, {dst, tm.TargetClass}} {
		if tm.BeanFactory != "" {
			pair.class.BeanFactory = tm.BeanFactory
		}

		pair.spec.apply(pair.class)
	}

	cm := classmap.New(b.Configuration(), src, dst)
	cm.SetOptions(tm.Options())

	for _, f := range fieldsOf(tm) {
		fm, err := f.FieldMap()
		if err != nil {
			return nil, fmt.Errorf("mapping %s: %w", tm.Pair(), err)
		}

		if _, dup := cm.FieldMapUsingDest(f.Target); dup && !fm.Excluded && !fm.Dest.IsSelf() {
			continue
		}

		cm.AddFieldMapping(fm)
	}

	return cm, nil
}
