package builder

import (
	"errors"

	"structmapper/classmap"
	"structmapper/introspect"
	"structmapper/options"
)

// PropertyDirectiveGenerator honors directives attached to readable
// properties on either side. It never stops the pipeline.
type PropertyDirectiveGenerator struct{}

func (PropertyDirectiveGenerator) Name() string { return "property-directives" }

func (PropertyDirectiveGenerator) Accepts(*classmap.ClassMap) bool { return true }

func (PropertyDirectiveGenerator) Apply(cm *classmap.ClassMap, env *Env) (bool, error) {
	var errs []error

	src, dest := cm.Src(), cm.Dest()

	for _, p := range env.Oracle.Properties(src.Type) {
		if !p.Readable {
			continue
		}

		d, ok := env.Directives.PropertyDirective(src.Type, p)
		if !ok {
			continue
		}

		pair := d.Pair(p.Name)

		required, err := env.requireMapping(d, src, dest, p.Name, pair)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if required {
			addGenericMapping(cm, env, classmap.AccessProperty, p.Name, pair)
		}
	}

	for _, p := range env.Oracle.Properties(dest.Type) {
		if !p.Readable {
			continue
		}

		d, ok := env.Directives.PropertyDirective(dest.Type, p)
		if !ok {
			continue
		}

		pair := d.Pair(p.Name)

		required, err := env.requireMapping(d, dest, src, p.Name, pair)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if required {
			addGenericMapping(cm, env, classmap.AccessProperty, pair, p.Name)
		}
	}

	return false, errors.Join(errs...)
}

// FieldDirectiveGenerator honors directives attached to declared fields of
// each side and of its embedded ancestors. It never stops the pipeline.
type FieldDirectiveGenerator struct{}

func (FieldDirectiveGenerator) Name() string { return "field-directives" }

func (FieldDirectiveGenerator) Accepts(*classmap.ClassMap) bool { return true }

func (FieldDirectiveGenerator) Apply(cm *classmap.ClassMap, env *Env) (bool, error) {
	var errs []error

	src, dest := cm.Src(), cm.Dest()

	walkDeclared(env, src.Type, func(owner introspect.Type, f introspect.Field) {
		d, ok := env.Directives.FieldDirective(owner, f)
		if !ok {
			return
		}

		pair := d.Pair(f.Name)

		required, err := env.requireMapping(d, src, dest, f.Name, pair)
		if err != nil {
			errs = append(errs, err)
			return
		}

		if required {
			addGenericMapping(cm, env, classmap.AccessField, f.Name, pair)
		}
	})

	walkDeclared(env, dest.Type, func(owner introspect.Type, f introspect.Field) {
		d, ok := env.Directives.FieldDirective(owner, f)
		if !ok {
			return
		}

		pair := d.Pair(f.Name)

		required, err := env.requireMapping(d, dest, src, f.Name, pair)
		if err != nil {
			errs = append(errs, err)
			return
		}

		if required {
			addGenericMapping(cm, env, classmap.AccessField, pair, f.Name)
		}
	})

	return false, errors.Join(errs...)
}

// walkDeclared visits the fields declared on t, then on each embedded
// ancestor, nearest first.
func walkDeclared(env *Env, t introspect.Type, visit func(introspect.Type, introspect.Field)) {
	types := append([]introspect.Type{t}, env.Oracle.Ancestors(t)...)
	for _, owner := range types {
		for _, f := range env.Oracle.DeclaredFields(owner) {
			visit(owner, f)
		}
	}
}

// TypeOptionsGenerator reconciles the option bundles declared on both types
// and applies the result to the class map. It adds no correspondences and
// never stops the pipeline.
type TypeOptionsGenerator struct{}

func (TypeOptionsGenerator) Name() string { return "type-options" }

func (TypeOptionsGenerator) Accepts(*classmap.ClassMap) bool { return true }

func (TypeOptionsGenerator) Apply(cm *classmap.ClassMap, env *Env) (bool, error) {
	src, dest := cm.Src(), cm.Dest()

	srcOpts, err := env.Directives.TypeOptions(src.Type)
	if err != nil {
		return false, err
	}

	destOpts, err := env.Directives.TypeOptions(dest.Type)
	if err != nil {
		return false, err
	}

	bundle := options.Reconcile(srcOpts, destOpts, func(c options.Conflict) {
		env.Log.Warn().
			Str("option", c.Option).
			Str("src_type", src.Name()).
			Str("dest_type", dest.Name()).
			Str("src_value", c.Src).
			Str("dest_value", c.Dest).
			Msg("Conflicting type options, destination wins")
	})
	if bundle == nil {
		return false, nil
	}

	cm.ApplyOptions(*bundle)

	env.Log.Debug().Str("options", bundle.String()).Msg("Type options applied")

	return false, nil
}
