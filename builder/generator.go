package builder

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"structmapper/classmap"
	"structmapper/introspect"
)

// ErrMissingCounterpart is returned when a non-optional directive names a
// member that does not exist on the other side of the pair.
var ErrMissingCounterpart = errors.New("required counterpart field missing")

// Generator is one stage of a resolution pipeline.
type Generator interface {
	// Name identifies the generator in logs and errors.
	Name() string
	// Accepts is a pure predicate over the class map.
	Accepts(cm *classmap.ClassMap) bool
	// Apply adds correspondences and reports whether the pipeline stops.
	Apply(cm *classmap.ClassMap, env *Env) (terminal bool, err error)
}

// Env is what generators may consult while applying.
type Env struct {
	Config     *classmap.Configuration
	Oracle     introspect.Oracle
	Directives introspect.DirectiveSource
	Exclude    introspect.Exclusion
	Log        zerolog.Logger
}

func (e *Env) excluded(name string) bool {
	if e.Exclude == nil {
		return introspect.DefaultExclusion(name)
	}

	return e.Exclude(name)
}

// hasMember reports whether name exists on c. Every name exists on a
// map-style class.
func (e *Env) hasMember(c *classmap.Class, name string) bool {
	if c.IsMapLike() || c.HasMapAccessors() {
		return true
	}

	return introspect.HasMember(e.Oracle, c.Type, name)
}

// requireMapping decides whether a directive on member of owner should
// produce a correspondence with pair on the counterpart class.
func (e *Env) requireMapping(
	d introspect.Directive,
	owner, counterpart *classmap.Class,
	member, pair string,
) (bool, error) {
	if e.hasMember(counterpart, pair) {
		return true, nil
	}

	if d.Optional {
		e.Log.Trace().
			Str("member", owner.Name()+"."+member).
			Str("counterpart", counterpart.Name()+"."+pair).
			Msg("Optional counterpart missing, skipping")

		return false, nil
	}

	return false, fmt.Errorf("%w: %s.%s pairs with %s.%s",
		ErrMissingCounterpart, owner.Name(), member, counterpart.Name(), pair)
}

// addGenericMapping appends a plain correspondence unless either name is
// already mapped on its side.
func addGenericMapping(
	cm *classmap.ClassMap,
	env *Env,
	access classmap.Access,
	srcName, destName string,
) bool {
	if _, ok := cm.FieldMapUsingSrc(srcName); ok {
		return false
	}

	if _, ok := cm.FieldMapUsingDest(destName); ok {
		return false
	}

	fm := classmap.FieldMap{
		Src:    classmap.Field{Name: srcName},
		Dest:   classmap.Field{Name: destName},
		Kind:   classmap.KindGeneric,
		Access: access,
	}
	cm.AddFieldMapping(fm)

	env.Log.Trace().Stringer("field", fm).Stringer("access", access).Msg("Correspondence added")

	return true
}
