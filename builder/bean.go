package builder

import (
	"structmapper/classmap"
	"structmapper/internal/match"
	"structmapper/introspect"
)

// BeanGenerator is the plain-record fallback: every writable destination
// property is paired with the readable source property of the same name.
// It always accepts and always stops the pipeline.
type BeanGenerator struct{}

func (BeanGenerator) Name() string { return "bean" }

func (BeanGenerator) Accepts(*classmap.ClassMap) bool { return true }

func (BeanGenerator) Apply(cm *classmap.ClassMap, env *Env) (bool, error) {
	srcProps := env.Oracle.Properties(cm.Src().Type)
	normalized := env.Config != nil && env.Config.NameMatching == classmap.MatchNormalized

	for _, dp := range env.Oracle.Properties(cm.Dest().Type) {
		if !dp.Writable || env.excluded(dp.Name) {
			continue
		}

		if _, ok := cm.FieldMapUsingDest(dp.Name); ok {
			continue
		}

		if _, ok := cm.FieldMapUsingSrc(dp.Name); ok {
			continue
		}

		sp, ok := findReadable(srcProps, dp.Name, normalized)
		if !ok || env.excluded(sp.Name) {
			continue
		}

		addGenericMapping(cm, env, classmap.AccessProperty, sp.Name, dp.Name)
	}

	return true, nil
}

// findReadable prefers an exact name match and falls back to identifier
// normalization when enabled.
func findReadable(props []introspect.Property, name string, normalized bool) (introspect.Property, bool) {
	for _, p := range props {
		if p.Readable && p.Name == name {
			return p, true
		}
	}

	if !normalized {
		return introspect.Property{}, false
	}

	want := match.NormalizeIdent(name)
	for _, p := range props {
		if p.Readable && match.NormalizeIdent(p.Name) == want {
			return p, true
		}
	}

	return introspect.Property{}, false
}
