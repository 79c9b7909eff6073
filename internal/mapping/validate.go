package mapping

import (
	"structmapper/classmap"
	"structmapper/internal/diagnostic"
	"structmapper/introspect"
	"structmapper/options"
)

// Validate validates a mapping definition against the types the resolver
// knows. This is a structural validation step only: type references must
// resolve, pairs must be unique and every named member must exist.
func Validate(mf *MappingFile, resolver Resolver, oracle introspect.Oracle) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if mf == nil {
		res.Report(diagnostic.MappingIsNil, "", "", "mapping file is nil")
		return res
	}

	if resolver == nil || oracle == nil {
		res.Report(diagnostic.ResolverIsNil, "", "", "type resolver and oracle are required")
		return res
	}

	if mf.Version != "" && mf.Version != SchemaVersion {
		res.Report(diagnostic.UnsupportedVersion, "", "", "unsupported schema version %q", mf.Version)
	}

	seenPairs := map[[2]introspect.Type]string{}

	for i := range mf.TypeMappings {
		tm := &mf.TypeMappings[i]
		tpStr := tm.Pair()

		srcT, ok := resolver.ResolveType(tm.Source)
		if !ok {
			res.Report(diagnostic.SourceTypeNotFound, tpStr, tm.Source, "source type %q not found", tm.Source)
			continue
		}

		dstT, ok := resolver.ResolveType(tm.Target)
		if !ok {
			res.Report(diagnostic.TargetTypeNotFound, tpStr, tm.Target, "target type %q not found", tm.Target)
			continue
		}

		key := [2]introspect.Type{srcT, dstT}
		if prev, dup := seenPairs[key]; dup {
			res.Report(diagnostic.DuplicateMapping, tpStr, "", "pair already declared as %s", prev)
			continue
		}

		seenPairs[key] = tpStr

		src := side{name: "source", oracle: oracle, t: srcT, spec: tm.SourceClass, codes: sourceCodes}
		dst := side{name: "target", oracle: oracle, t: dstT, spec: tm.TargetClass, codes: targetCodes}

		validateFields(res, tpStr, src, dst, tm)
		validateExcludes(res, tpStr, src, dst, tm)
		noteWildcard(res, tpStr, tm)
	}

	return res
}

// validateFields checks the 121 shorthand and the explicit field list.
func validateFields(res *diagnostic.Diagnostics, tpStr string, src, dst side, tm *TypeMapping) {
	seenTargets := map[string]bool{}

	for _, p := range tm.OneToOne {
		validateMember(res, tpStr, src, p.Source, "")
		validateMember(res, tpStr, dst, p.Target, "")
		checkDuplicateTarget(res, tpStr, seenTargets, p.Target, "")
	}

	for _, fm := range tm.Fields {
		validateMember(res, tpStr, src, fm.Source, fm.SourceKey)
		validateMember(res, tpStr, dst, fm.Target, fm.TargetKey)

		if _, ok := classmap.ParseAccess(fm.Access); !ok {
			res.Report(diagnostic.InvalidAccess, tpStr, fm.Source, "invalid access %q", fm.Access)
		}

		if !fm.Excluded {
			checkDuplicateTarget(res, tpStr, seenTargets, fm.Target, fm.TargetKey)
		}
	}
}

func checkDuplicateTarget(res *diagnostic.Diagnostics, tpStr string, seen map[string]bool, name, key string) {
	if name == "" {
		return
	}

	path := classmap.Field{Name: name, Key: key}.String()

	if seen[path] {
		res.Report(diagnostic.DuplicateTarget, tpStr, path, "target is mapped more than once, first declaration wins")
		return
	}

	seen[path] = true
}

// validateExcludes warns about excluded names neither side has.
func validateExcludes(res *diagnostic.Diagnostics, tpStr string, src, dst side, tm *TypeMapping) {
	for _, name := range tm.Exclude {
		if !src.has(name) && !dst.has(name) {
			res.Report(diagnostic.UnknownExclude, tpStr, name, "excluded member %q exists on neither side", name)
		}
	}
}

// noteWildcard reports how the undeclared fields of a pair will be treated.
func noteWildcard(res *diagnostic.Diagnostics, tpStr string, tm *TypeMapping) {
	declared := len(tm.OneToOne) > 0 || len(tm.Fields) > 0

	switch {
	case tm.Wildcard == options.False && !declared:
		res.Report(diagnostic.WildcardDisabled, tpStr, "", "wildcard is off and no field is declared, nothing will be copied")
	case tm.Wildcard == options.False:
		res.Report(diagnostic.WildcardDisabled, tpStr, "", "wildcard is off, only declared fields are copied")
	case !declared:
		res.Report(diagnostic.InferredOnly, tpStr, "", "no field is declared, every field is matched by name")
	}
}
