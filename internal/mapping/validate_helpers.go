package mapping

import (
	"fmt"
	"unicode"

	"structmapper/classmap"
	"structmapper/internal/diagnostic"
	"structmapper/internal/match"
	"structmapper/introspect"
)

const maxSuggestions = 3

// sideCodes holds the side-specific diagnostic codes.
type sideCodes struct {
	missing, invalid, notFound diagnostic.Code
}

var (
	sourceCodes = sideCodes{diagnostic.MissingSourceField, diagnostic.InvalidSourceField, diagnostic.SourceFieldNotFound}
	targetCodes = sideCodes{diagnostic.MissingTargetField, diagnostic.InvalidTargetField, diagnostic.TargetFieldNotFound}
)

// side is one end of a type mapping under validation.
type side struct {
	name   string // "source" or "target"
	oracle introspect.Oracle
	t      introspect.Type
	spec   *ClassSpec
	codes  sideCodes
}

// has reports whether the member exists, treating sides with custom map
// accessors as maps.
func (s side) has(member string) bool {
	return s.spec.hasMapAccessors() || introspect.HasMember(s.oracle, s.t, member)
}

// validateMember checks one side of a field declaration.
func validateMember(res *diagnostic.Diagnostics, tpStr string, s side, member, key string) {
	if member == "" {
		res.Report(s.codes.missing, tpStr, "", "field mapping must specify %s", s.name)
		return
	}

	if member == classmap.SelfKeyword {
		return
	}

	if key != "" {
		res.Report(diagnostic.KeyRequiresSelf, tpStr, member,
			"%s key %q is only valid on %q", s.name, key, classmap.SelfKeyword)

		return
	}

	if !isValidIdent(member) {
		res.Report(s.codes.invalid, tpStr, member, "%q is not a Go identifier", member)
		return
	}

	if !s.has(member) {
		res.Add(diagnostic.Diagnostic{
			Code:        s.codes.notFound,
			Message:     fmt.Sprintf("%s %s has no member %q", s.name, s.t, member),
			Pair:        tpStr,
			Member:      member,
			Suggestions: match.Suggest(member, introspect.Members(s.oracle, s.t), maxSuggestions),
		})
	}
}

// isValidIdent checks if a string is a valid Go identifier.
func isValidIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 {
			if !isLetter(r) {
				return false
			}
		} else if !isLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}

func isLetter(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}
