package diagnostic

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"structmapper/internal/common"
)

// Severity ranks a diagnostic. Only errors make a mapping file unusable.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Code identifies a kind of finding. Every code has a fixed severity.
type Code string

const (
	MappingIsNil        Code = "mapping_is_nil"
	ResolverIsNil       Code = "resolver_is_nil"
	UnsupportedVersion  Code = "unsupported_version"
	SourceTypeNotFound  Code = "source_type_not_found"
	TargetTypeNotFound  Code = "target_type_not_found"
	DuplicateMapping    Code = "duplicate_mapping"
	InvalidAccess       Code = "invalid_access"
	KeyRequiresSelf     Code = "key_requires_self"
	MissingSourceField  Code = "missing_source_field"
	MissingTargetField  Code = "missing_target_field"
	InvalidSourceField  Code = "invalid_source_field"
	InvalidTargetField  Code = "invalid_target_field"
	SourceFieldNotFound Code = "source_field_not_found"
	TargetFieldNotFound Code = "target_field_not_found"

	DuplicateTarget Code = "duplicate_target"
	UnknownExclude  Code = "unknown_exclude"

	WildcardDisabled Code = "wildcard_disabled"
	InferredOnly     Code = "inferred_only"
)

var severities = map[Code]Severity{
	DuplicateTarget:  Warning,
	UnknownExclude:   Warning,
	WildcardDisabled: Info,
	InferredOnly:     Info,
}

// Severity of the code. Codes not listed otherwise are errors.
func (c Code) Severity() Severity {
	if s, ok := severities[c]; ok {
		return s
	}

	return Error
}

// Diagnostic is one finding about a mapping file.
type Diagnostic struct {
	Code    Code
	Message string
	// Pair is the "source->target" label of the type mapping, if any.
	Pair string
	// Member is the field or type reference concerned, if any.
	Member string
	// Suggestions are names that were probably meant.
	Suggestions []string
}

func (d Diagnostic) Severity() Severity {
	return d.Code.Severity()
}

// Error renders the finding as "[pair] member: [code] message".
func (d Diagnostic) Error() string {
	var sb strings.Builder

	if d.Pair != "" {
		sb.WriteString("[" + d.Pair + "] ")
	}

	if d.Member != "" {
		sb.WriteString(d.Member + ": ")
	}

	if d.Code != "" {
		sb.WriteString("[" + string(d.Code) + "] ")
	}

	sb.WriteString(d.Message)

	if len(d.Suggestions) > 0 {
		sb.WriteString(" (did you mean " + strings.Join(d.Suggestions, ", ") + "?)")
	}

	return sb.String()
}

// Diagnostics collects findings in report order.
type Diagnostics struct {
	list []Diagnostic
}

// Add records d.
func (ds *Diagnostics) Add(d Diagnostic) {
	ds.list = append(ds.list, d)
}

// Report records a finding with a formatted message.
func (ds *Diagnostics) Report(code Code, pair, member, format string, args ...any) {
	ds.Add(Diagnostic{Code: code, Message: fmt.Sprintf(format, args...), Pair: pair, Member: member})
}

// All returns every finding, most severe first, report order kept within
// a severity.
func (ds *Diagnostics) All() []Diagnostic {
	all := slices.Clone(ds.list)
	slices.SortStableFunc(all, func(a, b Diagnostic) int {
		return int(b.Severity()) - int(a.Severity())
	})

	return all
}

// Filter returns the findings of one severity in report order.
func (ds *Diagnostics) Filter(s Severity) []Diagnostic {
	var out []Diagnostic

	for _, d := range ds.list {
		if d.Severity() == s {
			out = append(out, d)
		}
	}

	return out
}

func (ds *Diagnostics) HasErrors() bool {
	return slices.ContainsFunc(ds.list, func(d Diagnostic) bool { return d.Severity() == Error })
}

// Err joins the error findings, or returns nil when there are none. Each
// joined error is a Diagnostic, reachable with errors.As.
func (ds *Diagnostics) Err() error {
	var errs []error
	for _, d := range ds.Filter(Error) {
		errs = append(errs, d)
	}

	return errors.Join(errs...)
}
