package options

import (
	"fmt"
	"strings"
)

// Option names as they appear in directives, mapping files and logs.
const (
	NameWildcard       = "wildcard"
	NameStopOnErrors   = "stop-on-errors"
	NameMapNull        = "map-null"
	NameMapEmptyString = "map-empty-string"
	NameDateFormat     = "date-format"
)

// Bundle is the set of per-type or per-pair mapping options.
// The zero Bundle inherits everything.
type Bundle struct {
	Wildcard       Value
	StopOnErrors   Value
	MapNull        Value
	MapEmptyString Value
	DateFormat     string
}

// IsZero reports whether the bundle specifies nothing.
func (b Bundle) IsZero() bool {
	return b == Bundle{}
}

// String renders the bundle in directive syntax, listing only concrete options.
func (b Bundle) String() string {
	var parts []string

	for _, o := range []struct {
		name  string
		value Value
	}{
		{NameWildcard, b.Wildcard},
		{NameStopOnErrors, b.StopOnErrors},
		{NameMapNull, b.MapNull},
		{NameMapEmptyString, b.MapEmptyString},
	} {
		if o.value.IsSet() {
			parts = append(parts, o.name+"="+o.value.String())
		}
	}

	if b.DateFormat != "" {
		parts = append(parts, NameDateFormat+"="+b.DateFormat)
	}

	return strings.Join(parts, ",")
}

// ParseBundle parses directive syntax such as
//
//	wildcard=false,map-null=true,date-format=2006-01-02
//
// A bare option name means true. Segments without "=" continue the previous
// value, so layouts like "Mon, 02 Jan 2006" survive the comma split.
func ParseBundle(s string) (Bundle, error) {
	var b Bundle

	var segments []string

	for _, seg := range strings.Split(s, ",") {
		if len(segments) > 0 && !strings.Contains(seg, "=") && !isOptionName(seg) {
			segments[len(segments)-1] += "," + seg
			continue
		}

		segments = append(segments, seg)
	}

	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}

		name, raw, hasValue := strings.Cut(seg, "=")
		name = strings.TrimSpace(name)

		if name == NameDateFormat {
			b.DateFormat = strings.TrimSpace(raw)
			continue
		}

		if !hasValue {
			raw = "true"
		}

		v, err := ParseValue(raw)
		if err != nil {
			return Bundle{}, fmt.Errorf("option %s: %w", name, err)
		}

		switch name {
		case NameWildcard:
			b.Wildcard = v
		case NameStopOnErrors:
			b.StopOnErrors = v
		case NameMapNull:
			b.MapNull = v
		case NameMapEmptyString:
			b.MapEmptyString = v
		default:
			return Bundle{}, fmt.Errorf("unknown option %q", name)
		}
	}

	return b, nil
}

func isOptionName(s string) bool {
	switch strings.TrimSpace(s) {
	case NameWildcard, NameStopOnErrors, NameMapNull, NameMapEmptyString:
		return true
	default:
		return false
	}
}
