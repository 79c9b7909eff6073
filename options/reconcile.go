package options

// Conflict describes an option set to different concrete values on the two
// sides of a pair.
type Conflict struct {
	Option string
	Src    string
	Dest   string
}

// Reconcile combines the bundles declared on the source and destination
// types of a pair. A nil bundle means "no directive on that type".
//
// Per option: equal values are kept, an inherited (or empty) side defers to
// the other, and two differing concrete values are a conflict that the
// destination wins. onConflict, when non-nil, is called once per conflicting
// option. The result is nil only when both inputs are nil.
func Reconcile(src, dest *Bundle, onConflict func(Conflict)) *Bundle {
	if src == nil {
		return dest
	}

	if dest == nil {
		return src
	}

	report := func(name, s, d string) {
		if onConflict != nil {
			onConflict(Conflict{Option: name, Src: s, Dest: d})
		}
	}

	value := func(name string, s, d Value) Value {
		switch {
		case s == d:
			return s
		case s == Inherited:
			return d
		case d == Inherited:
			return s
		}

		report(name, s.String(), d.String())

		return d
	}

	text := func(name, s, d string) string {
		switch {
		case s == d:
			return s
		case s == "":
			return d
		case d == "":
			return s
		}

		report(name, s, d)

		return d
	}

	return &Bundle{
		Wildcard:       value(NameWildcard, src.Wildcard, dest.Wildcard),
		StopOnErrors:   value(NameStopOnErrors, src.StopOnErrors, dest.StopOnErrors),
		MapNull:        value(NameMapNull, src.MapNull, dest.MapNull),
		MapEmptyString: value(NameMapEmptyString, src.MapEmptyString, dest.MapEmptyString),
		DateFormat:     text(NameDateFormat, src.DateFormat, dest.DateFormat),
	}
}
