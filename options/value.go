package options

import (
	"fmt"
	"strings"
)

// Value is a tri-state flag. Inherited means "not specified here": the
// decision is deferred to the other side of a pair or to the global default.
type Value int

const (
	Inherited Value = iota // zero value, so an unset option is always inherited
	True
	False
)

// FromBool converts a concrete boolean into a Value.
func FromBool(b bool) Value {
	if b {
		return True
	}

	return False
}

// ParseValue accepts "true", "false", "inherited" and the empty string.
func ParseValue(s string) (Value, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "inherited":
		return Inherited, nil
	case "true", "yes", "on":
		return True, nil
	case "false", "no", "off":
		return False, nil
	default:
		return Inherited, fmt.Errorf("invalid option value %q", s)
	}
}

// IsSet reports whether the value is concrete.
func (v Value) IsSet() bool {
	return v == True || v == False
}

// Bool returns the concrete value, or fallback when inherited.
func (v Value) Bool(fallback bool) bool {
	switch v {
	case True:
		return true
	case False:
		return false
	default:
		return fallback
	}
}

// Or returns v when it is concrete, otherwise other.
func (v Value) Or(other Value) Value {
	if v.IsSet() {
		return v
	}

	return other
}

// String returns a human-readable representation of the Value.
func (v Value) String() string {
	switch v {
	case True:
		return "true"
	case False:
		return "false"
	case Inherited:
		return "inherited"
	default:
		return fmt.Sprintf("Value(%d)", int(v))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Value) UnmarshalText(text []byte) error {
	parsed, err := ParseValue(string(text))
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}
