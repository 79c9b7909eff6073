// Package common holds small naming helpers shared by the internal packages.
package common

import (
	"path"
	"strings"
)

// UnknownStr is the String() of enum values outside their declared range.
const UnknownStr = "unknown"

// PkgAlias returns the name a package path is usually imported under: its
// last element, skipping a trailing major version ("example.com/x/v2" is "x").
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)
	if isMajorVersion(base) {
		if parent := path.Dir(pkgPath); parent != "." && parent != "/" {
			return path.Base(parent)
		}
	}

	return base
}

func isMajorVersion(s string) bool {
	digits, ok := strings.CutPrefix(s, "v")
	if !ok || digits == "" {
		return false
	}

	return strings.Trim(digits, "0123456789") == ""
}
