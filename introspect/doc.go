// Package introspect defines the type-introspection and directive-lookup
// boundary used by the resolution engine, together with a reflect-based
// implementation.
//
// Key types:
//   - Oracle: shape, properties, declared fields and embedded ancestors
//   - DirectiveSource: per-type option bundles and per-member directives
//   - Reflect: both of the above, backed by package reflect
//
// Directive syntax on struct fields:
//
//	type User struct {
//		_     struct{} `mapping-options:"wildcard=true,date-format=2006-01-02"`
//		Login string   `mapping:"Name"`
//		nick  string   `mapping:"Nickname,optional"`
//	}
//
// Field tags are field directives. Method-backed properties carry
// directives through a PropertyDirectives() map[string]string method.
package introspect
