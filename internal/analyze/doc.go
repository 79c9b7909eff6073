// Package analyze provides package loading and type graph extraction.
//
// It uses golang.org/x/tools/go/packages with AST and go/types
// to build a canonical in-memory model of named types, their fields
// and their methods, together with the //mapping: directive comments
// that go/types does not keep.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (struct/basic/alias/pointer/slice/array/map/external)
//   - FieldInfo: describes field name, type, tags, and embedding
//   - MethodInfo: describes an exported method and its directive
//   - Oracle: answers introspect.Oracle and introspect.DirectiveSource
//     queries over the graph, so class maps resolve without running code
package analyze
