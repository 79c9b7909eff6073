// Package mapping provides the YAML schema, parsing, validation, building
// and export of explicit class map declarations.
//
// A mapping file pins what default inference must not guess: renamed
// fields, map entries, excluded members and per-pair options. Whatever a
// declaration leaves open is filled by the builder when wildcard is on.
//
// # Schema Overview
//
//	version: "1"
//	mappings:
//	  - source: store.Order
//	    target: warehouse.Order
//	    wildcard: true
//	    date-format: "2006-01-02"
//	    target-class:
//	      map-null: false
//	    # Simplified 1:1 mappings, declared first
//	    121:
//	      TotalCents: TotalAmount
//	    # Full field mappings
//	    fields:
//	      - source: Labels
//	        target: this
//	        target-key: labels
//	      - source: segment
//	        target: Tier
//	        access: field
//	    # Members never mapped
//	    exclude:
//	      - Notes
//
// # Field sides
//
// A side named "this" is the whole value. With a key it is one entry of
// a map-style value; keys on any other name are rejected by Validate.
//
// # Access
//
//   - property: exported field or getter/setter (default)
//   - field: declared field, exported or not
//   - self: the value itself
package mapping
