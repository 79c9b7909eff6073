package mapping

import (
	"structmapper/builder"
	"structmapper/classmap"
	"structmapper/introspect"
)

type srcOrder struct {
	ID       int
	Customer string
	Total    int64
	Notes    string
	segment  string
}

type destOrder struct {
	ID     int
	Buyer  string
	Amount int64
	Notes  string
	Tier   string
}

type attrs map[string]string

type lines []srcOrder

type rows []destOrder

func testResolver() *ReflectResolver {
	return NewReflectResolver(srcOrder{}, &destOrder{}, attrs{}, lines{}, rows{})
}

func testBuilder(cfg *classmap.Configuration) *builder.Builder {
	return builder.New(cfg, introspect.NewReflect(), nil)
}

const orderYAML = `
version: "1"
mappings:
  - source: mapping.srcOrder
    target: mapping.destOrder
    date-format: "2006-01-02"
    stop-on-errors: false
    bean-factory: orders
    target-class:
      map-null: false
    121:
      Customer: Buyer
      Total: Amount
    fields:
      - source: segment
        target: Tier
        access: field
    exclude: Notes
  - source: mapping.srcOrder
    target: mapping.attrs
    wildcard: false
    fields:
      - source: Customer
        target: this
        target-key: customer
`
