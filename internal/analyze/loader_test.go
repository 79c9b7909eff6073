package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	storePkg     = "structmapper/store"
	warehousePkg = "structmapper/warehouse"
)

func loadSamples(t *testing.T) *TypeGraph {
	t.Helper()

	graph, err := NewAnalyzer().LoadPackages(storePkg, warehousePkg)
	require.NoError(t, err)
	require.NotNil(t, graph)

	return graph
}

func mustType(t *testing.T, graph *TypeGraph, pkg, name string) *TypeInfo {
	t.Helper()

	ti := graph.GetType(TypeID{PkgPath: pkg, Name: name})
	require.NotNil(t, ti, "%s.%s not in graph", pkg, name)

	return ti
}

func fieldByName(t *testing.T, ti *TypeInfo, name string) *FieldInfo {
	t.Helper()

	for i := range ti.Fields {
		if ti.Fields[i].Name == name {
			return &ti.Fields[i]
		}
	}

	require.Failf(t, "field not found", "%s has no field %s", ti, name)

	return nil
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	graph := loadSamples(t)

	assert.Contains(t, graph.Packages, storePkg)
	assert.Contains(t, graph.Packages, warehousePkg)

	assert.Contains(t, graph.Types, TypeID{PkgPath: storePkg, Name: "Order"})
	assert.Contains(t, graph.Types, TypeID{PkgPath: warehousePkg, Name: "Order"})
	assert.Len(t, graph.Packages[storePkg].Types, 7)
}

func TestAnalyzer_StructFields(t *testing.T) {
	graph := loadSamples(t)

	customer := mustType(t, graph, storePkg, "Customer")
	assert.Equal(t, TypeKindStruct, customer.Kind)

	names := make([]string, 0, len(customer.Fields))
	for _, f := range customer.Fields {
		names = append(names, f.Name)
	}

	assert.Equal(t,
		[]string{"Audit", "ID", "Email", "FullName", "Address", "Labels", "segment", "loyalty"},
		names)

	audit := fieldByName(t, customer, "Audit")
	assert.True(t, audit.Embedded)
	assert.Equal(t, TypeKindStruct, audit.Type.Kind)

	segment := fieldByName(t, customer, "segment")
	assert.False(t, segment.Exported)
	assert.True(t, segment.HasTag("mapping"))
	assert.Equal(t, "Tier,optional", segment.GetTag("mapping"))
}

func TestAnalyzer_PointerField(t *testing.T) {
	graph := loadSamples(t)

	address := fieldByName(t, mustType(t, graph, storePkg, "Customer"), "Address")
	assert.Equal(t, TypeKindPointer, address.Type.Kind)
	require.NotNil(t, address.Type.ElemType)
	assert.Equal(t, TypeKindBasic, address.Type.ElemType.Kind)
}

func TestAnalyzer_NamedCollections(t *testing.T) {
	graph := loadSamples(t)

	items := fieldByName(t, mustType(t, graph, storePkg, "Order"), "Items")
	assert.Equal(t, TypeKindAlias, items.Type.Kind)
	require.NotNil(t, items.Type.Underlying)
	assert.Equal(t, TypeKindSlice, items.Type.Underlying.Kind)
	assert.Equal(t, TypeKindStruct, items.Type.Underlying.ElemType.Kind)
	assert.Same(t, mustType(t, graph, storePkg, "OrderItems"), items.Type)

	labels := mustType(t, graph, storePkg, "Labels")
	assert.Equal(t, TypeKindAlias, labels.Kind)
	require.NotNil(t, labels.Underlying)
	assert.Equal(t, TypeKindMap, labels.Underlying.Kind)
	assert.Equal(t, TypeKindBasic, labels.Underlying.KeyType.Kind)
	assert.Equal(t, TypeKindMap, labels.Resolved().Kind)
}

func TestAnalyzer_ExternalType(t *testing.T) {
	graph := loadSamples(t)

	orderedAt := fieldByName(t, mustType(t, graph, storePkg, "Order"), "OrderedAt")
	assert.Equal(t, TypeKindExternal, orderedAt.Type.Kind)
	assert.Equal(t, "time.Time", orderedAt.Type.ID.String())
}

func TestAnalyzer_Methods(t *testing.T) {
	graph := loadSamples(t)

	customer := mustType(t, graph, storePkg, "Customer")
	require.Len(t, customer.Methods, 2)

	get, set := customer.Methods[0], customer.Methods[1]
	assert.Equal(t, MethodInfo{
		Name: "GetLoyalty", Results: 1, Directive: "Points,optional", HasDirective: true,
	}, get)
	assert.Equal(t, MethodInfo{Name: "SetLoyalty", Params: 1}, set)
}

func TestAnalyzer_TypeOptionsDirective(t *testing.T) {
	graph := loadSamples(t)

	assert.Equal(t, "date-format=02.01.2006,map-null=false", mustType(t, graph, warehousePkg, "Order").Options)
	assert.Empty(t, mustType(t, graph, storePkg, "Order").Options)
}

func TestAnalyzer_GetStruct(t *testing.T) {
	a := NewAnalyzer()
	_, err := a.LoadPackages(storePkg)
	require.NoError(t, err)

	order, err := a.GetStruct(storePkg, "Order")
	require.NoError(t, err)
	assert.Equal(t, "Order", order.ID.Name)

	_, err = a.GetStruct(storePkg, "OrderStatus")
	require.ErrorContains(t, err, "not a struct")

	_, err = a.GetStruct(storePkg, "Missing")
	require.ErrorContains(t, err, "not found")
}

func TestAnalyzer_LoadError(t *testing.T) {
	_, err := NewAnalyzer().LoadPackages("structmapper/does/not/exist")
	require.Error(t, err)
}

func TestTypeID_String(t *testing.T) {
	id := TypeID{PkgPath: storePkg, Name: "Order"}
	assert.Equal(t, "structmapper/store.Order", id.String())

	// Empty package path
	idNoPkg := TypeID{Name: "int"}
	assert.Equal(t, "int", idNoPkg.String())
}

func TestTypeKind_String(t *testing.T) {
	assert.Equal(t, "basic", TypeKindBasic.String())
	assert.Equal(t, "struct", TypeKindStruct.String())
	assert.Equal(t, "pointer", TypeKindPointer.String())
	assert.Equal(t, "slice", TypeKindSlice.String())
	assert.Equal(t, "array", TypeKindArray.String())
	assert.Equal(t, "map", TypeKindMap.String())
	assert.Equal(t, "alias", TypeKindAlias.String())
	assert.Equal(t, "external", TypeKindExternal.String())
	assert.Equal(t, "unknown", TypeKindUnknown.String())
}
