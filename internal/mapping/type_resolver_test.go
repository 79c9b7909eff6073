package mapping

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"structmapper/internal/analyze"
)

func TestReflectResolver(t *testing.T) {
	r := testResolver()

	for _, ref := range []string{
		"mapping.destOrder",
		"structmapper/internal/mapping.destOrder",
		"destOrder",
	} {
		got, ok := r.ResolveType(ref)
		require.True(t, ok, ref)
		assert.Equal(t, reflect.TypeOf(destOrder{}), got, ref)
	}

	_, ok := r.ResolveType("mapping.missing")
	assert.False(t, ok)

	// nameless types are ignored
	r.Register(reflect.TypeOf([]int{}))
	r.Register(nil)
	_, ok = r.ResolveType("")
	assert.False(t, ok)
}

func TestGraphResolver(t *testing.T) {
	graph := analyze.NewTypeGraph()

	add := func(pkg, name string) *analyze.TypeInfo {
		ti := &analyze.TypeInfo{ID: analyze.TypeID{PkgPath: pkg, Name: name}, Kind: analyze.TypeKindStruct}
		graph.Types[ti.ID] = ti

		return ti
	}

	storeOrder := add("example.com/app/store", "Order")
	legacyOrder := add("example.com/app/legacy/store", "Order")
	whOrder := add("example.com/app/warehouse", "Order")

	r := NewGraphResolver(graph)

	tests := []struct {
		ref  string
		want *analyze.TypeInfo
	}{
		{"example.com/app/store.Order", storeOrder},
		{"example.com/app/legacy/store.Order", legacyOrder},
		{"warehouse.Order", whOrder},
		// path order decides between equal suffixes
		{"store.Order", legacyOrder},
		{"Order", legacyOrder},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, ok := r.ResolveType(tt.ref)
			require.True(t, ok)
			assert.Same(t, tt.want, got)
		})
	}

	for _, ref := range []string{"", "store.Missing", ".Order", "store."} {
		_, ok := r.ResolveType(ref)
		assert.False(t, ok, ref)
	}
}
