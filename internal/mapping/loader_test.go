package mapping

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"structmapper/options"
)

func TestParse_FullSchema(t *testing.T) {
	mf, err := Parse([]byte(orderYAML))
	require.NoError(t, err)

	assert.Equal(t, "1", mf.Version)
	require.Len(t, mf.TypeMappings, 2)

	tm := mf.TypeMappings[0]
	assert.Equal(t, "mapping.srcOrder", tm.Source)
	assert.Equal(t, "mapping.destOrder", tm.Target)
	assert.Equal(t, "mapping.srcOrder->mapping.destOrder", tm.Pair())
	assert.Equal(t, options.Bundle{StopOnErrors: options.False, DateFormat: "2006-01-02"}, tm.Options())
	assert.Equal(t, "orders", tm.BeanFactory)
	assert.Nil(t, tm.SourceClass)
	require.NotNil(t, tm.TargetClass)
	assert.Equal(t, ClassSpec{MapNull: options.False}, *tm.TargetClass)
	assert.Equal(t, OneToOne{{Source: "Customer", Target: "Buyer"}, {Source: "Total", Target: "Amount"}}, tm.OneToOne)
	assert.Equal(t, []FieldMapping{{Source: "segment", Target: "Tier", Access: "field"}}, tm.Fields)
	assert.Equal(t, StringArray{"Notes"}, tm.Exclude)

	second := mf.TypeMappings[1]
	assert.Equal(t, options.False, second.Wildcard)
	assert.Equal(t, []FieldMapping{{Source: "Customer", Target: "this", TargetKey: "customer"}}, second.Fields)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "unknown key",
			yaml: "mappings:\n  - source: a\n    target: b\n    transforms: []\n",
			want: "transforms",
		},
		{
			name: "bad option value",
			yaml: "mappings:\n  - source: a\n    target: b\n    wildcard: maybe\n",
			want: "maybe",
		},
		{
			name: "121 as list",
			yaml: "mappings:\n  - source: a\n    target: b\n    121: [A, B]\n",
			want: "121 must be a mapping",
		},
		{
			name: "exclude as mapping",
			yaml: "mappings:\n  - source: a\n    target: b\n    exclude: {A: B}\n",
			want: "expected string or list",
		},
		{
			name: "not yaml",
			yaml: "mappings: [",
			want: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParse_Version(t *testing.T) {
	_, err := Parse([]byte("version: \"2\"\nmappings: []\n"))
	require.ErrorIs(t, err, ErrUnsupportedVersion)

	mf, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, mf.Version)
	assert.Empty(t, mf.TypeMappings)
}

func TestStringArray(t *testing.T) {
	mf, err := Parse([]byte("mappings:\n  - source: a\n    target: b\n    exclude: [X, Y]\n"))
	require.NoError(t, err)
	assert.Equal(t, StringArray{"X", "Y"}, mf.TypeMappings[0].Exclude)
	assert.True(t, mf.TypeMappings[0].Exclude.Contains("Y"))
	assert.False(t, mf.TypeMappings[0].Exclude.Contains("Z"))
}

func TestNormalizeTypeMapping(t *testing.T) {
	mf, err := Parse([]byte(orderYAML))
	require.NoError(t, err)

	NormalizeMappingFile(mf)

	tm := mf.TypeMappings[0]
	assert.Nil(t, tm.OneToOne)
	assert.Nil(t, tm.Exclude)
	assert.Equal(t, []FieldMapping{
		{Source: "Customer", Target: "Buyer"},
		{Source: "Total", Target: "Amount"},
		{Source: "segment", Target: "Tier", Access: "field"},
		{Source: "Notes", Target: "Notes", Excluded: true},
	}, tm.Fields)
}

func TestWriteFile_RoundTrip(t *testing.T) {
	mf, err := Parse([]byte(orderYAML))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "mapping.yaml")
	require.NoError(t, WriteFile(mf, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, mf, loaded)

	data, err := Marshal(mf)
	require.NoError(t, err)

	out := string(data)
	assert.Less(t, strings.Index(out, "Customer: Buyer"), strings.Index(out, "Total: Amount"))
	assert.NotContains(t, out, "inherited")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read mapping file")
}
