package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"structmapper/classmap"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, classmap.DefaultConfiguration().Wildcard, cfg.Mapping.Wildcard)
	assert.Equal(t, 0, cfg.Log.Verbosity)

	got := cfg.Configuration()
	want := classmap.DefaultConfiguration()
	assert.Equal(t, want.Wildcard, got.Wildcard)
	assert.Equal(t, want.StopOnErrors, got.StopOnErrors)
	assert.Equal(t, want.MapNull, got.MapNull)
	assert.Equal(t, want.MapEmptyString, got.MapEmptyString)
	assert.Equal(t, want.NameMatching, got.NameMatching)
	assert.Empty(t, got.Exclude)
}

func TestLoad_Files(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "yaml",
			file: "structmapper.yaml",
			content: `
mapping:
  wildcard: false
  map_null: false
  date_format: "2006-01-02"
  exclude: [Secret, Internal]
  name_matching: normalized
log:
  verbosity: 2
`,
		},
		{
			name: "toml",
			file: "structmapper.toml",
			content: `
[mapping]
wildcard = false
map_null = false
date_format = "2006-01-02"
exclude = ["Secret", "Internal"]
name_matching = "normalized"

[log]
verbosity = 2
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)

			c := cfg.Configuration()
			assert.False(t, c.Wildcard)
			assert.False(t, c.MapNull)
			assert.True(t, c.MapEmptyString, "untouched keys keep defaults")
			assert.Equal(t, "2006-01-02", c.DateFormat)
			assert.Equal(t, []string{"Secret", "Internal"}, c.Exclude)
			assert.Equal(t, classmap.MatchNormalized, c.NameMatching)
			assert.Equal(t, 2, cfg.Log.Verbosity)
		})
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "structmapper.yaml", "mapping:\n  wildcard: true\n  bean_factory: fromfile\n")

	t.Setenv("STRUCTMAPPER_MAPPING_WILDCARD", "false")
	t.Setenv("STRUCTMAPPER_MAPPING_STOP_ON_ERRORS", "false")
	t.Setenv("STRUCTMAPPER_MAPPING_EXCLUDE", "A,B")
	t.Setenv("STRUCTMAPPER_LOG_VERBOSITY", "3")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.Mapping.Wildcard)
	assert.False(t, cfg.Mapping.StopOnErrors)
	assert.Equal(t, "fromfile", cfg.Mapping.BeanFactory)
	assert.Equal(t, []string{"A", "B"}, cfg.Mapping.Exclude)
	assert.Equal(t, 3, cfg.Log.Verbosity)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("unsupported format", func(t *testing.T) {
		_, err := Load(writeFile(t, "structmapper.ini", "x=1"))
		require.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "structmapper.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load config")
	})

	t.Run("bad name matching", func(t *testing.T) {
		_, err := Load(writeFile(t, "structmapper.yaml", "mapping:\n  name_matching: fuzzy\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fuzzy")
	})
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	assert.Empty(t, Discover(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "structmapper.toml"), []byte(""), 0o644))
	assert.Equal(t, filepath.Join(dir, "structmapper.toml"), Discover(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".structmapper.yaml"), []byte(""), 0o644))
	assert.Equal(t, filepath.Join(dir, ".structmapper.yaml"), Discover(dir))
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "mapping.map_empty_string", envKey("STRUCTMAPPER_MAPPING_MAP_EMPTY_STRING"))
	assert.Equal(t, "log.verbosity", envKey("STRUCTMAPPER_LOG_VERBOSITY"))
	assert.Equal(t, "debug", envKey("STRUCTMAPPER_DEBUG"))
}
