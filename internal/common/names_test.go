package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPkgAlias(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"structmapper/store", "store"},
		{"store", "store"},
		{"github.com/knadh/koanf/v2", "koanf"},
		{"gopkg.in/yaml.v3", "yaml.v3"},
		{"v2", "v2"},
		{"example.com/vendor", "vendor"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, PkgAlias(tt.in))
		})
	}
}
