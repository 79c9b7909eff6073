package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		in      string
		want    Value
		wantErr bool
	}{
		{"", Inherited, false},
		{"inherited", Inherited, false},
		{"true", True, false},
		{"TRUE", True, false},
		{"on", True, false},
		{"false", False, false},
		{" no ", False, false},
		{"maybe", Inherited, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseValue(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValue_Bool(t *testing.T) {
	assert.True(t, True.Bool(false))
	assert.False(t, False.Bool(true))
	assert.True(t, Inherited.Bool(true))
	assert.False(t, Inherited.Bool(false))
}

func TestValue_Or(t *testing.T) {
	assert.Equal(t, True, True.Or(False))
	assert.Equal(t, False, Inherited.Or(False))
	assert.Equal(t, Inherited, Inherited.Or(Inherited))
}

func TestValue_Text(t *testing.T) {
	var v Value
	require.NoError(t, v.UnmarshalText([]byte("false")))
	assert.Equal(t, False, v)

	out, err := v.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "false", string(out))

	assert.Error(t, v.UnmarshalText([]byte("nope")))
	assert.Equal(t, "Value(9)", Value(9).String())
}

func TestParseBundle(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Bundle
		wantErr bool
	}{
		{
			name: "empty",
			in:   "",
			want: Bundle{},
		},
		{
			name: "all options",
			in:   "wildcard=false,stop-on-errors=true,map-null=false,map-empty-string=inherited,date-format=2006-01-02",
			want: Bundle{
				Wildcard:     False,
				StopOnErrors: True,
				MapNull:      False,
				DateFormat:   "2006-01-02",
			},
		},
		{
			name: "bare name means true",
			in:   "wildcard, map-null",
			want: Bundle{Wildcard: True, MapNull: True},
		},
		{
			name: "date format with comma",
			in:   "date-format=Mon, 02 Jan 2006,wildcard=false",
			want: Bundle{Wildcard: False, DateFormat: "Mon, 02 Jan 2006"},
		},
		{
			name:    "unknown option",
			in:      "deep=true",
			wantErr: true,
		},
		{
			name:    "bad value",
			in:      "wildcard=sometimes",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBundle(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBundle_String(t *testing.T) {
	b := Bundle{Wildcard: False, MapEmptyString: True, DateFormat: "2006"}
	assert.Equal(t, "wildcard=false,map-empty-string=true,date-format=2006", b.String())

	parsed, err := ParseBundle(b.String())
	require.NoError(t, err)
	assert.Equal(t, b, parsed)

	assert.True(t, Bundle{}.IsZero())
	assert.False(t, b.IsZero())
}

func TestReconcile(t *testing.T) {
	t.Run("both absent", func(t *testing.T) {
		assert.Nil(t, Reconcile(nil, nil, nil))
	})

	t.Run("one side absent", func(t *testing.T) {
		b := &Bundle{Wildcard: False}
		assert.Same(t, b, Reconcile(b, nil, nil))
		assert.Same(t, b, Reconcile(nil, b, nil))
	})

	t.Run("inherited defers to concrete", func(t *testing.T) {
		src := &Bundle{Wildcard: True, DateFormat: ""}
		dest := &Bundle{MapNull: False, DateFormat: "2006-01-02"}

		var conflicts []Conflict
		got := Reconcile(src, dest, func(c Conflict) { conflicts = append(conflicts, c) })

		require.NotNil(t, got)
		assert.Equal(t, True, got.Wildcard)
		assert.Equal(t, False, got.MapNull)
		assert.Equal(t, Inherited, got.StopOnErrors)
		assert.Equal(t, "2006-01-02", got.DateFormat)
		assert.Empty(t, conflicts)
	})

	t.Run("destination wins on conflict", func(t *testing.T) {
		src := &Bundle{StopOnErrors: True, DateFormat: "yyyy-MM-dd"}
		dest := &Bundle{StopOnErrors: False, DateFormat: "dd/MM/yyyy"}

		var conflicts []Conflict
		got := Reconcile(src, dest, func(c Conflict) { conflicts = append(conflicts, c) })

		assert.Equal(t, False, got.StopOnErrors)
		assert.Equal(t, "dd/MM/yyyy", got.DateFormat)
		assert.Equal(t, []Conflict{
			{Option: NameStopOnErrors, Src: "true", Dest: "false"},
			{Option: NameDateFormat, Src: "yyyy-MM-dd", Dest: "dd/MM/yyyy"},
		}, conflicts)
	})

	t.Run("nil callback", func(t *testing.T) {
		got := Reconcile(&Bundle{MapNull: True}, &Bundle{MapNull: False}, nil)
		assert.Equal(t, False, got.MapNull)
	})
}
