package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		def      int
		expected int
	}{
		{"int passes through", 42, 0, 42},
		{"float truncates toward zero", 42.7, 0, 42},
		{"negative float truncates toward zero", -3.9, 0, -3},
		{"integer string converts", "42", 0, 42},
		{"integer string with whitespace converts", " 42 ", 0, 42},
		{"float string falls back to default", "42.7", 0, 0},
		{"non-numeric string falls back to default", "abc", 7, 7},
		{"nil falls back to default", nil, 10, 10},
		{"bool falls back to default", true, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToInt(tt.input, tt.def))
		})
	}
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		def      float64
		expected float64
	}{
		{"float passes through", 42.5, 0, 42.5},
		{"int converts", 42, 0, 42.0},
		{"float string converts", "42.5", 0, 42.5},
		{"non-numeric string falls back to default", "heavy", 1.5, 1.5},
		{"nil falls back to default", nil, 2.5, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToFloat(tt.input, tt.def))
		})
	}
}

func TestToList(t *testing.T) {
	t.Run("nil becomes empty slice", func(t *testing.T) {
		got := ToList(nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("slice passes through", func(t *testing.T) {
		in := []any{"a", "b"}
		assert.Equal(t, in, ToList(in))
	})

	t.Run("scalar is wrapped", func(t *testing.T) {
		assert.Equal(t, []any{"dragon"}, ToList("dragon"))
	})
}

func TestToString(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"string passes through", "sword", "sword"},
		{"nil becomes empty string", nil, ""},
		{"whole JSON number has no decimal point", float64(42), "42"},
		{"fractional JSON number keeps its fraction", 42.5, "42.5"},
		{"bool renders", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToString(tt.input))
		})
	}
}

func TestToStringList(t *testing.T) {
	t.Run("mixed scalars coerce element-wise", func(t *testing.T) {
		got := ToStringList([]any{"Dragon", float64(3), nil})
		assert.Equal(t, []string{"Dragon", "3", ""}, got)
	})

	t.Run("nil yields empty slice", func(t *testing.T) {
		got := ToStringList(nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
