package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Safe coercion helpers for loosely-typed raw records. All of them are
// total: any input produces a usable value, never a panic or an error.
// JSON numbers arrive as float64, so that is the common numeric case.

// ToInt converts v to an int, or returns def when it cannot.
// The integer boundary is strict: the string "42" converts, the string
// "42.7" does not (no float-then-int cast for strings). A numeric value
// that is already a float truncates toward zero.
func ToInt(v any, def int) int {
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float32:
		return int(n)
	case float64:
		return int(n)
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
		return def
	default:
		return def
	}
}

// ToFloat converts v to a float64, or returns def when it cannot
func ToFloat(v any, def float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f
		}
		return def
	default:
		return def
	}
}

// ToList normalizes v into a slice: a slice is returned unchanged, nil
// becomes an empty slice, and any scalar is wrapped in a one-element slice.
func ToList(v any) []any {
	switch l := v.(type) {
	case nil:
		return []any{}
	case []any:
		return l
	default:
		return []any{v}
	}
}

// ToString converts v to its string form; nil becomes the empty string
func ToString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		// Render whole JSON numbers without a trailing ".0"
		if s == float64(int64(s)) {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToStringList coerces v into a slice of strings via ToList and ToString
func ToStringList(v any) []string {
	raw := ToList(v)
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		out = append(out, ToString(item))
	}
	return out
}
