package common

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Header holds the keyword/value pairs of a single header block.
type Header map[string]interface{}

// Value is a header scalar: a string, bool, integer or float.
type Value struct {
	raw interface{}
}

// NA is substituted for keywords that are missing from a header.
var NA = String("N/A")

// String wraps s as a Value.
func String(s string) Value {
	return Value{raw: s}
}

// NewValue wraps a raw header value. Unsupported types are kept and
// rendered with fmt.
func NewValue(raw interface{}) Value {
	return Value{raw: raw}
}

// Raw returns the underlying scalar.
func (v Value) Raw() interface{} {
	return v.raw
}

// IsNA reports whether v is the missing-keyword sentinel.
func (v Value) IsNA() bool {
	s, ok := v.raw.(string)
	return ok && s == "N/A"
}

// String renders v for tabular output.
func (v Value) String() string {
	switch val := v.raw.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case bool:
		if val {
			return "True"
		}
		return "False"
	case float32:
		return formatFloat(float64(val), 32)
	case float64:
		return formatFloat(val, 64)
	}

	if n, ok := convertInt(v.raw); ok {
		return strconv.FormatInt(n, 10)
	}

	if n, ok := convertUInt(v.raw); ok {
		return strconv.FormatUint(n, 10)
	}

	return fmt.Sprintf("%v", v.raw)
}

// Get returns the value stored under key, or def if the key is missing or
// has no value. An exact match wins over a case-insensitive one.
func (h Header) Get(key string, def Value) Value {
	if val, ok := h[key]; ok {
		if val == nil {
			return def
		}
		return NewValue(val)
	}

	for k, val := range h {
		if strings.EqualFold(k, key) {
			if val == nil {
				return def
			}
			return NewValue(val)
		}
	}

	return def
}

func formatFloat(f float64, bits int) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'f', -1, bits)
	}

	// exponent form only outside [1e-4, 1e16)
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'g', -1, bits)
	}

	s := strconv.FormatFloat(f, 'f', -1, bits)
	if strings.Contains(s, ".") {
		return s
	}

	return s + ".0"
}

func convertInt(n interface{}) (int64, bool) {
	switch n := n.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	}

	return 0, false
}

func convertUInt(n interface{}) (uint64, bool) {
	switch n := n.(type) {
	case uint:
		return uint64(n), true
	case uint8:
		return uint64(n), true
	case uint16:
		return uint64(n), true
	case uint32:
		return uint64(n), true
	case uint64:
		return n, true
	}

	return 0, false
}
