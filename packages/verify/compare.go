package verify

import (
	"hash/fnv"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pmezard/go-difflib/difflib"
)

// valueEquals reports whether a equals b, consulting an Equaler
// implementation on a before falling back to loose deep equality.
func valueEquals(a, b any) bool {
	if eq, ok := a.(Equaler); ok {
		return eq.Equals(b)
	}
	return looseEqual(a, b)
}

// looseEqual is deep equality with cross-type numeric coercion, so 5 and 5.0
// compare equal the way they would after a round-trip through JSON.
func looseEqual(a, b any) bool {
	if reflect.DeepEqual(a, b) {
		return true
	}
	af, aOk := toFloat64(a)
	bf, bOk := toFloat64(b)
	return aOk && bOk && af == bf
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

// dumpConfig renders values deterministically: sorted map keys, no pointer
// addresses. Determinism matters because hashOf feeds the dump into FNV.
var dumpConfig = &spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
	MaxDepth:                10,
}

// hashOf returns the hash representation of v: the value's own HashCode when
// implemented, otherwise FNV-1a over its deterministic dump.
func hashOf(v any) uint64 {
	if h, ok := v.(Hasher); ok {
		return h.HashCode()
	}
	h := fnv.New64a()
	io.WriteString(h, dumpConfig.Sdump(v))
	return h.Sum64()
}

// diff returns a unified diff of the two values when both render to multiline
// text of the same type, otherwise the empty string.
func diff(expected, actual any) string {
	et := reflect.TypeOf(expected)
	at := reflect.TypeOf(actual)
	if et == nil || at == nil || et != at {
		return ""
	}

	var e, a string
	switch et.Kind() {
	case reflect.String:
		e = reflect.ValueOf(expected).String()
		a = reflect.ValueOf(actual).String()
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
		e = dumpConfig.Sdump(expected)
		a = dumpConfig.Sdump(actual)
	default:
		return ""
	}
	if !strings.Contains(e, "\n") && !strings.Contains(a, "\n") {
		return ""
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(e),
		B:        difflib.SplitLines(a),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  1,
	})
	if err != nil || text == "" {
		return ""
	}
	return "\n\nDiff:\n" + text
}
