package document

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/abdul-hamid-achik/verify/packages/verify"
)

// EqualJSON asserts that two JSON documents are semantically equal: formatting
// and object key order do not matter.
func EqualJSON(expected, actual string, msgAndArgs ...any) {
	if !gjson.Valid(expected) {
		verify.Fail(fmt.Sprintf("expected document is not valid JSON: %s", truncate(expected)))
	}
	if !gjson.Valid(actual) {
		verify.Fail(fmt.Sprintf("actual document is not valid JSON: %s", truncate(actual)))
	}
	verify.Equal(gjson.Parse(expected).Value(), gjson.Parse(actual).Value(), msgAndArgs...)
}

// EqualYAML asserts that two YAML documents are semantically equal.
func EqualYAML(expected, actual string, msgAndArgs ...any) {
	var e, a any
	if err := yaml.Unmarshal([]byte(expected), &e); err != nil {
		verify.Fail(fmt.Sprintf("expected document is not valid YAML: %v", err))
	}
	if err := yaml.Unmarshal([]byte(actual), &a); err != nil {
		verify.Fail(fmt.Sprintf("actual document is not valid YAML: %v", err))
	}
	verify.Equal(e, a, msgAndArgs...)
}

// PathEquals asserts the value found at path within the JSON document doc.
// Paths use gjson syntax; array bracket notation like "items[0].id" is
// accepted and converted.
func PathEquals(doc, path string, want any, msgAndArgs ...any) {
	result := gjson.Get(doc, normalizePath(path))
	if !result.Exists() {
		verify.Fail(fmt.Sprintf("path %q not found in document", path))
	}
	verify.Equal(want, result.Value(), msgAndArgs...)
}

// PathExists asserts that path resolves to a value within doc.
func PathExists(doc, path string, msgAndArgs ...any) {
	if gjson.Get(doc, normalizePath(path)).Exists() {
		return
	}
	if len(msgAndArgs) == 0 {
		verify.Fail(fmt.Sprintf("path %q not found in document", path))
	}
	verify.Fail(msgAndArgs...)
}

// MatchesSchema asserts that the JSON document doc validates against the
// given JSON Schema. The default failure message joins the validator's
// diagnostics.
func MatchesSchema(doc string, schema []byte, msgAndArgs ...any) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewStringLoader(doc),
	)
	if err != nil {
		verify.Fail(fmt.Sprintf("schema validation error: %v", err))
	}
	if result.Valid() {
		return
	}
	if len(msgAndArgs) > 0 {
		verify.Fail(msgAndArgs...)
	}
	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	verify.Fail("schema validation failed: " + strings.Join(errs, "; "))
}

var bracketIndex = regexp.MustCompile(`\[(\d+)\]`)

// normalizePath converts array bracket notation to gjson dot notation,
// e.g. "items[0].tags[1]" -> "items.0.tags.1".
func normalizePath(path string) string {
	return strings.TrimPrefix(bracketIndex.ReplaceAllString(path, ".$1"), ".")
}

func truncate(s string) string {
	const max = 80
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
