package verify

import (
	"fmt"
	"regexp"
	"strings"
)

// True raises a Failure when condition is false. With no message arguments a
// stock message is used.
func True(condition bool, msgAndArgs ...any) {
	if condition {
		return
	}
	if len(msgAndArgs) == 0 {
		Fail("Condition expected to be true but was false.")
	}
	Fail(msgAndArgs...)
}

// False raises a Failure when condition is true.
func False(condition bool, msgAndArgs ...any) {
	if !condition {
		return
	}
	if len(msgAndArgs) == 0 {
		Fail("Condition expected to be false but was true.")
	}
	Fail(msgAndArgs...)
}

// Equal asserts value equality, treating nil specially: a nil expected value
// only matches a nil actual value. The default failure message embeds both
// values and, for multiline mismatches, a unified diff.
func Equal(expected, actual any, msgAndArgs ...any) {
	if isNil(expected) {
		if isNil(actual) {
			return
		}
		failEqual(expected, actual, msgAndArgs)
	}
	if !valueEquals(expected, actual) {
		failEqual(expected, actual, msgAndArgs)
	}
}

func failEqual(expected, actual any, msgAndArgs []any) {
	msg := messageFromArgs(msgAndArgs)
	if msg == "" {
		msg = fmt.Sprintf("Expected '%v' but got '%v'", expected, actual)
		msg += diff(expected, actual)
	}
	Fail(msg)
}

// Nil asserts that value is nil, including typed nil pointers, maps, slices,
// channels and funcs.
func Nil(value any, msgAndArgs ...any) {
	if isNil(value) {
		return
	}
	if len(msgAndArgs) == 0 {
		Fail(fmt.Sprintf("Expected nil but got '%v'", value))
	}
	Fail(msgAndArgs...)
}

// NotNil asserts that value is not nil.
func NotNil(value any, msgAndArgs ...any) {
	if !isNil(value) {
		return
	}
	if len(msgAndArgs) == 0 {
		Fail("Expected a value but got nil")
	}
	Fail(msgAndArgs...)
}

// NoError asserts that err is nil.
func NoError(err error, msgAndArgs ...any) {
	if err == nil {
		return
	}
	if len(msgAndArgs) == 0 {
		Fail(fmt.Sprintf("Expected no error but got '%v'", err))
	}
	Fail(msgAndArgs...)
}

// Contains asserts that haystack contains needle.
func Contains(haystack, needle string, msgAndArgs ...any) {
	if strings.Contains(haystack, needle) {
		return
	}
	if len(msgAndArgs) == 0 {
		Fail(fmt.Sprintf("Expected '%v' to contain '%v'", haystack, needle))
	}
	Fail(msgAndArgs...)
}

// Match asserts that value matches the regular expression pattern. An invalid
// pattern is itself a failure.
func Match(pattern, value string, msgAndArgs ...any) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		Fail(fmt.Sprintf("invalid pattern /%s/: %v", pattern, err))
	}
	if re.MatchString(value) {
		return
	}
	if len(msgAndArgs) == 0 {
		Fail(fmt.Sprintf("Expected '%v' to match /%s/", value, pattern))
	}
	Fail(msgAndArgs...)
}
