package verify

import "fmt"

// Equaler lets a value define its own equality for CheckEqualsAndHashCode.
// Equality is probed in both directions, so an asymmetric implementation
// fails the check.
type Equaler interface {
	Equals(other any) bool
}

// Hasher lets a value expose the integer digest paired with its equality.
// Values that compare equal must report the same hash code.
type Hasher interface {
	HashCode() uint64
}

// CheckEqualsAndHashCode verifies equality of lhs and rhs in both directions
// against expectedEqual and, when the values are expected equal, that their
// hash representations agree. Hash codes are not compared for values expected
// unequal, since unequal values may legitimately share a hash. The label, when
// non-empty, prefixes the failure messages.
func CheckEqualsAndHashCode(label string, lhs, rhs any, expectedEqual bool) {
	if isNil(lhs) && isNil(rhs) {
		True(expectedEqual,
			"Your check is dubious...why would you expect nil != nil?")
		return
	}

	if isNil(lhs) || isNil(rhs) {
		True(!expectedEqual,
			"Your check is dubious...why would you expect a value to be equal to nil?")
	}

	if !isNil(lhs) {
		checkDirection(label, expectedEqual, valueEquals(lhs, rhs))
	}
	if !isNil(rhs) {
		checkDirection(label, expectedEqual, valueEquals(rhs, lhs))
	}

	if expectedEqual {
		msg := "hash codes for equal values should be the same"
		if label != "" {
			msg += ": " + label
		}
		True(hashOf(lhs) == hashOf(rhs), msg)
	}
}

func checkDirection(label string, expected, actual bool) {
	if expected == actual {
		return
	}
	msg := fmt.Sprintf("expected:<%v> but was:<%v>", expected, actual)
	if label != "" {
		msg = label + " " + msg
	}
	Fail(msg)
}
