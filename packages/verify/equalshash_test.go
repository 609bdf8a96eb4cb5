package verify

import (
	"hash/fnv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// foldKey compares case-insensitively and hashes the folded form, so equal
// keys always share a hash.
type foldKey struct {
	s string
}

func (k foldKey) Equals(other any) bool {
	o, ok := other.(foldKey)
	return ok && strings.EqualFold(k.s, o.s)
}

func (k foldKey) HashCode() uint64 {
	h := fnv.New64a()
	h.Write([]byte(strings.ToLower(k.s)))
	return h.Sum64()
}

// rawKey compares case-insensitively but hashes the raw form, breaking the
// equals/hash contract for keys that differ only in case.
type rawKey struct {
	s string
}

func (k rawKey) Equals(other any) bool {
	o, ok := other.(rawKey)
	return ok && strings.EqualFold(k.s, o.s)
}

func (k rawKey) HashCode() uint64 {
	h := fnv.New64a()
	h.Write([]byte(k.s))
	return h.Sum64()
}

// sharedHashKey compares by exact string but always reports the same hash.
type sharedHashKey struct {
	s string
}

func (k sharedHashKey) Equals(other any) bool {
	o, ok := other.(sharedHashKey)
	return ok && k.s == o.s
}

func (k sharedHashKey) HashCode() uint64 { return 42 }

// agreeable claims equality with everything; grumpy with nothing. Together
// they make the two probe directions disagree.
type agreeable struct{}

func (agreeable) Equals(any) bool { return true }

type grumpy struct{}

func (grumpy) Equals(any) bool { return false }

func TestCheckEqualsAndHashCode(t *testing.T) {
	tests := []struct {
		name          string
		lhs, rhs      any
		expectedEqual bool
		passes        bool
	}{
		{name: "equal ints expected equal", lhs: 5, rhs: 5, expectedEqual: true, passes: true},
		{name: "unequal ints expected unequal", lhs: 5, rhs: 6, expectedEqual: false, passes: true},
		{name: "equal ints expected unequal", lhs: 5, rhs: 5, expectedEqual: false, passes: false},
		{name: "unequal ints expected equal", lhs: 5, rhs: 6, expectedEqual: true, passes: false},
		{name: "nil nil expected equal", lhs: nil, rhs: nil, expectedEqual: true, passes: true},
		{name: "nil nil expected unequal", lhs: nil, rhs: nil, expectedEqual: false, passes: false},
		{name: "nil vs value expected unequal", lhs: nil, rhs: "x", expectedEqual: false, passes: true},
		{name: "nil vs value expected equal", lhs: nil, rhs: "x", expectedEqual: true, passes: false},
		{name: "value vs nil expected unequal", lhs: "x", rhs: nil, expectedEqual: false, passes: true},
		{name: "consistent custom hash", lhs: foldKey{"FOO"}, rhs: foldKey{"foo"}, expectedEqual: true, passes: true},
		{name: "inconsistent custom hash", lhs: rawKey{"FOO"}, rhs: rawKey{"foo"}, expectedEqual: true, passes: false},
		{name: "shared hash on unequal values", lhs: sharedHashKey{"foo"}, rhs: sharedHashKey{"bar"}, expectedEqual: false, passes: true},
		{name: "asymmetric equality", lhs: agreeable{}, rhs: grumpy{}, expectedEqual: true, passes: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Recover(func() {
				CheckEqualsAndHashCode("", tt.lhs, tt.rhs, tt.expectedEqual)
			})
			if tt.passes {
				assert.Nil(t, f)
			} else {
				assert.NotNil(t, f)
			}
		})
	}
}

func TestCheckEqualsAndHashCode_Messages(t *testing.T) {
	f := catchFailure(t, func() {
		CheckEqualsAndHashCode("", nil, nil, false)
	})
	assert.Contains(t, f.Message, "dubious")
	assert.Contains(t, f.Message, "nil != nil")

	f = catchFailure(t, func() {
		CheckEqualsAndHashCode("", nil, "x", true)
	})
	assert.Contains(t, f.Message, "dubious")
	assert.Contains(t, f.Message, "equal to nil")

	f = catchFailure(t, func() {
		CheckEqualsAndHashCode("widget", 1, 2, true)
	})
	assert.Equal(t, "widget expected:<true> but was:<false>", f.Message)

	f = catchFailure(t, func() {
		CheckEqualsAndHashCode("", 1, 2, true)
	})
	assert.Equal(t, "expected:<true> but was:<false>", f.Message)
}

func TestCheckEqualsAndHashCode_HashMessage(t *testing.T) {
	f := catchFailure(t, func() {
		CheckEqualsAndHashCode("", rawKey{"FOO"}, rawKey{"foo"}, true)
	})
	assert.Equal(t, "hash codes for equal values should be the same", f.Message)

	f = catchFailure(t, func() {
		CheckEqualsAndHashCode("rawKey", rawKey{"FOO"}, rawKey{"foo"}, true)
	})
	assert.Equal(t, "hash codes for equal values should be the same: rawKey", f.Message)
}

func TestCheckEqualsAndHashCode_AsymmetricDirection(t *testing.T) {
	// agreeable->grumpy passes, grumpy->agreeable is the direction that trips.
	f := catchFailure(t, func() {
		CheckEqualsAndHashCode("", agreeable{}, grumpy{}, true)
	})
	assert.Equal(t, "expected:<true> but was:<false>", f.Message)
}
