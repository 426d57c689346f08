// File: cascade/path_test.go
package cascade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSplitPath tests path segmentation
func TestSplitPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		sep  string
		want []string
	}{
		{"Simple", "a:b:c", ":", []string{"a", "b", "c"}},
		{"SingleSegment", "a", ":", []string{"a"}},
		{"EmptyIsRoot", "", ":", []string{""}},
		{"CustomSeparator", "a/b", "/", []string{"a", "b"}},
		{"EmptyInnerSegment", "a::b", ":", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitPath(tt.path, tt.sep))
		})
	}
}

// TestGetPath tests read resolution against a live tree
func TestGetPath(t *testing.T) {
	root := fromGeneric(map[string]any{
		"VCAP_SERVICES": map[string]any{
			"db": []any{
				map[string]any{"credentials": map[string]any{"host": "h1"}},
			},
		},
		"leaf": "value",
		"null": nil,
	})

	tests := []struct {
		name   string
		path   string
		want   any
		found  bool
	}{
		{"ArrayIndexTraversal", "VCAP_SERVICES:db:0:credentials:host", "h1", true},
		{"IndexOutOfRange", "VCAP_SERVICES:db:1:credentials:host", nil, false},
		{"NonNumericIndex", "VCAP_SERVICES:db:first", nil, false},
		{"NegativeIndex", "VCAP_SERVICES:db:-1", nil, false},
		{"MissingKey", "VCAP_SERVICES:cache", nil, false},
		{"ScalarWithSegmentsLeft", "leaf:deeper", nil, false},
		{"Leaf", "leaf", "value", true},
		{"ExplicitNull", "null", nil, true},
		{"WholeSequence", "VCAP_SERVICES:db", []any{
			map[string]any{"credentials": map[string]any{"host": "h1"}},
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := getPath(root, splitPath(tt.path, ":"))
			if !tt.found {
				assert.Nil(t, n)
				return
			}
			require.NotNil(t, n)
			assert.Equal(t, tt.want, n.toGeneric())
		})
	}

	t.Run("RootReference", func(t *testing.T) {
		n := getPath(root, splitPath("", ":"))
		require.NotNil(t, n)
		assert.Equal(t, root.toGeneric(), n.toGeneric())
	})
}

// TestSetPath tests write resolution, intermediate creation, and overwrites
func TestSetPath(t *testing.T) {
	t.Run("CreatesIntermediateDictionaries", func(t *testing.T) {
		root := newDictionary()
		root = setPath(root, []string{"a", "b", "c"}, fromGeneric(1))
		assert.Equal(t, map[string]any{"a": map[string]any{"b": map[string]any{"c": int64(1)}}}, root.toGeneric())
	})

	t.Run("TerminalOverwriteIsDestructive", func(t *testing.T) {
		root := fromGeneric(map[string]any{"a": map[string]any{"x": 1, "y": 2}})
		root = setPath(root, []string{"a"}, fromGeneric(map[string]any{"y": 3}))
		// The old subtree is gone entirely, unlike a merge.
		assert.Equal(t, map[string]any{"a": map[string]any{"y": int64(3)}}, root.toGeneric())
	})

	t.Run("ScalarIntermediateReplacedByDictionary", func(t *testing.T) {
		root := fromGeneric(map[string]any{"a": "leaf"})
		root = setPath(root, []string{"a", "b"}, fromGeneric(2))
		assert.Equal(t, map[string]any{"a": map[string]any{"b": int64(2)}}, root.toGeneric())
	})

	t.Run("TraversalIntoExistingSequence", func(t *testing.T) {
		root := fromGeneric(map[string]any{"a": []any{map[string]any{"x": 1}, "s"}})
		root = setPath(root, []string{"a", "0", "x"}, fromGeneric(9))
		assert.Equal(t, map[string]any{"a": []any{map[string]any{"x": int64(9)}, "s"}}, root.toGeneric())
	})

	t.Run("AssignExistingSequenceSlot", func(t *testing.T) {
		root := fromGeneric(map[string]any{"a": []any{1, 2}})
		root = setPath(root, []string{"a", "1"}, fromGeneric("two"))
		assert.Equal(t, map[string]any{"a": []any{int64(1), "two"}}, root.toGeneric())
	})

	t.Run("UnindexableSequenceReplaced", func(t *testing.T) {
		// Out-of-range slots are never created; the sequence gives way to a
		// dictionary keyed by the segment, like any other non-dictionary.
		root := fromGeneric(map[string]any{"a": []any{1}})
		root = setPath(root, []string{"a", "5", "b"}, fromGeneric(true))
		assert.Equal(t, map[string]any{"a": map[string]any{"5": map[string]any{"b": true}}}, root.toGeneric())
	})

	t.Run("EmptyPathReplacesRoot", func(t *testing.T) {
		root := fromGeneric(map[string]any{"a": 1})
		root = setPath(root, []string{""}, fromGeneric(map[string]any{"b": 2}))
		assert.Equal(t, map[string]any{"b": int64(2)}, root.toGeneric())
	})
}
