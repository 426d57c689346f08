// File: cascade/path.go
package cascade

import (
	"strconv"
	"strings"
)

// Path resolution walks the live tree; there is no precompiled path object.
// A segment addresses a dictionary key, or an element index when the node
// reached at that point is a sequence. Keys containing the separator cannot
// be addressed individually; no escaping is supported.

// splitPath breaks a path into its ordered segments. An empty path yields a
// single empty segment, which callers treat as a reference to the root.
func splitPath(path, separator string) []string {
	return strings.Split(path, separator)
}

// isRootPath reports whether the segment list addresses the root itself.
func isRootPath(segments []string) bool {
	return len(segments) == 1 && segments[0] == ""
}

// sequenceIndex parses a segment as a non-negative index into a sequence of
// the given length.
func sequenceIndex(segment string, length int) (int, bool) {
	idx, err := strconv.Atoi(segment)
	if err != nil || idx < 0 || idx >= length {
		return 0, false
	}
	return idx, true
}

// getPath resolves segments against root and returns the node found, or nil
// when any step misses: an absent dictionary key, an unparsable or
// out-of-range sequence index, or a scalar reached with segments remaining.
func getPath(root *node, segments []string) *node {
	if isRootPath(segments) {
		return root
	}

	current := root
	for _, segment := range segments {
		switch current.kind {
		case kindDictionary:
			child, exists := current.dict[segment]
			if !exists {
				return nil
			}
			current = child
		case kindSequence:
			idx, ok := sequenceIndex(segment, len(current.seq))
			if !ok {
				return nil
			}
			current = current.seq[idx]
		default:
			// Scalar with segments left over.
			return nil
		}
	}
	return current
}

// setPath assigns value at the location addressed by segments and returns
// the node that now occupies the root slot; callers must adopt it. An empty
// path replaces the root wholesale. Intermediates are only ever created as
// dictionary keys: an existing scalar on the way, or a sequence the segment
// cannot index, is replaced by a fresh dictionary. An in-range index
// traverses into the existing sequence instead. The terminal slot is a
// destructive overwrite, not a merge.
func setPath(root *node, segments []string, value *node) *node {
	if isRootPath(segments) {
		return value
	}
	return assign(root, segments, value)
}

func assign(current *node, segments []string, value *node) *node {
	segment := segments[0]

	if current != nil && current.kind == kindSequence {
		if idx, ok := sequenceIndex(segment, len(current.seq)); ok {
			if len(segments) == 1 {
				current.seq[idx] = value
			} else {
				current.seq[idx] = assign(current.seq[idx], segments[1:], value)
			}
			return current
		}
		// Unindexable sequences are replaced like any other non-dictionary.
		current = nil
	}

	if current == nil || current.kind != kindDictionary {
		current = newDictionary()
	}

	if len(segments) == 1 {
		current.dict[segment] = value
		return current
	}
	current.dict[segment] = assign(current.dict[segment], segments[1:], value)
	return current
}
