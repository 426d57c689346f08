// File: cascade/node.go
package cascade

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// kind discriminates the three node variants. A node's kind never changes
// after construction; merge swaps whole nodes instead of retagging them.
type kind int

const (
	kindNull kind = iota
	kindBool
	kindInt
	kindFloat
	kindString
	kindSequence
	kindDictionary
)

// node is the internal representation of the configuration tree: a
// dictionary of nodes, a sequence of nodes, or a single scalar. The tree
// owns its nodes exclusively; conversion from caller data always copies.
type node struct {
	kind   kind
	scalar any              // kindNull..kindString
	seq    []*node          // kindSequence
	dict   map[string]*node // kindDictionary
}

func newDictionary() *node {
	return &node{kind: kindDictionary, dict: make(map[string]*node)}
}

// fromGeneric converts an arbitrary generic value into an owned node tree.
// Scalars are normalized: all signed integers widen to int64, unsigned
// integers that fit do the same (the rest fall back to float64, mirroring
// the overflow guard in the typed accessors), floats widen to float64,
// json.Number resolves to int64 before float64, times render as RFC 3339,
// and byte slices become strings. Unknown types are stringified rather than
// aliased into the tree.
func fromGeneric(value any) *node {
	switch v := value.(type) {
	case nil:
		return &node{kind: kindNull}
	case bool:
		return &node{kind: kindBool, scalar: v}
	case string:
		return &node{kind: kindString, scalar: v}
	case int:
		return &node{kind: kindInt, scalar: int64(v)}
	case int8:
		return &node{kind: kindInt, scalar: int64(v)}
	case int16:
		return &node{kind: kindInt, scalar: int64(v)}
	case int32:
		return &node{kind: kindInt, scalar: int64(v)}
	case int64:
		return &node{kind: kindInt, scalar: v}
	case uint:
		return fromUint(uint64(v))
	case uint8:
		return &node{kind: kindInt, scalar: int64(v)}
	case uint16:
		return &node{kind: kindInt, scalar: int64(v)}
	case uint32:
		return &node{kind: kindInt, scalar: int64(v)}
	case uint64:
		return fromUint(v)
	case float32:
		return &node{kind: kindFloat, scalar: float64(v)}
	case float64:
		return &node{kind: kindFloat, scalar: v}
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return &node{kind: kindInt, scalar: i}
		}
		if f, err := v.Float64(); err == nil {
			return &node{kind: kindFloat, scalar: f}
		}
		return &node{kind: kindString, scalar: v.String()}
	case time.Time:
		return &node{kind: kindString, scalar: v.Format(time.RFC3339)}
	case []byte:
		return &node{kind: kindString, scalar: string(v)}
	case []any:
		seq := make([]*node, len(v))
		for i, item := range v {
			seq[i] = fromGeneric(item)
		}
		return &node{kind: kindSequence, seq: seq}
	case []string:
		seq := make([]*node, len(v))
		for i, item := range v {
			seq[i] = &node{kind: kindString, scalar: item}
		}
		return &node{kind: kindSequence, seq: seq}
	case map[string]string:
		dict := make(map[string]*node, len(v))
		for key, item := range v {
			dict[key] = &node{kind: kindString, scalar: item}
		}
		return &node{kind: kindDictionary, dict: dict}
	case map[string]any:
		dict := make(map[string]*node, len(v))
		for key, item := range v {
			dict[key] = fromGeneric(item)
		}
		return &node{kind: kindDictionary, dict: dict}
	case map[any]any:
		// Some YAML decoders still produce interface-keyed maps.
		dict := make(map[string]*node, len(v))
		for key, item := range v {
			dict[fmt.Sprint(key)] = fromGeneric(item)
		}
		return &node{kind: kindDictionary, dict: dict}
	default:
		return &node{kind: kindString, scalar: fmt.Sprint(v)}
	}
}

func fromUint(v uint64) *node {
	if v > math.MaxInt64 {
		return &node{kind: kindFloat, scalar: float64(v)}
	}
	return &node{kind: kindInt, scalar: int64(v)}
}

// toGeneric converts a node tree back into the generic representation.
// The result is a fresh snapshot; mutating it does not touch the tree.
func (n *node) toGeneric() any {
	switch n.kind {
	case kindDictionary:
		out := make(map[string]any, len(n.dict))
		for key, child := range n.dict {
			out[key] = child.toGeneric()
		}
		return out
	case kindSequence:
		out := make([]any, len(n.seq))
		for i, child := range n.seq {
			out[i] = child.toGeneric()
		}
		return out
	default:
		return n.scalar
	}
}

// merge combines n (the base) with overlay and returns the merged result.
// When both sides are dictionaries the key sets are unioned and shared keys
// merge recursively; in every other pairing the overlay replaces the base
// subtree wholesale. Sequences are never merged element-wise. An empty
// overlay dictionary is therefore a no-op against a dictionary base.
func (n *node) merge(overlay *node) *node {
	if n.kind == kindDictionary && overlay.kind == kindDictionary {
		for key, value := range overlay.dict {
			if base, exists := n.dict[key]; exists {
				n.dict[key] = base.merge(value)
			} else {
				n.dict[key] = value
			}
		}
		return n
	}
	return overlay
}
