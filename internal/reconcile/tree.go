package reconcile

import "reflect"

// Tree is an ordered mapping from keys to either a nested *Tree or an opaque
// leaf value (string, number, bool, nil or list).
type Tree struct {
	keys   []string
	values map[string]any
}

// New creates an empty tree
func New() *Tree {
	return &Tree{values: make(map[string]any)}
}

// Len returns the number of keys at the top level
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Keys returns the top-level keys in insertion order
func (t *Tree) Keys() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, len(t.keys))
	copy(keys, t.keys)
	return keys
}

// Get returns the value stored under key
func (t *Tree) Get(key string) (any, bool) {
	if t == nil {
		return nil, false
	}
	v, ok := t.values[key]
	return v, ok
}

// Set stores value under key. A new key is appended; an existing key keeps
// its position.
func (t *Tree) Set(key string, value any) {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

// Clone returns a deep copy of the tree. Nested trees and lists are copied;
// other leaves are immutable values and are shared.
func (t *Tree) Clone() *Tree {
	out := New()
	if t == nil {
		return out
	}
	for _, k := range t.keys {
		out.Set(k, cloneValue(t.values[k]))
	}
	return out
}

// Equal reports whether a and b hold the same keys and values at every
// level. Key order is ignored.
func Equal(a, b *Tree) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, k := range a.Keys() {
		av, _ := a.Get(k)
		bv, ok := b.Get(k)
		if !ok {
			return false
		}

		at, aIsTree := av.(*Tree)
		bt, bIsTree := bv.(*Tree)
		switch {
		case aIsTree && bIsTree:
			if !Equal(at, bt) {
				return false
			}
		case aIsTree != bIsTree:
			return false
		default:
			if !reflect.DeepEqual(av, bv) {
				return false
			}
		}
	}
	return true
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case *Tree:
		return v.Clone()
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = cloneValue(item)
		}
		return items
	default:
		return v
	}
}

func isTree(v any) bool {
	_, ok := v.(*Tree)
	return ok
}
