package reconcile

import (
	"errors"
	"fmt"
)

// ErrPathNotFound is the lookup error returned when a path does not exist
// in a tree.
var ErrPathNotFound = errors.New("path not found")

// KeySet is the set of every path reachable in a tree, in depth-first
// document order.
type KeySet struct {
	paths []Path
	index map[string]struct{}
}

func newKeySet() *KeySet {
	return &KeySet{index: make(map[string]struct{})}
}

func (s *KeySet) add(p Path) {
	id := p.id()
	if _, ok := s.index[id]; ok {
		return
	}
	s.index[id] = struct{}{}
	s.paths = append(s.paths, p)
}

// Len returns the number of paths in the set
func (s *KeySet) Len() int {
	return len(s.paths)
}

// Contains reports whether p is in the set
func (s *KeySet) Contains(p Path) bool {
	_, ok := s.index[p.id()]
	return ok
}

// Paths returns the paths in enumeration order
func (s *KeySet) Paths() []Path {
	paths := make([]Path, len(s.paths))
	copy(paths, s.paths)
	return paths
}

// dotted returns the dotted form of every path in enumeration order
func (s *KeySet) dotted() []string {
	out := make([]string, len(s.paths))
	for i, p := range s.paths {
		out[i] = p.String()
	}
	return out
}

// EnumerateKeys walks t depth-first and records the path of every key at
// every level. Containers contribute their own path before the paths of
// their descendants.
func EnumerateKeys(t *Tree) *KeySet {
	set := newKeySet()

	var walk func(node *Tree, prefix Path)
	walk = func(node *Tree, prefix Path) {
		for _, k := range node.Keys() {
			p := prefix.Child(k)
			set.add(p)
			if sub, ok := node.values[k].(*Tree); ok {
				walk(sub, p)
			}
		}
	}
	walk(t, nil)

	return set
}

// Leaves returns the paths of all non-container values in document order.
// Empty containers contribute nothing.
func Leaves(t *Tree) []Path {
	var leaves []Path
	for _, p := range EnumerateKeys(t).paths {
		v, _ := ResolvePath(t, p)
		if !isTree(v) {
			leaves = append(leaves, p)
		}
	}
	return leaves
}

// ResolvePath descends t one segment at a time and returns the value found
// at p. The empty path resolves to t itself. A missing segment, or a leaf
// reached while segments remain, yields an error wrapping ErrPathNotFound.
func ResolvePath(t *Tree, p Path) (any, error) {
	var current any = t
	for i, seg := range p {
		node, ok := current.(*Tree)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a mapping", ErrPathNotFound, p[:i].String())
		}
		v, ok := node.Get(seg)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrPathNotFound, p[:i+1].String())
		}
		current = v
	}
	return current, nil
}
