package reconcile

// WrapAtPath builds a single-branch tree with one container per
// non-terminal segment of p and value at the last one. An empty path yields
// an empty tree.
func WrapAtPath(value any, p Path) *Tree {
	root := New()
	if len(p) == 0 {
		return root
	}

	node := root
	for _, seg := range p[:len(p)-1] {
		child := New()
		node.Set(seg, child)
		node = child
	}
	node.Set(p[len(p)-1], value)

	return root
}

// Merge deep-merges b into a copy of a. For every key of b, two containers
// are merged recursively; otherwise b's value replaces or adds the key.
// Keys only present in a are kept. Neither input is modified and the result
// shares no containers with them.
func Merge(a, b *Tree) *Tree {
	out := a.Clone()
	MergeInto(out, b)
	return out
}

// MergeInto deep-merges src into dst in place using the rules of Merge.
// Values taken from src are copied, so dst never shares containers with
// src. The cost is proportional to the size of src, which keeps repeated
// single-branch merges into a growing tree linear overall.
func MergeInto(dst, src *Tree) {
	for _, k := range src.Keys() {
		sv := src.values[k]
		if dv, ok := dst.values[k]; ok {
			dt, dIsTree := dv.(*Tree)
			st, sIsTree := sv.(*Tree)
			if dIsTree && sIsTree {
				MergeInto(dt, st)
				continue
			}
		}
		dst.Set(k, cloneValue(sv))
	}
}
