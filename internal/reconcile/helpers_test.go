package reconcile

import "sort"

// fromMap builds a tree from nested maps with keys sorted at every level
func fromMap(m map[string]any) *Tree {
	t := New()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if sub, ok := m[k].(map[string]any); ok {
			t.Set(k, fromMap(sub))
			continue
		}
		t.Set(k, m[k])
	}
	return t
}

// toMap converts a tree into nested maps, dropping order
func toMap(t *Tree) map[string]any {
	out := make(map[string]any, t.Len())
	for _, k := range t.Keys() {
		v, _ := t.Get(k)
		if sub, ok := v.(*Tree); ok {
			out[k] = toMap(sub)
			continue
		}
		out[k] = v
	}
	return out
}
