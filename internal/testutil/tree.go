package testutil

import (
	"sort"

	"codeberg.org/snonux/i18nsync/internal/reconcile"
)

// TreeFromMap builds a tree from nested maps. Keys are sorted at every level
// so fixtures have a stable order.
func TreeFromMap(m map[string]any) *reconcile.Tree {
	t := reconcile.New()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if sub, ok := m[k].(map[string]any); ok {
			t.Set(k, TreeFromMap(sub))
			continue
		}
		t.Set(k, m[k])
	}
	return t
}

// TreeToMap converts a tree into nested maps for order-insensitive asserts
func TreeToMap(t *reconcile.Tree) map[string]any {
	out := make(map[string]any, t.Len())
	for _, k := range t.Keys() {
		v, _ := t.Get(k)
		if sub, ok := v.(*reconcile.Tree); ok {
			out[k] = TreeToMap(sub)
			continue
		}
		out[k] = v
	}
	return out
}
