package reconcile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() *Tree {
	inner := New()
	inner.Set("title", "Home")
	inner.Set("subtitle", "Welcome")

	t := New()
	t.Set("page", inner)
	t.Set("count", 3.0)
	t.Set("tags", []any{"a", "b"})
	return t
}

func TestEnumerateKeys(t *testing.T) {
	keys := EnumerateKeys(sampleTree())

	assert.Equal(t, []string{"page", "page.title", "page.subtitle", "count", "tags"}, keys.dotted())
	assert.Equal(t, 5, keys.Len())
	assert.True(t, keys.Contains(Path{"page"}))
	assert.True(t, keys.Contains(Path{"page", "title"}))
	assert.False(t, keys.Contains(Path{"tags", "0"}), "lists are leaves and must not be descended into")
	assert.False(t, keys.Contains(Path{"missing"}))
}

func TestEnumerateKeys_Empty(t *testing.T) {
	assert.Equal(t, 0, EnumerateKeys(New()).Len())
	assert.Equal(t, 0, EnumerateKeys(nil).Len())
}

func TestEnumerateKeys_DottedKeys(t *testing.T) {
	nested := New()
	nested.Set("b", "nested")

	tree := New()
	tree.Set("a.b", "flat")
	tree.Set("a", nested)

	keys := EnumerateKeys(tree)
	assert.Equal(t, 3, keys.Len())
	assert.True(t, keys.Contains(Path{"a.b"}))
	assert.True(t, keys.Contains(Path{"a", "b"}))

	flat, err := ResolvePath(tree, Path{"a.b"})
	require.NoError(t, err)
	assert.Equal(t, "flat", flat)

	deep, err := ResolvePath(tree, Path{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "nested", deep)
}

func TestLeaves(t *testing.T) {
	tree := sampleTree()
	tree.Set("empty", New())

	var got []string
	for _, p := range Leaves(tree) {
		got = append(got, p.String())
	}
	assert.Equal(t, []string{"page.title", "page.subtitle", "count", "tags"}, got)
}

func TestResolvePath(t *testing.T) {
	tree := sampleTree()

	tests := []struct {
		name    string
		path    Path
		want    any
		wantErr bool
	}{
		{name: "leaf", path: ParsePath("page.title"), want: "Home"},
		{name: "top level leaf", path: ParsePath("count"), want: 3.0},
		{name: "list leaf", path: ParsePath("tags"), want: []any{"a", "b"}},
		{name: "missing key", path: ParsePath("page.footer"), wantErr: true},
		{name: "missing root", path: ParsePath("nope"), wantErr: true},
		{name: "descend into leaf", path: ParsePath("count.value"), wantErr: true},
		{name: "descend into list", path: ParsePath("tags.0"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePath(tree, tt.path)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrPathNotFound))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolvePath_Container(t *testing.T) {
	tree := sampleTree()

	v, err := ResolvePath(tree, Path{"page"})
	require.NoError(t, err)
	sub, ok := v.(*Tree)
	require.True(t, ok)
	assert.Equal(t, []string{"title", "subtitle"}, sub.Keys())

	root, err := ResolvePath(tree, nil)
	require.NoError(t, err)
	assert.Same(t, tree, root)
}

func TestPath(t *testing.T) {
	assert.Nil(t, ParsePath(""))
	assert.Equal(t, Path{"a", "b", "c"}, ParsePath("a.b.c"))
	assert.Equal(t, "a.b.c", Path{"a", "b", "c"}.String())

	parent := Path{"a"}
	child := parent.Child("b")
	assert.Equal(t, Path{"a", "b"}, child)
	assert.Equal(t, Path{"a"}, parent)

	assert.True(t, Path{"a", "b"}.Equal(Path{"a", "b"}))
	assert.False(t, Path{"a.b"}.Equal(Path{"a", "b"}))
	assert.NotEqual(t, Path{"a.b"}.id(), Path{"a", "b"}.id())
	assert.NotEqual(t, Path{"1:a"}.id(), Path{"1", "a"}.id())
}
