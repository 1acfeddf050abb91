package document

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/goccy/go-yaml"

	"codeberg.org/snonux/i18nsync/internal/reconcile"
)

func decodeYAML(data []byte) (*reconcile.Tree, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: invalid UTF-8", ErrParse)
	}

	var root any
	if err := yaml.UnmarshalWithOptions(data, &root, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	switch root := root.(type) {
	case nil:
		return reconcile.New(), nil
	case yaml.MapSlice:
		return treeFromYAML(root), nil
	default:
		return nil, fmt.Errorf("%w: top-level YAML value is not a mapping", ErrParse)
	}
}

func treeFromYAML(ms yaml.MapSlice) *reconcile.Tree {
	t := reconcile.New()
	for _, item := range ms {
		t.Set(fmt.Sprint(item.Key), valueFromYAML(item.Value))
	}
	return t
}

func valueFromYAML(v any) any {
	switch v := v.(type) {
	case yaml.MapSlice:
		return treeFromYAML(v)
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = valueFromYAML(item)
		}
		return items
	default:
		return v
	}
}

func encodeYAML(t *reconcile.Tree) ([]byte, error) {
	out, err := yaml.MarshalWithOptions(toYAML(t),
		yaml.Indent(2),
		yaml.IndentSequence(true),
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func toYAML(v any) any {
	switch v := v.(type) {
	case *reconcile.Tree:
		ms := make(yaml.MapSlice, 0, v.Len())
		for _, k := range v.Keys() {
			child, _ := v.Get(k)
			ms = append(ms, yaml.MapItem{Key: k, Value: toYAML(child)})
		}
		return ms
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = toYAML(item)
		}
		return items
	case json.Number:
		// Numbers decoded from JSON would otherwise be written as strings
		if i, err := v.Int64(); err == nil {
			return i
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	default:
		return v
	}
}
