package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"codeberg.org/snonux/i18nsync/internal/reconcile"
)

var jsonStyle = &pretty.Options{
	Indent:   "  ",
	SortKeys: false,
}

// decodeJSON walks the document with gjson, which iterates object members
// in the order they appear in the file.
func decodeJSON(data []byte) (*reconcile.Tree, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: invalid UTF-8", ErrParse)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrParse)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: top-level JSON value is not an object", ErrParse)
	}
	return treeFromJSON(root), nil
}

func treeFromJSON(obj gjson.Result) *reconcile.Tree {
	t := reconcile.New()
	obj.ForEach(func(key, value gjson.Result) bool {
		t.Set(key.String(), valueFromJSON(value))
		return true
	})
	return t
}

func valueFromJSON(r gjson.Result) any {
	switch {
	case r.IsObject():
		return treeFromJSON(r)
	case r.IsArray():
		items := make([]any, 0)
		r.ForEach(func(_, item gjson.Result) bool {
			items = append(items, valueFromJSON(item))
			return true
		})
		return items
	}

	switch r.Type {
	case gjson.String:
		return r.String()
	case gjson.Number:
		// Keep the literal so 1.0 or 1e3 is written back unchanged
		return json.Number(r.Raw)
	case gjson.True:
		return true
	case gjson.False:
		return false
	default:
		return nil
	}
}

// encodeJSON writes t compactly in tree order and lets pretty lay it out
func encodeJSON(t *reconcile.Tree) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, t); err != nil {
		return nil, err
	}

	out := pretty.PrettyOptions(buf.Bytes(), jsonStyle)
	if !bytes.HasSuffix(out, []byte("\n")) {
		out = append(out, '\n')
	}
	return out, nil
}

func writeJSON(buf *bytes.Buffer, v any) error {
	switch v := v.(type) {
	case *reconcile.Tree:
		buf.WriteByte('{')
		for i, k := range v.Keys() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeScalar(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			child, _ := v.Get(k)
			if err := writeJSON(buf, child); err != nil {
				return fmt.Errorf("key %q: %w", k, err)
			}
		}
		buf.WriteByte('}')
	case []any:
		buf.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		return writeScalar(buf, v)
	}
	return nil
}

// writeScalar encodes without HTML escaping so "<TRANSLATE THIS>" and
// non-ASCII text stay readable.
func writeScalar(buf *bytes.Buffer, v any) error {
	var scratch bytes.Buffer
	enc := json.NewEncoder(&scratch)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(unescapeLineSeparators(bytes.TrimSuffix(scratch.Bytes(), []byte("\n"))))
	return nil
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes that
// encoding/json always emits back into the literal runes. Escaped
// backslashes are copied as pairs so a literal "\\u2028" stays text.
func unescapeLineSeparators(b []byte) []byte {
	if !bytes.Contains(b, []byte(`\u202`)) {
		return b
	}

	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 >= len(b) {
			out = append(out, b[i])
			continue
		}
		if rest := b[i:]; bytes.HasPrefix(rest, []byte(`\u2028`)) || bytes.HasPrefix(rest, []byte(`\u2029`)) {
			if rest[5] == '8' {
				out = utf8.AppendRune(out, '\u2028')
			} else {
				out = utf8.AppendRune(out, '\u2029')
			}
			i += 5
			continue
		}
		out = append(out, b[i], b[i+1])
		i++
	}
	return out
}
