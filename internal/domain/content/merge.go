package content

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
)

// Extensions holds persisted object members unknown to the typed model, keyed
// by their JSON path segments. Nested maps mirror the document structure.
type Extensions map[string]any

func (e Extensions) clone() Extensions {
	if e == nil {
		return nil
	}
	return Extensions(cloneTree(map[string]any(e)).(map[string]any))
}

// without returns a copy of e with the member at path removed. Parents left
// empty are removed too.
func (e Extensions) without(path ...string) Extensions {
	if len(e) == 0 || len(path) == 0 {
		return e
	}
	out := e.clone()
	prune(map[string]any(out), path)
	if len(out) == 0 {
		return nil
	}
	return out
}

func prune(tree map[string]any, path []string) {
	if len(path) == 1 {
		delete(tree, path[0])
		return
	}
	child, ok := tree[path[0]].(map[string]any)
	if !ok {
		return
	}
	prune(child, path[1:])
	if len(child) == 0 {
		delete(tree, path[0])
	}
}

// Merge overlays a persisted JSON document onto base and returns the fully
// populated result.
//
// Objects merge member by member at every depth: persisted members override,
// absent members keep the base value and unknown members are carried in
// Extensions. Arrays are replaced wholesale when present. A null member or a
// member whose JSON kind differs from the base is treated as absent.
//
// A persisted member that survives the kind checks but still does not fit the
// typed model, such as an array element of the wrong shape, keeps the base
// value for that member only.
//
// An error is returned only when raw is not a JSON object; callers fall back to
// base in that case.
func Merge(base Document, raw []byte) (Document, error) {
	doc, _, err := MergeFields(base, raw)
	return doc, err
}

// MergeFields is Merge that also reports the dotted paths of persisted members
// that were replaced by their base value because they did not decode.
func MergeFields(base Document, raw []byte) (Document, []string, error) {
	var persisted any
	if err := json.Unmarshal(raw, &persisted); err != nil {
		return base, nil, newMalformedError("persisted content is not valid JSON", err)
	}
	overlay, ok := persisted.(map[string]any)
	if !ok {
		return base, nil, newMalformedError("persisted content is not a JSON object", nil)
	}

	baseTree, err := toTree(base)
	if err != nil {
		return base, nil, err
	}

	merged := mergeValue(baseTree, overlay).(map[string]any)

	var dropped []string
	var out Document
	if err := decodeTree(merged, &out); err != nil {
		merged, dropped = salvage(baseTree, merged)
		out = Document{}
		if err := decodeTree(merged, &out); err != nil {
			return base, dropped, newMalformedError("merged content does not decode", err)
		}
	}

	known, err := typedTree(out)
	if err != nil {
		return base, dropped, err
	}
	out.Extensions = Extensions(residual(merged, known))

	return out.Normalize(), dropped, nil
}

// salvage rebuilds merged on top of base one member at a time. Members that
// decode are kept; objects that do not are retried member by member; any other
// member keeps its base value and its path is reported.
func salvage(base, merged map[string]any) (map[string]any, []string) {
	root := cloneTree(base).(map[string]any)
	var dropped []string
	acceptMembers(root, root, base, merged, nil, &dropped)
	return root, dropped
}

// acceptMembers requires root to decode on entry and keeps it decoding.
func acceptMembers(root, target, base, merged map[string]any, path []string, dropped *[]string) {
	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		value := merged[k]
		prev, had := target[k]
		target[k] = cloneTree(value)
		if decodes(root) {
			continue
		}

		memberPath := append(append([]string(nil), path...), k)
		baseObj, baseIsObj := base[k].(map[string]any)
		valueObj, valueIsObj := value.(map[string]any)
		if baseIsObj && valueIsObj {
			sub := cloneTree(baseObj).(map[string]any)
			target[k] = sub
			acceptMembers(root, sub, baseObj, valueObj, memberPath, dropped)
			continue
		}

		if had {
			target[k] = prev
		} else {
			delete(target, k)
		}
		*dropped = append(*dropped, strings.Join(memberPath, "."))
	}
}

func decodes(tree map[string]any) bool {
	var doc Document
	return decodeTree(tree, &doc) == nil
}

// Encode serializes the document, extensions included, to the persisted JSON
// layout.
func Encode(doc Document) ([]byte, error) {
	tree, err := toTree(doc.Normalize())
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(tree); err != nil {
		return nil, NewDomainError(ErrCodeInternal, "encode content", err, nil)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// toTree renders the typed document plus its extensions as a generic JSON tree.
func toTree(doc Document) (map[string]any, error) {
	tree, err := typedTree(doc)
	if err != nil {
		return nil, err
	}
	if len(doc.Extensions) > 0 {
		graft(tree, cloneTree(map[string]any(doc.Extensions)).(map[string]any))
	}
	return tree, nil
}

func typedTree(doc Document) (map[string]any, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, NewDomainError(ErrCodeInternal, "encode content", err, nil)
	}
	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, NewDomainError(ErrCodeInternal, "decode content tree", err, nil)
	}
	return tree, nil
}

func decodeTree(tree map[string]any, out *Document) error {
	data, err := json.Marshal(tree)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func mergeValue(base, overlay any) any {
	if overlay == nil {
		return base
	}

	switch b := base.(type) {
	case nil:
		return overlay
	case map[string]any:
		o, ok := overlay.(map[string]any)
		if !ok {
			return base
		}
		out := make(map[string]any, len(b)+len(o))
		for k, v := range b {
			out[k] = v
		}
		for k, v := range o {
			if existing, ok := b[k]; ok {
				out[k] = mergeValue(existing, v)
				continue
			}
			if v != nil {
				out[k] = v
			}
		}
		return out
	case []any:
		if o, ok := overlay.([]any); ok {
			return o
		}
		return base
	case string:
		if o, ok := overlay.(string); ok {
			return o
		}
		return base
	case float64:
		if o, ok := overlay.(float64); ok {
			return o
		}
		return base
	case bool:
		if o, ok := overlay.(bool); ok {
			return o
		}
		return base
	default:
		return base
	}
}

// residual returns the members of merged that known does not contain.
func residual(merged, known map[string]any) map[string]any {
	var out map[string]any
	for k, v := range merged {
		kv, ok := known[k]
		if !ok {
			if out == nil {
				out = make(map[string]any)
			}
			out[k] = v
			continue
		}
		vm, vok := v.(map[string]any)
		km, kok := kv.(map[string]any)
		if !vok || !kok {
			continue
		}
		if nested := residual(vm, km); len(nested) > 0 {
			if out == nil {
				out = make(map[string]any)
			}
			out[k] = nested
		}
	}
	return out
}

// graft inserts extension members into tree without overwriting typed members.
func graft(tree, ext map[string]any) {
	for k, v := range ext {
		existing, ok := tree[k]
		if !ok {
			tree[k] = v
			continue
		}
		em, eok := existing.(map[string]any)
		vm, vok := v.(map[string]any)
		if eok && vok {
			graft(em, vm)
		}
	}
}

func cloneTree(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = cloneTree(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneTree(item)
		}
		return out
	default:
		return v
	}
}
