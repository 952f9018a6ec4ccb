package binder

import (
	"maps"
	"mime/multipart"
	"slices"
	"strconv"
	"strings"
)

// Expand turns flat form keys into nested values. "user[name]" becomes a map
// under "user", "tags[]" appends to a list, and maps keyed 0..n-1 become
// lists. A key repeated without brackets yields a list of its values.
func Expand(values map[string][]string, files map[string][]*multipart.FileHeader) map[string]any {
	root := make(map[string]any, len(values)+len(files))

	for _, key := range slices.Sorted(maps.Keys(values)) {
		vs := values[key]
		segs := splitKey(key)
		for _, v := range vs {
			insert(root, segs, v, len(vs) > 1)
		}
	}
	for _, key := range slices.Sorted(maps.Keys(files)) {
		fhs := files[key]
		segs := splitKey(key)
		for _, fh := range fhs {
			insert(root, segs, fh, len(fhs) > 1)
		}
	}

	for k, v := range root {
		root[k] = normalize(v)
	}
	return root
}

// splitKey splits "a[b][]" into ["a", "b", ""]. Malformed keys stay whole.
func splitKey(key string) []string {
	open := strings.IndexByte(key, '[')
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return []string{key}
	}

	segs := []string{key[:open]}
	rest := key[open:]
	for rest != "" {
		if rest[0] != '[' {
			return []string{key}
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return []string{key}
		}
		segs = append(segs, rest[1:end])
		rest = rest[end+1:]
	}
	return segs
}

func insert(node map[string]any, segs []string, v any, multi bool) {
	head := segs[0]
	if len(segs) == 1 {
		if multi {
			list, _ := node[head].([]any)
			node[head] = append(list, v)
			return
		}
		node[head] = v
		return
	}

	if segs[1] == "" {
		list, _ := node[head].([]any)
		if len(segs) == 2 {
			node[head] = append(list, v)
			return
		}
		child := make(map[string]any)
		insert(child, segs[2:], v, multi)
		node[head] = append(list, child)
		return
	}

	child, ok := node[head].(map[string]any)
	if !ok {
		child = make(map[string]any)
		node[head] = child
	}
	insert(child, segs[1:], v, multi)
}

func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			t[k] = normalize(child)
		}
		if list, ok := asList(t); ok {
			return list
		}
		return t
	case []any:
		for i, child := range t {
			t[i] = normalize(child)
		}
		return t
	}
	return v
}

// asList converts a map keyed "0".."n-1" into a list.
func asList(m map[string]any) ([]any, bool) {
	if len(m) == 0 {
		return nil, false
	}
	list := make([]any, len(m))
	for k, v := range m {
		i, err := strconv.Atoi(k)
		if err != nil || i < 0 || i >= len(m) || strconv.Itoa(i) != k {
			return nil, false
		}
		list[i] = v
	}
	return list, true
}
