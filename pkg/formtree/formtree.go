// Package formtree decodes bracketed form field names such as
// "popup[analytics][hosts][google.com][name]" into nested maps.
//
// Leaves are strings, inner nodes are map[string]any. When a key is sent
// more than once the last value wins. Empty brackets ("list[]") append
// using the next free numeric index.
package formtree

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// Tree is a decoded form.
type Tree map[string]any

// Parse decodes all fields of values into a Tree.
// Keys are processed in sorted order so results are deterministic.
func Parse(values url.Values) Tree {
	out := Tree{}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, key := range keys {
		vals := values[key]
		if len(vals) == 0 {
			continue
		}
		path, ok := splitKey(key)
		if !ok {
			continue
		}
		if len(path) > 1 && path[len(path)-1] == "" {
			// "name[]" keeps every submitted value.
			for _, v := range vals {
				insert(out, path, v)
			}
			continue
		}
		insert(out, path, vals[len(vals)-1])
	}
	return out
}

// splitKey turns `a[b][c]` into [a b c]. Malformed keys are rejected.
func splitKey(key string) ([]string, bool) {
	open := strings.IndexByte(key, '[')
	if open < 0 {
		return []string{key}, key != ""
	}
	if open == 0 {
		return nil, false
	}

	path := []string{key[:open]}
	rest := key[open:]
	for rest != "" {
		if rest[0] != '[' {
			return nil, false
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, false
		}
		path = append(path, rest[1:end])
		rest = rest[end+1:]
	}
	return path, true
}

func insert(node map[string]any, path []string, value string) {
	for i, seg := range path {
		if seg == "" {
			seg = nextIndex(node)
		}
		if i == len(path)-1 {
			node[seg] = value
			return
		}
		child, ok := node[seg].(map[string]any)
		if !ok {
			child = map[string]any{}
			node[seg] = child
		}
		node = child
	}
}

func nextIndex(node map[string]any) string {
	n := 0
	for k := range node {
		if i, err := strconv.Atoi(k); err == nil && i >= n {
			n = i + 1
		}
	}
	return strconv.Itoa(n)
}

// Map returns the subtree stored under key, or nil.
func (t Tree) Map(key string) map[string]any {
	m, _ := t[key].(map[string]any)
	return m
}

// String returns the leaf stored under key, or "".
func (t Tree) String(key string) string {
	s, _ := t[key].(string)
	return s
}
