package rewrite

import (
	"reflect"
	"slices"
	"strconv"
)

// candidate pairs a flattened dot-joined key with the value bound to it.
// Candidates are derived per match operation and have no persistent
// identity.
type candidate struct {
	key   string
	value any
}

// flatten produces every dot-joined path from the root of cfg to every
// reachable node, intermediate and leaf alike. A nil or empty config yields
// nil. Keys within one level are visited in sorted order so that discovery
// order, and therefore ranking tiebreaks, are deterministic. Empty keys are
// skipped: they would flatten to candidates that match everything.
//
// Flattening is cycle-safe: a mapping reachable from itself is not
// re-entered, so self-referential configs terminate with a finite list.
func flatten(cfg Config) []candidate {
	if len(cfg) == 0 {
		return nil
	}

	var out []candidate

	onPath := make(map[uintptr]bool)

	var walk func(prefix string, m map[string]any, ptr uintptr)

	walk = func(prefix string, m map[string]any, ptr uintptr) {
		if onPath[ptr] {
			return
		}

		onPath[ptr] = true
		defer delete(onPath, ptr)

		for _, k := range sortedKeys(m) {
			if k == "" {
				continue
			}

			key := k
			if prefix != "" {
				key = prefix + "." + k
			}

			v := m[k]
			out = append(out, candidate{key: key, value: v})

			if sub, subPtr, ok := asMap(v); ok {
				walk(key, sub, subPtr)
			}
		}
	}

	root := map[string]any(cfg)
	walk("", root, reflect.ValueOf(root).Pointer())

	return out
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

// asMap normalizes nested mapping values. YAML decoding can yield either
// map[string]any or map[any]any depending on the source document; non-string
// keys are stringified when numeric and silently omitted otherwise.
//
// The returned pointer identifies the ORIGINAL map, never a converted copy,
// so the cycle guard recognizes a self-referential map[any]any on re-entry.
func asMap(v any) (map[string]any, uintptr, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, reflect.ValueOf(m).Pointer(), true

	case Config:
		raw := map[string]any(m)

		return raw, reflect.ValueOf(raw).Pointer(), true

	case map[any]any:
		out := make(map[string]any, len(m))

		for k, val := range m {
			name, ok := keyString(k)
			if !ok {
				continue
			}

			out[name] = val
		}

		return out, reflect.ValueOf(m).Pointer(), true

	default:
		return nil, 0, false
	}
}

func keyString(k any) (string, bool) {
	switch v := k.(type) {
	case string:
		return v, true

	case int:
		return strconv.Itoa(v), true

	case int64:
		return strconv.FormatInt(v, 10), true

	case uint64:
		return strconv.FormatUint(v, 10), true

	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true

	default:
		return "", false
	}
}
