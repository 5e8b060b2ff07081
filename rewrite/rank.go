package rewrite

import "slices"

// rank orders candidates so the most specific key is tried first: nested
// keys like "process.env.NODE_ENV" must win over their own prefixes
// ("process.env", "process") when both could match the same node.
//
// The ordering is descending by key length with ties broken by discovery
// order. The sort is stable and the comparator takes both keys, so the
// result is deterministic on every host.
func rank(cands []candidate) []candidate {
	slices.SortStableFunc(cands, func(a, b candidate) int {
		return len(b.key) - len(a.key)
	})

	return cands
}

// Keys returns the flattened candidate keys of cfg in ranked,
// most-specific-first order.
func Keys(cfg Config) []string {
	cands := rank(flatten(cfg))

	keys := make([]string, len(cands))
	for i, c := range cands {
		keys[i] = c.key
	}

	return keys
}
