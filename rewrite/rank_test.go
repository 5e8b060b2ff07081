package rewrite

import (
	"slices"
	"testing"
)

func TestRankSpecificity(t *testing.T) {
	cands := []candidate{
		{key: "a"},
		{key: "a.b.c"},
		{key: "a.b"},
	}

	got := rank(cands)

	want := []string{"a.b.c", "a.b", "a"}
	for i, key := range want {
		if got[i].key != key {
			t.Errorf("rank[%d] = %q, want %q", i, got[i].key, key)
		}
	}
}

func TestRankStableTiebreak(t *testing.T) {
	// Equal-length keys keep their discovery order.
	cands := []candidate{
		{key: "bb"},
		{key: "aa"},
		{key: "cc"},
	}

	got := rank(cands)

	want := []string{"bb", "aa", "cc"}
	for i, key := range want {
		if got[i].key != key {
			t.Errorf("rank[%d] = %q, want %q", i, got[i].key, key)
		}
	}
}

func TestKeys(t *testing.T) {
	cfg := Config{
		"a": map[string]any{
			"b": map[string]any{
				"c": 1,
			},
		},
	}

	got := Keys(cfg)

	want := []string{"a.b.c", "a.b", "a"}
	if !slices.Equal(got, want) {
		t.Errorf("Keys = %v, want %v", got, want)
	}
}
