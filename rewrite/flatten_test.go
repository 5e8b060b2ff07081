package rewrite

import (
	"testing"

	"pgregory.net/rapid"
)

func TestFlatten(t *testing.T) {
	cfg := Config{
		"DEBUG": true,
		"process": map[string]any{
			"env": map[string]any{
				"NODE_ENV": "production",
			},
		},
	}

	got := flatten(cfg)

	want := map[string]bool{
		"DEBUG":                true,
		"process":              true,
		"process.env":          true,
		"process.env.NODE_ENV": true,
	}

	if len(got) != len(want) {
		t.Fatalf("candidate count = %d, want %d", len(got), len(want))
	}

	values := make(map[string]any, len(got))

	for _, c := range got {
		if !want[c.key] {
			t.Errorf("unexpected key %q", c.key)
		}

		values[c.key] = c.value
	}

	if v := values["process.env.NODE_ENV"]; v != "production" {
		t.Errorf("NODE_ENV value = %v, want %q", v, "production")
	}

	if v := values["DEBUG"]; v != true {
		t.Errorf("DEBUG value = %v, want true", v)
	}
}

func TestFlattenEmpty(t *testing.T) {
	if got := flatten(nil); len(got) != 0 {
		t.Errorf("flatten(nil) = %v, want empty", got)
	}

	if got := flatten(Config{}); len(got) != 0 {
		t.Errorf("flatten(empty) = %v, want empty", got)
	}
}

func TestFlattenCycle(t *testing.T) {
	inner := map[string]any{}
	inner["self"] = inner

	cfg := Config{"root": inner}

	got := flatten(cfg)

	// root and root.self are reachable without re-entering the cycle;
	// anything deeper is not emitted.
	want := []string{"root", "root.self"}

	if len(got) != len(want) {
		t.Fatalf("candidate count = %d, want %d: %v", len(got), len(want), got)
	}

	for i, key := range want {
		if got[i].key != key {
			t.Errorf("key[%d] = %q, want %q", i, got[i].key, key)
		}
	}
}

func TestFlattenSharedSubtree(t *testing.T) {
	shared := map[string]any{"x": 1}

	cfg := Config{
		"a": shared,
		"b": shared,
	}

	got := flatten(cfg)

	// A diamond is not a cycle: the shared subtree is emitted once per
	// distinct path.
	want := []string{"a", "a.x", "b", "b.x"}

	if len(got) != len(want) {
		t.Fatalf("candidate count = %d, want %d: %v", len(got), len(want), got)
	}

	for i, key := range want {
		if got[i].key != key {
			t.Errorf("key[%d] = %q, want %q", i, got[i].key, key)
		}
	}
}

func TestFlattenCycleAnyKeyed(t *testing.T) {
	// YAML decoding can yield map[any]any; a self-reference through one
	// must be recognized even though matching converts it to a string-keyed
	// copy with a fresh identity.
	inner := map[any]any{}
	inner["self"] = inner

	cfg := Config{"root": inner}

	got := flatten(cfg)

	want := []string{"root", "root.self"}

	if len(got) != len(want) {
		t.Fatalf("candidate count = %d, want %d: %v", len(got), len(want), got)
	}

	for i, key := range want {
		if got[i].key != key {
			t.Errorf("key[%d] = %q, want %q", i, got[i].key, key)
		}
	}
}

func TestFlattenSkipsEmptyKeys(t *testing.T) {
	cfg := Config{
		"":  "everything",
		"a": map[string]any{"": 1, "b": 2},
	}

	got := flatten(cfg)

	// An empty key would compile to a regex matching every import source.
	want := []string{"a", "a.b"}

	if len(got) != len(want) {
		t.Fatalf("candidate count = %d, want %d: %v", len(got), len(want), got)
	}

	for i, key := range want {
		if got[i].key != key {
			t.Errorf("key[%d] = %q, want %q", i, got[i].key, key)
		}
	}
}

func TestFlattenNonStringKeys(t *testing.T) {
	cfg := Config{
		"versions": map[any]any{
			2:    "two",
			true: "skipped",
		},
	}

	got := flatten(cfg)

	keys := make(map[string]bool, len(got))
	for _, c := range got {
		keys[c.key] = true
	}

	if !keys["versions.2"] {
		t.Error("expected numeric key to flatten as versions.2")
	}

	if keys["versions.true"] {
		t.Error("non-string, non-numeric key should be omitted")
	}
}

func TestFlattenTerminates(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := Config(genNested(t, 0))

		// Optionally tie the root back into itself, through either map
		// representation.
		if len(cfg) > 0 && rapid.Bool().Draw(t, "cycle") {
			if rapid.Bool().Draw(t, "anyKeyed") {
				loop := map[any]any{}
				loop["self"] = loop
				cfg["loop"] = loop
			} else {
				cfg["loop"] = map[string]any(cfg)
			}
		}

		for _, c := range flatten(cfg) {
			if c.key == "" {
				t.Fatalf("flatten emitted empty key")
			}
		}
	})
}

func genNested(t *rapid.T, depth int) map[string]any {
	n := rapid.IntRange(0, 4).Draw(t, "n")
	m := make(map[string]any, n)

	for range n {
		k := rapid.StringMatching(`[a-z]{0,8}`).Draw(t, "key")

		switch {
		case depth < 3 && rapid.Bool().Draw(t, "nest"):
			sub := genNested(t, depth+1)

			if rapid.Bool().Draw(t, "anyKeyed") {
				loop := make(map[any]any, len(sub)+1)
				for sk, sv := range sub {
					loop[sk] = sv
				}

				if rapid.Bool().Draw(t, "selfRef") {
					loop["self"] = loop
				}

				m[k] = loop
			} else {
				m[k] = sub
			}

		default:
			m[k] = rapid.String().Draw(t, "value")
		}
	}

	return m
}
