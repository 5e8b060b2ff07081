package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ardnew/subst/log"
)

func TestParseDefineValue(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want any
	}{
		{"true", true},
		{"false", false},
		{"1", true}, // ParseBool accepts 1/0
		{"42", int64(42)},
		{"-7", int64(-7)},
		{"0x10", int64(16)},
		{"1.5", 1.5},
		{"production", "production"},
		{"", ""},
	} {
		if got := parseDefineValue(tt.in); got != tt.want {
			t.Errorf("parseDefineValue(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestLoadConfigDefineOverride(t *testing.T) {
	path := writeFile(t, "subst.yaml", "DEBUG: true\nLIMIT: 10\n")

	cfg, err := loadConfig(path, map[string]string{
		"DEBUG": "false",
		"EXTRA": "added",
	})
	if err != nil {
		t.Fatal(err)
	}

	// Inline defines override file entries of the same key.
	if got := cfg["DEBUG"]; got != false {
		t.Errorf("DEBUG = %v, want false", got)
	}

	if got := cfg["EXTRA"]; got != "added" {
		t.Errorf("EXTRA = %v, want added", got)
	}

	if _, ok := cfg["LIMIT"]; !ok {
		t.Error("file entry LIMIT missing")
	}
}

func TestLoadConfigDefinesOnly(t *testing.T) {
	cfg, err := loadConfig("", map[string]string{"DEBUG": "true"})
	if err != nil {
		t.Fatal(err)
	}

	if got := cfg["DEBUG"]; got != true {
		t.Errorf("DEBUG = %v, want true", got)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	if err == nil {
		t.Fatal("loadConfig with a missing file must fail")
	}
}

func TestRewriteRun(t *testing.T) {
	source := writeFile(t, "app.js",
		"process.env.NODE_ENV === \"production\";\ntypeof window;\n")
	config := writeFile(t, "subst.yaml", `
process:
  env:
    NODE_ENV: production
"typeof window": undefined
`)
	output := filepath.Join(t.TempDir(), "out.js")

	r := Rewrite{
		Config: config,
		Source: source,
		Output: output,
	}

	var logger log.Logger

	if err := r.Run(context.Background(), logger); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := string(data), "true;\n\"undefined\";\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRewriteRunDefines(t *testing.T) {
	source := writeFile(t, "app.js", "DEBUG;\n")
	output := filepath.Join(t.TempDir(), "out.js")

	r := Rewrite{
		Define: map[string]string{"DEBUG": "false"},
		Source: source,
		Output: output,
	}

	if err := r.Run(context.Background(), log.Logger{}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := string(data), "false;\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRewriteRunParseError(t *testing.T) {
	source := writeFile(t, "bad.js", "=== nonsense ===\n")

	r := Rewrite{Source: source}

	if err := r.Run(context.Background(), log.Logger{}); err == nil {
		t.Fatal("Run with unparseable source must fail")
	}
}
