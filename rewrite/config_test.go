package rewrite

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "subst.yaml", `
process:
  env:
    NODE_ENV: production
DEBUG: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := cfg["DEBUG"]; got != true {
		t.Errorf("DEBUG = %v, want true", got)
	}

	want := []string{"process.env.NODE_ENV", "process.env", "process", "DEBUG"}
	if got := Keys(cfg); !slices.Equal(got, want) {
		t.Errorf("Keys = %v, want %v", got, want)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, "subst.json", `{"process": {"env": {"NODE_ENV": "test"}}}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	got, _ := render(t, `process.env.NODE_ENV;`, cfg)
	if want := "\"test\";\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("Load of a missing file must fail")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, "bad.yaml", "process: [unclosed\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load of malformed YAML must fail")
	}
}
