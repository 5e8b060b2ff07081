package tree

import (
	"errors"
	"testing"
)

func TestBuilderScalars(t *testing.T) {
	var b Builder

	for _, tt := range []struct {
		value any
		want  string
	}{
		{nil, "null"},
		{true, "true"},
		{false, "false"},
		{"production", `"production"`},
		{42, "42"},
		{int64(42), "42"},
		{uint8(7), "7"},
		{1.5, "1.5"},
		{float32(0.25), "0.25"},
	} {
		n, err := b.Literal(tt.value)
		if err != nil {
			t.Errorf("Literal(%#v): %v", tt.value, err)

			continue
		}

		if got := Format(n); got != tt.want {
			t.Errorf("Literal(%#v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestBuilderComposites(t *testing.T) {
	var b Builder

	n, err := b.Literal([]any{1, "two", nil})
	if err != nil {
		t.Fatal(err)
	}

	if got := Format(n); got != `[1, "two", null]` {
		t.Errorf("array = %q", got)
	}

	// Object fields render in sorted key order regardless of map order.
	n, err = b.Literal(map[string]any{
		"port":  8080,
		"debug": false,
		"host":  "localhost",
	})
	if err != nil {
		t.Fatal(err)
	}

	want := `{ "debug": false, "host": "localhost", "port": 8080 }`
	if got := Format(n); got != want {
		t.Errorf("object = %q, want %q", got, want)
	}
}

func TestBuilderNested(t *testing.T) {
	var b Builder

	n, err := b.Literal(map[string]any{
		"env": map[string]any{
			"flags": []any{true, false},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	want := `{ "env": { "flags": [true, false] } }`
	if got := Format(n); got != want {
		t.Errorf("nested = %q, want %q", got, want)
	}
}

func TestBuilderUnsupported(t *testing.T) {
	var b Builder

	for _, v := range []any{
		struct{}{},
		make(chan int),
		map[int]any{1: "x"},
	} {
		_, err := b.Literal(v)
		if !errors.Is(err, ErrLiteralValue) {
			t.Errorf("Literal(%#v) error = %v, want ErrLiteralValue", v, err)
		}
	}
}

func TestBuilderIsLiteral(t *testing.T) {
	var b Builder

	n, err := b.Literal("x")
	if err != nil {
		t.Fatal(err)
	}

	if !IsLiteral(n) {
		t.Errorf("Literal result %T is not a literal node", n)
	}

	if IsLiteral(&Ident{Name: "x"}) {
		t.Error("identifier reported as literal")
	}
}

func TestScalarValue(t *testing.T) {
	for _, tt := range []struct {
		node Node
		want any
		ok   bool
	}{
		{&String{Value: "s"}, "s", true},
		{&Number{Value: 2}, float64(2), true},
		{&Bool{Value: true}, true, true},
		{&Null{}, nil, true},
		{&Array{}, nil, false},
		{&Object{}, nil, false},
		{&Ident{Name: "x"}, nil, false},
	} {
		got, ok := ScalarValue(tt.node)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ScalarValue(%#v) = (%v, %v), want (%v, %v)",
				tt.node, got, ok, tt.want, tt.ok)
		}
	}
}

func TestClone(t *testing.T) {
	file, err := Parse(`import { a as b } from "mod";
a.b === "c";`)
	if err != nil {
		t.Fatal(err)
	}

	copied, ok := Clone(file).(*File)
	if !ok {
		t.Fatalf("Clone returned %T", Clone(file))
	}

	// Mutating the clone must not reach the original.
	decl := copied.Stmts[0].(*Import)
	decl.Specs[0].Imported = "changed"
	decl.Source.Value = "changed"

	orig := file.Stmts[0].(*Import)
	if orig.Specs[0].Imported != "a" {
		t.Errorf("original spec mutated: %+v", orig.Specs[0])
	}

	if orig.Source.Value != "mod" {
		t.Errorf("original source mutated: %+v", orig.Source)
	}

	if got, want := Format(copied.Stmts[1]), Format(file.Stmts[1]); got != want {
		t.Errorf("cloned stmt = %q, want %q", got, want)
	}
}
