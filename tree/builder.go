package tree

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
)

// ErrLiteralValue reports a Go value that has no literal node representation.
var ErrLiteralValue = errors.New("unsupported literal value")

// LiteralBuilder converts an arbitrary Go value into a literal node.
// Implementations are injected into the substitution engine so it stays
// independent of any particular tree construction policy.
type LiteralBuilder interface {
	Literal(v any) (Node, error)
}

// Builder is the default LiteralBuilder. It maps strings, numbers, booleans,
// nil, maps, and slices to their literal node equivalents.
//
// Example:
//
//	var b tree.Builder
//	n, err := b.Literal(map[string]any{"debug": false})
type Builder struct{}

// Literal implements [LiteralBuilder].
func (b Builder) Literal(v any) (Node, error) {
	switch val := v.(type) {
	case nil:
		return &Null{}, nil

	case bool:
		return &Bool{Value: val}, nil

	case string:
		return &String{Value: val}, nil

	case int:
		return numberNode(float64(val)), nil

	case int8:
		return numberNode(float64(val)), nil

	case int16:
		return numberNode(float64(val)), nil

	case int32:
		return numberNode(float64(val)), nil

	case int64:
		return numberNode(float64(val)), nil

	case uint:
		return numberNode(float64(val)), nil

	case uint8:
		return numberNode(float64(val)), nil

	case uint16:
		return numberNode(float64(val)), nil

	case uint32:
		return numberNode(float64(val)), nil

	case uint64:
		return numberNode(float64(val)), nil

	case float32:
		return numberNode(float64(val)), nil

	case float64:
		return numberNode(val), nil

	case []any:
		return b.arrayNode(val)

	case map[string]any:
		return b.objectNode(val)

	default:
		return nil, fmt.Errorf("%w: %T", ErrLiteralValue, v)
	}
}

func numberNode(f float64) *Number {
	return &Number{
		Value: f,
		Raw:   strconv.FormatFloat(f, 'f', -1, 64),
	}
}

func (b Builder) arrayNode(vals []any) (Node, error) {
	elems := make([]Node, len(vals))

	for i, v := range vals {
		n, err := b.Literal(v)
		if err != nil {
			return nil, err
		}

		elems[i] = n
	}

	return &Array{Elems: elems}, nil
}

// objectNode builds an object literal with fields sorted by key so that
// synthesized nodes render deterministically.
func (b Builder) objectNode(m map[string]any) (Node, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	fields := make([]*Field, 0, len(keys))

	for _, k := range keys {
		n, err := b.Literal(m[k])
		if err != nil {
			return nil, err
		}

		fields = append(fields, &Field{Name: k, Value: n})
	}

	return &Object{Fields: fields}, nil
}
