// Package schema checks raw storage rows against an entity's declared shape
// and coerces driver values into typed ones. It knows nothing about how the
// rows were fetched.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/shopspring/decimal"
)

type Kind int

const (
	Int Kind = iota
	String
	Bool
	Decimal
	Children
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "integer"
	case String:
		return "string"
	case Bool:
		return "boolean"
	case Decimal:
		return "decimal"
	case Children:
		return "child list"
	}
	return "unknown"
}

// Field declares one column. ChildKey names the display attribute of each
// element when Kind is Children.
type Field struct {
	Name     string
	Kind     Kind
	Optional bool
	ChildKey string
}

type Schema struct {
	Entity string
	Fields []Field
}

// Child is the identity plus one display attribute of a related entity.
type Child struct {
	ID      int64
	Display string
}

// Validate checks every declared field of row and returns the coerced
// values. Columns not declared are ignored. A NULL child list becomes an
// empty slice; an absent one is a missing field like any other.
func (s Schema) Validate(row map[string]any) (Record, error) {
	values := make(map[string]any, len(s.Fields))

	for _, f := range s.Fields {
		raw, present := row[f.Name]

		if f.Kind == Children {
			if !present {
				return Record{}, s.fail(f.Name, "required field is missing")
			}
			children, err := toChildren(raw, f.ChildKey)
			if err != nil {
				return Record{}, s.fail(f.Name, err.Error())
			}
			values[f.Name] = children
			continue
		}

		if !present || raw == nil {
			if f.Optional {
				values[f.Name] = nil
				continue
			}
			if !present {
				return Record{}, s.fail(f.Name, "required field is missing")
			}
			return Record{}, s.fail(f.Name, "required field is null")
		}

		v, err := coerce(f.Kind, raw)
		if err != nil {
			return Record{}, s.fail(f.Name, err.Error())
		}
		values[f.Name] = v
	}

	return Record{values: values}, nil
}

func (s Schema) fail(field, reason string) error {
	return &apperror.ValidationError{Entity: s.Entity, Field: field, Reason: reason}
}

func coerce(k Kind, v any) (any, error) {
	switch k {
	case Int:
		return toInt64(v)
	case String:
		return toString(v)
	case Bool:
		return toBool(v)
	case Decimal:
		return toDecimal(v)
	}
	return nil, fmt.Errorf("unsupported kind %s", k)
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int32:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint8:
		return int64(n), nil
	case float64:
		if n != math.Trunc(n) || n >= math.MaxInt64 || n < math.MinInt64 {
			return 0, fmt.Errorf("expected integer, got %v", n)
		}
		return int64(n), nil
	case json.Number:
		return n.Int64()
	case string:
		return parseInt(n)
	case []byte:
		return parseInt(string(n))
	}
	return 0, fmt.Errorf("expected integer, got %T", v)
}

func parseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("expected integer, got %q", s)
	}
	return n, nil
}

func toString(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	}
	return "", fmt.Errorf("expected string, got %T", v)
}

func toBool(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		return parseBool(b)
	case []byte:
		return parseBool(string(b))
	}
	return false, fmt.Errorf("expected boolean, got %T", v)
}

func parseBool(s string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, fmt.Errorf("expected boolean, got %q", s)
	}
	return b, nil
}

// toDecimal only accepts exact representations. Floats are rejected so
// money never passes through binary floating point.
func toDecimal(v any) (decimal.Decimal, error) {
	switch d := v.(type) {
	case decimal.Decimal:
		return d, nil
	case string:
		return parseDecimal(d)
	case []byte:
		return parseDecimal(string(d))
	case int64:
		return decimal.NewFromInt(d), nil
	case int32:
		return decimal.NewFromInt32(d), nil
	case int:
		return decimal.NewFromInt(int64(d)), nil
	case float32, float64:
		return decimal.Decimal{}, fmt.Errorf("expected exact decimal text, got floating point %v", d)
	}
	return decimal.Decimal{}, fmt.Errorf("expected decimal, got %T", v)
}

func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("expected decimal, got %q", s)
	}
	return d, nil
}

func toChildren(v any, key string) ([]Child, error) {
	var items []any

	switch raw := v.(type) {
	case nil:
		return []Child{}, nil
	case []byte:
		if err := decodeJSONArray(raw, &items); err != nil {
			return nil, err
		}
	case string:
		if err := decodeJSONArray([]byte(raw), &items); err != nil {
			return nil, err
		}
	case []any:
		items = raw
	case []map[string]any:
		items = make([]any, len(raw))
		for i := range raw {
			items[i] = raw[i]
		}
	default:
		return nil, fmt.Errorf("expected JSON array, got %T", v)
	}

	children := make([]Child, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("element %d: expected object, got %T", i, item)
		}

		rawID, ok := obj["id"]
		if !ok || rawID == nil {
			return nil, fmt.Errorf("element %d: id is required", i)
		}
		id, err := toInt64(rawID)
		if err != nil {
			return nil, fmt.Errorf("element %d: id: %v", i, err)
		}

		rawDisplay, ok := obj[key]
		if !ok || rawDisplay == nil {
			return nil, fmt.Errorf("element %d: %s is required", i, key)
		}
		display, err := toString(rawDisplay)
		if err != nil {
			return nil, fmt.Errorf("element %d: %s: %v", i, key, err)
		}

		children = append(children, Child{ID: id, Display: display})
	}

	return children, nil
}

func decodeJSONArray(data []byte, out *[]any) error {
	if len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*out = nil
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("expected JSON array: %v", err)
	}
	return nil
}
