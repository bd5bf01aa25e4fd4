package schema

import "github.com/shopspring/decimal"

// Record holds the coerced values of one validated row. Getters return the
// zero value for names the schema did not declare; after Validate succeeds
// every declared required field is present with its declared kind.
type Record struct {
	values map[string]any
}

func (r Record) Int64(name string) int64 {
	v, _ := r.values[name].(int64)
	return v
}

func (r Record) Int64Ptr(name string) *int64 {
	v, ok := r.values[name].(int64)
	if !ok {
		return nil
	}
	return &v
}

func (r Record) String(name string) string {
	v, _ := r.values[name].(string)
	return v
}

func (r Record) StringPtr(name string) *string {
	v, ok := r.values[name].(string)
	if !ok {
		return nil
	}
	return &v
}

func (r Record) Bool(name string) bool {
	v, _ := r.values[name].(bool)
	return v
}

func (r Record) Decimal(name string) decimal.Decimal {
	v, _ := r.values[name].(decimal.Decimal)
	return v
}

func (r Record) DecimalPtr(name string) *decimal.Decimal {
	v, ok := r.values[name].(decimal.Decimal)
	if !ok {
		return nil
	}
	return &v
}

// Children never returns nil.
func (r Record) Children(name string) []Child {
	v, ok := r.values[name].([]Child)
	if !ok {
		return []Child{}
	}
	return v
}
