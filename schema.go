package typedmap

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// Kind identifies the runtime category of a scalar value. Matching against a
// Primitive schema requires exact category equality: a bool never satisfies
// KindInt, an integer never satisfies KindFloat.
type Kind int

const (
	KindInvalid Kind = iota
	KindString
	KindInt
	KindBool
	KindFloat
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindBool:
		return "boolean"
	case KindFloat:
		return "float"
	case KindNull:
		return "null"
	}
	return "invalid"
}

// Schema is the closed set of schema tree nodes. A schema is built once,
// resolved (see Registry), and treated as read-only by every validation call,
// so the same tree may be shared across goroutines.
type Schema interface {
	// Describe returns the human-meaningful label used in mismatch reports,
	// e.g. "string", "Person", "one of Person, Company".
	Describe() string
}

// Primitive matches a scalar value whose runtime category equals Kind.
type Primitive struct {
	Kind Kind
}

func (p *Primitive) Describe() string { return p.Kind.String() }

// Literal matches a value equal (by value, not identity) to any member of
// Allowed.
type Literal struct {
	Allowed []any
}

func (l *Literal) Describe() string {
	parts := make([]string, 0, len(l.Allowed))
	for _, v := range l.Allowed {
		parts = append(parts, formatValue(v))
	}
	return "one of " + strings.Join(parts, ", ")
}

// Sequence matches a list-like value whose every element satisfies Elem.
type Sequence struct {
	Elem Schema
}

func (s *Sequence) Describe() string { return "array of " + s.Elem.Describe() }

// Mapping matches a string-keyed map whose every value satisfies Value. Keys
// are unconstrained.
type Mapping struct {
	Value Schema
}

func (m *Mapping) Describe() string { return "map of " + m.Value.Describe() }

// Field declares one record field. Optional fields may be absent from the
// data entirely; when present the value must still satisfy Type.
type Field struct {
	Name     string
	Type     Schema
	Optional bool
}

// Record matches a string-keyed map against an ordered set of named fields.
// Field order decides which defect is reported first; it has no other effect.
// Keys present in the data but not declared here are ignored.
type Record struct {
	Name   string
	Fields []Field
}

func (r *Record) Describe() string {
	if r.Name != "" {
		return r.Name
	}
	return "record"
}

// Union matches when at least one branch matches.
type Union struct {
	Branches []Schema
}

func (u *Union) Describe() string {
	parts := make([]string, 0, len(u.Branches))
	for _, b := range u.Branches {
		parts = append(parts, b.Describe())
	}
	return "one of " + strings.Join(parts, ", ")
}

// Any matches every value unconditionally.
type Any struct{}

func (*Any) Describe() string { return "any" }

// kindOf classifies a data value into its scalar category. json.Number is an
// integer when its literal carries no fraction or exponent. Composites (maps,
// lists) and unknown types classify as KindInvalid.
func kindOf(v any) Kind {
	switch n := v.(type) {
	case nil:
		return KindNull
	case string:
		return KindString
	case bool:
		return KindBool
	case json.Number:
		if strings.ContainsAny(n.String(), ".eE") {
			return KindFloat
		}
		return KindInt
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInt
	case float32, float64:
		return KindFloat
	}
	return KindInvalid
}

// runtimeDescriptor names the runtime category of a data value for mismatch
// reports, covering composites that kindOf does not classify.
func runtimeDescriptor(v any) string {
	switch v.(type) {
	case map[string]any:
		return "object"
	case []any:
		return "array"
	}
	if k := kindOf(v); k != KindInvalid {
		return k.String()
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Map:
		return "object"
	case reflect.Slice, reflect.Array:
		return "array"
	}
	return fmt.Sprintf("%T", v)
}

// formatValue renders a literal constant (or an offending value) for reports.
func formatValue(v any) string {
	switch s := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", s)
	case json.Number:
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}
