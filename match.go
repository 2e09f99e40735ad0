package typedmap

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
)

// match validates v against s and returns nil, a *MissingKeyError, or a
// *TypeMismatchError. key is the name of the field v was found under; nested
// failures keep the innermost key they were detected at.
//
// The schema must be fully resolved before the first call; an unresolved Ref
// is a programmer error and panics.
func match(key string, v any, s Schema) error {
	switch sc := deref(s).(type) {
	case *Any:
		return nil

	case *Primitive:
		if kindOf(v) == sc.Kind {
			return nil
		}
		return &TypeMismatchError{Key: key, Expected: sc.Kind.String(), Actual: runtimeDescriptor(v)}

	case *Literal:
		for _, allowed := range sc.Allowed {
			if literalEqual(v, allowed) {
				return nil
			}
		}
		// Literal mismatches report the offending value, not its category.
		return &TypeMismatchError{Key: key, Expected: sc.Describe(), Actual: formatValue(v)}

	case *Sequence:
		elems, ok := listElems(v)
		if !ok {
			return &TypeMismatchError{Key: key, Expected: sc.Describe(), Actual: runtimeDescriptor(v)}
		}
		for _, ev := range elems {
			if err := match(key, ev, sc.Elem); err != nil {
				return err
			}
		}
		return nil

	case *Mapping:
		vals, ok := mapVals(v)
		if !ok {
			return &TypeMismatchError{Key: key, Expected: sc.Describe(), Actual: runtimeDescriptor(v)}
		}
		for _, mv := range vals {
			if err := match(key, mv, sc.Value); err != nil {
				return err
			}
		}
		return nil

	case *Record:
		m, ok := mapValue(v)
		if !ok {
			return &TypeMismatchError{Key: key, Expected: sc.Describe(), Actual: runtimeDescriptor(v)}
		}
		// Declared order, fail-fast on the first defect. Undeclared keys in
		// the data are ignored.
		for _, f := range sc.Fields {
			fv, present := m[f.Name]
			if !present {
				if f.Optional {
					continue
				}
				return &MissingKeyError{Key: f.Name}
			}
			if err := match(f.Name, fv, f.Type); err != nil {
				return err
			}
		}
		return nil

	case *Union:
		// A union carrying an Any branch accepts everything; checked before
		// any branch is evaluated.
		for _, b := range sc.Branches {
			if _, ok := deref(b).(*Any); ok {
				return nil
			}
		}
		var firstMismatch, firstMissing error
		for _, b := range sc.Branches {
			err := match(key, v, b)
			if err == nil {
				return nil
			}
			switch err.(type) {
			case *TypeMismatchError:
				if firstMismatch == nil {
					firstMismatch = err
				}
			case *MissingKeyError:
				if firstMissing == nil {
					firstMissing = err
				}
			}
		}
		// A mismatch is more actionable than a missing key, regardless of
		// branch order.
		if firstMismatch != nil {
			return firstMismatch
		}
		if firstMissing != nil {
			return firstMissing
		}
		// a union with no branches matches nothing
		return &TypeMismatchError{Key: key, Expected: sc.Describe(), Actual: runtimeDescriptor(v)}
	}
	panic(fmt.Sprintf("typedmap: unknown schema node %T", s))
}

// deref follows resolved references down to a concrete node.
func deref(s Schema) Schema {
	for {
		r, ok := s.(*Ref)
		if !ok {
			return s
		}
		if r.target == nil {
			panic(fmt.Sprintf("typedmap: unresolved schema reference %q; run Registry.Resolve before validating", r.Name))
		}
		s = r.target
	}
}

// literalEqual compares a data value against a literal constant. Numeric
// representations are bridged (json.Number 30 equals int 30); everything
// else compares structurally.
func literalEqual(v, allowed any) bool {
	if reflect.DeepEqual(v, allowed) {
		return true
	}
	av, aok := numericValue(v)
	bv, bok := numericValue(allowed)
	return aok && bok && av == bv
}

func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// listElems extracts the elements of a list-like value. []any is the fast
// path; other slice and array types go through reflection.
func listElems(v any) ([]any, bool) {
	if l, ok := v.([]any); ok {
		return l, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// mapValue views a value as a string-keyed map. map[string]any is the fast
// path; other string-keyed map types go through reflection.
func mapValue(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	for it := rv.MapRange(); it.Next(); {
		out[it.Key().String()] = it.Value().Interface()
	}
	return out, true
}

// mapVals extracts the values of a string-keyed map in sorted-key order, so
// the first defect among several invalid values is always the same one.
func mapVals(v any) ([]any, bool) {
	if m, ok := v.(map[string]any); ok {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]any, 0, len(keys))
		for _, k := range keys {
			out = append(out, m[k])
		}
		return out, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	keys := make([]string, 0, rv.Len())
	for it := rv.MapRange(); it.Next(); {
		keys = append(keys, it.Key().String())
	}
	sort.Strings(keys)
	out := make([]any, 0, len(keys))
	kt := rv.Type().Key()
	for _, k := range keys {
		out = append(out, rv.MapIndex(reflect.ValueOf(k).Convert(kt)).Interface())
	}
	return out, true
}
