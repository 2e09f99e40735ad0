package typedmap

// ValidateOpt bundles validation options. When several are passed the last
// one wins, mirroring the trailing-options convention of the rest of the API.
type ValidateOpt struct {
	// Silent converts the two defect kinds into a bare false return instead
	// of an error. It does not affect usage errors.
	Silent bool
}

// Validate checks data against a record schema and reports the first
// structural defect found in declared field order.
//
// It returns (true, nil) when data satisfies the schema. On a defect it
// returns (false, err) where err is a *MissingKeyError or a
// *TypeMismatchError, unless Silent is set, in which case it returns
// (false, nil) and retains no diagnostic detail.
//
// Passing a schema whose top level is not a Record is a usage error:
// ErrSchemaNotRecord is returned regardless of Silent.
//
// Validate never mutates data or the schema; the same resolved schema may be
// validated against from any number of goroutines concurrently.
func Validate(data map[string]any, s Schema, opts ...ValidateOpt) (bool, error) {
	var opt ValidateOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	rec, ok := deref(s).(*Record)
	if !ok {
		return false, ErrSchemaNotRecord
	}
	if err := match("", data, rec); err != nil {
		if opt.Silent {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Is reports whether data conforms to the record schema, swallowing all
// detail. A non-record schema yields false.
func Is(data map[string]any, s Schema) bool {
	ok, err := Validate(data, s, ValidateOpt{Silent: true})
	return ok && err == nil
}
