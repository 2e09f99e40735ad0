package typedmap

import (
	"github.com/reoring/typedmap/i18n"
)

// Defect codes (exported consts for IDE completion and type safety by convention)
const (
	CodeMissingKey    = "missing_key"
	CodeTypeMismatch  = "type_mismatch"
	CodeInvalidSchema = "invalid_schema"
)

// ErrSchemaNotRecord reports a usage error: the top-level schema handed to
// Validate was not a Record. Unlike the two defect kinds it is returned even
// in silent mode, because a malformed call is a programmer error rather than
// a data-quality finding.
var ErrSchemaNotRecord error = &InvalidSchemaError{}

// InvalidSchemaError is the type behind ErrSchemaNotRecord; its message goes
// through the translator like the defect errors.
type InvalidSchemaError struct{}

func (*InvalidSchemaError) Error() string {
	return i18n.T(CodeInvalidSchema, nil)
}

// Code returns the stable defect code for this error.
func (*InvalidSchemaError) Code() string { return CodeInvalidSchema }

// MissingKeyError reports that a required record field is absent from the
// data map. Key names the innermost missing field.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return i18n.T(CodeMissingKey, map[string]string{"key": e.Key})
}

// Code returns the stable defect code for this error.
func (e *MissingKeyError) Code() string { return CodeMissingKey }

// TypeMismatchError reports that a present value does not satisfy its
// declared schema. Key is the innermost field the value belongs to; Expected
// and Actual are descriptors (a category name, a record name, a union label,
// or, for literal mismatches, the offending value itself).
type TypeMismatchError struct {
	Key      string
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return i18n.T(CodeTypeMismatch, map[string]string{
		"key":      e.Key,
		"expected": e.Expected,
		"actual":   e.Actual,
	})
}

// Code returns the stable defect code for this error.
func (e *TypeMismatchError) Code() string { return CodeTypeMismatch }
