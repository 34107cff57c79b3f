// Package codecerr defines the error kinds shared by both codec paths.
//
// Every failure a caller can see is rooted in one of the leaf errors below, so
// callers branch with errors.Is instead of string matching. The Wrap helpers
// attach the offending field name or raw value at the point of failure.
package codecerr

import (
	"github.com/cockroachdb/errors"
)

// Leaf errors. Check whether an existing one fits before adding a new kind.
var (
	// ErrUnsupportedType indicates the encoder was handed a value with no
	// known wire encoding.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrMalformedDate indicates a wire value that should be an ISO calendar
	// date could not be parsed as one.
	ErrMalformedDate = errors.New("malformed date")

	// ErrMalformedTimestamp indicates a wire value that should be an ISO
	// timestamp is absent or could not be parsed.
	ErrMalformedTimestamp = errors.New("malformed timestamp")

	// ErrInvalidDecimal indicates a decimal field's text is not a valid
	// exact-decimal literal.
	ErrInvalidDecimal = errors.New("invalid decimal")

	// ErrInvalidInteger indicates an integer field's value is not a whole
	// number, or is outside the field's domain.
	ErrInvalidInteger = errors.New("invalid integer")

	// ErrUnknownDatatype indicates a discriminant tag outside the closed set
	// of known kinds.
	ErrUnknownDatatype = errors.New("unknown datatype")

	// ErrMissingRequiredField indicates a required field was absent on input.
	ErrMissingRequiredField = errors.New("missing required field")
)

func WrapUnsupportedType(v any) error {
	return errors.Wrapf(ErrUnsupportedType, "%T", v)
}

func WrapMalformedDate(raw any) error {
	return errors.Wrapf(ErrMalformedDate, "%v", raw)
}

func WrapMalformedTimestamp(raw any) error {
	return errors.Wrapf(ErrMalformedTimestamp, "%v", raw)
}

func WrapInvalidDecimal(raw any) error {
	return errors.Wrapf(ErrInvalidDecimal, "%v", raw)
}

func WrapInvalidInteger(raw any) error {
	return errors.Wrapf(ErrInvalidInteger, "%v", raw)
}

func WrapUnknownDatatype(tag string) error {
	return errors.Wrapf(ErrUnknownDatatype, "datatype=%q", tag)
}

func WrapMissingRequiredField(name string) error {
	return errors.Wrapf(ErrMissingRequiredField, "field=%q", name)
}
