// Package schema implements the validating codec path: a declarative field
// contract per record kind that validates and transcodes against the same
// discriminant-tagged wire shape the tagged codec produces, so the two paths
// interoperate. All fields are required, unknown extra input fields are
// discarded, and the datatype field is computed here and never trusted from
// the caller.
package schema

import (
	"time"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/tradewire/marketcodec/internal/codec"
	"github.com/tradewire/marketcodec/internal/codecerr"
	"github.com/tradewire/marketcodec/internal/domain"
	"github.com/tradewire/marketcodec/internal/json"
)

// Kind enumerates the value kinds a schema field can declare.
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindDecimal
	KindDate
	KindDateTime
)

// Field declares the contract for a single record field.
type Field struct {
	Name        string   // in-memory field name
	WireName    string   // wire key, when it differs from Name
	Kind        Kind
	ExactLen    int      // KindString: required length in characters, 0 = unconstrained
	OneOf       []string // KindString: allowed values, nil = unconstrained
	NonNegative bool     // KindInteger: reject negative values
}

func (f Field) wireKey() string {
	if f.WireName != "" {
		return f.WireName
	}
	return f.Name
}

// load coerces and validates a single wire value.
func (f Field) load(raw any) (any, error) {
	switch f.Kind {
	case KindString:
		v, ok := raw.(string)
		if !ok {
			return nil, errors.Newf("not a valid string: %v", raw)
		}
		if err := f.check(v); err != nil {
			return nil, err
		}
		return v, nil
	case KindInteger:
		n, err := codec.CoerceInteger(raw)
		if err != nil {
			return nil, err
		}
		if err := f.check(n); err != nil {
			return nil, err
		}
		return n, nil
	case KindDecimal:
		return codec.CoerceDecimal(raw)
	case KindDate:
		return codec.CoerceDate(raw)
	case KindDateTime:
		return codec.CoerceTimestamp(raw)
	}
	return nil, errors.Newf("unhandled field kind %d", f.Kind)
}

// check validates an in-memory value against the field's constraints. It is
// shared by both directions so a record that fails to load also fails to dump.
func (f Field) check(v any) error {
	switch f.Kind {
	case KindString:
		s := v.(string)
		if f.ExactLen > 0 && utf8.RuneCountInString(s) != f.ExactLen {
			return errors.Newf("length must be exactly %d characters, got %q", f.ExactLen, s)
		}
		if len(f.OneOf) > 0 && !lo.Contains(f.OneOf, s) {
			return errors.Newf("must be one of %v, got %q", f.OneOf, s)
		}
	case KindInteger:
		if f.NonNegative && v.(int64) < 0 {
			return codecerr.WrapInvalidInteger(v)
		}
	}
	return nil
}

// dump serializes an in-memory value to its wire form.
func (f Field) dump(v any) any {
	switch x := v.(type) {
	case decimal.Decimal:
		return x.String()
	case domain.Date:
		return x.String()
	case time.Time:
		return domain.FormatTimestamp(x)
	default:
		return v
	}
}

// Schema is the declarative field contract for one record kind.
type Schema struct {
	Datatype domain.Datatype
	Fields   []Field

	// construct builds the record from validated in-memory values; it runs
	// only after every field passed, so the assertions inside are safe.
	construct func(vals map[string]any) domain.Record

	// deconstruct exposes a record's fields by in-memory name, reporting
	// false when the record is not this schema's kind.
	deconstruct func(r domain.Record) (map[string]any, bool)
}

// Load validates a generic value tree and constructs the record. Every
// violated field is reported, not just the first.
func (s *Schema) Load(data map[string]any) (domain.Record, error) {
	verr := codecerr.NewValidationError()
	vals := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		raw, ok := data[f.wireKey()]
		if !ok {
			// renamed keys are tolerated under their in-memory spelling on
			// input, never produced on output
			raw, ok = data[f.Name]
		}
		if !ok {
			verr.Add(f.Name, codecerr.WrapMissingRequiredField(f.wireKey()))
			continue
		}
		v, err := f.load(raw)
		if err != nil {
			verr.Add(f.Name, err)
			continue
		}
		vals[f.Name] = v
	}
	if !verr.Empty() {
		return nil, verr
	}
	return s.construct(vals), nil
}

// Dump validates a record against the contract and produces the generic value
// tree, with the constant datatype field injected and renamed fields under
// their wire keys.
func (s *Schema) Dump(r domain.Record) (map[string]any, error) {
	vals, ok := s.deconstruct(r)
	if !ok {
		return nil, errors.Newf("record kind %q does not match schema %q", r.Datatype(), s.Datatype)
	}
	verr := codecerr.NewValidationError()
	out := make(map[string]any, len(s.Fields)+1)
	for _, f := range s.Fields {
		v := vals[f.Name]
		if err := f.check(v); err != nil {
			verr.Add(f.Name, err)
			continue
		}
		out[f.wireKey()] = f.dump(v)
	}
	if !verr.Empty() {
		return nil, verr
	}
	out["datatype"] = string(s.Datatype)
	return out, nil
}

// ForDatatype returns the schema for a record kind.
func ForDatatype(dt domain.Datatype) (*Schema, error) {
	switch dt {
	case domain.DatatypeStock:
		return StockSchema, nil
	case domain.DatatypeTrade:
		return TradeSchema, nil
	default:
		return nil, codecerr.WrapUnknownDatatype(string(dt))
	}
}

// ValidateAndDecode parses wire text and validates it against the schema for
// the given record kind, returning the constructed record or an aggregate of
// every field violation.
func ValidateAndDecode(data []byte, kind domain.Datatype) (domain.Record, error) {
	s, err := ForDatatype(kind)
	if err != nil {
		return nil, err
	}
	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, errors.Wrap(err, "parse wire text")
	}
	return s.Load(tree)
}

// ValidateAndEncode validates a record through its schema and serializes it
// to wire text.
func ValidateAndEncode(r domain.Record) ([]byte, error) {
	s, err := ForDatatype(r.Datatype())
	if err != nil {
		return nil, err
	}
	tree, err := s.Dump(r)
	if err != nil {
		return nil, err
	}
	return json.Marshal(tree)
}
