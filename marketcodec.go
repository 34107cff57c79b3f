// Package marketcodec round-trips financial records (daily price bars and
// executed trades) through a JSON-compatible interchange format while
// preserving exact decimal precision, the calendar-date/timestamp distinction,
// and a datatype discriminant that lets a decoder reconstruct the correct
// variant from an untyped stream.
//
// Two independent codec paths are exposed and produce the same wire shape:
//
//   - Encode / Decode — the tagged codec, dispatching on the embedded
//     datatype field and passing untagged values through unchanged.
//   - ValidateAndEncode / ValidateAndDecode — the schema codec, which applies
//     a declarative field contract (required-ness, exact lengths,
//     enumerations) and reports every violated field, not just the first.
//
// Records are pure values; every operation is a pure function safe for
// unsynchronized concurrent use.
package marketcodec

import (
	"time"

	"github.com/tradewire/marketcodec/internal/codec"
	"github.com/tradewire/marketcodec/internal/codecerr"
	"github.com/tradewire/marketcodec/internal/domain"
	"github.com/tradewire/marketcodec/internal/schema"
)

// Record kinds and the scalar domain types they embed.
type (
	Record   = domain.Record
	Stock    = domain.Stock
	Trade    = domain.Trade
	Date     = domain.Date
	Order    = domain.Order
	Datatype = domain.Datatype

	// ValidationError aggregates every field violation from the schema path.
	ValidationError = codecerr.ValidationError
)

const (
	OrderBuy  = domain.OrderBuy
	OrderSell = domain.OrderSell

	DatatypeStock = domain.DatatypeStock
	DatatypeTrade = domain.DatatypeTrade
	DatatypeDate  = domain.DatatypeDate
)

// Error kinds returned by the codec paths; match with errors.Is.
var (
	ErrUnsupportedType      = codecerr.ErrUnsupportedType
	ErrMalformedDate        = codecerr.ErrMalformedDate
	ErrMalformedTimestamp   = codecerr.ErrMalformedTimestamp
	ErrInvalidDecimal       = codecerr.ErrInvalidDecimal
	ErrInvalidInteger       = codecerr.ErrInvalidInteger
	ErrUnknownDatatype      = codecerr.ErrUnknownDatatype
	ErrMissingRequiredField = codecerr.ErrMissingRequiredField
)

// NewDate creates a calendar date.
func NewDate(year int, month time.Month, day int) Date {
	return domain.NewDate(year, month, day)
}

// ParseDate parses an ISO-8601 calendar date (YYYY-MM-DD).
func ParseDate(s string) (Date, error) {
	return domain.ParseDate(s)
}

// Encode serializes a record to wire text through the tagged codec.
func Encode(r Record) ([]byte, error) {
	return codec.Encode(r)
}

// EncodeScalar converts a record or scalar into the generic value tree
// without linearizing it to text.
func EncodeScalar(v any) (any, error) {
	return codec.EncodeValue(v)
}

// Decode parses wire text through the tagged codec, returning a record, a
// scalar, or the generic value tree for untagged input.
func Decode(data []byte) (any, error) {
	return codec.Decode(data)
}

// ValidateAndDecode parses wire text through the schema codec for the given
// record kind. On failure it returns a *ValidationError enumerating every
// invalid or missing field.
func ValidateAndDecode(data []byte, kind Datatype) (Record, error) {
	return schema.ValidateAndDecode(data, kind)
}

// ValidateAndEncode validates a record against its field contract and
// serializes it to wire text.
func ValidateAndEncode(r Record) ([]byte, error) {
	return schema.ValidateAndEncode(r)
}
