// Package codec implements the tagged codec path: records and scalars are
// converted to and from a generic value tree (mappings of interchange
// primitives) carrying a datatype discriminant, and the tree is linearized to
// JSON text. The validating schema path in internal/schema produces and
// accepts the same wire shape, so the two paths interoperate.
package codec

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tradewire/marketcodec/internal/codecerr"
	"github.com/tradewire/marketcodec/internal/domain"
	"github.com/tradewire/marketcodec/internal/json"
)

// Encode serializes a record to wire text.
func Encode(r domain.Record) ([]byte, error) {
	tree, err := EncodeValue(r)
	if err != nil {
		return nil, err
	}
	return json.Marshal(tree)
}

// EncodeValue converts a record or scalar into the generic value tree.
//
// A standalone or nested calendar date becomes the wrapped
// {datatype:"date", date:...} mapping so a decoder can tell it from a string
// that merely looks like a date. The date field of a record being encoded
// structurally is emitted as a bare ISO string instead; decoders accept both
// shapes. Values with no known encoding fail with ErrUnsupportedType rather
// than being stringified.
func EncodeValue(v any) (any, error) {
	switch x := v.(type) {
	case *domain.Stock:
		return encodeStock(x), nil
	case domain.Stock:
		return encodeStock(&x), nil
	case *domain.Trade:
		return encodeTrade(x), nil
	case domain.Trade:
		return encodeTrade(&x), nil
	case domain.Date:
		return map[string]any{
			"datatype": string(domain.DatatypeDate),
			"date":     x.String(),
		}, nil
	case time.Time:
		return domain.FormatTimestamp(x), nil
	case decimal.Decimal:
		return x.String(), nil
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, nested := range x {
			ev, err := EncodeValue(nested)
			if err != nil {
				return nil, err
			}
			out[k] = ev
		}
		return out, nil
	case []any:
		out := make([]any, len(x))
		for i, nested := range x {
			ev, err := EncodeValue(nested)
			if err != nil {
				return nil, err
			}
			out[i] = ev
		}
		return out, nil
	case nil, string, bool, int, int32, int64, json.Number:
		return v, nil
	default:
		return nil, codecerr.WrapUnsupportedType(v)
	}
}

func encodeStock(s *domain.Stock) map[string]any {
	// the in-memory field is Open_; "open" is the wire key
	return map[string]any{
		"symbol":   s.Symbol,
		"date":     s.Date.String(),
		"open":     s.Open_.String(),
		"high":     s.High.String(),
		"low":      s.Low.String(),
		"close":    s.Close.String(),
		"volume":   s.Volume,
		"datatype": string(domain.DatatypeStock),
	}
}

func encodeTrade(t *domain.Trade) map[string]any {
	return map[string]any{
		"symbol":     t.Symbol,
		"timestamp":  domain.FormatTimestamp(t.Timestamp),
		"order":      string(t.Order),
		"price":      t.Price.String(),
		"commission": t.Commission.String(),
		"volume":     t.Volume,
		"datatype":   string(domain.DatatypeTrade),
	}
}
