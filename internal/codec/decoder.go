package codec

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"

	"github.com/tradewire/marketcodec/internal/codecerr"
	"github.com/tradewire/marketcodec/internal/domain"
	"github.com/tradewire/marketcodec/internal/json"
)

// Decode parses wire text and reconstructs typed values from it. Tagged
// mappings become records or dates; everything else passes through unchanged
// as the generic tree.
func Decode(data []byte) (any, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "parse wire text")
	}
	return DecodeValue(raw)
}

// DecodeValue reconstructs typed values from a generic value tree. Nested
// values are decoded before their parent mapping is dispatched, so a wrapped
// date anywhere in the tree is already a Date by the time its parent record
// is built. A mapping without a datatype key passes through unchanged, which
// lets decoding recurse into arbitrary generic values without a type oracle.
func DecodeValue(v any) (any, error) {
	switch x := v.(type) {
	case map[string]any:
		return decodeMapping(x)
	case []any:
		out := make([]any, len(x))
		for i, nested := range x {
			dv, err := DecodeValue(nested)
			if err != nil {
				return nil, err
			}
			out[i] = dv
		}
		return out, nil
	default:
		return v, nil
	}
}

func decodeMapping(m map[string]any) (any, error) {
	dec := make(map[string]any, len(m))
	for k, nested := range m {
		dv, err := DecodeValue(nested)
		if err != nil {
			return nil, err
		}
		dec[k] = dv
	}

	rawTag, ok := dec["datatype"]
	if !ok {
		return dec, nil
	}
	tag, ok := rawTag.(string)
	if !ok {
		return nil, codecerr.WrapUnknownDatatype(fmt.Sprint(rawTag))
	}
	dt, err := domain.ParseDatatype(tag)
	if err != nil {
		return nil, err
	}

	switch dt {
	case domain.DatatypeDate:
		return unwrapDate(dec)
	case domain.DatatypeTrade:
		return decodeTrade(dec)
	case domain.DatatypeStock:
		return decodeStock(dec)
	}
	return nil, codecerr.WrapUnknownDatatype(tag)
}

func decodeTrade(m map[string]any) (*domain.Trade, error) {
	// an absent timestamp is malformed, not missing: the empty value can
	// never parse, and callers diagnose both the same way
	ts, err := CoerceTimestamp(m["timestamp"])
	if err != nil {
		return nil, err
	}
	symbol, err := stringField(m, "symbol")
	if err != nil {
		return nil, err
	}
	order, err := stringField(m, "order")
	if err != nil {
		return nil, err
	}
	price, err := decimalField(m, "price")
	if err != nil {
		return nil, err
	}
	commission, err := decimalField(m, "commission")
	if err != nil {
		return nil, err
	}
	volume, err := integerField(m, "volume")
	if err != nil {
		return nil, err
	}
	return &domain.Trade{
		Symbol:     symbol,
		Timestamp:  ts,
		Order:      domain.Order(order),
		Price:      price,
		Commission: commission,
		Volume:     volume,
	}, nil
}

func decodeStock(m map[string]any) (*domain.Stock, error) {
	// wire key "open" maps to the in-memory field Open_; the old in-memory
	// spelling is tolerated on input, never produced on output
	openRaw, ok := m["open"]
	if !ok {
		openRaw, ok = m["open_"]
	}
	if !ok {
		return nil, codecerr.WrapMissingRequiredField("open")
	}
	open, err := CoerceDecimal(openRaw)
	if err != nil {
		return nil, err
	}

	dateRaw, ok := m["date"]
	if !ok {
		return nil, codecerr.WrapMissingRequiredField("date")
	}
	date, err := CoerceDate(dateRaw)
	if err != nil {
		return nil, err
	}

	symbol, err := stringField(m, "symbol")
	if err != nil {
		return nil, err
	}
	high, err := decimalField(m, "high")
	if err != nil {
		return nil, err
	}
	low, err := decimalField(m, "low")
	if err != nil {
		return nil, err
	}
	closing, err := decimalField(m, "close")
	if err != nil {
		return nil, err
	}
	volume, err := integerField(m, "volume")
	if err != nil {
		return nil, err
	}
	return &domain.Stock{
		Symbol: symbol,
		Date:   date,
		Open_:  open,
		High:   high,
		Low:    low,
		Close:  closing,
		Volume: volume,
	}, nil
}

func stringField(m map[string]any, name string) (string, error) {
	v, ok := m[name]
	if !ok {
		return "", codecerr.WrapMissingRequiredField(name)
	}
	if s, ok := v.(string); ok {
		return s, nil
	}
	return fmt.Sprint(v), nil
}

func decimalField(m map[string]any, name string) (decimal.Decimal, error) {
	v, ok := m[name]
	if !ok {
		return decimal.Decimal{}, codecerr.WrapMissingRequiredField(name)
	}
	return CoerceDecimal(v)
}

func integerField(m map[string]any, name string) (int64, error) {
	v, ok := m[name]
	if !ok {
		return 0, codecerr.WrapMissingRequiredField(name)
	}
	return CoerceInteger(v)
}
