package codec

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tradewire/marketcodec/internal/codecerr"
	"github.com/tradewire/marketcodec/internal/domain"
	"github.com/tradewire/marketcodec/internal/json"
)

// CoerceDecimal converts a wire value into an exact decimal. The value is
// stringified before parsing, so a numeric-looking value arriving as a native
// number is still treated as decimal text and never as a binary float.
func CoerceDecimal(v any) (decimal.Decimal, error) {
	var s string
	switch x := v.(type) {
	case decimal.Decimal:
		return x, nil
	case nil:
		return decimal.Decimal{}, codecerr.WrapInvalidDecimal(v)
	case string:
		s = x
	case json.Number:
		s = x.String()
	default:
		s = fmt.Sprint(x)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, codecerr.WrapInvalidDecimal(s)
	}
	return d, nil
}

// CoerceInteger converts a wire value into an int64, rejecting anything with
// a fractional part.
func CoerceInteger(v any) (int64, error) {
	switch x := v.(type) {
	case int:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case int64:
		return x, nil
	case json.Number:
		n, err := strconv.ParseInt(x.String(), 10, 64)
		if err != nil {
			return 0, codecerr.WrapInvalidInteger(x)
		}
		return n, nil
	case string:
		n, err := strconv.ParseInt(x, 10, 64)
		if err != nil {
			return 0, codecerr.WrapInvalidInteger(x)
		}
		return n, nil
	case float64:
		n := int64(x)
		if float64(n) != x {
			return 0, codecerr.WrapInvalidInteger(x)
		}
		return n, nil
	default:
		return 0, codecerr.WrapInvalidInteger(v)
	}
}

// CoerceDate resolves the shapes a calendar date may take on the wire: an
// already-decoded Date, the wrapped {datatype:"date", date:...} mapping, or a
// bare ISO date string. Both codec paths historically emit dates in different
// shapes, so both must stay accepted on input.
func CoerceDate(v any) (domain.Date, error) {
	switch x := v.(type) {
	case domain.Date:
		return x, nil
	case map[string]any:
		if tag, ok := x["datatype"].(string); ok && domain.Datatype(tag) == domain.DatatypeDate {
			return unwrapDate(x)
		}
		return domain.Date{}, codecerr.WrapMalformedDate(x)
	case string:
		return domain.ParseDate(x)
	default:
		return domain.Date{}, codecerr.WrapMalformedDate(v)
	}
}

// CoerceTimestamp converts a wire value into a timestamp. An absent value
// (nil) fails as a malformed timestamp rather than a missing field.
func CoerceTimestamp(v any) (time.Time, error) {
	switch x := v.(type) {
	case time.Time:
		return x, nil
	case string:
		return domain.ParseTimestamp(x)
	default:
		return time.Time{}, codecerr.WrapMalformedTimestamp(v)
	}
}

func unwrapDate(m map[string]any) (domain.Date, error) {
	raw, ok := m["date"].(string)
	if !ok {
		return domain.Date{}, codecerr.WrapMalformedDate(m["date"])
	}
	return domain.ParseDate(raw)
}
