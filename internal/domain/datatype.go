package domain

import "github.com/tradewire/marketcodec/internal/codecerr"

// Datatype is the wire discriminant identifying which concrete kind a tagged
// mapping describes. The set is closed: adding a kind means touching every
// switch over Datatype, which is the point.
type Datatype string

const (
	DatatypeStock Datatype = "stock"
	DatatypeTrade Datatype = "trade"
	DatatypeDate  Datatype = "date"
)

// ParseDatatype converts a wire tag into a Datatype, failing with
// ErrUnknownDatatype for anything outside the closed set.
func ParseDatatype(tag string) (Datatype, error) {
	switch dt := Datatype(tag); dt {
	case DatatypeStock, DatatypeTrade, DatatypeDate:
		return dt, nil
	default:
		return "", codecerr.WrapUnknownDatatype(tag)
	}
}
