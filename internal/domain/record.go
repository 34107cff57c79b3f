package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents the side of an executed trade.
type Order string

const (
	OrderBuy  Order = "buy"
	OrderSell Order = "sell"
)

// Record is the closed union of financial record kinds. Exactly Stock and
// Trade implement it; a third kind is a contract change, not a pass-through.
type Record interface {
	// Datatype returns the wire discriminant for this record kind. It is
	// derived from the concrete type and never user-settable.
	Datatype() Datatype

	isRecord()
}

// Stock represents one daily price bar for a symbol.
//
// Records are pure, transient value objects: constructed by a decoder or by
// application code, with no identity beyond field equality. All behavior
// lives in the codec packages.
type Stock struct {
	Symbol string          // ticker symbol, exactly 4 characters
	Date   Date            // trading day (calendar date, no time-of-day)
	Open_  decimal.Decimal // wire key "open"; the codecs perform the rename
	High   decimal.Decimal
	Low    decimal.Decimal
	Close  decimal.Decimal
	Volume int64 // shares traded, non-negative
}

func (*Stock) Datatype() Datatype { return DatatypeStock }
func (*Stock) isRecord()          {}

// Trade represents one executed order.
type Trade struct {
	Symbol     string    // ticker symbol, exactly 4 characters
	Timestamp  time.Time // execution time, with UTC offset
	Order      Order     // "buy" or "sell"
	Price      decimal.Decimal
	Commission decimal.Decimal
	Volume     int64 // contracts traded, non-negative
}

func (*Trade) Datatype() Datatype { return DatatypeTrade }
func (*Trade) isRecord()          {}
