package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tradewire/marketcodec/internal/domain"
)

// StockSchema is the field contract for daily price bars.
var StockSchema = &Schema{
	Datatype: domain.DatatypeStock,
	Fields: []Field{
		{Name: "symbol", Kind: KindString, ExactLen: 4},
		{Name: "date", Kind: KindDate},
		{Name: "open_", WireName: "open", Kind: KindDecimal},
		{Name: "high", Kind: KindDecimal},
		{Name: "low", Kind: KindDecimal},
		{Name: "close", Kind: KindDecimal},
		{Name: "volume", Kind: KindInteger, NonNegative: true},
	},
	construct: func(vals map[string]any) domain.Record {
		return &domain.Stock{
			Symbol: vals["symbol"].(string),
			Date:   vals["date"].(domain.Date),
			Open_:  vals["open_"].(decimal.Decimal),
			High:   vals["high"].(decimal.Decimal),
			Low:    vals["low"].(decimal.Decimal),
			Close:  vals["close"].(decimal.Decimal),
			Volume: vals["volume"].(int64),
		}
	},
	deconstruct: func(r domain.Record) (map[string]any, bool) {
		s, ok := r.(*domain.Stock)
		if !ok {
			return nil, false
		}
		return map[string]any{
			"symbol": s.Symbol,
			"date":   s.Date,
			"open_":  s.Open_,
			"high":   s.High,
			"low":    s.Low,
			"close":  s.Close,
			"volume": s.Volume,
		}, true
	},
}

// TradeSchema is the field contract for executed orders.
var TradeSchema = &Schema{
	Datatype: domain.DatatypeTrade,
	Fields: []Field{
		{Name: "symbol", Kind: KindString, ExactLen: 4},
		{Name: "timestamp", Kind: KindDateTime},
		{Name: "order", Kind: KindString, OneOf: []string{string(domain.OrderBuy), string(domain.OrderSell)}},
		{Name: "price", Kind: KindDecimal},
		{Name: "commission", Kind: KindDecimal},
		{Name: "volume", Kind: KindInteger, NonNegative: true},
	},
	construct: func(vals map[string]any) domain.Record {
		return &domain.Trade{
			Symbol:     vals["symbol"].(string),
			Timestamp:  vals["timestamp"].(time.Time),
			Order:      domain.Order(vals["order"].(string)),
			Price:      vals["price"].(decimal.Decimal),
			Commission: vals["commission"].(decimal.Decimal),
			Volume:     vals["volume"].(int64),
		}
	},
	deconstruct: func(r domain.Record) (map[string]any, bool) {
		t, ok := r.(*domain.Trade)
		if !ok {
			return nil, false
		}
		return map[string]any{
			"symbol":     t.Symbol,
			"timestamp":  t.Timestamp,
			"order":      string(t.Order),
			"price":      t.Price,
			"commission": t.Commission,
			"volume":     t.Volume,
		}, true
	},
}
