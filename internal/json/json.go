// Package json routes all wire-text handling through a single frozen sonic
// configuration.
//
// UseNumber keeps numeric wire values as json.Number so decimal fields reach
// the coercer as text and never pass through float64. SortMapKeys makes the
// emitted text deterministic.
package json

import (
	"encoding/json"

	"github.com/bytedance/sonic"
)

// Number is re-exported so callers don't import encoding/json alongside this
// package just for the type.
type Number = json.Number

var api = sonic.Config{
	UseNumber:   true,
	SortMapKeys: true,
}.Froze()

// Marshal encodes v as JSON text.
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// Unmarshal decodes JSON text into v.
func Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}
