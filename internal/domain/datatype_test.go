package domain

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradewire/marketcodec/internal/codecerr"
)

func TestParseDatatype(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		want    Datatype
		wantErr bool
	}{
		{name: "stock tag", tag: "stock", want: DatatypeStock},
		{name: "trade tag", tag: "trade", want: DatatypeTrade},
		{name: "date tag", tag: "date", want: DatatypeDate},
		{name: "unknown tag should fail", tag: "option", wantErr: true},
		{name: "case sensitive", tag: "Stock", wantErr: true},
		{name: "empty tag should fail", tag: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDatatype(tt.tag)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, codecerr.ErrUnknownDatatype))
				// the offending tag travels with the error
				assert.Contains(t, err.Error(), tt.tag)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecordDatatype(t *testing.T) {
	assert.Equal(t, DatatypeStock, (&Stock{}).Datatype())
	assert.Equal(t, DatatypeTrade, (&Trade{}).Datatype())
}
