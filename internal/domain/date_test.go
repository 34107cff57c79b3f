package domain

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradewire/marketcodec/internal/codecerr"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{
			name:  "Valid ISO date should parse",
			input: "2023-01-05",
			want:  NewDate(2023, time.January, 5),
		},
		{
			name:  "Leap day should parse",
			input: "2024-02-29",
			want:  NewDate(2024, time.February, 29),
		},
		{
			name:    "Date with time-of-day should fail",
			input:   "2023-01-05T10:30:00",
			wantErr: true,
		},
		{
			name:    "Non-ISO ordering should fail",
			input:   "05-01-2023",
			wantErr: true,
		},
		{
			name:    "Impossible day should fail",
			input:   "2023-02-30",
			wantErr: true,
		},
		{
			name:    "Empty string should fail",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, codecerr.ErrMalformedDate))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDate_String(t *testing.T) {
	assert.Equal(t, "2023-01-05", NewDate(2023, time.January, 5).String())
	assert.Equal(t, "0099-12-31", NewDate(99, time.December, 31).String())
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "Timestamp with UTC offset should parse",
			input: "2023-01-05T14:30:00Z",
			want:  time.Date(2023, time.January, 5, 14, 30, 0, 0, time.UTC),
		},
		{
			name:  "Timestamp with negative offset should parse",
			input: "2023-01-05T14:30:00-05:00",
			want:  time.Date(2023, time.January, 5, 14, 30, 0, 0, time.FixedZone("", -5*3600)),
		},
		{
			name:  "Sub-second precision should be preserved",
			input: "2023-01-05T14:30:00.123456789Z",
			want:  time.Date(2023, time.January, 5, 14, 30, 0, 123456789, time.UTC),
		},
		{
			name:  "Offset-less timestamp should parse as UTC",
			input: "2023-01-05T14:30:00",
			want:  time.Date(2023, time.January, 5, 14, 30, 0, 0, time.UTC),
		},
		{
			name:    "Bare date should fail",
			input:   "2023-01-05",
			wantErr: true,
		},
		{
			name:    "Empty string should fail",
			input:   "",
			wantErr: true,
		},
		{
			name:    "Garbage should fail",
			input:   "not-a-timestamp",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, codecerr.ErrMalformedTimestamp))
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2023, time.January, 5, 14, 30, 0, 123456789, time.UTC)
	assert.Equal(t, "2023-01-05T14:30:00.123456789Z", FormatTimestamp(ts))

	// output always carries an offset
	tsOffset := time.Date(2023, time.January, 5, 14, 30, 0, 0, time.FixedZone("", -5*3600))
	assert.Equal(t, "2023-01-05T14:30:00-05:00", FormatTimestamp(tsOffset))
}
