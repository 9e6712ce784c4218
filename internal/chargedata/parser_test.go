package chargedata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMeasurement(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		wantErr error
	}{
		{
			name: "plain decimal",
			raw:  "12.5",
			want: 12.5,
		},
		{
			name: "surrounding whitespace trimmed",
			raw:  "   7.0   ",
			want: 7.0,
		},
		{
			name: "tab padded",
			raw:  "\t4.25\t",
			want: 4.25,
		},
		{
			name: "zero is accepted",
			raw:  "0",
			want: 0,
		},
		{
			name: "scientific notation",
			raw:  "1.6e-19",
			want: 1.6e-19,
		},
		{
			name: "explicit plus sign",
			raw:  "+3.5",
			want: 3.5,
		},
		{
			name:    "negative value",
			raw:     "-3.2",
			wantErr: ErrNegativeValue,
		},
		{
			name:    "trailing word",
			raw:     "12.5 foo",
			wantErr: ErrTrailingContent,
		},
		{
			name:    "two numbers on one line",
			raw:     "4 5",
			wantErr: ErrTrailingContent,
		},
		{
			name:    "not a number",
			raw:     "abc",
			wantErr: ErrNotANumber,
		},
		{
			name:    "garbage glued to number",
			raw:     "12.3abc",
			wantErr: ErrNotANumber,
		},
		{
			name:    "comma decimal separator",
			raw:     "1,5",
			wantErr: ErrNotANumber,
		},
		{
			name:    "blank line",
			raw:     "",
			wantErr: ErrBlankLine,
		},
		{
			name:    "whitespace only",
			raw:     "   \t  ",
			wantErr: ErrBlankLine,
		},
		{
			name:    "nan spelling",
			raw:     "nan",
			wantErr: ErrNonFinite,
		},
		{
			name:    "inf spelling",
			raw:     "inf",
			wantErr: ErrNonFinite,
		},
		{
			name:    "negative infinity",
			raw:     "-inf",
			wantErr: ErrNonFinite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMeasurement(tt.raw)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
