package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int64
		wantErr bool
	}{
		{name: "two decimals", in: "1234.56", want: 123456},
		{name: "order total", in: "199.99", want: 19999},
		{name: "no decimals", in: "50", want: 5000},
		{name: "one decimal", in: "10.5", want: 1050},
		{name: "zero", in: "0.00", want: 0},
		{name: "rounds sub-minor up", in: "0.015", want: 2},
		{name: "rounds sub-minor down", in: "0.014", want: 1},
		{name: "not a number", in: "abc", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "negative", in: "-5.00", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToMinorUnits(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToDecimalString(t *testing.T) {
	assert.Equal(t, "40.00", ToDecimalString(4000))
	assert.Equal(t, "0.01", ToDecimalString(1))
	assert.Equal(t, "0.00", ToDecimalString(0))
	assert.Equal(t, "1234.56", ToDecimalString(123456))
}

// Any two-decimal string must survive a round trip unchanged.
func TestRoundTrip(t *testing.T) {
	for _, s := range []string{"0.00", "0.01", "1.00", "199.99", "1234.56", "99999999.99"} {
		minor, err := ToMinorUnits(s)
		require.NoError(t, err)
		assert.Equal(t, s, ToDecimalString(minor))
	}
}
