package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePayable(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		mode    Mode
		percent int
		want    int64
	}{
		{name: "full passes through", total: 19999, mode: ModeFull, percent: 20, want: 19999},
		{name: "deposit even split", total: 10000, mode: ModeDeposit, percent: 20, want: 2000},
		{name: "deposit rounds up", total: 10001, mode: ModeDeposit, percent: 20, want: 2001},
		{name: "deposit of order total", total: 19999, mode: ModeDeposit, percent: 20, want: 4000},
		{name: "percent clamped low", total: 10000, mode: ModeDeposit, percent: 0, want: 100},
		{name: "percent clamped negative", total: 10000, mode: ModeDeposit, percent: -5, want: 100},
		{name: "percent clamped high", total: 10000, mode: ModeDeposit, percent: 150, want: 10000},
		{name: "zero total", total: 0, mode: ModeDeposit, percent: 20, want: 0},
		{name: "unknown mode treated as full", total: 10000, mode: Mode("partial"), percent: 20, want: 10000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputePayable(tt.total, tt.mode, tt.percent))
		})
	}
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeDeposit, ParseMode("deposit"))
	assert.Equal(t, ModeFull, ParseMode("full"))
	assert.Equal(t, ModeFull, ParseMode(""))
	assert.Equal(t, ModeFull, ParseMode("whatever"))
}
