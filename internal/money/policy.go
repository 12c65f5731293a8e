package money

// Mode selects how much of an order total is charged.
type Mode string

const (
	ModeFull    Mode = "full"
	ModeDeposit Mode = "deposit"
)

// ParseMode maps a request parameter to a Mode. Anything other than "deposit"
// is treated as full payment, matching the default of the /pay endpoint.
func ParseMode(s string) Mode {
	if Mode(s) == ModeDeposit {
		return ModeDeposit
	}
	return ModeFull
}

// ComputePayable returns the amount to charge in minor units.
//
// In deposit mode the percentage is clamped to [1,100] and the result is
// rounded up, so a deposit never under-collects by a fractional minor unit.
func ComputePayable(totalMinor int64, mode Mode, depositPercent int) int64 {
	if mode != ModeDeposit {
		return totalMinor
	}
	pct := int64(depositPercent)
	if pct < 1 {
		pct = 1
	}
	if pct > 100 {
		pct = 100
	}
	return (totalMinor*pct + 99) / 100
}
