package orders

import (
	"math"

	"tracker_orders/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// OverallProgress is the mean of the four manufacturing stages, rounded half to even.
func OverallProgress(o entities.Order) int {
	p := o.Progress
	sum := p.Board + p.Straps + p.Cases + p.Batteries
	return clampPercent(int(math.RoundToEven(float64(sum) / 4)))
}

// PaymentProgressPercent returns how much of the order total has been paid, in 0..100.
// Records with a non-positive total report 0.
func PaymentProgressPercent(o entities.Order) float64 {
	if o.TotalUSD <= 0 {
		return 0
	}
	pct := decimal.NewFromFloat(o.PaidUSD).
		Div(decimal.NewFromFloat(o.TotalUSD)).
		Mul(decimal.NewFromInt(100))
	return clamp(pct.InexactFloat64(), 0, 100)
}

func IsComplete(o entities.Order) bool {
	return OverallProgress(o) == 100 && o.PaidUSD >= o.TotalUSD
}

func clampPercent(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	return math.Min(math.Max(v, lo), hi)
}
