package orders

import (
	"testing"

	"tracker_orders/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestOverallProgress(t *testing.T) {
	cases := []struct {
		name string
		p    entities.Progress
		want int
	}{
		{"zero", entities.Progress{}, 0},
		{"shipping scenario", entities.Progress{Board: 100, Straps: 100, Cases: 80, Batteries: 90}, 92},
		{"quarter rounds down", entities.Progress{Board: 1}, 0},
		{"half to even down", entities.Progress{Board: 2}, 0},
		{"half to even up", entities.Progress{Board: 6}, 2},
		{"three quarters rounds up", entities.Progress{Board: 3}, 1},
		{"near complete", entities.Progress{Board: 100, Straps: 100, Cases: 100, Batteries: 90}, 98},
		{"complete", entities.Progress{Board: 100, Straps: 100, Cases: 100, Batteries: 100}, 100},
		{"clamped", entities.Progress{Board: 400, Straps: 400, Cases: 400, Batteries: 400}, 100},
		{"negative clamped", entities.Progress{Board: -40}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, OverallProgress(entities.Order{Progress: tc.p}))
		})
	}
}

func TestPaymentProgressPercent(t *testing.T) {
	assert.Equal(t, 0.0, PaymentProgressPercent(entities.Order{TotalUSD: 0, PaidUSD: 10}))
	assert.Equal(t, 0.0, PaymentProgressPercent(entities.Order{TotalUSD: -5, PaidUSD: 10}))
	assert.Equal(t, 50.0, PaymentProgressPercent(entities.Order{TotalUSD: 500, PaidUSD: 250}))
	assert.Equal(t, 100.0, PaymentProgressPercent(entities.Order{TotalUSD: 500, PaidUSD: 900}))
	assert.Equal(t, 0.0, PaymentProgressPercent(entities.Order{TotalUSD: 500, PaidUSD: -1}))
}

func TestIsComplete(t *testing.T) {
	full := entities.Progress{Board: 100, Straps: 100, Cases: 100, Batteries: 100}

	assert.True(t, IsComplete(entities.Order{Progress: full, TotalUSD: 300, PaidUSD: 300}))
	assert.False(t, IsComplete(entities.Order{Progress: full, TotalUSD: 300, PaidUSD: 299}))

	almost := full
	almost.Batteries = 96
	assert.False(t, IsComplete(entities.Order{Progress: almost, TotalUSD: 300, PaidUSD: 300}))
}
