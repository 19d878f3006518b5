package orders

import (
	"testing"
	"time"

	"tracker_orders/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func storedOrder() entities.Order {
	created := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	return entities.Order{
		ID:              "ord-1",
		Username:        "nyanbun",
		Contact:         "nyan@example.com",
		TotalUSD:        500,
		PaidUSD:         0,
		TrackerCount:    6,
		Sensor:          "BMI270",
		ShippingCountry: "US",
		Extras:          map[string]entities.AddOn{ExtraStraps: {ID: "s", Cost: 5}},
		ShippingAddress: &entities.ShippingAddress{Street: "1 Main", CityRegion: "NYC", Country: "US"},
		Status:          entities.OrderStatusPendingPayment,
		Progress:        entities.Progress{Board: 10, Straps: 20, Cases: 30, Batteries: 40},
		Payment: entities.Payment{
			Method:        entities.PaymentMethodPayPal,
			TransactionID: "tx-9",
			Status:        entities.PaymentStatusPending,
			Currency:      entities.PaymentCurrencyUSD,
			Amount:        500,
		},
		IsPendingPayment: true,
		CreatedAt:        created,
		UpdatedAt:        created,
	}
}

func TestApplyUpdate_PartialProgressKeepsOtherFields(t *testing.T) {
	before := storedOrder()

	after := ApplyUpdate(before, entities.OrderUpdateRequest{
		ID:       before.ID,
		Progress: &entities.ProgressUpdate{Board: ptr(100)},
	})

	assert.Equal(t, entities.Progress{Board: 100, Straps: 20, Cases: 30, Batteries: 40}, after.Progress)
}

func TestApplyUpdate_ExplicitZeroIsApplied(t *testing.T) {
	before := storedOrder()

	after := ApplyUpdate(before, entities.OrderUpdateRequest{
		ID:       before.ID,
		Progress: &entities.ProgressUpdate{Straps: ptr(0)},
	})

	assert.Equal(t, 0, after.Progress.Straps)
	assert.Equal(t, 10, after.Progress.Board)
}

func TestApplyUpdate_DoesNotMutateInput(t *testing.T) {
	before := storedOrder()
	snapshot := storedOrder()

	_ = ApplyUpdate(before, entities.OrderUpdateRequest{
		ID:       before.ID,
		Status:   ptr(entities.OrderStatusShipping),
		Progress: &entities.ProgressUpdate{Board: ptr(90)},
		Payment:  &entities.PaymentUpdate{Status: ptr(entities.PaymentStatusCompleted), PayPalOrderID: ptr("pp-1")},
	})

	assert.Equal(t, snapshot, before)
}

func TestApplyUpdate_StatusAnyToAny(t *testing.T) {
	before := storedOrder()
	before.Status = entities.OrderStatusDelivered

	after := ApplyUpdate(before, entities.OrderUpdateRequest{ID: before.ID, Status: ptr(entities.OrderStatusWaiting)})
	assert.Equal(t, entities.OrderStatusWaiting, after.Status)
}

func TestApplyUpdate_PaymentReconciliation(t *testing.T) {
	completedAt := time.Date(2026, 2, 3, 8, 0, 0, 0, time.UTC)

	t.Run("completed pays the total", func(t *testing.T) {
		before := storedOrder()
		after := ApplyUpdate(before, entities.OrderUpdateRequest{
			ID:      before.ID,
			Payment: &entities.PaymentUpdate{Status: ptr(entities.PaymentStatusCompleted), CompletedAt: &completedAt},
		})

		assert.Equal(t, 500.0, after.PaidUSD)
		assert.False(t, after.IsPendingPayment)
		require.NotNil(t, after.Payment.CompletedAt)
		assert.Equal(t, completedAt, *after.Payment.CompletedAt)
		assert.Equal(t, "tx-9", after.Payment.TransactionID)
		assert.Equal(t, entities.PaymentMethodPayPal, after.Payment.Method)
	})

	t.Run("pending leaves paid untouched", func(t *testing.T) {
		before := storedOrder()
		before.PaidUSD = 120
		before.IsPendingPayment = false
		before.Payment.Status = entities.PaymentStatusFailed

		after := ApplyUpdate(before, entities.OrderUpdateRequest{
			ID:      before.ID,
			Payment: &entities.PaymentUpdate{Status: ptr(entities.PaymentStatusPending)},
		})

		assert.Equal(t, 120.0, after.PaidUSD)
		assert.True(t, after.IsPendingPayment)
	})

	t.Run("explicit usd amount wins", func(t *testing.T) {
		before := storedOrder()
		after := ApplyUpdate(before, entities.OrderUpdateRequest{
			ID:      before.ID,
			Payment: &entities.PaymentUpdate{Status: ptr(entities.PaymentStatusPending), Amount: ptr(200.0)},
		})

		assert.Equal(t, 200.0, after.PaidUSD)
		assert.Equal(t, 200.0, after.Payment.Amount)
		assert.True(t, after.IsPendingPayment)
	})

	t.Run("explicit amount is capped at the total", func(t *testing.T) {
		before := storedOrder()
		after := ApplyUpdate(before, entities.OrderUpdateRequest{
			ID:      before.ID,
			Payment: &entities.PaymentUpdate{Amount: ptr(900.0)},
		})
		assert.Equal(t, 500.0, after.PaidUSD)
	})

	t.Run("local amount does not touch paid usd", func(t *testing.T) {
		before := storedOrder()
		before.PaidUSD = 120
		before.Payment.Currency = entities.PaymentCurrencyLocal
		after := ApplyUpdate(before, entities.OrderUpdateRequest{
			ID:      before.ID,
			Payment: &entities.PaymentUpdate{Amount: ptr(2000000.0)},
		})
		assert.Equal(t, 120.0, after.PaidUSD)
		assert.Equal(t, 2000000.0, after.Payment.Amount)
	})

	t.Run("switching to local currency with an amount keeps paid usd", func(t *testing.T) {
		before := storedOrder()
		before.PaidUSD = 120
		after := ApplyUpdate(before, entities.OrderUpdateRequest{
			ID: before.ID,
			Payment: &entities.PaymentUpdate{
				Currency: ptr(entities.PaymentCurrencyLocal),
				Amount:   ptr(450.0),
			},
		})
		assert.Equal(t, 120.0, after.PaidUSD)
		assert.Equal(t, entities.PaymentCurrencyLocal, after.Payment.Currency)
	})

	t.Run("failed keeps paid", func(t *testing.T) {
		before := storedOrder()
		before.PaidUSD = 50
		after := ApplyUpdate(before, entities.OrderUpdateRequest{
			ID:      before.ID,
			Payment: &entities.PaymentUpdate{Status: ptr(entities.PaymentStatusFailed)},
		})
		assert.Equal(t, 50.0, after.PaidUSD)
		assert.False(t, after.IsPendingPayment)
	})
}

func TestApplyUpdate_UpdatedAtStrictlyIncreases(t *testing.T) {
	before := storedOrder()

	t.Run("wall clock ahead", func(t *testing.T) {
		after := ApplyUpdate(before, entities.OrderUpdateRequest{ID: before.ID})
		assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
		assert.Equal(t, before.CreatedAt, after.CreatedAt)
	})

	t.Run("clock did not advance", func(t *testing.T) {
		after := applyUpdateAt(before, entities.OrderUpdateRequest{ID: before.ID}, before.UpdatedAt.Add(-time.Hour))
		assert.Equal(t, before.UpdatedAt.Add(time.Nanosecond), after.UpdatedAt)
	})
}

func TestApplyUpdate_SameUpdateTwice(t *testing.T) {
	before := storedOrder()
	update := entities.OrderUpdateRequest{
		ID:       before.ID,
		Status:   ptr(entities.OrderStatusTesting),
		Progress: &entities.ProgressUpdate{Cases: ptr(75)},
		Payment:  &entities.PaymentUpdate{Status: ptr(entities.PaymentStatusCompleted)},
	}

	first := ApplyUpdate(before, update)
	second := ApplyUpdate(first, update)

	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))

	second.UpdatedAt = first.UpdatedAt
	assert.Equal(t, first, second)
}

func TestEndToEnd_CreateThenShip(t *testing.T) {
	req := validCreateRequest()
	require.True(t, ValidateCreation(req).OK)

	o := CreationToRecord(req)
	assert.Equal(t, 750.0, o.PaidUSD)
	assert.False(t, o.IsPendingPayment)

	update := entities.OrderUpdateRequest{
		ID:     o.ID,
		Status: ptr(entities.OrderStatusShipping),
		Progress: &entities.ProgressUpdate{
			Board:     ptr(100),
			Straps:    ptr(100),
			Cases:     ptr(80),
			Batteries: ptr(90),
		},
	}
	require.Empty(t, ValidateUpdate(entities.OrderUpdateRequest{ID: "ord-1", Status: update.Status, Progress: update.Progress}))

	shipped := ApplyUpdate(o, update)
	assert.Equal(t, entities.OrderStatusShipping, shipped.Status)
	assert.Equal(t, 92, OverallProgress(shipped))
	assert.False(t, IsComplete(shipped))
}
