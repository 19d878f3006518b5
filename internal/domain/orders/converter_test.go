package orders

import (
	"encoding/json"
	"testing"
	"time"

	"tracker_orders/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreationToRecord_PaidAmountFollowsPaymentStatus(t *testing.T) {
	cases := []struct {
		status      entities.PaymentStatus
		wantPaid    float64
		wantPending bool
		wantStatus  entities.OrderStatus
	}{
		{entities.PaymentStatusCompleted, 750, false, entities.OrderStatusWaiting},
		{entities.PaymentStatusPending, 0, true, entities.OrderStatusPendingPayment},
		{entities.PaymentStatusFailed, 0, false, entities.OrderStatusWaiting},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			req := validCreateRequest()
			req.PaymentData.Status = tc.status

			o := CreationToRecord(req)
			assert.Equal(t, tc.wantPaid, o.PaidUSD)
			assert.Equal(t, tc.wantPending, o.IsPendingPayment)
			assert.Equal(t, tc.wantStatus, o.Status)
		})
	}
}

func TestCreationToRecord_CopiesFields(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ref := "mp-123"
	req := validCreateRequest()
	req.ShippingPaid = true
	req.PaymentData.MercadoPagoPaymentID = &ref

	o := creationToRecordAt(req, now)

	assert.Empty(t, o.ID)
	assert.Equal(t, "nyanbun", o.Username)
	assert.Equal(t, PseudonymousID("nyanbun"), o.PseudonymousID)
	assert.Equal(t, "nyan@example.com", o.Contact)
	assert.Equal(t, "CO", o.ShippingCountry)
	assert.True(t, o.ShippingPaid)
	assert.Equal(t, 750.0, o.TotalUSD)
	assert.Equal(t, 8, o.TrackerCount)
	assert.Equal(t, "ICM-45686", o.Sensor)
	assert.True(t, o.Magnetometer)
	assert.Equal(t, "black", o.CaseColor)
	assert.Equal(t, "purple", o.CoverColor)

	assert.Equal(t, entities.PaymentMethodMercadoPago, o.Payment.Method)
	assert.Equal(t, "tx-1", o.Payment.TransactionID)
	assert.Equal(t, entities.PaymentCurrencyLocal, o.Payment.Currency)
	assert.Equal(t, 750000.0, o.Payment.Amount)
	require.NotNil(t, o.Payment.MercadoPagoPaymentID)
	assert.Equal(t, "mp-123", *o.Payment.MercadoPagoPaymentID)
	assert.Nil(t, o.Payment.PayPalOrderID)

	assert.Equal(t, now, o.CreatedAt)
	assert.Equal(t, o.CreatedAt, o.UpdatedAt)
	assert.Equal(t, entities.Progress{}, o.Progress)

	// the request's pointer must not be shared with the record
	ref = "changed"
	assert.Equal(t, "mp-123", *o.Payment.MercadoPagoPaymentID)
}

func TestCreationToRecord_ExtrasAndUserData(t *testing.T) {
	t.Run("absent user data stays absent", func(t *testing.T) {
		o := CreationToRecord(validCreateRequest())
		assert.Nil(t, o.ShippingAddress)
		assert.Nil(t, o.VRHandle)
		assert.Nil(t, o.Extras)
	})

	t.Run("add-ons and user data", func(t *testing.T) {
		req := validCreateRequest()
		req.ProductData.Charger = &entities.AddOn{ID: "usb-hub", Cost: 15}
		req.ProductData.Dongle = &entities.AddOn{ID: "dongle-v2", Cost: 20}
		req.UserData = &entities.UserData{
			Email:      "ship@example.com",
			Address:    "Calle 1 # 2-3",
			CityRegion: "Bogota",
			Country:    "CO",
			VRHandle:   "nyan.vrc",
		}

		o := CreationToRecord(req)
		assert.Equal(t, map[string]entities.AddOn{
			ExtraCharger: {ID: "usb-hub", Cost: 15},
			ExtraDongle:  {ID: "dongle-v2", Cost: 20},
		}, o.Extras)
		require.NotNil(t, o.ShippingAddress)
		assert.Equal(t, entities.ShippingAddress{
			Email:      "ship@example.com",
			Street:     "Calle 1 # 2-3",
			CityRegion: "Bogota",
			Country:    "CO",
		}, *o.ShippingAddress)
		require.NotNil(t, o.VRHandle)
		assert.Equal(t, "nyan.vrc", *o.VRHandle)
	})
}

func TestCreationToRecord_ExplicitProgressAndStatus(t *testing.T) {
	board := 30
	status := entities.OrderStatusManufacturing
	req := validCreateRequest()
	req.Status = &status
	req.Progress = &entities.ProgressUpdate{Board: &board}

	o := CreationToRecord(req)
	assert.Equal(t, entities.OrderStatusManufacturing, o.Status)
	assert.Equal(t, entities.Progress{Board: 30}, o.Progress)
}

func TestCreationToRecord_MissingGroupsDoNotPanic(t *testing.T) {
	o := CreationToRecord(entities.OrderCreateRequest{Username: "x"})
	assert.Zero(t, o.TotalUSD)
	assert.Zero(t, o.PaidUSD)
	assert.False(t, o.IsPendingPayment)
}

func TestOrderRecord_JSONRoundTrip(t *testing.T) {
	req := validCreateRequest()
	req.ProductData.Straps = &entities.AddOn{ID: "straps-xl", Cost: 10}
	req.UserData = &entities.UserData{Address: "a", CityRegion: "b", Country: "CO", VRHandle: "h"}
	o := creationToRecordAt(req, time.Date(2026, 1, 2, 3, 4, 5, 6, time.UTC))
	o.ID = "ord-1"

	raw, err := json.Marshal(o)
	require.NoError(t, err)

	var back entities.Order
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, o, back)
}
