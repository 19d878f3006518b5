package orders

import (
	"maps"
	"time"

	"tracker_orders/internal/domain/entities"
)

// ApplyUpdate merges a partial update into an existing order and re-derives the
// dependent fields. The existing value is never modified; a new record is returned.
//
// A payment amount in the update sets PaidUSD (clamped to [0, TotalUSD]) only
// when the merged payment currency is USD. A LOCAL amount is stored on the
// payment and leaves PaidUSD unchanged; a COMPLETED status still sets PaidUSD
// to TotalUSD.
//
// Callers must serialize updates per order id so UpdatedAt keeps increasing.
func ApplyUpdate(existing entities.Order, update entities.OrderUpdateRequest) entities.Order {
	return applyUpdateAt(existing, update, time.Now().UTC())
}

func applyUpdateAt(existing entities.Order, update entities.OrderUpdateRequest, now time.Time) entities.Order {
	o := cloneOrder(existing)

	if update.Status != nil {
		o.Status = *update.Status
	}

	if update.Progress != nil {
		o.Progress = mergeProgress(o.Progress, *update.Progress)
	}

	if update.Payment != nil {
		o.Payment = mergePayment(o.Payment, *update.Payment)
		reconcilePayment(&o, *update.Payment)
	}

	o.UpdatedAt = nextUpdatedAt(existing.UpdatedAt, now)
	return o
}

func mergeProgress(p entities.Progress, u entities.ProgressUpdate) entities.Progress {
	if u.Board != nil {
		p.Board = clampPercent(*u.Board)
	}
	if u.Straps != nil {
		p.Straps = clampPercent(*u.Straps)
	}
	if u.Cases != nil {
		p.Cases = clampPercent(*u.Cases)
	}
	if u.Batteries != nil {
		p.Batteries = clampPercent(*u.Batteries)
	}
	return p
}

func mergePayment(p entities.Payment, u entities.PaymentUpdate) entities.Payment {
	if u.Method != nil {
		p.Method = *u.Method
	}
	if u.TransactionID != nil {
		p.TransactionID = *u.TransactionID
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.Currency != nil {
		p.Currency = *u.Currency
	}
	if u.Amount != nil {
		p.Amount = *u.Amount
	}
	if u.PayPalOrderID != nil {
		p.PayPalOrderID = cloneString(u.PayPalOrderID)
	}
	if u.MercadoPagoPaymentID != nil {
		p.MercadoPagoPaymentID = cloneString(u.MercadoPagoPaymentID)
	}
	return p
}

// reconcilePayment re-derives PaidUSD and IsPendingPayment from the merged payment.
//
// An explicit amount in the update takes precedence over the status rule for
// that call. It only maps onto PaidUSD when the payment is denominated in USD;
// local-currency amounts are kept on the payment sub-record only.
func reconcilePayment(o *entities.Order, u entities.PaymentUpdate) {
	o.IsPendingPayment = o.Payment.Status == entities.PaymentStatusPending

	if o.Payment.Status == entities.PaymentStatusCompleted {
		o.PaidUSD = o.TotalUSD
		if u.CompletedAt != nil {
			completedAt := u.CompletedAt.UTC()
			o.Payment.CompletedAt = &completedAt
		}
	}

	if u.Amount != nil && o.Payment.Currency == entities.PaymentCurrencyUSD {
		o.PaidUSD = clamp(*u.Amount, 0, o.TotalUSD)
	}
}

func nextUpdatedAt(prev, now time.Time) time.Time {
	if now.After(prev) {
		return now
	}
	return prev.Add(time.Nanosecond)
}

func cloneOrder(o entities.Order) entities.Order {
	out := o
	out.Extras = maps.Clone(o.Extras)
	if o.ShippingAddress != nil {
		addr := *o.ShippingAddress
		out.ShippingAddress = &addr
	}
	out.VRHandle = cloneString(o.VRHandle)
	out.Payment.PayPalOrderID = cloneString(o.Payment.PayPalOrderID)
	out.Payment.MercadoPagoPaymentID = cloneString(o.Payment.MercadoPagoPaymentID)
	if o.Payment.CompletedAt != nil {
		t := *o.Payment.CompletedAt
		out.Payment.CompletedAt = &t
	}
	return out
}
