package orders

import (
	"time"

	"tracker_orders/internal/domain/entities"
)

// Add-on categories used as keys of Order.Extras.
const (
	ExtraCharger   = "charger"
	ExtraStraps    = "straps"
	ExtraDongle    = "dongle"
	ExtraExtension = "extension"
)

// CreationToRecord maps a validated creation request into a new order record.
//
// The request is not re-validated. Missing nested groups produce zero values.
// The ID is left empty; the caller assigns the storage key.
func CreationToRecord(req entities.OrderCreateRequest) entities.Order {
	return creationToRecordAt(req, time.Now().UTC())
}

func creationToRecordAt(req entities.OrderCreateRequest, now time.Time) entities.Order {
	o := entities.Order{
		Username:        req.Username,
		PseudonymousID:  PseudonymousID(req.Username),
		Contact:         req.Contact,
		ShippingCountry: req.ShippingCountry,
		ShippingPaid:    req.ShippingPaid,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if p := req.ProductData; p != nil {
		o.TotalUSD = p.TotalUSD
		o.TrackerCount = p.TrackerCount
		o.Sensor = p.Sensor
		o.Magnetometer = p.Magnetometer
		o.CaseColor = p.CaseColor
		o.CoverColor = p.CoverColor
		o.Extras = selectedExtras(p)
	}

	if pd := req.PaymentData; pd != nil {
		o.Payment = entities.Payment{
			Method:               pd.Method,
			TransactionID:        pd.TransactionID,
			Status:               pd.Status,
			Currency:             pd.Currency,
			Amount:               pd.Amount,
			PayPalOrderID:        cloneString(pd.PayPalOrderID),
			MercadoPagoPaymentID: cloneString(pd.MercadoPagoPaymentID),
		}
		if pd.Status == entities.PaymentStatusCompleted {
			o.PaidUSD = o.TotalUSD
			completedAt := now
			o.Payment.CompletedAt = &completedAt
		}
	}
	o.IsPendingPayment = o.Payment.Status == entities.PaymentStatusPending

	if u := req.UserData; u != nil {
		o.ShippingAddress = &entities.ShippingAddress{
			Email:      u.Email,
			Street:     u.Address,
			CityRegion: u.CityRegion,
			Country:    u.Country,
		}
		handle := u.VRHandle
		o.VRHandle = &handle
	}

	if req.Progress != nil {
		o.Progress = mergeProgress(entities.Progress{}, *req.Progress)
	}

	switch {
	case req.Status != nil:
		o.Status = *req.Status
	case o.IsPendingPayment:
		o.Status = entities.OrderStatusPendingPayment
	default:
		o.Status = entities.OrderStatusWaiting
	}

	return o
}

func selectedExtras(p *entities.ProductData) map[string]entities.AddOn {
	extras := map[string]entities.AddOn{}
	for key, addOn := range map[string]*entities.AddOn{
		ExtraCharger:   p.Charger,
		ExtraStraps:    p.Straps,
		ExtraDongle:    p.Dongle,
		ExtraExtension: p.Extension,
	} {
		if addOn != nil {
			extras[key] = *addOn
		}
	}
	if len(extras) == 0 {
		return nil
	}
	return extras
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
