package response

import (
	"time"

	"tracker_orders/internal/domain/entities"
	"tracker_orders/internal/domain/orders"
)

// OrderResponse is the admin view: the stored record plus derived values.
type OrderResponse struct {
	entities.Order
	OverallProgress int                    `json:"overallProgress"`
	PaymentProgress float64                `json:"paymentProgress"`
	IsComplete      bool                   `json:"isComplete"`
	TotalDisplay    orders.LocalizedAmount `json:"totalDisplay"`
	PaidDisplay     orders.LocalizedAmount `json:"paidDisplay"`
}

func FromOrder(o entities.Order, currencies entities.CurrencyTable) OrderResponse {
	return OrderResponse{
		Order:           o,
		OverallProgress: orders.OverallProgress(o),
		PaymentProgress: orders.PaymentProgressPercent(o),
		IsComplete:      orders.IsComplete(o),
		TotalDisplay:    orders.FormatWithLocalCurrency(currencies, o.TotalUSD, o.ShippingCountry),
		PaidDisplay:     orders.FormatWithLocalCurrency(currencies, o.PaidUSD, o.ShippingCountry),
	}
}

// TrackingResponse is the public view served by pseudonymous id. It carries
// no username, contact, address or payment references.
type TrackingResponse struct {
	PseudonymousID   string                 `json:"pseudonymousId"`
	Status           entities.OrderStatus   `json:"status"`
	Progress         entities.Progress      `json:"progress"`
	OverallProgress  int                    `json:"overallProgress"`
	PaymentProgress  float64                `json:"paymentProgress"`
	IsPendingPayment bool                   `json:"isPendingPayment"`
	IsComplete       bool                   `json:"isComplete"`
	TrackerCount     int                    `json:"trackerCount"`
	Sensor           string                 `json:"sensor"`
	Magnetometer     bool                   `json:"magnetometer"`
	CaseColor        string                 `json:"caseColor"`
	CoverColor       string                 `json:"coverColor"`
	ShippingCountry  string                 `json:"shippingCountry"`
	TotalDisplay     orders.LocalizedAmount `json:"totalDisplay"`
	PaidDisplay      orders.LocalizedAmount `json:"paidDisplay"`
	CreatedAt        time.Time              `json:"createdAt"`
	UpdatedAt        time.Time              `json:"updatedAt"`
}

func FromOrderForTracking(o entities.Order, currencies entities.CurrencyTable) TrackingResponse {
	return TrackingResponse{
		PseudonymousID:   o.PseudonymousID,
		Status:           o.Status,
		Progress:         o.Progress,
		OverallProgress:  orders.OverallProgress(o),
		PaymentProgress:  orders.PaymentProgressPercent(o),
		IsPendingPayment: o.IsPendingPayment,
		IsComplete:       orders.IsComplete(o),
		TrackerCount:     o.TrackerCount,
		Sensor:           o.Sensor,
		Magnetometer:     o.Magnetometer,
		CaseColor:        o.CaseColor,
		CoverColor:       o.CoverColor,
		ShippingCountry:  o.ShippingCountry,
		TotalDisplay:     orders.FormatWithLocalCurrency(currencies, o.TotalUSD, o.ShippingCountry),
		PaidDisplay:      orders.FormatWithLocalCurrency(currencies, o.PaidUSD, o.ShippingCountry),
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}
