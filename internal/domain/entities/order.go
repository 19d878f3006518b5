package entities

import "time"

// OrderStatus is the manufacturing/fulfilment stage shown to the customer.
//
// The values are not a strict sequence: administrators may set any status at any time.
type OrderStatus string

const (
	OrderStatusWaiting        OrderStatus = "WAITING"
	OrderStatusPendingPayment OrderStatus = "PENDING_PAYMENT"
	OrderStatusManufacturing  OrderStatus = "MANUFACTURING"
	OrderStatusTesting        OrderStatus = "TESTING"
	OrderStatusShipping       OrderStatus = "SHIPPING"
	OrderStatusReceived       OrderStatus = "RECEIVED"
	OrderStatusDelivered      OrderStatus = "DELIVERED"
)

// PaymentMethod identifies the payment provider used for the order.
type PaymentMethod string

const (
	PaymentMethodPayPal      PaymentMethod = "PAYPAL"
	PaymentMethodMercadoPago PaymentMethod = "MERCADOPAGO"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

// PaymentCurrency tells whether Payment.Amount is expressed in USD or in the
// currency of the shipping country.
type PaymentCurrency string

const (
	PaymentCurrencyUSD   PaymentCurrency = "USD"
	PaymentCurrencyLocal PaymentCurrency = "LOCAL"
)

// Progress holds the four manufacturing stages, each a percentage in 0..100.
type Progress struct {
	Board     int `json:"board"`
	Straps    int `json:"straps"`
	Cases     int `json:"cases"`
	Batteries int `json:"batteries"`
}

// AddOn is a selected accessory option and its cost in USD.
type AddOn struct {
	ID   string  `json:"id"`
	Cost float64 `json:"cost"`
}

type ShippingAddress struct {
	Email      string `json:"email,omitempty"`
	Street     string `json:"street"`
	CityRegion string `json:"cityRegion"`
	Country    string `json:"country"`
}

// Payment is the payment sub-record of an order.
//
// Amount is expressed in Currency: USD, or the local currency of the shipping
// country when Currency is LOCAL.
type Payment struct {
	Method               PaymentMethod   `json:"method"`
	TransactionID        string          `json:"transactionId"`
	Status               PaymentStatus   `json:"status"`
	Currency             PaymentCurrency `json:"currency"`
	Amount               float64         `json:"amount"`
	PayPalOrderID        *string         `json:"paypalOrderId,omitempty"`
	MercadoPagoPaymentID *string         `json:"mercadoPagoPaymentId,omitempty"`
	CompletedAt          *time.Time      `json:"completedAt,omitempty"`
}

// Order is the canonical persisted order record.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI username-index: username
//   - GSI pseudonymous_id-index: pseudonymous_id
//
// ShippingAddress and VRHandle stay nil when the customer never supplied them, so
// "no address on file" is distinguishable from an empty address.
type Order struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	PseudonymousID string `json:"pseudonymousId,omitempty"`
	Contact        string `json:"contact"`

	TotalUSD     float64 `json:"totalUsd"`
	PaidUSD      float64 `json:"paidUsd"`
	ShippingPaid bool    `json:"shippingPaid"`

	TrackerCount int              `json:"trackerCount"`
	Sensor       string           `json:"sensor"`
	Magnetometer bool             `json:"magnetometer"`
	CaseColor    string           `json:"caseColor"`
	CoverColor   string           `json:"coverColor"`
	Extras       map[string]AddOn `json:"extras,omitempty"`

	ShippingCountry string           `json:"shippingCountry"`
	ShippingAddress *ShippingAddress `json:"shippingAddress,omitempty"`
	VRHandle        *string          `json:"vrHandle,omitempty"`

	Status   OrderStatus `json:"status"`
	Progress Progress    `json:"progress"`
	Payment  Payment     `json:"payment"`

	IsPendingPayment bool      `json:"isPendingPayment"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
