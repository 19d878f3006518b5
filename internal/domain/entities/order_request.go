package entities

import "time"

// OrderCreateRequest is the inbound "create order" payload.
//
// Nested groups are pointers so a missing group is reported by the validator
// instead of silently becoming a zero value.
type OrderCreateRequest struct {
	Username        string          `json:"username" validate:"notblank"`
	Contact         string          `json:"contact" validate:"notblank"`
	ShippingCountry string          `json:"shippingCountry"`
	ShippingPaid    bool            `json:"shippingPaid"`
	Status          *OrderStatus    `json:"status,omitempty" validate:"omitempty,oneof=WAITING PENDING_PAYMENT MANUFACTURING TESTING SHIPPING RECEIVED DELIVERED"`
	Progress        *ProgressUpdate `json:"progress,omitempty" validate:"-"`
	ProductData     *ProductData    `json:"productData" validate:"-"`
	PaymentData     *PaymentData    `json:"paymentData" validate:"-"`
	UserData        *UserData       `json:"userData,omitempty" validate:"-"`
}

// ProductData is the product configuration chosen in the storefront.
type ProductData struct {
	TotalUSD     float64 `json:"totalUsd" validate:"gt=0"`
	TrackerCount int     `json:"trackerCount" validate:"gt=0"`
	Sensor       string  `json:"sensor" validate:"notblank"`
	Magnetometer bool    `json:"magnetometer"`
	CaseColor    string  `json:"caseColor"`
	CoverColor   string  `json:"coverColor"`

	Charger   *AddOn `json:"charger,omitempty" validate:"-"`
	Straps    *AddOn `json:"straps,omitempty" validate:"-"`
	Dongle    *AddOn `json:"dongle,omitempty" validate:"-"`
	Extension *AddOn `json:"extension,omitempty" validate:"-"`
}

// PaymentData is the payment intent captured at checkout.
type PaymentData struct {
	Method               PaymentMethod   `json:"method" validate:"oneof=PAYPAL MERCADOPAGO"`
	TransactionID        string          `json:"transactionId" validate:"notblank"`
	Status               PaymentStatus   `json:"status" validate:"oneof=PENDING COMPLETED FAILED"`
	Currency             PaymentCurrency `json:"currency" validate:"oneof=USD LOCAL"`
	Amount               float64         `json:"amount"`
	PayPalOrderID        *string         `json:"paypalOrderId,omitempty"`
	MercadoPagoPaymentID *string         `json:"mercadoPagoPaymentId,omitempty"`
}

type UserData struct {
	Email      string `json:"email"`
	Address    string `json:"address"`
	CityRegion string `json:"cityRegion"`
	Country    string `json:"country"`
	VRHandle   string `json:"vrHandle"`
}

// OrderUpdateRequest is a partial mutation of an existing order.
//
// Every field is optional; a nil pointer means "keep the stored value".
type OrderUpdateRequest struct {
	ID       string          `json:"id" validate:"notblank"`
	Status   *OrderStatus    `json:"status,omitempty" validate:"omitempty,oneof=WAITING PENDING_PAYMENT MANUFACTURING TESTING SHIPPING RECEIVED DELIVERED"`
	Progress *ProgressUpdate `json:"progress,omitempty"`
	Payment  *PaymentUpdate  `json:"payment,omitempty"`
}

type ProgressUpdate struct {
	Board     *int `json:"board,omitempty" validate:"omitempty,min=0,max=100"`
	Straps    *int `json:"straps,omitempty" validate:"omitempty,min=0,max=100"`
	Cases     *int `json:"cases,omitempty" validate:"omitempty,min=0,max=100"`
	Batteries *int `json:"batteries,omitempty" validate:"omitempty,min=0,max=100"`
}

type PaymentUpdate struct {
	Method               *PaymentMethod   `json:"method,omitempty" validate:"omitempty,oneof=PAYPAL MERCADOPAGO"`
	TransactionID        *string          `json:"transactionId,omitempty" validate:"omitempty,notblank"`
	Status               *PaymentStatus   `json:"status,omitempty" validate:"omitempty,oneof=PENDING COMPLETED FAILED"`
	Currency             *PaymentCurrency `json:"currency,omitempty" validate:"omitempty,oneof=USD LOCAL"`
	Amount               *float64         `json:"amount,omitempty" validate:"omitempty,min=0"`
	PayPalOrderID        *string          `json:"paypalOrderId,omitempty"`
	MercadoPagoPaymentID *string          `json:"mercadoPagoPaymentId,omitempty"`
	CompletedAt          *time.Time       `json:"completedAt,omitempty"`
}
