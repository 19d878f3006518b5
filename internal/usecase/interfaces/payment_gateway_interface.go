package interfaces

import (
	"context"
	"encoding/json"
	"time"

	"tracker_orders/internal/domain/entities"
)

// ProviderPayment is the state of a payment as reported by the provider.
type ProviderPayment struct {
	ProviderPaymentID string
	ProviderStatus    string
	Status            entities.PaymentStatus
	ApprovedAt        *time.Time
	Raw               json.RawMessage
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The order service uses it to pull the current state of a payment and
// reconcile the order with it.
type IPaymentGateway interface {
	GetPayment(ctx context.Context, providerPaymentID string) (ProviderPayment, error)
}
