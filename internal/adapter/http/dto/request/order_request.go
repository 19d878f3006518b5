package request

import (
	"strings"

	"tracker_orders/internal/domain/entities"
)

// OrderCreateRequest is the "create order" body; validation happens in the
// use case so every violation is reported at once.
type OrderCreateRequest = entities.OrderCreateRequest

// OrderUpdateRequest is the PATCH body. The order id comes from the path.
type OrderUpdateRequest struct {
	Status   *entities.OrderStatus    `json:"status,omitempty"`
	Progress *entities.ProgressUpdate `json:"progress,omitempty"`
	Payment  *entities.PaymentUpdate  `json:"payment,omitempty"`
}

func (r OrderUpdateRequest) ToEntity(id string) entities.OrderUpdateRequest {
	return entities.OrderUpdateRequest{
		ID:       strings.TrimSpace(id),
		Status:   r.Status,
		Progress: r.Progress,
		Payment:  r.Payment,
	}
}

// IsEmpty reports a body that would change nothing.
func (r OrderUpdateRequest) IsEmpty() bool {
	return r.Status == nil && r.Progress == nil && r.Payment == nil
}
