package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"tracker_orders/internal/domain/entities"
	"tracker_orders/internal/logging"
	"tracker_orders/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing mercado pago access token")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	ErrInvalidProviderPaymentID        = errors.New("invalid mercado pago payment id")
)

var log = logging.For("payment", "gateway")

// paymentGetter is the part of the SDK payment client the gateway uses.
type paymentGetter interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
}

type MercadoPagoGateway struct {
	client   paymentGetter
	mockMode bool
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

// NewMercadoPagoGateway builds the SDK client. In mock mode (mock=true, or
// PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK set) no token is needed and every
// payment is reported approved.
func NewMercadoPagoGateway(accessToken string, mock bool) (*MercadoPagoGateway, error) {
	if mock || isPaymentGatewayMockEnabled() {
		log.Infof("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, now: time.Now}, nil
	}

	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		log.Warnf("missing mercado pago access token")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Errorf("failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Infof("mercado pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), now: time.Now}, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, providerPaymentID string) (interfaces.ProviderPayment, error) {
	providerPaymentID = strings.TrimSpace(providerPaymentID)

	if g != nil && g.mockMode {
		now := g.now().UTC()
		raw, err := json.Marshal(map[string]any{
			"id":            providerPaymentID,
			"status":        "approved",
			"status_detail": "accredited",
			"date_approved": now.Format(time.RFC3339Nano),
		})
		if err != nil {
			return interfaces.ProviderPayment{}, err
		}
		log.Infof("mock get provider_payment_id=%s provider_status=approved", providerPaymentID)
		return interfaces.ProviderPayment{
			ProviderPaymentID: providerPaymentID,
			ProviderStatus:    "approved",
			Status:            entities.PaymentStatusCompleted,
			ApprovedAt:        &now,
			Raw:               raw,
		}, nil
	}

	if g == nil || g.client == nil {
		log.Errorf("gateway not configured")
		return interfaces.ProviderPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(providerPaymentID)
	if err != nil || id <= 0 {
		log.Warnf("invalid provider payment id provider_payment_id=%q", providerPaymentID)
		return interfaces.ProviderPayment{}, ErrInvalidProviderPaymentID
	}

	log.Infof("get start provider_payment_id=%d", id)
	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Errorf("sdk get failed provider_payment_id=%d err=%v", id, err)
		return interfaces.ProviderPayment{}, err
	}
	if resp == nil {
		return interfaces.ProviderPayment{}, fmt.Errorf("mercado pago returned no payment for id %d", id)
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("response marshal failed provider_payment_id=%d err=%v", id, err)
		return interfaces.ProviderPayment{}, err
	}

	out := interfaces.ProviderPayment{
		ProviderPaymentID: fmt.Sprintf("%d", resp.ID),
		ProviderStatus:    resp.Status,
		Status:            MapProviderStatus(resp.Status),
		ApprovedAt:        approvedAt(resp.DateApproved),
		Raw:               raw,
	}
	log.Infof("get success provider_payment_id=%s provider_status=%s status=%s", out.ProviderPaymentID, out.ProviderStatus, out.Status)
	return out, nil
}

// MapProviderStatus translates a Mercado Pago payment status into the order's
// payment status. Unknown values are treated as still pending.
func MapProviderStatus(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved":
		return entities.PaymentStatusCompleted
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusFailed
	case "pending", "in_process", "in_mediation", "authorized":
		return entities.PaymentStatusPending
	}
	log.Warnf("unknown provider status=%q treated as pending", providerStatus)
	return entities.PaymentStatusPending
}

// approvedAt converts the SDK's date_approved; an unset date is the zero time.
func approvedAt(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	t = t.UTC()
	return &t
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
