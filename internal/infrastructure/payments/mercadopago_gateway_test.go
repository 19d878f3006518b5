package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"tracker_orders/internal/domain/entities"

	"github.com/mercadopago/sdk-go/pkg/payment"
)

type fakePaymentClient struct {
	gotID int
	resp  *payment.Response
	err   error
}

func (f *fakePaymentClient) Get(_ context.Context, id int) (*payment.Response, error) {
	f.gotID = id
	return f.resp, f.err
}

func TestMapProviderStatus(t *testing.T) {
	cases := map[string]entities.PaymentStatus{
		"approved":     entities.PaymentStatusCompleted,
		" APPROVED ":   entities.PaymentStatusCompleted,
		"pending":      entities.PaymentStatusPending,
		"in_process":   entities.PaymentStatusPending,
		"authorized":   entities.PaymentStatusPending,
		"rejected":     entities.PaymentStatusFailed,
		"cancelled":    entities.PaymentStatusFailed,
		"refunded":     entities.PaymentStatusFailed,
		"charged_back": entities.PaymentStatusFailed,
		"something":    entities.PaymentStatusPending,
	}
	for in, want := range cases {
		if got := MapProviderStatus(in); got != want {
			t.Fatalf("MapProviderStatus(%q): expected %s, got %s", in, want, got)
		}
	}
}

func TestMercadoPagoGateway_GetPayment(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	t.Run("missing token", func(t *testing.T) {
		_, err := NewMercadoPagoGateway(" ", false)
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("mock mode from env", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		g, err := NewMercadoPagoGateway("", false)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		g.now = func() time.Time { return fixed }

		p, err := g.GetPayment(context.Background(), "987")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if p.Status != entities.PaymentStatusCompleted || p.ProviderStatus != "approved" || p.ProviderPaymentID != "987" {
			t.Fatalf("unexpected payment: %+v", p)
		}
		if p.ApprovedAt == nil || !p.ApprovedAt.Equal(fixed) {
			t.Fatalf("unexpected approvedAt: %v", p.ApprovedAt)
		}
		if !json.Valid(p.Raw) {
			t.Fatalf("expected raw json, got %s", p.Raw)
		}
	})

	t.Run("not configured", func(t *testing.T) {
		var g *MercadoPagoGateway
		_, err := g.GetPayment(context.Background(), "1")
		if !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
			t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("non numeric id", func(t *testing.T) {
		g := &MercadoPagoGateway{client: &fakePaymentClient{}, now: time.Now}
		_, err := g.GetPayment(context.Background(), "abc")
		if !errors.Is(err, ErrInvalidProviderPaymentID) {
			t.Fatalf("expected ErrInvalidProviderPaymentID, got %v", err)
		}
	})

	t.Run("sdk error", func(t *testing.T) {
		g := &MercadoPagoGateway{client: &fakePaymentClient{err: errors.New("401")}, now: time.Now}
		_, err := g.GetPayment(context.Background(), "42")
		if err == nil || err.Error() != "401" {
			t.Fatalf("expected sdk error, got %v", err)
		}
	})

	t.Run("maps sdk response", func(t *testing.T) {
		client := &fakePaymentClient{resp: &payment.Response{ID: 42, Status: "rejected"}}
		g := &MercadoPagoGateway{client: client, now: time.Now}

		p, err := g.GetPayment(context.Background(), " 42 ")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if client.gotID != 42 {
			t.Fatalf("expected sdk called with 42, got %d", client.gotID)
		}
		if p.ProviderPaymentID != "42" || p.ProviderStatus != "rejected" || p.Status != entities.PaymentStatusFailed {
			t.Fatalf("unexpected payment: %+v", p)
		}
	})

	t.Run("approved response carries date approved", func(t *testing.T) {
		approved := time.Date(2026, 2, 2, 9, 30, 0, 0, time.FixedZone("COT", -5*3600))
		client := &fakePaymentClient{resp: &payment.Response{ID: 43, Status: "approved", DateApproved: approved}}
		g := &MercadoPagoGateway{client: client, now: time.Now}

		p, err := g.GetPayment(context.Background(), "43")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if p.Status != entities.PaymentStatusCompleted {
			t.Fatalf("unexpected status: %s", p.Status)
		}
		if p.ApprovedAt == nil || !p.ApprovedAt.Equal(approved) || p.ApprovedAt.Location() != time.UTC {
			t.Fatalf("unexpected approvedAt: %v", p.ApprovedAt)
		}
	})
}

func TestApprovedAt(t *testing.T) {
	got := approvedAt(time.Date(2026, 2, 2, 9, 30, 0, 0, time.FixedZone("BOT", -4*3600)))
	want := time.Date(2026, 2, 2, 13, 30, 0, 0, time.UTC)
	if got == nil || !got.Equal(want) || got.Location() != time.UTC {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if approvedAt(time.Time{}) != nil {
		t.Fatalf("expected nil for unset date")
	}
}
