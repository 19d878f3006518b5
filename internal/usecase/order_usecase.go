package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tracker_orders/internal/domain/entities"
	"tracker_orders/internal/domain/orders"
	"tracker_orders/internal/logging"
	"tracker_orders/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidOrder               = errors.New("invalid order")
	ErrInvalidOrderID             = errors.New("invalid order id")
	ErrOrderNotFound              = errors.New("order not found")
	ErrUsernameTaken              = errors.New("username already has an order")
	ErrPaymentProviderUnsupported = errors.New("payment provider does not support sync")
	ErrPaymentReferenceMissing    = errors.New("order has no provider payment reference")
	ErrPaymentGatewayUnavailable  = errors.New("payment gateway not configured")
)

// maxUpdateAttempts bounds the read-merge-write loop when another writer
// bumps updatedAt between our read and our conditional write.
const maxUpdateAttempts = 3

var log = logging.For("order", "usecase")

// ValidationError carries every validation message of a rejected request.
// It matches ErrInvalidOrder with errors.Is.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidOrder, strings.Join(e.Errors, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidOrder
}

// IOrderUseCase is the order lifecycle: creation, admin updates, payment
// reconciliation and the public tracking lookup.
type IOrderUseCase interface {
	Create(ctx context.Context, req entities.OrderCreateRequest) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByPseudonymousID(ctx context.Context, pseudonymousID string) (entities.Order, error)
	Update(ctx context.Context, req entities.OrderUpdateRequest) (entities.Order, error)
	SyncPayment(ctx context.Context, id string) (entities.Order, error)
}

type OrderUseCase struct {
	repo    interfaces.IOrderRepository
	cache   interfaces.IOrderCache
	gateway interfaces.IPaymentGateway
	newID   func() string
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

// NewOrderUseCase wires the order lifecycle. cache and gateway may be nil:
// tracking lookups then always hit the repository and payment sync reports
// ErrPaymentGatewayUnavailable.
func NewOrderUseCase(repo interfaces.IOrderRepository, cache interfaces.IOrderCache, gateway interfaces.IPaymentGateway) *OrderUseCase {
	return &OrderUseCase{repo: repo, cache: cache, gateway: gateway, newID: uuid.NewString}
}

func (u *OrderUseCase) Create(ctx context.Context, req entities.OrderCreateRequest) (entities.Order, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Contact = strings.TrimSpace(req.Contact)
	log.Infof("create start username=%q", req.Username)

	if res := orders.ValidateCreation(req); !res.OK {
		log.Infof("create rejected username=%q errors=%d", req.Username, len(res.Errors))
		return entities.Order{}, &ValidationError{Errors: res.Errors}
	}

	existing, err := u.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		log.Errorf("create username lookup failed username=%q err=%v", req.Username, err)
		return entities.Order{}, err
	}
	if existing.ID != "" {
		log.Infof("create rejected username=%q reason=taken order_id=%s", req.Username, existing.ID)
		return entities.Order{}, ErrUsernameTaken
	}

	o := orders.CreationToRecord(req)
	// Usernames differing only in case share a pseudonymous id.
	clash, err := u.repo.GetByPseudonymousID(ctx, o.PseudonymousID)
	if err != nil {
		log.Errorf("create pseudonym lookup failed username=%q err=%v", req.Username, err)
		return entities.Order{}, err
	}
	if clash.ID != "" {
		log.Infof("create rejected username=%q reason=pseudonym_taken order_id=%s", req.Username, clash.ID)
		return entities.Order{}, ErrUsernameTaken
	}
	o.ID = u.newID()

	created, err := u.repo.Create(ctx, o)
	if errors.Is(err, interfaces.ErrOrderAlreadyExists) {
		log.Infof("create lost username race username=%q", req.Username)
		return entities.Order{}, ErrUsernameTaken
	}
	if err != nil {
		log.Errorf("create repository failed order_id=%s err=%v", o.ID, err)
		return entities.Order{}, err
	}

	ordersCreated.WithLabelValues(string(created.Payment.Method), string(created.Payment.Status)).Inc()
	log.Infof("create success order_id=%s status=%s payment_status=%s", created.ID, created.Status, created.Payment.Status)
	return created, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		log.Errorf("get failed order_id=%s err=%v", id, err)
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) GetByPseudonymousID(ctx context.Context, pseudonymousID string) (entities.Order, error) {
	pseudonymousID = strings.TrimSpace(pseudonymousID)
	if pseudonymousID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	if u.cache != nil {
		cached, hit, err := u.cache.Get(ctx, pseudonymousID)
		switch {
		case err != nil:
			log.Warnf("track cache get failed pseudonymous_id=%s err=%v", pseudonymousID, err)
		case hit:
			return cached, nil
		}
	}

	o, err := u.repo.GetByPseudonymousID(ctx, pseudonymousID)
	if err != nil {
		log.Errorf("track lookup failed pseudonymous_id=%s err=%v", pseudonymousID, err)
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	if u.cache != nil {
		if err := u.cache.Set(ctx, o); err != nil {
			log.Warnf("track cache set failed pseudonymous_id=%s err=%v", pseudonymousID, err)
		}
	}
	return o, nil
}

func (u *OrderUseCase) Update(ctx context.Context, req entities.OrderUpdateRequest) (entities.Order, error) {
	req.ID = strings.TrimSpace(req.ID)
	log.Infof("update start order_id=%s", req.ID)

	if errs := orders.ValidateUpdate(req); len(errs) > 0 {
		log.Infof("update rejected order_id=%s errors=%d", req.ID, len(errs))
		return entities.Order{}, &ValidationError{Errors: errs}
	}

	saved, err := u.apply(ctx, req)
	if err != nil {
		return entities.Order{}, err
	}
	ordersUpdated.WithLabelValues("admin", string(saved.Status)).Inc()
	return saved, nil
}

// SyncPayment pulls the provider-side state of the order's payment and
// reconciles the order with it. An unchanged status leaves the order as is.
func (u *OrderUseCase) SyncPayment(ctx context.Context, id string) (entities.Order, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	log.Infof("payment sync start order_id=%s method=%s status=%s", o.ID, o.Payment.Method, o.Payment.Status)

	if o.Payment.Method != entities.PaymentMethodMercadoPago {
		return entities.Order{}, ErrPaymentProviderUnsupported
	}
	if o.Payment.MercadoPagoPaymentID == nil || strings.TrimSpace(*o.Payment.MercadoPagoPaymentID) == "" {
		return entities.Order{}, ErrPaymentReferenceMissing
	}
	if u.gateway == nil {
		log.Errorf("payment sync gateway not configured order_id=%s", o.ID)
		return entities.Order{}, ErrPaymentGatewayUnavailable
	}

	ref := strings.TrimSpace(*o.Payment.MercadoPagoPaymentID)
	pp, err := u.gateway.GetPayment(ctx, ref)
	if err != nil {
		log.Errorf("payment sync gateway failed order_id=%s provider_payment_id=%s err=%v", o.ID, ref, err)
		return entities.Order{}, err
	}
	log.Infof("payment sync provider state order_id=%s provider_payment_id=%s provider_status=%s status=%s", o.ID, ref, pp.ProviderStatus, pp.Status)

	if pp.Status == o.Payment.Status {
		return o, nil
	}

	status := pp.Status
	update := entities.OrderUpdateRequest{ID: o.ID, Payment: &entities.PaymentUpdate{Status: &status}}
	if status == entities.PaymentStatusCompleted && pp.ApprovedAt != nil {
		approvedAt := pp.ApprovedAt.UTC()
		update.Payment.CompletedAt = &approvedAt
	}

	saved, err := u.apply(ctx, update)
	if err != nil {
		return entities.Order{}, err
	}
	ordersUpdated.WithLabelValues("payment_sync", string(saved.Status)).Inc()
	return saved, nil
}

// apply merges the update into the latest stored order and writes it back
// conditioned on the updatedAt that was read, retrying on conflicts.
func (u *OrderUseCase) apply(ctx context.Context, req entities.OrderUpdateRequest) (entities.Order, error) {
	var lastErr error
	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		existing, err := u.GetByID(ctx, req.ID)
		if err != nil {
			return entities.Order{}, err
		}

		updated := orders.ApplyUpdate(existing, req)
		saved, err := u.repo.Update(ctx, updated, existing.UpdatedAt)
		if errors.Is(err, interfaces.ErrOrderVersionConflict) {
			orderUpdateConflicts.Inc()
			log.Warnf("update conflict order_id=%s attempt=%d", req.ID, attempt)
			lastErr = err
			continue
		}
		if err != nil {
			log.Errorf("update repository failed order_id=%s err=%v", req.ID, err)
			return entities.Order{}, err
		}

		u.refreshCache(ctx, saved)
		log.Infof("update success order_id=%s status=%s payment_status=%s overall_progress=%d", saved.ID, saved.Status, saved.Payment.Status, orders.OverallProgress(saved))
		return saved, nil
	}
	return entities.Order{}, lastErr
}

// refreshCache writes the saved order to the tracking cache. The cache keeps
// the entry with the newest updatedAt, so a concurrent tracking read that
// loaded an older order cannot overwrite it. If the write fails the entry is
// dropped instead.
func (u *OrderUseCase) refreshCache(ctx context.Context, o entities.Order) {
	if u.cache == nil || o.PseudonymousID == "" {
		return
	}
	err := u.cache.Set(ctx, o)
	if err == nil {
		return
	}
	log.Warnf("cache refresh failed order_id=%s err=%v", o.ID, err)
	if err := u.cache.Invalidate(ctx, o.PseudonymousID); err != nil {
		log.Warnf("cache invalidate failed order_id=%s err=%v", o.ID, err)
	}
}
