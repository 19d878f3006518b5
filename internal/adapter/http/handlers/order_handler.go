package handlers

import (
	"errors"
	"net/http"

	request "tracker_orders/internal/adapter/http/dto/request"
	response "tracker_orders/internal/adapter/http/dto/response"
	"tracker_orders/internal/domain/entities"
	"tracker_orders/internal/logging"
	"tracker_orders/internal/usecase"
	"tracker_orders/internal/usecase/interfaces"
	"tracker_orders/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request body", http.StatusBadRequest)
	errEmptyOrderUpdate    = pkg.NewDomainErrorSimple("EMPTY_UPDATE", "Update must set status, progress or payment", http.StatusBadRequest)
)

var log = logging.For("order", "handler")

// OrderHandler handles HTTP requests for tracker orders.
//
// Admin routes work on the order id; the public tracking route only accepts
// the pseudonymous id and never returns customer data.
type OrderHandler struct {
	usecase    usecase.IOrderUseCase
	currencies entities.CurrencyTable
}

func NewOrderHandler(uc usecase.IOrderUseCase, currencies entities.CurrencyTable) *OrderHandler {
	return &OrderHandler{usecase: uc, currencies: currencies}
}

// CreateOrder godoc
// @Summary      Create an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      request.OrderCreateRequest  true  "Order"
// @Success      201    {object}  response.OrderResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      409    {object}  pkg.HTTPError
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	l := logging.From(c, log)
	var payload request.OrderCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		l.Infof("create invalid payload err=%v", err)
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload)
	if err != nil {
		l.Infof("create failed username=%q err=%v", payload.Username, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	l.Infof("create success order_id=%s", created.ID)

	c.JSON(http.StatusCreated, response.FromOrder(created, h.currencies))
}

// GetOrder godoc
// @Summary      Get an order (admin view)
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o, h.currencies))
}

// UpdateOrder godoc
// @Summary      Partially update an order
// @Description  Only the supplied fields change; progress and payment are merged per field.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id      path      string                      true  "Order ID"
// @Param        update  body      request.OrderUpdateRequest  true  "Fields to change"
// @Success      200     {object}  response.OrderResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      404     {object}  pkg.HTTPError
// @Failure      409     {object}  pkg.HTTPError
// @Router       /orders/{id} [patch]
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	l := logging.From(c, log)
	id := c.Param("id")

	var payload request.OrderUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		l.Infof("update invalid payload order_id=%s err=%v", id, err)
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}
	if payload.IsEmpty() {
		c.JSON(errEmptyOrderUpdate.HTTPStatus, errEmptyOrderUpdate.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(id))
	if err != nil {
		l.Infof("update failed order_id=%s err=%v", id, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	l.Infof("update success order_id=%s status=%s", updated.ID, updated.Status)

	c.JSON(http.StatusOK, response.FromOrder(updated, h.currencies))
}

// SyncPayment godoc
// @Summary      Reconcile the order with its Mercado Pago payment
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /orders/{id}/payment/sync [post]
func (h *OrderHandler) SyncPayment(c *gin.Context) {
	l := logging.From(c, log)
	id := c.Param("id")

	synced, err := h.usecase.SyncPayment(c.Request.Context(), id)
	if err != nil {
		l.Warnf("payment sync failed order_id=%s err=%v", id, err)
		appErr := mapPaymentSyncError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	l.Infof("payment sync success order_id=%s payment_status=%s", synced.ID, synced.Payment.Status)

	c.JSON(http.StatusOK, response.FromOrder(synced, h.currencies))
}

// TrackOrder godoc
// @Summary      Public order progress
// @Tags         tracking
// @Produce      json
// @Param        pseudonymous_id  path      string  true  "Pseudonymous ID"
// @Success      200              {object}  response.TrackingResponse
// @Failure      404              {object}  pkg.HTTPError
// @Router       /track/{pseudonymous_id} [get]
func (h *OrderHandler) TrackOrder(c *gin.Context) {
	o, err := h.usecase.GetByPseudonymousID(c.Request.Context(), c.Param("pseudonymous_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrderForTracking(o, h.currencies))
}

func mapOrderError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainErrorSimple("INVALID_ORDER", "Invalid order", http.StatusBadRequest).WithDetails(verr.Errors)
	case errors.Is(err, usecase.ErrInvalidOrder), errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUsernameTaken):
		return pkg.NewDomainErrorSimple("USERNAME_TAKEN", "An order already exists for this username", http.StatusConflict)
	case errors.Is(err, interfaces.ErrOrderVersionConflict):
		return pkg.NewDomainErrorSimple("ORDER_VERSION_CONFLICT", "Order was modified concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapPaymentSyncError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPaymentProviderUnsupported):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNSUPPORTED", "Payment provider does not support sync", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentReferenceMissing):
		return pkg.NewDomainErrorSimple("PAYMENT_REFERENCE_MISSING", "Order has no Mercado Pago payment id", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrOrderNotFound), errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, interfaces.ErrOrderVersionConflict):
		return mapOrderError(err)
	default:
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider request failed", err, http.StatusBadGateway)
	}
}
