package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	request "academy_payments/internal/adapter/http/dto/request"
	response "academy_payments/internal/adapter/http/dto/response"
	"academy_payments/internal/domain/entities"
	"academy_payments/internal/domain/errormapping"
	"academy_payments/internal/infrastructure/logger"
	"academy_payments/internal/usecase"
	"academy_payments/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler serves payment initiation and status tracking.
type PaymentHandler struct {
	payments usecase.IPaymentUseCase
	status   usecase.IPaymentStatusUseCase
	poller   usecase.IStatusPoller
}

func NewPaymentHandler(payments usecase.IPaymentUseCase, status usecase.IPaymentStatusUseCase, poller usecase.IStatusPoller) *PaymentHandler {
	return &PaymentHandler{payments: payments, status: status, poller: poller}
}

// ProcessPayment godoc
// @Summary Start a payment
// @Tags payments
// @Accept json
// @Produce json
// @Param payload body request.ProcessPaymentRequest true "Checkout form"
// @Success 200 {object} response.ProcessPaymentResponse
// @Failure 400 {object} map[string]any
// @Failure 502 {object} map[string]any
// @Router /process-payment [post]
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	var payload request.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		logger.Info("[payment][handler] invalid payload", zap.Error(err))
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	req, err := payload.ToPaymentRequest()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("UNSUPPORTED_PAYMENT_METHOD", "Unsupported payment method", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logger.Info("[payment][handler] process start", zap.String("method", string(req.Method.Kind())), zap.String("course_id", req.CourseID))

	res, err := h.payments.Initiate(c.Request.Context(), req)
	if err != nil {
		appErr := mapPaymentError(err)
		logger.Warn("[payment][handler] process failed", zap.String("code", appErr.Code), zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logger.Info("[payment][handler] process success", zap.String("tracking_id", res.TransactionID), zap.String("status", string(res.Status)))

	c.JSON(http.StatusOK, response.FromInitiation(res))
}

// GetPayment godoc
// @Summary Get a payment by tracking id
// @Tags payments
// @Produce json
// @Param tracking_id path string true "Tracking id"
// @Success 200 {object} response.PaymentResponse
// @Failure 404 {object} map[string]any
// @Router /payments/{tracking_id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.payments.GetByTransactionID(c.Request.Context(), c.Param("tracking_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentRecord(p))
}

// MpesaStatus godoc
// @Summary Current M-Pesa transaction status
// @Tags mpesa
// @Accept json
// @Produce json
// @Param payload body request.MpesaStatusRequest true "Tracking id"
// @Success 200 {object} response.MpesaStatusResponse
// @Failure 404 {object} map[string]any
// @Router /mpesa-status [post]
func (h *PaymentHandler) MpesaStatus(c *gin.Context) {
	var payload request.MpesaStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "tracking_id is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	tx, err := h.status.GetMobileMoneyStatus(c.Request.Context(), payload.TrackingID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMobileMoneyTransaction(tx))
}

// PollPayment godoc
// @Summary Poll a payment until it is terminal or the attempt budget runs out
// @Tags payments
// @Produce json
// @Param tracking_id path string true "Tracking id"
// @Success 200 {object} response.PollResponse
// @Router /payments/{tracking_id}/poll [get]
func (h *PaymentHandler) PollPayment(c *gin.Context) {
	trackingID := c.Param("tracking_id")
	res, err := h.poller.Poll(c.Request.Context(), trackingID)
	if err != nil {
		appErr := mapPaymentError(err)
		logger.Warn("[payment][handler] poll failed", zap.String("tracking_id", trackingID), zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPollResult(res))
}

// PaymentEvents godoc
// @Summary Stream status changes of a payment (server-sent events)
// @Tags payments
// @Produce text/event-stream
// @Param tracking_id path string true "Tracking id"
// @Router /payments/{tracking_id}/events [get]
func (h *PaymentHandler) PaymentEvents(c *gin.Context) {
	ctx := c.Request.Context()
	trackingID := strings.TrimSpace(c.Param("tracking_id"))

	// Subscribe before reading the snapshot so a transition in between is
	// still delivered.
	events, cancel, err := h.status.Subscribe(ctx, trackingID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer cancel()

	current, err := h.payments.GetByTransactionID(ctx, trackingID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	c.SSEvent("snapshot", response.FromPaymentRecord(current))
	c.Writer.Flush()
	if current.Status.IsTerminal() {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			c.SSEvent(ev.Type, ev)
			c.Writer.Flush()
			if ev.Status.IsTerminal() {
				return
			}
		}
	}
}

// GetErrorMapping godoc
// @Summary Classify a gateway error code
// @Tags payments
// @Produce json
// @Param code path string true "Gateway error code"
// @Param message query string false "Raw gateway message"
// @Param attempt query int false "Retry attempt number"
// @Success 200 {object} response.ErrorLookupResponse
// @Router /payments/errors/{code} [get]
func (h *PaymentHandler) GetErrorMapping(c *gin.Context) {
	attempt, err := strconv.Atoi(c.DefaultQuery("attempt", "0"))
	if err != nil || attempt < 0 {
		attempt = 0
	}
	m := errormapping.Classify(c.Param("code"), c.Query("message"))
	c.JSON(http.StatusOK, response.FromErrorMapping(m, errormapping.GetRetryDelay(m.Category, attempt)))
}

func mapPaymentError(err error) *pkg.AppError {
	var validationErr *usecase.ValidationError
	var gatewayErr *usecase.GatewayError
	var persistenceErr *usecase.PersistenceError

	switch {
	case errors.As(err, &validationErr):
		msg := "Invalid payment details"
		if len(validationErr.Result.Errors) > 0 {
			msg = validationErr.Result.Errors[0]
		}
		return pkg.NewDomainError("VALIDATION_ERROR", msg, err, http.StatusBadRequest).WithDetails(validationErr.Result)
	case errors.As(err, &gatewayErr):
		return gatewayAppError(gatewayErr)
	case errors.As(err, &persistenceErr):
		return pkg.NewDomainError("PERSISTENCE_ERROR", "We could not save your payment. Please try again.", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrInvalidTrackingID):
		return pkg.NewDomainErrorSimple("INVALID_TRACKING_ID", "Invalid tracking id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_UNAVAILABLE", "This payment method is currently unavailable", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrEventsUnavailable):
		return pkg.NewDomainErrorSimple("EVENTS_UNAVAILABLE", "Live payment updates are unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// gatewayAppError exposes only the classified mapping, never the raw
// provider message.
func gatewayAppError(gatewayErr *usecase.GatewayError) *pkg.AppError {
	m := gatewayErr.Mapping
	status := http.StatusBadGateway
	switch m.Category {
	case entities.ErrorCategoryInsufficientFunds, entities.ErrorCategoryInvalidPhone:
		status = http.StatusUnprocessableEntity
	case entities.ErrorCategoryTimeout:
		status = http.StatusGatewayTimeout
	}

	details := gin.H{
		"category":  m.Category,
		"solutions": m.Solutions,
		"severity":  m.Severity,
		"retryable": m.Retryable,
	}
	if m.Retryable {
		details["retry_after_ms"] = errormapping.GetRetryDelay(m.Category, 0).Milliseconds()
	}
	return pkg.NewDomainError("GATEWAY_ERROR", m.UserMessage, gatewayErr, status).WithDetails(details)
}
