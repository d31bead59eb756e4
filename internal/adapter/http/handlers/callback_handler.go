package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	request "academy_payments/internal/adapter/http/dto/request"
	response "academy_payments/internal/adapter/http/dto/response"
	"academy_payments/internal/infrastructure/logger"
	"academy_payments/internal/usecase"
	"academy_payments/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	HeaderCallbackSignature = "X-Callback-Signature"
	HeaderMercadoPagoSig    = "x-signature"
	HeaderMercadoPagoReqID  = "x-request-id"
)

// CallbackHandler receives asynchronous gateway notifications.
type CallbackHandler struct {
	callbacks usecase.ICallbackUseCase
}

func NewCallbackHandler(callbacks usecase.ICallbackUseCase) *CallbackHandler {
	return &CallbackHandler{callbacks: callbacks}
}

// MpesaCallback godoc
// @Summary Daraja STK push result callback
// @Tags mpesa
// @Accept json
// @Produce json
// @Param tracking_id query string true "Tracking id"
// @Param X-Callback-Signature header string true "hex HMAC-SHA256 of the body"
// @Success 200 {object} response.CallbackResponse
// @Failure 401 {object} map[string]any
// @Router /mpesa-callback [post]
func (h *CallbackHandler) MpesaCallback(c *gin.Context) {
	trackingID := c.Query("tracking_id")
	body, err := c.GetRawData()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out, err := h.callbacks.HandleMpesaCallback(c.Request.Context(), trackingID, body, c.GetHeader(HeaderCallbackSignature))
	if err != nil {
		appErr := mapCallbackError(err)
		logger.Warn("[mpesa][handler] callback rejected", zap.String("tracking_id", trackingID), zap.String("code", appErr.Code), zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCallbackOutcome(out))
}

// MercadoPagoWebhook godoc
// @Summary Mercado Pago payment notification
// @Tags checkout
// @Accept json
// @Produce json
// @Param x-signature header string true "ts=<ts>,v1=<hmac>"
// @Param x-request-id header string true "Request id"
// @Success 200 {object} response.CallbackResponse
// @Failure 401 {object} map[string]any
// @Router /mercadopago-webhook [post]
func (h *CallbackHandler) MercadoPagoWebhook(c *gin.Context) {
	var payload request.MercadoPagoWebhookRequest
	body, err := c.GetRawData()
	if err == nil && len(strings.TrimSpace(string(body))) > 0 {
		err = json.Unmarshal(body, &payload)
	}
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	// The signature covers the query data.id, so it wins over the body.
	dataID := c.Query("data.id")
	if dataID == "" {
		dataID = string(payload.Data.ID)
	}
	eventType := c.Query("type")
	if eventType == "" {
		eventType = payload.Type
	}
	if eventType != "" && eventType != "payment" {
		logger.Debug("[checkout][handler] webhook ignored", zap.String("type", eventType))
		c.JSON(http.StatusOK, gin.H{"success": true, "result": "ignored"})
		return
	}
	if dataID == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "data.id is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out, err := h.callbacks.HandleCheckoutWebhook(c.Request.Context(), usecase.CheckoutNotification{
		Type:      eventType,
		DataID:    dataID,
		RequestID: c.GetHeader(HeaderMercadoPagoReqID),
		Signature: c.GetHeader(HeaderMercadoPagoSig),
	})
	if err != nil {
		appErr := mapCallbackError(err)
		logger.Warn("[checkout][handler] webhook rejected", zap.String("data_id", dataID), zap.String("code", appErr.Code), zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCallbackOutcome(out))
}

func mapCallbackError(err error) *pkg.AppError {
	var gatewayErr *usecase.GatewayError
	var persistenceErr *usecase.PersistenceError

	switch {
	case errors.Is(err, usecase.ErrInvalidSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid signature", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidCallbackPayload), errors.Is(err, usecase.ErrInvalidTrackingID):
		return pkg.NewDomainErrorSimple("INVALID_CALLBACK", "Invalid callback payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCallbackMismatch):
		return pkg.NewDomainErrorSimple("CALLBACK_MISMATCH", "Callback does not match the payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.As(err, &gatewayErr):
		return pkg.NewDomainError("GATEWAY_ERROR", gatewayErr.Mapping.UserMessage, err, http.StatusBadGateway)
	case errors.As(err, &persistenceErr):
		return pkg.NewDomainError("PERSISTENCE_ERROR", "Could not record the notification", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
