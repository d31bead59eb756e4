package routes

import (
	"academy_payments/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments           = "/payments"
	PathProcessPayment     = "/process-payment"
	PathMpesaStatus        = "/mpesa-status"
	PathMpesaCallback      = "/mpesa-callback"
	PathMercadoPagoWebhook = "/mercadopago-webhook"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, callbackHandler *handlers.CallbackHandler) {
	rg.POST(PathProcessPayment, paymentHandler.ProcessPayment)
	rg.POST(PathMpesaStatus, paymentHandler.MpesaStatus)
	rg.POST(PathMpesaCallback, callbackHandler.MpesaCallback)
	rg.POST(PathMercadoPagoWebhook, callbackHandler.MercadoPagoWebhook)

	payments := rg.Group(PathPayments)
	{
		payments.GET("/errors/:code", paymentHandler.GetErrorMapping)
		payments.GET("/:tracking_id", paymentHandler.GetPayment)
		payments.GET("/:tracking_id/poll", paymentHandler.PollPayment)
		payments.GET("/:tracking_id/events", paymentHandler.PaymentEvents)
	}
}
