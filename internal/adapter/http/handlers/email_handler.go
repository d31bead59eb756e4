package handlers

import (
	"errors"
	"net/http"

	request "academy_payments/internal/adapter/http/dto/request"
	response "academy_payments/internal/adapter/http/dto/response"
	"academy_payments/internal/domain/entities"
	"academy_payments/internal/infrastructure/logger"
	"academy_payments/internal/usecase"
	"academy_payments/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EmailHandler struct {
	emails usecase.IEmailUseCase
}

func NewEmailHandler(emails usecase.IEmailUseCase) *EmailHandler {
	return &EmailHandler{emails: emails}
}

// SendEmail godoc
// @Summary Queue a templated email
// @Tags email
// @Accept json
// @Produce json
// @Param payload body request.SendEmailRequest true "Email type and template data"
// @Success 200 {object} response.EmailResponse
// @Failure 400 {object} map[string]any
// @Router /send-email [post]
func (h *EmailHandler) SendEmail(c *gin.Context) {
	var payload request.SendEmailRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "type and data are required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	d, err := h.emails.Queue(c.Request.Context(), entities.EmailType(payload.Type), payload.Data)
	if err != nil {
		appErr := mapEmailError(err)
		logger.Warn("[email][handler] queue failed", zap.String("type", payload.Type), zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEmailDelivery(d))
}

func mapEmailError(err error) *pkg.AppError {
	var validationErr *usecase.ValidationError
	switch {
	case errors.Is(err, usecase.ErrUnsupportedEmailType):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_EMAIL_TYPE", "Unsupported email type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRecipient), errors.As(err, &validationErr):
		return pkg.NewDomainErrorSimple("INVALID_RECIPIENT", "Invalid email recipient", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingRequiredField):
		return pkg.NewDomainErrorSimple("MISSING_FIELD", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmailDeliveryFailed):
		return pkg.NewDomainError("EMAIL_DELIVERY_FAILED", "Email delivery failed", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
