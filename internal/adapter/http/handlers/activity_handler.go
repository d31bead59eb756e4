package handlers

import (
	"errors"
	"net/http"

	request "academy_payments/internal/adapter/http/dto/request"
	response "academy_payments/internal/adapter/http/dto/response"
	"academy_payments/internal/infrastructure/logger"
	"academy_payments/internal/usecase"
	"academy_payments/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidActivityPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// ActivityHandler serves the storefront forms and tracking endpoints. Each
// call performs one datastore write and answers 500 when it fails.
type ActivityHandler struct {
	activities usecase.IActivityUseCase
}

func NewActivityHandler(activities usecase.IActivityUseCase) *ActivityHandler {
	return &ActivityHandler{activities: activities}
}

// SubmitContact godoc
// @Summary Submit the contact form
// @Tags activity
// @Accept json
// @Produce json
// @Param payload body request.ContactRequest true "Contact form"
// @Success 200 {object} response.ActivityResponse
// @Failure 500 {object} map[string]any
// @Router /send-contact-email [post]
func (h *ActivityHandler) SubmitContact(c *gin.Context) {
	var payload request.ContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidActivityPayload.HTTPStatus, errInvalidActivityPayload.ToHTTPError())
		return
	}

	a, err := h.activities.SubmitContact(c.Request.Context(), SessionFromContext(c), payload.ToSubmission())
	if err != nil {
		appErr := mapActivityError(err)
		logger.Warn("[activity][handler] contact failed", zap.String("code", appErr.Code), zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromActivity(a, "Message received. We will get back to you shortly."))
}

// RegisterWebinar godoc
// @Summary Register for a webinar
// @Tags activity
// @Accept json
// @Produce json
// @Param payload body request.WebinarRegistrationRequest true "Registration"
// @Success 200 {object} response.ActivityResponse
// @Failure 500 {object} map[string]any
// @Router /send-webinar-registration [post]
func (h *ActivityHandler) RegisterWebinar(c *gin.Context) {
	var payload request.WebinarRegistrationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidActivityPayload.HTTPStatus, errInvalidActivityPayload.ToHTTPError())
		return
	}

	a, err := h.activities.RegisterWebinar(c.Request.Context(), SessionFromContext(c), payload.ToRegistration())
	if err != nil {
		appErr := mapActivityError(err)
		logger.Warn("[activity][handler] webinar registration failed", zap.String("code", appErr.Code), zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromActivity(a, "Registration confirmed"))
}

// LogActivity godoc
// @Summary Record a user action
// @Tags activity
// @Accept json
// @Produce json
// @Param payload body request.LogActivityRequest true "Activity"
// @Success 200 {object} response.ActivityResponse
// @Failure 500 {object} map[string]any
// @Router /log-activity [post]
func (h *ActivityHandler) LogActivity(c *gin.Context) {
	var payload request.LogActivityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidActivityPayload.HTTPStatus, errInvalidActivityPayload.ToHTTPError())
		return
	}

	a, err := h.activities.LogActivity(c.Request.Context(), SessionFromContext(c), payload.ToActivityLog())
	if err != nil {
		appErr := mapActivityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromActivity(a, "Activity logged"))
}

// TrackAnalytics godoc
// @Summary Track a storefront analytics event
// @Tags activity
// @Accept json
// @Produce json
// @Param payload body request.TrackAnalyticsRequest true "Event"
// @Success 200 {object} response.AnalyticsResponse
// @Failure 500 {object} map[string]any
// @Router /track-analytics [post]
func (h *ActivityHandler) TrackAnalytics(c *gin.Context) {
	var payload request.TrackAnalyticsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidActivityPayload.HTTPStatus, errInvalidActivityPayload.ToHTTPError())
		return
	}

	ev, err := h.activities.TrackAnalytics(c.Request.Context(), SessionFromContext(c), payload.ToAnalyticsTrack())
	if err != nil {
		appErr := mapActivityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAnalyticsEvent(ev))
}

func mapActivityError(err error) *pkg.AppError {
	var validationErr *usecase.ValidationError
	var persistenceErr *usecase.PersistenceError

	switch {
	case errors.Is(err, usecase.ErrMissingRequiredField):
		return pkg.NewDomainErrorSimple("MISSING_FIELD", err.Error(), http.StatusBadRequest)
	case errors.As(err, &validationErr):
		msg := "Invalid input"
		if len(validationErr.Result.Errors) > 0 {
			msg = validationErr.Result.Errors[0]
		}
		return pkg.NewDomainError("VALIDATION_ERROR", msg, err, http.StatusBadRequest).WithDetails(validationErr.Result)
	case errors.As(err, &persistenceErr):
		return pkg.NewDomainError("WRITE_FAILED", "Could not save your request. Please try again.", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
