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

const (
	HeaderSessionID   = "X-Session-ID"
	sessionContextKey = "session_context"
)

type SessionHandler struct {
	sessions usecase.ISessionUseCase
}

func NewSessionHandler(sessions usecase.ISessionUseCase) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// StartSession godoc
// @Summary Start a visitor session
// @Tags sessions
// @Accept json
// @Produce json
// @Param payload body request.StartSessionRequest false "Optional user and channel"
// @Success 201 {object} response.SessionResponse
// @Router /sessions [post]
func (h *SessionHandler) StartSession(c *gin.Context) {
	var payload request.StartSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	sc, err := h.sessions.Start(c.Request.Context(), payload.UserID, payload.ChannelID)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(sc))
}

// EndSession godoc
// @Summary End a visitor session
// @Tags sessions
// @Param id path string true "Session id"
// @Success 204
// @Router /sessions/{id} [delete]
func (h *SessionHandler) EndSession(c *gin.Context) {
	if err := h.sessions.End(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// SessionMiddleware resolves X-Session-ID into a SessionContext. Unknown or
// expired sessions continue anonymously.
func SessionMiddleware(sessions usecase.ISessionUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderSessionID)
		if id == "" {
			c.Next()
			return
		}
		sc, err := sessions.Resolve(c.Request.Context(), id)
		switch {
		case err == nil:
			c.Set(sessionContextKey, sc)
		case !errors.Is(err, usecase.ErrSessionNotFound):
			logger.Warn("[session][middleware] resolve failed", zap.String("session_id", id), zap.Error(err))
		}
		c.Next()
	}
}

// SessionFromContext returns the resolved session or an anonymous one.
func SessionFromContext(c *gin.Context) entities.SessionContext {
	if v, ok := c.Get(sessionContextKey); ok {
		if sc, ok := v.(entities.SessionContext); ok {
			return sc
		}
	}
	return entities.SessionContext{}
}

func mapSessionError(err error) *pkg.AppError {
	var persistenceErr *usecase.PersistenceError
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	case errors.As(err, &persistenceErr):
		return pkg.NewDomainError("SESSION_STORE_ERROR", "Session store unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
