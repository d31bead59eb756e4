package handlers

import (
	"errors"
	"net/http"
	"testing"

	"academy_payments/internal/adapter/http/handlers/mocks"
	"academy_payments/internal/domain/entities"
	"academy_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestEmailHandler_SendEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(t *testing.T) (*gin.Engine, *mocks.MockIEmailUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEmailUseCase(ctrl)
		r := gin.New()
		r.POST("/v1/send-email", NewEmailHandler(uc).SendEmail)
		return r, uc
	}

	t.Run("missing type", func(t *testing.T) {
		r, _ := newRouter(t)
		if w := doJSON(r, http.MethodPost, "/v1/send-email", `{"data":{}}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("queued", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Queue(gomock.Any(), entities.EmailEnrollment, map[string]any{"email": "jane@gmail.com", "course": "go-101"}).
			Return(usecase.EmailDelivery{Type: entities.EmailEnrollment, Recipient: "jane@gmail.com", Message: "Email queued successfully"}, nil)

		w := doJSON(r, http.MethodPost, "/v1/send-email", `{"type":"enrollment","data":{"email":"jane@gmail.com","course":"go-101"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["success"] != true || body["type"] != "enrollment" || body["recipient"] != "jane@gmail.com" || body["message"] != "Email queued successfully" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("error mapping", func(t *testing.T) {
		cases := []struct {
			err  error
			want int
		}{
			{usecase.ErrUnsupportedEmailType, http.StatusBadRequest},
			{usecase.ErrInvalidRecipient, http.StatusBadRequest},
			{errors.New("boom"), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			r, uc := newRouter(t)
			uc.EXPECT().Queue(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.EmailDelivery{}, tc.err)
			if w := doJSON(r, http.MethodPost, "/v1/send-email", `{"type":"x","data":{}}`); w.Code != tc.want {
				t.Fatalf("%v: expected %d, got %d", tc.err, tc.want, w.Code)
			}
		}
	})
}
