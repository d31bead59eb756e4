package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"academy_payments/internal/adapter/http/handlers/mocks"
	"academy_payments/internal/domain/entities"
	"academy_payments/internal/domain/errormapping"
	"academy_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type paymentMocks struct {
	payments *mocks.MockIPaymentUseCase
	status   *mocks.MockIPaymentStatusUseCase
	poller   *mocks.MockIStatusPoller
}

func newPaymentRouter(t *testing.T) (*gin.Engine, paymentMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := paymentMocks{
		payments: mocks.NewMockIPaymentUseCase(ctrl),
		status:   mocks.NewMockIPaymentStatusUseCase(ctrl),
		poller:   mocks.NewMockIStatusPoller(ctrl),
	}
	h := NewPaymentHandler(m.payments, m.status, m.poller)

	r := gin.New()
	r.POST("/v1/process-payment", h.ProcessPayment)
	r.POST("/v1/mpesa-status", h.MpesaStatus)
	r.GET("/v1/payments/errors/:code", h.GetErrorMapping)
	r.GET("/v1/payments/:tracking_id", h.GetPayment)
	r.GET("/v1/payments/:tracking_id/poll", h.PollPayment)
	r.GET("/v1/payments/:tracking_id/events", h.PaymentEvents)
	return r, m
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestPaymentHandler_ProcessPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newPaymentRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/process-payment", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unsupported method", func(t *testing.T) {
		r, _ := newPaymentRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/process-payment", `{"payment_method":"bitcoin","amount":10}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "UNSUPPORTED_PAYMENT_METHOD" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("mpesa alias builds mobile money request", func(t *testing.T) {
		r, m := newPaymentRouter(t)
		m.payments.EXPECT().Initiate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req entities.PaymentRequest) (entities.InitiationResult, error) {
				mm, ok := req.Method.(entities.MobileMoney)
				if !ok || mm.Phone != "254712345678" {
					t.Fatalf("unexpected method: %#v", req.Method)
				}
				if !req.Amount.Equal(decimal.NewFromInt(1000)) || req.CourseID != "course-1" || req.UserID != "user-1" {
					t.Fatalf("unexpected request: %+v", req)
				}
				return entities.InitiationResult{PaymentID: "pay-1", TransactionID: "MPESA_1_abc", Status: entities.PaymentStatusPending}, nil
			})

		w := doJSON(r, http.MethodPost, "/v1/process-payment",
			`{"payment_method":"mpesa","amount":1000,"phone_number":"254712345678","course_id":"course-1","user_id":"user-1","customer_name":"Jane Doe","customer_email":"jane@gmail.com"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["success"] != true || body["transaction_id"] != "MPESA_1_abc" || body["payment_id"] != "pay-1" || body["status"] != "pending" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("validation error exposes field messages", func(t *testing.T) {
		r, m := newPaymentRouter(t)
		res := entities.NewValidationResult()
		res.AddError("Use international format 254XXXXXXXXX instead of local format 07XXXXXXXX")
		m.payments.EXPECT().Initiate(gomock.Any(), gomock.Any()).Return(entities.InitiationResult{}, &usecase.ValidationError{Result: res})

		w := doJSON(r, http.MethodPost, "/v1/process-payment", `{"payment_method":"mobile_money","amount":1000,"phone_number":"0712345678"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["success"] != false || body["code"] != "VALIDATION_ERROR" || !strings.Contains(body["error"].(string), "international format") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if _, ok := body["details"]; !ok {
			t.Fatalf("expected validation details: %s", w.Body.String())
		}
	})

	t.Run("gateway error shows classified message only", func(t *testing.T) {
		r, m := newPaymentRouter(t)
		raw := errors.New("upstream said: Bad Request - Invalid PhoneNumber 0xdeadbeef")
		m.payments.EXPECT().Initiate(gomock.Any(), gomock.Any()).
			Return(entities.InitiationResult{}, &usecase.GatewayError{Mapping: errormapping.Classify("", raw.Error()), Cause: raw})

		w := doJSON(r, http.MethodPost, "/v1/process-payment", `{"payment_method":"mpesa","amount":1000,"phone_number":"254712345678"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
		}
		if strings.Contains(w.Body.String(), "0xdeadbeef") {
			t.Fatalf("raw gateway message leaked: %s", w.Body.String())
		}
	})

	t.Run("retryable gateway error carries retry delay", func(t *testing.T) {
		r, m := newPaymentRouter(t)
		mapping := entities.ErrorMapping{Code: "X", Category: entities.ErrorCategoryServiceUnavailable, UserMessage: "Service busy", Retryable: true, Solutions: []string{"Try again"}}
		m.payments.EXPECT().Initiate(gomock.Any(), gomock.Any()).
			Return(entities.InitiationResult{}, &usecase.GatewayError{Mapping: mapping, Cause: errors.New("503")})

		w := doJSON(r, http.MethodPost, "/v1/process-payment", `{"payment_method":"mpesa","amount":1000,"phone_number":"254712345678"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		details, _ := decodeBody(t, w)["details"].(map[string]any)
		if details["retry_after_ms"] != float64(5000) {
			t.Fatalf("unexpected details: %s", w.Body.String())
		}
	})

	t.Run("persistence error", func(t *testing.T) {
		r, m := newPaymentRouter(t)
		m.payments.EXPECT().Initiate(gomock.Any(), gomock.Any()).
			Return(entities.InitiationResult{}, &usecase.PersistenceError{Op: "create_payment", Err: errors.New("boom")})

		w := doJSON(r, http.MethodPost, "/v1/process-payment", `{"payment_method":"paybill","amount":1000}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_GetPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		r, m := newPaymentRouter(t)
		m.payments.EXPECT().GetByTransactionID(gomock.Any(), "T1").Return(entities.PaymentRecord{}, usecase.ErrPaymentNotFound)
		if w := doJSON(r, http.MethodGet, "/v1/payments/T1", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success hides customer details", func(t *testing.T) {
		r, m := newPaymentRouter(t)
		m.payments.EXPECT().GetByTransactionID(gomock.Any(), "T1").Return(entities.PaymentRecord{
			ID: "pay-1", TransactionID: "T1", Method: entities.MethodMobileMoney, Amount: decimal.NewFromInt(1000),
			Currency: "KES", Status: entities.PaymentStatusCompleted, CustomerEmail: "jane@gmail.com",
		}, nil)

		w := doJSON(r, http.MethodGet, "/v1/payments/T1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["amount"] != "1000.00" || body["status"] != "completed" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if strings.Contains(w.Body.String(), "jane@gmail.com") {
			t.Fatalf("customer email leaked: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_MpesaStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing tracking id", func(t *testing.T) {
		r, _ := newPaymentRouter(t)
		if w := doJSON(r, http.MethodPost, "/v1/mpesa-status", `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, m := newPaymentRouter(t)
		m.status.EXPECT().GetMobileMoneyStatus(gomock.Any(), "T1").Return(entities.MobileMoneyTransaction{
			TrackingID: "T1", PhoneNumber: "254712345678", Amount: decimal.NewFromInt(50), Status: entities.PaymentStatusPending,
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/mpesa-status", `{"tracking_id":"T1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		tx, _ := decodeBody(t, w)["transaction"].(map[string]any)
		if tx["tracking_id"] != "T1" || tx["status"] != "pending" || tx["phone_number"] != "254712345678" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_PollPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("timed out", func(t *testing.T) {
		r, m := newPaymentRouter(t)
		m.poller.EXPECT().Poll(gomock.Any(), "T1").Return(usecase.PollResult{TrackingID: "T1", Status: entities.PaymentStatusTimedOut, Attempts: 40}, nil)

		w := doJSON(r, http.MethodGet, "/v1/payments/T1/poll", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["status"] != "timed_out" || body["attempts"] != float64(40) || body["message"] == nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unknown tracking id", func(t *testing.T) {
		r, m := newPaymentRouter(t)
		m.poller.EXPECT().Poll(gomock.Any(), "T1").Return(usecase.PollResult{}, usecase.ErrPaymentNotFound)
		if w := doJSON(r, http.MethodGet, "/v1/payments/T1/poll", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_PaymentEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("streams until terminal", func(t *testing.T) {
		r, m := newPaymentRouter(t)
		ch := make(chan entities.PaymentEvent, 1)
		ch <- entities.PaymentEvent{Type: entities.EventPaymentStatusChanged, TransactionID: "T1", Status: entities.PaymentStatusCompleted}
		cancelled := false

		m.payments.EXPECT().GetByTransactionID(gomock.Any(), "T1").Return(entities.PaymentRecord{TransactionID: "T1", Status: entities.PaymentStatusPending}, nil)
		m.status.EXPECT().Subscribe(gomock.Any(), "T1").Return((<-chan entities.PaymentEvent)(ch), func() { cancelled = true }, nil)

		w := doJSON(r, http.MethodGet, "/v1/payments/T1/events", "")
		out := w.Body.String()
		if !strings.Contains(out, "event:snapshot") || !strings.Contains(out, "event:payment.status_changed") || !strings.Contains(out, `"status":"completed"`) {
			t.Fatalf("unexpected stream: %s", out)
		}
		if !cancelled {
			t.Fatalf("expected subscription to be cancelled")
		}
	})

	t.Run("terminal payment sends snapshot only", func(t *testing.T) {
		r, m := newPaymentRouter(t)
		m.payments.EXPECT().GetByTransactionID(gomock.Any(), "T1").Return(entities.PaymentRecord{TransactionID: "T1", Status: entities.PaymentStatusFailed}, nil)
		m.status.EXPECT().Subscribe(gomock.Any(), "T1").Return((<-chan entities.PaymentEvent)(make(chan entities.PaymentEvent)), func() {}, nil)

		w := doJSON(r, http.MethodGet, "/v1/payments/T1/events", "")
		if !strings.Contains(w.Body.String(), `"status":"failed"`) {
			t.Fatalf("unexpected stream: %s", w.Body.String())
		}
	})

	t.Run("unknown payment", func(t *testing.T) {
		r, m := newPaymentRouter(t)
		m.status.EXPECT().Subscribe(gomock.Any(), "T1").Return((<-chan entities.PaymentEvent)(make(chan entities.PaymentEvent)), func() {}, nil)
		m.payments.EXPECT().GetByTransactionID(gomock.Any(), "T1").Return(entities.PaymentRecord{}, usecase.ErrPaymentNotFound)

		if w := doJSON(r, http.MethodGet, "/v1/payments/T1/events", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("events unavailable", func(t *testing.T) {
		r, m := newPaymentRouter(t)
		m.status.EXPECT().Subscribe(gomock.Any(), "T1").Return(nil, nil, usecase.ErrEventsUnavailable)

		if w := doJSON(r, http.MethodGet, "/v1/payments/T1/events", ""); w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_GetErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r, _ := newPaymentRouter(t)

	w := doJSON(r, http.MethodGet, "/v1/payments/errors/UNKNOWN_CODE?message=request%20timed%20out&attempt=1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["category"] != "timeout" || body["retryable"] != true || body["retry_after_ms"] != float64(6000) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if _, ok := body["technical_message"]; ok {
		t.Fatalf("technical message must not be exposed")
	}
}
