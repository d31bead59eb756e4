package payments

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"academy_payments/internal/domain/entities"
	"academy_payments/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

func newTestDaraja(t *testing.T, h http.HandlerFunc) (*DarajaGateway, *int32) {
	t.Helper()
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MPESA_MOCK", "")

	var oauthCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/v1/generate", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&oauthCalls, 1)
		user, pass, ok := r.BasicAuth()
		if !ok || user != "key" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"tok-1","expires_in":"3599"}`))
	})
	mux.HandleFunc("/", h)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	g, err := NewDarajaGateway(DarajaConfig{
		BaseURL:        srv.URL,
		ConsumerKey:    "key",
		ConsumerSecret: "secret",
		ShortCode:      "174379",
		PassKey:        "passkey",
		CallbackURL:    "https://api.academy.test/v1/mpesa-callback",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.now = func() time.Time { return time.Date(2025, 3, 1, 7, 0, 0, 0, time.UTC) }
	return g, &oauthCalls
}

func TestDarajaGateway_InitiateSTKPush(t *testing.T) {
	t.Run("builds a signed request and caches the token", func(t *testing.T) {
		g, oauthCalls := newTestDaraja(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/mpesa/stkpush/v1/processrequest" || r.Header.Get("Authorization") != "Bearer tok-1" {
				t.Fatalf("unexpected request %s auth=%q", r.URL.Path, r.Header.Get("Authorization"))
			}
			var body stkPushBody
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Timestamp != "20250301100000" {
				t.Fatalf("timestamp must be Nairobi time, got %s", body.Timestamp)
			}
			want := base64.StdEncoding.EncodeToString([]byte("174379passkey20250301100000"))
			if body.Password != want || body.Amount != 1001 || body.PhoneNumber != "254712345678" {
				t.Fatalf("unexpected body: %+v", body)
			}
			if !strings.Contains(body.CallBackURL, "tracking_id=MPESA_1_abc") {
				t.Fatalf("callback url must carry the tracking id: %s", body.CallBackURL)
			}
			_, _ = w.Write([]byte(`{"MerchantRequestID":"m-1","CheckoutRequestID":"ws_CO_1","ResponseCode":"0","ResponseDescription":"Success","CustomerMessage":"Success. Request accepted for processing"}`))
		})

		req := interfaces.STKPushRequest{TrackingID: "MPESA_1_abc", Phone: "254712345678", Amount: decimal.RequireFromString("1000.40"), AccountReference: "course-9"}
		for i := 0; i < 2; i++ {
			got, err := g.InitiateSTKPush(context.Background(), req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.CheckoutRequestID != "ws_CO_1" {
				t.Fatalf("unexpected response: %+v", got)
			}
		}
		if atomic.LoadInt32(oauthCalls) != 1 {
			t.Fatalf("expected the token to be cached, got %d oauth calls", *oauthCalls)
		}
	})

	t.Run("provider error keeps its code", func(t *testing.T) {
		g, _ := newTestDaraja(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"requestId":"r-1","errorCode":"400.002.02","errorMessage":"Bad Request - Invalid PhoneNumber"}`))
		})

		_, err := g.InitiateSTKPush(context.Background(), interfaces.STKPushRequest{TrackingID: "MPESA_1", Phone: "254000", Amount: decimal.NewFromInt(10)})
		var gf *interfaces.GatewayFailure
		if !errors.As(err, &gf) || gf.Code != "400.002.02" {
			t.Fatalf("expected GatewayFailure 400.002.02, got %v", err)
		}
	})
}

func TestDarajaGateway_QuerySTKStatus(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   entities.PaymentStatus
	}{
		{"completed", 200, `{"ResponseCode":"0","ResultCode":"0","ResultDesc":"The service request is processed successfully."}`, entities.PaymentStatusCompleted},
		{"cancelled", 200, `{"ResponseCode":"0","ResultCode":"1032","ResultDesc":"Request cancelled by user"}`, entities.PaymentStatusCancelled},
		{"insufficient funds", 200, `{"ResponseCode":"0","ResultCode":"1","ResultDesc":"The balance is insufficient for the transaction"}`, entities.PaymentStatusFailed},
		{"still processing", 500, `{"requestId":"r","errorCode":"500.001.1001","errorMessage":"The transaction is being processed"}`, entities.PaymentStatusPending},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newTestDaraja(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/mpesa/stkpushquery/v1/query" {
					t.Fatalf("unexpected path %s", r.URL.Path)
				}
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})
			got, err := g.QuerySTKStatus(context.Background(), "ws_CO_1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Status != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got.Status)
			}
		})
	}
}

func TestDarajaGateway_MockMode(t *testing.T) {
	t.Setenv("MPESA_MOCK", "true")
	g, err := NewDarajaGateway(DarajaConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := g.InitiateSTKPush(context.Background(), interfaces.STKPushRequest{TrackingID: "MPESA_1"})
	if err != nil || got.CheckoutRequestID != "ws_CO_MOCK_MPESA_1" {
		t.Fatalf("unexpected %+v %v", got, err)
	}
}

func TestNewDarajaGateway_MissingCredentials(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MPESA_MOCK", "")
	if _, err := NewDarajaGateway(DarajaConfig{}); !errors.Is(err, ErrMissingDarajaCredentials) {
		t.Fatalf("expected ErrMissingDarajaCredentials, got %v", err)
	}
}

func TestMapMercadoPagoStatus(t *testing.T) {
	cases := map[string]entities.PaymentStatus{
		"approved":   entities.PaymentStatusCompleted,
		"rejected":   entities.PaymentStatusFailed,
		"cancelled":  entities.PaymentStatusCancelled,
		"in_process": entities.PaymentStatusPending,
		"pending":    entities.PaymentStatusPending,
	}
	for in, want := range cases {
		if got := MapMercadoPagoStatus(in); got != want {
			t.Fatalf("%s: expected %s, got %s", in, want, got)
		}
	}
}

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	t.Setenv("MERCADOPAGO_MOCK", "1")
	g, err := NewMercadoPagoGateway(MercadoPagoConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := g.CreateCheckout(context.Background(), interfaces.CheckoutRequest{TrackingID: "CHECKOUT_1"})
	if err != nil || s.RedirectURL == "" || s.Reference != "mock-pref-CHECKOUT_1" {
		t.Fatalf("unexpected %+v %v", s, err)
	}
	p, err := g.GetPayment(context.Background(), "CHECKOUT_1")
	if err != nil || p.Reference != "CHECKOUT_1" || p.Status != entities.PaymentStatusCompleted {
		t.Fatalf("unexpected %+v %v", p, err)
	}
}
