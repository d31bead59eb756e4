package usecase

import (
	"context"
	"errors"
	"testing"

	"academy_payments/internal/domain/entities"
	"academy_payments/internal/usecase/interfaces"
	mock_interfaces "academy_payments/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const testCallbackSecret = "cb-secret"

func stkCallbackBody(checkoutID, resultCode, desc string) []byte {
	return []byte(`{"Body":{"stkCallback":{"MerchantRequestID":"29115-34620561-1","CheckoutRequestID":"` + checkoutID +
		`","ResultCode":` + resultCode + `,"ResultDesc":"` + desc +
		`","CallbackMetadata":{"Item":[{"Name":"Amount","Value":1000},{"Name":"MpesaReceiptNumber","Value":"NLJ7RT61SV"},{"Name":"PhoneNumber","Value":254712345678}]}}}}`)
}

func TestCallbackUseCase_HandleMpesaCallback(t *testing.T) {
	t.Run("rejects bad signature before touching the datastore", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)

		uc := NewCallbackUseCase(repo, nil, nil, NewStatusRecorder(repo, nil, nil, nil), CallbackSecrets{MpesaCallbackSecret: testCallbackSecret})
		body := stkCallbackBody("ws_CO_1", "0", "ok")
		_, err := uc.HandleMpesaCallback(context.Background(), "MPESA_1_abc", body, SignHMACSHA256(body, "other"))
		if !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("empty secret rejects everything", func(t *testing.T) {
		uc := NewCallbackUseCase(nil, nil, nil, nil, CallbackSecrets{})
		body := stkCallbackBody("ws_CO_1", "0", "ok")
		_, err := uc.HandleMpesaCallback(context.Background(), "MPESA_1_abc", body, SignHMACSHA256(body, ""))
		if !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("success completes the payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		activities := mock_interfaces.NewMockIActivityRepository(ctrl)

		repo.EXPECT().GetMobileMoneyTransaction(gomock.Any(), "MPESA_1_abc").Return(pendingTx(), nil)
		activities.EXPECT().CreateActivity(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a entities.Activity) error {
			if a.Type != entities.ActivityMpesaCallback || a.Metadata["tracking_id"] != "MPESA_1_abc" || a.Metadata["result_code"] != "0" {
				t.Fatalf("unexpected activity: %+v", a)
			}
			return errors.New("audit write failed")
		})
		p := coursePayment()
		p.UserID = ""
		repo.EXPECT().GetByTransactionID(gomock.Any(), "MPESA_1_abc").Return(p, nil)
		repo.EXPECT().ApplyStatus(gomock.Any(), "MPESA_1_abc", entities.MethodMobileMoney, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ entities.PaymentMethodKind, u entities.StatusUpdate) (bool, error) {
				if u.Status != entities.PaymentStatusCompleted || u.ReceiptNumber != "NLJ7RT61SV" {
					t.Fatalf("unexpected update: %+v", u)
				}
				return true, nil
			})

		uc := NewCallbackUseCase(repo, nil, activities, NewStatusRecorder(repo, nil, nil, nil), CallbackSecrets{MpesaCallbackSecret: testCallbackSecret})
		body := stkCallbackBody("ws_CO_1", "0", "The service request is processed successfully.")
		out, err := uc.HandleMpesaCallback(context.Background(), "MPESA_1_abc", body, SignHMACSHA256(body, testCallbackSecret))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Applied || out.Status != entities.PaymentStatusCompleted {
			t.Fatalf("unexpected outcome: %+v", out)
		}
	})

	t.Run("replay after completion is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)

		completed := coursePayment()
		completed.Status = entities.PaymentStatusCompleted
		repo.EXPECT().GetMobileMoneyTransaction(gomock.Any(), "MPESA_1_abc").Return(pendingTx(), nil)
		gomock.InOrder(
			repo.EXPECT().GetByTransactionID(gomock.Any(), "MPESA_1_abc").Return(coursePayment(), nil),
			repo.EXPECT().GetByTransactionID(gomock.Any(), "MPESA_1_abc").Return(completed, nil),
		)
		repo.EXPECT().ApplyStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		uc := NewCallbackUseCase(repo, nil, nil, NewStatusRecorder(repo, nil, nil, nil), CallbackSecrets{MpesaCallbackSecret: testCallbackSecret})
		body := stkCallbackBody("ws_CO_1", "1032", "Request cancelled by user")
		out, err := uc.HandleMpesaCallback(context.Background(), "MPESA_1_abc", body, SignHMACSHA256(body, testCallbackSecret))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Applied || out.Status != entities.PaymentStatusCompleted {
			t.Fatalf("a late callback must not overwrite a terminal status: %+v", out)
		}
	})

	t.Run("checkout request mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		repo.EXPECT().GetMobileMoneyTransaction(gomock.Any(), "MPESA_1_abc").Return(pendingTx(), nil)

		uc := NewCallbackUseCase(repo, nil, nil, nil, CallbackSecrets{MpesaCallbackSecret: testCallbackSecret})
		body := stkCallbackBody("ws_CO_other", "0", "ok")
		_, err := uc.HandleMpesaCallback(context.Background(), "MPESA_1_abc", body, SignHMACSHA256(body, testCallbackSecret))
		if !errors.Is(err, ErrCallbackMismatch) {
			t.Fatalf("expected ErrCallbackMismatch, got %v", err)
		}
	})

	t.Run("missing result code is rejected without writes", func(t *testing.T) {
		uc := NewCallbackUseCase(nil, nil, nil, nil, CallbackSecrets{MpesaCallbackSecret: testCallbackSecret})
		body := []byte(`{"Body":{"stkCallback":{"MerchantRequestID":"29115-34620561-1","CheckoutRequestID":"ws_CO_1","ResultDesc":"ok"}}}`)
		_, err := uc.HandleMpesaCallback(context.Background(), "MPESA_1_abc", body, SignHMACSHA256(body, testCallbackSecret))
		if !errors.Is(err, ErrInvalidCallbackPayload) {
			t.Fatalf("expected ErrInvalidCallbackPayload, got %v", err)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		uc := NewCallbackUseCase(nil, nil, nil, nil, CallbackSecrets{MpesaCallbackSecret: testCallbackSecret})
		body := []byte(`{"Body":{}}`)
		_, err := uc.HandleMpesaCallback(context.Background(), "MPESA_1_abc", body, SignHMACSHA256(body, testCallbackSecret))
		if !errors.Is(err, ErrInvalidCallbackPayload) {
			t.Fatalf("expected ErrInvalidCallbackPayload, got %v", err)
		}
	})
}

func TestMpesaResultToStatusUpdate(t *testing.T) {
	cases := []struct {
		code string
		want entities.PaymentStatus
	}{
		{"0", entities.PaymentStatusCompleted},
		{"1032", entities.PaymentStatusCancelled},
		{"1", entities.PaymentStatusFailed},
		{"2001", entities.PaymentStatusFailed},
	}
	for _, tc := range cases {
		got := MpesaResultToStatusUpdate(tc.code, "raw gateway text")
		if got.Status != tc.want {
			t.Fatalf("code %s: expected %s, got %s", tc.code, tc.want, got.Status)
		}
		if tc.code != "0" && got.Reason == "raw gateway text" {
			t.Fatalf("code %s: failure reason must be classified", tc.code)
		}
	}
}

func TestCallbackUseCase_HandleCheckoutWebhook(t *testing.T) {
	const secret = "wh-secret"
	signed := func(dataID, requestID, ts string) CheckoutNotification {
		sig := SignHMACSHA256([]byte(CheckoutSignatureManifest(dataID, requestID, ts)), secret)
		return CheckoutNotification{Type: "payment", DataID: dataID, RequestID: requestID, Signature: "ts=" + ts + ",v1=" + sig}
	}

	t.Run("approved payment completes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		redirect := mock_interfaces.NewMockIRedirectGateway(ctrl)

		redirect.EXPECT().GetPayment(gomock.Any(), "123456").
			Return(interfaces.GatewayPayment{ID: "123456", Reference: "CHECKOUT_1_abc", Status: entities.PaymentStatusCompleted, StatusDetail: "accredited"}, nil)
		p := coursePayment()
		p.TransactionID = "CHECKOUT_1_abc"
		p.Method = entities.MethodRedirectGateway
		p.UserID = ""
		repo.EXPECT().GetByTransactionID(gomock.Any(), "CHECKOUT_1_abc").Return(p, nil)
		repo.EXPECT().ApplyStatus(gomock.Any(), "CHECKOUT_1_abc", entities.MethodRedirectGateway, gomock.Any()).Return(true, nil)

		uc := NewCallbackUseCase(repo, redirect, nil, NewStatusRecorder(repo, nil, nil, nil), CallbackSecrets{CheckoutWebhookSecret: secret})
		out, err := uc.HandleCheckoutWebhook(context.Background(), signed("123456", "req-1", "1704908010"))
		if err != nil || !out.Applied || out.Status != entities.PaymentStatusCompleted {
			t.Fatalf("unexpected %+v %v", out, err)
		}
	})

	t.Run("pending payment is acknowledged without writes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		redirect := mock_interfaces.NewMockIRedirectGateway(ctrl)
		redirect.EXPECT().GetPayment(gomock.Any(), "77").
			Return(interfaces.GatewayPayment{ID: "77", Reference: "CHECKOUT_2", Status: entities.PaymentStatusPending}, nil)

		uc := NewCallbackUseCase(nil, redirect, nil, nil, CallbackSecrets{CheckoutWebhookSecret: secret})
		out, err := uc.HandleCheckoutWebhook(context.Background(), signed("77", "req-2", "1"))
		if err != nil || out.Applied || out.Status != entities.PaymentStatusPending {
			t.Fatalf("unexpected %+v %v", out, err)
		}
	})

	t.Run("tampered signature", func(t *testing.T) {
		uc := NewCallbackUseCase(nil, nil, nil, nil, CallbackSecrets{CheckoutWebhookSecret: secret})
		n := signed("123456", "req-1", "1704908010")
		n.DataID = "999"
		if _, err := uc.HandleCheckoutWebhook(context.Background(), n); !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})
}
