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

func pendingTx() entities.MobileMoneyTransaction {
	return entities.MobileMoneyTransaction{
		TrackingID:        "MPESA_1_abc",
		PhoneNumber:       "254712345678",
		Status:            entities.PaymentStatusPending,
		CheckoutRequestID: "ws_CO_1",
	}
}

func TestPaymentStatusUseCase_Lookup(t *testing.T) {
	t.Run("terminal record short-circuits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		p := coursePayment()
		p.Status = entities.PaymentStatusCompleted
		repo.EXPECT().GetByTransactionID(gomock.Any(), "MPESA_1_abc").Return(p, nil)

		uc := NewPaymentStatusUseCase(repo, nil, nil, nil)
		got, err := uc.Lookup(context.Background(), "MPESA_1_abc")
		if err != nil || got != entities.PaymentStatusCompleted {
			t.Fatalf("unexpected %v %v", got, err)
		}
	})

	t.Run("gateway terminal answer is recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		mobile := mock_interfaces.NewMockIMobileMoneyGateway(ctrl)

		repo.EXPECT().GetByTransactionID(gomock.Any(), "MPESA_1_abc").Return(coursePayment(), nil).Times(2)
		repo.EXPECT().GetMobileMoneyTransaction(gomock.Any(), "MPESA_1_abc").Return(pendingTx(), nil)
		mobile.EXPECT().QuerySTKStatus(gomock.Any(), "ws_CO_1").
			Return(interfaces.STKQueryResult{Status: entities.PaymentStatusFailed, ResultCode: "1", ResultDesc: "The balance is insufficient for the transaction"}, nil)
		repo.EXPECT().ApplyStatus(gomock.Any(), "MPESA_1_abc", entities.MethodMobileMoney, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ entities.PaymentMethodKind, u entities.StatusUpdate) (bool, error) {
				if u.Status != entities.PaymentStatusFailed || u.ResultCode != "1" {
					t.Fatalf("unexpected update: %+v", u)
				}
				return true, nil
			})

		uc := NewPaymentStatusUseCase(repo, mobile, nil, NewStatusRecorder(repo, nil, nil, nil))
		got, err := uc.Lookup(context.Background(), "MPESA_1_abc")
		if err != nil || got != entities.PaymentStatusFailed {
			t.Fatalf("unexpected %v %v", got, err)
		}
	})

	t.Run("lost race returns stored status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		mobile := mock_interfaces.NewMockIMobileMoneyGateway(ctrl)

		completed := pendingTx()
		completed.Status = entities.PaymentStatusCompleted
		repo.EXPECT().GetByTransactionID(gomock.Any(), "MPESA_1_abc").Return(coursePayment(), nil).Times(2)
		gomock.InOrder(
			repo.EXPECT().GetMobileMoneyTransaction(gomock.Any(), "MPESA_1_abc").Return(pendingTx(), nil),
			repo.EXPECT().GetMobileMoneyTransaction(gomock.Any(), "MPESA_1_abc").Return(completed, nil),
		)
		mobile.EXPECT().QuerySTKStatus(gomock.Any(), "ws_CO_1").Return(interfaces.STKQueryResult{Status: entities.PaymentStatusCancelled, ResultCode: "1032"}, nil)
		repo.EXPECT().ApplyStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		uc := NewPaymentStatusUseCase(repo, mobile, nil, NewStatusRecorder(repo, nil, nil, nil))
		got, err := uc.Lookup(context.Background(), "MPESA_1_abc")
		if err != nil || got != entities.PaymentStatusCompleted {
			t.Fatalf("expected the first terminal status to win, got %v %v", got, err)
		}
	})

	t.Run("non mobile money payments never query the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		mobile := mock_interfaces.NewMockIMobileMoneyGateway(ctrl)
		p := coursePayment()
		p.Method = entities.MethodManualTransfer
		repo.EXPECT().GetByTransactionID(gomock.Any(), "PAYBILL_1").Return(p, nil)

		uc := NewPaymentStatusUseCase(repo, mobile, nil, nil)
		got, err := uc.Lookup(context.Background(), "PAYBILL_1")
		if err != nil || got != entities.PaymentStatusPending {
			t.Fatalf("unexpected %v %v", got, err)
		}
	})

	t.Run("unknown payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		repo.EXPECT().GetByTransactionID(gomock.Any(), "nope").Return(entities.PaymentRecord{}, nil)

		uc := NewPaymentStatusUseCase(repo, nil, nil, nil)
		_, err := uc.Lookup(context.Background(), "nope")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})
}

func TestPaymentStatusUseCase_GetMobileMoneyStatus(t *testing.T) {
	t.Run("gateway error falls back to stored row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		mobile := mock_interfaces.NewMockIMobileMoneyGateway(ctrl)

		repo.EXPECT().GetMobileMoneyTransaction(gomock.Any(), "MPESA_1_abc").Return(pendingTx(), nil)
		mobile.EXPECT().QuerySTKStatus(gomock.Any(), "ws_CO_1").Return(interfaces.STKQueryResult{}, errors.New("oauth failed"))

		uc := NewPaymentStatusUseCase(repo, mobile, nil, nil)
		got, err := uc.GetMobileMoneyStatus(context.Background(), "MPESA_1_abc")
		if err != nil || got.Status != entities.PaymentStatusPending {
			t.Fatalf("unexpected %+v %v", got, err)
		}
	})

	t.Run("still processing keeps pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		mobile := mock_interfaces.NewMockIMobileMoneyGateway(ctrl)

		repo.EXPECT().GetMobileMoneyTransaction(gomock.Any(), "MPESA_1_abc").Return(pendingTx(), nil).Times(2)
		mobile.EXPECT().QuerySTKStatus(gomock.Any(), "ws_CO_1").Return(interfaces.STKQueryResult{Status: entities.PaymentStatusPending}, nil)

		uc := NewPaymentStatusUseCase(repo, mobile, nil, nil)
		got, err := uc.GetMobileMoneyStatus(context.Background(), "MPESA_1_abc")
		if err != nil || got.Status != entities.PaymentStatusPending {
			t.Fatalf("unexpected %+v %v", got, err)
		}
	})
}

func TestPaymentStatusUseCase_Subscribe(t *testing.T) {
	uc := NewPaymentStatusUseCase(nil, nil, nil, nil)
	if _, _, err := uc.Subscribe(context.Background(), "MPESA_1"); !errors.Is(err, ErrEventsUnavailable) {
		t.Fatalf("expected ErrEventsUnavailable, got %v", err)
	}
	if _, _, err := uc.Subscribe(context.Background(), ""); !errors.Is(err, ErrInvalidTrackingID) {
		t.Fatalf("expected ErrInvalidTrackingID, got %v", err)
	}
}
