package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"clinica_fisio/internal/domain/clinic"
	"clinica_fisio/internal/domain/entities"
	"clinica_fisio/internal/usecase/interfaces"
	mock_interfaces "clinica_fisio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type paymentMocks struct {
	repo     *mock_interfaces.MockIPaymentRepository
	planRepo *mock_interfaces.MockIPlanRepository
	apptRepo *mock_interfaces.MockIAppointmentRepository
	tx       *mock_interfaces.MockITransactionRepository
	gateway  *mock_interfaces.MockIPaymentGateway
}

func newPaymentUseCase(t *testing.T, settings PaymentSettings) (*PaymentUseCase, paymentMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := paymentMocks{
		repo:     mock_interfaces.NewMockIPaymentRepository(ctrl),
		planRepo: mock_interfaces.NewMockIPlanRepository(ctrl),
		apptRepo: mock_interfaces.NewMockIAppointmentRepository(ctrl),
		tx:       mock_interfaces.NewMockITransactionRepository(ctrl),
		gateway:  mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	return NewPaymentUseCase(m.repo, m.planRepo, m.apptRepo, m.tx, m.gateway, testClock(), settings), m
}

func echoPaymentCreate(_ context.Context, p entities.Payment) (entities.Payment, error) {
	return p, nil
}

func echoRegisterPlanPayment(_ context.Context, _ entities.Payment, w interfaces.PlanWrite) (entities.TreatmentPlan, error) {
	stored := w.Plan
	stored.Version = w.ExpectedVersion + 1
	return stored, nil
}

func echoRefundPlanPayment(_ context.Context, _ string, _, _ entities.PaymentStatus, _ time.Time, w interfaces.PlanWrite) (entities.TreatmentPlan, error) {
	stored := w.Plan
	stored.Version = w.ExpectedVersion + 1
	return stored, nil
}

func TestPaymentUseCase_Register_Validations(t *testing.T) {
	uc := NewPaymentUseCase(nil, nil, nil, nil, nil, testClock(), PaymentSettings{})
	base := RegisterPaymentInput{PatientID: "patient-1", Type: entities.PaymentTypePagoConsulta, Amount: dec("80"), Method: entities.PaymentMethodEfectivo}

	cases := []struct {
		name   string
		mutate func(*RegisterPaymentInput)
		want   error
	}{
		{"patient", func(in *RegisterPaymentInput) { in.PatientID = "" }, ErrInvalidPatientID},
		{"type", func(in *RegisterPaymentInput) { in.Type = "REGALO" }, ErrInvalidPaymentType},
		{"method", func(in *RegisterPaymentInput) { in.Method = "CHEQUE" }, ErrInvalidPaymentMethod},
		{"amount", func(in *RegisterPaymentInput) { in.Amount = dec("0") }, clinic.ErrNonPositiveAmount},
		{"plan type without plan", func(in *RegisterPaymentInput) { in.Type = entities.PaymentTypePagoSesion }, ErrPaymentTargetRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			tc.mutate(&in)
			_, err := uc.Register(context.Background(), in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestPaymentUseCase_Register_PlanPayments(t *testing.T) {
	t.Run("full upfront payment settles discounted balance", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentSettings{})
		plan := acceptedPlan(entities.PaymentModalityPagoCompleto, "20")

		m.planRepo.EXPECT().GetByID(gomock.Any(), "plan-1").Return(plan, nil)
		m.tx.EXPECT().RegisterPlanPayment(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(echoRegisterPlanPayment)

		got, err := uc.Register(context.Background(), RegisterPaymentInput{
			PatientID: "patient-1",
			PlanID:    "plan-1",
			Type:      entities.PaymentTypePagoPlanCompleto,
			Amount:    dec("400"),
			Method:    entities.PaymentMethodYape,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Payment.Status != entities.PaymentStatusAplicado || got.Payment.PlanID != "plan-1" {
			t.Fatalf("unexpected payment: %+v", got.Payment)
		}
		if got.Plan == nil || !got.Plan.TotalPaid.Equal(dec("400")) || !got.Plan.OutstandingBalance.IsZero() {
			t.Fatalf("expected plan fully paid, got %+v", got.Plan)
		}
		if !got.MatchesSuggestion || !got.SuggestedAmount.Equal(dec("400")) {
			t.Fatalf("unexpected suggestion: %s %t", got.SuggestedAmount, got.MatchesSuggestion)
		}
	})

	t.Run("full payment must match the balance", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentSettings{})
		m.planRepo.EXPECT().GetByID(gomock.Any(), "plan-1").Return(acceptedPlan(entities.PaymentModalityPagoCompleto, "20"), nil)

		_, err := uc.Register(context.Background(), RegisterPaymentInput{
			PatientID: "patient-1",
			PlanID:    "plan-1",
			Type:      entities.PaymentTypePagoPlanCompleto,
			Amount:    dec("500"),
			Method:    entities.PaymentMethodEfectivo,
		})
		if !errors.Is(err, clinic.ErrOverpaymentNotAllowed) {
			t.Fatalf("expected ErrOverpaymentNotAllowed, got %v", err)
		}
	})

	t.Run("partial session payment is flagged not rejected", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentSettings{})
		m.planRepo.EXPECT().GetByID(gomock.Any(), "plan-1").Return(acceptedPlan(entities.PaymentModalityPagoPorSesion, "0"), nil)
		m.tx.EXPECT().RegisterPlanPayment(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(echoRegisterPlanPayment)

		got, err := uc.Register(context.Background(), RegisterPaymentInput{
			PatientID: "patient-1",
			PlanID:    "plan-1",
			Type:      entities.PaymentTypePagoSesion,
			Amount:    dec("30"),
			Method:    entities.PaymentMethodPlin,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.MatchesSuggestion || !got.SuggestedAmount.Equal(dec("50")) {
			t.Fatalf("expected mismatch against 50, got %s %t", got.SuggestedAmount, got.MatchesSuggestion)
		}
		if !got.Plan.OutstandingBalance.Equal(dec("470")) {
			t.Fatalf("expected balance 470, got %s", got.Plan.OutstandingBalance)
		}
	})

	t.Run("payment and plan are committed together", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentSettings{})
		m.planRepo.EXPECT().GetByID(gomock.Any(), "plan-1").Return(acceptedPlan(entities.PaymentModalityPagoPorSesion, "0"), nil)
		m.tx.EXPECT().RegisterPlanPayment(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, p entities.Payment, w interfaces.PlanWrite) (entities.TreatmentPlan, error) {
				if p.Status != entities.PaymentStatusAplicado || !p.Amount.Equal(dec("50")) {
					t.Fatalf("unexpected payment write: %+v", p)
				}
				if w.ExpectedVersion != 2 || !w.Plan.TotalPaid.Equal(dec("50")) {
					t.Fatalf("expected plan v2 with 50 paid, got v%d %s", w.ExpectedVersion, w.Plan.TotalPaid)
				}
				return echoRegisterPlanPayment(ctx, p, w)
			})

		got, err := uc.Register(context.Background(), RegisterPaymentInput{
			PatientID: "patient-1", PlanID: "plan-1", Type: entities.PaymentTypePagoSesion, Amount: dec("50"), Method: entities.PaymentMethodEfectivo,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Payment.ID == "" || got.Plan.Version != 3 {
			t.Fatalf("unexpected result: payment=%+v plan=%+v", got.Payment, got.Plan)
		}
	})

	t.Run("failed commit stores neither payment nor plan", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentSettings{})
		putFailed := errors.New("put failed")
		m.planRepo.EXPECT().GetByID(gomock.Any(), "plan-1").Return(acceptedPlan(entities.PaymentModalityPagoPorSesion, "0"), nil)
		m.tx.EXPECT().RegisterPlanPayment(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.TreatmentPlan{}, putFailed)
		// No planRepo.Update or repo.Create expectations: any standalone
		// write would fail the test.

		got, err := uc.Register(context.Background(), RegisterPaymentInput{
			PatientID: "patient-1", PlanID: "plan-1", Type: entities.PaymentTypePagoSesion, Amount: dec("50"), Method: entities.PaymentMethodEfectivo,
		})
		if !errors.Is(err, putFailed) {
			t.Fatalf("expected put failed, got %v", err)
		}
		if got.Plan != nil || got.Payment.ID != "" {
			t.Fatalf("expected empty result, got %+v", got)
		}
	})

	t.Run("version conflict reloads and revalidates", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentSettings{})
		plan := acceptedPlan(entities.PaymentModalityPagoPorSesion, "0")
		m.planRepo.EXPECT().GetByID(gomock.Any(), "plan-1").Return(plan, nil)
		m.tx.EXPECT().RegisterPlanPayment(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.TreatmentPlan{}, interfaces.ErrVersionConflict)

		// Another payment of 100 landed in between.
		reloaded := plan
		reloaded.TotalPaid = dec("100")
		reloaded.OutstandingBalance = dec("400")
		reloaded.Version = 3
		m.planRepo.EXPECT().GetByID(gomock.Any(), "plan-1").Return(reloaded, nil)
		m.tx.EXPECT().RegisterPlanPayment(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, p entities.Payment, w interfaces.PlanWrite) (entities.TreatmentPlan, error) {
				if w.ExpectedVersion != 3 || !w.Plan.TotalPaid.Equal(dec("150")) {
					t.Fatalf("expected retry on v3 with 150 paid, got v%d %s", w.ExpectedVersion, w.Plan.TotalPaid)
				}
				return echoRegisterPlanPayment(ctx, p, w)
			})

		got, err := uc.Register(context.Background(), RegisterPaymentInput{
			PatientID: "patient-1", PlanID: "plan-1", Type: entities.PaymentTypePagoSesion, Amount: dec("50"), Method: entities.PaymentMethodEfectivo,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Plan.OutstandingBalance.Equal(dec("350")) || got.Plan.Version != 4 {
			t.Fatalf("unexpected plan after retry: %+v", got.Plan)
		}
	})

	t.Run("abandoned plan", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentSettings{})
		plan := acceptedPlan(entities.PaymentModalityPagoPorSesion, "0")
		plan.Status = entities.PlanStatusAbandonado
		m.planRepo.EXPECT().GetByID(gomock.Any(), "plan-1").Return(plan, nil)

		_, err := uc.Register(context.Background(), RegisterPaymentInput{
			PatientID: "patient-1", PlanID: "plan-1", Type: entities.PaymentTypePagoSesion, Amount: dec("50"), Method: entities.PaymentMethodEfectivo,
		})
		if !errors.Is(err, ErrPlanClosed) {
			t.Fatalf("expected ErrPlanClosed, got %v", err)
		}
	})
}

func TestPaymentUseCase_Register_AppointmentPayments(t *testing.T) {
	t.Run("cancelled appointment", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentSettings{})
		a := confirmedAppointment()
		a.Status = entities.AppointmentStatusCancelada
		m.apptRepo.EXPECT().GetByID(gomock.Any(), "appt-1").Return(a, nil)

		_, err := uc.Register(context.Background(), RegisterPaymentInput{
			PatientID: "patient-1", AppointmentID: "appt-1", Type: entities.PaymentTypeAdelantoCita, Amount: dec("20"), Method: entities.PaymentMethodYape,
		})
		if !errors.Is(err, clinic.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("deposit on confirmed appointment", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentSettings{})
		m.apptRepo.EXPECT().GetByID(gomock.Any(), "appt-1").Return(confirmedAppointment(), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoPaymentCreate)

		got, err := uc.Register(context.Background(), RegisterPaymentInput{
			PatientID: "patient-1", AppointmentID: "appt-1", Type: entities.PaymentTypeAdelantoCita, Amount: dec("20"), Method: entities.PaymentMethodYape,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Plan != nil || got.Payment.AppointmentID != "appt-1" || !got.Payment.CreatedAt.Equal(testNow) {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}

func TestPaymentUseCase_Register_Card(t *testing.T) {
	cardInput := RegisterPaymentInput{
		PatientID:       "patient-1",
		Type:            entities.PaymentTypePagoConsulta,
		Amount:          dec("80.50"),
		Method:          entities.PaymentMethodTarjeta,
		ProviderPayload: json.RawMessage(`{"payment_method_id":"visa","token":"tok","payer":{"email":"p@test.com"}}`),
	}

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, nil, testClock(), PaymentSettings{})
		_, err := uc.Register(context.Background(), cardInput)
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("missing payment method id", func(t *testing.T) {
		uc, _ := newPaymentUseCase(t, PaymentSettings{})
		in := cardInput
		in.ProviderPayload = json.RawMessage(`{"payer":{"email":"p@test.com"}}`)
		_, err := uc.Register(context.Background(), in)
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("approved charge is enriched and stored", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentSettings{})
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, body json.RawMessage) (string, string, json.RawMessage, error) {
			var req map[string]any
			if err := json.Unmarshal(body, &req); err != nil {
				t.Fatalf("invalid body: %v", err)
			}
			if req["transaction_amount"] != 80.5 || req["external_reference"] == "" || req["payment_method_id"] != "visa" {
				t.Fatalf("unexpected gateway request: %v", req)
			}
			return "mp-1", "approved", json.RawMessage(`{"id":1,"status":"approved"}`), nil
		})
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoPaymentCreate)

		got, err := uc.Register(context.Background(), cardInput)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Payment.Status != entities.PaymentStatusAplicado || got.Payment.ProviderPaymentID != "mp-1" || got.Payment.Reference != "mp-1" {
			t.Fatalf("unexpected payment: %+v", got.Payment)
		}
		if len(got.Payment.ProviderPayloadRaw) == 0 {
			t.Fatalf("expected provider payload to be kept")
		}
	})

	t.Run("pending charge does not touch the plan", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentSettings{})
		m.planRepo.EXPECT().GetByID(gomock.Any(), "plan-1").Return(acceptedPlan(entities.PaymentModalityPagoPorSesion, "0"), nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-2", "in_process", json.RawMessage(`{}`), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoPaymentCreate)

		in := cardInput
		in.PlanID = "plan-1"
		in.Type = entities.PaymentTypePagoSesion
		in.Amount = dec("50")
		got, err := uc.Register(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Payment.Status != entities.PaymentStatusPendiente || !got.Plan.TotalPaid.IsZero() {
			t.Fatalf("unexpected result: payment=%+v plan=%+v", got.Payment, got.Plan)
		}
	})

	t.Run("charge the plan cannot take is kept as pending", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentSettings{})
		m.planRepo.EXPECT().GetByID(gomock.Any(), "plan-1").Return(acceptedPlan(entities.PaymentModalityPagoPorSesion, "0"), nil).Times(maxPlanUpdateAttempts)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-9", "approved", json.RawMessage(`{}`), nil)
		m.tx.EXPECT().RegisterPlanPayment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.TreatmentPlan{}, interfaces.ErrVersionConflict).Times(maxPlanUpdateAttempts)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) {
			if p.Status != entities.PaymentStatusPendiente || p.ProviderPaymentID != "mp-9" {
				t.Fatalf("expected pending record of mp-9, got %+v", p)
			}
			return p, nil
		})

		in := cardInput
		in.PlanID = "plan-1"
		in.Type = entities.PaymentTypePagoSesion
		in.Amount = dec("50")
		_, err := uc.Register(context.Background(), in)
		if !errors.Is(err, interfaces.ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
	})

	t.Run("rejected charge", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentSettings{})
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-3", "rejected", json.RawMessage(`{}`), nil)

		_, err := uc.Register(context.Background(), cardInput)
		if !errors.Is(err, ErrPaymentGatewayRejected) {
			t.Fatalf("expected ErrPaymentGatewayRejected, got %v", err)
		}
	})

	t.Run("gateway errors are mapped", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentSettings{})
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"message":"customer not found","status":404}`))

		_, err := uc.Register(context.Background(), cardInput)
		if !errors.Is(err, ErrPaymentGatewayCustomerNotFound) {
			t.Fatalf("expected ErrPaymentGatewayCustomerNotFound, got %v", err)
		}
	})

	t.Run("mock mode accepts an empty payload", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentSettings{GatewayMock: true})
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mock-1", "approved", json.RawMessage(`{}`), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoPaymentCreate)

		in := cardInput
		in.ProviderPayload = nil
		if _, err := uc.Register(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentUseCase_EnsurePayerDefaults(t *testing.T) {
	uc := NewPaymentUseCase(nil, nil, nil, nil, nil, testClock(), PaymentSettings{Sandbox: true, TestPayerEmail: "qa@testuser.com"})
	req := map[string]any{}
	uc.ensurePayerDefaults(req)

	payer := req["payer"].(map[string]any)
	if payer["email"] != "qa@testuser.com" || payer["type"] != "customer" {
		t.Fatalf("unexpected payer: %v", payer)
	}

	prod := NewPaymentUseCase(nil, nil, nil, nil, nil, testClock(), PaymentSettings{})
	req = map[string]any{}
	prod.ensurePayerDefaults(req)
	if hasPayer(req) {
		t.Fatalf("expected no payer email outside sandbox: %v", req)
	}
}

func TestPaymentUseCase_Refund(t *testing.T) {
	applied := entities.Payment{
		ID:        "pay-1",
		PatientID: "patient-1",
		PlanID:    "plan-1",
		Type:      entities.PaymentTypePagoSesion,
		Amount:    dec("50"),
		Method:    entities.PaymentMethodEfectivo,
		Status:    entities.PaymentStatusAplicado,
	}
	paidPlan := func(version int) entities.TreatmentPlan {
		p := acceptedPlan(entities.PaymentModalityPagoPorSesion, "0")
		p.TotalPaid = dec("100")
		p.OutstandingBalance = dec("400")
		p.Version = version
		return p
	}
	refundedCopy := func() entities.Payment {
		r := applied
		r.Status = entities.PaymentStatusDevuelto
		r.UpdatedAt = testNow
		return r
	}

	t.Run("restores the plan balance in one commit", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentSettings{})
		m.repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(applied, nil)
		m.planRepo.EXPECT().GetByID(gomock.Any(), "plan-1").Return(paidPlan(2), nil)
		m.tx.EXPECT().RefundPlanPayment(gomock.Any(), "pay-1", entities.PaymentStatusAplicado, entities.PaymentStatusDevuelto, testNow, gomock.Any()).
			DoAndReturn(echoRefundPlanPayment)

		p, plan, err := uc.Refund(context.Background(), "pay-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.PaymentStatusDevuelto || !p.UpdatedAt.Equal(testNow) {
			t.Fatalf("expected DEVUELTO at %v, got %+v", testNow, p)
		}
		if plan == nil || !plan.TotalPaid.Equal(dec("50")) || !plan.OutstandingBalance.Equal(dec("450")) || plan.Version != 3 {
			t.Fatalf("unexpected plan: %+v", plan)
		}
	})

	t.Run("failed commit leaves payment and plan untouched", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentSettings{})
		boom := errors.New("throttled")
		m.repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(applied, nil)
		m.planRepo.EXPECT().GetByID(gomock.Any(), "plan-1").Return(paidPlan(2), nil)
		m.tx.EXPECT().RefundPlanPayment(gomock.Any(), "pay-1", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.TreatmentPlan{}, boom)
		// No repo.UpdateStatus or planRepo.Update expectations.

		_, _, err := uc.Refund(context.Background(), "pay-1")
		if !errors.Is(err, boom) {
			t.Fatalf("expected throttled, got %v", err)
		}
	})

	t.Run("retries after a plan version conflict", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentSettings{})
		m.repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(applied, nil).Times(2)
		m.planRepo.EXPECT().GetByID(gomock.Any(), "plan-1").Return(paidPlan(2), nil)
		m.tx.EXPECT().RefundPlanPayment(gomock.Any(), "pay-1", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.TreatmentPlan{}, interfaces.ErrVersionConflict)

		// Another payment landed in between: total paid is now 150.
		reloaded := paidPlan(3)
		reloaded.TotalPaid = dec("150")
		m.planRepo.EXPECT().GetByID(gomock.Any(), "plan-1").Return(reloaded, nil)
		m.tx.EXPECT().RefundPlanPayment(gomock.Any(), "pay-1", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, id string, from, to entities.PaymentStatus, at time.Time, w interfaces.PlanWrite) (entities.TreatmentPlan, error) {
				if w.ExpectedVersion != 3 {
					t.Fatalf("expected retry on v3, got v%d", w.ExpectedVersion)
				}
				return echoRefundPlanPayment(ctx, id, from, to, at, w)
			})

		_, plan, err := uc.Refund(context.Background(), "pay-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !plan.TotalPaid.Equal(dec("100")) || plan.Version != 4 {
			t.Fatalf("unexpected plan after retry: %+v", plan)
		}
	})

	t.Run("already refunded", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentSettings{})
		m.repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(refundedCopy(), nil)
		m.planRepo.EXPECT().GetByID(gomock.Any(), "plan-1").Return(paidPlan(2), nil)

		_, _, err := uc.Refund(context.Background(), "pay-1")
		if !errors.Is(err, clinic.ErrAlreadyRefunded) {
			t.Fatalf("expected ErrAlreadyRefunded, got %v", err)
		}
	})

	t.Run("lost refund race", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentSettings{})
		m.repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(applied, nil)
		m.planRepo.EXPECT().GetByID(gomock.Any(), "plan-1").Return(paidPlan(2), nil)
		m.tx.EXPECT().RefundPlanPayment(gomock.Any(), "pay-1", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.TreatmentPlan{}, interfaces.ErrVersionConflict)
		// The reload shows another request refunded it first.
		m.repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(refundedCopy(), nil)
		m.planRepo.EXPECT().GetByID(gomock.Any(), "plan-1").Return(paidPlan(3), nil)

		_, _, err := uc.Refund(context.Background(), "pay-1")
		if !errors.Is(err, clinic.ErrAlreadyRefunded) {
			t.Fatalf("expected ErrAlreadyRefunded, got %v", err)
		}
	})

	t.Run("payment without plan", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentSettings{})
		deposit := applied
		deposit.PlanID = ""
		deposit.Type = entities.PaymentTypeAdelantoCita
		m.repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(deposit, nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "pay-1", entities.PaymentStatusAplicado, entities.PaymentStatusDevuelto, testNow).
			DoAndReturn(func(_ context.Context, _ string, _, to entities.PaymentStatus, at time.Time) (entities.Payment, error) {
				r := deposit
				r.Status = to
				r.UpdatedAt = at
				return r, nil
			})

		p, plan, err := uc.Refund(context.Background(), "pay-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if plan != nil || p.Status != entities.PaymentStatusDevuelto {
			t.Fatalf("unexpected result: %+v %+v", p, plan)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentSettings{})
		m.repo.EXPECT().GetByID(gomock.Any(), "pay-x").Return(entities.Payment{}, nil)

		_, _, err := uc.Refund(context.Background(), "pay-x")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})
}

func TestPaymentUseCase_Queries(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)
	payments := []entities.Payment{
		{ID: "p1", Type: entities.PaymentTypePagoSesion, Amount: dec("50"), Status: entities.PaymentStatusAplicado},
		{ID: "p2", Type: entities.PaymentTypePagoConsulta, Amount: dec("80"), Status: entities.PaymentStatusAplicado},
		{ID: "p3", Type: entities.PaymentTypePagoSesion, Amount: dec("50"), Status: entities.PaymentStatusDevuelto},
		{ID: "p4", Type: entities.PaymentTypeDevolucion, Amount: dec("10"), Status: entities.PaymentStatusAplicado},
	}

	t.Run("summary", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentSettings{})
		m.repo.EXPECT().ListByDateRange(gomock.Any(), from, to).Return(payments, nil)

		got, err := uc.Summary(context.Background(), from, to)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.TotalIncome.Equal(dec("120")) || got.PaymentCount != 3 {
			t.Fatalf("unexpected summary: %+v", got)
		}
	})

	t.Run("total paid by plan", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentSettings{})
		m.repo.EXPECT().ListByPlanID(gomock.Any(), "plan-1").Return(payments, nil)

		got, err := uc.TotalPaidByPlan(context.Background(), "plan-1")
		if err != nil || !got.Equal(dec("50")) {
			t.Fatalf("expected 50, got %s %v", got, err)
		}
	})

	t.Run("suggested amount", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, PaymentSettings{})
		m.planRepo.EXPECT().GetByID(gomock.Any(), "plan-1").Return(acceptedPlan(entities.PaymentModalityPagoCompleto, "20"), nil)

		got, err := uc.SuggestedAmount(context.Background(), "plan-1", entities.PaymentTypePagoPlanCompleto)
		if err != nil || !got.Equal(dec("400")) {
			t.Fatalf("expected 400, got %s %v", got, err)
		}

		if _, err := uc.SuggestedAmount(context.Background(), "plan-1", entities.PaymentTypePagoConsulta); !errors.Is(err, ErrInvalidPaymentType) {
			t.Fatalf("expected ErrInvalidPaymentType, got %v", err)
		}
	})

	t.Run("invalid range", func(t *testing.T) {
		uc, _ := newPaymentUseCase(t, PaymentSettings{})
		if _, err := uc.ListByRange(context.Background(), to, from); !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})
}
