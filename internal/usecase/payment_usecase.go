package usecase

//go:generate mockgen -source=payment_usecase.go -destination=../adapter/http/handlers/mocks/mock_payment_usecase.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"clinica_fisio/internal/domain/clinic"
	"clinica_fisio/internal/domain/entities"
	"clinica_fisio/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrPaymentNotFound                = errors.New("payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidPaymentType             = errors.New("invalid payment type")
	ErrInvalidPaymentMethod           = errors.New("invalid payment method")
	ErrPaymentTargetRequired          = errors.New("plan payments require a plan_id")
	ErrInvalidProviderPayload         = errors.New("invalid card payment payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
	ErrPaymentGatewayRejected         = errors.New("card payment rejected by provider")
)

// maxPlanUpdateAttempts bounds the reload-and-retry loop run when a payment
// or refund loses the plan version race.
const maxPlanUpdateAttempts = 3

// RegisterPaymentInput is a payment taken at the front desk. ProviderPayload
// is the Mercado Pago request body and is only used for TARJETA.
type RegisterPaymentInput struct {
	PatientID       string
	AppointmentID   string
	ConsultationID  string
	PlanID          string
	SessionID       string
	Type            entities.PaymentType
	Amount          decimal.Decimal
	Method          entities.PaymentMethod
	Reference       string
	Concept         string
	Notes           string
	RegisteredByID  string
	ProviderPayload json.RawMessage
}

// RegisterPaymentResult carries the stored payment, the plan after applying
// it, and the advisory amount check.
type RegisterPaymentResult struct {
	Payment           entities.Payment
	Plan              *entities.TreatmentPlan
	SuggestedAmount   decimal.Decimal
	MatchesSuggestion bool
}

// PaymentSettings tunes card payment handling.
type PaymentSettings struct {
	// GatewayMock relaxes card payload checks; the gateway approves locally.
	GatewayMock bool
	// Sandbox enables test payer defaults for Mercado Pago test credentials.
	Sandbox        bool
	TestPayerEmail string
}

// IPaymentUseCase exposes payment registration and reconciliation.
//
//   - Register validates against the plan or appointment, charges TARJETA
//     through the gateway and stores APLICADO plan payments together with
//     the plan they are applied to.
//   - Refund moves APLICADO -> DEVUELTO and restores the plan balance in the
//     same commit.

type IPaymentUseCase interface {
	Register(ctx context.Context, in RegisterPaymentInput) (RegisterPaymentResult, error)
	Refund(ctx context.Context, id string) (entities.Payment, *entities.TreatmentPlan, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByPatientID(ctx context.Context, patientID string) ([]entities.Payment, error)
	ListByPlanID(ctx context.Context, planID string) ([]entities.Payment, error)
	ListByDay(ctx context.Context, day time.Time) ([]entities.Payment, error)
	ListByRange(ctx context.Context, from, to time.Time) ([]entities.Payment, error)
	TotalPaidByPlan(ctx context.Context, planID string) (decimal.Decimal, error)
	Summary(ctx context.Context, from, to time.Time) (entities.PaymentSummary, error)
	SuggestedAmount(ctx context.Context, planID string, paymentType entities.PaymentType) (decimal.Decimal, error)
}

type PaymentUseCase struct {
	repo     interfaces.IPaymentRepository
	planRepo interfaces.IPlanRepository
	apptRepo interfaces.IAppointmentRepository
	tx       interfaces.ITransactionRepository
	gateway  interfaces.IPaymentGateway
	clock    clinic.Clock
	settings PaymentSettings
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IPaymentRepository,
	planRepo interfaces.IPlanRepository,
	apptRepo interfaces.IAppointmentRepository,
	tx interfaces.ITransactionRepository,
	gateway interfaces.IPaymentGateway,
	clock clinic.Clock,
	settings PaymentSettings,
) *PaymentUseCase {
	if clock == nil {
		clock = clinic.SystemClock
	}
	return &PaymentUseCase{
		repo:     repo,
		planRepo: planRepo,
		apptRepo: apptRepo,
		tx:       tx,
		gateway:  gateway,
		clock:    clock,
		settings: settings,
	}
}

func (u *PaymentUseCase) Register(ctx context.Context, in RegisterPaymentInput) (RegisterPaymentResult, error) {
	patientID := strings.TrimSpace(in.PatientID)
	log.Printf("[payment][usecase] register start patient_id=%q type=%s method=%s amount=%s", patientID, in.Type, in.Method, in.Amount)
	if patientID == "" {
		return RegisterPaymentResult{}, ErrInvalidPatientID
	}
	if !in.Type.IsValid() {
		return RegisterPaymentResult{}, ErrInvalidPaymentType
	}
	if !in.Method.IsValid() {
		return RegisterPaymentResult{}, ErrInvalidPaymentMethod
	}
	if !in.Amount.IsPositive() {
		return RegisterPaymentResult{}, clinic.ErrNonPositiveAmount
	}

	req := clinic.PaymentRequest{Type: in.Type, Amount: in.Amount, Method: in.Method}
	res := RegisterPaymentResult{MatchesSuggestion: true}

	var plan entities.TreatmentPlan
	planID := strings.TrimSpace(in.PlanID)
	appointmentID := strings.TrimSpace(in.AppointmentID)

	switch {
	case planID != "":
		var err error
		plan, err = getPlan(ctx, u.planRepo, planID)
		if err != nil {
			return RegisterPaymentResult{}, err
		}
		if plan.PatientID != patientID {
			return RegisterPaymentResult{}, ErrPlanPatientMismatch
		}
		if plan.Status == entities.PlanStatusAbandonado {
			return RegisterPaymentResult{}, ErrPlanClosed
		}
		check, err := clinic.ValidatePlanPayment(plan, req)
		if err != nil {
			log.Printf("[payment][usecase] plan payment rejected plan_id=%s balance=%s err=%v", plan.ID, plan.OutstandingBalance, err)
			return RegisterPaymentResult{}, err
		}
		res.SuggestedAmount = check.SuggestedAmount
		res.MatchesSuggestion = check.MatchesSuggestion
	case in.Type.IsPlanPayment():
		return RegisterPaymentResult{}, ErrPaymentTargetRequired
	case appointmentID != "":
		a, err := getAppointment(ctx, u.apptRepo, appointmentID)
		if err != nil {
			return RegisterPaymentResult{}, err
		}
		if a.PatientID != patientID {
			return RegisterPaymentResult{}, ErrAppointmentPatientMismatch
		}
		if err := clinic.ValidateAppointmentPayment(a, req); err != nil {
			log.Printf("[payment][usecase] appointment payment rejected appointment_id=%s status=%s err=%v", a.ID, a.Status, err)
			return RegisterPaymentResult{}, err
		}
	}

	now := u.clock.Now()
	p := entities.Payment{
		ID:             uuid.NewString(),
		PatientID:      patientID,
		AppointmentID:  appointmentID,
		ConsultationID: strings.TrimSpace(in.ConsultationID),
		PlanID:         planID,
		SessionID:      strings.TrimSpace(in.SessionID),
		Type:           in.Type,
		Amount:         in.Amount,
		Method:         in.Method,
		Status:         entities.PaymentStatusAplicado,
		Reference:      in.Reference,
		Concept:        in.Concept,
		Notes:          in.Notes,
		RegisteredByID: strings.TrimSpace(in.RegisteredByID),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if p.Method == entities.PaymentMethodTarjeta {
		if err := u.charge(ctx, &p, in.ProviderPayload); err != nil {
			return RegisterPaymentResult{}, err
		}
	}

	if planID == "" || p.Status != entities.PaymentStatusAplicado {
		created, err := u.repo.Create(ctx, p)
		if err != nil {
			log.Printf("[payment][usecase] payment repository create failed payment_id=%s err=%v", p.ID, err)
			return RegisterPaymentResult{}, err
		}
		if planID != "" {
			res.Plan = &plan
		}
		res.Payment = created
		log.Printf("[payment][usecase] register success payment_id=%s status=%s plan_id=%s", created.ID, created.Status, created.PlanID)
		return res, nil
	}

	updated, err := u.commitPlanPayment(ctx, plan, p, req)
	if err != nil {
		log.Printf("[payment][usecase] plan payment commit failed plan_id=%s payment_id=%s err=%v", plan.ID, p.ID, err)
		if p.ProviderPaymentID != "" {
			u.keepUnappliedCharge(ctx, p)
		}
		return RegisterPaymentResult{}, err
	}
	res.Payment = p
	res.Plan = &updated
	log.Printf("[payment][usecase] register success payment_id=%s status=%s plan_id=%s balance=%s", p.ID, p.Status, updated.ID, updated.OutstandingBalance)
	return res, nil
}

// commitPlanPayment stores the payment and the plan it is applied to in one
// commit. After a lost version race the plan is reloaded and the payment
// validated against it again.
func (u *PaymentUseCase) commitPlanPayment(ctx context.Context, plan entities.TreatmentPlan, p entities.Payment, req clinic.PaymentRequest) (entities.TreatmentPlan, error) {
	for attempt := 1; ; attempt++ {
		applied, err := clinic.ApplyPayment(plan, p)
		if err != nil {
			return entities.TreatmentPlan{}, err
		}
		applied.UpdatedAt = p.CreatedAt

		updated, err := u.tx.RegisterPlanPayment(ctx, p, interfaces.PlanWrite{Plan: applied, ExpectedVersion: plan.Version})
		if err == nil {
			return updated, nil
		}
		if !errors.Is(err, interfaces.ErrVersionConflict) || attempt >= maxPlanUpdateAttempts {
			return entities.TreatmentPlan{}, err
		}

		log.Printf("[payment][usecase] plan version conflict, reloading plan_id=%s attempt=%d", plan.ID, attempt)
		if plan, err = getPlan(ctx, u.planRepo, plan.ID); err != nil {
			return entities.TreatmentPlan{}, err
		}
		if plan.Status == entities.PlanStatusAbandonado {
			return entities.TreatmentPlan{}, ErrPlanClosed
		}
		if _, err := clinic.ValidatePlanPayment(plan, req); err != nil {
			return entities.TreatmentPlan{}, err
		}
	}
}

// keepUnappliedCharge records a card charge the plan could not take as
// PENDIENTE, so the provider payment stays traceable without counting
// towards the plan.
func (u *PaymentUseCase) keepUnappliedCharge(ctx context.Context, p entities.Payment) {
	p.Status = entities.PaymentStatusPendiente
	if _, err := u.repo.Create(ctx, p); err != nil {
		log.Printf("[payment][usecase] unapplied charge not recorded payment_id=%s provider_payment_id=%s err=%v", p.ID, p.ProviderPaymentID, err)
		return
	}
	log.Printf("[payment][usecase] unapplied charge kept as pending payment_id=%s provider_payment_id=%s", p.ID, p.ProviderPaymentID)
}

// charge sends a card payment to the gateway. A rejected charge fails the
// registration; any other non-approved status leaves the payment PENDIENTE.
func (u *PaymentUseCase) charge(ctx context.Context, p *entities.Payment, payload json.RawMessage) error {
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured payment_id=%s", p.ID)
		return ErrPaymentGatewayNotConfigured
	}

	if len(payload) == 0 || !json.Valid(payload) {
		if !u.settings.GatewayMock {
			log.Printf("[payment][usecase] invalid payload payment_id=%s", p.ID)
			return ErrInvalidProviderPayload
		}
		payload = json.RawMessage("{}")
	}

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		if !u.settings.GatewayMock {
			return ErrInvalidProviderPayload
		}
		reqMap = map[string]any{}
	}
	if !u.settings.GatewayMock && !hasNonEmptyString(reqMap, "payment_method_id") {
		log.Printf("[payment][usecase] missing payment_method_id payment_id=%s", p.ID)
		return ErrInvalidProviderPayload
	}
	if !u.settings.GatewayMock {
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Printf("[payment][usecase] missing/invalid payer payment_id=%s", p.ID)
			return ErrInvalidProviderPayload
		}
	}

	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = p.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("%s %s", p.Type, p.ID)
	}
	// The registered amount is the source of truth.
	reqMap["transaction_amount"] = p.Amount.InexactFloat64()

	body, err := json.Marshal(reqMap)
	if err != nil {
		return err
	}

	log.Printf("[payment][usecase] calling payment gateway payment_id=%s payload_len=%d", p.ID, len(body))
	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, body)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed payment_id=%s err=%v", p.ID, err)
		return mapGatewayError(err)
	}
	log.Printf("[payment][usecase] payment gateway success payment_id=%s provider_payment_id=%s provider_status=%s", p.ID, providerID, providerStatus)

	switch providerStatus {
	case "rejected", "cancelled":
		return ErrPaymentGatewayRejected
	case "approved":
	default:
		p.Status = entities.PaymentStatusPendiente
	}

	p.ProviderPaymentID = providerID
	p.ProviderPayloadRaw = providerResp
	if p.Reference == "" {
		p.Reference = providerID
	}
	return nil
}

// Refund returns an applied payment. The status change is conditional, so a
// payment cannot be refunded twice. Plan payments change status and restore
// the plan balance in one commit.
func (u *PaymentUseCase) Refund(ctx context.Context, id string) (entities.Payment, *entities.TreatmentPlan, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, nil, err
	}

	var plan *entities.TreatmentPlan
	if p.PlanID != "" {
		loaded, err := getPlan(ctx, u.planRepo, p.PlanID)
		if err != nil {
			return entities.Payment{}, nil, err
		}
		plan = &loaded
	}

	now := u.clock.Now()
	result, err := clinic.Refund(p, plan, now)
	if err != nil {
		log.Printf("[payment][usecase] refund rejected payment_id=%s status=%s err=%v", p.ID, p.Status, err)
		return entities.Payment{}, nil, err
	}

	if result.Plan == nil {
		refunded, err := u.repo.UpdateStatus(ctx, p.ID, entities.PaymentStatusAplicado, entities.PaymentStatusDevuelto, now)
		if err != nil {
			log.Printf("[payment][usecase] refund status update failed payment_id=%s err=%v", p.ID, err)
			return entities.Payment{}, nil, err
		}
		if refunded.ID == "" {
			return entities.Payment{}, nil, ErrPaymentNotFound
		}
		log.Printf("[payment][usecase] refund success payment_id=%s", refunded.ID)
		return refunded, nil, nil
	}

	refunded, updated, err := u.commitRefund(ctx, p, *plan, result, now)
	if err != nil {
		log.Printf("[payment][usecase] refund commit failed payment_id=%s plan_id=%s err=%v", p.ID, p.PlanID, err)
		return entities.Payment{}, nil, err
	}
	log.Printf("[payment][usecase] refund success payment_id=%s plan_id=%s balance=%s", refunded.ID, updated.ID, updated.OutstandingBalance)
	return refunded, &updated, nil
}

// commitRefund retries on a lost version race by reloading the payment and
// the plan; a payment refunded meanwhile ends in ErrAlreadyRefunded.
func (u *PaymentUseCase) commitRefund(ctx context.Context, p entities.Payment, plan entities.TreatmentPlan, result clinic.RefundResult, now time.Time) (entities.Payment, entities.TreatmentPlan, error) {
	for attempt := 1; ; attempt++ {
		next := *result.Plan
		next.UpdatedAt = now
		updated, err := u.tx.RefundPlanPayment(ctx, p.ID, entities.PaymentStatusAplicado, entities.PaymentStatusDevuelto, now,
			interfaces.PlanWrite{Plan: next, ExpectedVersion: plan.Version})
		if err == nil {
			return result.Payment, updated, nil
		}
		if !errors.Is(err, interfaces.ErrVersionConflict) || attempt >= maxPlanUpdateAttempts {
			return entities.Payment{}, entities.TreatmentPlan{}, err
		}

		log.Printf("[payment][usecase] refund version conflict, reloading payment_id=%s plan_id=%s attempt=%d", p.ID, plan.ID, attempt)
		if p, err = u.GetByID(ctx, p.ID); err != nil {
			return entities.Payment{}, entities.TreatmentPlan{}, err
		}
		if plan, err = getPlan(ctx, u.planRepo, plan.ID); err != nil {
			return entities.Payment{}, entities.TreatmentPlan{}, err
		}
		if result, err = clinic.Refund(p, &plan, now); err != nil {
			return entities.Payment{}, entities.TreatmentPlan{}, err
		}
	}
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByPatientID(ctx context.Context, patientID string) ([]entities.Payment, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return nil, ErrInvalidPatientID
	}
	return u.repo.ListByPatientID(ctx, patientID)
}

func (u *PaymentUseCase) ListByPlanID(ctx context.Context, planID string) ([]entities.Payment, error) {
	planID = strings.TrimSpace(planID)
	if planID == "" {
		return nil, ErrInvalidPlanID
	}
	return u.repo.ListByPlanID(ctx, planID)
}

func (u *PaymentUseCase) ListByDay(ctx context.Context, day time.Time) ([]entities.Payment, error) {
	from, to := dayBounds(day)
	return u.ListByRange(ctx, from, to)
}

func (u *PaymentUseCase) ListByRange(ctx context.Context, from, to time.Time) ([]entities.Payment, error) {
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return nil, ErrInvalidDateRange
	}
	return u.repo.ListByDateRange(ctx, from, to)
}

func (u *PaymentUseCase) TotalPaidByPlan(ctx context.Context, planID string) (decimal.Decimal, error) {
	payments, err := u.ListByPlanID(ctx, planID)
	if err != nil {
		return decimal.Zero, err
	}
	return clinic.TotalPaid(payments), nil
}

func (u *PaymentUseCase) Summary(ctx context.Context, from, to time.Time) (entities.PaymentSummary, error) {
	payments, err := u.ListByRange(ctx, from, to)
	if err != nil {
		return entities.PaymentSummary{}, err
	}
	return clinic.Summarize(payments, from, to), nil
}

func (u *PaymentUseCase) SuggestedAmount(ctx context.Context, planID string, paymentType entities.PaymentType) (decimal.Decimal, error) {
	if !paymentType.IsPlanPayment() {
		return decimal.Zero, ErrInvalidPaymentType
	}
	plan, err := getPlan(ctx, u.planRepo, planID)
	if err != nil {
		return decimal.Zero, err
	}
	return clinic.SuggestedPlanPaymentAmount(plan, paymentType), nil
}

func (u *PaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox, either payer.id or payer.email may be used.
	// Fill email only when both are missing.
	if !u.settings.Sandbox || hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(u.settings.TestPayerEmail); email != "" {
		payer["email"] = email
	} else {
		payer["email"] = "test_user_pe@testuser.com"
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func mapGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}
