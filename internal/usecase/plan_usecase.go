package usecase

//go:generate mockgen -source=plan_usecase.go -destination=../adapter/http/handlers/mocks/mock_plan_usecase.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"clinica_fisio/internal/domain/clinic"
	"clinica_fisio/internal/domain/entities"
	"clinica_fisio/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrPlanNotFound        = errors.New("treatment plan not found")
	ErrInvalidPlanID       = errors.New("invalid plan id")
	ErrInvalidPatientID    = errors.New("invalid patient id")
	ErrInvalidPlanStatus   = errors.New("invalid plan status")
	ErrNoTechniques        = errors.New("at least one technique is required")
	ErrUnknownTechnique    = errors.New("unknown or inactive technique")
	ErrPlanPatientMismatch = errors.New("plan belongs to another patient")
	ErrPlanClosed          = errors.New("treatment plan is closed")
)

// ProposePlanInput carries what a clinician prescribes after a consultation.
type ProposePlanInput struct {
	PatientID          string
	ConsultationID     string
	Diagnosis          string
	NumberOfSessions   int
	TechniqueIDs       []string
	Observations       string
	SuggestedFrequency string
}

// IPlanUseCase exposes treatment plan operations.
//
//   - Propose prices the plan from the technique catalog (PROPUESTO, modality PENDIENTE).
//   - Confirm records the patient's payment modality (PROPUESTO -> ACEPTADO).
//   - UpdateStatus moves the plan to EN_CURSO, COMPLETADO or ABANDONADO.

type IPlanUseCase interface {
	Propose(ctx context.Context, in ProposePlanInput) (entities.TreatmentPlan, error)
	GetByID(ctx context.Context, id string) (entities.TreatmentPlan, error)
	ListByPatientID(ctx context.Context, patientID string) ([]entities.TreatmentPlan, error)
	ListByStatus(ctx context.Context, status entities.PlanStatus) ([]entities.TreatmentPlan, error)
	Confirm(ctx context.Context, id string, modality entities.PaymentModality, applyDiscount bool) (entities.TreatmentPlan, error)
	UpdateStatus(ctx context.Context, id string, status entities.PlanStatus) (entities.TreatmentPlan, error)
}

type PlanUseCase struct {
	repo                interfaces.IPlanRepository
	techniqueRepo       interfaces.ITechniqueRepository
	clock               clinic.Clock
	fullPaymentDiscount decimal.Decimal
}

var _ IPlanUseCase = (*PlanUseCase)(nil)

func NewPlanUseCase(repo interfaces.IPlanRepository, techniqueRepo interfaces.ITechniqueRepository, clock clinic.Clock, fullPaymentDiscount decimal.Decimal) *PlanUseCase {
	if clock == nil {
		clock = clinic.SystemClock
	}
	return &PlanUseCase{
		repo:                repo,
		techniqueRepo:       techniqueRepo,
		clock:               clock,
		fullPaymentDiscount: fullPaymentDiscount,
	}
}

func (u *PlanUseCase) Propose(ctx context.Context, in ProposePlanInput) (entities.TreatmentPlan, error) {
	patientID := strings.TrimSpace(in.PatientID)
	if patientID == "" {
		return entities.TreatmentPlan{}, ErrInvalidPatientID
	}
	if in.NumberOfSessions < 1 {
		return entities.TreatmentPlan{}, clinic.ErrInvalidQuantity
	}
	ids := clinic.UniqueTechniqueIDs(in.TechniqueIDs)
	if len(ids) == 0 {
		return entities.TreatmentPlan{}, ErrNoTechniques
	}

	catalog, missing, err := loadCatalog(ctx, u.techniqueRepo, ids)
	if err != nil {
		log.Printf("[plan][usecase] loading techniques failed patient_id=%s err=%v", patientID, err)
		return entities.TreatmentPlan{}, err
	}
	if len(missing) > 0 {
		log.Printf("[plan][usecase] unknown techniques patient_id=%s missing=%v", patientID, missing)
		return entities.TreatmentPlan{}, fmt.Errorf("%w: %s", ErrUnknownTechnique, strings.Join(missing, ","))
	}

	now := u.clock.Now()
	plan := entities.TreatmentPlan{
		ID:                 uuid.NewString(),
		PatientID:          patientID,
		ConsultationID:     strings.TrimSpace(in.ConsultationID),
		Diagnosis:          in.Diagnosis,
		NumberOfSessions:   in.NumberOfSessions,
		DiscountPercent:    decimal.Zero,
		PaymentModality:    entities.PaymentModalityPendiente,
		Status:             entities.PlanStatusPropuesto,
		TechniqueIDs:       ids,
		TotalPaid:          decimal.Zero,
		Observations:       in.Observations,
		SuggestedFrequency: in.SuggestedFrequency,
		CreatedAt:          now,
		UpdatedAt:          now,
		Version:            1,
	}
	plan, err = clinic.PricePlan(plan, catalog)
	if err != nil {
		return entities.TreatmentPlan{}, err
	}

	created, err := u.repo.Create(ctx, plan)
	if err != nil {
		log.Printf("[plan][usecase] create failed patient_id=%s err=%v", patientID, err)
		return entities.TreatmentPlan{}, err
	}
	log.Printf("[plan][usecase] proposed plan_id=%s patient_id=%s sessions=%d total=%s", created.ID, created.PatientID, created.NumberOfSessions, created.TotalCost)
	return created, nil
}

func (u *PlanUseCase) GetByID(ctx context.Context, id string) (entities.TreatmentPlan, error) {
	return getPlan(ctx, u.repo, id)
}

func (u *PlanUseCase) ListByPatientID(ctx context.Context, patientID string) ([]entities.TreatmentPlan, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return nil, ErrInvalidPatientID
	}
	return u.repo.ListByPatientID(ctx, patientID)
}

func (u *PlanUseCase) ListByStatus(ctx context.Context, status entities.PlanStatus) ([]entities.TreatmentPlan, error) {
	if !status.IsValid() {
		return nil, ErrInvalidPlanStatus
	}
	return u.repo.ListByStatus(ctx, status)
}

func (u *PlanUseCase) Confirm(ctx context.Context, id string, modality entities.PaymentModality, applyDiscount bool) (entities.TreatmentPlan, error) {
	plan, err := getPlan(ctx, u.repo, id)
	if err != nil {
		return entities.TreatmentPlan{}, err
	}

	confirmed, err := clinic.ConfirmPlan(plan, modality, applyDiscount, u.fullPaymentDiscount, u.clock.Now())
	if err != nil {
		log.Printf("[plan][usecase] confirm rejected plan_id=%s status=%s modality=%s err=%v", plan.ID, plan.Status, modality, err)
		return entities.TreatmentPlan{}, err
	}
	confirmed.UpdatedAt = u.clock.Now()

	updated, err := u.repo.Update(ctx, confirmed, plan.Version)
	if err != nil {
		log.Printf("[plan][usecase] confirm update failed plan_id=%s err=%v", plan.ID, err)
		return entities.TreatmentPlan{}, err
	}
	log.Printf("[plan][usecase] confirmed plan_id=%s modality=%s discount=%s balance=%s", updated.ID, updated.PaymentModality, updated.DiscountPercent, updated.OutstandingBalance)
	return updated, nil
}

func (u *PlanUseCase) UpdateStatus(ctx context.Context, id string, status entities.PlanStatus) (entities.TreatmentPlan, error) {
	if !status.IsValid() {
		return entities.TreatmentPlan{}, ErrInvalidPlanStatus
	}
	plan, err := getPlan(ctx, u.repo, id)
	if err != nil {
		return entities.TreatmentPlan{}, err
	}

	next, err := clinic.TransitionPlan(plan, status)
	if err != nil {
		log.Printf("[plan][usecase] transition rejected plan_id=%s from=%s to=%s err=%v", plan.ID, plan.Status, status, err)
		return entities.TreatmentPlan{}, err
	}
	next.UpdatedAt = u.clock.Now()

	updated, err := u.repo.Update(ctx, next, plan.Version)
	if err != nil {
		log.Printf("[plan][usecase] status update failed plan_id=%s err=%v", plan.ID, err)
		return entities.TreatmentPlan{}, err
	}
	log.Printf("[plan][usecase] status updated plan_id=%s from=%s to=%s", updated.ID, plan.Status, updated.Status)
	return updated, nil
}

func getPlan(ctx context.Context, repo interfaces.IPlanRepository, id string) (entities.TreatmentPlan, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.TreatmentPlan{}, ErrInvalidPlanID
	}

	plan, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.TreatmentPlan{}, err
	}
	if plan.ID == "" {
		return entities.TreatmentPlan{}, ErrPlanNotFound
	}
	return plan, nil
}
