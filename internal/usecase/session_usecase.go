package usecase

//go:generate mockgen -source=session_usecase.go -destination=../adapter/http/handlers/mocks/mock_session_usecase.go -package=mocks

import (
	"context"
	"errors"
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
	ErrPlanNotActive             = errors.New("treatment plan is not accepted or in progress")
	ErrAppointmentPlanMismatch   = errors.New("appointment does not belong to this plan")
	ErrAppointmentNotInAttention = errors.New("appointment cannot be completed from its current status")
)

// RecordSessionInput describes a session given under a plan. Number 0 means
// "next". AppointmentID, when set, is completed together with the session.
type RecordSessionInput struct {
	PlanID        string
	Number        int
	Date          time.Time
	PainScale     *int
	WeightKg      *decimal.Decimal
	HeightCm      *decimal.Decimal
	Observations  string
	AttendedByID  string
	TechniqueIDs  []string
	AppointmentID string
}

// RecordSessionResult is the recorded session with the plan after it.
type RecordSessionResult struct {
	Session             entities.Session
	Plan                entities.TreatmentPlan
	PainLabel           string
	RemainingSessions   int
	CompletionCandidate bool
	Appointment         *entities.Appointment
}

type ISessionUseCase interface {
	Record(ctx context.Context, in RecordSessionInput) (RecordSessionResult, error)
	ListByPlanID(ctx context.Context, planID string) ([]entities.Session, error)
}

type SessionUseCase struct {
	repo     interfaces.ISessionRepository
	planRepo interfaces.IPlanRepository
	apptRepo interfaces.IAppointmentRepository
	tx       interfaces.ITransactionRepository
	clock    clinic.Clock
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(
	repo interfaces.ISessionRepository,
	planRepo interfaces.IPlanRepository,
	apptRepo interfaces.IAppointmentRepository,
	tx interfaces.ITransactionRepository,
	clock clinic.Clock,
) *SessionUseCase {
	if clock == nil {
		clock = clinic.SystemClock
	}
	return &SessionUseCase{repo: repo, planRepo: planRepo, apptRepo: apptRepo, tx: tx, clock: clock}
}

// Record validates everything up front and then commits the session, the
// advanced plan and the completed appointment in one transaction. The plan
// version serialises concurrent recordings and the (plan_id, number) key
// rejects a duplicate ordinal; on any failure nothing is stored.
func (u *SessionUseCase) Record(ctx context.Context, in RecordSessionInput) (RecordSessionResult, error) {
	plan, err := getPlan(ctx, u.planRepo, in.PlanID)
	if err != nil {
		return RecordSessionResult{}, err
	}
	if plan.Status != entities.PlanStatusAceptado && plan.Status != entities.PlanStatusEnCurso {
		log.Printf("[session][usecase] plan not active plan_id=%s status=%s", plan.ID, plan.Status)
		return RecordSessionResult{}, ErrPlanNotActive
	}

	number := in.Number
	if number == 0 {
		if number, err = clinic.NextSessionNumber(plan); err != nil {
			return RecordSessionResult{}, err
		}
	}

	now := u.clock.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	techniques := clinic.UniqueTechniqueIDs(in.TechniqueIDs)
	if len(techniques) == 0 {
		techniques = append([]string(nil), plan.TechniqueIDs...)
	}

	session := entities.Session{
		ID:           uuid.NewString(),
		PlanID:       plan.ID,
		Number:       number,
		Date:         date.UTC(),
		PainScale:    in.PainScale,
		WeightKg:     in.WeightKg,
		HeightCm:     in.HeightCm,
		Observations: in.Observations,
		AttendedByID: strings.TrimSpace(in.AttendedByID),
		TechniqueIDs: techniques,
		CreatedAt:    now,
	}

	progress, err := clinic.RecordSession(plan, session)
	if err != nil {
		log.Printf("[session][usecase] record rejected plan_id=%s number=%d err=%v", plan.ID, number, err)
		return RecordSessionResult{}, err
	}
	next := progress.Plan
	if next.Status == entities.PlanStatusAceptado {
		if next, err = clinic.MarkInProgress(next); err != nil {
			return RecordSessionResult{}, err
		}
	}
	next.UpdatedAt = now

	var apptWrite *interfaces.AppointmentWrite
	if id := strings.TrimSpace(in.AppointmentID); id != "" {
		a, err := getAppointment(ctx, u.apptRepo, id)
		if err != nil {
			return RecordSessionResult{}, err
		}
		if a.PlanID != "" && a.PlanID != plan.ID {
			return RecordSessionResult{}, ErrAppointmentPlanMismatch
		}
		if !clinic.CanTransitionAppointment(a.Status, entities.AppointmentStatusCompletada) {
			log.Printf("[session][usecase] appointment not in attention appointment_id=%s status=%s", a.ID, a.Status)
			return RecordSessionResult{}, ErrAppointmentNotInAttention
		}
		completed, err := clinic.TransitionAppointment(a, entities.AppointmentStatusCompletada, "", session.AttendedByID)
		if err != nil {
			return RecordSessionResult{}, err
		}
		completed.SessionNumber = number
		completed.UpdatedAt = now
		apptWrite = &interfaces.AppointmentWrite{Appointment: completed, ExpectedVersion: a.Version}
	}

	updatedPlan, appt, err := u.tx.RecordSession(ctx, session, interfaces.PlanWrite{Plan: next, ExpectedVersion: plan.Version}, apptWrite)
	if err != nil {
		log.Printf("[session][usecase] record commit failed plan_id=%s number=%d err=%v", plan.ID, number, err)
		return RecordSessionResult{}, err
	}

	res := RecordSessionResult{
		Session:             session,
		Plan:                updatedPlan,
		PainLabel:           clinic.PainScaleLabel(session.PainScale),
		RemainingSessions:   clinic.RemainingSessions(updatedPlan),
		CompletionCandidate: progress.CompletionCandidate,
		Appointment:         appt,
	}

	log.Printf("[session][usecase] recorded plan_id=%s number=%d completed=%d/%d candidate=%t", updatedPlan.ID, session.Number, updatedPlan.SessionsCompleted, updatedPlan.NumberOfSessions, res.CompletionCandidate)
	return res, nil
}

func (u *SessionUseCase) ListByPlanID(ctx context.Context, planID string) ([]entities.Session, error) {
	planID = strings.TrimSpace(planID)
	if planID == "" {
		return nil, ErrInvalidPlanID
	}
	return u.repo.ListByPlanID(ctx, planID)
}
