package usecase

//go:generate mockgen -source=appointment_usecase.go -destination=../adapter/http/handlers/mocks/mock_appointment_usecase.go -package=mocks

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
)

var (
	ErrAppointmentNotFound     = errors.New("appointment not found")
	ErrInvalidAppointmentID    = errors.New("invalid appointment id")
	ErrInvalidAppointmentType  = errors.New("invalid appointment type")
	ErrInvalidAppointmentState = errors.New("invalid appointment status")
	ErrInvalidScheduleDate     = errors.New("invalid scheduled date")
	ErrInvalidDateRange        = errors.New("invalid date range")

	ErrAppointmentPatientMismatch = errors.New("appointment belongs to another patient")
)

// ScheduleAppointmentInput is a new booking. PlanID and SessionNumber are set
// when the visit is a session of a treatment plan.
type ScheduleAppointmentInput struct {
	PatientID     string
	PlanID        string
	ScheduledAt   time.Time
	Type          entities.AppointmentType
	SessionNumber int
	Notes         string
}

// IAppointmentUseCase exposes agenda operations.
type IAppointmentUseCase interface {
	Schedule(ctx context.Context, in ScheduleAppointmentInput) (entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	ListByPatientID(ctx context.Context, patientID string) ([]entities.Appointment, error)
	ListByDay(ctx context.Context, day time.Time) ([]entities.Appointment, error)
	ListByRange(ctx context.Context, from, to time.Time) ([]entities.Appointment, error)
	ChangeStatus(ctx context.Context, id string, status entities.AppointmentStatus, reason, actorID string) (entities.Appointment, error)
	Reschedule(ctx context.Context, id string, newDate time.Time, reason string) (original entities.Appointment, rescheduled entities.Appointment, err error)
}

type AppointmentUseCase struct {
	repo     interfaces.IAppointmentRepository
	planRepo interfaces.IPlanRepository
	tx       interfaces.ITransactionRepository
	clock    clinic.Clock
}

var _ IAppointmentUseCase = (*AppointmentUseCase)(nil)

func NewAppointmentUseCase(repo interfaces.IAppointmentRepository, planRepo interfaces.IPlanRepository, tx interfaces.ITransactionRepository, clock clinic.Clock) *AppointmentUseCase {
	if clock == nil {
		clock = clinic.SystemClock
	}
	return &AppointmentUseCase{repo: repo, planRepo: planRepo, tx: tx, clock: clock}
}

func (u *AppointmentUseCase) Schedule(ctx context.Context, in ScheduleAppointmentInput) (entities.Appointment, error) {
	patientID := strings.TrimSpace(in.PatientID)
	if patientID == "" {
		return entities.Appointment{}, ErrInvalidPatientID
	}
	if !in.Type.IsValid() {
		return entities.Appointment{}, ErrInvalidAppointmentType
	}
	if in.ScheduledAt.IsZero() {
		return entities.Appointment{}, ErrInvalidScheduleDate
	}

	planID := strings.TrimSpace(in.PlanID)
	if planID != "" {
		plan, err := getPlan(ctx, u.planRepo, planID)
		if err != nil {
			return entities.Appointment{}, err
		}
		if plan.PatientID != patientID {
			log.Printf("[appointment][usecase] plan patient mismatch plan_id=%s patient_id=%s", planID, patientID)
			return entities.Appointment{}, ErrPlanPatientMismatch
		}
		if clinic.IsPlanTerminal(plan.Status) {
			return entities.Appointment{}, ErrPlanClosed
		}
	}

	now := u.clock.Now()
	a := entities.Appointment{
		ID:            uuid.NewString(),
		PatientID:     patientID,
		PlanID:        planID,
		ScheduledAt:   in.ScheduledAt.UTC(),
		Type:          in.Type,
		Status:        entities.AppointmentStatusProgramada,
		SessionNumber: in.SessionNumber,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
		Version:       1,
	}

	created, err := u.repo.Create(ctx, a)
	if err != nil {
		log.Printf("[appointment][usecase] create failed patient_id=%s err=%v", patientID, err)
		return entities.Appointment{}, err
	}
	log.Printf("[appointment][usecase] scheduled appointment_id=%s patient_id=%s at=%s type=%s", created.ID, created.PatientID, created.ScheduledAt.Format(time.RFC3339), created.Type)
	return created, nil
}

func (u *AppointmentUseCase) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	return getAppointment(ctx, u.repo, id)
}

func (u *AppointmentUseCase) ListByPatientID(ctx context.Context, patientID string) ([]entities.Appointment, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return nil, ErrInvalidPatientID
	}
	return u.repo.ListByPatientID(ctx, patientID)
}

// ListByDay returns the agenda of the UTC calendar day containing day.
func (u *AppointmentUseCase) ListByDay(ctx context.Context, day time.Time) ([]entities.Appointment, error) {
	from, to := dayBounds(day)
	return u.ListByRange(ctx, from, to)
}

func (u *AppointmentUseCase) ListByRange(ctx context.Context, from, to time.Time) ([]entities.Appointment, error) {
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return nil, ErrInvalidDateRange
	}
	return u.repo.ListByDateRange(ctx, from, to)
}

func (u *AppointmentUseCase) ChangeStatus(ctx context.Context, id string, status entities.AppointmentStatus, reason, actorID string) (entities.Appointment, error) {
	if !status.IsValid() {
		return entities.Appointment{}, ErrInvalidAppointmentState
	}
	a, err := getAppointment(ctx, u.repo, id)
	if err != nil {
		return entities.Appointment{}, err
	}

	next, err := clinic.TransitionAppointment(a, status, strings.TrimSpace(reason), strings.TrimSpace(actorID))
	if err != nil {
		log.Printf("[appointment][usecase] transition rejected appointment_id=%s from=%s to=%s", a.ID, a.Status, status)
		return entities.Appointment{}, err
	}
	next.UpdatedAt = u.clock.Now()

	updated, err := u.repo.Update(ctx, next, a.Version)
	if err != nil {
		log.Printf("[appointment][usecase] status update failed appointment_id=%s err=%v", a.ID, err)
		return entities.Appointment{}, err
	}
	log.Printf("[appointment][usecase] status updated appointment_id=%s from=%s to=%s", updated.ID, a.Status, updated.Status)
	return updated, nil
}

// Reschedule closes the appointment as REPROGRAMADA and books a new one at
// newDate linked back to it. Both writes commit together.
func (u *AppointmentUseCase) Reschedule(ctx context.Context, id string, newDate time.Time, reason string) (entities.Appointment, entities.Appointment, error) {
	if newDate.IsZero() {
		return entities.Appointment{}, entities.Appointment{}, ErrInvalidScheduleDate
	}
	a, err := getAppointment(ctx, u.repo, id)
	if err != nil {
		return entities.Appointment{}, entities.Appointment{}, err
	}

	switch a.Status {
	case entities.AppointmentStatusProgramada, entities.AppointmentStatusSeparada, entities.AppointmentStatusConfirmada:
	default:
		log.Printf("[appointment][usecase] reschedule rejected appointment_id=%s status=%s", a.ID, a.Status)
		return entities.Appointment{}, entities.Appointment{}, &clinic.TransitionError{
			Entity: "appointment",
			From:   string(a.Status),
			To:     string(entities.AppointmentStatusReprogramada),
		}
	}

	now := u.clock.Now()
	closed := a
	closed.Status = entities.AppointmentStatusReprogramada
	closed.StatusReason = strings.TrimSpace(reason)
	closed.UpdatedAt = now

	next := entities.Appointment{
		ID:                uuid.NewString(),
		PatientID:         a.PatientID,
		PlanID:            a.PlanID,
		ScheduledAt:       newDate.UTC(),
		Type:              a.Type,
		Status:            entities.AppointmentStatusProgramada,
		SessionNumber:     a.SessionNumber,
		Notes:             a.Notes,
		RescheduledFromID: a.ID,
		CreatedAt:         now,
		UpdatedAt:         now,
		Version:           1,
	}

	closed, created, err := u.tx.Reschedule(ctx, interfaces.AppointmentWrite{Appointment: closed, ExpectedVersion: a.Version}, next)
	if err != nil {
		log.Printf("[appointment][usecase] reschedule commit failed appointment_id=%s err=%v", a.ID, err)
		return entities.Appointment{}, entities.Appointment{}, err
	}
	log.Printf("[appointment][usecase] rescheduled appointment_id=%s new_appointment_id=%s at=%s", a.ID, created.ID, created.ScheduledAt.Format(time.RFC3339))
	return closed, created, nil
}

func getAppointment(ctx context.Context, repo interfaces.IAppointmentRepository, id string) (entities.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Appointment{}, ErrInvalidAppointmentID
	}

	a, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}
	if a.ID == "" {
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	return a, nil
}

// dayBounds returns the first and last instant of the UTC day containing t.
func dayBounds(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1).Add(-time.Nanosecond)
}
