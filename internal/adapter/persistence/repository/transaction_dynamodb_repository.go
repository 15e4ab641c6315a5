package repository

import (
	"context"
	"time"

	"clinica_fisio/internal/domain/entities"
	"clinica_fisio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// TableNames are the clinic tables a transaction may touch. Empty names fall
// back to the repository defaults.
type TableNames struct {
	Appointments string
	Plans        string
	Sessions     string
	Payments     string
}

// TransactionDynamoRepository groups writes on several clinic tables into a
// single TransactWriteItems call. Each item keeps the condition its own
// repository uses, so a stale version or a taken key cancels the whole set.

type TransactionDynamoRepository struct {
	ddb    DynamoDBAPI
	tables TableNames
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb DynamoDBAPI, tables TableNames) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb: ddb,
		tables: TableNames{
			Appointments: tableOrDefault(tables.Appointments, defaultAppointmentsTableName),
			Plans:        tableOrDefault(tables.Plans, defaultPlansTableName),
			Sessions:     tableOrDefault(tables.Sessions, defaultSessionsTableName),
			Payments:     tableOrDefault(tables.Payments, defaultPaymentsTableName),
		},
	}
}

// RecordSession creates the session, advances the plan and, when appt is
// set, completes the appointment.
func (r *TransactionDynamoRepository) RecordSession(ctx context.Context, s entities.Session, plan interfaces.PlanWrite, appt *interfaces.AppointmentWrite) (entities.TreatmentPlan, *entities.Appointment, error) {
	sessionOp, err := sessionPut(r.tables.Sessions, s)
	if err != nil {
		return entities.TreatmentPlan{}, nil, err
	}
	planOp, storedPlan, err := planVersionedPut(r.tables.Plans, plan.Plan, plan.ExpectedVersion)
	if err != nil {
		return entities.TreatmentPlan{}, nil, err
	}
	items := []types.TransactWriteItem{{Put: sessionOp}, {Put: planOp}}

	var storedAppt *entities.Appointment
	if appt != nil {
		apptOp, a, err := appointmentVersionedPut(r.tables.Appointments, appt.Appointment, appt.ExpectedVersion)
		if err != nil {
			return entities.TreatmentPlan{}, nil, err
		}
		items = append(items, types.TransactWriteItem{Put: apptOp})
		storedAppt = &a
	}

	if err := r.commit(ctx, items); err != nil {
		return entities.TreatmentPlan{}, nil, err
	}
	return storedPlan, storedAppt, nil
}

// RegisterPlanPayment creates the payment and stores the plan with it applied.
func (r *TransactionDynamoRepository) RegisterPlanPayment(ctx context.Context, p entities.Payment, plan interfaces.PlanWrite) (entities.TreatmentPlan, error) {
	paymentOp, err := paymentPut(r.tables.Payments, p)
	if err != nil {
		return entities.TreatmentPlan{}, err
	}
	planOp, storedPlan, err := planVersionedPut(r.tables.Plans, plan.Plan, plan.ExpectedVersion)
	if err != nil {
		return entities.TreatmentPlan{}, err
	}

	if err := r.commit(ctx, []types.TransactWriteItem{{Put: paymentOp}, {Put: planOp}}); err != nil {
		return entities.TreatmentPlan{}, err
	}
	return storedPlan, nil
}

// RefundPlanPayment moves the payment from -> to and stores the plan with
// the amount taken back out.
func (r *TransactionDynamoRepository) RefundPlanPayment(ctx context.Context, paymentID string, from, to entities.PaymentStatus, at time.Time, plan interfaces.PlanWrite) (entities.TreatmentPlan, error) {
	planOp, storedPlan, err := planVersionedPut(r.tables.Plans, plan.Plan, plan.ExpectedVersion)
	if err != nil {
		return entities.TreatmentPlan{}, err
	}
	items := []types.TransactWriteItem{
		{Update: paymentStatusUpdate(r.tables.Payments, paymentID, from, to, at)},
		{Put: planOp},
	}

	if err := r.commit(ctx, items); err != nil {
		return entities.TreatmentPlan{}, err
	}
	return storedPlan, nil
}

// Reschedule stores the closed original and creates its replacement.
func (r *TransactionDynamoRepository) Reschedule(ctx context.Context, original interfaces.AppointmentWrite, replacement entities.Appointment) (entities.Appointment, entities.Appointment, error) {
	closeOp, closed, err := appointmentVersionedPut(r.tables.Appointments, original.Appointment, original.ExpectedVersion)
	if err != nil {
		return entities.Appointment{}, entities.Appointment{}, err
	}
	createOp, err := appointmentPut(r.tables.Appointments, replacement)
	if err != nil {
		return entities.Appointment{}, entities.Appointment{}, err
	}

	if err := r.commit(ctx, []types.TransactWriteItem{{Put: closeOp}, {Put: createOp}}); err != nil {
		return entities.Appointment{}, entities.Appointment{}, err
	}
	return closed, replacement, nil
}

func (r *TransactionDynamoRepository) commit(ctx context.Context, items []types.TransactWriteItem) error {
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		return conditionFailed(err)
	}
	return nil
}
