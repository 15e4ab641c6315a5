package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinica_fisio/internal/domain/entities"
	"clinica_fisio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func conditionCancelled(codes ...string) error {
	reasons := make([]types.CancellationReason, 0, len(codes))
	for _, c := range codes {
		reasons = append(reasons, types.CancellationReason{Code: aws.String(c)})
	}
	return &types.TransactionCanceledException{CancellationReasons: reasons}
}

func TestTransactionRepository_RecordSession(t *testing.T) {
	at := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	session := entities.Session{ID: "s-3", PlanID: "plan-1", Number: 3, Date: at, CreatedAt: at}
	plan := samplePlan()
	plan.SessionsCompleted = 3
	appt := sampleAppointment("apt-1", at)
	appt.Status = entities.AppointmentStatusCompletada

	t.Run("writes session plan and appointment together", func(t *testing.T) {
		calls := 0
		fake := &fakeDynamo{
			transact: func(in *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				calls++
				if len(in.TransactItems) != 3 {
					t.Fatalf("expected 3 items, got %d", len(in.TransactItems))
				}
				sessionOp, planOp, apptOp := in.TransactItems[0].Put, in.TransactItems[1].Put, in.TransactItems[2].Put
				if aws.ToString(sessionOp.TableName) != "sessions_t" || sessionOp.ExpressionAttributeNames["#number"] != "number" {
					t.Fatalf("unexpected session put: %+v", sessionOp)
				}
				if aws.ToString(planOp.TableName) != defaultPlansTableName {
					t.Fatalf("expected default plans table, got %s", aws.ToString(planOp.TableName))
				}
				expected := planOp.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberN)
				if expected.Value != "3" {
					t.Fatalf("expected plan version 3 in condition, got %s", expected.Value)
				}
				if aws.ToString(apptOp.ConditionExpression) != versionCondition {
					t.Fatalf("expected versioned appointment put, got %s", aws.ToString(apptOp.ConditionExpression))
				}
				return &dynamodb.TransactWriteItemsOutput{}, nil
			},
		}
		repo := NewTransactionDynamoRepository(fake, TableNames{Sessions: "sessions_t"})

		gotPlan, gotAppt, err := repo.RecordSession(context.Background(), session,
			interfaces.PlanWrite{Plan: plan, ExpectedVersion: 3},
			&interfaces.AppointmentWrite{Appointment: appt, ExpectedVersion: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 1 {
			t.Fatalf("expected one transaction, got %d", calls)
		}
		if gotPlan.Version != 4 {
			t.Fatalf("expected plan version 4, got %d", gotPlan.Version)
		}
		if gotAppt == nil || gotAppt.Version != 2 {
			t.Fatalf("expected appointment version 2, got %+v", gotAppt)
		}
	})

	t.Run("without appointment", func(t *testing.T) {
		fake := &fakeDynamo{
			transact: func(in *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				if len(in.TransactItems) != 2 {
					t.Fatalf("expected 2 items, got %d", len(in.TransactItems))
				}
				return &dynamodb.TransactWriteItemsOutput{}, nil
			},
		}
		repo := NewTransactionDynamoRepository(fake, TableNames{})

		_, gotAppt, err := repo.RecordSession(context.Background(), session, interfaces.PlanWrite{Plan: plan, ExpectedVersion: 3}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotAppt != nil {
			t.Fatalf("expected no appointment, got %+v", gotAppt)
		}
	})

	t.Run("taken session number cancels everything", func(t *testing.T) {
		fake := &fakeDynamo{
			transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				return nil, conditionCancelled("ConditionalCheckFailed", "None")
			},
		}
		repo := NewTransactionDynamoRepository(fake, TableNames{})

		gotPlan, _, err := repo.RecordSession(context.Background(), session, interfaces.PlanWrite{Plan: plan, ExpectedVersion: 3}, nil)
		if !errors.Is(err, interfaces.ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
		if gotPlan.ID != "" {
			t.Fatalf("expected zero plan, got %+v", gotPlan)
		}
	})

	t.Run("other failures pass through", func(t *testing.T) {
		boom := errors.New("throttled")
		fake := &fakeDynamo{
			transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				return nil, boom
			},
		}
		repo := NewTransactionDynamoRepository(fake, TableNames{})

		_, _, err := repo.RecordSession(context.Background(), session, interfaces.PlanWrite{Plan: plan, ExpectedVersion: 3}, nil)
		if !errors.Is(err, boom) {
			t.Fatalf("expected passthrough error, got %v", err)
		}
	})
}

func TestTransactionRepository_RegisterPlanPayment(t *testing.T) {
	plan := samplePlan()
	p := entities.Payment{
		ID:        "pay-1",
		PatientID: "patient-1",
		PlanID:    plan.ID,
		Type:      entities.PaymentTypePagoSesion,
		Amount:    decimal.RequireFromString("50"),
		Method:    entities.PaymentMethodEfectivo,
		Status:    entities.PaymentStatusAplicado,
	}

	fake := &fakeDynamo{
		transact: func(in *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			if len(in.TransactItems) != 2 {
				t.Fatalf("expected 2 items, got %d", len(in.TransactItems))
			}
			paymentOp := in.TransactItems[0].Put
			if aws.ToString(paymentOp.TableName) != "payments_t" || aws.ToString(paymentOp.ConditionExpression) != "attribute_not_exists(#id)" {
				t.Fatalf("unexpected payment put: %+v", paymentOp)
			}
			if in.TransactItems[1].Put == nil || aws.ToString(in.TransactItems[1].Put.TableName) != "plans_t" {
				t.Fatalf("expected plan put on plans_t")
			}
			return &dynamodb.TransactWriteItemsOutput{}, nil
		},
	}
	repo := NewTransactionDynamoRepository(fake, TableNames{Payments: "payments_t", Plans: "plans_t"})

	got, err := repo.RegisterPlanPayment(context.Background(), p, interfaces.PlanWrite{Plan: plan, ExpectedVersion: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Version != 4 {
		t.Fatalf("expected plan version 4, got %d", got.Version)
	}
}

func TestTransactionRepository_RefundPlanPayment(t *testing.T) {
	at := time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)
	plan := samplePlan()

	t.Run("status update and plan put", func(t *testing.T) {
		fake := &fakeDynamo{
			transact: func(in *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				upd := in.TransactItems[0].Update
				if upd == nil {
					t.Fatalf("expected payment update first")
				}
				from := upd.ExpressionAttributeValues[":from"].(*types.AttributeValueMemberS)
				to := upd.ExpressionAttributeValues[":to"].(*types.AttributeValueMemberS)
				if from.Value != "APLICADO" || to.Value != "DEVUELTO" {
					t.Fatalf("unexpected status change %s -> %s", from.Value, to.Value)
				}
				if in.TransactItems[1].Put == nil {
					t.Fatalf("expected plan put second")
				}
				return &dynamodb.TransactWriteItemsOutput{}, nil
			},
		}
		repo := NewTransactionDynamoRepository(fake, TableNames{})

		got, err := repo.RefundPlanPayment(context.Background(), "pay-1", entities.PaymentStatusAplicado, entities.PaymentStatusDevuelto, at,
			interfaces.PlanWrite{Plan: plan, ExpectedVersion: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Version != 4 {
			t.Fatalf("expected plan version 4, got %d", got.Version)
		}
	})

	t.Run("already refunded", func(t *testing.T) {
		fake := &fakeDynamo{
			transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				return nil, conditionCancelled("ConditionalCheckFailed", "None")
			},
		}
		repo := NewTransactionDynamoRepository(fake, TableNames{})

		_, err := repo.RefundPlanPayment(context.Background(), "pay-1", entities.PaymentStatusAplicado, entities.PaymentStatusDevuelto, at,
			interfaces.PlanWrite{Plan: plan, ExpectedVersion: 3})
		if !errors.Is(err, interfaces.ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
	})
}

func TestTransactionRepository_Reschedule(t *testing.T) {
	at := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	original := sampleAppointment("apt-1", at)
	original.Status = entities.AppointmentStatusReprogramada
	replacement := sampleAppointment("apt-2", at.AddDate(0, 0, 2))
	replacement.RescheduledFromID = "apt-1"

	fake := &fakeDynamo{
		transact: func(in *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			if len(in.TransactItems) != 2 {
				t.Fatalf("expected 2 items, got %d", len(in.TransactItems))
			}
			if aws.ToString(in.TransactItems[0].Put.ConditionExpression) != versionCondition {
				t.Fatalf("expected versioned put for the original")
			}
			if aws.ToString(in.TransactItems[1].Put.ConditionExpression) != "attribute_not_exists(#id)" {
				t.Fatalf("expected create for the replacement")
			}
			return &dynamodb.TransactWriteItemsOutput{}, nil
		},
	}
	repo := NewTransactionDynamoRepository(fake, TableNames{})

	closed, created, err := repo.Reschedule(context.Background(), interfaces.AppointmentWrite{Appointment: original, ExpectedVersion: 1}, replacement)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if closed.Version != 2 || closed.Status != entities.AppointmentStatusReprogramada {
		t.Fatalf("unexpected closed appointment: %+v", closed)
	}
	if created.ID != "apt-2" || created.RescheduledFromID != "apt-1" {
		t.Fatalf("unexpected replacement: %+v", created)
	}
}
