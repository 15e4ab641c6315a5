package repository

import (
	"context"
	"sort"
	"time"

	"clinica_fisio/internal/domain/entities"
	"clinica_fisio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAppointmentsTableName = "appointments"
	appointmentsPatientIDIndex   = "patient_id-index"
	appointmentsDayIndex         = "day-index"
)

type appointmentItem struct {
	ID                string `dynamodbav:"id"`
	PatientID         string `dynamodbav:"patient_id"`
	PlanID            string `dynamodbav:"plan_id,omitempty"`
	Day               string `dynamodbav:"day"`
	ScheduledAt       string `dynamodbav:"scheduled_at"`
	Type              string `dynamodbav:"type"`
	Status            string `dynamodbav:"status"`
	SessionNumber     int    `dynamodbav:"session_number,omitempty"`
	Notes             string `dynamodbav:"notes,omitempty"`
	StatusReason      string `dynamodbav:"status_reason,omitempty"`
	AttendedByID      string `dynamodbav:"attended_by_id,omitempty"`
	RescheduledFromID string `dynamodbav:"rescheduled_from_id,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
	Version           int    `dynamodbav:"version"`
}

// AppointmentDynamoRepository persists Appointment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: patient_id-index (PK: patient_id)
//   - GSI: day-index (PK: day)
type AppointmentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IAppointmentRepository = (*AppointmentDynamoRepository)(nil)

func NewAppointmentDynamoRepository(ddb DynamoDBAPI, tableName string) *AppointmentDynamoRepository {
	return &AppointmentDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultAppointmentsTableName),
	}
}

func (r *AppointmentDynamoRepository) Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	put, err := appointmentPut(r.tableName, a)
	if err != nil {
		return entities.Appointment{}, err
	}
	if _, err := r.ddb.PutItem(ctx, putItemInput(put)); err != nil {
		return entities.Appointment{}, conditionFailed(err)
	}
	return a, nil
}

func (r *AppointmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Appointment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Appointment{}, nil
	}

	var it appointmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Appointment{}, err
	}
	return fromAppointmentItem(it), nil
}

func (r *AppointmentDynamoRepository) ListByPatientID(ctx context.Context, patientID string) ([]entities.Appointment, error) {
	items, err := r.query(ctx, appointmentsPatientIDIndex, "patient_id = :pid", map[string]types.AttributeValue{
		":pid": &types.AttributeValueMemberS{Value: patientID},
	})
	if err != nil {
		return nil, err
	}
	sortAppointments(items)
	return items, nil
}

// ListByDateRange returns appointments scheduled in [from, to], one index
// query per calendar day (UTC).
func (r *AppointmentDynamoRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]entities.Appointment, error) {
	days, err := daysBetween(from, to)
	if err != nil {
		return nil, err
	}

	var result []entities.Appointment
	for _, day := range days {
		items, err := r.query(ctx, appointmentsDayIndex, "#day = :day", map[string]types.AttributeValue{
			":day": &types.AttributeValueMemberS{Value: day},
		}, "#day", "day")
		if err != nil {
			return nil, err
		}
		// RFC3339Nano strings do not sort reliably, so bounds are checked here.
		for _, a := range items {
			if a.ScheduledAt.Before(from) || a.ScheduledAt.After(to) {
				continue
			}
			result = append(result, a)
		}
	}
	sortAppointments(result)
	return result, nil
}

func (r *AppointmentDynamoRepository) Update(ctx context.Context, a entities.Appointment, expectedVersion int) (entities.Appointment, error) {
	put, stored, err := appointmentVersionedPut(r.tableName, a, expectedVersion)
	if err != nil {
		return entities.Appointment{}, err
	}
	if _, err := r.ddb.PutItem(ctx, putItemInput(put)); err != nil {
		return entities.Appointment{}, conditionFailed(err)
	}
	return stored, nil
}

func appointmentPut(table string, a entities.Appointment) (*types.Put, error) {
	av, err := attributevalue.MarshalMap(toAppointmentItem(a))
	if err != nil {
		return nil, err
	}
	return &types.Put{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	}, nil
}

func appointmentVersionedPut(table string, a entities.Appointment, expectedVersion int) (*types.Put, entities.Appointment, error) {
	a.Version = expectedVersion + 1
	av, err := attributevalue.MarshalMap(toAppointmentItem(a))
	if err != nil {
		return nil, entities.Appointment{}, err
	}
	return versionedPut(table, av, expectedVersion), a, nil
}

func (r *AppointmentDynamoRepository) query(ctx context.Context, index, keyExpr string, values map[string]types.AttributeValue, names ...string) ([]entities.Appointment, error) {
	in := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(index),
		KeyConditionExpression:    aws.String(keyExpr),
		ExpressionAttributeValues: values,
	}
	if len(names) == 2 {
		in.ExpressionAttributeNames = map[string]string{names[0]: names[1]}
	}

	var result []entities.Appointment
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it appointmentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			result = append(result, fromAppointmentItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return result, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func sortAppointments(items []entities.Appointment) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ScheduledAt.Before(items[j].ScheduledAt)
	})
}

func toAppointmentItem(a entities.Appointment) appointmentItem {
	return appointmentItem{
		ID:                a.ID,
		PatientID:         a.PatientID,
		PlanID:            a.PlanID,
		Day:               dayKey(a.ScheduledAt),
		ScheduledAt:       formatTime(a.ScheduledAt),
		Type:              string(a.Type),
		Status:            string(a.Status),
		SessionNumber:     a.SessionNumber,
		Notes:             a.Notes,
		StatusReason:      a.StatusReason,
		AttendedByID:      a.AttendedByID,
		RescheduledFromID: a.RescheduledFromID,
		CreatedAt:         formatTime(a.CreatedAt),
		UpdatedAt:         formatTime(a.UpdatedAt),
		Version:           a.Version,
	}
}

func fromAppointmentItem(it appointmentItem) entities.Appointment {
	return entities.Appointment{
		ID:                it.ID,
		PatientID:         it.PatientID,
		PlanID:            it.PlanID,
		ScheduledAt:       parseTime(it.ScheduledAt),
		Type:              entities.AppointmentType(it.Type),
		Status:            entities.AppointmentStatus(it.Status),
		SessionNumber:     it.SessionNumber,
		Notes:             it.Notes,
		StatusReason:      it.StatusReason,
		AttendedByID:      it.AttendedByID,
		RescheduledFromID: it.RescheduledFromID,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
		Version:           it.Version,
	}
}
