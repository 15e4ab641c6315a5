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
	defaultPaymentsTableName = "payments"
	paymentsPatientIDIndex   = "patient_id-index"
	paymentsPlanIDIndex      = "plan_id-index"
	paymentsDayIndex         = "day-index"
)

type paymentItem struct {
	ID                string `dynamodbav:"id"`
	PatientID         string `dynamodbav:"patient_id"`
	AppointmentID     string `dynamodbav:"appointment_id,omitempty"`
	ConsultationID    string `dynamodbav:"consultation_id,omitempty"`
	PlanID            string `dynamodbav:"plan_id,omitempty"`
	SessionID         string `dynamodbav:"session_id,omitempty"`
	Day               string `dynamodbav:"day"`
	Type              string `dynamodbav:"type"`
	Amount            string `dynamodbav:"amount"`
	Method            string `dynamodbav:"method"`
	Status            string `dynamodbav:"status"`
	Reference         string `dynamodbav:"reference,omitempty"`
	Concept           string `dynamodbav:"concept,omitempty"`
	Notes             string `dynamodbav:"notes,omitempty"`
	RegisteredByID    string `dynamodbav:"registered_by_id,omitempty"`
	ProviderPaymentID string `dynamodbav:"provider_payment_id,omitempty"`
	ProviderPayload   string `dynamodbav:"provider_payload_raw,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: patient_id-index (PK: patient_id)
//   - GSI: plan_id-index (PK: plan_id)
//   - GSI: day-index (PK: day)

type PaymentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoDBAPI, tableName string) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	put, err := paymentPut(r.tableName, p)
	if err != nil {
		return entities.Payment{}, err
	}
	if _, err := r.ddb.PutItem(ctx, putItemInput(put)); err != nil {
		return entities.Payment{}, conditionFailed(err)
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByPatientID(ctx context.Context, patientID string) ([]entities.Payment, error) {
	return r.query(ctx, paymentsPatientIDIndex, "patient_id = :pid", nil, map[string]types.AttributeValue{
		":pid": &types.AttributeValueMemberS{Value: patientID},
	})
}

func (r *PaymentDynamoRepository) ListByPlanID(ctx context.Context, planID string) ([]entities.Payment, error) {
	return r.query(ctx, paymentsPlanIDIndex, "plan_id = :pid", nil, map[string]types.AttributeValue{
		":pid": &types.AttributeValueMemberS{Value: planID},
	})
}

// ListByDateRange returns payments created in [from, to].
func (r *PaymentDynamoRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]entities.Payment, error) {
	days, err := daysBetween(from, to)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Payment, 0)
	for _, day := range days {
		items, err := r.query(ctx, paymentsDayIndex, "#day = :day", map[string]string{"#day": "day"}, map[string]types.AttributeValue{
			":day": &types.AttributeValueMemberS{Value: day},
		})
		if err != nil {
			return nil, err
		}
		for _, p := range items {
			if p.CreatedAt.Before(from) || p.CreatedAt.After(to) {
				continue
			}
			result = append(result, p)
		}
	}
	sortPayments(result)
	return result, nil
}

// UpdateStatus moves a payment from one status to another. It returns
// ErrVersionConflict when the stored status is no longer `from`, and a zero
// Payment when the id does not exist.
func (r *PaymentDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.PaymentStatus, updatedAt time.Time) (entities.Payment, error) {
	upd := paymentStatusUpdate(r.tableName, id, from, to, updatedAt)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 upd.TableName,
		Key:                       upd.Key,
		ConditionExpression:       upd.ConditionExpression,
		UpdateExpression:          upd.UpdateExpression,
		ExpressionAttributeValues: upd.ExpressionAttributeValues,
		ExpressionAttributeNames:  upd.ExpressionAttributeNames,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Payment{}, conditionFailed(err)
	}
	if len(out.Attributes) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func paymentPut(table string, p entities.Payment) (*types.Put, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
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

// paymentStatusUpdate moves a payment from one status to another, failing
// the condition when the stored status is no longer from.
func paymentStatusUpdate(table, id string, from, to entities.PaymentStatus, updatedAt time.Time) *types.Update {
	return &types.Update{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(updatedAt)},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
	}
}

func (r *PaymentDynamoRepository) query(ctx context.Context, index, keyExpr string, names map[string]string, values map[string]types.AttributeValue) ([]entities.Payment, error) {
	in := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(index),
		KeyConditionExpression:    aws.String(keyExpr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}

	result := make([]entities.Payment, 0)
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it paymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			result = append(result, fromPaymentItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
	sortPayments(result)
	return result, nil
}

func sortPayments(items []entities.Payment) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                p.ID,
		PatientID:         p.PatientID,
		AppointmentID:     p.AppointmentID,
		ConsultationID:    p.ConsultationID,
		PlanID:            p.PlanID,
		SessionID:         p.SessionID,
		Day:               dayKey(p.CreatedAt),
		Type:              string(p.Type),
		Amount:            decimalToString(p.Amount),
		Method:            string(p.Method),
		Status:            string(p.Status),
		Reference:         p.Reference,
		Concept:           p.Concept,
		Notes:             p.Notes,
		RegisteredByID:    p.RegisteredByID,
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderPayload:   string(p.ProviderPayloadRaw),
		CreatedAt:         formatTime(p.CreatedAt),
		UpdatedAt:         formatTime(p.UpdatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	p := entities.Payment{
		ID:                it.ID,
		PatientID:         it.PatientID,
		AppointmentID:     it.AppointmentID,
		ConsultationID:    it.ConsultationID,
		PlanID:            it.PlanID,
		SessionID:         it.SessionID,
		Type:              entities.PaymentType(it.Type),
		Amount:            parseDecimal(it.Amount),
		Method:            entities.PaymentMethod(it.Method),
		Status:            entities.PaymentStatus(it.Status),
		Reference:         it.Reference,
		Concept:           it.Concept,
		Notes:             it.Notes,
		RegisteredByID:    it.RegisteredByID,
		ProviderPaymentID: it.ProviderPaymentID,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
	if it.ProviderPayload != "" {
		p.ProviderPayloadRaw = []byte(it.ProviderPayload)
	}
	return p
}
