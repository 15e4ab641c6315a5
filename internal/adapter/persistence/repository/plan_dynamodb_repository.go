package repository

import (
	"context"
	"sort"

	"clinica_fisio/internal/domain/entities"
	"clinica_fisio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPlansTableName = "treatment_plans"
	plansPatientIDIndex   = "patient_id-index"
	plansStatusIndex      = "status-index"
)

type planItem struct {
	ID                 string   `dynamodbav:"id"`
	PatientID          string   `dynamodbav:"patient_id"`
	ConsultationID     string   `dynamodbav:"consultation_id,omitempty"`
	Diagnosis          string   `dynamodbav:"diagnosis,omitempty"`
	NumberOfSessions   int      `dynamodbav:"number_of_sessions"`
	SessionsCompleted  int      `dynamodbav:"sessions_completed"`
	CostPerSession     string   `dynamodbav:"cost_per_session"`
	TotalCost          string   `dynamodbav:"total_cost"`
	DiscountPercent    string   `dynamodbav:"discount_percent"`
	DiscountedCost     string   `dynamodbav:"discounted_cost"`
	PaymentModality    string   `dynamodbav:"payment_modality"`
	Status             string   `dynamodbav:"status"`
	TechniqueIDs       []string `dynamodbav:"technique_ids"`
	TotalPaid          string   `dynamodbav:"total_paid"`
	OutstandingBalance string   `dynamodbav:"outstanding_balance"`
	ConfirmedAt        string   `dynamodbav:"confirmed_at,omitempty"`
	Observations       string   `dynamodbav:"observations,omitempty"`
	SuggestedFrequency string   `dynamodbav:"suggested_frequency,omitempty"`
	CreatedAt          string   `dynamodbav:"created_at"`
	UpdatedAt          string   `dynamodbav:"updated_at"`
	Version            int      `dynamodbav:"version"`
}

// PlanDynamoRepository persists TreatmentPlan entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: patient_id-index (PK: patient_id)
//   - GSI: status-index (PK: status)
//
// Money is stored as decimal strings to avoid float rounding.

type PlanDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPlanRepository = (*PlanDynamoRepository)(nil)

func NewPlanDynamoRepository(ddb DynamoDBAPI, tableName string) *PlanDynamoRepository {
	return &PlanDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultPlansTableName),
	}
}

func (r *PlanDynamoRepository) Create(ctx context.Context, p entities.TreatmentPlan) (entities.TreatmentPlan, error) {
	av, err := attributevalue.MarshalMap(toPlanItem(p))
	if err != nil {
		return entities.TreatmentPlan{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.TreatmentPlan{}, conditionFailed(err)
	}
	return p, nil
}

func (r *PlanDynamoRepository) GetByID(ctx context.Context, id string) (entities.TreatmentPlan, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TreatmentPlan{}, err
	}
	if len(out.Item) == 0 {
		return entities.TreatmentPlan{}, nil
	}

	var it planItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TreatmentPlan{}, err
	}
	return fromPlanItem(it), nil
}

func (r *PlanDynamoRepository) ListByPatientID(ctx context.Context, patientID string) ([]entities.TreatmentPlan, error) {
	return r.query(ctx, plansPatientIDIndex, "patient_id = :pid", nil, map[string]types.AttributeValue{
		":pid": &types.AttributeValueMemberS{Value: patientID},
	})
}

func (r *PlanDynamoRepository) ListByStatus(ctx context.Context, status entities.PlanStatus) ([]entities.TreatmentPlan, error) {
	return r.query(ctx, plansStatusIndex, "#status = :status", map[string]string{"#status": "status"}, map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(status)},
	})
}

func (r *PlanDynamoRepository) Update(ctx context.Context, p entities.TreatmentPlan, expectedVersion int) (entities.TreatmentPlan, error) {
	put, stored, err := planVersionedPut(r.tableName, p, expectedVersion)
	if err != nil {
		return entities.TreatmentPlan{}, err
	}
	if _, err := r.ddb.PutItem(ctx, putItemInput(put)); err != nil {
		return entities.TreatmentPlan{}, conditionFailed(err)
	}
	return stored, nil
}

// planVersionedPut stores p as expectedVersion+1 while the stored plan is
// still at expectedVersion.
func planVersionedPut(table string, p entities.TreatmentPlan, expectedVersion int) (*types.Put, entities.TreatmentPlan, error) {
	p.Version = expectedVersion + 1
	av, err := attributevalue.MarshalMap(toPlanItem(p))
	if err != nil {
		return nil, entities.TreatmentPlan{}, err
	}
	return versionedPut(table, av, expectedVersion), p, nil
}

func (r *PlanDynamoRepository) query(ctx context.Context, index, keyExpr string, names map[string]string, values map[string]types.AttributeValue) ([]entities.TreatmentPlan, error) {
	in := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(index),
		KeyConditionExpression:    aws.String(keyExpr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}

	result := make([]entities.TreatmentPlan, 0)
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it planItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			result = append(result, fromPlanItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}

	// newest first
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func toPlanItem(p entities.TreatmentPlan) planItem {
	return planItem{
		ID:                 p.ID,
		PatientID:          p.PatientID,
		ConsultationID:     p.ConsultationID,
		Diagnosis:          p.Diagnosis,
		NumberOfSessions:   p.NumberOfSessions,
		SessionsCompleted:  p.SessionsCompleted,
		CostPerSession:     decimalToString(p.CostPerSession),
		TotalCost:          decimalToString(p.TotalCost),
		DiscountPercent:    decimalToString(p.DiscountPercent),
		DiscountedCost:     decimalToString(p.DiscountedCost),
		PaymentModality:    string(p.PaymentModality),
		Status:             string(p.Status),
		TechniqueIDs:       p.TechniqueIDs,
		TotalPaid:          decimalToString(p.TotalPaid),
		OutstandingBalance: decimalToString(p.OutstandingBalance),
		ConfirmedAt:        formatTimePtr(p.ConfirmedAt),
		Observations:       p.Observations,
		SuggestedFrequency: p.SuggestedFrequency,
		CreatedAt:          formatTime(p.CreatedAt),
		UpdatedAt:          formatTime(p.UpdatedAt),
		Version:            p.Version,
	}
}

func fromPlanItem(it planItem) entities.TreatmentPlan {
	return entities.TreatmentPlan{
		ID:                 it.ID,
		PatientID:          it.PatientID,
		ConsultationID:     it.ConsultationID,
		Diagnosis:          it.Diagnosis,
		NumberOfSessions:   it.NumberOfSessions,
		SessionsCompleted:  it.SessionsCompleted,
		CostPerSession:     parseDecimal(it.CostPerSession),
		TotalCost:          parseDecimal(it.TotalCost),
		DiscountPercent:    parseDecimal(it.DiscountPercent),
		DiscountedCost:     parseDecimal(it.DiscountedCost),
		PaymentModality:    entities.PaymentModality(it.PaymentModality),
		Status:             entities.PlanStatus(it.Status),
		TechniqueIDs:       it.TechniqueIDs,
		TotalPaid:          parseDecimal(it.TotalPaid),
		OutstandingBalance: parseDecimal(it.OutstandingBalance),
		ConfirmedAt:        parseTimePtr(it.ConfirmedAt),
		Observations:       it.Observations,
		SuggestedFrequency: it.SuggestedFrequency,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
		Version:            it.Version,
	}
}
