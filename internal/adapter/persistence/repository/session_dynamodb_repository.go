package repository

import (
	"context"

	"clinica_fisio/internal/domain/entities"
	"clinica_fisio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSessionsTableName = "sessions"

type sessionItem struct {
	PlanID       string   `dynamodbav:"plan_id"`
	Number       int      `dynamodbav:"number"`
	ID           string   `dynamodbav:"id"`
	Date         string   `dynamodbav:"date"`
	PainScale    *int     `dynamodbav:"pain_scale,omitempty"`
	WeightKg     string   `dynamodbav:"weight_kg,omitempty"`
	HeightCm     string   `dynamodbav:"height_cm,omitempty"`
	Observations string   `dynamodbav:"observations,omitempty"`
	AttendedByID string   `dynamodbav:"attended_by_id,omitempty"`
	TechniqueIDs []string `dynamodbav:"technique_ids"`
	CreatedAt    string   `dynamodbav:"created_at"`
}

// SessionDynamoRepository persists Session entities in DynamoDB.
//
// Table requirements:
//   - PK: plan_id (string)
//   - SK: number (number)
//
// The composite key makes a session number unique within its plan. Sessions
// are written by TransactionDynamoRepository.RecordSession.

type SessionDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb DynamoDBAPI, tableName string) *SessionDynamoRepository {
	return &SessionDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultSessionsTableName),
	}
}

// ListByPlanID returns the sessions of a plan in ascending number order.
func (r *SessionDynamoRepository) ListByPlanID(ctx context.Context, planID string) ([]entities.Session, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("plan_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: planID},
		},
		ScanIndexForward: aws.Bool(true),
		ConsistentRead:   aws.Bool(true),
	}

	items := make([]entities.Session, 0)
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it sessionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromSessionItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// sessionPut creates a session; the condition fails when its number is
// already taken within the plan.
func sessionPut(table string, s entities.Session) (*types.Put, error) {
	av, err := attributevalue.MarshalMap(toSessionItem(s))
	if err != nil {
		return nil, err
	}
	return &types.Put{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#plan_id) AND attribute_not_exists(#number)"),
		ExpressionAttributeNames: map[string]string{
			"#plan_id": "plan_id",
			"#number":  "number",
		},
	}, nil
}

func toSessionItem(s entities.Session) sessionItem {
	return sessionItem{
		PlanID:       s.PlanID,
		Number:       s.Number,
		ID:           s.ID,
		Date:         formatTime(s.Date),
		PainScale:    s.PainScale,
		WeightKg:     decimalPtrToString(s.WeightKg),
		HeightCm:     decimalPtrToString(s.HeightCm),
		Observations: s.Observations,
		AttendedByID: s.AttendedByID,
		TechniqueIDs: s.TechniqueIDs,
		CreatedAt:    formatTime(s.CreatedAt),
	}
}

func fromSessionItem(it sessionItem) entities.Session {
	return entities.Session{
		ID:           it.ID,
		PlanID:       it.PlanID,
		Number:       it.Number,
		Date:         parseTime(it.Date),
		PainScale:    it.PainScale,
		WeightKg:     parseDecimalPtr(it.WeightKg),
		HeightCm:     parseDecimalPtr(it.HeightCm),
		Observations: it.Observations,
		AttendedByID: it.AttendedByID,
		TechniqueIDs: it.TechniqueIDs,
		CreatedAt:    parseTime(it.CreatedAt),
	}
}
