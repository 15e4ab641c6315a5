package repository

import (
	"context"
	"sort"

	"clinica_fisio/internal/domain/clinic"
	"clinica_fisio/internal/domain/entities"
	"clinica_fisio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTechniquesTableName = "techniques"
	// DynamoDB caps BatchGetItem at 100 keys per request.
	batchGetLimit = 100
)

type techniqueItem struct {
	ID              string `dynamodbav:"id"`
	Code            string `dynamodbav:"code"`
	Name            string `dynamodbav:"name"`
	Description     string `dynamodbav:"description,omitempty"`
	Price           string `dynamodbav:"price"`
	DurationMinutes int    `dynamodbav:"duration_minutes,omitempty"`
	Active          bool   `dynamodbav:"active"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// TechniqueDynamoRepository reads the technique catalog from DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type TechniqueDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ITechniqueRepository = (*TechniqueDynamoRepository)(nil)

func NewTechniqueDynamoRepository(ddb DynamoDBAPI, tableName string) *TechniqueDynamoRepository {
	return &TechniqueDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultTechniquesTableName),
	}
}

func (r *TechniqueDynamoRepository) GetByID(ctx context.Context, id string) (entities.Technique, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Technique{}, err
	}
	if len(out.Item) == 0 {
		return entities.Technique{}, nil
	}

	var it techniqueItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Technique{}, err
	}
	return fromTechniqueItem(it), nil
}

// GetByIDs returns the techniques found for ids. Missing ids are skipped.
func (r *TechniqueDynamoRepository) GetByIDs(ctx context.Context, ids []string) ([]entities.Technique, error) {
	unique := clinic.UniqueTechniqueIDs(ids)
	result := make([]entities.Technique, 0, len(unique))
	for start := 0; start < len(unique); start += batchGetLimit {
		end := start + batchGetLimit
		if end > len(unique) {
			end = len(unique)
		}

		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, id := range unique[start:end] {
			keys = append(keys, map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			})
		}

		request := map[string]types.KeysAndAttributes{
			r.tableName: {Keys: keys},
		}
		for len(request) > 0 {
			out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return nil, err
			}
			for _, raw := range out.Responses[r.tableName] {
				var it techniqueItem
				if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
					return nil, err
				}
				result = append(result, fromTechniqueItem(it))
			}
			request = out.UnprocessedKeys
		}
	}

	sortTechniques(result)
	return result, nil
}

func (r *TechniqueDynamoRepository) ListActive(ctx context.Context) ([]entities.Technique, error) {
	in := &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#active = :active"),
		ExpressionAttributeNames: map[string]string{
			"#active": "active",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberBOOL{Value: true},
		},
	}

	result := make([]entities.Technique, 0)
	for {
		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it techniqueItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			result = append(result, fromTechniqueItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}

	sortTechniques(result)
	return result, nil
}

func sortTechniques(items []entities.Technique) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})
}

func fromTechniqueItem(it techniqueItem) entities.Technique {
	return entities.Technique{
		ID:              it.ID,
		Code:            it.Code,
		Name:            it.Name,
		Description:     it.Description,
		Price:           parseDecimal(it.Price),
		DurationMinutes: it.DurationMinutes,
		Active:          it.Active,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
