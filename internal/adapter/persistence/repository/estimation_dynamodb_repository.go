package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"drywall_estimator/internal/domain/entities"
	"drywall_estimator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstimationsTableName = "estimations"
	estimationsSessionIDIndex   = "session_id-index"
	batchWriteLimit             = 25
	maxUnprocessedRetries       = 5
)

type estimationItem struct {
	ID          string                    `dynamodbav:"id"`
	SessionID   string                    `dynamodbav:"session_id"`
	Description string                    `dynamodbav:"description"`
	Results     []entities.MaterialResult `dynamodbav:"results"`
	CreatedAt   string                    `dynamodbav:"created_at"`
}

// EstimationDynamoRepository persists session estimations in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: session_id-index (PK: session_id)
//
// Estimations are immutable, so there is no update path.

type EstimationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimationRepository = (*EstimationDynamoRepository)(nil)

func NewEstimationDynamoRepository(ddb *dynamodb.Client) *EstimationDynamoRepository {
	return &EstimationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATIONS_TABLE", defaultEstimationsTableName),
	}
}

func (r *EstimationDynamoRepository) Create(ctx context.Context, e entities.Estimation) (entities.Estimation, error) {
	av, err := attributevalue.MarshalMap(toEstimationItem(e))
	if err != nil {
		return entities.Estimation{}, err
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
		return entities.Estimation{}, err
	}
	return e, nil
}

// ListBySessionID returns the session's estimations in the order they were added.
func (r *EstimationDynamoRepository) ListBySessionID(ctx context.Context, sessionID string) ([]entities.Estimation, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(estimationsSessionIDIndex),
		KeyConditionExpression: aws.String("session_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: sessionID},
		},
	})

	items := make([]entities.Estimation, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it estimationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromEstimationItem(it))
		}
	}
	sortEstimations(items)
	return items, nil
}

// Delete removes one estimation if it belongs to the session.
func (r *EstimationDynamoRepository) Delete(ctx context.Context, sessionID, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("#session_id = :sid"),
		ExpressionAttributeNames: map[string]string{
			"#session_id": "session_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: sessionID},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *EstimationDynamoRepository) DeleteBySessionID(ctx context.Context, sessionID string) (int, error) {
	list, err := r.ListBySessionID(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	for start := 0; start < len(list); start += batchWriteLimit {
		end := min(start+batchWriteLimit, len(list))
		reqs := make([]types.WriteRequest, 0, end-start)
		for _, e := range list[start:end] {
			reqs = append(reqs, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: e.ID},
					},
				},
			})
		}
		if err := r.batchWrite(ctx, reqs); err != nil {
			return 0, err
		}
	}
	return len(list), nil
}

func (r *EstimationDynamoRepository) batchWrite(ctx context.Context, reqs []types.WriteRequest) error {
	pending := map[string][]types.WriteRequest{r.tableName: reqs}
	for attempt := 0; len(pending[r.tableName]) > 0; attempt++ {
		if attempt > maxUnprocessedRetries {
			return errors.New("batch delete left unprocessed items")
		}
		out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
		if err != nil {
			return err
		}
		pending = out.UnprocessedItems
		if len(pending[r.tableName]) > 0 {
			time.Sleep(time.Duration(attempt+1) * 50 * time.Millisecond)
		}
	}
	return nil
}

func sortEstimations(items []entities.Estimation) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		}
		return items[i].ID < items[j].ID
	})
}

func toEstimationItem(e entities.Estimation) estimationItem {
	return estimationItem{
		ID:          e.ID,
		SessionID:   e.SessionID,
		Description: e.Description,
		Results:     e.Results,
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEstimationItem(it estimationItem) entities.Estimation {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	results := it.Results
	if results == nil {
		results = []entities.MaterialResult{}
	}
	return entities.Estimation{
		ID:          it.ID,
		SessionID:   it.SessionID,
		Description: it.Description,
		Results:     results,
		CreatedAt:   createdAt,
	}
}
