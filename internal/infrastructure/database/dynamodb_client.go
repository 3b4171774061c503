package database

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ConnectDynamoDB creates a DynamoDB client using environment variables.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
//   - DYNAMODB_CREATE_TABLES (optional; "true" creates missing tables on startup)
func ConnectDynamoDB() *dynamodb.Client {
	ctx := context.Background()
	cfg, err := NewDynamoDBConfigFromEnv(ctx)
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}

	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint := os.Getenv("DYNAMODB_ENDPOINT"); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	if strings.EqualFold(os.Getenv("DYNAMODB_CREATE_TABLES"), "true") {
		if err := EnsureTables(ctx, client, TablesFromEnv()); err != nil {
			log.Fatalf("failed to create dynamodb tables: %v", err)
		}
	}
	return client
}

func NewDynamoDBConfigFromEnv(ctx context.Context) (aws.Config, error) {
	region := getenvDefault("AWS_REGION", "us-east-1")

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	)
}

// TableSpec describes a table keyed on "id", optionally with a session_id GSI.
type TableSpec struct {
	Name           string
	SessionIDIndex bool
}

// TablesFromEnv lists the tables the service reads and writes.
func TablesFromEnv() []TableSpec {
	return []TableSpec{
		{Name: getenvDefault("PRODUCTS_TABLE", "products")},
		{Name: getenvDefault("CATEGORIES_TABLE", "categories")},
		{Name: getenvDefault("ESTIMATIONS_TABLE", "estimations"), SessionIDIndex: true},
		{Name: getenvDefault("DRAFT_INVOICES_TABLE", "draft_invoices"), SessionIDIndex: true},
	}
}

// EnsureTables creates each missing table with on-demand billing.
func EnsureTables(ctx context.Context, client *dynamodb.Client, tables []TableSpec) error {
	for _, table := range tables {
		_, err := client.CreateTable(ctx, createTableInput(table))
		if err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			return err
		}
		log.Printf("[database] created table %s", table.Name)
	}
	return nil
}

func createTableInput(table TableSpec) *dynamodb.CreateTableInput {
	in := &dynamodb.CreateTableInput{
		TableName:   aws.String(table.Name),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
	}
	if table.SessionIDIndex {
		in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String("session_id"), AttributeType: types.ScalarAttributeTypeS,
		})
		in.GlobalSecondaryIndexes = []types.GlobalSecondaryIndex{{
			IndexName: aws.String("session_id-index"),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("session_id"), KeyType: types.KeyTypeHash},
			},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		}}
	}
	return in
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
