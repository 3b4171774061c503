package repository

import (
	"context"
	"time"

	"drywall_estimator/internal/domain/entities"
	"drywall_estimator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDraftInvoicesTableName = "draft_invoices"

type lineItem struct {
	ProductID   string  `dynamodbav:"product_id"`
	ProductName string  `dynamodbav:"product_name"`
	Quantity    float64 `dynamodbav:"quantity"`
	Unit        string  `dynamodbav:"unit"`
	UnitPrice   string  `dynamodbav:"unit_price"`
	TotalPrice  string  `dynamodbav:"total_price"`
	ImageURL    string  `dynamodbav:"image_url,omitempty"`
}

type draftInvoiceItem struct {
	ID            string     `dynamodbav:"id"`
	SessionID     string     `dynamodbav:"session_id"`
	InvoiceNumber string     `dynamodbav:"invoice_number"`
	CustomerID    string     `dynamodbav:"customer_id"`
	Items         []lineItem `dynamodbav:"items"`
	Subtotal      string     `dynamodbav:"subtotal"`
	Discount      string     `dynamodbav:"discount"`
	Additions     string     `dynamodbav:"additions"`
	Tax           string     `dynamodbav:"tax"`
	Total         string     `dynamodbav:"total"`
	Description   string     `dynamodbav:"description"`
	CreatedAt     string     `dynamodbav:"created_at"`
}

// DraftInvoiceDynamoRepository persists drafts for the invoice editor.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: session_id-index (PK: session_id)

type DraftInvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDraftInvoiceRepository = (*DraftInvoiceDynamoRepository)(nil)

func NewDraftInvoiceDynamoRepository(ddb *dynamodb.Client) *DraftInvoiceDynamoRepository {
	return &DraftInvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DRAFT_INVOICES_TABLE", defaultDraftInvoicesTableName),
	}
}

func (r *DraftInvoiceDynamoRepository) Create(ctx context.Context, d entities.DraftInvoice) (entities.DraftInvoice, error) {
	av, err := attributevalue.MarshalMap(toDraftInvoiceItem(d))
	if err != nil {
		return entities.DraftInvoice{}, err
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
		return entities.DraftInvoice{}, err
	}
	return d, nil
}

func (r *DraftInvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.DraftInvoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DraftInvoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.DraftInvoice{}, nil
	}

	var it draftInvoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DraftInvoice{}, err
	}
	return fromDraftInvoiceItem(it), nil
}

func toDraftInvoiceItem(d entities.DraftInvoice) draftInvoiceItem {
	items := make([]lineItem, 0, len(d.Items))
	for _, li := range d.Items {
		items = append(items, lineItem{
			ProductID:   li.ProductID,
			ProductName: li.ProductName,
			Quantity:    li.Quantity,
			Unit:        li.Unit,
			UnitPrice:   decimalToString(li.UnitPrice),
			TotalPrice:  decimalToString(li.TotalPrice),
			ImageURL:    li.ImageURL,
		})
	}
	return draftInvoiceItem{
		ID:            d.ID,
		SessionID:     d.SessionID,
		InvoiceNumber: d.InvoiceNumber,
		CustomerID:    d.CustomerID,
		Items:         items,
		Subtotal:      decimalToString(d.Subtotal),
		Discount:      decimalToString(d.Discount),
		Additions:     decimalToString(d.Additions),
		Tax:           decimalToString(d.Tax),
		Total:         decimalToString(d.Total),
		Description:   d.Description,
		CreatedAt:     d.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDraftInvoiceItem(it draftInvoiceItem) entities.DraftInvoice {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	items := make([]entities.InvoiceLineItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.InvoiceLineItem{
			ProductID:   li.ProductID,
			ProductName: li.ProductName,
			Quantity:    li.Quantity,
			Unit:        li.Unit,
			UnitPrice:   decimalFromString(li.UnitPrice),
			TotalPrice:  decimalFromString(li.TotalPrice),
			ImageURL:    li.ImageURL,
		})
	}
	return entities.DraftInvoice{
		ID:            it.ID,
		SessionID:     it.SessionID,
		InvoiceNumber: it.InvoiceNumber,
		CustomerID:    it.CustomerID,
		Items:         items,
		Subtotal:      decimalFromString(it.Subtotal),
		Discount:      decimalFromString(it.Discount),
		Additions:     decimalFromString(it.Additions),
		Tax:           decimalFromString(it.Tax),
		Total:         decimalFromString(it.Total),
		Description:   it.Description,
		CreatedAt:     createdAt,
	}
}
