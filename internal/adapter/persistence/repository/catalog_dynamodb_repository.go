package repository

import (
	"context"
	"sort"

	"drywall_estimator/internal/domain/entities"
	"drywall_estimator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProductsTableName   = "products"
	defaultCategoriesTableName = "categories"
)

type productItem struct {
	ID         string `dynamodbav:"id"`
	Name       string `dynamodbav:"name"`
	Unit       string `dynamodbav:"unit"`
	SubUnit    string `dynamodbav:"sub_unit,omitempty"`
	Price      string `dynamodbav:"price"`
	CategoryID string `dynamodbav:"category_id"`
	ImageURL   string `dynamodbav:"image_url,omitempty"`
	Position   int    `dynamodbav:"position"`
}

type categoryItem struct {
	ID       string `dynamodbav:"id"`
	Name     string `dynamodbav:"name"`
	Position int    `dynamodbav:"position"`
}

// CatalogDynamoRepository reads the catalog maintained by the store dashboard.
//
// Table requirements:
//   - products:   PK id (string), price as decimal string, position (number)
//   - categories: PK id (string), position (number)
//
// Scans are unordered, so both lists are sorted by position then id.

type CatalogDynamoRepository struct {
	ddb             *dynamodb.Client
	productsTable   string
	categoriesTable string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:             ddb,
		productsTable:   getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
		categoriesTable: getenvDefault("CATEGORIES_TABLE", defaultCategoriesTableName),
	}
}

func (r *CatalogDynamoRepository) Snapshot(ctx context.Context) (entities.CatalogSnapshot, error) {
	var products []productItem
	if err := r.scanAll(ctx, r.productsTable, func(raw []map[string]types.AttributeValue) error {
		var page []productItem
		if err := attributevalue.UnmarshalListOfMaps(raw, &page); err != nil {
			return err
		}
		products = append(products, page...)
		return nil
	}); err != nil {
		return entities.CatalogSnapshot{}, err
	}

	var categories []categoryItem
	if err := r.scanAll(ctx, r.categoriesTable, func(raw []map[string]types.AttributeValue) error {
		var page []categoryItem
		if err := attributevalue.UnmarshalListOfMaps(raw, &page); err != nil {
			return err
		}
		categories = append(categories, page...)
		return nil
	}); err != nil {
		return entities.CatalogSnapshot{}, err
	}

	return toCatalogSnapshot(products, categories), nil
}

func (r *CatalogDynamoRepository) scanAll(ctx context.Context, table string, page func([]map[string]types.AttributeValue) error) error {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(table),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return err
		}
		if err := page(out.Items); err != nil {
			return err
		}
	}
	return nil
}

func toCatalogSnapshot(products []productItem, categories []categoryItem) entities.CatalogSnapshot {
	snap := entities.CatalogSnapshot{
		Products:   make([]entities.CatalogProduct, 0, len(products)),
		Categories: make([]entities.CatalogCategory, 0, len(categories)),
	}
	for _, it := range products {
		snap.Products = append(snap.Products, entities.CatalogProduct{
			ID:         it.ID,
			Name:       it.Name,
			Unit:       it.Unit,
			SubUnit:    it.SubUnit,
			Price:      decimalFromString(it.Price),
			CategoryID: it.CategoryID,
			ImageURL:   it.ImageURL,
			Position:   it.Position,
		})
	}
	for _, it := range categories {
		snap.Categories = append(snap.Categories, entities.CatalogCategory{ID: it.ID, Name: it.Name, Position: it.Position})
	}

	sort.SliceStable(snap.Products, func(i, j int) bool {
		a, b := snap.Products[i], snap.Products[j]
		if a.Position != b.Position {
			return a.Position < b.Position
		}
		return a.ID < b.ID
	})
	sort.SliceStable(snap.Categories, func(i, j int) bool {
		a, b := snap.Categories[i], snap.Categories[j]
		if a.Position != b.Position {
			return a.Position < b.Position
		}
		return a.ID < b.ID
	})
	return snap
}
