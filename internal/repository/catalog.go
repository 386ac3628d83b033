package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/storefront-cart/internal/domain/model"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// productDocument is the stored form of a catalog product. Prices are kept
// as Decimal128 so no binary floating point is involved.
type productDocument struct {
	ID         int                   `bson:"_id"`
	CategoryID int                   `bson:"category_id"`
	Name       string                `bson:"name"`
	Price      primitive.Decimal128  `bson:"price"`
	PriceOffer *primitive.Decimal128 `bson:"price_offer,omitempty"`
	UpdatedAt  time.Time             `bson:"updated_at"`
}

func toProductDocument(p model.Product) (productDocument, error) {
	price, err := primitive.ParseDecimal128(p.Price.String())
	if err != nil {
		return productDocument{}, fmt.Errorf("product %d price: %w", p.ID, err)
	}
	doc := productDocument{
		ID:         p.ID,
		CategoryID: p.CategoryID,
		Name:       p.Name,
		Price:      price,
		UpdatedAt:  time.Now().UTC(),
	}
	if p.PriceOffer.Valid {
		offer, err := primitive.ParseDecimal128(p.PriceOffer.Decimal.String())
		if err != nil {
			return productDocument{}, fmt.Errorf("product %d offer price: %w", p.ID, err)
		}
		doc.PriceOffer = &offer
	}
	return doc, nil
}

func (d productDocument) toModel() (model.Product, error) {
	price, err := decimal.NewFromString(d.Price.String())
	if err != nil {
		return model.Product{}, fmt.Errorf("product %d price: %w", d.ID, err)
	}
	p := model.Product{
		ID:         d.ID,
		CategoryID: d.CategoryID,
		Name:       d.Name,
		Price:      price,
	}
	if d.PriceOffer != nil {
		offer, err := decimal.NewFromString(d.PriceOffer.String())
		if err != nil {
			return model.Product{}, fmt.Errorf("product %d offer price: %w", d.ID, err)
		}
		p.PriceOffer = model.NewOffer(offer)
	}
	return p, nil
}

// CatalogRepository reads and seeds products in MongoDB.
type CatalogRepository struct {
	collection *mongo.Collection
}

// NewCatalogRepository creates a new catalog repository.
func NewCatalogRepository(db *MongoDB) *CatalogRepository {
	return &CatalogRepository{
		collection: db.Products,
	}
}

// GetByID returns the product with id, or nil when it does not exist.
func (r *CatalogRepository) GetByID(ctx context.Context, id int) (*model.Product, error) {
	var doc productDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	product, err := doc.toModel()
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetByIDs returns the products found among ids. Missing ids are omitted.
func (r *CatalogRepository) GetByIDs(ctx context.Context, ids []int) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	return decodeProducts(ctx, cursor)
}

// List returns products ordered by id. A categoryID of 0 lists every
// category; a limit of 0 means no limit.
func (r *CatalogRepository) List(ctx context.Context, categoryID int, limit int) ([]model.Product, error) {
	filter := bson.M{}
	if categoryID > 0 {
		filter["category_id"] = categoryID
	}
	opts := options.Find().SetSort(bson.M{"_id": 1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	return decodeProducts(ctx, cursor)
}

// Upsert inserts or replaces products by id.
func (r *CatalogRepository) Upsert(ctx context.Context, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}

	writes := make([]mongo.WriteModel, 0, len(products))
	for _, p := range products {
		doc, err := toProductDocument(p)
		if err != nil {
			return err
		}
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": p.ID}).
			SetReplacement(doc).
			SetUpsert(true))
	}

	_, err := r.collection.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	return err
}

func decodeProducts(ctx context.Context, cursor *mongo.Cursor) ([]model.Product, error) {
	defer cursor.Close(ctx)

	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(docs))
	for _, doc := range docs {
		p, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}
