// Package repository provides the data access layer: the product catalog in
// MongoDB or memory, and the slot stores that hold the persisted cart.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/storefront-cart/internal/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductsCollection is the collection holding the catalog.
const ProductsCollection = "products"

// mongoSettings are the client settings NewMongoDB applies.
type mongoSettings struct {
	maxPoolSize            uint64
	minPoolSize            uint64
	maxConnIdleTime        time.Duration
	connectTimeout         time.Duration
	serverSelectionTimeout time.Duration
	socketTimeout          time.Duration
	compressors            []string
}

// The catalog is small and read-mostly, so the pool stays small.
func defaultMongoSettings() mongoSettings {
	return mongoSettings{
		maxPoolSize:            20,
		minPoolSize:            2,
		maxConnIdleTime:        10 * time.Minute,
		connectTimeout:         10 * time.Second,
		serverSelectionTimeout: 5 * time.Second,
		socketTimeout:          30 * time.Second,
		compressors:            []string{"zstd", "snappy", "zlib"},
	}
}

// MongoOption adjusts the client settings.
type MongoOption func(*mongoSettings)

// WithPoolSize bounds the connection pool.
func WithPoolSize(minSize, maxSize uint64) MongoOption {
	return func(s *mongoSettings) {
		s.minPoolSize = minSize
		s.maxPoolSize = maxSize
	}
}

// WithConnectTimeout bounds connecting and server selection.
func WithConnectTimeout(d time.Duration) MongoOption {
	return func(s *mongoSettings) {
		if d > 0 {
			s.connectTimeout = d
			s.serverSelectionTimeout = d
		}
	}
}

// WithoutCompression disables wire compression.
func WithoutCompression() MongoOption {
	return func(s *mongoSettings) { s.compressors = nil }
}

// MongoDB holds the client and the catalog collection.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
	Products *mongo.Collection
}

// NewMongoDB connects, pings the server and makes sure the catalog indexes
// exist. The client is disconnected again if any step fails.
func NewMongoDB(uri, databaseName string, opts ...MongoOption) (*MongoDB, error) {
	settings := defaultMongoSettings()
	for _, opt := range opts {
		opt(&settings)
	}

	ctx, cancel := context.WithTimeout(context.Background(), settings.connectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(settings.maxPoolSize).
		SetMinPoolSize(settings.minPoolSize).
		SetMaxConnIdleTime(settings.maxConnIdleTime).
		SetConnectTimeout(settings.connectTimeout).
		SetServerSelectionTimeout(settings.serverSelectionTimeout).
		SetSocketTimeout(settings.socketTimeout).
		SetRetryReads(true)
	if len(settings.compressors) > 0 {
		clientOptions.SetCompressors(settings.compressors)
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database(databaseName)
	m := &MongoDB{
		Client:   client,
		Database: db,
		Products: db.Collection(ProductsCollection),
	}
	if err := m.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("create catalog indexes: %w", err)
	}

	log := logger.Component("mongodb")
	log.Info().Str("database", databaseName).Uint64("max_pool", settings.maxPoolSize).Msg("Connected to MongoDB")
	return m, nil
}

// ensureIndexes indexes products by category, which sized pricing and
// catalog listings filter on.
func (m *MongoDB) ensureIndexes(ctx context.Context) error {
	_, err := m.Products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "category_id", Value: 1}},
	})
	return err
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck pings the primary with a short deadline.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
