package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dangsayz/spreadpress/pkg/gallery"
)

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	// URI is the MongoDB connection string, e.g. "mongodb://localhost:27017".
	URI string

	// Database is the database name. Defaults to "spreadpress".
	Database string
}

const (
	defaultDatabase     = "spreadpress"
	galleriesCollection = "galleries"
)

// MongoStore is a MongoDB-backed gallery store for server deployments.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoStore connects to MongoDB and verifies the connection with a ping.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Database == "" {
		cfg.Database = defaultDatabase
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &MongoStore{
		client:     client,
		collection: client.Database(cfg.Database).Collection(galleriesCollection),
	}, nil
}

// Get retrieves a gallery by ID.
func (s *MongoStore) Get(ctx context.Context, id string) (gallery.Gallery, error) {
	var g gallery.Gallery
	err := s.collection.FindOne(ctx, bson.M{"id": id}).Decode(&g)
	if err == mongo.ErrNoDocuments {
		return gallery.Gallery{}, ErrNotFound
	}
	if err != nil {
		return gallery.Gallery{}, fmt.Errorf("find gallery %s: %w", id, err)
	}
	return g, nil
}

// Put stores a gallery, replacing any existing document with the same ID.
func (s *MongoStore) Put(ctx context.Context, g gallery.Gallery) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, bson.M{"id": g.ID}, g, opts); err != nil {
		return fmt.Errorf("store gallery %s: %w", g.ID, err)
	}
	return nil
}

// Delete removes a gallery.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.collection.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("delete gallery %s: %w", id, err)
	}
	return nil
}

// List returns all gallery IDs, sorted.
func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	opts := options.Find().
		SetProjection(bson.M{"id": 1}).
		SetSort(bson.M{"id": 1})

	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list galleries: %w", err)
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var doc struct {
			ID string `bson:"id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode gallery id: %w", err)
		}
		ids = append(ids, doc.ID)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate galleries: %w", err)
	}
	return ids, nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
