package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	mongooptions "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mlandau/wavetrace/pkg/errors"
)

// MongoStore is a MongoDB-backed store for durable deployments.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// MongoConfig configures the MongoDB connection.
type MongoConfig struct {
	// URI is the connection string, e.g. mongodb://localhost:27017.
	URI string

	// Database defaults to "wavetrace".
	Database string

	// Collection defaults to "diagrams".
	Collection string
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Database == "" {
		cfg.Database = "wavetrace"
	}
	if cfg.Collection == "" {
		cfg.Collection = "diagrams"
	}

	client, err := mongo.Connect(ctx, mongooptions.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "ping mongodb")
	}

	return &MongoStore{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Put inserts or replaces a diagram by ID.
func (s *MongoStore) Put(ctx context.Context, d *Diagram) error {
	opts := mongooptions.Replace().SetUpsert(true)
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": d.ID}, d, opts)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "store diagram %q", d.ID)
	}
	return nil
}

// Get retrieves a diagram by ID.
func (s *MongoStore) Get(ctx context.Context, id string) (*Diagram, error) {
	var d Diagram
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeNotFound, "diagram %q not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load diagram %q", id)
	}
	return &d, nil
}

// List returns all diagrams, newest first.
func (s *MongoStore) List(ctx context.Context) ([]*Diagram, error) {
	opts := mongooptions.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "list diagrams")
	}
	defer cur.Close(ctx)

	var out []*Diagram
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode diagrams")
	}
	return out, nil
}

// Delete removes a diagram by ID.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "delete diagram %q", id)
	}
	if res.DeletedCount == 0 {
		return errors.New(errors.ErrCodeNotFound, "diagram %q not found", id)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
