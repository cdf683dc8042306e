package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore keeps one document per key: {key, value, updated_at}.
type MongoStore struct {
	Collection *mongo.Collection
	Now        func() time.Time

	client *mongo.Client // owned when created by Open
}

// NewMongoStore creates a store on collection.
func NewMongoStore(collection *mongo.Collection) *MongoStore {
	return &MongoStore{Collection: collection, Now: time.Now}
}

// Setup ensures the unique key index exists.
func (s *MongoStore) Setup(ctx context.Context) error {
	if s.Collection == nil {
		return fmt.Errorf("mongo store requires Collection")
	}
	_, err := s.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *MongoStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.Collection == nil {
		return "", false, fmt.Errorf("mongo store requires Collection")
	}
	var doc struct {
		Value *string `bson:"value"`
	}
	err := s.Collection.FindOne(ctx, bson.M{"key": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if doc.Value == nil {
		return "", false, fmt.Errorf("mongo document for %q has no string value", key)
	}
	return *doc.Value, true, nil
}

func (s *MongoStore) Set(ctx context.Context, key, value string) error {
	if s.Collection == nil {
		return fmt.Errorf("mongo store requires Collection")
	}
	_, err := s.Collection.UpdateOne(ctx,
		bson.M{"key": key},
		s.updateDocument(value),
		options.Update().SetUpsert(true),
	)
	return err
}

func (s *MongoStore) updateDocument(value string) bson.M {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return bson.M{"$set": bson.M{
		"value":      value,
		"updated_at": now().UTC(),
	}}
}

func (s *MongoStore) Description() string {
	if s.Collection == nil {
		return "MongoStore"
	}
	return fmt.Sprintf("MongoStore(%s)", s.Collection.Name())
}

func (s *MongoStore) Close() error {
	if s.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
