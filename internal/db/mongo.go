package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection    = "users"
	auctionsCollection = "auctions"
)

// Store is the handle to the document database. Its lifecycle is owned by
// the process entry point and it is injected into each repository.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongo returns a connected Store and ensures the unique indexes the
// domain relies on (unique user email).
func NewMongo(ctx context.Context, uri, name string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	store := &Store{client: client, db: client.Database(name)}
	if err := store.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}
	return store, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.Users().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Users returns the users collection.
func (s *Store) Users() *mongo.Collection {
	return s.db.Collection(usersCollection)
}

// Auctions returns the auctions collection.
func (s *Store) Auctions() *mongo.Collection {
	return s.db.Collection(auctionsCollection)
}

// Close releases the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
