// database/database.go
package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	ErrOrgNotFound   = errors.New("organization not found")
	ErrAdminNotFound = errors.New("admin not found")
	ErrNameTaken     = errors.New("organization name already taken")
)

const (
	orgsCollection   = "organizations"
	adminsCollection = "admins"
)

// Store owns the MongoDB client and database handle for the service. It is
// constructed once at startup and passed down explicitly; Close releases the
// connection on shutdown.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	clientOptions := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(20 * time.Second).
		SetServerSelectionTimeout(15 * time.Second).
		SetMaxPoolSize(50)

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create MongoDB client: %w", err)
	}

	pingCtx, cancelPing := context.WithTimeout(ctx, 10*time.Second)
	defer cancelPing()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Println("Successfully connected to MongoDB")

	return &Store{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

func (s *Store) Close(ctx context.Context) {
	closeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := s.client.Disconnect(closeCtx); err != nil {
		log.Printf("MongoDB disconnect warning: %v", err)
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// EnsureIndexes creates the unique index on organization names. Name
// uniqueness is enforced here, at the storage layer, so that concurrent
// creates cannot both pass an application-level existence check.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(orgsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create organizations name index: %w", err)
	}
	return nil
}
