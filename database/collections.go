// database/collections.go
package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB server error code for "collection already exists".
const codeNamespaceExists = 48

// EnsureCollection creates the named collection if it does not exist.
// Idempotent by name.
func (s *Store) EnsureCollection(ctx context.Context, name string) error {
	err := s.db.CreateCollection(ctx, name)
	if err == nil {
		return nil
	}
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == codeNamespaceExists {
		return nil
	}
	return fmt.Errorf("create collection %q: %w", name, err)
}

// CloneCollection copies every document from src into dst with fresh
// identities, as a single server-side aggregation. $out replaces dst
// wholesale, so re-running after a partial failure cannot duplicate
// documents.
func (s *Store) CloneCollection(ctx context.Context, src, dst string) error {
	pipeline := mongo.Pipeline{
		{{Key: "$project", Value: bson.M{"_id": 0}}},
		{{Key: "$out", Value: dst}},
	}

	cursor, err := s.db.Collection(src).Aggregate(ctx, pipeline)
	if err != nil {
		return fmt.Errorf("clone collection %q to %q: %w", src, dst, err)
	}
	return cursor.Close(ctx)
}

// DropCollection drops the named collection. Dropping an absent collection
// is not an error.
func (s *Store) DropCollection(ctx context.Context, name string) error {
	if err := s.db.Collection(name).Drop(ctx); err != nil {
		return fmt.Errorf("drop collection %q: %w", name, err)
	}
	return nil
}
