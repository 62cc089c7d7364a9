// database/organization.go
package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bhavesh0907/organization-management-service-backend/models"
)

func (s *Store) FindOrgByName(ctx context.Context, name string) (*models.Organization, error) {
	var org models.Organization
	err := s.db.Collection(orgsCollection).FindOne(ctx, bson.M{"name": name}).Decode(&org)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrOrgNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find organization by name: %w", err)
	}
	return &org, nil
}

func (s *Store) FindOrgByID(ctx context.Context, id primitive.ObjectID) (*models.Organization, error) {
	var org models.Organization
	err := s.db.Collection(orgsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&org)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrOrgNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find organization by id: %w", err)
	}
	return &org, nil
}

func (s *Store) InsertOrg(ctx context.Context, org *models.Organization) error {
	_, err := s.db.Collection(orgsCollection).InsertOne(ctx, org)
	if mongo.IsDuplicateKeyError(err) {
		return ErrNameTaken
	}
	if err != nil {
		return fmt.Errorf("insert organization: %w", err)
	}
	return nil
}

// RenameOrg updates name and collection_name in place, keeping the same id.
func (s *Store) RenameOrg(ctx context.Context, id primitive.ObjectID, name, collectionName string) error {
	res, err := s.db.Collection(orgsCollection).UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"name":            name,
			"collection_name": collectionName,
		}},
	)
	if mongo.IsDuplicateKeyError(err) {
		return ErrNameTaken
	}
	if err != nil {
		return fmt.Errorf("rename organization: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrOrgNotFound
	}
	return nil
}

func (s *Store) DeleteOrg(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.db.Collection(orgsCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete organization: %w", err)
	}
	return nil
}
