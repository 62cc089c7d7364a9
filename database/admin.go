// database/admin.go
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

func (s *Store) FindAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := s.db.Collection(adminsCollection).FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find admin by email: %w", err)
	}
	return &admin, nil
}

func (s *Store) FindAdminByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error) {
	var admin models.Admin
	err := s.db.Collection(adminsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find admin by id: %w", err)
	}
	return &admin, nil
}

func (s *Store) FindAdminByOrg(ctx context.Context, orgID primitive.ObjectID) (*models.Admin, error) {
	var admin models.Admin
	err := s.db.Collection(adminsCollection).FindOne(ctx, bson.M{"org_id": orgID}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find admin by org: %w", err)
	}
	return &admin, nil
}

func (s *Store) InsertAdmin(ctx context.Context, admin *models.Admin) error {
	_, err := s.db.Collection(adminsCollection).InsertOne(ctx, admin)
	if err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// UpdateAdminCredentialsByOrg rotates email and password hash for every admin
// of the organization. The model intends exactly one admin per org; updating
// by org_id keeps strays consistent rather than leaving them behind.
func (s *Store) UpdateAdminCredentialsByOrg(ctx context.Context, orgID primitive.ObjectID, email, passwordHash string) error {
	_, err := s.db.Collection(adminsCollection).UpdateMany(
		ctx,
		bson.M{"org_id": orgID},
		bson.M{"$set": bson.M{
			"email":         email,
			"password_hash": passwordHash,
		}},
	)
	if err != nil {
		return fmt.Errorf("update admin credentials: %w", err)
	}
	return nil
}

func (s *Store) DeleteAdminsByOrg(ctx context.Context, orgID primitive.ObjectID) error {
	_, err := s.db.Collection(adminsCollection).DeleteMany(ctx, bson.M{"org_id": orgID})
	if err != nil {
		return fmt.Errorf("delete admins: %w", err)
	}
	return nil
}
