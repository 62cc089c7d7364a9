// services/org_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bhavesh0907/organization-management-service-backend/database"
	"github.com/bhavesh0907/organization-management-service-backend/models"
	"github.com/bhavesh0907/organization-management-service-backend/utils"
)

// ErrNameMismatch is returned when the delete confirmation name does not
// match the organization's current name.
var ErrNameMismatch = errors.New("organization name mismatch")

// OrgSummary is the external view of an organization. AdminEmail is nil when
// the admin record is missing, a tolerated inconsistency.
type OrgSummary struct {
	ID               string  `json:"id"`
	OrganizationName string  `json:"organization_name"`
	CollectionName   string  `json:"collection_name"`
	AdminEmail       *string `json:"admin_email"`
}

// OrgService orchestrates the organization lifecycle: each organization owns
// exactly one admin account and one dedicated collection.
type OrgService struct {
	store Store
}

func NewOrgService(store Store) *OrgService {
	return &OrgService{store: store}
}

// Create provisions a new organization: the organization document, its admin
// account, and its dedicated (empty) collection. Name uniqueness is enforced
// by the storage layer's unique index; the insert surfaces ErrNameTaken on a
// duplicate.
func (s *OrgService) Create(ctx context.Context, organizationName, email, password string) (*OrgSummary, error) {
	collectionName := utils.CollectionNameForOrg(organizationName)

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// Both ids are generated up front so the two documents can
	// cross-reference each other.
	orgID := primitive.NewObjectID()
	adminID := primitive.NewObjectID()
	now := time.Now().UTC()

	org := &models.Organization{
		ID:             orgID,
		Name:           organizationName,
		CollectionName: collectionName,
		AdminID:        adminID,
		CreatedAt:      now,
	}
	admin := &models.Admin{
		ID:           adminID,
		Email:        email,
		PasswordHash: hash,
		OrgID:        orgID,
		CreatedAt:    now,
	}

	if err := s.store.InsertOrg(ctx, org); err != nil {
		return nil, err
	}
	if err := s.store.InsertAdmin(ctx, admin); err != nil {
		return nil, err
	}
	if err := s.store.EnsureCollection(ctx, collectionName); err != nil {
		return nil, err
	}

	return &OrgSummary{
		ID:               orgID.Hex(),
		OrganizationName: org.Name,
		CollectionName:   org.CollectionName,
		AdminEmail:       &admin.Email,
	}, nil
}

// GetByName returns the summary for the named organization. A missing admin
// record degrades to a nil admin_email rather than failing the read.
func (s *OrgService) GetByName(ctx context.Context, organizationName string) (*OrgSummary, error) {
	org, err := s.store.FindOrgByName(ctx, organizationName)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, org)
}

// RenameAndRotate renames the organization identified by orgID, migrates its
// dedicated collection to the new name, and rotates the admin credentials.
// Renaming to the current name is allowed: the name is untouched but the
// credentials still rotate.
func (s *OrgService) RenameAndRotate(ctx context.Context, orgID primitive.ObjectID, newName, newEmail, newPassword string) (*OrgSummary, error) {
	org, err := s.store.FindOrgByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	if newName != org.Name {
		_, err := s.store.FindOrgByName(ctx, newName)
		if err == nil {
			return nil, database.ErrNameTaken
		}
		if !errors.Is(err, database.ErrOrgNotFound) {
			return nil, err
		}
	}

	newCollection := utils.CollectionNameForOrg(newName)
	if err := s.store.EnsureCollection(ctx, newCollection); err != nil {
		return nil, err
	}

	// Migrate only on an actual collection change. The clone replaces the
	// target wholesale, so a retry after a partial failure cannot duplicate
	// documents; the old collection is dropped only after the copy.
	if newCollection != org.CollectionName {
		if err := s.store.CloneCollection(ctx, org.CollectionName, newCollection); err != nil {
			return nil, err
		}
		if err := s.store.DropCollection(ctx, org.CollectionName); err != nil {
			return nil, err
		}
	}

	if err := s.store.RenameOrg(ctx, orgID, newName, newCollection); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	if err := s.store.UpdateAdminCredentialsByOrg(ctx, orgID, newEmail, hash); err != nil {
		return nil, err
	}

	summary := &OrgSummary{
		ID:               orgID.Hex(),
		OrganizationName: newName,
		CollectionName:   newCollection,
	}
	if admin, err := s.store.FindAdminByOrg(ctx, orgID); err == nil {
		summary.AdminEmail = &admin.Email
	} else if !errors.Is(err, database.ErrAdminNotFound) {
		return nil, err
	}
	return summary, nil
}

// Delete destroys the organization, its admins, and its dedicated collection.
// The caller must confirm the current organization name; a mismatch aborts
// before anything is touched. Destructive and immediate, no undo.
func (s *OrgService) Delete(ctx context.Context, orgID primitive.ObjectID, confirmName string) error {
	org, err := s.store.FindOrgByID(ctx, orgID)
	if err != nil {
		return err
	}
	if org.Name != confirmName {
		return ErrNameMismatch
	}

	if err := s.store.DropCollection(ctx, org.CollectionName); err != nil {
		return err
	}
	if err := s.store.DeleteAdminsByOrg(ctx, orgID); err != nil {
		return err
	}
	return s.store.DeleteOrg(ctx, orgID)
}

func (s *OrgService) summarize(ctx context.Context, org *models.Organization) (*OrgSummary, error) {
	summary := &OrgSummary{
		ID:               org.ID.Hex(),
		OrganizationName: org.Name,
		CollectionName:   org.CollectionName,
	}
	admin, err := s.store.FindAdminByID(ctx, org.AdminID)
	if err == nil {
		summary.AdminEmail = &admin.Email
	} else if !errors.Is(err, database.ErrAdminNotFound) {
		return nil, err
	}
	return summary, nil
}
