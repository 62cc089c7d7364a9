// services/store.go
package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bhavesh0907/organization-management-service-backend/models"
)

// Store is the persistence surface the services need: the master
// organizations and admins collections, plus provisioning of the dynamically
// named per-organization collections. *database.Store implements it;
// database.MemStore implements it for tests.
type Store interface {
	FindOrgByName(ctx context.Context, name string) (*models.Organization, error)
	FindOrgByID(ctx context.Context, id primitive.ObjectID) (*models.Organization, error)
	InsertOrg(ctx context.Context, org *models.Organization) error
	RenameOrg(ctx context.Context, id primitive.ObjectID, name, collectionName string) error
	DeleteOrg(ctx context.Context, id primitive.ObjectID) error

	FindAdminByEmail(ctx context.Context, email string) (*models.Admin, error)
	FindAdminByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error)
	FindAdminByOrg(ctx context.Context, orgID primitive.ObjectID) (*models.Admin, error)
	InsertAdmin(ctx context.Context, admin *models.Admin) error
	UpdateAdminCredentialsByOrg(ctx context.Context, orgID primitive.ObjectID, email, passwordHash string) error
	DeleteAdminsByOrg(ctx context.Context, orgID primitive.ObjectID) error

	EnsureCollection(ctx context.Context, name string) error
	CloneCollection(ctx context.Context, src, dst string) error
	DropCollection(ctx context.Context, name string) error
}
