// services/auth_service.go
package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bhavesh0907/organization-management-service-backend/database"
	"github.com/bhavesh0907/organization-management-service-backend/utils"
)

var (
	// ErrInvalidCredentials is returned for both unknown email and wrong
	// password, so a caller cannot tell which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// Burned on the unknown-email path so both login failures cost a bcrypt
// comparison.
const dummyHash = "$2a$10$dummyhashfordummycomparison"

// AuthService verifies admin credentials and issues/parses bearer tokens.
type AuthService struct {
	store Store
}

func NewAuthService(store Store) *AuthService {
	return &AuthService{store: store}
}

// Login verifies the email/password pair and returns a signed token carrying
// the admin and organization identifiers.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	admin, err := s.store.FindAdminByEmail(ctx, email)
	if errors.Is(err, database.ErrAdminNotFound) {
		_ = utils.CheckPasswordHash(password, dummyHash)
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if !utils.CheckPasswordHash(password, admin.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(admin.ID.Hex(), admin.OrgID.Hex(), admin.Email)
	if err != nil {
		return "", err
	}
	return token, nil
}

// Authenticate decodes a token into the (admin, organization) identity pair.
// It does not re-verify either against storage: a token stays valid for its
// lifetime even if the organization was deleted meanwhile.
func (s *AuthService) Authenticate(tokenString string) (adminID, orgID primitive.ObjectID, err error) {
	claims, err := utils.ValidateJWT(tokenString)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, ErrInvalidToken
	}

	adminID, err = primitive.ObjectIDFromHex(claims.AdminID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, ErrInvalidToken
	}
	orgID, err = primitive.ObjectIDFromHex(claims.OrganizationID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, ErrInvalidToken
	}
	return adminID, orgID, nil
}
