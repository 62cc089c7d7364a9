// utils/jwt.go
package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/bhavesh0907/organization-management-service-backend/config"
)

type Claims struct {
	AdminID        string `json:"admin_id"`
	OrganizationID string `json:"org_id"`
	Email          string `json:"email"`
	jwt.RegisteredClaims
}

func GenerateJWT(adminID string, organizationID string, email string) (string, error) {
	claims := Claims{
		AdminID:        adminID,
		OrganizationID: organizationID,
		Email:          email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(config.JWTExpiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTKey)
}

func ValidateJWT(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return config.JWTKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
