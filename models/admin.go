// models/admin.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin is the single administrator account of an organization. Email is
// not required to be unique across organizations.
type Admin struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	OrgID        primitive.ObjectID `bson:"org_id" json:"org_id"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
