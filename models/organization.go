// models/organization.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Organization is a tenant: one admin account and one dedicated data
// collection, named via CollectionName. Name is unique across active
// organizations (enforced by a unique index).
type Organization struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	CollectionName string             `bson:"collection_name" json:"collection_name"`
	AdminID        primitive.ObjectID `bson:"admin_id" json:"admin_id"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}
