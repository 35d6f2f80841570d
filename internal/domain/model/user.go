package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account allowed to manage boxes and print labels.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Active       bool               `bson:"active" json:"active"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// SessionUser is the identity carried by a session.
type SessionUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
