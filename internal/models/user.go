package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	Password  string             `bson:"password,omitempty" json:"-"`
	Role      string             `bson:"role" json:"role" validate:"required,oneof=admin customer"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// PublicUser is the user shape returned by the auth endpoints: never the hash.
type PublicUser struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u User) Public() PublicUser {
	return PublicUser{Email: u.Email, Role: u.Role}
}
