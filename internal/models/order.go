package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is a single purchase record. productCategory is stored as a list
// of strings even though the create payload carries a single category; the
// create path wraps the scalar in a one-element slice.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CustomerName    string             `bson:"customerName" json:"customerName" validate:"required"`
	ProductName     string             `bson:"productName" json:"productName" validate:"required"`
	ProductCategory []string           `bson:"productCategory" json:"productCategory" validate:"required,min=1"`
	Price           float64            `bson:"price" json:"price" validate:"required,min=1"`
	OrderDate       time.Time          `bson:"orderDate" json:"orderDate"`
	CreatedBy       string             `bson:"createdBy" json:"createdBy"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
