package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Bundle is a named, reusable list of items that can be dropped into a box.
//
// @Description Reusable named item list
type Bundle struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id" swaggertype:"string"`
	Name      string             `bson:"name" json:"name" example:"Bathroom basics"`
	Items     []BundleItem       `bson:"items" json:"items"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
} // @name Bundle

// BundleItem is one entry of a bundle.
type BundleItem struct {
	Name string `bson:"name" json:"name" example:"Towels"`
	Qty  int    `bson:"qty" json:"qty" example:"4"`
} // @name BundleItem
