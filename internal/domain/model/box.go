// Package model defines the core domain entities for the move-labels service.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BoxStatus is a stage of the box lifecycle.
type BoxStatus string

const (
	StatusDraft     BoxStatus = "draft"
	StatusPacked    BoxStatus = "packed"
	StatusInTransit BoxStatus = "in_transit"
	StatusDelivered BoxStatus = "delivered"
	StatusUnpacked  BoxStatus = "unpacked"
)

// Valid reports whether s is a known status.
func (s BoxStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPacked, StatusInTransit, StatusDelivered, StatusUnpacked:
		return true
	}
	return false
}

// Priority tells the unpacking crew what to open first.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Condition defaults recorded for insurance exports.
const (
	ConditionOK      = "ok"
	ConditionDamaged = "damaged"
)

// Box is a physical moving box with its destination and inventory.
//
// @Description Moving box with destination, status and embedded items
type Box struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id" swaggertype:"string" example:"665f1c2e8b3e4a0012a1b2c3"`
	ShortCode      string             `bson:"short_code" json:"shortCode" example:"BX-000042"`
	House          string             `bson:"house" json:"house" example:"House"`
	Floor          string             `bson:"floor" json:"floor" example:"Main"`
	Room           string             `bson:"room" json:"room" example:"Kitchen"`
	Zone           string             `bson:"zone,omitempty" json:"zone,omitempty" example:"Upper cabinets"`
	RoomCode       string             `bson:"room_code" json:"roomCode" example:"KIT"`
	Category       string             `bson:"category,omitempty" json:"category,omitempty"`
	Priority       Priority           `bson:"priority" json:"priority" example:"medium"`
	Fragile        bool               `bson:"fragile" json:"fragile"`
	Status         BoxStatus          `bson:"status" json:"status" example:"draft"`
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Condition      string             `bson:"condition" json:"condition" example:"ok"`
	DamageNotes    string             `bson:"damage_notes,omitempty" json:"damageNotes,omitempty"`
	EstimatedValue string             `bson:"estimated_value,omitempty" json:"estimatedValue,omitempty" example:"120"`
	StorageArea    string             `bson:"storage_area,omitempty" json:"storageArea,omitempty"`
	StorageShelf   string             `bson:"storage_shelf,omitempty" json:"storageShelf,omitempty"`
	Items          []Item             `bson:"items" json:"items"`
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updatedAt"`
} // @name Box

// Item is one inventory line of a box.
//
// @Description Inventory entry embedded in a box
type Item struct {
	ID        string    `bson:"id" json:"id" example:"0b6f4f0e-3f0a-4a4e-9d55-0d1f5e7c1a2b"`
	Name      string    `bson:"name" json:"name" example:"Wine glasses"`
	Qty       int       `bson:"qty" json:"qty" example:"6"`
	Packed    bool      `bson:"packed" json:"packed"`
	Tags      []string  `bson:"tags" json:"tags"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
} // @name Item

// FindItem returns the index of the item with the given id, or -1.
func (b *Box) FindItem(id string) int {
	for i := range b.Items {
		if b.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// SearchHit is one search result: a box, or an item inside a box.
//
// @Description Search result pointing at a box or at an item inside it
type SearchHit struct {
	Type      string `json:"type" example:"item"`
	Item      string `json:"item,omitempty" example:"Wine glasses"`
	BoxID     string `json:"boxId" example:"665f1c2e8b3e4a0012a1b2c3"`
	ShortCode string `json:"shortCode" example:"BX-000042"`
	Room      string `json:"room" example:"Kitchen"`
	Zone      string `json:"zone,omitempty"`
} // @name SearchHit

// Search hit types.
const (
	HitBox  = "box"
	HitItem = "item"
)
