// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model and carry the
// request-level validation rules.
package dto

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/guttosm/move-labels/internal/codes"
	"github.com/guttosm/move-labels/internal/domain/model"
	"github.com/guttosm/move-labels/internal/label"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// LooseString accepts a JSON string or number. Clients send estimated
// values both ways.
type LooseString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *LooseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = LooseString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = LooseString(n.String())
	return nil
}

// CreateBoxRequest is the body of POST /boxes. Empty fields take server defaults.
//
// @Description Request to create a box
type CreateBoxRequest struct {
	House          string      `json:"house" example:"House"`
	Floor          string      `json:"floor" example:"Main"`
	Room           string      `json:"room" example:"Kitchen"`
	Zone           string      `json:"zone" example:"Upper cabinets"`
	RoomCode       string      `json:"roomCode" example:"KIT"`
	Category       string      `json:"category"`
	Priority       string      `json:"priority" example:"medium"`
	Fragile        bool        `json:"fragile"`
	Status         string      `json:"status" example:"draft"`
	Notes          string      `json:"notes"`
	Condition      string      `json:"condition" example:"ok"`
	DamageNotes    string      `json:"damageNotes"`
	EstimatedValue LooseString `json:"estimatedValue" swaggertype:"string" example:"120"`
	StorageArea    string      `json:"storageArea"`
	StorageShelf   string      `json:"storageShelf"`
} // @name CreateBoxRequest

// Validate checks the enumerated fields when they are set.
func (r *CreateBoxRequest) Validate() error {
	if err := validatePriority(r.Priority); err != nil {
		return err
	}
	if err := validateStatus(r.Status); err != nil {
		return err
	}
	return validateRoomCode(r.RoomCode)
}

// QuickBoxRequest is the body of POST /boxes/quick.
//
// @Description Request to create a box from just a room name
type QuickBoxRequest struct {
	Room    string `json:"room" example:"Kitchen"`
	Fragile bool   `json:"fragile"`
} // @name QuickBoxRequest

// UpdateBoxRequest is the body of PATCH /boxes/:id. Nil fields are left unchanged.
//
// @Description Partial box update
type UpdateBoxRequest struct {
	House          *string      `json:"house"`
	Floor          *string      `json:"floor"`
	Room           *string      `json:"room"`
	Zone           *string      `json:"zone"`
	RoomCode       *string      `json:"roomCode"`
	Category       *string      `json:"category"`
	Priority       *string      `json:"priority"`
	Fragile        *bool        `json:"fragile"`
	Status         *string      `json:"status"`
	Notes          *string      `json:"notes"`
	Condition      *string      `json:"condition"`
	DamageNotes    *string      `json:"damageNotes"`
	EstimatedValue *LooseString `json:"estimatedValue" swaggertype:"string"`
	StorageArea    *string      `json:"storageArea"`
	StorageShelf   *string      `json:"storageShelf"`
} // @name UpdateBoxRequest

// Validate checks the enumerated fields that are present.
func (r *UpdateBoxRequest) Validate() error {
	if r.Priority != nil {
		if err := validatePriority(*r.Priority); err != nil {
			return err
		}
	}
	if r.Status != nil {
		if *r.Status == "" {
			return invalid("status", "must not be empty")
		}
		if err := validateStatus(*r.Status); err != nil {
			return err
		}
	}
	if r.RoomCode != nil {
		if strings.TrimSpace(*r.RoomCode) == "" {
			return invalid("roomCode", "must not be empty")
		}
		return validateRoomCode(*r.RoomCode)
	}
	return nil
}

// AddItemsRequest is the body of POST /boxes/:id/items. BulkInput, when
// set, wins over the single item fields.
//
// @Description Add one item or a bulk list to a box
type AddItemsRequest struct {
	BulkInput string   `json:"bulkInput" example:"plates x6, mugs (4)"`
	Name      string   `json:"name" example:"Kettle"`
	Qty       int      `json:"qty" example:"1"`
	Packed    bool     `json:"packed"`
	Tags      []string `json:"tags"`
} // @name AddItemsRequest

// Validate requires either a bulk list or an item name.
func (r *AddItemsRequest) Validate() error {
	if strings.TrimSpace(r.BulkInput) == "" && strings.TrimSpace(r.Name) == "" {
		return invalid("name", "name or bulkInput is required")
	}
	if r.Qty < 0 {
		return invalid("qty", "must not be negative")
	}
	return nil
}

// UpdateItemRequest is the body of PATCH /boxes/:id/items.
//
// @Description Replace an item of a box
type UpdateItemRequest struct {
	ID     string   `json:"id" binding:"required"`
	Name   string   `json:"name"`
	Qty    int      `json:"qty"`
	Packed bool     `json:"packed"`
	Tags   []string `json:"tags"`
} // @name UpdateItemRequest

// Validate checks the item id.
func (r *UpdateItemRequest) Validate() error {
	if r.ID == "" {
		return invalid("id", "is required")
	}
	if r.Qty < 0 {
		return invalid("qty", "must not be negative")
	}
	return nil
}

// DeleteItemRequest is the body of DELETE /boxes/:id/items.
type DeleteItemRequest struct {
	ID string `json:"id" binding:"required"`
} // @name DeleteItemRequest

// ScanRequest is the body of POST /scan: a short code or a scanned QR URL.
//
// @Description Scanned QR payload or typed short code
type ScanRequest struct {
	Value string `json:"value" example:"https://move.example.com/box/BX-000042"`
} // @name ScanRequest

// LabelSizeRequest is the body of POST /label-sizes.
//
// @Description Custom label size
type LabelSizeRequest struct {
	Name           string   `json:"name" example:"Shelf tag"`
	WidthMm        float64  `json:"widthMm" example:"60"`
	HeightMm       float64  `json:"heightMm" example:"20"`
	Orientation    string   `json:"orientation" example:"portrait"`
	MarginTopMm    float64  `json:"marginTopMm"`
	MarginRightMm  float64  `json:"marginRightMm"`
	MarginBottomMm float64  `json:"marginBottomMm"`
	MarginLeftMm   float64  `json:"marginLeftMm"`
	SafePaddingMm  float64  `json:"safePaddingMm"`
	CornerRadiusMm *float64 `json:"cornerRadiusMm"`
} // @name LabelSizeRequest

// Geometry converts the request into a custom (non-preset) size. A missing
// orientation means portrait.
func (r *LabelSizeRequest) Geometry() label.LabelSize {
	return label.LabelSize{
		ID:             label.Slug(r.Name),
		Name:           strings.TrimSpace(r.Name),
		WidthMm:        r.WidthMm,
		HeightMm:       r.HeightMm,
		Orientation:    label.ParseOrientation(r.Orientation),
		MarginTopMm:    r.MarginTopMm,
		MarginRightMm:  r.MarginRightMm,
		MarginBottomMm: r.MarginBottomMm,
		MarginLeftMm:   r.MarginLeftMm,
		SafePaddingMm:  r.SafePaddingMm,
		CornerRadiusMm: r.CornerRadiusMm,
	}
}

// Validate checks the name and the dimensions.
func (r *LabelSizeRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return invalid("name", "is required")
	}
	if err := r.Geometry().Validate(); err != nil {
		return invalid("widthMm", err.Error())
	}
	return nil
}

// PreviewRequest is the body of POST /labels/preview. Either LabelSizeID or
// an inline LabelSize is required.
//
// @Description Layout preview request
type PreviewRequest struct {
	LabelSizeID string            `json:"labelSizeId" example:"supvan-50x30"`
	LabelSize   *LabelSizeRequest `json:"labelSize"`
	Template    string            `json:"template" example:"fragile"`
	Data        PreviewData       `json:"data"`
} // @name PreviewRequest

// PreviewData is the box data a preview is computed for.
type PreviewData struct {
	RoomCode  string        `json:"roomCode" example:"KIT"`
	ShortCode string        `json:"shortCode" example:"BX-000042"`
	Room      string        `json:"room" example:"Kitchen"`
	Zone      string        `json:"zone"`
	Priority  string        `json:"priority" example:"high"`
	Fragile   bool          `json:"fragile"`
	Notes     string        `json:"notes"`
	QRURL     string        `json:"qrUrl"`
	Items     []PreviewItem `json:"items"`
} // @name PreviewData

// PreviewItem is an item of a preview.
type PreviewItem struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
} // @name PreviewItem

// Validate checks the size selector and the template.
func (r *PreviewRequest) Validate() error {
	if r.LabelSizeID == "" && r.LabelSize == nil {
		return invalid("labelSizeId", "labelSizeId or labelSize is required")
	}
	if r.LabelSize != nil {
		if err := r.LabelSize.Geometry().Validate(); err != nil {
			return invalid("labelSize", err.Error())
		}
	}
	return validateTemplate(r.Template)
}

// ExportRequest is the body of the POST export endpoints.
//
// @Description Label export request
type ExportRequest struct {
	BoxIDs      []string `json:"boxIds" example:"665f1c2e8b3e4a0012a1b2c3"`
	LabelSizeID string   `json:"labelSizeId" example:"supvan-50x30"`
	Template    string   `json:"template" example:"standard_inventory"`
	DPI         int      `json:"dpi" example:"300"`
	Provider    string   `json:"provider" example:"supvan"`
} // @name ExportRequest

// Validate checks the box list and the template. Label exports also need a
// size; CSV exports do not, so that is left to the caller.
func (r *ExportRequest) Validate() error {
	if len(r.BoxIDs) == 0 {
		return invalid("boxIds", "at least one box is required")
	}
	if r.DPI < 0 || r.DPI > label.MaxDPI {
		return invalid("dpi", "must be between 1 and 1200")
	}
	return validateTemplate(r.Template)
}

// BundleRequest is the body of POST /bundles.
//
// @Description Create or replace a bundle by name
type BundleRequest struct {
	Name  string        `json:"name" example:"Bathroom basics"`
	Items []PreviewItem `json:"items"`
} // @name BundleRequest

// Validate checks the bundle name.
func (r *BundleRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return invalid("name", "is required")
	}
	return nil
}

// EventRequest is the body of POST /events.
//
// @Description Client analytics event
type EventRequest struct {
	Action  string         `json:"action" example:"label_printed"`
	BoxID   string         `json:"boxId"`
	Details map[string]any `json:"details"`
} // @name EventRequest

func validatePriority(p string) error {
	if p == "" || model.Priority(p).Valid() {
		return nil
	}
	return invalid("priority", "must be one of low, medium, high")
}

func validateStatus(s string) error {
	if s == "" || model.BoxStatus(s).Valid() {
		return nil
	}
	return invalid("status", "must be one of draft, packed, in_transit, delivered, unpacked")
}

func validateRoomCode(code string) error {
	if utf8.RuneCountInString(strings.TrimSpace(code)) > codes.MaxRoomCodeLen {
		return invalid("roomCode", "must be at most 5 characters")
	}
	return nil
}

func validateTemplate(t string) error {
	if _, ok := label.ParseTemplate(t); !ok {
		return invalid("template", "unknown template")
	}
	return nil
}
