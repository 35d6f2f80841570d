package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LogEntry is one HTTP request record written by the request logger.
// Extra context goes into Fields.
type LogEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
	Level      string             `bson:"level" json:"level"`
	Message    string             `bson:"message" json:"message"`
	RequestID  string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Method     string             `bson:"method,omitempty" json:"method,omitempty"`
	Path       string             `bson:"path,omitempty" json:"path,omitempty"`
	StatusCode int                `bson:"status_code,omitempty" json:"status_code,omitempty"`
	Duration   int64              `bson:"duration_ms,omitempty" json:"duration_ms,omitempty"`
	IP         string             `bson:"ip,omitempty" json:"ip,omitempty"`
	UserAgent  string             `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	Error      string             `bson:"error,omitempty" json:"error,omitempty"`
	Username   string             `bson:"username,omitempty" json:"username,omitempty"`
	Fields     map[string]any     `bson:"fields,omitempty" json:"fields,omitempty"`
}

// WithField adds a field to the entry, allocating Fields on first use.
func (e *LogEntry) WithField(key string, value any) *LogEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]any)
	}
	e.Fields[key] = value
	return e
}

// Activity actions recorded by the service itself. Clients may post others.
const (
	ActionBoxCreated    = "box_created"
	ActionBoxUpdated    = "box_updated"
	ActionBoxDeleted    = "box_deleted"
	ActionBoxScanned    = "box_scanned"
	ActionItemsAdded    = "items_added"
	ActionLabelsPrinted = "labels_printed"
	ActionLogin         = "login"
	ActionLogout        = "logout"
)

// ActivityLog is a product event such as a scan, a print or a status change.
//
// @Description Product activity event
type ActivityLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id" swaggertype:"string"`
	Action    string             `bson:"action" json:"action" example:"box_scanned"`
	BoxID     string             `bson:"box_id,omitempty" json:"boxId,omitempty"`
	Username  string             `bson:"username,omitempty" json:"username,omitempty"`
	Details   map[string]any     `bson:"details,omitempty" json:"details,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
} // @name ActivityLog

// LogQueryOptions filters request log queries.
type LogQueryOptions struct {
	RequestID string
	Level     string
	Method    string
	Path      string
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int
	Skip      int
}
