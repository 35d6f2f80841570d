package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLogQueryOptions_Filter(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	tests := []struct {
		name string
		opts LogQueryOptions
		want bson.M
	}{
		{name: "empty matches everything", opts: LogQueryOptions{}, want: bson.M{}},
		{
			name: "exact fields",
			opts: LogQueryOptions{RequestID: "req-1", Level: "error", Method: "POST"},
			want: bson.M{"request_id": "req-1", "level": "error", "method": "POST"},
		},
		{
			name: "path is an escaped case-insensitive substring",
			opts: LogQueryOptions{Path: "/exports/pdf?x=1"},
			want: bson.M{"path": primitive.Regex{Pattern: `/exports/pdf\?x=1`, Options: "i"}},
		},
		{
			name: "open-ended time range",
			opts: LogQueryOptions{StartTime: &from},
			want: bson.M{"timestamp": bson.M{"$gte": from}},
		},
		{
			name: "closed time range",
			opts: LogQueryOptions{StartTime: &from, EndTime: &to},
			want: bson.M{"timestamp": bson.M{"$gte": from, "$lte": to}},
		},
		{
			name: "paging does not filter",
			opts: LogQueryOptions{Limit: 10, Skip: 20},
			want: bson.M{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.filter())
		})
	}
}

func TestLogEntryDocument_Stamp(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	fresh := &LogEntryDocument{Level: "info"}
	fresh.stamp(now)
	assert.False(t, fresh.ID.IsZero())
	assert.Equal(t, now, fresh.Timestamp)

	id := primitive.NewObjectID()
	earlier := now.Add(-time.Hour)
	kept := &LogEntryDocument{ID: id, Timestamp: earlier}
	kept.stamp(now)
	assert.Equal(t, id, kept.ID)
	assert.Equal(t, earlier, kept.Timestamp)
}
