package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/move-labels/internal/domain/model"
	"github.com/guttosm/move-labels/internal/repository"
)

type actorKey struct{}

// WithActor attaches the signed-in username to ctx so recorded events carry it.
func WithActor(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, actorKey{}, username)
}

// ActorFrom returns the username attached by WithActor.
func ActorFrom(ctx context.Context) string {
	name, _ := ctx.Value(actorKey{}).(string)
	return name
}

// ActivityRecorder stores product events. Recording never fails the caller.
type ActivityRecorder interface {
	Record(ctx context.Context, action, boxID string, details map[string]any)
}

// LoggingService stores request logs and product activity.
type LoggingService interface {
	ActivityRecorder

	// CreateLog stores a single request log entry.
	CreateLog(ctx context.Context, entry *model.LogEntry) error

	// CreateLogs stores request log entries in bulk.
	CreateLogs(ctx context.Context, entries []*model.LogEntry) error

	// QueryLogs retrieves request log entries matching opts.
	QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error)

	// CountLogs counts request log entries matching opts.
	CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error)

	// Activity lists the latest events of a box, or of all boxes when boxID is empty.
	Activity(ctx context.Context, boxID string, limit int) ([]model.ActivityLog, error)
}

// LoggingServiceImpl implements LoggingService.
type LoggingServiceImpl struct {
	repo     repository.LogsRepositoryInterface
	activity repository.ActivityRepositoryInterface
}

// NewLoggingService creates a logging service. Either repository may be nil,
// in which case its writes are dropped and its reads return nothing.
func NewLoggingService(repo repository.LogsRepositoryInterface, activity repository.ActivityRepositoryInterface) *LoggingServiceImpl {
	return &LoggingServiceImpl{
		repo:     repo,
		activity: activity,
	}
}

// Record stores an activity event. Blank actions are ignored and storage
// errors are only logged.
func (s *LoggingServiceImpl) Record(ctx context.Context, action, boxID string, details map[string]any) {
	action = strings.TrimSpace(action)
	if action == "" || s.activity == nil {
		return
	}
	if details == nil {
		details = map[string]any{}
	}

	entry := &model.ActivityLog{
		Action:   action,
		BoxID:    boxID,
		Username: ActorFrom(ctx),
		Details:  details,
	}
	if err := s.activity.Create(ctx, entry); err != nil {
		log.Warn().Err(err).Str("action", action).Msg("failed to record activity")
	}
}

// Activity lists recent events, newest first.
func (s *LoggingServiceImpl) Activity(ctx context.Context, boxID string, limit int) ([]model.ActivityLog, error) {
	if s.activity == nil {
		return []model.ActivityLog{}, nil
	}
	return s.activity.ListByBox(ctx, boxID, limit)
}

// CreateLog stores a single request log entry.
func (s *LoggingServiceImpl) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	if s.repo == nil {
		return nil
	}
	return s.repo.Create(ctx, modelToDocument(entry))
}

// CreateLogs stores request log entries in bulk.
func (s *LoggingServiceImpl) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	if len(entries) == 0 || s.repo == nil {
		return nil
	}

	docs := make([]*repository.LogEntryDocument, len(entries))
	for i, entry := range entries {
		docs[i] = modelToDocument(entry)
	}
	return s.repo.CreateMany(ctx, docs)
}

// QueryLogs retrieves request log entries matching opts.
func (s *LoggingServiceImpl) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	if s.repo == nil {
		return []model.LogEntry{}, nil
	}
	docs, err := s.repo.Query(ctx, repoQuery(opts))
	if err != nil {
		return nil, err
	}

	entries := make([]model.LogEntry, len(docs))
	for i, doc := range docs {
		entries[i] = documentToModel(doc)
	}
	return entries, nil
}

// CountLogs counts request log entries matching opts.
func (s *LoggingServiceImpl) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	if s.repo == nil {
		return 0, nil
	}
	return s.repo.Count(ctx, repoQuery(opts))
}

func repoQuery(opts model.LogQueryOptions) repository.LogQueryOptions {
	return repository.LogQueryOptions{
		RequestID: opts.RequestID,
		Level:     opts.Level,
		Method:    opts.Method,
		Path:      opts.Path,
		StartTime: opts.StartTime,
		EndTime:   opts.EndTime,
		Limit:     opts.Limit,
		Skip:      opts.Skip,
	}
}

func modelToDocument(entry *model.LogEntry) *repository.LogEntryDocument {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	return &repository.LogEntryDocument{
		ID:         entry.ID,
		Timestamp:  entry.Timestamp,
		Level:      entry.Level,
		Message:    entry.Message,
		RequestID:  entry.RequestID,
		Method:     entry.Method,
		Path:       entry.Path,
		StatusCode: entry.StatusCode,
		Duration:   entry.Duration,
		IP:         entry.IP,
		UserAgent:  entry.UserAgent,
		Error:      entry.Error,
		Username:   entry.Username,
		Fields:     entry.Fields,
	}
}

func documentToModel(doc *repository.LogEntryDocument) model.LogEntry {
	return model.LogEntry{
		ID:         doc.ID,
		Timestamp:  doc.Timestamp,
		Level:      doc.Level,
		Message:    doc.Message,
		RequestID:  doc.RequestID,
		Method:     doc.Method,
		Path:       doc.Path,
		StatusCode: doc.StatusCode,
		Duration:   doc.Duration,
		IP:         doc.IP,
		UserAgent:  doc.UserAgent,
		Error:      doc.Error,
		Username:   doc.Username,
		Fields:     doc.Fields,
	}
}
