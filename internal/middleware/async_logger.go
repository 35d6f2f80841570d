package middleware

import (
	"context"
	"maps"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/move-labels/internal/domain/model"
	"github.com/guttosm/move-labels/internal/logger"
	"github.com/guttosm/move-labels/internal/metrics"
	"github.com/guttosm/move-labels/internal/service"
)

// AsyncLoggerConfig holds configuration for the async logger.
type AsyncLoggerConfig struct {
	// BufferSize is the capacity of each queue. Entries beyond it are dropped.
	BufferSize int
	// BatchSize is the number of request logs written in one insert.
	BatchSize int
	// FlushInterval bounds how long a partial batch waits.
	FlushInterval time.Duration
	// WriteTimeout is the timeout of a single database write.
	WriteTimeout time.Duration
}

// DefaultAsyncLoggerConfig returns sensible defaults for the async logger.
func DefaultAsyncLoggerConfig() AsyncLoggerConfig {
	return AsyncLoggerConfig{
		BufferSize:    1000,
		BatchSize:     50,
		FlushInterval: 2 * time.Second,
		WriteTimeout:  5 * time.Second,
	}
}

// AsyncLoggerStats counts what went through the queues.
type AsyncLoggerStats struct {
	Enqueued int64
	Dropped  int64
	Written  int64
	Failed   int64
}

type activityEvent struct {
	actor   string
	action  string
	boxID   string
	details map[string]any
}

// AsyncLogger queues request logs and box activity off the request path.
// Request logs are inserted in batches; activity events are written one by
// one as they arrive. Nothing is enqueued once Stop has been called.
type AsyncLogger struct {
	sink          service.LoggingService
	entries       chan *model.LogEntry
	activity      chan activityEvent
	stopCh        chan struct{}
	stopOnce      sync.Once
	stopped       atomic.Bool
	wg            sync.WaitGroup
	batchSize     int
	flushInterval time.Duration
	writeTimeout  time.Duration

	enqueued atomic.Int64
	dropped  atomic.Int64
	written  atomic.Int64
	failed   atomic.Int64
}

// NewAsyncLogger starts the queue worker. It returns nil without a sink.
func NewAsyncLogger(sink service.LoggingService, cfg AsyncLoggerConfig) *AsyncLogger {
	if sink == nil {
		return nil
	}
	defaults := DefaultAsyncLoggerConfig()
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = defaults.BufferSize
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaults.BatchSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = defaults.FlushInterval
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaults.WriteTimeout
	}

	al := &AsyncLogger{
		sink:          sink,
		entries:       make(chan *model.LogEntry, cfg.BufferSize),
		activity:      make(chan activityEvent, cfg.BufferSize),
		stopCh:        make(chan struct{}),
		batchSize:     cfg.BatchSize,
		flushInterval: cfg.FlushInterval,
		writeTimeout:  cfg.WriteTimeout,
	}

	al.wg.Add(1)
	go al.run()

	return al
}

func (al *AsyncLogger) run() {
	defer al.wg.Done()

	ticker := time.NewTicker(al.flushInterval)
	defer ticker.Stop()

	batch := make([]*model.LogEntry, 0, al.batchSize)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		al.writeBatch(batch)
		batch = make([]*model.LogEntry, 0, al.batchSize)
	}

	for {
		select {
		case entry := <-al.entries:
			batch = append(batch, entry)
			if len(batch) >= al.batchSize {
				flush()
			}
		case event := <-al.activity:
			al.writeActivity(event)
		case <-ticker.C:
			flush()
		case <-al.stopCh:
			for {
				select {
				case entry := <-al.entries:
					batch = append(batch, entry)
					if len(batch) >= al.batchSize {
						flush()
					}
				case event := <-al.activity:
					al.writeActivity(event)
				default:
					flush()
					return
				}
			}
		}
	}
}

func (al *AsyncLogger) writeBatch(batch []*model.LogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), al.writeTimeout)
	defer cancel()

	n := int64(len(batch))
	if err := al.sink.CreateLogs(ctx, batch); err != nil {
		al.failed.Add(n)
		metrics.RecordLogQueue("failed", len(batch))
		log := logger.Logger()
		log.Warn().Err(err).Int("entries", len(batch)).Msg("failed to write request log batch")
		return
	}
	al.written.Add(n)
	metrics.RecordLogQueue("written", len(batch))
}

func (al *AsyncLogger) writeActivity(event activityEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), al.writeTimeout)
	defer cancel()

	al.sink.Record(service.WithActor(ctx, event.actor), event.action, event.boxID, event.details)
	al.written.Add(1)
	metrics.RecordLogQueue("written", 1)
}

// Log enqueues a request log entry. It reports false when the entry was
// dropped because the queue is full or stopped.
func (al *AsyncLogger) Log(entry *model.LogEntry) bool {
	if al.stopped.Load() {
		return al.drop()
	}
	select {
	case al.entries <- entry:
		return al.accept()
	default:
		return al.drop()
	}
}

// Record enqueues a box activity event for actor.
func (al *AsyncLogger) Record(actor, action, boxID string, details map[string]any) bool {
	if al.stopped.Load() {
		return al.drop()
	}
	select {
	case al.activity <- activityEvent{actor: actor, action: action, boxID: boxID, details: maps.Clone(details)}:
		return al.accept()
	default:
		return al.drop()
	}
}

func (al *AsyncLogger) accept() bool {
	al.enqueued.Add(1)
	metrics.RecordLogQueue("enqueued", 1)
	return true
}

func (al *AsyncLogger) drop() bool {
	al.dropped.Add(1)
	metrics.RecordLogQueue("dropped", 1)
	return false
}

// Stop writes everything still queued and waits for the worker to exit.
// It is safe to call more than once.
func (al *AsyncLogger) Stop() {
	al.stopOnce.Do(func() {
		al.stopped.Store(true)
		close(al.stopCh)
	})
	al.wg.Wait()
}

// Stats returns current async logger statistics.
func (al *AsyncLogger) Stats() AsyncLoggerStats {
	return AsyncLoggerStats{
		Enqueued: al.enqueued.Load(),
		Dropped:  al.dropped.Load(),
		Written:  al.written.Load(),
		Failed:   al.failed.Load(),
	}
}

var (
	globalAsyncLogger   *AsyncLogger
	globalAsyncLoggerMu sync.RWMutex
)

// InitAsyncLogger installs the process-wide async logger, stopping any
// previous one.
func InitAsyncLogger(sink service.LoggingService, cfg AsyncLoggerConfig) {
	globalAsyncLoggerMu.Lock()
	defer globalAsyncLoggerMu.Unlock()

	if globalAsyncLogger != nil {
		globalAsyncLogger.Stop()
	}
	globalAsyncLogger = NewAsyncLogger(sink, cfg)
}

// GetAsyncLogger returns the global async logger, or nil.
func GetAsyncLogger() *AsyncLogger {
	globalAsyncLoggerMu.RLock()
	defer globalAsyncLoggerMu.RUnlock()
	return globalAsyncLogger
}

// StopAsyncLogger flushes and removes the global async logger.
func StopAsyncLogger() {
	globalAsyncLoggerMu.Lock()
	defer globalAsyncLoggerMu.Unlock()

	if globalAsyncLogger != nil {
		globalAsyncLogger.Stop()
		globalAsyncLogger = nil
	}
}
