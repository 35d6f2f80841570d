// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/move-labels/config"
	"github.com/guttosm/move-labels/internal/circuitbreaker"
	"github.com/guttosm/move-labels/internal/metrics"
	"github.com/guttosm/move-labels/internal/repository"
)

const seedTimeout = 5 * time.Second

// Circuit breaker names, also used as readiness check keys.
const (
	breakerBoxes      = "mongodb_boxes"
	breakerLabelSizes = "mongodb_label_sizes"
	breakerBundles    = "mongodb_bundles"
	breakerUsers      = "mongodb_users"
	breakerActivity   = "mongodb_activity"
	breakerLogs       = "mongodb_logs"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB              *repository.MongoDB
	Boxes           repository.BoxRepositoryInterface
	LabelSizes      repository.LabelSizeRepositoryInterface
	Bundles         repository.BundleRepositoryInterface
	Users           repository.UserRepositoryInterface
	Activity        repository.ActivityRepositoryInterface
	Logs            repository.LogsRepositoryInterface
	CircuitBreakers map[string]*circuitbreaker.CircuitBreaker
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}

// InitializeDatabase connects to MongoDB and wraps every repository in its
// own circuit breaker. Returns nil if the database is disabled or the
// connection fails; the service then runs on built-in label sizes only.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()
	if cfg.LogsTTL > 0 {
		if err := db.SetLogsTTL(ctx, cfg.LogsTTL); err != nil {
			log.Warn().Err(err).Msg("Failed to set logs TTL index")
		}
	}

	return wireRepositories(db, cfg)
}

func wireRepositories(db *repository.MongoDB, cfg config.DatabaseConfig) *DatabaseComponents {
	breakers := make(map[string]*circuitbreaker.CircuitBreaker)
	breaker := func(name string) *circuitbreaker.CircuitBreaker {
		cb := newCircuitBreaker(cfg, name)
		breakers[name] = cb
		return cb
	}

	return &DatabaseComponents{
		DB:              db,
		Boxes:           repository.NewBoxRepositoryWithCircuitBreaker(repository.NewBoxRepository(db), breaker(breakerBoxes)),
		LabelSizes:      repository.NewLabelSizeRepositoryWithCircuitBreaker(repository.NewLabelSizeRepository(db), breaker(breakerLabelSizes)),
		Bundles:         repository.NewBundleRepositoryWithCircuitBreaker(repository.NewBundleRepository(db), breaker(breakerBundles)),
		Users:           repository.NewUserRepositoryWithCircuitBreaker(repository.NewUserRepository(db), breaker(breakerUsers)),
		Activity:        repository.NewActivityRepositoryWithCircuitBreaker(repository.NewActivityRepository(db), breaker(breakerActivity)),
		Logs:            repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), breaker(breakerLogs)),
		CircuitBreakers: breakers,
	}
}

// newCircuitBreaker builds a breaker that only trips on errors meaning the
// database is unhealthy and reports its state to Prometheus.
func newCircuitBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	cbCfg := circuitbreaker.DefaultConfig()
	cbCfg.Name = name
	cbCfg.IsFailure = repository.IsBreakerFailure
	cbCfg.OnStateChange = reportBreakerState
	if cfg.CircuitBreakerFailureThreshold > 0 {
		cbCfg.FailureThreshold = cfg.CircuitBreakerFailureThreshold
	}
	if cfg.CircuitBreakerSuccessThreshold > 0 {
		cbCfg.SuccessThreshold = cfg.CircuitBreakerSuccessThreshold
	}
	if cfg.CircuitBreakerTimeout > 0 {
		cbCfg.Timeout = cfg.CircuitBreakerTimeout
	}

	metrics.SetCircuitBreakerState(name, int(circuitbreaker.StateClosed))
	return circuitbreaker.New(cbCfg)
}

func reportBreakerState(name string, from, to circuitbreaker.State) {
	metrics.SetCircuitBreakerState(name, int(to))
	log.Warn().
		Str("breaker", name).
		Str("from", from.String()).
		Str("to", to.String()).
		Msg("circuit breaker state changed")
}
