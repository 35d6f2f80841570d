// Package circuitbreaker guards the database behind a three-state breaker.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrCircuitOpen is returned while the breaker rejects calls.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// State represents the state of the circuit breaker.
type State int

const (
	// StateClosed lets every call through.
	StateClosed State = iota
	// StateOpen rejects calls until the timeout elapses.
	StateOpen
	// StateHalfOpen lets calls through to test recovery.
	StateHalfOpen
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Config holds circuit breaker configuration.
type Config struct {
	// FailureThreshold is the number of consecutive failures before opening.
	FailureThreshold int
	// SuccessThreshold is the number of half-open successes needed to close.
	SuccessThreshold int
	// Timeout is how long the breaker stays open before probing.
	Timeout time.Duration
	// Name identifies the breaker in logs and metrics.
	Name string
	// IsFailure decides which errors count against the breaker. Nil counts
	// every error except context cancellation.
	IsFailure func(error) bool
	// OnStateChange is called after every transition, outside the lock.
	OnStateChange func(name string, from, to State)
}

// DefaultConfig returns a default circuit breaker configuration.
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Timeout:          30 * time.Second,
		Name:             "mongodb",
	}
}

// CircuitBreaker implements the circuit breaker pattern.
type CircuitBreaker struct {
	config          Config
	state           State
	failureCount    int
	successCount    int
	lastFailureTime time.Time
	now             func() time.Time
	mu              sync.Mutex
}

// New creates a new circuit breaker with the given configuration.
func New(config Config) *CircuitBreaker {
	if config.IsFailure == nil {
		config.IsFailure = countsAsFailure
	}
	return &CircuitBreaker{
		config: config,
		state:  StateClosed,
		now:    time.Now,
	}
}

func countsAsFailure(err error) bool {
	return !errors.Is(err, context.Canceled)
}

// Execute runs fn unless the breaker is open. Errors that IsFailure
// rejects are returned unchanged and count as successes.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cb.mu.Lock()
	before := cb.state
	if cb.state == StateOpen {
		if cb.now().Sub(cb.lastFailureTime) < cb.config.Timeout {
			cb.mu.Unlock()
			return ErrCircuitOpen
		}
		cb.state = StateHalfOpen
		cb.successCount = 0
		log.Info().
			Str("circuit_breaker", cb.config.Name).
			Msg("Circuit breaker half-open, probing")
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	if err != nil && cb.config.IsFailure(err) {
		cb.onFailure()
	} else {
		cb.onSuccess()
	}
	after := cb.state
	cb.mu.Unlock()

	if before != after && cb.config.OnStateChange != nil {
		cb.config.OnStateChange(cb.config.Name, before, after)
	}
	return err
}

func (cb *CircuitBreaker) onFailure() {
	cb.failureCount++
	cb.lastFailureTime = cb.now()

	switch cb.state {
	case StateClosed:
		if cb.failureCount >= cb.config.FailureThreshold {
			cb.state = StateOpen
			log.Warn().
				Str("circuit_breaker", cb.config.Name).
				Int("failure_count", cb.failureCount).
				Msg("Circuit breaker opened")
		}
	case StateHalfOpen:
		cb.state = StateOpen
		cb.failureCount = cb.config.FailureThreshold
		log.Warn().
			Str("circuit_breaker", cb.config.Name).
			Msg("Circuit breaker reopened after half-open failure")
	}
}

func (cb *CircuitBreaker) onSuccess() {
	cb.failureCount = 0

	if cb.state == StateHalfOpen {
		cb.successCount++
		if cb.successCount >= cb.config.SuccessThreshold {
			cb.state = StateClosed
			cb.successCount = 0
			log.Info().
				Str("circuit_breaker", cb.config.Name).
				Msg("Circuit breaker closed")
		}
	}
}

// State returns the current state of the circuit breaker.
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// IsOpen returns true if the circuit breaker is open.
func (cb *CircuitBreaker) IsOpen() bool {
	return cb.State() == StateOpen
}

// Name returns the configured breaker name.
func (cb *CircuitBreaker) Name() string {
	return cb.config.Name
}

// Stats is a snapshot used by the readiness check.
type Stats struct {
	State        string    `json:"state"`
	FailureCount int       `json:"failure_count"`
	LastFailure  time.Time `json:"last_failure,omitempty"`
	IsHealthy    bool      `json:"healthy"`
}

// GetStats returns current circuit breaker statistics.
func (cb *CircuitBreaker) GetStats() Stats {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	return Stats{
		State:        cb.state.String(),
		FailureCount: cb.failureCount,
		LastFailure:  cb.lastFailureTime,
		IsHealthy:    cb.state == StateClosed,
	}
}
