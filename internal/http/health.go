package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/move-labels/internal/circuitbreaker"
	"github.com/guttosm/move-labels/internal/logger"
)

// DefaultHealthCheckTimeout bounds each readiness check.
const DefaultHealthCheckTimeout = 2 * time.Second

// HealthChecker checks one dependency.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// HealthCheckFunc adapts a function to HealthChecker.
type HealthCheckFunc func(ctx context.Context) error

// Check calls f.
func (f HealthCheckFunc) Check(ctx context.Context) error { return f(ctx) }

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	checkers        map[string]HealthChecker
	circuitBreakers map[string]*circuitbreaker.CircuitBreaker
	checkTimeout    time.Duration
	startedAt       time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		checkers:        make(map[string]HealthChecker),
		circuitBreakers: make(map[string]*circuitbreaker.CircuitBreaker),
		checkTimeout:    DefaultHealthCheckTimeout,
		startedAt:       time.Now(),
	}
}

// RegisterChecker adds a dependency check to the readiness check.
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker) {
	h.checkers[name] = checker
}

// RegisterCircuitBreaker reports the breaker state in the readiness check.
// An open breaker makes the service not ready.
func (h *HealthHandler) RegisterCircuitBreaker(name string, cb *circuitbreaker.CircuitBreaker) {
	if cb == nil {
		return
	}
	h.circuitBreakers[name] = cb
}

// Register registers health endpoints on the router.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness endpoint.
// @Summary     Liveness check
// @Description Returns OK while the process is up, with its uptime.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "Service is alive"
// @Router      /healthz [get]
//
// Metrics endpoint is available at /metrics for Prometheus scraping.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": logger.ServiceName,
		"uptime":  time.Since(h.startedAt).Truncate(time.Second).String(),
	})
}

// Readiness handles the readiness endpoint.
// @Summary     Readiness check
// @Description Returns OK when MongoDB answers and no repository circuit breaker is open.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]interface{} "Service is ready"
// @Failure     503 {object} map[string]interface{} "Service is not ready"
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.checkTimeout)
	defer cancel()

	checks := h.runCheckers(ctx)
	healthy := true
	for _, result := range checks {
		if result != "ok" {
			healthy = false
		}
	}

	for name, cb := range h.circuitBreakers {
		stats := cb.GetStats()
		checks[name+"_circuit"] = stats.State
		if !stats.IsHealthy {
			healthy = false
		}
	}

	if len(checks) == 0 {
		checks["service"] = "ok"
	}

	status, label := http.StatusOK, "ok"
	if !healthy {
		status, label = http.StatusServiceUnavailable, "degraded"
	}
	c.JSON(status, gin.H{"status": label, "checks": checks})
}

// runCheckers checks every dependency concurrently.
func (h *HealthHandler) runCheckers(ctx context.Context) map[string]string {
	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]string, len(h.checkers))
	)
	for name, checker := range h.checkers {
		wg.Add(1)
		go func(name string, checker HealthChecker) {
			defer wg.Done()
			result := "ok"
			if err := checker.Check(ctx); err != nil {
				result = err.Error()
			}
			mu.Lock()
			results[name] = result
			mu.Unlock()
		}(name, checker)
	}
	wg.Wait()
	return results
}
