package monitoring

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

var startTime = time.Now()

// HealthChecker tracks the last conversion outcome for the health endpoint.
type HealthChecker struct {
	mu             sync.RWMutex
	lastConversion time.Time
	lastError      string
}

// HealthStatus is the JSON body of the health endpoint.
type HealthStatus struct {
	Status         string    `json:"status"`
	Timestamp      time.Time `json:"timestamp"`
	LastConversion time.Time `json:"last_conversion,omitempty"`
	LastError      string    `json:"last_error,omitempty"`
	Uptime         string    `json:"uptime"`
}

func NewHealthChecker() *HealthChecker {
	return &HealthChecker{}
}

// MarkConversion records a successful conversion.
func (h *HealthChecker) MarkConversion() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lastConversion = time.Now()
	h.lastError = ""
}

// MarkError records the most recent conversion failure.
func (h *HealthChecker) MarkError(message string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lastError = message
}

func (h *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	health := HealthStatus{
		Status:         "ok",
		Timestamp:      time.Now(),
		LastConversion: h.lastConversion,
		LastError:      h.lastError,
		Uptime:         time.Since(startTime).String(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}
