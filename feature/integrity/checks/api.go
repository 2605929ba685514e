package checks

import (
	"context"
	"time"
)

// Pinger verifies connectivity to the vendor API.
type Pinger interface {
	Ping(ctx context.Context) error
}

// APIReport is the result of a vendor API connectivity check.
type APIReport struct {
	Status    string `json:"status"` // "ok", "error", "disabled"
	Error     string `json:"error,omitempty"`
	LatencyMS int64  `json:"latency_ms"`
}

// CheckAPI pings the vendor API. A nil pinger reports the API as disabled.
func CheckAPI(ctx context.Context, pinger Pinger) *APIReport {
	if pinger == nil {
		return &APIReport{Status: "disabled"}
	}

	start := time.Now()
	err := pinger.Ping(ctx)
	report := &APIReport{Status: "ok", LatencyMS: time.Since(start).Milliseconds()}
	if err != nil {
		report.Status = "error"
		report.Error = err.Error()
	}
	return report
}
