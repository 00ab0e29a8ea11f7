package domain

import (
	"strings"
	"time"
)

// SweepItemResult records the outcome of one record inside a batch sweep.
// Actions prefixed "skipped" count as skips, everything else is a success
// or a failure.
type SweepItemResult struct {
	BookingID string `json:"booking_id"`
	Action    string `json:"action"` // cancelled, paid_out, skipped_stale, skipped_existing, failed
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}

// SweepReport aggregates the per-record results of one sweep run. Failures
// of individual records never abort the batch; they end up here instead.
type SweepReport struct {
	Job       string            `json:"job"`
	StartedAt time.Time         `json:"started_at"`
	Duration  time.Duration     `json:"duration"`
	Processed int               `json:"processed"`
	Succeeded int               `json:"succeeded"`
	Skipped   int               `json:"skipped"`
	Failed    int               `json:"failed"`
	Items     []SweepItemResult `json:"items,omitempty"`
}

func (r *SweepReport) Add(item SweepItemResult) {
	r.Processed++
	switch {
	case item.Success:
		r.Succeeded++
	case strings.HasPrefix(item.Action, "skipped"):
		r.Skipped++
	default:
		r.Failed++
	}
	r.Items = append(r.Items, item)
}
