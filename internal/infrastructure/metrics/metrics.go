package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sendbyop/booking-service/internal/domain"
	"github.com/shopspring/decimal"
)

// BookingMetrics covers the booking lifecycle and the two periodic sweeps.
type BookingMetrics struct {
	BookingsPaidTotal       prometheus.Counter
	BookingsPaidAmountTotal prometheus.Counter

	BookingsCancelledTotal prometheus.CounterVec

	PayoutsProcessedTotal prometheus.CounterVec
	PayoutsAmountTotal    prometheus.Counter
	PayoutsFailedTotal    prometheus.Counter

	SweepRunsTotal       prometheus.CounterVec
	SweepItemsTotal      prometheus.CounterVec
	SweepDurationSeconds prometheus.HistogramVec
}

func NewBookingMetrics() *BookingMetrics {
	return &BookingMetrics{
		BookingsPaidTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "bookings_paid_total",
				Help: "Number of bookings paid by clients",
			},
		),
		BookingsPaidAmountTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "bookings_paid_amount_total",
				Help: "Total amount paid for bookings",
			},
		),
		BookingsCancelledTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookings_cancelled_total",
				Help: "Number of cancelled bookings by cancellation status",
			},
			[]string{"status"},
		),
		PayoutsProcessedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payouts_processed_total",
				Help: "Number of payouts finalized by status",
			},
			[]string{"status"},
		),
		PayoutsAmountTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "payouts_amount_total",
				Help: "Total traveler amount of completed payouts",
			},
		),
		PayoutsFailedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "payouts_failed_total",
				Help: "Number of payouts finalized as FAILED",
			},
		),
		SweepRunsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sweep_runs_total",
				Help: "Number of periodic sweep executions by job",
			},
			[]string{"job"},
		),
		SweepItemsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sweep_items_total",
				Help: "Per-record sweep outcomes by job and result",
			},
			[]string{"job", "result"},
		),
		SweepDurationSeconds: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sweep_duration_seconds",
				Help:    "Duration of periodic sweep executions",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"job"},
		),
	}
}

func (m *BookingMetrics) RecordBookingPaid(amount decimal.Decimal) {
	m.BookingsPaidTotal.Inc()
	f, _ := amount.Float64()
	m.BookingsPaidAmountTotal.Add(f)
}

func (m *BookingMetrics) RecordBookingCancelled(status string) {
	m.BookingsCancelledTotal.WithLabelValues(status).Inc()
}

func (m *BookingMetrics) RecordPayoutProcessed(status string, amount decimal.Decimal) {
	m.PayoutsProcessedTotal.WithLabelValues(status).Inc()
	if status == string(domain.PayoutStatusCompleted) {
		f, _ := amount.Float64()
		m.PayoutsAmountTotal.Add(f)
	}
	if status == string(domain.PayoutStatusFailed) {
		m.PayoutsFailedTotal.Inc()
	}
}

func (m *BookingMetrics) RecordAutoCancelSweep(report *domain.SweepReport) {
	m.recordSweep(report)
}

func (m *BookingMetrics) RecordAutoPayoutSweep(report *domain.SweepReport) {
	m.recordSweep(report)
}

func (m *BookingMetrics) recordSweep(report *domain.SweepReport) {
	m.SweepRunsTotal.WithLabelValues(report.Job).Inc()
	m.SweepDurationSeconds.WithLabelValues(report.Job).Observe(report.Duration.Seconds())
	for _, item := range report.Items {
		m.SweepItemsTotal.WithLabelValues(report.Job, item.Action).Inc()
	}
}
