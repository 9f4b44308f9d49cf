package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ReviewsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cxos_reviews_submitted_total",
		Help: "Total reviews accepted, by sentiment.",
	}, []string{"sentiment"})

	NextActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cxos_next_actions_total",
		Help: "Total routed next actions, by type.",
	}, []string{"type"})

	EligibilityBlocked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cxos_eligibility_blocked_total",
		Help: "Total submissions rejected by the cooldown window.",
	})

	TicketsResolved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cxos_tickets_resolved_total",
		Help: "Total support tickets resolved by staff.",
	})

	TicketsEscalated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cxos_tickets_escalated_total",
		Help: "Total support tickets escalated past their SLA deadline.",
	})

	DegradedOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cxos_degraded_outcomes_total",
		Help: "Total best-effort side effects that failed, by kind.",
	}, []string{"kind"})
)

// MetricsHandler exposes the prometheus scrape endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
