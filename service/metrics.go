package service

import "github.com/prometheus/client_golang/prometheus"

var (
	pointsAwardedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crewly_points_awarded_total",
			Help: "Spirit points committed to the ledger",
		},
		[]string{"action"},
	)

	pointsRejectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crewly_points_rejected_total",
			Help: "Award attempts rejected before insert",
		},
		[]string{"reason"},
	)

	badgesAwardedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "crewly_badges_awarded_total",
			Help: "Badge awards inserted",
		},
	)

	healthAlertsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "crewly_health_alerts_total",
			Help: "Health drop alerts sent to group admins",
		},
	)
)

func init() {
	prometheus.MustRegister(pointsAwardedTotal)
	prometheus.MustRegister(pointsRejectedTotal)
	prometheus.MustRegister(badgesAwardedTotal)
	prometheus.MustRegister(healthAlertsTotal)
}
