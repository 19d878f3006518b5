package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Orders created, by payment method and payment status",
		},
		[]string{"method", "payment_status"},
	)

	ordersUpdated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_updated_total",
			Help: "Successful order updates, by source (admin or payment_sync) and resulting status",
		},
		[]string{"source", "status"},
	)

	orderUpdateConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "order_update_conflicts_total",
			Help: "Optimistic concurrency conflicts hit while updating orders",
		},
	)
)
