package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersPlacedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Total number of customer orders placed",
	})

	ShipmentsCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shipments_completed_total",
		Help: "Total number of orders fulfilled by a shipment",
	})

	ShipmentsFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shipments_failed_total",
		Help: "Total number of fulfillment attempts that did not ship",
	}, []string{"reason"})

	StockUpdatesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stock_updates_total",
		Help: "Total number of inventory quantity writes",
	})

	AccountsRegisteredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "accounts_registered_total",
		Help: "Total number of accounts registered",
	})

	FulfillmentLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fulfillment_latency_seconds",
		Help:    "Latency of the order fulfillment workflow",
		Buckets: prometheus.DefBuckets,
	})
)
