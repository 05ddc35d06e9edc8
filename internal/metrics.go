package internal

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LoginsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portal_logins_total",
		Help: "Total number of successful portal logins.",
	})

	PrintRendersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portal_print_renders_total",
		Help: "Total number of monthly print views generated.",
	})

	ExcelExportsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portal_excel_exports_total",
		Help: "Total number of Excel exports produced.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)
)
