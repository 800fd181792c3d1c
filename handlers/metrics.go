package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	predictionsServed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stock_api_predictions_total",
		Help: "Total number of predictions served.",
	})
	predictionsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stock_api_prediction_failures_total",
		Help: "Total number of failed prediction requests.",
	})
	csvRowsImported = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stock_api_csv_rows_imported_total",
		Help: "Total number of rows imported from CSV files.",
	})
)
