package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	ServiceName string
}

// InitMetrics initializes the Prometheus metrics exporter and returns the
// MeterProvider plus an HTTP handler for the /metrics endpoint.
func InitMetrics(_ MetricsConfig) (*sdkmetric.MeterProvider, http.Handler, error) {
	exporter, err := promexporter.New()
	if err != nil {
		return nil, nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)

	return provider, promhttp.Handler(), nil
}

// Pricing engine counters, registered on the default Prometheus registry so
// they surface through the same /metrics handler.
var (
	QuotesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_quotes_generated_total",
		Help: "Loan offer quotes generated, labelled by transaction kind.",
	}, []string{"transaction_kind"})

	QuotesRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_quotes_rejected_total",
		Help: "Quote requests that produced no surviving offer, labelled by reason.",
	}, []string{"reason"})

	FeeCapAdjustments = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pricing_fee_cap_adjustments_total",
		Help: "Offers whose interest rate was re-derived to honour the fee cap.",
	})

	DBRFallbackWalks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pricing_dbr_fallback_walks_total",
		Help: "Quote requests that needed the forward-walk duration search.",
	})
)
