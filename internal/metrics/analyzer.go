package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	analyzerStageTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "analyzer",
		Name:      "stage_total",
		Help:      "Count of analysis stage runs.",
	}, []string{"stage", "coin", "network", "status"})

	analyzerStageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "analyzer",
		Name:      "stage_duration_seconds",
		Help:      "Duration of analysis stages.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"stage", "coin", "network", "status"})

	analyzerStageRows = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "analyzer",
		Name:      "stage_rows",
		Help:      "Number of rows produced by the last successful run of a stage.",
	}, []string{"stage", "coin", "network"})

	analyzerReportTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "analyzer",
		Name:      "report_write_total",
		Help:      "Count of report writes.",
	}, []string{"report", "coin", "network", "status"})

	analyzerReportDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "analyzer",
		Name:      "report_write_duration_seconds",
		Help:      "Duration of report writes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"report", "coin", "network", "status"})

	analyzerReportRows = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "analyzer",
		Name:      "report_rows",
		Help:      "Number of rows in the last written report.",
	}, []string{"report", "coin", "network"})
)

// Analyzer records metrics of the block analysis pipeline.
type Analyzer struct {
	coin    model.Coin
	network model.Network
}

// NewAnalyzer creates an Analyzer metrics collector.
func NewAnalyzer(coin model.Coin, network model.Network) *Analyzer {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &Analyzer{coin: coin, network: network}
}

// ObserveStage records the outcome of one pipeline stage.
func (m Analyzer) ObserveStage(stage string, err error, rows int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	analyzerStageTotal.WithLabelValues(stage, string(m.coin), string(m.network), status).Inc()
	analyzerStageDuration.WithLabelValues(stage, string(m.coin), string(m.network), status).
		Observe(time.Since(started).Seconds())
	if err == nil {
		analyzerStageRows.WithLabelValues(stage, string(m.coin), string(m.network)).Set(float64(rows))
	}
}

// ObserveReport records the outcome of one report write.
func (m Analyzer) ObserveReport(report string, err error, rows int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	analyzerReportTotal.WithLabelValues(report, string(m.coin), string(m.network), status).Inc()
	analyzerReportDuration.WithLabelValues(report, string(m.coin), string(m.network), status).
		Observe(time.Since(started).Seconds())
	if err == nil {
		analyzerReportRows.WithLabelValues(report, string(m.coin), string(m.network)).Set(float64(rows))
	}
}
