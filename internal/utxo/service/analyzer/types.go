package analyzer

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		ObserveStage(stage string, err error, rows int, started time.Time)
		ObserveReport(report string, err error, rows int, started time.Time)
	}
	ReportWriter interface {
		WriteBlockReport(ctx context.Context, rows []model.BlockReportRow) error
		WriteTimeReport(ctx context.Context, rows []model.TimeReportRow) error
	}
)

// Result holds the reports of one run for downstream consumers such as chart renderers.
type Result struct {
	BlockReport []model.BlockReportRow
	TimeReport  []model.TimeReportRow
}
