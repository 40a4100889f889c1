// Package analyzer runs the block feature pipeline from input dumps to written reports.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/utxo/analysis"
	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/utxo/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/utxo/model"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Service derives block and hour reports from a blocks dump and a transactions dump.
// Stages run one after another and nothing is written unless every stage succeeds.
type Service struct {
	logger     *zap.Logger
	metrics    Metrics
	writer     ReportWriter
	blocksFile string
	txsFile    string
	open       func(name string) (io.ReadCloser, error)
}

// NewService builds a Service reading blocksFile and txsFile and storing reports with writer.
func NewService(
	blocksFile string,
	txsFile string,
	writer ReportWriter,
	metrics Metrics,
	coin model.Coin,
	network model.Network,
	logger *zap.Logger,
) (*Service, error) {
	if blocksFile == "" {
		return nil, errors.New("blocks file is required")
	}
	if txsFile == "" {
		return nil, errors.New("transactions file is required")
	}
	if writer == nil {
		return nil, errors.New("report writer is required")
	}
	if metrics == nil {
		return nil, errors.New("analyzer metrics is required")
	}

	return &Service{
		logger: logger.With(
			zap.String("coin", string(coin)),
			zap.String("network", string(network)),
		).Named("analyzer"),
		metrics:    metrics,
		writer:     writer,
		blocksFile: blocksFile,
		txsFile:    txsFile,
		open: func(name string) (io.ReadCloser, error) {
			return os.Open(name)
		},
	}, nil
}

// Run executes the pipeline once and returns the reports it wrote.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	var (
		blocks      model.BlockTable
		values      model.ValueTable
		diffs       []model.BlockTimeDiff
		sizes       []model.HourSize
		txs         []model.HourTx
		blockReport []model.BlockReportRow
		timeReport  []model.TimeReportRow
	)

	err := s.stage(ctx, stageLoadBlocks, func() (rows int, err error) {
		err = s.readFile(s.blocksFile, func(r io.Reader) (err error) {
			blocks, err = bitcoin.LoadBlocks(r)
			return err
		})
		if err != nil {
			return 0, fmt.Errorf("load blocks: %w", err)
		}
		return len(blocks), nil
	})
	if err != nil {
		return nil, err
	}

	err = s.stage(ctx, stageAggregateValues, func() (rows int, err error) {
		err = s.readFile(s.txsFile, func(r io.Reader) (err error) {
			values, err = bitcoin.AggregateValues(r)
			return err
		})
		if err != nil {
			return 0, fmt.Errorf("aggregate values: %w", err)
		}
		return len(values), nil
	})
	if err != nil {
		return nil, err
	}

	err = s.stage(ctx, stageTimeDiffs, func() (rows int, err error) {
		diffs, err = analysis.TimeDiffs(blocks)
		if err != nil {
			return 0, fmt.Errorf("time diffs: %w", err)
		}
		return len(diffs), nil
	})
	if err != nil {
		return nil, err
	}

	err = s.stage(ctx, stageHourBuckets, func() (int, error) {
		sizes, txs = analysis.HourBuckets(blocks)
		return len(sizes), nil
	})
	if err != nil {
		return nil, err
	}

	err = s.stage(ctx, stageMergeBlockReport, func() (int, error) {
		blockReport = analysis.MergeBlockReport(blocks, values, diffs)
		return len(blockReport), nil
	})
	if err != nil {
		return nil, err
	}

	err = s.stage(ctx, stageMergeTimeReport, func() (int, error) {
		timeReport = analysis.MergeTimeReport(sizes, txs)
		return len(timeReport), nil
	})
	if err != nil {
		return nil, err
	}

	if dropped := droppedHashes(blocks, blockReport); len(dropped) > 0 {
		s.logger.Info("blocks without transactions dropped from block report",
			zap.Int("dropped", len(dropped)),
			zap.Strings("hashes", dropped),
		)
	}

	if err = s.writeReport(ctx, reportBlocks, len(blockReport), func() error {
		return s.writer.WriteBlockReport(ctx, blockReport)
	}); err != nil {
		return nil, err
	}
	if err = s.writeReport(ctx, reportTimes, len(timeReport), func() error {
		return s.writer.WriteTimeReport(ctx, timeReport)
	}); err != nil {
		return nil, err
	}

	return &Result{BlockReport: blockReport, TimeReport: timeReport}, nil
}

func (s *Service) stage(ctx context.Context, name string, fn func() (int, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	started := time.Now()
	rows, err := fn()
	s.metrics.ObserveStage(name, err, rows, started)
	if err != nil {
		s.logger.Error("stage failed", zap.String("stage", name), zap.Error(err))
		return err
	}
	s.logger.Debug("stage done",
		zap.String("stage", name),
		zap.Int("rows", rows),
		zap.Duration("took", time.Since(started)),
	)
	return nil
}

func (s *Service) writeReport(ctx context.Context, name string, rows int, write func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	started := time.Now()
	err := write()
	s.metrics.ObserveReport(name, err, rows, started)
	if err != nil {
		s.logger.Error("write report failed", zap.String("report", name), zap.Error(err))
		return fmt.Errorf("write %s report: %w", name, err)
	}
	s.logger.Info("report written", zap.String("report", name), zap.Int("rows", rows))
	return nil
}

// readFile opens name, hands it to parse and always closes it.
func (s *Service) readFile(name string, parse func(io.Reader) error) (err error) {
	f, err := s.open(name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("close %s: %w", name, cerr))
		}
	}()

	if err = parse(f); err != nil {
		var perr *bitcoin.ParseError
		if errors.As(err, &perr) {
			perr.Source = name
			return err
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// droppedHashes lists, in table order, the blocks that did not make it into the block report.
func droppedHashes(blocks model.BlockTable, rows []model.BlockReportRow) []string {
	kept := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		kept[row.Hash] = struct{}{}
	}
	var dropped []string
	for _, hash := range blocks.Hashes() {
		if _, ok := kept[hash]; !ok {
			dropped = append(dropped, hash)
		}
	}
	return dropped
}
