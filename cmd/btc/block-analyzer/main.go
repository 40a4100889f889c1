// Package main runs the block feature analyzer over bitcoind JSON dumps.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/utxo/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/utxo/report"
	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/utxo/service/analyzer"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type config struct {
	BlocksFile  string        `long:"blocks-file" env:"BTC_ANALYZER_BLOCKS_FILE" description:"line-delimited JSON blocks dump" default:"data/blocks.json"`
	TxsFile     string        `long:"txs-file" env:"BTC_ANALYZER_TXS_FILE" description:"line-delimited JSON transactions dump" default:"data/txs.json"`
	OutputDir   string        `long:"output-dir" env:"BTC_ANALYZER_OUTPUT_DIR" description:"directory for the report files" default:"data"`
	Network     model.Network `long:"network" env:"BTC_ANALYZER_NETWORK" description:"network name" default:"mainnet"`
	MetricsFile string        `long:"metrics-file" env:"BTC_ANALYZER_METRICS_FILE" description:"write Prometheus metrics to this textfile after the run"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	params, err := bitcoin.ChainParams(cfg.Network)
	if err != nil {
		logger.Fatal("invalid network", zap.Error(err))
	}
	cfg.Network = model.Network(params.Name)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("block analyzer failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	writer := report.NewFileWriter(cfg.OutputDir)
	svc, err := analyzer.NewService(
		cfg.BlocksFile,
		cfg.TxsFile,
		writer,
		metrics.NewAnalyzer(model.BTC, cfg.Network),
		model.BTC,
		cfg.Network,
		logger,
	)
	if err != nil {
		return err
	}

	res, runErr := svc.Run(ctx)
	if cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, prometheus.DefaultGatherer); err != nil {
			logger.Error("failed to write metrics textfile", zap.String("path", cfg.MetricsFile), zap.Error(err))
		}
	}
	if runErr != nil {
		return runErr
	}

	logger.Info("reports written",
		zap.String("blocks_report", writer.BlockReportPath()),
		zap.Int("blocks_rows", len(res.BlockReport)),
		zap.String("hours_report", writer.TimeReportPath()),
		zap.Int("hours_rows", len(res.TimeReport)),
	)
	return nil
}
