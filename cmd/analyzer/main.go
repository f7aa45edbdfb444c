// Command analyzer loads a purchase-history export, runs the
// normalization and aggregation pipeline, and prints a report.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/FACorreiaa/order-insights/internal/domain/ingest"
	"github.com/FACorreiaa/order-insights/internal/domain/record"
	"github.com/FACorreiaa/order-insights/internal/domain/session"
	"github.com/FACorreiaa/order-insights/internal/report"
	"github.com/FACorreiaa/order-insights/pkg/config"
)

func main() {
	cfg := config.Load()
	logger := newLogger(cfg.Logging)

	inputPath := cfg.Input.Path
	if len(os.Args) > 1 {
		inputPath = os.Args[1]
	}
	if inputPath == "" {
		fmt.Fprintln(os.Stderr, "usage: analyzer <orders.csv|orders.xlsx> (or set ORDERS_INPUT)")
		os.Exit(2)
	}

	if err := run(cfg, logger, inputPath); err != nil {
		logger.Error("analysis failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, inputPath string) error {
	ds, err := readDataset(inputPath)
	if err != nil {
		return err
	}

	sess := session.New(logger).WithRankingSize(cfg.Report.RankingSize)
	result, err := sess.Load(ds.Records, ds.Headers)
	if err != nil {
		var missing *record.MissingColumnsError
		if errors.As(err, &missing) {
			for col, suggestion := range missing.Suggestions {
				logger.Warn("required column not found", "column", col, "closest", suggestion)
			}
		}
		return err
	}

	purchases := sess.Purchases()
	if cfg.Input.YearFrom != 0 || cfg.Input.YearTo != 0 {
		from, to := cfg.Input.YearFrom, cfg.Input.YearTo
		if years := sess.Years(); len(years) > 0 {
			if from == 0 {
				from = years[0]
			}
			if to == 0 {
				to = years[len(years)-1]
			}
		}
		purchases = sess.FilterByYearRange(from, to)
		logger.Info("applied year filter", "from", from, "to", to, "rows", len(purchases))
	}

	views := sess.BuildViews(purchases)

	if err := report.WriteText(os.Stdout, views, sess.Currency()); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if cfg.Report.ExcelPath != "" {
		f, err := report.BuildWorkbook(views, sess.Currency(), result.LoadID)
		if err != nil {
			return fmt.Errorf("failed to build workbook: %w", err)
		}
		if err := f.SaveAs(cfg.Report.ExcelPath); err != nil {
			return fmt.Errorf("failed to save workbook: %w", err)
		}
		logger.Info("wrote workbook", "path", cfg.Report.ExcelPath)
	}

	return nil
}

func readDataset(path string) (*ingest.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ingest.ReadExcel(f)
	}
	return ingest.ReadCSV(f)
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.JSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
