package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/procurehq/po-intake/internal/common"
	"github.com/procurehq/po-intake/internal/export"
	"github.com/procurehq/po-intake/internal/match"
	"github.com/procurehq/po-intake/internal/ocr"
	"github.com/procurehq/po-intake/internal/pipeline"
	repo "github.com/procurehq/po-intake/internal/repository"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var (
		inputPath = flag.String("input", "-", "OCR dump (JSON) path, or - for stdin")
		tsvPath   = flag.String("tsv", "", "optional tesseract TSV file supplying word geometry")
		xlsxPath  = flag.String("xlsx", "", "write an XLSX review sheet to this path")
		timeout   = flag.Duration("timeout", 2*time.Minute, "overall processing timeout")
	)
	flag.Parse()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	in, err := readInput(*inputPath, *tsvPath)
	if err != nil {
		logger.Error("failed to read ocr input", "path", *inputPath, "error", err)
		os.Exit(2)
	}

	engine, cleanup, err := buildEngine(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open master-data store", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	p := pipeline.NewPipeline(engine, logger)
	res, err := p.Extract(ctx, in)
	if err != nil {
		if errors.Is(err, common.ErrEmptyDocument) {
			logger.Error("extraction failed: empty document")
		} else {
			logger.Error("extraction failed", "error", err)
		}
		os.Exit(1)
	}

	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		logger.Error("failed to encode result", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))

	if *xlsxPath != "" {
		data, err := export.NewService(logger).BuildXLSX(res)
		if err != nil {
			logger.Error("failed to build review sheet", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*xlsxPath, data, 0o644); err != nil {
			logger.Error("failed to write review sheet", "path", *xlsxPath, "error", err)
			os.Exit(1)
		}
		logger.Info("review sheet written", "path", *xlsxPath)
	}
}

func readInput(inputPath, tsvPath string) (*ocr.Input, error) {
	var r io.Reader = os.Stdin
	if inputPath != "-" {
		f, err := os.Open(inputPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	in, err := ocr.DecodeInput(r)
	if err != nil {
		return nil, err
	}

	if tsvPath != "" {
		f, err := os.Open(tsvPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		words, err := ocr.ParseTesseractTSV(f)
		if err != nil {
			return nil, err
		}
		in.Words = words
	}
	return in, nil
}

// buildEngine wires the matching engine against Postgres when DB_URL is set,
// else against the SQLite file with the in-memory fuzzy searcher.
func buildEngine(ctx context.Context, cfg *common.Config, logger *slog.Logger) (*match.Engine, func(), error) {
	thresholds := match.Thresholds{
		MinScoreAuto: cfg.Match.MinScoreAuto,
		MinScoreShow: cfg.Match.MinScoreShow,
		MaxResults:   cfg.Match.MaxResults,
		Concurrency:  cfg.Match.Concurrency,
	}

	if cfg.Database.DSN != "" {
		pool, err := repo.Open(ctx, repo.Config{
			DSN:             cfg.Database.DSN,
			MaxConns:        cfg.Database.MaxConns,
			MinConns:        cfg.Database.MinConns,
			MaxConnLifetime: cfg.Database.MaxConnLifetime,
			MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
			DialTimeout:     cfg.Database.DialTimeout,
		}, logger)
		if err != nil {
			return nil, func() {}, err
		}
		pg := repo.NewPostgresMasterData(pool, logger)
		return match.NewEngine(pg, pg, thresholds, logger), pool.Close, nil
	}

	sq, err := repo.OpenSQLite(cfg.Database.SQLitePath, logger)
	if err != nil {
		return nil, func() {}, err
	}
	cleanup := func() { _ = sq.Close() }

	mem := match.NewMemorySearcher()
	vendors, err := sq.ListVendors(ctx)
	if err != nil {
		return nil, cleanup, fmt.Errorf("load vendors: %w", err)
	}
	for _, v := range vendors {
		mem.AddVendor(v)
	}
	parts, err := sq.ListParts(ctx)
	if err != nil {
		return nil, cleanup, fmt.Errorf("load parts: %w", err)
	}
	for _, p := range parts {
		mem.AddPart(p)
	}
	return match.NewEngine(sq, mem, thresholds, logger), cleanup, nil
}
