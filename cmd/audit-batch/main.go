package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/greentrust/esg-audit/internal/audit"
	"github.com/greentrust/esg-audit/internal/benchmark"
	"github.com/greentrust/esg-audit/internal/common"
	"github.com/greentrust/esg-audit/internal/export"
	"github.com/greentrust/esg-audit/internal/extract"
	"github.com/greentrust/esg-audit/internal/ingest"
	"github.com/greentrust/esg-audit/internal/llm"
	"github.com/greentrust/esg-audit/internal/llm/openai"
	"github.com/greentrust/esg-audit/internal/normalize"
	"github.com/greentrust/esg-audit/internal/repository"
	"github.com/greentrust/esg-audit/internal/risk"
	"github.com/greentrust/esg-audit/internal/score"
	"github.com/greentrust/esg-audit/internal/verify"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem   = flag.Bool("inmem", true, "use in-memory SQLite database")
		dir     = flag.String("dir", "", "directory of invoice text files to audit (required)")
		out     = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		ordered = flag.Bool("ordered", true, "emit results in input order")
		workers = flag.Int("workers", 0, "audit worker count (0 uses AUDIT_BATCH_WORKERS)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "audits.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	db, err := common.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close(logger)

	docsRepo := repository.NewInvoiceDocumentRepository(db.Client, logger)
	auditsRepo := repository.NewAuditRecordRepository(db.Client, logger)

	// Knowledge tables: embedded defaults unless a directory override is set
	table, err := loadTable(cfg.Audit.KnowledgeDir)
	if err != nil {
		logger.Error("failed to load benchmark table", "error", err)
		os.Exit(1)
	}
	regions, err := loadRegions(cfg.Audit.KnowledgeDir)
	if err != nil {
		logger.Error("failed to load risk regions", "error", err)
		os.Exit(1)
	}

	// Model-backed extraction is optional; the pattern fallback always works
	var primary llm.FieldExtractor
	if cfg.LLM.APIKey != "" {
		primary = openai.NewClient(openai.Config{
			Model:       cfg.LLM.Model,
			APIKey:      cfg.LLM.APIKey,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
		logger.Info("OpenAI client initialized", "model", cfg.LLM.Model)
	} else {
		logger.Warn("OpenAI API key not configured, extraction will use pattern rules")
	}

	rates := normalize.DefaultRates(cfg.Audit.ReportingCurrency)
	if rates == nil {
		logger.Error("unsupported reporting currency", "currency", cfg.Audit.ReportingCurrency)
		os.Exit(1)
	}

	workflow := audit.NewWorkflow(
		extract.NewExtractor(primary, cfg.Audit.ReportingCurrency, logger),
		normalize.NewNormalizer(cfg.Audit.ReportingCurrency, rates),
		benchmark.NewResolver(table, logger),
		risk.NewAssessor(regions),
		verify.NewEngine(logger),
		score.NewScorer(score.DefaultConfig(), logger),
		logger,
	)

	ingestor := ingest.NewFSIngestor(docsRepo, logger)

	logger.Info("starting ingestion", "dir", *dir)
	results, stats, err := ingestor.IngestDirectory(ctx, *dir, true)
	if err != nil {
		logger.Error("failed to ingest directory", "error", err)
		os.Exit(1)
	}
	logger.Info("ingestion complete",
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"deduplicated", stats.Deduplicated)

	var docs []audit.Document
	paths := make(map[string]string)
	for _, r := range results {
		if r.Err != "" || r.DocumentID == "" {
			continue
		}
		docs = append(docs, audit.Document{ID: r.DocumentID, RawText: r.RawText})
		paths[r.DocumentID] = r.SourcePath
	}

	n := *workers
	if n <= 0 {
		n = cfg.Audit.BatchWorkers
	}
	logger.Info("starting batch audit", "documents", len(docs), "workers", n)
	records := workflow.RunBatch(ctx, docs, n, *ordered)

	failures := 0
	saved := 0
	for _, rec := range records {
		docID, err := uuid.Parse(rec.DocumentID)
		if err != nil {
			logger.Error("bad document id on record", "document_id", rec.DocumentID)
			failures++
			continue
		}
		if _, err := auditsRepo.Save(ctx, docID, rec); err != nil {
			logger.Error("failed to save audit record", "document_id", rec.DocumentID, "error", err)
			failures++
			continue
		}
		saved++
	}

	logger.Info("exporting to XLSX", "output", *out)
	exportService := export.NewService(db.Client, auditsRepo, docsRepo, logger)
	xlsxBytes, err := exportService.ExportAuditsXLSX(ctx, "", nil)
	if err != nil {
		logger.Error("failed to export audits", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch audit complete",
		"documents", len(docs),
		"saved", saved,
		"failures", failures,
		"output_file", *out)

	fmt.Printf("Batch audit complete!\n")
	fmt.Printf("- Documents audited: %d\n", len(docs))
	fmt.Printf("- Records saved: %d\n", saved)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Output: %s\n", *out)
}

func loadTable(knowledgeDir string) (*benchmark.Table, error) {
	if knowledgeDir == "" {
		return benchmark.DefaultTable()
	}
	return benchmark.LoadTable(filepath.Join(knowledgeDir, "benchmarks.yaml"))
}

func loadRegions(knowledgeDir string) (*risk.Regions, error) {
	if knowledgeDir == "" {
		return risk.DefaultRegions()
	}
	return risk.LoadRegions(filepath.Join(knowledgeDir, "regions.yaml"))
}
