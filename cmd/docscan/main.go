package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/hireflow/docscan/constants"
	"github.com/hireflow/docscan/internal/common"
	"github.com/hireflow/docscan/internal/entity"
	"github.com/hireflow/docscan/internal/export"
	"github.com/hireflow/docscan/internal/ocr"
	"github.com/hireflow/docscan/internal/preprocess"
	"github.com/hireflow/docscan/internal/processor"
	"github.com/hireflow/docscan/internal/repository"
	"github.com/hireflow/docscan/internal/validate"
)

func printError(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		file    = flag.String("file", "", "single document image to process")
		dir     = flag.String("dir", "", "directory of document images to process")
		docType = flag.String("type", "", "document type: drivers_license | state_id | passport | work_authorization | ssn (required)")
		lang    = flag.String("lang", "", "document language: en | es (default: auto-detect)")
		inmem   = flag.Bool("inmem", false, "use an in-memory SQLite document store")
		enhance = flag.Bool("enhance", false, "retry low-confidence documents with enhanced processing")
		out     = flag.String("out", "", "output XLSX report path (optional)")
	)
	flag.Parse()

	if *docType == "" {
		printError("Error: --type is required\n")
		os.Exit(1)
	}
	if (*file == "") == (*dir == "") {
		printError("Error: exactly one of --file or --dir is required\n")
		os.Exit(1)
	}
	t := constants.DocumentType(*docType)
	if !constants.IsOCRSupported(t) {
		printError("Error: unsupported document type %q\n", *docType)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	store, err := openStore(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to open document store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	var opts []processor.Option
	if *lang != "" {
		l := constants.Language(*lang)
		if l != constants.LangEnglish && l != constants.LangSpanish {
			printError("Error: unsupported language %q\n", *lang)
			os.Exit(1)
		}
		opts = append(opts, processor.WithLanguage(l))
	}

	engine := ocr.NewTesseractEngine(cfg.OCR.TessdataDir)
	adapter := ocr.NewAdapter(engine, logger)
	pre := preprocess.NewPreprocessor(cfg.OCR.ArtifactCacheDir, logger)
	proc := processor.New(store, pre, adapter, cfg.Pipeline, logger, opts...)

	paths, err := collectPaths(*file, *dir)
	if err != nil {
		logger.Error("failed to collect input files", "error", err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		printError("Error: no supported image files found\n")
		os.Exit(1)
	}

	ids := make([]uuid.UUID, 0, len(paths))
	for _, path := range paths {
		doc := entity.DocumentRecord{
			ID:           uuid.New(),
			FilePath:     path,
			DocumentType: t,
			MimeType:     mime.TypeByExtension(filepath.Ext(path)),
			UploadedAt:   time.Now().UTC(),
		}
		if err := store.Insert(ctx, doc); err != nil {
			logger.Error("failed to register document", "path", path, "error", err)
			os.Exit(1)
		}
		ids = append(ids, doc.ID)
	}

	logger.Info("starting batch", "documents", len(ids), "type", t, "lang", *lang)
	outcomes := proc.ProcessBatch(ctx, ids)

	if *enhance {
		for id, o := range outcomes {
			if o.Err != nil || o.Result == nil || !o.Review {
				continue
			}
			res, err := proc.ProcessDocumentEnhanced(ctx, id)
			if err != nil {
				logger.Error("enhanced retry failed", "document_id", id, "error", err)
				continue
			}
			outcomes[id] = processor.BatchOutcome{Result: res, Review: processor.RequiresManualReview(res)}
		}
	}

	completed, failed, review := 0, 0, 0
	for id, o := range outcomes {
		if o.Result != nil && o.Result.ProcessingStatus == constants.StatusCompleted {
			completed++
		} else {
			failed++
		}
		if o.Review {
			review++
		}
		if o.Result != nil {
			vr := validate.ExtractedData(o.Result)
			logger.Info("document processed",
				"document_id", id,
				"status", o.Result.ProcessingStatus,
				"confidence", o.Result.Confidence,
				"level", processor.ConfidenceMessageKey(o.Result.Confidence),
				"valid", vr.IsValid,
				"validation_errors", len(vr.Errors),
				"needs_review", o.Review,
			)
		}
	}

	if *out != "" {
		reportBytes, err := export.NewService(store, logger).BatchReportXLSX(ctx, outcomes)
		if err != nil {
			logger.Error("failed to build report", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, reportBytes, 0o644); err != nil {
			logger.Error("failed to write report", "path", *out, "error", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Batch complete!\n")
	fmt.Printf("- Documents: %d\n", len(ids))
	fmt.Printf("- Completed: %d\n", completed)
	fmt.Printf("- Failed: %d\n", failed)
	fmt.Printf("- Needs review: %d\n", review)
	if *out != "" {
		fmt.Printf("- Report: %s\n", *out)
	}
}

// openStore picks the backing store: in-memory SQLite for local runs,
// Postgres when DB_URL is set, a local SQLite file otherwise.
func openStore(ctx context.Context, cfg *common.Config, inmem bool, logger *slog.Logger) (repository.DocumentStore, error) {
	if inmem {
		return repository.OpenSQLite(ctx, ":memory:", logger)
	}
	if cfg.Store.DSN != "" {
		store, err := repository.OpenPostgres(ctx, cfg.Store, logger)
		if err != nil {
			return nil, err
		}
		if err := store.HealthCheck(ctx); err != nil {
			_ = store.Close()
			return nil, err
		}
		return store, nil
	}
	return repository.OpenSQLite(ctx, "docscan.db", logger)
}

func collectPaths(file, dir string) ([]string, error) {
	if file != "" {
		return []string{file}, nil
	}
	var paths []string
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if constants.IsAllowedExt(filepath.Ext(e.Name())) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	return paths, nil
}
