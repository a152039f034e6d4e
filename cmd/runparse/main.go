package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/amani-mollel/invoice-tracker/internal/common"
	"github.com/amani-mollel/invoice-tracker/internal/contract"
	"github.com/amani-mollel/invoice-tracker/internal/parse"
	"github.com/amani-mollel/invoice-tracker/internal/pdftext"
)

// runparse extracts and parses one invoice document and prints the result
// JSON to stdout. It never touches the database; use it to inspect what the
// pipeline would persist for a given file.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runparse <path-to-document>")
		os.Exit(2)
	}
	path := os.Args[1]
	if _, err := os.Stat(path); err != nil {
		logger.Error("cannot read input file", "path", path, "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	extractor := pdftext.NewExtractor(pdftext.Config{
		Pdftotext:     cfg.Extract.Pdftotext,
		Pdftoppm:      cfg.Extract.Pdftoppm,
		Tesseract:     cfg.Extract.Tesseract,
		TesseractLang: cfg.Extract.TesseractLang,
		TessdataDir:   cfg.Extract.TessdataDir,
		DPI:           cfg.Extract.DPI,
		MaxPages:      cfg.Extract.MaxPages,
	}, logger)

	tr, err := extractor.Extract(ctx, path)
	if err != nil {
		logger.Error("text extraction failed", "path", path, "error", err)
		os.Exit(1)
	}
	logger.Info("text extracted",
		"method", tr.Method,
		"pages", tr.PageCount,
		"confidence", tr.Confidence,
		"elapsed_ms", tr.Duration.Milliseconds())

	parser := parse.NewParser(logger)
	result := parser.Parse(tr.Pages)

	raw, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Error("marshal result", "error", err)
		os.Exit(1)
	}
	if err := contract.ValidateResultJSON(raw); err != nil {
		logger.Error("result failed contract validation", "error", err)
		os.Exit(1)
	}

	fmt.Println(string(raw))
	if !result.Success {
		os.Exit(1)
	}
}
