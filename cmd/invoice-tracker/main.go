package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	v1 "github.com/amani-mollel/invoice-tracker/gen/proto/invoices/v1"
	"github.com/amani-mollel/invoice-tracker/internal/async"
	"github.com/amani-mollel/invoice-tracker/internal/common"
	"github.com/amani-mollel/invoice-tracker/internal/export"
	"github.com/amani-mollel/invoice-tracker/internal/extract"
	"github.com/amani-mollel/invoice-tracker/internal/ingest"
	"github.com/amani-mollel/invoice-tracker/internal/parse"
	"github.com/amani-mollel/invoice-tracker/internal/pdftext"
	"github.com/amani-mollel/invoice-tracker/internal/pipeline"
	repo "github.com/amani-mollel/invoice-tracker/internal/repository"
	svc "github.com/amani-mollel/invoice-tracker/internal/server"
)

func main() {
	// Setup structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := common.InitDatabase(ctx, cfg, false, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Cleanup()
	entc := db.Client

	// gRPC server
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	customersRepo := repo.NewCustomerRepository(entc, logger)
	invoicesRepo := repo.NewInvoiceRepository(entc, customersRepo, logger)
	filesRepo := repo.NewInvoiceFileRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)

	// Text extraction pipeline (pdftotext with OCR fallback)
	extractor := pdftext.NewExtractor(pdftext.Config{
		Pdftotext:     cfg.Extract.Pdftotext,
		Pdftoppm:      cfg.Extract.Pdftoppm,
		Tesseract:     cfg.Extract.Tesseract,
		TesseractLang: cfg.Extract.TesseractLang,
		TessdataDir:   cfg.Extract.TessdataDir,
		DPI:           cfg.Extract.DPI,
		MaxPages:      cfg.Extract.MaxPages,
	}, logger)
	textAdapter := extract.NewPDFTextAdapter(extractor, logger)
	textStage := pipeline.NewTextStage(filesRepo, jobsRepo, textAdapter, logger)

	// Structural parse pipeline
	parser := parse.NewParser(logger)
	parseStage := pipeline.NewParseStage(logger, jobsRepo, invoicesRepo, parser)

	// Orchestrator
	processor := pipeline.NewProcessor(logger, textStage, parseStage)

	invoicesService := svc.NewInvoiceService(invoicesRepo, customersRepo, parser, logger)
	v1.RegisterInvoicesServiceServer(grpcServer, invoicesService)

	exportService := export.NewService(entc, invoicesRepo, customersRepo, logger)
	v1.RegisterExportServiceServer(grpcServer, svc.NewExportServer(exportService, logger))

	ingestor := ingest.NewFSIngestor(filesRepo, logger)
	ingestionService := svc.NewIngestionService(ingestor, processor, logger)
	v1.RegisterIngestionServiceServer(grpcServer, ingestionService)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(cfg.Ingest.Workers),
		async.WithQueueSize(cfg.Ingest.QueueSize),
		async.WithProcessTimeout(cfg.Ingest.ProcessTimeout),
	)

	// Watch directories for dropped invoice documents; each new file is
	// ingested and queued for background processing.
	if len(cfg.Ingest.WatchDirs) > 0 {
		paths, watchErrs, werr := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Roots:       cfg.Ingest.WatchDirs,
			InitialScan: true,
			Debounce:    cfg.Ingest.WatchDebounce,
		}, logger)
		if werr != nil {
			logger.Error("failed to start directory watcher", "dirs", cfg.Ingest.WatchDirs, "error", werr)
			os.Exit(1)
		}
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case p, ok := <-paths:
					if !ok {
						return
					}
					r, ierr := ingestor.IngestPath(ctx, p)
					if ierr != nil {
						logger.Error("watch ingest failed", "path", p, "error", ierr)
						continue
					}
					fileID, perr := uuid.Parse(r.FileID)
					if perr != nil {
						logger.Error("watch ingest returned bad file id", "path", p, "file_id", r.FileID)
						continue
					}
					_ = queue.Enqueue(ctx, async.Job{FileID: fileID, SubmittedAt: time.Now()})
				case werr, ok := <-watchErrs:
					if ok && werr != nil {
						logger.Warn("watcher reported error", "error", werr)
					}
				}
			}
		}()
		logger.Info("watching directories", "dirs", cfg.Ingest.WatchDirs)
	}

	// Register gRPC health service
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("invoice-tracker listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
