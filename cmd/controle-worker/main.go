package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/lordkeh111-cyber/Controle-pessoal/internal/amqp"
	"github.com/lordkeh111-cyber/Controle-pessoal/internal/cli"
	"github.com/lordkeh111-cyber/Controle-pessoal/internal/export/google"
	"github.com/lordkeh111-cyber/Controle-pessoal/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	st := cli.OpenStore(logger, cfg)
	defer st.Close()

	var consumer worker.Consumer
	if cfg.AMQPURL != "" {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to connect to AMQP", "error", err)
			os.Exit(1)
		}
		defer client.Close()
		consumer = client
	} else {
		logger.Info("AMQP not configured, running rescan only")
	}

	var exporter worker.Exporter
	if cfg.SheetsEnabled() {
		client, err := google.New(context.Background(), cfg.GoogleSpreadsheetID, cfg.GoogleSheetName,
			cfg.GoogleCredentialsFile, cfg.GoogleCredentialsJSON)
		if err != nil {
			logger.Error("Failed to initialize Sheets export", "error", err)
			os.Exit(1)
		}
		exporter = client
		logger.Info("Sheets export enabled", "spreadsheet_id", cfg.GoogleSpreadsheetID)
	}

	w := worker.New(st, consumer, exporter, cfg.RescanInterval, logger)

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, nil)

	logger.Info("Starting reminder worker", "rescan_interval", cfg.RescanInterval.String())
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker error", "error", err)
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
	logger.Info("Worker stopped gracefully")
}
