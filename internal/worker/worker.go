// Package worker runs the reminder consumer and the periodic due-date
// rescan. The rescan catches reminders whose broker publish was lost and
// feeds the optional Sheets export.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lordkeh111-cyber/Controle-pessoal/internal/amqp"
	"github.com/lordkeh111-cyber/Controle-pessoal/internal/core"
	"github.com/lordkeh111-cyber/Controle-pessoal/internal/store"
)

type (
	// Consumer is satisfied by the AMQP client. A nil consumer disables the
	// broker path and leaves only the rescan.
	Consumer interface {
		ConsumeReminders(ctx context.Context, handler func(*amqp.ReminderMessage) error) error
	}

	// Exporter is satisfied by the Google Sheets client.
	Exporter interface {
		Append(ctx context.Context, txs ...core.Transaction) error
	}

	Worker struct {
		store    *store.Store
		consumer Consumer
		exporter Exporter
		interval time.Duration
		logger   *slog.Logger

		exported map[string]bool
	}
)

func New(st *store.Store, consumer Consumer, exporter Exporter, interval time.Duration, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{
		store:    st,
		consumer: consumer,
		exporter: exporter,
		interval: interval,
		logger:   logger,
		exported: make(map[string]bool),
	}
}

// Run blocks until the context is cancelled or a goroutine fails.
func (w *Worker) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	if w.consumer != nil {
		g.Go(func() error {
			err := w.consumer.ConsumeReminders(ctx, w.handleReminder)
			if err != nil && ctx.Err() != nil {
				return nil
			}
			return err
		})
	}

	g.Go(func() error {
		return w.rescanLoop(ctx)
	})

	return g.Wait()
}

func (w *Worker) handleReminder(msg *amqp.ReminderMessage) error {
	w.logger.Info("payment reminder received",
		"transaction_id", msg.TransactionID,
		"title", msg.Title,
		"amount", core.Money{Cents: msg.AmountCents}.Format(),
		"person", msg.PersonName,
		"due_date", msg.DueDate)
	return nil
}

func (w *Worker) rescanLoop(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// One pass at startup so a restart does not wait a full interval.
	if err := w.rescan(ctx); err != nil {
		w.logger.ErrorContext(ctx, "rescan failed", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := w.rescan(ctx); err != nil {
				w.logger.ErrorContext(ctx, "rescan failed", "error", err)
			}
		}
	}
}

// rescan walks the stored transactions, logs any due special operation and
// exports transactions not yet sent to the sheet.
func (w *Worker) rescan(ctx context.Context) error {
	txs, err := w.store.LoadTransactions(ctx)
	if err != nil {
		return fmt.Errorf("load transactions: %w", err)
	}

	today := time.Now().Format("2006-01-02")
	for _, tx := range txs {
		if tx.PaymentDate != "" && tx.PaymentDate <= today {
			w.logger.InfoContext(ctx, "payment due",
				"transaction_id", tx.ID,
				"title", tx.Title,
				"due_date", tx.PaymentDate,
				"overdue", tx.PaymentDate < today)
		}
	}

	if w.exporter == nil {
		return nil
	}

	var pending []core.Transaction
	for _, tx := range txs {
		if !w.exported[tx.ID] {
			pending = append(pending, tx)
		}
	}
	if len(pending) == 0 {
		return nil
	}

	if err := w.exporter.Append(ctx, pending...); err != nil {
		return fmt.Errorf("export transactions: %w", err)
	}
	for _, tx := range pending {
		w.exported[tx.ID] = true
	}
	w.logger.InfoContext(ctx, "transactions exported", "count", len(pending))
	return nil
}
