package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lordkeh111-cyber/Controle-pessoal/internal/core"
	"github.com/lordkeh111-cyber/Controle-pessoal/internal/store"
)

type captureExporter struct {
	batches [][]core.Transaction
	err     error
}

func (e *captureExporter) Append(_ context.Context, txs ...core.Transaction) error {
	if e.err != nil {
		return e.err
	}
	e.batches = append(e.batches, txs)
	return nil
}

func seedStore(t *testing.T, txs []core.Transaction) *store.Store {
	t.Helper()
	st := store.New(store.NewMemoryKV())
	if err := st.SaveTransactions(context.Background(), txs); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return st
}

func TestRescanExportsOnlyNewTransactions(t *testing.T) {
	ctx := context.Background()
	st := seedStore(t, []core.Transaction{
		{ID: "t1", Title: "a", Amount: core.Money{Cents: 100}, Type: core.Expense, PaymentMethod: core.Pix},
		{ID: "t2", Title: "b", Amount: core.Money{Cents: 200}, Type: core.Income, PaymentMethod: core.Cash},
	})
	exp := &captureExporter{}
	w := New(st, nil, exp, time.Minute, nil)

	if err := w.rescan(ctx); err != nil {
		t.Fatalf("first rescan: %v", err)
	}
	if len(exp.batches) != 1 || len(exp.batches[0]) != 2 {
		t.Fatalf("first export batches = %+v", exp.batches)
	}

	// Second pass exports nothing new.
	if err := w.rescan(ctx); err != nil {
		t.Fatalf("second rescan: %v", err)
	}
	if len(exp.batches) != 1 {
		t.Errorf("re-exported already seen transactions")
	}

	// A new transaction goes out alone.
	txs, _ := st.LoadTransactions(ctx)
	txs = append(txs, core.Transaction{ID: "t3", Title: "c", Amount: core.Money{Cents: 300}, Type: core.Expense, PaymentMethod: core.Pix})
	st.SaveTransactions(ctx, txs)

	if err := w.rescan(ctx); err != nil {
		t.Fatalf("third rescan: %v", err)
	}
	if len(exp.batches) != 2 || len(exp.batches[1]) != 1 || exp.batches[1][0].ID != "t3" {
		t.Errorf("incremental export batches = %+v", exp.batches)
	}
}

func TestRescanExportFailureKeepsPending(t *testing.T) {
	ctx := context.Background()
	st := seedStore(t, []core.Transaction{
		{ID: "t1", Title: "a", Amount: core.Money{Cents: 100}, Type: core.Expense, PaymentMethod: core.Pix},
	})
	exp := &captureExporter{err: errors.New("sheets down")}
	w := New(st, nil, exp, time.Minute, nil)

	if err := w.rescan(ctx); err == nil {
		t.Fatal("expected export error")
	}

	// After recovery the transaction is still pending.
	exp.err = nil
	if err := w.rescan(ctx); err != nil {
		t.Fatalf("rescan after recovery: %v", err)
	}
	if len(exp.batches) != 1 || exp.batches[0][0].ID != "t1" {
		t.Errorf("batches = %+v", exp.batches)
	}
}

func TestRescanWithoutExporter(t *testing.T) {
	st := seedStore(t, []core.Transaction{
		{ID: "t1", Title: "a", Amount: core.Money{Cents: 100}, Type: core.LoanGiven, PaymentMethod: core.Pix, PaymentDate: "2020-01-01"},
	})
	w := New(st, nil, nil, time.Minute, nil)
	if err := w.rescan(context.Background()); err != nil {
		t.Fatalf("rescan: %v", err)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	st := seedStore(t, nil)
	w := New(st, nil, nil, 10*time.Millisecond, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := w.Run(ctx); err != nil {
		t.Fatalf("Run returned %v", err)
	}
}
