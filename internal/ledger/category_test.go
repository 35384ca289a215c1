package ledger

import (
	"testing"
	"time"

	"github.com/lordkeh111-cyber/Controle-pessoal/internal/core"
)

func catTx(category string, cents int64, ts time.Time) core.Transaction {
	t := tx(core.Expense, cents, ts)
	t.Category = category
	return t
}

func TestCategoryBreakdown(t *testing.T) {
	march := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	txs := []core.Transaction{
		catTx("mercado", 10000, march),
		catTx("mercado", 5000, march.Add(time.Hour)),
		catTx("categoria_fantasma", 3000, march.Add(2*time.Hour)),
		catTx("mercado", 7777, march.AddDate(0, 1, 0)), // next month
	}
	income := tx(core.Income, 999999, march)
	income.Category = "salario"
	txs = append(txs, income)

	got := CategoryBreakdown(txs, 2025, time.March)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2: %+v", len(got), got)
	}
	if got[0].Name != "Mercado" || got[0].Total.Cents != 15000 {
		t.Errorf("first = %+v, want Mercado 15000", got[0])
	}
	if got[1].Name != core.FallbackCategoryName || got[1].Total.Cents != 3000 {
		t.Errorf("second = %+v, want Outros 3000", got[1])
	}
	if got[1].Color != core.FallbackCategoryColor {
		t.Errorf("fallback color = %q", got[1].Color)
	}
}

func TestCategoryBreakdownTiesKeepFirstAppearance(t *testing.T) {
	march := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	got := CategoryBreakdown([]core.Transaction{
		catTx("luz", 5000, march),
		catTx("agua", 5000, march.Add(time.Minute)),
	}, 2025, time.March)

	if len(got) != 2 {
		t.Fatalf("len = %d", len(got))
	}
	if got[0].Key != "luz" || got[1].Key != "agua" {
		t.Errorf("tie order = %s, %s; want luz, agua", got[0].Key, got[1].Key)
	}
}

func TestCategoryBreakdownIncludesNonExpenseOutflows(t *testing.T) {
	march := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	loan := tx(core.LoanTaken, 8000, march)
	loan.Category = "outras_despesas"

	got := CategoryBreakdown([]core.Transaction{loan}, 2025, time.March)
	if len(got) != 1 || got[0].Total.Cents != 8000 {
		t.Errorf("got %+v, want one entry of 8000", got)
	}
}
