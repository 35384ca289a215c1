package ledger

import (
	"strings"
	"testing"
	"time"

	"github.com/lordkeh111-cyber/Controle-pessoal/internal/core"
)

func TestSummarize(t *testing.T) {
	now := time.Date(2025, time.March, 15, 18, 0, 0, 0, time.UTC)
	goal := core.Money{Cents: 300000}

	txs := []core.Transaction{
		tx(core.Income, 500000, now.Add(-2*time.Hour)),
		tx(core.Expense, 100000, now.Add(-3*time.Hour)),
		tx(core.LoanTaken, 50000, now.Add(-48*time.Hour)),   // outflow, outside 24h
		tx(core.LoanGiven, 20000, now.Add(-72*time.Hour)),   // subtracts, not outflow
		tx(core.BocaPurchase, 10000, now.Add(-96*time.Hour)), // outflow
	}

	s := Summarize(txs, goal, now)

	if s.Balance.Cents != 500000-100000-50000-20000-10000 {
		t.Errorf("balance = %d", s.Balance.Cents)
	}
	if s.Income.Cents != 500000 {
		t.Errorf("income = %d", s.Income.Cents)
	}
	if s.Outflow.Cents != 100000+50000+10000 {
		t.Errorf("outflow = %d", s.Outflow.Cents)
	}
	if len(s.Recent) != 2 {
		t.Fatalf("recent = %d entries, want 2", len(s.Recent))
	}
	if s.Recent[0].Timestamp < s.Recent[1].Timestamp {
		t.Error("recent not sorted newest first")
	}
}

func TestInsightHeuristics(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	goal := core.Money{Cents: 300000}

	t.Run("few expenses yields tip", func(t *testing.T) {
		s := Summarize([]core.Transaction{
			catTx("mercado", 10000, now.Add(-time.Hour)),
		}, goal, now)
		if s.Insight.Kind != InsightTip {
			t.Errorf("kind = %s, want TIP", s.Insight.Kind)
		}
	})

	t.Run("heavy food spend yields alert", func(t *testing.T) {
		s := Summarize([]core.Transaction{
			catTx("ifood", 30000, now.Add(-time.Hour)),
			catTx("mercado", 25000, now.Add(-2*time.Hour)),
			catTx("luz", 4000, now.Add(-3*time.Hour)),
		}, goal, now)
		if s.Insight.Kind != InsightAlert {
			t.Fatalf("kind = %s, want ALERT", s.Insight.Kind)
		}
		if !strings.Contains(s.Insight.Message, "R$ 550,00") {
			t.Errorf("message = %q, want food total in it", s.Insight.Message)
		}
	})

	t.Run("otherwise goal note", func(t *testing.T) {
		s := Summarize([]core.Transaction{
			catTx("luz", 4000, now.Add(-time.Hour)),
			catTx("agua", 3000, now.Add(-2*time.Hour)),
			catTx("internet", 9000, now.Add(-3*time.Hour)),
		}, goal, now)
		if s.Insight.Kind != InsightGoal {
			t.Errorf("kind = %s, want GOAL", s.Insight.Kind)
		}
		if !strings.Contains(s.Insight.Message, "R$ 3000,00") {
			t.Errorf("message = %q, want goal amount in it", s.Insight.Message)
		}
	})
}
