package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/lordkeh111-cyber/Controle-pessoal/internal/core"
)

const (
	InsightTip   InsightKind = "TIP"
	InsightAlert InsightKind = "ALERT"
	InsightGoal  InsightKind = "GOAL"
)

// Food spend above this amount in the current month triggers an alert.
const foodAlertThreshold int64 = 50000

type (
	InsightKind string

	Insight struct {
		Kind    InsightKind `json:"kind"`
		Message string      `json:"message"`
	}

	// Summary feeds the dashboard header: running balance since the first
	// transaction, lifetime income, lifetime outflow, and the last day's
	// activity.
	Summary struct {
		Balance core.Money         `json:"balance"`
		Income  core.Money         `json:"income"`
		Outflow core.Money         `json:"outflow"`
		Recent  []core.Transaction `json:"recent"`
		Insight Insight            `json:"insight"`
	}
)

func isOutflow(t core.TransactionType) bool {
	return t == core.Expense || t == core.BocaPurchase || t == core.LoanTaken
}

// Summarize computes the dashboard totals over the raw transaction list.
// Income adds to the balance; every other type subtracts. Recent holds the
// transactions of the 24 hours before now, newest first.
func Summarize(txs []core.Transaction, goal core.Money, now time.Time) Summary {
	var s Summary
	cutoff := now.Add(-24 * time.Hour).UnixMilli()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var monthExpenses int
	var monthFood int64
	for _, tx := range txs {
		if tx.Type == core.Income {
			s.Balance.Cents += tx.Amount.Cents
			s.Income.Cents += tx.Amount.Cents
		} else {
			s.Balance.Cents -= tx.Amount.Cents
		}
		if isOutflow(tx.Type) {
			s.Outflow.Cents += tx.Amount.Cents
		}
		if tx.Timestamp >= cutoff && tx.Timestamp <= now.UnixMilli() {
			s.Recent = append(s.Recent, tx)
		}
		if tx.Type == core.Expense && inMonth(tx.Timestamp, monthStart.Year(), monthStart.Month()) {
			monthExpenses++
			if tx.Category == "ifood" || tx.Category == "mercado" {
				monthFood += tx.Amount.Cents
			}
		}
	}

	// Callers may pass expanded lists where installment entries interleave,
	// so enforce newest-first on the ordering key.
	sort.SliceStable(s.Recent, func(i, j int) bool {
		return s.Recent[i].Timestamp > s.Recent[j].Timestamp
	})

	s.Insight = insight(monthExpenses, monthFood, goal)
	return s
}

func insight(monthExpenses int, monthFood int64, goal core.Money) Insight {
	switch {
	case monthExpenses < 3:
		return Insight{
			Kind:    InsightTip,
			Message: "Registre seus gastos diariamente para ter uma visão real do seu mês.",
		}
	case monthFood > foodAlertThreshold:
		return Insight{
			Kind:    InsightAlert,
			Message: fmt.Sprintf("Seus gastos com alimentação já passam de %s este mês.", core.Money{Cents: monthFood}.Format()),
		}
	default:
		return Insight{
			Kind:    InsightGoal,
			Message: fmt.Sprintf("Mantenha os gastos do mês abaixo de %s para fechar dentro da meta.", goal.Format()),
		}
	}
}
