package ledger

import (
	"time"

	"github.com/lordkeh111-cyber/Controle-pessoal/internal/core"
)

type (
	// MonthSummary compares one calendar month against the previous one.
	// Expense counts every non-income entry, matching the monthly report.
	MonthSummary struct {
		Income      core.Money `json:"income"`
		Expense     core.Money `json:"expense"`
		Balance     core.Money `json:"balance"`
		PrevIncome  core.Money `json:"prevIncome"`
		PrevExpense core.Money `json:"prevExpense"`
		IncomeDiff  float64    `json:"incomeDiff"`
		ExpenseDiff float64    `json:"expenseDiff"`
	}

	// RangeSummary compares an arbitrary [start,end] window against the
	// window of equal duration immediately before it. Expense here is strict
	// EXPENSE only.
	RangeSummary struct {
		Income      core.Money `json:"income"`
		Expense     core.Money `json:"expense"`
		Balance     core.Money `json:"balance"`
		PrevIncome  core.Money `json:"prevIncome"`
		PrevExpense core.Money `json:"prevExpense"`
		IncomeDiff  float64    `json:"incomeDiff"`
		ExpenseDiff float64    `json:"expenseDiff"`
	}
)

// Diff is the percent change from prev to curr. A zero previous value yields
// zero, not infinity.
func Diff(curr, prev int64) float64 {
	if prev == 0 {
		return 0
	}
	return float64(curr-prev) / float64(prev) * 100
}

// rangeDiff is the comparison-screen variant: growth from nothing counts as
// a full 100%.
func rangeDiff(curr, prev int64) float64 {
	if prev == 0 {
		if curr > 0 {
			return 100
		}
		return 0
	}
	return float64(curr-prev) / float64(prev) * 100
}

func inMonth(ts int64, year int, month time.Month) bool {
	t := time.UnixMilli(ts).UTC()
	return t.Year() == year && t.Month() == month
}

// MonthStats aggregates the given expanded transactions for one calendar
// month and its predecessor. Pass the output of Expand so installments land
// in their own months.
func MonthStats(expanded []core.Transaction, year int, month time.Month) MonthSummary {
	prev := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)

	var s MonthSummary
	for _, tx := range expanded {
		switch {
		case inMonth(tx.Timestamp, year, month):
			if tx.Type == core.Income {
				s.Income.Cents += tx.Amount.Cents
			} else {
				s.Expense.Cents += tx.Amount.Cents
			}
		case inMonth(tx.Timestamp, prev.Year(), prev.Month()):
			if tx.Type == core.Income {
				s.PrevIncome.Cents += tx.Amount.Cents
			} else {
				s.PrevExpense.Cents += tx.Amount.Cents
			}
		}
	}
	s.Balance.Cents = s.Income.Cents - s.Expense.Cents
	s.IncomeDiff = Diff(s.Income.Cents, s.PrevIncome.Cents)
	s.ExpenseDiff = Diff(s.Expense.Cents, s.PrevExpense.Cents)
	return s
}

// RangeStats aggregates [start,end] (epoch ms, inclusive) and the window of
// equal millisecond duration ending 1 ms before start.
func RangeStats(txs []core.Transaction, start, end int64) RangeSummary {
	span := end - start
	prevEnd := start - 1
	prevStart := prevEnd - span

	var s RangeSummary
	for _, tx := range txs {
		switch {
		case tx.Timestamp >= start && tx.Timestamp <= end:
			switch tx.Type {
			case core.Income:
				s.Income.Cents += tx.Amount.Cents
			case core.Expense:
				s.Expense.Cents += tx.Amount.Cents
			}
		case tx.Timestamp >= prevStart && tx.Timestamp <= prevEnd:
			switch tx.Type {
			case core.Income:
				s.PrevIncome.Cents += tx.Amount.Cents
			case core.Expense:
				s.PrevExpense.Cents += tx.Amount.Cents
			}
		}
	}
	s.Balance.Cents = s.Income.Cents - s.Expense.Cents
	s.IncomeDiff = rangeDiff(s.Income.Cents, s.PrevIncome.Cents)
	s.ExpenseDiff = rangeDiff(s.Expense.Cents, s.PrevExpense.Cents)
	return s
}

// MonthFlow is one bar of the yearly chart.
type MonthFlow struct {
	Month   time.Month `json:"month"`
	Income  core.Money `json:"income"`
	Expense core.Money `json:"expense"`
}

// YearFlow returns twelve income/expense pairs for the given year.
func YearFlow(expanded []core.Transaction, year int) []MonthFlow {
	flows := make([]MonthFlow, 12)
	for i := range flows {
		flows[i].Month = time.Month(i + 1)
	}
	for _, tx := range expanded {
		t := time.UnixMilli(tx.Timestamp).UTC()
		if t.Year() != year {
			continue
		}
		f := &flows[int(t.Month())-1]
		if tx.Type == core.Income {
			f.Income.Cents += tx.Amount.Cents
		} else {
			f.Expense.Cents += tx.Amount.Cents
		}
	}
	return flows
}

// GoalProgress returns expense as a percentage of the goal, capped at 100.
func GoalProgress(expense, goal core.Money) float64 {
	if goal.Cents <= 0 {
		return 0
	}
	p := float64(expense.Cents) / float64(goal.Cents) * 100
	if p > 100 {
		return 100
	}
	return p
}
