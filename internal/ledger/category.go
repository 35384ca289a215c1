package ledger

import (
	"sort"
	"time"

	"github.com/lordkeh111-cyber/Controle-pessoal/internal/core"
)

// CategoryTotal is one slice of the category chart.
type CategoryTotal struct {
	Key   string     `json:"key"`
	Name  string     `json:"name"`
	Color string     `json:"color"`
	Total core.Money `json:"total"`
}

// CategoryBreakdown sums non-income amounts by category for one calendar
// month of the expanded list. Unknown category keys resolve to the neutral
// fallback entry. Results are sorted descending by total; ties keep
// first-appearance order. Callers wanting a top-N slice the result.
func CategoryBreakdown(expanded []core.Transaction, year int, month time.Month) []CategoryTotal {
	totals := make(map[string]int64)
	var order []string
	for _, tx := range expanded {
		if tx.Type == core.Income || !inMonth(tx.Timestamp, year, month) {
			continue
		}
		if _, seen := totals[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		totals[tx.Category] += tx.Amount.Cents
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, key := range order {
		cat := core.ResolveCategory(key)
		out = append(out, CategoryTotal{
			Key:   key,
			Name:  cat.Name,
			Color: cat.Color,
			Total: core.Money{Cents: totals[key]},
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.Cents > out[j].Total.Cents
	})
	return out
}
