// Package ledger derives analytics from the raw transaction list: installment
// expansion, period and category aggregation, and the dashboard summary.
// Everything here is pure; expansion is recomputed on every read and never
// persisted.
package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/lordkeh111-cyber/Controle-pessoal/internal/core"
)

const installmentSeparator = "-inst-"

// Expand turns each multi-installment credit purchase into one synthetic
// entry per installment, dated the first day of consecutive months starting
// at the purchase month. All other transactions pass through unchanged.
//
// Per-entry amounts are the cent division of the total; the remainder is
// spread one cent at a time over the earliest installments so the entries
// always sum to the original amount.
func Expand(txs []core.Transaction) []core.Transaction {
	out := make([]core.Transaction, 0, len(txs))
	for _, tx := range txs {
		n := tx.Installments()
		// CurrentInstallment > 0 marks an already-expanded entry, so a second
		// pass over expanded output is a no-op.
		if tx.PaymentMethod != core.Credit || n <= 1 || tx.CurrentInstallment > 0 {
			out = append(out, tx)
			continue
		}
		base := int64(n)
		per := tx.Amount.Cents / base
		rem := tx.Amount.Cents % base
		origin := time.UnixMilli(tx.Timestamp).UTC()
		for i := 0; i < n; i++ {
			due := time.Date(origin.Year(), origin.Month()+time.Month(i), 1, 0, 0, 0, 0, time.UTC)
			entry := tx
			entry.ID = fmt.Sprintf("%s%s%d", tx.ID, installmentSeparator, i)
			entry.Title = fmt.Sprintf("%s (%d/%d)", tx.Title, i+1, n)
			entry.Amount = core.Money{Cents: per}
			if int64(i) < rem {
				entry.Amount.Cents++
			}
			entry.CurrentInstallment = i + 1
			entry.Timestamp = due.UnixMilli()
			entry.Date = due.Format("2006-01-02")
			out = append(out, entry)
		}
	}
	return out
}

// ResolveBaseID maps an installment entry id back to the stored transaction
// id. Plain ids are returned unchanged.
func ResolveBaseID(id string) string {
	if idx := strings.Index(id, installmentSeparator); idx >= 0 {
		return id[:idx]
	}
	return id
}
