package state

import (
	"fmt"
	"sort"
	"time"

	"github.com/lordkeh111-cyber/Controle-pessoal/internal/core"
)

const (
	NotificationAlert    NotificationKind = "ALERT"
	NotificationReminder NotificationKind = "REMINDER"
)

type (
	NotificationKind string

	// Notification is one row of the due-payment panel.
	Notification struct {
		TransactionID string           `json:"transactionId"`
		Kind          NotificationKind `json:"kind"`
		Title         string           `json:"title"`
		Message       string           `json:"message"`
		DueDate       string           `json:"dueDate"`
	}
)

// Notifications scans stored transactions for payment due dates at or before
// today: past dates are alerts, today's are reminders. Sorted by due date
// descending.
func (a *App) Notifications(now time.Time) []Notification {
	today := now.Format("2006-01-02")

	a.mu.RLock()
	defer a.mu.RUnlock()

	var out []Notification
	for _, tx := range a.txs {
		if tx.PaymentDate == "" || tx.PaymentDate > today {
			continue
		}
		n := Notification{
			TransactionID: tx.ID,
			Title:         tx.Title,
			DueDate:       tx.PaymentDate,
		}
		if tx.PaymentDate == today {
			n.Kind = NotificationReminder
			n.Message = fmt.Sprintf("%s de %s vence hoje.", tx.Title, tx.Amount.Format())
		} else {
			n.Kind = NotificationAlert
			n.Message = fmt.Sprintf("%s de %s venceu em %s.", tx.Title, tx.Amount.Format(), tx.PaymentDate)
		}
		out = append(out, n)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate > out[j].DueDate
	})
	return out
}

// HasDueToday backs the notification badge.
func (a *App) HasDueToday(now time.Time) bool {
	today := now.Format("2006-01-02")

	a.mu.RLock()
	defer a.mu.RUnlock()

	for _, tx := range a.txs {
		if tx.PaymentDate == today {
			return true
		}
	}
	return false
}

// DueSpecialOperations lists transactions whose payment date has arrived,
// for the worker's periodic rescan.
func (a *App) DueSpecialOperations(now time.Time) []core.Transaction {
	today := now.Format("2006-01-02")

	a.mu.RLock()
	defer a.mu.RUnlock()

	var out []core.Transaction
	for _, tx := range a.txs {
		if tx.PaymentDate != "" && tx.PaymentDate <= today {
			out = append(out, tx)
		}
	}
	return out
}
