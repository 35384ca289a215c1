// Package state is the single owner of application data: user, cards,
// transactions and budget projects. Every mutation validates first, updates
// the in-memory collections, then persists the affected blobs whole. Readers
// get copies, never the internal slices.
package state

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lordkeh111-cyber/Controle-pessoal/internal/amqp"
	"github.com/lordkeh111-cyber/Controle-pessoal/internal/core"
	"github.com/lordkeh111-cyber/Controle-pessoal/internal/ledger"
	"github.com/lordkeh111-cyber/Controle-pessoal/internal/store"
)

// ReminderPublisher is satisfied by the AMQP client. A nil publisher
// disables reminders.
type ReminderPublisher interface {
	PublishReminder(ctx context.Context, msg *amqp.ReminderMessage) error
}

type App struct {
	mu        sync.RWMutex
	store     *store.Store
	publisher ReminderPublisher
	logger    *slog.Logger

	user     *core.User
	txs      []core.Transaction
	cards    []core.CreditCard
	projects []core.BudgetProject
}

// New loads all collections from the store. A nil logger falls back to the
// default slog logger.
func New(ctx context.Context, st *store.Store, pub ReminderPublisher, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	a := &App{store: st, publisher: pub, logger: logger}

	var err error
	if a.user, err = st.LoadUser(ctx); err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if a.txs, err = st.LoadTransactions(ctx); err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	if a.cards, err = st.LoadCards(ctx); err != nil {
		return nil, fmt.Errorf("load cards: %w", err)
	}
	if a.projects, err = st.LoadProjects(ctx); err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	return a, nil
}

// User returns a copy of the signed-in user, or nil.
func (a *App) User() *core.User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.user == nil {
		return nil
	}
	u := *a.user
	return &u
}

// Transactions returns a copy of the stored list, newest first.
func (a *App) Transactions() []core.Transaction {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]core.Transaction, len(a.txs))
	copy(out, a.txs)
	return out
}

func (a *App) Cards() []core.CreditCard {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]core.CreditCard, len(a.cards))
	copy(out, a.cards)
	return out
}

// AddTransaction validates, stores the transaction at the head of the list,
// spends down the referenced card's limit and persists both blobs. A payment
// due date additionally emits a reminder message; broker failures are logged
// and swallowed.
func (a *App) AddTransaction(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if tx.Timestamp == 0 {
		now := time.Now()
		tx.Timestamp = now.UnixMilli()
		tx.Date = now.Format("2006-01-02")
		tx.Time = now.Format("15:04")
	}
	tx.Title = strings.TrimSpace(tx.Title)

	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// Stage both mutations on copies; a.txs and a.cards change only after
	// every save succeeds, so a failed save leaves no partial state.
	txs := append([]core.Transaction{tx}, a.txs...)
	cards, cardsChanged := spendDownCard(a.cards, tx)

	if err := a.store.SaveTransactions(ctx, txs); err != nil {
		return core.Transaction{}, err
	}
	if cardsChanged {
		if err := a.store.SaveCards(ctx, cards); err != nil {
			// Put the transaction blob back so the store matches the error
			// the caller sees.
			if rbErr := a.store.SaveTransactions(ctx, a.txs); rbErr != nil {
				a.logger.ErrorContext(ctx, "transaction rollback failed", "transaction_id", tx.ID, "error", rbErr)
			}
			return core.Transaction{}, err
		}
	}
	a.txs = txs
	a.cards = cards

	if tx.PaymentDate != "" && a.publisher != nil {
		msg := amqp.NewReminderMessage(tx.ID, tx.Title, tx.Amount.Cents, tx.PersonName, tx.PaymentDate)
		if err := a.publisher.PublishReminder(ctx, msg); err != nil {
			a.logger.WarnContext(ctx, "reminder publish failed", "transaction_id", tx.ID, "error", err)
		}
	}

	return tx, nil
}

// spendDownCard returns the card list with the referenced card's limit
// lowered by the purchase amount, floored at zero. Deleting the transaction
// later does not restore it. The input slice is never mutated.
func spendDownCard(cards []core.CreditCard, tx core.Transaction) ([]core.CreditCard, bool) {
	if !tx.PaymentMethod.UsesCard() || tx.CardID == "" {
		return cards, false
	}
	for i := range cards {
		if cards[i].ID != tx.CardID {
			continue
		}
		out := make([]core.CreditCard, len(cards))
		copy(out, cards)
		remaining := out[i].Limit.Cents - tx.Amount.Cents
		if remaining < 0 {
			remaining = 0
		}
		out[i].Limit.Cents = remaining
		return out, true
	}
	return cards, false
}

// DeleteTransaction removes the stored transaction behind the given id.
// Installment entry ids resolve to their base transaction.
func (a *App) DeleteTransaction(ctx context.Context, id string) error {
	base := ledger.ResolveBaseID(id)

	a.mu.Lock()
	defer a.mu.Unlock()

	idx := -1
	for i, tx := range a.txs {
		if tx.ID == base {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("transaction %s not found", base)
	}

	removed := a.txs[idx]
	a.txs = append(a.txs[:idx], a.txs[idx+1:]...)
	if err := a.store.SaveTransactions(ctx, a.txs); err != nil {
		a.txs = append(a.txs[:idx], append([]core.Transaction{removed}, a.txs[idx:]...)...)
		return err
	}
	return nil
}

func (a *App) AddCard(ctx context.Context, card core.CreditCard) (core.CreditCard, error) {
	if card.ID == "" {
		card.ID = uuid.NewString()
	}
	card.Bank = strings.TrimSpace(card.Bank)
	if err := card.Validate(); err != nil {
		return core.CreditCard{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.cards = append(a.cards, card)
	if err := a.store.SaveCards(ctx, a.cards); err != nil {
		a.cards = a.cards[:len(a.cards)-1]
		return core.CreditCard{}, err
	}
	return card, nil
}

func (a *App) DeleteCard(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	idx := -1
	for i, c := range a.cards {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("card %s not found", id)
	}

	removed := a.cards[idx]
	a.cards = append(a.cards[:idx], a.cards[idx+1:]...)
	if err := a.store.SaveCards(ctx, a.cards); err != nil {
		a.cards = append(a.cards[:idx], append([]core.CreditCard{removed}, a.cards[idx:]...)...)
		return err
	}
	return nil
}

// SetUser signs a user in, assigning id, avatar and default goal when
// missing.
func (a *App) SetUser(ctx context.Context, u core.User) (core.User, error) {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.TrimSpace(u.Email)
	if err := u.Validate(); err != nil {
		return core.User{}, err
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Photo == "" {
		u.Photo = "https://api.dicebear.com/7.x/avataaars/svg?seed=" + u.ID
	}
	if u.MonthlyGoal.Cents <= 0 {
		u.MonthlyGoal = core.Money{Cents: core.DefaultMonthlyGoal}
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.store.SaveUser(ctx, u); err != nil {
		return core.User{}, err
	}
	a.user = &u
	return u, nil
}

// UpdateUser patches name, photo and monthly goal of the signed-in user.
// Zero-valued fields keep their current value.
func (a *App) UpdateUser(ctx context.Context, name, photo string, goalCents int64) (core.User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.user == nil {
		return core.User{}, fmt.Errorf("no signed-in user")
	}
	updated := *a.user
	if name = strings.TrimSpace(name); name != "" {
		updated.Name = name
	}
	if photo != "" {
		updated.Photo = photo
	}
	if goalCents > 0 {
		updated.MonthlyGoal = core.Money{Cents: goalCents}
	}

	if err := a.store.SaveUser(ctx, updated); err != nil {
		return core.User{}, err
	}
	a.user = &updated
	return updated, nil
}

func (a *App) Logout(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.store.DeleteUser(ctx); err != nil {
		return err
	}
	a.user = nil
	return nil
}
