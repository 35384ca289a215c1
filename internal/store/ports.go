// Package store persists application state as whole JSON blobs in a pluggable
// key-value backend. Every write replaces the full collection; reads of
// missing or malformed blobs yield empty collections, never errors.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lordkeh111-cyber/Controle-pessoal/internal/core"
)

// Blob keys. The names match the original browser-storage keys so exported
// data stays portable.
const (
	KeyUser         = "cp_user"
	KeyTransactions = "cp_transactions"
	KeyCards        = "cp_cards"
	KeyBudgets      = "cp_budgets"
)

// KV is the raw backend contract. Get returns (nil, nil) for absent keys.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Store is the typed blob store used by the rest of the application.
type Store struct {
	kv KV
}

func New(kv KV) *Store {
	return &Store{kv: kv}
}

func (s *Store) Close() error {
	return s.kv.Close()
}

// loadInto decodes a blob into dst, treating absent or malformed JSON the
// same as no data.
func (s *Store) loadInto(ctx context.Context, key string, dst any) error {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		// A corrupted blob reads as empty; the next save overwrites it.
		return nil
	}
	return nil
}

func (s *Store) save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// LoadUser returns nil when no user is stored.
func (s *Store) LoadUser(ctx context.Context) (*core.User, error) {
	var u *core.User
	if err := s.loadInto(ctx, KeyUser, &u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Store) SaveUser(ctx context.Context, u core.User) error {
	return s.save(ctx, KeyUser, u)
}

func (s *Store) DeleteUser(ctx context.Context) error {
	if err := s.kv.Delete(ctx, KeyUser); err != nil {
		return fmt.Errorf("delete %s: %w", KeyUser, err)
	}
	return nil
}

func (s *Store) LoadTransactions(ctx context.Context) ([]core.Transaction, error) {
	var txs []core.Transaction
	if err := s.loadInto(ctx, KeyTransactions, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (s *Store) SaveTransactions(ctx context.Context, txs []core.Transaction) error {
	if txs == nil {
		txs = []core.Transaction{}
	}
	return s.save(ctx, KeyTransactions, txs)
}

func (s *Store) LoadCards(ctx context.Context) ([]core.CreditCard, error) {
	var cards []core.CreditCard
	if err := s.loadInto(ctx, KeyCards, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func (s *Store) SaveCards(ctx context.Context, cards []core.CreditCard) error {
	if cards == nil {
		cards = []core.CreditCard{}
	}
	return s.save(ctx, KeyCards, cards)
}

func (s *Store) LoadProjects(ctx context.Context) ([]core.BudgetProject, error) {
	var ps []core.BudgetProject
	if err := s.loadInto(ctx, KeyBudgets, &ps); err != nil {
		return nil, err
	}
	return ps, nil
}

func (s *Store) SaveProjects(ctx context.Context, ps []core.BudgetProject) error {
	if ps == nil {
		ps = []core.BudgetProject{}
	}
	return s.save(ctx, KeyBudgets, ps)
}
