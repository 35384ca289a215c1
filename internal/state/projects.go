package state

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lordkeh111-cyber/Controle-pessoal/internal/core"
)

// Projects returns a deep copy of the budget projects.
func (a *App) Projects() []core.BudgetProject {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return copyProjects(a.projects)
}

// Project returns a deep copy of one project.
func (a *App) Project(id string) (core.BudgetProject, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, p := range a.projects {
		if p.ID == id {
			return copyProject(p), nil
		}
	}
	return core.BudgetProject{}, fmt.Errorf("project %s not found", id)
}

func (a *App) AddProject(ctx context.Context, name string) (core.BudgetProject, error) {
	p := core.BudgetProject{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		CreatedAt: time.Now().UnixMilli(),
		Suppliers: []core.Supplier{},
	}
	if err := p.Validate(); err != nil {
		return core.BudgetProject{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.projects = append(a.projects, p)
	if err := a.store.SaveProjects(ctx, a.projects); err != nil {
		a.projects = a.projects[:len(a.projects)-1]
		return core.BudgetProject{}, err
	}
	return copyProject(p), nil
}

func (a *App) DeleteProject(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mutateProjects(ctx, func(ps []core.BudgetProject) ([]core.BudgetProject, error) {
		for i, p := range ps {
			if p.ID == id {
				return append(ps[:i], ps[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("project %s not found", id)
	})
}

func (a *App) AddSupplier(ctx context.Context, projectID, name string) (core.Supplier, error) {
	s := core.Supplier{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(name),
		Items: []core.QuoteItem{},
	}
	if err := s.Validate(); err != nil {
		return core.Supplier{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	err := a.mutateProjects(ctx, func(ps []core.BudgetProject) ([]core.BudgetProject, error) {
		for i := range ps {
			if ps[i].ID == projectID {
				ps[i].Suppliers = append(ps[i].Suppliers, s)
				return ps, nil
			}
		}
		return nil, fmt.Errorf("project %s not found", projectID)
	})
	if err != nil {
		return core.Supplier{}, err
	}
	return s, nil
}

func (a *App) DeleteSupplier(ctx context.Context, projectID, supplierID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.mutateProjects(ctx, func(ps []core.BudgetProject) ([]core.BudgetProject, error) {
		for i := range ps {
			if ps[i].ID != projectID {
				continue
			}
			for j, s := range ps[i].Suppliers {
				if s.ID == supplierID {
					ps[i].Suppliers = append(ps[i].Suppliers[:j], ps[i].Suppliers[j+1:]...)
					return ps, nil
				}
			}
			return nil, fmt.Errorf("supplier %s not found", supplierID)
		}
		return nil, fmt.Errorf("project %s not found", projectID)
	})
}

// AddQuoteItem adds a priced item to a supplier. The price arrives as a
// decimal string from the form and is parsed to cents.
func (a *App) AddQuoteItem(ctx context.Context, projectID, supplierID, name, price string) (core.QuoteItem, error) {
	cents, err := core.ParseDecimalToCents(price)
	if err != nil {
		return core.QuoteItem{}, err
	}
	item := core.QuoteItem{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(name),
		Price: core.Money{Cents: cents},
	}
	if err := item.Validate(); err != nil {
		return core.QuoteItem{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	err = a.mutateProjects(ctx, func(ps []core.BudgetProject) ([]core.BudgetProject, error) {
		for i := range ps {
			if ps[i].ID != projectID {
				continue
			}
			for j := range ps[i].Suppliers {
				if ps[i].Suppliers[j].ID == supplierID {
					ps[i].Suppliers[j].Items = append(ps[i].Suppliers[j].Items, item)
					return ps, nil
				}
			}
			return nil, fmt.Errorf("supplier %s not found", supplierID)
		}
		return nil, fmt.Errorf("project %s not found", projectID)
	})
	if err != nil {
		return core.QuoteItem{}, err
	}
	return item, nil
}

func (a *App) DeleteQuoteItem(ctx context.Context, projectID, supplierID, itemID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.mutateProjects(ctx, func(ps []core.BudgetProject) ([]core.BudgetProject, error) {
		for i := range ps {
			if ps[i].ID != projectID {
				continue
			}
			for j := range ps[i].Suppliers {
				if ps[i].Suppliers[j].ID != supplierID {
					continue
				}
				items := ps[i].Suppliers[j].Items
				for k, it := range items {
					if it.ID == itemID {
						ps[i].Suppliers[j].Items = append(items[:k], items[k+1:]...)
						return ps, nil
					}
				}
				return nil, fmt.Errorf("item %s not found", itemID)
			}
			return nil, fmt.Errorf("supplier %s not found", supplierID)
		}
		return nil, fmt.Errorf("project %s not found", projectID)
	})
}

// mutateProjects applies fn to a working copy and persists on success, so a
// failed save never leaves the in-memory state ahead of the store. Callers
// hold the write lock.
func (a *App) mutateProjects(ctx context.Context, fn func([]core.BudgetProject) ([]core.BudgetProject, error)) error {
	next, err := fn(copyProjects(a.projects))
	if err != nil {
		return err
	}
	if err := a.store.SaveProjects(ctx, next); err != nil {
		return err
	}
	a.projects = next
	return nil
}

func copyProjects(ps []core.BudgetProject) []core.BudgetProject {
	out := make([]core.BudgetProject, len(ps))
	for i, p := range ps {
		out[i] = copyProject(p)
	}
	return out
}

func copyProject(p core.BudgetProject) core.BudgetProject {
	cp := p
	cp.Suppliers = make([]core.Supplier, len(p.Suppliers))
	for i, s := range p.Suppliers {
		cs := s
		cs.Items = make([]core.QuoteItem, len(s.Items))
		copy(cs.Items, s.Items)
		cp.Suppliers[i] = cs
	}
	return cp
}
