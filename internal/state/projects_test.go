package state

import (
	"context"
	"errors"
	"testing"

	"github.com/lordkeh111-cyber/Controle-pessoal/internal/core"
)

func TestProjectLifecycle(t *testing.T) {
	ctx := context.Background()
	app, st, _ := newTestApp(t)

	p, err := app.AddProject(ctx, "  Reforma  ")
	if err != nil {
		t.Fatalf("add project: %v", err)
	}
	if p.Name != "Reforma" {
		t.Errorf("name = %q", p.Name)
	}

	sup, err := app.AddSupplier(ctx, p.ID, "Fornecedor A")
	if err != nil {
		t.Fatalf("add supplier: %v", err)
	}

	item, err := app.AddQuoteItem(ctx, p.ID, sup.ID, "Cimento", "89,90")
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if item.Price.Cents != 8990 {
		t.Errorf("price = %d, want 8990", item.Price.Cents)
	}

	got, err := app.Project(p.ID)
	if err != nil {
		t.Fatalf("project: %v", err)
	}
	if len(got.Suppliers) != 1 || len(got.Suppliers[0].Items) != 1 {
		t.Fatalf("project shape: %+v", got)
	}

	persisted, err := st.LoadProjects(ctx)
	if err != nil {
		t.Fatalf("load persisted: %v", err)
	}
	if len(persisted) != 1 || len(persisted[0].Suppliers[0].Items) != 1 {
		t.Error("project not persisted whole")
	}

	if err := app.DeleteQuoteItem(ctx, p.ID, sup.ID, item.ID); err != nil {
		t.Fatalf("delete item: %v", err)
	}
	if err := app.DeleteSupplier(ctx, p.ID, sup.ID); err != nil {
		t.Fatalf("delete supplier: %v", err)
	}
	if err := app.DeleteProject(ctx, p.ID); err != nil {
		t.Fatalf("delete project: %v", err)
	}
	if len(app.Projects()) != 0 {
		t.Error("project still listed")
	}
}

func TestProjectValidation(t *testing.T) {
	ctx := context.Background()
	app, _, _ := newTestApp(t)

	if _, err := app.AddProject(ctx, "  "); !errors.Is(err, core.ErrEmptyProjectName) {
		t.Errorf("empty project name: %v", err)
	}

	p, _ := app.AddProject(ctx, "Obra")
	if _, err := app.AddSupplier(ctx, p.ID, ""); !errors.Is(err, core.ErrEmptySupplierName) {
		t.Errorf("empty supplier name: %v", err)
	}

	sup, _ := app.AddSupplier(ctx, p.ID, "A")
	if _, err := app.AddQuoteItem(ctx, p.ID, sup.ID, "tijolo", "abc"); !errors.Is(err, core.ErrInvalidAmount) {
		t.Errorf("bad price: %v", err)
	}
	if _, err := app.AddQuoteItem(ctx, p.ID, sup.ID, " ", "10,00"); !errors.Is(err, core.ErrEmptyItemName) {
		t.Errorf("empty item name: %v", err)
	}
	if _, err := app.AddQuoteItem(ctx, "nope", sup.ID, "tijolo", "10,00"); err == nil {
		t.Error("unknown project accepted")
	}
}

func TestProjectSnapshotsAreCopies(t *testing.T) {
	ctx := context.Background()
	app, _, _ := newTestApp(t)

	p, _ := app.AddProject(ctx, "Obra")
	sup, _ := app.AddSupplier(ctx, p.ID, "A")
	app.AddQuoteItem(ctx, p.ID, sup.ID, "tijolo", "10,00")

	snap := app.Projects()
	snap[0].Suppliers[0].Items[0].Name = "mutated"

	got, _ := app.Project(p.ID)
	if got.Suppliers[0].Items[0].Name != "tijolo" {
		t.Error("snapshot mutation leaked into state")
	}
}
