package quotes

import (
	"testing"

	"github.com/lordkeh111-cyber/Controle-pessoal/internal/core"
)

func sampleProject() core.BudgetProject {
	return core.BudgetProject{
		ID:   "p1",
		Name: "Reforma",
		Suppliers: []core.Supplier{
			{
				ID:   "s-a",
				Name: "Fornecedor A",
				Items: []core.QuoteItem{
					{ID: "i1", Name: "item1", Price: core.Money{Cents: 10000}},
					{ID: "i2", Name: "item2", Price: core.Money{Cents: 20000}},
				},
			},
			{
				ID:   "s-b",
				Name: "Fornecedor B",
				Items: []core.QuoteItem{
					{ID: "i3", Name: "item1", Price: core.Money{Cents: 9000}},
					{ID: "i4", Name: "item2", Price: core.Money{Cents: 25000}},
				},
			},
		},
	}
}

func TestRankOrdersCheapestFirst(t *testing.T) {
	ranked := Rank(sampleProject())
	if len(ranked) != 2 {
		t.Fatalf("len = %d", len(ranked))
	}
	// A totals 300,00 and B totals 340,00.
	if ranked[0].Name != "Fornecedor A" || ranked[0].Total.Cents != 30000 {
		t.Errorf("first = %+v", ranked[0])
	}
	if ranked[1].Name != "Fornecedor B" || ranked[1].Total.Cents != 34000 {
		t.Errorf("second = %+v", ranked[1])
	}
	if ranked[0].Position != 1 || ranked[1].Position != 2 {
		t.Errorf("positions = %d, %d", ranked[0].Position, ranked[1].Position)
	}
}

func TestRankKeepsProjectOrderOnTies(t *testing.T) {
	p := core.BudgetProject{Suppliers: []core.Supplier{
		{ID: "x", Name: "X", Items: []core.QuoteItem{{Name: "a", Price: core.Money{Cents: 100}}}},
		{ID: "y", Name: "Y", Items: []core.QuoteItem{{Name: "a", Price: core.Money{Cents: 100}}}},
	}}
	ranked := Rank(p)
	if ranked[0].Name != "X" || ranked[1].Name != "Y" {
		t.Errorf("tie order = %s, %s", ranked[0].Name, ranked[1].Name)
	}
}

func TestAnalyzeFindsBestPriceAndDelta(t *testing.T) {
	analysis := Analyze(sampleProject())
	if len(analysis) != 2 {
		t.Fatalf("len = %d", len(analysis))
	}

	item1 := analysis[0]
	if item1.Name != "item1" {
		t.Fatalf("first row = %q, want item1", item1.Name)
	}
	if item1.BestPrice.Cents != 9000 || item1.BestSupplier != "Fornecedor B" {
		t.Errorf("best = %d @ %s", item1.BestPrice.Cents, item1.BestSupplier)
	}
	if item1.Delta.Cents != 1000 {
		t.Errorf("delta = %d, want 1000", item1.Delta.Cents)
	}
	if item1.SingleSource {
		t.Error("item1 flagged single source")
	}

	item2 := analysis[1]
	if item2.BestPrice.Cents != 20000 || item2.BestSupplier != "Fornecedor A" {
		t.Errorf("item2 best = %d @ %s", item2.BestPrice.Cents, item2.BestSupplier)
	}
	if item2.Delta.Cents != 5000 {
		t.Errorf("item2 delta = %d, want 5000", item2.Delta.Cents)
	}
}

func TestAnalyzeSingleSource(t *testing.T) {
	p := sampleProject()
	p.Suppliers[0].Items = append(p.Suppliers[0].Items, core.QuoteItem{
		ID: "i5", Name: "item3", Price: core.Money{Cents: 4200},
	})

	analysis := Analyze(p)
	if len(analysis) != 3 {
		t.Fatalf("len = %d", len(analysis))
	}
	item3 := analysis[2]
	if !item3.SingleSource {
		t.Error("item3 not flagged single source")
	}
	if item3.Delta.Cents != 0 {
		t.Errorf("single-source delta = %d, want 0", item3.Delta.Cents)
	}
	if item3.BestSupplier != "Fornecedor A" {
		t.Errorf("best supplier = %s", item3.BestSupplier)
	}
}

func TestAnalyzeNamesAreCaseSensitive(t *testing.T) {
	p := core.BudgetProject{Suppliers: []core.Supplier{
		{ID: "a", Name: "A", Items: []core.QuoteItem{{Name: "Cimento", Price: core.Money{Cents: 100}}}},
		{ID: "b", Name: "B", Items: []core.QuoteItem{{Name: "cimento", Price: core.Money{Cents: 90}}}},
	}}
	analysis := Analyze(p)
	if len(analysis) != 2 {
		t.Fatalf("len = %d, want 2 distinct items", len(analysis))
	}
	for _, row := range analysis {
		if !row.SingleSource {
			t.Errorf("%q not single source", row.Name)
		}
	}
}

func TestSelectionToggleAndTotal(t *testing.T) {
	analysis := Analyze(sampleProject())
	sel := NewSelection()

	sel.Toggle("item1")
	sel.Toggle("item2")
	if got := sel.Total(analysis).Cents; got != 9000+20000 {
		t.Errorf("total = %d, want 29000", got)
	}

	// Double toggle is a no-op.
	sel.Toggle("item2")
	sel.Toggle("item2")
	if got := sel.Total(analysis).Cents; got != 29000 {
		t.Errorf("total after double toggle = %d, want 29000", got)
	}

	sel.Toggle("item2")
	if got := sel.Total(analysis).Cents; got != 9000 {
		t.Errorf("total after deselect = %d, want 9000", got)
	}
	if sel.Count() != 1 || !sel.Selected("item1") {
		t.Errorf("selection state: count=%d", sel.Count())
	}
}

func TestSelectionReport(t *testing.T) {
	analysis := Analyze(sampleProject())
	sel := NewSelection()
	sel.Toggle("item2")

	items, total := sel.Report(analysis)
	if len(items) != 1 {
		t.Fatalf("len = %d", len(items))
	}
	if items[0].Name != "item2" || items[0].Supplier != "Fornecedor A" {
		t.Errorf("report row = %+v", items[0])
	}
	if total.Cents != 20000 {
		t.Errorf("total = %d", total.Cents)
	}
}
