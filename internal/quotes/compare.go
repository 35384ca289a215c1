// Package quotes ranks supplier quotes inside a budget project and builds
// the per-item best-price analysis.
package quotes

import (
	"sort"

	"github.com/lordkeh111-cyber/Controle-pessoal/internal/core"
)

type (
	// RankedSupplier is one row of the cheapest-first supplier table.
	RankedSupplier struct {
		SupplierID string     `json:"supplierId"`
		Name       string     `json:"name"`
		Total      core.Money `json:"total"`
		Position   int        `json:"position"` // 1-based
	}

	// Offer is one supplier's price for a given item name.
	Offer struct {
		SupplierID string     `json:"supplierId"`
		Supplier   string     `json:"supplier"`
		Price      core.Money `json:"price"`
	}

	// ItemAnalysis compares every offer for one item name. Delta is the gap
	// between the best and second-best price; a single-source item has a zero
	// delta and the flag set.
	ItemAnalysis struct {
		Name         string     `json:"name"`
		Offers       []Offer    `json:"offers"`
		BestPrice    core.Money `json:"bestPrice"`
		BestSupplier string     `json:"bestSupplier"`
		Delta        core.Money `json:"delta"`
		SingleSource bool       `json:"singleSource"`
	}
)

// Rank orders a project's suppliers by item-price total, cheapest first.
// Suppliers with equal totals keep their project order.
func Rank(p core.BudgetProject) []RankedSupplier {
	out := make([]RankedSupplier, 0, len(p.Suppliers))
	for _, s := range p.Suppliers {
		out = append(out, RankedSupplier{SupplierID: s.ID, Name: s.Name, Total: s.Total()})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.Cents < out[j].Total.Cents
	})
	for i := range out {
		out[i].Position = i + 1
	}
	return out
}

// Analyze groups offers by exact item name in first-appearance order and
// finds the best price for each. Item names are case sensitive; "Cimento"
// and "cimento" are different items.
func Analyze(p core.BudgetProject) []ItemAnalysis {
	offers := make(map[string][]Offer)
	var order []string
	for _, s := range p.Suppliers {
		for _, it := range s.Items {
			if _, seen := offers[it.Name]; !seen {
				order = append(order, it.Name)
			}
			offers[it.Name] = append(offers[it.Name], Offer{
				SupplierID: s.ID,
				Supplier:   s.Name,
				Price:      it.Price,
			})
		}
	}

	out := make([]ItemAnalysis, 0, len(order))
	for _, name := range order {
		row := ItemAnalysis{Name: name, Offers: offers[name]}
		sort.SliceStable(row.Offers, func(i, j int) bool {
			return row.Offers[i].Price.Cents < row.Offers[j].Price.Cents
		})
		row.BestPrice = row.Offers[0].Price
		row.BestSupplier = row.Offers[0].Supplier
		if len(row.Offers) >= 2 {
			row.Delta = core.Money{Cents: row.Offers[1].Price.Cents - row.BestPrice.Cents}
		} else {
			row.SingleSource = true
		}
		out = append(out, row)
	}
	return out
}
