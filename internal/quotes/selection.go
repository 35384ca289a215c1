package quotes

import (
	"github.com/lordkeh111-cyber/Controle-pessoal/internal/core"
)

type (
	// Selection tracks which analyzed items the user picked for the closing
	// report. Items are identified by name, matching the analysis rows.
	Selection struct {
		picked map[string]bool
	}

	// SelectedItem is one line of the closing report.
	SelectedItem struct {
		Name     string     `json:"name"`
		Price    core.Money `json:"price"`
		Supplier string     `json:"supplier"`
	}
)

func NewSelection() *Selection {
	return &Selection{picked: make(map[string]bool)}
}

// Toggle flips an item's selected state. Toggling twice restores the
// original state.
func (s *Selection) Toggle(name string) {
	if s.picked[name] {
		delete(s.picked, name)
		return
	}
	s.picked[name] = true
}

func (s *Selection) Selected(name string) bool {
	return s.picked[name]
}

func (s *Selection) Count() int {
	return len(s.picked)
}

// Report lists the selected items with their best price and supplier, in
// analysis order, together with the total.
func (s *Selection) Report(analysis []ItemAnalysis) ([]SelectedItem, core.Money) {
	var items []SelectedItem
	var total core.Money
	for _, row := range analysis {
		if !s.picked[row.Name] {
			continue
		}
		items = append(items, SelectedItem{
			Name:     row.Name,
			Price:    row.BestPrice,
			Supplier: row.BestSupplier,
		})
		total.Cents += row.BestPrice.Cents
	}
	return items, total
}

// Total sums the best prices of the selected items.
func (s *Selection) Total(analysis []ItemAnalysis) core.Money {
	_, total := s.Report(analysis)
	return total
}
