package core

import (
	"errors"
	"strings"
)

const (
	PaymentCash        PaymentMode = "AVISTA"
	PaymentInstallment PaymentMode = "PARCELADO"
)

type (
	PaymentMode string

	// QuoteItem is one priced line inside a supplier's quote. Item names are
	// matched exactly across suppliers when building the comparative analysis.
	QuoteItem struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Price Money  `json:"price"`
	}

	// Supplier is one quote source inside a budget project. The payment terms
	// are descriptive only; ranking and analysis look at item prices alone.
	Supplier struct {
		ID           string      `json:"id"`
		Name         string      `json:"name"`
		PaymentMode  PaymentMode `json:"paymentMode,omitempty"`
		Installments int         `json:"installments,omitempty"`
		EntryValue   Money       `json:"entryValue,omitempty"`
		Discount     Money       `json:"discount,omitempty"`
		Items        []QuoteItem `json:"items"`
	}

	// BudgetProject groups supplier quotes for one planned purchase.
	BudgetProject struct {
		ID        string     `json:"id"`
		Name      string     `json:"name"`
		CreatedAt int64      `json:"createdAt"` // epoch ms
		Suppliers []Supplier `json:"suppliers"`
	}
)

var (
	ErrEmptyProjectName  = errors.New("empty project name")
	ErrEmptySupplierName = errors.New("empty supplier name")
	ErrEmptyItemName     = errors.New("empty item name")
)

func (p BudgetProject) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyProjectName
	}
	return nil
}

func (s Supplier) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptySupplierName
	}
	return nil
}

func (i QuoteItem) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrEmptyItemName
	}
	return i.Price.Validate()
}

// Total sums the supplier's item prices. Entry value, discount and
// installment terms do not participate.
func (s Supplier) Total() Money {
	var cents int64
	for _, it := range s.Items {
		cents += it.Price.Cents
	}
	return Money{Cents: cents}
}
