package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/lordkeh111-cyber/Controle-pessoal/internal/core"
	"github.com/lordkeh111-cyber/Controle-pessoal/internal/ledger"
)

type createTransactionRequest struct {
	Title              string `json:"title"`
	Amount             string `json:"amount"` // decimal string, e.g. "150,00"
	Type               string `json:"type"`
	Category           string `json:"category"`
	PaymentMethod      string `json:"paymentMethod"`
	CardID             string `json:"cardId"`
	InstallmentsCount  int    `json:"installmentsCount"`
	PaymentDate        string `json:"paymentDate"`
	PersonName         string `json:"personName"`
	IsSpecialOperation bool   `json:"isSpecialOperation"`
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cents, err := core.ParseDecimalToCents(req.Amount)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid amount")
		return
	}

	tx, err := s.app.AddTransaction(r.Context(), core.Transaction{
		Title:              sanitizeInput(req.Title),
		Amount:             core.Money{Cents: cents},
		Type:               core.TransactionType(req.Type),
		Category:           sanitizeInput(req.Category),
		PaymentMethod:      core.PaymentMethod(req.PaymentMethod),
		CardID:             req.CardID,
		InstallmentsCount:  req.InstallmentsCount,
		PaymentDate:        req.PaymentDate,
		PersonName:         sanitizeInput(req.PersonName),
		IsSpecialOperation: req.IsSpecialOperation,
	})
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.invalidateAnalytics()
	writeJSON(w, http.StatusCreated, tx)
}

// handleListTransactions returns the expanded list, optionally filtered to
// one calendar month and one transaction type.
func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	expanded := ledger.Expand(s.app.Transactions())

	q := r.URL.Query()
	if q.Get("year") != "" || q.Get("month") != "" {
		year, month := queryYearMonth(r, time.Now())
		filtered := expanded[:0:0]
		for _, tx := range expanded {
			t := time.UnixMilli(tx.Timestamp).UTC()
			if t.Year() == year && t.Month() == month {
				filtered = append(filtered, tx)
			}
		}
		expanded = filtered
	}
	if typ := strings.TrimSpace(q.Get("type")); typ != "" {
		filtered := expanded[:0:0]
		for _, tx := range expanded {
			if tx.Type == core.TransactionType(typ) {
				filtered = append(filtered, tx)
			}
		}
		expanded = filtered
	}

	if expanded == nil {
		expanded = []core.Transaction{}
	}
	writeJSON(w, http.StatusOK, expanded)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.app.DeleteTransaction(r.Context(), id); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	s.invalidateAnalytics()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	goal := core.Money{Cents: core.DefaultMonthlyGoal}
	if u := s.app.User(); u != nil {
		goal = u.Goal()
	}
	summary := ledger.Summarize(s.app.Transactions(), goal, time.Now())
	if summary.Recent == nil {
		summary.Recent = []core.Transaction{}
	}
	writeJSON(w, http.StatusOK, summary)
}
