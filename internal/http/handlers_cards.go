package http

import (
	"net/http"

	"github.com/lordkeh111-cyber/Controle-pessoal/internal/core"
)

type createCardRequest struct {
	Bank       string `json:"bank"`
	Limit      string `json:"limit"` // decimal string
	DueDay     int    `json:"dueDay"`
	ClosingDay int    `json:"closingDay"`
	Color      string `json:"color"`
	Type       string `json:"type"`
}

func (s *Server) handleListCards(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.app.Cards())
}

func (s *Server) handleCreateCard(w http.ResponseWriter, r *http.Request) {
	var req createCardRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cents, err := core.ParseDecimalToCents(req.Limit)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid limit")
		return
	}

	card, err := s.app.AddCard(r.Context(), core.CreditCard{
		Bank:       sanitizeInput(req.Bank),
		Limit:      core.Money{Cents: cents},
		DueDay:     req.DueDay,
		ClosingDay: req.ClosingDay,
		Color:      req.Color,
		IsActive:   true,
		Type:       core.CardType(req.Type),
	})
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, card)
}

func (s *Server) handleDeleteCard(w http.ResponseWriter, r *http.Request) {
	if err := s.app.DeleteCard(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
