package http

import (
	"net/http"
	"time"

	"github.com/lordkeh111-cyber/Controle-pessoal/internal/quotes"
	"github.com/lordkeh111-cyber/Controle-pessoal/internal/state"
)

type createProjectRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.app.Projects())
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p, err := s.app.AddProject(r.Context(), sanitizeInput(req.Name))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := s.app.DeleteProject(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type createSupplierRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleCreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req createSupplierRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	sup, err := s.app.AddSupplier(r.Context(), r.PathValue("id"), sanitizeInput(req.Name))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, sup)
}

func (s *Server) handleDeleteSupplier(w http.ResponseWriter, r *http.Request) {
	if err := s.app.DeleteSupplier(r.Context(), r.PathValue("id"), r.PathValue("sid")); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type createItemRequest struct {
	Name  string `json:"name"`
	Price string `json:"price"` // decimal string
}

func (s *Server) handleCreateQuoteItem(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	item, err := s.app.AddQuoteItem(r.Context(), r.PathValue("id"), r.PathValue("sid"), sanitizeInput(req.Name), req.Price)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleDeleteQuoteItem(w http.ResponseWriter, r *http.Request) {
	err := s.app.DeleteQuoteItem(r.Context(), r.PathValue("id"), r.PathValue("sid"), r.PathValue("iid"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRanking(w http.ResponseWriter, r *http.Request) {
	p, err := s.app.Project(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	ranked := quotes.Rank(p)
	if ranked == nil {
		ranked = []quotes.RankedSupplier{}
	}
	writeJSON(w, http.StatusOK, ranked)
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	p, err := s.app.Project(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	analysis := quotes.Analyze(p)
	if analysis == nil {
		analysis = []quotes.ItemAnalysis{}
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	notifications := s.app.Notifications(now)
	if notifications == nil {
		notifications = []state.Notification{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"notifications": notifications,
		"hasDueToday":   s.app.HasDueToday(now),
	})
}
