package http

import (
	"log/slog"
	"net/http"

	"github.com/lordkeh111-cyber/Controle-pessoal/internal/core"
)

type authRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// handleAuth is the simulated login/registration: any name+email pair signs
// in, picking up an avatar and the default monthly goal. There is no
// password check beyond storing what was sent.
func (s *Server) handleAuth(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := s.app.SetUser(r.Context(), core.User{
		Name:     sanitizeInput(req.Name),
		Email:    sanitizeInput(req.Email),
		Password: req.Password,
	})
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	slog.InfoContext(r.Context(), "user signed in", "user_id", u.ID)
	u.Password = ""
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	u := s.app.User()
	if u == nil {
		writeError(w, http.StatusNotFound, "no signed-in user")
		return
	}
	u.Password = ""
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.app.Logout(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type updateUserRequest struct {
	Name  string `json:"name"`
	Photo string `json:"photo"`
	Goal  string `json:"monthlyGoal"` // decimal string, e.g. "3500,00"
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var goalCents int64
	if req.Goal != "" {
		cents, err := core.ParseDecimalToCents(req.Goal)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "invalid monthly goal")
			return
		}
		goalCents = cents
	}

	u, err := s.app.UpdateUser(r.Context(), sanitizeInput(req.Name), req.Photo, goalCents)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	u.Password = ""
	writeJSON(w, http.StatusOK, u)
}

type updateGoalRequest struct {
	Goal string `json:"monthlyGoal"`
}

func (s *Server) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	var req updateGoalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cents, err := core.ParseDecimalToCents(req.Goal)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid monthly goal")
		return
	}
	u, err := s.app.UpdateUser(r.Context(), "", "", cents)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	u.Password = ""
	writeJSON(w, http.StatusOK, u)
}
