package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/lordkeh111-cyber/Controle-pessoal/internal/core"
	"github.com/lordkeh111-cyber/Controle-pessoal/internal/ledger"
)

func (s *Server) handleMonthAnalytics(w http.ResponseWriter, r *http.Request) {
	year, month := queryYearMonth(r, time.Now())
	key := monthKey(year, int(month))

	if cached, ok := s.monthCache.Get(key); ok {
		slog.DebugContext(r.Context(), "month analytics cache hit", "key", key)
		writeJSON(w, http.StatusOK, cached)
		return
	}

	stats := ledger.MonthStats(ledger.Expand(s.app.Transactions()), year, month)
	s.monthCache.Set(key, stats)
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleYearAnalytics(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if v := strings.TrimSpace(r.URL.Query().Get("year")); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			year = y
		}
	}
	flows := ledger.YearFlow(ledger.Expand(s.app.Transactions()), year)
	writeJSON(w, http.StatusOK, flows)
}

type categoryAnalyticsResponse struct {
	Top []ledger.CategoryTotal `json:"top"`
	All []ledger.CategoryTotal `json:"all"`
}

// handleCategoryAnalytics returns the month's category breakdown: the full
// set plus the top slice the chart shows (5 by default).
func (s *Server) handleCategoryAnalytics(w http.ResponseWriter, r *http.Request) {
	year, month := queryYearMonth(r, time.Now())
	key := monthKey(year, int(month))

	breakdown, ok := s.categoryCache.Get(key)
	if !ok {
		breakdown = ledger.CategoryBreakdown(ledger.Expand(s.app.Transactions()), year, month)
		s.categoryCache.Set(key, breakdown)
	}

	top := 5
	if v := strings.TrimSpace(r.URL.Query().Get("top")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			top = n
		}
	}
	if top > len(breakdown) {
		top = len(breakdown)
	}

	if breakdown == nil {
		breakdown = []ledger.CategoryTotal{}
	}
	writeJSON(w, http.StatusOK, categoryAnalyticsResponse{
		Top: breakdown[:top],
		All: breakdown,
	})
}

type goalProgressResponse struct {
	Goal     core.Money `json:"goal"`
	Expense  core.Money `json:"expense"`
	Progress float64    `json:"progress"`
}

func (s *Server) handleGoalProgress(w http.ResponseWriter, r *http.Request) {
	year, month := queryYearMonth(r, time.Now())

	goal := core.Money{Cents: core.DefaultMonthlyGoal}
	if u := s.app.User(); u != nil {
		goal = u.Goal()
	}

	stats := ledger.MonthStats(ledger.Expand(s.app.Transactions()), year, month)
	writeJSON(w, http.StatusOK, goalProgressResponse{
		Goal:     goal,
		Expense:  stats.Expense,
		Progress: ledger.GoalProgress(stats.Expense, goal),
	})
}

// handleComparison aggregates an arbitrary [start,end] window (epoch ms)
// against the window of equal duration before it.
func (s *Server) handleComparison(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start, err1 := strconv.ParseInt(strings.TrimSpace(q.Get("start")), 10, 64)
	end, err2 := strconv.ParseInt(strings.TrimSpace(q.Get("end")), 10, 64)
	if err1 != nil || err2 != nil || end < start {
		writeError(w, http.StatusBadRequest, "start and end must be epoch milliseconds with start <= end")
		return
	}

	stats := ledger.RangeStats(s.app.Transactions(), start, end)
	writeJSON(w, http.StatusOK, stats)
}
