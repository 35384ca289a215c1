package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lordkeh111-cyber/Controle-pessoal/internal/ledger"
	"github.com/lordkeh111-cyber/Controle-pessoal/internal/state"
	"github.com/lordkeh111-cyber/Controle-pessoal/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	app, err := state.New(context.Background(), store.New(store.NewMemoryKV()), nil, nil)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	srv := NewServer(":0", app)
	t.Cleanup(func() { srv.Shutdown(context.Background()) })
	return srv
}

func doJSON(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)
	if rec := doJSON(t, srv, http.MethodGet, "/healthz", ""); rec.Code != http.StatusOK {
		t.Errorf("healthz = %d", rec.Code)
	}
	if rec := doJSON(t, srv, http.MethodGet, "/readyz", ""); rec.Code != http.StatusOK {
		t.Errorf("readyz = %d", rec.Code)
	}
}

func TestAuthFlow(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/auth", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("current user before login = %d", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodPost, "/auth", `{"name":"Ana","email":"ana@example.com","password":"123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("auth = %d: %s", rec.Code, rec.Body.String())
	}
	user := decode[map[string]any](t, rec)
	if user["password"] != nil && user["password"] != "" {
		t.Error("password echoed back")
	}
	if !strings.Contains(fmt.Sprint(user["photo"]), "dicebear") {
		t.Errorf("photo = %v", user["photo"])
	}

	rec = doJSON(t, srv, http.MethodPost, "/auth", `{"name":"","email":"x@y.z"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("empty name = %d", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodDelete, "/auth", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("logout = %d", rec.Code)
	}
}

func TestTransactionLifecycle(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/transactions",
		`{"title":"Mercado","amount":"150,00","type":"EXPENSE","category":"mercado","paymentMethod":"PIX"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create = %d: %s", rec.Code, rec.Body.String())
	}
	created := decode[map[string]any](t, rec)
	id := fmt.Sprint(created["id"])

	rec = doJSON(t, srv, http.MethodGet, "/transactions", "")
	list := decode[[]map[string]any](t, rec)
	if len(list) != 1 {
		t.Fatalf("list len = %d", len(list))
	}

	rec = doJSON(t, srv, http.MethodGet, "/transactions?type=INCOME", "")
	if got := decode[[]map[string]any](t, rec); len(got) != 0 {
		t.Errorf("type filter returned %d entries", len(got))
	}

	rec = doJSON(t, srv, http.MethodDelete, "/transactions/"+id, "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("delete = %d", rec.Code)
	}
	rec = doJSON(t, srv, http.MethodDelete, "/transactions/"+id, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("double delete = %d", rec.Code)
	}
}

func TestTransactionValidationRejected(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/transactions",
		`{"title":"x","amount":"abc","type":"EXPENSE","category":"mercado","paymentMethod":"PIX"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("bad amount = %d", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodPost, "/transactions",
		`{"title":"x","amount":"10,00","type":"EXPENSE","category":"mercado","paymentMethod":"CREDIT"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("credit without card = %d", rec.Code)
	}
}

func TestInstallmentsExpandedInListing(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/cards",
		`{"bank":"Nubank","limit":"5000,00","dueDay":10,"type":"CREDIT"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create card = %d: %s", rec.Code, rec.Body.String())
	}
	card := decode[map[string]any](t, rec)

	body := fmt.Sprintf(`{"title":"Notebook","amount":"3000,00","type":"EXPENSE","category":"compras_pessoais","paymentMethod":"CREDIT","cardId":%q,"installmentsCount":10}`, card["id"])
	rec = doJSON(t, srv, http.MethodPost, "/transactions", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create tx = %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, srv, http.MethodGet, "/transactions", "")
	list := decode[[]map[string]any](t, rec)
	if len(list) != 10 {
		t.Fatalf("expanded list len = %d, want 10", len(list))
	}
	if !strings.Contains(fmt.Sprint(list[0]["id"]), "-inst-") {
		t.Errorf("first id = %v", list[0]["id"])
	}
}

func TestMonthAnalyticsCachedAndInvalidated(t *testing.T) {
	srv := newTestServer(t)
	now := time.Now().UTC()
	path := fmt.Sprintf("/analytics/month?year=%d&month=%d", now.Year(), int(now.Month()))

	rec := doJSON(t, srv, http.MethodGet, path, "")
	first := decode[ledger.MonthSummary](t, rec)
	if first.Expense.Cents != 0 {
		t.Errorf("empty expense = %d", first.Expense.Cents)
	}

	doJSON(t, srv, http.MethodPost, "/transactions",
		`{"title":"Mercado","amount":"100,00","type":"EXPENSE","category":"mercado","paymentMethod":"PIX"}`)

	rec = doJSON(t, srv, http.MethodGet, path, "")
	second := decode[ledger.MonthSummary](t, rec)
	if second.Expense.Cents != 10000 {
		t.Errorf("expense after write = %d, want 10000 (cache not invalidated?)", second.Expense.Cents)
	}
}

func TestCategoryAnalytics(t *testing.T) {
	srv := newTestServer(t)
	now := time.Now().UTC()

	for _, body := range []string{
		`{"title":"Feira","amount":"100,00","type":"EXPENSE","category":"mercado","paymentMethod":"PIX"}`,
		`{"title":"Feira 2","amount":"50,00","type":"EXPENSE","category":"mercado","paymentMethod":"PIX"}`,
		`{"title":"???","amount":"30,00","type":"EXPENSE","category":"nao_existe","paymentMethod":"PIX"}`,
	} {
		if rec := doJSON(t, srv, http.MethodPost, "/transactions", body); rec.Code != http.StatusCreated {
			t.Fatalf("create = %d", rec.Code)
		}
	}

	path := fmt.Sprintf("/analytics/categories?year=%d&month=%d", now.Year(), int(now.Month()))
	rec := doJSON(t, srv, http.MethodGet, path, "")
	resp := decode[categoryAnalyticsResponse](t, rec)
	if len(resp.All) != 2 {
		t.Fatalf("all len = %d: %+v", len(resp.All), resp.All)
	}
	if resp.All[0].Name != "Mercado" || resp.All[0].Total.Cents != 15000 {
		t.Errorf("first = %+v", resp.All[0])
	}
	if resp.All[1].Name != "Outros" || resp.All[1].Total.Cents != 3000 {
		t.Errorf("second = %+v", resp.All[1])
	}
	if len(resp.Top) != 2 {
		t.Errorf("top len = %d", len(resp.Top))
	}
}

func TestComparisonEndpoint(t *testing.T) {
	srv := newTestServer(t)

	doJSON(t, srv, http.MethodPost, "/transactions",
		`{"title":"Agora","amount":"80,00","type":"EXPENSE","category":"lazer","paymentMethod":"PIX"}`)

	end := time.Now().UnixMilli()
	start := end - int64(7*24*time.Hour/time.Millisecond)
	rec := doJSON(t, srv, http.MethodGet, fmt.Sprintf("/comparison?start=%d&end=%d", start, end), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("comparison = %d", rec.Code)
	}
	stats := decode[ledger.RangeSummary](t, rec)
	if stats.Expense.Cents != 8000 {
		t.Errorf("expense = %d", stats.Expense.Cents)
	}
	if stats.ExpenseDiff != 100 {
		t.Errorf("expenseDiff = %v, want 100 (growth from empty window)", stats.ExpenseDiff)
	}

	if rec := doJSON(t, srv, http.MethodGet, "/comparison?start=10&end=5", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("inverted window = %d", rec.Code)
	}
}

func TestProjectEndpoints(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/projects", `{"name":"Reforma"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create project = %d", rec.Code)
	}
	project := decode[map[string]any](t, rec)
	pid := fmt.Sprint(project["id"])

	mkSupplier := func(name string) string {
		rec := doJSON(t, srv, http.MethodPost, "/projects/"+pid+"/suppliers", `{"name":"`+name+`"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("create supplier = %d", rec.Code)
		}
		return fmt.Sprint(decode[map[string]any](t, rec)["id"])
	}
	addItem := func(sid, name, price string) {
		rec := doJSON(t, srv, http.MethodPost, "/projects/"+pid+"/suppliers/"+sid+"/items",
			`{"name":"`+name+`","price":"`+price+`"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("create item = %d: %s", rec.Code, rec.Body.String())
		}
	}

	a := mkSupplier("Fornecedor A")
	b := mkSupplier("Fornecedor B")
	addItem(a, "item1", "100,00")
	addItem(a, "item2", "200,00")
	addItem(b, "item1", "90,00")
	addItem(b, "item2", "250,00")

	rec = doJSON(t, srv, http.MethodGet, "/projects/"+pid+"/ranking", "")
	ranking := decode[[]map[string]any](t, rec)
	if len(ranking) != 2 || ranking[0]["name"] != "Fornecedor A" {
		t.Errorf("ranking = %+v", ranking)
	}

	rec = doJSON(t, srv, http.MethodGet, "/projects/"+pid+"/analysis", "")
	analysis := decode[[]map[string]any](t, rec)
	if len(analysis) != 2 {
		t.Fatalf("analysis len = %d", len(analysis))
	}
	if analysis[0]["bestSupplier"] != "Fornecedor B" {
		t.Errorf("item1 best supplier = %v", analysis[0]["bestSupplier"])
	}

	if rec := doJSON(t, srv, http.MethodDelete, "/projects/"+pid, ""); rec.Code != http.StatusNoContent {
		t.Errorf("delete project = %d", rec.Code)
	}
	if rec := doJSON(t, srv, http.MethodGet, "/projects/"+pid+"/ranking", ""); rec.Code != http.StatusNotFound {
		t.Errorf("ranking after delete = %d", rec.Code)
	}
}

func TestNotificationsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	today := time.Now().Format("2006-01-02")
	body := fmt.Sprintf(`{"title":"Conta","amount":"120,00","type":"EXPENSE","category":"luz","paymentMethod":"PIX","paymentDate":%q}`, today)
	if rec := doJSON(t, srv, http.MethodPost, "/transactions", body); rec.Code != http.StatusCreated {
		t.Fatalf("create = %d", rec.Code)
	}

	rec := doJSON(t, srv, http.MethodGet, "/notifications", "")
	resp := decode[map[string]any](t, rec)
	if resp["hasDueToday"] != true {
		t.Errorf("hasDueToday = %v", resp["hasDueToday"])
	}
	list, ok := resp["notifications"].([]any)
	if !ok || len(list) != 1 {
		t.Fatalf("notifications = %v", resp["notifications"])
	}
	first := list[0].(map[string]any)
	if first["kind"] != "REMINDER" {
		t.Errorf("kind = %v", first["kind"])
	}
}

func TestSummaryEndpoint(t *testing.T) {
	srv := newTestServer(t)

	doJSON(t, srv, http.MethodPost, "/transactions",
		`{"title":"Salário","amount":"5000,00","type":"INCOME","category":"salario","paymentMethod":"PIX"}`)
	doJSON(t, srv, http.MethodPost, "/transactions",
		`{"title":"Mercado","amount":"300,00","type":"EXPENSE","category":"mercado","paymentMethod":"PIX"}`)

	rec := doJSON(t, srv, http.MethodGet, "/transactions/summary", "")
	summary := decode[ledger.Summary](t, rec)
	if summary.Balance.Cents != 470000 {
		t.Errorf("balance = %d", summary.Balance.Cents)
	}
	if summary.Insight.Kind == "" {
		t.Error("insight missing")
	}
	if len(summary.Recent) != 2 {
		t.Errorf("recent = %d", len(summary.Recent))
	}
}
