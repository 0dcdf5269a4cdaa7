package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"routecraft-service/internal/adapters/distance"
	"routecraft-service/internal/api/dto"
	"routecraft-service/internal/services"
)

func newRouteHandler() *RouteHandler {
	engine := services.NewEngine(distance.NewStaticResolver())
	return &RouteHandler{Engine: engine}
}

func doSearch(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/routes/search", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newRouteHandler().Search(rec, req)
	return rec
}

func TestSearchReturnsRankedRoutes(t *testing.T) {
	body := `{"from":"Hyderabad","to":"Bangalore","date":"2026-09-14","preference":"low_budget"}`
	rec := doSearch(t, body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.SearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(res.Routes) != 13 {
		t.Fatalf("len(routes) = %d, want 13", len(res.Routes))
	}
	if res.Routes[0].Rank != 1 {
		t.Errorf("first route rank = %d, want 1", res.Routes[0].Rank)
	}
	if res.Routes[0].DateLabel != "14 Sep 2026" {
		t.Errorf("date label = %q, want 14 Sep 2026", res.Routes[0].DateLabel)
	}
}

func TestSearchDegenerateInputsReturnEmptyList(t *testing.T) {
	for _, body := range []string{
		`{"from":"","to":"Delhi"}`,
		`{"from":"Delhi","to":""}`,
		`{"from":"Delhi","to":"Delhi"}`,
	} {
		rec := doSearch(t, body)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 for %s", rec.Code, body)
		}

		var res dto.SearchResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(res.Routes) != 0 {
			t.Errorf("len(routes) = %d, want 0 for %s", len(res.Routes), body)
		}
	}
}

func TestSearchRejectsMalformedRequests(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"invalid json", `{`},
		{"unknown field", `{"from":"A","to":"B","mood":"great"}`},
		{"trailing object", `{"from":"A","to":"B"}{"from":"C"}`},
		{"bad date", `{"from":"A","to":"B","date":"14-09-2026"}`},
	}

	for _, c := range cases {
		rec := doSearch(t, c.body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", c.name, rec.Code)
		}
	}
}

func TestSearchUnknownPreferenceClampsToLowBudget(t *testing.T) {
	budget := doSearch(t, `{"from":"Hyderabad","to":"Bangalore","preference":"low_budget"}`)
	unknown := doSearch(t, `{"from":"Hyderabad","to":"Bangalore","preference":"teleport"}`)

	if budget.Body.String() != unknown.Body.String() {
		t.Fatal("unknown preference response differs from low_budget")
	}
}
