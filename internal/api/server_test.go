package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jstevez608/Football-Sim/internal/config"
	"github.com/jstevez608/Football-Sim/internal/league"
)

type testAPI struct {
	t      *testing.T
	router http.Handler
}

func newTestAPI(t *testing.T) *testAPI {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := league.NewService(logger, league.WithSeed(7))
	cfg := &config.Config{CORSAllowOrigins: []string{"*"}}
	return &testAPI{t: t, router: NewRouter(svc, cfg)}
}

func (a *testAPI) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	a.t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			a.t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

// doJSON performs a request, asserts the status, and decodes an object body.
func (a *testAPI) doJSON(method, path string, body interface{}, wantStatus int) map[string]interface{} {
	a.t.Helper()
	rec := a.do(method, path, body)
	if rec.Code != wantStatus {
		a.t.Fatalf("%s %s: status %d, want %d (body %s)", method, path, rec.Code, wantStatus, rec.Body.String())
	}
	var out map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		a.t.Fatalf("%s %s: decode: %v", method, path, err)
	}
	return out
}

// doList performs a GET and decodes an array body.
func (a *testAPI) doList(path string) []map[string]interface{} {
	a.t.Helper()
	rec := a.do(http.MethodGet, path, nil)
	if rec.Code != http.StatusOK {
		a.t.Fatalf("GET %s: status %d (body %s)", path, rec.Code, rec.Body.String())
	}
	var out []map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		a.t.Fatalf("GET %s: decode: %v", path, err)
	}
	return out
}

func TestRootAndHealth(t *testing.T) {
	a := newTestAPI(t)
	if body := a.doJSON(http.MethodGet, "/", nil, http.StatusOK); body["status"] != "running" {
		t.Fatalf("root body %v", body)
	}
	if body := a.doJSON(http.MethodGet, "/healthz", nil, http.StatusOK); body["status"] != "healthy" {
		t.Fatalf("health body %v", body)
	}
}

func TestMalformedBodyIsBadRequest(t *testing.T) {
	a := newTestAPI(t)
	req := httptest.NewRequest(http.MethodPost, "/api/draft/pick", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
	var body map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["detail"] != "invalid request body" {
		t.Fatalf("detail %v", body["detail"])
	}
}

func TestInvalidRoundParameter(t *testing.T) {
	a := newTestAPI(t)
	a.doJSON(http.MethodGet, "/api/league/matches/round/abc", nil, http.StatusBadRequest)
	a.doJSON(http.MethodGet, "/api/league/matches/round/0", nil, http.StatusBadRequest)
}

func TestFullGameFlow(t *testing.T) {
	a := newTestAPI(t)

	// Before init, state reports no game with a 200.
	state := a.doJSON(http.MethodGet, "/api/game/state", nil, http.StatusOK)
	if state["error"] != "no game initialized" {
		t.Fatalf("uninitialized state %v", state)
	}

	initResp := a.doJSON(http.MethodPost, "/api/game/init", nil, http.StatusOK)
	if initResp["players_available"] != float64(75) {
		t.Fatalf("players_available %v", initResp["players_available"])
	}

	// Budget outside the band is rejected with the server's detail.
	badTeam := a.doJSON(http.MethodPost, "/api/teams", map[string]interface{}{
		"name": "Pobre", "budget": 1_000_000,
	}, http.StatusBadRequest)
	if detail, _ := badTeam["detail"].(string); !strings.Contains(detail, "budget") {
		t.Fatalf("detail %v", badTeam["detail"])
	}

	names := []string{"Rayo", "Atlético", "Betis", "Celta", "Osasuna", "Getafe", "Alavés", "Girona"}
	teamIDs := make([]string, 0, len(names))
	for _, name := range names {
		resp := a.doJSON(http.MethodPost, "/api/teams", map[string]interface{}{
			"name":   name,
			"colors": map[string]string{"primary": "red", "secondary": "white"},
			"budget": league.MaxBudget,
		}, http.StatusOK)
		teamIDs = append(teamIDs, resp["team_id"].(string))
	}
	a.doJSON(http.MethodPost, "/api/teams", map[string]interface{}{
		"name": "Noveno", "budget": league.MinBudget,
	}, http.StatusBadRequest)

	// Draft.
	draft := a.doJSON(http.MethodPost, "/api/draft/start", nil, http.StatusOK)
	order := draft["draft_order"].([]interface{})
	if len(order) != league.LeagueTeamCount || order[0].(string) != teamIDs[0] {
		t.Fatalf("draft order %v", order)
	}

	freePlayer := func(position string) string {
		for _, p := range a.doList("/api/players") {
			if p["team_id"] == nil && p["position"] == position {
				return p["id"].(string)
			}
		}
		t.Fatalf("no free %s left", position)
		return ""
	}

	// Out of turn.
	a.doJSON(http.MethodPost, "/api/draft/pick", map[string]interface{}{
		"team_id": teamIDs[5], "player_id": freePlayer("PORTERO"),
	}, http.StatusBadRequest)

	// First pick, then verify the reloads reflect it.
	firstPick := freePlayer("PORTERO")
	pickResp := a.doJSON(http.MethodPost, "/api/draft/pick", map[string]interface{}{
		"team_id": teamIDs[0], "player_id": firstPick,
	}, http.StatusOK)
	if pickResp["next_turn_index"] != float64(1) {
		t.Fatalf("next_turn_index %v", pickResp["next_turn_index"])
	}
	state = a.doJSON(http.MethodGet, "/api/game/state", nil, http.StatusOK)
	if state["current_team_turn"] != float64(1) {
		t.Fatalf("state turn %v", state["current_team_turn"])
	}
	for _, p := range a.doList("/api/players") {
		if p["id"] == firstPick && p["team_id"] != teamIDs[0] {
			t.Fatalf("picked player not assigned: %v", p)
		}
	}

	// Finish the draft: every team takes a 5-2-1 roster. The first team
	// already has its keeper.
	needs := []string{"PORTERO", "DEFENSA", "DEFENSA", "DEFENSA", "MEDIO", "MEDIO", "DELANTERO"}
	for round, need := range needs {
		for i, teamID := range teamIDs {
			if round == 0 && i == 0 {
				continue
			}
			a.doJSON(http.MethodPost, "/api/draft/pick", map[string]interface{}{
				"team_id": teamID, "player_id": freePlayer(need),
			}, http.StatusOK)
		}
	}

	// League start.
	start := a.doJSON(http.MethodPost, "/api/league/start", nil, http.StatusOK)
	if start["total_matches"] != float64(56) || start["rounds"] != float64(14) {
		t.Fatalf("league start %v", start)
	}

	formations := a.doJSON(http.MethodGet, "/api/league/formations", nil, http.StatusOK)
	for _, key := range []string{"A", "B", "C"} {
		if formations[key] == nil {
			t.Fatalf("formation %s missing", key)
		}
	}

	market := a.doJSON(http.MethodGet, "/api/league/market-status", nil, http.StatusOK)
	if market["market_open"] != false || market["opens_at_round"] != float64(7) {
		t.Fatalf("market %v", market)
	}

	if rows := a.doList("/api/league/standings"); len(rows) != league.LeagueTeamCount {
		t.Fatalf("standings rows %d", len(rows))
	}

	// Lineups in turn order.
	rosters := map[string][]string{}
	for _, team := range a.doList("/api/teams") {
		var ids []string
		for _, id := range team["players"].([]interface{}) {
			ids = append(ids, id.(string))
		}
		rosters[team["id"].(string)] = ids
	}
	for _, teamID := range teamIDs {
		a.doJSON(http.MethodPost, "/api/league/lineup/select", map[string]interface{}{
			"team_id": teamID, "formation": "B", "players": rosters[teamID],
		}, http.StatusOK)
	}
	state = a.doJSON(http.MethodGet, "/api/game/state", nil, http.StatusOK)
	if state["current_phase"] != "match" {
		t.Fatalf("phase after lineups %v", state["current_phase"])
	}

	// Simulate round one.
	for i := 0; i < league.LeagueTeamCount/2; i++ {
		result := a.doJSON(http.MethodPost, "/api/league/simulate-next-match", nil, http.StatusOK)
		last := i == league.LeagueTeamCount/2-1
		if result["round_completed"] != last {
			t.Fatalf("simulate %d: round_completed %v", i, result["round_completed"])
		}
		if last && result["next_round"] != float64(2) {
			t.Fatalf("next_round %v", result["next_round"])
		}
	}

	for _, m := range a.doList("/api/league/matches/round/1") {
		if m["played"] != true {
			t.Fatalf("round 1 fixture left unplayed: %v", m)
		}
	}
	state = a.doJSON(http.MethodGet, "/api/game/state", nil, http.StatusOK)
	if state["current_phase"] != "pre_match" || state["current_round"] != float64(2) {
		t.Fatalf("state after round 1: %v", state)
	}
}
