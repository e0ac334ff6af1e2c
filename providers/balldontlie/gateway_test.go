package balldontlie

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"betcheck/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureServer(t *testing.T, gameStatus string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/games", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2026-02-05", r.URL.Query().Get("dates[]"))
		fmt.Fprintf(w, `{"data":[
			{"id":777,"status":%q,
			 "home_team":{"id":8,"full_name":"Denver Nuggets","name":"Nuggets","city":"Denver"},
			 "visitor_team":{"id":14,"full_name":"Los Angeles Lakers","name":"Lakers","city":"Los Angeles"}}
		]}`, gameStatus)
	})
	mux.HandleFunc("/players", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "lebron", r.URL.Query().Get("search"))
		fmt.Fprint(w, `{"data":[
			{"id":1,"first_name":"LeBron","last_name":"James"},
			{"id":2,"first_name":"Bronny","last_name":"James"}
		]}`)
	})
	mux.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "777", r.URL.Query().Get("game_ids[]"))
		assert.Equal(t, "1", r.URL.Query().Get("player_ids[]"))
		fmt.Fprintf(w, `{"data":[
			{"pts":30,"ast":8,"reb":7,"fg3m":4,"blk":1,"stl":2,
			 "game":{"id":777,"status":%q},
			 "player":{"id":1,"first_name":"LeBron","last_name":"James"}}
		]}`, gameStatus)
	})
	return httptest.NewServer(mux)
}

func testQuery() models.EventQuery {
	return models.EventQuery{
		HomeTeam: "denver nuggets",
		AwayTeam: "la lakers",
		Player:   "lebron james",
		Date:     "05/02/2026 02:10",
	}
}

func TestGatewayFindEvent(t *testing.T) {
	srv := fixtureServer(t, "Final")
	defer srv.Close()

	gw := NewGateway(NewClient("test-key", WithBaseURL(srv.URL)))
	lookup := gw.FindEvent(context.Background(), testQuery())

	require.Equal(t, models.LookupFound, lookup.Status)
	assert.Equal(t, "777", lookup.GameID)
	assert.Equal(t, "1", lookup.PlayerID)
	assert.Equal(t, "2026-02-05", lookup.Date)
	assert.Equal(t, "Denver Nuggets", lookup.HomeTeam)
	assert.Equal(t, "Los Angeles Lakers", lookup.AwayTeam)
}

func TestGatewayFindEventNoMatchingTeams(t *testing.T) {
	srv := fixtureServer(t, "Final")
	defer srv.Close()

	gw := NewGateway(NewClient("test-key", WithBaseURL(srv.URL)))
	q := testQuery()
	q.HomeTeam = "boston celtics"

	lookup := gw.FindEvent(context.Background(), q)
	assert.Equal(t, models.LookupNotFound, lookup.Status)
}

func TestGatewayFindEventServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	gw := NewGateway(NewClient("test-key", WithBaseURL(srv.URL)))
	lookup := gw.FindEvent(context.Background(), testQuery())
	assert.Equal(t, models.LookupNotFound, lookup.Status)
}

func TestGatewayFindEventUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on

	gw := NewGateway(NewClient("test-key", WithBaseURL(srv.URL)))
	lookup := gw.FindEvent(context.Background(), testQuery())
	assert.Equal(t, models.LookupNotFound, lookup.Status)
}

func TestGatewayFetchSettled(t *testing.T) {
	srv := fixtureServer(t, "Final")
	defer srv.Close()

	gw := NewGateway(NewClient("test-key", WithBaseURL(srv.URL)))
	lookup := models.EventLookup{
		Status: models.LookupFound, GameID: "777", PlayerID: "1", Date: "2026-02-05",
	}

	stat := gw.FetchSettled(context.Background(), lookup, models.StatPoints)
	require.Equal(t, models.SettlementFinished, stat.Status)
	require.NotNil(t, stat.Value)
	assert.Equal(t, 30.0, *stat.Value)

	stat = gw.FetchSettled(context.Background(), lookup, models.StatThreePointers)
	require.NotNil(t, stat.Value)
	assert.Equal(t, 4.0, *stat.Value)

	// Unknown statistic kind: finished but no value to compare.
	stat = gw.FetchSettled(context.Background(), lookup, models.StatUnknown)
	assert.Equal(t, models.SettlementFinished, stat.Status)
	assert.Nil(t, stat.Value)
}

func TestGatewayFetchSettledInProgress(t *testing.T) {
	srv := fixtureServer(t, "3rd Qtr")
	defer srv.Close()

	gw := NewGateway(NewClient("test-key", WithBaseURL(srv.URL)))
	lookup := models.EventLookup{
		Status: models.LookupFound, GameID: "777", PlayerID: "1", Date: "2026-02-05",
	}

	stat := gw.FetchSettled(context.Background(), lookup, models.StatPoints)
	assert.Equal(t, models.SettlementInProgress, stat.Status)
}

func TestGatewayFetchSettledNoLine(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[]}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	gw := NewGateway(NewClient("test-key", WithBaseURL(srv.URL)))
	lookup := models.EventLookup{GameID: "777", PlayerID: "1", Date: "2026-02-05"}

	stat := gw.FetchSettled(context.Background(), lookup, models.StatPoints)
	assert.Equal(t, models.SettlementNotFound, stat.Status)
}
