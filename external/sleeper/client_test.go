package sleeper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchPlayers_MapsCatalogEntries(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/players/nfl" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"4034": {"player_id": "4034", "full_name": "Christian McCaffrey", "position": "RB", "team": "SF", "espn_id": 3117251, "nfl_id": "32004d43-4321"},
			"9999": {"player_id": "9999", "full_name": "", "position": "", "team": null}
		}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL})
	entries, err := client.FetchPlayers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got=%d", len(entries))
	}

	entry := entries["4034"]
	if entry.FullName != "Christian McCaffrey" {
		t.Fatalf("unexpected full name: %q", entry.FullName)
	}
	if entry.Position != "RB" || entry.Team != "SF" {
		t.Fatalf("unexpected position/team: %q/%q", entry.Position, entry.Team)
	}
	if entry.ESPNID != "3117251" {
		t.Fatalf("expected numeric espn id flattened to string, got=%q", entry.ESPNID)
	}
	if entry.NFLID != "32004d43-4321" {
		t.Fatalf("unexpected nfl id: %q", entry.NFLID)
	}
}

func TestFetchPlayers_NonRetryableStatusFailsFast(t *testing.T) {
	t.Parallel()

	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, MaxRetries: 3})
	if _, err := client.FetchPlayers(context.Background()); err == nil {
		t.Fatalf("expected error for 404 response")
	}
	if calls != 1 {
		t.Fatalf("expected a single request for non-retryable status, got=%d", calls)
	}
}

func TestIDToString(t *testing.T) {
	t.Parallel()

	if got := idToString("abc "); got != "abc" {
		t.Fatalf("unexpected string id: %q", got)
	}
	if got := idToString(float64(12345)); got != "12345" {
		t.Fatalf("unexpected numeric id: %q", got)
	}
	if got := idToString(nil); got != "" {
		t.Fatalf("expected empty string for nil id, got=%q", got)
	}
}
