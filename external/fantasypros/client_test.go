package fantasypros

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGet_SendsBrowserUserAgent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("User-Agent"), "Mozilla") {
			t.Errorf("expected browser-like user agent, got=%q", r.Header.Get("User-Agent"))
		}
		_, _ = w.Write([]byte("Player,Team,Pos,ECR\n"))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{})
	body, err := client.Get(context.Background(), server.URL+"/rankings.csv?csv=1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(body) != "Player,Team,Pos,ECR\n" {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestGet_NonRetryableStatusFailsFast(t *testing.T) {
	t.Parallel()

	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{MaxRetries: 2})
	if _, err := client.Get(context.Background(), server.URL); err == nil {
		t.Fatalf("expected error for 403 response")
	}
	if calls != 1 {
		t.Fatalf("expected a single request, got=%d", calls)
	}
}
