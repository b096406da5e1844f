package cbssports

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const injuryReportFixture = `<html><body>
<div class="Page-colMain">
  <div class="TeamInjuries">
    <h3>San Francisco 49ers</h3>
    <table>
      <tr><th>Player</th><th>Pos</th><th>Updated</th><th>Injury</th><th>Injury Status</th></tr>
      <tr><td>Christian McCaffrey</td><td>RB</td><td>Aug 28</td><td>Calf</td><td>Questionable for Week 1</td></tr>
      <tr><td>Partial Row</td><td>WR</td></tr>
    </table>
  </div>
  <div class="TeamInjuries">
    <h3>Buffalo Bills</h3>
    <table>
      <tr><th>Player</th><th>Pos</th><th>Updated</th><th>Injury</th><th>Injury Status</th></tr>
      <tr><td>Josh Allen</td><td>QB</td><td>Aug 27</td><td>Shoulder</td><td>IR</td></tr>
    </table>
  </div>
</div>
</body></html>`

func TestFetchInjuries_ParsesTeamSections(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(injuryReportFixture))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{InjuryURL: server.URL})
	rows, err := client.FetchInjuries(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows (partial row skipped), got=%d", len(rows))
	}

	first := rows[0]
	if first.Name != "Christian McCaffrey" || first.Position != "RB" {
		t.Fatalf("unexpected first row identity: %+v", first)
	}
	if first.BodyPart != "Calf" || first.Status != "Questionable for Week 1" {
		t.Fatalf("unexpected first row facts: %+v", first)
	}

	second := rows[1]
	if second.Name != "Josh Allen" || second.Status != "IR" {
		t.Fatalf("unexpected second row: %+v", second)
	}
}

func TestFetchInjuries_EmptyPageYieldsNoRows(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body><div class='Page-colMain'></div></body></html>"))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{InjuryURL: server.URL})
	rows, err := client.FetchInjuries(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got=%d", len(rows))
	}
}
