package fantasypros

import "testing"

func TestExtractFirstTable_ReturnsCellsRowByRow(t *testing.T) {
	t.Parallel()

	body := []byte(`<html><body>
<div class="rankings">
<table>
  <tr><th>RK</th><th>Player</th><th>Team</th><th>Pos</th></tr>
  <tr><td>1</td><td>Tier 1  Justin Jefferson</td><td>MIN</td><td>WR1</td></tr>
  <tr><td>2</td><td>Ja'Marr Chase</td><td>CIN</td><td>WR2</td></tr>
</table>
<table><tr><td>second table is ignored</td></tr></table>
</div>
</body></html>`)

	rows, err := NewTableParser().ExtractFirstTable(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got=%d", len(rows))
	}
	if rows[0][1] != "Player" {
		t.Fatalf("unexpected header cell: %q", rows[0][1])
	}
	if rows[2][1] != "Ja'Marr Chase" || rows[2][2] != "CIN" {
		t.Fatalf("unexpected data row: %v", rows[2])
	}
}

func TestExtractFirstTable_ErrorsWhenNoTable(t *testing.T) {
	t.Parallel()

	if _, err := NewTableParser().ExtractFirstTable([]byte("<html><body><p>maintenance</p></body></html>")); err == nil {
		t.Fatalf("expected error for document without table")
	}
}
