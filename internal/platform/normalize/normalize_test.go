package normalize

import "testing"

func TestText_CollapsesWhitespaceVariants(t *testing.T) {
	cases := map[string]string{
		"":                        "",
		"  Justin  Jefferson  ":   "Justin Jefferson",
		"Amon-Ra St. Brown":  "Amon-Ra St. Brown",
		"Ja'Marr\tChase":          "Ja'Marr Chase",
		"CeeDee\n Lamb":           "CeeDee Lamb",
		"  Josh Allen ": "Josh Allen",
	}
	for in, want := range cases {
		if got := Text(in); got != want {
			t.Fatalf("Text(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPosition_DefenseAliases(t *testing.T) {
	for _, alias := range []string{"DST", "D/ST", "D-ST", "DEFENSE", "dst", "defense"} {
		if got := Position(alias); got != "DEF" {
			t.Fatalf("Position(%q) = %q, want DEF", alias, got)
		}
	}
	if got := Position("rb"); got != "RB" {
		t.Fatalf("Position(rb) = %q, want RB", got)
	}
	if got := Position("QB"); got != "QB" {
		t.Fatalf("Position(QB) = %q, want QB", got)
	}
}

func TestTeam_FullAliasTable(t *testing.T) {
	// Every known alias must resolve to its canonical code; silent mismatches
	// here turn into invisible matching failures downstream.
	cases := map[string]string{
		"JAX": "JAC",
		"WSH": "WAS",
		"LA":  "LAR",
		"STL": "LAR",
		"SD":  "LAC",
		"OAK": "LV",
		"NOR": "NO",
		"NEP": "NE",
		"GBP": "GB",
		"SFO": "SF",
		"KCC": "KC",
		"TB":  "TB",
		"NO":  "NO",
		"JAC": "JAC",
		"WAS": "WAS",
		"LV":  "LV",
		"LAC": "LAC",
		"LAR": "LAR",
		"SF":  "SF",
		"KC":  "KC",
		"GB":  "GB",
		"NE":  "NE",
	}
	for in, want := range cases {
		if got := Team(in); got != want {
			t.Fatalf("Team(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTeam_IsIdempotent(t *testing.T) {
	inputs := []string{"JAX", "WSH", "LA", "STL", "SD", "OAK", "NOR", "NEP", "GBP", "SFO", "KCC", "BUF", "DAL", "zzq"}
	for _, in := range inputs {
		once := Team(in)
		twice := Team(once)
		if once != twice {
			t.Fatalf("Team not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestTeam_UnknownCodesPassThrough(t *testing.T) {
	if got := Team("buf"); got != "BUF" {
		t.Fatalf("Team(buf) = %q, want BUF", got)
	}
	if got := Team("XYZ"); got != "XYZ" {
		t.Fatalf("Team(XYZ) = %q, want XYZ", got)
	}
}

func TestCleanFloat(t *testing.T) {
	for _, in := range []string{"", "-", "  ", "N/A", "NaN", "abc", "Inf"} {
		if _, ok := CleanFloat(in); ok {
			t.Fatalf("CleanFloat(%q) should be absent", in)
		}
	}
	got, ok := CleanFloat("12.5")
	if !ok || got != 12.5 {
		t.Fatalf("CleanFloat(12.5) = %v, %v", got, ok)
	}
	got, ok = CleanFloat(" 7 ")
	if !ok || got != 7 {
		t.Fatalf("CleanFloat(' 7 ') = %v, %v", got, ok)
	}
}

func TestCleanInt(t *testing.T) {
	if _, ok := CleanInt("-"); ok {
		t.Fatal("CleanInt(-) should be absent")
	}
	got, ok := CleanInt("2.9")
	if !ok || got != 2 {
		t.Fatalf("CleanInt(2.9) = %v, %v, want truncation to 2", got, ok)
	}
	got, ok = CleanInt("14")
	if !ok || got != 14 {
		t.Fatalf("CleanInt(14) = %v, %v", got, ok)
	}
}
