package scoring

import (
	"math"
	"testing"
)

func TestLevelRank(t *testing.T) {
	cases := []struct {
		label string
		def   int
		want  int
	}{
		{"Júnior", RankPleno, RankJunior},
		{"pleno", RankJunior, RankPleno},
		{"  Sênior ", RankJunior, RankSenior},
		{"senior", RankJunior, RankSenior},
		{"", RankPleno, RankPleno},
		{"estagiário", RankJunior, RankJunior},
	}
	for _, tc := range cases {
		if got := LevelRank(tc.label, tc.def); got != tc.want {
			t.Fatalf("LevelRank(%q, %d) = %d, want %d", tc.label, tc.def, got, tc.want)
		}
	}
}

func TestSenioritySub_ExactPositionSameLevel(t *testing.T) {
	got := SenioritySub(
		[]Experience{{Position: "Backend Developer", Level: "Pleno"}},
		"backend developer", "Pleno",
		DefaultRelatedTitles(),
	)
	if got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
}

func TestSenioritySub_RelatedPositionLevelDeficit(t *testing.T) {
	// Related title (80) averaged with one level of deficit (100 - 33.33).
	got := SenioritySub(
		[]Experience{{Position: "Software Engineer", Level: "Pleno"}},
		"Backend Developer", "Sênior",
		DefaultRelatedTitles(),
	)
	want := (80.0 + (100 - 33.33)) / 2
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSenioritySub_UnrelatedPositionsIgnored(t *testing.T) {
	got := SenioritySub(
		[]Experience{{Position: "Chef de Cozinha", Level: "Sênior"}},
		"Backend Developer", "Júnior",
		DefaultRelatedTitles(),
	)
	if got != 0 {
		t.Fatalf("expected 0 for unrelated position, got %v", got)
	}
}

func TestSenioritySub_TakesBestEntry(t *testing.T) {
	exps := []Experience{
		{Position: "Software Engineer", Level: "Júnior"},
		{Position: "Backend Developer", Level: "Sênior"},
	}
	got := SenioritySub(exps, "backend developer", "Sênior", DefaultRelatedTitles())
	if got != 100 {
		t.Fatalf("expected best entry to win with 100, got %v", got)
	}
}

func TestSenioritySub_DefaultsLevels(t *testing.T) {
	// Unspecified job level defaults to Pleno, unspecified experience level
	// to Júnior: one level of deficit.
	got := SenioritySub(
		[]Experience{{Position: "Backend Developer"}},
		"Backend Developer", "",
		DefaultRelatedTitles(),
	)
	want := (100.0 + (100 - 33.33)) / 2
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSenioritySub_FlooredAtZero(t *testing.T) {
	exps := []Experience{{Position: "Backend Developer", Level: "Júnior"}}
	got := SenioritySub(exps, "Backend Developer", "Sênior", DefaultRelatedTitles())
	// Two levels of deficit: 100 - 66.66 averaged with exact position match.
	want := (100.0 + (100 - 66.66)) / 2
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
