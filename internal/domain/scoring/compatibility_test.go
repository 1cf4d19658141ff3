package scoring

import (
	"reflect"
	"strings"
	"testing"
)

func skillsOf(names ...string) []Skill {
	out := make([]Skill, 0, len(names))
	for _, n := range names {
		out = append(out, Skill{Name: n, Level: 50})
	}
	return out
}

func TestCompute_EmptySkills(t *testing.T) {
	reqs := []string{"JavaScript", "Redux"}
	res := Compute(nil, reqs, DefaultRelatedSkills())

	if res.Score != 0 {
		t.Fatalf("expected score 0, got %v", res.Score)
	}
	if len(res.Matched) != 0 {
		t.Fatalf("expected no matched skills, got %v", res.Matched)
	}
	if !reflect.DeepEqual(res.Missing, reqs) {
		t.Fatalf("expected missing to equal requirements verbatim, got %v", res.Missing)
	}
	if !strings.Contains(res.Details, "incompleto") {
		t.Fatalf("expected incomplete-profile message, got %q", res.Details)
	}
}

func TestCompute_EmptyRequirements(t *testing.T) {
	res := Compute(skillsOf("Go"), nil, DefaultRelatedSkills())
	if res.Score != 0 {
		t.Fatalf("expected score 0 for zero requirements, got %v", res.Score)
	}
	if len(res.Matched) != 0 || len(res.Missing) != 0 {
		t.Fatalf("expected empty matched/missing, got %v / %v", res.Matched, res.Missing)
	}
}

func TestCompute_BidirectionalSubstring(t *testing.T) {
	res := Compute(skillsOf("React"), []string{"React.js", "Docker"}, nil)

	if len(res.Matched) != 1 || res.Matched[0] != "React.js" {
		t.Fatalf("expected React.js matched, got %v", res.Matched)
	}
	if len(res.Missing) != 1 || res.Missing[0] != "Docker" {
		t.Fatalf("expected Docker missing, got %v", res.Missing)
	}
	if res.Score != 50 {
		t.Fatalf("expected score 50, got %v", res.Score)
	}
}

func TestCompute_NormalizesCasingAndWhitespace(t *testing.T) {
	res := Compute(skillsOf("  JAVASCRIPT  "), []string{"javascript"}, nil)
	if res.Score != 100 {
		t.Fatalf("expected score 100, got %v", res.Score)
	}
	if res.Matched[0] != "javascript" {
		t.Fatalf("matched labels must keep the posting's casing, got %v", res.Matched)
	}
}

func TestCompute_RelatedSkillsTable(t *testing.T) {
	// React relates to redux through the table even without substring overlap.
	res := Compute(skillsOf("JavaScript", "React"), []string{"javascript", "redux"}, DefaultRelatedSkills())

	if res.Score != 100 {
		t.Fatalf("expected both requirements covered, got score %v (matched %v)", res.Score, res.Matched)
	}

	// Without the table only the direct substring match survives.
	res = Compute(skillsOf("JavaScript", "React"), []string{"javascript", "redux"}, nil)
	if res.Score != 50 {
		t.Fatalf("expected 1 of 2 without table, got score %v", res.Score)
	}
	if res.Matched[0] != "javascript" {
		t.Fatalf("expected direct javascript match, got %v", res.Matched)
	}
}

func TestCompute_ExplanationTiers(t *testing.T) {
	cases := []struct {
		name  string
		reqs  []string
		want  string
		avoid string
	}{
		{"great", []string{"go"}, msgGreat, "Sugestões"},
		{"moderate", []string{"go", "go lang", "docker", "docker compose"}, msgModerate, ""},
		{"low", []string{"docker", "kubernetes", "terraform"}, msgLow, ""},
	}
	for _, tc := range cases {
		res := Compute(skillsOf("go"), tc.reqs, nil)
		if !strings.HasPrefix(res.Details, tc.want) {
			t.Fatalf("%s: expected details to start with %q, got %q", tc.name, tc.want, res.Details)
		}
		if tc.avoid != "" && strings.Contains(res.Details, tc.avoid) {
			t.Fatalf("%s: unexpected %q in %q", tc.name, tc.avoid, res.Details)
		}
	}
}

func TestCompute_SuggestsMissing(t *testing.T) {
	res := Compute(skillsOf("go"), []string{"go", "docker"}, nil)
	if !strings.Contains(res.Details, "docker") {
		t.Fatalf("expected suggestion listing docker, got %q", res.Details)
	}
}

func TestCompute_MonotonicInMatches(t *testing.T) {
	reqs := []string{"go", "docker", "kubernetes"}
	prev := -1.0
	for _, skills := range [][]Skill{
		skillsOf("rust"),
		skillsOf("go"),
		skillsOf("go", "docker"),
		skillsOf("go", "docker", "kubernetes"),
	} {
		res := Compute(skills, reqs, nil)
		if res.Score < prev {
			t.Fatalf("score decreased from %v to %v", prev, res.Score)
		}
		prev = res.Score
	}
}

func TestCompute_Idempotent(t *testing.T) {
	skills := skillsOf("JavaScript", "React")
	reqs := []string{"javascript", "redux"}
	table := DefaultRelatedSkills()

	a := Compute(skills, reqs, table)
	b := Compute(skills, reqs, table)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected identical results, got %v vs %v", a, b)
	}
}
