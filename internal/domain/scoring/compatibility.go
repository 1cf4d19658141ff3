package scoring

import "strings"

// Skill is the normalized {name, level} shape a profile carries after
// ingestion. Level is 0-100.
type Skill struct {
	Name  string
	Level int
}

type Experience struct {
	Position string
	Level    string
}

// Result is a compatibility verdict for one profile/job pair. Score is a
// percentage of requirement coverage; Matched and Missing keep the
// requirement labels in the posting's original casing.
type Result struct {
	Score   float64
	Details string
	Matched []string
	Missing []string
}

const (
	msgIncompleteProfile = "Perfil do usuário incompleto. Adicione habilidades para calcular a compatibilidade."
	msgGreat             = "Ótima compatibilidade! O usuário possui a maioria das habilidades necessárias para a vaga."
	msgModerate          = "Compatibilidade moderada. O usuário possui algumas habilidades necessárias, mas pode precisar de aprimoramento."
	msgLow               = "Baixa compatibilidade. O usuário precisa desenvolver mais habilidades para se qualificar para a vaga."
)

// Compute calculates requirement coverage for a profile against a job's
// requirement labels. A profile with no skills is a defined zero-score case
// with every requirement reported missing, not an error.
func Compute(skills []Skill, requirements []string, related RelatedSkills) Result {
	if len(skills) == 0 {
		return Result{
			Score:   0,
			Details: msgIncompleteProfile,
			Matched: []string{},
			Missing: append([]string{}, requirements...),
		}
	}

	normalized := make([]string, 0, len(skills))
	for _, s := range skills {
		n := normalize(s.Name)
		if n == "" {
			continue
		}
		normalized = append(normalized, n)
	}

	matched := make([]string, 0, len(requirements))
	missing := make([]string, 0)
	for _, req := range requirements {
		if satisfies(normalized, normalize(req), related) {
			matched = append(matched, req)
		} else {
			missing = append(missing, req)
		}
	}

	score := 0.0
	if len(requirements) > 0 {
		score = float64(len(matched)) / float64(len(requirements)) * 100
	}

	return Result{
		Score:   score,
		Details: explain(score, missing),
		Matched: matched,
		Missing: missing,
	}
}

// satisfies reports whether any profile skill covers the requirement:
// bidirectional substring containment tolerates phrasing differences
// ("react" vs "react.js"), and the related-skills table widens the match to
// adjacent technologies.
func satisfies(skills []string, req string, related RelatedSkills) bool {
	if req == "" {
		return false
	}
	for _, skill := range skills {
		if strings.Contains(skill, req) || strings.Contains(req, skill) {
			return true
		}
		if related.Related(skill, req) {
			return true
		}
	}
	return false
}

func explain(score float64, missing []string) string {
	var msg string
	switch {
	case score >= 80:
		msg = msgGreat
	case score >= 50:
		msg = msgModerate
	default:
		msg = msgLow
	}
	if len(missing) > 0 {
		msg += " Sugestões de habilidades para desenvolver: " + strings.Join(missing, ", ") + "."
	}
	return msg
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
