package scoring

import "strings"

// RelatedSkills maps a canonical skill key to terms considered adjacent to
// it. Two labels are related when one side contains the key and the other
// contains one of its terms, in either direction. The table is injected so
// it can be extended without touching match logic.
type RelatedSkills map[string][]string

func (t RelatedSkills) Related(a, b string) bool {
	if len(t) == 0 {
		return false
	}
	for key, terms := range t {
		if strings.Contains(a, key) && containsAny(b, terms) {
			return true
		}
		if strings.Contains(b, key) && containsAny(a, terms) {
			return true
		}
	}
	return false
}

// RelatedTitles maps a canonical position key to related position labels.
type RelatedTitles map[string][]string

const (
	relationExact   = 100
	relationRelated = 80
)

// Relation scores how close two position titles are: 100 for an exact
// case-insensitive match, 80 when the table links them, 0 otherwise.
func (t RelatedTitles) Relation(a, b string) float64 {
	a = normalize(a)
	b = normalize(b)
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return relationExact
	}
	for key, related := range t {
		if strings.Contains(a, key) && containsAny(b, related) {
			return relationRelated
		}
		if strings.Contains(b, key) && containsAny(a, related) {
			return relationRelated
		}
	}
	return 0
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if term == "" {
			continue
		}
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

func DefaultRelatedSkills() RelatedSkills {
	return RelatedSkills{
		"javascript": {"react", "vue", "angular", "node"},
		"react":      {"javascript", "redux", "nextjs"},
		"vue":        {"javascript", "vuex", "nuxt"},
		"angular":    {"javascript", "typescript", "rxjs"},
		"node":       {"javascript", "express", "mongodb"},
		"python":     {"django", "flask", "pandas"},
		"java":       {"spring", "hibernate", "junit"},
		"csharp":     {"dotnet", "aspnet", "entityframework"},
		"php":        {"laravel", "symfony", "wordpress"},
		"ui/ux":      {"figma", "sketch", "adobe xd", "user research", "wireframing", "prototyping"},
		"design":     {"photoshop", "illustrator", "indesign", "typography", "color theory"},
	}
}

func DefaultRelatedTitles() RelatedTitles {
	return RelatedTitles{
		"ui/ux designer":       {"ux designer", "ui designer", "product designer", "interaction designer"},
		"frontend developer":   {"web developer", "javascript developer", "react developer", "vue developer"},
		"backend developer":    {"software engineer", "java developer", "python developer", "node.js developer"},
		"full stack developer": {"web developer", "software engineer", "javascript developer"},
		"product manager":      {"product owner", "project manager", "scrum master"},
	}
}
