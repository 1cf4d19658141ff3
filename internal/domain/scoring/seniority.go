package scoring

// Seniority ranks for the three level labels the product uses. Unknown or
// empty labels fall back to the given default.
const (
	RankJunior = 1
	RankPleno  = 2
	RankSenior = 3
)

func LevelRank(label string, def int) int {
	switch normalize(label) {
	case "júnior", "junior":
		return RankJunior
	case "pleno":
		return RankPleno
	case "sênior", "senior":
		return RankSenior
	default:
		return def
	}
}

const levelDeficitPenalty = 33.33

// SenioritySub estimates how well prior positions line up with a job's title
// and level. Only experience entries whose position relates to the job title
// contribute; each scores the average of the position relation and a level
// score that loses 33.33 points per missing seniority level. The best entry
// wins. This is a companion dimension to Compute's score, never blended
// into it.
func SenioritySub(exps []Experience, jobTitle, jobLevel string, titles RelatedTitles) float64 {
	if len(exps) == 0 {
		return 0
	}

	jobRank := LevelRank(jobLevel, RankPleno)

	best := 0.0
	for _, exp := range exps {
		relation := titles.Relation(exp.Position, jobTitle)
		if relation <= 0 {
			continue
		}

		expRank := LevelRank(exp.Level, RankJunior)
		deficit := jobRank - expRank
		if deficit < 0 {
			deficit = 0
		}
		levelScore := 100 - levelDeficitPenalty*float64(deficit)
		if levelScore < 0 {
			levelScore = 0
		}

		combined := (relation + levelScore) / 2
		if combined > best {
			best = combined
		}
	}
	return best
}
