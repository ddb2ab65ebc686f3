package scoring

import (
	"math"
	"sort"
	"strings"
)

// Normalize trims and case-folds a skill string.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeSkills folds every skill, drops empties and keeps the first
// occurrence of duplicates.
func NormalizeSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		n := Normalize(s)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// MatchPercent is the share of job skills found as a substring of at least
// one candidate skill, rounded half to even. Containment is one-way: the job
// skill "java" also matches the candidate skill "javascript". A job without
// skills matches nobody.
func MatchPercent(jobSkills, candidateSkills []string) int {
	required := NormalizeSkills(jobSkills)
	if len(required) == 0 {
		return 0
	}
	have := NormalizeSkills(candidateSkills)

	matched := 0
	for _, js := range required {
		for _, cs := range have {
			if strings.Contains(cs, js) {
				matched++
				break
			}
		}
	}
	return int(math.RoundToEven(100 * float64(matched) / float64(len(required))))
}

// Rankable is the minimum a candidate exposes for ranking.
type Rankable struct {
	ID     uint
	Score  int
	Skills []string
}

// Ranked is a candidate with its position-defining value. Match is nil in
// score mode.
type Ranked struct {
	Rankable
	Match *int
}

// RankByMatch sorts candidates by match percent descending, ties by id.
func RankByMatch(jobSkills []string, candidates []Rankable) []Ranked {
	out := make([]Ranked, len(candidates))
	for i, c := range candidates {
		m := MatchPercent(jobSkills, c.Skills)
		out[i] = Ranked{Rankable: c, Match: &m}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if *out[i].Match != *out[j].Match {
			return *out[i].Match > *out[j].Match
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// RankByScore is the fallback ordering when no job is selected.
func RankByScore(candidates []Rankable) []Ranked {
	out := make([]Ranked, len(candidates))
	for i, c := range candidates {
		out[i] = Ranked{Rankable: c}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ID < out[j].ID
	})
	return out
}
