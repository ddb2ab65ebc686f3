// Package scoring holds the fixed heuristic candidate score and the job
// skill-overlap ranking.
package scoring

import (
	"strings"

	"github.com/fadilmartias/recruit-assistant/internal/model"
)

const (
	DataSkillsPoints     = 50
	ExperiencePoints     = 30
	ComputingDegreePoint = 20

	MaxScore = 100
)

const (
	ReasonDataSkills      = "data skills"
	ReasonExperience      = "experience"
	ReasonComputingDegree = "computing degree"
)

// dataSkills is compared against normalized candidate skills.
var dataSkills = map[string]struct{}{
	"python":           {},
	"sql":              {},
	"power bi":         {},
	"data analysis":    {},
	"análise de dados": {},
}

// computingCourses are matched as substrings of the folded course name.
var computingCourses = []string{
	"computer science",
	"ciências da computação",
	"ciência da computação",
	"informática",
	"information technology",
}

// Result is a 0–100 score with one reason per rule that fired, in rule order.
type Result struct {
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// Score applies the additive rules: data skills, then experience, then a
// computing degree. Empty inputs never match.
func Score(skills []string, experience []model.Experience, education []model.Education) Result {
	res := Result{Reasons: []string{}}

	if hasDataSkill(skills) {
		res.Score += DataSkillsPoints
		res.Reasons = append(res.Reasons, ReasonDataSkills)
	}
	if len(experience) > 0 {
		res.Score += ExperiencePoints
		res.Reasons = append(res.Reasons, ReasonExperience)
	}
	if hasComputingDegree(education) {
		res.Score += ComputingDegreePoint
		res.Reasons = append(res.Reasons, ReasonComputingDegree)
	}

	res.Score = clamp(res.Score)
	return res
}

// ScoreResume scores an extracted résumé record.
func ScoreResume(r model.ResumeData) Result {
	return Score(r.Skills, r.Experience, r.Education)
}

func hasDataSkill(skills []string) bool {
	for _, s := range skills {
		if _, ok := dataSkills[Normalize(s)]; ok {
			return true
		}
	}
	return false
}

func hasComputingDegree(education []model.Education) bool {
	for _, e := range education {
		course := Normalize(e.Course)
		if course == "" {
			continue
		}
		for _, kw := range computingCourses {
			if strings.Contains(course, kw) {
				return true
			}
		}
	}
	return false
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
