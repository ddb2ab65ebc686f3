package usecase

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/fadilmartias/recruit-assistant/internal/model"
	"github.com/fadilmartias/recruit-assistant/internal/repository"
)

const topN = 10

type Count struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type DashboardStats struct {
	TotalCandidates  int     `json:"total_candidates"`
	AverageScore     float64 `json:"average_score"`
	Scores           []int   `json:"scores"`
	TotalExperiences int     `json:"total_experiences"`
	TopSkills        []Count `json:"top_skills"`
	TopCourses       []Count `json:"top_courses"`
	Languages        []Count `json:"languages"`
	RejectedCount    int64   `json:"rejected_count"`
	OpenJobs         int64   `json:"open_jobs"`
}

type DashboardUsecase struct {
	candidates *repository.CandidateRepository
	jobs       *repository.JobRepository
}

func NewDashboardUsecase(candidates *repository.CandidateRepository, jobs *repository.JobRepository) *DashboardUsecase {
	return &DashboardUsecase{candidates: candidates, jobs: jobs}
}

func (uc *DashboardUsecase) Stats(ctx context.Context) (*DashboardStats, error) {
	active, err := uc.candidates.List(ctx, repository.CandidateFilter{Status: model.StatusActive})
	if err != nil {
		return nil, err
	}
	stats := Aggregate(active)

	if stats.RejectedCount, err = uc.candidates.CountByStatus(ctx, model.StatusRejected); err != nil {
		return nil, err
	}
	if stats.OpenJobs, err = uc.jobs.CountJobs(ctx); err != nil {
		return nil, err
	}
	return stats, nil
}

// Aggregate computes the candidate part of the dashboard.
func Aggregate(candidates []model.Candidate) *DashboardStats {
	stats := &DashboardStats{
		TotalCandidates: len(candidates),
		Scores:          make([]int, 0, len(candidates)),
	}
	skills := map[string]int{}
	courses := map[string]int{}
	languages := map[string]int{}

	sum := 0
	for _, c := range candidates {
		stats.Scores = append(stats.Scores, c.Score)
		sum += c.Score
		stats.TotalExperiences += len(c.Experience)
		for _, s := range c.Skills {
			skills[s.Name]++
		}
		for _, e := range c.Education {
			course := strings.TrimSpace(e.Course)
			if course == "" {
				course = "N/A"
			}
			courses[course]++
		}
		for _, l := range c.Languages {
			name, _, _ := strings.Cut(l.Name, ":")
			if name = strings.TrimSpace(name); name != "" {
				languages[name]++
			}
		}
	}
	if len(candidates) > 0 {
		stats.AverageScore = math.Round(float64(sum)/float64(len(candidates))*10) / 10
	}
	stats.TopSkills = topCounts(skills, topN)
	stats.TopCourses = topCounts(courses, topN)
	stats.Languages = topCounts(languages, 0)
	return stats
}

// topCounts sorts by count descending then name; limit 0 keeps everything.
func topCounts(m map[string]int, limit int) []Count {
	out := make([]Count, 0, len(m))
	for name, n := range m {
		out = append(out, Count{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
