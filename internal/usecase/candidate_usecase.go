package usecase

import (
	"context"
	"log/slog"

	"github.com/fadilmartias/recruit-assistant/internal/model"
	"github.com/fadilmartias/recruit-assistant/internal/repository"
	"github.com/fadilmartias/recruit-assistant/internal/response"
	"github.com/fadilmartias/recruit-assistant/internal/scoring"
	"github.com/fadilmartias/recruit-assistant/internal/storage"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// RankedCandidate is an active candidate in ranking order. Match is set only
// when ranking against a job.
type RankedCandidate struct {
	Candidate model.Candidate
	Match     *int
}

type PageQuery struct {
	Page     int
	PageSize int
	MinScore int
	Status   model.CandidateStatus
}

type CandidateUsecase struct {
	candidates *repository.CandidateRepository
	jobs       *repository.JobRepository
	files      *storage.FileStore
}

func NewCandidateUsecase(candidates *repository.CandidateRepository, jobs *repository.JobRepository, files *storage.FileStore) *CandidateUsecase {
	return &CandidateUsecase{candidates: candidates, jobs: jobs, files: files}
}

// Rank orders active candidates. With jobID 0 the order is by score; otherwise
// by skill match against the job, which is returned alongside.
func (uc *CandidateUsecase) Rank(ctx context.Context, jobID uint) ([]RankedCandidate, *model.Job, error) {
	var job *model.Job
	if jobID != 0 {
		var err error
		job, err = uc.jobs.FindJobByID(ctx, jobID)
		if err != nil {
			if repository.IsNotFound(err) {
				return nil, nil, ErrJobNotFound
			}
			return nil, nil, err
		}
	}

	list, err := uc.candidates.List(ctx, repository.CandidateFilter{Status: model.StatusActive})
	if err != nil {
		return nil, nil, err
	}

	byID := make(map[uint]model.Candidate, len(list))
	rankable := make([]scoring.Rankable, len(list))
	for i, c := range list {
		byID[c.ID] = c
		rankable[i] = scoring.Rankable{ID: c.ID, Score: c.Score, Skills: c.SkillNames()}
	}

	var ranked []scoring.Ranked
	if job != nil {
		ranked = scoring.RankByMatch(job.SkillNames(), rankable)
	} else {
		ranked = scoring.RankByScore(rankable)
	}

	out := make([]RankedCandidate, len(ranked))
	for i, r := range ranked {
		out[i] = RankedCandidate{Candidate: byID[r.ID], Match: r.Match}
	}
	return out, job, nil
}

// Page lists candidates of any status, best score first.
func (uc *CandidateUsecase) Page(ctx context.Context, q PageQuery) ([]model.Candidate, *response.Pagination, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}

	list, total, err := uc.candidates.Page(ctx, repository.CandidateFilter{Status: q.Status, MinScore: q.MinScore}, q.Page, q.PageSize)
	if err != nil {
		return nil, nil, err
	}
	return list, response.NewPagination(q.Page, q.PageSize, total, len(list)), nil
}

func (uc *CandidateUsecase) Get(ctx context.Context, id uint) (*model.Candidate, error) {
	c, err := uc.candidates.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrCandidateNotFound
		}
		return nil, err
	}
	return c, nil
}

// Reject hides the candidate from active listings but keeps the row, so its
// content hash still blocks re-uploads.
func (uc *CandidateUsecase) Reject(ctx context.Context, id uint) error {
	if err := uc.candidates.UpdateStatus(ctx, id, model.StatusRejected); err != nil {
		if repository.IsNotFound(err) {
			return ErrCandidateNotFound
		}
		return err
	}
	slog.InfoContext(ctx, "candidate rejected", "candidate_id", id)
	return nil
}

// Delete removes the candidate, its child rows and its stored file.
func (uc *CandidateUsecase) Delete(ctx context.Context, id uint) error {
	c, err := uc.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.candidates.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return ErrCandidateNotFound
		}
		return err
	}
	if uc.files != nil && c.ProcessedFile != "" {
		if err := uc.files.Remove(uc.files.ProcessedPath(c.ProcessedFile)); err != nil {
			slog.WarnContext(ctx, "failed to remove processed file", "file", c.ProcessedFile, "error", err)
		}
	}
	slog.InfoContext(ctx, "candidate deleted", "candidate_id", id)
	return nil
}

// Export returns active candidates for export, optionally only those scoring
// at least minScore.
func (uc *CandidateUsecase) Export(ctx context.Context, minScore int) ([]model.Candidate, error) {
	return uc.candidates.List(ctx, repository.CandidateFilter{Status: model.StatusActive, MinScore: minScore})
}
