package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fadilmartias/recruit-assistant/internal/model"
	"github.com/fadilmartias/recruit-assistant/internal/repository"
	"github.com/fadilmartias/recruit-assistant/internal/scoring"
	"github.com/fadilmartias/recruit-assistant/internal/service"
	"github.com/fadilmartias/recruit-assistant/internal/storage"
	"github.com/fadilmartias/recruit-assistant/internal/util"
	"golang.org/x/time/rate"
)

const (
	FileProcessed = "processed"
	FileSkipped   = "skipped"
	FileFailed    = "failed"
)

// UploadFile is one file of a batch. Open is called once.
type UploadFile struct {
	Name string
	Open func() (io.ReadCloser, error)
}

type FileResult struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	Reason      string `json:"reason,omitempty"`
	CandidateID uint   `json:"candidate_id,omitempty"`
}

type UploadSummary struct {
	ProcessedCount int          `json:"processed_count"`
	SkippedCount   int          `json:"skipped_count"`
	FailedCount    int          `json:"failed_count"`
	Processed      []string     `json:"processed"`
	Skipped        []string     `json:"skipped"`
	Failed         []string     `json:"failed"`
	Files          []FileResult `json:"files"`
	Message        string       `json:"message"`
}

func (s *UploadSummary) add(r FileResult) {
	s.Files = append(s.Files, r)
	switch r.Status {
	case FileProcessed:
		s.ProcessedCount++
		s.Processed = append(s.Processed, r.Name)
	case FileSkipped:
		s.SkippedCount++
		s.Skipped = append(s.Skipped, r.Name)
	default:
		s.FailedCount++
		s.Failed = append(s.Failed, r.Name)
	}
}

func (s *UploadSummary) finish() {
	if len(s.Files) == 0 {
		s.Message = "No files received."
		return
	}
	s.Message = fmt.Sprintf("%d file(s) processed, %d skipped as duplicates, %d failed.",
		s.ProcessedCount, s.SkippedCount, s.FailedCount)
}

type UploadUsecase struct {
	candidates *repository.CandidateRepository
	resumes    *service.ResumeService
	files      *storage.FileStore
	limiter    *rate.Limiter

	// extractText is util.ExtractText outside tests.
	extractText func(path string) string
	now         func() time.Time
}

// NewUploadUsecase builds the upload pipeline. interval is the minimum gap
// between two AI calls; zero disables the wait.
func NewUploadUsecase(candidates *repository.CandidateRepository, resumes *service.ResumeService, files *storage.FileStore, interval time.Duration) *UploadUsecase {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &UploadUsecase{
		candidates:  candidates,
		resumes:     resumes,
		files:       files,
		limiter:     rate.NewLimiter(limit, 1),
		extractText: util.ExtractText,
		now:         time.Now,
	}
}

// Process runs every file of the batch through the pipeline, one at a time.
// A failing file never stops the batch.
func (uc *UploadUsecase) Process(ctx context.Context, batch []UploadFile) UploadSummary {
	var summary UploadSummary
	for _, f := range batch {
		name := storage.SafeName(f.Name)
		if name == "" {
			continue
		}
		res := uc.processFile(ctx, name, f)
		switch res.Status {
		case FileFailed:
			slog.WarnContext(ctx, "resume upload failed", "file", name, "reason", res.Reason)
		case FileSkipped:
			slog.InfoContext(ctx, "resume upload skipped", "file", name, "reason", res.Reason)
		default:
			slog.InfoContext(ctx, "resume processed", "file", name, "candidate_id", res.CandidateID)
		}
		summary.add(res)
	}
	summary.finish()
	return summary
}

func (uc *UploadUsecase) processFile(ctx context.Context, name string, f UploadFile) FileResult {
	failed := func(reason string) FileResult {
		return FileResult{Name: name, Status: FileFailed, Reason: reason}
	}

	src, err := f.Open()
	if err != nil {
		return failed("could not read upload")
	}
	tmp, err := uc.files.SaveTemp(name, src)
	src.Close()
	if err != nil {
		return failed("could not save file")
	}

	keepTemp := false
	defer func() {
		if !keepTemp {
			_ = uc.files.Remove(tmp)
		}
	}()

	content, err := os.ReadFile(tmp)
	if err != nil || len(content) == 0 {
		return failed("empty file")
	}
	sum := sha256.Sum256(content)
	hash := hex.EncodeToString(sum[:])

	exists, err := uc.candidates.ExistsByHash(ctx, hash)
	if err != nil {
		return failed("database error")
	}
	if exists {
		return FileResult{Name: name, Status: FileSkipped, Reason: ErrDuplicateFile.Error()}
	}

	if !util.IsSupported(name) {
		return failed("unsupported file type")
	}
	text := uc.extractText(tmp)
	if strings.TrimSpace(text) == "" {
		return failed("no text could be extracted")
	}

	if err := uc.limiter.Wait(ctx); err != nil {
		return failed("cancelled")
	}
	resume, err := uc.resumes.ExtractCandidate(ctx, text)
	if err != nil {
		if errors.Is(err, service.ErrLLMDisabled) {
			return failed("AI extraction is disabled")
		}
		return failed("AI extraction failed")
	}
	if !resume.HasName() {
		return failed("no candidate name found")
	}

	result := scoring.ScoreResume(resume)

	if err := uc.limiter.Wait(ctx); err != nil {
		return failed("cancelled")
	}
	analysis := uc.resumes.AnalyzeCandidate(ctx, resume, result.Score)

	stored, err := uc.files.MoveProcessed(tmp, name)
	if err != nil {
		return failed("could not store file")
	}
	keepTemp = true

	candidate := model.NewCandidate(model.CandidateRecord{
		Resume:        resume,
		Score:         result.Score,
		Reasons:       result.Reasons,
		Analysis:      analysis,
		ContentHash:   hash,
		ProcessedFile: stored,
		UploadedAt:    uc.now(),
	})
	if err := uc.candidates.Create(ctx, candidate); err != nil {
		_ = uc.files.Remove(uc.files.ProcessedPath(stored))
		if repository.IsDuplicate(err) {
			return FileResult{Name: name, Status: FileSkipped, Reason: ErrDuplicateFile.Error()}
		}
		slog.ErrorContext(ctx, "failed to save candidate", "file", name, "error", err)
		return failed("database error")
	}
	return FileResult{Name: name, Status: FileProcessed, CandidateID: candidate.ID}
}
