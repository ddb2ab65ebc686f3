package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fadilmartias/recruit-assistant/internal/model"
	"github.com/tidwall/gjson"
)

var ErrLLMDisabled = errors.New("llm disabled")

const (
	AnalysisDisabled    = "AI analysis disabled: no LLM API key configured."
	AnalysisUnavailable = "AI analysis unavailable for this candidate."
)

// ExampleSkills is returned by SuggestSkills when no LLM is configured.
var ExampleSkills = []string{"Python", "SQL", "Data Analysis", "Communication"}

type ResumeService struct {
	llm LLM
}

// NewResumeService wraps llm. A nil llm puts every operation in disabled mode.
func NewResumeService(llm LLM) *ResumeService {
	return &ResumeService{llm: llm}
}

func (s *ResumeService) Enabled() bool {
	return s.llm != nil
}

const extractPrompt = `Analyze the text of this résumé and extract the information as JSON.
The JSON must have EXACTLY this structure:
{
  "name": "Candidate full name",
  "email": "email@domain.com",
  "phone": "phone number",
  "linkedin": "https://linkedin.com/in/profile",
  "age": "age as written",
  "desired_role": "role or objective described",
  "skills": ["Skill 1", "Skill 2"],
  "education": [{"course": "Course name", "institution": "Institution", "period": "Start - End"}],
  "experience": [{"role": "Role", "company": "Company", "period": "Start - End", "activities": "What was done"}],
  "languages": ["English: fluent"]
}
When a field is not found return an empty value ("" or []).

Résumé text:
---
%s
---`

// ExtractCandidate asks the LLM for the structured record of a résumé. Any
// failure yields an empty record and an error.
func (s *ResumeService) ExtractCandidate(ctx context.Context, text string) (model.ResumeData, error) {
	if s.llm == nil {
		return model.ResumeData{}, ErrLLMDisabled
	}

	reply, err := s.llm.Generate(ctx, fmt.Sprintf(extractPrompt, text), GenerateOptions{JSON: true})
	if err != nil {
		slog.ErrorContext(ctx, "resume extraction failed", "error", err)
		return model.ResumeData{}, fmt.Errorf("extract candidate: %w", err)
	}

	data, err := ParseResume(reply)
	if err != nil {
		slog.ErrorContext(ctx, "resume extraction reply unparseable", "error", err, "reply_len", len(reply))
		return model.ResumeData{}, err
	}
	return data, nil
}

// ParseResume reads an LLM reply into a ResumeData. Scalars are read
// leniently so a numeric age or a null list does not reject the reply.
func ParseResume(reply string) (model.ResumeData, error) {
	raw := StripCodeFence(reply)
	if !gjson.Valid(raw) {
		return model.ResumeData{}, fmt.Errorf("reply is not valid JSON")
	}
	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return model.ResumeData{}, fmt.Errorf("reply is not a JSON object")
	}

	data := model.ResumeData{
		Name:        strings.TrimSpace(doc.Get("name").String()),
		Email:       strings.TrimSpace(doc.Get("email").String()),
		Phone:       strings.TrimSpace(doc.Get("phone").String()),
		LinkedIn:    strings.TrimSpace(doc.Get("linkedin").String()),
		Age:         strings.TrimSpace(doc.Get("age").String()),
		DesiredRole: strings.TrimSpace(doc.Get("desired_role").String()),
		Skills:      stringList(doc.Get("skills")),
		Languages:   stringList(doc.Get("languages")),
	}
	// Entries without any field are dropped, as NewCandidate does.
	for _, e := range doc.Get("education").Array() {
		entry := model.Education{
			Course:      strings.TrimSpace(e.Get("course").String()),
			Institution: strings.TrimSpace(e.Get("institution").String()),
			Period:      strings.TrimSpace(e.Get("period").String()),
		}
		if entry != (model.Education{}) {
			data.Education = append(data.Education, entry)
		}
	}
	for _, e := range doc.Get("experience").Array() {
		entry := model.Experience{
			Role:       strings.TrimSpace(e.Get("role").String()),
			Company:    strings.TrimSpace(e.Get("company").String()),
			Period:     strings.TrimSpace(e.Get("period").String()),
			Activities: strings.TrimSpace(e.Get("activities").String()),
		}
		if entry != (model.Experience{}) {
			data.Experience = append(data.Experience, entry)
		}
	}
	return data, nil
}

func stringList(r gjson.Result) []string {
	var out []string
	for _, v := range r.Array() {
		if s := strings.TrimSpace(v.String()); s != "" {
			out = append(out, s)
		}
	}
	return out
}

const analyzePrompt = `Analyze the following candidate for an IT role. Write a short professional
summary (at most 3 sentences), list the 3 main strengths and give a clear final
recommendation (for example "Recommended for interview", "Consider for future
openings", "Not recommended at this time"). Keep it concise and professional,
500 characters at most.

CANDIDATE:
- Name: %s
- Desired role: %s
- Score (computed by the system): %d
- Main skills: %s
- Education: %s
- Experience: %s`

// AnalyzeCandidate returns a short narrative about the candidate. It never
// fails; a placeholder is returned when the LLM cannot answer.
func (s *ResumeService) AnalyzeCandidate(ctx context.Context, resume model.ResumeData, score int) string {
	if s.llm == nil {
		return AnalysisDisabled
	}

	education, _ := json.Marshal(resume.Education)
	experience, _ := json.Marshal(resume.Experience)
	prompt := fmt.Sprintf(analyzePrompt,
		resume.Name, resume.DesiredRole, score,
		strings.Join(resume.Skills, ", "), education, experience)

	reply, err := s.llm.Generate(ctx, prompt, GenerateOptions{})
	if err != nil {
		slog.WarnContext(ctx, "candidate analysis failed", "candidate", resume.Name, "error", err)
		return AnalysisUnavailable
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return AnalysisUnavailable
	}
	return reply
}

const suggestPrompt = `You are an IT recruitment specialist. Analyze the job description below.
Extract the 5 to 8 most important skills (technical and behavioral) it mentions.
Return ONLY the skills separated by commas, without any other text or formatting.

Example:
Python, Django, REST API, AWS, PostgreSQL, Teamwork, Proactivity

Job description:
"%s"`

// SuggestSkills proposes key skills for a job description.
func (s *ResumeService) SuggestSkills(ctx context.Context, description string) ([]string, error) {
	if s.llm == nil {
		return append([]string(nil), ExampleSkills...), nil
	}

	reply, err := s.llm.Generate(ctx, fmt.Sprintf(suggestPrompt, description), GenerateOptions{})
	if err != nil {
		return nil, fmt.Errorf("suggest skills: %w", err)
	}
	skills := SplitSkills(StripCodeFence(reply))
	if len(skills) == 0 {
		return nil, fmt.Errorf("suggest skills: empty reply")
	}
	return skills, nil
}

// SplitSkills splits a comma separated reply, dropping blanks.
func SplitSkills(reply string) []string {
	var out []string
	for _, part := range strings.Split(reply, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// StripCodeFence removes a surrounding markdown code fence such as ```json.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
