// Package export renders candidate listings as CSV and XLSX downloads.
package export

import (
	"encoding/json"
	"strings"

	"github.com/fadilmartias/recruit-assistant/internal/model"
)

const (
	dateLayout = "2006-01-02 15:04:05"

	// ApprovedMinScore is the score from which a candidate appears in the
	// approved export.
	ApprovedMinScore = 60
)

// Layout selects the column set of an export.
type Layout int

const (
	Full Layout = iota
	Approved
)

type column struct {
	header string
	width  float64
	csv    func(c *model.Candidate) string
	xlsx   func(c *model.Candidate) any
}

func col(header string, width float64, get func(c *model.Candidate) string) column {
	return column{
		header: header,
		width:  width,
		csv:    func(c *model.Candidate) string { return csvText(get(c)) },
		xlsx:   func(c *model.Candidate) any { return get(c) },
	}
}

func listCol(header string, width float64, get func(c *model.Candidate) []string) column {
	return column{
		header: header,
		width:  width,
		csv:    func(c *model.Candidate) string { return csvText(strings.Join(get(c), "|")) },
		xlsx:   func(c *model.Candidate) any { return strings.Join(get(c), ", ") },
	}
}

// csvText quotes a cell that a spreadsheet would otherwise read as a formula.
func csvText(s string) string {
	if s != "" && strings.ContainsRune("=+-@\t\r", rune(s[0])) {
		return "'" + s
	}
	return s
}

func jsonList[T any](entries []T) string {
	if len(entries) == 0 {
		return "[]"
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func joinEntries[T interface{ String() string }](entries []T) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		if s := e.String(); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "; ")
}

var (
	colID = column{
		header: "ID", width: 8,
		csv:  func(c *model.Candidate) string { return itoa(int(c.ID)) },
		xlsx: func(c *model.Candidate) any { return c.ID },
	}
	colName     = col("Name", 25, func(c *model.Candidate) string { return c.Name })
	colEmail    = col("Email", 28, func(c *model.Candidate) string { return c.Email })
	colPhone    = col("Phone", 18, func(c *model.Candidate) string { return c.Phone })
	colLinkedIn = col("LinkedIn", 30, func(c *model.Candidate) string { return c.LinkedIn })
	colAge      = col("Age", 10, func(c *model.Candidate) string { return c.Age })
	colRole     = col("Desired Role", 22, func(c *model.Candidate) string { return c.DesiredRole })
	colScore    = column{
		header: "Score", width: 8,
		csv:  func(c *model.Candidate) string { return itoa(c.Score) },
		xlsx: func(c *model.Candidate) any { return c.Score },
	}
	colSkills    = listCol("Skills", 40, func(c *model.Candidate) []string { return c.SkillNames() })
	colEducation = column{
		header: "Education", width: 45,
		csv:  func(c *model.Candidate) string { return jsonList(c.EducationEntries()) },
		xlsx: func(c *model.Candidate) any { return joinEntries(c.EducationEntries()) },
	}
	colExperience = column{
		header: "Experience", width: 45,
		csv:  func(c *model.Candidate) string { return jsonList(c.ExperienceEntries()) },
		xlsx: func(c *model.Candidate) any { return joinEntries(c.ExperienceEntries()) },
	}
	colLanguages = listCol("Languages", 25, func(c *model.Candidate) []string { return c.LanguageNames() })
	colAnalysis  = col("AI Analysis", 60, func(c *model.Candidate) string { return c.Analysis })
	colStatus    = col("Status", 10, func(c *model.Candidate) string { return string(c.Status) })
	colUploaded  = col("Upload Date", 20, func(c *model.Candidate) string {
		if c.UploadedAt.IsZero() {
			return ""
		}
		return c.UploadedAt.Format(dateLayout)
	})
	colFile = col("Processed File", 35, func(c *model.Candidate) string { return c.ProcessedFile })
)

func (l Layout) columns() []column {
	if l == Approved {
		return []column{colID, colName, colEmail, colPhone, colLinkedIn, colScore, colSkills, colAnalysis, colUploaded}
	}
	return []column{
		colID, colName, colEmail, colPhone, colLinkedIn, colAge, colRole, colScore,
		colSkills, colEducation, colExperience, colLanguages, colAnalysis, colStatus, colUploaded, colFile,
	}
}

// Headers lists the column titles of the layout.
func (l Layout) Headers() []string {
	cols := l.columns()
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.header
	}
	return out
}

func (l Layout) sheetName() string {
	if l == Approved {
		return "Approved"
	}
	return "Candidates"
}
