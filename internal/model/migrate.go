package model

// All lists every table managed by AutoMigrate, parents before children.
func All() []any {
	return []any{
		&User{},
		&Job{}, &JobSkill{},
		&Candidate{},
		&CandidateSkill{}, &CandidateEducation{}, &CandidateExperience{},
		&CandidateLanguage{}, &CandidateScoreReason{},
	}
}
