package models

import "time"

// Subject tags a question with its school subject.
type Subject string

const (
	SubjectMath      Subject = "math"
	SubjectPhysics   Subject = "physics"
	SubjectChemistry Subject = "chemistry"
)

// IsValid reports whether s is one of the supported subjects.
func (s Subject) IsValid() bool {
	switch s {
	case SubjectMath, SubjectPhysics, SubjectChemistry:
		return true
	}
	return false
}

// Explanation is the parsed result of an explanation-service response:
// ordered solution steps and an optional final answer. Either part may be
// empty when the raw text did not follow the expected line convention.
type Explanation struct {
	Steps       []string `json:"steps"`
	FinalAnswer string   `json:"final_answer"`
}

// QuestionRecord is one answered question in the history log. Immutable
// once created.
type QuestionRecord struct {
	ID          string    `json:"id"`
	Question    string    `json:"question"`
	Steps       []string  `json:"steps"`
	FinalAnswer string    `json:"final_answer"`
	Subject     Subject   `json:"subject"`
	CreatedAt   time.Time `json:"created_at"`
}
