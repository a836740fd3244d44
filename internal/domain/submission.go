package domain

import (
	"strings"
	"time"
	"unicode/utf16"
)

// SubmissionStatus is the lifecycle state of a contact-form submission
type SubmissionStatus string

const (
	SubmissionStatusNew SubmissionStatus = "new"
)

// TimestampLayout is the ISO-8601 layout used for server-generated timestamps
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Submission represents one contact-form record
type Submission struct {
	ID        string           `json:"id" db:"id" yaml:"id"`
	Name      string           `json:"name" db:"name" yaml:"name"`
	Email     string           `json:"email" db:"email" yaml:"email"`
	Message   string           `json:"message" db:"message" yaml:"message"`
	Timestamp string           `json:"timestamp" db:"submitted_at" yaml:"timestamp"`
	Status    SubmissionStatus `json:"status" db:"status" yaml:"status"`
}

type SubmissionTable struct {
	ID        string
	Name      string
	Email     string
	Message   string
	Timestamp string
	Status    string
}

func GetSubmissionTable() SubmissionTable {
	return SubmissionTable{
		ID:        "id",
		Name:      "name",
		Email:     "email",
		Message:   "message",
		Timestamp: "submitted_at",
		Status:    "status",
	}
}

func (SubmissionTable) TableName() string {
	return "submissions"
}

// ContactForm is the raw payload posted by the site's contact form
type ContactForm struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp,omitempty"`
}

// NewSubmission creates a new submission from an already validated form.
// A blank form timestamp is replaced by now.
func NewSubmission(id string, form ContactForm, now time.Time) *Submission {
	ts := strings.TrimSpace(form.Timestamp)
	if ts == "" {
		ts = now.UTC().Format(TimestampLayout)
	}
	return &Submission{
		ID:        id,
		Name:      strings.TrimSpace(form.Name),
		Email:     strings.TrimSpace(form.Email),
		Message:   strings.TrimSpace(form.Message),
		Timestamp: ts,
		Status:    SubmissionStatusNew,
	}
}

// TextLength measures trimmed form text in UTF-16 code units, the unit the
// site's browser scripts count in. A character outside the BMP counts twice.
func TextLength(s string) int {
	return len(utf16.Encode([]rune(strings.TrimSpace(s))))
}
