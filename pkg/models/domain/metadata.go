package domain

import (
	"fmt"
	"time"
)

// AssessmentDateLayout is the calendar date format used by the metadata form.
const AssessmentDateLayout = "2006-01-02"

type ReportMetadata struct {
	DocumentTitle  string
	ProjectName    string
	SubmittedBy    string
	Organization   string
	AssessmentDate string
}

// NewReportMetadata returns empty metadata dated on the given day.
func NewReportMetadata(now time.Time) ReportMetadata {
	return ReportMetadata{AssessmentDate: now.UTC().Format(AssessmentDateLayout)}
}

func (m ReportMetadata) Validate() error {
	if m.AssessmentDate == "" {
		return nil
	}
	if _, err := time.Parse(AssessmentDateLayout, m.AssessmentDate); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidAssessmentDate, m.AssessmentDate)
	}
	return nil
}
