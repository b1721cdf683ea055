package report

import (
	"math/big"
	"strings"
	"time"

	"github.com/de-tools/tda-copilot/pkg/models/domain"
	"github.com/de-tools/tda-copilot/pkg/services/aggregate"
	"github.com/google/uuid"
)

const suffixLength = 9

// Builder turns an analysis result and the user's metadata into a report.
type Builder struct {
	now    func() time.Time
	suffix func() string
}

type Option func(*Builder)

// WithClock overrides the time source used for the assessment id and the
// default assessment date.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		b.now = now
	}
}

// WithSuffixGenerator overrides the random part of the assessment id.
func WithSuffixGenerator(gen func() string) Option {
	return func(b *Builder) {
		b.suffix = gen
	}
}

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		now:    time.Now,
		suffix: RandomSuffix,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build derives a report. Every call yields a new assessment id, everything
// else depends only on the inputs and the current date.
func (b *Builder) Build(res domain.AnalysisResult, md domain.ReportMetadata) domain.Report {
	today := b.now().UTC().Format(domain.AssessmentDateLayout)
	ready := res.OverallScore >= reviewThreshold

	remediation, risk := "2-3 weeks", "Medium"
	if ready {
		remediation, risk = "1 week", "Low"
	}

	return domain.Report{
		Metadata: domain.ReportInfo{
			AssessmentDate: orDefault(md.AssessmentDate, today),
			DocumentTitle:  orDefault(md.DocumentTitle, defaultDocumentTitle),
			ProjectName:    orDefault(md.ProjectName, defaultProjectName),
			AssessorName:   assessorName,
			Organization:   orDefault(md.Organization, defaultOrganization),
			SubmittedBy:    orDefault(md.SubmittedBy, defaultSubmittedBy),
			ReportVersion:  reportVersion,
			AssessmentID:   "TDA-" + today + "-" + b.suffix(),
		},
		ExecutiveSummary: domain.ExecutiveSummary{
			OverallScore:   res.OverallScore,
			Status:         aggregate.StatusFor(res.OverallScore),
			KeyHighlights:  clone(keyHighlights),
			CriticalIssues: clone(res.PriorityActions),
		},
		DetailedAssessment: domain.DetailedAssessment{
			CloudAdoption: domain.CategoryAssessment{
				CategoryResult: cloneResult(res.Categories.CloudAdoption),
				References:     clone(frameworkReferences),
			},
			WellArchitected: cloneResult(res.Categories.WellArchitected),
			Pillars:         pillars,
			IndustryPractice: domain.CategoryAssessment{
				CategoryResult: cloneResult(res.Categories.IndustryPractice),
				References:     clone(standardsReferences),
			},
			InternalCompliance: domain.CategoryAssessment{
				CategoryResult: cloneResult(res.Categories.InternalCompliance),
				References:     clone(policyGaps),
			},
		},
		PriorityActions: priorityActions(res.PriorityActions),
		ComplianceSummary: domain.ComplianceSummary{
			ReadyForTDAReview:        ready,
			RequiredActionsCount:     len(res.PriorityActions),
			EstimatedRemediationTime: remediation,
			RiskLevel:                risk,
			NextSteps:                clone(nextSteps),
		},
	}
}

// priorityActions surfaces only the first computed action. Additional actions
// from tied categories are listed under the executive summary's critical issues.
func priorityActions(actions []string) []domain.PriorityAction {
	action := priorityTemplate
	action.Action = fallbackAction
	if len(actions) > 0 {
		action.Action = actions[0]
	}
	return []domain.PriorityAction{action}
}

// RandomSuffix returns 9 lowercase base-36 characters drawn from a random UUID.
func RandomSuffix() string {
	id := uuid.New()
	s := new(big.Int).SetBytes(id[:]).Text(36)
	if len(s) < suffixLength {
		s = strings.Repeat("0", suffixLength-len(s)) + s
	}
	return s[len(s)-suffixLength:]
}

// orDefault only replaces empty values, whitespace is kept.
func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func clone(in []string) []string {
	return append([]string{}, in...)
}

func cloneResult(r domain.CategoryResult) domain.CategoryResult {
	return domain.CategoryResult{
		Score:           r.Score,
		Findings:        clone(r.Findings),
		Recommendations: clone(r.Recommendations),
	}
}
