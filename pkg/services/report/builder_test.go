package report

import (
	"regexp"
	"testing"
	"time"

	"github.com/de-tools/tda-copilot/pkg/models/domain"
	"github.com/de-tools/tda-copilot/pkg/services/aggregate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 22, 30, 0, 0, time.UTC)

func analysis(cloud, wa, industry, internal int) domain.AnalysisResult {
	return aggregate.Aggregate(domain.CategoryResults{
		CloudAdoption:      domain.CategoryResult{Score: cloud, Findings: []string{"f"}, Recommendations: []string{"r"}},
		WellArchitected:    domain.CategoryResult{Score: wa},
		IndustryPractice:   domain.CategoryResult{Score: industry},
		InternalCompliance: domain.CategoryResult{Score: internal},
	})
}

func newTestBuilder() *Builder {
	return NewBuilder(WithClock(func() time.Time { return fixedNow }))
}

func TestBuild_MetadataDefaults(t *testing.T) {
	r := newTestBuilder().Build(analysis(70, 75, 80, 65), domain.ReportMetadata{})

	assert.Equal(t, "TDA Assessment Document", r.Metadata.DocumentTitle)
	assert.Equal(t, "Technology Assessment Project", r.Metadata.ProjectName)
	assert.Equal(t, "Assessment User", r.Metadata.SubmittedBy)
	assert.Equal(t, "Enterprise Architecture Team", r.Metadata.Organization)
	assert.Equal(t, "2026-03-14", r.Metadata.AssessmentDate)
	assert.Equal(t, "TDA Copilot Agent", r.Metadata.AssessorName)
	assert.Equal(t, "1.0", r.Metadata.ReportVersion)
}

func TestBuild_MetadataPassThrough(t *testing.T) {
	md := domain.ReportMetadata{
		DocumentTitle:  "Payments Platform HLD",
		ProjectName:    "Payments",
		SubmittedBy:    "J. Doe",
		Organization:   "Retail IT",
		AssessmentDate: "2026-01-02",
	}
	r := newTestBuilder().Build(analysis(70, 75, 80, 65), md)

	assert.Equal(t, md.DocumentTitle, r.Metadata.DocumentTitle)
	assert.Equal(t, md.ProjectName, r.Metadata.ProjectName)
	assert.Equal(t, md.SubmittedBy, r.Metadata.SubmittedBy)
	assert.Equal(t, md.Organization, r.Metadata.Organization)
	assert.Equal(t, md.AssessmentDate, r.Metadata.AssessmentDate)
}

func TestBuild_WhitespaceMetadataIsKept(t *testing.T) {
	md := domain.ReportMetadata{
		DocumentTitle: " ",
		ProjectName:   "\t",
		SubmittedBy:   "  ",
		Organization:  " ",
	}
	r := newTestBuilder().Build(analysis(70, 75, 80, 65), md)

	assert.Equal(t, " ", r.Metadata.DocumentTitle)
	assert.Equal(t, "\t", r.Metadata.ProjectName)
	assert.Equal(t, "  ", r.Metadata.SubmittedBy)
	assert.Equal(t, " ", r.Metadata.Organization)
	assert.Equal(t, "2026-03-14", r.Metadata.AssessmentDate)
}

func TestBuild_AssessmentID(t *testing.T) {
	b := newTestBuilder()
	a := b.Build(analysis(70, 75, 80, 65), domain.ReportMetadata{})
	c := b.Build(analysis(70, 75, 80, 65), domain.ReportMetadata{})

	pattern := regexp.MustCompile(`^TDA-2026-03-14-[0-9a-z]{9}$`)
	assert.Regexp(t, pattern, a.Metadata.AssessmentID)
	assert.Regexp(t, pattern, c.Metadata.AssessmentID)
	assert.NotEqual(t, a.Metadata.AssessmentID, c.Metadata.AssessmentID)

	a.Metadata.AssessmentID = ""
	c.Metadata.AssessmentID = ""
	assert.Equal(t, a, c)
}

func TestBuild_ReadinessThreshold(t *testing.T) {
	tests := []struct {
		name        string
		res         domain.AnalysisResult
		ready       bool
		remediation string
		risk        string
	}{
		{"overall 79", analysis(79, 79, 79, 79), false, "2-3 weeks", "Medium"},
		{"overall 80", analysis(80, 80, 80, 80), true, "1 week", "Low"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestBuilder().Build(tt.res, domain.ReportMetadata{})
			assert.Equal(t, tt.ready, r.ComplianceSummary.ReadyForTDAReview)
			assert.Equal(t, tt.remediation, r.ComplianceSummary.EstimatedRemediationTime)
			assert.Equal(t, tt.risk, r.ComplianceSummary.RiskLevel)
			assert.Len(t, r.ComplianceSummary.NextSteps, 4)
		})
	}
}

func TestBuild_TruncatesPriorityActions(t *testing.T) {
	res := analysis(70, 90, 70, 85)
	require.Len(t, res.PriorityActions, 2)

	r := newTestBuilder().Build(res, domain.ReportMetadata{})

	require.Len(t, r.PriorityActions, 1)
	assert.Equal(t, res.PriorityActions[0], r.PriorityActions[0].Action)
	assert.Equal(t, "High", r.PriorityActions[0].Priority)
	assert.Equal(t, "Architecture Team", r.PriorityActions[0].Owner)
	assert.Equal(t, 2, r.ComplianceSummary.RequiredActionsCount)
	assert.Equal(t, res.PriorityActions, r.ExecutiveSummary.CriticalIssues)
}

func TestBuild_FallbackAction(t *testing.T) {
	res := analysis(80, 80, 80, 80)
	res.PriorityActions = nil

	r := newTestBuilder().Build(res, domain.ReportMetadata{})
	require.Len(t, r.PriorityActions, 1)
	assert.Equal(t, "Address highest-scoring framework gaps", r.PriorityActions[0].Action)
}

func TestBuild_ExecutiveSummary(t *testing.T) {
	r := newTestBuilder().Build(analysis(95, 95, 90, 90), domain.ReportMetadata{})

	assert.Equal(t, 93, r.ExecutiveSummary.OverallScore)
	assert.Equal(t, domain.StatusExcellent, r.ExecutiveSummary.Status)
	assert.Len(t, r.ExecutiveSummary.KeyHighlights, 4)
	assert.Equal(t, 95, r.DetailedAssessment.CloudAdoption.Score)
	assert.Len(t, r.DetailedAssessment.CloudAdoption.References, 3)
	assert.Len(t, r.DetailedAssessment.IndustryPractice.References, 4)
	assert.Len(t, r.DetailedAssessment.InternalCompliance.References, 3)
	assert.NotEmpty(t, r.DetailedAssessment.Pillars.Security)
}

func TestBuild_DoesNotAliasInput(t *testing.T) {
	res := analysis(70, 75, 80, 65)
	r := newTestBuilder().Build(res, domain.ReportMetadata{})

	r.DetailedAssessment.CloudAdoption.Findings[0] = "mutated"
	r.ExecutiveSummary.CriticalIssues[0] = "mutated"

	assert.Equal(t, "f", res.Categories.CloudAdoption.Findings[0])
	assert.NotEqual(t, "mutated", res.PriorityActions[0])
}

func TestRandomSuffix(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 100; i++ {
		s := RandomSuffix()
		assert.Regexp(t, `^[0-9a-z]{9}$`, s)
		seen[s] = struct{}{}
	}
	assert.Len(t, seen, 100)
}
