package adapters

import (
	"github.com/de-tools/tda-copilot/pkg/models/api"
	"github.com/de-tools/tda-copilot/pkg/models/domain"
)

func MapReportInfoDomainToApi(m domain.ReportInfo) api.ReportMetadata {
	return api.ReportMetadata{
		AssessmentDate: m.AssessmentDate,
		DocumentTitle:  m.DocumentTitle,
		ProjectName:    m.ProjectName,
		AssessorName:   m.AssessorName,
		Organization:   m.Organization,
		SubmittedBy:    m.SubmittedBy,
		ReportVersion:  m.ReportVersion,
		AssessmentID:   m.AssessmentID,
	}
}

func MapPriorityActionDomainToApi(a domain.PriorityAction) api.PriorityAction {
	return api.PriorityAction{
		Priority:        a.Priority,
		Action:          a.Action,
		Rationale:       a.Rationale,
		EstimatedEffort: a.EstimatedEffort,
		Owner:           a.Owner,
		Category:        a.Category,
	}
}

func MapReportDomainToApi(r domain.Report) api.Report {
	d := r.DetailedAssessment
	res := api.Report{
		ReportMetadata: MapReportInfoDomainToApi(r.Metadata),
		ExecutiveSummary: api.ExecutiveSummary{
			OverallScore:   r.ExecutiveSummary.OverallScore,
			Status:         string(r.ExecutiveSummary.Status),
			KeyHighlights:  nonNil(r.ExecutiveSummary.KeyHighlights),
			CriticalIssues: nonNil(r.ExecutiveSummary.CriticalIssues),
		},
		DetailedAssessment: api.DetailedAssessment{
			CloudAdoptionAlignment: api.CloudAdoptionAssessment{
				Score:               d.CloudAdoption.Score,
				Findings:            nonNil(d.CloudAdoption.Findings),
				Recommendations:     nonNil(d.CloudAdoption.Recommendations),
				FrameworkReferences: nonNil(d.CloudAdoption.References),
			},
			WellArchitectedAlignment: api.WellArchitectedAssessment{
				Score:           d.WellArchitected.Score,
				Findings:        nonNil(d.WellArchitected.Findings),
				Recommendations: nonNil(d.WellArchitected.Recommendations),
				PillarBreakdown: api.PillarBreakdown{
					Reliability:           d.Pillars.Reliability,
					Security:              d.Pillars.Security,
					CostOptimization:      d.Pillars.CostOptimization,
					OperationalExcellence: d.Pillars.OperationalExcellence,
					PerformanceEfficiency: d.Pillars.PerformanceEfficiency,
				},
			},
			IndustryBestPractices: api.IndustryPracticeAssessment{
				Score:               d.IndustryPractice.Score,
				Findings:            nonNil(d.IndustryPractice.Findings),
				Recommendations:     nonNil(d.IndustryPractice.Recommendations),
				StandardsReferences: nonNil(d.IndustryPractice.References),
			},
			InternalCompliance: api.InternalComplianceAssessment{
				Score:           d.InternalCompliance.Score,
				Findings:        nonNil(d.InternalCompliance.Findings),
				Recommendations: nonNil(d.InternalCompliance.Recommendations),
				PolicyGaps:      nonNil(d.InternalCompliance.References),
			},
		},
		PriorityActions: make([]api.PriorityAction, 0, len(r.PriorityActions)),
		ComplianceSummary: api.ComplianceSummary{
			ReadyForTDAReview:        r.ComplianceSummary.ReadyForTDAReview,
			RequiredActionsCount:     r.ComplianceSummary.RequiredActionsCount,
			EstimatedRemediationTime: r.ComplianceSummary.EstimatedRemediationTime,
			RiskLevel:                r.ComplianceSummary.RiskLevel,
			NextSteps:                nonNil(r.ComplianceSummary.NextSteps),
		},
	}
	for _, a := range r.PriorityActions {
		res.PriorityActions = append(res.PriorityActions, MapPriorityActionDomainToApi(a))
	}
	return res
}

// nonNil keeps empty lists serialized as [] rather than null.
func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
