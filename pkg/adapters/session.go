package adapters

import (
	"github.com/de-tools/tda-copilot/pkg/models/api"
	"github.com/de-tools/tda-copilot/pkg/models/domain"
	"github.com/de-tools/tda-copilot/pkg/services/aggregate"
	"github.com/de-tools/tda-copilot/pkg/services/scoring"
)

func MapMetadataDomainToApi(m domain.ReportMetadata) api.Metadata {
	return api.Metadata{
		DocumentTitle:  m.DocumentTitle,
		ProjectName:    m.ProjectName,
		SubmittedBy:    m.SubmittedBy,
		Organization:   m.Organization,
		AssessmentDate: m.AssessmentDate,
	}
}

func MapMetadataApiToDomain(m api.Metadata) domain.ReportMetadata {
	return domain.ReportMetadata{
		DocumentTitle:  m.DocumentTitle,
		ProjectName:    m.ProjectName,
		SubmittedBy:    m.SubmittedBy,
		Organization:   m.Organization,
		AssessmentDate: m.AssessmentDate,
	}
}

func MapAnalysisDomainToApi(a domain.AnalysisResult) api.Analysis {
	res := api.Analysis{
		OverallScore:    a.OverallScore,
		Status:          string(aggregate.StatusFor(a.OverallScore)),
		Tier:            string(aggregate.TierFor(a.OverallScore)),
		Categories:      make([]api.CategoryResult, 0, len(domain.Categories)),
		PriorityActions: nonNil(a.PriorityActions),
	}
	for _, c := range domain.Categories {
		r := a.Categories.Get(c)
		res.Categories = append(res.Categories, api.CategoryResult{
			Category:        string(c),
			Title:           scoring.Title(c),
			Score:           r.Score,
			Status:          string(aggregate.StatusFor(r.Score)),
			Tier:            string(aggregate.TierFor(r.Score)),
			Findings:        nonNil(r.Findings),
			Recommendations: nonNil(r.Recommendations),
		})
	}
	return res
}

func MapSessionDomainToApi(s domain.SessionState) api.Session {
	res := api.Session{
		DocumentLength: len(s.Document),
		Metadata:       MapMetadataDomainToApi(s.Metadata),
		Analyzing:      s.Analyzing,
	}
	if s.Analysis != nil {
		a := MapAnalysisDomainToApi(*s.Analysis)
		res.Analysis = &a
	}
	return res
}

func MapCriteriaDomainToApi(c domain.Criteria) api.Criteria {
	return api.Criteria{
		Category:    string(c.Category),
		Title:       c.Title,
		Description: c.Description,
		MaxScore:    c.MaxScore,
		Criteria:    nonNil(c.Items),
	}
}
