package domain

// Report represents a complete assessment report ready for export
type Report struct {
	Metadata           ReportInfo
	ExecutiveSummary   ExecutiveSummary
	DetailedAssessment DetailedAssessment
	PriorityActions    []PriorityAction
	ComplianceSummary  ComplianceSummary
}

// ReportInfo is the metadata block of a report with defaults already applied
type ReportInfo struct {
	AssessmentDate string
	DocumentTitle  string
	ProjectName    string
	AssessorName   string
	Organization   string
	SubmittedBy    string
	ReportVersion  string
	AssessmentID   string
}

type ExecutiveSummary struct {
	OverallScore   int
	Status         Status
	KeyHighlights  []string
	CriticalIssues []string
}

// CategoryAssessment is a category result together with its reference text
type CategoryAssessment struct {
	CategoryResult
	References []string
}

// PillarBreakdown summarises the five Well-Architected pillars
type PillarBreakdown struct {
	Reliability           string
	Security              string
	CostOptimization      string
	OperationalExcellence string
	PerformanceEfficiency string
}

type DetailedAssessment struct {
	CloudAdoption      CategoryAssessment
	WellArchitected    CategoryResult
	Pillars            PillarBreakdown
	IndustryPractice   CategoryAssessment
	InternalCompliance CategoryAssessment
}

type PriorityAction struct {
	Priority        string
	Action          string
	Rationale       string
	EstimatedEffort string
	Owner           string
	Category        string
}

type ComplianceSummary struct {
	ReadyForTDAReview        bool
	RequiredActionsCount     int
	EstimatedRemediationTime string
	RiskLevel                string
	NextSteps                []string
}
