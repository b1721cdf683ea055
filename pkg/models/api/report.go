package api

type ReportMetadata struct {
	AssessmentDate string `json:"assessmentDate"`
	DocumentTitle  string `json:"documentTitle"`
	ProjectName    string `json:"projectName"`
	AssessorName   string `json:"assessorName"`
	Organization   string `json:"organization"`
	SubmittedBy    string `json:"submittedBy"`
	ReportVersion  string `json:"reportVersion"`
	AssessmentID   string `json:"assessmentId"`
}

type ExecutiveSummary struct {
	OverallScore   int      `json:"overallScore"`
	Status         string   `json:"status"`
	KeyHighlights  []string `json:"keyHighlights"`
	CriticalIssues []string `json:"criticalIssues"`
}

type CloudAdoptionAssessment struct {
	Score               int      `json:"score"`
	Findings            []string `json:"findings"`
	Recommendations     []string `json:"recommendations"`
	FrameworkReferences []string `json:"frameworkReferences"`
}

type PillarBreakdown struct {
	Reliability           string `json:"reliability"`
	Security              string `json:"security"`
	CostOptimization      string `json:"costOptimization"`
	OperationalExcellence string `json:"operationalExcellence"`
	PerformanceEfficiency string `json:"performanceEfficiency"`
}

type WellArchitectedAssessment struct {
	Score           int             `json:"score"`
	Findings        []string        `json:"findings"`
	Recommendations []string        `json:"recommendations"`
	PillarBreakdown PillarBreakdown `json:"pillarBreakdown"`
}

type IndustryPracticeAssessment struct {
	Score               int      `json:"score"`
	Findings            []string `json:"findings"`
	Recommendations     []string `json:"recommendations"`
	StandardsReferences []string `json:"standardsReferences"`
}

type InternalComplianceAssessment struct {
	Score           int      `json:"score"`
	Findings        []string `json:"findings"`
	Recommendations []string `json:"recommendations"`
	PolicyGaps      []string `json:"policyGaps"`
}

type DetailedAssessment struct {
	CloudAdoptionAlignment   CloudAdoptionAssessment      `json:"cloudAdoptionAlignment"`
	WellArchitectedAlignment WellArchitectedAssessment    `json:"wellArchitectedAlignment"`
	IndustryBestPractices    IndustryPracticeAssessment   `json:"industryBestPractices"`
	InternalCompliance       InternalComplianceAssessment `json:"internalCompliance"`
}

type PriorityAction struct {
	Priority        string `json:"priority"`
	Action          string `json:"action"`
	Rationale       string `json:"rationale"`
	EstimatedEffort string `json:"estimatedEffort"`
	Owner           string `json:"owner"`
	Category        string `json:"category"`
}

type ComplianceSummary struct {
	ReadyForTDAReview        bool     `json:"readyForTDAReview"`
	RequiredActionsCount     int      `json:"requiredActionsCount"`
	EstimatedRemediationTime string   `json:"estimatedRemediationTime"`
	RiskLevel                string   `json:"riskLevel"`
	NextSteps                []string `json:"nextSteps"`
}

// Report is the export artifact. Field order here is the serialized order.
type Report struct {
	ReportMetadata     ReportMetadata     `json:"reportMetadata"`
	ExecutiveSummary   ExecutiveSummary   `json:"executiveSummary"`
	DetailedAssessment DetailedAssessment `json:"detailedAssessment"`
	PriorityActions    []PriorityAction   `json:"priorityActions"`
	ComplianceSummary  ComplianceSummary  `json:"complianceSummary"`
}
