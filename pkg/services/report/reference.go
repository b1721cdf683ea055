package report

import "github.com/de-tools/tda-copilot/pkg/models/domain"

const (
	assessorName  = "TDA Copilot Agent"
	reportVersion = "1.0"

	defaultDocumentTitle = "TDA Assessment Document"
	defaultProjectName   = "Technology Assessment Project"
	defaultSubmittedBy   = "Assessment User"
	defaultOrganization  = "Enterprise Architecture Team"

	fallbackAction = "Address highest-scoring framework gaps"

	// reviewThreshold is the overall score from which a document is ready
	// for the TDA board.
	reviewThreshold = 80
)

var keyHighlights = []string{
	"Comprehensive framework assessment completed",
	"Microsoft Cloud Adoption Framework alignment evaluated",
	"Well-Architected Framework principles analyzed",
	"Industry best practices and internal compliance reviewed",
}

var frameworkReferences = []string{
	"Strategy methodology - Business justification",
	"Plan methodology - Migration timeline",
	"Ready methodology - Landing zone design",
}

var pillars = domain.PillarBreakdown{
	Reliability:           "Multi-region design with availability targets",
	Security:              "Zero Trust model with comprehensive controls",
	CostOptimization:      "Reserved instances and right-sizing strategy",
	OperationalExcellence: "Monitoring and automation practices",
	PerformanceEfficiency: "Scalable architecture with optimization",
}

var standardsReferences = []string{
	"TOGAF enterprise architecture framework",
	"RESTful API design standards",
	"ISO 27001 security controls",
	"ITIL service management practices",
}

var policyGaps = []string{
	"Risk management framework alignment",
	"Data retention policy references",
	"Incident response procedure integration",
}

var nextSteps = []string{
	"Review and implement priority recommendations",
	"Update documentation with missing elements",
	"Schedule follow-up assessment",
	"Prepare for TDA board presentation",
}

var priorityTemplate = domain.PriorityAction{
	Priority:        "High",
	Rationale:       "Critical for TDA approval and business alignment",
	EstimatedEffort: "2-3 weeks",
	Owner:           "Architecture Team",
	Category:        "Framework Alignment",
}
