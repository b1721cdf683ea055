package scoring

import "github.com/de-tools/tda-copilot/pkg/models/domain"

// profile is the static scoring definition of one category.
type profile struct {
	// scores are sampled from [floor, floor+span)
	span            int
	floor           int
	findings        []string
	recommendations []string
	priorityAction  string
	criteria        domain.Criteria
}

var profiles = map[domain.Category]profile{
	domain.CategoryCloudAdoption: {
		span:  30,
		floor: 70,
		findings: []string{
			"Business strategy clearly articulated with cloud-first approach",
			"Migration timeline well-defined with phased approach",
			"Governance framework references Azure Policy implementation",
			"Cost-benefit analysis could be more detailed for executive approval",
		},
		recommendations: []string{
			"Include detailed ROI calculations for cloud migration initiative",
			"Define specific Azure Landing Zone configuration parameters",
			"Add compliance mapping to industry standards (ISO 27001, SOC 2)",
		},
		priorityAction: "Strengthen cloud adoption strategy with detailed business case",
		criteria: domain.Criteria{
			Category:    domain.CategoryCloudAdoption,
			Title:       "Cloud Adoption Framework Alignment",
			Description: "Strategy, Plan, Ready, Adopt, Govern, Manage methodologies",
			MaxScore:    100,
			Items: []string{
				"Business strategy and cloud rationale clearly defined",
				"Cloud adoption plan with timeline and milestones",
				"Landing zone design and implementation approach",
				"Migration or modernization strategy outlined",
				"Governance and compliance framework referenced",
				"Management and monitoring approach defined",
			},
		},
	},
	domain.CategoryWellArchitected: {
		span:  25,
		floor: 75,
		findings: []string{
			"Security controls well-documented with Zero Trust model implementation",
			"High availability design with multi-region deployment strategy",
			"Cost optimization through reserved instances and right-sizing mentioned",
			"Performance monitoring strategy needs enhancement with specific metrics",
		},
		recommendations: []string{
			"Define specific SLA targets and monitoring thresholds (99.9% uptime)",
			"Include comprehensive disaster recovery testing procedures",
			"Add automated scaling policies and performance optimization triggers",
		},
		priorityAction: "Enhance Well-Architected Framework compliance, focus on monitoring",
		criteria: domain.Criteria{
			Category:    domain.CategoryWellArchitected,
			Title:       "Well-Architected Framework Alignment",
			Description: "Reliability, Security, Cost Optimization, Operational Excellence, Performance Efficiency",
			MaxScore:    100,
			Items: []string{
				"Reliability patterns and fault tolerance addressed",
				"Security controls and compliance requirements defined",
				"Cost optimization strategies and budget considerations",
				"Operational excellence practices and automation",
				"Performance efficiency and scalability requirements",
			},
		},
	},
	domain.CategoryIndustryPractice: {
		span:  20,
		floor: 80,
		findings: []string{
			"Follows established enterprise architecture patterns and methodologies",
			"API-first design with standard RESTful interfaces and documentation",
			"Data classification and handling procedures defined per industry standards",
			"Integration patterns align with enterprise service bus architecture",
		},
		recommendations: []string{
			"Include explicit reference to TOGAF or similar EA framework",
			"Add comprehensive microservices design patterns documentation",
			"Define API versioning strategy and lifecycle management procedures",
		},
		priorityAction: "Align with industry standards and reference frameworks",
		criteria: domain.Criteria{
			Category:    domain.CategoryIndustryPractice,
			Title:       "Industry Best Practices",
			Description: "General cloud and enterprise architecture standards",
			MaxScore:    100,
			Items: []string{
				"Enterprise architecture principles followed",
				"Industry-standard patterns and practices applied",
				"Vendor-agnostic design principles considered",
				"Integration and interoperability standards addressed",
				"Data governance and privacy requirements included",
			},
		},
	},
	domain.CategoryInternalCompliance: {
		span:  35,
		floor: 65,
		findings: []string{
			"Security policies appropriately referenced with current versions",
			"Change management process outlined following ITIL best practices",
			"Budget considerations included with quarterly review cycles",
			"Risk assessment framework needs strengthening with quantitative metrics",
		},
		recommendations: []string{
			"Include detailed risk register with probability and impact assessments",
			"Reference specific internal policy numbers and compliance requirements",
			"Add stakeholder approval workflow diagram with decision points",
		},
		priorityAction: "Address internal compliance gaps and policy references",
		criteria: domain.Criteria{
			Category:    domain.CategoryInternalCompliance,
			Title:       "Internal Standards Compliance",
			Description: "Organization-specific policies and procedures",
			MaxScore:    100,
			Items: []string{
				"Internal security policies and standards referenced",
				"Company-specific architectural guidelines followed",
				"Budget and procurement processes addressed",
				"Risk management framework compliance",
				"Change management procedures outlined",
			},
		},
	},
}

// ScoreRange returns the closed interval a category score is drawn from.
func ScoreRange(c domain.Category) (lo, hi int, ok bool) {
	p, ok := profiles[c]
	if !ok {
		return 0, 0, false
	}
	return p.floor, p.floor + p.span - 1, true
}

// PriorityAction returns the remediation sentence attached to a category when
// it has the lowest score.
func PriorityAction(c domain.Category) string {
	return profiles[c].priorityAction
}

// Criteria returns the criteria catalog in category order.
func Criteria() []domain.Criteria {
	out := make([]domain.Criteria, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		cr := profiles[c].criteria
		cr.Items = append([]string(nil), cr.Items...)
		out = append(out, cr)
	}
	return out
}

// Title returns the human readable category name.
func Title(c domain.Category) string {
	if p, ok := profiles[c]; ok {
		return p.criteria.Title
	}
	return string(c)
}
