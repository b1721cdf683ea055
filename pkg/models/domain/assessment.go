package domain

// Category is one of the four fixed assessment dimensions.
type Category string

const (
	CategoryCloudAdoption      Category = "cloudAdoptionAlignment"
	CategoryWellArchitected    Category = "wellArchitectedAlignment"
	CategoryIndustryPractice   Category = "industryBestPractices"
	CategoryInternalCompliance Category = "internalCompliance"
)

// Categories lists every category in the fixed assessment order.
var Categories = []Category{
	CategoryCloudAdoption,
	CategoryWellArchitected,
	CategoryIndustryPractice,
	CategoryInternalCompliance,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type CategoryResult struct {
	Score           int
	Findings        []string
	Recommendations []string
}

// CategoryResults holds one result per category.
type CategoryResults struct {
	CloudAdoption      CategoryResult
	WellArchitected    CategoryResult
	IndustryPractice   CategoryResult
	InternalCompliance CategoryResult
}

// Get returns the result stored for c. Unknown categories yield a zero result.
func (r CategoryResults) Get(c Category) CategoryResult {
	switch c {
	case CategoryCloudAdoption:
		return r.CloudAdoption
	case CategoryWellArchitected:
		return r.WellArchitected
	case CategoryIndustryPractice:
		return r.IndustryPractice
	case CategoryInternalCompliance:
		return r.InternalCompliance
	default:
		return CategoryResult{}
	}
}

// Set stores res under c and returns the updated copy.
func (r CategoryResults) Set(c Category, res CategoryResult) CategoryResults {
	switch c {
	case CategoryCloudAdoption:
		r.CloudAdoption = res
	case CategoryWellArchitected:
		r.WellArchitected = res
	case CategoryIndustryPractice:
		r.IndustryPractice = res
	case CategoryInternalCompliance:
		r.InternalCompliance = res
	}
	return r
}

// AnalysisResult is the outcome of one analysis run. It is replaced wholesale,
// never mutated in place.
type AnalysisResult struct {
	Categories      CategoryResults
	OverallScore    int
	PriorityActions []string
}

type Status string

const (
	StatusExcellent        Status = "Excellent"
	StatusGood             Status = "Good"
	StatusNeedsImprovement Status = "Needs Improvement"
)

// Tier drives badge coloring in the dashboards.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// Criteria describes what a category is judged against.
type Criteria struct {
	Category    Category
	Title       string
	Description string
	MaxScore    int
	Items       []string
}
