package api

type Metadata struct {
	DocumentTitle  string `json:"documentTitle"`
	ProjectName    string `json:"projectName"`
	SubmittedBy    string `json:"submittedBy"`
	Organization   string `json:"organization"`
	AssessmentDate string `json:"assessmentDate"`
}

type Document struct {
	Content string `json:"content"`
}

type CategoryResult struct {
	Category        string   `json:"category"`
	Title           string   `json:"title"`
	Score           int      `json:"score"`
	Status          string   `json:"status"`
	Tier            string   `json:"tier"`
	Findings        []string `json:"findings"`
	Recommendations []string `json:"recommendations"`
}

type Analysis struct {
	OverallScore    int              `json:"overallScore"`
	Status          string           `json:"status"`
	Tier            string           `json:"tier"`
	Categories      []CategoryResult `json:"categories"`
	PriorityActions []string         `json:"priorityActions"`
}

type Session struct {
	DocumentLength int       `json:"documentLength"`
	Metadata       Metadata  `json:"metadata"`
	Analyzing      bool      `json:"analyzing"`
	Analysis       *Analysis `json:"analysis,omitempty"`
}

type Criteria struct {
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	MaxScore    int      `json:"maxScore"`
	Criteria    []string `json:"criteria"`
}

type Error struct {
	Error string `json:"error"`
}
