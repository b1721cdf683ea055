package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/tda-copilot/pkg/models/domain"
	"github.com/de-tools/tda-copilot/pkg/runtime/terminal/export"
)

const dashboardTemplate = `
{{.Report.Metadata.DocumentTitle}} ({{.Report.Metadata.ProjectName}})
Assessment: {{.Report.Metadata.AssessmentID}} on {{.Report.Metadata.AssessmentDate}}
Overall Score: {{.Report.ExecutiveSummary.OverallScore}}/100 - {{.Report.ExecutiveSummary.Status}}
{{range .Sections}}
=== {{.Title}}: {{.Score}}/100 ({{.Status}}) ===
Findings:
{{range .Findings}}  - {{.}}
{{end}}Recommendations:
{{range .Recommendations}}  - {{.}}
{{end}}{{end}}
=== Priority Actions ===
{{range .Report.PriorityActions}}  [{{.Priority}}] {{.Action}}
      {{.Rationale}} (effort: {{.EstimatedEffort}}, owner: {{.Owner}})
{{end}}
Ready for TDA review: {{if .Report.ComplianceSummary.ReadyForTDAReview}}yes{{else}}no{{end}}
Risk level: {{.Report.ComplianceSummary.RiskLevel}}, estimated remediation: {{.Report.ComplianceSummary.EstimatedRemediationTime}}
`

var dashboard = template.Must(template.New("dashboard").Parse(dashboardTemplate))

// Reporter outputs reports to the console in a formatted text form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(report domain.Report) error {
	view := struct {
		Report   domain.Report
		Sections []export.Section
	}{
		Report:   report,
		Sections: export.Sections(report),
	}
	if err := dashboard.Execute(c.writer, view); err != nil {
		return fmt.Errorf("failed to render dashboard: %w", err)
	}
	return nil
}
