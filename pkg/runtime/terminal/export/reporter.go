package export

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/de-tools/tda-copilot/pkg/models/domain"
	"github.com/de-tools/tda-copilot/pkg/services/aggregate"
	"github.com/de-tools/tda-copilot/pkg/services/scoring"
	"github.com/pterm/pterm"
)

// Section is one category of a report as shown on the dashboards.
type Section struct {
	Category        domain.Category
	Title           string
	Score           int
	Status          domain.Status
	Tier            domain.Tier
	Findings        []string
	Recommendations []string
}

// Sections lists the categories of a report in assessment order.
func Sections(r domain.Report) []Section {
	d := r.DetailedAssessment
	results := map[domain.Category]domain.CategoryResult{
		domain.CategoryCloudAdoption:      d.CloudAdoption.CategoryResult,
		domain.CategoryWellArchitected:    d.WellArchitected,
		domain.CategoryIndustryPractice:   d.IndustryPractice.CategoryResult,
		domain.CategoryInternalCompliance: d.InternalCompliance.CategoryResult,
	}

	sections := make([]Section, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		res := results[c]
		sections = append(sections, Section{
			Category:        c,
			Title:           scoring.Title(c),
			Score:           res.Score,
			Status:          aggregate.StatusFor(res.Score),
			Tier:            aggregate.TierFor(res.Score),
			Findings:        res.Findings,
			Recommendations: res.Recommendations,
		})
	}
	return sections
}

// Reporter renders a report as pterm tables.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(report domain.Report) error {
	md := report.Metadata
	header := [][]string{
		{"Field", "Value"},
		{"Assessment ID", md.AssessmentID},
		{"Document", md.DocumentTitle},
		{"Project", md.ProjectName},
		{"Submitted By", md.SubmittedBy},
		{"Organization", md.Organization},
		{"Date", md.AssessmentDate},
		{"Overall Score", fmt.Sprintf("%d/100 %s", report.ExecutiveSummary.OverallScore,
			tierStyle(aggregate.TierFor(report.ExecutiveSummary.OverallScore)).Sprint(report.ExecutiveSummary.Status))},
	}
	if err := c.render(header); err != nil {
		return err
	}

	scores := [][]string{{"Category", "Score", "Status", "Top Finding"}}
	for _, s := range Sections(report) {
		top := "-"
		if len(s.Findings) > 0 {
			top = s.Findings[0]
		}
		scores = append(scores, []string{
			pterm.FgCyan.Sprint(s.Title),
			strconv.Itoa(s.Score),
			tierStyle(s.Tier).Sprint(s.Status),
			top,
		})
	}
	if err := c.render(scores); err != nil {
		return err
	}

	actions := [][]string{{"Priority", "Action", "Effort", "Owner"}}
	for _, a := range report.PriorityActions {
		actions = append(actions, []string{a.Priority, a.Action, a.EstimatedEffort, a.Owner})
	}
	if err := c.render(actions); err != nil {
		return err
	}

	cs := report.ComplianceSummary
	ready := pterm.FgYellow.Sprint("no")
	if cs.ReadyForTDAReview {
		ready = pterm.FgGreen.Sprint("yes")
	}
	_, err := fmt.Fprintf(c.writer, "Ready for TDA review: %s | Risk: %s | Remediation: %s\nNext steps: %s\n",
		ready, cs.RiskLevel, cs.EstimatedRemediationTime, strings.Join(cs.NextSteps, "; "))
	return err
}

func (c *Reporter) render(data [][]string) error {
	if err := pterm.DefaultTable.WithHasHeader().WithWriter(c.writer).WithData(data).Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

func tierStyle(t domain.Tier) pterm.Color {
	switch t {
	case domain.TierHigh:
		return pterm.FgGreen
	case domain.TierMedium:
		return pterm.FgYellow
	default:
		return pterm.FgRed
	}
}
