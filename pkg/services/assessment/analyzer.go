package assessment

import (
	"github.com/de-tools/tda-copilot/pkg/models/domain"
	"github.com/de-tools/tda-copilot/pkg/services/aggregate"
	"github.com/de-tools/tda-copilot/pkg/services/scoring"
)

// Analyzer runs the scoring and aggregation steps for a document.
type Analyzer interface {
	Analyze(document string) domain.AnalysisResult
}

type pipeline struct {
	scorer *scoring.Scorer
}

func NewAnalyzer(scorer *scoring.Scorer) Analyzer {
	return &pipeline{scorer: scorer}
}

func (p *pipeline) Analyze(document string) domain.AnalysisResult {
	return aggregate.Aggregate(p.scorer.ScoreAll(document))
}
