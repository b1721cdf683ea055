package session

import (
	"context"
	"time"

	"github.com/de-tools/tda-copilot/pkg/models/domain"
	"github.com/de-tools/tda-copilot/pkg/services/assessment"
	"github.com/rs/zerolog"
)

// Runner is one delayed analysis. Its result is applied only while its token
// is still the session's current one.
type Runner struct {
	token    uint64
	document string
	delay    time.Duration
	after    func(time.Duration) <-chan time.Time
	analyzer assessment.Analyzer
	apply    func(token uint64, res domain.AnalysisResult) bool
	abort    func(token uint64)
	done     chan struct{}

	result  domain.AnalysisResult
	applied bool
}

func (r *Runner) Done() <-chan struct{} {
	return r.done
}

// Result reports the computed analysis and whether it reached the session.
// It is only meaningful once Done is closed.
func (r *Runner) Result() (domain.AnalysisResult, bool) {
	return r.result, r.applied
}

func (r *Runner) Run(ctx context.Context) {
	logger := zerolog.Ctx(ctx).With().Uint64("token", r.token).Logger()
	defer close(r.done)

	select {
	case <-ctx.Done():
		logger.Info().Msg("analysis stopped before completion")
		r.abort(r.token)
		return
	case <-r.after(r.delay):
	}

	r.result = r.analyzer.Analyze(r.document)
	r.applied = r.apply(r.token, r.result)
	if !r.applied {
		logger.Info().Msg("discarding stale analysis result")
		return
	}

	logger.Info().
		Int("overall_score", r.result.OverallScore).
		Int("priority_actions", len(r.result.PriorityActions)).
		Msg("analysis completed")
}
