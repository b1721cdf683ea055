package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/de-tools/tda-copilot/pkg/models/domain"
	"github.com/de-tools/tda-copilot/pkg/services/assessment"
	"github.com/rs/zerolog"
)

const DefaultDelay = 3 * time.Second

// Manager is the single-session state machine behind both the web API and the
// terminal front-end.
type Manager interface {
	Snapshot() domain.SessionState
	SetDocument(ctx context.Context, document string)
	SetMetadata(ctx context.Context, md domain.ReportMetadata) error
	SetUpload(ctx context.Context, document string, md domain.ReportMetadata) error
	Analyze(ctx context.Context) (*Runner, error)
	Reset(ctx context.Context)
	Report(ctx context.Context) (domain.Report, error)
}

type ReportBuilder interface {
	Build(res domain.AnalysisResult, md domain.ReportMetadata) domain.Report
}

type Options struct {
	// Delay models the processing step between a request and its result.
	Delay time.Duration
	// After defaults to time.After.
	After func(time.Duration) <-chan time.Time
	// Now defaults to time.Now.
	Now func() time.Time
}

type DefaultManager struct {
	analyzer assessment.Analyzer
	builder  ReportBuilder
	delay    time.Duration
	after    func(time.Duration) <-chan time.Time
	now      func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu    sync.Mutex
	state domain.SessionState
	token uint64
	// stop cancels the runner holding the current token
	stop context.CancelFunc
}

// NewManager creates a manager whose runners live as long as ctx or until
// Close is called.
func NewManager(
	ctx context.Context,
	analyzer assessment.Analyzer,
	builder ReportBuilder,
	opts Options,
) *DefaultManager {
	if opts.After == nil {
		opts.After = time.After
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Delay < 0 {
		opts.Delay = 0
	}

	ctx, cancel := context.WithCancel(ctx)
	return &DefaultManager{
		analyzer: analyzer,
		builder:  builder,
		delay:    opts.Delay,
		after:    opts.After,
		now:      opts.Now,
		ctx:      ctx,
		cancel:   cancel,
		state:    initialState(opts.Now()),
	}
}

func initialState(now time.Time) domain.SessionState {
	return domain.SessionState{Metadata: domain.NewReportMetadata(now)}
}

func (m *DefaultManager) Snapshot() domain.SessionState {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.state
	if s.Analysis != nil {
		a := *s.Analysis
		s.Analysis = &a
	}
	return s
}

// SetDocument replaces the document and drops the current analysis together
// with any analysis still in flight.
func (m *DefaultManager) SetDocument(ctx context.Context, document string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.replaceDocument(ctx, document, m.state.Metadata)
}

// SetUpload replaces the document and its metadata in one transition.
func (m *DefaultManager) SetUpload(ctx context.Context, document string, md domain.ReportMetadata) error {
	if err := md.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.replaceDocument(ctx, document, md)
	return nil
}

func (m *DefaultManager) replaceDocument(ctx context.Context, document string, md domain.ReportMetadata) {
	if m.state.Analyzing {
		zerolog.Ctx(ctx).Info().Msg("document changed, pending analysis invalidated")
	}
	m.invalidate()
	m.state = domain.SessionState{
		Document: document,
		Metadata: md,
	}
}

// invalidate retires the current token and stops its runner. Callers hold mu.
func (m *DefaultManager) invalidate() {
	m.token++
	if m.stop != nil {
		m.stop()
		m.stop = nil
	}
}

func (m *DefaultManager) SetMetadata(_ context.Context, md domain.ReportMetadata) error {
	if err := md.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = domain.SessionState{
		Document:  m.state.Document,
		Metadata:  md,
		Analysis:  m.state.Analysis,
		Analyzing: m.state.Analyzing,
	}
	return nil
}

// Analyze starts a delayed analysis of the current document. Only one
// analysis may be in flight at a time.
func (m *DefaultManager) Analyze(ctx context.Context) (*Runner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ctx.Err() != nil {
		return nil, domain.ErrSessionClosed
	}
	if m.state.Analyzing {
		return nil, domain.ErrAnalysisInProgress
	}
	if strings.TrimSpace(m.state.Document) == "" {
		return nil, domain.ErrEmptyDocument
	}

	m.invalidate()
	runCtx, stop := context.WithCancel(m.ctx)
	m.stop = stop
	runner := &Runner{
		token:    m.token,
		document: m.state.Document,
		delay:    m.delay,
		after:    m.after,
		analyzer: m.analyzer,
		apply:    m.apply,
		abort:    m.abort,
		done:     make(chan struct{}),
	}
	m.state = domain.SessionState{
		Document:  m.state.Document,
		Metadata:  m.state.Metadata,
		Analyzing: true,
	}

	logger := zerolog.Ctx(ctx)
	logger.Info().
		Uint64("token", runner.token).
		Int("document_length", len(runner.document)).
		Dur("delay", m.delay).
		Msg("analysis started")

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		defer stop()
		runner.Run(logger.WithContext(runCtx))
	}()

	return runner, nil
}

func (m *DefaultManager) apply(token uint64, res domain.AnalysisResult) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if token != m.token {
		return false
	}
	m.state = domain.SessionState{
		Document: m.state.Document,
		Metadata: m.state.Metadata,
		Analysis: &res,
	}
	return true
}

// abort clears the analyzing flag of a runner stopped while still current,
// which happens once the manager's context ends.
func (m *DefaultManager) abort(token uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if token != m.token {
		return
	}
	m.state.Analyzing = false
}

// Reset restores the initial state. A pending analysis is stopped and its
// result discarded.
func (m *DefaultManager) Reset(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.invalidate()
	m.state = initialState(m.now())
	zerolog.Ctx(ctx).Info().Msg("session reset")
}

func (m *DefaultManager) Report(_ context.Context) (domain.Report, error) {
	s := m.Snapshot()
	if s.Analysis == nil {
		return domain.Report{}, domain.ErrNoAnalysis
	}
	return m.builder.Build(*s.Analysis, s.Metadata), nil
}

// Close stops pending runners and waits for them to exit.
func (m *DefaultManager) Close() {
	m.cancel()
	m.wg.Wait()
}
