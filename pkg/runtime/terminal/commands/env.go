package commands

import (
	"context"
	"io"
	"time"

	"github.com/de-tools/tda-copilot/pkg/models/domain"
	"github.com/de-tools/tda-copilot/pkg/services/config"
)

// Reporter renders a finished report in one output format.
type Reporter interface {
	Handle(report domain.Report) error
}

// Progress is shown while an analysis is pending.
type Progress interface {
	Start(ctx context.Context, text string)
	Stop(err error)
}

// Env carries what the root command resolves before any subcommand runs.
type Env struct {
	Config    *config.Config
	Output    io.Writer
	Progress  Progress
	Reporters map[string]Reporter
	Now       func() time.Time
}
