package terminal

import (
	"context"
	"io"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// Spinner shows a pterm spinner while an analysis is pending.
type Spinner struct {
	spinner *pterm.SpinnerPrinter
	start   func(text string) (*pterm.SpinnerPrinter, error)
}

func NewSpinner(writer io.Writer) *Spinner {
	return &Spinner{
		start: func(text string) (*pterm.SpinnerPrinter, error) {
			return pterm.DefaultSpinner.WithWriter(writer).Start(text)
		},
	}
}

// Start shows the spinner. A spinner that fails to start only costs the
// progress display, so the error is logged and the analysis goes on.
func (s *Spinner) Start(ctx context.Context, text string) {
	spinner, err := s.start(text)
	if err != nil {
		zerolog.Ctx(ctx).Warn().
			Err(err).
			Msg("failed to start progress spinner")
		s.spinner = nil
		return
	}
	s.spinner = spinner
}

func (s *Spinner) Stop(err error) {
	if s.spinner == nil {
		return
	}
	if err != nil {
		s.spinner.Fail("Analysis failed: ", err)
	} else {
		s.spinner.Success("Analysis complete")
	}
	s.spinner = nil
}

type silent struct{}

func (silent) Start(context.Context, string) {}
func (silent) Stop(error)                    {}
