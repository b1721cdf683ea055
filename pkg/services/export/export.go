package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/de-tools/tda-copilot/pkg/adapters"
	"github.com/de-tools/tda-copilot/pkg/models/domain"
	"github.com/rs/zerolog"
)

var whitespace = regexp.MustCompile(`\s+`)

// Sink delivers a serialized report somewhere outside the process.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, filename string, data []byte) error
}

// Marshal renders the report as two-space indented JSON.
func Marshal(r domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(adapters.MapReportDomainToApi(r)); err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Filename is the download name of a report for the given project.
func Filename(projectName string) string {
	name := whitespace.ReplaceAllString(projectName, "_")
	name = strings.NewReplacer("/", "_", "\\", "_").Replace(name)
	return "TDA_Assessment_" + name + ".json"
}

// Export serializes r and hands it to every sink. The first failure stops the
// export and is reported as ErrExportFailure.
func Export(ctx context.Context, r domain.Report, sinks ...Sink) error {
	data, err := Marshal(r)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrExportFailure, err)
	}
	filename := Filename(r.Metadata.ProjectName)

	logger := zerolog.Ctx(ctx)
	for _, sink := range sinks {
		if err := sink.Deliver(ctx, filename, data); err != nil {
			logger.Error().Err(err).Str("sink", sink.Name()).Msg("failed to export report")
			return fmt.Errorf("%w: %s: %w", domain.ErrExportFailure, sink.Name(), err)
		}
		logger.Info().
			Str("sink", sink.Name()).
			Str("assessment_id", r.Metadata.AssessmentID).
			Msg("report exported")
	}
	return nil
}
