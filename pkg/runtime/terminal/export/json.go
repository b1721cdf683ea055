package export

import (
	"fmt"
	"io"
	"os"

	"github.com/de-tools/tda-copilot/pkg/models/domain"
	tdaexport "github.com/de-tools/tda-copilot/pkg/services/export"
)

// JSONReporter prints the report exactly as it would be exported.
type JSONReporter struct {
	writer io.Writer
}

func NewJSONReporter(writer io.Writer) *JSONReporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &JSONReporter{writer: writer}
}

func (c *JSONReporter) Handle(report domain.Report) error {
	data, err := tdaexport.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	_, err = fmt.Fprintf(c.writer, "%s\n", data)
	return err
}
