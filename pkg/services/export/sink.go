package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
)

// FileSink writes reports into a directory under their download name.
type FileSink struct {
	Dir string
}

func NewFileSink(dir string) *FileSink {
	return &FileSink{Dir: dir}
}

func (s *FileSink) Name() string {
	return "file"
}

func (s *FileSink) Deliver(_ context.Context, filename string, data []byte) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(s.Dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ClipboardSink copies the report text to the system clipboard.
type ClipboardSink struct {
	unsupported bool
	write       func(string) error
}

func NewClipboardSink() *ClipboardSink {
	return &ClipboardSink{
		unsupported: clipboard.Unsupported,
		write:       clipboard.WriteAll,
	}
}

func (s *ClipboardSink) Name() string {
	return "clipboard"
}

func (s *ClipboardSink) Deliver(_ context.Context, _ string, data []byte) error {
	if s.unsupported {
		return fmt.Errorf("clipboard is not available on this host")
	}
	return s.write(string(data))
}
