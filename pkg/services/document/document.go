package document

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/de-tools/tda-copilot/pkg/models/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode interprets raw bytes as UTF-8 text, dropping a leading byte order mark.
func Decode(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", domain.ErrUnsupportedEncoding
	}
	return string(data), nil
}

// Read decodes an uploaded file. A document longer than limit bytes is
// rejected with ErrDocumentTooLarge when limit > 0.
func Read(r io.Reader, limit int64) (string, error) {
	if limit > 0 {
		r = io.LimitReader(r, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	if limit > 0 && int64(len(data)) > limit {
		return "", fmt.Errorf("%w: more than %d bytes", domain.ErrDocumentTooLarge, limit)
	}
	return Decode(data)
}

// MetadataFromFilename fills the title and project of md from an uploaded
// file name. "payments_hld_v2.docx" yields title "payments_hld_v2" and
// project "payments".
func MetadataFromFilename(md domain.ReportMetadata, name string) domain.ReportMetadata {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" {
		return md
	}
	title := strings.TrimSuffix(base, filepath.Ext(base))
	if title == "" {
		// dotfiles such as ".env" keep their full name
		title = base
	}

	project := title
	if before, _, found := strings.Cut(title, "_"); found {
		project = before
	}

	md.DocumentTitle = title
	md.ProjectName = project
	return md
}
