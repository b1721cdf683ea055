package domain

import "errors"

var (
	ErrEmptyDocument         = errors.New("document has no content to analyze")
	ErrUnsupportedEncoding   = errors.New("document is not valid UTF-8 text")
	ErrDocumentTooLarge      = errors.New("document exceeds the size limit")
	ErrExportFailure         = errors.New("report export failed")
	ErrAnalysisInProgress    = errors.New("an analysis is already in progress")
	ErrNoAnalysis            = errors.New("no analysis available")
	ErrInvalidAssessmentDate = errors.New("assessment date must be formatted as YYYY-MM-DD")
	ErrSessionClosed         = errors.New("session is closed")
)
