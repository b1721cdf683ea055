package domain

// SessionState is the whole mutable state of one assessment session. It is
// replaced as a unit on every transition.
type SessionState struct {
	Document  string
	Metadata  ReportMetadata
	Analysis  *AnalysisResult
	Analyzing bool
}
