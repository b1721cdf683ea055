package assessment

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/de-tools/tda-copilot/pkg/adapters"
	"github.com/de-tools/tda-copilot/pkg/models/api"
	"github.com/de-tools/tda-copilot/pkg/models/domain"
	"github.com/de-tools/tda-copilot/pkg/services/document"
	"github.com/de-tools/tda-copilot/pkg/services/export"
	"github.com/de-tools/tda-copilot/pkg/services/scoring"
	"github.com/de-tools/tda-copilot/pkg/services/session"
	"github.com/rs/zerolog"
)

const (
	uploadField = "file"
	// multipart bodies carry headers on top of the file itself
	multipartOverhead = 1 << 20
)

type Handler struct {
	session        session.Manager
	maxUploadBytes int64
}

func NewHandler(sess session.Manager, maxUploadBytes int64) *Handler {
	return &Handler{
		session:        sess,
		maxUploadBytes: maxUploadBytes,
	}
}

func (h *Handler) ListCriteria(w http.ResponseWriter, r *http.Request) {
	criteria := scoring.Criteria()
	response := make([]api.Criteria, 0, len(criteria))
	for _, c := range criteria {
		response = append(response, adapters.MapCriteriaDomainToApi(c))
	}
	h.writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	h.writeSession(w, r, http.StatusOK)
}

func (h *Handler) ResetSession(w http.ResponseWriter, r *http.Request) {
	h.session.Reset(r.Context())
	h.writeSession(w, r, http.StatusOK)
}

func (h *Handler) SetDocument(w http.ResponseWriter, r *http.Request) {
	var req api.Document
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxUploadBytes)).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("invalid document payload: %w", err))
		return
	}

	h.session.SetDocument(r.Context(), req.Content)
	h.writeSession(w, r, http.StatusOK)
}

// UploadDocument reads a multipart file as text and fills the document title
// and project name from its file name.
func (h *Handler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+multipartOverhead)
	file, header, err := r.FormFile(uploadField)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("missing %q upload: %w", uploadField, err))
		return
	}
	defer file.Close()

	content, err := document.Read(file, h.maxUploadBytes)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	md := document.MetadataFromFilename(h.session.Snapshot().Metadata, header.Filename)
	if err := h.session.SetUpload(ctx, content, md); err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.Info().
		Str("filename", header.Filename).
		Int("document_length", len(content)).
		Msg("document uploaded")
	h.writeSession(w, r, http.StatusOK)
}

func (h *Handler) SetMetadata(w http.ResponseWriter, r *http.Request) {
	var req api.Metadata
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxUploadBytes)).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("invalid metadata payload: %w", err))
		return
	}

	if err := h.session.SetMetadata(r.Context(), adapters.MapMetadataApiToDomain(req)); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeSession(w, r, http.StatusOK)
}

func (h *Handler) StartAnalysis(w http.ResponseWriter, r *http.Request) {
	if _, err := h.session.Analyze(r.Context()); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeSession(w, r, http.StatusAccepted)
}

func (h *Handler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	s := h.session.Snapshot()
	switch {
	case s.Analyzing:
		h.writeJSON(w, r, http.StatusAccepted, adapters.MapSessionDomainToApi(s))
	case s.Analysis == nil:
		h.writeError(w, r, domain.ErrNoAnalysis)
	default:
		h.writeJSON(w, r, http.StatusOK, adapters.MapAnalysisDomainToApi(*s.Analysis))
	}
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	h.serveReport(w, r, false)
}

func (h *Handler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	h.serveReport(w, r, true)
}

func (h *Handler) serveReport(w http.ResponseWriter, r *http.Request, attachment bool) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	report, err := h.session.Report(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	data, err := export.Marshal(report)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", domain.ErrExportFailure, err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if attachment {
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", export.Filename(report.Metadata.ProjectName)))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.Error().
			Err(err).
			Str("assessment_id", report.Metadata.AssessmentID).
			Msg("failed to write report")
	}
}

func (h *Handler) writeSession(w http.ResponseWriter, r *http.Request, status int) {
	h.writeJSON(w, r, status, adapters.MapSessionDomainToApi(h.session.Snapshot()))
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	event := zerolog.Ctx(r.Context()).Warn()
	if status >= http.StatusInternalServerError {
		event = zerolog.Ctx(r.Context()).Error()
	}
	event.Err(err).Int("status", status).Msg("request failed")

	h.writeJSON(w, r, status, api.Error{Error: err.Error()})
}

func statusFor(err error) int {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytes), errors.Is(err, domain.ErrDocumentTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrUnsupportedEncoding):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, domain.ErrAnalysisInProgress):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNoAnalysis):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrSessionClosed):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrExportFailure):
		return http.StatusInternalServerError
	case errors.Is(err, domain.ErrEmptyDocument),
		errors.Is(err, domain.ErrInvalidAssessmentDate):
		return http.StatusBadRequest
	default:
		return http.StatusBadRequest
	}
}
