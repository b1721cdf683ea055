package assessment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/de-tools/tda-copilot/pkg/models/api"
	"github.com/de-tools/tda-copilot/pkg/models/domain"
	"github.com/de-tools/tda-copilot/pkg/services/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testUploadLimit = 1 << 10

type mockManager struct {
	mock.Mock
}

func (m *mockManager) Snapshot() domain.SessionState {
	args := m.Called()
	return args.Get(0).(domain.SessionState)
}

func (m *mockManager) SetDocument(ctx context.Context, document string) {
	m.Called(ctx, document)
}

func (m *mockManager) SetMetadata(ctx context.Context, md domain.ReportMetadata) error {
	args := m.Called(ctx, md)
	return args.Error(0)
}

func (m *mockManager) SetUpload(ctx context.Context, document string, md domain.ReportMetadata) error {
	args := m.Called(ctx, document, md)
	return args.Error(0)
}

func (m *mockManager) Analyze(ctx context.Context) (*session.Runner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Runner), args.Error(1)
}

func (m *mockManager) Reset(ctx context.Context) {
	m.Called(ctx)
}

func (m *mockManager) Report(ctx context.Context) (domain.Report, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Report), args.Error(1)
}

func sampleAnalysis() *domain.AnalysisResult {
	res := domain.AnalysisResult{OverallScore: 73, PriorityActions: []string{"Fix the network"}}
	res.Categories = res.Categories.
		Set(domain.CategoryCloudAdoption, domain.CategoryResult{Score: 70}).
		Set(domain.CategoryWellArchitected, domain.CategoryResult{Score: 75}).
		Set(domain.CategoryIndustryPractice, domain.CategoryResult{Score: 80}).
		Set(domain.CategoryInternalCompliance, domain.CategoryResult{Score: 65})
	return &res
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestListCriteria(t *testing.T) {
	h := NewHandler(new(mockManager), testUploadLimit)

	rec := httptest.NewRecorder()
	h.ListCriteria(rec, httptest.NewRequest(http.MethodGet, "/criteria", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	criteria := decode[[]api.Criteria](t, rec)
	require.Len(t, criteria, 4)
	assert.Equal(t, string(domain.CategoryCloudAdoption), criteria[0].Category)
	for _, c := range criteria {
		assert.Equal(t, 100, c.MaxScore)
		assert.NotEmpty(t, c.Criteria)
	}
}

func TestGetSession(t *testing.T) {
	m := new(mockManager)
	m.On("Snapshot").Return(domain.SessionState{
		Document: "hello",
		Metadata: domain.ReportMetadata{ProjectName: "Payments"},
		Analysis: sampleAnalysis(),
	})
	h := NewHandler(m, testUploadLimit)

	rec := httptest.NewRecorder()
	h.GetSession(rec, httptest.NewRequest(http.MethodGet, "/session", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	s := decode[api.Session](t, rec)
	assert.Equal(t, 5, s.DocumentLength)
	assert.Equal(t, "Payments", s.Metadata.ProjectName)
	require.NotNil(t, s.Analysis)
	assert.Equal(t, 73, s.Analysis.OverallScore)
	assert.Equal(t, "Needs Improvement", s.Analysis.Status)
	m.AssertExpectations(t)
}

func TestResetSession(t *testing.T) {
	m := new(mockManager)
	m.On("Reset", mock.Anything).Return()
	m.On("Snapshot").Return(domain.SessionState{})
	h := NewHandler(m, testUploadLimit)

	rec := httptest.NewRecorder()
	h.ResetSession(rec, httptest.NewRequest(http.MethodDelete, "/session", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	s := decode[api.Session](t, rec)
	assert.Nil(t, s.Analysis)
	m.AssertExpectations(t)
}

func TestSetDocument(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mockManager)
		expectedStatus int
	}{
		{
			name: "stores content",
			body: `{"content":"# HLD\nthree tier app"}`,
			setupMock: func(m *mockManager) {
				m.On("SetDocument", mock.Anything, "# HLD\nthree tier app").Return()
				m.On("Snapshot").Return(domain.SessionState{Document: "# HLD\nthree tier app"})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed payload",
			body:           `{"content":`,
			setupMock:      func(m *mockManager) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "payload over the limit",
			body:           `{"content":"` + strings.Repeat("x", testUploadLimit) + `"}`,
			setupMock:      func(m *mockManager) {},
			expectedStatus: http.StatusRequestEntityTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(mockManager)
			tt.setupMock(m)
			h := NewHandler(m, testUploadLimit)

			req := httptest.NewRequest(http.MethodPut, "/document", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.SetDocument(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			m.AssertExpectations(t)
		})
	}
}

func uploadRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(uploadField, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/document/upload", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestUploadDocument(t *testing.T) {
	current := domain.ReportMetadata{SubmittedBy: "J. Doe", AssessmentDate: "2026-01-15"}

	t.Run("fills metadata from the file name", func(t *testing.T) {
		m := new(mockManager)
		m.On("Snapshot").Return(domain.SessionState{Metadata: current})
		m.On("SetUpload", mock.Anything, "design text", domain.ReportMetadata{
			DocumentTitle:  "payments_hld_v2",
			ProjectName:    "payments",
			SubmittedBy:    "J. Doe",
			AssessmentDate: "2026-01-15",
		}).Return(nil)
		h := NewHandler(m, testUploadLimit)

		rec := httptest.NewRecorder()
		h.UploadDocument(rec, uploadRequest(t, "payments_hld_v2.md", []byte("\xEF\xBB\xBFdesign text")))

		assert.Equal(t, http.StatusOK, rec.Code)
		m.AssertExpectations(t)
	})

	t.Run("binary content", func(t *testing.T) {
		m := new(mockManager)
		h := NewHandler(m, testUploadLimit)

		rec := httptest.NewRecorder()
		h.UploadDocument(rec, uploadRequest(t, "diagram.png", []byte{0x89, 0x50, 0xff, 0xfe}))

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
		m.AssertNotCalled(t, "SetUpload", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("file over the limit", func(t *testing.T) {
		m := new(mockManager)
		h := NewHandler(m, testUploadLimit)

		rec := httptest.NewRecorder()
		h.UploadDocument(rec, uploadRequest(t, "big.txt", bytes.Repeat([]byte("a"), testUploadLimit+1)))

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		m.AssertNotCalled(t, "SetUpload", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("multi-byte text across the limit", func(t *testing.T) {
		m := new(mockManager)
		h := NewHandler(m, testUploadLimit)

		content := append(bytes.Repeat([]byte("a"), testUploadLimit-1), "é"...)
		rec := httptest.NewRecorder()
		h.UploadDocument(rec, uploadRequest(t, "notes.txt", content))

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Contains(t, decode[api.Error](t, rec).Error, domain.ErrDocumentTooLarge.Error())
	})

	t.Run("invalid metadata leaves the session untouched", func(t *testing.T) {
		m := new(mockManager)
		m.On("Snapshot").Return(domain.SessionState{})
		m.On("SetUpload", mock.Anything, "text", mock.Anything).
			Return(fmt.Errorf("%w: soon", domain.ErrInvalidAssessmentDate))
		h := NewHandler(m, testUploadLimit)

		rec := httptest.NewRecorder()
		h.UploadDocument(rec, uploadRequest(t, "crm.txt", []byte("text")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		m.AssertExpectations(t)
	})

	t.Run("missing file field", func(t *testing.T) {
		h := NewHandler(new(mockManager), testUploadLimit)

		req := httptest.NewRequest(http.MethodPost, "/document/upload", strings.NewReader("plain"))
		req.Header.Set("Content-Type", "text/plain")
		rec := httptest.NewRecorder()
		h.UploadDocument(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSetMetadata(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mockManager)
		expectedStatus int
	}{
		{
			name: "valid metadata",
			body: `{"projectName":"Payments","assessmentDate":"2026-03-01"}`,
			setupMock: func(m *mockManager) {
				md := domain.ReportMetadata{ProjectName: "Payments", AssessmentDate: "2026-03-01"}
				m.On("SetMetadata", mock.Anything, md).Return(nil)
				m.On("Snapshot").Return(domain.SessionState{Metadata: md})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "invalid date",
			body: `{"assessmentDate":"2026-02-30"}`,
			setupMock: func(m *mockManager) {
				m.On("SetMetadata", mock.Anything, domain.ReportMetadata{AssessmentDate: "2026-02-30"}).
					Return(fmt.Errorf("%w: 2026-02-30", domain.ErrInvalidAssessmentDate))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(mockManager)
			tt.setupMock(m)
			h := NewHandler(m, testUploadLimit)

			req := httptest.NewRequest(http.MethodPut, "/metadata", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.SetMetadata(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			m.AssertExpectations(t)
		})
	}
}

func TestStartAnalysis(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{name: "accepted", expectedStatus: http.StatusAccepted},
		{name: "empty document", err: domain.ErrEmptyDocument, expectedStatus: http.StatusBadRequest},
		{name: "already running", err: domain.ErrAnalysisInProgress, expectedStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(mockManager)
			if tt.err != nil {
				m.On("Analyze", mock.Anything).Return(nil, tt.err)
			} else {
				m.On("Analyze", mock.Anything).Return(&session.Runner{}, nil)
				m.On("Snapshot").Return(domain.SessionState{Document: "doc", Analyzing: true})
			}
			h := NewHandler(m, testUploadLimit)

			rec := httptest.NewRecorder()
			h.StartAnalysis(rec, httptest.NewRequest(http.MethodPost, "/analysis", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.err != nil {
				assert.Equal(t, tt.err.Error(), decode[api.Error](t, rec).Error)
			} else {
				assert.True(t, decode[api.Session](t, rec).Analyzing)
			}
			m.AssertExpectations(t)
		})
	}
}

func TestGetAnalysis(t *testing.T) {
	tests := []struct {
		name           string
		state          domain.SessionState
		expectedStatus int
	}{
		{name: "pending", state: domain.SessionState{Analyzing: true}, expectedStatus: http.StatusAccepted},
		{name: "none yet", state: domain.SessionState{}, expectedStatus: http.StatusNotFound},
		{name: "ready", state: domain.SessionState{Analysis: sampleAnalysis()}, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(mockManager)
			m.On("Snapshot").Return(tt.state)
			h := NewHandler(m, testUploadLimit)

			rec := httptest.NewRecorder()
			h.GetAnalysis(rec, httptest.NewRequest(http.MethodGet, "/analysis", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				a := decode[api.Analysis](t, rec)
				assert.Equal(t, 73, a.OverallScore)
				require.Len(t, a.Categories, 4)
				assert.Equal(t, []string{"Fix the network"}, a.PriorityActions)
			}
		})
	}
}

func TestReport(t *testing.T) {
	report := domain.Report{
		Metadata: domain.ReportInfo{
			ProjectName:  "Payments Platform",
			AssessmentID: "TDA-2026-01-15-abcdefghi",
		},
		ExecutiveSummary: domain.ExecutiveSummary{OverallScore: 73, Status: domain.StatusNeedsImprovement},
	}

	t.Run("inline", func(t *testing.T) {
		m := new(mockManager)
		m.On("Report", mock.Anything).Return(report, nil)
		h := NewHandler(m, testUploadLimit)

		rec := httptest.NewRecorder()
		h.GetReport(rec, httptest.NewRequest(http.MethodGet, "/report", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Content-Disposition"))
		r := decode[api.Report](t, rec)
		assert.Equal(t, "TDA-2026-01-15-abcdefghi", r.ReportMetadata.AssessmentID)
	})

	t.Run("download", func(t *testing.T) {
		m := new(mockManager)
		m.On("Report", mock.Anything).Return(report, nil)
		h := NewHandler(m, testUploadLimit)

		rec := httptest.NewRecorder()
		h.DownloadReport(rec, httptest.NewRequest(http.MethodGet, "/report/download", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t,
			`attachment; filename="TDA_Assessment_Payments_Platform.json"`,
			rec.Header().Get("Content-Disposition"))
	})

	t.Run("no analysis", func(t *testing.T) {
		m := new(mockManager)
		m.On("Report", mock.Anything).Return(domain.Report{}, domain.ErrNoAnalysis)
		h := NewHandler(m, testUploadLimit)

		rec := httptest.NewRecorder()
		h.DownloadReport(rec, httptest.NewRequest(http.MethodGet, "/report/download", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError,
		statusFor(fmt.Errorf("%w: clipboard: denied", domain.ErrExportFailure)))
	assert.Equal(t, http.StatusRequestEntityTooLarge,
		statusFor(fmt.Errorf("wrapped: %w", &http.MaxBytesError{Limit: 1})))
	assert.Equal(t, http.StatusRequestEntityTooLarge,
		statusFor(fmt.Errorf("%w: more than 8 bytes", domain.ErrDocumentTooLarge)))
	assert.Equal(t, http.StatusServiceUnavailable, statusFor(domain.ErrSessionClosed))
	assert.Equal(t, http.StatusBadRequest, statusFor(fmt.Errorf("bad json")))
}
