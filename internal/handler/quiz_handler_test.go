package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"quizforge/internal/config"
	"quizforge/internal/domain"
	"quizforge/internal/handler"
	"quizforge/internal/router"
	"quizforge/internal/service"
)

const quizDoc = `What is DNS?
A. Domain Name System
B. Dynamic Host Configuration Protocol
C. Data Naming Services
D. Digital Network Security
ANSWER: B
`

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Upload: config.UploadConfig{MaxFileSizeMB: 1},
		Parse:  config.ParseConfig{Concurrency: 2},
		Export: config.ExportConfig{
			TimeSeconds:   60,
			Points:        1,
			QuizizzSuffix: "QUIZIZZ",
			GFormSuffix:   "GFORM",
		},
	}
	svc := service.NewQuizService(cfg.Upload, cfg.Parse)
	quizH := handler.NewQuizHandler(svc, cfg.Upload, cfg.Export)
	return router.Setup(cfg, quizH, handler.NewHealthHandler())
}

// multipartBody builds a multipart form with a file field and optional extra
// form fields.
func multipartBody(t *testing.T, filename, content string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestParseEndpoint(t *testing.T) {
	r := newTestRouter(t)
	body, contentType := multipartBody(t, "networking.txt", quizDoc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quizzes/parse", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool               `json:"success"`
		Data    domain.ParseResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data.Questions, 1)
	assert.Equal(t, "What is DNS?", resp.Data.Questions[0].QuestionText)
	assert.Equal(t, 2, resp.Data.Questions[0].CorrectIndex)
	assert.Equal(t, 1, resp.Data.Parsed)
	assert.Equal(t, 0, resp.Data.Failed)
}

func TestParseEndpoint_MissingFile(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quizzes/parse", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "MISSING_FILE")
}

func TestParseEndpoint_UnsupportedType(t *testing.T) {
	r := newTestRouter(t)
	body, contentType := multipartBody(t, "quiz.pdf", "binary", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quizzes/parse", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "UNSUPPORTED_FILE_TYPE")
}

func TestExportEndpoint_Quizizz(t *testing.T) {
	r := newTestRouter(t)
	body, contentType := multipartBody(t, "networking.txt", quizDoc, map[string]string{"format": "quizizz"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quizzes/export", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="networking-QUIZIZZ.xlsx"`)
	assert.Equal(t, "1", w.Header().Get("X-Questions-Parsed"))
	assert.Equal(t, "0", w.Header().Get("X-Questions-Failed"))

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "What is DNS?", rows[1][0])
	assert.Equal(t, "2", rows[1][6])
}

func TestExportEndpoint_GForm(t *testing.T) {
	r := newTestRouter(t)
	body, contentType := multipartBody(t, "networking.txt", quizDoc, map[string]string{"format": "gform"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quizzes/export", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="networking-GFORM.xlsx"`)

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Dynamic Host Configuration Protocol", rows[1][6])
}

func TestExportEndpoint_UnknownFormat(t *testing.T) {
	r := newTestRouter(t)
	body, contentType := multipartBody(t, "networking.txt", quizDoc, map[string]string{"format": "kahoot"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quizzes/export", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "UNKNOWN_EXPORT_FORMAT")
}

func TestExportEndpoint_NoValidQuestions(t *testing.T) {
	r := newTestRouter(t)
	body, contentType := multipartBody(t, "notes.txt", "nothing that parses", map[string]string{"format": "quizizz"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quizzes/export", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "NO_VALID_QUESTIONS")
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
