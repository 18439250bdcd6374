package handler

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"quizforge/internal/config"
	"quizforge/internal/domain"
	"quizforge/internal/service"
	"quizforge/internal/xlsxexport"
)

// xlsxContentType is the MIME type of the exported workbooks.
const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// QuizHandler handles quiz document parsing and export endpoints.
type QuizHandler struct {
	quizService service.QuizService
	uploadCfg   config.UploadConfig
	exportCfg   config.ExportConfig
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(quizService service.QuizService, uploadCfg config.UploadConfig, exportCfg config.ExportConfig) *QuizHandler {
	return &QuizHandler{quizService: quizService, uploadCfg: uploadCfg, exportCfg: exportCfg}
}

// Parse handles POST /api/v1/quizzes/parse
// Accepts a multipart "file" field (txt or docx) and returns the parsed
// question records together with per-block failure diagnostics and counts.
func (h *QuizHandler) Parse(c *gin.Context) {
	input, ok := h.readUpload(c)
	if !ok {
		return
	}

	result, err := h.quizService.Parse(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// Export handles POST /api/v1/quizzes/export
// Accepts a multipart "file" field plus a "format" field (quizizz or gform)
// and streams the generated workbook as an attachment. Parse counts travel
// in response headers since the body is binary.
func (h *QuizHandler) Export(c *gin.Context) {
	format, ok := domain.ParseExportFormat(c.PostForm("format"))
	if !ok {
		HandleError(c, domain.ErrUnknownExportFormat)
		return
	}

	input, ok := h.readUpload(c)
	if !ok {
		return
	}

	result, err := h.quizService.Parse(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	if len(result.Questions) == 0 {
		HandleError(c, domain.ErrNoValidQuestions)
		return
	}

	opts := xlsxexport.Options{
		TimeSeconds: h.exportCfg.TimeSeconds,
		Points:      h.exportCfg.Points,
	}

	var data []byte
	var suffix string
	switch format {
	case domain.ExportFormatQuizizz:
		suffix = h.exportCfg.QuizizzSuffix
		data, err = xlsxexport.WriteQuizizz(result.Questions, opts)
	case domain.ExportFormatGForm:
		suffix = h.exportCfg.GFormSuffix
		data, err = xlsxexport.WriteGForm(result.Questions, opts)
	}
	if err != nil {
		HandleError(c, err)
		return
	}

	basename := strings.TrimSuffix(input.Filename, filepath.Ext(input.Filename))
	filename := xlsxexport.BuildFilename(basename, suffix)

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("X-Questions-Parsed", strconv.Itoa(result.Parsed))
	c.Header("X-Questions-Failed", strconv.Itoa(result.Failed))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// readUpload extracts the multipart document into a ParseInput. Returns false
// if an error response has already been written.
func (h *QuizHandler) readUpload(c *gin.Context) (service.ParseInput, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return service.ParseInput{}, false
	}
	defer func() { _ = file.Close() }()

	// Read one byte past the limit so the service can reject oversize
	// uploads without the handler buffering the whole body.
	data, err := io.ReadAll(io.LimitReader(file, h.uploadCfg.MaxFileSizeBytes()+1))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UNREADABLE_UPLOAD", "could not read uploaded file")
		return service.ParseInput{}, false
	}

	return service.ParseInput{Filename: header.Filename, Data: data}, true
}
