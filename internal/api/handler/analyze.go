package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/lexjuris/ruling-analyzer/internal/api/response"
	"github.com/lexjuris/ruling-analyzer/internal/domain"
	"github.com/lexjuris/ruling-analyzer/internal/service"
)

var validate = validator.New()

// In-memory buffer for multipart bodies before spilling to disk
const maxUploadMemory = 32 << 20

// AnalysisHandler handles the JSON analysis endpoints
type AnalysisHandler struct {
	analysisService *service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisService *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

type analyzeForm struct {
	Category string `validate:"required"`
	Question string
}

type sessionForm struct {
	SessionID string `validate:"required"`
	Category  string `validate:"required"`
	Question  string
}

// AnalyzeJSON analyzes one uploaded ruling and returns the answer as JSON
func (h *AnalysisHandler) AnalyzeJSON(w http.ResponseWriter, r *http.Request) {
	r.ParseMultipartForm(maxUploadMemory)

	form := analyzeForm{
		Category: r.FormValue("category"),
		Question: r.FormValue("question"),
	}
	if err := validate.Struct(form); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "no file uploaded")
		return
	}
	defer file.Close()

	doc, err := readUpload(file, header)
	if err != nil {
		response.BadRequest(w, "could not read upload")
		return
	}

	result, err := h.analysisService.AnalyzeDocument(r.Context(), doc, domain.ParseCategory(form.Category), form.Question)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.OK(w, result)
}

// AnalyzeBatch applies one category to every uploaded ruling
func (h *AnalysisHandler) AnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	r.ParseMultipartForm(maxUploadMemory)

	form := analyzeForm{
		Category: r.FormValue("category"),
		Question: r.FormValue("question"),
	}
	if err := validate.Struct(form); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	if r.MultipartForm == nil || len(r.MultipartForm.File["files"]) == 0 {
		response.BadRequest(w, "no files uploaded")
		return
	}

	var docs []domain.UploadedDocument
	for _, header := range r.MultipartForm.File["files"] {
		file, err := header.Open()
		if err != nil {
			response.BadRequest(w, "could not read upload")
			return
		}
		doc, err := readUpload(file, header)
		file.Close()
		if err != nil {
			response.BadRequest(w, "could not read upload")
			return
		}
		docs = append(docs, doc)
	}

	result, err := h.analysisService.AnalyzeBatch(r.Context(), docs, domain.ParseCategory(form.Category), form.Question)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.OK(w, result)
}

// AnalyzeSession runs a follow-up query against a stored session
func (h *AnalysisHandler) AnalyzeSession(w http.ResponseWriter, r *http.Request) {
	form := sessionForm{
		SessionID: r.FormValue("session_id"),
		Category:  r.FormValue("category"),
		Question:  r.FormValue("question"),
	}
	if err := validate.Struct(form); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	result, err := h.analysisService.AnalyzeSession(r.Context(), form.SessionID, domain.ParseCategory(form.Category), form.Question)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.OK(w, result)
}

// readUpload pulls one uploaded file fully into memory
func readUpload(file multipart.File, header *multipart.FileHeader) (domain.UploadedDocument, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return domain.UploadedDocument{}, err
	}
	return domain.UploadedDocument{
		Filename: header.Filename,
		Data:     data,
	}, nil
}

// writeServiceError maps service failures to their HTTP statuses
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrDocumentUnreadable), errors.Is(err, domain.ErrBatchTooLarge):
		response.BadRequest(w, err.Error())
	case errors.Is(err, domain.ErrSessionNotFound):
		response.NotFound(w, err.Error())
	default:
		response.InternalError(w, err.Error())
	}
}
