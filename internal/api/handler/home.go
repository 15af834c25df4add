package handler

import (
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/lexjuris/ruling-analyzer/internal/api/response"
	"github.com/lexjuris/ruling-analyzer/internal/domain"
	"github.com/lexjuris/ruling-analyzer/internal/service"
	"github.com/lexjuris/ruling-analyzer/internal/web"
)

// PageHandler serves the HTML upload form and its analyze flow
type PageHandler struct {
	analysisService *service.AnalysisService
	tmpl            *template.Template
}

// NewPageHandler parses the embedded page template and creates the handler
func NewPageHandler(analysisService *service.AnalysisService) (*PageHandler, error) {
	tmpl, err := template.ParseFS(web.Templates, "templates/index.html")
	if err != nil {
		return nil, err
	}
	return &PageHandler{analysisService: analysisService, tmpl: tmpl}, nil
}

type indexPage struct {
	Result *domain.AnalysisResult
}

// Home renders the upload form with an empty result slot
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, indexPage{})
}

// Analyze processes the form upload and re-renders the page with the answer.
// Failures come back as the same JSON errors the API endpoints produce.
func (h *PageHandler) Analyze(w http.ResponseWriter, r *http.Request) {
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

	h.render(w, indexPage{Result: result})
}

func (h *PageHandler) render(w http.ResponseWriter, page indexPage) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, page); err != nil {
		log.Error().Err(err).Msg("failed to render page")
	}
}
