package httpserver

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	domain "github.com/bryanwahyu/legal-doc-analyzer/internal/domain/analysis"
	"github.com/bryanwahyu/legal-doc-analyzer/internal/domain/documents"
	"github.com/bryanwahyu/legal-doc-analyzer/internal/middleware"
)

// sessionView is the client-facing state of a session.
type sessionView struct {
	*domain.Session
	CanStart   bool             `json:"canStart"`
	HasResults bool             `json:"hasResults"`
	ThemeInfo  domain.ThemeInfo `json:"themeInfo"`
	Formats    []domain.Format  `json:"formats"`
}

func viewOf(s *domain.Session) sessionView {
	return sessionView{
		Session:    s,
		CanStart:   s.CanStart() && !s.Running,
		HasResults: s.Result != nil,
		ThemeInfo:  s.Theme.Info(),
		Formats:    domain.Formats(),
	}
}

type commandResponse struct {
	Session      sessionView          `json:"session"`
	Notification *domain.Notification `json:"notification,omitempty"`
}

func respondCommand(w http.ResponseWriter, status int, s *domain.Session, n domain.Notification) error {
	resp := commandResponse{Session: viewOf(s)}
	if !n.Empty() {
		resp.Notification = &n
	}
	writeJSON(w, status, resp)
	return nil
}

// GET /v1/samples
func (r *Router) handleSamples(w http.ResponseWriter, req *http.Request) error {
	writeJSON(w, http.StatusOK, r.svc.Samples())
	return nil
}

// POST /v1/sessions
// Body (optional): {"theme": "dark"}. Without a theme the client's
// Sec-CH-Prefers-Color-Scheme hint decides.
func (r *Router) handleCreateSession(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Theme string `json:"theme"`
	}
	if req.ContentLength > 0 {
		if err := decodeJSON(req, &body); err != nil {
			return err
		}
	}
	theme := domain.Theme(body.Theme)
	if theme == "" && req.Header.Get("Sec-CH-Prefers-Color-Scheme") == "dark" {
		theme = domain.ThemeDark
	}

	sess, err := r.svc.CreateSession(req.Context(), theme)
	if err != nil {
		return err
	}
	return respondCommand(w, http.StatusCreated, sess, domain.Notification{})
}

// GET /v1/sessions/{id}
func (r *Router) handleGetSession(w http.ResponseWriter, req *http.Request) error {
	sess, err := r.svc.Session(req.Context(), chi.URLParam(req, "id"))
	if err != nil {
		return err
	}
	return respondCommand(w, http.StatusOK, sess, domain.Notification{})
}

// POST /v1/sessions/{id}/files (multipart, field "files")
// Only the name, declared type and size of each part are used.
func (r *Router) handleUpload(w http.ResponseWriter, req *http.Request) error {
	req.Body = http.MaxBytesReader(w, req.Body, r.maxUpload)
	if err := req.ParseMultipartForm(r.maxUpload); err != nil {
		return badRequestf("invalid multipart body: %v", err)
	}
	defer req.MultipartForm.RemoveAll()

	var uploads []documents.Upload
	for _, fh := range req.MultipartForm.File["files"] {
		name, err := middleware.SanitizeFileName(fh.Filename)
		if err != nil {
			continue
		}
		uploads = append(uploads, documents.Upload{
			Name:     name,
			MIMEType: fh.Header.Get("Content-Type"),
			Size:     fh.Size,
		})
	}

	sess, note, err := r.svc.AddFiles(req.Context(), chi.URLParam(req, "id"), uploads)
	if err != nil {
		return err
	}
	return respondCommand(w, http.StatusOK, sess, note)
}

// DELETE /v1/sessions/{id}/files/{fileID}
func (r *Router) handleRemoveFile(w http.ResponseWriter, req *http.Request) error {
	sess, note, err := r.svc.RemoveFile(req.Context(), chi.URLParam(req, "id"), chi.URLParam(req, "fileID"))
	if err != nil {
		return err
	}
	return respondCommand(w, http.StatusOK, sess, note)
}

// POST /v1/sessions/{id}/samples/{key}
func (r *Router) handleLoadSample(w http.ResponseWriter, req *http.Request) error {
	sess, note, err := r.svc.LoadSample(req.Context(), chi.URLParam(req, "id"), chi.URLParam(req, "key"))
	if err != nil {
		return err
	}
	return respondCommand(w, http.StatusOK, sess, note)
}

// PUT /v1/sessions/{id}/format  {"format": "clauses"}
func (r *Router) handleSelectFormat(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Format string `json:"format"`
	}
	if err := decodeJSON(req, &body); err != nil {
		return err
	}
	sess, note, err := r.svc.SelectFormat(req.Context(), chi.URLParam(req, "id"), middleware.SanitizeString(body.Format))
	if err != nil {
		return err
	}
	return respondCommand(w, http.StatusOK, sess, note)
}

// DELETE /v1/sessions/{id}/format
func (r *Router) handleCancelCustom(w http.ResponseWriter, req *http.Request) error {
	sess, note, err := r.svc.CancelCustom(req.Context(), chi.URLParam(req, "id"))
	if err != nil {
		return err
	}
	return respondCommand(w, http.StatusOK, sess, note)
}

// PUT /v1/sessions/{id}/template  {"template": "json"}
func (r *Router) handleConfirmTemplate(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Template string `json:"template"`
	}
	if err := decodeJSON(req, &body); err != nil {
		return err
	}
	sess, note, err := r.svc.ConfirmTemplate(req.Context(), chi.URLParam(req, "id"), middleware.SanitizeString(body.Template))
	if err != nil {
		return err
	}
	return respondCommand(w, http.StatusOK, sess, note)
}

// POST /v1/sessions/{id}/analysis
// Runs in the background; progress is streamed on /events.
func (r *Router) handleStartAnalysis(w http.ResponseWriter, req *http.Request) error {
	sess, err := r.svc.StartAnalysis(req.Context(), chi.URLParam(req, "id"))
	if err != nil {
		return err
	}
	return respondCommand(w, http.StatusAccepted, sess, domain.Notification{})
}

// GET /v1/sessions/{id}/results
func (r *Router) handleResults(w http.ResponseWriter, req *http.Request) error {
	res, err := r.svc.Results(req.Context(), chi.URLParam(req, "id"))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, res)
	return nil
}

// GET /v1/sessions/{id}/report
func (r *Router) handleReport(w http.ResponseWriter, req *http.Request) error {
	rep, err := r.svc.ExportReport(req.Context(), chi.URLParam(req, "id"))
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+rep.FileName+"\"")
	if rep.URL != "" {
		w.Header().Set("X-Report-URL", rep.URL)
	}
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(rep.HTML)
	return err
}

// POST /v1/sessions/{id}/theme
func (r *Router) handleToggleTheme(w http.ResponseWriter, req *http.Request) error {
	sess, note, err := r.svc.ToggleTheme(req.Context(), chi.URLParam(req, "id"))
	if err != nil {
		return err
	}
	return respondCommand(w, http.StatusOK, sess, note)
}

// PUT /v1/sessions/{id}/theme  {"theme": "dark"}
// Reports a system color-scheme change; a manual toggle wins over it.
func (r *Router) handleSystemTheme(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Theme string `json:"theme"`
	}
	if err := decodeJSON(req, &body); err != nil {
		return err
	}
	theme := domain.Theme(body.Theme)
	if theme != domain.ThemeLight && theme != domain.ThemeDark {
		return badRequestf("theme must be light or dark")
	}
	sess, note, err := r.svc.SystemThemeChanged(req.Context(), chi.URLParam(req, "id"), theme)
	if err != nil {
		return err
	}
	return respondCommand(w, http.StatusOK, sess, note)
}

// POST /v1/sessions/{id}/reset
func (r *Router) handleReset(w http.ResponseWriter, req *http.Request) error {
	sess, note, err := r.svc.Reset(req.Context(), chi.URLParam(req, "id"))
	if err != nil {
		return err
	}
	return respondCommand(w, http.StatusOK, sess, note)
}

// GET /v1/history?limit=20
func (r *Router) handleHistory(w http.ResponseWriter, req *http.Request) error {
	limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))
	list, err := r.svc.ListHistory(req.Context(), middleware.ValidateLimit(limit))
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, list)
	return nil
}
