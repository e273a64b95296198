package api

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/enthugo/portfolio-site-backend/errs"
	"github.com/enthugo/portfolio-site-backend/services"
	"github.com/enthugo/portfolio-site-backend/validation"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  *services.ProjectService
}

func newProjectHandler(projects *services.ProjectService) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		projects:  projects,
	}
}

// listProjects retrieves all projects in admin order with all fields.
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projects.List(services.ScopeAdmin)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"projects": projects,
			"total":    len(projects),
		})
	}
}

// getProject retrieves a single project for the admin edit form.
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projects.Get(projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"project": project,
		})
	}
}

// createProject creates a new project from a multipart form or JSON body.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, upload, cleanup, err := parseProjectInput(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer cleanup()

		project, err := h.projects.Create(r.Context(), input, upload)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]interface{}{
			"status":  "success",
			"message": "Project created.",
			"project": project,
		})
	}
}

// updateProject applies a full update to an existing project.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		input, upload, cleanup, err := parseProjectInput(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer cleanup()

		project, err := h.projects.Update(r.Context(), projectID, input, upload)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"status":  "success",
			"message": "Project updated.",
			"project": project,
		})
	}
}

// quickUpdateProject handles inline is_featured/sort_order patches from the
// admin project list. Any other field in the payload is ignored.
func (h projectHandler) quickUpdateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var patch validation.ProjectPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		project, err := h.projects.QuickUpdate(projectID, patch)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"status":  "success",
			"message": "Updated.",
			"project": project,
		})
	}
}

// deleteProject deletes a project and releases its stored image.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projects.Delete(r.Context(), projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "Project deleted.",
		})
	}
}

func parseID(r *http.Request, param string) (uint64, error) {
	idStr := chi.URLParam(r, param)
	if idStr == "" {
		return 0, errs.NewBadRequestError("missing " + param)
	}
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid " + param)
	}
	return id, nil
}

const maxMultipartMemory = 8 << 20 // form fields in memory, files spill to disk

// parseProjectInput reads a project submission from either a multipart form
// (the admin forms, which may carry an image file) or a JSON body. The
// returned cleanup closes the upload's file handle and is always safe to
// call.
func parseProjectInput(r *http.Request) (validation.ProjectInput, *services.Upload, func(), error) {
	var input validation.ProjectInput
	noop := func() {}

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return input, nil, noop, errs.NewBadRequestError("malformed multipart body")
		}

		input.Title = r.PostFormValue("title")
		input.Slug = r.PostFormValue("slug")
		input.Excerpt = optionalFormValue(r, "excerpt")
		input.Description = optionalFormValue(r, "description")
		input.URL = optionalFormValue(r, "url")
		input.IsFeatured = parseFormBool(r.PostFormValue("is_featured"))
		input.Stack = formStackValues(r.MultipartForm)

		if sortStr := r.PostFormValue("sort_order"); sortStr != "" {
			sortOrder, err := strconv.Atoi(sortStr)
			if err != nil {
				return input, nil, noop, errs.NewBadRequestError("sort_order must be an integer")
			}
			input.SortOrder = &sortOrder
		}

		file, header, err := r.FormFile("image")
		if err == http.ErrMissingFile || (err == nil && header == nil) {
			return input, nil, noop, nil
		}
		if err != nil {
			return input, nil, noop, errs.NewBadRequestError("unable to read image upload")
		}

		upload := &services.Upload{
			Meta: validation.ImageUpload{
				Filename: header.Filename,
				Size:     header.Size,
			},
			Content: file,
		}
		return input, upload, func() { file.Close() }, nil
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return input, nil, noop, errs.NewBadRequestError("malformed request body")
	}
	return input, nil, noop, nil
}

func optionalFormValue(r *http.Request, field string) *string {
	value := r.PostFormValue(field)
	if value == "" {
		return nil
	}
	return &value
}

func parseFormBool(value string) bool {
	switch strings.ToLower(value) {
	case "1", "true", "on", "yes":
		return true
	default:
		return false
	}
}

// formStackValues accepts the stack list as repeated stack fields, the
// bracketed stack[] variant, or a single comma-separated value.
func formStackValues(form *multipart.Form) []string {
	if form == nil {
		return nil
	}

	values := form.Value["stack"]
	if len(values) == 0 {
		values = form.Value["stack[]"]
	}
	if len(values) == 1 && strings.Contains(values[0], ",") {
		values = strings.Split(values[0], ",")
	}

	var stack []string
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			stack = append(stack, trimmed)
		}
	}
	return stack
}
