package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/enthugo/portfolio-site-backend/errs"
	"github.com/enthugo/portfolio-site-backend/services"
	"github.com/enthugo/portfolio-site-backend/validation"
)

const inquiryReceivedMessage = "Thanks! I will reply soon."

type publicHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  *services.ProjectService
	inquiries *services.InquiryService
}

func newPublicHandler(projects *services.ProjectService, inquiries *services.InquiryService) publicHandler {
	logger := log.With().Str("handlerName", "publicHandler").Logger()
	return publicHandler{
		responder: NewResponder(logger),
		logger:    logger,
		projects:  projects,
		inquiries: inquiries,
	}
}

// home serves the home page props: the featured project subset, capped.
func (h publicHandler) home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		featured, err := h.projects.ListFeatured(services.FeaturedLimit)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"featuredProjects": NewPublicProjects(featured),
		})
	}
}

// listProjects serves the public project listing with the whitelisted field
// projection.
func (h publicHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projects.List(services.ScopePublic)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"projects": NewPublicProjects(projects),
		})
	}
}

// contactPage serves the contact page props.
func (h publicHandler) contactPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]interface{}{
			"page": "contact",
		})
	}
}

// submitInquiry accepts a contact form submission. Honeypot hits receive the
// exact same acknowledgment as genuine submissions.
func (h publicHandler) submitInquiry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, err := parseInquiryInput(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.inquiries.Submit(input); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": inquiryReceivedMessage,
		})
	}
}

func parseInquiryInput(r *http.Request) (validation.InquiryInput, error) {
	var input validation.InquiryInput

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			return input, errs.NewBadRequestError("malformed request body")
		}
		return input, nil
	}

	if err := r.ParseForm(); err != nil {
		return input, errs.NewBadRequestError("malformed form body")
	}
	input.Name = r.PostFormValue("name")
	input.Email = r.PostFormValue("email")
	input.Message = r.PostFormValue("message")
	input.Website = r.PostFormValue("website")
	return input, nil
}
