package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/enthugo/portfolio-site-backend/services"
)

type inquiryHandler struct {
	responder Responder
	logger    zerolog.Logger
	inquiries *services.InquiryService
}

func newInquiryHandler(inquiries *services.InquiryService) inquiryHandler {
	logger := log.With().Str("handlerName", "inquiryHandler").Logger()

	return inquiryHandler{
		responder: NewResponder(logger),
		logger:    logger,
		inquiries: inquiries,
	}
}

// listInquiries retrieves all inquiries, newest first.
func (h inquiryHandler) listInquiries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inquiries, err := h.inquiries.List()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"inquiries": inquiries,
			"total":     len(inquiries),
		})
	}
}

// deleteInquiry removes an inquiry permanently.
func (h inquiryHandler) deleteInquiry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inquiryID, err := parseID(r, "inquiryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.inquiries.Delete(inquiryID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "Inquiry deleted.",
		})
	}
}
