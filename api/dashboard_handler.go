package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/enthugo/portfolio-site-backend/database"
)

const dashboardInquiryLimit = 5

type dashboardHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	inquiryRepo *database.InquiryRepo
}

func newDashboardHandler(projectRepo *database.ProjectRepo, inquiryRepo *database.InquiryRepo) dashboardHandler {
	logger := log.With().Str("handlerName", "dashboardHandler").Logger()

	return dashboardHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		inquiryRepo: inquiryRepo,
	}
}

// dashboard serves the admin landing page props: entity counts and the
// newest inquiries.
func (h dashboardHandler) dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectCount, err := h.projectRepo.Count()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		inquiryCount, err := h.inquiryRepo.Count()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		latest, err := h.inquiryRepo.FindLatest(dashboardInquiryLimit)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"projectCount":    projectCount,
			"inquiryCount":    inquiryCount,
			"latestInquiries": latest,
		})
	}
}
