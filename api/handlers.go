package api

import (
	"github.com/enthugo/portfolio-site-backend/config"
	"github.com/enthugo/portfolio-site-backend/database"
	"github.com/enthugo/portfolio-site-backend/services"
	"github.com/enthugo/portfolio-site-backend/storage"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, app config.App, images storage.ImageStore, mailer services.Mailer) *routeHandlers {
	projectService := services.NewProjectService(db.ProjectRepo(), images)
	inquiryService := services.NewInquiryService(db.InquiryRepo(), mailer, app.InquiryRecipient)

	return &routeHandlers{
		publicHandler:    newPublicHandler(projectService, inquiryService),
		projectHandler:   newProjectHandler(projectService),
		inquiryHandler:   newInquiryHandler(inquiryService),
		dashboardHandler: newDashboardHandler(db.ProjectRepo(), db.InquiryRepo()),
		authHandler:      newAuthHandler(app),
	}
}
