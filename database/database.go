package database

import (
	"gorm.io/gorm"

	"github.com/enthugo/portfolio-site-backend/models"
)

type Database struct {
	projectRepo *ProjectRepo
	inquiryRepo *InquiryRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo: NewProjectRepo(db),
		inquiryRepo: NewInquiryRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) InquiryRepo() *InquiryRepo {
	return d.inquiryRepo
}

// Migrate creates or updates the projects and inquiries tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Project{}, &models.Inquiry{})
}
