package database

import (
	"gorm.io/gorm"

	"github.com/enthugo/portfolio-site-backend/models"
)

type InquiryRepo struct {
	db *gorm.DB
}

func NewInquiryRepo(db *gorm.DB) *InquiryRepo {
	return &InquiryRepo{db}
}

// FindAll returns all inquiries, newest first.
func (r *InquiryRepo) FindAll() ([]*models.Inquiry, error) {
	var inquiries []*models.Inquiry
	err := r.db.Order("id desc").Find(&inquiries).Error
	return inquiries, err
}

// FindByID returns an inquiry by its ID
func (r *InquiryRepo) FindByID(id uint64) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	err := r.db.First(&inquiry, id).Error
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}

// Add inserts a new inquiry into the database
func (r *InquiryRepo) Add(inquiry *models.Inquiry) error {
	return r.db.Create(inquiry).Error
}

// Delete removes an inquiry from the database by id
func (r *InquiryRepo) Delete(id uint64) error {
	return r.db.Delete(&models.Inquiry{}, id).Error
}

// Count returns the number of inquiries.
func (r *InquiryRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Inquiry{}).Count(&count).Error
	return count, err
}

// FindLatest returns the newest inquiries, capped at limit.
func (r *InquiryRepo) FindLatest(limit int) ([]*models.Inquiry, error) {
	var inquiries []*models.Inquiry
	err := r.db.Order("id desc").Limit(limit).Find(&inquiries).Error
	return inquiries, err
}
