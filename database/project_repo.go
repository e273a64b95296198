package database

import (
	"gorm.io/gorm"

	"github.com/enthugo/portfolio-site-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects in admin order: sort_order ascending, ties
// broken by id descending so newer projects surface first.
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.
		Order("sort_order asc").
		Order("id desc").
		Find(&projects).Error
	return projects, err
}

// FindAllPublic returns all projects in public order, which additionally
// floats featured projects to the top.
func (r *ProjectRepo) FindAllPublic() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.
		Order("is_featured desc").
		Order("sort_order asc").
		Order("id desc").
		Find(&projects).Error
	return projects, err
}

// FindFeatured returns featured projects in public order, capped at limit.
func (r *ProjectRepo) FindFeatured(limit int) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.
		Where("is_featured = ?", true).
		Order("sort_order asc").
		Order("id desc").
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID
func (r *ProjectRepo) FindByID(id uint64) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update updates an existing project in the database
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// UpdateFields applies only the given columns to a project, leaving every
// other column untouched.
func (r *ProjectRepo) UpdateFields(id uint64, fields map[string]any) error {
	return r.db.Model(&models.Project{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes a project from the database by id
func (r *ProjectRepo) Delete(id uint64) error {
	return r.db.Delete(&models.Project{}, id).Error
}

// Count returns the number of projects.
func (r *ProjectRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Count(&count).Error
	return count, err
}
