package services

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/enthugo/portfolio-site-backend/database"
	"github.com/enthugo/portfolio-site-backend/errs"
	"github.com/enthugo/portfolio-site-backend/models"
	"github.com/enthugo/portfolio-site-backend/storage"
	"github.com/enthugo/portfolio-site-backend/validation"
)

// Scope selects the listing order and caller context for project reads.
type Scope string

const (
	ScopePublic Scope = "public"
	ScopeAdmin  Scope = "admin"
)

// FeaturedLimit caps the highlighted project subset on the public home page.
const FeaturedLimit = 6

// Upload pairs image metadata with its content stream.
type Upload struct {
	Meta    validation.ImageUpload
	Content io.Reader
}

// ProjectService enforces validation and ordering/visibility rules for
// projects and owns the image lifecycle at create/update/delete boundaries.
type ProjectService struct {
	repo   *database.ProjectRepo
	images storage.ImageStore
	logger zerolog.Logger
}

func NewProjectService(repo *database.ProjectRepo, images storage.ImageStore) *ProjectService {
	return &ProjectService{
		repo:   repo,
		images: images,
		logger: log.With().Str("serviceName", "projectService").Logger(),
	}
}

// List returns projects in the order the given scope expects: admin scope is
// sort_order ascending with id descending ties, public scope floats featured
// projects first.
func (s *ProjectService) List(scope Scope) ([]*models.Project, error) {
	var (
		projects []*models.Project
		err      error
	)
	if scope == ScopePublic {
		projects, err = s.repo.FindAllPublic()
	} else {
		projects, err = s.repo.FindAll()
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}
	return projects, nil
}

// ListFeatured returns featured projects capped at limit.
func (s *ProjectService) ListFeatured(limit int) ([]*models.Project, error) {
	projects, err := s.repo.FindFeatured(limit)
	if err != nil {
		return nil, errs.NewDatabaseError("find featured", "projects", err)
	}
	return projects, nil
}

// Get returns a single project by id.
func (s *ProjectService) Get(id uint64) (*models.Project, error) {
	project, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("project")
		}
		return nil, errs.NewDatabaseError("find", "project", err)
	}
	return project, nil
}

// Create validates the submission, defaults a blank slug from the title,
// stores the uploaded image if one was provided, and persists the record.
// A failed image store is fatal to the create: the record must never
// reference a path that does not exist.
func (s *ProjectService) Create(ctx context.Context, in validation.ProjectInput, upload *Upload) (*models.Project, error) {
	if err := validation.ValidateProject(in, uploadMeta(upload)); err != nil {
		return nil, err
	}

	project := &models.Project{
		Title:       in.Title,
		Slug:        slugOrDefault(in.Slug, in.Title),
		Excerpt:     in.Excerpt,
		Description: in.Description,
		Stack:       in.Stack,
		URL:         in.URL,
		IsFeatured:  in.IsFeatured,
	}
	if in.SortOrder != nil {
		project.SortOrder = *in.SortOrder
	}

	if upload != nil {
		path, err := s.images.Store(ctx, upload.Meta.Ext(), upload.Content)
		if err != nil {
			return nil, errs.NewInternalErrorWithCause("failed to store project image", err)
		}
		project.ImagePath = &path
	}

	if err := s.repo.Add(project); err != nil {
		return nil, errs.NewDatabaseError("create", "project", err)
	}

	return project, nil
}

// Update validates and applies a full update. When a new image is uploaded
// it replaces the prior one: the old file is deleted best effort after the
// new one is stored.
func (s *ProjectService) Update(ctx context.Context, id uint64, in validation.ProjectInput, upload *Upload) (*models.Project, error) {
	project, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := validation.ValidateProject(in, uploadMeta(upload)); err != nil {
		return nil, err
	}

	project.Title = in.Title
	project.Slug = slugOrDefault(in.Slug, in.Title)
	project.Excerpt = in.Excerpt
	project.Description = in.Description
	project.Stack = in.Stack
	project.URL = in.URL
	project.IsFeatured = in.IsFeatured
	if in.SortOrder != nil {
		project.SortOrder = *in.SortOrder
	} else {
		project.SortOrder = 0
	}

	if upload != nil {
		path, err := s.images.Store(ctx, upload.Meta.Ext(), upload.Content)
		if err != nil {
			// Best effort: the update proceeds with the existing image.
			s.logger.Error().Err(err).Uint64("projectID", id).Msg("Failed to store replacement image")
		} else {
			if project.ImagePath != nil {
				if err := s.images.Delete(ctx, *project.ImagePath); err != nil {
					s.logger.Error().Err(err).Str("path", *project.ImagePath).Msg("Failed to delete replaced image")
				}
			}
			project.ImagePath = &path
		}
	}

	if err := s.repo.Update(project); err != nil {
		return nil, errs.NewDatabaseError("update", "project", err)
	}

	return project, nil
}

// QuickUpdate applies only the is_featured and/or sort_order fields present
// in the patch, leaving everything else untouched. Fields outside that
// whitelist never reach this method: the patch type cannot carry them.
func (s *ProjectService) QuickUpdate(id uint64, patch validation.ProjectPatch) (*models.Project, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	if err := validation.ValidateProjectPatch(patch); err != nil {
		return nil, err
	}

	fields := make(map[string]any, 2)
	if patch.IsFeatured != nil {
		fields["is_featured"] = *patch.IsFeatured
	}
	if patch.SortOrder != nil {
		fields["sort_order"] = *patch.SortOrder
	}

	if len(fields) > 0 {
		if err := s.repo.UpdateFields(id, fields); err != nil {
			return nil, errs.NewDatabaseError("update", "project", err)
		}
	}

	return s.Get(id)
}

// Delete removes the stored image (best effort, never blocking the record
// delete) and then the record itself.
func (s *ProjectService) Delete(ctx context.Context, id uint64) error {
	project, err := s.Get(id)
	if err != nil {
		return err
	}

	if project.ImagePath != nil {
		if err := s.images.Delete(ctx, *project.ImagePath); err != nil {
			s.logger.Error().Err(err).Str("path", *project.ImagePath).Msg("Failed to delete project image")
		}
	}

	if err := s.repo.Delete(id); err != nil {
		return errs.NewDatabaseError("delete", "project", err)
	}

	return nil
}

func slugOrDefault(slug, title string) string {
	if strings.TrimSpace(slug) == "" {
		return validation.Slugify(title)
	}
	return slug
}

func uploadMeta(upload *Upload) *validation.ImageUpload {
	if upload == nil {
		return nil
	}
	return &upload.Meta
}
