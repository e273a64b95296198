package api

import (
	"github.com/enthugo/portfolio-site-backend/models"
)

// PublicProject is the read-only projection of a project exposed on public
// pages. Description stays admin-only.
type PublicProject struct {
	ID         uint64   `json:"id"`
	Title      string   `json:"title"`
	Slug       string   `json:"slug"`
	Excerpt    *string  `json:"excerpt"`
	Stack      []string `json:"stack"`
	URL        *string  `json:"url"`
	ImagePath  *string  `json:"image_path"`
	IsFeatured bool     `json:"is_featured"`
	SortOrder  int      `json:"sort_order"`
}

// NewPublicProject maps a project record to its public projection.
func NewPublicProject(p *models.Project) PublicProject {
	return PublicProject{
		ID:         p.ID,
		Title:      p.Title,
		Slug:       p.Slug,
		Excerpt:    p.Excerpt,
		Stack:      p.Stack,
		URL:        p.URL,
		ImagePath:  p.ImagePath,
		IsFeatured: p.IsFeatured,
		SortOrder:  p.SortOrder,
	}
}

// NewPublicProjects maps a slice of project records, preserving order.
func NewPublicProjects(projects []*models.Project) []PublicProject {
	views := make([]PublicProject, 0, len(projects))
	for _, p := range projects {
		views = append(views, NewPublicProject(p))
	}
	return views
}
