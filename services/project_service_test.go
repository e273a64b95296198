package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enthugo/portfolio-site-backend/errs"
	"github.com/enthugo/portfolio-site-backend/models"
	"github.com/enthugo/portfolio-site-backend/validation"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func newProjectService(t *testing.T) (*ProjectService, *fakeImageStore) {
	t.Helper()
	db := newTestDB(t)
	images := newFakeImageStore()
	return NewProjectService(db.ProjectRepo(), images), images
}

func TestProjectCreateDefaultsSlugFromTitle(t *testing.T) {
	svc, _ := newProjectService(t)

	project, err := svc.Create(context.Background(), validation.ProjectInput{
		Title: "My First Project!",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "my-first-project", project.Slug)

	// An explicit slug wins over the derived one.
	project, err = svc.Create(context.Background(), validation.ProjectInput{
		Title: "Second",
		Slug:  "custom-slug",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "custom-slug", project.Slug)
}

func TestProjectCreateRoundTrip(t *testing.T) {
	svc, _ := newProjectService(t)

	created, err := svc.Create(context.Background(), validation.ProjectInput{
		Title: "Falcon",
		Stack: []string{"Go", "Postgres"},
	}, nil)
	require.NoError(t, err)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Falcon", got.Title)
	assert.Equal(t, "falcon", got.Slug)
	assert.Equal(t, []string{"Go", "Postgres"}, []string(got.Stack))
	assert.False(t, got.IsFeatured)
	assert.Equal(t, 0, got.SortOrder)
	assert.Nil(t, got.Excerpt)
	assert.Nil(t, got.URL)
	assert.Nil(t, got.ImagePath)
}

func TestProjectCreateRejectsInvalidInput(t *testing.T) {
	svc, _ := newProjectService(t)

	_, err := svc.Create(context.Background(), validation.ProjectInput{}, nil)
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))

	projects, listErr := svc.List(ScopeAdmin)
	require.NoError(t, listErr)
	assert.Empty(t, projects, "nothing may be persisted on validation failure")
}

func TestProjectCreateStoresImage(t *testing.T) {
	svc, images := newProjectService(t)

	project, err := svc.Create(context.Background(), validation.ProjectInput{Title: "Shots"}, &Upload{
		Meta:    validation.ImageUpload{Filename: "shot.png", Size: 12},
		Content: strings.NewReader("image bytes!"),
	})
	require.NoError(t, err)
	require.NotNil(t, project.ImagePath)
	assert.True(t, images.has(*project.ImagePath))
}

func TestProjectCreateFailedImageStoreIsFatal(t *testing.T) {
	svc, images := newProjectService(t)
	images.storeErr = errors.New("disk full")

	_, err := svc.Create(context.Background(), validation.ProjectInput{Title: "Shots"}, &Upload{
		Meta:    validation.ImageUpload{Filename: "shot.png", Size: 12},
		Content: strings.NewReader("image bytes!"),
	})
	require.Error(t, err)

	projects, listErr := svc.List(ScopeAdmin)
	require.NoError(t, listErr)
	assert.Empty(t, projects, "record must not reference a path that was never stored")
}

func TestProjectUpdateReplacesImage(t *testing.T) {
	svc, images := newProjectService(t)

	created, err := svc.Create(context.Background(), validation.ProjectInput{Title: "Shots"}, &Upload{
		Meta:    validation.ImageUpload{Filename: "old.png", Size: 3},
		Content: strings.NewReader("old"),
	})
	require.NoError(t, err)
	oldPath := *created.ImagePath

	updated, err := svc.Update(context.Background(), created.ID, validation.ProjectInput{Title: "Shots"}, &Upload{
		Meta:    validation.ImageUpload{Filename: "new.jpg", Size: 3},
		Content: strings.NewReader("new"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ImagePath)

	assert.NotEqual(t, oldPath, *updated.ImagePath)
	assert.False(t, images.has(oldPath), "replaced image must be released")
	assert.True(t, images.has(*updated.ImagePath))
}

func TestProjectUpdateRederivesBlankSlug(t *testing.T) {
	svc, _ := newProjectService(t)

	created, err := svc.Create(context.Background(), validation.ProjectInput{Title: "Old Title", Slug: "kept"}, nil)
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, validation.ProjectInput{Title: "New Title"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "new-title", updated.Slug)
}

func TestProjectUpdateNotFound(t *testing.T) {
	svc, _ := newProjectService(t)

	_, err := svc.Update(context.Background(), 12345, validation.ProjectInput{Title: "x"}, nil)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestProjectQuickUpdateTouchesOnlySuppliedFields(t *testing.T) {
	svc, _ := newProjectService(t)

	created, err := svc.Create(context.Background(), validation.ProjectInput{
		Title:      "Falcon",
		Excerpt:    strPtr("short"),
		IsFeatured: true,
		SortOrder:  intPtr(5),
	}, nil)
	require.NoError(t, err)

	// Only sort_order: is_featured and everything else stays.
	updated, err := svc.QuickUpdate(created.ID, validation.ProjectPatch{SortOrder: intPtr(42)})
	require.NoError(t, err)
	assert.Equal(t, 42, updated.SortOrder)
	assert.True(t, updated.IsFeatured)
	assert.Equal(t, "Falcon", updated.Title)
	require.NotNil(t, updated.Excerpt)
	assert.Equal(t, "short", *updated.Excerpt)

	// Only is_featured: sort_order stays.
	updated, err = svc.QuickUpdate(created.ID, validation.ProjectPatch{IsFeatured: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, updated.IsFeatured)
	assert.Equal(t, 42, updated.SortOrder)

	// Empty patch is a no-op.
	updated, err = svc.QuickUpdate(created.ID, validation.ProjectPatch{})
	require.NoError(t, err)
	assert.False(t, updated.IsFeatured)
	assert.Equal(t, 42, updated.SortOrder)
}

func TestProjectDeleteReleasesImage(t *testing.T) {
	svc, images := newProjectService(t)

	created, err := svc.Create(context.Background(), validation.ProjectInput{Title: "Shots"}, &Upload{
		Meta:    validation.ImageUpload{Filename: "shot.webp", Size: 4},
		Content: strings.NewReader("webp"),
	})
	require.NoError(t, err)
	path := *created.ImagePath

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	assert.False(t, images.has(path))
	_, err = svc.Get(created.ID)
	assert.True(t, errs.IsNotFound(err))
}

func TestProjectDeleteProceedsWhenImageDeleteFails(t *testing.T) {
	svc, images := newProjectService(t)

	created, err := svc.Create(context.Background(), validation.ProjectInput{Title: "Shots"}, &Upload{
		Meta:    validation.ImageUpload{Filename: "shot.jpg", Size: 4},
		Content: strings.NewReader("jpeg"),
	})
	require.NoError(t, err)

	images.delErr = errors.New("bucket unreachable")
	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.Get(created.ID)
	assert.True(t, errs.IsNotFound(err), "record delete must proceed despite storage failure")
}

func TestProjectListOrdering(t *testing.T) {
	svc, _ := newProjectService(t)
	ctx := context.Background()

	// id 1: sort 5, not featured
	a, err := svc.Create(ctx, validation.ProjectInput{Title: "A", SortOrder: intPtr(5)}, nil)
	require.NoError(t, err)
	// id 2: sort 1, featured
	b, err := svc.Create(ctx, validation.ProjectInput{Title: "B", SortOrder: intPtr(1), IsFeatured: true}, nil)
	require.NoError(t, err)
	// id 3: sort 1, not featured (newer than B, same sort)
	c, err := svc.Create(ctx, validation.ProjectInput{Title: "C", SortOrder: intPtr(1)}, nil)
	require.NoError(t, err)
	// id 4: sort 0, featured
	d, err := svc.Create(ctx, validation.ProjectInput{Title: "D", IsFeatured: true}, nil)
	require.NoError(t, err)

	admin, err := svc.List(ScopeAdmin)
	require.NoError(t, err)
	// sort_order asc, id desc
	assert.Equal(t, []uint64{d.ID, c.ID, b.ID, a.ID}, projectIDs(admin))

	public, err := svc.List(ScopePublic)
	require.NoError(t, err)
	// is_featured desc, then sort_order asc, id desc
	assert.Equal(t, []uint64{d.ID, b.ID, c.ID, a.ID}, projectIDs(public))

	featured, err := svc.ListFeatured(FeaturedLimit)
	require.NoError(t, err)
	assert.Equal(t, []uint64{d.ID, b.ID}, projectIDs(featured))

	capped, err := svc.ListFeatured(1)
	require.NoError(t, err)
	assert.Equal(t, []uint64{d.ID}, projectIDs(capped))
}

func projectIDs(projects []*models.Project) []uint64 {
	ids := make([]uint64, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	return ids
}
