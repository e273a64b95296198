package validation

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/enthugo/portfolio-site-backend/errs"
)

// MaxImageBytes caps uploaded project images at 4096 KB.
const MaxImageBytes = 4096 * 1024

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

const maxStackEntryLength = 40

// ProjectInput carries the raw submitted fields of a project create/update.
type ProjectInput struct {
	Title       string   `json:"title" validate:"required,max=140"`
	Slug        string   `json:"slug" validate:"omitempty,max=160"`
	Excerpt     *string  `json:"excerpt" validate:"omitempty,max=240"`
	Description *string  `json:"description" validate:"omitempty,max=4000"`
	Stack       []string `json:"stack"`
	URL         *string  `json:"url" validate:"omitempty,url,max=255"`
	IsFeatured  bool     `json:"is_featured"`
	SortOrder   *int     `json:"sort_order" validate:"omitempty,gte=0,lte=9999"`
}

// ImageUpload describes an uploaded project image awaiting validation and
// storage. Content is read by the image store, not here.
type ImageUpload struct {
	Filename string
	Size     int64
}

// Ext returns the lowercased filename extension including the dot.
func (u ImageUpload) Ext() string {
	return strings.ToLower(filepath.Ext(u.Filename))
}

// ValidateProject checks a whole project submission. It returns nil when the
// submission is acceptable, or a ValidationError naming every violated field.
// Partial acceptance does not exist: callers never proceed on error.
func ValidateProject(in ProjectInput, image *ImageUpload) error {
	verr := errs.NewValidationError()

	collect(verr, validate.Struct(in))

	for _, entry := range in.Stack {
		if len(entry) > maxStackEntryLength {
			verr.AddField("stack", fmt.Sprintf("stack entries must be at most %d characters", maxStackEntryLength))
			break
		}
	}

	if image != nil {
		if !allowedImageExtensions[image.Ext()] {
			verr.AddField("image", "image must be a jpg, jpeg, png, or webp file")
		}
		if image.Size > MaxImageBytes {
			verr.AddField("image", "image must not exceed 4096 KB")
		}
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

// ProjectPatch carries a quick-update submission. Only is_featured and
// sort_order are recognized; anything else a client sends is dropped during
// decoding and never reaches the record.
type ProjectPatch struct {
	IsFeatured *bool `json:"is_featured"`
	SortOrder  *int  `json:"sort_order" validate:"omitempty,gte=0,lte=9999"`
}

// ValidateProjectPatch checks a quick-update submission.
func ValidateProjectPatch(patch ProjectPatch) error {
	verr := errs.NewValidationError()
	collect(verr, validate.Struct(patch))
	if verr.HasErrors() {
		return verr
	}
	return nil
}
