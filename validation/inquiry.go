package validation

import "github.com/enthugo/portfolio-site-backend/errs"

// InquiryInput carries the raw submitted fields of a contact form post.
// Website is a honeypot: hidden from humans, tempting to bots. A non-empty
// value marks the submission as likely automated.
type InquiryInput struct {
	Name    string `json:"name" validate:"required,max=80"`
	Email   string `json:"email" validate:"required,email,max=120"`
	Message string `json:"message" validate:"required,max=2000"`
	Website string `json:"website" validate:"omitempty,max=200"`
}

// IsBot reports whether the honeypot field was filled in.
func (in InquiryInput) IsBot() bool {
	return in.Website != ""
}

// ValidateInquiry checks a whole inquiry submission, returning nil or a
// ValidationError naming every violated field.
func ValidateInquiry(in InquiryInput) error {
	verr := errs.NewValidationError()
	collect(verr, validate.Struct(in))
	if verr.HasErrors() {
		return verr
	}
	return nil
}
