package services

import (
	"errors"
	"fmt"
	"html"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/enthugo/portfolio-site-backend/database"
	"github.com/enthugo/portfolio-site-backend/errs"
	"github.com/enthugo/portfolio-site-backend/models"
	"github.com/enthugo/portfolio-site-backend/validation"
)

// InquiryService handles contact form intake with spam mitigation and
// notification dispatch, plus admin viewing and deletion.
type InquiryService struct {
	repo      *database.InquiryRepo
	mailer    Mailer
	recipient string
	logger    zerolog.Logger
}

// NewInquiryService builds the service. recipient may be blank, in which
// case notification dispatch is skipped entirely.
func NewInquiryService(repo *database.InquiryRepo, mailer Mailer, recipient string) *InquiryService {
	return &InquiryService{
		repo:      repo,
		mailer:    mailer,
		recipient: recipient,
		logger:    log.With().Str("serviceName", "inquiryService").Logger(),
	}
}

// Submit validates and persists a contact submission, then dispatches the
// notification email. A submission with a filled honeypot field returns
// (nil, nil) without persisting or notifying: the caller produces the same
// success response either way, so bots get no feedback signal.
func (s *InquiryService) Submit(in validation.InquiryInput) (*models.Inquiry, error) {
	if err := validation.ValidateInquiry(in); err != nil {
		return nil, err
	}

	if in.IsBot() {
		s.logger.Info().Msg("Honeypot tripped, dropping inquiry silently")
		return nil, nil
	}

	inquiry := &models.Inquiry{
		Name:    in.Name,
		Email:   in.Email,
		Message: in.Message,
	}

	if err := s.repo.Add(inquiry); err != nil {
		return nil, errs.NewDatabaseError("create", "inquiry", err)
	}

	// Notification failure never rolls back the persisted inquiry.
	s.notify(inquiry)

	return inquiry, nil
}

// List returns all inquiries, newest first.
func (s *InquiryService) List() ([]*models.Inquiry, error) {
	inquiries, err := s.repo.FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "inquiries", err)
	}
	return inquiries, nil
}

// Delete removes an inquiry permanently.
func (s *InquiryService) Delete(id uint64) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewNotFound("inquiry")
		}
		return errs.NewDatabaseError("find", "inquiry", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return errs.NewDatabaseError("delete", "inquiry", err)
	}
	return nil
}

func (s *InquiryService) notify(inquiry *models.Inquiry) {
	if s.recipient == "" {
		s.logger.Debug().Msg("No inquiry recipient configured, skipping notification")
		return
	}

	subject := fmt.Sprintf("New inquiry from %s", inquiry.Name)
	if err := s.mailer.Send(subject, inquiryEmailHTML(inquiry), []string{s.recipient}); err != nil {
		s.logger.Error().Err(err).Uint64("inquiryID", inquiry.ID).Msg("Failed to send inquiry notification")
	}
}

func inquiryEmailHTML(inquiry *models.Inquiry) string {
	return fmt.Sprintf(`<!doctype html>
<html>
  <body style="font-family: ui-sans-serif, system-ui; line-height:1.5;">
    <h2>New Inquiry</h2>
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Message:</strong></p>
    <pre style="white-space: pre-wrap; background:#f6f6f6; padding:12px; border-radius:10px;">%s</pre>
    <p style="color:#666; font-size:12px;">Sent from Enthugo contact form.</p>
  </body>
</html>`,
		html.EscapeString(inquiry.Name),
		html.EscapeString(inquiry.Email),
		html.EscapeString(inquiry.Message))
}
