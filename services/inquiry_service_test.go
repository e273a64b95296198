package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enthugo/portfolio-site-backend/errs"
	"github.com/enthugo/portfolio-site-backend/validation"
)

func validInquiry() validation.InquiryInput {
	return validation.InquiryInput{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Message: "I would like to talk about a project.",
	}
}

func TestInquirySubmitPersistsAndNotifies(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{}
	svc := NewInquiryService(db.InquiryRepo(), mailer, "owner@example.com")

	inquiry, err := svc.Submit(validInquiry())
	require.NoError(t, err)
	require.NotNil(t, inquiry)
	assert.NotZero(t, inquiry.ID)

	require.Len(t, mailer.subjects, 1)
	assert.Equal(t, "New inquiry from Ada Lovelace", mailer.subjects[0])
	assert.Equal(t, [][]string{{"owner@example.com"}}, mailer.recipients)
	assert.Contains(t, mailer.bodies[0], "ada@example.com")
	assert.Contains(t, mailer.bodies[0], "I would like to talk about a project.")
}

func TestInquirySubmitHoneypotDropsSilently(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{}
	svc := NewInquiryService(db.InquiryRepo(), mailer, "owner@example.com")

	in := validInquiry()
	in.Website = "http://definitely-a-bot.example"

	inquiry, err := svc.Submit(in)
	require.NoError(t, err, "honeypot submission must look like success")
	assert.Nil(t, inquiry)

	inquiries, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, inquiries, "honeypot submission must not persist")
	assert.Empty(t, mailer.subjects, "honeypot submission must not notify")
}

func TestInquirySubmitSkipsNotificationWithoutRecipient(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{}
	svc := NewInquiryService(db.InquiryRepo(), mailer, "")

	inquiry, err := svc.Submit(validInquiry())
	require.NoError(t, err)
	require.NotNil(t, inquiry)
	assert.Empty(t, mailer.subjects)
}

func TestInquirySubmitSurvivesNotificationFailure(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{err: errors.New("smtp down")}
	svc := NewInquiryService(db.InquiryRepo(), mailer, "owner@example.com")

	inquiry, err := svc.Submit(validInquiry())
	require.NoError(t, err, "notification failure must not fail the submission")
	require.NotNil(t, inquiry)

	inquiries, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, inquiries, 1)
}

func TestInquirySubmitRejectsInvalidInput(t *testing.T) {
	db := newTestDB(t)
	svc := NewInquiryService(db.InquiryRepo(), &fakeMailer{}, "")

	_, err := svc.Submit(validation.InquiryInput{})
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestInquiryListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewInquiryService(db.InquiryRepo(), &fakeMailer{}, "")

	for _, name := range []string{"First", "Second", "Third"} {
		in := validInquiry()
		in.Name = name
		_, err := svc.Submit(in)
		require.NoError(t, err)
	}

	inquiries, err := svc.List()
	require.NoError(t, err)
	require.Len(t, inquiries, 3)
	assert.Equal(t, "Third", inquiries[0].Name)
	assert.Equal(t, "Second", inquiries[1].Name)
	assert.Equal(t, "First", inquiries[2].Name)
}

func TestInquiryDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewInquiryService(db.InquiryRepo(), &fakeMailer{}, "")

	inquiry, err := svc.Submit(validInquiry())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(inquiry.ID))

	inquiries, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, inquiries)

	err = svc.Delete(inquiry.ID)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}
