package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sitelab/sitelab-api/internal/entity"
	"github.com/sitelab/sitelab-api/internal/usecase"
)

func TestSubmitLeadSuccess(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockCaptcha := new(MockCaptchaVerifier)
	mockEmail := NewMockEmailService()

	mockCaptcha.On("Verify", ctx, "token-123").Return(true)
	mockRepo.On("Create", ctx, mock.MatchedBy(func(lead *entity.Lead) bool {
		return lead.Name == "Jane Doe" &&
			lead.Email == "jane@example.com" &&
			lead.Status == entity.LeadStatusNew &&
			lead.Source == "homepage_cta" &&
			lead.ID != "" &&
			lead.CreatedAt.Equal(lead.UpdatedAt)
	})).Return(nil)
	mockEmail.On("SendLeadConfirmation", "Jane Doe", "jane@example.com").Return(nil)
	mockEmail.On("SendAdminLeadNotification", mock.Anything).Return(nil)

	uc := usecase.NewSubmitLeadUseCase(mockRepo, mockCaptcha, mockEmail)

	output, err := uc.Execute(ctx, usecase.SubmitLeadInput{
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		BusinessType: "restaurant",
		Message:      "Looking for a new site.",
		Source:       "homepage_cta",
		CaptchaToken: "token-123",
	})

	assert.NoError(t, err)
	assert.NotNil(t, output)
	assert.True(t, output.Success)
	assert.Equal(t, "Thank you for your interest! We'll be in touch soon.", output.Message)
	assert.NotEmpty(t, output.LeadID)

	mockEmail.WaitForSends(t, 2)
	mockRepo.AssertExpectations(t)
	mockCaptcha.AssertExpectations(t)
	mockEmail.AssertExpectations(t)
}

func TestSubmitLeadDefaultsSource(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockCaptcha := new(MockCaptchaVerifier)

	mockCaptcha.On("Verify", ctx, "token-123").Return(true)
	mockRepo.On("Create", ctx, mock.MatchedBy(func(lead *entity.Lead) bool {
		return lead.Source == "website"
	})).Return(nil)

	uc := usecase.NewSubmitLeadUseCase(mockRepo, mockCaptcha, nil)

	output, err := uc.Execute(ctx, usecase.SubmitLeadInput{
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		CaptchaToken: "token-123",
	})

	assert.NoError(t, err)
	assert.True(t, output.Success)
	mockRepo.AssertExpectations(t)
}

func TestSubmitLeadMissingCaptchaToken(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockCaptcha := new(MockCaptchaVerifier)

	uc := usecase.NewSubmitLeadUseCase(mockRepo, mockCaptcha, nil)

	output, err := uc.Execute(ctx, usecase.SubmitLeadInput{
		Name:  "Jane Doe",
		Email: "jane@example.com",
	})

	assert.Nil(t, output)
	assert.Equal(t, usecase.ErrCaptchaRequired, err)
	mockCaptcha.AssertNotCalled(t, "Verify")
	mockRepo.AssertNotCalled(t, "Create")
}

func TestSubmitLeadCaptchaFailed(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockCaptcha := new(MockCaptchaVerifier)
	mockCaptcha.On("Verify", ctx, "bad-token").Return(false)

	uc := usecase.NewSubmitLeadUseCase(mockRepo, mockCaptcha, nil)

	output, err := uc.Execute(ctx, usecase.SubmitLeadInput{
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		CaptchaToken: "bad-token",
	})

	assert.Nil(t, output)
	assert.Equal(t, usecase.ErrCaptchaFailed, err)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestSubmitLeadValidationFailure(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockCaptcha := new(MockCaptchaVerifier)
	mockCaptcha.On("Verify", ctx, "token-123").Return(true)

	uc := usecase.NewSubmitLeadUseCase(mockRepo, mockCaptcha, nil)

	output, err := uc.Execute(ctx, usecase.SubmitLeadInput{
		Name:         "J",
		Email:        "not-an-email",
		CaptchaToken: "token-123",
	})

	assert.Nil(t, output)

	var validationErrs usecase.ValidationErrors
	assert.True(t, errors.As(err, &validationErrs))
	fields := validationErrs.FieldErrors()
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	mockRepo.AssertNotCalled(t, "Create")
}

func TestSubmitLeadDatabaseFailure(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockCaptcha := new(MockCaptchaVerifier)
	mockCaptcha.On("Verify", ctx, "token-123").Return(true)
	mockRepo.On("Create", ctx, mock.Anything).Return(errors.New("connection refused"))

	uc := usecase.NewSubmitLeadUseCase(mockRepo, mockCaptcha, nil)

	output, err := uc.Execute(ctx, usecase.SubmitLeadInput{
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		CaptchaToken: "token-123",
	})

	assert.Nil(t, output)
	assert.True(t, usecase.IsTechnicalError(err))
}
