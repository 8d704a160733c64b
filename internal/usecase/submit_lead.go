package usecase

import (
	"context"
	"log"

	"github.com/sitelab/sitelab-api/internal/entity"
)

type SubmitLeadUseCase struct {
	Repo    LeadRepositoryInterface
	Captcha CaptchaVerifier
	Email   EmailService
}

func NewSubmitLeadUseCase(repo LeadRepositoryInterface, captcha CaptchaVerifier, email EmailService) *SubmitLeadUseCase {
	return &SubmitLeadUseCase{Repo: repo, Captcha: captcha, Email: email}
}

func (uc *SubmitLeadUseCase) Execute(ctx context.Context, input SubmitLeadInput) (*SubmitLeadOutput, error) {
	// Captcha first, before any field validation, so bots get the cheapest
	// possible rejection.
	if input.CaptchaToken == "" {
		return nil, ErrCaptchaRequired
	}
	if !uc.Captcha.Verify(ctx, input.CaptchaToken) {
		return nil, ErrCaptchaFailed
	}

	if errs := ValidateSubmitLeadInput(input); len(errs) > 0 {
		return nil, errs
	}

	lead := entity.NewLead(input.Name, input.Email, input.BusinessType, input.Message, input.Source)

	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist lead: " + err.Error(),
		}
	}

	// Both emails are best-effort: a down SMTP relay must never turn a
	// persisted lead into a failed submission.
	if uc.Email != nil {
		go func() {
			if err := uc.Email.SendLeadConfirmation(lead.Name, lead.Email); err != nil {
				log.Printf("❌ Failed to send lead confirmation: %v", err)
			}
		}()
		go func() {
			if err := uc.Email.SendAdminLeadNotification(lead); err != nil {
				log.Printf("❌ Failed to send admin notification: %v", err)
			}
		}()
	}

	return &SubmitLeadOutput{
		Success: true,
		Message: "Thank you for your interest! We'll be in touch soon.",
		LeadID:  lead.ID,
	}, nil
}
