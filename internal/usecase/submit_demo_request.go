package usecase

import (
	"context"
	"log"

	"github.com/sitelab/sitelab-api/internal/entity"
)

type SubmitDemoRequestUseCase struct {
	Repo    DemoRequestRepositoryInterface
	Captcha CaptchaVerifier
	Email   EmailService
}

func NewSubmitDemoRequestUseCase(repo DemoRequestRepositoryInterface, captcha CaptchaVerifier, email EmailService) *SubmitDemoRequestUseCase {
	return &SubmitDemoRequestUseCase{Repo: repo, Captcha: captcha, Email: email}
}

func (uc *SubmitDemoRequestUseCase) Execute(ctx context.Context, input SubmitDemoRequestInput) (*SubmitDemoRequestOutput, error) {
	if input.CaptchaToken == "" {
		return nil, ErrCaptchaRequired
	}
	if !uc.Captcha.Verify(ctx, input.CaptchaToken) {
		return nil, ErrCaptchaFailed
	}

	if errs := ValidateSubmitDemoRequestInput(input); len(errs) > 0 {
		return nil, errs
	}

	req := entity.NewDemoRequest(
		input.Name,
		input.Email,
		input.BusinessName,
		input.BusinessType,
		input.WebsiteGoals,
		input.CurrentWebsite,
		input.Phone,
	)

	if err := uc.Repo.Create(ctx, req); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist demo request: " + err.Error(),
		}
	}

	if uc.Email != nil {
		go func() {
			if err := uc.Email.SendDemoRequestConfirmation(req.Name, req.Email, req.BusinessName); err != nil {
				log.Printf("❌ Failed to send demo confirmation: %v", err)
			}
		}()
		go func() {
			if err := uc.Email.SendAdminDemoNotification(req); err != nil {
				log.Printf("❌ Failed to send admin notification: %v", err)
			}
		}()
	}

	return &SubmitDemoRequestOutput{
		Success:   true,
		Message:   "Your demo request has been received! Check your email for confirmation. We'll have your preview ready within 24 hours.",
		RequestID: req.ID,
	}, nil
}
