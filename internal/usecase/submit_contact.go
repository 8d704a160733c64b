package usecase

import (
	"context"
	"log"
)

// SubmitContactUseCase handles the plain contact form. Nothing is
// persisted: the submission only produces the two emails.
type SubmitContactUseCase struct {
	Captcha CaptchaVerifier
	Email   EmailService
}

func NewSubmitContactUseCase(captcha CaptchaVerifier, email EmailService) *SubmitContactUseCase {
	return &SubmitContactUseCase{Captcha: captcha, Email: email}
}

func (uc *SubmitContactUseCase) Execute(ctx context.Context, input SubmitContactInput) (*SubmitContactOutput, error) {
	if input.CaptchaToken == "" {
		return nil, ErrCaptchaRequired
	}
	if !uc.Captcha.Verify(ctx, input.CaptchaToken) {
		return nil, ErrCaptchaFailed
	}

	if errs := ValidateSubmitContactInput(input); len(errs) > 0 {
		return nil, errs
	}

	if uc.Email != nil {
		go func() {
			if err := uc.Email.SendContactNotification(input.Name, input.Email, input.Subject, input.Message); err != nil {
				log.Printf("❌ Failed to send admin notification: %v", err)
			}
		}()
		go func() {
			if err := uc.Email.SendContactAutoReply(input.Name, input.Email, input.Message); err != nil {
				log.Printf("❌ Failed to send user auto-reply: %v", err)
			}
		}()
	}

	return &SubmitContactOutput{
		Success: true,
		Message: "Thank you for your message! We'll get back to you within 24 hours.",
	}, nil
}
