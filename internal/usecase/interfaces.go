package usecase

import (
	"context"
	"time"

	"github.com/sitelab/sitelab-api/internal/entity"
)

// ListOptions drives the paginated admin listings. Zero Limit means the
// repository default (50). Ordering is by createdAt descending unless told
// otherwise.
type ListOptions struct {
	Status  string
	Limit   int
	Offset  int
	OrderBy string // "created_at" or "updated_at"
	Order   string // "asc" or "desc"
}

// LeadUpdate is a partial update; nil fields are left untouched.
type LeadUpdate struct {
	Status *string
}

type DemoRequestUpdate struct {
	Status         *string
	DemoURL        *string
	FollowUpSentAt *time.Time
}

type LeadStats struct {
	Total     int `json:"total"`
	New       int `json:"new"`
	Contacted int `json:"contacted"`
	Qualified int `json:"qualified"`
	Converted int `json:"converted"`
	ThisMonth int `json:"thisMonth"`
}

type DemoRequestStats struct {
	Total          int     `json:"total"`
	Pending        int     `json:"pending"`
	InProgress     int     `json:"inProgress"`
	Delivered      int     `json:"delivered"`
	Converted      int     `json:"converted"`
	ThisMonth      int     `json:"thisMonth"`
	ConversionRate float64 `json:"conversionRate"`
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	List(ctx context.Context, opts ListOptions) ([]*entity.Lead, int, error)
	Update(ctx context.Context, id string, update LeadUpdate) (*entity.Lead, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*LeadStats, error)
}

type DemoRequestRepositoryInterface interface {
	Create(ctx context.Context, req *entity.DemoRequest) error
	FindByID(ctx context.Context, id string) (*entity.DemoRequest, error)
	List(ctx context.Context, opts ListOptions) ([]*entity.DemoRequest, int, error)
	Update(ctx context.Context, id string, update DemoRequestUpdate) (*entity.DemoRequest, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*DemoRequestStats, error)
}

type AdminUserRepositoryInterface interface {
	FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error)
}

type PortfolioRepositoryInterface interface {
	List(ctx context.Context, featuredOnly bool) ([]*entity.PortfolioItem, error)
}

// CaptchaVerifier confirms a human-verification token with the external
// provider. A single round trip; network failures count as "not verified".
type CaptchaVerifier interface {
	Verify(ctx context.Context, token string) bool
}

// EmailService delivers the two best-effort messages each intake fires.
// Callers never let a returned error reach the submitter.
type EmailService interface {
	SendLeadConfirmation(name, email string) error
	SendAdminLeadNotification(lead *entity.Lead) error
	SendDemoRequestConfirmation(name, email, businessName string) error
	SendAdminDemoNotification(req *entity.DemoRequest) error
	SendContactNotification(name, email, subject, message string) error
	SendContactAutoReply(name, email, message string) error
}
