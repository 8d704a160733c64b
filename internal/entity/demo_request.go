package entity

import (
	"time"

	"github.com/google/uuid"
)

// Demo request statuses. EXPIRED is manual: nothing in the system expires
// a request on a timer, the 24-hour promise is marketing copy.
const (
	DemoStatusPending    = "PENDING"
	DemoStatusInProgress = "IN_PROGRESS"
	DemoStatusDelivered  = "DELIVERED"
	DemoStatusConverted  = "CONVERTED"
	DemoStatusExpired    = "EXPIRED"
)

type DemoRequest struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	BusinessName   string     `json:"businessName"`
	BusinessType   string     `json:"businessType"`
	WebsiteGoals   string     `json:"websiteGoals,omitempty"`
	CurrentWebsite string     `json:"currentWebsite,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	Status         string     `json:"status"`
	DemoURL        string     `json:"demoUrl,omitempty"`
	FollowUpSentAt *time.Time `json:"followUpSentAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func NewDemoRequest(name, email, businessName, businessType, websiteGoals, currentWebsite, phone string) *DemoRequest {
	now := time.Now().UTC()
	return &DemoRequest{
		ID:             uuid.New().String(),
		Name:           name,
		Email:          email,
		BusinessName:   businessName,
		BusinessType:   businessType,
		WebsiteGoals:   websiteGoals,
		CurrentWebsite: currentWebsite,
		Phone:          phone,
		Status:         DemoStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func IsValidDemoStatus(s string) bool {
	switch s {
	case DemoStatusPending, DemoStatusInProgress, DemoStatusDelivered, DemoStatusConverted, DemoStatusExpired:
		return true
	}
	return false
}
