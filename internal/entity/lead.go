package entity

import (
	"time"

	"github.com/google/uuid"
)

// Lead statuses. The admin UI decides which transitions to offer; the
// store never changes a status on its own.
const (
	LeadStatusNew       = "NEW"
	LeadStatusContacted = "CONTACTED"
	LeadStatusQualified = "QUALIFIED"
	LeadStatusConverted = "CONVERTED"
	LeadStatusClosed    = "CLOSED"
)

type Lead struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	BusinessType string    `json:"businessType,omitempty"`
	Message      string    `json:"message,omitempty"`
	Source       string    `json:"source"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func NewLead(name, email, businessType, message, source string) *Lead {
	if source == "" {
		source = "website"
	}
	now := time.Now().UTC()
	return &Lead{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		BusinessType: businessType,
		Message:      message,
		Source:       source,
		Status:       LeadStatusNew,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func IsValidLeadStatus(s string) bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusConverted, LeadStatusClosed:
		return true
	}
	return false
}
