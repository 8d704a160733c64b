package usecase

type SubmitLeadInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	BusinessType string `json:"businessType"`
	Message      string `json:"message"`
	Source       string `json:"source"`
	CaptchaToken string `json:"captchaToken"`
}

type SubmitLeadOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	LeadID  string `json:"leadId"`
}

type SubmitDemoRequestInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	BusinessName   string `json:"businessName"`
	BusinessType   string `json:"businessType"`
	WebsiteGoals   string `json:"websiteGoals"`
	CurrentWebsite string `json:"currentWebsite"`
	Phone          string `json:"phone"`
	CaptchaToken   string `json:"captchaToken"`
}

type SubmitDemoRequestOutput struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
}

type SubmitContactInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Subject      string `json:"subject"`
	Message      string `json:"message"`
	CaptchaToken string `json:"captchaToken"`
}

type SubmitContactOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
