package usecase

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors carries every violated field, not just the first, so
// the form UI can highlight all of them in one round trip.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return "validation failed: " + strings.Join(msgs, ", ")
}

// FieldErrors flattens into the {field: [messages]} shape the form
// clients already consume.
func (v ValidationErrors) FieldErrors() map[string][]string {
	out := make(map[string][]string, len(v))
	for _, e := range v {
		out[e.Field] = append(out[e.Field], e.Message)
	}
	return out
}

var phonePattern = regexp.MustCompile(`^[\d\s\-+()]*$`)

func ValidateSubmitLeadInput(input SubmitLeadInput) ValidationErrors {
	var errs ValidationErrors

	errs = appendNameErrors(errs, input.Name)
	errs = appendEmailErrors(errs, input.Email)

	if len(input.Message) > 1000 {
		errs = append(errs, ValidationError{"message", "Message must be less than 1000 characters"})
	}

	return errs
}

func ValidateSubmitDemoRequestInput(input SubmitDemoRequestInput) ValidationErrors {
	var errs ValidationErrors

	errs = appendNameErrors(errs, input.Name)
	errs = appendEmailErrors(errs, input.Email)

	if len(strings.TrimSpace(input.BusinessName)) < 2 {
		errs = append(errs, ValidationError{"businessName", "Business name must be at least 2 characters"})
	} else if len(input.BusinessName) > 200 {
		errs = append(errs, ValidationError{"businessName", "Business name must be less than 200 characters"})
	}

	if strings.TrimSpace(input.BusinessType) == "" {
		errs = append(errs, ValidationError{"businessType", "Please select your business type"})
	}

	if len(input.WebsiteGoals) > 500 {
		errs = append(errs, ValidationError{"websiteGoals", "Website goals must be less than 500 characters"})
	}

	if input.CurrentWebsite != "" && !isValidURL(input.CurrentWebsite) {
		errs = append(errs, ValidationError{"currentWebsite", "Please enter a valid URL"})
	}

	if input.Phone != "" && !phonePattern.MatchString(input.Phone) {
		errs = append(errs, ValidationError{"phone", "Please enter a valid phone number"})
	}

	return errs
}

func ValidateSubmitContactInput(input SubmitContactInput) ValidationErrors {
	var errs ValidationErrors

	errs = appendNameErrors(errs, input.Name)
	errs = appendEmailErrors(errs, input.Email)

	if len(strings.TrimSpace(input.Subject)) < 5 {
		errs = append(errs, ValidationError{"subject", "Subject must be at least 5 characters"})
	} else if len(input.Subject) > 200 {
		errs = append(errs, ValidationError{"subject", "Subject must be less than 200 characters"})
	}

	if len(strings.TrimSpace(input.Message)) < 10 {
		errs = append(errs, ValidationError{"message", "Message must be at least 10 characters"})
	} else if len(input.Message) > 2000 {
		errs = append(errs, ValidationError{"message", "Message must be less than 2000 characters"})
	}

	return errs
}

func appendNameErrors(errs ValidationErrors, name string) ValidationErrors {
	if len(strings.TrimSpace(name)) < 2 {
		errs = append(errs, ValidationError{"name", "Name must be at least 2 characters"})
	} else if len(name) > 100 {
		errs = append(errs, ValidationError{"name", "Name must be less than 100 characters"})
	}
	return errs
}

func appendEmailErrors(errs ValidationErrors, email string) ValidationErrors {
	if strings.TrimSpace(email) == "" {
		errs = append(errs, ValidationError{"email", "Please enter a valid email address"})
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs = append(errs, ValidationError{"email", "Please enter a valid email address"})
	}
	return errs
}

func isValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
