package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/sitelab/sitelab-api/internal/entity"
	"github.com/sitelab/sitelab-api/internal/infra/http/middleware"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

type EmailSender struct {
	Host       string
	Port       int
	User       string
	Password   string
	From       string
	AdminEmail string
	AppURL     string

	// send is swapped out in tests; in production it dials SMTP.
	send func(m *gomail.Message) error
}

func NewEmailSender(host string, port int, user, password, from, adminEmail, appURL string) *EmailSender {
	s := &EmailSender{
		Host:       host,
		Port:       port,
		User:       user,
		Password:   password,
		From:       from,
		AdminEmail: adminEmail,
		AppURL:     appURL,
	}
	s.send = func(m *gomail.Message) error {
		d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
		return d.DialAndSend(m)
	}
	return s
}

func (s *EmailSender) SendLeadConfirmation(name, email string) error {
	return s.sendTemplate(email, "Thanks for Contacting SiteLab!", "lead_confirmation.html",
		leadConfirmationData{Name: name, Year: time.Now().Year()}, "")
}

func (s *EmailSender) SendAdminLeadNotification(lead *entity.Lead) error {
	data := adminLeadNotificationData{
		ID:           lead.ID,
		Name:         lead.Name,
		Email:        lead.Email,
		BusinessType: lead.BusinessType,
		Message:      lead.Message,
		Source:       lead.Source,
		Year:         time.Now().Year(),
	}
	return s.sendTemplate(s.AdminEmail, "🎯 New Lead: "+lead.Name, "admin_lead_notification.html", data, lead.Email)
}

func (s *EmailSender) SendDemoRequestConfirmation(name, email, businessName string) error {
	data := demoConfirmationData{Name: name, BusinessName: businessName, Year: time.Now().Year()}
	return s.sendTemplate(email, "🚀 Your SiteLab Demo is on the Way!", "demo_confirmation.html", data, "")
}

func (s *EmailSender) SendAdminDemoNotification(req *entity.DemoRequest) error {
	data := adminDemoNotificationData{
		ID:             req.ID,
		Name:           req.Name,
		Email:          req.Email,
		BusinessName:   req.BusinessName,
		BusinessType:   req.BusinessType,
		WebsiteGoals:   req.WebsiteGoals,
		CurrentWebsite: req.CurrentWebsite,
		Phone:          req.Phone,
		Year:           time.Now().Year(),
	}
	return s.sendTemplate(s.AdminEmail, "⏰ New Demo Request: "+req.BusinessName, "admin_demo_notification.html", data, req.Email)
}

func (s *EmailSender) SendContactNotification(name, email, subject, message string) error {
	data := contactNotificationData{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
		Year:    time.Now().Year(),
	}
	return s.sendTemplate(s.AdminEmail, "Contact Form: "+subject, "contact_notification.html", data, email)
}

func (s *EmailSender) SendContactAutoReply(name, email, message string) error {
	excerpt := message
	if len(excerpt) > 200 {
		excerpt = excerpt[:200] + "..."
	}
	data := contactAutoReplyData{
		Name:         name,
		Excerpt:      excerpt,
		PortfolioURL: s.AppURL + "/portfolio",
		Year:         time.Now().Year(),
	}
	return s.sendTemplate(email, "Thanks for Contacting SiteLab!", "contact_auto_reply.html", data, "")
}

func (s *EmailSender) sendTemplate(to, subject, templateName string, data any, replyTo string) error {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, templateName, data); err != nil {
		return fmt.Errorf("failed to render email template %s: %w", templateName, err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	if replyTo != "" {
		m.SetHeader("Reply-To", replyTo)
	}
	m.SetBody("text/html", body.String())

	if err := s.send(m); err != nil {
		middleware.RecordEmail("failed")
		return fmt.Errorf("failed to send email via SMTP: %w", err)
	}

	middleware.RecordEmail("sent")
	return nil
}
