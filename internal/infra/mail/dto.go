package mail

type leadConfirmationData struct {
	Name string
	Year int
}

type adminLeadNotificationData struct {
	ID           string
	Name         string
	Email        string
	BusinessType string
	Message      string
	Source       string
	Year         int
}

type demoConfirmationData struct {
	Name         string
	BusinessName string
	Year         int
}

type adminDemoNotificationData struct {
	ID             string
	Name           string
	Email          string
	BusinessName   string
	BusinessType   string
	WebsiteGoals   string
	CurrentWebsite string
	Phone          string
	Year           int
}

type contactNotificationData struct {
	Name    string
	Email   string
	Subject string
	Message string
	Year    int
}

type contactAutoReplyData struct {
	Name         string
	Excerpt      string
	PortfolioURL string
	Year         int
}
