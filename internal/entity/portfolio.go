package entity

import "time"

// PortfolioItem is seeded content shown on the public portfolio page.
// The admin surface never mutates these.
type PortfolioItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	ClientName  string    `json:"clientName"`
	Industry    string    `json:"industry"`
	Problem     string    `json:"problem"`
	Solution    string    `json:"solution"`
	Outcome     string    `json:"outcome"`
	ImageURL    string    `json:"imageUrl"`
	BeforeImage string    `json:"beforeImage,omitempty"`
	AfterImage  string    `json:"afterImage,omitempty"`
	LiveURL     string    `json:"liveUrl,omitempty"`
	Featured    bool      `json:"featured"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
}
