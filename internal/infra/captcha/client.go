package captcha

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultVerifyURL = "https://hcaptcha.com/siteverify"

// Client checks hCaptcha tokens server-side. One round trip, no retry;
// any failure counts as "not verified".
type Client struct {
	secretKey   string
	verifyURL   string
	development bool
	httpClient  *http.Client
}

type verifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

func NewClient(secretKey string, development bool) *Client {
	return &Client{
		secretKey:   secretKey,
		verifyURL:   defaultVerifyURL,
		development: development,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithURL is for tests that point the verifier at a local server.
func NewClientWithURL(secretKey, verifyURL string, development bool) *Client {
	c := NewClient(secretKey, development)
	c.verifyURL = verifyURL
	return c
}

func (c *Client) Verify(ctx context.Context, token string) bool {
	if c.secretKey == "" {
		log.Println("⚠️ Captcha: HCAPTCHA_SECRET_KEY is not configured")
		if c.development {
			log.Println("⚠️ Captcha: bypassing verification in development")
			return true
		}
		return false
	}

	form := url.Values{
		"secret":   {c.secretKey},
		"response": {token},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		log.Printf("❌ Captcha: failed to build request: %v", err)
		return false
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("❌ Captcha: verification request failed: %v", err)
		return false
	}
	defer resp.Body.Close()

	var result verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Printf("❌ Captcha: failed to parse response: %v", err)
		return false
	}

	if !result.Success {
		log.Printf("❌ Captcha: verification failed: %v", result.ErrorCodes)
		return false
	}

	return true
}
