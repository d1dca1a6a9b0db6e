// Package email sends store notification mail through the Resend HTTP API.
// Orders still flow through WhatsApp; mail is a courtesy copy for the store
// owner, so every send site treats failure as non-fatal.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Service interface {
	// SendOrderNotification tells the store owner a new order landed.
	SendOrderNotification(ctx context.Context, orderID, customerName string, itemCount int, total float64) error
}

type resendService struct {
	apiKey    string
	fromEmail string
	toEmail   string
	baseURL   string
}

// NewResendServiceFromEnv builds the Resend-backed service, or the noop one
// when RESEND_API_KEY is not configured. Mail is optional infrastructure.
func NewResendServiceFromEnv() Service {
	apiKey := strings.Trim(os.Getenv("RESEND_API_KEY"), "\"")
	to := strings.TrimSpace(os.Getenv("STORE_NOTIFY_EMAIL"))
	if apiKey == "" || to == "" {
		return &noopService{}
	}

	from := strings.TrimSpace(strings.Trim(os.Getenv("RESEND_FROM_EMAIL"), "\""))
	if from == "" {
		from = "onboarding@resend.dev"
	}

	return &resendService{
		apiKey:    apiKey,
		fromEmail: from,
		toEmail:   to,
		baseURL:   "https://api.resend.com",
	}
}

func NewNoopService() Service {
	return &noopService{}
}

func (s *resendService) SendOrderNotification(ctx context.Context, orderID, customerName string, itemCount int, total float64) error {
	html := fmt.Sprintf(
		"<p>New order <strong>%s</strong> from %s.</p><p>%d item(s), total ₹%s.</p><p>Check WhatsApp for the customer's message.</p>",
		orderID,
		customerName,
		itemCount,
		decimal.NewFromFloat(total).String(),
	)
	return s.send(ctx, s.toEmail, fmt.Sprintf("New order %s", orderID), html)
}

func (s *resendService) send(ctx context.Context, to, subject, html string) error {
	payload := map[string]any{
		"from":    s.fromEmail,
		"to":      []string{to},
		"subject": subject,
		"html":    html,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		msg := strings.TrimSpace(string(respBody))
		if len(msg) > 500 {
			msg = msg[:500]
		}
		if msg == "" {
			return fmt.Errorf("resend API returned status %d", resp.StatusCode)
		}
		return fmt.Errorf("resend API returned status %d: %s", resp.StatusCode, msg)
	}

	return nil
}

type noopService struct{}

func (s *noopService) SendOrderNotification(_ context.Context, _, _ string, _ int, _ float64) error {
	return nil
}
