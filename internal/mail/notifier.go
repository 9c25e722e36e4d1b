// Package mail implements the transactional email notifier on top of an HTTP
// mail relay. The relay accepts JSON message submissions and performs the
// actual SMTP delivery; from this service's perspective it is a black box
// that either accepts a message or fails.
package mail

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/dkoval/college-resource-hub/internal/config"
	"github.com/dkoval/college-resource-hub/internal/logger"
	"github.com/go-resty/resty/v2"
)

// message is the JSON body accepted by the relay's submission endpoint.
type message struct {
	FromName    string `json:"from_name"`
	FromAddress string `json:"from_address"`
	To          string `json:"to"`
	Subject     string `json:"subject"`
	HTML        string `json:"html"`
}

// RelayNotifier delivers email through the configured HTTP mail relay.
// It implements service.Notifier.
type RelayNotifier struct {
	client *resty.Client

	fromName    string
	fromAddress string
	frontendURL string

	logger *logger.Logger
}

// NewRelayNotifier constructs a [RelayNotifier] from the mail configuration.
func NewRelayNotifier(cfg config.Mail, logger *logger.Logger) *RelayNotifier {
	client := resty.New().
		SetBaseURL(cfg.RelayURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")

	logger.Info().Str("relay_url", cfg.RelayURL).Msg("mail relay notifier created")

	return &RelayNotifier{
		client:      client,
		fromName:    cfg.FromName,
		fromAddress: cfg.FromAddress,
		frontendURL: cfg.FrontendURL,
		logger:      logger,
	}
}

// SendCode delivers a verification code email.
func (n *RelayNotifier) SendCode(ctx context.Context, email, code, name string) error {
	body, err := renderTemplate(otpTemplate, otpTemplateData{Name: name, Code: code})
	if err != nil {
		return fmt.Errorf("rendering otp email failed: %w", err)
	}

	return n.submit(ctx, message{
		FromName:    n.fromName,
		FromAddress: n.fromAddress,
		To:          email,
		Subject:     "Verify Your Account - College Resource Hub",
		HTML:        body,
	})
}

// SendWelcome delivers the post-verification welcome email.
func (n *RelayNotifier) SendWelcome(ctx context.Context, email, name string) error {
	body, err := renderTemplate(welcomeTemplate, welcomeTemplateData{Name: name, DashboardURL: n.frontendURL + "/dashboard"})
	if err != nil {
		return fmt.Errorf("rendering welcome email failed: %w", err)
	}

	return n.submit(ctx, message{
		FromName:    n.fromName,
		FromAddress: n.fromAddress,
		To:          email,
		Subject:     "Welcome to College Resource Hub!",
		HTML:        body,
	})
}

// submit posts a message to the relay. Any transport error or non-2xx
// response counts as a delivery failure.
func (n *RelayNotifier) submit(ctx context.Context, msg message) error {
	resp, err := n.client.R().
		SetContext(ctx).
		SetBody(msg).
		Post("/v1/messages")
	if err != nil {
		n.logger.Err(err).Str("to", msg.To).Msg("mail relay request failed")
		return fmt.Errorf("mail relay request failed: %w", err)
	}

	if resp.IsError() {
		n.logger.Error().Str("to", msg.To).Int("status", resp.StatusCode()).Msg("mail relay rejected message")
		return fmt.Errorf("mail relay rejected message: status %d", resp.StatusCode())
	}

	return nil
}

func renderTemplate(tmpl *template.Template, data any) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
