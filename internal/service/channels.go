package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/smtp"
	"time"

	"parksmart/internal/entities"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Channel is one interchangeable confirmation transport. Exactly one is
// active in a deployment; when none is configured the dispatcher falls back
// to the simulated outcome.
type Channel interface {
	Name() string
	Send(ctx context.Context, msg entities.EmailMessage) error
}

// SendGridChannel delivers through the SendGrid API.
type SendGridChannel struct {
	apiKey string
}

func NewSendGridChannel(apiKey string) *SendGridChannel {
	return &SendGridChannel{apiKey: apiKey}
}

func (c *SendGridChannel) Name() string { return "sendgrid" }

func (c *SendGridChannel) Send(_ context.Context, msg entities.EmailMessage) error {
	if c.apiKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY not set")
	}

	from := sgmail.NewEmail(msg.SenderName, msg.Sender)
	to := sgmail.NewEmail(msg.RecipientName, msg.Recipient)
	message := sgmail.NewSingleEmail(from, msg.Subject, to, msg.Plain, msg.HTML)

	client := sendgrid.NewSendClient(c.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("send via SendGrid: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("SendGrid returned status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}

// SMTPChannel delivers through a plain SMTP relay.
type SMTPChannel struct {
	host string
	port string
	user string
	pass string
}

func NewSMTPChannel(host, port, user, pass string) *SMTPChannel {
	return &SMTPChannel{host: host, port: port, user: user, pass: pass}
}

func (c *SMTPChannel) Name() string { return "smtp" }

func (c *SMTPChannel) Send(_ context.Context, msg entities.EmailMessage) error {
	headers := fmt.Sprintf(
		"From: %q <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n",
		msg.SenderName, msg.Sender, msg.Recipient, msg.Subject,
	)
	body := []byte(headers + msg.HTML)

	auth := smtp.PlainAuth("", c.user, c.pass, c.host)
	addr := c.host + ":" + c.port
	if err := smtp.SendMail(addr, auth, msg.Sender, []string{msg.Recipient}, body); err != nil {
		return fmt.Errorf("send via SMTP: %w", err)
	}
	return nil
}

// RelayChannel posts the message to an HTTP relay endpoint accepting
// {to, subject, html, from}.
type RelayChannel struct {
	url    string
	client *http.Client
}

func NewRelayChannel(url string) *RelayChannel {
	return &RelayChannel{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *RelayChannel) Name() string { return "relay" }

func (c *RelayChannel) Send(ctx context.Context, msg entities.EmailMessage) error {
	payload, err := json.Marshal(map[string]string{
		"to":      msg.Recipient,
		"subject": msg.Subject,
		"html":    msg.HTML,
		"from":    fmt.Sprintf("%q <%s>", msg.SenderName, msg.Sender),
	})
	if err != nil {
		return fmt.Errorf("encode relay payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("post to relay: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("relay returned status %d", resp.StatusCode)
	}
	return nil
}
