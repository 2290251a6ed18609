package notify

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"github.com/CosmoTheDev/agent-notify/internal/config"
	"github.com/CosmoTheDev/agent-notify/internal/event"
)

const smtpTimeout = 10 * time.Second

// EmailChannel sends notifications via SMTP with STARTTLS.
type EmailChannel struct {
	cfg config.EmailConfig
}

// NewEmail creates an EmailChannel from cfg.
func NewEmail(cfg config.EmailConfig) *EmailChannel { return &EmailChannel{cfg: cfg} }

func (e *EmailChannel) Name() string  { return "email" }
func (e *EmailChannel) Enabled() bool { return e.cfg.Enabled }

func (e *EmailChannel) Ready() bool {
	return e.cfg.SMTPHost != "" && e.cfg.Username != "" &&
		e.cfg.Password != "" && e.cfg.ToAddr != ""
}

func (e *EmailChannel) Send(ctx context.Context, evt event.Event) error {
	if !e.Ready() {
		return nil
	}

	from := e.cfg.FromAddr
	if from == "" {
		from = e.cfg.Username
	}
	port := e.cfg.SMTPPort
	if port == 0 {
		port = 587
	}
	addr := fmt.Sprintf("%s:%d", e.cfg.SMTPHost, port)

	d := net.Dialer{Timeout: smtpTimeout}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("email: dial: %w", err)
	}
	// Deadline covers the whole SMTP session so a stalled server cannot
	// hold up process exit.
	_ = conn.SetDeadline(time.Now().Add(smtpTimeout))

	client, err := smtp.NewClient(conn, e.cfg.SMTPHost)
	if err != nil {
		conn.Close()
		return err
	}
	defer client.Close()

	if err := client.StartTLS(&tls.Config{ServerName: e.cfg.SMTPHost}); err != nil {
		return fmt.Errorf("email: starttls: %w", err)
	}
	auth := smtp.PlainAuth("", e.cfg.Username, e.cfg.Password, e.cfg.SMTPHost)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("email: auth: %w", err)
	}
	if err := client.Mail(from); err != nil {
		return err
	}
	if err := client.Rcpt(e.cfg.ToAddr); err != nil {
		return err
	}
	wc, err := client.Data()
	if err != nil {
		return err
	}
	msg := fmt.Sprintf("Subject: [Agent Notifier] %s\r\nFrom: %s\r\nTo: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		Title(evt), from, e.cfg.ToAddr, Body(evt))
	if _, err := fmt.Fprint(wc, msg); err != nil {
		return err
	}
	if err := wc.Close(); err != nil {
		return err
	}
	return client.Quit()
}
