package service

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html"
	"mime"
	"net/mail"
	"net/smtp"
	"strings"

	"github.com/uniquemj/ecommerce-api/internal/config"
	"github.com/uniquemj/ecommerce-api/internal/models"
)

// EmailService sends transactional mail over SMTP.
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService creates the email service.
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendOrderConfirmation mails the order summary to the customer.
func (s *EmailService) SendOrderConfirmation(toEmail string, order *models.Order) error {
	if order == nil {
		return ErrOrderNotFound
	}
	subject := fmt.Sprintf("Order %s confirmed", order.OrderNumber)
	return s.sendHTMLEmail(toEmail, subject, buildOrderConfirmationHTML(order))
}

// buildOrderConfirmationHTML renders the per-order summary. Product names
// come from seller input and are escaped.
func buildOrderConfirmationHTML(order *models.Order) string {
	var buf bytes.Buffer
	buf.WriteString("<html><body>")
	buf.WriteString("<p>Thank you for your order.</p>")
	fmt.Fprintf(&buf, "<p>Order number: <strong>%s</strong><br>Payment method: %s</p>",
		html.EscapeString(order.OrderNumber), html.EscapeString(order.PaymentMethod))
	buf.WriteString(`<table><tr><th align="left">Item</th><th align="right">Qty</th><th align="right">Unit price</th></tr>`)
	for _, item := range order.Items {
		name := "Order item"
		if item.Variant != nil && item.Variant.Product != nil {
			name = item.Variant.Product.Name
		}
		fmt.Fprintf(&buf, `<tr><td>%s</td><td align="right">%d</td><td align="right">%s</td></tr>`,
			html.EscapeString(name), item.Quantity, item.UnitPrice.String())
	}
	buf.WriteString("</table>")
	fmt.Fprintf(&buf, "<p>Total (incl. delivery): <strong>%s</strong></p>", order.TotalAmount.String())
	buf.WriteString("</body></html>")
	return buf.String()
}

func (s *EmailService) sendHTMLEmail(toEmail, subject, body string) error {
	if s.cfg == nil || !s.cfg.Enabled {
		return ErrEmailDisabled
	}
	if s.cfg.Host == "" || s.cfg.Port == 0 || s.cfg.From == "" {
		return ErrEmailNotConfigured
	}
	if _, err := mail.ParseAddress(toEmail); err != nil {
		return ErrInvalidEmail
	}

	from := buildFromAddress(s.cfg.From, s.cfg.FromName)
	msg := buildEmailMessage(from, toEmail, subject, body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.Username != "" || s.cfg.Password != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if s.cfg.UseSSL {
		return sendMailWithSSL(addr, auth, s.cfg.Host, s.cfg.From, []string{toEmail}, []byte(msg))
	}
	if s.cfg.UseTLS {
		return sendMailWithStartTLS(addr, auth, s.cfg.Host, s.cfg.From, []string{toEmail}, []byte(msg))
	}
	return sendMailPlain(addr, auth, s.cfg.Host, s.cfg.From, []string{toEmail}, []byte(msg))
}

func buildFromAddress(from, name string) string {
	if strings.TrimSpace(name) == "" {
		return from
	}
	encoded := mime.QEncoding.Encode("UTF-8", name)
	return (&mail.Address{Name: encoded, Address: from}).String()
}

func buildEmailMessage(from, to, subject, body string) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", subject))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(body)
	return buf.String()
}

func sendMailWithSSL(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: host})
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, host)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}
	return sendSMTPData(client, from, to, msg)
}

func sendMailWithStartTLS(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.StartTLS(&tls.Config{ServerName: host}); err != nil {
		return err
	}
	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}
	return sendSMTPData(client, from, to, msg)
}

func sendMailPlain(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}
	return sendSMTPData(client, from, to, msg)
}

func sendSMTPData(client *smtp.Client, from string, to []string, msg []byte) error {
	if err := client.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}
