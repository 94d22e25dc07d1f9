// Package notify sends booking confirmations.
package notify

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"io"
	"strings"

	"moviebooking/internal/event"
	"moviebooking/pkg/utils"

	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

const qrSize = 256

type Mailer interface {
	SendTicketConfirmation(ctx context.Context, ev event.TicketBookedEvent) error
}

// NewMailer returns an SMTP mailer, or a log-only mailer when no SMTP host
// is configured.
func NewMailer(config utils.EmailConfig, log *zap.Logger) Mailer {
	if config.Host == "" {
		return &logMailer{log: log.With(zap.String("mailer", "log"))}
	}
	return &smtpMailer{
		dialer: gomail.NewDialer(config.Host, config.Port, config.User, config.Password),
		from:   config.From,
		log:    log.With(zap.String("mailer", "smtp")),
	}
}

// TicketQRCode renders the ticket reference as a PNG QR code.
func TicketQRCode(ev event.TicketBookedEvent) ([]byte, error) {
	content := fmt.Sprintf("ticket:%s|movie:%s|theatre:%s|seats:%s",
		ev.TicketID, ev.MovieName, ev.TheatreName, strings.Join(ev.SeatNumbers, ","))

	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("build qr code: %w", err)
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, qr.Image(qrSize)); err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return buf.Bytes(), nil
}

func confirmationBody(ev event.TicketBookedEvent) string {
	return fmt.Sprintf(
		"<p>Hi %s,</p><p>%s</p><p>Movie: <b>%s</b><br>Theatre: %s<br>Tickets: %d<br>Seats: %s</p>"+
			"<p>Show the attached QR code at the entrance.</p>",
		ev.Username, ev.Message, ev.MovieName, ev.TheatreName, ev.NoOfTickets,
		strings.Join(ev.SeatNumbers, ", "),
	)
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
	log    *zap.Logger
}

func (m *smtpMailer) SendTicketConfirmation(_ context.Context, ev event.TicketBookedEvent) error {
	if ev.Email == "" {
		m.log.Warn("No email address for booking, skipping", zap.String("username", ev.Username))
		return nil
	}

	qr, err := TicketQRCode(ev)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", ev.Email)
	msg.SetHeader("Subject", fmt.Sprintf("Booking confirmed: %s", ev.MovieName))
	msg.SetBody("text/html", confirmationBody(ev))

	filename := fmt.Sprintf("ticket_%s.png", ev.TicketID)
	msg.Attach(filename, gomail.Rename(filename), gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(qr)
		return err
	}))

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.log.Error("Failed to send confirmation", zap.Error(err), zap.String("to", ev.Email))
		return fmt.Errorf("send confirmation to %s: %w", ev.Email, err)
	}

	m.log.Info("Confirmation sent", zap.String("to", ev.Email), zap.String("ticket_id", ev.TicketID))
	return nil
}

type logMailer struct {
	log *zap.Logger
}

func (m *logMailer) SendTicketConfirmation(_ context.Context, ev event.TicketBookedEvent) error {
	m.log.Info("Booking confirmation (smtp disabled)",
		zap.String("username", ev.Username),
		zap.String("email", ev.Email),
		zap.String("ticket_id", ev.TicketID),
		zap.String("movie_name", ev.MovieName),
	)
	return nil
}
