package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/waste-service/internal/config"
	"github.com/Dan9191/waste-service/internal/models"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
	send   func(e *email.Email, addr string, auth smtp.Auth) error
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
		send: func(e *email.Email, addr string, auth smtp.Auth) error {
			return e.Send(addr, auth)
		},
	}
}

// BuildCollectionReminder renders the reminder e-mail for an upcoming pickup
func BuildCollectionReminder(from string, user *models.User, c *models.Collection) *email.Email {
	e := email.NewEmail()
	e.From = from
	e.To = []string{user.Email}
	e.Subject = fmt.Sprintf("Upcoming %s Collection Reminder", titleCase(string(c.WasteType)))

	name := user.FullName
	if name == "" {
		name = user.Username
	}
	body := fmt.Sprintf("Dear %s,\n\n", name)
	body += fmt.Sprintf(
		"Your %s collection is scheduled for %s between %s.\n"+
			"Please have your bins out before the collection window starts.\n",
		c.WasteType, c.ScheduledDate.Format("Monday, 2006-01-02"), c.TimeWindow,
	)
	if c.IsRecurring && c.RecurringPattern != nil {
		body += fmt.Sprintf("This collection repeats %s.\n", *c.RecurringPattern)
	}
	body += "\nBest regards,\nWaste Service"
	e.Text = []byte(body)
	return e
}

// SendCollectionReminder e-mails a user about an upcoming collection
func (s *Sender) SendCollectionReminder(ctx context.Context, user *models.User, c *models.Collection) error {
	e := BuildCollectionReminder(s.cfg.SenderEmail, user, c)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := s.send(e, addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", user.Email, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", user.Email, e.Subject)
	return nil
}

// LogNotifier records reminders in the log instead of sending them.
// Used when no SMTP host is configured.
type LogNotifier struct {
	logger *logrus.Logger
}

func NewLogNotifier(logger *logrus.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) SendCollectionReminder(ctx context.Context, user *models.User, c *models.Collection) error {
	n.logger.WithFields(logrus.Fields{
		"user_id":       user.ID,
		"collection_id": c.ID,
		"waste_type":    c.WasteType,
		"scheduled":     c.ScheduledDate,
	}).Info("Collection reminder (smtp disabled)")
	return nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
