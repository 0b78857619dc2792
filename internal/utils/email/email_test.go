package email

import (
	"context"
	"errors"
	"io"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/waste-service/internal/config"
	"github.com/Dan9191/waste-service/internal/models"
)

func testCollection() *models.Collection {
	weekly := "weekly"
	return &models.Collection{
		ID:               3,
		WasteType:        models.WasteRecycling,
		ScheduledDate:    time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC),
		TimeWindow:       "8AM - 10AM",
		IsRecurring:      true,
		RecurringPattern: &weekly,
	}
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestBuildCollectionReminder(t *testing.T) {
	user := &models.User{Username: "alex", FullName: "Alex Johnson", Email: "alex@example.com"}

	e := BuildCollectionReminder("noreply@example.com", user, testCollection())

	assert.Equal(t, []string{"alex@example.com"}, e.To)
	assert.Equal(t, "Upcoming Recycling Collection Reminder", e.Subject)
	body := string(e.Text)
	assert.True(t, strings.HasPrefix(body, "Dear Alex Johnson,"))
	assert.Contains(t, body, "Wednesday, 2025-03-12")
	assert.Contains(t, body, "8AM - 10AM")
	assert.Contains(t, body, "repeats weekly")
}

func TestSender_SendCollectionReminder(t *testing.T) {
	cfg := &config.Config{SMTPHost: "smtp.example.com", SMTPPort: "587", SenderEmail: "noreply@example.com"}
	sender := NewSender(cfg, quietLogger())

	var gotAddr string
	sender.send = func(e *email.Email, addr string, auth smtp.Auth) error {
		gotAddr = addr
		return nil
	}
	user := &models.User{Username: "alex", Email: "alex@example.com"}
	require.NoError(t, sender.SendCollectionReminder(context.Background(), user, testCollection()))
	assert.Equal(t, "smtp.example.com:587", gotAddr)

	sender.send = func(*email.Email, string, smtp.Auth) error { return errors.New("connection refused") }
	err := sender.SendCollectionReminder(context.Background(), user, testCollection())
	assert.ErrorContains(t, err, "failed to send email")
}

func TestLogNotifier(t *testing.T) {
	n := NewLogNotifier(quietLogger())
	assert.NoError(t, n.SendCollectionReminder(context.Background(), &models.User{ID: 1}, testCollection()))
}
