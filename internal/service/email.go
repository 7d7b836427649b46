package service

import (
	"fmt"
	"log"
	"math/rand"
	"net/smtp"
	"os"
	"strings"
	"sync/atomic"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dishlet/backend/internal/models"
)

// dailySuggestions are the rotating messages shown in the suggestion
// banner and mailed on request.
var dailySuggestions = []string{
	"Good Morning 🌞 Try a quick breakfast today!",
	"It’s lunch time 🍱 Fancy something fresh and light?",
	"It’s dinner time 🍲 Want a surprise recipe?",
	"Snack o’clock 🥨 How about a 5-minute bite?",
}

// EmailService sends notification emails over SMTP. When SMTP is not
// configured it logs the email instead, which keeps development and tests
// working without a mail server.
type EmailService struct {
	smtpHost     string
	smtpPort     string
	smtpUsername string
	smtpPassword string
	fromEmail    string
	fromName     string

	suggestionIndex atomic.Uint32
}

func NewEmailService() *EmailService {
	s := &EmailService{
		smtpHost:     os.Getenv("SMTP_HOST"),
		smtpPort:     os.Getenv("SMTP_PORT"),
		smtpUsername: os.Getenv("SMTP_USERNAME"),
		smtpPassword: os.Getenv("SMTP_PASSWORD"),
		fromEmail:    os.Getenv("EMAIL_FROM"),
		fromName:     os.Getenv("EMAIL_FROM_NAME"),
	}
	// The rotation starts at a random message, like the app banner.
	s.suggestionIndex.Store(uint32(rand.Intn(len(dailySuggestions))))
	return s
}

// NextSuggestion returns the current suggestion message and rotates to
// the next one.
func (s *EmailService) NextSuggestion() string {
	i := s.suggestionIndex.Add(1) - 1
	return dailySuggestions[int(i)%len(dailySuggestions)]
}

// SendDailySuggestion mails the given suggestion to the user.
func (s *EmailService) SendDailySuggestion(user *models.User, message string) error {
	body := fmt.Sprintf("%s\n\nOpen Dishlet to cook something delicious today!", message)
	return s.SendEmail(user.Email, "Dishlet Daily Suggestion", body)
}

// SendWelcomeEmail greets a newly registered user.
func (s *EmailService) SendWelcomeEmail(user *models.User) error {
	caser := cases.Title(language.English)
	first := user.FullName
	if i := strings.IndexByte(first, ' '); i > 0 {
		first = first[:i]
	}
	body := fmt.Sprintf("Welcome to Dishlet, %s!\n\nTell us what's in your kitchen and we'll cook up ideas.", caser.String(first))
	return s.SendEmail(user.Email, "Welcome to Dishlet!", body)
}

func (s *EmailService) SendEmail(to, subject, body string) error {
	if s.smtpHost == "" || s.smtpPort == "" {
		log.Printf("[EmailService] SMTP not configured, logging email instead")
		log.Printf("[EmailService] To: %s", to)
		log.Printf("[EmailService] Subject: %s", subject)
		log.Printf("[EmailService] Body:\n%s", body)
		return nil
	}

	auth := smtp.PlainAuth("", s.smtpUsername, s.smtpPassword, s.smtpHost)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	msg := []byte(fmt.Sprintf("To: %s\r\n"+
		"From: %s\r\n"+
		"Subject: %s\r\n"+
		"Content-Type: text/plain; charset=UTF-8\r\n"+
		"\r\n"+
		"%s\r\n", to, from, subject, body))

	addr := fmt.Sprintf("%s:%s", s.smtpHost, s.smtpPort)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
