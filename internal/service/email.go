package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
	baseURL  string
}

func NewEmailService(host string, port int, username, password, from, baseURL string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		baseURL:  baseURL,
	}
}

func (s *emailService) SendPasswordReset(ctx context.Context, email, token string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Password Reset - UniRent")

	resetLink := fmt.Sprintf("%s/new_password?token=%s", s.baseURL, token)
	body := fmt.Sprintf("Click the link to reset your password: %s\n\nThe link is valid for one hour. If you did not request a reset, you can ignore this email.\n\nBest regards,\nThe UniRent Team", resetLink)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}

	return nil
}
