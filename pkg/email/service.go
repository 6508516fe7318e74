package email

import (
	"fmt"
	"log"
)

// Service handles email notifications.
type Service struct {
	fromEmail string
	fromName  string
	baseURL   string
}

// NewService creates a new email service
func NewService(fromEmail, fromName, baseURL string) *Service {
	return &Service{
		fromEmail: fromEmail,
		fromName:  fromName,
		baseURL:   baseURL,
	}
}

// SendOpportunityClosed notifies an agent that one of their
// opportunities reached a terminal stage.
//
// TODO: wire a real provider; for now the email is logged, which is
// what the dev environment needs.
func (s *Service) SendOpportunityClosed(toEmail, toName, leadName, outcome string) error {
	dashboardURL := fmt.Sprintf("%s/pipeline", s.baseURL)

	log.Printf("📧 [EMAIL] Opportunity closed notification to: %s", toEmail)
	log.Printf("   From: %s <%s>", s.fromName, s.fromEmail)
	log.Printf("   Subject: Opportunity for %s closed as %s", leadName, outcome)
	log.Printf("   Hi %s, the opportunity for %s was closed as %q.", toName, leadName, outcome)
	log.Printf("   Review it at %s", dashboardURL)

	return nil
}
