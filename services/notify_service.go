// services/notify_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"

	"incorpx-backend/models"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// NotifyService pings the operator's phone when a client files a support
// ticket. Without Twilio credentials and an operator number it stays off.
type NotifyService struct {
	client        *twilio.RestClient
	operatorPhone string
}

func NewNotifyService() *NotifyService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	s := &NotifyService{
		operatorPhone: os.Getenv("OPERATOR_PHONE"),
	}
	if accountSid != "" && authToken != "" {
		s.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		})
	}
	return s
}

func (s *NotifyService) Enabled() bool {
	return s.client != nil && s.operatorPhone != ""
}

// TicketCreated sends a short alert about the new ticket.
func (s *NotifyService) TicketCreated(client models.Client, ticket models.Ticket) {
	if !s.Enabled() {
		return
	}

	message := fmt.Sprintf("New support ticket from %s (%s): %s",
		client.Name, client.Business, ticket.Subject)

	// Determine channel (WhatsApp if available, else SMS)
	channel := "sms"
	var to string

	// Use WhatsApp if phone is in E.164 format and starts with '+'
	if strings.HasPrefix(s.operatorPhone, "+") && os.Getenv("TWILIO_WHATSAPP_NUMBER") != "" {
		to = "whatsapp:" + s.operatorPhone
		channel = "whatsapp"
	} else {
		to = s.operatorPhone
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send ticket alert for %s: %v", client.ID, err)
		return
	}
	if resp.Sid != nil {
		log.Printf("Ticket alert sent, SID: %s", *resp.Sid)
	} else {
		log.Printf("Ticket alert sent, but no SID returned")
	}
}
