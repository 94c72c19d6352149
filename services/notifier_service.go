// services/notifier_service.go
package services

import (
	"fmt"
	"time"

	"localpro-backend/config"
	"localpro-backend/models"

	zlog "github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// NotifierService sends SMS notifications to customers and keeps an audit row
// per attempt. It stays inactive unless Twilio credentials are configured.
type NotifierService struct {
	db      *gorm.DB
	client  *twilio.RestClient
	from    string
	enabled bool
}

func NewNotifierService(db *gorm.DB, cfg *config.Config) *NotifierService {
	s := &NotifierService{
		db:      db,
		from:    cfg.TwilioPhoneNumber,
		enabled: cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "",
	}
	if s.enabled {
		s.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
	}
	return s
}

// SendWelcome sends the onboarding message after a customer is created.
// Fire and forget: failures are logged, never surfaced to the request.
func (s *NotifierService) SendWelcome(customer models.Customer) {
	if !s.enabled || customer.Phone == "" {
		return
	}

	message := fmt.Sprintf("Hi %s, welcome to LocalPro! Your account is ready and you can book local services right away.", customer.Name)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(customer.Phone)
	params.SetFrom(s.from)
	params.SetBody(message)

	status := "sent"
	errorMsg := ""

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		zlog.Error().Err(err).Str("phone", customer.Phone).Msg("send welcome sms")
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		zlog.Info().Str("phone", customer.Phone).Str("sid", *resp.Sid).Msg("welcome sms sent")
	}

	s.record(customer, message, status, errorMsg)
}

// record writes the audit row for a delivery attempt.
func (s *NotifierService) record(customer models.Customer, message, status, errorMsg string) {
	log := models.NotificationLog{
		CustomerID:   customer.ID,
		Phone:        customer.Phone,
		Message:      message,
		Status:       status,
		ErrorMessage: errorMsg,
		SentAt:       time.Now(),
	}
	if err := s.db.Create(&log).Error; err != nil {
		zlog.Error().Err(err).Str("customer", customer.ID.String()).Msg("log notification")
	}
}
