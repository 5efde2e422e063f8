package messaging

import (
	"context"
	"log/slog"
	"strings"

	"grooming-salon/internal/infra/metrics"
	"grooming-salon/internal/pkg/errs"

	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

const whatsappPrefix = "whatsapp:"

var ErrEmptyRecipient = errs.New("recipient phone number is empty")

// Channel reports how a number is reached: E.164 numbers ("+...") go over
// WhatsApp, everything else over SMS.
func Channel(phone string) string {
	if strings.HasPrefix(phone, "+") {
		return "whatsapp"
	}
	return "sms"
}

type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

type TwilioSender struct {
	api          messageCreator
	fromSMS      string
	fromWhatsApp string
	logger       *slog.Logger
}

func NewTwilioSender(api messageCreator, fromSMS, fromWhatsApp string, logger *slog.Logger) *TwilioSender {
	return &TwilioSender{api: api, fromSMS: fromSMS, fromWhatsApp: fromWhatsApp, logger: logger}
}

func (s *TwilioSender) Send(ctx context.Context, to, body string) error {
	to = strings.TrimSpace(to)
	if to == "" {
		return ErrEmptyRecipient
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetBody(body)
	if Channel(to) == "whatsapp" && s.fromWhatsApp != "" {
		params.SetTo(whatsappPrefix + to)
		params.SetFrom(whatsappPrefix + s.fromWhatsApp)
	} else {
		params.SetTo(to)
		params.SetFrom(s.fromSMS)
	}

	resp, err := s.api.CreateMessage(params)
	if err != nil {
		return errs.Wrapf(err, "failed to send message to %s", to)
	}
	if resp != nil && resp.Sid != nil {
		s.logger.DebugContext(ctx, "message sent", slog.String("to", to), slog.String("sid", *resp.Sid))
	}
	return nil
}

// LogSender stands in for Twilio when no credentials are configured.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, to, body string) error {
	s.logger.InfoContext(ctx, "message not sent, twilio disabled",
		slog.String("to", to),
		slog.String("body", body),
	)
	return nil
}

type sender interface {
	Send(ctx context.Context, to, body string) error
}

// InstrumentedSender counts every delivery attempt by channel and result.
type InstrumentedSender struct {
	next    sender
	metrics *metrics.Metrics
}

func NewInstrumentedSender(next sender, m *metrics.Metrics) *InstrumentedSender {
	return &InstrumentedSender{next: next, metrics: m}
}

func (s *InstrumentedSender) Send(ctx context.Context, to, body string) error {
	err := s.next.Send(ctx, to, body)
	result := "sent"
	if err != nil {
		result = "failed"
	}
	s.metrics.RemindersSent.WithLabelValues(Channel(to), result).Inc()
	return err
}
