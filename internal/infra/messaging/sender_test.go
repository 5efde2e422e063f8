//go:build unit

package messaging

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"grooming-salon/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type fakeAPI struct {
	sent []*twilioApi.CreateMessageParams
	err  error
}

func (f *fakeAPI) CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	f.sent = append(f.sent, params)
	if f.err != nil {
		return nil, f.err
	}
	sid := "SM123"
	return &twilioApi.ApiV2010Message{Sid: &sid}, nil
}

func TestTwilioSender_Send(t *testing.T) {
	tests := []struct {
		name         string
		fromWhatsApp string
		to           string
		wantTo       string
		wantFrom     string
	}{
		{
			name:     "domestic number goes over sms",
			to:       "010-1234-5678",
			wantTo:   "010-1234-5678",
			wantFrom: "+15550001",
		},
		{
			name:         "e164 number goes over whatsapp",
			fromWhatsApp: "+15550002",
			to:           "+821012345678",
			wantTo:       "whatsapp:+821012345678",
			wantFrom:     "whatsapp:+15550002",
		},
		{
			name:     "e164 without whatsapp sender falls back to sms",
			to:       "+821012345678",
			wantTo:   "+821012345678",
			wantFrom: "+15550001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{}
			s := NewTwilioSender(api, "+15550001", tt.fromWhatsApp, slog.Default())

			require.NoError(t, s.Send(context.Background(), tt.to, "hello"))
			require.Len(t, api.sent, 1)
			assert.Equal(t, tt.wantTo, *api.sent[0].To)
			assert.Equal(t, tt.wantFrom, *api.sent[0].From)
			assert.Equal(t, "hello", *api.sent[0].Body)
		})
	}
}

func TestTwilioSender_Errors(t *testing.T) {
	t.Run("blank recipient", func(t *testing.T) {
		api := &fakeAPI{}
		s := NewTwilioSender(api, "+15550001", "", slog.Default())

		err := s.Send(context.Background(), "  ", "hello")
		assert.ErrorIs(t, err, ErrEmptyRecipient)
		assert.Empty(t, api.sent)
	})

	t.Run("api failure", func(t *testing.T) {
		api := &fakeAPI{err: errors.New("invalid number")}
		s := NewTwilioSender(api, "+15550001", "", slog.Default())

		assert.Error(t, s.Send(context.Background(), "010-1234-5678", "hello"))
	})
}

func TestInstrumentedSender(t *testing.T) {
	m := metrics.New()
	ok := NewInstrumentedSender(NewLogSender(slog.Default()), m)
	failing := NewInstrumentedSender(NewTwilioSender(&fakeAPI{err: errors.New("boom")}, "+1", "", slog.Default()), m)

	require.NoError(t, ok.Send(context.Background(), "+821012345678", "hi"))
	require.Error(t, failing.Send(context.Background(), "010-1234-5678", "hi"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RemindersSent.WithLabelValues("whatsapp", "sent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RemindersSent.WithLabelValues("sms", "failed")))
}
