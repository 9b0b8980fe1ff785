package email

import (
	"errors"
	"strings"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeSender) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &resend.SendEmailResponse{Id: "email_1"}, nil
}

func newTestClient(s sender) *Client {
	logger := zerolog.Nop()
	return &Client{emails: s, from: "Shrine Office <office@example.com>", logger: &logger}
}

func TestRender_AllTemplates(t *testing.T) {
	for name, data := range PreviewData {
		html, err := Render(name, data)
		require.NoError(t, err, name)
		for _, v := range data {
			assert.Contains(t, html, strings.ReplaceAll(v, "'", "&#39;"), name)
		}
	}
}

func TestSendPrayerNotification(t *testing.T) {
	fake := &fakeSender{}
	c := newTestClient(fake)

	require.NoError(t, c.SendPrayerNotification("office@example.com", 9, "Maria", "<b>peace</b>", "now"))

	require.Len(t, fake.sent, 1)
	msg := fake.sent[0]
	assert.Equal(t, []string{"office@example.com"}, msg.To)
	assert.Equal(t, "Shrine Office <office@example.com>", msg.From)
	assert.Equal(t, "New prayer request from Maria", msg.Subject)
	assert.Contains(t, msg.Html, "&lt;b&gt;peace&lt;/b&gt;")
}

func TestSendEmail_ProviderError(t *testing.T) {
	c := newTestClient(&fakeSender{err: errors.New("rate limited")})

	err := c.SendMassBookingNotification("office@example.com", 1, "Jose", "Thanksgiving", "2025-02-01", 3)
	assert.ErrorContains(t, err, "failed to send email")
}
