package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTripFunc intercepts discordgo HTTP calls
type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestDiscordNotifier_ExecutesWebhook(t *testing.T) {
	session, err := discordgo.New("")
	require.NoError(t, err)

	var captured *http.Request
	var body []byte
	session.Client = &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		captured = req
		body, _ = io.ReadAll(req.Body)
		return &http.Response{
			StatusCode: http.StatusNoContent,
			Body:       io.NopCloser(bytes.NewBufferString("")),
			Header:     make(http.Header),
		}, nil
	})}

	n := NewDiscordNotifierWithSession(session, "123", "secret")
	reminder := Reminder{Title: ReminderTitle, Body: "Lakers vs Celtics starts soon. Make your prediction!", Sport: "Basketball"}
	require.NoError(t, n.Notify(context.Background(), reminder))

	require.NotNil(t, captured)
	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Contains(t, captured.URL.Path, "/webhooks/123/secret")

	var params discordgo.WebhookParams
	require.NoError(t, json.Unmarshal(body, &params))
	require.Len(t, params.Embeds, 1)
	assert.Equal(t, ReminderTitle, params.Embeds[0].Title)
	assert.Equal(t, reminder.Body, params.Embeds[0].Description)
	assert.Equal(t, SinkDiscord, n.Name())
}

func TestDiscordNotifier_ReportsFailure(t *testing.T) {
	session, err := discordgo.New("")
	require.NoError(t, err)
	session.Client = &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Body:       io.NopCloser(bytes.NewBufferString(`{"message":"Unknown Webhook","code":10015}`)),
			Header:     make(http.Header),
		}, nil
	})}

	err = NewDiscordNotifierWithSession(session, "1", "t").Notify(context.Background(), Reminder{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrContextDiscordExecute)
}

func TestLogNotifier(t *testing.T) {
	var n Notifier = LogNotifier{}
	assert.NoError(t, n.Notify(context.Background(), Reminder{Title: ReminderTitle}))
	assert.Equal(t, SinkLog, n.Name())
}
