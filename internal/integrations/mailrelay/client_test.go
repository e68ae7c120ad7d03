package mailrelay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(
		server.URL,
		"test-access-key",
		"admin@example.com",
		"Test Team",
		"noreply@example.com",
		5*time.Second,
		noopLogger{},
	)
	return client, server
}

func TestSendBookingEmails_BothDelivered(t *testing.T) {
	var requests []relayRequest

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req relayRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		requests = append(requests, req)

		json.NewEncoder(w).Encode(relayResponse{Success: true})
	})

	result, err := client.SendBookingEmails(context.Background(), BookingNotification{
		Name:      "Ivan Petrov",
		Email:     "ivan@example.com",
		Phone:     "+79001234567",
		DateKey:   "2026-09-15",
		TimeLabel: "10:30 AM",
		Message:   "Interested in the operator platform",
	})

	require.NoError(t, err)
	assert.True(t, result.AdminSent)
	assert.True(t, result.UserSent)
	assert.True(t, result.Ok())

	require.Len(t, requests, 2)

	admin := requests[0]
	assert.Equal(t, "test-access-key", admin.AccessKey)
	assert.Equal(t, "admin@example.com", admin.Email)
	assert.Equal(t, "ivan@example.com", admin.ReplyTo)
	assert.Contains(t, admin.Subject, "2026-09-15")
	assert.Contains(t, admin.Message, "Ivan Petrov")
	assert.Contains(t, admin.Message, "10:30 AM")

	user := requests[1]
	assert.Equal(t, "ivan@example.com", user.Email)
	assert.Contains(t, user.Message, "Hi Ivan")
	assert.Contains(t, user.Message, "2026-09-15")
}

func TestSendBookingEmails_NotConfigured(t *testing.T) {
	client := NewClient("http://relay.invalid", "", "admin@example.com", "Team", "noreply@example.com", time.Second, noopLogger{})

	result, err := client.SendBookingEmails(context.Background(), BookingNotification{
		Name:  "Ivan Petrov",
		Email: "ivan@example.com",
	})

	require.ErrorIs(t, err, ErrNotConfigured)
	assert.False(t, result.AdminSent)
	assert.False(t, result.UserSent)
}

func TestSendBookingEmails_AdminFailsUserStillSent(t *testing.T) {
	var calls int

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			// Первое письмо (админское) релей отклоняет
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(relayResponse{Success: true})
	})

	result, err := client.SendBookingEmails(context.Background(), BookingNotification{
		Name:      "Ivan Petrov",
		Email:     "ivan@example.com",
		Phone:     "+79001234567",
		DateKey:   "2026-09-15",
		TimeLabel: "10:30 AM",
	})

	require.Error(t, err)
	assert.False(t, result.AdminSent)
	assert.True(t, result.UserSent)
	assert.False(t, result.Ok())
	assert.Equal(t, 2, calls)
}

func TestSendContactEmails_RelayRejects(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(relayResponse{Success: false, Message: "invalid access key"})
	})

	result, err := client.SendContactEmails(context.Background(), ContactNotification{
		Name:    "Anna Smith",
		Email:   "anna@example.com",
		Subject: "Partnership",
		Message: "Hello",
	})

	require.ErrorIs(t, err, ErrRejected)
	assert.False(t, result.Ok())
}

func TestSendNewsletterEmails_BothDelivered(t *testing.T) {
	var requests []relayRequest

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req relayRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		requests = append(requests, req)
		json.NewEncoder(w).Encode(relayResponse{Success: true})
	})

	result, err := client.SendNewsletterEmails(context.Background(), NewsletterNotification{
		Email: "subscriber@example.com",
	})

	require.NoError(t, err)
	assert.True(t, result.Ok())
	require.Len(t, requests, 2)
	assert.Contains(t, requests[0].Message, "subscriber@example.com")
	assert.Equal(t, "subscriber@example.com", requests[1].Email)
}
