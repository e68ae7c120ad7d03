package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelops/TLO-LeadService/internal/domain"
	bookingRepo "github.com/travelops/TLO-LeadService/internal/infra/storage/booking"
	"github.com/travelops/TLO-LeadService/internal/integrations/mailrelay"
	"github.com/travelops/TLO-LeadService/pkg/types"
)

type mockBookingRepo struct {
	createErr      error
	reservationErr error

	created *domain.Booking
}

func (m *mockBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	b.ID = 42
	m.created = b
	return b, nil
}

func (m *mockBookingRepo) CreateReservation(ctx context.Context, bookingID int64, slotDate time.Time, slotTime types.TimeString) error {
	return m.reservationErr
}

type mockLeadRepo struct {
	err  error
	lead *domain.Lead
}

func (m *mockLeadRepo) Create(ctx context.Context, l *domain.Lead) (*domain.Lead, error) {
	if m.err != nil {
		return nil, m.err
	}
	l.ID = 7
	m.lead = l
	return l, nil
}

type mockMailClient struct {
	result mailrelay.Result
	err    error

	sent *mailrelay.BookingNotification
}

func (m *mockMailClient) SendBookingEmails(ctx context.Context, n mailrelay.BookingNotification) (mailrelay.Result, error) {
	m.sent = &n
	return m.result, m.err
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

var ucNow = time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC)

func newTestUseCase(br *mockBookingRepo, lr *mockLeadRepo, mc *mockMailClient) *UseCase {
	uc := NewUseCase(br, lr, mc, passthroughTxManager{}, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: ucNow}
	return uc
}

func bothSent() mailrelay.Result {
	return mailrelay.Result{AdminSent: true, UserSent: true}
}

func TestExecute_Success(t *testing.T) {
	br := &mockBookingRepo{}
	lr := &mockLeadRepo{}
	mc := &mockMailClient{result: bothSent()}
	uc := newTestUseCase(br, lr, mc)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, OutcomeNotified, resp.Outcome)
	assert.Equal(t, int64(42), resp.BookingID)
	assert.Equal(t, "2026-09-15", resp.DateKey)
	assert.Equal(t, "10:30 AM", resp.SlotLabel)

	require.NotNil(t, br.created)
	assert.Equal(t, domain.StatusPending, br.created.Status)

	require.NotNil(t, lr.lead)
	assert.Equal(t, domain.FormBooking, lr.lead.FormType)

	require.NotNil(t, mc.sent)
	assert.Equal(t, "ivan@example.com", mc.sent.Email)
	assert.Equal(t, "10:30 AM", mc.sent.TimeLabel)
}

func TestExecute_ValidationStopsPipeline(t *testing.T) {
	br := &mockBookingRepo{}
	mc := &mockMailClient{result: bothSent()}
	uc := newTestUseCase(br, &mockLeadRepo{}, mc)

	req := validRequest()
	req.Email = "broken"

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrValidation)
	var vErr *ValidationErrors
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, fieldErrors(vErr), "email")

	assert.Nil(t, br.created, "store must not be touched on validation failure")
	assert.Nil(t, mc.sent, "emails must not be sent on validation failure")
}

func TestExecute_SlotConflictAbortsBeforeEmails(t *testing.T) {
	br := &mockBookingRepo{reservationErr: bookingRepo.ErrSlotTaken}
	mc := &mockMailClient{result: bothSent()}
	uc := newTestUseCase(br, &mockLeadRepo{}, mc)

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, mc.sent, "no emails for a lost slot race")
}

func TestExecute_StoreFailureDegradesToPartial(t *testing.T) {
	br := &mockBookingRepo{createErr: errors.New("connection refused")}
	mc := &mockMailClient{result: bothSent()}
	uc := newTestUseCase(br, &mockLeadRepo{}, mc)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, OutcomePartialFailure, resp.Outcome)
	assert.Zero(t, resp.BookingID)
	require.NotNil(t, mc.sent, "emails are still dispatched when the store is down")
}

func TestExecute_MailerNotConfigured(t *testing.T) {
	mc := &mockMailClient{err: mailrelay.ErrNotConfigured}
	uc := newTestUseCase(&mockBookingRepo{}, &mockLeadRepo{}, mc)

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrMailerNotConfigured)
}

func TestExecute_IncompleteDispatchFails(t *testing.T) {
	tests := []struct {
		name   string
		result mailrelay.Result
	}{
		{"admin only", mailrelay.Result{AdminSent: true}},
		{"user only", mailrelay.Result{UserSent: true}},
		{"neither", mailrelay.Result{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mc := &mockMailClient{result: tt.result, err: errors.New("relay timeout")}
			uc := newTestUseCase(&mockBookingRepo{}, &mockLeadRepo{}, mc)

			_, err := uc.Execute(context.Background(), validRequest())

			require.ErrorIs(t, err, ErrNotificationFailed)
		})
	}
}

func TestExecute_LeadFailureTolerated(t *testing.T) {
	lr := &mockLeadRepo{err: errors.New("disk full")}
	mc := &mockMailClient{result: bothSent()}
	uc := newTestUseCase(&mockBookingRepo{}, lr, mc)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, OutcomeNotified, resp.Outcome)
}
