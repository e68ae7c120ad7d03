package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelops/TLO-LeadService/internal/api/handlers"
	createBooking "github.com/travelops/TLO-LeadService/internal/usecase/create_booking"
)

type mockUseCase struct {
	resp *createBooking.Response
	err  error

	got *createBooking.Request
}

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	m.got = req
	return m.resp, m.err
}

type mockMetrics struct {
	bookings, conflicts, degradations int
	leads                             []string
}

func (m *mockMetrics) IncBookingCreated()              { m.bookings++ }
func (m *mockMetrics) IncLeadCaptured(formType string) { m.leads = append(m.leads, formType) }
func (m *mockMetrics) IncSlotConflict()                { m.conflicts++ }
func (m *mockMetrics) IncStoreDegradation()            { m.degradations++ }

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, h *Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"name":          "Ivan Petrov",
		"email":         "ivan@example.com",
		"phone":         "+79001234567",
		"preferredDate": "2026-09-15",
		"preferredTime": "10:30",
	}
}

func TestHandle_Success(t *testing.T) {
	uc := &mockUseCase{resp: &createBooking.Response{
		BookingID: 42,
		Outcome:   createBooking.OutcomeNotified,
		DateKey:   "2026-09-15",
		SlotKey:   "10:30",
		SlotLabel: "10:30 AM",
	}}
	m := &mockMetrics{}
	h := NewHandler(uc, m, noopLogger{})

	rec := doRequest(t, h, validBody())

	require.Equal(t, http.StatusOK, rec.Code)

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.BookingID)
	assert.Equal(t, int64(42), *resp.BookingID)
	assert.Empty(t, resp.Note)

	assert.Equal(t, 1, m.bookings)
	assert.Equal(t, []string{"book_call"}, m.leads)

	require.NotNil(t, uc.got)
	assert.Equal(t, "2026-09-15", uc.got.DateKey)
}

func TestHandle_PartialFailureIsSuccessWithNote(t *testing.T) {
	uc := &mockUseCase{resp: &createBooking.Response{
		Outcome: createBooking.OutcomePartialFailure,
		DateKey: "2026-09-15",
		SlotKey: "10:30",
	}}
	m := &mockMetrics{}
	h := NewHandler(uc, m, noopLogger{})

	rec := doRequest(t, h, validBody())

	require.Equal(t, http.StatusOK, rec.Code)

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Nil(t, resp.BookingID)
	assert.NotEmpty(t, resp.Note)

	assert.Equal(t, 1, m.degradations)
	assert.Zero(t, m.bookings)
}

func TestHandle_MissingNameOrEmail(t *testing.T) {
	uc := &mockUseCase{}
	h := NewHandler(uc, &mockMetrics{}, noopLogger{})

	body := validBody()
	body["email"] = "  "
	rec := doRequest(t, h, body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got, "use case must not run without name/email")
}

func TestHandle_ValidationErrorsByField(t *testing.T) {
	vErr := &createBooking.ValidationErrors{}
	vErr.Add("phone", "phone number must contain 10 to 15 digits")
	vErr.Add("date", "please select a weekday that is today or later")

	uc := &mockUseCase{err: vErr}
	h := NewHandler(uc, &mockMetrics{}, noopLogger{})

	rec := doRequest(t, h, validBody())

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Errors, "phone")
	assert.Contains(t, resp.Errors, "date")
}

func TestHandle_SlotConflict(t *testing.T) {
	uc := &mockUseCase{err: createBooking.ErrSlotNotAvailable}
	m := &mockMetrics{}
	h := NewHandler(uc, m, noopLogger{})

	rec := doRequest(t, h, validBody())

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, 1, m.conflicts)
}

func TestHandle_MailerNotConfigured(t *testing.T) {
	uc := &mockUseCase{err: createBooking.ErrMailerNotConfigured}
	h := NewHandler(uc, &mockMetrics{}, noopLogger{})

	rec := doRequest(t, h, validBody())

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// Оператор должен увидеть причину в теле ответа, а не только в логе
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, msgMailerUnconfigured, resp.Message)
}

func TestHandle_NotificationFailure(t *testing.T) {
	uc := &mockUseCase{err: errors.Join(createBooking.ErrNotificationFailed)}
	h := NewHandler(uc, &mockMetrics{}, noopLogger{})

	rec := doRequest(t, h, validBody())

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	h := NewHandler(&mockUseCase{}, &mockMetrics{}, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
