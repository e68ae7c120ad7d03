package submit_contact

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelops/TLO-LeadService/internal/api/handlers"
	submitContact "github.com/travelops/TLO-LeadService/internal/usecase/submit_contact"
)

type mockUseCase struct {
	resp *submitContact.Response
	err  error
}

func (m *mockUseCase) Execute(ctx context.Context, req *submitContact.Request) (*submitContact.Response, error) {
	return m.resp, m.err
}

type mockMetrics struct {
	degradations int
	leads        []string
}

func (m *mockMetrics) IncLeadCaptured(formType string) { m.leads = append(m.leads, formType) }
func (m *mockMetrics) IncStoreDegradation()            { m.degradations++ }

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, h *Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"name":    "Anna Ivanova",
		"email":   "anna@example.com",
		"message": "Tell me more about your tours",
	}
}

func TestHandle_Success(t *testing.T) {
	uc := &mockUseCase{resp: &submitContact.Response{LeadID: 7, Outcome: submitContact.OutcomeNotified}}
	m := &mockMetrics{}
	h := NewHandler(uc, m, noopLogger{})

	rec := doRequest(t, h, validBody())

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ContactResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, []string{"contact"}, m.leads)
}

func TestHandle_ValidationErrorsByField(t *testing.T) {
	vErr := &submitContact.ValidationErrors{}
	vErr.Add("email", "please enter a valid email address")
	vErr.Add("message", "message is required")

	h := NewHandler(&mockUseCase{err: vErr}, &mockMetrics{}, noopLogger{})

	rec := doRequest(t, h, validBody())

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "email")
	assert.Contains(t, resp.Errors, "message")
}

func TestHandle_MailerNotConfigured(t *testing.T) {
	h := NewHandler(&mockUseCase{err: submitContact.ErrMailerNotConfigured}, &mockMetrics{}, noopLogger{})

	rec := doRequest(t, h, validBody())

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// Оператор должен увидеть причину в теле ответа, а не только в логе
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, msgMailerUnconfigured, resp.Message)
}

func TestHandle_NotificationFailure(t *testing.T) {
	h := NewHandler(&mockUseCase{err: submitContact.ErrNotificationFailed}, &mockMetrics{}, noopLogger{})

	rec := doRequest(t, h, validBody())

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandle_PartialFailureCountsDegradation(t *testing.T) {
	uc := &mockUseCase{resp: &submitContact.Response{Outcome: submitContact.OutcomePartialFailure}}
	m := &mockMetrics{}
	h := NewHandler(uc, m, noopLogger{})

	rec := doRequest(t, h, validBody())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, m.degradations)
	assert.Empty(t, m.leads)
}
