package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelops/TLO-LeadService/pkg/ptr"
	"github.com/travelops/TLO-LeadService/pkg/types"
)

// Понедельник утром, запросы на вторник 2026-09-15
var valNow = time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		Name:    "Ivan Petrov",
		Email:   "ivan@example.com",
		Phone:   "+7 900 123-45-67",
		DateKey: "2026-09-15",
		SlotKey: types.TimeString("10:30"),
	}
}

func fieldErrors(vErr *ValidationErrors) map[string]string {
	out := make(map[string]string)
	for _, f := range vErr.Fields {
		out[f.Field] = f.Message
	}
	return out
}

func TestValidateRequest_Valid(t *testing.T) {
	date, vErr := validateRequest(validRequest(), valNow)

	require.Nil(t, vErr)
	assert.Equal(t, "2026-09-15", date.Format("2006-01-02"))
}

func TestValidateRequest_CollectsAllErrors(t *testing.T) {
	req := &Request{
		Name:    "Ivan",
		Email:   ".ivan@example.com",
		Phone:   "123",
		Company: ptr.Ptr("x"),
		Message: ptr.Ptr(string(make([]rune, 501))),
		DateKey: "2026-09-19", // суббота
		SlotKey: types.TimeString("10:30"),
	}

	_, vErr := validateRequest(req, valNow)

	require.NotNil(t, vErr)
	fields := fieldErrors(vErr)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "phone")
	assert.Contains(t, fields, "company")
	assert.Contains(t, fields, "message")
	assert.Contains(t, fields, "date")
	assert.Len(t, fields, 6)
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"two words", "Ivan Petrov", true},
		{"hyphenated", "Anna-Maria Lopez", true},
		{"apostrophe", "Conor O'Brien", true},
		{"three parts", "Juan Carlos Mendez", true},
		{"single word", "Ivan", false},
		{"empty", "", false},
		{"digits", "Ivan Petrov2", false},
		{"punctuation", "Ivan Petrov!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Name = tt.input
			_, vErr := validateRequest(req, valNow)
			if tt.valid {
				assert.Nil(t, vErr)
			} else {
				require.NotNil(t, vErr)
				assert.Contains(t, fieldErrors(vErr), "name")
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"plain", "ivan@example.com", true},
		{"subdomain", "ivan@mail.example.co.uk", true},
		{"plus tag", "ivan+tag@example.com", true},
		{"dot inside local", "ivan.petrov@example.com", true},
		{"empty", "", false},
		{"no at", "ivanexample.com", false},
		{"leading dot", ".ivan@example.com", false},
		{"trailing dot in local", "ivan.@example.com", false},
		{"consecutive dots", "iv..an@example.com", false},
		{"no tld", "ivan@example", false},
		{"trailing dot in domain", "ivan@example.com.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Email = tt.input
			_, vErr := validateRequest(req, valNow)
			if tt.valid {
				assert.Nil(t, vErr)
			} else {
				require.NotNil(t, vErr)
				assert.Contains(t, fieldErrors(vErr), "email")
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"formatted", "+7 (900) 123-45-67", true},
		{"bare digits", "79001234567", true},
		{"fifteen digits", "123456789012345", true},
		{"nine digits", "123456789", false},
		{"sixteen digits", "1234567890123456", false},
		{"repeated digit", "1111111111", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Phone = tt.input
			_, vErr := validateRequest(req, valNow)
			if tt.valid {
				assert.Nil(t, vErr)
			} else {
				require.NotNil(t, vErr)
				assert.Contains(t, fieldErrors(vErr), "phone")
			}
		})
	}
}

func TestValidateCompany_Optional(t *testing.T) {
	req := validRequest()
	req.Company = nil
	_, vErr := validateRequest(req, valNow)
	assert.Nil(t, vErr)

	req.Company = ptr.Ptr("  ")
	_, vErr = validateRequest(req, valNow)
	assert.Nil(t, vErr)

	req.Company = ptr.Ptr("Acme Travel")
	_, vErr = validateRequest(req, valNow)
	assert.Nil(t, vErr)

	req.Company = ptr.Ptr("x")
	_, vErr = validateRequest(req, valNow)
	require.NotNil(t, vErr)
	assert.Contains(t, fieldErrors(vErr), "company")
}

func TestValidateSchedule(t *testing.T) {
	tests := []struct {
		name    string
		dateKey string
		slotKey types.TimeString
		now     time.Time
		field   string
	}{
		{"weekend", "2026-09-19", "10:30", valNow, "date"},
		{"past date", "2026-09-11", "10:30", valNow, "date"},
		{"bad format", "15.09.2026", "10:30", valNow, "date"},
		{"empty date", "", "10:30", valNow, "date"},
		{"empty slot", "2026-09-15", "", valNow, "time"},
		{"slot not in catalog", "2026-09-15", "10:15", valNow, "time"},
		{"before opening", "2026-09-15", "08:00", valNow, "time"},
		{"past slot today", "2026-09-14", "09:00", time.Date(2026, 9, 14, 9, 30, 0, 0, time.UTC), "time"},
		{"hour cutoff today", "2026-09-14", "09:30", time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC), "time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.DateKey = tt.dateKey
			req.SlotKey = tt.slotKey
			_, vErr := validateRequest(req, tt.now)
			require.NotNil(t, vErr)
			fields := fieldErrors(vErr)
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestValidateSchedule_ReportsDateAndTimeTogether(t *testing.T) {
	// Невалидная дата не скрывает ошибки слота, не зависящие от даты
	req := validRequest()
	req.DateKey = "2026-09-19" // суббота
	req.SlotKey = ""

	_, vErr := validateRequest(req, valNow)
	require.NotNil(t, vErr)
	fields := fieldErrors(vErr)
	assert.Contains(t, fields, "date")
	assert.Contains(t, fields, "time")

	req.SlotKey = types.TimeString("10:15") // вне каталога
	_, vErr = validateRequest(req, valNow)
	require.NotNil(t, vErr)
	fields = fieldErrors(vErr)
	assert.Contains(t, fields, "date")
	assert.Contains(t, fields, "time")
}

func TestValidateSchedule_TodayLaterSlotOK(t *testing.T) {
	// Сегодня 9:00: слот 11:00 ещё доступен (час 11 > 9)
	req := validRequest()
	req.DateKey = "2026-09-14"
	req.SlotKey = types.TimeString("11:00")

	_, vErr := validateRequest(req, time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC))
	assert.Nil(t, vErr)
}
