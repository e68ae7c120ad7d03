package create_booking

import (
	"strings"
	"time"
	"unicode"

	"github.com/travelops/TLO-LeadService/internal/domain"
	"github.com/travelops/TLO-LeadService/pkg/ptr"
)

// validateRequest проверяет форму целиком и собирает все ошибки полей.
// Возвращает распарсенную дату (нулевая, если дата невалидна).
func validateRequest(req *Request, now time.Time) (time.Time, *ValidationErrors) {
	vErr := &ValidationErrors{}

	validateName(req.Name, vErr)
	validateEmail(req.Email, vErr)
	validatePhone(req.Phone, vErr)
	validateCompany(req.Company, vErr)
	validateMessage(req.Message, vErr)
	date := validateSchedule(req, now, vErr)

	if vErr.HasErrors() {
		return time.Time{}, vErr
	}
	return date, nil
}

// validateName требует минимум два слова, каждое из букв, дефисов и апострофов
func validateName(name string, vErr *ValidationErrors) {
	parts := strings.Fields(strings.TrimSpace(name))
	if len(parts) < domain.MinNameParts {
		vErr.Add("name", "please enter your full name (first and last name)")
		return
	}
	for _, part := range parts {
		if !validNamePart(part) {
			vErr.Add("name", "name may only contain letters, hyphens and apostrophes")
			return
		}
	}
}

func validNamePart(part string) bool {
	for _, r := range part {
		if !unicode.IsLetter(r) && r != '-' && r != '\'' {
			return false
		}
	}
	return true
}

// validateEmail проверяет базовую форму адреса и правила точек:
// точка не может стоять в начале или конце локальной части,
// две точки подряд недопустимы
func validateEmail(email string, vErr *ValidationErrors) {
	email = strings.TrimSpace(email)
	if email == "" {
		vErr.Add("email", "email is required")
		return
	}

	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		vErr.Add("email", "please enter a valid email address")
		return
	}

	local, domainPart := email[:at], email[at+1:]
	switch {
	case strings.Contains(email, ".."):
		vErr.Add("email", "email must not contain consecutive dots")
	case strings.HasPrefix(local, ".") || strings.HasSuffix(local, "."):
		vErr.Add("email", "email must not start or end with a dot")
	case !strings.Contains(domainPart, ".") ||
		strings.HasPrefix(domainPart, ".") || strings.HasSuffix(domainPart, "."):
		vErr.Add("email", "please enter a valid email address")
	case strings.ContainsAny(email, " \t"):
		vErr.Add("email", "please enter a valid email address")
	}
}

// validatePhone требует 10-15 цифр; номер из одной повторяющейся цифры отклоняется
func validatePhone(phone string, vErr *ValidationErrors) {
	digits := make([]rune, 0, len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}

	if len(digits) < domain.MinPhoneDigits || len(digits) > domain.MaxPhoneDigits {
		vErr.Add("phone", "phone number must contain 10 to 15 digits")
		return
	}

	allSame := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			allSame = false
			break
		}
	}
	if allSame {
		vErr.Add("phone", "please enter a real phone number")
	}
}

// validateCompany необязательное поле, но если заполнено, минимум 2 символа
func validateCompany(company *string, vErr *ValidationErrors) {
	v := strings.TrimSpace(ptr.Deref(company))
	if v == "" {
		return
	}
	if len([]rune(v)) < domain.MinCompanyLength {
		vErr.Add("company", "company name must be at least 2 characters")
	}
}

// validateMessage необязательное поле с потолком длины
func validateMessage(message *string, vErr *ValidationErrors) {
	if len([]rune(ptr.Deref(message))) > domain.MaxMessageLength {
		vErr.Add("message", "message must be at most 500 characters")
	}
}

// validateSchedule проверяет дату и слот. Проверки слота, не зависящие от
// даты, выполняются всегда, чтобы форма получила все ошибки разом; отсечка
// прошедшего времени имеет смысл только при валидной дате.
func validateSchedule(req *Request, now time.Time, vErr *ValidationErrors) time.Time {
	var (
		date   time.Time
		dateOK bool
	)

	dateKey := strings.TrimSpace(req.DateKey)
	if dateKey == "" {
		vErr.Add("date", "please select a date")
	} else if parsed, err := domain.ParseDateKey(dateKey); err != nil {
		vErr.Add("date", "date must be in YYYY-MM-DD format")
	} else if !domain.IsSelectableDate(parsed, now) {
		date = parsed
		vErr.Add("date", "please select a weekday that is today or later")
	} else {
		date = parsed
		dateOK = true
	}

	if req.SlotKey == "" {
		vErr.Add("time", "please select a time slot")
		return date
	}

	if !domain.SlotInCatalog(req.SlotKey) {
		vErr.Add("time", "selected time is not a valid slot")
		return date
	}

	if dateOK && domain.IsPastSlot(date, req.SlotKey, now) {
		vErr.Add("time", "selected time has already passed")
	}

	return date
}
