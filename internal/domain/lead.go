package domain

import "time"

// FormType tags the origin of a captured lead. Each form variant has its own
// submission pipeline; the tag is what lands in the leads table.
type FormType string

const (
	FormBooking    FormType = "book_call"
	FormContact    FormType = "contact"
	FormNewsletter FormType = "newsletter"
)

// Lead is a persisted capture from one of the site's forms.
// For booking forms the full detail lives in Booking; the lead row is the
// flat record used for follow-up and marketing.
type Lead struct {
	ID       int64
	FormType FormType
	Name     *string
	Email    string
	Phone    *string
	Company  *string
	Message  *string

	SessionID *string
	Source    *string

	CreatedAt time.Time
}
