package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Slot catalog boundaries: business hours, fixed 30-minute step
const (
	SlotOpenHour        = 9
	SlotCloseHour       = 17 // последний слот начинается в 17:30
	SlotStepMinutes     = 30
	SlotCatalogSize     = 18
	SlotDurationMinutes = 30
)

// Validation constants
const (
	MinNameParts            = 2
	MinCompanyLength        = 2
	MinPhoneDigits          = 10
	MaxPhoneDigits          = 15
	MaxMessageLength        = 500
	MaxContactMessageLength = 2000
)

// Synthetic load bands: the further the date, the fewer busy slots we fake.
// Границы в днях от сегодняшней даты включительно.
const (
	SyntheticNearBandDays = 7
	SyntheticMidBandDays  = 14

	SyntheticNearMin = 4
	SyntheticNearMax = 8
	SyntheticMidMin  = 2
	SyntheticMidMax  = 5
	SyntheticFarMin  = 1
	SyntheticFarMax  = 3

	// Показатель степени смещения к утренним слотам (< 1)
	SyntheticMorningBias = 0.7
)

// ActiveStatuses статусы, при которых бронирование удерживает слот
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses статусы, освобождающие слот
var InactiveStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
}
