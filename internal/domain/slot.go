package domain

import (
	"fmt"

	"github.com/travelops/TLO-LeadService/pkg/types"
)

// TimeSlot represents one fixed bookable time of day.
// Identity is the Key; Label is the human 12h display form.
type TimeSlot struct {
	Key   types.TimeString
	Label string
}

// slotCatalog фиксированный каталог слотов, строится один раз при старте
var slotCatalog = buildSlotCatalog()

// SlotCatalog returns the fixed ordered sequence of bookable slots:
// 18 entries, 09:00 through 17:30 inclusive, strictly increasing,
// 30-minute step. The returned slice is a copy and safe to modify.
func SlotCatalog() []TimeSlot {
	out := make([]TimeSlot, len(slotCatalog))
	copy(out, slotCatalog)
	return out
}

// SlotInCatalog reports whether key is one of the catalog slots.
func SlotInCatalog(key types.TimeString) bool {
	for _, s := range slotCatalog {
		if s.Key == key {
			return true
		}
	}
	return false
}

// SlotLabel returns the display label for a catalog slot key.
// Unknown keys fall back to the raw key text.
func SlotLabel(key types.TimeString) string {
	for _, s := range slotCatalog {
		if s.Key == key {
			return s.Label
		}
	}
	return key.String()
}

func buildSlotCatalog() []TimeSlot {
	slots := make([]TimeSlot, 0, SlotCatalogSize)
	for minutes := SlotOpenHour * 60; len(slots) < SlotCatalogSize; minutes += SlotStepMinutes {
		hour := minutes / 60
		minute := minutes % 60
		key := types.TimeString(fmt.Sprintf("%02d:%02d", hour, minute))
		slots = append(slots, TimeSlot{Key: key, Label: slotLabel(hour, minute)})
	}
	return slots
}

// slotLabel формирует 12-часовую подпись слота ("1:30 PM")
func slotLabel(hour, minute int) string {
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, minute, ampm)
}
