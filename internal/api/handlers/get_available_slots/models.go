package get_available_slots

import (
	getSlots "github.com/travelops/TLO-LeadService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	Time      string `json:"time"`  // ключ слота "09:00"
	Label     string `json:"label"` // подпись "9:00 AM"
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"` // past | booked
}

// GetAvailableSlotsResponse HTTP модель ответа
type GetAvailableSlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlots.Response) *GetAvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Time:      s.Key.String(),
			Label:     s.Label,
			Available: s.Available,
			Reason:    s.Reason,
		})
	}
	return &GetAvailableSlotsResponse{
		Date:  resp.DateKey,
		Slots: slots,
	}
}
