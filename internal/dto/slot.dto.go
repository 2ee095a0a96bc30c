package dto

import domain "github.com/snappdoctor/telemed-api/internal/domain/schedule"

type SlotDTO struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Booked bool   `json:"booked"`
}

func SlotsFromDomain(slots []domain.Slot) []SlotDTO {
	out := make([]SlotDTO, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotDTO{
			Start:  s.Interval.StartClock(),
			End:    s.Interval.EndClock(),
			Booked: s.Booked,
		})
	}
	return out
}
