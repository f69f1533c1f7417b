package get_available_slots

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	getAvailableSlots "github.com/m04kA/booking-calendar/internal/usecase/get_available_slots"
)

// SlotResponse свободный слот
type SlotResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// AvailableSlotsResponse ответ со свободными слотами на дату
type AvailableSlotsResponse struct {
	Date            string         `json:"date"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// ToUseCaseRequest разбирает query параметры date и duration
func ToUseCaseRequest(query url.Values) (*getAvailableSlots.Request, error) {
	req := &getAvailableSlots.Request{Date: query.Get("date")}

	if raw := query.Get("duration"); raw != "" {
		duration, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("parse duration: %w", err)
		}
		req.DurationMinutes = duration
	}

	return req, nil
}

// FromUseCaseResponse преобразует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *getAvailableSlots.Response) AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{Start: s.Start.UTC(), End: s.End.UTC()})
	}

	return AvailableSlotsResponse{
		Date:            resp.Date.Format(getAvailableSlots.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
