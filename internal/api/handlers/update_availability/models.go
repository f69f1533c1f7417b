package update_availability

import (
	"github.com/m04kA/booking-calendar/internal/api/handlers"
	"github.com/m04kA/booking-calendar/internal/service/availability/models"
)

// UpdateWindowRequest HTTP request model. Отсутствующие поля не меняются.
type UpdateWindowRequest struct {
	Start      *string `json:"start,omitempty"`
	End        *string `json:"end,omitempty"`
	Recurring  *bool   `json:"recurring,omitempty"`
	DaysOfWeek *[]int  `json:"daysOfWeek,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateWindowRequest) ToServiceRequest() (*models.UpdateWindowRequest, error) {
	start, err := handlers.ParseOptionalTime(r.Start)
	if err != nil {
		return nil, err
	}

	end, err := handlers.ParseOptionalTime(r.End)
	if err != nil {
		return nil, err
	}

	return &models.UpdateWindowRequest{
		Start:      start,
		End:        end,
		Recurring:  r.Recurring,
		DaysOfWeek: r.DaysOfWeek,
	}, nil
}
