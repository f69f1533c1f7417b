package create_availability

import (
	"github.com/m04kA/booking-calendar/internal/api/handlers"
	"github.com/m04kA/booking-calendar/internal/service/availability/models"
)

// CreateWindowRequest HTTP request model
type CreateWindowRequest struct {
	Start      string `json:"start"`
	End        string `json:"end"`
	Recurring  bool   `json:"recurring"`
	DaysOfWeek []int  `json:"daysOfWeek,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateWindowRequest) ToServiceRequest() (*models.CreateWindowRequest, error) {
	start, err := handlers.ParseTime(r.Start)
	if err != nil {
		return nil, err
	}

	end, err := handlers.ParseTime(r.End)
	if err != nil {
		return nil, err
	}

	return &models.CreateWindowRequest{
		Start:      start,
		End:        end,
		Recurring:  r.Recurring,
		DaysOfWeek: r.DaysOfWeek,
	}, nil
}
