package models

import (
	"time"

	"github.com/m04kA/booking-calendar/internal/domain"
)

// Request модели

// CreateWindowRequest запрос на создание окна доступности
type CreateWindowRequest struct {
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Recurring  bool      `json:"recurring"`
	DaysOfWeek []int     `json:"daysOfWeek,omitempty"` // 0=воскресенье..6=суббота, только для recurring
}

// UpdateWindowRequest частичное обновление окна. nil - поле не меняется.
type UpdateWindowRequest struct {
	Start      *time.Time `json:"start,omitempty"`
	End        *time.Time `json:"end,omitempty"`
	Recurring  *bool      `json:"recurring,omitempty"`
	DaysOfWeek *[]int     `json:"daysOfWeek,omitempty"`
}

// IsEmpty true, если ни одно поле не задано
func (r *UpdateWindowRequest) IsEmpty() bool {
	return r.Start == nil && r.End == nil && r.Recurring == nil && r.DaysOfWeek == nil
}

// Response модели

// WindowResponse ответ с данными окна доступности
type WindowResponse struct {
	ID         int64     `json:"id"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Recurring  bool      `json:"recurring"`
	DaysOfWeek []int     `json:"daysOfWeek"`
	OwnerID    int64     `json:"ownerId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// WindowListResponse ответ со списком окон
type WindowListResponse struct {
	Windows []WindowResponse `json:"windows"`
}

// FromDomainWindow конвертирует domain модель в DTO
func FromDomainWindow(w *domain.AvailabilityWindow) *WindowResponse {
	if w == nil {
		return nil
	}

	days := w.DaysOfWeek
	if days == nil {
		days = []int{}
	}

	return &WindowResponse{
		ID:         w.ID,
		Start:      w.Start.UTC(),
		End:        w.End.UTC(),
		Recurring:  w.Recurring,
		DaysOfWeek: days,
		OwnerID:    w.OwnerID,
		CreatedAt:  w.CreatedAt.UTC(),
		UpdatedAt:  w.UpdatedAt.UTC(),
	}
}

// FromDomainWindowList конвертирует список domain моделей в DTO
func FromDomainWindowList(windows []*domain.AvailabilityWindow) *WindowListResponse {
	resp := &WindowListResponse{
		Windows: make([]WindowResponse, 0, len(windows)),
	}

	for _, w := range windows {
		if wr := FromDomainWindow(w); wr != nil {
			resp.Windows = append(resp.Windows, *wr)
		}
	}

	return resp
}
