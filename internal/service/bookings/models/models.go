package models

import (
	"errors"
	"time"

	"github.com/m04kA/booking-calendar/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос на список всех бронирований (для администратора)
type ListBookingsRequest struct {
	UserID *int64     `json:"userId,omitempty"` // Фильтр по владельцу (опционально)
	Status *string    `json:"status,omitempty"` // Фильтр по статусу (опционально)
	From   *time.Time `json:"from,omitempty"`   // Начало периода (опционально)
	To     *time.Time `json:"to,omitempty"`     // Конец периода (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		UserID: r.UserID,
		From:   r.From,
		To:     r.To,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"userId"`
	Title            string    `json:"title"`
	Notes            *string   `json:"notes,omitempty"`
	Start            time.Time `json:"start"`
	End              time.Time `json:"end"`
	Status           string    `json:"status"`
	ExternalEventRef *string   `json:"externalEventRef,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:               b.ID,
		UserID:           b.UserID,
		Title:            b.Title,
		Notes:            b.Notes,
		Start:            b.Start.UTC(),
		End:              b.End.UTC(),
		Status:           string(b.Status),
		ExternalEventRef: b.ExternalEventRef,
		CreatedAt:        b.CreatedAt.UTC(),
		UpdatedAt:        b.UpdatedAt.UTC(),
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// ToDomain восстанавливает domain модель из DTO
func (r *BookingResponse) ToDomain() *domain.Booking {
	return &domain.Booking{
		ID:               r.ID,
		UserID:           r.UserID,
		Title:            r.Title,
		Notes:            r.Notes,
		Start:            r.Start,
		End:              r.End,
		Status:           domain.BookingStatus(r.Status),
		ExternalEventRef: r.ExternalEventRef,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// ToDomain восстанавливает список domain моделей из DTO
func (r *BookingListResponse) ToDomain() []*domain.Booking {
	res := make([]*domain.Booking, 0, len(r.Bookings))
	for i := range r.Bookings {
		res = append(res, r.Bookings[i].ToDomain())
	}
	return res
}
