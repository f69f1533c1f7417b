package sync_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/booking-calendar/internal/domain"
	bookingRepo "github.com/m04kA/booking-calendar/internal/infra/storage/booking"
)

// UseCase выгрузка бронирования во внешний календарь.
// Не влияет на принятие бронирования: сбой календаря оставляет бронирование как есть.
type UseCase struct {
	bookingRepo  BookingRepository
	calendar     CalendarClient
	publisher    EventPublisher
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. calendar == nil - интеграция выключена.
func NewUseCase(
	bookingRepo BookingRepository,
	calendar CalendarClient,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		calendar:     calendar,
		publisher:    publisher,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет синхронизацию
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SyncBooking: booking=%d by user=%d", req.BookingID, req.Actor.UserID)

	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if uc.calendar == nil {
		uc.logger.Warn("SyncBooking: calendar sync is disabled")
		return nil, ErrSyncDisabled
	}

	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("SyncBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("SyncBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if !req.Actor.CanModifyBooking(booking) {
		uc.logger.Warn("SyncBooking: user=%d has no access to booking id=%d", req.Actor.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	if !booking.IsActive() {
		uc.logger.Warn("SyncBooking: booking id=%d is canceled", req.BookingID)
		return nil, ErrBookingCanceled
	}

	ref, err := uc.calendar.SyncBooking(ctx, booking)
	if err != nil {
		uc.logger.Error("SyncBooking: calendar rejected booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrSyncFailed, err)
	}

	if err := uc.bookingRepo.SetExternalEventRef(ctx, booking.ID, ref); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("SyncBooking: booking id=%d deleted during sync, event %s left in calendar", booking.ID, ref)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("SyncBooking: failed to store event ref for booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to store event ref: %v", ErrInternal, err)
	}
	booking.ExternalEventRef = &ref

	uc.logger.Info("SyncBooking: booking id=%d synced as event %s", booking.ID, ref)

	event := domain.NewChangeEvent(domain.EntityBooking, domain.ActionUpdate, booking.ID, booking, req.Actor, uc.timeProvider.Now())
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Error("SyncBooking: failed to publish event %s for booking id=%d: %v", event.ID, booking.ID, err)
	}

	return &Response{Booking: booking, ExternalEventRef: ref}, nil
}
