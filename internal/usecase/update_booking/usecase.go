package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/booking-calendar/internal/conflict"
	"github.com/m04kA/booking-calendar/internal/domain"
	bookingRepo "github.com/m04kA/booking-calendar/internal/infra/storage/booking"
)

// UseCase use case для изменения бронирования (название, заметки, статус, перенос)
type UseCase struct {
	bookingRepo  BookingRepository
	checker      ConflictChecker
	txManager    TransactionManager
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	checker ConflictChecker,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		checker:      checker,
		txManager:    txManager,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет частичное обновление.
// Конфликты проверяются только при изменении интервала, собственный интервал бронирования не считается конфликтом.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking=%d by user=%d", req.BookingID, req.Actor.UserID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	var saved, attempted *domain.Booking
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		if !req.Actor.CanModifyBooking(current) {
			return ErrAccessDenied
		}

		next, intervalChanged, err := applyChanges(current, req)
		if err != nil {
			return err
		}

		if intervalChanged && next.IsActive() {
			decision, err := uc.checker.CanBook(txCtx, next.Start, next.End, &current.ID)
			if err != nil {
				return fmt.Errorf("%w: check conflicts: %w", ErrInternal, err)
			}
			if !decision.Allowed {
				return decision.Err()
			}
		}

		attempted = next
		saved, err = uc.bookingRepo.Update(txCtx, next)
		if err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrOverlap):
				return &conflict.Error{Reason: domain.ReasonOverlapsBooking}
			case errors.Is(err, bookingRepo.ErrBookingNotFound):
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to update booking: %w", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		if ce, ok := conflict.AsError(err); ok {
			if attempted != nil {
				ce = conflict.CiteOverlap(ctx, uc.checker, ce, attempted.Start, attempted.End, &attempted.ID)
			}
			uc.metrics.IncBookingConflict(string(ce.Reason))
			uc.logger.Warn("UpdateBooking: rejected booking=%d: %v", req.BookingID, ce)
			return nil, ce
		}
		switch {
		case errors.Is(err, ErrBookingNotFound),
			errors.Is(err, ErrAccessDenied),
			errors.Is(err, ErrInvalidTransition),
			errors.Is(err, ErrBookingCanceled),
			errors.Is(err, ErrInvalidInput):
			uc.logger.Warn("UpdateBooking: booking=%d by user=%d: %v", req.BookingID, req.Actor.UserID, err)
			return nil, err
		case errors.Is(err, ErrInternal):
			uc.logger.Error("UpdateBooking: booking=%d: %v", req.BookingID, err)
			return nil, err
		}
		uc.logger.Error("UpdateBooking: transaction failed for booking=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("UpdateBooking: booking id=%d updated, status=%s", saved.ID, saved.Status)

	event := domain.NewChangeEvent(domain.EntityBooking, domain.ActionUpdate, saved.ID, saved, req.Actor, uc.timeProvider.Now())
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Error("UpdateBooking: failed to publish event %s for booking id=%d: %v", event.ID, saved.ID, err)
	}

	return &Response{Booking: saved}, nil
}
