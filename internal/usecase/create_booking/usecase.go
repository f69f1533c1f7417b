package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/booking-calendar/internal/conflict"
	"github.com/m04kA/booking-calendar/internal/domain"
	bookingRepo "github.com/m04kA/booking-calendar/internal/infra/storage/booking"
)

// UseCase use case для создания бронирования
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

// Execute выполняет use case создания бронирования.
// Проверка конфликтов и запись выполняются в одной сериализуемой транзакции,
// событие публикуется только после коммита.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, start=%s, end=%s",
		req.Actor.UserID, req.Start.Format(time.RFC3339), req.End.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	booking := &domain.Booking{
		UserID: req.Actor.UserID,
		Title:  strings.TrimSpace(req.Title),
		Notes:  normalizeNotes(req.Notes),
		Start:  req.Start.UTC(),
		End:    req.End.UTC(),
		Status: domain.StatusPending,
	}

	// 2. Проверка и запись в одной транзакции (повторяется при ошибке сериализации)
	var created *domain.Booking
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		decision, err := uc.checker.CanBook(txCtx, booking.Start, booking.End, nil)
		if err != nil {
			return fmt.Errorf("%w: check conflicts: %w", ErrInternal, err)
		}
		if !decision.Allowed {
			return decision.Err()
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrOverlap) {
				return &conflict.Error{Reason: domain.ReasonOverlapsBooking}
			}
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		if ce, ok := conflict.AsError(err); ok {
			ce = conflict.CiteOverlap(ctx, uc.checker, ce, booking.Start, booking.End, nil)
			uc.metrics.IncBookingConflict(string(ce.Reason))
			uc.logger.Warn("CreateBooking: rejected for user=%d: %v", req.Actor.UserID, ce)
			return nil, ce
		}
		uc.logger.Error("CreateBooking: transaction failed for user=%d: %v", req.Actor.UserID, err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.metrics.IncBookingCreated(string(created.Status))
	uc.logger.Info("CreateBooking: created booking id=%d for user=%d", created.ID, created.UserID)

	// 3. Событие после коммита, ошибка публикации не отменяет бронирование
	event := domain.NewChangeEvent(domain.EntityBooking, domain.ActionCreate, created.ID, created, req.Actor, uc.timeProvider.Now())
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Error("CreateBooking: failed to publish event %s for booking id=%d: %v", event.ID, created.ID, err)
	}

	return &Response{Booking: created}, nil
}

// normalizeNotes пустые заметки хранятся как NULL
func normalizeNotes(notes *string) *string {
	if notes == nil || strings.TrimSpace(*notes) == "" {
		return nil
	}
	return notes
}
