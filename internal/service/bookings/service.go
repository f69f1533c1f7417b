package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/booking-calendar/internal/domain"
	bookingRepo "github.com/m04kA/booking-calendar/internal/infra/storage/booking"
	"github.com/m04kA/booking-calendar/internal/service/bookings/models"
)

// Service сервис для чтения и удаления бронирований
type Service struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	publisher    EventPublisher
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		publisher:    publisher,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только свои бронирования, администратор - любые
func (s *Service) GetByID(ctx context.Context, actor domain.Actor, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, actor.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !actor.CanModifyBooking(booking) {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", actor.UserID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// ListMine получает бронирования текущего пользователя (по времени начала)
func (s *Service) ListMine(ctx context.Context, actor domain.Actor) (*models.BookingListResponse, error) {
	s.logger.Info("ListMine: fetching bookings for user=%d", actor.UserID)

	bookings, err := s.bookingRepo.ListByUser(ctx, actor.UserID)
	if err != nil {
		s.logger.Error("ListMine: repository error for user=%d: %v", actor.UserID, err)
		return nil, fmt.Errorf("%w: ListMine - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListMine: fetched %d bookings for user=%d", len(bookings), actor.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// List получает все бронирования с фильтрами. Доступно только администратору.
func (s *Service) List(ctx context.Context, actor domain.Actor, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings by user=%d", actor.UserID)

	if !actor.IsAdmin() {
		s.logger.Warn("List: user=%d is not an admin", actor.UserID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		s.logger.Warn("List: invalid period from=%s to=%s", filter.From, filter.To)
		return nil, fmt.Errorf("%w: from must be before to", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Delete физически удаляет бронирование. Доступно владельцу и администратору.
func (s *Service) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d by user=%d", id, actor.UserID)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		if !actor.CanModifyBooking(booking) {
			return ErrAccessDenied
		}

		if err := s.bookingRepo.Delete(txCtx, id); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound), errors.Is(err, ErrAccessDenied):
			s.logger.Warn("Delete: booking id=%d by user=%d: %v", id, actor.UserID, err)
			return err
		case errors.Is(err, ErrInternal):
			s.logger.Error("Delete: booking id=%d: %v", id, err)
			return err
		}
		s.logger.Error("Delete: transaction failed for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking id=%d deleted", id)

	event := domain.NewChangeEvent(domain.EntityBooking, domain.ActionDelete, id, nil, actor, s.timeProvider.Now())
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("Delete: failed to publish event %s for booking id=%d: %v", event.ID, id, err)
	}

	return nil
}
