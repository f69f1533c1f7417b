package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/booking-calendar/internal/domain"
	windowRepo "github.com/m04kA/booking-calendar/internal/infra/storage/availability"
	"github.com/m04kA/booking-calendar/internal/service/availability/models"
)

// Service сервис управления окнами доступности.
// Изменение окон не затрагивает уже созданные бронирования.
type Service struct {
	windowRepo   WindowRepository
	ranges       RangeValidator
	txManager    TransactionManager
	publisher    EventPublisher
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(
	windowRepo WindowRepository,
	ranges RangeValidator,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		windowRepo:   windowRepo,
		ranges:       ranges,
		txManager:    txManager,
		publisher:    publisher,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// List возвращает все окна доступности (публичный метод)
func (s *Service) List(ctx context.Context) (*models.WindowListResponse, error) {
	windows, err := s.windowRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d availability windows", len(windows))
	return models.FromDomainWindowList(windows), nil
}

// Create создает окно доступности. Доступно только администратору.
func (s *Service) Create(ctx context.Context, actor domain.Actor, req *models.CreateWindowRequest) (*models.WindowResponse, error) {
	s.logger.Info("Create: availability window by user=%d, recurring=%t, days=%v", actor.UserID, req.Recurring, req.DaysOfWeek)

	if !actor.CanManageAvailability() {
		s.logger.Warn("Create: user=%d is not allowed to manage availability", actor.UserID)
		return nil, ErrAccessDenied
	}

	window := &domain.AvailabilityWindow{
		Start:      req.Start.UTC(),
		End:        req.End.UTC(),
		Recurring:  req.Recurring,
		DaysOfWeek: req.DaysOfWeek,
		OwnerID:    actor.UserID,
	}

	if err := s.validateWindow(window); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.windowRepo.Create(ctx, window)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: availability window id=%d created", created.ID)
	s.publish(ctx, domain.ActionCreate, created.ID, created, actor)

	return models.FromDomainWindow(created), nil
}

// Update частично обновляет окно. При recurring=false дни недели очищаются.
func (s *Service) Update(ctx context.Context, actor domain.Actor, id int64, req *models.UpdateWindowRequest) (*models.WindowResponse, error) {
	s.logger.Info("Update: availability window id=%d by user=%d", id, actor.UserID)

	if !actor.CanManageAvailability() {
		s.logger.Warn("Update: user=%d is not allowed to manage availability", actor.UserID)
		return nil, ErrAccessDenied
	}

	if req.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	var saved *domain.AvailabilityWindow
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		window, err := s.windowRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, windowRepo.ErrWindowNotFound) {
				return ErrWindowNotFound
			}
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		if req.Start != nil {
			window.Start = req.Start.UTC()
		}
		if req.End != nil {
			window.End = req.End.UTC()
		}
		if req.Recurring != nil {
			window.Recurring = *req.Recurring
		}
		if req.DaysOfWeek != nil {
			window.DaysOfWeek = *req.DaysOfWeek
		}

		if err := s.validateWindow(window); err != nil {
			return err
		}

		saved, err = s.windowRepo.Update(txCtx, window)
		if err != nil {
			if errors.Is(err, windowRepo.ErrWindowNotFound) {
				return ErrWindowNotFound
			}
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrWindowNotFound), errors.Is(err, ErrInvalidInput):
			s.logger.Warn("Update: availability window id=%d: %v", id, err)
			return nil, err
		case errors.Is(err, ErrInternal):
			s.logger.Error("Update: availability window id=%d: %v", id, err)
			return nil, err
		}
		s.logger.Error("Update: transaction failed for availability window id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("Update: availability window id=%d updated", id)
	s.publish(ctx, domain.ActionUpdate, saved.ID, saved, actor)

	return models.FromDomainWindow(saved), nil
}

// Delete удаляет окно доступности. Доступно только администратору.
func (s *Service) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	s.logger.Info("Delete: availability window id=%d by user=%d", id, actor.UserID)

	if !actor.CanManageAvailability() {
		s.logger.Warn("Delete: user=%d is not allowed to manage availability", actor.UserID)
		return ErrAccessDenied
	}

	if err := s.windowRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, windowRepo.ErrWindowNotFound) {
			s.logger.Warn("Delete: availability window id=%d not found", id)
			return ErrWindowNotFound
		}
		s.logger.Error("Delete: repository error for availability window id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: availability window id=%d deleted", id)
	s.publish(ctx, domain.ActionDelete, id, nil, actor)

	return nil
}

func (s *Service) publish(ctx context.Context, action domain.Action, id int64, entity *domain.AvailabilityWindow, actor domain.Actor) {
	var payload interface{}
	if entity != nil {
		payload = entity
	}
	event := domain.NewChangeEvent(domain.EntityAvailability, action, id, payload, actor, s.timeProvider.Now())
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("publish: failed to publish event %s for availability window id=%d: %v", event.ID, id, err)
	}
}
