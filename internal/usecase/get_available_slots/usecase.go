package get_available_slots

import (
	"context"
	"fmt"
	"time"
)

// UseCase use case для получения свободных слотов на дату
type UseCase struct {
	bookingRepo  BookingRepository
	windowRepo   WindowRepository
	index        CoverageIndex
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	windowRepo WindowRepository,
	index CoverageIndex,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		windowRepo:   windowRepo,
		index:        index,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, duration=%d", req.Date, req.DurationMinutes)

	// 1. Валидация входных данных
	day, durationMinutes, err := validateRequest(req, uc.index.Location())
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if isDateInPast(day, now) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date)
		return nil, fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}

	// 2. Окна доступности
	windows, err := uc.windowRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list windows: %v", err)
		return nil, fmt.Errorf("%w: failed to list windows: %v", ErrInternal, err)
	}

	// 3. Активные бронирования на этот день
	dayEnd := day.AddDate(0, 0, 1)
	bookings, err := uc.bookingRepo.ActiveInRange(ctx, day, dayEnd, nil)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Генерация и фильтрация слотов
	candidates := generateSlots(uc.index, windows, day, time.Duration(durationMinutes)*time.Minute)
	free := filterFree(candidates, bookings, now)

	slots := make([]Slot, 0, len(free))
	for _, s := range free {
		slots = append(slots, Slot{Start: s.Start, End: s.End})
	}

	uc.logger.Info("GetAvailableSlots: generated %d of %d slots for date=%s", len(slots), len(candidates), req.Date)

	return &Response{
		Date:            day,
		DurationMinutes: durationMinutes,
		Slots:           slots,
	}, nil
}
