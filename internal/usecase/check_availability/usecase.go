package check_availability

import (
	"context"
	"fmt"
	"time"
)

// UseCase пробная проверка интервала без записи (используется календарем перед отправкой формы)
type UseCase struct {
	checker ConflictChecker
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(checker ConflictChecker, logger Logger) *UseCase {
	return &UseCase{
		checker: checker,
		logger:  logger,
	}
}

// Execute выполняет проверку вне транзакции: результат может устареть к моменту создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Start.IsZero() || req.End.IsZero() || !req.Start.Before(req.End) {
		uc.logger.Warn("CheckAvailability: invalid interval start=%s end=%s",
			req.Start.Format(time.RFC3339), req.End.Format(time.RFC3339))
		return nil, fmt.Errorf("%w: start must be before end", ErrInvalidInput)
	}

	if req.ExcludeBookingID != nil && *req.ExcludeBookingID <= 0 {
		return nil, fmt.Errorf("%w: excludeBookingId must be positive", ErrInvalidInput)
	}

	decision, err := uc.checker.CanBook(ctx, req.Start.UTC(), req.End.UTC(), req.ExcludeBookingID)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed for user=%d: %v", req.Actor.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("CheckAvailability: user=%d [%s, %s) allowed=%t reason=%s",
		req.Actor.UserID, req.Start.Format(time.RFC3339), req.End.Format(time.RFC3339), decision.Allowed, decision.Reason)

	return &Response{
		Available:   decision.Allowed,
		Reason:      decision.Reason,
		Conflicting: decision.Conflicting,
	}, nil
}
