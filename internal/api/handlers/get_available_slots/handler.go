package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/booking-calendar/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/booking-calendar/internal/usecase/get_available_slots"
)

const (
	msgInvalidDuration = "некорректная длительность слота"
	msgInvalidDate     = "некорректная дата, ожидается YYYY-MM-DD не ранее сегодняшнего дня"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/slots
// Query params: date (required, YYYY-MM-DD), duration (minutes, default 30)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq, err := ToUseCaseRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /availability/slots - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /availability/slots - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
		default:
			h.logger.Error("GET /availability/slots - Failed to get slots: date=%s, error=%v", useCaseReq.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/slots - Slots retrieved successfully: date=%s, slots_count=%d", useCaseReq.Date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
