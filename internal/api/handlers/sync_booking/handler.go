package sync_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/booking-calendar/internal/api/handlers"
	"github.com/m04kA/booking-calendar/internal/api/middleware"
	syncBooking "github.com/m04kA/booking-calendar/internal/usecase/sync_booking"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgNotFound         = "бронирование не найдено"
	msgForbidden        = "доступ запрещен"
	msgBookingCanceled  = "отмененное бронирование нельзя синхронизировать"
	msgSyncDisabled     = "синхронизация с календарем отключена"
	msgSyncFailed       = "внешний календарь не принял событие"
)

type Handler struct {
	useCase SyncBookingUseCase
	logger  Logger
}

func NewHandler(useCase SyncBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/sync
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/sync - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/sync - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &syncBooking.Request{Actor: actor, BookingID: bookingID})
	if err != nil {
		switch {
		case errors.Is(err, syncBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/sync - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, syncBooking.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/sync - Access denied: booking_id=%d, user_id=%d", bookingID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, syncBooking.ErrBookingCanceled):
			h.logger.Warn("POST /bookings/{id}/sync - Booking canceled: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgBookingCanceled)

		case errors.Is(err, syncBooking.ErrSyncDisabled):
			h.logger.Warn("POST /bookings/{id}/sync - Calendar sync disabled")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgSyncDisabled)

		case errors.Is(err, syncBooking.ErrSyncFailed):
			h.logger.Error("POST /bookings/{id}/sync - External calendar failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgSyncFailed)

		default:
			h.logger.Error("POST /bookings/{id}/sync - Failed to sync booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/sync - Booking synced successfully: booking_id=%d, event_ref=%s",
		bookingID, result.ExternalEventRef)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
