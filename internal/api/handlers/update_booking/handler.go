package update_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/booking-calendar/internal/api/handlers"
	"github.com/m04kA/booking-calendar/internal/api/middleware"
	"github.com/m04kA/booking-calendar/internal/conflict"
	updateBooking "github.com/m04kA/booking-calendar/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidFields      = "некорректный формат времени или статуса"
	msgInvalidInput       = "некорректные данные бронирования"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "доступ запрещен"
	msgInvalidTransition  = "недопустимая смена статуса"
	msgBookingCanceled    = "отмененное бронирование нельзя перенести"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PUT /bookings/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor, bookingID)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Failed to parse request: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidFields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		respondUpdateError(w, h.logger, "PUT /bookings/{id}", bookingID, actor.UserID, err)
		return
	}

	h.logger.Info("PUT /bookings/{id} - Booking updated successfully: booking_id=%d, user_id=%d", bookingID, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// respondUpdateError общий маппинг ошибок update use case, используется и для отмены
func respondUpdateError(w http.ResponseWriter, logger Logger, op string, bookingID, userID int64, err error) {
	if ce, ok := conflict.AsError(err); ok {
		logger.Warn("%s - Slot not available: booking_id=%d, reason=%s", op, bookingID, ce.Reason)
		handlers.RespondConflict(w, ce)
		return
	}

	switch {
	case errors.Is(err, updateBooking.ErrBookingNotFound):
		logger.Warn("%s - Booking not found: booking_id=%d", op, bookingID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, updateBooking.ErrAccessDenied):
		logger.Warn("%s - Access denied: booking_id=%d, user_id=%d", op, bookingID, userID)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, updateBooking.ErrInvalidTransition):
		logger.Warn("%s - Invalid status transition: booking_id=%d, error=%v", op, bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidTransition)

	case errors.Is(err, updateBooking.ErrBookingCanceled):
		logger.Warn("%s - Booking canceled: booking_id=%d", op, bookingID)
		handlers.RespondBadRequest(w, msgBookingCanceled)

	case errors.Is(err, updateBooking.ErrInvalidInput):
		logger.Warn("%s - Invalid input: booking_id=%d, error=%v", op, bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		logger.Error("%s - Failed to update booking: booking_id=%d, error=%v", op, bookingID, err)
		handlers.RespondInternalError(w)
	}
}
