package get_user_bookings

import (
	"net/http"

	"github.com/m04kA/booking-calendar/internal/api/handlers"
	"github.com/m04kA/booking-calendar/internal/api/middleware"
)

const msgMissingUserID = "отсутствует ID пользователя"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/me
// Accept: text/calendar переключает ответ на iCalendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/me - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.ListMine(r.Context(), actor)
	if err != nil {
		h.logger.Error("GET /bookings/me - Failed to get user bookings: user_id=%d, error=%v", actor.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	if handlers.WantsCalendar(r) {
		if err := handlers.RespondCalendar(w, "my-bookings.ics", result.ToDomain()); err != nil {
			h.logger.Error("GET /bookings/me - Failed to write calendar: user_id=%d, error=%v", actor.UserID, err)
			return
		}
		h.logger.Info("GET /bookings/me - User bookings exported as iCalendar: user_id=%d, count=%d",
			actor.UserID, len(result.Bookings))
		return
	}

	h.logger.Info("GET /bookings/me - User bookings retrieved successfully: user_id=%d, count=%d",
		actor.UserID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
