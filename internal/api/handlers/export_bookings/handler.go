package export_bookings

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/m04kA/booking-calendar/internal/api/handlers"
	listBookings "github.com/m04kA/booking-calendar/internal/api/handlers/list_bookings"
	"github.com/m04kA/booking-calendar/internal/api/middleware"
	exportBookings "github.com/m04kA/booking-calendar/internal/usecase/export_bookings"
)

const (
	msgInvalidQuery  = "некорректные параметры фильтра"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	useCase ExportBookingsUseCase
	logger  Logger
}

func NewHandler(useCase ExportBookingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/export
// Принимает те же фильтры, что и GET /bookings, отдает .xlsx файл.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/export - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	listReq, err := listBookings.ParseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /bookings/export - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	filter, err := listReq.ToDomainFilter()
	if err != nil {
		h.logger.Warn("GET /bookings/export - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &exportBookings.Request{Actor: actor, Filter: filter})
	if err != nil {
		switch {
		case errors.Is(err, exportBookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings/export - Access denied: user_id=%d", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /bookings/export - Failed to export bookings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", exportBookings.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(result.Content.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := result.Content.WriteTo(w); err != nil {
		h.logger.Error("GET /bookings/export - Failed to write file: %v", err)
		return
	}

	h.logger.Info("GET /bookings/export - Bookings exported successfully: rows=%d, user_id=%d", result.Rows, actor.UserID)
}
