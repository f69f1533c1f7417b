package list_availability

import (
	"net/http"

	"github.com/m04kA/booking-calendar/internal/api/handlers"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /availability - Failed to list availability windows: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability - Availability windows retrieved successfully: count=%d", len(result.Windows))
	handlers.RespondJSON(w, http.StatusOK, result)
}
