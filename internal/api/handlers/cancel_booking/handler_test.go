package cancel_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/booking-calendar/internal/api/middleware"
	"github.com/m04kA/booking-calendar/internal/domain"
	updateBooking "github.com/m04kA/booking-calendar/internal/usecase/update_booking"
	"github.com/m04kA/booking-calendar/pkg/logger"
)

type useCaseMock struct{ mock.Mock }

func (m *useCaseMock) Execute(ctx context.Context, req *updateBooking.Request) (*updateBooking.Response, error) {
	args := m.Called(ctx, req)
	if res := args.Get(0); res != nil {
		return res.(*updateBooking.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(h *Handler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+id+"/cancel", nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": id})
	req = req.WithContext(middleware.WithActor(req.Context(), domain.Actor{UserID: 42, Role: domain.RoleUser}))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_SetsCanceledStatus(t *testing.T) {
	uc := &useCaseMock{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *updateBooking.Request) bool {
		return r.BookingID == 9 && r.Status != nil && *r.Status == domain.StatusCanceled &&
			r.Start == nil && r.End == nil && r.Title == nil
	})).Return(&updateBooking.Response{Booking: &domain.Booking{ID: 9, Status: domain.StatusCanceled}}, nil)

	rec := serve(NewHandler(uc, logger.NewNop()), "9")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"canceled"`)
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		ucErr      error
		wantStatus int
	}{
		{"not found", updateBooking.ErrBookingNotFound, http.StatusNotFound},
		{"forbidden", updateBooking.ErrAccessDenied, http.StatusForbidden},
		{"transition", updateBooking.ErrInvalidTransition, http.StatusBadRequest},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &useCaseMock{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)

			rec := serve(NewHandler(uc, logger.NewNop()), "9")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	t.Run("bad id", func(t *testing.T) {
		rec := serve(NewHandler(&useCaseMock{}, logger.NewNop()), "-1")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
