package get_user_bookings

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/booking-calendar/internal/api/middleware"
	"github.com/m04kA/booking-calendar/internal/domain"
	"github.com/m04kA/booking-calendar/internal/service/bookings/models"
	"github.com/m04kA/booking-calendar/pkg/logger"
)

type serviceMock struct{ mock.Mock }

func (m *serviceMock) ListMine(ctx context.Context, actor domain.Actor) (*models.BookingListResponse, error) {
	args := m.Called(ctx, actor)
	if res := args.Get(0); res != nil {
		return res.(*models.BookingListResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func request(actor *domain.Actor) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/me", nil)
	if actor != nil {
		req = req.WithContext(middleware.WithActor(req.Context(), *actor))
	}
	return req
}

func TestHandle(t *testing.T) {
	actor := domain.Actor{UserID: 42, Role: domain.RoleUser}

	t.Run("empty list is an array", func(t *testing.T) {
		svc := &serviceMock{}
		svc.On("ListMine", mock.Anything, actor).Return(models.FromDomainBookingList(nil), nil)
		rec := httptest.NewRecorder()

		NewHandler(svc, logger.NewNop()).Handle(rec, request(&actor))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"bookings":[]}`, rec.Body.String())
	})

	t.Run("calendar", func(t *testing.T) {
		start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
		svc := &serviceMock{}
		svc.On("ListMine", mock.Anything, actor).Return(models.FromDomainBookingList([]*domain.Booking{
			{ID: 3, UserID: 42, Title: "Dentist", Start: start, End: start.Add(time.Hour), Status: domain.StatusPending},
		}), nil)
		req := request(&actor)
		req.Header.Set("Accept", "text/calendar, application/json;q=0.5")
		rec := httptest.NewRecorder()

		NewHandler(svc, logger.NewNop()).Handle(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/calendar; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), "UID:booking-3@booking-calendar\r\n")
		assert.Contains(t, rec.Body.String(), "STATUS:TENTATIVE\r\n")
	})

	t.Run("service error", func(t *testing.T) {
		svc := &serviceMock{}
		svc.On("ListMine", mock.Anything, actor).Return(nil, errors.New("boom"))
		rec := httptest.NewRecorder()

		NewHandler(svc, logger.NewNop()).Handle(rec, request(&actor))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("no actor", func(t *testing.T) {
		rec := httptest.NewRecorder()

		NewHandler(&serviceMock{}, logger.NewNop()).Handle(rec, request(nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
