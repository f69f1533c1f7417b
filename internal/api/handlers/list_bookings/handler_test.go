package list_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/booking-calendar/internal/api/middleware"
	"github.com/m04kA/booking-calendar/internal/domain"
	"github.com/m04kA/booking-calendar/internal/service/bookings"
	"github.com/m04kA/booking-calendar/internal/service/bookings/models"
	"github.com/m04kA/booking-calendar/pkg/logger"
)

type serviceMock struct{ mock.Mock }

func (m *serviceMock) List(ctx context.Context, actor domain.Actor, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	args := m.Called(ctx, actor, req)
	if res := args.Get(0); res != nil {
		return res.(*models.BookingListResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestParseQuery(t *testing.T) {
	req, err := ParseQuery(url.Values{
		"status": {"confirmed"},
		"from":   {"2025-03-01T00:00:00Z"},
		"to":     {"2025-04-01T00:00:00Z"},
		"userId": {"42"},
	})

	require.NoError(t, err)
	require.NotNil(t, req.Status)
	assert.Equal(t, "confirmed", *req.Status)
	assert.Equal(t, int64(42), *req.UserID)
	assert.True(t, req.From.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, req.To.Equal(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)))

	empty, err := ParseQuery(url.Values{})
	require.NoError(t, err)
	assert.Nil(t, empty.Status)
	assert.Nil(t, empty.From)

	_, err = ParseQuery(url.Values{"from": {"yesterday"}})
	assert.Error(t, err)

	_, err = ParseQuery(url.Values{"userId": {"x"}})
	assert.Error(t, err)
}

func TestHandle(t *testing.T) {
	admin := domain.Actor{UserID: 1, Role: domain.RoleAdmin}

	tests := []struct {
		name       string
		query      string
		svcErr     error
		wantStatus int
	}{
		{"ok", "?status=pending", nil, http.StatusOK},
		{"forbidden", "", bookings.ErrAccessDenied, http.StatusForbidden},
		{"invalid filter", "?status=archived", bookings.ErrInvalidInput, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &serviceMock{}
			if tt.svcErr != nil {
				svc.On("List", mock.Anything, admin, mock.Anything).Return(nil, tt.svcErr)
			} else {
				svc.On("List", mock.Anything, admin, mock.Anything).Return(models.FromDomainBookingList(nil), nil)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings"+tt.query, nil)
			req = req.WithContext(middleware.WithActor(req.Context(), admin))
			rec := httptest.NewRecorder()

			NewHandler(svc, logger.NewNop()).Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	t.Run("bad query never reaches service", func(t *testing.T) {
		svc := &serviceMock{}
		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings?to=soon", nil)
		req = req.WithContext(middleware.WithActor(req.Context(), admin))
		rec := httptest.NewRecorder()

		NewHandler(svc, logger.NewNop()).Handle(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
	})
}
