package list_availability

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/booking-calendar/internal/domain"
	"github.com/m04kA/booking-calendar/internal/service/availability/models"
	"github.com/m04kA/booking-calendar/pkg/logger"
)

type serviceMock struct{ mock.Mock }

func (m *serviceMock) List(ctx context.Context) (*models.WindowListResponse, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.(*models.WindowListResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestHandle(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("ok", func(t *testing.T) {
		svc := &serviceMock{}
		svc.On("List", mock.Anything).Return(models.FromDomainWindowList([]*domain.AvailabilityWindow{
			{ID: 1, Start: start, End: start.Add(8 * time.Hour), Recurring: true, DaysOfWeek: []int{1, 2}},
		}), nil)
		rec := httptest.NewRecorder()

		NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/availability", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"daysOfWeek":[1,2]`)
	})

	t.Run("error", func(t *testing.T) {
		svc := &serviceMock{}
		svc.On("List", mock.Anything).Return(nil, errors.New("boom"))
		rec := httptest.NewRecorder()

		NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/availability", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
