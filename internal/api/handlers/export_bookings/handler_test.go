package export_bookings

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/booking-calendar/internal/api/middleware"
	"github.com/m04kA/booking-calendar/internal/domain"
	exportBookings "github.com/m04kA/booking-calendar/internal/usecase/export_bookings"
	"github.com/m04kA/booking-calendar/pkg/logger"
)

type useCaseMock struct{ mock.Mock }

func (m *useCaseMock) Execute(ctx context.Context, req *exportBookings.Request) (*exportBookings.Response, error) {
	args := m.Called(ctx, req)
	if res := args.Get(0); res != nil {
		return res.(*exportBookings.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

var admin = domain.Actor{UserID: 1, Role: domain.RoleAdmin}

func serve(uc *useCaseMock, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/export"+query, nil)
	req = req.WithContext(middleware.WithActor(req.Context(), admin))
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_File(t *testing.T) {
	uc := &useCaseMock{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *exportBookings.Request) bool {
		return r.Actor == admin && r.Filter.Status != nil && *r.Filter.Status == domain.StatusConfirmed
	})).Return(&exportBookings.Response{
		Content:  bytes.NewBufferString("xlsx-bytes"),
		Filename: "bookings_20250310_1000.xlsx",
		Rows:     3,
	}, nil)

	rec := serve(uc, "?status=confirmed")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, exportBookings.ContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="bookings_20250310_1000.xlsx"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "xlsx-bytes", rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	t.Run("forbidden", func(t *testing.T) {
		uc := &useCaseMock{}
		uc.On("Execute", mock.Anything, mock.Anything).Return(nil, exportBookings.ErrAccessDenied)
		assert.Equal(t, http.StatusForbidden, serve(uc, "").Code)
	})

	t.Run("generate failure", func(t *testing.T) {
		uc := &useCaseMock{}
		uc.On("Execute", mock.Anything, mock.Anything).Return(nil, errors.Join(exportBookings.ErrGenerate, errors.New("disk")))
		assert.Equal(t, http.StatusInternalServerError, serve(uc, "").Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		uc := &useCaseMock{}
		assert.Equal(t, http.StatusBadRequest, serve(uc, "?status=archived").Code)
		uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	})
}
