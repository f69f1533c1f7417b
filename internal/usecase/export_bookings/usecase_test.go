package export_bookings

import (
	"context"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/booking-calendar/internal/domain"
	"github.com/m04kA/booking-calendar/pkg/logger"
	"github.com/m04kA/booking-calendar/pkg/ptr"
)

type bookingRepoMock struct{ mock.Mock }

func (m *bookingRepoMock) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if res := args.Get(0); res != nil {
		return res.([]*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

var admin = domain.Actor{UserID: 1, Role: domain.RoleAdmin}

func TestExecute_RendersSpreadsheet(t *testing.T) {
	msk, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	repo := &bookingRepoMock{}
	filter := domain.BookingsFilter{Status: ptr.Ptr(domain.StatusConfirmed)}
	repo.On("List", mock.Anything, filter).Return([]*domain.Booking{
		{
			ID: 3, UserID: 42, Title: "Dentist", Notes: ptr.Ptr("bring card"),
			Start:  time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
			End:    time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
			Status: domain.StatusConfirmed, ExternalEventRef: ptr.Ptr("evt-1"),
			CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		},
	}, nil)

	uc := NewUseCase(repo, msk, logger.NewNop())
	uc.timeProvider = fixedTime{t: time.Date(2025, 3, 15, 7, 30, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{Actor: admin, Filter: filter})
	require.NoError(t, err)
	assert.Equal(t, "bookings_20250315_1030.xlsx", resp.Filename)
	assert.Equal(t, 1, resp.Rows)

	f, err := excelize.OpenReader(resp.Content)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, header, rows[0])
	assert.Equal(t, []string{"3", "42", "Dentist", "2025-03-10 12:00", "2025-03-10 13:00", "confirmed", "bring card", "evt-1", "2025-03-01 15:00"}, rows[1])
}

func TestExecute_EmptyList(t *testing.T) {
	repo := &bookingRepoMock{}
	repo.On("List", mock.Anything, domain.BookingsFilter{}).Return([]*domain.Booking{}, nil)

	resp, err := NewUseCase(repo, nil, logger.NewNop()).Execute(context.Background(), &Request{Actor: admin})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.Rows)
	assert.Positive(t, resp.Content.Len())
}

func TestExecute_AdminOnly(t *testing.T) {
	repo := &bookingRepoMock{}

	_, err := NewUseCase(repo, nil, logger.NewNop()).
		Execute(context.Background(), &Request{Actor: domain.Actor{UserID: 42, Role: domain.RoleUser}})

	assert.ErrorIs(t, err, ErrAccessDenied)
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestExecute_StoreError(t *testing.T) {
	repo := &bookingRepoMock{}
	repo.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	_, err := NewUseCase(repo, nil, logger.NewNop()).Execute(context.Background(), &Request{Actor: admin})

	assert.ErrorIs(t, err, ErrInternal)
}
