package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	availabilityIndex "github.com/m04kA/booking-calendar/internal/availability"
	"github.com/m04kA/booking-calendar/internal/domain"
	windowRepo "github.com/m04kA/booking-calendar/internal/infra/storage/availability"
	"github.com/m04kA/booking-calendar/internal/service/availability/models"
	"github.com/m04kA/booking-calendar/pkg/logger"
	"github.com/m04kA/booking-calendar/pkg/ptr"
)

type windowRepoMock struct{ mock.Mock }

func (m *windowRepoMock) Create(ctx context.Context, w *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	args := m.Called(ctx, w)
	if args.Error(1) != nil {
		return nil, args.Error(1)
	}
	w.ID = 11
	return w, nil
}

func (m *windowRepoMock) GetByID(ctx context.Context, id int64) (*domain.AvailabilityWindow, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*domain.AvailabilityWindow), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *windowRepoMock) List(ctx context.Context) ([]*domain.AvailabilityWindow, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]*domain.AvailabilityWindow), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *windowRepoMock) Update(ctx context.Context, w *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	args := m.Called(ctx, w)
	if args.Error(1) != nil {
		return nil, args.Error(1)
	}
	return w, nil
}

func (m *windowRepoMock) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

type recordingPublisher struct{ events []domain.ChangeEvent }

func (p *recordingPublisher) Publish(_ context.Context, event domain.ChangeEvent) error {
	p.events = append(p.events, event)
	return nil
}

var (
	admin = domain.Actor{UserID: 1, Role: domain.RoleAdmin}
	user  = domain.Actor{UserID: 42, Role: domain.RoleUser}
)

func clock(hour int) time.Time {
	return time.Date(2025, 3, 10, hour, 0, 0, 0, time.UTC)
}

func newService(repo *windowRepoMock, pub *recordingPublisher) *Service {
	return NewService(repo, availabilityIndex.NewIndex(time.UTC), inlineTx{}, pub, logger.NewNop())
}

func TestCreate_Recurring(t *testing.T) {
	repo := &windowRepoMock{}
	pub := &recordingPublisher{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(w *domain.AvailabilityWindow) bool {
		return w.OwnerID == 1 && w.Recurring
	})).Return(nil, nil)

	resp, err := newService(repo, pub).Create(context.Background(), admin, &models.CreateWindowRequest{
		Start: clock(9), End: clock(17), Recurring: true, DaysOfWeek: []int{5, 1, 3, 1},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, []int{1, 3, 5}, resp.DaysOfWeek)
	require.Len(t, pub.events, 1)
	assert.Equal(t, domain.EntityAvailability, pub.events[0].EntityType)
	assert.Equal(t, domain.ActionCreate, pub.events[0].Action)
}

func TestCreate_OneTimeDropsDays(t *testing.T) {
	repo := &windowRepoMock{}
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, nil)

	resp, err := newService(repo, &recordingPublisher{}).Create(context.Background(), admin, &models.CreateWindowRequest{
		Start: clock(9), End: clock(17), DaysOfWeek: []int{1},
	})

	require.NoError(t, err)
	assert.Empty(t, resp.DaysOfWeek)
	assert.NotNil(t, resp.DaysOfWeek)
}

func TestCreate_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		actor   domain.Actor
		req     models.CreateWindowRequest
		wantErr error
	}{
		{"not admin", user, models.CreateWindowRequest{Start: clock(9), End: clock(17)}, ErrAccessDenied},
		{"inverted", admin, models.CreateWindowRequest{Start: clock(17), End: clock(9)}, ErrInvalidInput},
		{"missing end", admin, models.CreateWindowRequest{Start: clock(9)}, ErrInvalidInput},
		{"bad weekday", admin, models.CreateWindowRequest{Start: clock(9), End: clock(17), Recurring: true, DaysOfWeek: []int{7}}, ErrInvalidInput},
		{"crosses midnight", admin, models.CreateWindowRequest{
			Start: clock(22), End: clock(22).Add(4 * time.Hour), Recurring: true, DaysOfWeek: []int{1},
		}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &windowRepoMock{}
			pub := &recordingPublisher{}
			req := tt.req

			_, err := newService(repo, pub).Create(context.Background(), tt.actor, &req)

			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			assert.Empty(t, pub.events)
		})
	}
}

func TestUpdate_RecurringOffClearsDays(t *testing.T) {
	repo := &windowRepoMock{}
	pub := &recordingPublisher{}
	repo.On("GetByID", mock.Anything, int64(11)).Return(&domain.AvailabilityWindow{
		ID: 11, Start: clock(9), End: clock(17), Recurring: true, DaysOfWeek: []int{1, 2},
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil, nil)

	resp, err := newService(repo, pub).Update(context.Background(), admin, 11, &models.UpdateWindowRequest{Recurring: ptr.Ptr(false)})

	require.NoError(t, err)
	assert.False(t, resp.Recurring)
	assert.Empty(t, resp.DaysOfWeek)
	require.Len(t, pub.events, 1)
	assert.Equal(t, domain.ActionUpdate, pub.events[0].Action)
}

func TestUpdate_Partial(t *testing.T) {
	repo := &windowRepoMock{}
	repo.On("GetByID", mock.Anything, int64(11)).Return(&domain.AvailabilityWindow{
		ID: 11, Start: clock(9), End: clock(17),
	}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(w *domain.AvailabilityWindow) bool {
		return w.Start.Equal(clock(9)) && w.End.Equal(clock(19))
	})).Return(nil, nil)

	_, err := newService(repo, &recordingPublisher{}).Update(context.Background(), admin, 11, &models.UpdateWindowRequest{End: ptr.Ptr(clock(19))})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdate_Rejections(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		repo := &windowRepoMock{}
		repo.On("GetByID", mock.Anything, int64(99)).Return(nil, windowRepo.ErrWindowNotFound)

		_, err := newService(repo, &recordingPublisher{}).Update(context.Background(), admin, 99, &models.UpdateWindowRequest{End: ptr.Ptr(clock(19))})

		assert.ErrorIs(t, err, ErrWindowNotFound)
	})

	t.Run("inverted after merge", func(t *testing.T) {
		repo := &windowRepoMock{}
		repo.On("GetByID", mock.Anything, int64(11)).Return(&domain.AvailabilityWindow{ID: 11, Start: clock(9), End: clock(17)}, nil)

		_, err := newService(repo, &recordingPublisher{}).Update(context.Background(), admin, 11, &models.UpdateWindowRequest{Start: ptr.Ptr(clock(18))})

		assert.ErrorIs(t, err, ErrInvalidInput)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("empty request", func(t *testing.T) {
		_, err := newService(&windowRepoMock{}, &recordingPublisher{}).Update(context.Background(), admin, 11, &models.UpdateWindowRequest{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("not admin", func(t *testing.T) {
		_, err := newService(&windowRepoMock{}, &recordingPublisher{}).Update(context.Background(), user, 11, &models.UpdateWindowRequest{End: ptr.Ptr(clock(19))})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestDelete(t *testing.T) {
	repo := &windowRepoMock{}
	pub := &recordingPublisher{}
	repo.On("Delete", mock.Anything, int64(11)).Return(nil)
	repo.On("Delete", mock.Anything, int64(12)).Return(windowRepo.ErrWindowNotFound)
	svc := newService(repo, pub)

	require.NoError(t, svc.Delete(context.Background(), admin, 11))
	require.Len(t, pub.events, 1)
	assert.Equal(t, domain.ActionDelete, pub.events[0].Action)
	assert.Nil(t, pub.events[0].Entity)

	assert.ErrorIs(t, svc.Delete(context.Background(), admin, 12), ErrWindowNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), user, 11), ErrAccessDenied)
	assert.Len(t, pub.events, 1)
}

func TestList(t *testing.T) {
	repo := &windowRepoMock{}
	repo.On("List", mock.Anything).Return([]*domain.AvailabilityWindow{{ID: 1, Start: clock(8), End: clock(18)}}, nil)

	resp, err := newService(repo, &recordingPublisher{}).List(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Windows, 1)
	assert.Equal(t, []int{}, resp.Windows[0].DaysOfWeek)
}
