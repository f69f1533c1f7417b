package conflict

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/booking-calendar/internal/availability"
	"github.com/m04kA/booking-calendar/internal/domain"
	"github.com/m04kA/booking-calendar/pkg/ptr"
)

// memStore in-memory state; the range filter mimics the SQL one
type memStore struct {
	bookings []*domain.Booking
	windows  []*domain.AvailabilityWindow
}

func (m *memStore) ActiveInRange(_ context.Context, start, end time.Time, excludeID *int64) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range m.bookings {
		if b.Status == domain.StatusCanceled {
			continue
		}
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if b.Start.Before(end) && b.End.After(start) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memStore) ListCoverageCandidates(_ context.Context, _, _ time.Time) ([]*domain.AvailabilityWindow, error) {
	return m.windows, nil
}

func (m *memStore) book(t *testing.T, c *Checker, id int64, start, end time.Time) {
	t.Helper()
	d, err := c.CanBook(context.Background(), start, end, nil)
	require.NoError(t, err)
	require.True(t, d.Allowed, "expected booking %d to be accepted, got %s", id, d.Reason)
	m.bookings = append(m.bookings, &domain.Booking{
		ID: id, Title: "booking", Start: start, End: end, Status: domain.StatusPending,
	})
}

// 2024-06-10 is a Monday
func at(day, hour, min int) time.Time {
	return time.Date(2024, 6, day, hour, min, 0, 0, time.UTC)
}

func newStore() *memStore {
	return &memStore{
		windows: []*domain.AvailabilityWindow{
			{ID: 1, Start: at(10, 9, 0), End: at(10, 17, 0)},
		},
	}
}

func newChecker(s *memStore) *Checker {
	return NewChecker(s, s, availability.NewIndex(time.UTC))
}

func TestCanBook_CoveredRequestAccepted(t *testing.T) {
	s := newStore()

	d, err := newChecker(s).CanBook(context.Background(), at(10, 10, 0), at(10, 11, 0), nil)

	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.NoError(t, d.Err())
}

func TestCanBook_ExtendsPastWindow(t *testing.T) {
	s := newStore()

	d, err := newChecker(s).CanBook(context.Background(), at(10, 16, 30), at(10, 17, 30), nil)

	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, domain.ReasonOutsideAvailability, d.Reason)
	assert.Nil(t, d.Conflicting)
	assert.ErrorIs(t, d.Err(), ErrOutsideAvailability)
}

func TestCanBook_RecurringWindow(t *testing.T) {
	s := &memStore{
		windows: []*domain.AvailabilityWindow{
			{ID: 3, Start: at(1, 9, 0), End: at(1, 12, 0), Recurring: true, DaysOfWeek: []int{1, 3}},
		},
	}
	c := newChecker(s)

	d, err := c.CanBook(context.Background(), at(12, 10, 0), at(12, 11, 0), nil)
	require.NoError(t, err)
	assert.True(t, d.Allowed, "wednesday")

	d, err = c.CanBook(context.Background(), at(11, 10, 0), at(11, 11, 0), nil)
	require.NoError(t, err)
	assert.False(t, d.Allowed, "tuesday")
	assert.Equal(t, domain.ReasonOutsideAvailability, d.Reason)
}

func TestCanBook_OverlapCitesConflictingBooking(t *testing.T) {
	s := newStore()
	c := newChecker(s)
	s.book(t, c, 1, at(10, 10, 0), at(10, 11, 0))

	d, err := c.CanBook(context.Background(), at(10, 10, 30), at(10, 11, 30), nil)

	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, domain.ReasonOverlapsBooking, d.Reason)
	require.NotNil(t, d.Conflicting)
	assert.Equal(t, int64(1), d.Conflicting.ID)

	err = d.Err()
	assert.ErrorIs(t, err, ErrSlotOverlaps)
	ce, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, int64(1), ce.Conflicting.ID)
	assert.Contains(t, err.Error(), "2024-06-10T10:00:00Z")
}

func TestCanBook_OverlapCheckedBeforeCoverage(t *testing.T) {
	s := newStore()
	c := newChecker(s)
	s.book(t, c, 1, at(10, 16, 0), at(10, 17, 0))

	// Overlaps booking 1 and also extends past the window
	d, err := c.CanBook(context.Background(), at(10, 16, 30), at(10, 17, 30), nil)

	require.NoError(t, err)
	assert.Equal(t, domain.ReasonOverlapsBooking, d.Reason)
}

func TestCanBook_AdjacentBookingsAllowed(t *testing.T) {
	s := newStore()
	c := newChecker(s)
	s.book(t, c, 1, at(10, 10, 0), at(10, 11, 0))

	s.book(t, c, 2, at(10, 11, 0), at(10, 12, 0))
	s.book(t, c, 3, at(10, 9, 0), at(10, 10, 0))
}

func TestCanBook_ExcludeSelfOnReschedule(t *testing.T) {
	s := newStore()
	c := newChecker(s)
	s.book(t, c, 1, at(10, 10, 0), at(10, 11, 0))

	// Same interval, excluding itself
	d, err := c.CanBook(context.Background(), at(10, 10, 0), at(10, 11, 0), ptr.Ptr(int64(1)))
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	// Shifted interval overlapping its own old slot
	d, err = c.CanBook(context.Background(), at(10, 10, 30), at(10, 11, 30), ptr.Ptr(int64(1)))
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	// Without exclusion it conflicts with itself
	d, err = c.CanBook(context.Background(), at(10, 10, 0), at(10, 11, 0), nil)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
}

func TestCanBook_ExcludeDoesNotHideOthers(t *testing.T) {
	s := newStore()
	c := newChecker(s)
	s.book(t, c, 1, at(10, 10, 0), at(10, 11, 0))
	s.book(t, c, 2, at(10, 11, 0), at(10, 12, 0))

	d, err := c.CanBook(context.Background(), at(10, 10, 30), at(10, 11, 30), ptr.Ptr(int64(1)))

	require.NoError(t, err)
	assert.False(t, d.Allowed)
	require.NotNil(t, d.Conflicting)
	assert.Equal(t, int64(2), d.Conflicting.ID)
}

func TestCanBook_CancellationFreesTime(t *testing.T) {
	s := newStore()
	c := newChecker(s)
	s.book(t, c, 2, at(10, 10, 0), at(10, 11, 0))

	d, err := c.CanBook(context.Background(), at(10, 10, 0), at(10, 11, 0), nil)
	require.NoError(t, err)
	require.False(t, d.Allowed)

	s.bookings[0].Status = domain.StatusCanceled

	d, err = c.CanBook(context.Background(), at(10, 10, 0), at(10, 11, 0), nil)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

// Any sequence of accepted bookings leaves no pair of active bookings overlapping.
func TestCanBook_NoDoubleBooking(t *testing.T) {
	s := newStore()
	c := newChecker(s)

	var id int64
	for startMin := 9 * 60; startMin < 17*60; startMin += 20 {
		for _, length := range []int{30, 45, 60} {
			start := at(10, 0, 0).Add(time.Duration(startMin) * time.Minute)
			end := start.Add(time.Duration(length) * time.Minute)
			d, err := c.CanBook(context.Background(), start, end, nil)
			require.NoError(t, err)
			if d.Allowed {
				id++
				s.bookings = append(s.bookings, &domain.Booking{ID: id, Start: start, End: end, Status: domain.StatusPending})
			}
		}
	}

	require.NotEmpty(t, s.bookings)
	for i, a := range s.bookings {
		assert.True(t, s.windows[0].Start.Compare(a.Start) <= 0 && s.windows[0].End.Compare(a.End) >= 0,
			"booking %d must be covered", a.ID)
		for _, b := range s.bookings[i+1:] {
			assert.False(t, domain.Overlaps(a.Start, a.End, b.Start, b.End), "bookings %d and %d overlap", a.ID, b.ID)
		}
	}
}

type bookingRepoMock struct{ mock.Mock }

func (m *bookingRepoMock) ActiveInRange(ctx context.Context, start, end time.Time, excludeID *int64) ([]*domain.Booking, error) {
	args := m.Called(ctx, start, end, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type windowRepoMock struct{ mock.Mock }

func (m *windowRepoMock) ListCoverageCandidates(ctx context.Context, start, end time.Time) ([]*domain.AvailabilityWindow, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AvailabilityWindow), args.Error(1)
}

func TestCanBook_StoreErrors(t *testing.T) {
	dbErr := errors.New("connection reset")

	t.Run("bookings", func(t *testing.T) {
		bookings := &bookingRepoMock{}
		windows := &windowRepoMock{}
		bookings.On("ActiveInRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, dbErr)

		_, err := NewChecker(bookings, windows, availability.NewIndex(time.UTC)).
			CanBook(context.Background(), at(10, 10, 0), at(10, 11, 0), nil)

		assert.ErrorIs(t, err, ErrStore)
		assert.ErrorIs(t, err, dbErr)
		windows.AssertNotCalled(t, "ListCoverageCandidates", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("windows", func(t *testing.T) {
		bookings := &bookingRepoMock{}
		windows := &windowRepoMock{}
		bookings.On("ActiveInRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)
		windows.On("ListCoverageCandidates", mock.Anything, mock.Anything, mock.Anything).Return(nil, dbErr)

		_, err := NewChecker(bookings, windows, availability.NewIndex(time.UTC)).
			CanBook(context.Background(), at(10, 10, 0), at(10, 11, 0), nil)

		assert.ErrorIs(t, err, ErrStore)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestFirstOverlap_IgnoresCanceledAndExcluded(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, Start: at(10, 10, 0), End: at(10, 11, 0), Status: domain.StatusCanceled},
		{ID: 2, Start: at(10, 10, 0), End: at(10, 11, 0), Status: domain.StatusConfirmed},
		{ID: 3, Start: at(10, 10, 0), End: at(10, 11, 0), Status: domain.StatusPending},
	}

	got := FirstOverlap(at(10, 10, 0), at(10, 11, 0), bookings, ptr.Ptr(int64(2)))

	require.NotNil(t, got)
	assert.Equal(t, int64(3), got.ID)
}

func TestCiteOverlap(t *testing.T) {
	s := newStore()
	s.bookings = []*domain.Booking{
		{ID: 7, Title: "Standup", Start: at(10, 10, 0), End: at(10, 11, 0), Status: domain.StatusConfirmed},
	}
	c := newChecker(s)
	bare := &Error{Reason: domain.ReasonOverlapsBooking}

	t.Run("attaches the booking found after rollback", func(t *testing.T) {
		got := CiteOverlap(context.Background(), c, bare, at(10, 10, 30), at(10, 11, 30), nil)

		require.NotNil(t, got.Conflicting)
		assert.Equal(t, int64(7), got.Conflicting.ID)
		assert.ErrorIs(t, got, ErrSlotOverlaps)
	})

	t.Run("competing booking already gone", func(t *testing.T) {
		got := CiteOverlap(context.Background(), c, bare, at(10, 12, 0), at(10, 13, 0), nil)

		assert.Same(t, bare, got)
	})

	t.Run("excluded booking is not cited", func(t *testing.T) {
		got := CiteOverlap(context.Background(), c, bare, at(10, 10, 30), at(10, 11, 30), ptr.Ptr(int64(7)))

		assert.Nil(t, got.Conflicting)
	})

	t.Run("already cited or other reason", func(t *testing.T) {
		cited := &Error{Reason: domain.ReasonOverlapsBooking, Conflicting: s.bookings[0]}
		outside := &Error{Reason: domain.ReasonOutsideAvailability}

		assert.Same(t, cited, CiteOverlap(context.Background(), c, cited, at(10, 10, 30), at(10, 11, 30), nil))
		assert.Same(t, outside, CiteOverlap(context.Background(), c, outside, at(10, 10, 30), at(10, 11, 30), nil))
	})
}
