package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/deskhub/booking-api/internal/data"
	domainauth "github.com/deskhub/booking-api/internal/domain/auth"
	"github.com/deskhub/booking-api/internal/domain/model"
	apperrors "github.com/deskhub/booking-api/internal/errors"
	"github.com/deskhub/booking-api/internal/mocks"
)

const (
	testBookingID   = "b0000000-e29b-41d4-a716-446655440010"
	testWorkplaceID = "a0000000-e29b-41d4-a716-446655440020"
)

type bookingMocks struct {
	bookings   *mocks.MockBookingRepository
	workplaces *mocks.MockWorkplaceRepository
}

func newTestBookingService(t *testing.T) (*BookingService, bookingMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := bookingMocks{
		bookings:   mocks.NewMockBookingRepository(ctrl),
		workplaces: mocks.NewMockWorkplaceRepository(ctrl),
	}
	svc := NewBookingService(BookingServiceOptions{
		Bookings:   m.bookings,
		Workplaces: m.workplaces,
		Now:        func() time.Time { return testNow },
	})
	return svc, m
}

func userPrincipal(subject string) *domainauth.Principal {
	return &domainauth.Principal{
		Subject: subject,
		Roles:   domainauth.NewRoleSet("user"),
	}
}

func adminPrincipal() *domainauth.Principal {
	return &domainauth.Principal{
		Subject: "admin-id",
		Roles:   domainauth.NewRoleSet("admin", "user"),
	}
}

func futureWindow() (time.Time, time.Time) {
	return testNow.Add(24 * time.Hour), testNow.Add(26 * time.Hour)
}

func TestBookingService_Create_Success(t *testing.T) {
	svc, m := newTestBookingService(t)
	ctx := context.Background()
	from, to := futureWindow()

	m.workplaces.EXPECT().
		GetByID(ctx, testWorkplaceID).
		Return(&model.Workplace{ID: testWorkplaceID, Active: true}, nil)
	m.bookings.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req *model.CreateBookingRequest) (*model.Booking, error) {
			assert.Equal(t, testUserID, req.UserID)
			return &model.Booking{
				ID:          testBookingID,
				UserID:      req.UserID,
				WorkplaceID: req.WorkplaceID,
				StartsAt:    req.StartsAt,
				EndsAt:      req.EndsAt,
				Status:      model.BookingStatusActive,
			}, nil
		})

	booking, err := svc.Create(ctx, userPrincipal(testUserID), &model.CreateBookingRequest{
		WorkplaceID: testWorkplaceID,
		StartsAt:    from,
		EndsAt:      to,
	})

	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusActive, booking.Status)
	assert.Equal(t, testUserID, booking.UserID)
}

func TestBookingService_Create_Anonymous(t *testing.T) {
	svc, _ := newTestBookingService(t)
	from, to := futureWindow()

	_, err := svc.Create(context.Background(), nil, &model.CreateBookingRequest{
		WorkplaceID: testWorkplaceID,
		StartsAt:    from,
		EndsAt:      to,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestBookingService_Create_PastWindow(t *testing.T) {
	svc, _ := newTestBookingService(t)

	_, err := svc.Create(context.Background(), userPrincipal(testUserID), &model.CreateBookingRequest{
		WorkplaceID: testWorkplaceID,
		StartsAt:    testNow.Add(-2 * time.Hour),
		EndsAt:      testNow.Add(-1 * time.Hour),
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "starts_at", apperrors.GetField(err))
}

func TestBookingService_Create_InactiveWorkplace(t *testing.T) {
	svc, m := newTestBookingService(t)
	ctx := context.Background()
	from, to := futureWindow()

	m.workplaces.EXPECT().
		GetByID(ctx, testWorkplaceID).
		Return(&model.Workplace{ID: testWorkplaceID, Active: false}, nil)

	_, err := svc.Create(ctx, userPrincipal(testUserID), &model.CreateBookingRequest{
		WorkplaceID: testWorkplaceID,
		StartsAt:    from,
		EndsAt:      to,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestBookingService_Create_MissingWorkplace(t *testing.T) {
	svc, m := newTestBookingService(t)
	ctx := context.Background()
	from, to := futureWindow()

	m.workplaces.EXPECT().
		GetByID(ctx, testWorkplaceID).
		Return(nil, data.ErrWorkplaceNotFound)

	_, err := svc.Create(ctx, userPrincipal(testUserID), &model.CreateBookingRequest{
		WorkplaceID: testWorkplaceID,
		StartsAt:    from,
		EndsAt:      to,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "workplace_id", apperrors.GetField(err))
}

func TestBookingService_Create_Overlap(t *testing.T) {
	svc, m := newTestBookingService(t)
	ctx := context.Background()
	from, to := futureWindow()

	m.workplaces.EXPECT().
		GetByID(ctx, testWorkplaceID).
		Return(&model.Workplace{ID: testWorkplaceID, Active: true}, nil)
	m.bookings.EXPECT().
		Create(ctx, gomock.Any()).
		Return(nil, data.ErrBookingOverlap)

	_, err := svc.Create(ctx, userPrincipal(testUserID), &model.CreateBookingRequest{
		WorkplaceID: testWorkplaceID,
		StartsAt:    from,
		EndsAt:      to,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestBookingService_GetByID_OwnerOnly(t *testing.T) {
	svc, m := newTestBookingService(t)
	ctx := context.Background()

	booking := &model.Booking{ID: testBookingID, UserID: testUserID}
	m.bookings.EXPECT().GetByID(ctx, testBookingID).Return(booking, nil).Times(3)

	// owner sees it
	got, err := svc.GetByID(ctx, userPrincipal(testUserID), testBookingID)
	require.NoError(t, err)
	assert.Equal(t, booking, got)

	// another user does not
	_, err = svc.GetByID(ctx, userPrincipal("someone-else"), testBookingID)
	require.Error(t, err)
	assert.True(t, apperrors.IsForbidden(err))

	// admin always does
	_, err = svc.GetByID(ctx, adminPrincipal(), testBookingID)
	require.NoError(t, err)
}

func TestBookingService_List_ScopesToSelf(t *testing.T) {
	svc, m := newTestBookingService(t)
	ctx := context.Background()

	otherID := "someone-else"
	m.bookings.EXPECT().
		List(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, opts model.BookingListOptions) ([]*model.Booking, error) {
			// the foreign user filter must be overridden with the caller
			require.NotNil(t, opts.UserID)
			assert.Equal(t, testUserID, *opts.UserID)
			return []*model.Booking{}, nil
		})
	m.bookings.EXPECT().
		Count(ctx, gomock.Any()).
		Return(int64(0), nil)

	_, err := svc.List(ctx, userPrincipal(testUserID), model.BookingListOptions{UserID: &otherID})
	require.NoError(t, err)
}

func TestBookingService_List_AdminKeepsFilter(t *testing.T) {
	svc, m := newTestBookingService(t)
	ctx := context.Background()

	otherID := "someone-else"
	opts := model.BookingListOptions{UserID: &otherID}
	m.bookings.EXPECT().List(ctx, opts).Return([]*model.Booking{}, nil)
	m.bookings.EXPECT().Count(ctx, opts).Return(int64(0), nil)

	_, err := svc.List(ctx, adminPrincipal(), opts)
	require.NoError(t, err)
}

func TestBookingService_UpdateWindow_FillsMissingBound(t *testing.T) {
	svc, m := newTestBookingService(t)
	ctx := context.Background()
	from, to := futureWindow()
	newEnd := to.Add(time.Hour)

	booking := &model.Booking{
		ID:       testBookingID,
		UserID:   testUserID,
		StartsAt: from,
		EndsAt:   to,
		Status:   model.BookingStatusActive,
	}
	m.bookings.EXPECT().GetByID(ctx, testBookingID).Return(booking, nil)
	m.bookings.EXPECT().
		UpdateWindow(ctx, testBookingID, from, newEnd).
		Return(&model.Booking{ID: testBookingID, StartsAt: from, EndsAt: newEnd}, nil)

	updated, err := svc.UpdateWindow(ctx, userPrincipal(testUserID), testBookingID, model.UpdateBookingRequest{
		EndsAt: &newEnd,
	})

	require.NoError(t, err)
	assert.Equal(t, newEnd, updated.EndsAt)
}

func TestBookingService_UpdateWindow_CancelledBooking(t *testing.T) {
	svc, m := newTestBookingService(t)
	ctx := context.Background()
	from, to := futureWindow()
	newEnd := to.Add(time.Hour)

	m.bookings.EXPECT().
		GetByID(ctx, testBookingID).
		Return(&model.Booking{
			ID:       testBookingID,
			UserID:   testUserID,
			StartsAt: from,
			EndsAt:   to,
			Status:   model.BookingStatusCancelled,
		}, nil)

	_, err := svc.UpdateWindow(ctx, userPrincipal(testUserID), testBookingID, model.UpdateBookingRequest{
		EndsAt: &newEnd,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestBookingService_Cancel_Owner(t *testing.T) {
	svc, m := newTestBookingService(t)
	ctx := context.Background()

	m.bookings.EXPECT().
		GetByID(ctx, testBookingID).
		Return(&model.Booking{ID: testBookingID, UserID: testUserID, Status: model.BookingStatusActive}, nil)
	m.bookings.EXPECT().
		SetStatus(ctx, testBookingID, model.BookingStatusCancelled).
		Return(&model.Booking{ID: testBookingID, Status: model.BookingStatusCancelled}, nil)

	cancelled, err := svc.Cancel(ctx, userPrincipal(testUserID), testBookingID)

	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusCancelled, cancelled.Status)
}

func TestBookingService_Cancel_ForeignBooking(t *testing.T) {
	svc, m := newTestBookingService(t)
	ctx := context.Background()

	m.bookings.EXPECT().
		GetByID(ctx, testBookingID).
		Return(&model.Booking{ID: testBookingID, UserID: "someone-else", Status: model.BookingStatusActive}, nil)

	_, err := svc.Cancel(ctx, userPrincipal(testUserID), testBookingID)

	require.Error(t, err)
	assert.True(t, apperrors.IsForbidden(err))
}

func TestBookingService_Cancel_AlreadyCancelled(t *testing.T) {
	svc, m := newTestBookingService(t)
	ctx := context.Background()

	m.bookings.EXPECT().
		GetByID(ctx, testBookingID).
		Return(&model.Booking{ID: testBookingID, UserID: testUserID, Status: model.BookingStatusCancelled}, nil)

	_, err := svc.Cancel(ctx, userPrincipal(testUserID), testBookingID)

	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestBookingService_Occupancy(t *testing.T) {
	svc, m := newTestBookingService(t)
	ctx := context.Background()
	from, to := futureWindow()

	wp1 := &model.Workplace{ID: "wp-1"}
	wp2 := &model.Workplace{ID: "wp-2"}
	opts := model.WorkplaceListOptions{Limit: 50}

	m.workplaces.EXPECT().
		List(gomock.Any(), opts).
		Return([]*model.Workplace{wp1, wp2}, nil)
	m.workplaces.EXPECT().
		Count(gomock.Any(), opts).
		Return(int64(2), nil)
	m.bookings.EXPECT().
		ListActiveForWorkplaces(ctx, []string{"wp-1", "wp-2"}, from, to).
		Return([]*model.Booking{
			{ID: testBookingID, WorkplaceID: "wp-1", StartsAt: from, EndsAt: to},
		}, nil)

	result, err := svc.Occupancy(ctx, opts, from, to)

	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, int64(2), result.Total)
	assert.True(t, result.Items[0].Occupied)
	assert.Equal(t, testBookingID, result.Items[0].Booking.ID)
	assert.False(t, result.Items[1].Occupied)
	assert.Nil(t, result.Items[1].Booking)
}

func TestBookingService_Occupancy_InvalidWindow(t *testing.T) {
	svc, _ := newTestBookingService(t)
	from, _ := futureWindow()

	_, err := svc.Occupancy(context.Background(), model.WorkplaceListOptions{}, from, from)

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}
