package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/deskhub/booking-api/internal/core"
	"github.com/deskhub/booking-api/internal/data"
	domainauth "github.com/deskhub/booking-api/internal/domain/auth"
	"github.com/deskhub/booking-api/internal/domain/model"
	apperrors "github.com/deskhub/booking-api/internal/errors"
)

// BookingServiceOptions groups dependencies for BookingService.
type BookingServiceOptions struct {
	Bookings   core.BookingRepository
	Workplaces core.WorkplaceRepository
	Logger     DebugLogger      // optional
	Now        func() time.Time // optional, defaults to time.Now
}

// BookingService manages workplace reservations. Overlap detection for
// concurrent writes lives in the repository; this layer enforces the
// ownership and lifecycle rules on top of it.
type BookingService struct {
	bookings   core.BookingRepository
	workplaces core.WorkplaceRepository
	log        DebugLogger
	now        func() time.Time
}

// NewBookingService constructs a new BookingService.
func NewBookingService(opts BookingServiceOptions) *BookingService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &BookingService{
		bookings:   opts.Bookings,
		workplaces: opts.Workplaces,
		log:        opts.Logger,
		now:        now,
	}
}

// BookingListResult is a page of bookings plus the unpaged total.
type BookingListResult struct {
	Items []*model.Booking `json:"items"`
	Total int64            `json:"total"`
}

// WorkplaceOccupancy pairs a workplace with the active booking holding
// it inside the requested window, if any.
type WorkplaceOccupancy struct {
	Workplace *model.Workplace `json:"workplace"`
	Occupied  bool             `json:"occupied"`
	Booking   *model.Booking   `json:"booking,omitempty"`
}

// OccupancyResult describes which workplaces are free and which are
// taken within a window.
type OccupancyResult struct {
	Items []*WorkplaceOccupancy `json:"items"`
	Total int64                 `json:"total"`
}

// Create books a workplace for the principal. The window must start in
// the future and the workplace must exist and be active.
func (s *BookingService) Create(ctx context.Context, principal *domainauth.Principal, req *model.CreateBookingRequest) (*model.Booking, error) {
	if principal == nil {
		return nil, apperrors.Unauthorized("authentication required")
	}
	if req == nil {
		return nil, apperrors.Validation("create booking request is required")
	}
	req.UserID = principal.Subject
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	if req.StartsAt.Before(s.now()) {
		return nil, apperrors.ValidationField("starts_at", "booking cannot start in the past")
	}

	workplace, err := s.workplaces.GetByID(ctx, req.WorkplaceID)
	if err != nil {
		if errors.Is(err, data.ErrWorkplaceNotFound) {
			return nil, apperrors.ValidationField("workplace_id", "workplace does not exist")
		}
		return nil, fmt.Errorf("check workplace: %w", err)
	}
	if !workplace.Active {
		return nil, apperrors.Conflict("workplace is not available for booking")
	}

	booking, err := s.bookings.Create(ctx, req)
	if err != nil {
		return nil, mapBookingWriteErr(err)
	}
	if s.log != nil {
		s.log.Debug("booking created",
			"booking_id", booking.ID,
			"workplace_id", booking.WorkplaceID,
			"user_id", booking.UserID)
	}
	return booking, nil
}

// GetByID returns a booking. Regular users may only see their own
// bookings; admins see everything.
func (s *BookingService) GetByID(ctx context.Context, principal *domainauth.Principal, id string) (*model.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrBookingNotFound) {
			return nil, apperrors.NotFound("booking not found")
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if !canManageBooking(principal, booking) {
		return nil, apperrors.Forbidden("you may only view your own bookings")
	}
	return booking, nil
}

// List returns a page of bookings with the total matching count.
// Regular users are forced onto their own bookings regardless of the
// requested user filter.
func (s *BookingService) List(ctx context.Context, principal *domainauth.Principal, opts model.BookingListOptions) (*BookingListResult, error) {
	if principal == nil {
		return nil, apperrors.Unauthorized("authentication required")
	}
	if !domainauth.Authorize(principal, domainauth.RoleAdmin) {
		self := principal.Subject
		opts.UserID = &self
	}

	bookings, err := s.bookings.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	total, err := s.bookings.Count(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}
	return &BookingListResult{Items: bookings, Total: total}, nil
}

// UpdateWindow moves a booking to a new window. Either bound may be
// omitted and keeps its stored value. Only the owner or an admin may
// move a booking, and only while it is active.
func (s *BookingService) UpdateWindow(ctx context.Context, principal *domainauth.Principal, id string, req model.UpdateBookingRequest) (*model.Booking, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrBookingNotFound) {
			return nil, apperrors.NotFound("booking not found")
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if !canManageBooking(principal, booking) {
		return nil, apperrors.Forbidden("you may only modify your own bookings")
	}
	if booking.Status != model.BookingStatusActive {
		return nil, apperrors.Conflict("only active bookings can be moved")
	}

	startsAt := booking.StartsAt
	endsAt := booking.EndsAt
	if req.StartsAt != nil {
		startsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		endsAt = *req.EndsAt
	}
	if !startsAt.Before(endsAt) {
		return nil, apperrors.Validation("starts_at must be before ends_at")
	}

	updated, err := s.bookings.UpdateWindow(ctx, id, startsAt, endsAt)
	if err != nil {
		return nil, mapBookingWriteErr(err)
	}
	return updated, nil
}

// Cancel flips a booking to cancelled, releasing its window for other
// users. Cancelling an already cancelled booking is a no-op conflict.
func (s *BookingService) Cancel(ctx context.Context, principal *domainauth.Principal, id string) (*model.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrBookingNotFound) {
			return nil, apperrors.NotFound("booking not found")
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if !canManageBooking(principal, booking) {
		return nil, apperrors.Forbidden("you may only cancel your own bookings")
	}
	if booking.Status == model.BookingStatusCancelled {
		return nil, apperrors.Conflict("booking is already cancelled")
	}

	cancelled, err := s.bookings.SetStatus(ctx, id, model.BookingStatusCancelled)
	if err != nil {
		return nil, mapBookingWriteErr(err)
	}
	if s.log != nil {
		s.log.Debug("booking cancelled", "booking_id", id, "by", principal.Subject)
	}
	return cancelled, nil
}

// Delete hard-deletes a booking. Admin only; regular cleanup should use
// Cancel instead.
func (s *BookingService) Delete(ctx context.Context, id string) error {
	ok, err := s.bookings.Delete(ctx, id)
	if err != nil {
		return apperrors.MapDBError(err)
	}
	if !ok {
		return apperrors.NotFound("booking not found")
	}
	return nil
}

// Occupancy reports which workplaces matching the filter are taken
// inside [from, to). The workplace page and its total are fetched
// concurrently, then active bookings are resolved in one query.
func (s *BookingService) Occupancy(ctx context.Context, opts model.WorkplaceListOptions, from, to time.Time) (*OccupancyResult, error) {
	if from.IsZero() || to.IsZero() {
		return nil, apperrors.Validation("from and to are required")
	}
	if !from.Before(to) {
		return nil, apperrors.Validation("from must be before to")
	}

	var (
		workplaces []*model.Workplace
		total      int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		workplaces, err = s.workplaces.List(gctx, opts)
		if err != nil {
			return fmt.Errorf("list workplaces: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		total, err = s.workplaces.Count(gctx, opts)
		if err != nil {
			return fmt.Errorf("count workplaces: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(workplaces))
	for _, wp := range workplaces {
		ids = append(ids, wp.ID)
	}
	bookings, err := s.bookings.ListActiveForWorkplaces(ctx, ids, from, to)
	if err != nil {
		return nil, fmt.Errorf("list active bookings: %w", err)
	}

	byWorkplace := make(map[string]*model.Booking, len(bookings))
	for _, b := range bookings {
		// keep the earliest booking per workplace for display
		if cur, ok := byWorkplace[b.WorkplaceID]; !ok || b.StartsAt.Before(cur.StartsAt) {
			byWorkplace[b.WorkplaceID] = b
		}
	}

	items := make([]*WorkplaceOccupancy, 0, len(workplaces))
	for _, wp := range workplaces {
		booking := byWorkplace[wp.ID]
		items = append(items, &WorkplaceOccupancy{
			Workplace: wp,
			Occupied:  booking != nil,
			Booking:   booking,
		})
	}
	return &OccupancyResult{Items: items, Total: total}, nil
}

// canManageBooking reports whether the principal owns the booking or is
// an admin.
func canManageBooking(principal *domainauth.Principal, booking *model.Booking) bool {
	if principal == nil {
		return false
	}
	if domainauth.Authorize(principal, domainauth.RoleAdmin) {
		return true
	}
	return principal.Subject == booking.UserID
}

func mapBookingWriteErr(err error) error {
	switch {
	case errors.Is(err, data.ErrBookingNotFound):
		return apperrors.NotFound("booking not found")
	case errors.Is(err, data.ErrBookingOverlap):
		return apperrors.Conflict("the workplace is already booked for this window")
	default:
		return apperrors.MapDBError(err)
	}
}
