package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/deskhub/booking-api/internal/data/database"
	"github.com/deskhub/booking-api/internal/data/pgxutil"
	"github.com/deskhub/booking-api/internal/domain/model"
)

// BookingRepo provides database operations for bookings. Overlap checks
// and inserts run in one serialized transaction so two concurrent
// requests for the same workplace window cannot both succeed.
type BookingRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewBookingRepo creates a new BookingRepo with real time provider.
func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewBookingRepoWithTimeProvider creates a new BookingRepo with a custom time provider (useful for tests).
func NewBookingRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *BookingRepo {
	return &BookingRepo{DB: db, timeProvider: tp}
}

// Create inserts a new active booking after verifying no active booking
// for the same workplace overlaps [StartsAt, EndsAt). Returns
// ErrBookingOverlap when the window is taken.
func (r *BookingRepo) Create(ctx context.Context, req *model.CreateBookingRequest) (*model.Booking, error) {
	if req == nil {
		return nil, errors.New("create booking request is required")
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.Booking
	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{
		Opts: &sql.TxOptions{Isolation: sql.LevelSerializable},
		Fn: func(tx pgx.Tx) error {
			var exists bool
			err := tx.QueryRow(ctx, bookingOverlapQuery,
				req.WorkplaceID, req.StartsAt.UTC(), req.EndsAt.UTC(),
			).Scan(&exists)
			if err != nil {
				return err
			}
			if exists {
				return ErrBookingOverlap
			}

			rows, err := tx.Query(ctx, `
				INSERT INTO bookings (user_id, workplace_id, starts_at, ends_at, status, created_at)
				VALUES ($1, $2, $3, $4, 'active', $5)
				RETURNING id, user_id, workplace_id, starts_at, ends_at, status, created_at, updated_at
			`,
				req.UserID,
				req.WorkplaceID,
				req.StartsAt.UTC(),
				req.EndsAt.UTC(),
				createdAt,
			)
			if err != nil {
				return err
			}
			defer rows.Close()
			out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Booking])
			return err
		},
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByID retrieves a booking by ID.
func (r *BookingRepo) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	var booking model.Booking
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, bookingGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		booking, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Booking])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking by ID: %w", err)
	}
	return &booking, nil
}

// List retrieves bookings with optional filters and sorting.
func (r *BookingRepo) List(ctx context.Context, opts model.BookingListOptions) ([]*model.Booking, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	queryOpts := []database.ListQueryOption{
		database.WithColumns(bookingColumns()...),
		database.WithLimit(limit),
		database.WithOffset(offset),
	}
	queryOpts = append(queryOpts, r.bookingFilterOptions(opts)...)

	sortCol, sortDir := validateSort(opts.Sort, opts.Dir, map[string]string{
		"starts_at":  "starts_at",
		"ends_at":    "ends_at",
		"created_at": "created_at",
	})
	queryOpts = append(queryOpts, database.WithOrderBy(sortCol, sortDir))

	query, args := database.BuildListQuery(database.NewListQueryOptions("bookings", queryOpts...))

	var rowsOut []model.Booking
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Booking])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	res := make([]*model.Booking, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Count returns the number of bookings matching the filters.
func (r *BookingRepo) Count(ctx context.Context, opts model.BookingListOptions) (int64, error) {
	queryOpts := database.NewListQueryOptions("bookings",
		append(r.bookingFilterOptions(opts), database.WithCountOnly())...,
	)
	query, args := database.BuildListQuery(queryOpts)

	var count int64
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, query, args...).Scan(&count)
	}); err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}

// UpdateWindow moves a booking to a new [startsAt, endsAt) window,
// re-checking overlap against other active bookings on the same
// workplace inside a serialized transaction.
func (r *BookingRepo) UpdateWindow(ctx context.Context, id string, startsAt, endsAt time.Time) (*model.Booking, error) {
	var out model.Booking
	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{
		Opts: &sql.TxOptions{Isolation: sql.LevelSerializable},
		Fn: func(tx pgx.Tx) error {
			var workplaceID string
			err := tx.QueryRow(ctx,
				`SELECT workplace_id FROM bookings WHERE id = $1`, id,
			).Scan(&workplaceID)
			if err != nil {
				return err
			}

			var exists bool
			err = tx.QueryRow(ctx, bookingOverlapExcludingQuery,
				workplaceID, startsAt.UTC(), endsAt.UTC(), id,
			).Scan(&exists)
			if err != nil {
				return err
			}
			if exists {
				return ErrBookingOverlap
			}

			rows, err := tx.Query(ctx, `
				UPDATE bookings SET starts_at = $1, ends_at = $2, updated_at = $3
				WHERE id = $4
				RETURNING id, user_id, workplace_id, starts_at, ends_at, status, created_at, updated_at
			`, startsAt.UTC(), endsAt.UTC(), r.timeProvider.Now().UTC(), id)
			if err != nil {
				return err
			}
			defer rows.Close()
			out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Booking])
			return err
		},
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &out, nil
}

// SetStatus transitions a booking to the given status.
func (r *BookingRepo) SetStatus(ctx context.Context, id string, status model.BookingStatus) (*model.Booking, error) {
	var out model.Booking
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE bookings SET status = $1, updated_at = $2 WHERE id = $3
			RETURNING id, user_id, workplace_id, starts_at, ends_at, status, created_at, updated_at
		`, status, r.timeProvider.Now().UTC(), id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Booking])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to set booking status: %w", err)
	}
	return &out, nil
}

// ListActiveForWorkplaces returns active bookings that overlap [from, to)
// for any of the given workplaces. Used for occupancy views.
func (r *BookingRepo) ListActiveForWorkplaces(
	ctx context.Context,
	workplaceIDs []string,
	from, to time.Time,
) ([]*model.Booking, error) {
	if len(workplaceIDs) == 0 {
		return nil, nil
	}

	var rowsOut []model.Booking
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT id, user_id, workplace_id, starts_at, ends_at, status, created_at, updated_at
			FROM bookings
			WHERE workplace_id = ANY($1)
			  AND status = 'active'
			  AND starts_at < $3
			  AND ends_at > $2
			ORDER BY starts_at
		`, workplaceIDs, from.UTC(), to.UTC())
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Booking])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list bookings for workplaces: %w", err)
	}
	res := make([]*model.Booking, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Delete deletes a booking by ID.
func (r *BookingRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete booking: %w", err)
	}
	return rows > 0, nil
}

// --- helpers ---

// Windows are half-open: a booking ending exactly when another starts
// does not overlap it.
const (
	bookingGetByIDQuery = `
		SELECT id, user_id, workplace_id, starts_at, ends_at, status, created_at, updated_at
		FROM bookings
		WHERE id = $1`

	bookingOverlapQuery = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE workplace_id = $1
			  AND status = 'active'
			  AND starts_at < $3
			  AND ends_at > $2
		)`

	bookingOverlapExcludingQuery = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE workplace_id = $1
			  AND status = 'active'
			  AND starts_at < $3
			  AND ends_at > $2
			  AND id <> $4
		)`
)

func bookingColumns() []string {
	return []string{"id", "user_id", "workplace_id", "starts_at", "ends_at", "status", "created_at", "updated_at"}
}

func (r *BookingRepo) bookingFilterOptions(opts model.BookingListOptions) []database.ListQueryOption {
	queryOpts := []database.ListQueryOption{}

	if opts.UserID != nil && strings.TrimSpace(*opts.UserID) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("user_id", database.Equal, strings.TrimSpace(*opts.UserID)),
		))
	}
	if opts.WorkplaceID != nil && strings.TrimSpace(*opts.WorkplaceID) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("workplace_id", database.Equal, strings.TrimSpace(*opts.WorkplaceID)),
		))
	}
	if opts.Status != nil {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("status", database.Equal, string(*opts.Status)),
		))
	}
	if opts.From != nil {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("ends_at", database.GreaterThan, opts.From.UTC()),
		))
	}
	if opts.To != nil {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("starts_at", database.LessThan, opts.To.UTC()),
		))
	}
	return queryOpts
}
