package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/deskhub/booking-api/internal/data/database"
	"github.com/deskhub/booking-api/internal/data/pgxutil"
	"github.com/deskhub/booking-api/internal/domain/model"
)

// WorkplaceRepo provides database operations for workplaces.
type WorkplaceRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewWorkplaceRepo creates a new WorkplaceRepo with real time provider.
func NewWorkplaceRepo(db *sql.DB) *WorkplaceRepo {
	return &WorkplaceRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewWorkplaceRepoWithTimeProvider creates a new WorkplaceRepo with a custom time provider (useful for tests).
func NewWorkplaceRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *WorkplaceRepo {
	return &WorkplaceRepo{DB: db, timeProvider: tp}
}

// Create inserts a new workplace. Labels are unique within a room.
func (r *WorkplaceRepo) Create(ctx context.Context, req *model.CreateWorkplaceRequest) (*model.Workplace, error) {
	if req == nil {
		return nil, errors.New("create workplace request is required")
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.Workplace
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO workplaces (room_id, label, has_monitor, has_dock, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, room_id, label, has_monitor, has_dock, active, created_at, updated_at
		`,
			strings.TrimSpace(req.RoomID),
			strings.TrimSpace(req.Label),
			req.HasMonitor,
			req.HasDock,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Workplace])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err, false)
	}
	return &out, nil
}

// GetByID retrieves a workplace by ID.
func (r *WorkplaceRepo) GetByID(ctx context.Context, id string) (*model.Workplace, error) {
	var wp model.Workplace
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, workplaceGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		wp, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Workplace])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkplaceNotFound
		}
		return nil, fmt.Errorf("failed to get workplace by ID: %w", err)
	}
	return &wp, nil
}

// List retrieves workplaces with optional filters and sorting.
func (r *WorkplaceRepo) List(ctx context.Context, opts model.WorkplaceListOptions) ([]*model.Workplace, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	queryOpts := []database.ListQueryOption{
		database.WithColumns(workplaceColumns()...),
		database.WithLimit(limit),
		database.WithOffset(offset),
	}
	queryOpts = append(queryOpts, r.workplaceFilterOptions(opts)...)

	sortCol, sortDir := validateSort(opts.Sort, opts.Dir, map[string]string{
		"label":      "label",
		"created_at": "created_at",
	})
	queryOpts = append(queryOpts, database.WithOrderBy(sortCol, sortDir))

	query, args := database.BuildListQuery(database.NewListQueryOptions("workplaces", queryOpts...))

	var rowsOut []model.Workplace
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Workplace])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list workplaces: %w", err)
	}
	res := make([]*model.Workplace, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Count returns the number of workplaces matching the filters.
func (r *WorkplaceRepo) Count(ctx context.Context, opts model.WorkplaceListOptions) (int64, error) {
	queryOpts := database.NewListQueryOptions("workplaces",
		append(r.workplaceFilterOptions(opts), database.WithCountOnly())...,
	)
	query, args := database.BuildListQuery(queryOpts)

	var count int64
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, query, args...).Scan(&count)
	}); err != nil {
		return 0, fmt.Errorf("failed to count workplaces: %w", err)
	}
	return count, nil
}

// Update updates fields of a workplace.
func (r *WorkplaceRepo) Update(ctx context.Context, id string, req model.UpdateWorkplaceRequest) (*model.Workplace, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Workplace
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		setClause, args := r.buildUpdateClause(req)
		if setClause == "" {
			rows, err := conn.Query(ctx, workplaceGetByIDQuery, id)
			if err != nil {
				return err
			}
			defer rows.Close()
			var e error
			out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Workplace])
			return e
		}
		args = append(args, id)
		query := "UPDATE workplaces SET " + setClause + " WHERE id = $" + strconv.Itoa(len(args)) +
			" RETURNING id, room_id, label, has_monitor, has_dock, active, created_at, updated_at"
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Workplace])
		return e
	})
	if err != nil {
		return nil, r.mapWriteErr(err, true)
	}
	return &out, nil
}

// Delete deletes a workplace by ID. Bookings referencing it block deletion via FK.
func (r *WorkplaceRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM workplaces WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete workplace: %w", err)
	}
	return rows > 0, nil
}

// --- helpers ---

const workplaceGetByIDQuery = `
	SELECT id, room_id, label, has_monitor, has_dock, active, created_at, updated_at
	FROM workplaces
	WHERE id = $1`

func workplaceColumns() []string {
	return []string{"id", "room_id", "label", "has_monitor", "has_dock", "active", "created_at", "updated_at"}
}

func (r *WorkplaceRepo) buildUpdateClause(req model.UpdateWorkplaceRequest) (string, []any) {
	setParts := make([]string, 0, 6)
	args := make([]any, 0, 6)
	nextIdx := func() int { return len(args) + 1 }

	if req.RoomID != nil {
		setParts = append(setParts, fmt.Sprintf("room_id = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.RoomID))
	}
	if req.Label != nil {
		setParts = append(setParts, fmt.Sprintf("label = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Label))
	}
	if req.HasMonitor != nil {
		setParts = append(setParts, fmt.Sprintf("has_monitor = $%d", nextIdx()))
		args = append(args, *req.HasMonitor)
	}
	if req.HasDock != nil {
		setParts = append(setParts, fmt.Sprintf("has_dock = $%d", nextIdx()))
		args = append(args, *req.HasDock)
	}
	if req.Active != nil {
		setParts = append(setParts, fmt.Sprintf("active = $%d", nextIdx()))
		args = append(args, *req.Active)
	}

	if len(setParts) == 0 {
		return "", nil
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())
	return strings.Join(setParts, ", "), args
}

func (r *WorkplaceRepo) workplaceFilterOptions(opts model.WorkplaceListOptions) []database.ListQueryOption {
	queryOpts := []database.ListQueryOption{}

	if opts.Label != nil && strings.TrimSpace(*opts.Label) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("label", database.ILike, "%"+strings.TrimSpace(*opts.Label)+"%"),
		))
	}
	if opts.RoomID != nil && strings.TrimSpace(*opts.RoomID) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("room_id", database.Equal, strings.TrimSpace(*opts.RoomID)),
		))
	}
	if opts.OfficeID != nil && strings.TrimSpace(*opts.OfficeID) != "" {
		// Office filter reaches through the room.
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereRawCond("room_id IN (SELECT id FROM rooms WHERE office_id = $1)",
				strings.TrimSpace(*opts.OfficeID)),
		))
	}
	if opts.HasMonitor != nil {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("has_monitor", database.Equal, *opts.HasMonitor),
		))
	}
	if opts.HasDock != nil {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("has_dock", database.Equal, *opts.HasDock),
		))
	}
	if opts.Active != nil {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("active", database.Equal, *opts.Active),
		))
	}
	return queryOpts
}

func (r *WorkplaceRepo) mapWriteErr(err error, includeNotFound bool) error {
	if err == nil {
		return nil
	}
	if includeNotFound && errors.Is(err, pgx.ErrNoRows) {
		return ErrWorkplaceNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrWorkplaceLabelExists
	}
	return err
}
