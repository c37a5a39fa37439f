package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/deskhub/booking-api/internal/data/database"
	"github.com/deskhub/booking-api/internal/data/pgxutil"
	"github.com/deskhub/booking-api/internal/domain/model"
)

// RoomRepo provides database operations for rooms.
type RoomRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewRoomRepo creates a new RoomRepo with real time provider.
func NewRoomRepo(db *sql.DB) *RoomRepo {
	return &RoomRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewRoomRepoWithTimeProvider creates a new RoomRepo with a custom time provider (useful for tests).
func NewRoomRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *RoomRepo {
	return &RoomRepo{DB: db, timeProvider: tp}
}

// Create inserts a new room. A missing office surfaces as an FK violation.
func (r *RoomRepo) Create(ctx context.Context, req *model.CreateRoomRequest) (*model.Room, error) {
	if req == nil {
		return nil, errors.New("create room request is required")
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.Room
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO rooms (office_id, name, floor, capacity, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, office_id, name, floor, capacity, active, created_at, updated_at
		`,
			strings.TrimSpace(req.OfficeID),
			strings.TrimSpace(req.Name),
			req.Floor,
			req.Capacity,
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Room])
		return err
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByID retrieves a room by ID.
func (r *RoomRepo) GetByID(ctx context.Context, id string) (*model.Room, error) {
	var room model.Room
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, roomGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		room, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Room])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room by ID: %w", err)
	}
	return &room, nil
}

// List retrieves rooms with optional filters and sorting.
func (r *RoomRepo) List(ctx context.Context, opts model.RoomListOptions) ([]*model.Room, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	queryOpts := []database.ListQueryOption{
		database.WithColumns(roomColumns()...),
		database.WithLimit(limit),
		database.WithOffset(offset),
	}
	queryOpts = append(queryOpts, r.roomFilterOptions(opts)...)

	sortCol, sortDir := validateSort(opts.Sort, opts.Dir, map[string]string{
		"name":       "name",
		"floor":      "floor",
		"capacity":   "capacity",
		"created_at": "created_at",
	})
	queryOpts = append(queryOpts, database.WithOrderBy(sortCol, sortDir))

	query, args := database.BuildListQuery(database.NewListQueryOptions("rooms", queryOpts...))

	var rowsOut []model.Room
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Room])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	res := make([]*model.Room, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Count returns the number of rooms matching the filters.
func (r *RoomRepo) Count(ctx context.Context, opts model.RoomListOptions) (int64, error) {
	queryOpts := database.NewListQueryOptions("rooms",
		append(r.roomFilterOptions(opts), database.WithCountOnly())...,
	)
	query, args := database.BuildListQuery(queryOpts)

	var count int64
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, query, args...).Scan(&count)
	}); err != nil {
		return 0, fmt.Errorf("failed to count rooms: %w", err)
	}
	return count, nil
}

// Update updates fields of a room.
func (r *RoomRepo) Update(ctx context.Context, id string, req model.UpdateRoomRequest) (*model.Room, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Room
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		setClause, args := r.buildUpdateClause(req)
		if setClause == "" {
			rows, err := conn.Query(ctx, roomGetByIDQuery, id)
			if err != nil {
				return err
			}
			defer rows.Close()
			var e error
			out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Room])
			return e
		}
		args = append(args, id)
		query := "UPDATE rooms SET " + setClause + " WHERE id = $" + strconv.Itoa(len(args)) +
			" RETURNING id, office_id, name, floor, capacity, active, created_at, updated_at"
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Room])
		return e
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &out, nil
}

// Delete deletes a room by ID. Workplaces in the room block deletion via FK.
func (r *RoomRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete room: %w", err)
	}
	return rows > 0, nil
}

// --- helpers ---

const roomGetByIDQuery = `
	SELECT id, office_id, name, floor, capacity, active, created_at, updated_at
	FROM rooms
	WHERE id = $1`

func roomColumns() []string {
	return []string{"id", "office_id", "name", "floor", "capacity", "active", "created_at", "updated_at"}
}

func (r *RoomRepo) buildUpdateClause(req model.UpdateRoomRequest) (string, []any) {
	setParts := make([]string, 0, 6)
	args := make([]any, 0, 6)
	nextIdx := func() int { return len(args) + 1 }

	if req.OfficeID != nil {
		setParts = append(setParts, fmt.Sprintf("office_id = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.OfficeID))
	}
	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Name))
	}
	if req.Floor != nil {
		setParts = append(setParts, fmt.Sprintf("floor = $%d", nextIdx()))
		args = append(args, *req.Floor)
	}
	if req.Capacity != nil {
		setParts = append(setParts, fmt.Sprintf("capacity = $%d", nextIdx()))
		args = append(args, *req.Capacity)
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

func (r *RoomRepo) roomFilterOptions(opts model.RoomListOptions) []database.ListQueryOption {
	queryOpts := []database.ListQueryOption{}

	if opts.Name != nil && strings.TrimSpace(*opts.Name) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("name", database.ILike, "%"+strings.TrimSpace(*opts.Name)+"%"),
		))
	}
	if opts.OfficeID != nil && strings.TrimSpace(*opts.OfficeID) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("office_id", database.Equal, strings.TrimSpace(*opts.OfficeID)),
		))
	}
	if opts.Floor != nil {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("floor", database.Equal, *opts.Floor),
		))
	}
	if opts.MinCapacity != nil {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("capacity", database.GreaterThanOrEqual, *opts.MinCapacity),
		))
	}
	if opts.Active != nil {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("active", database.Equal, *opts.Active),
		))
	}
	return queryOpts
}
