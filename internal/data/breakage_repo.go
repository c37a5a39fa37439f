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

// BreakageRepo provides database operations for breakage reports.
type BreakageRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewBreakageRepo creates a new BreakageRepo with real time provider.
func NewBreakageRepo(db *sql.DB) *BreakageRepo {
	return &BreakageRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewBreakageRepoWithTimeProvider creates a new BreakageRepo with a custom time provider (useful for tests).
func NewBreakageRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *BreakageRepo {
	return &BreakageRepo{DB: db, timeProvider: tp}
}

// Create files a new breakage report with status open.
func (r *BreakageRepo) Create(ctx context.Context, req *model.CreateBreakageRequest) (*model.BreakageReport, error) {
	if req == nil {
		return nil, errors.New("create breakage request is required")
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.BreakageReport
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO breakage_reports (user_id, workplace_id, description, status, created_at)
			VALUES ($1, $2, $3, 'open', $4)
			RETURNING id, user_id, workplace_id, description, status, created_at, updated_at
		`,
			req.UserID,
			strings.TrimSpace(req.WorkplaceID),
			strings.TrimSpace(req.Description),
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.BreakageReport])
		return err
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByID retrieves a breakage report by ID.
func (r *BreakageRepo) GetByID(ctx context.Context, id string) (*model.BreakageReport, error) {
	var report model.BreakageReport
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, breakageGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		report, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.BreakageReport])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBreakageNotFound
		}
		return nil, fmt.Errorf("failed to get breakage report by ID: %w", err)
	}
	return &report, nil
}

// List retrieves breakage reports with optional filters and sorting.
func (r *BreakageRepo) List(ctx context.Context, opts model.BreakageListOptions) ([]*model.BreakageReport, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	queryOpts := []database.ListQueryOption{
		database.WithColumns(breakageColumns()...),
		database.WithLimit(limit),
		database.WithOffset(offset),
	}
	queryOpts = append(queryOpts, r.breakageFilterOptions(opts)...)

	sortCol, sortDir := validateSort(opts.Sort, opts.Dir, map[string]string{
		"status":     "status",
		"created_at": "created_at",
	})
	queryOpts = append(queryOpts, database.WithOrderBy(sortCol, sortDir))

	query, args := database.BuildListQuery(database.NewListQueryOptions("breakage_reports", queryOpts...))

	var rowsOut []model.BreakageReport
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.BreakageReport])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list breakage reports: %w", err)
	}
	res := make([]*model.BreakageReport, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Count returns the number of breakage reports matching the filters.
func (r *BreakageRepo) Count(ctx context.Context, opts model.BreakageListOptions) (int64, error) {
	queryOpts := database.NewListQueryOptions("breakage_reports",
		append(r.breakageFilterOptions(opts), database.WithCountOnly())...,
	)
	query, args := database.BuildListQuery(queryOpts)

	var count int64
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, query, args...).Scan(&count)
	}); err != nil {
		return 0, fmt.Errorf("failed to count breakage reports: %w", err)
	}
	return count, nil
}

// Update updates description or status of a breakage report.
func (r *BreakageRepo) Update(ctx context.Context, id string, req model.UpdateBreakageRequest) (*model.BreakageReport, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.BreakageReport
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		setClause, args := r.buildUpdateClause(req)
		if setClause == "" {
			rows, err := conn.Query(ctx, breakageGetByIDQuery, id)
			if err != nil {
				return err
			}
			defer rows.Close()
			var e error
			out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.BreakageReport])
			return e
		}
		args = append(args, id)
		query := "UPDATE breakage_reports SET " + setClause + " WHERE id = $" + strconv.Itoa(len(args)) +
			" RETURNING id, user_id, workplace_id, description, status, created_at, updated_at"
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.BreakageReport])
		return e
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBreakageNotFound
		}
		return nil, err
	}
	return &out, nil
}

// Delete deletes a breakage report by ID.
func (r *BreakageRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM breakage_reports WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete breakage report: %w", err)
	}
	return rows > 0, nil
}

// --- helpers ---

const breakageGetByIDQuery = `
	SELECT id, user_id, workplace_id, description, status, created_at, updated_at
	FROM breakage_reports
	WHERE id = $1`

func breakageColumns() []string {
	return []string{"id", "user_id", "workplace_id", "description", "status", "created_at", "updated_at"}
}

func (r *BreakageRepo) buildUpdateClause(req model.UpdateBreakageRequest) (string, []any) {
	setParts := make([]string, 0, 3)
	args := make([]any, 0, 3)
	nextIdx := func() int { return len(args) + 1 }

	if req.Description != nil {
		setParts = append(setParts, fmt.Sprintf("description = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Description))
	}
	if req.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", nextIdx()))
		args = append(args, string(*req.Status))
	}

	if len(setParts) == 0 {
		return "", nil
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())
	return strings.Join(setParts, ", "), args
}

func (r *BreakageRepo) breakageFilterOptions(opts model.BreakageListOptions) []database.ListQueryOption {
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
	if opts.Description != nil && strings.TrimSpace(*opts.Description) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("description", database.ILike, "%"+strings.TrimSpace(*opts.Description)+"%"),
		))
	}
	return queryOpts
}
