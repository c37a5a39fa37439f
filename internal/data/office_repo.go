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

// OfficeRepo provides database operations for offices.
type OfficeRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewOfficeRepo creates a new OfficeRepo with real time provider.
func NewOfficeRepo(db *sql.DB) *OfficeRepo {
	return &OfficeRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewOfficeRepoWithTimeProvider creates a new OfficeRepo with a custom time provider (useful for tests).
func NewOfficeRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *OfficeRepo {
	return &OfficeRepo{DB: db, timeProvider: tp}
}

// Create inserts a new office.
func (r *OfficeRepo) Create(ctx context.Context, req *model.CreateOfficeRequest) (*model.Office, error) {
	if req == nil {
		return nil, errors.New("create office request is required")
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.Office
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO offices (name, address, work_number, created_at)
			VALUES ($1, $2, $3, $4)
			RETURNING id, name, address, work_number, active, created_at, updated_at
		`,
			strings.TrimSpace(req.Name),
			strings.TrimSpace(req.Address),
			strings.TrimSpace(req.WorkNumber),
			createdAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Office])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err, false)
	}
	return &out, nil
}

// GetByID retrieves an office by ID.
func (r *OfficeRepo) GetByID(ctx context.Context, id string) (*model.Office, error) {
	var office model.Office
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, officeGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		office, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Office])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOfficeNotFound
		}
		return nil, fmt.Errorf("failed to get office by ID: %w", err)
	}
	return &office, nil
}

// List retrieves offices with optional filters and sorting.
func (r *OfficeRepo) List(ctx context.Context, opts model.OfficeListOptions) ([]*model.Office, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	queryOpts := r.buildOfficeQueryOptions(opts, limit, offset)
	query, args := database.BuildListQuery(queryOpts)

	var rowsOut []model.Office
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Office])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list offices: %w", err)
	}
	res := make([]*model.Office, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Count returns the number of offices matching the filters.
func (r *OfficeRepo) Count(ctx context.Context, opts model.OfficeListOptions) (int64, error) {
	queryOpts := database.NewListQueryOptions("offices",
		append(r.officeFilterOptions(opts), database.WithCountOnly())...,
	)
	query, args := database.BuildListQuery(queryOpts)

	var count int64
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, query, args...).Scan(&count)
	}); err != nil {
		return 0, fmt.Errorf("failed to count offices: %w", err)
	}
	return count, nil
}

// Update updates fields of an office.
func (r *OfficeRepo) Update(ctx context.Context, id string, req model.UpdateOfficeRequest) (*model.Office, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Office
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		setClause, args := r.buildUpdateClause(req)
		if setClause == "" {
			rows, err := conn.Query(ctx, officeGetByIDQuery, id)
			if err != nil {
				return err
			}
			defer rows.Close()
			var e error
			out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Office])
			return e
		}
		args = append(args, id)
		query := "UPDATE offices SET " + setClause + " WHERE id = $" + strconv.Itoa(len(args)) +
			" RETURNING id, name, address, work_number, active, created_at, updated_at"
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Office])
		return e
	})
	if err != nil {
		return nil, r.mapWriteErr(err, true)
	}
	return &out, nil
}

// Delete deletes an office by ID. Rooms in the office block deletion via FK.
func (r *OfficeRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM offices WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete office: %w", err)
	}
	return rows > 0, nil
}

// --- helpers ---

const officeGetByIDQuery = `
	SELECT id, name, address, work_number, active, created_at, updated_at
	FROM offices
	WHERE id = $1`

func officeColumns() []string {
	return []string{"id", "name", "address", "work_number", "active", "created_at", "updated_at"}
}

// buildUpdateClause builds the SQL SET clause and args for updating an office based on the request.
func (r *OfficeRepo) buildUpdateClause(req model.UpdateOfficeRequest) (string, []any) {
	setParts := make([]string, 0, 5)
	args := make([]any, 0, 5)
	nextIdx := func() int { return len(args) + 1 }

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Name))
	}
	if req.Address != nil {
		setParts = append(setParts, fmt.Sprintf("address = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Address))
	}
	if req.WorkNumber != nil {
		setParts = append(setParts, fmt.Sprintf("work_number = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.WorkNumber))
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

// officeFilterOptions builds WHERE conditions shared by List and Count.
func (r *OfficeRepo) officeFilterOptions(opts model.OfficeListOptions) []database.ListQueryOption {
	queryOpts := []database.ListQueryOption{}

	if opts.Name != nil && strings.TrimSpace(*opts.Name) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("name", database.ILike, "%"+strings.TrimSpace(*opts.Name)+"%"),
		))
	}
	if opts.Address != nil && strings.TrimSpace(*opts.Address) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("address", database.ILike, "%"+strings.TrimSpace(*opts.Address)+"%"),
		))
	}
	if opts.Active != nil {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("active", database.Equal, *opts.Active),
		))
	}
	return queryOpts
}

// buildOfficeQueryOptions builds query options for office listing with filters and sorting.
func (r *OfficeRepo) buildOfficeQueryOptions(
	opts model.OfficeListOptions,
	limit, offset int,
) *database.ListQueryOptions {
	queryOpts := []database.ListQueryOption{
		database.WithColumns(officeColumns()...),
		database.WithLimit(limit),
		database.WithOffset(offset),
	}
	queryOpts = append(queryOpts, r.officeFilterOptions(opts)...)

	sortCol, sortDir := validateSort(opts.Sort, opts.Dir, map[string]string{
		"name":       "name",
		"address":    "address",
		"created_at": "created_at",
	})
	queryOpts = append(queryOpts, database.WithOrderBy(sortCol, sortDir))

	return database.NewListQueryOptions("offices", queryOpts...)
}

// validateSort validates sort column against an allowlist and normalizes
// direction. Unknown columns fall back to created_at DESC.
func validateSort(sort, dir string, allowed map[string]string) (string, string) {
	sortCol := "created_at"
	sortDir := sortDirDesc

	if sort != "" {
		if validSort, ok := allowed[strings.ToLower(strings.TrimSpace(sort))]; ok {
			sortCol = validSort
		}
	}
	if dir != "" {
		switch strings.ToLower(strings.TrimSpace(dir)) {
		case "asc":
			sortDir = sortDirAsc
		case "desc":
			sortDir = sortDirDesc
		}
	}
	return sortCol, sortDir
}

func (r *OfficeRepo) mapWriteErr(err error, includeNotFound bool) error {
	if err == nil {
		return nil
	}
	if includeNotFound && errors.Is(err, pgx.ErrNoRows) {
		return ErrOfficeNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrOfficeNameExists
	}
	return err
}
