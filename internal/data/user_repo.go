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

	"github.com/deskhub/booking-api/internal/core"
	"github.com/deskhub/booking-api/internal/data/database"
	"github.com/deskhub/booking-api/internal/data/pgxutil"
	"github.com/deskhub/booking-api/internal/domain/model"
)

// UserRepo provides database operations for users and their role
// assignments. Role names live in the roles table; assignments in
// user_roles.
type UserRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewUserRepo creates a new UserRepo with real time provider.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewUserRepoWithTimeProvider creates a new UserRepo with a custom time provider (useful for tests).
func NewUserRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *UserRepo {
	return &UserRepo{DB: db, timeProvider: tp}
}

// Create inserts a new user and assigns the given roles in one
// transaction. Unknown role names fail the whole insert.
func (r *UserRepo) Create(ctx context.Context, p core.CreateUserParams) (*model.User, error) {
	if p.PasswordHash == "" {
		return nil, errors.New("password hash is required")
	}
	if len(p.Roles) == 0 {
		return nil, errors.New("at least one role is required")
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.User
	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{
		Fn: func(tx pgx.Tx) error {
			rows, err := tx.Query(ctx, `
				INSERT INTO users (full_name, phone, email, password_hash, created_at)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING id, full_name, phone, email, password_hash, active, created_at, updated_at
			`,
				strings.TrimSpace(p.FullName),
				strings.TrimSpace(p.Phone),
				strings.ToLower(strings.TrimSpace(p.Email)),
				p.PasswordHash,
				createdAt,
			)
			if err != nil {
				return err
			}
			out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
			rows.Close()
			if err != nil {
				return err
			}
			return assignRoles(ctx, tx, out.ID, p.Roles)
		},
	})
	if err != nil {
		return nil, r.mapWriteErr(err, false)
	}
	out.Roles = normalizeRoleNames(p.Roles)
	return &out, nil
}

// GetByID retrieves a user by ID, including role names.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	return r.getByQuery(ctx, userGetByIDQuery, "failed to get user by ID", id)
}

// FindByLogin retrieves a user whose email or phone equals login.
// Email comparison is case-insensitive.
func (r *UserRepo) FindByLogin(ctx context.Context, login string) (*model.User, error) {
	return r.getByQuery(ctx, userFindByLoginQuery, "failed to find user by login",
		strings.TrimSpace(login))
}

// List retrieves users with optional filters and sorting; role names are
// loaded in a second query for the returned page.
func (r *UserRepo) List(ctx context.Context, opts model.UserListOptions) ([]*model.User, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	queryOpts := []database.ListQueryOption{
		database.WithColumns(userColumns()...),
		database.WithLimit(limit),
		database.WithOffset(offset),
	}
	queryOpts = append(queryOpts, r.userFilterOptions(opts)...)

	sortCol, sortDir := validateSort(opts.Sort, opts.Dir, map[string]string{
		"full_name":  "full_name",
		"email":      "email",
		"created_at": "created_at",
	})
	queryOpts = append(queryOpts, database.WithOrderBy(sortCol, sortDir))

	query, args := database.BuildListQuery(database.NewListQueryOptions("users", queryOpts...))

	var rowsOut []model.User
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.User])
		rows.Close()
		if err != nil {
			return err
		}
		return loadRoles(ctx, conn, rowsOut)
	}); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	res := make([]*model.User, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Count returns the number of users matching the filters.
func (r *UserRepo) Count(ctx context.Context, opts model.UserListOptions) (int64, error) {
	queryOpts := database.NewListQueryOptions("users",
		append(r.userFilterOptions(opts), database.WithCountOnly())...,
	)
	query, args := database.BuildListQuery(queryOpts)

	var count int64
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, query, args...).Scan(&count)
	}); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// Update updates fields of a user.
func (r *UserRepo) Update(ctx context.Context, id string, p core.UpdateUserParams) (*model.User, error) {
	var out model.User
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		setClause, args := r.buildUpdateClause(p)
		if setClause == "" {
			return errors.New("no fields to update")
		}
		args = append(args, id)
		query := "UPDATE users SET " + setClause + " WHERE id = $" + strconv.Itoa(len(args)) +
			" RETURNING id, full_name, phone, email, password_hash, active, created_at, updated_at"
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		rows.Close()
		if err != nil {
			return err
		}
		users := []model.User{out}
		if err := loadRoles(ctx, conn, users); err != nil {
			return err
		}
		out = users[0]
		return nil
	})
	if err != nil {
		return nil, r.mapWriteErr(err, true)
	}
	return &out, nil
}

// SetActive toggles the active flag. Inactive users cannot log in.
func (r *UserRepo) SetActive(ctx context.Context, id string, active bool) (*model.User, error) {
	var out model.User
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE users SET active = $1, updated_at = $2 WHERE id = $3
			RETURNING id, full_name, phone, email, password_hash, active, created_at, updated_at
		`, active, r.timeProvider.Now().UTC(), id)
		if err != nil {
			return err
		}
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		rows.Close()
		if err != nil {
			return err
		}
		users := []model.User{out}
		if err := loadRoles(ctx, conn, users); err != nil {
			return err
		}
		out = users[0]
		return nil
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to set user active: %w", err)
	}
	return &out, nil
}

// ReplaceRoles replaces the user's role assignments with the given names.
func (r *UserRepo) ReplaceRoles(ctx context.Context, id string, roles []string) error {
	if len(roles) == 0 {
		return errors.New("at least one role is required")
	}
	return pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{
		Fn: func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, `DELETE FROM user_roles WHERE user_id = $1`, id); err != nil {
				return err
			}
			return assignRoles(ctx, tx, id, roles)
		},
	})
}

// Delete deletes a user by ID. Role assignments cascade; bookings and
// breakage reports block deletion via FK.
func (r *UserRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}
	return rows > 0, nil
}

// --- helpers ---

const (
	userGetByIDQuery = `
		SELECT id, full_name, phone, email, password_hash, active, created_at, updated_at
		FROM users
		WHERE id = $1`

	userFindByLoginQuery = `
		SELECT id, full_name, phone, email, password_hash, active, created_at, updated_at
		FROM users
		WHERE lower(email) = lower($1) OR phone = $1`

	userRolesQuery = `
		SELECT ur.user_id, r.name
		FROM user_roles ur
		JOIN roles r ON r.id = ur.role_id
		WHERE ur.user_id = ANY($1)
		ORDER BY r.name`
)

func userColumns() []string {
	return []string{"id", "full_name", "phone", "email", "password_hash", "active", "created_at", "updated_at"}
}

func (r *UserRepo) buildUpdateClause(p core.UpdateUserParams) (string, []any) {
	setParts := make([]string, 0, 5)
	args := make([]any, 0, 5)
	nextIdx := func() int { return len(args) + 1 }

	if p.FullName != nil {
		setParts = append(setParts, fmt.Sprintf("full_name = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*p.FullName))
	}
	if p.Phone != nil {
		setParts = append(setParts, fmt.Sprintf("phone = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*p.Phone))
	}
	if p.Email != nil {
		setParts = append(setParts, fmt.Sprintf("email = $%d", nextIdx()))
		args = append(args, strings.ToLower(strings.TrimSpace(*p.Email)))
	}
	if p.PasswordHash != nil {
		setParts = append(setParts, fmt.Sprintf("password_hash = $%d", nextIdx()))
		args = append(args, *p.PasswordHash)
	}

	if len(setParts) == 0 {
		return "", nil
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())
	return strings.Join(setParts, ", "), args
}

func (r *UserRepo) userFilterOptions(opts model.UserListOptions) []database.ListQueryOption {
	queryOpts := []database.ListQueryOption{}

	if opts.FIO != nil && strings.TrimSpace(*opts.FIO) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("full_name", database.ILike, "%"+strings.TrimSpace(*opts.FIO)+"%"),
		))
	}
	if opts.Email != nil && strings.TrimSpace(*opts.Email) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereRawCond("lower(email) = lower($1)", strings.TrimSpace(*opts.Email)),
		))
	}
	if opts.Phone != nil && strings.TrimSpace(*opts.Phone) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("phone", database.Equal, strings.TrimSpace(*opts.Phone)),
		))
	}
	if opts.Active != nil {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("active", database.Equal, *opts.Active),
		))
	}
	if opts.Role != nil && strings.TrimSpace(*opts.Role) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereRawCond(
				"id IN (SELECT ur.user_id FROM user_roles ur JOIN roles r ON r.id = ur.role_id WHERE r.name = $1)",
				strings.ToLower(strings.TrimSpace(*opts.Role))),
		))
	}
	return queryOpts
}

// getByQuery executes a single-row user query and loads role names.
func (r *UserRepo) getByQuery(ctx context.Context, q, errMsg string, args ...any) (*model.User, error) {
	var user model.User
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, args...)
		if err != nil {
			return err
		}
		user, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		rows.Close()
		if err != nil {
			return err
		}
		users := []model.User{user}
		if err := loadRoles(ctx, conn, users); err != nil {
			return err
		}
		user = users[0]
		return nil
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	return &user, nil
}

// loadRoles fills in Roles for the given users in one query.
func loadRoles(ctx context.Context, conn *pgx.Conn, users []model.User) error {
	if len(users) == 0 {
		return nil
	}
	ids := make([]string, len(users))
	idx := make(map[string]int, len(users))
	for i := range users {
		ids[i] = users[i].ID
		idx[users[i].ID] = i
		users[i].Roles = nil
	}

	rows, err := conn.Query(ctx, userRolesQuery, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var userID, roleName string
		if err := rows.Scan(&userID, &roleName); err != nil {
			return err
		}
		if i, ok := idx[userID]; ok {
			users[i].Roles = append(users[i].Roles, roleName)
		}
	}
	return rows.Err()
}

// assignRoles links a user to the named roles. Missing names return
// ErrRoleNotFound and abort the surrounding transaction.
func assignRoles(ctx context.Context, tx pgx.Tx, userID string, roles []string) error {
	names := normalizeRoleNames(roles)
	for _, name := range names {
		ct, err := tx.Exec(ctx, `
			INSERT INTO user_roles (user_id, role_id)
			SELECT $1, id FROM roles WHERE name = $2
		`, userID, name)
		if err != nil {
			return err
		}
		if ct.RowsAffected() == 0 {
			return fmt.Errorf("%w: %s", ErrRoleNotFound, name)
		}
	}
	return nil
}

// normalizeRoleNames lowercases, trims, and dedupes while keeping order.
func normalizeRoleNames(roles []string) []string {
	seen := make(map[string]struct{}, len(roles))
	out := make([]string, 0, len(roles))
	for _, role := range roles {
		name := strings.ToLower(strings.TrimSpace(role))
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func (r *UserRepo) mapWriteErr(err error, includeNotFound bool) error {
	if err == nil {
		return nil
	}
	if includeNotFound && errors.Is(err, pgx.ErrNoRows) {
		return ErrUserNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if strings.Contains(pgErr.ConstraintName, "phone") {
			return ErrUserPhoneExists
		}
		return ErrUserEmailExists
	}
	return err
}
