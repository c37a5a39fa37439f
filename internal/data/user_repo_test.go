package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskhub/booking-api/internal/core"
	"github.com/deskhub/booking-api/internal/domain/model"
	"github.com/deskhub/booking-api/internal/testutil"
)

func TestUserRepo_Create(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewUserRepo(db)
		ctx := context.Background()

		created, err := repo.Create(ctx, core.CreateUserParams{
			FullName:     "Ada Lovelace",
			Phone:        "+44-555-0001",
			Email:        "Ada@Example.com",
			PasswordHash: "$2a$04$hash",
			Roles:        []string{"user", "ADMIN", "user"},
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "Ada Lovelace", created.FullName)
		// Email is stored lowercased.
		assert.Equal(t, "ada@example.com", created.Email)
		assert.True(t, created.Active)
		// Role names are normalized and deduplicated.
		assert.ElementsMatch(t, []string{"user", "admin"}, created.Roles)
	})
}

func TestUserRepo_Create_UnknownRole(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewUserRepo(db)

		created, err := repo.Create(context.Background(), core.CreateUserParams{
			FullName:     "No Role",
			Phone:        "+44-555-0002",
			Email:        "norole@example.com",
			PasswordHash: "$2a$04$hash",
			Roles:        []string{"superuser"},
		})
		require.Error(t, err)
		assert.Nil(t, created)
		assert.ErrorIs(t, err, ErrRoleNotFound)

		// The insert happens in a transaction, nothing is left behind.
		_, err = repo.FindByLogin(context.Background(), "norole@example.com")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserRepo_Create_Duplicates(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewUserRepo(db)
		ctx := context.Background()

		_, err := repo.Create(ctx, core.CreateUserParams{
			FullName:     "First",
			Phone:        "+44-555-0003",
			Email:        "dup@example.com",
			PasswordHash: "$2a$04$hash",
			Roles:        []string{"user"},
		})
		require.NoError(t, err)

		// Same email, different case.
		_, err = repo.Create(ctx, core.CreateUserParams{
			FullName:     "Second",
			Phone:        "+44-555-0004",
			Email:        "DUP@example.com",
			PasswordHash: "$2a$04$hash",
			Roles:        []string{"user"},
		})
		assert.ErrorIs(t, err, ErrUserEmailExists)

		// Same phone.
		_, err = repo.Create(ctx, core.CreateUserParams{
			FullName:     "Third",
			Phone:        "+44-555-0003",
			Email:        "third@example.com",
			PasswordHash: "$2a$04$hash",
			Roles:        []string{"user"},
		})
		assert.ErrorIs(t, err, ErrUserPhoneExists)
	})
}

func TestUserRepo_FindByLogin(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewUserRepo(db)
		ctx := context.Background()

		created := createTestUser(t, db)

		byEmail, err := repo.FindByLogin(ctx, created.Email)
		require.NoError(t, err)
		assert.Equal(t, created.ID, byEmail.ID)
		assert.Equal(t, []string{"user"}, byEmail.Roles)

		// Case-insensitive on email.
		byEmailUpper, err := repo.FindByLogin(ctx, "USER"+created.Email[4:])
		require.NoError(t, err)
		assert.Equal(t, created.ID, byEmailUpper.ID)

		byPhone, err := repo.FindByLogin(ctx, created.Phone)
		require.NoError(t, err)
		assert.Equal(t, created.ID, byPhone.ID)

		_, err = repo.FindByLogin(ctx, "missing@example.com")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserRepo_GetByID(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewUserRepo(db)
		ctx := context.Background()

		created := createTestUser(t, db)

		found, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Email, found.Email)
		assert.Equal(t, []string{"user"}, found.Roles)

		_, err = repo.GetByID(ctx, "550e8400-e29b-41d4-a716-446655440000")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserRepo_List(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewUserRepo(db)
		ctx := context.Background()

		alice, err := repo.Create(ctx, core.CreateUserParams{
			FullName:     "Alice Smith",
			Phone:        "+1-555-1001",
			Email:        "alice@example.com",
			PasswordHash: "$2a$04$hash",
			Roles:        []string{"admin"},
		})
		require.NoError(t, err)

		bob, err := repo.Create(ctx, core.CreateUserParams{
			FullName:     "Bob Smith",
			Phone:        "+1-555-1002",
			Email:        "bob@example.com",
			PasswordHash: "$2a$04$hash",
			Roles:        []string{"user"},
		})
		require.NoError(t, err)

		all, err := repo.List(ctx, model.UserListOptions{Limit: 10})
		require.NoError(t, err)
		require.Len(t, all, 2)
		// Roles are loaded for each listed user.
		for _, u := range all {
			assert.NotEmpty(t, u.Roles)
		}

		smiths, err := repo.List(ctx, model.UserListOptions{Limit: 10, FIO: testutil.StringPtr("smith")})
		require.NoError(t, err)
		assert.Len(t, smiths, 2)

		byEmail, err := repo.List(ctx, model.UserListOptions{Limit: 10, Email: testutil.StringPtr("ALICE@example.com")})
		require.NoError(t, err)
		require.Len(t, byEmail, 1)
		assert.Equal(t, alice.ID, byEmail[0].ID)

		admins, err := repo.List(ctx, model.UserListOptions{Limit: 10, Role: testutil.StringPtr("admin")})
		require.NoError(t, err)
		require.Len(t, admins, 1)
		assert.Equal(t, alice.ID, admins[0].ID)

		byPhone, err := repo.List(ctx, model.UserListOptions{Limit: 10, Phone: testutil.StringPtr(bob.Phone)})
		require.NoError(t, err)
		require.Len(t, byPhone, 1)
		assert.Equal(t, bob.ID, byPhone[0].ID)

		count, err := repo.Count(ctx, model.UserListOptions{FIO: testutil.StringPtr("smith")})
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}

func TestUserRepo_Update(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewUserRepo(db)
		ctx := context.Background()

		created := createTestUser(t, db)

		updated, err := repo.Update(ctx, created.ID, core.UpdateUserParams{
			FullName: testutil.StringPtr("Renamed User"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed User", updated.FullName)
		assert.Equal(t, created.Email, updated.Email)

		updated, err = repo.Update(ctx, created.ID, core.UpdateUserParams{
			Email: testutil.StringPtr("NewMail@Example.com"),
		})
		require.NoError(t, err)
		assert.Equal(t, "newmail@example.com", updated.Email)

		_, err = repo.Update(ctx, "550e8400-e29b-41d4-a716-446655440000", core.UpdateUserParams{
			FullName: testutil.StringPtr("ghost"),
		})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserRepo_SetActive(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewUserRepo(db)
		ctx := context.Background()

		created := createTestUser(t, db)

		deactivated, err := repo.SetActive(ctx, created.ID, false)
		require.NoError(t, err)
		assert.False(t, deactivated.Active)

		reactivated, err := repo.SetActive(ctx, created.ID, true)
		require.NoError(t, err)
		assert.True(t, reactivated.Active)

		_, err = repo.SetActive(ctx, "550e8400-e29b-41d4-a716-446655440000", false)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserRepo_ReplaceRoles(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewUserRepo(db)
		ctx := context.Background()

		created := createTestUser(t, db)
		require.Equal(t, []string{"user"}, created.Roles)

		err := repo.ReplaceRoles(ctx, created.ID, []string{"admin"})
		require.NoError(t, err)

		found, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"admin"}, found.Roles)

		err = repo.ReplaceRoles(ctx, created.ID, []string{"nonexistent"})
		assert.ErrorIs(t, err, ErrRoleNotFound)

		// Failed replacement keeps the previous roles.
		found, err = repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"admin"}, found.Roles)
	})
}

func TestUserRepo_Delete(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewUserRepo(db)
		ctx := context.Background()

		created := createTestUser(t, db)

		deleted, err := repo.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = repo.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, ErrUserNotFound)

		notDeleted, err := repo.Delete(ctx, "550e8400-e29b-41d4-a716-446655440000")
		require.NoError(t, err)
		assert.False(t, notDeleted)
	})
}

func TestNormalizeRoleNames(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, []string{}},
		{"lowercase and trim", []string{" Admin ", "USER"}, []string{"admin", "user"}},
		{"dedupe keeps order", []string{"user", "admin", "user"}, []string{"user", "admin"}},
		{"drops empty", []string{"", "  ", "user"}, []string{"user"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeRoleNames(tt.in))
		})
	}
}
