package data

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskhub/booking-api/internal/domain/model"
	"github.com/deskhub/booking-api/internal/testutil"
)

func TestOfficeRepo_Create(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	tests := []struct {
		name    string
		req     *model.CreateOfficeRequest
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid office",
			req: &model.CreateOfficeRequest{
				Name:       "HQ",
				Address:    "10 Downing St",
				WorkNumber: "+44-20-7925-0918",
			},
		},
		{
			name: "office without work number",
			req: &model.CreateOfficeRequest{
				Name:    "Annex",
				Address: "11 Downing St",
			},
		},
		{
			name: "empty name",
			req: &model.CreateOfficeRequest{
				Name:    "   ",
				Address: "somewhere",
			},
			wantErr: true,
			errMsg:  "name is required",
		},
		{
			name: "empty address",
			req: &model.CreateOfficeRequest{
				Name: "No Address",
			},
			wantErr: true,
			errMsg:  "address is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.WithAutoDB(t, func(db *sql.DB) {
				repo := NewOfficeRepo(db)

				office, err := repo.Create(context.Background(), tt.req)
				if tt.wantErr {
					require.Error(t, err)
					assert.Contains(t, err.Error(), tt.errMsg)
					assert.Nil(t, office)
					return
				}

				require.NoError(t, err)
				require.NotNil(t, office)
				assert.NotEmpty(t, office.ID)
				assert.Equal(t, tt.req.Name, office.Name)
				assert.Equal(t, tt.req.Address, office.Address)
				assert.Equal(t, tt.req.WorkNumber, office.WorkNumber)
				assert.True(t, office.Active)
				assert.False(t, office.CreatedAt.IsZero())
			})
		})
	}
}

func TestOfficeRepo_Create_DuplicateName(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewOfficeRepo(db)
		ctx := context.Background()

		req := &model.CreateOfficeRequest{Name: "duplicate-office", Address: "addr"}

		first, err := repo.Create(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, first)

		second, err := repo.Create(ctx, req)
		require.Error(t, err)
		assert.Nil(t, second)
		assert.ErrorIs(t, err, ErrOfficeNameExists)
	})
}

func TestOfficeRepo_GetByID(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewOfficeRepo(db)
		ctx := context.Background()

		created := createTestOffice(t, db)

		found, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, created.Name, found.Name)
		assert.Equal(t, created.Address, found.Address)
		assert.Equal(t, created.CreatedAt.Unix(), found.CreatedAt.Unix())

		notFound, err := repo.GetByID(ctx, "550e8400-e29b-41d4-a716-446655440000")
		require.Error(t, err)
		require.ErrorIs(t, err, ErrOfficeNotFound)
		assert.Nil(t, notFound)
	})
}

func TestOfficeRepo_List(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewOfficeRepo(db)
		ctx := context.Background()

		reqs := []*model.CreateOfficeRequest{
			{Name: "Berlin Hub", Address: "Alexanderplatz 1"},
			{Name: "Munich Hub", Address: "Marienplatz 2"},
			{Name: "Hamburg Loft", Address: "Speicherstadt 3"},
		}
		for _, req := range reqs {
			_, err := repo.Create(ctx, req)
			require.NoError(t, err)
		}

		// Default ordering is created_at DESC.
		listed, err := repo.List(ctx, model.OfficeListOptions{Limit: 10})
		require.NoError(t, err)
		require.Len(t, listed, 3)
		assert.Equal(t, "Hamburg Loft", listed[0].Name)

		// Sort by name ascending.
		byName, err := repo.List(ctx, model.OfficeListOptions{Limit: 10, Sort: "name", Dir: "asc"})
		require.NoError(t, err)
		require.Len(t, byName, 3)
		assert.Equal(t, "Berlin Hub", byName[0].Name)
		assert.Equal(t, "Munich Hub", byName[2].Name)

		// Substring name filter is case-insensitive.
		hubs, err := repo.List(ctx, model.OfficeListOptions{Limit: 10, Name: testutil.StringPtr("hub")})
		require.NoError(t, err)
		assert.Len(t, hubs, 2)

		// Address filter.
		byAddr, err := repo.List(ctx, model.OfficeListOptions{Limit: 10, Address: testutil.StringPtr("marienplatz")})
		require.NoError(t, err)
		require.Len(t, byAddr, 1)
		assert.Equal(t, "Munich Hub", byAddr[0].Name)

		// Pagination.
		page1, err := repo.List(ctx, model.OfficeListOptions{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, page1, 2)
		page2, err := repo.List(ctx, model.OfficeListOptions{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, page2, 1)

		count, err := repo.Count(ctx, model.OfficeListOptions{Name: testutil.StringPtr("hub")})
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}

func TestOfficeRepo_List_ActiveFilter(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewOfficeRepo(db)
		ctx := context.Background()

		active := createTestOffice(t, db)
		inactive := createTestOffice(t, db)
		_, err := repo.Update(ctx, inactive.ID, model.UpdateOfficeRequest{Active: testutil.BoolPtr(false)})
		require.NoError(t, err)

		listed, err := repo.List(ctx, model.OfficeListOptions{Limit: 10, Active: testutil.BoolPtr(true)})
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, active.ID, listed[0].ID)

		inactiveList, err := repo.List(ctx, model.OfficeListOptions{Limit: 10, Active: testutil.BoolPtr(false)})
		require.NoError(t, err)
		require.Len(t, inactiveList, 1)
		assert.Equal(t, inactive.ID, inactiveList[0].ID)
	})
}

func TestOfficeRepo_Update(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewOfficeRepo(db)
		ctx := context.Background()

		created := createTestOffice(t, db)

		updated, err := repo.Update(ctx, created.ID, model.UpdateOfficeRequest{
			Name: testutil.StringPtr("renamed"),
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "renamed", updated.Name)
		assert.Equal(t, created.Address, updated.Address)
		assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))

		updated, err = repo.Update(ctx, created.ID, model.UpdateOfficeRequest{
			Address:    testutil.StringPtr("new address"),
			WorkNumber: testutil.StringPtr("+1-555-0199"),
			Active:     testutil.BoolPtr(false),
		})
		require.NoError(t, err)
		assert.Equal(t, "renamed", updated.Name)
		assert.Equal(t, "new address", updated.Address)
		assert.Equal(t, "+1-555-0199", updated.WorkNumber)
		assert.False(t, updated.Active)

		// Empty update re-reads the current row.
		same, err := repo.Update(ctx, created.ID, model.UpdateOfficeRequest{})
		require.NoError(t, err)
		assert.Equal(t, "renamed", same.Name)

		notFound, err := repo.Update(ctx, "550e8400-e29b-41d4-a716-446655440000", model.UpdateOfficeRequest{
			Name: testutil.StringPtr("ghost"),
		})
		require.Error(t, err)
		require.ErrorIs(t, err, ErrOfficeNotFound)
		assert.Nil(t, notFound)
	})
}

func TestOfficeRepo_Delete(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewOfficeRepo(db)
		ctx := context.Background()

		created := createTestOffice(t, db)

		deleted, err := repo.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = repo.GetByID(ctx, created.ID)
		require.ErrorIs(t, err, ErrOfficeNotFound)

		notDeleted, err := repo.Delete(ctx, "550e8400-e29b-41d4-a716-446655440000")
		require.NoError(t, err)
		assert.False(t, notDeleted)
	})
}

func TestOfficeRepo_Delete_BlockedByRooms(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewOfficeRepo(db)
		ctx := context.Background()

		office := createTestOffice(t, db)
		createTestRoom(t, db, office.ID)

		deleted, err := repo.Delete(ctx, office.ID)
		require.Error(t, err)
		assert.False(t, deleted)
	})
}

func TestOfficeRepo_WithTimeProvider(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		mockTime := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
		repo := NewOfficeRepoWithTimeProvider(db, NewFixedTimeProvider(mockTime))

		created, err := repo.Create(context.Background(), &model.CreateOfficeRequest{
			Name:    "fixed-time-office",
			Address: "addr",
		})
		require.NoError(t, err)
		assert.Equal(t, mockTime.Unix(), created.CreatedAt.Unix())
	})
}
