package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskhub/booking-api/internal/domain/model"
	"github.com/deskhub/booking-api/internal/testutil"
)

func TestRoomRepo_Create(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewRoomRepo(db)
		ctx := context.Background()

		office := createTestOffice(t, db)

		created, err := repo.Create(ctx, &model.CreateRoomRequest{
			OfficeID: office.ID,
			Name:     "War Room",
			Floor:    3,
			Capacity: 12,
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, office.ID, created.OfficeID)
		assert.Equal(t, "War Room", created.Name)
		assert.Equal(t, 3, created.Floor)
		assert.Equal(t, 12, created.Capacity)
		assert.True(t, created.Active)

		// Room in a nonexistent office fails on the FK.
		_, err = repo.Create(ctx, &model.CreateRoomRequest{
			OfficeID: "550e8400-e29b-41d4-a716-446655440000",
			Name:     "Ghost Room",
			Floor:    1,
			Capacity: 4,
		})
		require.Error(t, err)

		// Validation errors.
		_, err = repo.Create(ctx, &model.CreateRoomRequest{OfficeID: office.ID, Name: "", Floor: 1, Capacity: 4})
		require.Error(t, err)
		_, err = repo.Create(ctx, &model.CreateRoomRequest{OfficeID: office.ID, Name: "No Seats", Floor: 1, Capacity: 0})
		require.Error(t, err)
	})
}

func TestRoomRepo_GetByID(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewRoomRepo(db)
		ctx := context.Background()

		office := createTestOffice(t, db)
		created := createTestRoom(t, db, office.ID)

		found, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, created.Name, found.Name)

		_, err = repo.GetByID(ctx, "550e8400-e29b-41d4-a716-446655440000")
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})
}

func TestRoomRepo_List(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewRoomRepo(db)
		ctx := context.Background()

		office1 := createTestOffice(t, db)
		office2 := createTestOffice(t, db)

		rooms := []*model.CreateRoomRequest{
			{OfficeID: office1.ID, Name: "Alpha", Floor: 1, Capacity: 4},
			{OfficeID: office1.ID, Name: "Beta", Floor: 2, Capacity: 10},
			{OfficeID: office2.ID, Name: "Gamma", Floor: 1, Capacity: 6},
		}
		for _, req := range rooms {
			_, err := repo.Create(ctx, req)
			require.NoError(t, err)
		}

		all, err := repo.List(ctx, model.RoomListOptions{Limit: 10})
		require.NoError(t, err)
		assert.Len(t, all, 3)

		inOffice1, err := repo.List(ctx, model.RoomListOptions{Limit: 10, OfficeID: &office1.ID})
		require.NoError(t, err)
		assert.Len(t, inOffice1, 2)

		firstFloor, err := repo.List(ctx, model.RoomListOptions{Limit: 10, Floor: testutil.IntPtr(1)})
		require.NoError(t, err)
		assert.Len(t, firstFloor, 2)

		big, err := repo.List(ctx, model.RoomListOptions{Limit: 10, MinCapacity: testutil.IntPtr(6)})
		require.NoError(t, err)
		assert.Len(t, big, 2)

		byName, err := repo.List(ctx, model.RoomListOptions{Limit: 10, Name: testutil.StringPtr("alph")})
		require.NoError(t, err)
		require.Len(t, byName, 1)
		assert.Equal(t, "Alpha", byName[0].Name)

		sorted, err := repo.List(ctx, model.RoomListOptions{Limit: 10, Sort: "capacity", Dir: "desc"})
		require.NoError(t, err)
		require.Len(t, sorted, 3)
		assert.Equal(t, "Beta", sorted[0].Name)

		count, err := repo.Count(ctx, model.RoomListOptions{OfficeID: &office1.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}

func TestRoomRepo_Update(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewRoomRepo(db)
		ctx := context.Background()

		office := createTestOffice(t, db)
		created := createTestRoom(t, db, office.ID)

		updated, err := repo.Update(ctx, created.ID, model.UpdateRoomRequest{
			Name:     testutil.StringPtr("Renamed Room"),
			Capacity: testutil.IntPtr(20),
			Active:   testutil.BoolPtr(false),
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed Room", updated.Name)
		assert.Equal(t, 20, updated.Capacity)
		assert.False(t, updated.Active)
		assert.Equal(t, created.Floor, updated.Floor)

		_, err = repo.Update(ctx, "550e8400-e29b-41d4-a716-446655440000", model.UpdateRoomRequest{
			Name: testutil.StringPtr("ghost"),
		})
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})
}

func TestRoomRepo_Delete(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewRoomRepo(db)
		ctx := context.Background()

		office := createTestOffice(t, db)
		created := createTestRoom(t, db, office.ID)

		deleted, err := repo.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = repo.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, ErrRoomNotFound)

		// A room with workplaces is blocked by the FK.
		blocked := createTestRoom(t, db, office.ID)
		createTestWorkplace(t, db, blocked.ID)
		ok, err := repo.Delete(ctx, blocked.ID)
		require.Error(t, err)
		assert.False(t, ok)
	})
}
