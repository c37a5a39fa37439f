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

func TestWorkplaceRepo_Create(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewWorkplaceRepo(db)
		ctx := context.Background()

		office := createTestOffice(t, db)
		room := createTestRoom(t, db, office.ID)

		created, err := repo.Create(ctx, &model.CreateWorkplaceRequest{
			RoomID:     room.ID,
			Label:      "A-01",
			HasMonitor: true,
			HasDock:    false,
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, room.ID, created.RoomID)
		assert.Equal(t, "A-01", created.Label)
		assert.True(t, created.HasMonitor)
		assert.False(t, created.HasDock)
		assert.True(t, created.Active)
	})
}

func TestWorkplaceRepo_Create_DuplicateLabel(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewWorkplaceRepo(db)
		ctx := context.Background()

		office := createTestOffice(t, db)
		room1 := createTestRoom(t, db, office.ID)
		room2 := createTestRoom(t, db, office.ID)

		_, err := repo.Create(ctx, &model.CreateWorkplaceRequest{RoomID: room1.ID, Label: "A-01"})
		require.NoError(t, err)

		// Label is unique per room.
		_, err = repo.Create(ctx, &model.CreateWorkplaceRequest{RoomID: room1.ID, Label: "A-01"})
		assert.ErrorIs(t, err, ErrWorkplaceLabelExists)

		// The same label in another room is fine.
		_, err = repo.Create(ctx, &model.CreateWorkplaceRequest{RoomID: room2.ID, Label: "A-01"})
		require.NoError(t, err)
	})
}

func TestWorkplaceRepo_List(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewWorkplaceRepo(db)
		ctx := context.Background()

		office1 := createTestOffice(t, db)
		office2 := createTestOffice(t, db)
		room1 := createTestRoom(t, db, office1.ID)
		room2 := createTestRoom(t, db, office2.ID)

		reqs := []*model.CreateWorkplaceRequest{
			{RoomID: room1.ID, Label: "A-01", HasMonitor: true, HasDock: true},
			{RoomID: room1.ID, Label: "A-02", HasMonitor: false},
			{RoomID: room2.ID, Label: "B-01", HasMonitor: true},
		}
		for _, req := range reqs {
			_, err := repo.Create(ctx, req)
			require.NoError(t, err)
		}

		all, err := repo.List(ctx, model.WorkplaceListOptions{Limit: 10})
		require.NoError(t, err)
		assert.Len(t, all, 3)

		inRoom1, err := repo.List(ctx, model.WorkplaceListOptions{Limit: 10, RoomID: &room1.ID})
		require.NoError(t, err)
		assert.Len(t, inRoom1, 2)

		// Office filter crosses the rooms join.
		inOffice2, err := repo.List(ctx, model.WorkplaceListOptions{Limit: 10, OfficeID: &office2.ID})
		require.NoError(t, err)
		require.Len(t, inOffice2, 1)
		assert.Equal(t, "B-01", inOffice2[0].Label)

		withMonitor, err := repo.List(ctx, model.WorkplaceListOptions{Limit: 10, HasMonitor: testutil.BoolPtr(true)})
		require.NoError(t, err)
		assert.Len(t, withMonitor, 2)

		withDock, err := repo.List(ctx, model.WorkplaceListOptions{Limit: 10, HasDock: testutil.BoolPtr(true)})
		require.NoError(t, err)
		assert.Len(t, withDock, 1)

		byLabel, err := repo.List(ctx, model.WorkplaceListOptions{Limit: 10, Label: testutil.StringPtr("a-0")})
		require.NoError(t, err)
		assert.Len(t, byLabel, 2)

		count, err := repo.Count(ctx, model.WorkplaceListOptions{RoomID: &room1.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}

func TestWorkplaceRepo_Update(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewWorkplaceRepo(db)
		ctx := context.Background()

		office := createTestOffice(t, db)
		room := createTestRoom(t, db, office.ID)
		created := createTestWorkplace(t, db, room.ID)

		updated, err := repo.Update(ctx, created.ID, model.UpdateWorkplaceRequest{
			Label:   testutil.StringPtr("Z-99"),
			HasDock: testutil.BoolPtr(true),
			Active:  testutil.BoolPtr(false),
		})
		require.NoError(t, err)
		assert.Equal(t, "Z-99", updated.Label)
		assert.True(t, updated.HasDock)
		assert.False(t, updated.Active)

		_, err = repo.Update(ctx, "550e8400-e29b-41d4-a716-446655440000", model.UpdateWorkplaceRequest{
			Label: testutil.StringPtr("ghost"),
		})
		assert.ErrorIs(t, err, ErrWorkplaceNotFound)
	})
}

func TestWorkplaceRepo_Delete(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewWorkplaceRepo(db)
		ctx := context.Background()

		office := createTestOffice(t, db)
		room := createTestRoom(t, db, office.ID)
		created := createTestWorkplace(t, db, room.ID)

		deleted, err := repo.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = repo.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, ErrWorkplaceNotFound)
	})
}
