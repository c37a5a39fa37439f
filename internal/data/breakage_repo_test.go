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

func TestBreakageRepo_Create(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewBreakageRepo(db)
		ctx := context.Background()

		office := createTestOffice(t, db)
		room := createTestRoom(t, db, office.ID)
		wp := createTestWorkplace(t, db, room.ID)
		user := createTestUser(t, db)

		created, err := repo.Create(ctx, &model.CreateBreakageRequest{
			UserID:      user.ID,
			WorkplaceID: wp.ID,
			Description: "monitor flickers",
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, user.ID, created.UserID)
		assert.Equal(t, wp.ID, created.WorkplaceID)
		assert.Equal(t, "monitor flickers", created.Description)
		assert.Equal(t, model.BreakageStatusOpen, created.Status)

		_, err = repo.Create(ctx, &model.CreateBreakageRequest{
			UserID: user.ID, WorkplaceID: wp.ID, Description: "   ",
		})
		require.Error(t, err)
	})
}

func TestBreakageRepo_List(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewBreakageRepo(db)
		ctx := context.Background()

		office := createTestOffice(t, db)
		room := createTestRoom(t, db, office.ID)
		wp1 := createTestWorkplace(t, db, room.ID)
		wp2 := createTestWorkplace(t, db, room.ID)
		alice := createTestUser(t, db)
		bob := createTestUser(t, db)

		reports := []*model.CreateBreakageRequest{
			{UserID: alice.ID, WorkplaceID: wp1.ID, Description: "broken chair"},
			{UserID: alice.ID, WorkplaceID: wp2.ID, Description: "dead dock"},
			{UserID: bob.ID, WorkplaceID: wp1.ID, Description: "chair squeaks"},
		}
		for _, req := range reports {
			_, err := repo.Create(ctx, req)
			require.NoError(t, err)
		}

		all, err := repo.List(ctx, model.BreakageListOptions{Limit: 10})
		require.NoError(t, err)
		assert.Len(t, all, 3)

		byUser, err := repo.List(ctx, model.BreakageListOptions{Limit: 10, UserID: &alice.ID})
		require.NoError(t, err)
		assert.Len(t, byUser, 2)

		byWp, err := repo.List(ctx, model.BreakageListOptions{Limit: 10, WorkplaceID: &wp1.ID})
		require.NoError(t, err)
		assert.Len(t, byWp, 2)

		chairs, err := repo.List(ctx, model.BreakageListOptions{Limit: 10, Description: testutil.StringPtr("chair")})
		require.NoError(t, err)
		assert.Len(t, chairs, 2)

		open := model.BreakageStatusOpen
		openOnly, err := repo.List(ctx, model.BreakageListOptions{Limit: 10, Status: &open})
		require.NoError(t, err)
		assert.Len(t, openOnly, 3)

		count, err := repo.Count(ctx, model.BreakageListOptions{UserID: &bob.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestBreakageRepo_Update(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewBreakageRepo(db)
		ctx := context.Background()

		office := createTestOffice(t, db)
		room := createTestRoom(t, db, office.ID)
		wp := createTestWorkplace(t, db, room.ID)
		user := createTestUser(t, db)

		created, err := repo.Create(ctx, &model.CreateBreakageRequest{
			UserID: user.ID, WorkplaceID: wp.ID, Description: "keyboard missing keys",
		})
		require.NoError(t, err)

		inProgress := model.BreakageStatusInProgress
		updated, err := repo.Update(ctx, created.ID, model.UpdateBreakageRequest{Status: &inProgress})
		require.NoError(t, err)
		assert.Equal(t, model.BreakageStatusInProgress, updated.Status)
		assert.Equal(t, created.Description, updated.Description)

		resolved := model.BreakageStatusResolved
		updated, err = repo.Update(ctx, created.ID, model.UpdateBreakageRequest{
			Description: testutil.StringPtr("keyboard replaced"),
			Status:      &resolved,
		})
		require.NoError(t, err)
		assert.Equal(t, model.BreakageStatusResolved, updated.Status)
		assert.Equal(t, "keyboard replaced", updated.Description)

		_, err = repo.Update(ctx, "550e8400-e29b-41d4-a716-446655440000", model.UpdateBreakageRequest{Status: &resolved})
		assert.ErrorIs(t, err, ErrBreakageNotFound)
	})
}

func TestBreakageRepo_GetAndDelete(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewBreakageRepo(db)
		ctx := context.Background()

		office := createTestOffice(t, db)
		room := createTestRoom(t, db, office.ID)
		wp := createTestWorkplace(t, db, room.ID)
		user := createTestUser(t, db)

		created, err := repo.Create(ctx, &model.CreateBreakageRequest{
			UserID: user.ID, WorkplaceID: wp.ID, Description: "coffee in dock",
		})
		require.NoError(t, err)

		found, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)

		deleted, err := repo.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = repo.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, ErrBreakageNotFound)
	})
}
