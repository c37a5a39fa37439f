package data

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/deskhub/booking-api/internal/core"
	"github.com/deskhub/booking-api/internal/domain/model"
)

var fixtureSeq int

// nextFixtureID returns a per-process unique suffix for fixture names.
func nextFixtureID() int {
	fixtureSeq++
	return fixtureSeq
}

// createTestOffice is a test helper to create an office with a unique name.
func createTestOffice(t *testing.T, db *sql.DB) *model.Office {
	t.Helper()
	repo := NewOfficeRepo(db)
	office, err := repo.Create(context.Background(), &model.CreateOfficeRequest{
		Name:       fmt.Sprintf("office-%d", nextFixtureID()),
		Address:    "1 Main St",
		WorkNumber: "+1-555-0100",
	})
	require.NoError(t, err)
	return office
}

// createTestRoom is a test helper to create a room in the given office.
func createTestRoom(t *testing.T, db *sql.DB, officeID string) *model.Room {
	t.Helper()
	repo := NewRoomRepo(db)
	room, err := repo.Create(context.Background(), &model.CreateRoomRequest{
		OfficeID: officeID,
		Name:     fmt.Sprintf("room-%d", nextFixtureID()),
		Floor:    2,
		Capacity: 8,
	})
	require.NoError(t, err)
	return room
}

// createTestWorkplace is a test helper to create a workplace in the given room.
func createTestWorkplace(t *testing.T, db *sql.DB, roomID string) *model.Workplace {
	t.Helper()
	repo := NewWorkplaceRepo(db)
	wp, err := repo.Create(context.Background(), &model.CreateWorkplaceRequest{
		RoomID:     roomID,
		Label:      fmt.Sprintf("desk-%d", nextFixtureID()),
		HasMonitor: true,
	})
	require.NoError(t, err)
	return wp
}

// createTestUser is a test helper to create a user with the "user" role.
func createTestUser(t *testing.T, db *sql.DB) *model.User {
	t.Helper()
	repo := NewUserRepo(db)
	n := nextFixtureID()
	user, err := repo.Create(context.Background(), core.CreateUserParams{
		FullName:     fmt.Sprintf("Test User %d", n),
		Phone:        fmt.Sprintf("+1-555-%04d", n),
		Email:        fmt.Sprintf("user%d@example.com", n),
		PasswordHash: "$2a$04$notarealhashnotarealhashnotarea",
		Roles:        []string{"user"},
	})
	require.NoError(t, err)
	return user
}

// bookingWindow returns a future [from, to) window offset by the given hours.
func bookingWindow(fromHours, toHours int) (time.Time, time.Time) {
	base := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Hour)
	return base.Add(time.Duration(fromHours) * time.Hour), base.Add(time.Duration(toHours) * time.Hour)
}
