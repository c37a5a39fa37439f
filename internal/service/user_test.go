package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/deskhub/booking-api/internal/core"
	"github.com/deskhub/booking-api/internal/data"
	"github.com/deskhub/booking-api/internal/domain/model"
	apperrors "github.com/deskhub/booking-api/internal/errors"
	"github.com/deskhub/booking-api/internal/mocks"
	"github.com/deskhub/booking-api/internal/testutil"
)

type userMocks struct {
	users  *mocks.MockUserRepository
	hasher *mocks.MockPasswordHasher
}

func newTestUserService(t *testing.T) (*UserService, userMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := userMocks{
		users:  mocks.NewMockUserRepository(ctrl),
		hasher: mocks.NewMockPasswordHasher(ctrl),
	}
	svc := NewUserService(UserServiceOptions{
		Users:  m.users,
		Hasher: m.hasher,
	})
	return svc, m
}

func TestUserService_Create_Success(t *testing.T) {
	svc, m := newTestUserService(t)
	ctx := context.Background()

	m.hasher.EXPECT().
		Hash("correct horse").
		Return("$2a$10$hash", nil)
	m.users.EXPECT().
		Create(ctx, core.CreateUserParams{
			FullName:     "Grace Hopper",
			Phone:        "+1-555-0101",
			Email:        "grace@example.com",
			PasswordHash: "$2a$10$hash",
			Roles:        []string{"admin", "user"},
		}).
		Return(&model.User{
			ID:           testUserID,
			FullName:     "Grace Hopper",
			PasswordHash: "$2a$10$hash",
			Roles:        []string{"admin", "user"},
		}, nil)

	user, err := svc.Create(ctx, &model.CreateUserRequest{
		FullName: "Grace Hopper",
		Phone:    "+1-555-0101",
		Email:    "grace@example.com",
		Password: "correct horse",
		Roles:    []string{"admin", "user"},
	})

	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
	assert.Equal(t, []string{"admin", "user"}, user.Roles)
}

func TestUserService_Create_DefaultRole(t *testing.T) {
	svc, m := newTestUserService(t)
	ctx := context.Background()

	m.hasher.EXPECT().Hash(gomock.Any()).Return("$2a$10$hash", nil)
	m.users.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, params core.CreateUserParams) (*model.User, error) {
			assert.Equal(t, []string{"user"}, params.Roles)
			return &model.User{ID: testUserID, Roles: params.Roles}, nil
		})

	_, err := svc.Create(ctx, &model.CreateUserRequest{
		FullName: "Grace Hopper",
		Phone:    "+1-555-0101",
		Email:    "grace@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
}

func TestUserService_Create_UnknownRole(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &model.CreateUserRequest{
		FullName: "Grace Hopper",
		Phone:    "+1-555-0101",
		Email:    "grace@example.com",
		Password: "correct horse",
		Roles:    []string{"superuser"},
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "roles", apperrors.GetField(err))
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	svc, m := newTestUserService(t)
	ctx := context.Background()

	m.users.EXPECT().
		GetByID(ctx, testUserID).
		Return(nil, data.ErrUserNotFound)

	_, err := svc.GetByID(ctx, testUserID)

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUserService_List_Success(t *testing.T) {
	svc, m := newTestUserService(t)
	ctx := context.Background()

	opts := model.UserListOptions{Limit: 10, Role: testutil.StringPtr("admin")}
	m.users.EXPECT().
		List(ctx, opts).
		Return([]*model.User{
			{ID: "1", PasswordHash: "$2a$10$hash"},
			{ID: "2", PasswordHash: "$2a$10$hash"},
		}, nil)
	m.users.EXPECT().
		Count(ctx, opts).
		Return(int64(12), nil)

	result, err := svc.List(ctx, opts)

	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, int64(12), result.Total)
	for _, u := range result.Items {
		assert.Empty(t, u.PasswordHash)
	}
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	svc, m := newTestUserService(t)
	ctx := context.Background()

	m.hasher.EXPECT().
		Hash("new password").
		Return("$2a$10$newhash", nil)
	m.users.EXPECT().
		Update(ctx, testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, params core.UpdateUserParams) (*model.User, error) {
			require.NotNil(t, params.PasswordHash)
			assert.Equal(t, "$2a$10$newhash", *params.PasswordHash)
			assert.Nil(t, params.Email)
			return &model.User{ID: testUserID}, nil
		})

	_, err := svc.Update(ctx, testUserID, model.UpdateUserRequest{
		Password: testutil.StringPtr("new password"),
	})
	require.NoError(t, err)
}

func TestUserService_Update_NoFields(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.Update(context.Background(), testUserID, model.UpdateUserRequest{})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestUserService_SetActive_Success(t *testing.T) {
	svc, m := newTestUserService(t)
	ctx := context.Background()

	m.users.EXPECT().
		SetActive(ctx, testUserID, false).
		Return(&model.User{ID: testUserID, Active: false}, nil)

	user, err := svc.SetActive(ctx, testUserID, false)

	require.NoError(t, err)
	assert.False(t, user.Active)
}

func TestUserService_ReplaceRoles_Success(t *testing.T) {
	svc, m := newTestUserService(t)
	ctx := context.Background()

	m.users.EXPECT().
		ReplaceRoles(ctx, testUserID, []string{"admin"}).
		Return(nil)
	m.users.EXPECT().
		GetByID(ctx, testUserID).
		Return(&model.User{ID: testUserID, Roles: []string{"admin"}}, nil)

	user, err := svc.ReplaceRoles(ctx, testUserID, []string{"admin"})

	require.NoError(t, err)
	assert.Equal(t, []string{"admin"}, user.Roles)
}

func TestUserService_ReplaceRoles_Validation(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.ReplaceRoles(ctx, testUserID, nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.ReplaceRoles(ctx, testUserID, []string{"superuser"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestUserService_Delete_NotFound(t *testing.T) {
	svc, m := newTestUserService(t)
	ctx := context.Background()

	m.users.EXPECT().
		Delete(ctx, testUserID).
		Return(false, nil)

	err := svc.Delete(ctx, testUserID)

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
