// Package mocks provides mock implementations for testing the booking API.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks
// for the repository and auth interfaces defined in internal/core. The
// mocks are generated using go:generate directives.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockUserRepository(ctrl)
//	mockRepo.EXPECT().GetByID(gomock.Any(), "id").Return(user, nil)
package mocks

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=user_repository_mock.go github.com/deskhub/booking-api/internal/core UserRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=office_repository_mock.go github.com/deskhub/booking-api/internal/core OfficeRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=room_repository_mock.go github.com/deskhub/booking-api/internal/core RoomRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=workplace_repository_mock.go github.com/deskhub/booking-api/internal/core WorkplaceRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=booking_repository_mock.go github.com/deskhub/booking-api/internal/core BookingRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=breakage_repository_mock.go github.com/deskhub/booking-api/internal/core BreakageRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=cache_repository_mock.go github.com/deskhub/booking-api/internal/core CacheRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=auth_mock.go github.com/deskhub/booking-api/internal/core PasswordHasher,TokenCodec
