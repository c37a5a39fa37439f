package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/deskhub/booking-api/config"
	"github.com/deskhub/booking-api/internal/auth"
	"github.com/deskhub/booking-api/internal/data"
	"github.com/deskhub/booking-api/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth       *service.AuthService
	Users      *service.UserService
	Offices    *service.OfficeService
	Rooms      *service.RoomService
	Workplaces *service.WorkplaceService
	Bookings   *service.BookingService
	Breakages  *service.BreakageService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories groups data adapters backing service ports.
type serviceRepositories struct {
	Users      *data.UserRepo
	Offices    *data.OfficeRepo
	Rooms      *data.RoomRepo
	Workplaces *data.WorkplaceRepo
	Bookings   *data.BookingRepo
	Breakages  *data.BreakageRepo
	Cache      *data.RedisCacheRepo
}

// buildRepositories builds repositories backing service ports; no business rules here.
func buildRepositories(db *sql.DB, redisClient redis.UniversalClient) *serviceRepositories {
	repos := &serviceRepositories{
		Users:      data.NewUserRepo(db),
		Offices:    data.NewOfficeRepo(db),
		Rooms:      data.NewRoomRepo(db),
		Workplaces: data.NewWorkplaceRepo(db),
		Bookings:   data.NewBookingRepo(db),
		Breakages:  data.NewBreakageRepo(db),
	}
	if redisClient != nil {
		repos.Cache = data.NewRedisCacheRepo(redisClient)
	}
	return repos
}

// BuildServices wires repositories and adapters into the service layer.
func BuildServices(deps ServiceDeps) ServiceContainer {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cfg := deps.Config
	if cfg == nil {
		cfg = &config.AppConfig{}
		cfg.Sanitize()
	}

	repos := buildRepositories(deps.DB, deps.RedisClient)

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewTokenCodec(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.Issuer)

	authSvc := service.NewAuthService(service.AuthServiceOptions{
		Users:  repos.Users,
		Hasher: hasher,
		Tokens: tokens,
		Logger: logger,
	})

	userSvc := service.NewUserService(service.UserServiceOptions{
		Users:  repos.Users,
		Hasher: hasher,
		Logger: logger,
	})

	officeOpts := service.OfficeServiceOptions{
		Offices:  repos.Offices,
		CacheTTL: cfg.Cache.OfficeTTL,
		Logger:   logger,
	}
	if repos.Cache != nil {
		officeOpts.Cache = repos.Cache
	}
	officeSvc := service.NewOfficeService(officeOpts)

	roomSvc := service.NewRoomService(service.RoomServiceOptions{
		Rooms:   repos.Rooms,
		Offices: repos.Offices,
		Logger:  logger,
	})

	workplaceSvc := service.NewWorkplaceService(service.WorkplaceServiceOptions{
		Workplaces: repos.Workplaces,
		Rooms:      repos.Rooms,
		Logger:     logger,
	})

	bookingSvc := service.NewBookingService(service.BookingServiceOptions{
		Bookings:   repos.Bookings,
		Workplaces: repos.Workplaces,
		Logger:     logger,
	})

	breakageSvc := service.NewBreakageService(service.BreakageServiceOptions{
		Breakages:  repos.Breakages,
		Workplaces: repos.Workplaces,
		Logger:     logger,
	})

	return ServiceContainer{
		Auth:       authSvc,
		Users:      userSvc,
		Offices:    officeSvc,
		Rooms:      roomSvc,
		Workplaces: workplaceSvc,
		Bookings:   bookingSvc,
		Breakages:  breakageSvc,
	}
}
