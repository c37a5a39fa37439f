package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/deskhub/booking-api/internal/auth"
	"github.com/deskhub/booking-api/internal/data"
	"github.com/deskhub/booking-api/internal/domain/model"
	"github.com/deskhub/booking-api/internal/service"
)

const defaultUserCommandTimeout = time.Minute

type createAdminOptions struct {
	Email    string
	Password string
	FullName string
	Phone    string
}

type promoteUserOptions struct {
	Email string
}

type setUserActiveOptions struct {
	Email  string
	Active bool
}

type listUsersOptions struct {
	Limit  int
	Offset int
}

func newUserService(cmdCtx *commandContext, db *sql.DB) *service.UserService {
	return service.NewUserService(service.UserServiceOptions{
		Users:  data.NewUserRepo(db),
		Hasher: auth.NewBcryptHasher(cmdCtx.Config.Auth.BcryptCost),
		Logger: cmdCtx.Logger,
	})
}

func runCreateAdmin(cmdCtx *commandContext, args []string) error {
	opts, err := parseCreateAdminFlags(args)
	if err != nil {
		return err
	}

	return withDatabase(cmdCtx, defaultUserCommandTimeout, func(ctx context.Context, db *sql.DB) error {
		users := newUserService(cmdCtx, db)
		created, createErr := users.Create(ctx, &model.CreateUserRequest{
			FullName: opts.FullName,
			Email:    opts.Email,
			Phone:    opts.Phone,
			Password: opts.Password,
			Roles:    []string{"admin", "user"},
		})
		if createErr != nil {
			return fmt.Errorf("create admin: %w", createErr)
		}
		cmdCtx.Logger.InfoContext(ctx, "admin account created", "id", created.ID, "email", created.Email)
		return nil
	})
}

func runPromoteUser(cmdCtx *commandContext, args []string) error {
	opts, err := parsePromoteUserFlags(args)
	if err != nil {
		return err
	}

	return withDatabase(cmdCtx, defaultUserCommandTimeout, func(ctx context.Context, db *sql.DB) error {
		repo := data.NewUserRepo(db)
		user, findErr := repo.FindByLogin(ctx, opts.Email)
		if findErr != nil {
			return fmt.Errorf("find user %q: %w", opts.Email, findErr)
		}

		roles := user.Roles
		for _, r := range roles {
			if r == "admin" {
				cmdCtx.Logger.InfoContext(ctx, "user already has admin role", "email", opts.Email)
				return nil
			}
		}
		roles = append(roles, "admin")

		users := newUserService(cmdCtx, db)
		updated, replaceErr := users.ReplaceRoles(ctx, user.ID, roles)
		if replaceErr != nil {
			return fmt.Errorf("grant admin role: %w", replaceErr)
		}
		cmdCtx.Logger.InfoContext(ctx, "admin role granted",
			"id", updated.ID, "email", updated.Email, "roles", strings.Join(updated.Roles, ","))
		return nil
	})
}

func runSetUserActive(cmdCtx *commandContext, args []string) error {
	opts, err := parseSetUserActiveFlags(args)
	if err != nil {
		return err
	}

	return withDatabase(cmdCtx, defaultUserCommandTimeout, func(ctx context.Context, db *sql.DB) error {
		repo := data.NewUserRepo(db)
		user, findErr := repo.FindByLogin(ctx, opts.Email)
		if findErr != nil {
			return fmt.Errorf("find user %q: %w", opts.Email, findErr)
		}

		users := newUserService(cmdCtx, db)
		updated, setErr := users.SetActive(ctx, user.ID, opts.Active)
		if setErr != nil {
			return fmt.Errorf("set user active: %w", setErr)
		}
		cmdCtx.Logger.InfoContext(ctx, "user active flag updated",
			"id", updated.ID, "email", updated.Email, "active", updated.Active)
		return nil
	})
}

func runListUsers(cmdCtx *commandContext, args []string) error {
	opts, err := parseListUsersFlags(args)
	if err != nil {
		return err
	}

	return withDatabase(cmdCtx, defaultUserCommandTimeout, func(ctx context.Context, db *sql.DB) error {
		users := newUserService(cmdCtx, db)
		result, listErr := users.List(ctx, model.UserListOptions{
			Limit:  opts.Limit,
			Offset: opts.Offset,
		})
		if listErr != nil {
			return fmt.Errorf("list users: %w", listErr)
		}
		return printUserTable(result)
	})
}

func printUserTable(result *service.UserListResult) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tEMAIL\tFULL NAME\tACTIVE\tROLES"); err != nil {
		return fmt.Errorf("write user table header: %w", err)
	}
	for _, u := range result.Items {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\n",
			u.ID, u.Email, u.FullName, u.Active, strings.Join(u.Roles, ",")); err != nil {
			return fmt.Errorf("write user row: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush user table: %w", err)
	}
	return writef(os.Stdout, "\nTotal: %d\n", result.Total)
}

func parseCreateAdminFlags(args []string) (createAdminOptions, error) {
	fs := flag.NewFlagSet("create-admin", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts createAdminOptions
	fs.StringVar(&opts.Email, "email", "", "Email address for the new admin (required)")
	fs.StringVar(&opts.Password, "password", "", "Password for the new admin (required)")
	fs.StringVar(&opts.FullName, "full-name", "", "Full name for the new admin (required)")
	fs.StringVar(&opts.Phone, "phone", "", "Phone number for the new admin (required)")

	if err := fs.Parse(args); err != nil {
		return createAdminOptions{}, err
	}
	if strings.TrimSpace(opts.Email) == "" {
		return createAdminOptions{}, errors.New("--email is required")
	}
	if opts.Password == "" {
		return createAdminOptions{}, errors.New("--password is required")
	}
	if strings.TrimSpace(opts.FullName) == "" {
		return createAdminOptions{}, errors.New("--full-name is required")
	}
	if strings.TrimSpace(opts.Phone) == "" {
		return createAdminOptions{}, errors.New("--phone is required")
	}
	return opts, nil
}

func parsePromoteUserFlags(args []string) (promoteUserOptions, error) {
	fs := flag.NewFlagSet("promote-user", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts promoteUserOptions
	fs.StringVar(&opts.Email, "email", "", "Email address of the user to promote (required)")

	if err := fs.Parse(args); err != nil {
		return promoteUserOptions{}, err
	}
	if strings.TrimSpace(opts.Email) == "" {
		return promoteUserOptions{}, errors.New("--email is required")
	}
	return opts, nil
}

func parseSetUserActiveFlags(args []string) (setUserActiveOptions, error) {
	fs := flag.NewFlagSet("set-user-active", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := setUserActiveOptions{Active: true}
	fs.StringVar(&opts.Email, "email", "", "Email address of the user (required)")
	fs.BoolVar(&opts.Active, "active", true, "Target active state")

	if err := fs.Parse(args); err != nil {
		return setUserActiveOptions{}, err
	}
	if strings.TrimSpace(opts.Email) == "" {
		return setUserActiveOptions{}, errors.New("--email is required")
	}
	return opts, nil
}

func parseListUsersFlags(args []string) (listUsersOptions, error) {
	fs := flag.NewFlagSet("list-users", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := listUsersOptions{Limit: 50}
	fs.IntVar(&opts.Limit, "limit", 50, "Maximum number of users to list")
	fs.IntVar(&opts.Offset, "offset", 0, "Number of users to skip")

	if err := fs.Parse(args); err != nil {
		return listUsersOptions{}, err
	}
	if opts.Limit <= 0 {
		return listUsersOptions{}, errors.New("--limit must be greater than zero")
	}
	if opts.Offset < 0 {
		return listUsersOptions{}, errors.New("--offset must not be negative")
	}
	return opts, nil
}
