// Command seed bootstraps the first admin account and, optionally, a demo
// catalog. Public registration only ever creates normal users.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"travel_booking_backend/internal/access"
	authrepo "travel_booking_backend/internal/auth/repository"
	"travel_booking_backend/internal/auth/password"
	destrepo "travel_booking_backend/internal/destinations/repository"
	pkgrepo "travel_booking_backend/internal/packages/repository"
	"travel_booking_backend/migrations"
	"travel_booking_backend/platform/config"
	"travel_booking_backend/platform/db"
	"travel_booking_backend/platform/logger"
	"travel_booking_backend/platform/sanitize"
)

func main() {
	catalogPath := flag.String("catalog", "", "path to a YAML catalog fixture")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env).Component("seed")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := db.RunMigrations(ctx, cfg, migrations.FS); err != nil {
		log.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := seedAdmin(ctx, authrepo.New(pool), adminFromEnv(), log); err != nil {
		log.Error("failed to seed admin", "error", err)
		os.Exit(1)
	}

	if *catalogPath == "" {
		return
	}
	catalog, err := loadCatalog(*catalogPath)
	if err != nil {
		log.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}
	if err := seedCatalog(ctx, destrepo.New(pool), pkgrepo.New(pool), catalog, log); err != nil {
		log.Error("failed to seed catalog", "error", err)
		os.Exit(1)
	}
}

type adminAccount struct {
	UserName string
	Email    string
	Password string
}

func adminFromEnv() adminAccount {
	return adminAccount{
		UserName: sanitize.Text(os.Getenv("SEED_ADMIN_NAME")),
		Email:    strings.ToLower(strings.TrimSpace(os.Getenv("SEED_ADMIN_EMAIL"))),
		Password: os.Getenv("SEED_ADMIN_PASSWORD"),
	}
}

func seedAdmin(ctx context.Context, repo authrepo.Repository, admin adminAccount, log *logger.Logger) error {
	if admin.Email == "" || admin.Password == "" {
		log.Info("SEED_ADMIN_EMAIL or SEED_ADMIN_PASSWORD not set; skipping admin")
		return nil
	}
	if admin.UserName == "" {
		admin.UserName = "Administrator"
	}

	exists, err := repo.EmailExists(ctx, admin.Email)
	if err != nil {
		return err
	}
	if exists {
		log.Info("admin already exists", "email", admin.Email)
		return nil
	}

	hash, err := password.Hash(admin.Password)
	if err != nil {
		return err
	}
	user, err := repo.CreateUser(ctx, authrepo.CreateUserParams{
		UserName:     admin.UserName,
		Email:        admin.Email,
		PasswordHash: hash,
		Role:         access.RoleAdmin,
	})
	if err != nil {
		return err
	}
	log.Info("admin created", "userId", user.ID, "email", user.Email)
	return nil
}

// seedCatalog only writes into an empty catalog so reruns are harmless.
func seedCatalog(ctx context.Context, destinations destrepo.Repository, packages pkgrepo.Writer, catalog Catalog, log *logger.Logger) error {
	total, err := destinations.Count(ctx, destrepo.ListParams{})
	if err != nil {
		return err
	}
	if total > 0 {
		log.Info("catalog already populated; skipping", "destinations", total)
		return nil
	}

	for _, d := range catalog.Destinations {
		dest, err := destinations.Create(ctx, destrepo.CreateParams{
			Name:        sanitize.Text(d.Name),
			Description: sanitize.Text(d.Description),
			ImageURL:    d.ImageURL,
		})
		if err != nil {
			return err
		}
		for _, p := range d.Packages {
			if _, err := packages.Create(ctx, pkgrepo.CreateParams{
				DestinationID: dest.ID,
				Name:          sanitize.Text(p.Name),
				Description:   sanitize.Text(p.Description),
				Duration:      p.Duration,
				Included:      sanitize.Strings(p.Included),
				ImageURL:      p.ImageURL,
				GroupSize:     p.GroupSize,
				Price:         p.Price,
			}); err != nil {
				return err
			}
		}
		log.Info("destination seeded", "name", dest.Name, "packages", len(d.Packages))
	}
	return nil
}
