// Command createadmin provisions an administrator account. Accounts are
// never created through the public API with the admin role; this is the
// administrative provisioning path.
//
//	createadmin -email admin@example.com -password s3cret [-name "Admin User"]
//
// Flags fall back to the ADMIN_EMAIL / ADMIN_PASSWORD / ADMIN_NAME
// environment variables.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/fumer/blog-platform-api/internal/core/domain"
	mongodb "github.com/fumer/blog-platform-api/internal/infrastructure/db/mongo"
	"github.com/fumer/blog-platform-api/internal/pkg/config"
	"github.com/fumer/blog-platform-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	email := flag.String("email", os.Getenv("ADMIN_EMAIL"), "admin email (required)")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password (required)")
	name := flag.String("name", envOr("ADMIN_NAME", "Admin User"), "display name")
	flag.Parse()

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	if *email == "" || *password == "" {
		log.Fatal().Msg("missing email or password: provide -email/-password flags or ADMIN_EMAIL/ADMIN_PASSWORD")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	users := mongodb.NewUserRepository(db)

	if _, err := users.FindByEmail(ctx, *email); err == nil {
		log.Info().Str("email", *email).Msg("admin user already exists")
		return
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		log.Fatal().Err(err).Msg("lookup failed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("password hashing failed")
	}

	now := time.Now().UTC()
	created, err := users.Create(ctx, &domain.User{
		ID:           domain.NewUserID(),
		Name:         *name,
		Email:        *email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create admin user")
	}

	log.Info().Str("id", created.ID).Str("email", created.Email).Msg("admin user created, change the password after first login")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
