// Package config assembles a mediagallery.Service and its HTTP surface
// from environment variables.
package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tendant/simple-gallery/pkg/mediagallery"
	"github.com/tendant/simple-gallery/pkg/mediagallery/authz"
	repomemory "github.com/tendant/simple-gallery/pkg/mediagallery/repo/memory"
	repopg "github.com/tendant/simple-gallery/pkg/mediagallery/repo/postgres"
	storagememory "github.com/tendant/simple-gallery/pkg/mediagallery/storage/memory"
	storages3 "github.com/tendant/simple-gallery/pkg/mediagallery/storage/s3"
	"github.com/tendant/simple-gallery/pkg/mediagallery/urlstrategy"
)

// ServerConfig holds the recognized environment options. An empty
// DATABASE_URL selects the in-memory repository, an empty AWS_S3_BUCKET the
// in-memory blob store; both are meant for local development and tests.
type ServerConfig struct {
	Port        string `env:"PORT" env-default:"5000"`
	AdminUserID string `env:"ADMIN_USER_ID"`
	DatabaseURL string `env:"DATABASE_URL"`
	S3          S3Config
}

// S3Config holds object-store credentials and addressing.
type S3Config struct {
	Bucket          string `env:"AWS_S3_BUCKET"`
	Region          string `env:"AWS_S3_REGION" env-default:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	Endpoint        string `env:"AWS_S3_ENDPOINT"`
	UsePathStyle    bool   `env:"AWS_S3_USE_PATH_STYLE" env-default:"false"`

	// PublicBaseURL overrides the virtual-hosted S3 URL shape, for CDNs
	// and path-style S3-compatible services.
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`
}

// Load reads the configuration from the process environment.
func Load() (*ServerConfig, error) {
	var cfg ServerConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate validates the server configuration
func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}
	if c.AdminUserID == "" {
		return errors.New("ADMIN_USER_ID is required")
	}
	return nil
}

// BuildService creates a Service instance from the server configuration
func (c *ServerConfig) BuildService(ctx context.Context) (mediagallery.Service, error) {
	repo, err := c.buildRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build repository: %w", err)
	}

	store, err := c.buildBlobStore()
	if err != nil {
		return nil, fmt.Errorf("failed to build blob store: %w", err)
	}

	return mediagallery.New(
		mediagallery.WithRepository(repo),
		mediagallery.WithBlobStore(store),
		mediagallery.WithURLStrategy(c.buildURLStrategy()),
		mediagallery.WithEventSink(mediagallery.NewSlogEventSink(nil)),
	)
}

// BuildAuthorizer creates the admin authorization policy.
func (c *ServerConfig) BuildAuthorizer() authz.Authorizer {
	return authz.NewStaticAdmin(c.AdminUserID)
}

func (c *ServerConfig) buildRepository(ctx context.Context) (mediagallery.Repository, error) {
	if c.DatabaseURL == "" {
		return repomemory.New(), nil
	}

	poolCfg, err := pgxpool.ParseConfig(c.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DATABASE_URL: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return repopg.NewWithPool(pool), nil
}

func (c *ServerConfig) buildBlobStore() (mediagallery.BlobStore, error) {
	if c.S3.Bucket == "" {
		return storagememory.New(), nil
	}

	return storages3.New(storages3.Config{
		Region:          c.S3.Region,
		Bucket:          c.S3.Bucket,
		AccessKeyID:     c.S3.AccessKeyID,
		SecretAccessKey: c.S3.SecretAccessKey,
		Endpoint:        c.S3.Endpoint,
		UsePathStyle:    c.S3.UsePathStyle,
	})
}

func (c *ServerConfig) buildURLStrategy() urlstrategy.URLStrategy {
	if c.S3.PublicBaseURL != "" {
		return urlstrategy.NewBaseURLStrategy(c.S3.PublicBaseURL)
	}
	return urlstrategy.NewS3PublicStrategy(c.S3.Bucket, c.S3.Region)
}
