//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PandaPandaBE/oud-zwembad-booking-tool/cmd/bootstrap"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/cmd/bootstrap/components"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/infra/db"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/config"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = nat.Port("5432/tcp")
	redisPort  = nat.Port("6379/tcp")
	timeZone   = "Europe/Amsterdam"
	migrations = "migrations"
)

// sharedContainer starts its container on first use; every suite in the
// test process reuses it. The testcontainers reaper removes it after the run.
type sharedContainer struct {
	once      sync.Once
	container testcontainers.Container
	err       error
}

func (s *sharedContainer) endpoint(t *testing.T, req testcontainers.ContainerRequest, port nat.Port) (string, nat.Port) {
	t.Helper()

	s.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()
		s.container, s.err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
	})
	require.NoError(t, s.err, "failed to start %s", req.Image)

	ctx := context.Background()
	host, err := s.container.Host(ctx)
	require.NoError(t, err)
	mapped, err := s.container.MappedPort(ctx, port)
	require.NoError(t, err)
	return host, mapped
}

var (
	postgres sharedContainer
	cache    sharedContainer
)

func postgresRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{string(pgPort)},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		Cmd: []string{
			"postgres",
			"-c", "fsync=off",
			"-c", "full_page_writes=off",
			"-c", "synchronous_commit=off",
		},
		WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
			return adminDSN(host, port)
		}).WithStartupTimeout(time.Minute),
		Labels: map[string]string{"purpose": "e2e-tests"},
	}
}

func redisRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{string(redisPort)},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		Labels:       map[string]string{"purpose": "e2e-tests"},
	}
}

func adminDSN(host string, port nat.Port) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
}

// createDatabase gives the test process its own database, dropped on cleanup.
func createDatabase(t *testing.T, host string, port nat.Port) config.DBConfig {
	t.Helper()

	name := "booking_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	admin, err := pgxpool.New(ctx, adminDSN(host, port))
	require.NoError(t, err, "admin connection failed")
	defer admin.Close()

	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 5 {
			break
		}
		slog.Warn("retrying database creation", "attempt", attempt, "error", err.Error())
		time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN(host, port))
		if err != nil {
			slog.Warn("cleanup connection failed", "database", name, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: timeZone,
		MaxConns: 8,
	}
}

// applyMigrations runs every migrations/*.sql file in name order.
func applyMigrations(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	dir := findMigrations(t)
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, files, "no migrations found in %s", dir)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, file := range files {
		sql, err := os.ReadFile(file)
		require.NoError(t, err)
		_, err = pool.Exec(ctx, string(sql))
		require.NoError(t, err, "migration %s failed", filepath.Base(file))
	}
}

// go test runs in the package directory; walk up to the module root.
func findMigrations(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)
	for {
		candidate := filepath.Join(dir, migrations)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		require.NotEqual(t, dir, parent, "migrations directory not found")
		dir = parent
	}
}

type environment struct {
	Pool   *pgxpool.Pool
	Redis  *redis.Client
	Router *gin.Engine
	Config config.Config
}

func setupEnvironment(t *testing.T) environment {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pgHost, pgMapped := postgres.endpoint(t, postgresRequest(), pgPort)
	redisHost, redisMapped := cache.endpoint(t, redisRequest(), redisPort)

	cfg := config.NewTestConfig()
	cfg.DB = createDatabase(t, pgHost, pgMapped)
	cfg.Cache.RedisURL = fmt.Sprintf("redis://%s:%s/0", redisHost, redisMapped.Port())
	cfg.Cache.KeyPrefix = "e2e-" + uuid.NewString()

	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	require.NoError(t, err, "database connection failed")
	t.Cleanup(cleanup)

	applyMigrations(t, pool)
	require.NoError(t, dbtest.SeedReferenceData(pool), "failed to seed reference data")

	env := environment{Pool: pool}
	app := fx.New(
		fx.Supply(cfg, pool),
		fx.Provide(
			bootstrap.NewLocation,
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.RedisModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&env.Router, &env.Config, &env.Redis),
		fx.NopLogger,
	)

	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(startCtx), "failed to start fx app")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx application", "error", err.Error())
		}
	})

	slog.Info("e2e environment ready",
		"database", cfg.DB.DBName,
		"postgres", pgHost+":"+pgMapped.Port(),
		"redis", redisHost+":"+redisMapped.Port())
	return env
}

// SharedSuite gives every e2e suite a migrated database, the Redis option cache
// and the fully wired router.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Redis  *redis.Client // nil when the cache could not be reached
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	env := setupEnvironment(s.T())
	s.Router = env.Router
	s.DB = env.Pool
	s.Redis = env.Redis
	s.Config = env.Config
	s.Require().NotNil(s.Router, "router setup failed")
}

// SetupSubTest restores the seeded options and drops this process's cached option lists.
func (s *SharedSuite) SetupSubTest() {
	s.Require().NoError(dbtest.ResetDB(s.DB), "failed to reset database state")

	if s.Redis == nil {
		return
	}
	ctx := context.Background()
	keys, err := s.Redis.Keys(ctx, s.Config.Cache.KeyPrefix+":*").Result()
	s.Require().NoError(err)
	if len(keys) > 0 {
		s.Require().NoError(s.Redis.Del(ctx, keys...).Err())
	}
}
