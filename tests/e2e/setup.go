//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"hotel-availability/cmd/bootstrap"
	"hotel-availability/cmd/bootstrap/components"
	"hotel-availability/internal/infra/db"
	"hotel-availability/internal/pkg/config"
	"hotel-availability/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	postgresImage = "postgres:17"
	postgresPort  = "5432/tcp"
	testUser      = "test"
	testPassword  = "testpass"
)

// Tables the scenarios read and write. A missing one means the migration did
// not run against the per-suite database.
var hotelTables = []string{
	"users",
	"hotels",
	"room_types",
	"availability_overrides",
	"hotel_bookings",
	"idempotency_keys",
	"notification_jobs",
}

var (
	postgresOnce      sync.Once
	postgresContainer testcontainers.Container
	postgresErr       error
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

func (c ContainerInfo) dsn(database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		testUser, testPassword, c.Host, c.Port.Port(), database)
}

type testEnv struct {
	pool   *pgxpool.Pool
	router *gin.Engine
	cfg    config.Config
}

func setupE2EEnvironment(t *testing.T) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	info := startPostgres(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbConfig := createDatabase(ctx, t, info)

	pool, cleanup, err := db.Connect(ctx, dbConfig)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(cleanup)

	require.NoError(t, applyMigrations(ctx, pool), "データベースマイグレーションに失敗")
	requireHotelSchema(ctx, t, pool)

	cfg := config.NewTestConfig()
	cfg.DB = dbConfig
	router := startApp(t, pool, cfg)

	slog.Info("E2E環境の準備が完了しました",
		"postgres_host", info.Host,
		"postgres_port", info.Port.Port(),
		"database", dbConfig.DBName)

	return testEnv{pool: pool, router: router, cfg: cfg}
}

// startPostgres boots one container per test process; every suite gets its
// own database inside it.
func startPostgres(t *testing.T) ContainerInfo {
	t.Helper()

	postgresOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		postgresContainer, postgresErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        postgresImage,
				ExposedPorts: []string{postgresPort},
				Env: map[string]string{
					"POSTGRES_USER":     testUser,
					"POSTGRES_PASSWORD": testPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{
					"/var/lib/postgresql/data": "rw,size=512m",
				},
				// 耐久性は不要。並行予約テストで接続数を使うため上限を上げる
				Cmd: []string{
					"postgres",
					"-c", "fsync=off",
					"-c", "full_page_writes=off",
					"-c", "synchronous_commit=off",
					"-c", "max_connections=200",
					"-c", "log_statement=none",
				},
				WaitingFor: wait.ForSQL(postgresPort, "pgx", func(host string, port nat.Port) string {
					return ContainerInfo{Host: host, Port: port}.dsn("postgres")
				}).WithStartupTimeout(60 * time.Second),
				Labels: map[string]string{"purpose": "hotel-availability-e2e"},
			},
			Started: true,
		})
	})
	require.NoError(t, postgresErr, "PostgreSQLコンテナの起動に失敗")

	ctx := context.Background()
	port, err := postgresContainer.MappedPort(ctx, nat.Port(postgresPort))
	require.NoError(t, err, "PostgreSQLのポート取得に失敗")
	host, err := postgresContainer.Host(ctx)
	require.NoError(t, err, "PostgreSQLのホスト取得に失敗")

	return ContainerInfo{Host: host, Port: port}
}

func createDatabase(ctx context.Context, t *testing.T, info ContainerInfo) config.DBConfig {
	t.Helper()

	name := "hotel_e2e_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	admin, err := pgxpool.New(ctx, info.dsn("postgres"))
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	// コンテナ起動直後は接続を受け付けても CREATE DATABASE が失敗することがある
	var createErr error
	for attempt := range 5 {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
			slog.Warn("データベース作成を再試行中", "attempt", attempt+1, "error", createErr.Error())
		}
		if _, createErr = admin.Exec(ctx, "CREATE DATABASE "+name); createErr == nil {
			break
		}
	}
	require.NoError(t, createErr, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		dropCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		pool, err := pgxpool.New(dropCtx, info.dsn("postgres"))
		if err != nil {
			slog.Warn("データベース削除用の接続に失敗しました", "database", name, "error", err.Error())
			return
		}
		defer pool.Close()
		if _, err := pool.Exec(dropCtx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     info.Host,
		Port:     info.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 20,
	}
}

// migrationsDir walks up from the package directory `go test` runs in until it
// finds the module root.
func migrationsDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, "migrations"), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found above %s", dir)
		}
		dir = parent
	}
}

func applyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	dir, err := migrationsDir()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no migrations in %s", dir)
	}
	sort.Strings(files)

	for _, file := range files {
		sqlContent, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file, err)
		}
		if _, err := pool.Exec(ctx, string(sqlContent)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", filepath.Base(file), err)
		}
		slog.Info("マイグレーション実行完了", "file", filepath.Base(file))
	}
	return nil
}

func requireHotelSchema(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	var missing []string
	for _, table := range hotelTables {
		var exists bool
		err := pool.QueryRow(ctx, `SELECT to_regclass('public.' || $1::text) IS NOT NULL`, table).Scan(&exists)
		require.NoError(t, err)
		if !exists {
			missing = append(missing, table)
		}
	}
	require.Empty(t, missing, "マイグレーション後にテーブルが存在しません")
}

// startApp boots the HTTP graph against the test pool. The notifier is left
// out so outbox rows stay queued and scenarios can count them.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(func() *pgxpool.Pool { return pool }),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})

	require.NotNil(t, router, "Routerのセットアップに失敗")
	return router
}

// SharedSuite is embedded by every e2e suite. Each subtest starts from empty
// tables.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	env := setupE2EEnvironment(s.T())
	s.DB = env.pool
	s.Router = env.router
	s.Config = env.cfg
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "Failed to reset database state")
}
