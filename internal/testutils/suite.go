package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"quemjoga-backend/internal/config"
	"quemjoga-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "quemjoga"
	pgPassword = "quemjoga"
	pgDatabase = "quemjoga_test"

	// POSTGRES_TEST_TAG overrides the image tag, e.g. to match production
	defaultPGTag = "15-alpine"
)

// pgContainer is the Postgres instance shared by every integration suite of a test binary
type pgContainer struct {
	once     sync.Once
	err      error
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	cfg      *config.Config
	tables   []string
}

var shared pgContainer

// BaseTestSuite hands a migrated database to repository suites
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
	tables []string
}

// SetupTestSuite starts the shared Postgres container on first use and returns a wrapper around it
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	shared.once.Do(func() { shared.err = shared.start() })
	if shared.err != nil {
		t.Fatalf("failed to initialize shared test container: %v", shared.err)
	}
	return &BaseTestSuite{
		DB:     shared.db,
		Config: shared.cfg,
		tables: shared.tables,
	}
}

// CleanupSharedContainer purges the shared container.
// Integration packages call it from their TestMain.
func CleanupSharedContainer() {
	if shared.db != nil {
		if sqlDB, err := shared.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		shared.db = nil
	}
	if shared.pool == nil || shared.resource == nil {
		return
	}
	log.Printf("Purging Postgres container %s", shared.resource.Container.Name)
	if err := shared.pool.Purge(shared.resource); err != nil {
		log.Printf("WARN: could not purge Postgres container: %v", err)
	}
	shared.pool, shared.resource = nil, nil
}

// SetupTest empties every table before a test
func (s *BaseTestSuite) SetupTest() { s.CleanTestDB() }

// TearDownTest empties every table after a test
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite only cleans data; the container outlives the suite
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates every model table in one statement
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil || len(s.tables) == 0 {
		return
	}
	quoted := make([]string, len(s.tables))
	for i, table := range s.tables {
		quoted[i] = `"` + table + `"`
	}
	if err := s.DB.Exec("TRUNCATE TABLE " + strings.Join(quoted, ", ") + " RESTART IDENTITY CASCADE").Error; err != nil {
		log.Printf("WARN: could not truncate test tables: %v", err)
	}
}

func (c *pgContainer) start() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	c.pool = pool

	tag := os.Getenv("POSTGRES_TEST_TAG")
	if tag == "" {
		tag = defaultPGTag
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        tag,
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	c.resource = resource

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	// The server accepts TCP before it accepts queries, so ping before migrating
	if err := pool.Retry(func() error {
		probe, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer probe.Close()
		return probe.Ping()
	}); err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	db, err := database.Initialize(dsn, nil)
	if err != nil {
		return fmt.Errorf("could not migrate test database: %w", err)
	}
	c.db = db

	tables, err := modelTables(db)
	if err != nil {
		return err
	}
	c.tables = tables

	c.cfg = &config.Config{
		DatabaseURL: dsn,
		Port:        "8000",
		LogLevel:    "debug",
		Environment: "test",
	}

	log.Printf("Shared Postgres %s ready with tables %v", tag, tables)
	return nil
}

// modelTables resolves table names through GORM's naming strategy
func modelTables(db *gorm.DB) ([]string, error) {
	all := database.Models()
	tables := make([]string, 0, len(all))
	for _, model := range all {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("could not resolve table for %T: %w", model, err)
		}
		tables = append(tables, stmt.Schema.Table)
	}
	return tables, nil
}
