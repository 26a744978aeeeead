// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"visitorbook/internal/db"
)

// OpenSQLite opens a named in-memory SQLite database and applies migrations.
// The database is closed via t.Cleanup.
func OpenSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	// shared cache so every pooled connection sees the same database
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name)
	gormDB, err := db.Open("sqlite", dsn, logger.Discard)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	// one connection keeps the memory database alive and avoids SQLITE_LOCKED
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := db.Migrate(gormDB); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return gormDB
}

// NewRedis starts an in-process Redis server and returns it with a client.
func NewRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return srv, client
}
