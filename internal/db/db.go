package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"visitorbook/internal/model"
)

// Open returns a connected GORM DB instance for the given driver.
// Duplicate key errors are translated to gorm.ErrDuplicatedKey.
// SQLite only enforces foreign keys when the DSN carries _foreign_keys=1.
func Open(driver, dsn string, log logger.Interface) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		dialector = mysql.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}

	cfg := &gorm.Config{TranslateError: true}
	if log != nil {
		cfg.Logger = log
	}
	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}
	return db, nil
}

// mysqlTableOptions gives new MySQL tables a binary collation, so usernames
// compare and stay unique byte for byte as they do on SQLite.
const mysqlTableOptions = "DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_bin"

// Migrate creates or updates the roles and users tables.
// The MySQL collation only applies to tables created here; tables created
// earlier keep theirs until RESET_DB recreates them.
func Migrate(db *gorm.DB) error {
	if err := migrationSession(db).AutoMigrate(model.Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

func migrationSession(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "mysql" {
		return db.Set("gorm:table_options", mysqlTableOptions)
	}
	return db
}

// Reset drops every table in reverse migration order.
func Reset(db *gorm.DB) error {
	models := model.Models()
	for i := len(models) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(models[i]); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	return nil
}
