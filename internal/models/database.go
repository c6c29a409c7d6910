package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var DB *gorm.DB

type ContextKey string

const (
	DBContextURL ContextKey = "moneywise-backend-url"
)

// Connect opens the SQLite database and configures the connection pool.
func Connect(dsn string) error {
	config := &gorm.Config{
		Logger: newLogger(log.Logger),
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	// Migration runs with foreign keys disabled since sqlite does not
	// support ALTER COLUMN, tables are copied and recreated instead
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Now, reconnect with foreign keys enabled
	dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)
	db, err = gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = registerCallbacks(db)
	if err != nil {
		return err
	}

	DB = db
	return nil
}

func registerCallbacks(db *gorm.DB) error {
	if err := db.Callback().Query().After("*").Register("moneywise:after_query", queryCallback); err != nil {
		return err
	}

	if err := db.Callback().Query().After("*").Register("moneywise:after_query_general", generalCallback); err != nil {
		return err
	}

	if err := db.Callback().Create().After("*").Register("moneywise:after_create", createUpdateCallback); err != nil {
		return err
	}

	if err := db.Callback().Create().After("*").Register("moneywise:after_create_general", generalCallback); err != nil {
		return err
	}

	if err := db.Callback().Update().After("*").Register("moneywise:after_update", createUpdateCallback); err != nil {
		return err
	}

	if err := db.Callback().Update().After("*").Register("moneywise:after_update_general", generalCallback); err != nil {
		return err
	}

	return db.Callback().Delete().After("*").Register("moneywise:after_delete_general", generalCallback)
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, resourceName(db.Statement.Table))
	}
}

// resourceName converts a table name to the singular resource name,
// e.g. "category_rules" to "category rule".
func resourceName(table string) string {
	name := strings.ReplaceAll(table, "_", " ")
	name = regexp.MustCompile("ies$").ReplaceAllString(name, "y")
	return strings.TrimSuffix(name, "s")
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// Email addresses are unique across all users
	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: users.email") {
		db.Error = ErrUserEmailNotUnique
	}

	// Category names need to be unique per user
	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: categories.user_id, categories.name") {
		db.Error = ErrCategoryNameNotUnique
	}

	// A category can only be used once in a budget group
	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: budgets.group_id, budgets.category_id") {
		db.Error = ErrBudgetGroupCategoryNotUnique
	}

	// Each alert level only fires once per budget or group and period
	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: notifications.subject_id, notifications.level, notifications.period_start") {
		db.Error = ErrNotificationNotUnique
	}

	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: badges.user_id, badges.key") {
		db.Error = ErrBadgeAlreadyUnlocked
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(User{}, Session{}, Category{}, CategoryRule{}, Budget{}, Transaction{}, Notification{}, Badge{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
