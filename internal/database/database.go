package database

import (
	"database/sql"
	"log"
	"net/url"
	"strings"

	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/lessence/internal/models"
	"github.com/example/lessence/internal/store"
)

var db *gorm.DB

// Connect initializes the database connection, runs migrations and
// seeds the catalogue when the perfumes table is empty.
func Connect(dsn string) *gorm.DB {
	if db != nil {
		return db
	}

	if err := ensureDatabase(dsn); err != nil {
		log.Fatalf("failed to ensure database: %v", err)
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := conn.AutoMigrate(&models.Perfume{}); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	if err := seedCatalog(conn); err != nil {
		log.Fatalf("catalogue seed failed: %v", err)
	}

	db = conn
	return db
}

// DB exposes the initialized gorm.DB instance.
func DB() *gorm.DB {
	return db
}

// LoadCatalog reads the full perfume collection in ID order. The
// result is snapshotted into the in-memory catalogue at startup and
// the table is never read again.
func LoadCatalog(conn *gorm.DB) ([]models.Perfume, error) {
	var perfumes []models.Perfume
	if err := conn.Order("id").Find(&perfumes).Error; err != nil {
		return nil, err
	}
	return perfumes, nil
}

func seedCatalog(conn *gorm.DB) error {
	var count int64
	if err := conn.Model(&models.Perfume{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := store.SignatureCollection()
	return conn.Create(&seed).Error
}

func ensureDatabase(dsn string) error {
	if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
		return nil
	}

	parsed, err := url.Parse(dsn)
	if err != nil {
		return err
	}

	dbName := strings.TrimPrefix(parsed.Path, "/")
	if dbName == "" {
		return nil
	}

	parsed.Path = "/postgres"
	masterDSN := parsed.String()

	sqlDB, err := sql.Open("postgres", masterDSN)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return err
	}

	var exists bool
	if err := sqlDB.QueryRow("SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", dbName).Scan(&exists); err != nil {
		return err
	}

	if exists {
		return nil
	}

	_, err = sqlDB.Exec("CREATE DATABASE " + pq.QuoteIdentifier(dbName))
	return err
}
