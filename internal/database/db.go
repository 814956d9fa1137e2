package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/justsurfingit/hireable/internal/models"
)

// Connect opens postgres and migrates every table the board uses.
func Connect(dsn string, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	log.Info("database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}
	log.Info("database migrations applied")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Job{},
		&models.Company{},
		&models.JobPosting{},
		&models.ContactMessage{},
		&models.JobEvent{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
