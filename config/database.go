package config

import (
	"localpro-backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the Postgres connection. TranslateError is on so unique
// index violations surface as gorm.ErrDuplicatedKey instead of driver errors.
func ConnectDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Customer{},
		&models.Job{},
		&models.Provider{},
		&models.FinanceTransaction{},
		&models.NotificationLog{},
	)
}
