package postgres

import (
	"log"

	"github.com/sendbyop/booking-service/internal/config"
	"github.com/sendbyop/booking-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.BookingConfig) *gorm.DB {
	dsn := cfg.BookingDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.BookingModel{},
		&models.PayoutModel{},
		&models.BankInfoModel{},
		&models.PlatformSettingsModel{},
	)

	return db
}
