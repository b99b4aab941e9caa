package postgres

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/andrewshostak/team-lookup-service/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func EstablishDatabaseConnection(cfg config.PG) *gorm.DB {
	db, err := Open(fmt.Sprintf(
		"host=%s user=%s password=%s port=%s database=%s sslmode=disable",
		cfg.Host,
		cfg.User,
		cfg.Password,
		cfg.Port,
		cfg.Database,
	))
	if err != nil {
		panic(err)
	}

	return db
}

func Open(dsn string) (*gorm.DB, error) {
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: customLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	return db, nil
}
