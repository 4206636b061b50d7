package storage

import (
	"devcollab/internal/config"
	"devcollab/internal/util/logger"
	"os"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var (
	db   *gorm.DB
	once sync.Once
)

// GetDb returns the shared connection to the hosted Postgres database.
func GetDb() *gorm.DB {
	once.Do(loadDbConnection)
	return db
}

func loadDbConnection() {
	log := logger.GetLogger()
	env := config.GetEnv()

	logLevel := gorm_logger.Warn
	if env.IsTesting {
		logLevel = gorm_logger.Silent
	}

	connection, err := gorm.Open(postgres.Open(env.DatabaseDsn), &gorm.Config{
		Logger: gorm_logger.Default.LogMode(logLevel),
	})
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	sqlDB, err := connection.DB()
	if err != nil {
		log.Error("Failed to get database handle", "error", err)
		os.Exit(1)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	db = connection
	log.Info("Database connection established")
}
