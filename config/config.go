package config

import (
	"fmt"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the salon database. Production deployments point DB_HOST at
// MySQL; without it we fall back to a local SQLite file so the app runs
// out of the box in development.
func InitDB() (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	if host := os.Getenv("DB_HOST"); host != "" {
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			host,
			portOrDefault(),
			os.Getenv("DB_NAME"),
		)
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	} else {
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "salon.db"
		}
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func portOrDefault() string {
	if port := os.Getenv("DB_PORT"); port != "" {
		return port
	}
	return "3306"
}
