package config

import (
	"os"

	"restaurant-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds the environment-driven settings for the server.
type Config struct {
	Port      string
	DBPath    string
	JWTSecret []byte
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads settings from the environment with fallbacks.
func Load() Config {
	return Config{
		Port:      getEnv("PORT", "8080"),
		DBPath:    getEnv("DB_PATH", "restaurant.db"),
		JWTSecret: []byte(getEnv("JWT_SECRET", "restaurant_super_secret_2025")),
	}
}

// InitDB opens the database and migrates the schema. The returned handle is
// passed explicitly into each service; there is no package-level instance.
func InitDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
