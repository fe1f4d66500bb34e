package main

import (
	"deckquest/internal/config" // Custom import path (Config)
	"deckquest/internal/db"     // Custom import path (Database)
	"deckquest/internal/repo"   // Repository layer

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/gorm"               // GORM ORM library
)

// Main entry point for loading the static enemy template table
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Database Source Name (DSN) for MySQL connection
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	conn, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	count, err := repo.NewEnemies(conn).Seed(db.EnemyTemplates)
	if err != nil {
		logrus.Fatalf("seeding failed: %v", err)
	}
	logrus.Infof("Seeded %d enemy templates.", count)
}
