package api

import (
	"errors"   // Sentinel error matching
	"net/http" // HTTP status codes
	"strconv"  // Query parsing

	"deckquest/internal/db"     // Static enemy template table
	"deckquest/internal/domain" // Importing domain models
	"deckquest/internal/game"   // Enemy scaling
	"deckquest/internal/repo"   // Repository layer

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// GetEnemyHandler picks a random seeded template and returns a copy scaled
// to the requested level. Public: encounters carry no player data.
func GetEnemyHandler(enemies *repo.Enemies) gin.HandlerFunc {
	return func(c *gin.Context) {
		level := 1 // Default encounter level
		if l := c.Query("level"); l != "" {
			if v, err := strconv.Atoi(l); err == nil && v > 0 {
				level = v
			}
		}
		template, err := enemies.Random()
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "No enemies available"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch enemy"})
			return
		}
		scaled := game.ScaleEnemy(*template, level, game.DefaultScaling)
		c.JSON(http.StatusOK, gin.H{"enemy": scaled})
	}
}

// CreateEnemyHandler inserts one enemy template. Admin only: templates are
// shared game content.
func CreateEnemyHandler(enemies *repo.Enemies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var enemy domain.Enemy // Bind JSON request to the template model
		if err := c.ShouldBindJSON(&enemy); err != nil || enemy.Name == "" || enemy.MaxHealth <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid enemy template"})
			return
		}
		enemy.ID = 0 // Never honor a client-supplied id
		if err := enemies.Create(&enemy); err != nil {
			logrus.WithFields(logrus.Fields{"name": enemy.Name, "error": err.Error()}).Error("Enemy create failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create enemy"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"enemy": enemy})
	}
}

// SeedEnemyHandler reseeds the enemy table from the static template set
func SeedEnemyHandler(enemies *repo.Enemies) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := enemies.Seed(db.EnemyTemplates)
		if err != nil {
			logrus.WithFields(logrus.Fields{"error": err.Error()}).Error("Enemy seed failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed enemies"})
			return
		}
		logrus.WithFields(logrus.Fields{"count": count}).Info("Enemy templates reseeded")
		c.JSON(http.StatusOK, gin.H{"count": count})
	}
}
