package api

import (
	"errors"   // Sentinel error matching
	"net/http" // HTTP status codes
	"strconv"  // Query parsing

	"deckquest/internal/repo" // Repository layer

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Request struct for battle saves
type SaveBattleRequest struct {
	CharacterID uint   `json:"characterId" binding:"required"` // Character fighting the battle
	State       string `json:"state" binding:"required"`       // Serialized battle state blob
	EnemyID     uint   `json:"enemyId" binding:"required"`     // Enemy template of the encounter
	Turn        int    `json:"turn"`                           // Current turn counter
	Deck        []uint `json:"deck"`                           // Card ids left in the draw pile
	Hand        []uint `json:"hand"`                           // Card ids in hand
	Discard     []uint `json:"discard"`                        // Card ids in the discard pile
}

// SaveBattleHandler upserts the caller's active battle for a character.
// Whole-row, last-write-wins; a repeated identical save is a no-op.
func SaveBattleHandler(battles *repo.Battles, users *repo.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req SaveBattleRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user, err := users.FindByID(userID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Blocked users may keep playing but cannot persist battles
		if user.BattleBlocked {
			c.JSON(http.StatusForbidden, gin.H{"error": "Battles are blocked for this account"})
			return
		}
		battle, err := battles.SaveForOwner(userID, req.CharacterID, req.State, req.EnemyID, req.Turn, req.Deck, req.Hand, req.Discard)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Character not found"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"user_id":      userID,          // User ID
				"character_id": req.CharacterID, // Character ID
				"turn":         req.Turn,        // Turn counter
				"error":        err.Error(),     // Error message
			}).Error("Battle save failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save battle"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"battle": battle})
	}
}

// GetBattleHandler loads the caller's active battle for a character
func GetBattleHandler(battles *repo.Battles) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		characterID, err := strconv.Atoi(c.Query("characterId"))
		if err != nil || characterID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "characterId is required"})
			return
		}
		battle, err := battles.ActiveForOwner(userID, uint(characterID))
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "No active battle"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load battle"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"battle": battle})
	}
}
