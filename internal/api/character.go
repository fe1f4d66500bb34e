package api

import (
	"context"  // Context for Redis operations
	"errors"   // Sentinel error matching
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Cache TTL

	"deckquest/internal/domain" // Importing domain models
	"deckquest/internal/repo"   // Repository layer
	"deckquest/internal/utils"  // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// characterCacheKey is the per-user cache key for the character list
func characterCacheKey(userID uint) string {
	return "characters:user:" + strconv.Itoa(int(userID))
}

// Request struct for card removal
type RemoveCardRequest struct {
	CharacterID uint `json:"characterId" binding:"required"` // Character owning the deck
	CardID      uint `json:"cardId" binding:"required"`      // Card to remove
}

// GetCharactersHandler returns the caller's characters with deck and
// equipment attached, newest first. The list is cached per user for 60s.
func GetCharactersHandler(characters *repo.Characters, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		ctx := context.Background() // Use background context for Redis
		var cached []domain.Character
		// If cached data found, return it
		found, err := utils.GetCache(ctx, rdb, characterCacheKey(userID), &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"characters": cached, "cached": true})
			return
		}
		list, err := characters.ListByOwner(userID)
		if err != nil {
			logrus.WithFields(logrus.Fields{"user_id": userID, "error": err.Error()}).Error("Failed to list characters")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch characters"})
			return
		}
		_ = utils.SetCache(ctx, rdb, characterCacheKey(userID), list, 60*time.Second) // Cache for 60 seconds
		c.JSON(http.StatusOK, gin.H{"characters": list, "cached": false})
	}
}

// RemoveCardHandler deletes a card from one of the caller's decks. Removing
// a card that is already gone yields 404, never a server error.
func RemoveCardHandler(characters *repo.Characters, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req RemoveCardRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "characterId and cardId are required"})
			return
		}
		character, err := characters.RemoveCard(userID, req.CharacterID, req.CardID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				// Covers both a foreign character and an already-removed card
				c.JSON(http.StatusNotFound, gin.H{"error": "Character or card not found"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"user_id":      userID,          // User ID
				"character_id": req.CharacterID, // Character ID
				"card_id":      req.CardID,      // Card ID
				"error":        err.Error(),     // Error message
			}).Error("Card removal failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove card"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":      userID,          // User ID
			"character_id": req.CharacterID, // Character ID
			"card_id":      req.CardID,      // Card ID
		}).Info("Card removed")
		// Invalidate the cached character list for this user
		_ = utils.DeleteCache(context.Background(), rdb, characterCacheKey(userID))
		c.JSON(http.StatusOK, gin.H{"character": character})
	}
}

// BlockCharacterHandler flags the caller as blocked from battles. There is
// no self-service unblock; reversal is an admin action.
func BlockCharacterHandler(users *repo.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if err := users.SetBattleBlocked(userID, true); err != nil {
			logrus.WithFields(logrus.Fields{"user_id": userID, "error": err.Error()}).Error("Battle block failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to block battles"})
			return
		}
		logrus.WithFields(logrus.Fields{"user_id": userID}).Info("User blocked from battles")
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
