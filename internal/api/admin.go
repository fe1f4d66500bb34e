package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Cache TTL

	"deckquest/internal/repo"  // Repository layer
	"deckquest/internal/utils" // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// UserAdminResponse represents the user data returned to admin
type UserAdminResponse struct {
	ID            uint    `json:"id"`             // User ID
	Email         string  `json:"email"`          // Login email
	Role          string  `json:"role"`           // User role
	WalletAddress *string `json:"wallet_address"` // Connected wallet, if any
	WalletType    string  `json:"wallet_type"`    // Wallet type
	BattleBlocked bool    `json:"battle_blocked"` // Battle-block flag
}

// Request struct for admin unblock
type UnblockRequest struct {
	UserID uint `json:"userId" binding:"required"` // User to unblock
}

// ListUsersHandler returns all users with wallet and block state, paginated
// and cached for 60s
func ListUsersHandler(users *repo.Users, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Use background context for Redis
		// Create a cache key based on pagination parameters
		cacheKey := "admin:users:page=" + c.DefaultQuery("page", "1") + ":size=" + c.DefaultQuery("page_size", "20")
		var cached struct {
			Users      []UserAdminResponse `json:"users"`       // List of users
			Page       int                 `json:"page"`        // Current page
			PageSize   int                 `json:"page_size"`   // Page size
			Total      int64               `json:"total"`       // Total number of users
			TotalPages int                 `json:"total_pages"` // Total pages
		}
		// If cached data found, return it
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{
				"users":       cached.Users,      // List of users
				"page":        cached.Page,       // Current page
				"page_size":   cached.PageSize,   // Page size
				"total":       cached.Total,      // Total number of users
				"total_pages": cached.TotalPages, // Total pages
				"cached":      true,              // Indicate response is from cache
			})
			return
		}
		page := 1      // Default page number
		pageSize := 20 // Default page size
		if p := c.Query("page"); p != "" {
			if v, err := strconv.Atoi(p); err == nil && v > 0 {
				page = v // Set page if valid
			}
		}
		// Check and set page size within limits
		if ps := c.Query("page_size"); ps != "" {
			if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
				pageSize = v // Set page size
			}
		}
		list, total, err := users.List(page, pageSize)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		totalPages := (int(total) + pageSize - 1) / pageSize // Calculate total pages
		resp := make([]UserAdminResponse, len(list))
		// Map users to response format
		for i, u := range list {
			resp[i] = UserAdminResponse{
				ID:            u.ID,            // User ID
				Email:         u.Email,         // Login email
				Role:          u.Role,          // User role
				WalletAddress: u.WalletAddress, // Connected wallet
				WalletType:    u.WalletType,    // Wallet type
				BattleBlocked: u.BattleBlocked, // Battle-block flag
			}
		}
		respData := gin.H{
			"users":       resp,       // List of users
			"page":        page,       // Current page
			"page_size":   pageSize,   // Page size
			"total":       total,      // Total number of users
			"total_pages": totalPages, // Total pages
			"cached":      false,      // Indicate response is not from cache
		}
		// Cache the response for future requests
		_ = utils.SetCache(ctx, rdb, cacheKey, respData, 60*time.Second)
		c.JSON(http.StatusOK, respData)
	}
}

// UnblockHandler lifts the battle block on a user. The player surface only
// exposes blocking; reversal is deliberately an admin action.
func UnblockHandler(users *repo.Users, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UnblockRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
			return
		}
		if err := users.SetBattleBlocked(req.UserID, false); err != nil {
			if err == repo.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			logrus.WithFields(logrus.Fields{"user_id": req.UserID, "error": err.Error()}).Error("Unblock failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unblock user"})
			return
		}
		logrus.WithFields(logrus.Fields{"user_id": req.UserID}).Info("User unblocked from battles")
		// Drop cached admin listings so the flag change is visible immediately
		_ = utils.DeleteCacheByPrefix(context.Background(), rdb, "admin:users:")
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
