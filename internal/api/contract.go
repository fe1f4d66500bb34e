package api

import (
	"context"  // Timeout around confirmation waits
	"net/http" // HTTP status codes
	"time"     // Timeout duration

	"deckquest/internal/contract" // Contract bridge

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Request struct for contract actions
type ContractRequest struct {
	Action        string `json:"action" binding:"required"` // mint, invest or burn
	PlayerAddress string `json:"playerAddress"`             // Recipient address (mint)
	TokenID       uint64 `json:"tokenId"`                   // Token id (invest, burn)
	URI           string `json:"uri"`                       // Metadata URI (mint)
	Tier          uint8  `json:"tier"`                      // Item tier (mint)
}

// ContractHandler routes mint/invest/burn actions through the bridge. Each
// call waits for on-chain confirmation under waitTimeout; without the cap a
// stuck transaction would tie the handler up indefinitely.
func ContractHandler(bridge *contract.Bridge, waitTimeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ContractRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), waitTimeout)
		defer cancel()
		switch req.Action {
		case "mint":
			if req.PlayerAddress == "" || req.URI == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "playerAddress and uri are required"})
				return
			}
			tokenID, err := bridge.Mint(ctx, req.PlayerAddress, req.URI, req.Tier)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"action":  "mint",            // Contract action
					"address": req.PlayerAddress, // Recipient address
					"error":   err.Error(),       // Chain-side reason
				}).Error("Contract call failed")
				// The chain rejection reason passes through verbatim
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"tokenId": tokenID})
		case "invest":
			if err := bridge.Invest(ctx, req.TokenID); err != nil {
				logrus.WithFields(logrus.Fields{"action": "invest", "token_id": req.TokenID, "error": err.Error()}).Error("Contract call failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true})
		case "burn":
			if err := bridge.Burn(ctx, req.TokenID); err != nil {
				logrus.WithFields(logrus.Fields{"action": "burn", "token_id": req.TokenID, "error": err.Error()}).Error("Contract call failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown action"})
		}
	}
}
