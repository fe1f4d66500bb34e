package api

import (
	"errors"   // Sentinel error matching
	"net/http" // HTTP status codes
	"regexp"   // Email validation
	"strings"  // String manipulation

	"deckquest/internal/middleware" // Session cookie name
	"deckquest/internal/repo"       // Repository layer
	"deckquest/internal/utils"      // JWT utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// Request struct for registration
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Request struct for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Request struct for wallet connect
type WalletRequest struct {
	Address string `json:"address" binding:"required"` // Wallet address must be provided
	Type    string `json:"type" binding:"required"`    // Wallet type must be provided
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// isValidEmail checks the email has a plausible shape
func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// isValidPassword checks if the password length is between 8 and 64 characters
func isValidPassword(password string) bool {
	return len(password) >= 8 && len(password) <= 64
}

// currentUserID pulls the authenticated user id the auth middleware stored
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// setSessionCookie writes the signed token into the session cookie
func setSessionCookie(c *gin.Context, token string, isProd bool) {
	c.SetSameSite(http.SameSiteLaxMode)                                                           // Lax same-site policy
	c.SetCookie(middleware.SessionCookie, token, int(utils.SessionTTL.Seconds()), "/", "", isProd, true) // HTTP-only, secure in production
}

// RegisterHandler creates a new user account
func RegisterHandler(users *repo.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		email := strings.ToLower(req.Email) // Lowercase email to ensure uniqueness
		if !isValidEmail(email) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
			return
		}
		if !isValidPassword(req.Password) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be 8-64 characters"})
			return
		}
		// Hash the password and create the user
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		user, err := users.Create(email, string(hash))
		if err != nil {
			if errors.Is(err, repo.ErrEmailTaken) {
				c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
				return
			}
			logrus.WithFields(logrus.Fields{"email": email, "error": err.Error()}).Error("Registration failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"user": gin.H{"id": user.ID, "email": user.Email}})
	}
}

// LoginHandler authenticates a user and sets the session cookie
func LoginHandler(users *repo.Users, jwtSecret string, isProd bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user, err := users.FindByEmail(strings.ToLower(req.Email))
		if err != nil {
			// Unknown email and wrong password answer identically
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		// Generate the session token
		token, err := utils.GenerateJWT(user.ID, user.Email, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		setSessionCookie(c, token, isProd) // Session travels in the cookie
		c.JSON(http.StatusOK, gin.H{"user": gin.H{"id": user.ID, "email": user.Email}})
	}
}

// LogoutHandler clears the session cookie. Tokens are not revocable server
// side; an already-issued token stays valid until it expires.
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true) // Expire the cookie immediately
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// WalletConnectHandler binds a wallet address to the authenticated user
func WalletConnectHandler(users *repo.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req WalletRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Address and type are required"})
			return
		}
		user, err := users.ConnectWallet(userID, req.Address, req.Type)
		if err != nil {
			if errors.Is(err, repo.ErrWalletTaken) {
				c.JSON(http.StatusConflict, gin.H{"error": "Wallet address already in use"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"address": req.Address, // Wallet address
				"error":   err.Error(), // Error message
			}).Error("Wallet connect failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to connect wallet"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id": userID,      // User ID
			"address": req.Address, // Wallet address
			"type":    req.Type,    // Wallet type
		}).Info("Wallet connected")
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

// WalletDisconnectHandler clears the authenticated user's wallet fields
func WalletDisconnectHandler(users *repo.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		user, err := users.DisconnectWallet(userID)
		if err != nil {
			logrus.WithFields(logrus.Fields{"user_id": userID, "error": err.Error()}).Error("Wallet disconnect failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to disconnect wallet"})
			return
		}
		logrus.WithFields(logrus.Fields{"user_id": userID}).Info("Wallet disconnected")
		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	}
}
