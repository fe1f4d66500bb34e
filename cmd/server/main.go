package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"deckquest/internal/api"        // Custom package for API handlers
	"deckquest/internal/config"     // Custom package for configuration
	"deckquest/internal/contract"   // Contract bridge
	"deckquest/internal/middleware" // Custom package for middleware
	"deckquest/internal/repo"       // Repository layer

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Setup Data Source Name (DSN) and connect to the database
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Setup the item contract bridge
	bridge, err := contract.NewBridge(cfg.ContractRPCURL, cfg.ContractAddress, cfg.ContractPrivateKey, cfg.ContractChainID)
	if err != nil {
		logrus.Fatalf("failed to set up contract bridge: %v", err)
	}

	// Repositories own all owner-scoped data access
	users := repo.NewUsers(db)
	characters := repo.NewCharacters(db)
	battles := repo.NewBattles(db)
	enemies := repo.NewEnemies(db)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Public auth routes
	r.POST("/api/auth/register", api.RegisterHandler(users))                          // Registration endpoint
	r.POST("/api/auth/login", api.LoginHandler(users, cfg.JWTSecret, cfg.IsProd))       // Login endpoint
	r.POST("/api/auth/email/login", api.LoginHandler(users, cfg.JWTSecret, cfg.IsProd)) // Kept alias of the login endpoint
	r.POST("/api/auth/logout", api.LogoutHandler())                                   // Logout endpoint

	// Public enemy lookup (encounters carry no player data)
	r.GET("/api/enemy/get", api.GetEnemyHandler(enemies))

	// Player routes, gated once by the auth middleware
	authed := r.Group("/api")
	authed.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	authed.POST("/auth/wallet", api.WalletConnectHandler(users))               // Wallet connect endpoint
	authed.POST("/auth/wallet/disconnect", api.WalletDisconnectHandler(users)) // Wallet disconnect endpoint
	authed.GET("/character/get", api.GetCharactersHandler(characters, redisClient))
	authed.POST("/card/remove", api.RemoveCardHandler(characters, redisClient))
	authed.POST("/character/block", api.BlockCharacterHandler(users))
	authed.POST("/battle/save", api.SaveBattleHandler(battles, users))
	authed.GET("/battle/get", api.GetBattleHandler(battles))
	authed.POST("/contract", api.ContractHandler(bridge, cfg.ContractWaitTimeout))

	// Enemy template management is admin only: templates are shared content
	enemyAdmin := r.Group("/api/enemy")
	enemyAdmin.Use(middleware.AuthMiddleware(cfg.JWTSecret), middleware.AdminOnlyMiddleware(db))
	enemyAdmin.POST("/create", api.CreateEnemyHandler(enemies))
	enemyAdmin.POST("/seed", api.SeedEnemyHandler(enemies))

	// Admin routes (protected, admin only)
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.AuthMiddleware(cfg.JWTSecret), middleware.AdminOnlyMiddleware(db))
	adminGroup.GET("/users", api.ListUsersHandler(users, redisClient))               // List users endpoint
	adminGroup.POST("/character/unblock", api.UnblockHandler(users, redisClient)) // Lift a battle block

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
