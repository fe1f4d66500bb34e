package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // For timeout durations

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort             string        // Application port
	DBUser              string        // Database user
	DBPassword          string        // Database password
	DBHost              string        // Database host
	DBPort              string        // Database port
	DBName              string        // Database name
	JWTSecret           string        // JWT secret key
	RedisAddr           string        // Redis server address
	RedisPass           string        // Redis password
	RedisDB             int           // Redis database number
	ContractRPCURL      string        // JSON-RPC endpoint of the chain node
	ContractAddress     string        // Deployed item contract address
	ContractPrivateKey  string        // Hex private key used to sign transactions
	ContractChainID     int64         // Chain id for transaction signing
	ContractWaitTimeout time.Duration // How long to wait for on-chain confirmation
	IsProd              bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	chainID, _ := strconv.ParseInt(os.Getenv("CONTRACT_CHAIN_ID"), 10, 64)
	waitSeconds, _ := strconv.Atoi(os.Getenv("CONTRACT_CONFIRM_TIMEOUT_SECONDS"))
	if waitSeconds <= 0 {
		waitSeconds = 90 // Confirmation latency is unbounded, so the wait is always capped
	}
	return &Config{
		AppPort:             os.Getenv("APP_PORT"),              // Application port
		DBUser:              os.Getenv("DB_USER"),               // Database user
		DBPassword:          os.Getenv("DB_PASSWORD"),           // Database password
		DBHost:              os.Getenv("DB_HOST"),               // Database host
		DBPort:              os.Getenv("DB_PORT"),               // Database port
		DBName:              os.Getenv("DB_NAME"),               // Database name
		JWTSecret:           os.Getenv("JWT_SECRET"),            // JWT secret key
		RedisAddr:           os.Getenv("REDIS_ADDR"),            // Redis server address
		RedisPass:           os.Getenv("REDIS_PASS"),            // Redis password
		RedisDB:             redisDB,                            // Redis database number
		ContractRPCURL:      os.Getenv("CONTRACT_RPC_URL"),      // Chain node endpoint
		ContractAddress:     os.Getenv("CONTRACT_ADDRESS"),      // Item contract address
		ContractPrivateKey:  os.Getenv("CONTRACT_PRIVATE_KEY"),  // Server-held signing key
		ContractChainID:     chainID,                            // Chain id
		ContractWaitTimeout: time.Duration(waitSeconds) * time.Second,
		IsProd:              os.Getenv("IS_PROD") == "true", // Is production environment
	}
}
