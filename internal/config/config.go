package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server     ServerConfig
	Redis      RedisConfig
	Blockchain BlockchainConfig
	Contracts  ContractConfig
	Tokens     TokenConfig
	Freshness  FreshnessConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port      string
	Env       string
	PublicURL string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	PASSWORD string
}

// BlockchainConfig holds chain connection settings
type BlockchainConfig struct {
	RPCURL             string
	ChainID            int64
	OperatorPrivateKey string
}

// ContractConfig holds the deployed contract addresses
type ContractConfig struct {
	PaymentGateway   string
	MerchantRegistry string
	PriceOracle      string
}

// TokenConfig holds the accepted settlement token identifiers.
// ETH is the native-asset sentinel, not an ERC20 contract.
type TokenConfig struct {
	ETH  string
	BTC  string
	USDC string
}

// FreshnessConfig holds mirror-store staleness settings
type FreshnessConfig struct {
	StaleAfter      time.Duration
	RefreshInterval time.Duration
	SessionTTL      time.Duration
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:      getEnv("SERVER_PORT", "8080"),
			Env:       getEnv("SERVER_ENV", "development"),
			PublicURL: getEnv("PUBLIC_URL", "http://localhost:8080"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			PASSWORD: getEnv("REDIS_PASSWORD", ""),
		},
		Blockchain: BlockchainConfig{
			RPCURL:             getEnv("SEPOLIA_RPC_URL", "https://rpc.sepolia.org"),
			ChainID:            getEnvAsInt64("CHAIN_ID", 11155111),
			OperatorPrivateKey: getEnv("OPERATOR_PRIVATE_KEY", ""),
		},
		Contracts: ContractConfig{
			PaymentGateway:   getEnv("PAYMENT_GATEWAY_ADDRESS", "0xCD30af277c308C12E6164EF5720dAFC0F7385AD5"),
			MerchantRegistry: getEnv("MERCHANT_REGISTRY_ADDRESS", "0x3FA38C1B92dE06c744784B18DEf8C3088E1C96f1"),
			PriceOracle:      getEnv("PRICE_ORACLE_ADDRESS", "0x8E0518C9252227dCAa47492E1691DF83bA436a95"),
		},
		Tokens: TokenConfig{
			ETH:  getEnv("TOKEN_ETH_ADDRESS", "0x1111111111111111111111111111111111111111"),
			BTC:  getEnv("TOKEN_BTC_ADDRESS", "0x0000000000000000000000000000000000000001"),
			USDC: getEnv("TOKEN_USDC_ADDRESS", "0x0000000000000000000000000000000000000002"),
		},
		Freshness: FreshnessConfig{
			StaleAfter:      getEnvAsDuration("MIRROR_STALE_AFTER", 5*time.Second),
			RefreshInterval: getEnvAsDuration("MIRROR_REFRESH_INTERVAL", 5*time.Second),
			SessionTTL:      getEnvAsDuration("PREFERENCES_SESSION_TTL", 24*time.Hour),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
