package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultTokenAddress    = "0x912CE59144191C1204E64559FE8253a0e49E6548"
	DefaultExplorerBaseUrl = "https://eth.blockscout.com"
	DefaultIdentityBaseUrl = "https://zpi.zerion.io"
	DefaultWalletBaseUrl   = "https://app.zerion.io"
	DefaultPort            = 3000
)

var (
	TokenAddress          string
	ExplorerBaseUrl       string
	IdentityBaseUrl       string
	IdentityClientType    string
	IdentityClientVersion string
	WalletBaseUrl         string
	Port                  int
	Production            bool
)

func InitEnv() error {
	Production = os.Getenv("APP_ENV") == "production"

	if err := godotenv.Load(); err != nil && !Production {
		log.Print("No .env file found, using defaults")
	}

	TokenAddress = getEnv("TOKEN_ADDRESS", DefaultTokenAddress)
	ExplorerBaseUrl = getEnv("EXPLORER_BASE_URL", DefaultExplorerBaseUrl)
	IdentityBaseUrl = getEnv("IDENTITY_BASE_URL", DefaultIdentityBaseUrl)
	IdentityClientType = getEnv("IDENTITY_CLIENT_TYPE", "web")
	IdentityClientVersion = getEnv("IDENTITY_CLIENT_VERSION", "1.0.0")
	WalletBaseUrl = getEnv("WALLET_BASE_URL", DefaultWalletBaseUrl)

	Port = DefaultPort
	if raw := os.Getenv("PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		Port = port
	}

	return nil
}

func getEnv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
