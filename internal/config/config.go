package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
)

var errInvalidContractAddress error = errors.New("invalid marketplace contract address")

// App holds the service configuration read from the environment.
type App struct {
	Port            string `env:"API_PORT,required"`
	NodeURL         string `env:"ETH_NODE_URL,required"`
	DBConnectionURL string `env:"DB_CONNECTION_URL,required"`
	JWTSecret       string `env:"JWT_SECRET,required"`
	ContractAddress string `env:"MARKETPLACE_CONTRACT_ADDRESS,required"`

	ChainID      int64    `env:"CHAIN_ID" envDefault:"84532"`
	NetworkName  string   `env:"NETWORK_NAME" envDefault:"Base Sepolia"`
	ExplorerURL  string   `env:"EXPLORER_URL" envDefault:"https://sepolia.basescan.org"`
	LogLevel     string   `env:"LOG_LEVEL" envDefault:"info"`
	AllowOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	SecureCookie bool     `env:"SECURE_COOKIES" envDefault:"false"`

	ReceiptPollInterval time.Duration `env:"RECEIPT_POLL_INTERVAL" envDefault:"5s"`
	SessionTTL          time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	ChallengeTTL        time.Duration `env:"CHALLENGE_TTL" envDefault:"5m"`
}

// NewApp loads optional .env files and parses the environment into App.
func NewApp(envFiles ...string) (App, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	// missing .env files are fine, the environment may already be populated
	_ = godotenv.Load(envFiles...)

	var app App
	if err := env.Parse(&app); err != nil {
		return App{}, fmt.Errorf("parse env: %w", err)
	}

	if !common.IsHexAddress(app.ContractAddress) {
		return App{}, fmt.Errorf("%w: %q", errInvalidContractAddress, app.ContractAddress)
	}

	return app, nil
}
