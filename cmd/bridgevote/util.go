package bridgevote

import (
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"

	"github.com/openbridge/bridgevote"
)

// loadConfigWithEnv loads the bridge config file and applies overrides from a
// .env file when one is present. BRIDGE_ADMIN_ADDRESS replaces the configured
// administrator, which keeps operator keys out of checked-in configs.
func loadConfigWithEnv(path string) (*bridgevote.Config, error) {
	// A missing .env is fine; overrides are optional.
	_ = godotenv.Load(".env")

	cfg, err := bridgevote.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	if admin := os.Getenv("BRIDGE_ADMIN_ADDRESS"); admin != "" {
		cfg.Admin = common.HexToAddress(admin)
	}

	return cfg, nil
}
