package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	Env  string
	Data DataConfig
}

type DataConfig struct {
	Dir           string
	AccountsFile  string
	ProductsFile  string
	OrdersFile    string
	ShipmentsFile string
}

func Load() *Config {
	_ = godotenv.Load()

	dir := getEnv("DATA_DIR", ".")

	cfg := &Config{
		Env: getEnv("ENV", "development"),
		Data: DataConfig{
			Dir:           dir,
			AccountsFile:  filepath.Join(dir, getEnv("ACCOUNTS_FILE", "accounts.txt")),
			ProductsFile:  filepath.Join(dir, getEnv("PRODUCTS_FILE", "products.txt")),
			OrdersFile:    filepath.Join(dir, getEnv("ORDERS_FILE", "orders.txt")),
			ShipmentsFile: filepath.Join(dir, getEnv("SHIPMENTS_FILE", "shipments.txt")),
		},
	}

	log.Printf("Config loaded: env=%s, data_dir=%s", cfg.Env, cfg.Data.Dir)
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
