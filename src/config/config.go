package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"market-indexes/src/models"
	"market-indexes/src/utils"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Cache providers accepted by cache.provider
var cacheProviders = []string{"memory", "redis", "sqlite", "postgres"}

// -----------------------------------------------------------------------------

// Config wraps models.MConfig and provides business logic methods
type Config struct {
	*models.MConfig
}

// -----------------------------------------------------------------------------

// NewConfig loads the YAML file at configPath (skipped when empty), fills in
// defaults, applies environment overrides and validates the result. A .env
// file in the working directory is loaded first when present.
func NewConfig(configPath string) (*Config, error) {
	// 1. Optional .env, never overriding variables already set
	_ = godotenv.Load()

	var modelConfig models.MConfig

	// 2. Read and unmarshal the YAML file
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file '%s': %w", configPath, err)
		}
		if err := yaml.Unmarshal(data, &modelConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config from YAML: %w", err)
		}
	}

	config := &Config{MConfig: &modelConfig}
	config.ApplyDefaults()

	// 3. Environment wins over the file
	if err := config.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}

	// 4. Validate the loaded configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// -----------------------------------------------------------------------------

// ApplyDefaults fills every unset field
func (c *Config) ApplyDefaults() {
	setString(&c.Name, utils.AppName)
	setString(&c.Host, "0.0.0.0")
	setInt(&c.Port, 8000)
	setString(&c.LogLevel, "INFO")
	setString(&c.GrpcHost, c.Host)
	setInt(&c.GrpcPort, 50051)

	// Cache
	setString(&c.Cache.Provider, "memory")
	setString(&c.Cache.DBPath, "market-indexes.db")
	setInt(&c.Cache.CleanupIntervalSeconds, 600)
	setTTL(&c.Cache.StockQuote, 300, 3600)
	setTTL(&c.Cache.StockIndexes, 180, 1800)
	setTTL(&c.Cache.ExchangeRates, 420, 3600)

	// Network
	setInt(&c.Network.RequestTimeout, 30)

	// Market
	setString(&c.Market.MIC, utils.DefaultMarketMIC)
	setString(&c.Market.Timezone, utils.DefaultMarketTimezone)
	setString(&c.Market.SessionOpen, utils.DefaultSessionOpen)
	setString(&c.Market.SessionClose, utils.DefaultSessionClose)
	setString(&c.Market.LunchStart, utils.DefaultLunchStart)
	setString(&c.Market.LunchEnd, utils.DefaultLunchEnd)

	// Upstreams
	vs := &c.Upstream.VietStock
	setString(&vs.BaseURL, "https://finance.vietstock.vn")
	setString(&vs.TradingPath, "/company/tradinginfo")
	setString(&vs.ChartBaseURL, "https://cafef4.vcmedia.vn/charts")
	setString(&vs.SourceLabel, "VietStock.vn")
	setInt(&vs.BootstrapTimeout, 90)

	setString(&c.Upstream.Vietcombank.RatesURL, "https://www.vietcombank.com.vn/ExchangeRates/ExrateXML.aspx")

	setString(&c.Upstream.CafeF.IndexesURL, "http://banggia.cafef.vn/stockhandler.ashx?index=true")
	setString(&c.Upstream.CafeF.Referer, "http://cafef.vn/")
}

// -----------------------------------------------------------------------------

// ApplyEnv overrides fields from the environment. getenv is os.Getenv outside tests.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Port = port
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getenv("CACHE_PROVIDER"); v != "" {
		c.Cache.Provider = v
	}
	if v := getenv("REDIS_URL"); v != "" {
		c.Cache.RedisURL = v
	}
	if v := getenv("CACHE_DB_PATH"); v != "" {
		c.Cache.DBPath = v
	}
	if v := getenv("CACHE_DB_DSN"); v != "" {
		c.Cache.DBConnectionString = v
	}
	return nil
}

// -----------------------------------------------------------------------------

// Validate performs basic configuration validation
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("application name cannot be empty")
	}

	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARNING", "WARN", "ERROR":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	// Servers
	if c.Host == "" {
		return fmt.Errorf("server host cannot be empty")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid server port number: %d", c.Port)
	}
	if c.GrpcPort < 0 || c.GrpcPort > 65535 {
		return fmt.Errorf("invalid gRPC port number: %d", c.GrpcPort)
	}

	// Cache
	if err := c.validateCache(); err != nil {
		return err
	}

	// Network
	if c.Network.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be greater than 0")
	}

	// Market
	if _, err := time.LoadLocation(c.Market.Timezone); err != nil {
		return fmt.Errorf("invalid market timezone %q: %w", c.Market.Timezone, err)
	}
	for _, clock := range []string{c.Market.SessionOpen, c.Market.SessionClose, c.Market.LunchStart, c.Market.LunchEnd} {
		if _, err := time.Parse("15:04", clock); err != nil {
			return fmt.Errorf("invalid session time %q (want HH:MM)", clock)
		}
	}

	// Upstreams
	if c.Upstream.VietStock.BaseURL == "" {
		return fmt.Errorf("vietstock base url cannot be empty")
	}
	if c.Upstream.Vietcombank.RatesURL == "" {
		return fmt.Errorf("vietcombank rates url cannot be empty")
	}
	if c.Upstream.CafeF.IndexesURL == "" {
		return fmt.Errorf("cafef indexes url cannot be empty")
	}

	return nil
}

// -----------------------------------------------------------------------------

func (c *Config) validateCache() error {
	provider := strings.ToLower(c.Cache.Provider)
	known := false
	for _, p := range cacheProviders {
		if p == provider {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown cache provider %q (want one of %s)", c.Cache.Provider, strings.Join(cacheProviders, ", "))
	}
	c.Cache.Provider = provider

	switch provider {
	case "redis":
		if c.Cache.RedisURL == "" {
			return fmt.Errorf("redis url cannot be empty for the redis cache")
		}
	case "sqlite":
		if c.Cache.DBPath == "" {
			return fmt.Errorf("database path cannot be empty for sqlite")
		}
	case "postgres":
		if c.Cache.DBConnectionString == "" {
			return fmt.Errorf("database connection string cannot be empty for postgres")
		}
	}

	ttls := map[string]models.MTTLConfig{
		"stock_quote":    c.Cache.StockQuote,
		"stock_indexes":  c.Cache.StockIndexes,
		"exchange_rates": c.Cache.ExchangeRates,
	}
	for name, ttl := range ttls {
		if ttl.MarketHoursSeconds <= 0 || ttl.OffHoursSeconds <= 0 {
			return fmt.Errorf("cache ttl %s must be greater than 0", name)
		}
	}
	return nil
}

// -----------------------------------------------------------------------------

// Save persists the current configuration to the specified YAML file path
func (c *Config) Save(configPath string) error {
	// 1. Marshal the struct to YAML
	data, err := yaml.Marshal(c.MConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// 2. Write to file (0644 permissions)
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config to file '%s': %w", configPath, err)
	}

	return nil
}

// -----------------------------------------------------------------------------

func setString(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

func setInt(field *int, value int) {
	if *field == 0 {
		*field = value
	}
}

func setTTL(ttl *models.MTTLConfig, marketHours, offHours int) {
	setInt(&ttl.MarketHoursSeconds, marketHours)
	setInt(&ttl.OffHoursSeconds, offHours)
}
