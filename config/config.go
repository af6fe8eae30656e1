package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config Application Configuration
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Log     LogConfig     `mapstructure:"log"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Pricing PricingConfig `mapstructure:"pricing"`
	Orders  OrdersConfig  `mapstructure:"orders"`
}

// AppConfig Application Configuration
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env"` // development, staging, production
}

// LogConfig Log Configuration
type LogConfig struct {
	Level    string `mapstructure:"level"`  // debug, info, warn, error
	Format   string `mapstructure:"format"` // json, console
	Output   string `mapstructure:"output"` // stdout, stderr, file
	FilePath string `mapstructure:"file_path"`
}

// CatalogConfig Catalog Configuration
type CatalogConfig struct {
	Currency string `mapstructure:"currency"`  // ISO code of the single price unit
	SeedDemo bool   `mapstructure:"seed_demo"` // start with the demo books and periodicals
}

// PricingConfig Pricing Configuration
type PricingConfig struct {
	// SubscriptionQuantity ignore: subscriptions are priced per subscriber;
	// per_copy: subscription total is multiplied by the ordered quantity
	SubscriptionQuantity string `mapstructure:"subscription_quantity"`
}

// OrdersConfig Order Configuration
type OrdersConfig struct {
	FirstID int64 `mapstructure:"first_id"` // id of the first order placed in this process
}

// IsDevelopment Whether it's development environment
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction Whether it's production environment
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// Load Load Configuration
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// Configuration file settings
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Read environment variables, e.g. BOOKSHOP_PRICING_SUBSCRIPTION_QUANTITY
	v.SetEnvPrefix("BOOKSHOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read configuration file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Use default values when config file doesn't exist
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Catalog.Currency) == "" {
		return fmt.Errorf("catalog.currency must not be empty")
	}
	if c.Orders.FirstID < 1 {
		return fmt.Errorf("orders.first_id must be at least 1, got %d", c.Orders.FirstID)
	}
	return nil
}

// setDefaults Set default configuration
func setDefaults(v *viper.Viper) {
	// App
	v.SetDefault("app.name", "bookshop")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.env", "development")

	// Log
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stderr")
	v.SetDefault("log.file_path", "logs/bookshop.log")

	// Catalog
	v.SetDefault("catalog.currency", "EUR")
	v.SetDefault("catalog.seed_demo", true)

	// Pricing
	v.SetDefault("pricing.subscription_quantity", "ignore")

	// Orders
	v.SetDefault("orders.first_id", 1)
}
