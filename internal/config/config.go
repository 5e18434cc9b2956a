package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full server configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Database DatabaseConfig `mapstructure:"database"`
	Game     GameConfig     `mapstructure:"game"`
	Wallet   WalletConfig   `mapstructure:"wallet"`
}

// ServerConfig configures the WebSocket gateway.
type ServerConfig struct {
	Address      string        `mapstructure:"address"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DatabaseConfig configures the optional PostgreSQL backing store.
// When URL is empty the server runs with in-memory stores only.
type DatabaseConfig struct {
	URL            string        `mapstructure:"url"`
	MaxConns       int32         `mapstructure:"max_conns"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	CatalogFromDB  bool          `mapstructure:"catalog_from_db"`
	WalletFromDB   bool          `mapstructure:"wallet_from_db"`
}

// GameConfig holds the engine tunables. The defaults reproduce the
// original balance numbers and should rarely need overriding.
type GameConfig struct {
	MaxHandSize       int           `mapstructure:"max_hand_size"`
	MaxCardsPerTurn   int           `mapstructure:"max_cards_per_turn"`
	CardsPerTurn      int           `mapstructure:"cards_per_turn"`
	InitialDrawCount  int           `mapstructure:"initial_draw_count"`
	InitialDrawDelay  time.Duration `mapstructure:"initial_draw_delay"`
	LowDeckThreshold  int           `mapstructure:"low_deck_threshold"`
	HistoryLimit      int           `mapstructure:"history_limit"`
	RefundOnUndo      bool          `mapstructure:"refund_on_undo"`
	StartingResources map[string]int `mapstructure:"starting_resources"`
	StartingRates     map[string]int `mapstructure:"starting_rates"`
}

// WalletConfig configures the diamond purchase flow.
type WalletConfig struct {
	SettleDelay time.Duration `mapstructure:"settle_delay"`
}

// Load reads configuration from the given YAML file, applying defaults
// and WON_* environment overrides (e.g. WON_SERVER_ADDRESS).
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("WON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			// A missing config file is fine; defaults and env vars
			// cover everything.
			_, notFound := err.(viper.ConfigFileNotFoundError)
			if !notFound && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("database.url", "")
	v.SetDefault("database.max_conns", 4)
	v.SetDefault("database.connect_timeout", 5*time.Second)
	v.SetDefault("database.catalog_from_db", false)
	v.SetDefault("database.wallet_from_db", false)

	v.SetDefault("game.max_hand_size", 7)
	v.SetDefault("game.max_cards_per_turn", 3)
	v.SetDefault("game.cards_per_turn", 2)
	v.SetDefault("game.initial_draw_count", 5)
	v.SetDefault("game.initial_draw_delay", 500*time.Millisecond)
	v.SetDefault("game.low_deck_threshold", 5)
	v.SetDefault("game.history_limit", 10)
	v.SetDefault("game.refund_on_undo", false)
	v.SetDefault("game.starting_resources", map[string]int{
		"gold": 100, "steel": 50, "food": 50, "energy": 50, "technology": 25,
	})
	v.SetDefault("game.starting_rates", map[string]int{
		"gold": 10, "steel": 5, "food": 5, "energy": 5, "technology": 2,
	})

	v.SetDefault("wallet.settle_delay", 1500*time.Millisecond)
}

func validate(cfg *Config) error {
	if cfg.Game.MaxHandSize <= 0 {
		return fmt.Errorf("game.max_hand_size must be positive, got %d", cfg.Game.MaxHandSize)
	}
	if cfg.Game.CardsPerTurn <= 0 {
		return fmt.Errorf("game.cards_per_turn must be positive, got %d", cfg.Game.CardsPerTurn)
	}
	if cfg.Game.MaxCardsPerTurn <= 0 {
		return fmt.Errorf("game.max_cards_per_turn must be positive, got %d", cfg.Game.MaxCardsPerTurn)
	}
	if cfg.Database.CatalogFromDB && cfg.Database.URL == "" {
		return fmt.Errorf("database.catalog_from_db requires database.url")
	}
	if cfg.Database.WalletFromDB && cfg.Database.URL == "" {
		return fmt.Errorf("database.wallet_from_db requires database.url")
	}
	return nil
}
