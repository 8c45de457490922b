package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Backend BackendConfig `mapstructure:"backend"`
	View    ViewConfig    `mapstructure:"view"`
	Log     LogConfig     `mapstructure:"log"`
}

type BackendConfig struct {
	REST        RESTConfig `mapstructure:"rest"`
	WS          WSConfig   `mapstructure:"ws"`
	ExplorerURL string     `mapstructure:"explorer_url"`
}

type RESTConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type WSConfig struct {
	URL               string        `mapstructure:"url"`
	HeartbeatInterval time.Duration `mapstructure:"heartbeat_interval"`
	ReconnectDelay    time.Duration `mapstructure:"reconnect_delay"`
}

// ViewConfig sets the per-surface retention caps and the counters resync
// cadence. A zero resync interval means resync once at startup only.
type ViewConfig struct {
	CompactCap     int           `mapstructure:"compact_cap"`
	CardCap        int           `mapstructure:"card_cap"`
	TableCap       int           `mapstructure:"table_cap"`
	ArbTableCap    int           `mapstructure:"arb_table_cap"`
	ResyncInterval time.Duration `mapstructure:"resync_interval"`
}

// Options defines the logger configuration options.
type LogConfig struct {
	Level       string `mapstructure:"level"`       // log level: "debug", "info", "warn", "error"
	Format      string `mapstructure:"format"`      // log format: "json" or "console"
	OutputFile  string `mapstructure:"output_file"` // file path to store logs (optional)
	Environment string `mapstructure:"environment"` // environment: "dev" or "prod"
}

// Load loads application configuration using Viper.
// It reads from config.yaml and overrides with environment variables.
func Load() *Config {
	v := viper.New()

	v.SetConfigName("config") // config.yaml
	v.SetConfigType("yaml")

	ex, _ := os.Executable()
	if strings.Contains(ex, "go-build") {
		pwd, _ := os.Getwd()
		v.AddConfigPath(filepath.Join(pwd, "../../config"))
	} else {
		v.AddConfigPath(filepath.Join(filepath.Dir(ex), "../config"))
	}

	// Defaults mirror the backend dashboard's own retention and timing.
	v.SetDefault("backend.ws.heartbeat_interval", 30*time.Second)
	v.SetDefault("backend.ws.reconnect_delay", 3*time.Second)
	v.SetDefault("backend.rest.timeout", 10*time.Second)
	v.SetDefault("view.compact_cap", 5)
	v.SetDefault("view.card_cap", 3)
	v.SetDefault("view.table_cap", 100)
	v.SetDefault("view.arb_table_cap", 50)
	v.SetDefault("log.level", "info")

	// Support environment variables with dot notation (e.g., BACKEND_WS_URL)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("failed to read config: %v", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("failed to unmarshal config: %v", err)
	}

	return &cfg
}
