package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/tranvictor/walletclient/logger"
)

const (
	EnvNetwork        = "WALLETCLIENT_NETWORK"
	EnvNodeURL        = "WALLETCLIENT_NODE"
	EnvRequestTimeout = "WALLETCLIENT_TIMEOUT_MS"
	EnvChainsDir      = "WALLETCLIENT_CHAINS_DIR"
	EnvPrivateKey     = "WALLETCLIENT_PRIVATE_KEY"
	EnvKeystore       = "WALLETCLIENT_KEYSTORE"
	EnvAccountsDir    = "WALLETCLIENT_ACCOUNTS_DIR"
)

// Config holds the settings needed to reach a node and pick an
// account.
type Config struct {
	Network        string            `yaml:"network"`
	NodeURL        string            `yaml:"node"`
	Nodes          map[string]string `yaml:"nodes"`
	RequestTimeout time.Duration     `yaml:"request_timeout"`
	ChainsDir      string            `yaml:"chains_dir"`
	AccountsDir    string            `yaml:"accounts_dir"`
	KeystoreDir    string            `yaml:"keystore_dir"`
	PrivateKey     string            `yaml:"-"`
	KeystorePath   string            `yaml:"keystore"`
	Debug          bool              `yaml:"debug"`
}

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	return &Config{
		Network:        "mainnet",
		Nodes:          map[string]string{},
		RequestTimeout: 10 * time.Second,
		ChainsDir:      defaultDir("chains"),
		AccountsDir:    defaultDir("accounts"),
		KeystoreDir:    defaultDir("keystores"),
	}
}

func defaultDir(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".walletclient", name)
}

// LoadEnvironment loads environment variables from a .env file in the
// current directory if there is one.
func LoadEnvironment() {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file loaded: %v", err)
	} else {
		logger.Debug("Loaded .env file from current directory")
	}
}

// LoadFromEnvironment overrides fields with WALLETCLIENT_* env vars
func (c *Config) LoadFromEnvironment() {
	if network := os.Getenv(EnvNetwork); network != "" {
		c.Network = network
	}
	if node := os.Getenv(EnvNodeURL); node != "" {
		c.NodeURL = node
	}
	if timeout := os.Getenv(EnvRequestTimeout); timeout != "" {
		if t, err := strconv.Atoi(timeout); err == nil {
			c.RequestTimeout = time.Duration(t) * time.Millisecond
		}
	}
	if dir := os.Getenv(EnvChainsDir); dir != "" {
		c.ChainsDir = dir
	}
	if dir := os.Getenv(EnvAccountsDir); dir != "" {
		c.AccountsDir = dir
	}
	if key := os.Getenv(EnvPrivateKey); key != "" {
		c.PrivateKey = key
	}
	if ks := os.Getenv(EnvKeystore); ks != "" {
		c.KeystorePath = ks
	}
}

// LoadFile merges a YAML config file into c. Fields missing from the
// file keep their current value.
func (c *Config) LoadFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(content, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if c.Nodes == nil {
		c.Nodes = map[string]string{}
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Network == "" && c.NodeURL == "" {
		return fmt.Errorf("either a network or a node url is required")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got: %s", c.RequestTimeout)
	}
	if c.PrivateKey != "" && c.KeystorePath != "" {
		return fmt.Errorf("private key and keystore are mutually exclusive")
	}
	return nil
}
