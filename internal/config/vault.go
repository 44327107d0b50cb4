package config

import (
	"fmt"
	"os"
	"strings"

	"skilladvisor/internal/errors"

	"github.com/hashicorp/vault/api"
)

// VaultConfig holds Vault connection configuration
type VaultConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Address   string `mapstructure:"address"`
	Token     string `mapstructure:"token"`
	TokenFile string `mapstructure:"tokenFile"`
	Namespace string `mapstructure:"namespace"`

	// Secret paths
	Secrets VaultSecrets `mapstructure:"secrets"`
}

// VaultSecrets defines where to find secrets in Vault
type VaultSecrets struct {
	// APIKeys expects a KVv2 secret with a "keys" field holding a single
	// comma-separated string, e.g. "key1,key2,key3".
	APIKeys string `mapstructure:"apiKeys"` // Path to server API keys secret
}

// VaultClient wraps the Vault API client
type VaultClient struct {
	client *api.Client
	config VaultConfig
	logger *errors.Logger
}

// NewVaultClient creates a new Vault client from configuration. Returns
// (nil, nil) when Vault integration is disabled.
func NewVaultClient(config VaultConfig, logger *errors.Logger) (*VaultClient, error) {
	if !config.Enabled {
		if logger != nil {
			logger.Debug("Vault integration disabled")
		}
		return nil, nil
	}

	vaultConfig := api.DefaultConfig()
	if config.Address != "" {
		vaultConfig.Address = config.Address
	}

	client, err := api.NewClient(vaultConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault client: %w", err)
	}

	if config.Namespace != "" {
		client.SetNamespace(config.Namespace)
	}

	token, err := resolveVaultToken(config)
	if err != nil {
		return nil, err
	}
	client.SetToken(token)

	if err := testVaultConnection(client, config.Address, logger); err != nil {
		return nil, err
	}

	return &VaultClient{
		client: client,
		config: config,
		logger: logger,
	}, nil
}

// resolveVaultToken resolves the Vault token from config or file
func resolveVaultToken(config VaultConfig) (string, error) {
	token := config.Token

	if token == "" && config.TokenFile != "" {
		tokenBytes, err := os.ReadFile(config.TokenFile)
		if err != nil {
			return "", fmt.Errorf("failed to read vault token file: %w", err)
		}
		token = strings.TrimSpace(string(tokenBytes))
	}

	if token == "" {
		return "", fmt.Errorf("vault token is required when vault is enabled")
	}

	return token, nil
}

// testVaultConnection tests the connection to Vault
func testVaultConnection(client *api.Client, address string, logger *errors.Logger) error {
	health, err := client.Sys().Health()
	if err != nil {
		return fmt.Errorf("failed to connect to vault: %w", err)
	}

	if logger != nil {
		logger.Info("Successfully connected to Vault",
			"address", address,
			"version", health.Version,
			"sealed", health.Sealed)
	}

	return nil
}

// GetServerAPIKeys reads the server API keys secret and splits it into
// individual keys.
func (vc *VaultClient) GetServerAPIKeys() ([]string, error) {
	if vc == nil {
		return nil, fmt.Errorf("vault client not initialized")
	}
	if vc.config.Secrets.APIKeys == "" {
		return nil, nil
	}

	secret, err := vc.client.Logical().Read(vc.config.Secrets.APIKeys)
	if err != nil {
		return nil, fmt.Errorf("failed to read secret from %s: %w", vc.config.Secrets.APIKeys, err)
	}
	if secret == nil || secret.Data == nil {
		return nil, fmt.Errorf("secret not found at path: %s", vc.config.Secrets.APIKeys)
	}

	// KVv2 wraps the payload in a nested "data" field.
	data, ok := secret.Data["data"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("secret at %s is not in KVv2 format (missing 'data' field)", vc.config.Secrets.APIKeys)
	}

	raw, ok := data["keys"].(string)
	if !ok {
		return nil, fmt.Errorf("secret at %s is missing a 'keys' string field", vc.config.Secrets.APIKeys)
	}

	return ParseAPIKeys(raw), nil
}

// ParseAPIKeys splits a comma-separated API key string, trimming whitespace
// and dropping empty entries.
func ParseAPIKeys(raw string) []string {
	var keys []string
	for _, key := range strings.Split(raw, ",") {
		key = strings.TrimSpace(key)
		if key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

// ApplyVaultOverrides loads secrets from Vault into the configuration. Vault
// values take precedence over config file and environment values.
func (c *Config) ApplyVaultOverrides(logger *errors.Logger) error {
	client, err := NewVaultClient(c.Vault, logger)
	if err != nil {
		return err
	}
	if client == nil {
		return nil
	}

	keys, err := client.GetServerAPIKeys()
	if err != nil {
		return err
	}
	if len(keys) > 0 {
		c.Server.APIKeys = keys
		if logger != nil {
			logger.Info("Loaded server API keys from Vault", "count", len(keys))
		}
	}

	return nil
}
