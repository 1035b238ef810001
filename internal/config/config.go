package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/hashkit/hedera-agent-kit/pkg/utils"
)

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(path string, logger *logrus.Logger) (*AppConfig, error) {
	// Start with default configuration
	config := DefaultConfig()

	// Check if the config file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Warnf("Configuration file %s not found, using defaults", path)
		// Still apply environment overrides even with defaults
		applyEnvironmentOverrides(config)
		if err := validateConfig(config); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		return config, nil
	}

	// Read the configuration file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the configuration
	configString := utils.ExpandEnvVars(string(data))

	// Parse YAML
	if err := yaml.Unmarshal([]byte(configString), config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables
	applyEnvironmentOverrides(config)

	// Validate the configuration
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// validateConfig checks if the configuration is valid
func validateConfig(config *AppConfig) error {
	if config.Agent.Name == "" {
		return fmt.Errorf("agent name cannot be empty")
	}

	switch config.Network.Ledger {
	case "mainnet", "testnet", "previewnet", "localnet":
	default:
		return fmt.Errorf("network.ledger must be mainnet, testnet, previewnet or localnet, got %q", config.Network.Ledger)
	}

	switch config.Agent.Mode {
	case "autonomous", "returnBytes":
	default:
		return fmt.Errorf("agent.mode must be 'autonomous' or 'returnBytes', got %q", config.Agent.Mode)
	}

	if config.Network.MirrorURL == "" {
		return fmt.Errorf("network.mirror_url cannot be empty")
	}

	// LLM validation
	if config.LLM.Enabled {
		if config.LLM.Provider == "" {
			return fmt.Errorf("LLM provider cannot be empty when LLM is enabled")
		}
		if config.LLM.Provider == "openai" && config.LLM.APIKey == "" {
			return fmt.Errorf("OpenAI API key cannot be empty when using OpenAI provider")
		}
	}

	// Audit store validation
	if config.Store.Enabled && config.Store.DSN == "" {
		return fmt.Errorf("store.dsn cannot be empty when the audit store is enabled")
	}

	if config.Policies.MaxHbarTransfer < 0 {
		return fmt.Errorf("policies.max_hbar_transfer cannot be negative")
	}

	return nil
}

// applyEnvironmentOverrides applies environment variable overrides to the configuration
func applyEnvironmentOverrides(config *AppConfig) {
	// Agent overrides
	if name := os.Getenv("AGENT_NAME"); name != "" {
		config.Agent.Name = name
	}
	if mode := os.Getenv("AGENT_MODE"); mode != "" {
		config.Agent.Mode = mode
	}

	// Network overrides
	if ledger := os.Getenv("HEDERA_NETWORK"); ledger != "" {
		config.Network.Ledger = strings.ToLower(ledger)
	}
	if mirror := os.Getenv("MIRROR_NODE_URL"); mirror != "" {
		config.Network.MirrorURL = mirror
	}
	if operator := os.Getenv("OPERATOR_ACCOUNT_ID"); operator != "" {
		config.Network.OperatorAccountID = operator
	}
	if key := os.Getenv("OPERATOR_PUBLIC_KEY"); key != "" {
		config.Network.OperatorPublicKey = key
	}

	// HTTP overrides
	config.HTTP.Enabled = utils.BoolFromEnv("HTTP_ENABLED", config.HTTP.Enabled)
	if portStr := os.Getenv("HTTP_PORT"); portStr != "" {
		if v, err := strconv.Atoi(portStr); err != nil {
			logrus.Warnf("Invalid HTTP_PORT: %s", portStr)
		} else {
			config.HTTP.Port = v
		}
	}

	// MCP overrides
	config.MCP.Enabled = utils.BoolFromEnv("MCP_ENABLED", config.MCP.Enabled)

	// LLM overrides
	config.LLM.Enabled = utils.BoolFromEnv("LLM_ENABLED", config.LLM.Enabled)
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		config.LLM.APIKey = apiKey
	}
	if model := os.Getenv("LLM_MODEL"); model != "" {
		config.LLM.Model = model
	}

	// Audit store overrides
	config.Store.Enabled = utils.BoolFromEnv("AUDIT_STORE_ENABLED", config.Store.Enabled)
	if dsn := os.Getenv("AUDIT_STORE_DSN"); dsn != "" {
		config.Store.DSN = dsn
	}

	// Logging overrides
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}
