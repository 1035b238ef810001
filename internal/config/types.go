package config

import "github.com/hashkit/hedera-agent-kit/pkg/utils"

// AppConfig is the complete application configuration
type AppConfig struct {
	Agent    AgentConfig     `yaml:"agent"`
	Network  NetworkConfig   `yaml:"network"`
	HTTP     HTTPConfig      `yaml:"http"`
	MCP      MCPConfig       `yaml:"mcp"`
	LLM      LLMConfig       `yaml:"llm"`
	Store    StoreConfig     `yaml:"store"`
	Policies PoliciesConfig  `yaml:"policies"`
	Logging  utils.LogConfig `yaml:"logging"`
}

// AgentConfig describes the agent identity and execution mode
type AgentConfig struct {
	Name string `yaml:"name"`
	// Mode is "autonomous" or "returnBytes"
	Mode string `yaml:"mode"`
	// AccountID is the default account applied when tool arguments leave
	// the account implicit
	AccountID string `yaml:"account_id"`
	// AccountPublicKey is the default public key paired with AccountID
	AccountPublicKey string `yaml:"account_public_key"`
}

// NetworkConfig selects the Hedera network and operator identity
type NetworkConfig struct {
	Ledger            string `yaml:"ledger"`
	MirrorURL         string `yaml:"mirror_url"`
	OperatorAccountID string `yaml:"operator_account_id"`
	OperatorPublicKey string `yaml:"operator_public_key"`
}

// HTTPConfig configures the REST gateway
type HTTPConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// MCPConfig configures the MCP stdio server
type MCPConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LLMConfig configures the OpenAI function-calling adapter
type LLMConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Provider string `yaml:"provider"`
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
}

// StoreConfig configures the Postgres audit store
type StoreConfig struct {
	Enabled bool   `yaml:"enabled"`
	DSN     string `yaml:"dsn"`
}

// PoliciesConfig configures the built-in execution policies. Zero values
// disable the corresponding policy
type PoliciesConfig struct {
	// MaxHbarTransfer caps the total HBAR debited by a single transfer,
	// in whole HBAR
	MaxHbarTransfer float64 `yaml:"max_hbar_transfer"`
	// AccountAllowlist restricts tool calls to the listed source accounts
	AccountAllowlist []string `yaml:"account_allowlist"`
	// TokenDenylist blocks any tool call touching the listed tokens
	TokenDenylist []string `yaml:"token_denylist"`
	// ForbidInfiniteSupply blocks token creation with an uncapped supply
	ForbidInfiniteSupply bool `yaml:"forbid_infinite_supply"`
}

// DefaultConfig returns the default application configuration
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Agent: AgentConfig{
			Name: "hedera-agent",
			Mode: "autonomous",
		},
		Network: NetworkConfig{
			Ledger:    "testnet",
			MirrorURL: "https://testnet.mirrornode.hedera.com",
		},
		HTTP: HTTPConfig{
			Enabled: true,
			Port:    8080,
		},
		MCP: MCPConfig{
			Enabled: false,
		},
		LLM: LLMConfig{
			Enabled:  false,
			Provider: "openai",
			Model:    "gpt-4o",
		},
		Store: StoreConfig{
			Enabled: false,
		},
		Logging: utils.DefaultLogConfig(),
	}
}
