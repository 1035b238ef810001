// Package runtime assembles the toolkit from application configuration:
// mirror client, network client, policy set, execution context, tool
// catalog and executor. The serving surfaces (REST, MCP, LLM) all run on
// top of one Runtime.
package runtime

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hashkit/hedera-agent-kit/internal/config"
	"github.com/hashkit/hedera-agent-kit/pkg/core"
	"github.com/hashkit/hedera-agent-kit/pkg/hiero"
	"github.com/hashkit/hedera-agent-kit/pkg/mirror"
	"github.com/hashkit/hedera-agent-kit/pkg/policy"
	"github.com/hashkit/hedera-agent-kit/pkg/tool"
	"github.com/hashkit/hedera-agent-kit/pkg/tools"
)

// Runtime bundles everything one agent process needs to execute tools.
type Runtime struct {
	Config   *config.AppConfig
	Logger   *logrus.Logger
	Registry *tool.Registry
	Executor *tool.Executor
	Context  *core.Context
	Client   hiero.NetworkClient
}

// New assembles a runtime from configuration. When no signing client is
// injected the runtime carries an offline client: autonomous submissions
// fail with a descriptive error while return-bytes flows work fully.
func New(cfg *config.AppConfig, logger *logrus.Logger, client hiero.NetworkClient) (*Runtime, error) {
	if logger == nil {
		logger = logrus.New()
	}

	if client == nil {
		var operator hiero.AccountID
		var key hiero.PublicKey
		var err error
		if cfg.Network.OperatorAccountID != "" {
			operator, err = hiero.ParseAccountID(cfg.Network.OperatorAccountID)
			if err != nil {
				return nil, fmt.Errorf("invalid operator account id: %w", err)
			}
		}
		if cfg.Network.OperatorPublicKey != "" {
			key, err = hiero.ParsePublicKey(cfg.Network.OperatorPublicKey)
			if err != nil {
				return nil, fmt.Errorf("invalid operator public key: %w", err)
			}
		}
		client = hiero.NewOfflineClient(cfg.Network.Ledger, operator, key)
	}

	policies, err := buildPolicies(&cfg.Policies)
	if err != nil {
		return nil, err
	}

	tctx := &core.Context{
		Mode:             core.AgentMode(cfg.Agent.Mode),
		AccountID:        cfg.Agent.AccountID,
		AccountPublicKey: cfg.Agent.AccountPublicKey,
		Mirror:           mirror.NewClient(cfg.Network.MirrorURL, logger),
		Policies:         policies,
	}

	return &Runtime{
		Config:   cfg,
		Logger:   logger,
		Registry: tools.DefaultRegistry(),
		Executor: tool.NewExecutor(logger),
		Context:  tctx,
		Client:   client,
	}, nil
}

func buildPolicies(cfg *config.PoliciesConfig) ([]core.Policy, error) {
	var policies []core.Policy

	if len(cfg.AccountAllowlist) > 0 {
		accounts := make([]hiero.AccountID, 0, len(cfg.AccountAllowlist))
		for _, s := range cfg.AccountAllowlist {
			id, err := hiero.ParseAccountID(s)
			if err != nil {
				return nil, fmt.Errorf("invalid allowlist account %q: %w", s, err)
			}
			accounts = append(accounts, id)
		}
		policies = append(policies, policy.NewAccountAllowlist(accounts))
	}

	if len(cfg.TokenDenylist) > 0 {
		tokens := make([]hiero.TokenID, 0, len(cfg.TokenDenylist))
		for _, s := range cfg.TokenDenylist {
			id, err := hiero.ParseTokenID(s)
			if err != nil {
				return nil, fmt.Errorf("invalid denylist token %q: %w", s, err)
			}
			tokens = append(tokens, id)
		}
		policies = append(policies, policy.NewTokenDenylist(tokens))
	}

	if cfg.MaxHbarTransfer > 0 {
		max, err := hiero.HbarFromFloat(cfg.MaxHbarTransfer)
		if err != nil {
			return nil, fmt.Errorf("invalid max_hbar_transfer: %w", err)
		}
		policies = append(policies, policy.NewMaxHbarTransfer(max))
	}

	if cfg.ForbidInfiniteSupply {
		policies = append(policies, policy.NewNoInfiniteSupply())
	}

	return policies, nil
}
