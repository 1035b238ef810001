package core

import "github.com/hashkit/hedera-agent-kit/pkg/hiero"

// AgentMode selects how built transactions leave the pipeline.
type AgentMode string

const (
	// AutonomousMode submits transactions directly through the network client.
	AutonomousMode AgentMode = "autonomous"

	// ReturnBytesMode freezes the transaction and returns its unsigned bytes
	// for external signing; nothing is submitted.
	ReturnBytesMode AgentMode = "returnBytes"
)

// Context is the ambient, request-scoped configuration of one tool call.
// It is constructed once by the caller, passed by reference through the
// whole pipeline, and never mutated by the toolkit, so a single Context is
// safe to share across concurrent invocations. Defaults (account id,
// policies) are injected at construction, never afterwards.
type Context struct {
	// Mode selects the execution strategy. Empty means AutonomousMode.
	Mode AgentMode

	// AccountID is the caller's default account, used when a tool argument
	// leaves the account implicit.
	AccountID string

	// AccountPublicKey is the caller's default public key.
	AccountPublicKey string

	// Mirror overrides the mirror service used for read-path lookups. When
	// nil, tools that need the mirror fail with a descriptive error.
	Mirror hiero.MirrorService

	// Policies are evaluated at the four pipeline extension points, in
	// registration order.
	Policies []Policy
}

// EffectiveMode resolves the empty default to AutonomousMode.
func (c *Context) EffectiveMode() AgentMode {
	if c == nil || c.Mode == "" {
		return AutonomousMode
	}
	return c.Mode
}
