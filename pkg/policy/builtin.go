package policy

import (
	"fmt"

	"github.com/hashkit/hedera-agent-kit/pkg/core"
	"github.com/hashkit/hedera-agent-kit/pkg/hiero"
)

// AccountAllowlist blocks any tool call whose primary account reference is
// not in the configured set. It runs at PreToolExecution so disallowed calls
// are rejected before any normalisation or network lookup.
type AccountAllowlist struct {
	tools   []core.Method
	allowed map[string]struct{}
}

// NewAccountAllowlist builds an allowlist over the given accounts. An empty
// tools list applies the policy to every tool.
func NewAccountAllowlist(accounts []hiero.AccountID, tools ...core.Method) *AccountAllowlist {
	allowed := make(map[string]struct{}, len(accounts))
	for _, a := range accounts {
		allowed[a.String()] = struct{}{}
	}
	return &AccountAllowlist{tools: tools, allowed: allowed}
}

func (p *AccountAllowlist) Name() string { return "account-allowlist" }

func (p *AccountAllowlist) Description() string {
	return "Blocks operations that reference an account outside the configured allowlist."
}

func (p *AccountAllowlist) RelevantTools() []core.Method { return p.tools }

func (p *AccountAllowlist) AffectedPoints() []core.ExecutionPoint {
	return []core.ExecutionPoint{core.PreToolExecution}
}

func (p *AccountAllowlist) ShouldBlock(point core.ExecutionPoint, method core.Method, subject any) bool {
	ref, ok := subject.(AccountRef)
	if !ok {
		return false
	}
	account, ok := ref.AccountRef()
	if !ok {
		// No account referenced: nothing to allow or deny.
		return false
	}
	_, allowed := p.allowed[account.String()]
	return !allowed
}

// TokenDenylist blocks operations referencing any denied token class. Runs
// at PreToolExecution.
type TokenDenylist struct {
	tools  []core.Method
	denied map[string]struct{}
}

// NewTokenDenylist builds a denylist over the given token ids.
func NewTokenDenylist(tokens []hiero.TokenID, tools ...core.Method) *TokenDenylist {
	denied := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		denied[t.String()] = struct{}{}
	}
	return &TokenDenylist{tools: tools, denied: denied}
}

func (p *TokenDenylist) Name() string { return "token-denylist" }

func (p *TokenDenylist) Description() string {
	return "Blocks operations that reference a denied token."
}

func (p *TokenDenylist) RelevantTools() []core.Method { return p.tools }

func (p *TokenDenylist) AffectedPoints() []core.ExecutionPoint {
	return []core.ExecutionPoint{core.PreToolExecution}
}

func (p *TokenDenylist) ShouldBlock(point core.ExecutionPoint, method core.Method, subject any) bool {
	refs, ok := subject.(TokenRefs)
	if !ok {
		return false
	}
	for _, token := range refs.TokenRefs() {
		if _, denied := p.denied[token.String()]; denied {
			return true
		}
	}
	return false
}

// MaxHbarTransfer caps the total debited HBAR of a single transfer. It runs
// at PostParamsNormalization: caps are only meaningful against base-unit
// amounts, which do not exist before normalisation.
type MaxHbarTransfer struct {
	max hiero.Hbar
}

// NewMaxHbarTransfer builds the cap policy.
func NewMaxHbarTransfer(max hiero.Hbar) *MaxHbarTransfer {
	return &MaxHbarTransfer{max: max}
}

func (p *MaxHbarTransfer) Name() string { return "max-hbar-transfer" }

func (p *MaxHbarTransfer) Description() string {
	return fmt.Sprintf("Blocks HBAR transfers debiting more than %s in total.", p.max)
}

func (p *MaxHbarTransfer) RelevantTools() []core.Method {
	return []core.Method{core.MethodTransferHbar}
}

func (p *MaxHbarTransfer) AffectedPoints() []core.ExecutionPoint {
	return []core.ExecutionPoint{core.PostParamsNormalization}
}

func (p *MaxHbarTransfer) ShouldBlock(point core.ExecutionPoint, method core.Method, subject any) bool {
	movements, ok := subject.(HbarMovements)
	if !ok {
		return false
	}
	var debited int64
	for _, m := range movements.HbarMovements() {
		if m.Amount < 0 {
			debited -= m.Amount.Tinybar()
		}
	}
	return debited > p.max.Tinybar()
}

// NoInfiniteSupply blocks creation of tokens with an uncapped supply. Runs
// at PostParamsNormalization, where the normalised supply type is available.
type NoInfiniteSupply struct{}

// NewNoInfiniteSupply builds the policy.
func NewNoInfiniteSupply() *NoInfiniteSupply { return &NoInfiniteSupply{} }

func (p *NoInfiniteSupply) Name() string { return "no-infinite-supply" }

func (p *NoInfiniteSupply) Description() string {
	return "Blocks creation of tokens without a finite maximum supply."
}

func (p *NoInfiniteSupply) RelevantTools() []core.Method {
	return []core.Method{core.MethodCreateFungibleToken, core.MethodCreateNonFungibleToken}
}

func (p *NoInfiniteSupply) AffectedPoints() []core.ExecutionPoint {
	return []core.ExecutionPoint{core.PostParamsNormalization}
}

func (p *NoInfiniteSupply) ShouldBlock(point core.ExecutionPoint, method core.Method, subject any) bool {
	spec, ok := subject.(SupplySpec)
	if !ok {
		return false
	}
	supplyType, _ := spec.SupplySpec()
	return supplyType == hiero.SupplyTypeInfinite
}
