// Package policy implements the interception engine evaluated at the four
// fixed pipeline points, plus the built-in policies shipped with the
// toolkit. Policies probe candidate subjects through the small capability
// interfaces below instead of reflecting over arbitrary fields: a parameter
// bundle declares which shapes it exposes, and a policy declares which
// shapes it inspects.
package policy

import "github.com/hashkit/hedera-agent-kit/pkg/hiero"

// AccountRef is exposed by subjects that reference a single primary account
// (the transfer source, the account being created or deleted, the allowance
// owner).
type AccountRef interface {
	AccountRef() (hiero.AccountID, bool)
}

// TokenRefs is exposed by subjects that reference token classes.
type TokenRefs interface {
	TokenRefs() []hiero.TokenID
}

// HbarMovements is exposed by subjects that move HBAR; the slice is the full
// signed posting set.
type HbarMovements interface {
	HbarMovements() []hiero.AccountAmount
}

// SupplySpec is exposed by token-creation subjects.
type SupplySpec interface {
	SupplySpec() (hiero.SupplyType, int64)
}

// RawArguments adapts raw, pre-normalisation tool arguments to the
// capability interfaces, reading only the well-known parameter names. It
// backs the PreToolExecution stage, where typed bundles do not exist yet.
type RawArguments map[string]any

// AccountRef reads the conventional "accountId" / "sourceAccountId" keys.
func (r RawArguments) AccountRef() (hiero.AccountID, bool) {
	for _, key := range []string{"accountId", "sourceAccountId", "ownerAccountId"} {
		if s, ok := r[key].(string); ok && s != "" {
			id, err := hiero.ParseAccountID(s)
			if err == nil {
				return id, true
			}
		}
	}
	return hiero.AccountID{}, false
}

// TokenRefs reads the conventional "tokenId" / "tokenIds" keys.
func (r RawArguments) TokenRefs() []hiero.TokenID {
	var refs []hiero.TokenID
	if s, ok := r["tokenId"].(string); ok {
		if id, err := hiero.ParseTokenID(s); err == nil {
			refs = append(refs, id)
		}
	}
	if list, ok := r["tokenIds"].([]any); ok {
		for _, item := range list {
			if s, ok := item.(string); ok {
				if id, err := hiero.ParseTokenID(s); err == nil {
					refs = append(refs, id)
				}
			}
		}
	}
	return refs
}
