package params

import (
	"context"
	"fmt"

	"github.com/hashkit/hedera-agent-kit/pkg/core"
	"github.com/hashkit/hedera-agent-kit/pkg/hiero"
)

// ResolveAccount resolves an account reference in fixed priority order:
// the explicit argument, then the context default, then the network
// client's operator identity. Absence of all three is a ResolutionError.
func ResolveAccount(explicit string, tctx *core.Context, client hiero.NetworkClient) (hiero.AccountID, error) {
	if explicit != "" {
		return hiero.ParseAccountID(explicit)
	}
	if tctx != nil && tctx.AccountID != "" {
		return hiero.ParseAccountID(tctx.AccountID)
	}
	if client != nil {
		if operator, ok := client.OperatorAccountID(); ok {
			return operator, nil
		}
	}
	return hiero.AccountID{}, core.NewResolutionError("default account")
}

// ResolvePublicKey resolves a public key in the same order as
// ResolveAccount, with one extra fallback: when only a default account id
// is known, the key is fetched from the mirror service. That lookup is the
// sole network call in the resolver and its failure propagates as-is.
func ResolvePublicKey(ctx context.Context, explicit string, tctx *core.Context, client hiero.NetworkClient) (hiero.PublicKey, error) {
	if explicit != "" {
		return hiero.ParsePublicKey(explicit)
	}
	if tctx != nil && tctx.AccountPublicKey != "" {
		return hiero.ParsePublicKey(tctx.AccountPublicKey)
	}
	if client != nil {
		if key, ok := client.OperatorPublicKey(); ok {
			return key, nil
		}
	}
	if tctx != nil && tctx.AccountID != "" && tctx.Mirror != nil {
		account, err := hiero.ParseAccountID(tctx.AccountID)
		if err != nil {
			return hiero.PublicKey{}, err
		}
		info, err := tctx.Mirror.AccountInfo(ctx, account)
		if err != nil {
			return hiero.PublicKey{}, fmt.Errorf("fetching key for account %s: %w", account, err)
		}
		if info.Key != nil && !info.Key.IsZero() {
			return *info.Key, nil
		}
	}
	return hiero.PublicKey{}, core.NewResolutionError("default public key")
}
