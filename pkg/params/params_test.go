package params

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hashkit/hedera-agent-kit/pkg/core"
	"github.com/hashkit/hedera-agent-kit/pkg/hiero"
)

// fakeClient is a NetworkClient stub with an optional operator identity.
type fakeClient struct {
	operator    hiero.AccountID
	operatorKey hiero.PublicKey
	submits     int
}

func (c *fakeClient) OperatorAccountID() (hiero.AccountID, bool) {
	return c.operator, !c.operator.IsZero()
}

func (c *fakeClient) OperatorPublicKey() (hiero.PublicKey, bool) {
	return c.operatorKey, !c.operatorKey.IsZero()
}

func (c *fakeClient) LedgerID() string { return "testnet" }

func (c *fakeClient) Submit(ctx context.Context, tx *hiero.Transaction) (*hiero.Receipt, error) {
	c.submits++
	return &hiero.Receipt{Status: hiero.StatusSuccess, TransactionID: *tx.TransactionID()}, nil
}

// fakeMirror is a MirrorService stub backed by fixed maps.
type fakeMirror struct {
	mu           sync.Mutex
	accounts     map[string]*hiero.AccountInfo
	tokens       map[string]*hiero.TokenInfo
	airdrops     []hiero.PendingAirdrop
	tokenLookups []string
}

func (m *fakeMirror) AccountInfo(ctx context.Context, id hiero.AccountID) (*hiero.AccountInfo, error) {
	if info, ok := m.accounts[id.String()]; ok {
		return info, nil
	}
	return nil, fmt.Errorf("account %s not found", id)
}

func (m *fakeMirror) AccountBalance(ctx context.Context, id hiero.AccountID) (hiero.Hbar, error) {
	info, err := m.AccountInfo(ctx, id)
	if err != nil {
		return 0, err
	}
	return hiero.HbarFromTinybar(info.BalanceTinybar), nil
}

func (m *fakeMirror) TokenInfo(ctx context.Context, id hiero.TokenID) (*hiero.TokenInfo, error) {
	m.mu.Lock()
	m.tokenLookups = append(m.tokenLookups, id.String())
	m.mu.Unlock()
	if info, ok := m.tokens[id.String()]; ok {
		return info, nil
	}
	return nil, fmt.Errorf("token %s not found", id)
}

func (m *fakeMirror) PendingAirdrops(ctx context.Context, receiver hiero.AccountID) ([]hiero.PendingAirdrop, error) {
	return m.airdrops, nil
}

func (m *fakeMirror) TransactionRecord(ctx context.Context, transactionID string) (*hiero.TransactionRecord, error) {
	return nil, fmt.Errorf("not implemented")
}

func (m *fakeMirror) ContractCall(ctx context.Context, req hiero.ContractCallRequest) ([]byte, error) {
	return nil, fmt.Errorf("not implemented")
}

func mustAccountID(t *testing.T, s string) hiero.AccountID {
	t.Helper()
	id, err := hiero.ParseAccountID(s)
	require.NoError(t, err)
	return id
}

func mustTokenID(t *testing.T, s string) hiero.TokenID {
	t.Helper()
	id, err := hiero.ParseTokenID(s)
	require.NoError(t, err)
	return id
}

func testContext(mirror hiero.MirrorService) *core.Context {
	return &core.Context{
		AccountID: "0.0.1001",
		Mirror:    mirror,
	}
}

// ed25519-length hex used wherever a key argument is needed.
const testKeyHex = "aa11bb22cc33dd44ee55ff66aa77bb88cc99dd00ee11ff22aa33bb44cc55dd66"
