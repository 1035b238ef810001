package params

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashkit/hedera-agent-kit/pkg/core"
	"github.com/hashkit/hedera-agent-kit/pkg/hiero"
)

func TestNormalizeTransferFungibleTokenScalesByDecimals(t *testing.T) {
	mirror := &fakeMirror{tokens: map[string]*hiero.TokenInfo{
		"0.0.500": {TokenID: mustTokenID(t, "0.0.500"), Symbol: "USDX", Decimals: 2},
	}}

	raw := map[string]any{
		"tokenId": "0.0.500",
		"transfers": []any{
			map[string]any{"accountId": "0.0.2", "amount": 100.0},
		},
	}
	p, err := NormalizeTransferFungibleToken(context.Background(), raw, testContext(mirror), &fakeClient{})
	require.NoError(t, err)

	require.Len(t, p.Transfers, 2)
	assert.Equal(t, int64(10_000), p.Transfers[0].Amount, "100 display units at 2 decimals")
	assert.Equal(t, int64(-10_000), p.Transfers[1].Amount)
	assert.Equal(t, uint32(2), p.Decimals)
	assert.Equal(t, []string{"0.0.500"}, mirror.tokenLookups)
}

func TestNormalizeTransferFungibleTokenExplicitDecimalsSkipsMirror(t *testing.T) {
	mirror := &fakeMirror{}

	raw := map[string]any{
		"tokenId":  "0.0.500",
		"decimals": 6,
		"transfers": []any{
			map[string]any{"accountId": "0.0.2", "amount": 1.0},
		},
	}
	p, err := NormalizeTransferFungibleToken(context.Background(), raw, testContext(mirror), &fakeClient{})
	require.NoError(t, err)
	assert.Equal(t, int64(1_000_000), p.Transfers[0].Amount)
	assert.Empty(t, mirror.tokenLookups, "explicit decimals must not hit the mirror")
}

func TestNormalizeTransferFungibleTokenRejectsOversizedDecimals(t *testing.T) {
	raw := map[string]any{
		"tokenId":  "0.0.500",
		"decimals": float64(4294967296), // would wrap to 0 as uint32
		"transfers": []any{
			map[string]any{"accountId": "0.0.2", "amount": 1.0},
		},
	}
	_, err := NormalizeTransferFungibleToken(context.Background(), raw, testContext(nil), &fakeClient{})
	require.Error(t, err)
	var ruleErr *core.BusinessRuleError
	require.ErrorAs(t, err, &ruleErr)
	assert.Contains(t, err.Error(), "decimals must not exceed 18")
}

func TestNormalizeTransferFungibleTokenNoMirrorDefaultsToBaseUnits(t *testing.T) {
	raw := map[string]any{
		"tokenId": "0.0.500",
		"transfers": []any{
			map[string]any{"accountId": "0.0.2", "amount": 42.0},
		},
	}
	p, err := NormalizeTransferFungibleToken(context.Background(), raw, testContext(nil), &fakeClient{})
	require.NoError(t, err)
	assert.Equal(t, int64(42), p.Transfers[0].Amount)
	assert.Equal(t, uint32(0), p.Decimals)
}

func TestNormalizeTransferFungibleTokenAllowance(t *testing.T) {
	raw := map[string]any{
		"tokenId":      "0.0.500",
		"decimals":     0,
		"useAllowance": true,
		"transfers": []any{
			map[string]any{"accountId": "0.0.2", "amount": 10.0},
		},
	}
	p, err := NormalizeTransferFungibleToken(context.Background(), raw, testContext(nil), &fakeClient{})
	require.NoError(t, err)
	require.NotNil(t, p.ApprovedDebit)
	assert.True(t, p.ApprovedDebit.IsApproval)
	assert.Equal(t, int64(-10), p.ApprovedDebit.Amount)
	assert.Len(t, p.Transfers, 1)
}

func TestNormalizeCreateFungibleToken(t *testing.T) {
	t.Run("max supply makes the class finite", func(t *testing.T) {
		raw := map[string]any{
			"tokenName":     "Demo",
			"tokenSymbol":   "DMO",
			"decimals":      2,
			"initialSupply": 100.0,
			"maxSupply":     1000.0,
		}
		p, err := NormalizeCreateFungibleToken(context.Background(), raw, testContext(nil), &fakeClient{})
		require.NoError(t, err)
		assert.Equal(t, hiero.SupplyTypeFinite, p.SupplyType)
		assert.Equal(t, uint64(10_000), p.InitialSupplyBase)
		assert.Equal(t, int64(100_000), p.MaxSupply)
		assert.Nil(t, p.SupplyKey)
	})

	t.Run("no max supply stays infinite", func(t *testing.T) {
		raw := map[string]any{"tokenName": "Demo", "tokenSymbol": "DMO"}
		p, err := NormalizeCreateFungibleToken(context.Background(), raw, testContext(nil), &fakeClient{})
		require.NoError(t, err)
		assert.Equal(t, hiero.SupplyTypeInfinite, p.SupplyType)
	})

	t.Run("initial above max rejected", func(t *testing.T) {
		raw := map[string]any{
			"tokenName":     "Demo",
			"tokenSymbol":   "DMO",
			"initialSupply": 11.0,
			"maxSupply":     10.0,
		}
		_, err := NormalizeCreateFungibleToken(context.Background(), raw, testContext(nil), &fakeClient{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds max supply")
	})

	t.Run("oversized decimals rejected", func(t *testing.T) {
		raw := map[string]any{
			"tokenName":   "Demo",
			"tokenSymbol": "DMO",
			"decimals":    float64(1 << 32),
		}
		_, err := NormalizeCreateFungibleToken(context.Background(), raw, testContext(nil), &fakeClient{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decimals must not exceed 18")
	})

	t.Run("supply key resolved from operator", func(t *testing.T) {
		key, err := hiero.ParsePublicKey(testKeyHex)
		require.NoError(t, err)
		client := &fakeClient{operatorKey: key}
		raw := map[string]any{
			"tokenName":   "Demo",
			"tokenSymbol": "DMO",
			"isSupplyKey": true,
		}
		p, err := NormalizeCreateFungibleToken(context.Background(), raw, testContext(nil), client)
		require.NoError(t, err)
		require.NotNil(t, p.SupplyKey)
		assert.Equal(t, testKeyHex, p.SupplyKey.String())
	})
}

func TestNormalizeCreateNonFungibleToken(t *testing.T) {
	key, err := hiero.ParsePublicKey(testKeyHex)
	require.NoError(t, err)
	client := &fakeClient{operatorKey: key}

	p, err := NormalizeCreateNonFungibleToken(context.Background(), map[string]any{
		"tokenName":   "Art",
		"tokenSymbol": "ART",
	}, testContext(nil), client)
	require.NoError(t, err)

	assert.Equal(t, hiero.TokenTypeNonFungible, p.TokenType)
	assert.Equal(t, hiero.SupplyTypeFinite, p.SupplyType)
	assert.Equal(t, int64(100), p.MaxSupply, "default serial ceiling")
	require.NotNil(t, p.SupplyKey, "NFT classes always get a supply key")
}

func TestNormalizeMintFungibleToken(t *testing.T) {
	mirror := &fakeMirror{tokens: map[string]*hiero.TokenInfo{
		"0.0.500": {TokenID: mustTokenID(t, "0.0.500"), Decimals: 3},
	}}

	p, err := NormalizeMintFungibleToken(context.Background(), map[string]any{
		"tokenId": "0.0.500",
		"amount":  2.5,
	}, testContext(mirror), &fakeClient{})
	require.NoError(t, err)
	assert.Equal(t, uint64(2_500), p.AmountBase)

	_, err = NormalizeMintFungibleToken(context.Background(), map[string]any{
		"tokenId": "0.0.500",
		"amount":  0.0,
	}, testContext(mirror), &fakeClient{})
	require.Error(t, err)
	assert.Equal(t, "Invalid mint amount: 0", err.Error())
}

func TestNormalizeMintNFT(t *testing.T) {
	t.Run("valid uris", func(t *testing.T) {
		p, err := NormalizeMintNFT(context.Background(), map[string]any{
			"tokenId": "0.0.600",
			"uris":    []any{"ipfs://a", "ipfs://b"},
		}, testContext(nil), &fakeClient{})
		require.NoError(t, err)
		require.Len(t, p.Metadata, 2)
		assert.Equal(t, []byte("ipfs://a"), p.Metadata[0])
	})

	t.Run("empty uri rejected", func(t *testing.T) {
		_, err := NormalizeMintNFT(context.Background(), map[string]any{
			"tokenId": "0.0.600",
			"uris":    []any{""},
		}, testContext(nil), &fakeClient{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must not be empty")
	})

	t.Run("oversized uri rejected", func(t *testing.T) {
		long := "ipfs://"
		for len(long) <= 100 {
			long += "x"
		}
		_, err := NormalizeMintNFT(context.Background(), map[string]any{
			"tokenId": "0.0.600",
			"uris":    []any{long},
		}, testContext(nil), &fakeClient{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds 100 bytes")
	})

	t.Run("no uris rejected", func(t *testing.T) {
		_, err := NormalizeMintNFT(context.Background(), map[string]any{
			"tokenId": "0.0.600",
			"uris":    []any{},
		}, testContext(nil), &fakeClient{})
		require.Error(t, err)
	})
}

func TestNormalizeTransferNFTRejectsBadSerials(t *testing.T) {
	_, err := NormalizeTransferNFT(context.Background(), map[string]any{
		"tokenId":           "0.0.600",
		"receiverAccountId": "0.0.2",
		"serialNumbers":     []any{1, 0},
	}, testContext(nil), &fakeClient{})
	require.Error(t, err)
	assert.Equal(t, "Invalid NFT serial number: 0", err.Error())
}

func TestNormalizeAirdropFungibleToken(t *testing.T) {
	p, err := NormalizeAirdropFungibleToken(context.Background(), map[string]any{
		"tokenId":  "0.0.500",
		"decimals": 0,
		"recipients": []any{
			map[string]any{"accountId": "0.0.2", "amount": 3.0},
			map[string]any{"accountId": "0.0.3", "amount": 4.0},
		},
	}, testContext(nil), &fakeClient{})
	require.NoError(t, err)

	require.Len(t, p.Transfers, 3)
	debit := p.Transfers[2]
	assert.Equal(t, "0.0.1001", debit.AccountID.String())
	assert.Equal(t, int64(-7), debit.Amount)
}

func TestNormalizeClaimAirdrop(t *testing.T) {
	serial := int64(9)
	mirror := &fakeMirror{
		tokens: map[string]*hiero.TokenInfo{
			"0.0.500": {TokenID: mustTokenID(t, "0.0.500"), Symbol: "USDX", Decimals: 2},
			"0.0.600": {TokenID: mustTokenID(t, "0.0.600"), Symbol: "ART", Decimals: 0},
		},
		airdrops: []hiero.PendingAirdrop{
			{SenderID: mustAccountID(t, "0.0.7"), ReceiverID: mustAccountID(t, "0.0.1001"), TokenID: mustTokenID(t, "0.0.500"), Amount: 1234},
			{SenderID: mustAccountID(t, "0.0.8"), ReceiverID: mustAccountID(t, "0.0.1001"), TokenID: mustTokenID(t, "0.0.600"), Amount: 1, Serial: &serial},
		},
	}

	t.Run("claims everything by default", func(t *testing.T) {
		p, err := NormalizeClaimAirdrop(context.Background(), map[string]any{}, testContext(mirror), &fakeClient{})
		require.NoError(t, err)

		require.Len(t, p.PendingAirdrops, 2)
		assert.Equal(t, "0.0.500", p.PendingAirdrops[0].TokenID.String(), "listing order preserved")
		assert.Equal(t, "0.0.600", p.PendingAirdrops[1].TokenID.String())
		require.Len(t, p.Summaries, 2)
		assert.Equal(t, "12.34 USDX (0.0.500) from 0.0.7", p.Summaries[0])
		assert.Equal(t, "1 ART (0.0.600) from 0.0.8", p.Summaries[1])
	})

	t.Run("sender filter", func(t *testing.T) {
		p, err := NormalizeClaimAirdrop(context.Background(), map[string]any{
			"senderAccountId": "0.0.8",
		}, testContext(mirror), &fakeClient{})
		require.NoError(t, err)
		require.Len(t, p.PendingAirdrops, 1)
		assert.Equal(t, "0.0.600", p.PendingAirdrops[0].TokenID.String())
	})

	t.Run("token filter", func(t *testing.T) {
		p, err := NormalizeClaimAirdrop(context.Background(), map[string]any{
			"tokenId": "0.0.500",
		}, testContext(mirror), &fakeClient{})
		require.NoError(t, err)
		require.Len(t, p.PendingAirdrops, 1)
	})

	t.Run("nothing to claim", func(t *testing.T) {
		_, err := NormalizeClaimAirdrop(context.Background(), map[string]any{
			"senderAccountId": "0.0.404",
		}, testContext(mirror), &fakeClient{})
		require.Error(t, err)
		assert.Equal(t, "no pending airdrops to claim for account 0.0.1001", err.Error())
	})
}
