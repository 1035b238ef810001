package params

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashkit/hedera-agent-kit/pkg/core"
	"github.com/hashkit/hedera-agent-kit/pkg/hiero"
)

func TestNormalizeTransferHbarSynthesizesDebit(t *testing.T) {
	raw := map[string]any{
		"transfers": []any{
			map[string]any{"accountId": "0.0.2", "amount": 1.5},
			map[string]any{"accountId": "0.0.3", "amount": 0.5},
		},
	}

	p, err := NormalizeTransferHbar(context.Background(), raw, testContext(nil), &fakeClient{})
	require.NoError(t, err)

	require.Len(t, p.Transfers, 3, "two credits plus one synthesized debit")
	assert.Equal(t, "0.0.1001", p.SourceAccountID.String())

	var sum int64
	for _, tr := range p.Transfers {
		sum += tr.Amount.Tinybar()
	}
	assert.Zero(t, sum, "posting set must sum to zero")

	debit := p.Transfers[2]
	assert.Equal(t, "0.0.1001", debit.AccountID.String())
	assert.Equal(t, int64(-200_000_000), debit.Amount.Tinybar())
	assert.False(t, debit.IsApproval)
}

func TestNormalizeTransferHbarRejectsNonPositiveCredits(t *testing.T) {
	raw := map[string]any{
		"transfers": []any{
			map[string]any{"accountId": "0.0.2", "amount": -2.0},
		},
	}

	_, err := NormalizeTransferHbar(context.Background(), raw, testContext(nil), &fakeClient{})
	require.Error(t, err)
	assert.Equal(t, "Invalid transfer amount: -2", err.Error())

	var berr *core.BusinessRuleError
	assert.ErrorAs(t, err, &berr)
}

func TestNormalizeTransferHbarAllowanceDebit(t *testing.T) {
	raw := map[string]any{
		"transfers": []any{
			map[string]any{"accountId": "0.0.2", "amount": 1.0},
		},
		"sourceAccountId": "0.0.42",
		"useAllowance":    true,
	}

	p, err := NormalizeTransferHbar(context.Background(), raw, testContext(nil), &fakeClient{})
	require.NoError(t, err)

	require.NotNil(t, p.ApprovedDebit)
	assert.True(t, p.ApprovedDebit.IsApproval)
	assert.Equal(t, "0.0.42", p.ApprovedDebit.AccountID.String())
	assert.Equal(t, int64(-100_000_000), p.ApprovedDebit.Amount.Tinybar())
	assert.Len(t, p.Transfers, 1, "allowance debit must not join the ordinary postings")

	movements := p.HbarMovements()
	require.Len(t, movements, 2)
	assert.True(t, movements[0].IsApproval, "approved debit leads the movement list")
}

func TestNormalizeTransferHbarExactStringAmount(t *testing.T) {
	raw := map[string]any{
		"transfers": []any{
			map[string]any{"accountId": "0.0.2", "amount": "0.00000001"},
		},
	}

	p, err := NormalizeTransferHbar(context.Background(), raw, testContext(nil), &fakeClient{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.Transfers[0].Amount.Tinybar())
}

func TestNormalizeTransferHbarScheduling(t *testing.T) {
	t.Run("waitForExpiry requires expirationTime", func(t *testing.T) {
		raw := map[string]any{
			"transfers": []any{
				map[string]any{"accountId": "0.0.2", "amount": 1.0},
			},
			"isScheduled":   true,
			"waitForExpiry": true,
		}
		_, err := NormalizeTransferHbar(context.Background(), raw, testContext(nil), &fakeClient{})
		require.Error(t, err)
		assert.Equal(t, "waitForExpiry requires expirationTime to be set", err.Error())
	})

	t.Run("full scheduling bundle", func(t *testing.T) {
		raw := map[string]any{
			"transfers": []any{
				map[string]any{"accountId": "0.0.2", "amount": 1.0},
			},
			"isScheduled":    true,
			"adminKey":       testKeyHex,
			"payerAccountId": "0.0.77",
			"expirationTime": "2026-09-01T12:00:00Z",
			"waitForExpiry":  true,
		}
		p, err := NormalizeTransferHbar(context.Background(), raw, testContext(nil), &fakeClient{})
		require.NoError(t, err)
		require.NotNil(t, p.Scheduling)
		assert.True(t, p.Scheduling.WaitForExpiry)
		assert.Equal(t, "0.0.77", p.Scheduling.PayerAccountID.String())
		assert.Equal(t, testKeyHex, p.Scheduling.AdminKey.String())
		require.NotNil(t, p.Scheduling.ExpirationTime)
	})

	t.Run("not scheduled", func(t *testing.T) {
		raw := map[string]any{
			"transfers": []any{
				map[string]any{"accountId": "0.0.2", "amount": 1.0},
			},
		}
		p, err := NormalizeTransferHbar(context.Background(), raw, testContext(nil), &fakeClient{})
		require.NoError(t, err)
		assert.Nil(t, p.Scheduling)
	})
}

func TestNormalizeTransferHbarAggregatesSchemaIssues(t *testing.T) {
	raw := map[string]any{
		"transfers": []any{
			map[string]any{"amount": true},
		},
	}
	_, err := NormalizeTransferHbar(context.Background(), raw, testContext(nil), &fakeClient{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transfers[0].accountId")
	assert.Contains(t, err.Error(), "transfers[0].amount")
}

func TestNormalizeDeleteHbarAllowanceZeroesAmount(t *testing.T) {
	raw := map[string]any{
		"spenderAccountId": "0.0.5",
		// extraneous amount must be ignored on deletion
		"amount": 25.0,
	}
	p, err := NormalizeDeleteHbarAllowance(context.Background(), raw, testContext(nil), &fakeClient{})
	require.NoError(t, err)
	assert.Equal(t, hiero.Hbar(0), p.Amount)
	assert.Equal(t, "0.0.5", p.SpenderAccountID.String())
	assert.Equal(t, "0.0.1001", p.OwnerAccountID.String())
}
