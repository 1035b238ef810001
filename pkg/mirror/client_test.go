package mirror

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashkit/hedera-agent-kit/pkg/hiero"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL, nil)
	c.SetHTTPClient(srv.Client())
	return c
}

func account(t *testing.T, s string) hiero.AccountID {
	t.Helper()
	id, err := hiero.ParseAccountID(s)
	require.NoError(t, err)
	return id
}

func TestAccountInfo(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/accounts/0.0.1001", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"account": "0.0.1001",
			"balance": map[string]any{"balance": 250_000_000},
			"key": map[string]any{
				"key": "aa11bb22cc33dd44ee55ff66aa77bb88cc99dd00ee11ff22aa33bb44cc55dd66",
			},
			"memo": "operator",
		})
	})

	info, err := c.AccountInfo(context.Background(), account(t, "0.0.1001"))
	require.NoError(t, err)
	assert.Equal(t, "0.0.1001", info.AccountID.String())
	assert.Equal(t, int64(250_000_000), info.BalanceTinybar)
	assert.Equal(t, "operator", info.Memo)
	require.NotNil(t, info.Key)

	balance, err := c.AccountBalance(context.Background(), account(t, "0.0.1001"))
	require.NoError(t, err)
	assert.Equal(t, "2.5 hbar", balance.String())
}

func TestAccountInfoNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"_status":{"messages":[{"message":"Not found"}]}}`, http.StatusNotFound)
	})

	_, err := c.AccountInfo(context.Background(), account(t, "0.0.404"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestTokenInfoParsesStringNumerics(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/tokens/0.0.500", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"token_id":            "0.0.500",
			"name":                "Demo Coin",
			"symbol":              "DMO",
			"decimals":            "6",
			"total_supply":        "1000000000",
			"type":                "FUNGIBLE_COMMON",
			"supply_type":         "FINITE",
			"treasury_account_id": "0.0.1001",
		})
	})

	tokenID, err := hiero.ParseTokenID("0.0.500")
	require.NoError(t, err)
	info, err := c.TokenInfo(context.Background(), tokenID)
	require.NoError(t, err)

	assert.Equal(t, uint32(6), info.Decimals)
	assert.Equal(t, uint64(1_000_000_000), info.TotalSupply)
	assert.Equal(t, hiero.TokenTypeFungible, info.Type)
	assert.Equal(t, hiero.SupplyTypeFinite, info.SupplyType)
	assert.Equal(t, "0.0.1001", info.Treasury.String())
}

func TestPendingAirdropsPreservesOrder(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/accounts/0.0.1001/airdrops/pending", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"airdrops": []map[string]any{
				{"amount": 100, "receiver_id": "0.0.1001", "sender_id": "0.0.7", "token_id": "0.0.500"},
				{"amount": 1, "receiver_id": "0.0.1001", "sender_id": "0.0.8", "token_id": "0.0.600", "serial_number": 9},
			},
		})
	})

	airdrops, err := c.PendingAirdrops(context.Background(), account(t, "0.0.1001"))
	require.NoError(t, err)
	require.Len(t, airdrops, 2)
	assert.Equal(t, "0.0.500", airdrops[0].TokenID.String())
	assert.Nil(t, airdrops[0].Serial)
	assert.Equal(t, "0.0.600", airdrops[1].TokenID.String())
	require.NotNil(t, airdrops[1].Serial)
	assert.Equal(t, int64(9), *airdrops[1].Serial)
}

func TestTransactionRecordDecodesMemo(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/transactions/0.0.5005-1700000000-123456789", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"transactions": []map[string]any{{
				"transaction_id":      "0.0.5005-1700000000-123456789",
				"result":              "SUCCESS",
				"consensus_timestamp": "1700000001.000000000",
				"memo_base64":         "cGF5bWVudA==",
				"transfers": []map[string]any{
					{"account": "0.0.2", "amount": 100},
					{"account": "0.0.5005", "amount": -100, "is_approval": true},
				},
			}},
		})
	})

	record, err := c.TransactionRecord(context.Background(), "0.0.5005-1700000000-123456789")
	require.NoError(t, err)
	assert.Equal(t, hiero.StatusSuccess, record.Status)
	assert.Equal(t, "payment", record.Memo)
	require.Len(t, record.Transfers, 2)
	assert.True(t, record.Transfers[1].IsApproval)
}

func TestTransactionRecordEmptyListing(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"transactions": []any{}})
	})

	_, err := c.TransactionRecord(context.Background(), "0.0.5005-1700000000-123456789")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestContractCall(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/contracts/call", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "0xdeadbeef", req["data"])
		// long-zero address of contract 0.0.9000
		assert.Equal(t, "0x0000000000000000000000000000000000002328", req["to"])

		json.NewEncoder(w).Encode(map[string]any{"result": "0x002a"})
	})

	contractID, err := hiero.ParseContractID("0.0.9000")
	require.NoError(t, err)
	out, err := c.ContractCall(context.Background(), hiero.ContractCallRequest{
		ContractID: contractID,
		Data:       []byte{0xde, 0xad, 0xbe, 0xef},
	})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x2a}, out)
}
