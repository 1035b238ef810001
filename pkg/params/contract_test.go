package params

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeExecuteContractFromSignature(t *testing.T) {
	p, err := NormalizeExecuteContract(context.Background(), map[string]any{
		"contractId":   "0.0.9000",
		"functionName": "transfer(address,uint256)",
		"functionParameters": []any{
			"0x742d35Cc6634C0532925a3b844Bc454e4438f44e",
			"1000",
		},
	}, testContext(nil), &fakeClient{})
	require.NoError(t, err)

	assert.Equal(t, "transfer", p.FunctionName)
	assert.Equal(t, uint64(100_000), p.Gas, "default gas limit")
	// selector of transfer(address,uint256)
	require.True(t, len(p.Calldata) >= 4)
	assert.Equal(t, "a9059cbb", hex.EncodeToString(p.Calldata[:4]))
	assert.Len(t, p.Calldata, 4+32+32, "two ABI words follow the selector")
}

func TestNormalizeExecuteContractFromRawData(t *testing.T) {
	p, err := NormalizeExecuteContract(context.Background(), map[string]any{
		"contractId": "0.0.9000",
		"data":       "deadbeef",
	}, testContext(nil), &fakeClient{})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, p.Calldata)
	assert.Empty(t, p.FunctionName)
}

func TestNormalizeExecuteContractCalldataRules(t *testing.T) {
	t.Run("both given", func(t *testing.T) {
		_, err := NormalizeExecuteContract(context.Background(), map[string]any{
			"contractId":   "0.0.9000",
			"functionName": "foo()",
			"data":         "0x00",
		}, testContext(nil), &fakeClient{})
		require.Error(t, err)
		assert.Equal(t, "functionName and data are mutually exclusive", err.Error())
	})

	t.Run("neither given", func(t *testing.T) {
		_, err := NormalizeExecuteContract(context.Background(), map[string]any{
			"contractId": "0.0.9000",
		}, testContext(nil), &fakeClient{})
		require.Error(t, err)
		assert.Equal(t, "either functionName or data must be provided", err.Error())
	})

	t.Run("argument count mismatch", func(t *testing.T) {
		_, err := NormalizeExecuteContract(context.Background(), map[string]any{
			"contractId":         "0.0.9000",
			"functionName":       "transfer(address,uint256)",
			"functionParameters": []any{"0x742d35Cc6634C0532925a3b844Bc454e4438f44e"},
		}, testContext(nil), &fakeClient{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expects 2 arguments, got 1")
	})

	t.Run("malformed signature", func(t *testing.T) {
		_, err := NormalizeExecuteContract(context.Background(), map[string]any{
			"contractId":   "0.0.9000",
			"functionName": "not-a-signature",
		}, testContext(nil), &fakeClient{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid function signature")
	})
}

func TestNormalizeExecuteContractArgumentCoercion(t *testing.T) {
	t.Run("bool and string and bytes", func(t *testing.T) {
		p, err := NormalizeExecuteContract(context.Background(), map[string]any{
			"contractId":         "0.0.9000",
			"functionName":       "configure(bool,string,bytes)",
			"functionParameters": []any{true, "hello", "0x0102"},
		}, testContext(nil), &fakeClient{})
		require.NoError(t, err)
		assert.True(t, len(p.Calldata) > 4)
	})

	t.Run("small uint from float", func(t *testing.T) {
		_, err := NormalizeExecuteContract(context.Background(), map[string]any{
			"contractId":         "0.0.9000",
			"functionName":       "setLevel(uint8)",
			"functionParameters": []any{7.0},
		}, testContext(nil), &fakeClient{})
		require.NoError(t, err)
	})

	t.Run("fractional integer rejected", func(t *testing.T) {
		_, err := NormalizeExecuteContract(context.Background(), map[string]any{
			"contractId":         "0.0.9000",
			"functionName":       "setLevel(uint8)",
			"functionParameters": []any{7.5},
		}, testContext(nil), &fakeClient{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must not be fractional")
	})

	t.Run("out of range uint8 rejected", func(t *testing.T) {
		_, err := NormalizeExecuteContract(context.Background(), map[string]any{
			"contractId":         "0.0.9000",
			"functionName":       "setLevel(uint8)",
			"functionParameters": []any{"300"},
		}, testContext(nil), &fakeClient{})
		require.Error(t, err)
	})

	t.Run("bad address rejected", func(t *testing.T) {
		_, err := NormalizeExecuteContract(context.Background(), map[string]any{
			"contractId":         "0.0.9000",
			"functionName":       "transfer(address,uint256)",
			"functionParameters": []any{"not-an-address", "1"},
		}, testContext(nil), &fakeClient{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid address")
	})
}

func TestNormalizeCallContract(t *testing.T) {
	p, err := NormalizeCallContract(context.Background(), map[string]any{
		"contractId":         "0.0.9000",
		"functionName":       "balanceOf(address)",
		"functionParameters": []any{"0x742d35Cc6634C0532925a3b844Bc454e4438f44e"},
	}, testContext(nil), &fakeClient{})
	require.NoError(t, err)
	assert.Equal(t, "balanceOf", p.FunctionName)
	assert.Equal(t, "70a08231", hex.EncodeToString(p.Calldata[:4]))
}
