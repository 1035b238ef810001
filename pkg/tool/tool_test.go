package tool

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashkit/hedera-agent-kit/pkg/core"
	"github.com/hashkit/hedera-agent-kit/pkg/hiero"
	"github.com/hashkit/hedera-agent-kit/pkg/params"
	"github.com/hashkit/hedera-agent-kit/pkg/schema"
)

// stubClient returns a canned status for every submission.
type stubClient struct {
	status  hiero.Status
	submits int
}

func (c *stubClient) OperatorAccountID() (hiero.AccountID, bool) {
	id, _ := hiero.ParseAccountID("0.0.9999")
	return id, true
}

func (c *stubClient) OperatorPublicKey() (hiero.PublicKey, bool) {
	return hiero.PublicKey{}, false
}

func (c *stubClient) LedgerID() string { return "testnet" }

func (c *stubClient) Submit(ctx context.Context, tx *hiero.Transaction) (*hiero.Receipt, error) {
	c.submits++
	status := c.status
	if status == "" {
		status = hiero.StatusSuccess
	}
	return &hiero.Receipt{Status: status, TransactionID: *tx.TransactionID()}, nil
}

// blockEverything vetoes at a single configurable point.
type blockEverything struct {
	point core.ExecutionPoint
}

func (p *blockEverything) Name() string                 { return "block-everything" }
func (p *blockEverything) Description() string          { return "test veto" }
func (p *blockEverything) RelevantTools() []core.Method { return nil }

func (p *blockEverything) AffectedPoints() []core.ExecutionPoint {
	return []core.ExecutionPoint{p.point}
}

func (p *blockEverything) ShouldBlock(point core.ExecutionPoint, method core.Method, subject any) bool {
	return true
}

func echoSchema() *schema.Object {
	return schema.NewObject(schema.String("note", "Free-form note."))
}

// writeTool builds a balanced two-leg transfer regardless of input.
func writeTool(t *testing.T) *Tool {
	t.Helper()
	return &Tool{
		Method:      core.MethodTransferHbar,
		Name:        "transfer_hbar",
		Description: "Transfer HBAR between accounts.",
		Parameters:  echoSchema(),
		Normalize: func(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (any, error) {
			return raw, nil
		},
		Build: func(normalized any) (*hiero.Transaction, *params.Scheduling, error) {
			a, err := hiero.ParseAccountID("0.0.2")
			if err != nil {
				return nil, nil, err
			}
			b, err := hiero.ParseAccountID("0.0.3")
			if err != nil {
				return nil, nil, err
			}
			body := &hiero.CryptoTransferBody{}
			body.AddHbarTransfer(a, hiero.HbarFromTinybar(1))
			body.AddHbarTransfer(b, hiero.HbarFromTinybar(-1))
			return hiero.NewTransaction(body), nil, nil
		},
		PostProcess: func(normalized any, receipt *hiero.Receipt, raw map[string]any) string {
			return fmt.Sprintf("HBAR successfully transferred. Transaction id %s.", receipt.TransactionID)
		},
	}
}

func TestExecuteWriteSuccess(t *testing.T) {
	client := &stubClient{}
	result := NewExecutor(nil).Execute(context.Background(), writeTool(t), &core.Context{AccountID: "0.0.1001"}, client, map[string]any{})

	assert.False(t, result.IsBlocked())
	assert.Equal(t, "SUCCESS", result.Raw["status"])
	assert.NotEmpty(t, result.Raw["transactionId"])
	assert.Contains(t, result.HumanMessage, "successfully transferred")
	assert.Equal(t, 1, client.submits)
}

func TestExecuteReturnBytesMode(t *testing.T) {
	client := &stubClient{}
	tctx := &core.Context{Mode: core.ReturnBytesMode, AccountID: "0.0.1001"}
	result := NewExecutor(nil).Execute(context.Background(), writeTool(t), tctx, client, map[string]any{})

	assert.True(t, result.IsBytes())
	assert.Zero(t, client.submits)
	assert.Contains(t, result.HumanMessage, "external signing")
}

func TestExecuteNormalizationErrorFolded(t *testing.T) {
	tool := writeTool(t)
	tool.Normalize = func(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (any, error) {
		return nil, core.NewBusinessRuleError("Invalid transfer amount: -2")
	}
	result := NewExecutor(nil).Execute(context.Background(), tool, &core.Context{AccountID: "0.0.1001"}, &stubClient{}, map[string]any{})

	assert.Equal(t, "Invalid transfer amount: -2", result.HumanMessage)
	assert.Equal(t, core.RawStatusError, result.Raw["status"])
	assert.Equal(t, "Invalid transfer amount: -2", result.Raw["error"])
}

func TestExecutePolicyVeto(t *testing.T) {
	for _, point := range []core.ExecutionPoint{
		core.PreToolExecution,
		core.PostParamsNormalization,
		core.PostAction,
		core.PostSubmit,
	} {
		t.Run(string(point), func(t *testing.T) {
			tctx := &core.Context{
				AccountID: "0.0.1001",
				Policies:  []core.Policy{&blockEverything{point: point}},
			}
			result := NewExecutor(nil).Execute(context.Background(), writeTool(t), tctx, &stubClient{}, map[string]any{})

			assert.True(t, result.IsBlocked())
			assert.Equal(t, "block-everything", result.BlockedBy)
			assert.Contains(t, result.HumanMessage, string(point))
		})
	}
}

// recordingPolicy captures the subject it is invoked with, without vetoing.
type recordingPolicy struct {
	point    core.ExecutionPoint
	subjects []any
}

func (p *recordingPolicy) Name() string                 { return "recording" }
func (p *recordingPolicy) Description() string          { return "records subjects" }
func (p *recordingPolicy) RelevantTools() []core.Method { return nil }

func (p *recordingPolicy) AffectedPoints() []core.ExecutionPoint {
	return []core.ExecutionPoint{p.point}
}

func (p *recordingPolicy) ShouldBlock(point core.ExecutionPoint, method core.Method, subject any) bool {
	p.subjects = append(p.subjects, subject)
	return false
}

func TestExecuteFinalGateSeesShapedResult(t *testing.T) {
	recorder := &recordingPolicy{point: core.PostSubmit}
	tctx := &core.Context{
		AccountID: "0.0.1001",
		Policies:  []core.Policy{recorder},
	}
	client := &stubClient{}
	result := NewExecutor(nil).Execute(context.Background(), writeTool(t), tctx, client, map[string]any{})

	require.Len(t, recorder.subjects, 1)
	final, ok := recorder.subjects[0].(*core.ExecutionResult)
	require.True(t, ok, "last policy stage receives the finalised result, got %T", recorder.subjects[0])
	assert.Equal(t, result, final)
	assert.Equal(t, "SUCCESS", final.Raw["status"])
	assert.NotEmpty(t, final.Raw["transactionId"])
	assert.Contains(t, final.HumanMessage, "successfully transferred")
}

func TestExecuteQueryPathRunsFinalGate(t *testing.T) {
	tool := &Tool{
		Method:      core.MethodGetHbarBalance,
		Name:        "get_hbar_balance",
		Description: "Look up an account's HBAR balance.",
		Parameters:  echoSchema(),
		Normalize: func(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (any, error) {
			return raw, nil
		},
		Query: func(ctx context.Context, normalized any, tctx *core.Context, client hiero.NetworkClient) (map[string]any, error) {
			return map[string]any{"hbarBalance": "12.5"}, nil
		},
	}
	tctx := &core.Context{
		AccountID: "0.0.1001",
		Policies:  []core.Policy{&blockEverything{point: core.PostSubmit}},
	}
	result := NewExecutor(nil).Execute(context.Background(), tool, tctx, &stubClient{}, map[string]any{})

	assert.True(t, result.IsBlocked())
	assert.Equal(t, "block-everything", result.BlockedBy)
}

func TestExecuteFailedStatusIsAResultNotAnError(t *testing.T) {
	client := &stubClient{status: hiero.StatusInsufficientBalance}
	result := NewExecutor(nil).Execute(context.Background(), writeTool(t), &core.Context{AccountID: "0.0.1001"}, client, map[string]any{})

	assert.Equal(t, "INSUFFICIENT_PAYER_BALANCE", result.Raw["status"])
	assert.Equal(t, "Transaction failed with status INSUFFICIENT_PAYER_BALANCE", result.HumanMessage)
	assert.False(t, result.IsBlocked())
}

func TestExecuteQueryPath(t *testing.T) {
	tool := &Tool{
		Method:      core.MethodGetHbarBalance,
		Name:        "get_hbar_balance",
		Description: "Look up an account's HBAR balance.",
		Parameters:  echoSchema(),
		Normalize: func(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (any, error) {
			return raw, nil
		},
		Query: func(ctx context.Context, normalized any, tctx *core.Context, client hiero.NetworkClient) (map[string]any, error) {
			return map[string]any{"hbarBalance": "12.5"}, nil
		},
	}
	client := &stubClient{}
	result := NewExecutor(nil).Execute(context.Background(), tool, &core.Context{AccountID: "0.0.1001"}, client, map[string]any{})

	assert.Equal(t, "SUCCESS", result.Raw["status"])
	assert.Equal(t, "12.5", result.Raw["hbarBalance"])
	assert.Zero(t, client.submits, "queries never touch the write path")
	assert.Contains(t, result.HumanMessage, "get_hbar_balance")
}

func TestExecuteRecoversFromPanic(t *testing.T) {
	tool := writeTool(t)
	tool.Normalize = func(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (any, error) {
		panic("boom")
	}
	result := NewExecutor(nil).Execute(context.Background(), tool, &core.Context{AccountID: "0.0.1001"}, &stubClient{}, map[string]any{})

	require.NotNil(t, result)
	assert.Contains(t, result.HumanMessage, "internal error executing transfer_hbar")
	assert.Contains(t, result.HumanMessage, "boom")
}

func TestExecuteNilContextDefaultsToAutonomous(t *testing.T) {
	client := &stubClient{}
	result := NewExecutor(nil).Execute(context.Background(), writeTool(t), nil, client, map[string]any{})

	assert.Equal(t, "SUCCESS", result.Raw["status"], "operator account backs the payer when no context is given")
	assert.Equal(t, 1, client.submits)
}
