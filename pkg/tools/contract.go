package tools

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/hashkit/hedera-agent-kit/pkg/builder"
	"github.com/hashkit/hedera-agent-kit/pkg/core"
	"github.com/hashkit/hedera-agent-kit/pkg/hiero"
	"github.com/hashkit/hedera-agent-kit/pkg/params"
	"github.com/hashkit/hedera-agent-kit/pkg/tool"
)

// ExecuteContractTool calls a contract function on the write path.
func ExecuteContractTool() *tool.Tool {
	return &tool.Tool{
		Method:      core.MethodExecuteContract,
		Name:        "execute_contract",
		Description: "Execute a smart contract function, optionally sending HBAR along with the call.",
		Parameters:  params.ExecuteContractSchema(),
		Normalize: func(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (any, error) {
			return params.NormalizeExecuteContract(ctx, raw, tctx, client)
		},
		Build: func(normalized any) (*hiero.Transaction, *params.Scheduling, error) {
			p := normalized.(*params.ExecuteContractParams)
			tx, err := builder.BuildExecuteContract(p)
			return tx, p.Scheduling, err
		},
		PostProcess: func(normalized any, receipt *hiero.Receipt, raw map[string]any) string {
			p := normalized.(*params.ExecuteContractParams)
			if p.FunctionName != "" {
				return fmt.Sprintf("Successfully executed %s on contract %s. Transaction id %s.", p.FunctionName, p.ContractID, receipt.TransactionID)
			}
			return fmt.Sprintf("Successfully executed contract %s. Transaction id %s.", p.ContractID, receipt.TransactionID)
		},
	}
}

// CallContractTool evaluates a read-only contract call on the mirror node.
func CallContractTool() *tool.Tool {
	return &tool.Tool{
		Method:      core.MethodCallContract,
		Name:        "call_contract",
		Description: "Call a smart contract function read-only via the mirror node; no transaction is submitted.",
		Parameters:  params.CallContractSchema(),
		Normalize: func(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (any, error) {
			return params.NormalizeCallContract(ctx, raw, tctx, client)
		},
		Query: func(ctx context.Context, normalized any, tctx *core.Context, client hiero.NetworkClient) (map[string]any, error) {
			p := normalized.(*params.CallContractParams)
			if tctx == nil || tctx.Mirror == nil {
				return nil, fmt.Errorf("no mirror service configured in context")
			}
			result, err := tctx.Mirror.ContractCall(ctx, hiero.ContractCallRequest{
				ContractID: p.ContractID,
				Data:       p.Calldata,
			})
			if err != nil {
				return nil, err
			}
			return map[string]any{
				"contractId": p.ContractID.String(),
				"result":     hexutil.Encode(result),
			}, nil
		},
		PostProcess: func(normalized any, receipt *hiero.Receipt, raw map[string]any) string {
			p := normalized.(*params.CallContractParams)
			return fmt.Sprintf("Contract %s returned %s.", p.ContractID, raw["result"])
		},
	}
}
