// Package tools assembles the built-in tool catalog: one tool.Tool per
// supported operation, wiring normalisers, transaction factories and
// result post-processing together.
package tools

import (
	"context"
	"fmt"

	"github.com/hashkit/hedera-agent-kit/pkg/builder"
	"github.com/hashkit/hedera-agent-kit/pkg/core"
	"github.com/hashkit/hedera-agent-kit/pkg/hiero"
	"github.com/hashkit/hedera-agent-kit/pkg/params"
	"github.com/hashkit/hedera-agent-kit/pkg/tool"
)

// TransferHbarTool moves HBAR between accounts.
func TransferHbarTool() *tool.Tool {
	return &tool.Tool{
		Method:      core.MethodTransferHbar,
		Name:        "transfer_hbar",
		Description: "Transfer HBAR from the source account to one or more recipients.",
		Parameters:  params.TransferHbarSchema(),
		Normalize: func(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (any, error) {
			return params.NormalizeTransferHbar(ctx, raw, tctx, client)
		},
		Build: func(normalized any) (*hiero.Transaction, *params.Scheduling, error) {
			p := normalized.(*params.TransferHbarParams)
			tx, err := builder.BuildTransferHbar(p)
			return tx, p.Scheduling, err
		},
		PostProcess: func(normalized any, receipt *hiero.Receipt, raw map[string]any) string {
			return fmt.Sprintf("HBAR successfully transferred. Transaction id %s.", receipt.TransactionID)
		},
	}
}

// CreateAccountTool creates a new account.
func CreateAccountTool() *tool.Tool {
	return &tool.Tool{
		Method:      core.MethodCreateAccount,
		Name:        "create_account",
		Description: "Create a new Hedera account controlled by the given public key.",
		Parameters:  params.CreateAccountSchema(),
		Normalize: func(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (any, error) {
			return params.NormalizeCreateAccount(ctx, raw, tctx, client)
		},
		Build: func(normalized any) (*hiero.Transaction, *params.Scheduling, error) {
			p := normalized.(*params.CreateAccountParams)
			tx, err := builder.BuildCreateAccount(p)
			return tx, p.Scheduling, err
		},
		PostProcess: func(normalized any, receipt *hiero.Receipt, raw map[string]any) string {
			if receipt.AccountID != nil {
				raw["accountId"] = receipt.AccountID.String()
				return fmt.Sprintf("Successfully created account %s. Transaction id %s.", receipt.AccountID, receipt.TransactionID)
			}
			return fmt.Sprintf("Successfully created account. Transaction id %s.", receipt.TransactionID)
		},
	}
}

// DeleteAccountTool deletes an account, sweeping its balance.
func DeleteAccountTool() *tool.Tool {
	return &tool.Tool{
		Method:      core.MethodDeleteAccount,
		Name:        "delete_account",
		Description: "Delete an account and transfer its remaining balance to another account.",
		Parameters:  params.DeleteAccountSchema(),
		Normalize: func(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (any, error) {
			return params.NormalizeDeleteAccount(ctx, raw, tctx, client)
		},
		Build: func(normalized any) (*hiero.Transaction, *params.Scheduling, error) {
			p := normalized.(*params.DeleteAccountParams)
			tx, err := builder.BuildDeleteAccount(p)
			return tx, p.Scheduling, err
		},
		PostProcess: func(normalized any, receipt *hiero.Receipt, raw map[string]any) string {
			p := normalized.(*params.DeleteAccountParams)
			return fmt.Sprintf("Successfully deleted account %s. Transaction id %s.", p.DeleteAccountID, receipt.TransactionID)
		},
	}
}

// ApproveHbarAllowanceTool grants an HBAR spending allowance.
func ApproveHbarAllowanceTool() *tool.Tool {
	return &tool.Tool{
		Method:      core.MethodApproveHbarAllowance,
		Name:        "approve_hbar_allowance",
		Description: "Approve an HBAR allowance for a spender account.",
		Parameters:  params.ApproveHbarAllowanceSchema(),
		Normalize: func(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (any, error) {
			return params.NormalizeApproveHbarAllowance(ctx, raw, tctx, client)
		},
		Build:       buildHbarAllowance,
		PostProcess: hbarAllowanceMessage("Successfully approved HBAR allowance of %s for spender %s. Transaction id %s."),
	}
}

// DeleteHbarAllowanceTool revokes an HBAR spending allowance.
func DeleteHbarAllowanceTool() *tool.Tool {
	return &tool.Tool{
		Method:      core.MethodDeleteHbarAllowance,
		Name:        "delete_hbar_allowance",
		Description: "Revoke a previously approved HBAR allowance (sets it to zero).",
		Parameters:  params.DeleteHbarAllowanceSchema(),
		Normalize: func(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (any, error) {
			return params.NormalizeDeleteHbarAllowance(ctx, raw, tctx, client)
		},
		Build: buildHbarAllowance,
		PostProcess: func(normalized any, receipt *hiero.Receipt, raw map[string]any) string {
			p := normalized.(*params.HbarAllowanceParams)
			return fmt.Sprintf("Successfully revoked HBAR allowance for spender %s. Transaction id %s.", p.SpenderAccountID, receipt.TransactionID)
		},
	}
}

func buildHbarAllowance(normalized any) (*hiero.Transaction, *params.Scheduling, error) {
	p := normalized.(*params.HbarAllowanceParams)
	tx, err := builder.BuildHbarAllowance(p)
	return tx, p.Scheduling, err
}

func hbarAllowanceMessage(format string) tool.PostProcessFunc {
	return func(normalized any, receipt *hiero.Receipt, raw map[string]any) string {
		p := normalized.(*params.HbarAllowanceParams)
		return fmt.Sprintf(format, p.Amount, p.SpenderAccountID, receipt.TransactionID)
	}
}
