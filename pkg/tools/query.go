package tools

import (
	"context"
	"fmt"

	"github.com/hashkit/hedera-agent-kit/pkg/core"
	"github.com/hashkit/hedera-agent-kit/pkg/hiero"
	"github.com/hashkit/hedera-agent-kit/pkg/params"
	"github.com/hashkit/hedera-agent-kit/pkg/tool"
)

func mirrorFrom(tctx *core.Context) (hiero.MirrorService, error) {
	if tctx == nil || tctx.Mirror == nil {
		return nil, fmt.Errorf("no mirror service configured in context")
	}
	return tctx.Mirror, nil
}

// GetHbarBalanceTool reads an account's HBAR balance.
func GetHbarBalanceTool() *tool.Tool {
	return &tool.Tool{
		Method:      core.MethodGetHbarBalance,
		Name:        "get_hbar_balance",
		Description: "Get the HBAR balance of an account.",
		Parameters:  params.AccountQuerySchema(),
		Normalize: func(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (any, error) {
			return params.NormalizeAccountQuery(ctx, raw, tctx, client)
		},
		Query: func(ctx context.Context, normalized any, tctx *core.Context, client hiero.NetworkClient) (map[string]any, error) {
			p := normalized.(*params.AccountQueryParams)
			mirror, err := mirrorFrom(tctx)
			if err != nil {
				return nil, err
			}
			balance, err := mirror.AccountBalance(ctx, p.AccountID)
			if err != nil {
				return nil, err
			}
			return map[string]any{
				"accountId": p.AccountID.String(),
				"balance":   balance.Decimal().String(),
				"tinybar":   balance.Tinybar(),
			}, nil
		},
		PostProcess: func(normalized any, receipt *hiero.Receipt, raw map[string]any) string {
			p := normalized.(*params.AccountQueryParams)
			return fmt.Sprintf("Account %s holds %s HBAR.", p.AccountID, raw["balance"])
		},
	}
}

// GetAccountInfoTool reads full account details.
func GetAccountInfoTool() *tool.Tool {
	return &tool.Tool{
		Method:      core.MethodGetAccountInfo,
		Name:        "get_account_info",
		Description: "Get the mirror-node view of an account: key, balance, memo.",
		Parameters:  params.AccountQuerySchema(),
		Normalize: func(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (any, error) {
			return params.NormalizeAccountQuery(ctx, raw, tctx, client)
		},
		Query: func(ctx context.Context, normalized any, tctx *core.Context, client hiero.NetworkClient) (map[string]any, error) {
			p := normalized.(*params.AccountQueryParams)
			mirror, err := mirrorFrom(tctx)
			if err != nil {
				return nil, err
			}
			info, err := mirror.AccountInfo(ctx, p.AccountID)
			if err != nil {
				return nil, err
			}
			raw := map[string]any{
				"accountId": info.AccountID.String(),
				"balance":   hiero.HbarFromTinybar(info.BalanceTinybar).Decimal().String(),
				"deleted":   info.Deleted,
			}
			if info.Key != nil {
				raw["key"] = info.Key.String()
			}
			if info.EVMAddress != "" {
				raw["evmAddress"] = info.EVMAddress
			}
			if info.Memo != "" {
				raw["memo"] = info.Memo
			}
			return raw, nil
		},
		PostProcess: func(normalized any, receipt *hiero.Receipt, raw map[string]any) string {
			return fmt.Sprintf("Account %s holds %s HBAR.", raw["accountId"], raw["balance"])
		},
	}
}

// GetTokenInfoTool reads token class details.
func GetTokenInfoTool() *tool.Tool {
	return &tool.Tool{
		Method:      core.MethodGetTokenInfo,
		Name:        "get_token_info",
		Description: "Get the mirror-node view of a token class: name, symbol, decimals, supply.",
		Parameters:  params.TokenQuerySchema(),
		Normalize: func(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (any, error) {
			return params.NormalizeTokenQuery(ctx, raw, tctx, client)
		},
		Query: func(ctx context.Context, normalized any, tctx *core.Context, client hiero.NetworkClient) (map[string]any, error) {
			p := normalized.(*params.TokenQueryParams)
			mirror, err := mirrorFrom(tctx)
			if err != nil {
				return nil, err
			}
			info, err := mirror.TokenInfo(ctx, p.TokenID)
			if err != nil {
				return nil, err
			}
			return map[string]any{
				"tokenId":     info.TokenID.String(),
				"name":        info.Name,
				"symbol":      info.Symbol,
				"decimals":    info.Decimals,
				"totalSupply": info.TotalSupply,
				"type":        string(info.Type),
				"supplyType":  string(info.SupplyType),
				"treasury":    info.Treasury.String(),
			}, nil
		},
		PostProcess: func(normalized any, receipt *hiero.Receipt, raw map[string]any) string {
			return fmt.Sprintf("Token %s: %s (%s), %v decimals, total supply %v.", raw["tokenId"], raw["name"], raw["symbol"], raw["decimals"], raw["totalSupply"])
		},
	}
}

// GetPendingAirdropsTool lists airdrops awaiting a claim by the account.
func GetPendingAirdropsTool() *tool.Tool {
	return &tool.Tool{
		Method:      core.MethodGetPendingAirdrops,
		Name:        "get_pending_airdrops",
		Description: "List the pending token airdrops awaiting a claim by an account.",
		Parameters:  params.AccountQuerySchema(),
		Normalize: func(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (any, error) {
			return params.NormalizeAccountQuery(ctx, raw, tctx, client)
		},
		Query: func(ctx context.Context, normalized any, tctx *core.Context, client hiero.NetworkClient) (map[string]any, error) {
			p := normalized.(*params.AccountQueryParams)
			mirror, err := mirrorFrom(tctx)
			if err != nil {
				return nil, err
			}
			pending, err := mirror.PendingAirdrops(ctx, p.AccountID)
			if err != nil {
				return nil, err
			}
			entries := make([]map[string]any, 0, len(pending))
			for _, pa := range pending {
				entry := map[string]any{
					"senderId": pa.SenderID.String(),
					"tokenId":  pa.TokenID.String(),
					"amount":   pa.Amount,
				}
				if pa.Serial != nil {
					entry["serial"] = *pa.Serial
				}
				entries = append(entries, entry)
			}
			return map[string]any{
				"accountId": p.AccountID.String(),
				"airdrops":  entries,
			}, nil
		},
		PostProcess: func(normalized any, receipt *hiero.Receipt, raw map[string]any) string {
			p := normalized.(*params.AccountQueryParams)
			airdrops := raw["airdrops"].([]map[string]any)
			if len(airdrops) == 0 {
				return fmt.Sprintf("Account %s has no pending airdrops.", p.AccountID)
			}
			return fmt.Sprintf("Account %s has %d pending airdrops.", p.AccountID, len(airdrops))
		},
	}
}

// GetTransactionRecordTool reads a finalized transaction's record.
func GetTransactionRecordTool() *tool.Tool {
	return &tool.Tool{
		Method:      core.MethodGetTransactionRecord,
		Name:        "get_transaction_record",
		Description: "Get the finalized record of a transaction by its id.",
		Parameters:  params.TransactionQuerySchema(),
		Normalize: func(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (any, error) {
			return params.NormalizeTransactionQuery(ctx, raw, tctx, client)
		},
		Query: func(ctx context.Context, normalized any, tctx *core.Context, client hiero.NetworkClient) (map[string]any, error) {
			p := normalized.(*params.TransactionQueryParams)
			mirror, err := mirrorFrom(tctx)
			if err != nil {
				return nil, err
			}
			record, err := mirror.TransactionRecord(ctx, p.TransactionID.MirrorFormat())
			if err != nil {
				return nil, err
			}
			raw := map[string]any{
				"transactionId":      record.TransactionID,
				"receiptStatus":      string(record.Status),
				"consensusTimestamp": record.ConsensusTimestamp,
			}
			if record.Memo != "" {
				raw["memo"] = record.Memo
			}
			if len(record.Transfers) > 0 {
				transfers := make([]map[string]any, 0, len(record.Transfers))
				for _, t := range record.Transfers {
					transfers = append(transfers, map[string]any{
						"accountId": t.AccountID.String(),
						"amount":    t.Amount.Tinybar(),
					})
				}
				raw["transfers"] = transfers
			}
			return raw, nil
		},
		PostProcess: func(normalized any, receipt *hiero.Receipt, raw map[string]any) string {
			return fmt.Sprintf("Transaction %s finalized with status %s at %s.", raw["transactionId"], raw["receiptStatus"], raw["consensusTimestamp"])
		},
	}
}
