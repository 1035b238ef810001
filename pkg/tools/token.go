package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashkit/hedera-agent-kit/pkg/builder"
	"github.com/hashkit/hedera-agent-kit/pkg/core"
	"github.com/hashkit/hedera-agent-kit/pkg/hiero"
	"github.com/hashkit/hedera-agent-kit/pkg/params"
	"github.com/hashkit/hedera-agent-kit/pkg/tool"
)

// CreateFungibleTokenTool creates a fungible token class.
func CreateFungibleTokenTool() *tool.Tool {
	return &tool.Tool{
		Method:      core.MethodCreateFungibleToken,
		Name:        "create_fungible_token",
		Description: "Create a fungible token with the given name, symbol, decimals and supply.",
		Parameters:  params.CreateFungibleTokenSchema(),
		Normalize: func(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (any, error) {
			return params.NormalizeCreateFungibleToken(ctx, raw, tctx, client)
		},
		Build:       buildCreateToken,
		PostProcess: createTokenMessage,
	}
}

// CreateNonFungibleTokenTool creates an NFT class.
func CreateNonFungibleTokenTool() *tool.Tool {
	return &tool.Tool{
		Method:      core.MethodCreateNonFungibleToken,
		Name:        "create_non_fungible_token",
		Description: "Create a non-fungible token class with a capped number of serials.",
		Parameters:  params.CreateNonFungibleTokenSchema(),
		Normalize: func(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (any, error) {
			return params.NormalizeCreateNonFungibleToken(ctx, raw, tctx, client)
		},
		Build:       buildCreateToken,
		PostProcess: createTokenMessage,
	}
}

func buildCreateToken(normalized any) (*hiero.Transaction, *params.Scheduling, error) {
	p := normalized.(*params.CreateTokenParams)
	tx, err := builder.BuildCreateToken(p)
	return tx, p.Scheduling, err
}

func createTokenMessage(normalized any, receipt *hiero.Receipt, raw map[string]any) string {
	p := normalized.(*params.CreateTokenParams)
	if receipt.TokenID != nil {
		raw["tokenId"] = receipt.TokenID.String()
		return fmt.Sprintf("Successfully created token %s (%s) with id %s. Transaction id %s.", p.Name, p.Symbol, receipt.TokenID, receipt.TransactionID)
	}
	return fmt.Sprintf("Successfully created token %s (%s). Transaction id %s.", p.Name, p.Symbol, receipt.TransactionID)
}

// MintFungibleTokenTool mints additional fungible supply.
func MintFungibleTokenTool() *tool.Tool {
	return &tool.Tool{
		Method:      core.MethodMintFungibleToken,
		Name:        "mint_fungible_token",
		Description: "Mint additional supply of a fungible token to its treasury.",
		Parameters:  params.MintFungibleTokenSchema(),
		Normalize: func(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (any, error) {
			return params.NormalizeMintFungibleToken(ctx, raw, tctx, client)
		},
		Build: func(normalized any) (*hiero.Transaction, *params.Scheduling, error) {
			p := normalized.(*params.MintTokenParams)
			tx, err := builder.BuildMintFungibleToken(p)
			return tx, p.Scheduling, err
		},
		PostProcess: func(normalized any, receipt *hiero.Receipt, raw map[string]any) string {
			p := normalized.(*params.MintTokenParams)
			if receipt.TotalSupply > 0 {
				raw["totalSupply"] = receipt.TotalSupply
			}
			return fmt.Sprintf("Successfully minted token %s. Transaction id %s.", p.TokenID, receipt.TransactionID)
		},
	}
}

// MintNFTTool mints NFT serials.
func MintNFTTool() *tool.Tool {
	return &tool.Tool{
		Method:      core.MethodMintNFT,
		Name:        "mint_nft",
		Description: "Mint one NFT serial per metadata URI into an existing NFT class.",
		Parameters:  params.MintNFTSchema(),
		Normalize: func(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (any, error) {
			return params.NormalizeMintNFT(ctx, raw, tctx, client)
		},
		Build: func(normalized any) (*hiero.Transaction, *params.Scheduling, error) {
			p := normalized.(*params.MintNFTParams)
			tx, err := builder.BuildMintNFT(p)
			return tx, p.Scheduling, err
		},
		PostProcess: func(normalized any, receipt *hiero.Receipt, raw map[string]any) string {
			p := normalized.(*params.MintNFTParams)
			if len(receipt.SerialNumbers) > 0 {
				raw["serialNumbers"] = receipt.SerialNumbers
			}
			return fmt.Sprintf("Successfully minted %d serials of NFT %s. Transaction id %s.", len(p.Metadata), p.TokenID, receipt.TransactionID)
		},
	}
}

// TransferFungibleTokenTool moves fungible tokens between accounts.
func TransferFungibleTokenTool() *tool.Tool {
	return &tool.Tool{
		Method:      core.MethodTransferFungibleToken,
		Name:        "transfer_fungible_token",
		Description: "Transfer a fungible token from the source account to one or more recipients.",
		Parameters:  params.TransferFungibleTokenSchema(),
		Normalize: func(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (any, error) {
			return params.NormalizeTransferFungibleToken(ctx, raw, tctx, client)
		},
		Build: func(normalized any) (*hiero.Transaction, *params.Scheduling, error) {
			p := normalized.(*params.TransferTokenParams)
			tx, err := builder.BuildTransferFungibleToken(p)
			return tx, p.Scheduling, err
		},
		PostProcess: func(normalized any, receipt *hiero.Receipt, raw map[string]any) string {
			p := normalized.(*params.TransferTokenParams)
			return fmt.Sprintf("Successfully transferred token %s. Transaction id %s.", p.TokenID, receipt.TransactionID)
		},
	}
}

// TransferNFTTool moves NFT serials between accounts.
func TransferNFTTool() *tool.Tool {
	return &tool.Tool{
		Method:      core.MethodTransferNFT,
		Name:        "transfer_nft",
		Description: "Transfer NFT serials from their owner to a receiver account.",
		Parameters:  params.TransferNFTSchema(),
		Normalize: func(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (any, error) {
			return params.NormalizeTransferNFT(ctx, raw, tctx, client)
		},
		Build: func(normalized any) (*hiero.Transaction, *params.Scheduling, error) {
			p := normalized.(*params.TransferNFTParams)
			tx, err := builder.BuildTransferNFT(p)
			return tx, p.Scheduling, err
		},
		PostProcess: func(normalized any, receipt *hiero.Receipt, raw map[string]any) string {
			p := normalized.(*params.TransferNFTParams)
			serials := make([]string, 0, len(p.Transfers))
			for _, t := range p.Transfers {
				serials = append(serials, fmt.Sprintf("%d", t.Serial))
			}
			return fmt.Sprintf("Successfully transferred serials %s of NFT %s. Transaction id %s.", strings.Join(serials, ", "), p.TokenID, receipt.TransactionID)
		},
	}
}

// ApproveTokenAllowanceTool grants a fungible token allowance.
func ApproveTokenAllowanceTool() *tool.Tool {
	return &tool.Tool{
		Method:      core.MethodApproveTokenAllowance,
		Name:        "approve_token_allowance",
		Description: "Approve a fungible token allowance for a spender account.",
		Parameters:  params.ApproveTokenAllowanceSchema(),
		Normalize: func(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (any, error) {
			return params.NormalizeApproveTokenAllowance(ctx, raw, tctx, client)
		},
		Build: func(normalized any) (*hiero.Transaction, *params.Scheduling, error) {
			p := normalized.(*params.TokenAllowanceParams)
			tx, err := builder.BuildTokenAllowance(p)
			return tx, p.Scheduling, err
		},
		PostProcess: func(normalized any, receipt *hiero.Receipt, raw map[string]any) string {
			p := normalized.(*params.TokenAllowanceParams)
			return fmt.Sprintf("Successfully approved allowance of token %s for spender %s. Transaction id %s.", p.TokenID, p.SpenderAccountID, receipt.TransactionID)
		},
	}
}

// AirdropFungibleTokenTool distributes a fungible token to many accounts.
func AirdropFungibleTokenTool() *tool.Tool {
	return &tool.Tool{
		Method:      core.MethodAirdropFungibleToken,
		Name:        "airdrop_fungible_token",
		Description: "Airdrop a fungible token to multiple recipients; unassociated recipients receive a pending airdrop.",
		Parameters:  params.AirdropFungibleTokenSchema(),
		Normalize: func(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (any, error) {
			return params.NormalizeAirdropFungibleToken(ctx, raw, tctx, client)
		},
		Build: func(normalized any) (*hiero.Transaction, *params.Scheduling, error) {
			p := normalized.(*params.AirdropParams)
			tx, err := builder.BuildAirdropFungibleToken(p)
			return tx, p.Scheduling, err
		},
		PostProcess: func(normalized any, receipt *hiero.Receipt, raw map[string]any) string {
			p := normalized.(*params.AirdropParams)
			// the synthesized source debit is the final posting
			recipients := len(p.Transfers) - 1
			return fmt.Sprintf("Successfully airdropped token %s to %d recipients. Transaction id %s.", p.TokenID, recipients, receipt.TransactionID)
		},
	}
}

// ClaimAirdropTool claims pending airdrops for the receiver.
func ClaimAirdropTool() *tool.Tool {
	return &tool.Tool{
		Method:      core.MethodClaimAirdrop,
		Name:        "claim_airdrop",
		Description: "Claim pending token airdrops for the receiver account, optionally filtered by sender or token.",
		Parameters:  params.ClaimAirdropSchema(),
		Normalize: func(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (any, error) {
			return params.NormalizeClaimAirdrop(ctx, raw, tctx, client)
		},
		Build: func(normalized any) (*hiero.Transaction, *params.Scheduling, error) {
			p := normalized.(*params.ClaimAirdropParams)
			tx, err := builder.BuildClaimAirdrop(p)
			return tx, nil, err
		},
		PostProcess: func(normalized any, receipt *hiero.Receipt, raw map[string]any) string {
			p := normalized.(*params.ClaimAirdropParams)
			raw["claimed"] = p.Summaries
			return fmt.Sprintf("Successfully claimed %d pending airdrops: %s. Transaction id %s.", len(p.PendingAirdrops), strings.Join(p.Summaries, "; "), receipt.TransactionID)
		},
	}
}
