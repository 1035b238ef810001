// Package builder turns normalised parameter bundles into unsubmitted
// transactions. Factories are pure: no network access, no context defaults,
// no validation beyond structural rules the bodies themselves enforce.
package builder

import (
	"github.com/hashkit/hedera-agent-kit/pkg/hiero"
	"github.com/hashkit/hedera-agent-kit/pkg/params"
)

// BuildTransferHbar assembles a CryptoTransfer from an HBAR transfer
// bundle. The approved allowance debit, when present, is appended before
// any ordinary posting.
func BuildTransferHbar(p *params.TransferHbarParams) (*hiero.Transaction, error) {
	body := &hiero.CryptoTransferBody{}
	if p.ApprovedDebit != nil {
		if err := body.AddApprovedHbarTransfer(p.ApprovedDebit.AccountID, p.ApprovedDebit.Amount); err != nil {
			return nil, err
		}
	}
	for _, t := range p.Transfers {
		body.AddHbarTransfer(t.AccountID, t.Amount)
	}
	return withMemo(hiero.NewTransaction(body), p.Memo)
}

// BuildCreateAccount assembles a CryptoCreateAccount.
func BuildCreateAccount(p *params.CreateAccountParams) (*hiero.Transaction, error) {
	body := &hiero.AccountCreateBody{
		Key:                      p.Key,
		InitialBalance:           p.InitialBalance,
		Memo:                     p.Memo,
		MaxAutoTokenAssociations: int32(p.MaxAutoTokenAssociations),
	}
	return hiero.NewTransaction(body), nil
}

// BuildDeleteAccount assembles a CryptoDelete.
func BuildDeleteAccount(p *params.DeleteAccountParams) (*hiero.Transaction, error) {
	body := &hiero.AccountDeleteBody{
		DeleteAccountID:   p.DeleteAccountID,
		TransferAccountID: p.TransferAccountID,
	}
	return hiero.NewTransaction(body), nil
}

// BuildHbarAllowance assembles a CryptoApproveAllowance carrying a single
// HBAR allowance. Revocations arrive here as amount zero.
func BuildHbarAllowance(p *params.HbarAllowanceParams) (*hiero.Transaction, error) {
	body := &hiero.CryptoApproveAllowanceBody{
		HbarAllowances: []hiero.HbarAllowance{{
			OwnerAccountID:   p.OwnerAccountID,
			SpenderAccountID: p.SpenderAccountID,
			Amount:           p.Amount,
		}},
	}
	return withMemo(hiero.NewTransaction(body), p.Memo)
}

// BuildTokenAllowance assembles a CryptoApproveAllowance carrying a single
// fungible token allowance in base units.
func BuildTokenAllowance(p *params.TokenAllowanceParams) (*hiero.Transaction, error) {
	body := &hiero.CryptoApproveAllowanceBody{
		TokenAllowances: []hiero.TokenAllowance{{
			TokenID:          p.TokenID,
			OwnerAccountID:   p.OwnerAccountID,
			SpenderAccountID: p.SpenderAccountID,
			Amount:           p.AmountBase,
		}},
	}
	return withMemo(hiero.NewTransaction(body), p.Memo)
}

// BuildCreateToken assembles a TokenCreate for either token type.
func BuildCreateToken(p *params.CreateTokenParams) (*hiero.Transaction, error) {
	body := &hiero.TokenCreateBody{
		Name:            p.Name,
		Symbol:          p.Symbol,
		TokenType:       p.TokenType,
		Decimals:        p.Decimals,
		InitialSupply:   p.InitialSupplyBase,
		TreasuryAccount: p.Treasury,
		SupplyType:      p.SupplyType,
		MaxSupply:       p.MaxSupply,
		AdminKey:        p.AdminKey,
		SupplyKey:       p.SupplyKey,
		Memo:            p.Memo,
	}
	return hiero.NewTransaction(body), nil
}

// BuildMintFungibleToken assembles a TokenMint of fungible supply.
func BuildMintFungibleToken(p *params.MintTokenParams) (*hiero.Transaction, error) {
	body := &hiero.TokenMintBody{TokenID: p.TokenID, Amount: p.AmountBase}
	return hiero.NewTransaction(body), nil
}

// BuildMintNFT assembles a TokenMint of one serial per metadata entry.
func BuildMintNFT(p *params.MintNFTParams) (*hiero.Transaction, error) {
	body := &hiero.TokenMintBody{TokenID: p.TokenID, Metadata: p.Metadata}
	return hiero.NewTransaction(body), nil
}

// BuildTransferFungibleToken assembles a CryptoTransfer with a single token
// transfer list. The approved debit, when present, leads the list.
func BuildTransferFungibleToken(p *params.TransferTokenParams) (*hiero.Transaction, error) {
	decimals := p.Decimals
	list := hiero.TokenTransferList{TokenID: p.TokenID, ExpectedDecimals: &decimals}
	if p.ApprovedDebit != nil {
		list.Transfers = append(list.Transfers, *p.ApprovedDebit)
	}
	list.Transfers = append(list.Transfers, p.Transfers...)
	body := &hiero.CryptoTransferBody{TokenTransfers: []hiero.TokenTransferList{list}}
	return withMemo(hiero.NewTransaction(body), p.Memo)
}

// BuildTransferNFT assembles a CryptoTransfer moving NFT serials.
func BuildTransferNFT(p *params.TransferNFTParams) (*hiero.Transaction, error) {
	body := &hiero.CryptoTransferBody{
		TokenTransfers: []hiero.TokenTransferList{{
			TokenID:      p.TokenID,
			NFTTransfers: p.Transfers,
		}},
	}
	return hiero.NewTransaction(body), nil
}

// BuildAirdropFungibleToken assembles a TokenAirdrop.
func BuildAirdropFungibleToken(p *params.AirdropParams) (*hiero.Transaction, error) {
	decimals := p.Decimals
	body := &hiero.TokenAirdropBody{
		TokenTransfers: []hiero.TokenTransferList{{
			TokenID:          p.TokenID,
			Transfers:        p.Transfers,
			ExpectedDecimals: &decimals,
		}},
	}
	return hiero.NewTransaction(body), nil
}

// BuildClaimAirdrop assembles a TokenClaimAirdrop.
func BuildClaimAirdrop(p *params.ClaimAirdropParams) (*hiero.Transaction, error) {
	body := &hiero.TokenClaimAirdropBody{PendingAirdrops: p.PendingAirdrops}
	return hiero.NewTransaction(body), nil
}

// BuildCreateTopic assembles a ConsensusCreateTopic.
func BuildCreateTopic(p *params.CreateTopicParams) (*hiero.Transaction, error) {
	body := &hiero.TopicCreateBody{
		Memo:      p.Memo,
		AdminKey:  p.AdminKey,
		SubmitKey: p.SubmitKey,
	}
	return hiero.NewTransaction(body), nil
}

// BuildSubmitTopicMessage assembles a ConsensusSubmitMessage.
func BuildSubmitTopicMessage(p *params.SubmitTopicMessageParams) (*hiero.Transaction, error) {
	body := &hiero.TopicSubmitMessageBody{TopicID: p.TopicID, Message: p.Message}
	return withMemo(hiero.NewTransaction(body), p.Memo)
}

// BuildDeleteTopic assembles a ConsensusDeleteTopic.
func BuildDeleteTopic(p *params.DeleteTopicParams) (*hiero.Transaction, error) {
	body := &hiero.TopicDeleteBody{TopicID: p.TopicID}
	return hiero.NewTransaction(body), nil
}

// BuildExecuteContract assembles a ContractCall.
func BuildExecuteContract(p *params.ExecuteContractParams) (*hiero.Transaction, error) {
	body := &hiero.ContractExecuteBody{
		ContractID:         p.ContractID,
		Gas:                p.Gas,
		PayableAmount:      p.PayableAmount,
		FunctionParameters: p.Calldata,
	}
	return hiero.NewTransaction(body), nil
}

func withMemo(tx *hiero.Transaction, memo string) (*hiero.Transaction, error) {
	if memo == "" {
		return tx, nil
	}
	if err := tx.SetMemo(memo); err != nil {
		return nil, err
	}
	return tx, nil
}
