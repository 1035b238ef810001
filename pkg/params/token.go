package params

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/hashkit/hedera-agent-kit/pkg/core"
	"github.com/hashkit/hedera-agent-kit/pkg/hiero"
	"github.com/hashkit/hedera-agent-kit/pkg/schema"
)

// maxTokenDecimals bounds the decimals argument. Base-unit amounts are
// int64, so anything finer than 18 places cannot represent a single
// display unit.
const maxTokenDecimals = 18

func checkDecimals(v int64) (uint32, error) {
	if v < 0 {
		return 0, core.NewBusinessRuleError("decimals must not be negative, got %d", v)
	}
	if v > maxTokenDecimals {
		return 0, core.NewBusinessRuleError("decimals must not exceed %d, got %d", maxTokenDecimals, v)
	}
	return uint32(v), nil
}

// tokenDecimals resolves the decimals used to scale display amounts for a
// token: an explicit "decimals" argument wins, then a mirror lookup. With
// neither available the token is treated as already denominated in base
// units (decimals 0). Mirror failures propagate unchanged.
func tokenDecimals(ctx context.Context, parsed map[string]any, tctx *core.Context, tokenID hiero.TokenID) (uint32, error) {
	if v, ok := int64Arg(parsed, "decimals"); ok {
		return checkDecimals(v)
	}
	if tctx != nil && tctx.Mirror != nil {
		info, err := tctx.Mirror.TokenInfo(ctx, tokenID)
		if err != nil {
			return 0, fmt.Errorf("fetching decimals for token %s: %w", tokenID, err)
		}
		return info.Decimals, nil
	}
	return 0, nil
}

// CreateTokenParams is the network-ready bundle for creating a fungible or
// non-fungible token class.
type CreateTokenParams struct {
	Name              string
	Symbol            string
	TokenType         hiero.TokenType
	Decimals          uint32
	InitialSupplyBase uint64
	Treasury          hiero.AccountID
	SupplyType        hiero.SupplyType
	MaxSupply         int64
	AdminKey          *hiero.PublicKey
	SupplyKey         *hiero.PublicKey
	Memo              string
	Scheduling        *Scheduling
}

// AccountRef exposes the treasury for policy inspection.
func (p *CreateTokenParams) AccountRef() (hiero.AccountID, bool) { return p.Treasury, true }

// SupplySpec exposes the supply shape for policy inspection.
func (p *CreateTokenParams) SupplySpec() (hiero.SupplyType, int64) { return p.SupplyType, p.MaxSupply }

var createFungibleTokenSchema = schema.NewObject(
	append([]schema.Field{
		schema.String("tokenName", "Token name.").Req(),
		schema.String("tokenSymbol", "Token symbol.").Req(),
		schema.Integer("decimals", "Display decimals of the token.").NonNeg().WithDefault(int64(0)),
		schema.Number("initialSupply", "Initial supply in display units, minted to the treasury.").NonNeg().WithDefault(0.0),
		schema.String("treasuryAccountId", "Treasury account; defaults to the context account or the operator."),
		schema.Number("maxSupply", "Maximum supply in display units; setting it makes the supply finite.").NonNeg(),
		schema.Bool("isSupplyKey", "Attach the operator key as supply key so more units can be minted later."),
		schema.String("tokenMemo", "Optional token memo."),
	}, SchedulingFields()...)...,
)

// CreateFungibleTokenSchema describes the create_fungible_token input shape.
func CreateFungibleTokenSchema() *schema.Object { return createFungibleTokenSchema }

// NormalizeCreateFungibleToken validates a create_fungible_token call.
// Display-unit supplies are scaled into base units by the declared decimals.
func NormalizeCreateFungibleToken(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (*CreateTokenParams, error) {
	parsed, err := createFungibleTokenSchema.Parse(raw)
	if err != nil {
		return nil, err
	}

	rawDecimals, _ := int64Arg(parsed, "decimals")
	decimals, err := checkDecimals(rawDecimals)
	if err != nil {
		return nil, err
	}
	treasury, err := ResolveAccount(stringArg(parsed, "treasuryAccountId"), tctx, client)
	if err != nil {
		return nil, err
	}

	initial, _, err := decimalArg(parsed, "initialSupply")
	if err != nil {
		return nil, err
	}
	initialBase, err := hiero.ScaleToBaseUnits(initial, decimals)
	if err != nil {
		return nil, err
	}

	p := &CreateTokenParams{
		Name:              stringArg(parsed, "tokenName"),
		Symbol:            stringArg(parsed, "tokenSymbol"),
		TokenType:         hiero.TokenTypeFungible,
		Decimals:          decimals,
		InitialSupplyBase: uint64(initialBase),
		Treasury:          treasury,
		SupplyType:        hiero.SupplyTypeInfinite,
		Memo:              stringArg(parsed, "tokenMemo"),
	}

	if max, present, err := decimalArg(parsed, "maxSupply"); err != nil {
		return nil, err
	} else if present {
		maxBase, err := hiero.ScaleToBaseUnits(max, decimals)
		if err != nil {
			return nil, err
		}
		if int64(p.InitialSupplyBase) > maxBase {
			return nil, core.NewBusinessRuleError("initial supply %s exceeds max supply %s", initial, max)
		}
		p.SupplyType = hiero.SupplyTypeFinite
		p.MaxSupply = maxBase
	}

	if boolArg(parsed, "isSupplyKey") {
		key, err := ResolvePublicKey(ctx, "", tctx, client)
		if err != nil {
			return nil, err
		}
		p.SupplyKey = &key
	}

	p.Scheduling, err = normalizeScheduling(ctx, parsed, tctx, client)
	if err != nil {
		return nil, err
	}
	return p, nil
}

var createNonFungibleTokenSchema = schema.NewObject(
	append([]schema.Field{
		schema.String("tokenName", "Token name.").Req(),
		schema.String("tokenSymbol", "Token symbol.").Req(),
		schema.Integer("maxSupply", "Maximum number of serials; defaults to 100.").NonNeg().WithDefault(int64(100)),
		schema.String("treasuryAccountId", "Treasury account; defaults to the context account or the operator."),
		schema.String("tokenMemo", "Optional token memo."),
	}, SchedulingFields()...)...,
)

// CreateNonFungibleTokenSchema describes the create_non_fungible_token
// input shape.
func CreateNonFungibleTokenSchema() *schema.Object { return createNonFungibleTokenSchema }

// NormalizeCreateNonFungibleToken validates a create_non_fungible_token
// call. NFT classes always carry a supply key (the operator's) so serials
// can be minted, and are always finite.
func NormalizeCreateNonFungibleToken(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (*CreateTokenParams, error) {
	parsed, err := createNonFungibleTokenSchema.Parse(raw)
	if err != nil {
		return nil, err
	}
	treasury, err := ResolveAccount(stringArg(parsed, "treasuryAccountId"), tctx, client)
	if err != nil {
		return nil, err
	}
	supplyKey, err := ResolvePublicKey(ctx, "", tctx, client)
	if err != nil {
		return nil, err
	}
	maxSupply, _ := int64Arg(parsed, "maxSupply")

	p := &CreateTokenParams{
		Name:       stringArg(parsed, "tokenName"),
		Symbol:     stringArg(parsed, "tokenSymbol"),
		TokenType:  hiero.TokenTypeNonFungible,
		Treasury:   treasury,
		SupplyType: hiero.SupplyTypeFinite,
		MaxSupply:  maxSupply,
		SupplyKey:  &supplyKey,
		Memo:       stringArg(parsed, "tokenMemo"),
	}
	p.Scheduling, err = normalizeScheduling(ctx, parsed, tctx, client)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// MintTokenParams is the network-ready bundle for minting fungible supply.
type MintTokenParams struct {
	TokenID    hiero.TokenID
	AmountBase uint64
	Scheduling *Scheduling
}

// TokenRefs exposes the minted token for policy inspection.
func (p *MintTokenParams) TokenRefs() []hiero.TokenID { return []hiero.TokenID{p.TokenID} }

var mintFungibleTokenSchema = schema.NewObject(
	append([]schema.Field{
		schema.String("tokenId", "Token to mint.").Req(),
		schema.Number("amount", "Amount to mint in display units.").Req(),
		schema.Integer("decimals", "Override for the token's decimals; fetched from the mirror when omitted.").NonNeg(),
	}, SchedulingFields()...)...,
)

// MintFungibleTokenSchema describes the mint_fungible_token input shape.
func MintFungibleTokenSchema() *schema.Object { return mintFungibleTokenSchema }

// NormalizeMintFungibleToken validates a mint_fungible_token call.
func NormalizeMintFungibleToken(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (*MintTokenParams, error) {
	parsed, err := mintFungibleTokenSchema.Parse(raw)
	if err != nil {
		return nil, err
	}
	tokenID, err := hiero.ParseTokenID(stringArg(parsed, "tokenId"))
	if err != nil {
		return nil, err
	}
	amount, _, err := decimalArg(parsed, "amount")
	if err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, core.NewBusinessRuleError("Invalid mint amount: %s", amount)
	}
	decimals, err := tokenDecimals(ctx, parsed, tctx, tokenID)
	if err != nil {
		return nil, err
	}
	base, err := hiero.ScaleToBaseUnits(amount, decimals)
	if err != nil {
		return nil, err
	}
	p := &MintTokenParams{TokenID: tokenID, AmountBase: uint64(base)}
	p.Scheduling, err = normalizeScheduling(ctx, parsed, tctx, client)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// MintNFTParams is the network-ready bundle for minting NFT serials.
type MintNFTParams struct {
	TokenID    hiero.TokenID
	Metadata   [][]byte
	Scheduling *Scheduling
}

// TokenRefs exposes the minted token for policy inspection.
func (p *MintNFTParams) TokenRefs() []hiero.TokenID { return []hiero.TokenID{p.TokenID} }

var mintNFTSchema = schema.NewObject(
	append([]schema.Field{
		schema.String("tokenId", "NFT class to mint into.").Req(),
		schema.Array("uris", "Metadata URI per serial to mint.", schema.String("", "Metadata URI, at most 100 bytes.")).Req().Min(1),
	}, SchedulingFields()...)...,
)

// MintNFTSchema describes the mint_nft input shape.
func MintNFTSchema() *schema.Object { return mintNFTSchema }

// NormalizeMintNFT validates a mint_nft call.
func NormalizeMintNFT(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (*MintNFTParams, error) {
	parsed, err := mintNFTSchema.Parse(raw)
	if err != nil {
		return nil, err
	}
	tokenID, err := hiero.ParseTokenID(stringArg(parsed, "tokenId"))
	if err != nil {
		return nil, err
	}
	var metadata [][]byte
	for _, item := range anySliceArg(parsed, "uris") {
		uri := item.(string)
		if uri == "" {
			return nil, core.NewBusinessRuleError("metadata URI must not be empty")
		}
		if len(uri) > 100 {
			return nil, core.NewBusinessRuleError("metadata URI exceeds 100 bytes: %q", uri)
		}
		metadata = append(metadata, []byte(uri))
	}
	p := &MintNFTParams{TokenID: tokenID, Metadata: metadata}
	p.Scheduling, err = normalizeScheduling(ctx, parsed, tctx, client)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// TransferTokenParams is the network-ready bundle for a fungible token
// transfer; amounts are in base units and the posting set sums to zero.
type TransferTokenParams struct {
	TokenID         hiero.TokenID
	Transfers       []hiero.TokenAmount
	ApprovedDebit   *hiero.TokenAmount
	SourceAccountID hiero.AccountID
	Decimals        uint32
	Memo            string
	Scheduling      *Scheduling
}

// AccountRef exposes the resolved source for policy inspection.
func (p *TransferTokenParams) AccountRef() (hiero.AccountID, bool) { return p.SourceAccountID, true }

// TokenRefs exposes the transferred token for policy inspection.
func (p *TransferTokenParams) TokenRefs() []hiero.TokenID { return []hiero.TokenID{p.TokenID} }

var transferTokenSchema = schema.NewObject(
	append([]schema.Field{
		schema.String("tokenId", "Token to transfer.").Req(),
		schema.Array("transfers", "Recipients to credit.",
			schema.ObjectField("", "One credit posting.",
				schema.String("accountId", "Recipient account id.").Req(),
				schema.Number("amount", "Amount in display units; must be greater than zero.").Req(),
			),
		).Req().Min(1),
		schema.String("sourceAccountId", "Account to debit; defaults to the context account or the operator."),
		schema.Bool("useAllowance", "Spend a pre-approved token allowance of the source account."),
		schema.Integer("decimals", "Override for the token's decimals; fetched from the mirror when omitted.").NonNeg(),
		schema.String("transactionMemo", "Optional memo attached to the transaction."),
	}, SchedulingFields()...)...,
)

// TransferFungibleTokenSchema describes the transfer_fungible_token input
// shape.
func TransferFungibleTokenSchema() *schema.Object { return transferTokenSchema }

// NormalizeTransferFungibleToken validates a transfer_fungible_token call,
// scales display amounts into base units and synthesizes the offsetting
// debit exactly as the HBAR normaliser does.
func NormalizeTransferFungibleToken(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (*TransferTokenParams, error) {
	parsed, err := transferTokenSchema.Parse(raw)
	if err != nil {
		return nil, err
	}
	tokenID, err := hiero.ParseTokenID(stringArg(parsed, "tokenId"))
	if err != nil {
		return nil, err
	}
	decimals, err := tokenDecimals(ctx, parsed, tctx, tokenID)
	if err != nil {
		return nil, err
	}

	p := &TransferTokenParams{
		TokenID:  tokenID,
		Decimals: decimals,
		Memo:     stringArg(parsed, "transactionMemo"),
	}

	var total int64
	for _, item := range anySliceArg(parsed, "transfers") {
		entry := item.(map[string]any)
		amount, _, err := decimalArg(entry, "amount")
		if err != nil {
			return nil, err
		}
		if !amount.IsPositive() {
			return nil, core.NewBusinessRuleError("Invalid transfer amount: %s", amount)
		}
		base, err := hiero.ScaleToBaseUnits(amount, decimals)
		if err != nil {
			return nil, err
		}
		recipient, err := hiero.ParseAccountID(stringArg(entry, "accountId"))
		if err != nil {
			return nil, err
		}
		p.Transfers = append(p.Transfers, hiero.TokenAmount{AccountID: recipient, Amount: base})
		total += base
	}

	source, err := ResolveAccount(stringArg(parsed, "sourceAccountId"), tctx, client)
	if err != nil {
		return nil, err
	}
	p.SourceAccountID = source

	debit := hiero.TokenAmount{AccountID: source, Amount: -total}
	if boolArg(parsed, "useAllowance") {
		debit.IsApproval = true
		p.ApprovedDebit = &debit
	} else {
		p.Transfers = append(p.Transfers, debit)
	}

	p.Scheduling, err = normalizeScheduling(ctx, parsed, tctx, client)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// TransferNFTParams is the network-ready bundle for moving NFT serials.
type TransferNFTParams struct {
	TokenID    hiero.TokenID
	Transfers  []hiero.NFTTransfer
	Scheduling *Scheduling
}

// TokenRefs exposes the NFT class for policy inspection.
func (p *TransferNFTParams) TokenRefs() []hiero.TokenID { return []hiero.TokenID{p.TokenID} }

var transferNFTSchema = schema.NewObject(
	append([]schema.Field{
		schema.String("tokenId", "NFT class to transfer from.").Req(),
		schema.Array("serialNumbers", "Serials to transfer.", schema.Integer("", "NFT serial number.")).Req().Min(1),
		schema.String("receiverAccountId", "Account receiving the serials.").Req(),
		schema.String("senderAccountId", "Current owner; defaults to the context account or the operator."),
		schema.Bool("useAllowance", "Spend a pre-approved NFT allowance of the sender."),
	}, SchedulingFields()...)...,
)

// TransferNFTSchema describes the transfer_nft input shape.
func TransferNFTSchema() *schema.Object { return transferNFTSchema }

// NormalizeTransferNFT validates a transfer_nft call.
func NormalizeTransferNFT(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (*TransferNFTParams, error) {
	parsed, err := transferNFTSchema.Parse(raw)
	if err != nil {
		return nil, err
	}
	tokenID, err := hiero.ParseTokenID(stringArg(parsed, "tokenId"))
	if err != nil {
		return nil, err
	}
	receiver, err := hiero.ParseAccountID(stringArg(parsed, "receiverAccountId"))
	if err != nil {
		return nil, err
	}
	sender, err := ResolveAccount(stringArg(parsed, "senderAccountId"), tctx, client)
	if err != nil {
		return nil, err
	}
	approval := boolArg(parsed, "useAllowance")

	p := &TransferNFTParams{TokenID: tokenID}
	for _, item := range anySliceArg(parsed, "serialNumbers") {
		serial := item.(int64)
		if serial <= 0 {
			return nil, core.NewBusinessRuleError("Invalid NFT serial number: %d", serial)
		}
		p.Transfers = append(p.Transfers, hiero.NFTTransfer{
			Sender:     sender,
			Receiver:   receiver,
			Serial:     serial,
			IsApproval: approval,
		})
	}
	p.Scheduling, err = normalizeScheduling(ctx, parsed, tctx, client)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// TokenAllowanceParams is the network-ready bundle for granting a fungible
// token allowance.
type TokenAllowanceParams struct {
	TokenID          hiero.TokenID
	OwnerAccountID   hiero.AccountID
	SpenderAccountID hiero.AccountID
	AmountBase       int64
	Memo             string
	Scheduling       *Scheduling
}

// AccountRef exposes the allowance owner for policy inspection.
func (p *TokenAllowanceParams) AccountRef() (hiero.AccountID, bool) { return p.OwnerAccountID, true }

// TokenRefs exposes the approved token for policy inspection.
func (p *TokenAllowanceParams) TokenRefs() []hiero.TokenID { return []hiero.TokenID{p.TokenID} }

var approveTokenAllowanceSchema = schema.NewObject(
	append([]schema.Field{
		schema.String("tokenId", "Token the allowance applies to.").Req(),
		schema.String("spenderAccountId", "Account authorized to spend the owner's tokens.").Req(),
		schema.Number("amount", "Allowance ceiling in display units.").Req().NonNeg(),
		schema.String("ownerAccountId", "Allowance owner; defaults to the context account or the operator."),
		schema.Integer("decimals", "Override for the token's decimals; fetched from the mirror when omitted.").NonNeg(),
		schema.String("transactionMemo", "Optional memo attached to the transaction."),
	}, SchedulingFields()...)...,
)

// ApproveTokenAllowanceSchema describes the approve_token_allowance input
// shape.
func ApproveTokenAllowanceSchema() *schema.Object { return approveTokenAllowanceSchema }

// NormalizeApproveTokenAllowance validates an approve_token_allowance call.
func NormalizeApproveTokenAllowance(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (*TokenAllowanceParams, error) {
	parsed, err := approveTokenAllowanceSchema.Parse(raw)
	if err != nil {
		return nil, err
	}
	tokenID, err := hiero.ParseTokenID(stringArg(parsed, "tokenId"))
	if err != nil {
		return nil, err
	}
	owner, err := ResolveAccount(stringArg(parsed, "ownerAccountId"), tctx, client)
	if err != nil {
		return nil, err
	}
	spender, err := hiero.ParseAccountID(stringArg(parsed, "spenderAccountId"))
	if err != nil {
		return nil, err
	}
	amount, _, err := decimalArg(parsed, "amount")
	if err != nil {
		return nil, err
	}
	decimals, err := tokenDecimals(ctx, parsed, tctx, tokenID)
	if err != nil {
		return nil, err
	}
	base, err := hiero.ScaleToBaseUnits(amount, decimals)
	if err != nil {
		return nil, err
	}
	p := &TokenAllowanceParams{
		TokenID:          tokenID,
		OwnerAccountID:   owner,
		SpenderAccountID: spender,
		AmountBase:       base,
		Memo:             stringArg(parsed, "transactionMemo"),
	}
	p.Scheduling, err = normalizeScheduling(ctx, parsed, tctx, client)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// AirdropParams is the network-ready bundle for a fungible token airdrop.
type AirdropParams struct {
	TokenID         hiero.TokenID
	Transfers       []hiero.TokenAmount
	SourceAccountID hiero.AccountID
	Decimals        uint32
	Scheduling      *Scheduling
}

// AccountRef exposes the airdrop source for policy inspection.
func (p *AirdropParams) AccountRef() (hiero.AccountID, bool) { return p.SourceAccountID, true }

// TokenRefs exposes the airdropped token for policy inspection.
func (p *AirdropParams) TokenRefs() []hiero.TokenID { return []hiero.TokenID{p.TokenID} }

var airdropSchema = schema.NewObject(
	append([]schema.Field{
		schema.String("tokenId", "Token to airdrop.").Req(),
		schema.Array("recipients", "Accounts to receive the airdrop.",
			schema.ObjectField("", "One airdrop recipient.",
				schema.String("accountId", "Recipient account id.").Req(),
				schema.Number("amount", "Amount in display units; must be greater than zero.").Req(),
			),
		).Req().Min(1),
		schema.String("sourceAccountId", "Account to debit; defaults to the context account or the operator."),
		schema.Integer("decimals", "Override for the token's decimals; fetched from the mirror when omitted.").NonNeg(),
	}, SchedulingFields()...)...,
)

// AirdropFungibleTokenSchema describes the airdrop_fungible_token input
// shape.
func AirdropFungibleTokenSchema() *schema.Object { return airdropSchema }

// NormalizeAirdropFungibleToken validates an airdrop_fungible_token call.
// The posting set follows the same zero-sum synthesis as ordinary
// transfers; recipients without a token association end up with pending
// airdrops on the network side.
func NormalizeAirdropFungibleToken(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (*AirdropParams, error) {
	parsed, err := airdropSchema.Parse(raw)
	if err != nil {
		return nil, err
	}
	tokenID, err := hiero.ParseTokenID(stringArg(parsed, "tokenId"))
	if err != nil {
		return nil, err
	}
	decimals, err := tokenDecimals(ctx, parsed, tctx, tokenID)
	if err != nil {
		return nil, err
	}

	p := &AirdropParams{TokenID: tokenID, Decimals: decimals}

	var total int64
	for _, item := range anySliceArg(parsed, "recipients") {
		entry := item.(map[string]any)
		amount, _, err := decimalArg(entry, "amount")
		if err != nil {
			return nil, err
		}
		if !amount.IsPositive() {
			return nil, core.NewBusinessRuleError("Invalid transfer amount: %s", amount)
		}
		base, err := hiero.ScaleToBaseUnits(amount, decimals)
		if err != nil {
			return nil, err
		}
		recipient, err := hiero.ParseAccountID(stringArg(entry, "accountId"))
		if err != nil {
			return nil, err
		}
		p.Transfers = append(p.Transfers, hiero.TokenAmount{AccountID: recipient, Amount: base})
		total += base
	}

	source, err := ResolveAccount(stringArg(parsed, "sourceAccountId"), tctx, client)
	if err != nil {
		return nil, err
	}
	p.SourceAccountID = source
	p.Transfers = append(p.Transfers, hiero.TokenAmount{AccountID: source, Amount: -total})

	p.Scheduling, err = normalizeScheduling(ctx, parsed, tctx, client)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ClaimAirdropParams is the network-ready bundle for claiming pending
// airdrops. Summaries carries one display line per claimed airdrop, in the
// same order as PendingAirdrops.
type ClaimAirdropParams struct {
	Receiver        hiero.AccountID
	PendingAirdrops []hiero.PendingAirdropID
	Summaries       []string
}

// AccountRef exposes the claiming receiver for policy inspection.
func (p *ClaimAirdropParams) AccountRef() (hiero.AccountID, bool) { return p.Receiver, true }

// TokenRefs exposes every claimed token class for policy inspection.
func (p *ClaimAirdropParams) TokenRefs() []hiero.TokenID {
	refs := make([]hiero.TokenID, 0, len(p.PendingAirdrops))
	for _, pa := range p.PendingAirdrops {
		refs = append(refs, pa.TokenID)
	}
	return refs
}

var claimAirdropSchema = schema.NewObject(
	schema.String("receiverAccountId", "Account claiming its pending airdrops; defaults to the context account or the operator."),
	schema.String("senderAccountId", "Claim only airdrops sent by this account."),
	schema.String("tokenId", "Claim only airdrops of this token."),
)

// ClaimAirdropSchema describes the claim_airdrop input shape.
func ClaimAirdropSchema() *schema.Object { return claimAirdropSchema }

// airdropEnrichConcurrency bounds the parallel token-info lookups used to
// build claim summaries.
const airdropEnrichConcurrency = 4

// NormalizeClaimAirdrop validates a claim_airdrop call. The receiver's
// pending airdrops are listed through the mirror service, optionally
// filtered by sender and token, and each entry is enriched with token
// metadata. Enrichment lookups run concurrently but the output order always
// matches the mirror's listing order.
func NormalizeClaimAirdrop(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (*ClaimAirdropParams, error) {
	parsed, err := claimAirdropSchema.Parse(raw)
	if err != nil {
		return nil, err
	}
	receiver, err := ResolveAccount(stringArg(parsed, "receiverAccountId"), tctx, client)
	if err != nil {
		return nil, err
	}
	mirror, err := mirrorOf(tctx)
	if err != nil {
		return nil, err
	}

	pending, err := mirror.PendingAirdrops(ctx, receiver)
	if err != nil {
		return nil, err
	}

	senderFilter := stringArg(parsed, "senderAccountId")
	tokenFilter := stringArg(parsed, "tokenId")
	var selected []hiero.PendingAirdrop
	for _, pa := range pending {
		if senderFilter != "" && pa.SenderID.String() != senderFilter {
			continue
		}
		if tokenFilter != "" && pa.TokenID.String() != tokenFilter {
			continue
		}
		selected = append(selected, pa)
	}
	if len(selected) == 0 {
		return nil, core.NewBusinessRuleError("no pending airdrops to claim for account %s", receiver)
	}

	p := &ClaimAirdropParams{
		Receiver:        receiver,
		PendingAirdrops: make([]hiero.PendingAirdropID, len(selected)),
		Summaries:       make([]string, len(selected)),
	}
	errs := make([]error, len(selected))

	var wg sync.WaitGroup
	sem := make(chan struct{}, airdropEnrichConcurrency)
	for i, pa := range selected {
		p.PendingAirdrops[i] = hiero.PendingAirdropID{
			SenderID:   pa.SenderID,
			ReceiverID: pa.ReceiverID,
			TokenID:    pa.TokenID,
			Serial:     pa.Serial,
		}
		wg.Add(1)
		go func(i int, pa hiero.PendingAirdrop) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			info, err := mirror.TokenInfo(ctx, pa.TokenID)
			if err != nil {
				errs[i] = err
				return
			}
			display := decimal.New(pa.Amount, -int32(info.Decimals))
			p.Summaries[i] = fmt.Sprintf("%s %s (%s) from %s", display, info.Symbol, pa.TokenID, pa.SenderID)
		}(i, pa)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}
