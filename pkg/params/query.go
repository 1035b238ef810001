package params

import (
	"context"

	"github.com/hashkit/hedera-agent-kit/pkg/core"
	"github.com/hashkit/hedera-agent-kit/pkg/hiero"
	"github.com/hashkit/hedera-agent-kit/pkg/schema"
)

// AccountQueryParams targets the read-only account lookups.
type AccountQueryParams struct {
	AccountID hiero.AccountID
}

// AccountRef exposes the queried account for policy inspection.
func (p *AccountQueryParams) AccountRef() (hiero.AccountID, bool) { return p.AccountID, true }

var accountQuerySchema = schema.NewObject(
	schema.String("accountId", "Account to query; defaults to the context account or the operator."),
)

// AccountQuerySchema describes the input shape shared by get_hbar_balance,
// get_account_info and get_pending_airdrops.
func AccountQuerySchema() *schema.Object { return accountQuerySchema }

// NormalizeAccountQuery validates the account-targeted read queries.
func NormalizeAccountQuery(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (*AccountQueryParams, error) {
	parsed, err := accountQuerySchema.Parse(raw)
	if err != nil {
		return nil, err
	}
	account, err := ResolveAccount(stringArg(parsed, "accountId"), tctx, client)
	if err != nil {
		return nil, err
	}
	return &AccountQueryParams{AccountID: account}, nil
}

// TokenQueryParams targets the read-only token lookup.
type TokenQueryParams struct {
	TokenID hiero.TokenID
}

// TokenRefs exposes the queried token for policy inspection.
func (p *TokenQueryParams) TokenRefs() []hiero.TokenID { return []hiero.TokenID{p.TokenID} }

var tokenQuerySchema = schema.NewObject(
	schema.String("tokenId", "Token to query.").Req(),
)

// TokenQuerySchema describes the get_token_info input shape.
func TokenQuerySchema() *schema.Object { return tokenQuerySchema }

// NormalizeTokenQuery validates a get_token_info call.
func NormalizeTokenQuery(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (*TokenQueryParams, error) {
	parsed, err := tokenQuerySchema.Parse(raw)
	if err != nil {
		return nil, err
	}
	tokenID, err := hiero.ParseTokenID(stringArg(parsed, "tokenId"))
	if err != nil {
		return nil, err
	}
	return &TokenQueryParams{TokenID: tokenID}, nil
}

// TransactionQueryParams targets the transaction record lookup.
type TransactionQueryParams struct {
	TransactionID hiero.TransactionID
}

var transactionQuerySchema = schema.NewObject(
	schema.String("transactionId", "Transaction id, payer@seconds.nanos or payer-seconds-nanos.").Req(),
)

// TransactionQuerySchema describes the get_transaction_record input shape.
func TransactionQuerySchema() *schema.Object { return transactionQuerySchema }

// NormalizeTransactionQuery validates a get_transaction_record call.
func NormalizeTransactionQuery(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (*TransactionQueryParams, error) {
	parsed, err := transactionQuerySchema.Parse(raw)
	if err != nil {
		return nil, err
	}
	txID, err := hiero.ParseTransactionID(stringArg(parsed, "transactionId"))
	if err != nil {
		return nil, err
	}
	return &TransactionQueryParams{TransactionID: txID}, nil
}
