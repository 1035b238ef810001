package params

import (
	"context"

	"github.com/hashkit/hedera-agent-kit/pkg/core"
	"github.com/hashkit/hedera-agent-kit/pkg/hiero"
	"github.com/hashkit/hedera-agent-kit/pkg/schema"
)

// CreateAccountParams is the network-ready bundle for account creation.
type CreateAccountParams struct {
	Key                      hiero.PublicKey
	InitialBalance           hiero.Hbar
	Memo                     string
	MaxAutoTokenAssociations int64
	Scheduling               *Scheduling
}

var createAccountSchema = schema.NewObject(
	append([]schema.Field{
		schema.String("publicKey", "Public key controlling the new account; defaults to the context key or the operator key."),
		schema.Number("initialBalance", "Starting balance in HBAR funded by the operator.").NonNeg().WithDefault(0.0),
		schema.String("accountMemo", "Optional account memo."),
		schema.Integer("maxAutomaticTokenAssociations", "Number of automatic token association slots; -1 for unlimited.").WithDefault(int64(0)),
	}, SchedulingFields()...)...,
)

// CreateAccountSchema describes the create_account input shape.
func CreateAccountSchema() *schema.Object { return createAccountSchema }

// NormalizeCreateAccount validates a create_account call.
func NormalizeCreateAccount(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (*CreateAccountParams, error) {
	parsed, err := createAccountSchema.Parse(raw)
	if err != nil {
		return nil, err
	}

	key, err := ResolvePublicKey(ctx, stringArg(parsed, "publicKey"), tctx, client)
	if err != nil {
		return nil, err
	}

	balance, _, err := decimalArg(parsed, "initialBalance")
	if err != nil {
		return nil, err
	}
	hbar, err := hiero.HbarFromDecimal(balance)
	if err != nil {
		return nil, err
	}

	assoc, _ := int64Arg(parsed, "maxAutomaticTokenAssociations")
	if assoc < -1 {
		return nil, core.NewBusinessRuleError("maxAutomaticTokenAssociations must be -1 or greater, got %d", assoc)
	}

	p := &CreateAccountParams{
		Key:                      key,
		InitialBalance:           hbar,
		Memo:                     stringArg(parsed, "accountMemo"),
		MaxAutoTokenAssociations: assoc,
	}
	p.Scheduling, err = normalizeScheduling(ctx, parsed, tctx, client)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteAccountParams is the network-ready bundle for account deletion.
type DeleteAccountParams struct {
	DeleteAccountID   hiero.AccountID
	TransferAccountID hiero.AccountID
	Scheduling        *Scheduling
}

// AccountRef exposes the account being deleted for policy inspection.
func (p *DeleteAccountParams) AccountRef() (hiero.AccountID, bool) {
	return p.DeleteAccountID, true
}

var deleteAccountSchema = schema.NewObject(
	append([]schema.Field{
		schema.String("accountId", "Account to delete; defaults to the context account or the operator."),
		schema.String("transferAccountId", "Account receiving the remaining balance; defaults to the operator."),
	}, SchedulingFields()...)...,
)

// DeleteAccountSchema describes the delete_account input shape.
func DeleteAccountSchema() *schema.Object { return deleteAccountSchema }

// NormalizeDeleteAccount validates a delete_account call.
func NormalizeDeleteAccount(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (*DeleteAccountParams, error) {
	parsed, err := deleteAccountSchema.Parse(raw)
	if err != nil {
		return nil, err
	}
	target, err := ResolveAccount(stringArg(parsed, "accountId"), tctx, client)
	if err != nil {
		return nil, err
	}
	sweep, err := ResolveAccount(stringArg(parsed, "transferAccountId"), tctx, client)
	if err != nil {
		return nil, err
	}
	if target.Equals(sweep) {
		return nil, core.NewBusinessRuleError("transfer account %s must differ from the account being deleted", sweep)
	}
	p := &DeleteAccountParams{DeleteAccountID: target, TransferAccountID: sweep}
	p.Scheduling, err = normalizeScheduling(ctx, parsed, tctx, client)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// HbarAllowanceParams is the network-ready bundle for granting or revoking
// an HBAR allowance.
type HbarAllowanceParams struct {
	OwnerAccountID   hiero.AccountID
	SpenderAccountID hiero.AccountID
	Amount           hiero.Hbar
	Memo             string
	Scheduling       *Scheduling
}

// AccountRef exposes the allowance owner for policy inspection.
func (p *HbarAllowanceParams) AccountRef() (hiero.AccountID, bool) {
	return p.OwnerAccountID, true
}

var approveHbarAllowanceSchema = schema.NewObject(
	append([]schema.Field{
		schema.String("spenderAccountId", "Account authorized to spend the owner's HBAR.").Req(),
		schema.Number("amount", "Allowance ceiling in HBAR.").Req().NonNeg(),
		schema.String("ownerAccountId", "Allowance owner; defaults to the context account or the operator."),
		schema.String("transactionMemo", "Optional memo attached to the transaction."),
	}, SchedulingFields()...)...,
)

// ApproveHbarAllowanceSchema describes the approve_hbar_allowance input
// shape.
func ApproveHbarAllowanceSchema() *schema.Object { return approveHbarAllowanceSchema }

// NormalizeApproveHbarAllowance validates an approve_hbar_allowance call.
func NormalizeApproveHbarAllowance(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (*HbarAllowanceParams, error) {
	parsed, err := approveHbarAllowanceSchema.Parse(raw)
	if err != nil {
		return nil, err
	}
	return buildHbarAllowance(ctx, parsed, tctx, client, false)
}

var deleteHbarAllowanceSchema = schema.NewObject(
	append([]schema.Field{
		schema.String("spenderAccountId", "Spender whose allowance is revoked.").Req(),
		schema.String("ownerAccountId", "Allowance owner; defaults to the context account or the operator."),
		schema.String("transactionMemo", "Optional memo attached to the transaction."),
	}, SchedulingFields()...)...,
)

// DeleteHbarAllowanceSchema describes the delete_hbar_allowance input shape.
func DeleteHbarAllowanceSchema() *schema.Object { return deleteHbarAllowanceSchema }

// NormalizeDeleteHbarAllowance validates a delete_hbar_allowance call.
// Deletion is an approval of amount zero; any extraneous amount in the raw
// input is ignored.
func NormalizeDeleteHbarAllowance(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (*HbarAllowanceParams, error) {
	parsed, err := deleteHbarAllowanceSchema.Parse(raw)
	if err != nil {
		return nil, err
	}
	return buildHbarAllowance(ctx, parsed, tctx, client, true)
}

func buildHbarAllowance(ctx context.Context, parsed map[string]any, tctx *core.Context, client hiero.NetworkClient, revoke bool) (*HbarAllowanceParams, error) {
	owner, err := ResolveAccount(stringArg(parsed, "ownerAccountId"), tctx, client)
	if err != nil {
		return nil, err
	}
	spender, err := hiero.ParseAccountID(stringArg(parsed, "spenderAccountId"))
	if err != nil {
		return nil, err
	}

	var amount hiero.Hbar
	if !revoke {
		d, _, err := decimalArg(parsed, "amount")
		if err != nil {
			return nil, err
		}
		amount, err = hiero.HbarFromDecimal(d)
		if err != nil {
			return nil, err
		}
	}

	p := &HbarAllowanceParams{
		OwnerAccountID:   owner,
		SpenderAccountID: spender,
		Amount:           amount,
		Memo:             stringArg(parsed, "transactionMemo"),
	}
	p.Scheduling, err = normalizeScheduling(ctx, parsed, tctx, client)
	if err != nil {
		return nil, err
	}
	return p, nil
}
