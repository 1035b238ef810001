package params

import (
	"context"

	"github.com/hashkit/hedera-agent-kit/pkg/core"
	"github.com/hashkit/hedera-agent-kit/pkg/hiero"
	"github.com/hashkit/hedera-agent-kit/pkg/schema"
)

// TransferHbarParams is the network-ready bundle for an HBAR transfer.
// Transfers holds the explicit credit postings plus, unless the transfer
// spends an allowance, the synthesized offsetting debit; the whole set sums
// to exactly zero tinybar. Allowance spends keep their debit in
// ApprovedDebit, a distinct approved posting.
type TransferHbarParams struct {
	Transfers       []hiero.AccountAmount
	ApprovedDebit   *hiero.AccountAmount
	SourceAccountID hiero.AccountID
	Memo            string
	Scheduling      *Scheduling
}

// AccountRef exposes the resolved source for policy inspection.
func (p *TransferHbarParams) AccountRef() (hiero.AccountID, bool) {
	return p.SourceAccountID, true
}

// HbarMovements exposes the full signed posting set, approved debit
// included.
func (p *TransferHbarParams) HbarMovements() []hiero.AccountAmount {
	if p.ApprovedDebit == nil {
		return p.Transfers
	}
	all := make([]hiero.AccountAmount, 0, len(p.Transfers)+1)
	all = append(all, *p.ApprovedDebit)
	all = append(all, p.Transfers...)
	return all
}

var transferHbarSchema = schema.NewObject(
	append([]schema.Field{
		schema.Array("transfers", "Recipients to credit.",
			schema.ObjectField("", "One credit posting.",
				schema.String("accountId", "Recipient account id (shard.realm.num or EVM address).").Req(),
				schema.Number("amount", "Amount in HBAR to credit; must be greater than zero.").Req(),
			),
		).Req().Min(1),
		schema.String("sourceAccountId", "Account to debit; defaults to the context account or the operator."),
		schema.Bool("useAllowance", "Spend a pre-approved HBAR allowance of the source account instead of its own balance."),
		schema.String("transactionMemo", "Optional memo attached to the transaction."),
	}, SchedulingFields()...)...,
)

// TransferHbarSchema describes the transfer_hbar input shape.
func TransferHbarSchema() *schema.Object { return transferHbarSchema }

// NormalizeTransferHbar validates a transfer_hbar call and synthesizes the
// offsetting debit: N explicit credits produce one debit of the negated sum
// on the resolved source account, guaranteeing the zero-sum invariant.
func NormalizeTransferHbar(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (*TransferHbarParams, error) {
	parsed, err := transferHbarSchema.Parse(raw)
	if err != nil {
		return nil, err
	}

	p := &TransferHbarParams{Memo: stringArg(parsed, "transactionMemo")}

	var total hiero.Hbar
	for _, item := range anySliceArg(parsed, "transfers") {
		entry := item.(map[string]any)
		amount, _, err := decimalArg(entry, "amount")
		if err != nil {
			return nil, err
		}
		if !amount.IsPositive() {
			return nil, core.NewBusinessRuleError("Invalid transfer amount: %s", amount)
		}
		tinybar, err := hiero.HbarFromDecimal(amount)
		if err != nil {
			return nil, err
		}
		recipient, err := hiero.ParseAccountID(stringArg(entry, "accountId"))
		if err != nil {
			return nil, err
		}
		p.Transfers = append(p.Transfers, hiero.AccountAmount{AccountID: recipient, Amount: tinybar})
		total += tinybar
	}

	source, err := ResolveAccount(stringArg(parsed, "sourceAccountId"), tctx, client)
	if err != nil {
		return nil, err
	}
	p.SourceAccountID = source

	debit := hiero.AccountAmount{AccountID: source, Amount: total.Negated()}
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
