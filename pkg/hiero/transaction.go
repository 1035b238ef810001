package hiero

import (
	"fmt"
	"time"

	canonicaljson "github.com/gibson042/canonicaljson-go"
)

// TransactionBody is the closed set of operation payloads a Transaction can
// carry. Bodies are pure data; construction and ordering rules live on the
// methods below.
type TransactionBody interface {
	TransactionType() string
}

// AccountAmount is one signed HBAR posting. A full transfer list must sum to
// zero; approved postings spend a pre-authorized allowance instead of the
// sender's own signature.
type AccountAmount struct {
	AccountID  AccountID `json:"accountId"`
	Amount     Hbar      `json:"amount"`
	IsApproval bool      `json:"isApproval,omitempty"`
}

// TokenAmount is one signed token posting in base units.
type TokenAmount struct {
	AccountID  AccountID `json:"accountId"`
	Amount     int64     `json:"amount"`
	IsApproval bool      `json:"isApproval,omitempty"`
}

// NFTTransfer moves a single serial between two accounts.
type NFTTransfer struct {
	Sender     AccountID `json:"sender"`
	Receiver   AccountID `json:"receiver"`
	Serial     int64     `json:"serial"`
	IsApproval bool      `json:"isApproval,omitempty"`
}

// TokenTransferList groups the postings for one token class.
type TokenTransferList struct {
	TokenID          TokenID       `json:"tokenId"`
	Transfers        []TokenAmount `json:"transfers,omitempty"`
	NFTTransfers     []NFTTransfer `json:"nftTransfers,omitempty"`
	ExpectedDecimals *uint32       `json:"expectedDecimals,omitempty"`
}

// CryptoTransferBody moves HBAR and/or tokens between accounts.
type CryptoTransferBody struct {
	Transfers      []AccountAmount     `json:"transfers,omitempty"`
	TokenTransfers []TokenTransferList `json:"tokenTransfers,omitempty"`
}

func (*CryptoTransferBody) TransactionType() string { return "CryptoTransfer" }

// AddApprovedHbarTransfer appends an allowance-spending posting. Approved
// postings must precede ordinary ones: the zero-sum check walks the list in
// order and attributes approved debits to the allowance, not the payer.
func (b *CryptoTransferBody) AddApprovedHbarTransfer(account AccountID, amount Hbar) error {
	for _, t := range b.Transfers {
		if !t.IsApproval {
			return fmt.Errorf("approved transfer for %s must be added before ordinary transfers", account)
		}
	}
	b.Transfers = append(b.Transfers, AccountAmount{AccountID: account, Amount: amount, IsApproval: true})
	return nil
}

// AddHbarTransfer appends an ordinary posting.
func (b *CryptoTransferBody) AddHbarTransfer(account AccountID, amount Hbar) {
	b.Transfers = append(b.Transfers, AccountAmount{AccountID: account, Amount: amount})
}

// Validate checks the zero-sum invariant for the HBAR list and every token
// transfer list.
func (b *CryptoTransferBody) Validate() error {
	var sum int64
	for _, t := range b.Transfers {
		sum += t.Amount.Tinybar()
	}
	if sum != 0 {
		return fmt.Errorf("hbar transfer list sums to %d tinybar, want 0", sum)
	}
	for _, tl := range b.TokenTransfers {
		var tsum int64
		for _, t := range tl.Transfers {
			tsum += t.Amount
		}
		if tsum != 0 {
			return fmt.Errorf("token %s transfer list sums to %d, want 0", tl.TokenID, tsum)
		}
	}
	return nil
}

// AccountCreateBody creates an account controlled by the given key.
type AccountCreateBody struct {
	Key                      PublicKey `json:"key"`
	InitialBalance           Hbar      `json:"initialBalance"`
	Memo                     string    `json:"memo,omitempty"`
	MaxAutoTokenAssociations int32     `json:"maxAutomaticTokenAssociations,omitempty"`
}

func (*AccountCreateBody) TransactionType() string { return "CryptoCreateAccount" }

// AccountDeleteBody deletes an account, sweeping its remaining balance to
// the transfer account.
type AccountDeleteBody struct {
	DeleteAccountID   AccountID `json:"deleteAccountId"`
	TransferAccountID AccountID `json:"transferAccountId"`
}

func (*AccountDeleteBody) TransactionType() string { return "CryptoDelete" }

// HbarAllowance authorizes a spender to move up to Amount of the owner's
// HBAR. Amount zero revokes the allowance.
type HbarAllowance struct {
	OwnerAccountID   AccountID `json:"ownerAccountId"`
	SpenderAccountID AccountID `json:"spenderAccountId"`
	Amount           Hbar      `json:"amount"`
}

// TokenAllowance authorizes a spender for a fungible token, in base units.
type TokenAllowance struct {
	TokenID          TokenID   `json:"tokenId"`
	OwnerAccountID   AccountID `json:"ownerAccountId"`
	SpenderAccountID AccountID `json:"spenderAccountId"`
	Amount           int64     `json:"amount"`
}

// NFTAllowance authorizes a spender for specific serials of an NFT class.
type NFTAllowance struct {
	TokenID          TokenID   `json:"tokenId"`
	OwnerAccountID   AccountID `json:"ownerAccountId"`
	SpenderAccountID AccountID `json:"spenderAccountId"`
	Serials          []int64   `json:"serials"`
}

// CryptoApproveAllowanceBody grants or revokes allowances.
type CryptoApproveAllowanceBody struct {
	HbarAllowances  []HbarAllowance  `json:"hbarAllowances,omitempty"`
	TokenAllowances []TokenAllowance `json:"tokenAllowances,omitempty"`
	NFTAllowances   []NFTAllowance   `json:"nftAllowances,omitempty"`
}

func (*CryptoApproveAllowanceBody) TransactionType() string { return "CryptoApproveAllowance" }

// TokenType distinguishes fungible from non-fungible token classes.
type TokenType string

const (
	TokenTypeFungible    TokenType = "FUNGIBLE_COMMON"
	TokenTypeNonFungible TokenType = "NON_FUNGIBLE_UNIQUE"
)

// SupplyType distinguishes capped from uncapped token supplies.
type SupplyType string

const (
	SupplyTypeFinite   SupplyType = "FINITE"
	SupplyTypeInfinite SupplyType = "INFINITE"
)

// TokenCreateBody creates a token class.
type TokenCreateBody struct {
	Name            string     `json:"name"`
	Symbol          string     `json:"symbol"`
	TokenType       TokenType  `json:"tokenType"`
	Decimals        uint32     `json:"decimals"`
	InitialSupply   uint64     `json:"initialSupply"`
	TreasuryAccount AccountID  `json:"treasuryAccountId"`
	SupplyType      SupplyType `json:"supplyType"`
	MaxSupply       int64      `json:"maxSupply,omitempty"`
	AdminKey        *PublicKey `json:"adminKey,omitempty"`
	SupplyKey       *PublicKey `json:"supplyKey,omitempty"`
	Memo            string     `json:"memo,omitempty"`
}

func (*TokenCreateBody) TransactionType() string { return "TokenCreate" }

// TokenMintBody mints fungible supply (Amount, base units) or NFT serials
// (one per Metadata entry).
type TokenMintBody struct {
	TokenID  TokenID  `json:"tokenId"`
	Amount   uint64   `json:"amount,omitempty"`
	Metadata [][]byte `json:"metadata,omitempty"`
}

func (*TokenMintBody) TransactionType() string { return "TokenMint" }

// TokenAirdropBody distributes tokens; recipients without an association
// receive a pending airdrop instead of an immediate credit.
type TokenAirdropBody struct {
	TokenTransfers []TokenTransferList `json:"tokenTransfers"`
}

func (*TokenAirdropBody) TransactionType() string { return "TokenAirdrop" }

// PendingAirdropID names one pending airdrop awaiting a claim.
type PendingAirdropID struct {
	SenderID   AccountID `json:"senderId"`
	ReceiverID AccountID `json:"receiverId"`
	TokenID    TokenID   `json:"tokenId"`
	Serial     *int64    `json:"serial,omitempty"`
}

// TokenClaimAirdropBody claims pending airdrops for the receiver.
type TokenClaimAirdropBody struct {
	PendingAirdrops []PendingAirdropID `json:"pendingAirdrops"`
}

func (*TokenClaimAirdropBody) TransactionType() string { return "TokenClaimAirdrop" }

// TopicCreateBody creates a consensus topic.
type TopicCreateBody struct {
	Memo      string     `json:"memo,omitempty"`
	AdminKey  *PublicKey `json:"adminKey,omitempty"`
	SubmitKey *PublicKey `json:"submitKey,omitempty"`
}

func (*TopicCreateBody) TransactionType() string { return "ConsensusCreateTopic" }

// TopicSubmitMessageBody appends a message to a topic.
type TopicSubmitMessageBody struct {
	TopicID TopicID `json:"topicId"`
	Message []byte  `json:"message"`
}

func (*TopicSubmitMessageBody) TransactionType() string { return "ConsensusSubmitMessage" }

// TopicDeleteBody deletes a topic; requires its admin key.
type TopicDeleteBody struct {
	TopicID TopicID `json:"topicId"`
}

func (*TopicDeleteBody) TransactionType() string { return "ConsensusDeleteTopic" }

// ContractExecuteBody calls a contract function on the write path.
// FunctionParameters is the ABI-encoded calldata (selector + arguments).
type ContractExecuteBody struct {
	ContractID         ContractID `json:"contractId"`
	Gas                uint64     `json:"gas"`
	PayableAmount      Hbar       `json:"payableAmount,omitempty"`
	FunctionParameters []byte     `json:"functionParameters,omitempty"`
}

func (*ContractExecuteBody) TransactionType() string { return "ContractCall" }

// ScheduleCreateBody wraps another transaction for deferred execution.
type ScheduleCreateBody struct {
	Inner          TransactionBody `json:"scheduledTransaction"`
	InnerType      string          `json:"scheduledTransactionType"`
	AdminKey       *PublicKey      `json:"adminKey,omitempty"`
	PayerAccountID *AccountID      `json:"payerAccountId,omitempty"`
	ExpirationTime *time.Time      `json:"expirationTime,omitempty"`
	WaitForExpiry  bool            `json:"waitForExpiry,omitempty"`
}

func (*ScheduleCreateBody) TransactionType() string { return "ScheduleCreate" }

// Transaction is a constructed-but-unsubmitted transaction. It is owned by
// the execution strategy for the duration of one call and never retained.
type Transaction struct {
	body          TransactionBody
	memo          string
	transactionID *TransactionID
	frozen        bool
}

// NewTransaction wraps a body into an unfrozen transaction.
func NewTransaction(body TransactionBody) *Transaction {
	return &Transaction{body: body}
}

// Body returns the operation payload.
func (t *Transaction) Body() TransactionBody { return t.body }

// SetMemo attaches a transaction memo. Fails after freezing.
func (t *Transaction) SetMemo(memo string) error {
	if t.frozen {
		return fmt.Errorf("transaction is frozen")
	}
	t.memo = memo
	return nil
}

// Memo returns the transaction memo.
func (t *Transaction) Memo() string { return t.memo }

// Freeze assigns the transaction id (payer + valid-start) and locks the
// transaction. Transfer bodies are checked for the zero-sum invariant here.
func (t *Transaction) Freeze(payer AccountID, validStart time.Time) error {
	if t.frozen {
		return fmt.Errorf("transaction already frozen")
	}
	if payer.IsZero() {
		return fmt.Errorf("cannot freeze without a payer account")
	}
	if body, ok := t.body.(*CryptoTransferBody); ok {
		if err := body.Validate(); err != nil {
			return err
		}
	}
	id := NewTransactionID(payer, validStart)
	t.transactionID = &id
	t.frozen = true
	return nil
}

// IsFrozen reports whether the transaction id has been assigned.
func (t *Transaction) IsFrozen() bool { return t.frozen }

// TransactionID returns the assigned id, or nil before freezing.
func (t *Transaction) TransactionID() *TransactionID { return t.transactionID }

// txEnvelope is the wire shape serialized by Bytes.
type txEnvelope struct {
	TransactionID string          `json:"transactionId"`
	Type          string          `json:"type"`
	Memo          string          `json:"memo,omitempty"`
	Body          TransactionBody `json:"body"`
}

// Bytes serializes the frozen, unsigned transaction deterministically.
// Callers in the return-bytes flow sign and submit these externally, so the
// encoding must be canonical: the same transaction always yields the same
// bytes.
func (t *Transaction) Bytes() ([]byte, error) {
	if !t.frozen {
		return nil, fmt.Errorf("transaction must be frozen before serialization")
	}
	return canonicaljson.Marshal(txEnvelope{
		TransactionID: t.transactionID.String(),
		Type:          t.body.TransactionType(),
		Memo:          t.memo,
		Body:          t.body,
	})
}
