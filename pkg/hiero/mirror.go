package hiero

import "context"

// AccountInfo is the mirror-node view of an account.
type AccountInfo struct {
	AccountID      AccountID  `json:"accountId"`
	Key            *PublicKey `json:"key,omitempty"`
	BalanceTinybar int64      `json:"balanceTinybar"`
	EVMAddress     string     `json:"evmAddress,omitempty"`
	Memo           string     `json:"memo,omitempty"`
	Deleted        bool       `json:"deleted,omitempty"`
}

// TokenInfo is the mirror-node view of a token class. Decimals drives
// display-unit to base-unit scaling in the normaliser.
type TokenInfo struct {
	TokenID     TokenID    `json:"tokenId"`
	Name        string     `json:"name"`
	Symbol      string     `json:"symbol"`
	Decimals    uint32     `json:"decimals"`
	TotalSupply uint64     `json:"totalSupply"`
	Type        TokenType  `json:"type"`
	SupplyType  SupplyType `json:"supplyType"`
	Treasury    AccountID  `json:"treasuryAccountId"`
}

// PendingAirdrop is one outstanding airdrop awaiting a claim by Receiver.
type PendingAirdrop struct {
	SenderID   AccountID `json:"senderId"`
	ReceiverID AccountID `json:"receiverId"`
	TokenID    TokenID   `json:"tokenId"`
	Amount     int64     `json:"amount,omitempty"`
	Serial     *int64    `json:"serial,omitempty"`
}

// TransactionRecord is the mirror-node view of a finalized transaction.
type TransactionRecord struct {
	TransactionID      string          `json:"transactionId"`
	Status             Status          `json:"status"`
	ConsensusTimestamp string          `json:"consensusTimestamp"`
	Memo               string          `json:"memo,omitempty"`
	Transfers          []AccountAmount `json:"transfers,omitempty"`
}

// ContractCallRequest is a read-only EVM call evaluated by the mirror node.
type ContractCallRequest struct {
	ContractID ContractID
	Data       []byte
	Estimate   bool
}

// MirrorService is the read-path collaborator: historical and ledger-state
// lookups independent of the write-path client. All calls are read-only and
// their failures propagate unmodified; the toolkit performs no retries.
type MirrorService interface {
	AccountInfo(ctx context.Context, id AccountID) (*AccountInfo, error)
	AccountBalance(ctx context.Context, id AccountID) (Hbar, error)
	TokenInfo(ctx context.Context, id TokenID) (*TokenInfo, error)
	PendingAirdrops(ctx context.Context, receiver AccountID) ([]PendingAirdrop, error)
	TransactionRecord(ctx context.Context, transactionID string) (*TransactionRecord, error)
	ContractCall(ctx context.Context, req ContractCallRequest) ([]byte, error)
}
