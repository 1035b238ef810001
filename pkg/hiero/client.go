package hiero

import (
	"context"
	"fmt"
)

// Receipt is the network's acknowledgement of a submitted transaction. The
// entity id fields are populated per operation type (created account, token,
// topic, schedule, ...).
type Receipt struct {
	Status                 Status         `json:"status"`
	TransactionID          TransactionID  `json:"transactionId"`
	AccountID              *AccountID     `json:"accountId,omitempty"`
	TokenID                *TokenID       `json:"tokenId,omitempty"`
	TopicID                *TopicID       `json:"topicId,omitempty"`
	ContractID             *ContractID    `json:"contractId,omitempty"`
	ScheduleID             *ScheduleID    `json:"scheduleId,omitempty"`
	ScheduledTransactionID *TransactionID `json:"scheduledTransactionId,omitempty"`
	SerialNumbers          []int64        `json:"serialNumbers,omitempty"`
	TopicSequenceNumber    uint64         `json:"topicSequenceNumber,omitempty"`
	TotalSupply            uint64         `json:"totalSupply,omitempty"`
}

// NetworkClient is the write-path collaborator. It holds the open network
// connection and the operator identity; the toolkit never closes or mutates
// it, and never retries a submission. Implementations live outside this
// module (the toolkit deliberately does not reimplement protocol or signing).
type NetworkClient interface {
	// OperatorAccountID returns the client's operator account, if configured.
	OperatorAccountID() (AccountID, bool)

	// OperatorPublicKey returns the operator's public key, if known locally.
	OperatorPublicKey() (PublicKey, bool)

	// LedgerID identifies the target network (mainnet, testnet, ...).
	LedgerID() string

	// Submit sends a frozen transaction and awaits its receipt. A rejected
	// transaction is reported through Receipt.Status, not through err; err is
	// reserved for transport-level failures.
	Submit(ctx context.Context, tx *Transaction) (*Receipt, error)
}

// OfflineClient carries an operator identity without any signing or
// submission capability. It backs the return-bytes flow, where the caller
// signs and submits serialized transactions externally.
type OfflineClient struct {
	operator AccountID
	key      PublicKey
	ledger   string
}

// NewOfflineClient builds an offline client for the given ledger. Operator
// account and key may be zero when the caller supplies explicit ids.
func NewOfflineClient(ledger string, operator AccountID, key PublicKey) *OfflineClient {
	return &OfflineClient{operator: operator, key: key, ledger: ledger}
}

// OperatorAccountID returns the configured operator account.
func (c *OfflineClient) OperatorAccountID() (AccountID, bool) {
	return c.operator, !c.operator.IsZero()
}

// OperatorPublicKey returns the configured operator key.
func (c *OfflineClient) OperatorPublicKey() (PublicKey, bool) {
	return c.key, !c.key.IsZero()
}

// LedgerID returns the target network name.
func (c *OfflineClient) LedgerID() string { return c.ledger }

// Submit always fails: an offline client cannot sign.
func (c *OfflineClient) Submit(ctx context.Context, tx *Transaction) (*Receipt, error) {
	return nil, fmt.Errorf("offline client cannot submit transactions: configure a signing network client or use return-bytes mode")
}
