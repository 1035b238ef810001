package hiero

// Status is a network response code as reported in a transaction receipt.
// Non-success statuses are ordinary results, not errors: the execution
// strategy surfaces them verbatim and leaves retry policy to the caller.
type Status string

const (
	StatusSuccess             Status = "SUCCESS"
	StatusInvalidTransaction  Status = "INVALID_TRANSACTION"
	StatusInsufficientBalance Status = "INSUFFICIENT_PAYER_BALANCE"
	StatusInvalidSignature    Status = "INVALID_SIGNATURE"
	StatusInvalidAccountID    Status = "INVALID_ACCOUNT_ID"
	StatusInvalidTokenID      Status = "INVALID_TOKEN_ID"
	StatusInvalidTopicID      Status = "INVALID_TOPIC_ID"
	StatusContractRevert      Status = "CONTRACT_REVERT_EXECUTED"
)

// IsSuccess reports whether the status indicates the transaction was applied.
func (s Status) IsSuccess() bool { return s == StatusSuccess }

func (s Status) String() string { return string(s) }
