// Package core defines the shared contracts of the toolkit pipeline: the
// closed tool method enum, the per-call Context, the uniform ExecutionResult
// shape, the policy extension points, and the error taxonomy. Every other
// pipeline package depends on core; core depends only on the hiero domain
// types.
package core

// Method is the closed enumeration of tool identifiers. Agent frameworks
// address tools by the stable string value at the boundary; inside the
// toolkit routing goes through the typed enum and the registration table,
// never through free-form strings.
type Method string

const (
	// Account operations.
	MethodTransferHbar         Method = "transfer_hbar"
	MethodCreateAccount        Method = "create_account"
	MethodDeleteAccount        Method = "delete_account"
	MethodApproveHbarAllowance Method = "approve_hbar_allowance"
	MethodDeleteHbarAllowance  Method = "delete_hbar_allowance"

	// Token operations.
	MethodCreateFungibleToken    Method = "create_fungible_token"
	MethodCreateNonFungibleToken Method = "create_non_fungible_token"
	MethodMintFungibleToken      Method = "mint_fungible_token"
	MethodMintNFT                Method = "mint_nft"
	MethodTransferFungibleToken  Method = "transfer_fungible_token"
	MethodTransferNFT            Method = "transfer_nft"
	MethodApproveTokenAllowance  Method = "approve_token_allowance"
	MethodAirdropFungibleToken   Method = "airdrop_fungible_token"
	MethodClaimAirdrop           Method = "claim_airdrop"

	// Consensus topic operations.
	MethodCreateTopic        Method = "create_topic"
	MethodSubmitTopicMessage Method = "submit_topic_message"
	MethodDeleteTopic        Method = "delete_topic"

	// EVM contract operations.
	MethodExecuteContract Method = "execute_contract"
	MethodCallContract    Method = "call_contract"

	// Mirror queries.
	MethodGetHbarBalance        Method = "get_hbar_balance"
	MethodGetAccountInfo        Method = "get_account_info"
	MethodGetTokenInfo          Method = "get_token_info"
	MethodGetPendingAirdrops    Method = "get_pending_airdrops"
	MethodGetTransactionRecord  Method = "get_transaction_record"
)

func (m Method) String() string { return string(m) }
