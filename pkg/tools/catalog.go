package tools

import "github.com/hashkit/hedera-agent-kit/pkg/tool"

// DefaultRegistry assembles the complete built-in tool catalog.
func DefaultRegistry() *tool.Registry {
	r := tool.NewRegistry()
	for _, t := range []*tool.Tool{
		TransferHbarTool(),
		CreateAccountTool(),
		DeleteAccountTool(),
		ApproveHbarAllowanceTool(),
		DeleteHbarAllowanceTool(),
		CreateFungibleTokenTool(),
		CreateNonFungibleTokenTool(),
		MintFungibleTokenTool(),
		MintNFTTool(),
		TransferFungibleTokenTool(),
		TransferNFTTool(),
		ApproveTokenAllowanceTool(),
		AirdropFungibleTokenTool(),
		ClaimAirdropTool(),
		CreateTopicTool(),
		SubmitTopicMessageTool(),
		DeleteTopicTool(),
		ExecuteContractTool(),
		CallContractTool(),
		GetHbarBalanceTool(),
		GetAccountInfoTool(),
		GetTokenInfoTool(),
		GetPendingAirdropsTool(),
		GetTransactionRecordTool(),
	} {
		r.MustRegister(t)
	}
	return r
}
