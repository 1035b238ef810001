package tools

import (
	"context"
	"fmt"

	"github.com/hashkit/hedera-agent-kit/pkg/builder"
	"github.com/hashkit/hedera-agent-kit/pkg/core"
	"github.com/hashkit/hedera-agent-kit/pkg/hiero"
	"github.com/hashkit/hedera-agent-kit/pkg/params"
	"github.com/hashkit/hedera-agent-kit/pkg/tool"
)

// CreateTopicTool creates a consensus topic.
func CreateTopicTool() *tool.Tool {
	return &tool.Tool{
		Method:      core.MethodCreateTopic,
		Name:        "create_topic",
		Description: "Create a consensus topic, optionally restricted by admin and submit keys.",
		Parameters:  params.CreateTopicSchema(),
		Normalize: func(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (any, error) {
			return params.NormalizeCreateTopic(ctx, raw, tctx, client)
		},
		Build: func(normalized any) (*hiero.Transaction, *params.Scheduling, error) {
			p := normalized.(*params.CreateTopicParams)
			tx, err := builder.BuildCreateTopic(p)
			return tx, p.Scheduling, err
		},
		PostProcess: func(normalized any, receipt *hiero.Receipt, raw map[string]any) string {
			if receipt.TopicID != nil {
				raw["topicId"] = receipt.TopicID.String()
				return fmt.Sprintf("Successfully created topic %s. Transaction id %s.", receipt.TopicID, receipt.TransactionID)
			}
			return fmt.Sprintf("Successfully created topic. Transaction id %s.", receipt.TransactionID)
		},
	}
}

// SubmitTopicMessageTool appends a message to a topic.
func SubmitTopicMessageTool() *tool.Tool {
	return &tool.Tool{
		Method:      core.MethodSubmitTopicMessage,
		Name:        "submit_topic_message",
		Description: "Submit a message to an existing consensus topic.",
		Parameters:  params.SubmitTopicMessageSchema(),
		Normalize: func(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (any, error) {
			return params.NormalizeSubmitTopicMessage(ctx, raw, tctx, client)
		},
		Build: func(normalized any) (*hiero.Transaction, *params.Scheduling, error) {
			p := normalized.(*params.SubmitTopicMessageParams)
			tx, err := builder.BuildSubmitTopicMessage(p)
			return tx, p.Scheduling, err
		},
		PostProcess: func(normalized any, receipt *hiero.Receipt, raw map[string]any) string {
			p := normalized.(*params.SubmitTopicMessageParams)
			if receipt.TopicSequenceNumber > 0 {
				raw["topicSequenceNumber"] = receipt.TopicSequenceNumber
			}
			return fmt.Sprintf("Successfully submitted message to topic %s. Transaction id %s.", p.TopicID, receipt.TransactionID)
		},
	}
}

// DeleteTopicTool deletes a consensus topic.
func DeleteTopicTool() *tool.Tool {
	return &tool.Tool{
		Method:      core.MethodDeleteTopic,
		Name:        "delete_topic",
		Description: "Delete a consensus topic; requires the topic's admin key.",
		Parameters:  params.DeleteTopicSchema(),
		Normalize: func(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (any, error) {
			return params.NormalizeDeleteTopic(ctx, raw, tctx, client)
		},
		Build: func(normalized any) (*hiero.Transaction, *params.Scheduling, error) {
			p := normalized.(*params.DeleteTopicParams)
			tx, err := builder.BuildDeleteTopic(p)
			return tx, p.Scheduling, err
		},
		PostProcess: func(normalized any, receipt *hiero.Receipt, raw map[string]any) string {
			p := normalized.(*params.DeleteTopicParams)
			return fmt.Sprintf("Successfully deleted topic %s. Transaction id %s.", p.TopicID, receipt.TransactionID)
		},
	}
}
