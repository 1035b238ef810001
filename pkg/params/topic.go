package params

import (
	"context"

	"github.com/hashkit/hedera-agent-kit/pkg/core"
	"github.com/hashkit/hedera-agent-kit/pkg/hiero"
	"github.com/hashkit/hedera-agent-kit/pkg/schema"
)

// CreateTopicParams is the network-ready bundle for consensus topic
// creation.
type CreateTopicParams struct {
	Memo          string
	AdminKey      *hiero.PublicKey
	SubmitKey     *hiero.PublicKey
	AutoRenewOwed hiero.AccountID
	Scheduling    *Scheduling
}

var createTopicSchema = schema.NewObject(
	append([]schema.Field{
		schema.String("topicMemo", "Optional topic memo."),
		schema.Bool("adminKey", "Topic admin key: true to use the operator key, or an explicit public key string."),
		schema.Bool("submitKey", "Restrict message submission: true to use the operator key, or an explicit public key string."),
	}, SchedulingFields()...)...,
)

// CreateTopicSchema describes the create_topic input shape.
func CreateTopicSchema() *schema.Object { return createTopicSchema }

// keyArg reads a bool-or-string key argument: true resolves the default
// key, a string is parsed as an explicit public key, false or absence
// yields nil.
func keyArg(ctx context.Context, parsed map[string]any, name string, tctx *core.Context, client hiero.NetworkClient) (*hiero.PublicKey, error) {
	switch v := parsed[name].(type) {
	case nil:
		return nil, nil
	case bool:
		if !v {
			return nil, nil
		}
		key, err := ResolvePublicKey(ctx, "", tctx, client)
		if err != nil {
			return nil, err
		}
		return &key, nil
	case string:
		key, err := hiero.ParsePublicKey(v)
		if err != nil {
			return nil, err
		}
		return &key, nil
	default:
		return nil, core.NewBusinessRuleError("%s must be a boolean or a public key string", name)
	}
}

// NormalizeCreateTopic validates a create_topic call.
func NormalizeCreateTopic(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (*CreateTopicParams, error) {
	parsed, err := createTopicSchema.Parse(raw)
	if err != nil {
		return nil, err
	}
	p := &CreateTopicParams{Memo: stringArg(parsed, "topicMemo")}

	p.AdminKey, err = keyArg(ctx, parsed, "adminKey", tctx, client)
	if err != nil {
		return nil, err
	}
	p.SubmitKey, err = keyArg(ctx, parsed, "submitKey", tctx, client)
	if err != nil {
		return nil, err
	}
	p.AutoRenewOwed, err = ResolveAccount("", tctx, client)
	if err != nil {
		return nil, err
	}
	p.Scheduling, err = normalizeScheduling(ctx, parsed, tctx, client)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// SubmitTopicMessageParams is the network-ready bundle for a consensus
// message submission.
type SubmitTopicMessageParams struct {
	TopicID    hiero.TopicID
	Message    []byte
	Memo       string
	Scheduling *Scheduling
}

var submitTopicMessageSchema = schema.NewObject(
	append([]schema.Field{
		schema.String("topicId", "Topic to submit to.").Req(),
		schema.String("message", "Message content; must not be empty.").Req(),
		schema.String("transactionMemo", "Optional memo attached to the transaction."),
	}, SchedulingFields()...)...,
)

// SubmitTopicMessageSchema describes the submit_topic_message input shape.
func SubmitTopicMessageSchema() *schema.Object { return submitTopicMessageSchema }

// NormalizeSubmitTopicMessage validates a submit_topic_message call.
func NormalizeSubmitTopicMessage(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (*SubmitTopicMessageParams, error) {
	parsed, err := submitTopicMessageSchema.Parse(raw)
	if err != nil {
		return nil, err
	}
	topicID, err := hiero.ParseTopicID(stringArg(parsed, "topicId"))
	if err != nil {
		return nil, err
	}
	message := stringArg(parsed, "message")
	if message == "" {
		return nil, core.NewBusinessRuleError("message must not be empty")
	}
	p := &SubmitTopicMessageParams{
		TopicID: topicID,
		Message: []byte(message),
		Memo:    stringArg(parsed, "transactionMemo"),
	}
	p.Scheduling, err = normalizeScheduling(ctx, parsed, tctx, client)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteTopicParams is the network-ready bundle for topic deletion.
type DeleteTopicParams struct {
	TopicID    hiero.TopicID
	Scheduling *Scheduling
}

var deleteTopicSchema = schema.NewObject(
	append([]schema.Field{
		schema.String("topicId", "Topic to delete.").Req(),
	}, SchedulingFields()...)...,
)

// DeleteTopicSchema describes the delete_topic input shape.
func DeleteTopicSchema() *schema.Object { return deleteTopicSchema }

// NormalizeDeleteTopic validates a delete_topic call.
func NormalizeDeleteTopic(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (*DeleteTopicParams, error) {
	parsed, err := deleteTopicSchema.Parse(raw)
	if err != nil {
		return nil, err
	}
	topicID, err := hiero.ParseTopicID(stringArg(parsed, "topicId"))
	if err != nil {
		return nil, err
	}
	p := &DeleteTopicParams{TopicID: topicID}
	p.Scheduling, err = normalizeScheduling(ctx, parsed, tctx, client)
	if err != nil {
		return nil, err
	}
	return p, nil
}
