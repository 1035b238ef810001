// Package llm adapts the tool catalog to OpenAI function calling: the
// catalog becomes the function set of a chat loop, tool calls are executed
// through the shared runtime, and results are fed back as tool messages.
package llm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"

	"github.com/hashkit/hedera-agent-kit/internal/runtime"
)

const systemPrompt = `You are a Hedera network assistant. You operate the network
exclusively through the provided tools: transfers, accounts, tokens, topics,
contracts and mirror queries. Amounts are in display units (HBAR, token
display units). When a tool fails, report the error to the user; never retry
on your own.`

// maxToolRounds bounds the tool-call loop per user message.
const maxToolRounds = 8

// Agent is an OpenAI-backed chat agent over the tool catalog.
type Agent struct {
	rt     *runtime.Runtime
	client *openai.Client
	model  string
	logger *logrus.Logger
}

// NewAgent builds the chat agent.
func NewAgent(rt *runtime.Runtime, apiKey, model string) *Agent {
	if model == "" {
		model = openai.GPT4o
	}
	return &Agent{
		rt:     rt,
		client: openai.NewClient(apiKey),
		model:  model,
		logger: rt.Logger,
	}
}

// functionDefinitions renders the catalog as OpenAI tool definitions.
func (a *Agent) functionDefinitions() []openai.Tool {
	var defs []openai.Tool
	for _, t := range a.rt.Registry.All() {
		defs = append(defs, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters.JSONSchema(),
			},
		})
	}
	return defs
}

// Chat runs one user message through the chat loop, executing any tool
// calls the model requests, and returns the final assistant reply.
func (a *Agent) Chat(ctx context.Context, userMessage string) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: userMessage},
	}
	tools := a.functionDefinitions()

	for round := 0; round < maxToolRounds; round++ {
		resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    a.model,
			Messages: messages,
			Tools:    tools,
		})
		if err != nil {
			return "", fmt.Errorf("chat completion: %w", err)
		}
		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("chat completion returned no choices")
		}

		choice := resp.Choices[0].Message
		if len(choice.ToolCalls) == 0 {
			return choice.Content, nil
		}

		messages = append(messages, choice)
		for _, call := range choice.ToolCalls {
			messages = append(messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				ToolCallID: call.ID,
				Content:    a.executeToolCall(ctx, call),
			})
		}
	}
	return "", fmt.Errorf("model did not produce a final answer within %d tool rounds", maxToolRounds)
}

func (a *Agent) executeToolCall(ctx context.Context, call openai.ToolCall) string {
	t, ok := a.rt.Registry.GetByName(call.Function.Name)
	if !ok {
		return fmt.Sprintf(`{"error": "unknown tool %q"}`, call.Function.Name)
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(call.Function.Arguments), &raw); err != nil {
		return fmt.Sprintf(`{"error": "invalid tool arguments: %v"}`, err)
	}

	a.logger.WithField("tool", t.Name).Debug("executing model-requested tool call")
	result := a.rt.Executor.Execute(ctx, t, a.rt.Context, a.rt.Client, raw)

	payload := map[string]any{"humanMessage": result.HumanMessage}
	if result.IsBytes() {
		payload["bytes"] = base64.StdEncoding.EncodeToString(result.Bytes)
	}
	if result.Raw != nil {
		payload["raw"] = result.Raw
	}
	if result.IsBlocked() {
		payload["blockedBy"] = result.BlockedBy
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(body)
}
