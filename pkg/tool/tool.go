// Package tool implements the execution pipeline every toolkit operation
// runs through: policy gate, parameter normalisation, policy gate,
// build-and-route, policy gates around the submission, post-processing.
// Failures never escape as errors or panics; every outcome is folded into a
// core.ExecutionResult.
package tool

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/hashkit/hedera-agent-kit/pkg/core"
	"github.com/hashkit/hedera-agent-kit/pkg/execmode"
	"github.com/hashkit/hedera-agent-kit/pkg/hiero"
	"github.com/hashkit/hedera-agent-kit/pkg/params"
	"github.com/hashkit/hedera-agent-kit/pkg/policy"
	"github.com/hashkit/hedera-agent-kit/pkg/schema"
)

// NormalizeFunc validates raw arguments into a network-ready bundle.
type NormalizeFunc func(ctx context.Context, raw map[string]any, tctx *core.Context, client hiero.NetworkClient) (any, error)

// BuildFunc assembles an unsubmitted transaction from a normalised bundle.
// Write-path tools set this; query tools leave it nil.
type BuildFunc func(normalized any) (*hiero.Transaction, *params.Scheduling, error)

// QueryFunc performs a read-only lookup. Query tools set this; write-path
// tools leave it nil.
type QueryFunc func(ctx context.Context, normalized any, tctx *core.Context, client hiero.NetworkClient) (map[string]any, error)

// PostProcessFunc shapes the final result: it may add operation-specific
// fields to raw and returns the human-readable summary. Receipt is nil on
// the query path.
type PostProcessFunc func(normalized any, receipt *hiero.Receipt, raw map[string]any) string

// Tool is one agent-callable operation. The Execute pipeline is shared;
// the per-operation behavior is supplied through the function fields.
type Tool struct {
	Method      core.Method
	Name        string
	Description string
	Parameters  *schema.Object

	Normalize   NormalizeFunc
	Build       BuildFunc
	Query       QueryFunc
	PostProcess PostProcessFunc
}

// Executor runs tools through the pipeline with a fixed logger and mode
// strategy. One executor serves any number of concurrent invocations.
type Executor struct {
	logger   *logrus.Logger
	strategy *execmode.Strategy
}

// NewExecutor constructs the pipeline runner.
func NewExecutor(logger *logrus.Logger) *Executor {
	if logger == nil {
		logger = logrus.New()
	}
	return &Executor{logger: logger, strategy: execmode.NewStrategy(logger)}
}

// Execute runs one tool invocation end to end. It never returns an error
// and never panics: validation failures, policy vetoes, resolution
// failures and transport errors all come back inside the result.
func (e *Executor) Execute(ctx context.Context, t *Tool, tctx *core.Context, client hiero.NetworkClient, raw map[string]any) (result *core.ExecutionResult) {
	requestID := uuid.NewString()
	log := e.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"tool":       t.Name,
		"method":     t.Method,
	})

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("tool panicked: %v", r)
			result = core.ErrorResult(fmt.Errorf("internal error executing %s: %v", t.Name, r))
		}
	}()

	if tctx == nil {
		tctx = &core.Context{}
	}
	engine := policy.NewEngine(tctx.Policies, e.logger)

	if veto := engine.Check(core.PreToolExecution, t.Method, policy.RawArguments(raw)); veto != nil {
		return core.BlockedResult(veto.Policy, veto.Point)
	}

	normalized, err := t.Normalize(ctx, raw, tctx, client)
	if err != nil {
		log.WithError(err).Debug("parameter normalisation failed")
		return core.ErrorResult(err)
	}

	if veto := engine.Check(core.PostParamsNormalization, t.Method, normalized); veto != nil {
		return core.BlockedResult(veto.Policy, veto.Point)
	}

	if t.Query != nil {
		return e.runQuery(ctx, t, tctx, client, normalized, engine, log)
	}
	return e.runWrite(ctx, t, tctx, client, normalized, engine, log)
}

func (e *Executor) runQuery(ctx context.Context, t *Tool, tctx *core.Context, client hiero.NetworkClient, normalized any, engine *policy.Engine, log *logrus.Entry) *core.ExecutionResult {
	raw, err := t.Query(ctx, normalized, tctx, client)
	if err != nil {
		log.WithError(err).Debug("query failed")
		return core.ErrorResult(err)
	}
	if veto := engine.Check(core.PostAction, t.Method, raw); veto != nil {
		return core.BlockedResult(veto.Policy, veto.Point)
	}
	if raw == nil {
		raw = map[string]any{}
	}
	raw["status"] = string(hiero.StatusSuccess)
	message := defaultMessage(t.Name)
	if t.PostProcess != nil {
		message = t.PostProcess(normalized, nil, raw)
	}
	return finalGate(engine, t.Method, &core.ExecutionResult{Raw: raw, HumanMessage: message})
}

func (e *Executor) runWrite(ctx context.Context, t *Tool, tctx *core.Context, client hiero.NetworkClient, normalized any, engine *policy.Engine, log *logrus.Entry) *core.ExecutionResult {
	tx, sched, err := t.Build(normalized)
	if err != nil {
		log.WithError(err).Debug("transaction assembly failed")
		return core.ErrorResult(err)
	}

	outcome, err := e.strategy.Handle(ctx, tx, sched, tctx, client)
	if err != nil {
		log.WithError(err).Debug("execution strategy failed")
		return core.ErrorResult(err)
	}

	if veto := engine.Check(core.PostAction, t.Method, outcome); veto != nil {
		return core.BlockedResult(veto.Policy, veto.Point)
	}

	if outcome.Bytes != nil {
		return finalGate(engine, t.Method, core.BytesResult(outcome.Bytes))
	}

	receipt := outcome.Receipt
	raw := map[string]any{
		"status":        string(receipt.Status),
		"transactionId": receipt.TransactionID.String(),
	}
	if receipt.ScheduleID != nil {
		raw["scheduleId"] = receipt.ScheduleID.String()
	}
	if !receipt.Status.IsSuccess() {
		message := fmt.Sprintf("Transaction failed with status %s", receipt.Status)
		raw["error"] = message
		return finalGate(engine, t.Method, &core.ExecutionResult{Raw: raw, HumanMessage: message})
	}

	message := defaultMessage(t.Name)
	if t.PostProcess != nil {
		message = t.PostProcess(normalized, receipt, raw)
	}
	return finalGate(engine, t.Method, &core.ExecutionResult{Raw: raw, HumanMessage: message})
}

// finalGate runs the last policy stage against the fully shaped result, so
// policies see the same object the caller would receive.
func finalGate(engine *policy.Engine, method core.Method, result *core.ExecutionResult) *core.ExecutionResult {
	if veto := engine.Check(core.PostSubmit, method, result); veto != nil {
		return core.BlockedResult(veto.Policy, veto.Point)
	}
	return result
}

func defaultMessage(name string) string {
	return fmt.Sprintf("Operation %s completed successfully.", name)
}
