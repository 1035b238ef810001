package core

import "fmt"

// RawStatusError is the domain sentinel status reported when a tool
// invocation fails before or during submission.
const RawStatusError = "INVALID_TRANSACTION"

// ExecutionResult is the uniform outcome of a tool invocation: either the
// unsigned transaction bytes (return-bytes mode) or a raw result object plus
// a human-readable message. Tool execution never surfaces an exception to
// the calling agent framework; every failure is folded into this shape.
type ExecutionResult struct {
	// Bytes carries the frozen, unsigned transaction in return-bytes mode.
	Bytes []byte `json:"bytes,omitempty"`

	// Raw carries status, transactionId and operation-specific fields.
	// Raw["scheduleId"] is present iff the transaction was scheduled.
	Raw map[string]any `json:"raw,omitempty"`

	// HumanMessage is the agent-facing summary.
	HumanMessage string `json:"humanMessage,omitempty"`

	// BlockedBy names the vetoing policy when the pipeline was aborted.
	BlockedBy string `json:"blockedBy,omitempty"`
}

// IsBytes reports whether the result carries unsigned transaction bytes.
func (r *ExecutionResult) IsBytes() bool { return len(r.Bytes) > 0 }

// IsBlocked reports whether a policy vetoed the invocation.
func (r *ExecutionResult) IsBlocked() bool { return r.BlockedBy != "" }

// BytesResult wraps serialized unsigned transaction bytes.
func BytesResult(b []byte) *ExecutionResult {
	return &ExecutionResult{
		Bytes:        b,
		HumanMessage: "Transaction bytes ready for external signing and submission.",
	}
}

// ErrorResult folds a failure into the uniform result shape.
func ErrorResult(err error) *ExecutionResult {
	return &ExecutionResult{
		Raw: map[string]any{
			"status": RawStatusError,
			"error":  err.Error(),
		},
		HumanMessage: err.Error(),
	}
}

// BlockedResult reports a policy veto, naming the offending policy.
func BlockedResult(policyName string, point ExecutionPoint) *ExecutionResult {
	msg := fmt.Sprintf("Execution blocked by policy %q at %s", policyName, point)
	return &ExecutionResult{
		Raw: map[string]any{
			"status": RawStatusError,
			"error":  msg,
			"policy": policyName,
		},
		HumanMessage: msg,
		BlockedBy:    policyName,
	}
}
