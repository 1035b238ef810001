package core

// ExecutionPoint is one of the four fixed policy interception stages of a
// tool invocation. Stages run in declaration order; a veto at any stage
// aborts the pipeline immediately.
type ExecutionPoint string

const (
	// PreToolExecution runs against the raw, pre-normalisation arguments.
	PreToolExecution ExecutionPoint = "preToolExecution"

	// PostParamsNormalization runs against the normalised parameter bundle.
	PostParamsNormalization ExecutionPoint = "postParamsNormalization"

	// PostAction runs against the result of the core transaction action.
	PostAction ExecutionPoint = "postAction"

	// PostSubmit runs against the fully finalized result object.
	PostSubmit ExecutionPoint = "postSubmit"
)

// Policy is a stateless-per-call predicate evaluated by the interception
// engine. Implementations may hold configuration (allow-lists, caps) set at
// construction and are reused across many invocations; ShouldBlock must not
// mutate the subject it inspects.
//
// Subjects are probed through the small capability interfaces in pkg/policy
// (AccountRef, TokenRefs, HbarMovements, SupplySpec) rather than through
// untyped field access.
type Policy interface {
	// Name identifies the policy in blocked results.
	Name() string

	// Description explains what the policy enforces.
	Description() string

	// RelevantTools lists the methods the policy applies to. An empty list
	// means every tool.
	RelevantTools() []Method

	// AffectedPoints lists the stages at which the policy runs.
	AffectedPoints() []ExecutionPoint

	// ShouldBlock reports whether the candidate subject must be vetoed.
	ShouldBlock(point ExecutionPoint, method Method, subject any) bool
}
