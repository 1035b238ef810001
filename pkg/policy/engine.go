package policy

import (
	"github.com/sirupsen/logrus"

	"github.com/hashkit/hedera-agent-kit/pkg/core"
)

// Veto records which policy aborted the pipeline and at which point.
type Veto struct {
	Policy string
	Point  core.ExecutionPoint
}

// Engine evaluates a fixed, ordered policy list against one pipeline stage
// at a time. Policies whose RelevantTools or AffectedPoints do not match are
// skipped; matching policies run in registration order and the first veto
// wins. Vetoes are never aggregated.
type Engine struct {
	policies []core.Policy
	logger   *logrus.Logger
}

// NewEngine builds an engine over the given policies.
func NewEngine(policies []core.Policy, logger *logrus.Logger) *Engine {
	if logger == nil {
		logger = logrus.New()
	}
	return &Engine{policies: policies, logger: logger}
}

// Check evaluates the stage and returns the first veto, or nil when every
// matching policy passes.
func (e *Engine) Check(point core.ExecutionPoint, method core.Method, subject any) *Veto {
	for _, p := range e.policies {
		if !appliesTo(p, point, method) {
			continue
		}
		if p.ShouldBlock(point, method, subject) {
			e.logger.Warnf("Policy %s vetoed %s at %s", p.Name(), method, point)
			return &Veto{Policy: p.Name(), Point: point}
		}
	}
	return nil
}

func appliesTo(p core.Policy, point core.ExecutionPoint, method core.Method) bool {
	if !containsPoint(p.AffectedPoints(), point) {
		return false
	}
	tools := p.RelevantTools()
	if len(tools) == 0 {
		return true
	}
	return containsMethod(tools, method)
}

func containsPoint(points []core.ExecutionPoint, p core.ExecutionPoint) bool {
	for _, v := range points {
		if v == p {
			return true
		}
	}
	return false
}

func containsMethod(methods []core.Method, m core.Method) bool {
	for _, v := range methods {
		if v == m {
			return true
		}
	}
	return false
}
