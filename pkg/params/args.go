// Package params holds the per-operation normalisers: pure functions that
// validate raw tool arguments against their declared schema, resolve default
// account/key references, convert display amounts into integer base units,
// and produce fully network-ready parameter bundles. No network submission
// happens here; the only I/O is read-only mirror lookups, and their failures
// propagate unchanged.
package params

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hashkit/hedera-agent-kit/pkg/core"
	"github.com/hashkit/hedera-agent-kit/pkg/hiero"
)

func stringArg(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func boolArg(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}

func int64Arg(m map[string]any, key string) (int64, bool) {
	v, ok := m[key].(int64)
	return v, ok
}

// decimalArg reads a numeric argument as an exact decimal. Schema parsing
// admits JSON numbers and numeric strings for KindNumber fields; both
// convert without binary floating-point drift (floats go through their
// shortest decimal representation).
func decimalArg(m map[string]any, key string) (decimal.Decimal, bool, error) {
	v, present := m[key]
	if !present {
		return decimal.Zero, false, nil
	}
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), true, nil
	case int64:
		return decimal.NewFromInt(n), true, nil
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Zero, true, fmt.Errorf("invalid numeric value %q for %s: %w", n, key, err)
		}
		return d, true, nil
	default:
		return decimal.Zero, true, fmt.Errorf("invalid numeric value for %s: %T", key, v)
	}
}

func anySliceArg(m map[string]any, key string) []any {
	v, _ := m[key].([]any)
	return v
}

// mirrorOf returns the context's mirror service or a descriptive error for
// tools that cannot proceed without one.
func mirrorOf(tctx *core.Context) (hiero.MirrorService, error) {
	if tctx == nil || tctx.Mirror == nil {
		return nil, fmt.Errorf("no mirror service configured in context")
	}
	return tctx.Mirror, nil
}
