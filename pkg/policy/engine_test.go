package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashkit/hedera-agent-kit/pkg/core"
	"github.com/hashkit/hedera-agent-kit/pkg/hiero"
)

// stubPolicy blocks unconditionally and counts how often it was consulted.
type stubPolicy struct {
	name   string
	tools  []core.Method
	points []core.ExecutionPoint
	block  bool
	calls  int
}

func (p *stubPolicy) Name() string                          { return p.name }
func (p *stubPolicy) Description() string                   { return p.name }
func (p *stubPolicy) RelevantTools() []core.Method          { return p.tools }
func (p *stubPolicy) AffectedPoints() []core.ExecutionPoint { return p.points }

func (p *stubPolicy) ShouldBlock(point core.ExecutionPoint, method core.Method, subject any) bool {
	p.calls++
	return p.block
}

func allPoints() []core.ExecutionPoint {
	return []core.ExecutionPoint{
		core.PreToolExecution,
		core.PostParamsNormalization,
		core.PostAction,
		core.PostSubmit,
	}
}

func TestEngineFirstVetoWins(t *testing.T) {
	first := &stubPolicy{name: "first", points: allPoints(), block: true}
	second := &stubPolicy{name: "second", points: allPoints(), block: true}
	engine := NewEngine([]core.Policy{first, second}, nil)

	veto := engine.Check(core.PreToolExecution, core.MethodTransferHbar, nil)
	require.NotNil(t, veto)
	assert.Equal(t, "first", veto.Policy)
	assert.Equal(t, core.PreToolExecution, veto.Point)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls, "evaluation stops at the first veto")
}

func TestEngineSkipsByPoint(t *testing.T) {
	pre := &stubPolicy{name: "pre-only", points: []core.ExecutionPoint{core.PreToolExecution}, block: true}
	engine := NewEngine([]core.Policy{pre}, nil)

	assert.Nil(t, engine.Check(core.PostParamsNormalization, core.MethodTransferHbar, nil))
	assert.Equal(t, 0, pre.calls)

	assert.NotNil(t, engine.Check(core.PreToolExecution, core.MethodTransferHbar, nil))
	assert.Equal(t, 1, pre.calls)
}

func TestEngineSkipsByTool(t *testing.T) {
	scoped := &stubPolicy{
		name:   "scoped",
		tools:  []core.Method{core.MethodCreateTopic},
		points: allPoints(),
		block:  true,
	}
	engine := NewEngine([]core.Policy{scoped}, nil)

	assert.Nil(t, engine.Check(core.PreToolExecution, core.MethodTransferHbar, nil))
	assert.NotNil(t, engine.Check(core.PreToolExecution, core.MethodCreateTopic, nil))
}

func TestEngineEmptyToolListMatchesEverything(t *testing.T) {
	global := &stubPolicy{name: "global", points: allPoints(), block: false}
	engine := NewEngine([]core.Policy{global}, nil)

	engine.Check(core.PreToolExecution, core.MethodTransferHbar, nil)
	engine.Check(core.PostAction, core.MethodCreateTopic, nil)
	assert.Equal(t, 2, global.calls)
}

func TestAccountAllowlist(t *testing.T) {
	allowed, err := hiero.ParseAccountID("0.0.10")
	require.NoError(t, err)
	p := NewAccountAllowlist([]hiero.AccountID{allowed})

	t.Run("allowed account passes", func(t *testing.T) {
		raw := RawArguments{"accountId": "0.0.10"}
		assert.False(t, p.ShouldBlock(core.PreToolExecution, core.MethodTransferHbar, raw))
	})

	t.Run("unknown account blocked", func(t *testing.T) {
		raw := RawArguments{"sourceAccountId": "0.0.11"}
		assert.True(t, p.ShouldBlock(core.PreToolExecution, core.MethodTransferHbar, raw))
	})

	t.Run("no account reference passes", func(t *testing.T) {
		raw := RawArguments{"tokenId": "0.0.500"}
		assert.False(t, p.ShouldBlock(core.PreToolExecution, core.MethodTransferHbar, raw))
	})
}

func TestTokenDenylist(t *testing.T) {
	denied, err := hiero.ParseTokenID("0.0.666")
	require.NoError(t, err)
	p := NewTokenDenylist([]hiero.TokenID{denied})

	assert.True(t, p.ShouldBlock(core.PreToolExecution, core.MethodTransferFungibleToken,
		RawArguments{"tokenId": "0.0.666"}))
	assert.False(t, p.ShouldBlock(core.PreToolExecution, core.MethodTransferFungibleToken,
		RawArguments{"tokenId": "0.0.500"}))
}

// cappedTransfer is a minimal HbarMovements subject for the cap policy.
type cappedTransfer struct{ movements []hiero.AccountAmount }

func (c cappedTransfer) HbarMovements() []hiero.AccountAmount { return c.movements }

func TestMaxHbarTransfer(t *testing.T) {
	acct, err := hiero.ParseAccountID("0.0.2")
	require.NoError(t, err)
	p := NewMaxHbarTransfer(hiero.HbarFromTinybar(100))

	under := cappedTransfer{movements: []hiero.AccountAmount{
		{AccountID: acct, Amount: hiero.HbarFromTinybar(100)},
		{AccountID: acct, Amount: hiero.HbarFromTinybar(-100)},
	}}
	assert.False(t, p.ShouldBlock(core.PostParamsNormalization, core.MethodTransferHbar, under))

	over := cappedTransfer{movements: []hiero.AccountAmount{
		{AccountID: acct, Amount: hiero.HbarFromTinybar(101)},
		{AccountID: acct, Amount: hiero.HbarFromTinybar(-101)},
	}}
	assert.True(t, p.ShouldBlock(core.PostParamsNormalization, core.MethodTransferHbar, over))
}

// supplySubject is a minimal SupplySpec subject.
type supplySubject struct {
	supplyType hiero.SupplyType
	max        int64
}

func (s supplySubject) SupplySpec() (hiero.SupplyType, int64) { return s.supplyType, s.max }

func TestNoInfiniteSupply(t *testing.T) {
	p := NewNoInfiniteSupply()

	assert.True(t, p.ShouldBlock(core.PostParamsNormalization, core.MethodCreateFungibleToken,
		supplySubject{supplyType: hiero.SupplyTypeInfinite}))
	assert.False(t, p.ShouldBlock(core.PostParamsNormalization, core.MethodCreateFungibleToken,
		supplySubject{supplyType: hiero.SupplyTypeFinite, max: 100}))
	assert.False(t, p.ShouldBlock(core.PostParamsNormalization, core.MethodCreateFungibleToken,
		struct{}{}), "subjects without a supply shape pass")
}
