package tool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashkit/hedera-agent-kit/pkg/core"
)

func namedTool(method core.Method, name string) *Tool {
	return &Tool{Method: method, Name: name, Parameters: echoSchema()}
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(namedTool(core.MethodTransferHbar, "transfer_hbar")))
	require.NoError(t, r.Register(namedTool(core.MethodCreateTopic, "create_topic")))

	byMethod, ok := r.Get(core.MethodTransferHbar)
	require.True(t, ok)
	assert.Equal(t, "transfer_hbar", byMethod.Name)

	byName, ok := r.GetByName("create_topic")
	require.True(t, ok)
	assert.Equal(t, core.MethodCreateTopic, byName.Method)

	_, ok = r.GetByName("unknown_tool")
	assert.False(t, ok)
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(namedTool(core.MethodTransferHbar, "transfer_hbar")))

	assert.Error(t, r.Register(namedTool(core.MethodTransferHbar, "other_name")))
	assert.Error(t, r.Register(namedTool(core.MethodCreateTopic, "transfer_hbar")))
}

func TestRegistryAllSortedByName(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(namedTool(core.MethodCreateTopic, "create_topic")))
	require.NoError(t, r.Register(namedTool(core.MethodAirdropFungibleToken, "airdrop_fungible_token")))
	require.NoError(t, r.Register(namedTool(core.MethodTransferHbar, "transfer_hbar")))

	all := r.All()
	require.Len(t, all, 3)
	assert.Equal(t, "airdrop_fungible_token", all[0].Name)
	assert.Equal(t, "create_topic", all[1].Name)
	assert.Equal(t, "transfer_hbar", all[2].Name)
}

func TestMustRegisterPanicsOnDuplicate(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(namedTool(core.MethodTransferHbar, "transfer_hbar"))
	assert.Panics(t, func() {
		r.MustRegister(namedTool(core.MethodTransferHbar, "transfer_hbar"))
	})
}
