package params

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashkit/hedera-agent-kit/pkg/core"
	"github.com/hashkit/hedera-agent-kit/pkg/hiero"
)

func TestResolveAccountPriorityOrder(t *testing.T) {
	client := &fakeClient{operator: mustAccountID(t, "0.0.9999")}
	tctx := &core.Context{AccountID: "0.0.1001"}

	t.Run("explicit wins", func(t *testing.T) {
		id, err := ResolveAccount("0.0.7", tctx, client)
		require.NoError(t, err)
		assert.Equal(t, "0.0.7", id.String())
	})

	t.Run("context default second", func(t *testing.T) {
		id, err := ResolveAccount("", tctx, client)
		require.NoError(t, err)
		assert.Equal(t, "0.0.1001", id.String())
	})

	t.Run("operator last", func(t *testing.T) {
		id, err := ResolveAccount("", &core.Context{}, client)
		require.NoError(t, err)
		assert.Equal(t, "0.0.9999", id.String())
	})

	t.Run("nothing resolvable", func(t *testing.T) {
		_, err := ResolveAccount("", &core.Context{}, &fakeClient{})
		require.Error(t, err)
		var rerr *core.ResolutionError
		require.ErrorAs(t, err, &rerr)
		assert.Contains(t, err.Error(), "no explicit value, no context default, and no client operator identity")
	})
}

func TestResolvePublicKeyMirrorFallback(t *testing.T) {
	key, err := hiero.ParsePublicKey(testKeyHex)
	require.NoError(t, err)

	mirror := &fakeMirror{accounts: map[string]*hiero.AccountInfo{
		"0.0.1001": {AccountID: mustAccountID(t, "0.0.1001"), Key: &key},
	}}
	tctx := &core.Context{AccountID: "0.0.1001", Mirror: mirror}

	resolved, err := ResolvePublicKey(context.Background(), "", tctx, &fakeClient{})
	require.NoError(t, err)
	assert.Equal(t, testKeyHex, resolved.String())
}

func TestResolvePublicKeyExplicitSkipsMirror(t *testing.T) {
	resolved, err := ResolvePublicKey(context.Background(), testKeyHex, &core.Context{}, &fakeClient{})
	require.NoError(t, err)
	assert.Equal(t, testKeyHex, resolved.String())
}
