package params

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashkit/hedera-agent-kit/pkg/hiero"
)

func TestNormalizeCreateTopicKeys(t *testing.T) {
	key, err := hiero.ParsePublicKey(testKeyHex)
	require.NoError(t, err)
	client := &fakeClient{operatorKey: key}

	t.Run("no keys by default", func(t *testing.T) {
		p, err := NormalizeCreateTopic(context.Background(), map[string]any{
			"topicMemo": "announcements",
		}, testContext(nil), client)
		require.NoError(t, err)
		assert.Nil(t, p.AdminKey)
		assert.Nil(t, p.SubmitKey)
		assert.Equal(t, "announcements", p.Memo)
		assert.Equal(t, "0.0.1001", p.AutoRenewOwed.String())
	})

	t.Run("true resolves the operator key", func(t *testing.T) {
		p, err := NormalizeCreateTopic(context.Background(), map[string]any{
			"adminKey": true,
		}, testContext(nil), client)
		require.NoError(t, err)
		require.NotNil(t, p.AdminKey)
		assert.Equal(t, testKeyHex, p.AdminKey.String())
	})

	t.Run("explicit key string", func(t *testing.T) {
		p, err := NormalizeCreateTopic(context.Background(), map[string]any{
			"submitKey": testKeyHex,
		}, testContext(nil), client)
		require.NoError(t, err)
		require.NotNil(t, p.SubmitKey)
		assert.Equal(t, testKeyHex, p.SubmitKey.String())
	})

	t.Run("false means no key", func(t *testing.T) {
		p, err := NormalizeCreateTopic(context.Background(), map[string]any{
			"adminKey": false,
		}, testContext(nil), client)
		require.NoError(t, err)
		assert.Nil(t, p.AdminKey)
	})
}

func TestNormalizeSubmitTopicMessage(t *testing.T) {
	t.Run("valid message", func(t *testing.T) {
		p, err := NormalizeSubmitTopicMessage(context.Background(), map[string]any{
			"topicId": "0.0.700",
			"message": "hello consensus",
		}, testContext(nil), &fakeClient{})
		require.NoError(t, err)
		assert.Equal(t, "0.0.700", p.TopicID.String())
		assert.Equal(t, []byte("hello consensus"), p.Message)
	})

	t.Run("empty message rejected", func(t *testing.T) {
		_, err := NormalizeSubmitTopicMessage(context.Background(), map[string]any{
			"topicId": "0.0.700",
			"message": "",
		}, testContext(nil), &fakeClient{})
		require.Error(t, err)
		assert.Equal(t, "message must not be empty", err.Error())
	})
}

func TestNormalizeDeleteTopic(t *testing.T) {
	p, err := NormalizeDeleteTopic(context.Background(), map[string]any{
		"topicId": "0.0.700",
	}, testContext(nil), &fakeClient{})
	require.NoError(t, err)
	assert.Equal(t, "0.0.700", p.TopicID.String())
	assert.Nil(t, p.Scheduling)
}
