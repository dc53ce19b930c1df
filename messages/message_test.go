package messages

import (
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Valid(t *testing.T) {
	for _, r := range []Role{RoleSystem, RoleUser, RoleAssistant, RoleTool} {
		assert.True(t, r.Valid(), "role %q should be valid", r)
	}
	assert.False(t, Role("moderator").Valid())
	assert.False(t, Role("").Valid())
}

func TestConstructors(t *testing.T) {
	t.Run("system", func(t *testing.T) {
		msg := System("be helpful")
		assert.Equal(t, RoleSystem, msg.Role)
		assert.Equal(t, "be helpful", msg.Content.Content)
		assert.False(t, time.Time(msg.Timestamp).IsZero())
	})

	t.Run("user", func(t *testing.T) {
		msg := User("hello")
		assert.Equal(t, RoleUser, msg.Role)
		assert.Equal(t, "hello", msg.Content.Content)
	})

	t.Run("user parts", func(t *testing.T) {
		msg := UserParts(Text("describe"), Image("https://example.com/cat.jpg"))
		assert.Equal(t, RoleUser, msg.Role)
		assert.Empty(t, msg.Content.Content)
		require.Len(t, msg.Content.Parts, 2)
	})

	t.Run("assistant", func(t *testing.T) {
		msg := Assistant("hi there")
		assert.Equal(t, RoleAssistant, msg.Role)
		assert.Equal(t, "hi there", msg.Content.Content)
	})

	t.Run("tool result", func(t *testing.T) {
		msg := ToolResult("call_1", `{"answer":42}`)
		assert.Equal(t, RoleTool, msg.Role)
		assert.Equal(t, "call_1", msg.ToolCallID)
		assert.Equal(t, `{"answer":42}`, msg.Content.Content)
	})
}

func TestMessage_JSONRoundTrip(t *testing.T) {
	msg := UserParts(Text("what is this"), Image("https://example.com/dog.jpg"))
	msg.Sender = "alice"

	data, err := json.Marshal(msg)
	require.NoError(t, err)

	var decoded Message
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, RoleUser, decoded.Role)
	assert.Equal(t, "alice", decoded.Sender)
	require.Len(t, decoded.Content.Parts, 2)
	assert.Equal(t, Text("what is this"), decoded.Content.Parts[0])
	assert.Equal(t, Image("https://example.com/dog.jpg"), decoded.Content.Parts[1])
}
