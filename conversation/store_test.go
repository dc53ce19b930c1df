package conversation

import (
	"fmt"
	"testing"

	"github.com/casualjim/brainstorm/messages"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Begin(t *testing.T) {
	store := New()

	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 100; i++ {
		cid := store.Begin()
		assert.False(t, seen[cid], "identifiers must be unique")
		seen[cid] = true

		n, err := store.Len(cid)
		require.NoError(t, err)
		assert.Zero(t, n)
	}
}

func TestStore_Append_OrderPreserved(t *testing.T) {
	store := New()
	id := store.Begin()

	for i := 0; i < 10; i++ {
		require.NoError(t, store.Append(id, messages.User(fmt.Sprintf("turn %d", i))))
	}

	history, err := store.Serialize(id)
	require.NoError(t, err)
	require.Len(t, history, 10)
	for i, msg := range history {
		assert.Equal(t, fmt.Sprintf("turn %d", i), msg.Content.Content)
	}
}

func TestStore_Append_NotFound(t *testing.T) {
	store := New()

	err := store.Append(uuid.New(), messages.User("hello"))
	var nfe NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Contains(t, err.Error(), "not found")
}

func TestStore_Append_EmptyContent(t *testing.T) {
	store := New()
	id := store.Begin()

	err := store.Append(id, messages.User(""))
	require.ErrorIs(t, err, ErrEmptyContent)

	n, err := store.Len(id)
	require.NoError(t, err)
	assert.Zero(t, n, "rejected message must not be persisted")
}

func TestStore_Append_InvalidRole(t *testing.T) {
	store := New()
	id := store.Begin()

	msg := messages.User("hello")
	msg.Role = "moderator"
	require.Error(t, store.Append(id, msg))
}

func TestStore_Serialize_ReturnsCopy(t *testing.T) {
	store := New()
	id := store.Begin()
	require.NoError(t, store.Append(id, messages.User("original")))

	history, err := store.Serialize(id)
	require.NoError(t, err)
	history[0] = messages.User("mutated")

	again, err := store.Serialize(id)
	require.NoError(t, err)
	assert.Equal(t, "original", again[0].Content.Content)
}

func TestStore_Serialize_NotFound(t *testing.T) {
	store := New()
	_, err := store.Serialize(uuid.New())
	var nfe NotFoundError
	require.ErrorAs(t, err, &nfe)
}

func TestStore_Len_NotFound(t *testing.T) {
	store := New()
	_, err := store.Len(uuid.New())
	var nfe NotFoundError
	require.ErrorAs(t, err, &nfe)
}
