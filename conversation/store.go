package conversation

import (
	"errors"
	"fmt"
	"slices"

	"github.com/alphadose/haxmap"
	"github.com/casualjim/brainstorm/messages"
	"github.com/google/uuid"
)

// ErrEmptyContent is returned when a message with no content is appended.
// Persisted messages always carry at least one content part.
var ErrEmptyContent = errors.New("message content must not be empty")

// NotFoundError indicates that an operation referenced an unknown
// conversation identifier.
type NotFoundError struct {
	ID uuid.UUID
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("conversation %s not found", e.ID)
}

// Conversation is an ordered sequence of messages plus its identifier.
// Message order is append-only and reflects turn order exactly as
// sent/received; there is no reordering or deduplication.
type Conversation struct {
	id       uuid.UUID
	messages []messages.Message
}

// ID returns the conversation's unique identifier.
func (c *Conversation) ID() uuid.UUID {
	return c.id
}

// Len returns the number of messages in the conversation.
func (c *Conversation) Len() int {
	return len(c.messages)
}

// Messages returns a copy of the conversation's messages in stored order.
func (c *Conversation) Messages() []messages.Message {
	return slices.Clone(c.messages)
}

// Store holds all conversations for one agent, keyed by conversation id.
type Store struct {
	conversations *haxmap.Map[string, *Conversation]
}

// New creates an empty conversation store.
func New() *Store {
	return &Store{
		conversations: haxmap.New[string, *Conversation](),
	}
}

// Begin allocates a fresh unique identifier, registers an empty conversation
// under it, and returns the identifier.
func (s *Store) Begin() uuid.UUID {
	id := uuid.Must(uuid.NewV7())
	s.conversations.Set(id.String(), &Conversation{id: id})
	return id
}

// Append adds one message at the end of the identified conversation.
// It fails with NotFoundError for an unregistered identifier and with
// ErrEmptyContent for a message without content. There is no size cap;
// unbounded growth is accepted.
func (s *Store) Append(id uuid.UUID, msg messages.Message) error {
	conv, ok := s.conversations.Get(id.String())
	if !ok {
		return NotFoundError{ID: id}
	}
	if !msg.Role.Valid() {
		return fmt.Errorf("invalid message role %q", msg.Role)
	}
	if msg.Content.Empty() {
		return ErrEmptyContent
	}
	conv.messages = append(conv.messages, msg)
	return nil
}

// Serialize returns the ordered message sequence for the identified
// conversation, suitable for transmission to a provider. The content is not
// transformed; the returned slice is a copy.
func (s *Store) Serialize(id uuid.UUID) ([]messages.Message, error) {
	conv, ok := s.conversations.Get(id.String())
	if !ok {
		return nil, NotFoundError{ID: id}
	}
	return conv.Messages(), nil
}

// Len returns the number of messages in the identified conversation.
func (s *Store) Len(id uuid.UUID) (int, error) {
	conv, ok := s.conversations.Get(id.String())
	if !ok {
		return 0, NotFoundError{ID: id}
	}
	return conv.Len(), nil
}
