package messages

import (
	"time"

	"github.com/go-openapi/strfmt"
)

// Role identifies the author of a conversational turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Valid reports whether the role is a member of the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant, RoleTool:
		return true
	default:
		return false
	}
}

// Message is one conversational turn. Once appended to a conversation a
// message is treated as immutable.
type Message struct {
	Role       Role            `json:"role"`
	Content    ContentOrParts  `json:"content"`
	Sender     string          `json:"sender,omitempty"`
	ToolCallID string          `json:"tool_call_id,omitempty"`
	Timestamp  strfmt.DateTime `json:"timestamp"`
	_          struct{}        // require keyed usage
}

// System creates a system message with the given instructions.
func System(content string) Message {
	return Message{
		Role:      RoleSystem,
		Content:   ContentOrParts{Content: content},
		Timestamp: strfmt.DateTime(time.Now()),
	}
}

// User creates a user message with plain text content.
func User(content string) Message {
	return Message{
		Role:      RoleUser,
		Content:   ContentOrParts{Content: content},
		Timestamp: strfmt.DateTime(time.Now()),
	}
}

// UserParts creates a user message with multi-part content.
func UserParts(parts ...ContentPart) Message {
	return Message{
		Role:      RoleUser,
		Content:   ContentOrParts{Parts: parts},
		Timestamp: strfmt.DateTime(time.Now()),
	}
}

// Assistant creates an assistant message with plain text content.
func Assistant(content string) Message {
	return Message{
		Role:      RoleAssistant,
		Content:   ContentOrParts{Content: content},
		Timestamp: strfmt.DateTime(time.Now()),
	}
}

// ToolResult creates a tool message carrying the output of a tool invocation.
// The call id links the result back to the provider-issued tool call.
func ToolResult(callID, content string) Message {
	return Message{
		Role:       RoleTool,
		Content:    ContentOrParts{Content: content},
		ToolCallID: callID,
		Timestamp:  strfmt.DateTime(time.Now()),
	}
}
