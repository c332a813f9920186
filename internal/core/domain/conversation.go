package domain

import "encoding/json"

// Role identifies the author of a conversation message.
type Role string

// Conversation roles.
const (
	// RoleSystem carries persona and behavioural instructions.
	RoleSystem Role = "system"

	// RoleUser carries end-user input.
	RoleUser Role = "user"

	// RoleAssistant carries model output, including tool-call requests.
	RoleAssistant Role = "assistant"

	// RoleTool carries the result of a single tool invocation.
	RoleTool Role = "tool"
)

// ChatMessage is a single turn in a conversation. The conversation is
// an append-only slice owned by one agent run; it is never shared
// across runs.
type ChatMessage struct {
	// Role is the message author.
	Role Role

	// Content is the message text. May be empty on assistant turns
	// that only request tool calls.
	Content string

	// ToolCalls holds the tool invocations requested by an assistant
	// turn, in the order the model emitted them.
	ToolCalls []ToolCall

	// ToolCallID links a tool-role message back to the assistant
	// tool call it answers.
	ToolCallID string
}

// SystemMessage builds a system-role message.
func SystemMessage(content string) ChatMessage {
	return ChatMessage{Role: RoleSystem, Content: content}
}

// UserMessage builds a user-role message.
func UserMessage(content string) ChatMessage {
	return ChatMessage{Role: RoleUser, Content: content}
}

// AssistantMessage builds an assistant-role message carrying any tool
// calls the model requested.
func AssistantMessage(content string, calls []ToolCall) ChatMessage {
	return ChatMessage{Role: RoleAssistant, Content: content, ToolCalls: calls}
}

// ToolMessage builds a tool-role message answering the given call.
func ToolMessage(callID, content string) ChatMessage {
	return ChatMessage{Role: RoleTool, Content: content, ToolCallID: callID}
}

// ToolCall is a model-requested tool invocation.
type ToolCall struct {
	// ID is the provider-assigned call identifier. Synthesised when
	// the provider does not supply one, so tool results always link
	// back to their call.
	ID string

	// Name is the tool to invoke.
	Name string

	// Arguments is the raw JSON argument payload as emitted by the
	// model. Parsed (and validated) at dispatch time, not here.
	Arguments string
}

// ToolSpec declares a tool the model may call.
type ToolSpec struct {
	// Name is the tool identifier presented to the model.
	Name string

	// Description tells the model when to use the tool.
	Description string

	// InputSchema is the JSON Schema for the tool's arguments.
	InputSchema json.RawMessage
}

// Completion is the outcome of a single model turn.
type Completion struct {
	// Content is the assistant text, empty when the turn only
	// requests tools.
	Content string

	// ToolCalls are the requested invocations, in emission order.
	ToolCalls []ToolCall
}

// HasToolCalls reports whether the turn requested any tool use.
func (c Completion) HasToolCalls() bool {
	return len(c.ToolCalls) > 0
}
