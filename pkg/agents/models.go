// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package agents

// MessageRole identifies the author of a thread message.
type MessageRole string

const (
	MessageRoleUser MessageRole = "user"
	// The service reports agent-authored messages with the assistant role.
	MessageRoleAgent MessageRole = "assistant"
)

// ListSortOrder controls the ordering of list operations.
type ListSortOrder string

const (
	ListSortOrderAscending  ListSortOrder = "asc"
	ListSortOrderDescending ListSortOrder = "desc"
)

// RunStatus is the poll-able state of an agent run.
type RunStatus string

const (
	RunStatusQueued         RunStatus = "queued"
	RunStatusInProgress     RunStatus = "in_progress"
	RunStatusRequiresAction RunStatus = "requires_action"
	RunStatusCompleted      RunStatus = "completed"
	RunStatusSucceeded      RunStatus = "succeeded"
	RunStatusFailed         RunStatus = "failed"
	RunStatusCancelled      RunStatus = "cancelled"
	RunStatusExpired        RunStatus = "expired"
)

// HasSucceeded returns true for the terminal success states. Some service
// versions report "completed" and others "succeeded"; both are accepted.
func (s RunStatus) HasSucceeded() bool {
	return s == RunStatusCompleted || s == RunStatusSucceeded
}

// HasFailed returns true for the terminal failure states.
func (s RunStatus) HasFailed() bool {
	return s == RunStatusFailed || s == RunStatusCancelled || s == RunStatusExpired
}

// IsTerminal reports whether the run has reached a final state.
func (s RunStatus) IsTerminal() bool {
	return s.HasSucceeded() || s.HasFailed()
}

// Agent is a model deployment bound to a set of instructions and tools.
type Agent struct {
	Id           string           `json:"id"`
	Name         string           `json:"name,omitempty"`
	Model        string           `json:"model,omitempty"`
	Instructions string           `json:"instructions,omitempty"`
	Tools        []ToolDefinition `json:"tools,omitempty"`
}

type CreateAgentRequest struct {
	Model        string           `json:"model"`
	Name         string           `json:"name,omitempty"`
	Instructions string           `json:"instructions,omitempty"`
	Tools        []ToolDefinition `json:"tools,omitempty"`
}

// ToolDefinition registers a tool for an agent or a run. Only MCP server
// registrations are used here; the service invokes the server itself.
type ToolDefinition struct {
	Type            string `json:"type"`
	ServerLabel     string `json:"server_label,omitempty"`
	ServerUrl       string `json:"server_url,omitempty"`
	RequireApproval string `json:"require_approval,omitempty"`
}

// NewMcpTool registers a remote MCP server with tool calls auto-approved.
func NewMcpTool(serverLabel string, serverUrl string) ToolDefinition {
	return ToolDefinition{
		Type:            "mcp",
		ServerLabel:     serverLabel,
		ServerUrl:       serverUrl,
		RequireApproval: "never",
	}
}

// AgentThread is a container for messages and runs.
type AgentThread struct {
	Id string `json:"id"`
}

// MessageInputBlock is one content block of an outgoing message: either text
// or an image reference.
type MessageInputBlock struct {
	Type     string         `json:"type"`
	Text     string         `json:"text,omitempty"`
	ImageUrl *ImageUrlParam `json:"image_url,omitempty"`
}

type ImageUrlParam struct {
	Url    string `json:"url"`
	Detail string `json:"detail,omitempty"`
}

func NewTextBlock(text string) *MessageInputBlock {
	return &MessageInputBlock{
		Type: "text",
		Text: text,
	}
}

func NewImageUrlBlock(url string, detail string) *MessageInputBlock {
	return &MessageInputBlock{
		Type: "image_url",
		ImageUrl: &ImageUrlParam{
			Url:    url,
			Detail: detail,
		},
	}
}

type CreateMessageRequest struct {
	Role    MessageRole          `json:"role"`
	Content []*MessageInputBlock `json:"content"`
}

// ThreadMessage is a message as returned by the service. Content items carry
// typed payloads; only text items are consumed here.
type ThreadMessage struct {
	Id      string            `json:"id"`
	Role    MessageRole       `json:"role"`
	Content []*MessageContent `json:"content"`
}

type MessageContent struct {
	Type string           `json:"type"`
	Text *MessageTextItem `json:"text,omitempty"`
}

type MessageTextItem struct {
	Value string `json:"value"`
}

type MessageListResponse struct {
	Data    []*ThreadMessage `json:"data"`
	HasMore bool             `json:"has_more"`
}

// ThreadRun is a single execution of an agent against a thread.
type ThreadRun struct {
	Id          string        `json:"id"`
	ThreadId    string        `json:"thread_id"`
	AssistantId string        `json:"assistant_id"`
	Status      RunStatus     `json:"status"`
	LastError   *RunLastError `json:"last_error,omitempty"`
}

type RunLastError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateRunRequest struct {
	AssistantId string           `json:"assistant_id"`
	Tools       []ToolDefinition `json:"tools,omitempty"`
}

// AgentDeletionStatus is returned when an agent is deleted.
type AgentDeletionStatus struct {
	Id      string `json:"id"`
	Deleted bool   `json:"deleted"`
}
