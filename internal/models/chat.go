package models

// Sender identifies who authored a chat message
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ChatMessage is a single entry in a conversation. History is owned by the
// caller; the service itself keeps no session state.
type ChatMessage struct {
	ID       string    `json:"id"`
	Sender   Sender    `json:"sender"`
	Text     string    `json:"text"`
	Products []Product `json:"products,omitempty"`
}

// ChatRequest carries one user utterance
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// AssistantReply is the assistant's output contract: a response text and
// the products it is talking about (possibly empty, never nil).
type AssistantReply struct {
	Text     string    `json:"text"`
	Products []Product `json:"products"`
}

type ChatResponse struct {
	Success bool         `json:"success"`
	Data    *ChatMessage `json:"data"`
}
