package domain

import "time"

// Role constants for conversation turns.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is a single role-tagged entry in the conversation history.
// Only Role and Content go over the wire; ID and Timestamp are local.
type Turn struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatRequest is sent to the streaming completion endpoint.
type ChatRequest struct {
	Model     string `json:"model"`
	System    string `json:"system,omitempty"`
	MaxTokens int    `json:"max_tokens,omitempty"`
	Turns     []Turn `json:"turns"`
}

// Feedback is a thumbs rating recorded against one assistant turn.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackUp
	FeedbackDown
)
