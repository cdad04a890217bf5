package models

// ChatMessage is a single turn of the advisor conversation.
type ChatMessage struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// ChatRequest is the payload coming from the widget into /api/advisor/chat.
type ChatRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Text      string `json:"text" binding:"required"`
}

// ChatResponse is what the handler returns to the widget.
type ChatResponse struct {
	Reply string `json:"reply"`
}
