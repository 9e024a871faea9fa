package model

// ChatStart is the opening of an intake chat session.
type ChatStart struct {
	SessionID    string  `json:"session_id"`
	ClientName   *string `json:"client_name,omitempty"`
	FirstMessage string  `json:"first_message"`
}

// ChatMessage is a user turn.
type ChatMessage struct {
	UserMessage string `json:"user_message"`
}

// ChatReply is the assistant turn. Done means the session accepts no more
// input.
type ChatReply struct {
	AssistantMessage string `json:"assistant_message"`
	Done             bool   `json:"done"`
}

// PulseLink is a shareable intake-form link.
type PulseLink struct {
	URL   string `json:"url"`
	Token string `json:"token,omitempty"`
}
