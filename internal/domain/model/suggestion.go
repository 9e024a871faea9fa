package model

// SuggestionStatus is the review state of an AI draft.
type SuggestionStatus string

// Suggestion statuses.
const (
	SuggestionDraft    SuggestionStatus = "draft"
	SuggestionApproved SuggestionStatus = "approved"
	SuggestionSent     SuggestionStatus = "sent"
)

// AiSuggestion is a generated message draft for a client. Suggestions are
// append-only per client.
type AiSuggestion struct {
	ID        string           `json:"id"`
	ClientID  string           `json:"client_id"`
	Type      string           `json:"type"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	Status    SuggestionStatus `json:"status"`
	CreatedBy string           `json:"created_by"`
	CreatedAt Time             `json:"created_at"`
	UpdatedAt Time             `json:"updated_at"`
}
