package model

// Notification is an in-app message addressed to one staff member.
type Notification struct {
	ID        string `json:"id"`
	User      string `json:"user"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt Time   `json:"created_at"`
	ReadAt    *Time  `json:"read_at,omitempty"`
}

// Unread reports whether n has not been marked read.
func (n Notification) Unread() bool { return n.ReadAt == nil }

// NotificationInput is the body of a create request. The recipient travels
// as the user query parameter.
type NotificationInput struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
