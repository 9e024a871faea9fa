package model

// EventType tags a calendar event.
type EventType string

// Event types.
const (
	EventMeeting  EventType = "meeting"
	EventDeadline EventType = "deadline"
	EventOther    EventType = "other"
)

// Valid reports whether t is a known event type.
func (t EventType) Valid() bool {
	return t == EventMeeting || t == EventDeadline || t == EventOther
}

// Team is the agency team an event belongs to.
type Team string

// Teams.
const (
	TeamSales    Team = "sales"
	TeamDirector Team = "director"
	TeamCreative Team = "creative"
)

// Valid reports whether t is a known team.
func (t Team) Valid() bool {
	return t == TeamSales || t == TeamDirector || t == TeamCreative
}

// ScheduleEvent is a team calendar entry. End is expected after Start but
// that is not enforced.
type ScheduleEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Start       Time      `json:"start"`
	End         Time      `json:"end"`
	Type        EventType `json:"type"`
	Team        Team      `json:"team"`
	Description string    `json:"description,omitempty"`
}

// ScheduleInput is the create and update payload for an event.
type ScheduleInput struct {
	Title       string    `json:"title"`
	Start       Time      `json:"start"`
	End         Time      `json:"end"`
	Type        EventType `json:"type"`
	Team        Team      `json:"team"`
	Description string    `json:"description,omitempty"`
}

// ScheduleQuery narrows a schedule listing. Empty fields are omitted.
type ScheduleQuery struct {
	Date string
	Team string
}
