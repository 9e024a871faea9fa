package model

// BoardItem is the director board row summarizing one client.
type BoardItem struct {
	ClientID           string       `json:"client_id"`
	Name               string       `json:"name"`
	Phase              ClientPhase  `json:"phase"`
	Status             ClientStatus `json:"status"`
	OnboardingProgress *float64     `json:"onboarding_progress,omitempty"`
	OpenTasksCount     int          `json:"open_tasks_count"`
	LastContactAt      *Time        `json:"last_contact_at,omitempty"`
	HasAlert           bool         `json:"has_alert"`
}

// BoardItemFromClient builds a row from a client and its open task count.
func BoardItemFromClient(c Client, openTasks int) BoardItem {
	return BoardItem{
		ClientID:           c.ID,
		Name:               c.Name,
		Phase:              c.Phase,
		Status:             c.Status,
		OnboardingProgress: c.OnboardingProgress,
		OpenTasksCount:     openTasks,
		LastContactAt:      c.LastContactAt,
		HasAlert:           c.HasAlert,
	}
}
