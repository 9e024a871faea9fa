package model

// ClientStatus is the coarse contract state of a client.
type ClientStatus string

// Client statuses.
const (
	StatusPreContract ClientStatus = "pre_contract"
	StatusContracted  ClientStatus = "contracted"
)

// Valid reports whether s is a known status.
func (s ClientStatus) Valid() bool {
	return s == StatusPreContract || s == StatusContracted
}

// Toggle flips between the two statuses. Toggling twice is the identity.
func (s ClientStatus) Toggle() ClientStatus {
	if s == StatusContracted {
		return StatusPreContract
	}
	return StatusContracted
}

// ClientPhase is the client's position in the sales-to-delivery funnel.
// Phase and status are independent; any phase may be set directly.
type ClientPhase string

// Client phases in funnel order.
const (
	PhaseHearing   ClientPhase = "hearing"
	PhaseProposal  ClientPhase = "proposal"
	PhaseEstimate  ClientPhase = "estimate"
	PhaseContract  ClientPhase = "contract"
	PhaseKickoff   ClientPhase = "kickoff"
	PhaseOperation ClientPhase = "operation"
)

// Phases lists every phase in funnel order.
var Phases = []ClientPhase{PhaseHearing, PhaseProposal, PhaseEstimate, PhaseContract, PhaseKickoff, PhaseOperation}

// Valid reports whether p is a known phase.
func (p ClientPhase) Valid() bool {
	for _, known := range Phases {
		if p == known {
			return true
		}
	}
	return false
}

// PulseResponse is the latest intake questionnaire submission for a client.
type PulseResponse struct {
	ID                string         `json:"id"`
	ClientID          string         `json:"client_id"`
	Problem           string         `json:"problem,omitempty"`
	CurrentSNS        string         `json:"current_sns,omitempty"`
	Target            string         `json:"target,omitempty"`
	ProductSummary    string         `json:"product_summary,omitempty"`
	StrengthsUSP      string         `json:"strengths_usp,omitempty"`
	BrandStory        string         `json:"brand_story,omitempty"`
	ReferenceAccounts []string       `json:"reference_accounts,omitempty"`
	RawPayload        map[string]any `json:"raw_payload,omitempty"`
	SubmittedAt       Time           `json:"submitted_at"`
}

// PulseAnswers is the body of an intake form submission.
type PulseAnswers struct {
	Token             string         `json:"token"`
	Problem           string         `json:"problem,omitempty"`
	CurrentSNS        string         `json:"current_sns,omitempty"`
	Target            string         `json:"target,omitempty"`
	ProductSummary    string         `json:"product_summary,omitempty"`
	StrengthsUSP      string         `json:"strengths_usp,omitempty"`
	BrandStory        string         `json:"brand_story,omitempty"`
	ReferenceAccounts []string       `json:"reference_accounts,omitempty"`
	RawPayload        map[string]any `json:"raw_payload,omitempty"`
}

// Client is an agency customer or prospect. It owns at most one live
// PulseResponse plus its tasks and AI suggestions.
type Client struct {
	ID                    string         `json:"id"`
	Name                  string         `json:"name"`
	Industry              string         `json:"industry"`
	Status                ClientStatus   `json:"status"`
	Phase                 ClientPhase    `json:"phase"`
	SalesOwner            string         `json:"sales_owner,omitempty"`
	DirectorOwner         string         `json:"director_owner,omitempty"`
	SlackURL              string         `json:"slack_url,omitempty"`
	Memo                  string         `json:"memo,omitempty"`
	OnboardingCompletedAt *Time          `json:"onboarding_completed_at,omitempty"`
	LastContactAt         *Time          `json:"last_contact_at,omitempty"`
	CreatedAt             Time           `json:"created_at"`
	UpdatedAt             Time           `json:"updated_at"`
	OnboardingProgress    *float64       `json:"onboarding_progress,omitempty"`
	HasAlert              bool           `json:"has_alert"`
	LatestPulseResponse   *PulseResponse `json:"latest_pulse_response,omitempty"`
}

// CreateClient is the payload for registering a client.
// Name, Industry and Status are required; Phase defaults to hearing.
type CreateClient struct {
	Name          string       `json:"name"`
	Industry      string       `json:"industry"`
	Status        ClientStatus `json:"status"`
	Phase         ClientPhase  `json:"phase,omitempty"`
	SalesOwner    string       `json:"sales_owner,omitempty"`
	DirectorOwner string       `json:"director_owner,omitempty"`
	SlackURL      string       `json:"slack_url,omitempty"`
	Memo          string       `json:"memo,omitempty"`
	LastContactAt *Time        `json:"last_contact_at,omitempty"`
}

// ClientPatch is a partial client update. Nil fields are left untouched.
type ClientPatch struct {
	Name                  *string       `json:"name,omitempty"`
	Industry              *string       `json:"industry,omitempty"`
	Status                *ClientStatus `json:"status,omitempty"`
	Phase                 *ClientPhase  `json:"phase,omitempty"`
	SalesOwner            *string       `json:"sales_owner,omitempty"`
	DirectorOwner         *string       `json:"director_owner,omitempty"`
	SlackURL              *string       `json:"slack_url,omitempty"`
	Memo                  *string       `json:"memo,omitempty"`
	LastContactAt         *Time         `json:"last_contact_at,omitempty"`
	OnboardingCompletedAt *Time         `json:"onboarding_completed_at,omitempty"`
}

// Apply merges the non-nil fields of p into c.
func (p ClientPatch) Apply(c *Client) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Industry != nil {
		c.Industry = *p.Industry
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Phase != nil {
		c.Phase = *p.Phase
	}
	if p.SalesOwner != nil {
		c.SalesOwner = *p.SalesOwner
	}
	if p.DirectorOwner != nil {
		c.DirectorOwner = *p.DirectorOwner
	}
	if p.SlackURL != nil {
		c.SlackURL = *p.SlackURL
	}
	if p.Memo != nil {
		c.Memo = *p.Memo
	}
	if p.LastContactAt != nil {
		c.LastContactAt = clonePtr(p.LastContactAt)
	}
	if p.OnboardingCompletedAt != nil {
		c.OnboardingCompletedAt = clonePtr(p.OnboardingCompletedAt)
	}
}
