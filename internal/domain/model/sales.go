package model

// LeadStatus is a prospect's position in the sales pipeline.
type LeadStatus string

// Lead statuses in pipeline order. Lost and won are terminal.
const (
	LeadNew              LeadStatus = "new"
	LeadCalling          LeadStatus = "calling"
	LeadMeetingScheduled LeadStatus = "meeting_scheduled"
	LeadMeetingDone      LeadStatus = "meeting_done"
	LeadProposal         LeadStatus = "proposal"
	LeadFollowing        LeadStatus = "following"
	LeadLost             LeadStatus = "lost"
	LeadWon              LeadStatus = "won"
)

// LeadStatuses lists every lead status in pipeline order.
var LeadStatuses = []LeadStatus{
	LeadNew, LeadCalling, LeadMeetingScheduled, LeadMeetingDone,
	LeadProposal, LeadFollowing, LeadLost, LeadWon,
}

// Valid reports whether s is a known status.
func (s LeadStatus) Valid() bool {
	for _, known := range LeadStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Lead is a prospect tracked by sales before it becomes a client.
type Lead struct {
	ID            string     `json:"id"`
	CompanyName   string     `json:"company_name"`
	Industry      string     `json:"industry,omitempty"`
	Source        string     `json:"source,omitempty"`
	Area          string     `json:"area,omitempty"`
	Owner         string     `json:"owner,omitempty"`
	Status        LeadStatus `json:"status"`
	Score         *int       `json:"score,omitempty"`
	ExpectedMRR   *int       `json:"expected_mrr,omitempty"`
	LastContactAt *Time      `json:"last_contact_at,omitempty"`
	Memo          string     `json:"memo,omitempty"`
	CreatedAt     Time       `json:"created_at"`
	UpdatedAt     Time       `json:"updated_at"`
}

// CreateLead is the payload for registering a lead. CompanyName is required.
type CreateLead struct {
	CompanyName   string     `json:"company_name"`
	Industry      string     `json:"industry,omitempty"`
	Source        string     `json:"source,omitempty"`
	Area          string     `json:"area,omitempty"`
	Owner         string     `json:"owner,omitempty"`
	Status        LeadStatus `json:"status,omitempty"`
	Score         *int       `json:"score,omitempty"`
	ExpectedMRR   *int       `json:"expected_mrr,omitempty"`
	LastContactAt *Time      `json:"last_contact_at,omitempty"`
	Memo          string     `json:"memo,omitempty"`
}

// WithDefaults fills a blank status with LeadNew.
func (c CreateLead) WithDefaults() CreateLead {
	if c.Status == "" {
		c.Status = LeadNew
	}
	return c
}

// LeadPatch is a partial lead update. Nil fields are left untouched.
type LeadPatch struct {
	CompanyName   *string     `json:"company_name,omitempty"`
	Industry      *string     `json:"industry,omitempty"`
	Source        *string     `json:"source,omitempty"`
	Area          *string     `json:"area,omitempty"`
	Owner         *string     `json:"owner,omitempty"`
	Status        *LeadStatus `json:"status,omitempty"`
	Score         *int        `json:"score,omitempty"`
	ExpectedMRR   *int        `json:"expected_mrr,omitempty"`
	LastContactAt *Time       `json:"last_contact_at,omitempty"`
	Memo          *string     `json:"memo,omitempty"`
}

// Apply merges the non-nil fields of p into l.
func (p LeadPatch) Apply(l *Lead) {
	if p.CompanyName != nil {
		l.CompanyName = *p.CompanyName
	}
	if p.Industry != nil {
		l.Industry = *p.Industry
	}
	if p.Source != nil {
		l.Source = *p.Source
	}
	if p.Area != nil {
		l.Area = *p.Area
	}
	if p.Owner != nil {
		l.Owner = *p.Owner
	}
	if p.Status != nil {
		l.Status = *p.Status
	}
	if p.Score != nil {
		l.Score = clonePtr(p.Score)
	}
	if p.ExpectedMRR != nil {
		l.ExpectedMRR = clonePtr(p.ExpectedMRR)
	}
	if p.LastContactAt != nil {
		l.LastContactAt = clonePtr(p.LastContactAt)
	}
	if p.Memo != nil {
		l.Memo = *p.Memo
	}
}

// DefaultContactChannel is used when a contact log names no channel.
const DefaultContactChannel = "call"

// ContactLog records one touchpoint with a lead.
type ContactLog struct {
	ID        string `json:"id"`
	LeadID    string `json:"lead_id"`
	Channel   string `json:"channel"`
	Content   string `json:"content"`
	Actor     string `json:"actor,omitempty"`
	ContactAt Time   `json:"contact_at"`
	CreatedAt Time   `json:"created_at"`
}

// CreateContact is the payload for logging a touchpoint. A nil ContactAt
// means now.
type CreateContact struct {
	Channel   string `json:"channel"`
	Content   string `json:"content"`
	Actor     string `json:"actor,omitempty"`
	ContactAt *Time  `json:"contact_at,omitempty"`
}

// WithDefaults fills a blank channel with DefaultContactChannel.
func (c CreateContact) WithDefaults() CreateContact {
	if c.Channel == "" {
		c.Channel = DefaultContactChannel
	}
	return c
}

// ProposalStatus tracks a sent proposal toward a decision.
type ProposalStatus string

// Proposal statuses.
const (
	ProposalDraft     ProposalStatus = "draft"
	ProposalSent      ProposalStatus = "sent"
	ProposalFollowing ProposalStatus = "following"
	ProposalWon       ProposalStatus = "won"
	ProposalLost      ProposalStatus = "lost"
)

// Valid reports whether s is a known status.
func (s ProposalStatus) Valid() bool {
	switch s {
	case ProposalDraft, ProposalSent, ProposalFollowing, ProposalWon, ProposalLost:
		return true
	}
	return false
}

// Proposal is a priced offer made to a client or a lead.
type Proposal struct {
	ID          string         `json:"id"`
	ClientID    string         `json:"client_id,omitempty"`
	LeadID      string         `json:"lead_id,omitempty"`
	Title       string         `json:"title"`
	Amount      *int           `json:"amount,omitempty"`
	Status      ProposalStatus `json:"status"`
	SentAt      *Time          `json:"sent_at,omitempty"`
	FollowDueAt *Time          `json:"follow_due_at,omitempty"`
	Memo        string         `json:"memo,omitempty"`
	FileURL     string         `json:"file_url,omitempty"`
	CreatedAt   Time           `json:"created_at"`
	UpdatedAt   Time           `json:"updated_at"`
}

// CreateProposal is the payload for drafting a proposal. Title is required.
type CreateProposal struct {
	ClientID    string         `json:"client_id,omitempty"`
	LeadID      string         `json:"lead_id,omitempty"`
	Title       string         `json:"title"`
	Amount      *int           `json:"amount,omitempty"`
	Status      ProposalStatus `json:"status,omitempty"`
	SentAt      *Time          `json:"sent_at,omitempty"`
	FollowDueAt *Time          `json:"follow_due_at,omitempty"`
	Memo        string         `json:"memo,omitempty"`
	FileURL     string         `json:"file_url,omitempty"`
}

// WithDefaults fills a blank status with ProposalDraft.
func (c CreateProposal) WithDefaults() CreateProposal {
	if c.Status == "" {
		c.Status = ProposalDraft
	}
	return c
}

// ProposalPatch is a partial proposal update. Nil fields are left untouched.
type ProposalPatch struct {
	Title       *string         `json:"title,omitempty"`
	Amount      *int            `json:"amount,omitempty"`
	Status      *ProposalStatus `json:"status,omitempty"`
	SentAt      *Time           `json:"sent_at,omitempty"`
	FollowDueAt *Time           `json:"follow_due_at,omitempty"`
	Memo        *string         `json:"memo,omitempty"`
	FileURL     *string         `json:"file_url,omitempty"`
}

// Apply merges the non-nil fields of p into pr.
func (p ProposalPatch) Apply(pr *Proposal) {
	if p.Title != nil {
		pr.Title = *p.Title
	}
	if p.Amount != nil {
		pr.Amount = clonePtr(p.Amount)
	}
	if p.Status != nil {
		pr.Status = *p.Status
	}
	if p.SentAt != nil {
		pr.SentAt = clonePtr(p.SentAt)
	}
	if p.FollowDueAt != nil {
		pr.FollowDueAt = clonePtr(p.FollowDueAt)
	}
	if p.Memo != nil {
		pr.Memo = *p.Memo
	}
	if p.FileURL != nil {
		pr.FileURL = *p.FileURL
	}
}

// Contract is a signed service agreement with a client. Start and end dates
// travel as plain dates.
type Contract struct {
	ID           string `json:"id"`
	ClientID     string `json:"client_id"`
	PlanName     string `json:"plan_name,omitempty"`
	MonthlyFee   *int   `json:"monthly_fee,omitempty"`
	StartDate    *Time  `json:"start_date,omitempty"`
	EndDate      *Time  `json:"end_date,omitempty"`
	PaymentTerms string `json:"payment_terms,omitempty"`
	FileURL      string `json:"file_url,omitempty"`
	CreatedAt    Time   `json:"created_at"`
	UpdatedAt    Time   `json:"updated_at"`
}

// CreateContract is the payload for recording a contract. ClientID is
// required.
type CreateContract struct {
	ClientID     string `json:"client_id"`
	PlanName     string `json:"plan_name,omitempty"`
	MonthlyFee   *int   `json:"monthly_fee,omitempty"`
	StartDate    *Time  `json:"start_date,omitempty"`
	EndDate      *Time  `json:"end_date,omitempty"`
	PaymentTerms string `json:"payment_terms,omitempty"`
	FileURL      string `json:"file_url,omitempty"`
}
