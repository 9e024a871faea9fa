// Package repository holds the local data served while the Pulss API is
// unreachable.
package repository

import (
	"context"

	model "github.com/okian/pulss/internal/domain/model"
)

// Store is the fallback datastore the dashboard services degrade to.
// Records live for the lifetime of the store; nothing is persisted.
type Store interface {
	// Clients returns every client in insertion order.
	Clients(ctx context.Context) []model.Client
	// Client returns ErrNotFound when id is unknown.
	Client(ctx context.Context, id string) (model.Client, error)
	AddClient(ctx context.Context, in model.CreateClient) model.Client
	// UpdateClient merges patch and stamps updated_at. Returns ErrNotFound
	// when id is unknown.
	UpdateClient(ctx context.Context, id string, patch model.ClientPatch) (model.Client, error)

	// MintPulseLink issues a placeholder intake link for clientID.
	MintPulseLink(ctx context.Context, clientID string) model.PulseLink
	// SubmitPulse stores answers as the latest response of the client the
	// token was minted for. Returns ErrInvalidToken for unknown tokens.
	SubmitPulse(ctx context.Context, answers model.PulseAnswers) (model.PulseResponse, error)

	// Tasks filters by client and, when non-empty, category.
	Tasks(ctx context.Context, clientID string, category model.TaskCategory) []model.Task
	AddTask(ctx context.Context, clientID string, in model.CreateTask) model.Task
	// UpdateTask returns ErrNotFound when id is unknown.
	UpdateTask(ctx context.Context, id string, patch model.TaskPatch) (model.Task, error)

	Suggestions(ctx context.Context, clientID string) []model.AiSuggestion
	// AddSuggestion assigns id and timestamps, then appends.
	AddSuggestion(ctx context.Context, s model.AiSuggestion) model.AiSuggestion

	News(ctx context.Context) []model.SnsNewsItem

	// Board derives one row per client with a zero open task count.
	Board(ctx context.Context) []model.BoardItem

	// Leads returns every lead in insertion order.
	Leads(ctx context.Context) []model.Lead
	AddLead(ctx context.Context, in model.CreateLead) model.Lead
	// UpdateLead returns ErrNotFound when id is unknown.
	UpdateLead(ctx context.Context, id string, patch model.LeadPatch) (model.Lead, error)
	Contacts(ctx context.Context, leadID string) []model.ContactLog
	// AddContact returns ErrNotFound when the lead is unknown.
	AddContact(ctx context.Context, leadID string, in model.CreateContact) (model.ContactLog, error)

	Proposals(ctx context.Context, clientID string) []model.Proposal
	AddProposal(ctx context.Context, in model.CreateProposal) model.Proposal
	// UpdateProposal returns ErrNotFound when id is unknown.
	UpdateProposal(ctx context.Context, id string, patch model.ProposalPatch) (model.Proposal, error)

	Contracts(ctx context.Context, clientID string) []model.Contract
	AddContract(ctx context.Context, in model.CreateContract) model.Contract

	// Notifications returns the user's notifications, newest first.
	Notifications(ctx context.Context, user string) []model.Notification
	AddNotification(ctx context.Context, user string, in model.NotificationInput) model.Notification
	// MarkNotificationRead stamps read_at once; marking again keeps the
	// first stamp. Returns ErrNotFound when id is unknown.
	MarkNotificationRead(ctx context.Context, id string) (model.Notification, error)

	// Count returns the number of records per collection.
	Count(ctx context.Context) map[string]int
}
