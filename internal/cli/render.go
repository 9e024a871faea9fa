package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	model "github.com/okian/pulss/internal/domain/model"
	"github.com/spf13/cobra"
)

// emit writes v as indented JSON, or as a table when the output is a
// terminal.
func (a *App) emit(cmd *cobra.Command, v any, headers []string, rows [][]string) error {
	w := cmd.OutOrStdout()
	if !a.tables() {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return renderTable(w, headers, rows)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func fmtTime(t *model.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func fmtDate(t *model.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Local().Format(time.DateOnly)
}

func fmtProgress(p *float64) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%.0f%%", *p*100)
}

func fmtAlert(b bool) string {
	if b {
		return "!"
	}
	return ""
}

var clientHeaders = []string{"ID", "NAME", "STATUS", "PHASE", "INDUSTRY", "PROGRESS", "LAST CONTACT", "ALERT"}

func clientRows(cs []model.Client) [][]string {
	rows := make([][]string, 0, len(cs))
	for _, c := range cs {
		rows = append(rows, []string{
			c.ID, c.Name, string(c.Status), string(c.Phase), dash(c.Industry),
			fmtProgress(c.OnboardingProgress), fmtTime(c.LastContactAt), fmtAlert(c.HasAlert),
		})
	}
	return rows
}

var taskHeaders = []string{"ID", "TITLE", "CATEGORY", "STATUS", "DUE", "ASSIGNEE"}

func taskRows(ts []model.Task) [][]string {
	rows := make([][]string, 0, len(ts))
	for _, t := range ts {
		rows = append(rows, []string{
			t.ID, t.Title, string(t.Category), string(t.Status), fmtDate(t.DueDate), dash(t.Assignee),
		})
	}
	return rows
}

var scheduleHeaders = []string{"ID", "TITLE", "START", "END", "TYPE", "TEAM"}

func scheduleRows(evs []model.ScheduleEvent) [][]string {
	rows := make([][]string, 0, len(evs))
	for _, e := range evs {
		rows = append(rows, []string{
			e.ID, e.Title, fmtTime(&e.Start), fmtTime(&e.End), string(e.Type), string(e.Team),
		})
	}
	return rows
}

var newsHeaders = []string{"ID", "PUBLISHED", "PLATFORMS", "SOURCE", "TITLE"}

func newsRows(items []model.SnsNewsItem) [][]string {
	rows := make([][]string, 0, len(items))
	for _, n := range items {
		platforms := make([]string, len(n.PlatformTags))
		for i, p := range n.PlatformTags {
			platforms[i] = string(p)
		}
		rows = append(rows, []string{
			n.ID, fmtDate(&n.PublishedAt), dash(strings.Join(platforms, ",")), dash(n.SourceName), n.Title,
		})
	}
	return rows
}

var suggestionHeaders = []string{"ID", "STATUS", "TYPE", "TITLE"}

func suggestionRows(ss []model.AiSuggestion) [][]string {
	rows := make([][]string, 0, len(ss))
	for _, s := range ss {
		rows = append(rows, []string{s.ID, string(s.Status), s.Type, s.Title})
	}
	return rows
}

var boardHeaders = []string{"CLIENT", "NAME", "PHASE", "STATUS", "PROGRESS", "OPEN TASKS", "LAST CONTACT", "ALERT"}

func boardRows(items []model.BoardItem) [][]string {
	rows := make([][]string, 0, len(items))
	for _, b := range items {
		rows = append(rows, []string{
			b.ClientID, b.Name, string(b.Phase), string(b.Status), fmtProgress(b.OnboardingProgress),
			fmt.Sprint(b.OpenTasksCount), fmtTime(b.LastContactAt), fmtAlert(b.HasAlert),
		})
	}
	return rows
}

func fmtInt(n *int) string {
	if n == nil {
		return "-"
	}
	return fmt.Sprint(*n)
}

var leadHeaders = []string{"ID", "COMPANY", "STATUS", "OWNER", "SCORE", "EXPECTED MRR", "LAST CONTACT"}

func leadRows(ls []model.Lead) [][]string {
	rows := make([][]string, 0, len(ls))
	for _, l := range ls {
		rows = append(rows, []string{
			l.ID, l.CompanyName, string(l.Status), dash(l.Owner), fmtInt(l.Score), fmtInt(l.ExpectedMRR), fmtTime(l.LastContactAt),
		})
	}
	return rows
}

var contactHeaders = []string{"ID", "AT", "CHANNEL", "ACTOR", "CONTENT"}

func contactRows(cs []model.ContactLog) [][]string {
	rows := make([][]string, 0, len(cs))
	for _, c := range cs {
		rows = append(rows, []string{c.ID, fmtTime(&c.ContactAt), c.Channel, dash(c.Actor), c.Content})
	}
	return rows
}

var proposalHeaders = []string{"ID", "TITLE", "STATUS", "AMOUNT", "SENT", "FOLLOW DUE"}

func proposalRows(ps []model.Proposal) [][]string {
	rows := make([][]string, 0, len(ps))
	for _, p := range ps {
		rows = append(rows, []string{
			p.ID, p.Title, string(p.Status), fmtInt(p.Amount), fmtDate(p.SentAt), fmtDate(p.FollowDueAt),
		})
	}
	return rows
}

var contractHeaders = []string{"ID", "PLAN", "MONTHLY FEE", "START", "END", "TERMS"}

func contractRows(cs []model.Contract) [][]string {
	rows := make([][]string, 0, len(cs))
	for _, c := range cs {
		rows = append(rows, []string{
			c.ID, dash(c.PlanName), fmtInt(c.MonthlyFee), fmtDate(c.StartDate), fmtDate(c.EndDate), dash(c.PaymentTerms),
		})
	}
	return rows
}

var notificationHeaders = []string{"ID", "CREATED", "READ", "TITLE"}

func notificationRows(ns []model.Notification) [][]string {
	rows := make([][]string, 0, len(ns))
	for _, n := range ns {
		rows = append(rows, []string{n.ID, fmtTime(&n.CreatedAt), fmtTime(n.ReadAt), n.Title})
	}
	return rows
}
