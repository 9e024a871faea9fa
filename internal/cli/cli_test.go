package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okian/pulss/internal/adapters/http/api"
	repository "github.com/okian/pulss/internal/adapters/repository"
	"github.com/okian/pulss/internal/adapters/upstream"
	service "github.com/okian/pulss/internal/app"
	model "github.com/okian/pulss/internal/domain/model"
	"github.com/okian/pulss/pkg/logger"
)

func init() {
	if err := logger.Init(logger.WithWriter(&bytes.Buffer{})); err != nil {
		panic(err)
	}
}

var testNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

// downAPI fails every call the way an unreachable host does.
type downAPI struct{}

func (downAPI) Do(context.Context, string, string, string, any, any) error {
	return fmt.Errorf("%w: connection refused", upstream.ErrTransport)
}

func offlineDashboard() *service.Dashboard {
	return service.New(
		service.WithAPI(downAPI{}),
		service.WithStore(repository.NewMemoryStore(repository.WithClock(func() time.Time { return testNow }))),
	)
}

// testApp wires an App whose dashboard always serves fallback data.
func testApp(t *testing.T) *App {
	t.Helper()
	return &App{Dashboard: offlineDashboard()}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func decodeOut[T any](t *testing.T, out string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(out), &v), out)
	return v
}

// --- Output selection ---

func TestOutput_JSONWhenNotInteractive(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return false }

	out, err := executeCmd(t, app, "clients", "list")
	require.NoError(t, err)

	clients := decodeOut[[]model.Client](t, out)
	require.Len(t, clients, 2)
	assert.Equal(t, "1", clients[0].ID)
}

func TestOutput_TableWhenInteractive(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }

	out, err := executeCmd(t, app, "clients", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "焼肉ドブン東京")
	assert.Contains(t, out, "50%")
}

func TestOutput_UnknownFormat(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "clients", "list", "-o", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

// --- Clients ---

func TestClientsGet_NotFound(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "clients", "get", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client not found")
}

func TestClientsAddThenUpdate(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "clients", "add", "--name", "Hotel Sakura", "--industry", "ホテル", "-o", "json")
	require.NoError(t, err)
	created := decodeOut[model.Client](t, out)
	assert.Equal(t, model.PhaseHearing, created.Phase)
	assert.Equal(t, model.StatusPreContract, created.Status)

	out, err = executeCmd(t, app, "clients", "update", created.ID, "--memo", "来週訪問", "--phase", "proposal", "-o", "json")
	require.NoError(t, err)
	updated := decodeOut[model.Client](t, out)
	assert.Equal(t, "来週訪問", updated.Memo)
	assert.Equal(t, model.PhaseProposal, updated.Phase)
	assert.Equal(t, "Hotel Sakura", updated.Name, "fields without flags are untouched")
}

func TestClientsAdd_RequiresName(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "clients", "add", "--industry", "美容")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestClientsUpdate_RejectsUnknownPhase(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "clients", "update", "1", "--phase", "done")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestClientsToggleStatus(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "clients", "toggle-status", "2", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, model.StatusContracted, decodeOut[model.Client](t, out).Status)
}

func TestClientsPulseLinkAndSubmit(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "clients", "pulse-link", "1", "-o", "json")
	require.NoError(t, err)
	link := decodeOut[model.PulseLink](t, out)
	require.Contains(t, link.URL, "token=")

	u, err := url.Parse(link.URL)
	require.NoError(t, err)
	token := u.Query().Get("token")
	out, err = executeCmd(t, app, "clients", "submit-pulse", "--token", token, "--problem", "集客", "--references", "a, b", "-o", "json")
	require.NoError(t, err)
	resp := decodeOut[model.PulseResponse](t, out)
	assert.Equal(t, "1", resp.ClientID)
	assert.Equal(t, []string{"a", "b"}, resp.ReferenceAccounts)
}

// --- Tasks ---

func TestTasksList_ByCategory(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "tasks", "list", "1", "--category", "onboarding", "-o", "json")
	require.NoError(t, err)
	tasks := decodeOut[[]model.Task](t, out)
	require.NotEmpty(t, tasks)
	for _, task := range tasks {
		assert.Equal(t, model.CategoryOnboarding, task.Category)
	}
}

func TestTasksAdd_Defaults(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "tasks", "add", "2", "--due", "2025-06-10", "-o", "json")
	require.NoError(t, err)
	task := decodeOut[model.Task](t, out)
	assert.Equal(t, model.DefaultTaskTitle, task.Title)
	assert.Equal(t, model.TaskTodo, task.Status)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, "2025-06-10", task.DueDate.Format(time.DateOnly))
}

func TestTasksAdd_BadDue(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "tasks", "add", "2", "--due", "next week")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid due date")
}

func TestTasksDone(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "tasks", "done", "t1", "-o", "json")
	require.NoError(t, err)
	task := decodeOut[model.Task](t, out)
	assert.Equal(t, model.TaskDone, task.Status)
	assert.NotNil(t, task.CompletedAt)
}

// --- Schedules ---

func TestSchedules_OfflineReadsDegradeWritesFail(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "schedules", "list", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)

	_, err = executeCmd(t, app, "schedules", "add",
		"--title", "定例", "--start", "2025-06-02T10:00:00Z", "--end", "2025-06-02T11:00:00Z", "--team", "sales")
	require.Error(t, err)
	assert.True(t, upstream.IsTransport(err))
}

// --- News, suggestions, board ---

func TestNews(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "news", "--platform", "tiktok", "-o", "json")
	require.NoError(t, err)
	items := decodeOut[[]model.SnsNewsItem](t, out)
	require.Len(t, items, 1)
	assert.Equal(t, "102", items[0].ID)

	out, err = executeCmd(t, app, "news", "--client", "1", "--limit", "1", "-o", "json")
	require.NoError(t, err)
	assert.Len(t, decodeOut[[]model.SnsNewsItem](t, out), 1)
}

func TestSuggestionsGenerate(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "suggestions", "generate", "1", "--hint", "{not json")
	require.Error(t, err)

	out, err := executeCmd(t, app, "ai", "generate", "1", "--hint", `{"tone":"casual"}`, "-o", "json")
	require.NoError(t, err)
	s := decodeOut[model.AiSuggestion](t, out)
	assert.Equal(t, model.SuggestionDraft, s.Status)

	out, err = executeCmd(t, app, "suggestions", "list", "1", "-o", "json")
	require.NoError(t, err)
	assert.Len(t, decodeOut[[]model.AiSuggestion](t, out), 2)
}

func TestBoard_Table(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "board", "-o", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "OPEN TASKS")
	assert.Contains(t, out, "Luminous Beauty Salon")
}

// --- Upstream-only commands ---

func TestChatAndPing_Offline(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "chat", "start", "1", "tok")
	require.Error(t, err)
	assert.True(t, upstream.IsTransport(err))

	_, err = executeCmd(t, app, "ping")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreachable")
}

// --- Smoke ---

func dashboardServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	api.NewServer(api.DependenciesFrom(offlineDashboard())).Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestSmoke_DegradedServerPasses(t *testing.T) {
	srv := dashboardServer(t)

	out, err := executeCmd(t, testApp(t), "smoke", "--url", srv.URL, "--requests", "25", "--workers", "4", "-o", "json")
	require.NoError(t, err)

	stats := decodeOut[SmokeStats](t, out)
	assert.Equal(t, "degraded", stats.Ready)
	assert.Equal(t, 25, stats.Requested)
	assert.Equal(t, 25, stats.Succeeded)
	assert.InDelta(t, 100.0, stats.SuccessRate, 0.001)
}

func TestSmoke_FailuresAreReported(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","upstream":"up"}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	stats, err := RunSmoke(context.Background(), srv.Client(), SmokeConfig{BaseURL: srv.URL, Requests: 10, Workers: 2})
	require.ErrorIs(t, err, ErrSmokeFailed)
	assert.Equal(t, 10, stats.Failed)
	assert.Equal(t, 2, stats.FailuresByRoute["/api/clients"])
}

func TestSmoke_ReadinessFailure(t *testing.T) {
	_, err := RunSmoke(context.Background(), nil, SmokeConfig{BaseURL: "http://127.0.0.1:1", Requests: 1, Timeout: time.Second})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "readiness check failed")
}
