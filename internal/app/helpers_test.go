package service_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	repository "github.com/okian/pulss/internal/adapters/repository"
	"github.com/okian/pulss/internal/adapters/upstream"
	service "github.com/okian/pulss/internal/app"
	"github.com/okian/pulss/pkg/logger"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

var errRefused = fmt.Errorf("%w: dial tcp 127.0.0.1:8000: connect: connection refused", upstream.ErrTransport)

// fakeAPI answers from canned responses keyed by "METHOD path". When err is
// set every call fails with it.
type fakeAPI struct {
	mu        sync.Mutex
	err       error
	responses map[string]any
	calls     []string
	bodies    []any
}

func (f *fakeAPI) Do(_ context.Context, _, method, path string, body, out any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := method + " " + path
	f.calls = append(f.calls, key)
	f.bodies = append(f.bodies, body)

	if f.err != nil {
		return f.err
	}
	resp, ok := f.responses[key]
	if !ok {
		return &upstream.StatusError{Method: method, Path: path, Code: http.StatusNotFound}
	}
	if err, isErr := resp.(error); isErr {
		return err
	}
	if out == nil {
		return nil
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (f *fakeAPI) lastCall() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return ""
	}
	return f.calls[len(f.calls)-1]
}

func (f *fakeAPI) lastBody() any {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.bodies) == 0 {
		return nil
	}
	return f.bodies[len(f.bodies)-1]
}

var testNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

// offline builds a dashboard whose API always fails, backed by its own store.
func offline(opts ...service.Option) (*service.Dashboard, *repository.MemoryStore) {
	store := repository.NewMemoryStore(repository.WithClock(func() time.Time { return testNow }))
	all := append([]service.Option{
		service.WithAPI(&fakeAPI{err: errRefused}),
		service.WithStore(store),
	}, opts...)
	return service.New(all...), store
}

// online builds a dashboard answering from canned responses.
func online(responses map[string]any, opts ...service.Option) (*service.Dashboard, *fakeAPI) {
	api := &fakeAPI{responses: responses}
	all := append([]service.Option{
		service.WithAPI(api),
		service.WithStore(repository.NewMemoryStore(repository.WithSeed(false))),
	}, opts...)
	return service.New(all...), api
}
