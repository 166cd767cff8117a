package errors

import (
	stderrors "errors"
	"fmt"
	"sync"
	"testing"

	"github.com/ideal-institute/bookstall/internal/app"
	"github.com/ideal-institute/bookstall/internal/catalogapi"
	"github.com/ideal-institute/bookstall/internal/domain"
	"github.com/ideal-institute/bookstall/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingOutput is a ColorOutput that keeps every call.
type recordingOutput struct {
	mu    sync.Mutex
	calls []string
}

func (r *recordingOutput) add(kind string, msgs []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, kind+":"+fmt.Sprint(msgs))
}

func (r *recordingOutput) Error(msgs ...string)   { r.add("error", msgs) }
func (r *recordingOutput) Warning(msgs ...string) { r.add("warning", msgs) }
func (r *recordingOutput) Info(msgs ...string)    { r.add("info", msgs) }
func (r *recordingOutput) Success(msgs ...string) { r.add("success", msgs) }

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"not logged in", fmt.Errorf("browse: %w", session.ErrNotAuthenticated), "Please log in to continue"},
		{"page error", &app.PageError{Message: "Login failed"}, "Login failed"},
		{"field error", &domain.FieldError{Field: "price", Message: "must not be negative"}, "Invalid price: must not be negative"},
		{"api error", fmt.Errorf("x: %w", &catalogapi.APIError{}), "Unknown error"},
		{"status error", &catalogapi.StatusError{StatusCode: 502}, "HTTP error! Status: 502"},
		{"plain", stderrors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.err))
		})
	}
}

func TestCLIHandler(t *testing.T) {
	out := &recordingOutput{}
	h := NewCLIHandler(out)

	h.Handle(nil)
	h.Handle(stderrors.New("boom"))
	h.Warning("careful")
	h.Info("fyi")
	h.Success("done")

	assert.Equal(t, []string{"error:[boom]", "warning:[careful]", "info:[fyi]", "success:[done]"}, out.calls)
}

func TestCLIHandlerConcurrent(t *testing.T) {
	out := &recordingOutput{}
	h := NewCLIHandler(out)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.Error("x")
		}()
	}
	wg.Wait()
	assert.Len(t, out.calls, 20)
}

func TestTUIHandler(t *testing.T) {
	var seen []Message
	h := NewTUIHandler(func(m Message) { seen = append(seen, m) })

	_, ok := h.GetLatest()
	assert.False(t, ok)

	h.Info("Loading books...")
	h.Handle(&app.PageError{Message: "No books found"})

	latest, ok := h.GetLatest()
	require.True(t, ok)
	assert.Equal(t, "No books found", latest.Text)
	assert.Equal(t, MessageTypeError, latest.Type)
	assert.Equal(t, "error", latest.Type.String())
	assert.Len(t, seen, 2)
	assert.Len(t, h.GetAll(), 2)

	h.Clear()
	assert.Empty(t, h.GetAll())
}

func TestTUIHandlerBoundsHistory(t *testing.T) {
	h := NewTUIHandler(nil)
	for i := 0; i < maxMessages+5; i++ {
		h.Info(fmt.Sprint(i))
	}

	all := h.GetAll()
	require.Len(t, all, maxMessages)
	assert.Equal(t, "5", all[0].Text)
}
