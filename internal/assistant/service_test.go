package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/wrteam/sportcenter-assistant/internal/registry"
)

type fakeInference struct {
	reply *ModelReply
	err   error

	gotHistory []Turn
	gotMessage string
	closed     bool
}

func (f *fakeInference) Generate(_ context.Context, history []Turn, message string) (*ModelReply, error) {
	f.gotHistory = history
	f.gotMessage = message
	if f.err != nil {
		return nil, f.err
	}
	return f.reply, nil
}

func (f *fakeInference) Close() error {
	f.closed = true
	return nil
}

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r := registry.New()
	r.Register(registry.Operation{
		Name:        "greet",
		Description: "Greets a customer by name",
		Params: []registry.Param{
			{Name: "name", Type: registry.TypeString, Description: "Customer name", Required: true},
		},
		Handler: func(_ context.Context, args registry.Args) (any, error) {
			name, err := args.String("name")
			if err != nil {
				return nil, err
			}
			return map[string]any{"greeting": "Hello, " + name}, nil
		},
	})
	r.Register(registry.Operation{
		Name:        "always_fails",
		Description: "Fails on every call",
		Handler: func(context.Context, registry.Args) (any, error) {
			return nil, fmt.Errorf("backend unavailable")
		},
	})
	return r
}

func newTestService(t *testing.T, inference Inference) *Service {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	return NewService(inference, testRegistry(t), NopConversationLogger{}, logger, "user123", "session-1")
}

func TestChatPlainTextPassesThrough(t *testing.T) {
	t.Parallel()

	fake := &fakeInference{reply: &ModelReply{Text: "We open at 9AM."}}
	svc := newTestService(t, fake)

	history := []Turn{{Role: RoleUser, Content: "hi"}, {Role: RoleModel, Content: "hello"}}
	res, err := svc.Chat(context.Background(), "When do you open?", history)
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}

	if res.Text != "We open at 9AM." {
		t.Fatalf("expected model text, got %q", res.Text)
	}
	if len(res.Calls) != 0 {
		t.Fatalf("expected no function calls, got %+v", res.Calls)
	}
	if len(res.History) != 4 {
		t.Fatalf("expected history to grow by two turns, got %d", len(res.History))
	}
	last := res.History[len(res.History)-1]
	if last.Role != RoleModel || last.Content != "We open at 9AM." {
		t.Fatalf("unexpected final turn %+v", last)
	}
	if fake.gotMessage != "When do you open?" || len(fake.gotHistory) != 2 {
		t.Fatalf("inference received wrong input: %q %d turns", fake.gotMessage, len(fake.gotHistory))
	}
}

func TestChatExecutesFunctionCall(t *testing.T) {
	t.Parallel()

	fake := &fakeInference{reply: &ModelReply{
		Call: &ModelCall{Name: "greet", Args: map[string]any{"name": "Alice"}},
	}}
	svc := newTestService(t, fake)

	res, err := svc.Chat(context.Background(), "greet alice", nil)
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}

	if len(res.Calls) != 1 || res.Calls[0].Name != "greet" || res.Calls[0].Error != "" {
		t.Fatalf("expected one successful call record, got %+v", res.Calls)
	}
	if !strings.Contains(res.Text, "Hello, Alice") {
		t.Fatalf("expected formatted result, got %q", res.Text)
	}
	if len(res.History) != 2 || res.History[1].Content != res.Text {
		t.Fatalf("history should record the formatted reply, got %+v", res.History)
	}
}

func TestChatUnknownOperationRecovers(t *testing.T) {
	t.Parallel()

	fake := &fakeInference{reply: &ModelReply{
		Call: &ModelCall{Name: "teleport_order", Args: map[string]any{}},
	}}
	svc := newTestService(t, fake)

	res, err := svc.Chat(context.Background(), "teleport it", nil)
	if err != nil {
		t.Fatalf("unknown operation must not fail the turn: %v", err)
	}
	if !strings.Contains(res.Text, `"teleport_order"`) {
		t.Fatalf("reply should name the unknown function, got %q", res.Text)
	}
	if len(res.Calls) != 1 || res.Calls[0].Error == "" {
		t.Fatalf("expected call record carrying the error, got %+v", res.Calls)
	}
}

func TestChatHandlerFailureApologizes(t *testing.T) {
	t.Parallel()

	fake := &fakeInference{reply: &ModelReply{
		Call: &ModelCall{Name: "always_fails", Args: map[string]any{}},
	}}
	svc := newTestService(t, fake)

	res, err := svc.Chat(context.Background(), "do the thing", nil)
	if err != nil {
		t.Fatalf("handler failure must not fail the turn: %v", err)
	}
	if !strings.Contains(res.Text, "always_fails") || !strings.Contains(res.Text, "support@wrteam.com") {
		t.Fatalf("expected apology naming the operation, got %q", res.Text)
	}
	if len(res.History) != 2 {
		t.Fatalf("the turn should still enter history, got %+v", res.History)
	}
}

func TestChatBadArgumentsApologizes(t *testing.T) {
	t.Parallel()

	fake := &fakeInference{reply: &ModelReply{
		Call: &ModelCall{Name: "greet", Args: map[string]any{"name": 7.0}},
	}}
	svc := newTestService(t, fake)

	res, err := svc.Chat(context.Background(), "greet seven", nil)
	if err != nil {
		t.Fatalf("bad arguments must not fail the turn: %v", err)
	}
	if !strings.Contains(res.Text, "greet") {
		t.Fatalf("expected apology naming the operation, got %q", res.Text)
	}
	if len(res.Calls) != 1 || res.Calls[0].Error == "" {
		t.Fatalf("expected call record carrying the validation error, got %+v", res.Calls)
	}
}

func TestChatInferenceFailureKeepsSessionAlive(t *testing.T) {
	t.Parallel()

	fake := &fakeInference{err: errors.New("rate limited")}
	svc := newTestService(t, fake)

	history := []Turn{{Role: RoleUser, Content: "hi"}}
	res, err := svc.Chat(context.Background(), "hello?", history)
	if err == nil {
		t.Fatalf("expected inference error to surface")
	}
	if res == nil || res.Text != inferenceApology {
		t.Fatalf("expected fixed apology, got %+v", res)
	}
	if res.Err == "" {
		t.Fatalf("expected error marker on the result")
	}
	if len(res.History) != 1 {
		t.Fatalf("history must be unchanged on inference failure, got %+v", res.History)
	}
}

func TestChatEmptyReplyFallsBack(t *testing.T) {
	t.Parallel()

	fake := &fakeInference{reply: &ModelReply{}}
	svc := newTestService(t, fake)

	res, err := svc.Chat(context.Background(), "mumble", nil)
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if !strings.Contains(res.Text, "rephrase") {
		t.Fatalf("expected fallback prompt, got %q", res.Text)
	}
}

func TestCloseReleasesInference(t *testing.T) {
	t.Parallel()

	fake := &fakeInference{reply: &ModelReply{Text: "bye"}}
	svc := newTestService(t, fake)
	svc.Close()
	if !fake.closed {
		t.Fatalf("Close should release the inference client")
	}
}
