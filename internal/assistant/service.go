package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wrteam/sportcenter-assistant/internal/registry"
)

// inferenceApology is the fixed reply when the model call itself fails.
const inferenceApology = "I apologize, but I encountered an error processing your request. Please try again or contact our support team at support@wrteam.com."

// Service runs the dispatch loop. It holds no per-session state: the
// conversation history travels in and out of Chat as a value, so one
// Service can serve any number of independent conversations.
type Service struct {
	inference Inference
	registry  *registry.Registry
	convlog   ConversationLogger
	logger    *slog.Logger
	userID    string
	sessionID string
}

// NewService wires the dispatch loop. userID and sessionID identify the
// conversation in transcripts only; operation-level user scoping comes
// from the registry bindings.
func NewService(inference Inference, reg *registry.Registry, convlog ConversationLogger, logger *slog.Logger, userID, sessionID string) *Service {
	if convlog == nil {
		convlog = NopConversationLogger{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		inference: inference,
		registry:  reg,
		convlog:   convlog,
		logger:    logger,
		userID:    userID,
		sessionID: sessionID,
	}
}

// Chat runs one turn of the loop: history plus the new message go to the
// model, a structured call is executed through the registry and formatted,
// plain text passes through verbatim. The returned result always carries
// displayable text and the updated history.
//
// A non-nil error reports an inference failure; the result is still
// populated with a fixed apology and the unchanged history, and the caller
// may keep the session going.
func (s *Service) Chat(ctx context.Context, message string, history []Turn) (*ChatResult, error) {
	s.convlog.Log(ConversationEvent{
		UserID:    s.userID,
		SessionID: s.sessionID,
		Role:      "user",
		Content:   message,
	})

	reply, err := s.inference.Generate(ctx, history, message)
	if err != nil {
		s.logger.Error("inference failed", "error", err)
		s.convlog.Log(ConversationEvent{
			UserID:    s.userID,
			SessionID: s.sessionID,
			Role:      "assistant",
			Content:   inferenceApology,
			Error:     err.Error(),
		})
		return &ChatResult{
			Text:    inferenceApology,
			Calls:   []FunctionCall{},
			History: history,
			Err:     err.Error(),
		}, err
	}

	calls := []FunctionCall{}
	var text string
	switch {
	case reply.Call != nil:
		record, display := s.execute(ctx, reply.Call)
		calls = append(calls, record)
		text = display
	case reply.Text != "":
		text = reply.Text
	default:
		text = "I'm not sure how to help with that. Could you rephrase your request?"
	}

	updated := make([]Turn, 0, len(history)+2)
	updated = append(updated, history...)
	updated = append(updated,
		Turn{Role: RoleUser, Content: message},
		Turn{Role: RoleModel, Content: text},
	)

	s.convlog.Log(ConversationEvent{
		UserID:    s.userID,
		SessionID: s.sessionID,
		Role:      "assistant",
		Content:   text,
	})

	return &ChatResult{Text: text, Calls: calls, History: updated}, nil
}

// execute runs one structured call through the registry and turns the
// outcome into display text. Unknown operations and handler failures are
// both recovered here; neither reaches the caller as an error.
func (s *Service) execute(ctx context.Context, call *ModelCall) (FunctionCall, string) {
	record := FunctionCall{Name: call.Name, Args: call.Args}

	result, err := s.registry.Invoke(ctx, call.Name, registry.Args(call.Args))
	switch {
	case errors.Is(err, registry.ErrUnknownOperation):
		record.Error = err.Error()
		s.logger.Warn("model proposed unknown operation", "operation", call.Name)
		s.logFunction(record)
		return record, fmt.Sprintf("I don't have a function called %q. Could you rephrase your request?", call.Name)
	case err != nil:
		record.Error = err.Error()
		s.logger.Error("operation failed", "operation", call.Name, "error", err)
		s.logFunction(record)
		return record, fmt.Sprintf("I'm sorry, I ran into a problem executing %s: %v. Please try again or contact support@wrteam.com.", call.Name, err)
	}

	record.Result = result
	s.logFunction(record)
	return record, Format(call.Name, result)
}

func (s *Service) logFunction(record FunctionCall) {
	s.convlog.Log(ConversationEvent{
		UserID:    s.userID,
		SessionID: s.sessionID,
		Role:      "function",
		Function:  record.Name,
		Error:     record.Error,
	})
}

// Close releases the inference client and flushes the conversation log.
func (s *Service) Close() {
	if err := s.inference.Close(); err != nil {
		s.logger.Warn("failed to close inference client", "error", err)
	}
	if err := s.convlog.Close(); err != nil {
		s.logger.Warn("failed to close conversation logger", "error", err)
	}
}
