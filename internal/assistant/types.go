// Package assistant implements the function-dispatch conversational loop:
// it sends user text and conversation history to the model, interprets the
// reply as plain text or a structured call, executes the call through the
// operation registry, and folds the formatted result back into the
// conversation.
package assistant

import (
	"context"
)

// Conversation roles.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is one entry of the conversation history. The history is a plain
// value owned by the caller: it is passed into each Chat call and the
// updated history is returned, so the dispatch loop itself holds no
// session state.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// FunctionCall records one structured call proposed by the model during a
// turn, along with its result or the error that stopped it.
type FunctionCall struct {
	Name   string         `json:"function"`
	Args   map[string]any `json:"args,omitempty"`
	Result any            `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// ChatResult is the outcome of one dispatch turn. Err is set when the
// inference call itself failed; Text still carries a displayable apology
// in that case and the session may continue.
type ChatResult struct {
	Text    string         `json:"text"`
	Calls   []FunctionCall `json:"function_calls"`
	History []Turn         `json:"history"`
	Err     string         `json:"error,omitempty"`
}

// ModelCall is a structured call proposed by the model: one operation name
// plus an argument map.
type ModelCall struct {
	Name string
	Args map[string]any
}

// ModelReply is what the inference layer returns for a single turn:
// either plain text or exactly one structured call.
type ModelReply struct {
	Text string
	Call *ModelCall
}

// Inference abstracts the language model. Implementations receive the full
// conversation history plus the new user message and return the model's
// reply; the operation declarations are supplied at construction time.
type Inference interface {
	Generate(ctx context.Context, history []Turn, message string) (*ModelReply, error)
	Close() error
}
