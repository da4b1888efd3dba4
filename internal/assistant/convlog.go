package assistant

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// ConversationEvent is one NDJSON line of a conversation transcript.
type ConversationEvent struct {
	Timestamp string `json:"ts"`
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
	Role      string `json:"role"` // user | assistant | function
	Content   string `json:"content,omitempty"`
	Function  string `json:"function,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ConversationLogger records conversation events. Logging must never slow
// down or fail a chat turn, so implementations are asynchronous and drop
// events rather than block.
type ConversationLogger interface {
	Log(event ConversationEvent)
	Close() error
}

// NopConversationLogger discards all events.
type NopConversationLogger struct{}

// Log implements ConversationLogger.
func (NopConversationLogger) Log(ConversationEvent) {}

// Close implements ConversationLogger.
func (NopConversationLogger) Close() error { return nil }

// ConversationLogConfig controls NDJSON conversation logging.
type ConversationLogConfig struct {
	Enabled   bool
	Dir       string
	QueueSize int
}

// NDJSONConversationLogger appends events to one NDJSON file per
// user/session under a base directory. Writes happen on a single
// background goroutine fed by a bounded queue; a full queue drops the
// event and logs a warning.
type NDJSONConversationLogger struct {
	dir    string
	queue  chan ConversationEvent
	done   chan struct{}
	wg     sync.WaitGroup
	logger *slog.Logger
}

// NewConversationLogger creates the NDJSON logger and starts its writer
// goroutine. A disabled config yields a NopConversationLogger.
func NewConversationLogger(cfg ConversationLogConfig, logger *slog.Logger) (ConversationLogger, error) {
	if !cfg.Enabled {
		return NopConversationLogger{}, nil
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1000
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create conversation log dir: %w", err)
	}

	l := &NDJSONConversationLogger{
		dir:    cfg.Dir,
		queue:  make(chan ConversationEvent, cfg.QueueSize),
		done:   make(chan struct{}),
		logger: logger,
	}
	l.wg.Add(1)
	go l.run()
	return l, nil
}

// Log implements ConversationLogger. It never blocks; events are dropped
// when the queue is full.
func (l *NDJSONConversationLogger) Log(event ConversationEvent) {
	if event.Timestamp == "" {
		event.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	}
	select {
	case l.queue <- event:
	default:
		l.logger.Warn("conversation log queue full, dropping event",
			"user_id", event.UserID, "session_id", event.SessionID)
	}
}

// Close implements ConversationLogger. It flushes queued events and stops
// the writer goroutine.
func (l *NDJSONConversationLogger) Close() error {
	close(l.done)
	l.wg.Wait()
	return nil
}

func (l *NDJSONConversationLogger) run() {
	defer l.wg.Done()
	for {
		select {
		case event := <-l.queue:
			l.write(event)
		case <-l.done:
			// Drain whatever is still queued before exiting.
			for {
				select {
				case event := <-l.queue:
					l.write(event)
				default:
					return
				}
			}
		}
	}
}

func (l *NDJSONConversationLogger) write(event ConversationEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		l.logger.Warn("failed to marshal conversation event", "error", err)
		return
	}

	dir := filepath.Join(l.dir, sanitizePathComponent(event.UserID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		l.logger.Warn("failed to create conversation log dir", "error", err)
		return
	}
	path := filepath.Join(dir, sanitizePathComponent(event.SessionID)+".ndjson")

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		l.logger.Warn("failed to open conversation log file", "path", path, "error", err)
		return
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			l.logger.Warn("failed to close conversation log file", "path", path, "error", closeErr)
		}
	}()

	if _, err := f.Write(append(data, '\n')); err != nil {
		l.logger.Warn("failed to write conversation event", "path", path, "error", err)
	}
}

// sanitizePathComponent keeps user/session IDs from escaping the log dir.
func sanitizePathComponent(s string) string {
	if s == "" {
		return "unknown"
	}
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
