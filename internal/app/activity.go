package app

import (
	"encoding/json"
	"io"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/nleiva/contentscale/internal/intent"
)

// EventKind classifies activity events.
type EventKind string

const (
	EventQuestion     EventKind = "question"
	EventInstruction  EventKind = "instruction"
	EventGeneration   EventKind = "generation"
	EventModification EventKind = "modification"
	EventTranslation  EventKind = "translation"
	EventAttachment   EventKind = "attachment"
	EventStale        EventKind = "stale_result"
)

// ActivityEvent is one request/response cycle of a session.
type ActivityEvent struct {
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"session_id"`
	Kind      EventKind `json:"kind"`
	Rule      string    `json:"rule,omitempty"`
	Duration  int64     `json:"duration_ms"`
	Success   bool      `json:"success"`
}

// ActivitySummary aggregates the events of one session.
type ActivitySummary struct {
	SessionID       string         `json:"session_id"`
	StartTime       time.Time      `json:"start_time"`
	Duration        time.Duration  `json:"-"`
	Questions       int            `json:"questions"`
	Instructions    int            `json:"instructions"`
	Generations     int            `json:"generations"`
	Modifications   int            `json:"modifications"`
	Translations    int            `json:"translations"`
	Attachments     int            `json:"attachments"`
	StaleResults    int            `json:"stale_results"`
	Failures        int            `json:"failures"`
	AvgGenerationMs int64          `json:"avg_generation_ms"`
	Rules           map[string]int `json:"rules"`
}

// Activity tracks per-session counters and optionally appends every event
// as a JSON line to a sink.
type Activity struct {
	mu        sync.Mutex
	summary   ActivitySummary
	generated time.Duration
	sink      io.Writer
}

// NewActivity starts tracking a session. sink may be nil.
func NewActivity(sessionID string, sink io.Writer) *Activity {
	return &Activity{
		summary: ActivitySummary{
			SessionID: sessionID,
			StartTime: time.Now(),
			Rules:     make(map[string]int),
		},
		sink: sink,
	}
}

// Intent records a classification decision.
func (a *Activity) Intent(d intent.Decision) {
	kind := EventQuestion
	if d.Intent == intent.Instruction {
		kind = EventInstruction
	}
	a.Record(ActivityEvent{Kind: kind, Rule: string(d.Rule), Success: true})
}

// Timed records an event of kind that started at start.
func (a *Activity) Timed(kind EventKind, start time.Time, err error) {
	a.Record(ActivityEvent{Kind: kind, Duration: time.Since(start).Milliseconds(), Success: err == nil})
}

// Record adds ev to the counters and writes it to the sink.
func (a *Activity) Record(ev ActivityEvent) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}

	a.mu.Lock()
	ev.SessionID = a.summary.SessionID
	s := &a.summary
	if !ev.Success {
		s.Failures++
	}
	switch ev.Kind {
	case EventQuestion:
		s.Questions++
	case EventInstruction:
		s.Instructions++
	case EventGeneration:
		if ev.Success {
			s.Generations++
			a.generated += time.Duration(ev.Duration) * time.Millisecond
		}
	case EventModification:
		s.Modifications++
	case EventTranslation:
		s.Translations++
	case EventAttachment:
		s.Attachments++
	case EventStale:
		s.StaleResults++
	}
	if ev.Rule != "" {
		s.Rules[ev.Rule]++
	}
	sink := a.sink
	a.mu.Unlock()

	if sink == nil {
		return
	}
	line, err := json.Marshal(ev)
	if err != nil {
		slog.Error("failed to encode activity event", "error", err)
		return
	}
	if _, err := sink.Write(append(line, '\n')); err != nil {
		slog.Warn("failed to write activity event", "error", err)
	}
}

// Summary returns a copy of the current counters.
func (a *Activity) Summary() ActivitySummary {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := a.summary
	out.Duration = time.Since(out.StartTime)
	out.Rules = maps.Clone(a.summary.Rules)
	if out.Generations > 0 {
		out.AvgGenerationMs = a.generated.Milliseconds() / int64(out.Generations)
	}
	return out
}
