package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventDiscover   EventType = "discover"
	EventExpand     EventType = "expand"
	EventTransition EventType = "transition"
	EventFinish     EventType = "finish"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// DiscoverEvent is emitted once per distinct state, when its record is created.
type DiscoverEvent struct {
	EventBase
	Index       int    `json:"index"`
	Description string `json:"description"`
	Fingerprint string `json:"fingerprint"`
	Parent      int    `json:"parent,omitempty"`
	Action      string `json:"action,omitempty"`
}

// ExpandEvent is emitted when a state is dequeued and is not a goal.
// Frontier is the number of states still queued behind it, which is the same
// in sequential and layered searches.
type ExpandEvent struct {
	EventBase
	Index    int `json:"index"`
	Frontier int `json:"frontier"`
}

// TransitionEvent is emitted for every applicable action evaluated on an expanded state.
type TransitionEvent struct {
	EventBase
	From      int    `json:"from"`
	To        int    `json:"to"`
	Action    string `json:"action"`
	Discarded bool   `json:"discarded,omitempty"`
}

// FinishEvent is emitted once when a search reaches Solved or Exhausted.
type FinishEvent struct {
	EventBase
	Outcome   Outcome       `json:"outcome"`
	Steps     int           `json:"steps"`
	Explored  int           `json:"explored"`
	GoalIndex int           `json:"goal_index,omitempty"`
	Duration  time.Duration `json:"duration"`
}

// LifecycleHooks defines optional callbacks for search observability.
// None of them is required for a search to work.
type LifecycleHooks struct {
	OnDiscover   func(context.Context, *DiscoverEvent)
	OnExpand     func(context.Context, *ExpandEvent)
	OnTransition func(context.Context, *TransitionEvent)
	OnFinish     func(context.Context, *FinishEvent)
}

// MergeHooks returns hooks that call every non-nil callback of each set, in order.
func MergeHooks(sets ...LifecycleHooks) LifecycleHooks {
	var merged LifecycleHooks
	for _, h := range sets {
		merged.OnDiscover = chain(merged.OnDiscover, h.OnDiscover)
		merged.OnExpand = chain(merged.OnExpand, h.OnExpand)
		merged.OnTransition = chain(merged.OnTransition, h.OnTransition)
		merged.OnFinish = chain(merged.OnFinish, h.OnFinish)
	}
	return merged
}

func chain[E any](first, next func(context.Context, *E)) func(context.Context, *E) {
	switch {
	case first == nil:
		return next
	case next == nil:
		return first
	}
	return func(ctx context.Context, e *E) {
		first(ctx, e)
		next(ctx, e)
	}
}
