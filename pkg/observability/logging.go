package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/statespace/pkg/domain"
)

// LogHooks returns hooks that audit every search event on logger.
// Discoveries and transitions are logged at debug level, the outcome at info.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnDiscover: func(ctx context.Context, e *domain.DiscoverEvent) {
			logger.DebugContext(ctx, "state_discovered",
				"index", e.Index,
				"state", e.Description,
				"parent", e.Parent,
				"action", e.Action,
			)
		},
		OnTransition: func(ctx context.Context, e *domain.TransitionEvent) {
			logger.DebugContext(ctx, "transition",
				"from", e.From,
				"to", e.To,
				"action", e.Action,
				"discarded", e.Discarded,
			)
		},
		OnFinish: func(ctx context.Context, e *domain.FinishEvent) {
			logger.InfoContext(ctx, "search_finished",
				"outcome", e.Outcome,
				"steps", e.Steps,
				"explored", e.Explored,
				"duration", e.Duration,
			)
		},
	}
}
