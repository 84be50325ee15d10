package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/knobs/pkg/domain"
)

// LogHooks returns hooks that write one structured record per assignment.
// Applied assignments log at Info, everything else at Warn.
func LogHooks(logger *slog.Logger) domain.Hooks {
	return domain.Hooks{
		OnAssign: func(e *domain.AssignEvent) {
			level := slog.LevelInfo
			if e.Outcome != domain.OutcomeApplied {
				level = slog.LevelWarn
			}
			logger.Log(context.Background(), level, "assignment",
				"name", e.Name,
				"kind", e.Kind,
				"value", e.Raw,
				"outcome", e.Outcome,
			)
		},
	}
}

// Combine fans every event out to each of hooks, in order.
func Combine(hooks ...domain.Hooks) domain.Hooks {
	return domain.Hooks{
		OnAssign: func(e *domain.AssignEvent) {
			for _, h := range hooks {
				if h.OnAssign != nil {
					h.OnAssign(e)
				}
			}
		},
	}
}
