package middleware

import (
	"context"
	"fmt"
	"regexp"

	"github.com/aretw0/knobs/pkg/domain"
	"github.com/aretw0/knobs/pkg/ports"
)

type excludeMiddleware struct {
	next     ports.ValueStore
	patterns []*regexp.Regexp
}

// NewExcludeMiddleware creates a middleware that never persists parameters whose
// name matches one of the patterns. Excluded parameters keep their defaults on
// restore.
func NewExcludeMiddleware(patternStrings []string) (Middleware, error) {
	patterns := make([]*regexp.Regexp, len(patternStrings))
	for i, p := range patternStrings {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
		patterns[i] = re
	}
	return func(next ports.ValueStore) ports.ValueStore {
		return &excludeMiddleware{next: next, patterns: patterns}
	}, nil
}

func (m *excludeMiddleware) Save(ctx context.Context, key string, snapshot *domain.Snapshot) error {
	// Filter a copy; the caller's snapshot stays untouched.
	filtered := snapshot.Clone()
	for name := range filtered.Bools {
		if m.excluded(name) {
			delete(filtered.Bools, name)
		}
	}
	for name := range filtered.Numerics {
		if m.excluded(name) {
			delete(filtered.Numerics, name)
		}
	}
	for name := range filtered.Strings {
		if m.excluded(name) {
			delete(filtered.Strings, name)
		}
	}
	return m.next.Save(ctx, key, filtered)
}

func (m *excludeMiddleware) Load(ctx context.Context, key string) (*domain.Snapshot, error) {
	return m.next.Load(ctx, key)
}

func (m *excludeMiddleware) Delete(ctx context.Context, key string) error {
	return m.next.Delete(ctx, key)
}

func (m *excludeMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}

func (m *excludeMiddleware) excluded(name string) bool {
	for _, p := range m.patterns {
		if p.MatchString(name) {
			return true
		}
	}
	return false
}
