package knobs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/knobs/pkg/domain"
	"github.com/aretw0/knobs/pkg/ports"
	"github.com/aretw0/knobs/pkg/registry"
	"github.com/aretw0/knobs/pkg/schema"
)

type config struct {
	defsPath string
	defs     []schema.Definition
	seeds    []func(*registry.Registry) error
	hooks    domain.Hooks
	logger   *slog.Logger
	store    ports.ValueStore
	key      string
}

// Option defines a functional option for Load.
type Option func(*config)

// WithDefinitionsFile seeds the registry from a YAML or JSON definitions file.
func WithDefinitionsFile(path string) Option {
	return func(c *config) {
		c.defsPath = path
	}
}

// WithDefinitions seeds the registry from in-memory definitions.
func WithDefinitions(defs ...schema.Definition) Option {
	return func(c *config) {
		c.defs = append(c.defs, defs...)
	}
}

// WithSeed registers parameters in code. Seeds run after definitions, in order.
func WithSeed(fn func(*registry.Registry) error) Option {
	return func(c *config) {
		c.seeds = append(c.seeds, fn)
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithHooks registers observability hooks on the registry.
func WithHooks(hooks domain.Hooks) Option {
	return func(c *config) {
		c.hooks = hooks
	}
}

// WithStore restores the snapshot stored under key before arguments are applied.
// A missing snapshot is not an error.
func WithStore(store ports.ValueStore, key string) Option {
	return func(c *config) {
		c.store = store
		c.key = key
	}
}

// Load builds a registry in one call: it seeds the parameters, restores persisted
// values when a store is configured, then applies args as name=value assignments.
// Assignment problems never fail Load; only seeding and store errors do.
func Load(args []string, opts ...Option) (*registry.Registry, error) {
	return LoadContext(context.Background(), args, opts...)
}

// LoadContext is Load with a context for the store round trip.
func LoadContext(ctx context.Context, args []string, opts ...Option) (*registry.Registry, error) {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	reg := registry.New(registry.WithLogger(c.logger), registry.WithHooks(c.hooks))

	defs := c.defs
	if c.defsPath != "" {
		loaded, err := schema.LoadDefinitions(c.defsPath)
		if err != nil {
			return nil, err
		}
		defs = append(loaded, defs...)
	}
	if len(defs) > 0 {
		if err := schema.Seed(reg, defs); err != nil {
			return nil, err
		}
	}
	for _, seed := range c.seeds {
		if err := seed(reg); err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
	}

	if c.store != nil {
		snap, err := c.store.Load(ctx, c.key)
		switch {
		case errors.Is(err, domain.ErrSnapshotNotFound):
			c.logger.Debug("no stored snapshot", "key", c.key)
		case err != nil:
			return nil, fmt.Errorf("failed to restore %q: %w", c.key, err)
		default:
			sum := reg.Restore(snap)
			c.logger.Debug("snapshot restored", "key", c.key, "applied", sum.Applied, "skipped", sum.Skipped())
		}
	}

	sum := reg.Apply(args)
	if sum.Skipped() > 0 {
		c.logger.Warn("some assignments were skipped",
			"applied", sum.Applied,
			"rejected", sum.Rejected,
			"unparsable", sum.Unparsable,
			"unknown", sum.Unknown,
			"malformed", sum.Malformed,
		)
	}
	return reg, nil
}
