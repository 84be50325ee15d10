package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	"github.com/aretw0/knobs"
	"github.com/aretw0/knobs/pkg/adapters/file"
	"github.com/aretw0/knobs/pkg/adapters/memory"
	"github.com/aretw0/knobs/pkg/adapters/redis"
	"github.com/aretw0/knobs/pkg/persistence/middleware"
	"github.com/aretw0/knobs/pkg/ports"
	"github.com/aretw0/knobs/pkg/registry"
	backend "github.com/redis/go-redis/v9"
)

// OpenStore creates the snapshot store selected by opts.Store.
// The returned close function releases backend connections.
func OpenStore(opts Options) (ports.ValueStore, func() error, error) {
	mws, err := storeMiddlewares(opts)
	if err != nil {
		return nil, nil, err
	}

	noop := func() error { return nil }
	switch opts.Store {
	case "", StoreFile:
		return middleware.Chain(file.New(opts.StoreDir), mws...), noop, nil
	case StoreMemory:
		return middleware.Chain(memory.NewStore(), mws...), noop, nil
	case StoreRedis:
		if opts.RedisURL == "" {
			return nil, nil, fmt.Errorf("--redis-url is required for the redis store")
		}
		redisOpts, err := backend.ParseURL(opts.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid redis url: %w", err)
		}
		store := redis.NewFromClient(backend.NewClient(redisOpts))
		return middleware.Chain(store, mws...), store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q (want memory, file or redis)", opts.Store)
	}
}

// storeMiddlewares builds the store wrappers. Exclusion runs before encryption.
func storeMiddlewares(opts Options) ([]middleware.Middleware, error) {
	var mws []middleware.Middleware
	if len(opts.Exclude) > 0 {
		mw, err := middleware.NewExcludeMiddleware(opts.Exclude)
		if err != nil {
			return nil, err
		}
		mws = append(mws, mw)
	}
	if opts.EncryptionKey != "" {
		key, err := base64.StdEncoding.DecodeString(opts.EncryptionKey)
		if err != nil {
			return nil, fmt.Errorf("invalid encryption key: %w", err)
		}
		mw, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key})
		if err != nil {
			return nil, err
		}
		mws = append(mws, mw)
	}
	return mws, nil
}

// BuildRegistry seeds a registry from the resolved definitions file and applies args.
// When restoreKey is set, the snapshot stored under it is restored first.
func BuildRegistry(ctx context.Context, opts Options, logger *slog.Logger, args []string, extra ...knobs.Option) (*registry.Registry, error) {
	defs, err := resolveDefinitions(opts.DefsPath, ".")
	if err != nil {
		return nil, err
	}
	if defs == "" {
		return nil, fmt.Errorf("no definitions file: pass --defs or create one of %v", definitionCandidates)
	}
	logger.Debug("loading definitions", "path", defs)

	loadOpts := append([]knobs.Option{
		knobs.WithDefinitionsFile(defs),
		knobs.WithLogger(logger),
	}, extra...)

	return knobs.LoadContext(ctx, args, loadOpts...)
}
