package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/knobs"
	"github.com/aretw0/knobs/internal/presentation/tui"
	"github.com/aretw0/knobs/pkg/domain"
	"github.com/aretw0/knobs/pkg/registry"
	"github.com/aretw0/knobs/pkg/schema"
)

// Show prints every parameter after applying args.
func Show(ctx context.Context, w io.Writer, opts Options, args []string) error {
	logger, err := opts.Logger()
	if err != nil {
		return err
	}
	reg, err := BuildRegistry(ctx, opts, logger, args)
	if err != nil {
		return err
	}
	return RenderParameters(w, reg.Infos(), opts.Output)
}

// Get prints the value of one parameter after applying args.
// kind restricts the lookup to one typed mapping; when empty the parameter's own
// kind is used. A missing parameter is an error.
func Get(ctx context.Context, w io.Writer, opts Options, name, kind string, args []string) error {
	logger, err := opts.Logger()
	if err != nil {
		return err
	}
	reg, err := BuildRegistry(ctx, opts, logger, args)
	if err != nil {
		return err
	}

	var k domain.Kind
	if kind != "" {
		if k, err = domain.ParseKind(kind); err != nil {
			return err
		}
	} else {
		var ok bool
		if k, ok = reg.Lookup(name); !ok {
			return fmt.Errorf("%w: %q", domain.ErrUnknownParameter, name)
		}
	}

	value, err := typedValue(reg, name, k)
	if err != nil {
		return err
	}
	return RenderValue(w, value, opts.Output)
}

func typedValue(reg *registry.Registry, name string, kind domain.Kind) (any, error) {
	switch kind {
	case domain.KindBool:
		return reg.ParamBool(name)
	case domain.KindNumeric:
		return reg.Param(name)
	default:
		return reg.ParamStr(name)
	}
}

// Describe prints the loaded definitions, normalized, as YAML or JSON.
func Describe(ctx context.Context, w io.Writer, opts Options) error {
	logger, err := opts.Logger()
	if err != nil {
		return err
	}
	reg, err := BuildRegistry(ctx, opts, logger, nil)
	if err != nil {
		return err
	}

	format := schema.FormatYAML
	if opts.Output == FormatJSON {
		format = schema.FormatJSON
	}
	data, err := schema.MarshalDefinitions(schema.Describe(reg), format)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Save applies args on top of the values stored under key and stores the result.
func Save(ctx context.Context, w io.Writer, opts Options, key string, args []string) error {
	logger, err := opts.Logger()
	if err != nil {
		return err
	}
	store, closeStore, err := OpenStore(opts)
	if err != nil {
		return err
	}
	defer closeStore()

	reg, err := BuildRegistry(ctx, opts, logger, args, knobs.WithStore(store, key))
	if err != nil {
		return err
	}
	snap := reg.Snapshot()
	if err := store.Save(ctx, key, snap); err != nil {
		return fmt.Errorf("failed to save %q: %w", key, err)
	}
	logger.Info("snapshot saved", "key", key, "parameters", snap.Len())
	fmt.Fprintf(w, "saved %d parameters under %q\n", snap.Len(), key)
	return nil
}

// Restore prints the parameters with the values stored under key, then args, applied.
// Unlike Save it requires the snapshot to exist.
func Restore(ctx context.Context, w io.Writer, opts Options, key string, args []string) error {
	logger, err := opts.Logger()
	if err != nil {
		return err
	}
	store, closeStore, err := OpenStore(opts)
	if err != nil {
		return err
	}
	defer closeStore()

	if _, err := store.Load(ctx, key); err != nil {
		if errors.Is(err, domain.ErrSnapshotNotFound) {
			return fmt.Errorf("%w: %q", err, key)
		}
		return err
	}

	reg, err := BuildRegistry(ctx, opts, logger, args, knobs.WithStore(store, key))
	if err != nil {
		return err
	}
	return RenderParameters(w, reg.Infos(), opts.Output)
}

// Diff prints what restoring the snapshot stored under key would change relative
// to the defaults with args applied.
func Diff(ctx context.Context, w io.Writer, opts Options, key string, args []string) error {
	logger, err := opts.Logger()
	if err != nil {
		return err
	}
	store, closeStore, err := OpenStore(opts)
	if err != nil {
		return err
	}
	defer closeStore()

	stored, err := store.Load(ctx, key)
	if err != nil {
		return fmt.Errorf("%w: %q", err, key)
	}
	reg, err := BuildRegistry(ctx, opts, logger, args)
	if err != nil {
		return err
	}

	current := reg.Snapshot()
	restored := reg.Clone()
	restored.Restore(stored)

	diff := domain.Diff(current, restored.Snapshot())
	if opts.Output == FormatJSON || opts.Output == FormatYAML {
		if diff == nil {
			diff = &domain.SnapshotDiff{}
		}
		return encode(w, diff, opts.Output)
	}
	if diff == nil {
		fmt.Fprintln(w, "no changes")
		return nil
	}
	for _, name := range diff.Changed() {
		before, _ := reg.Info(name)
		after, _ := restored.Info(name)
		fmt.Fprintf(w, "%s: %s -> %s\n", name, tui.FormatValue(before.Value), tui.FormatValue(after.Value))
	}
	return nil
}

// Snapshots lists the stored snapshot keys.
func Snapshots(ctx context.Context, w io.Writer, opts Options) error {
	store, closeStore, err := OpenStore(opts)
	if err != nil {
		return err
	}
	defer closeStore()

	keys, err := store.List(ctx)
	if err != nil {
		return err
	}
	for _, k := range keys {
		fmt.Fprintln(w, k)
	}
	return nil
}

// Drop deletes the snapshot stored under key.
func Drop(ctx context.Context, w io.Writer, opts Options, key string) error {
	store, closeStore, err := OpenStore(opts)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := store.Delete(ctx, key); err != nil {
		return err
	}
	fmt.Fprintf(w, "dropped %q\n", key)
	return nil
}

// Check applies args and reports the outcome of each assignment.
// It returns an error when any assignment was not applied.
func Check(ctx context.Context, w io.Writer, opts Options, args []string) error {
	logger, err := opts.Logger()
	if err != nil {
		return err
	}

	var events []*domain.AssignEvent
	hooks := domain.Hooks{
		OnAssign: func(e *domain.AssignEvent) { events = append(events, e) },
	}
	if _, err := BuildRegistry(ctx, opts, logger, args, knobs.WithHooks(hooks)); err != nil {
		return err
	}

	skipped := 0
	for _, e := range events {
		arg := e.Name + "=" + e.Raw
		if e.Outcome == domain.OutcomeMalformed {
			arg = e.Name
		}
		fmt.Fprintf(w, "%s: %s\n", arg, tui.ColorOutcome(e.Outcome))
		if e.Outcome != domain.OutcomeApplied {
			skipped++
		}
	}
	if skipped > 0 {
		return fmt.Errorf("%d of %d assignments were not applied", skipped, len(events))
	}
	return nil
}
