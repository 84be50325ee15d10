package knobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/knobs"
	"github.com/aretw0/knobs/pkg/adapters/memory"
	"github.com/aretw0/knobs/pkg/domain"
	"github.com/aretw0/knobs/pkg/registry"
	"github.com/aretw0/knobs/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(r *registry.Registry) error {
	if err := r.DefineNumeric("threshold", 0.5, 0, 1, 0.1); err != nil {
		return err
	}
	if err := r.DefineString("mode", "fast", []string{"fast", "accurate"}); err != nil {
		return err
	}
	return r.DefineBool("verbose", false)
}

func TestLoad_AppliesArguments(t *testing.T) {
	reg, err := knobs.Load([]string{"mode=accurate", "threshold=0.9", "unknown=5"}, knobs.WithSeed(seed))
	require.NoError(t, err)

	mode, err := reg.ParamStr("mode")
	require.NoError(t, err)
	assert.Equal(t, "accurate", mode)

	threshold, err := reg.Param("threshold")
	require.NoError(t, err)
	assert.Equal(t, 0.9, threshold)

	_, err = reg.ParamBool("nonexistent")
	assert.ErrorIs(t, err, domain.ErrUnknownParameter)
}

func TestLoad_DefinitionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
parameters:
  - name: retries
    type: numeric
    default: 3
    min: 0
    max: 10
    step: 1
`), 0644))

	reg, err := knobs.Load([]string{"retries=7"}, knobs.WithDefinitionsFile(path))
	require.NoError(t, err)

	v, err := reg.Param("retries")
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
}

func TestLoad_DefinitionsAndSeedsCombine(t *testing.T) {
	reg, err := knobs.Load(nil,
		knobs.WithDefinitions(schema.Definition{Name: "debug", Type: "bool", Default: true}),
		knobs.WithSeed(seed),
	)
	require.NoError(t, err)
	assert.Equal(t, 4, reg.Len())
}

func TestLoad_SeedConflictFails(t *testing.T) {
	_, err := knobs.Load(nil,
		knobs.WithDefinitions(schema.Definition{Name: "mode", Type: "bool", Default: false}),
		knobs.WithSeed(seed),
	)
	assert.ErrorIs(t, err, domain.ErrDuplicateParameter)
}

func TestLoad_MissingDefinitionsFile(t *testing.T) {
	_, err := knobs.Load(nil, knobs.WithDefinitionsFile(filepath.Join(t.TempDir(), "nope.yaml")))
	assert.Error(t, err)
}

func TestLoad_RestoresBeforeArguments(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	snap := domain.NewSnapshot()
	snap.Numerics["threshold"] = 0.2
	snap.Strings["mode"] = "accurate"
	require.NoError(t, store.Save(ctx, "dev", snap))

	reg, err := knobs.LoadContext(ctx, []string{"threshold=0.3"},
		knobs.WithSeed(seed),
		knobs.WithStore(store, "dev"),
	)
	require.NoError(t, err)

	threshold, _ := reg.Param("threshold")
	mode, _ := reg.ParamStr("mode")
	assert.Equal(t, 0.3, threshold)
	assert.Equal(t, "accurate", mode)
}

func TestLoad_MissingSnapshotIsFine(t *testing.T) {
	reg, err := knobs.Load(nil, knobs.WithSeed(seed), knobs.WithStore(memory.NewStore(), "none"))
	require.NoError(t, err)

	mode, _ := reg.ParamStr("mode")
	assert.Equal(t, "fast", mode)
}

type brokenStore struct{ memory.Store }

func (brokenStore) Load(context.Context, string) (*domain.Snapshot, error) {
	return nil, errors.New("connection refused")
}

func TestLoad_StoreErrorFails(t *testing.T) {
	_, err := knobs.Load(nil, knobs.WithSeed(seed), knobs.WithStore(&brokenStore{}, "dev"))
	assert.ErrorContains(t, err, "connection refused")
}

func TestLoad_WarnsOnSkippedAssignments(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	_, err := knobs.Load([]string{"threshold=9", "junk"}, knobs.WithSeed(seed), knobs.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "some assignments were skipped")
	assert.Contains(t, buf.String(), "rejected=1")
	assert.Contains(t, buf.String(), "malformed=1")
}

func TestLoad_Hooks(t *testing.T) {
	var outcomes []domain.Outcome
	_, err := knobs.Load([]string{"verbose=1", "mode=turbo"},
		knobs.WithSeed(seed),
		knobs.WithHooks(domain.Hooks{OnAssign: func(e *domain.AssignEvent) { outcomes = append(outcomes, e.Outcome) }}),
	)
	require.NoError(t, err)
	assert.Equal(t, []domain.Outcome{domain.OutcomeApplied, domain.OutcomeRejected}, outcomes)
}
