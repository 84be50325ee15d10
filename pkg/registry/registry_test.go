package registry_test

import (
	"math"
	"testing"

	"github.com/aretw0/knobs/pkg/domain"
	"github.com/aretw0/knobs/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T, opts ...registry.Option) *registry.Registry {
	t.Helper()
	reg := registry.New(opts...)
	require.NoError(t, reg.DefineNumeric("threshold", 0.5, 0.0, 1.0, 0.1))
	require.NoError(t, reg.DefineString("mode", "fast", []string{"fast", "accurate"}))
	require.NoError(t, reg.DefineBool("verbose", false))
	return reg
}

func TestNew_IsEmpty(t *testing.T) {
	reg := registry.New()
	assert.Equal(t, 0, reg.Len())
	assert.Empty(t, reg.Names())
}

func TestSet_NumericScenario(t *testing.T) {
	reg := seeded(t)

	assert.Equal(t, domain.OutcomeApplied, reg.Set("threshold", "0.8"))
	v, err := reg.Param("threshold")
	require.NoError(t, err)
	assert.Equal(t, 0.8, v)

	assert.Equal(t, domain.OutcomeRejected, reg.Set("threshold", "5.0"))
	v, err = reg.Param("threshold")
	require.NoError(t, err)
	assert.Equal(t, 0.8, v)

	assert.Equal(t, domain.OutcomeUnparsable, reg.Set("threshold", "high"))
	v, _ = reg.Param("threshold")
	assert.Equal(t, 0.8, v)
}

func TestSet_StringScenario(t *testing.T) {
	reg := seeded(t)

	assert.Equal(t, domain.OutcomeApplied, reg.Set("mode", "accurate"))
	v, err := reg.ParamStr("mode")
	require.NoError(t, err)
	assert.Equal(t, "accurate", v)

	assert.Equal(t, domain.OutcomeRejected, reg.Set("mode", "turbo"))
	v, _ = reg.ParamStr("mode")
	assert.Equal(t, "accurate", v)
}

func TestSet_BoolTokens(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"true", true},
		{"TRUE", true},
		{"True", true},
		{"1", true},
		{"false", false},
		{"0", false},
		{"", false},
		{"yes", false},
		{"garbage", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			reg := seeded(t)
			require.NoError(t, reg.DefineBool("on", !tt.want))

			assert.Equal(t, domain.OutcomeApplied, reg.Set("on", tt.raw))
			got, err := reg.ParamBool("on")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSet_UnknownNameIsNoop(t *testing.T) {
	reg := seeded(t)
	before := reg.Snapshot()

	assert.Equal(t, domain.OutcomeUnknown, reg.Set("unknown", "5"))
	assert.Equal(t, before, reg.Snapshot())
}

func TestApply_BulkScenario(t *testing.T) {
	reg := seeded(t)

	sum := reg.Apply([]string{"mode=accurate", "threshold=0.9", "unknown=5"})

	mode, err := reg.ParamStr("mode")
	require.NoError(t, err)
	assert.Equal(t, "accurate", mode)

	threshold, err := reg.Param("threshold")
	require.NoError(t, err)
	assert.Equal(t, 0.9, threshold)

	assert.Equal(t, registry.Summary{Applied: 2, Unknown: 1}, sum)
}

func TestApply_LastWriteWins(t *testing.T) {
	reg := seeded(t)

	reg.Apply([]string{"threshold=0.2", "mode=accurate", "threshold=0.7", "mode=fast"})

	threshold, _ := reg.Param("threshold")
	mode, _ := reg.ParamStr("mode")
	assert.Equal(t, 0.7, threshold)
	assert.Equal(t, "fast", mode)
}

func TestApply_SplitsOnFirstSeparatorOnly(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.DefineString("expr", "a=b", []string{"a=b", "c=d=e"}))

	sum := reg.Apply([]string{"expr=c=d=e"})
	assert.Equal(t, 1, sum.Applied)

	v, _ := reg.ParamStr("expr")
	assert.Equal(t, "c=d=e", v)
}

func TestApply_SkipsMalformed(t *testing.T) {
	reg := seeded(t)

	sum := reg.Apply([]string{"verbose", "threshold", "", "verbose=1"})

	assert.Equal(t, 3, sum.Malformed)
	assert.Equal(t, 1, sum.Applied)
	assert.Equal(t, 3, sum.Skipped())

	verbose, _ := reg.ParamBool("verbose")
	assert.True(t, verbose)
}

func TestGetters_UnknownParameterIsExplicit(t *testing.T) {
	reg := seeded(t)

	_, err := reg.ParamBool("nonexistent")
	assert.ErrorIs(t, err, domain.ErrUnknownParameter)

	_, err = reg.Param("nonexistent")
	assert.ErrorIs(t, err, domain.ErrUnknownParameter)

	_, err = reg.ParamStr("nonexistent")
	assert.ErrorIs(t, err, domain.ErrUnknownParameter)
}

func TestGetters_AreScopedToOneMapping(t *testing.T) {
	reg := seeded(t)

	_, err := reg.Param("mode")
	assert.ErrorIs(t, err, domain.ErrUnknownParameter)

	_, err = reg.ParamStr("threshold")
	assert.ErrorIs(t, err, domain.ErrUnknownParameter)

	_, err = reg.ParamBool("threshold")
	assert.ErrorIs(t, err, domain.ErrUnknownParameter)
}

func TestRegistration_RejectsDuplicatesAcrossMappings(t *testing.T) {
	reg := seeded(t)

	err := reg.DefineBool("threshold", true)
	assert.ErrorIs(t, err, domain.ErrDuplicateParameter)

	err = reg.DefineNumeric("mode", 1, 0, 2, 1)
	assert.ErrorIs(t, err, domain.ErrDuplicateParameter)

	err = reg.DefineString("verbose", "x", []string{"x"})
	assert.ErrorIs(t, err, domain.ErrDuplicateParameter)

	kind, ok := reg.Lookup("threshold")
	assert.True(t, ok)
	assert.Equal(t, domain.KindNumeric, kind)
}

func TestRegistration_RejectsUnaddressableNames(t *testing.T) {
	reg := registry.New()

	assert.ErrorIs(t, reg.DefineBool("", true), domain.ErrInvalidName)
	assert.ErrorIs(t, reg.DefineBool("a=b", true), domain.ErrInvalidName)
}

func TestRegistration_InvalidDefault(t *testing.T) {
	reg := registry.New()

	assert.ErrorIs(t, reg.DefineNumeric("n", 2, 0, 1, 0.1), domain.ErrInvalidDefault)
	assert.ErrorIs(t, reg.DefineString("s", "c", []string{"a", "b"}), domain.ErrInvalidDefault)
	assert.Equal(t, 0, reg.Len())
}

func TestNumericParameter_BoundsAreMutable(t *testing.T) {
	reg := seeded(t)

	p, err := reg.NumericParameter("threshold")
	require.NoError(t, err)
	p.SetMax(10)

	assert.Equal(t, domain.OutcomeApplied, reg.Set("threshold", "5.0"))
	v, _ := reg.Param("threshold")
	assert.Equal(t, 5.0, v)
}

func TestNames_Sorted(t *testing.T) {
	reg := seeded(t)
	assert.Equal(t, []string{"mode", "threshold", "verbose"}, reg.Names())
	assert.Equal(t, 3, reg.Len())
}

func TestClone_IsIndependent(t *testing.T) {
	reg := seeded(t)
	c := reg.Clone()

	c.Set("threshold", "0.1")
	c.Set("mode", "accurate")

	v, _ := reg.Param("threshold")
	assert.Equal(t, 0.5, v)
	m, _ := reg.ParamStr("mode")
	assert.Equal(t, "fast", m)

	v, _ = c.Param("threshold")
	assert.Equal(t, 0.1, v)
}

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	reg := seeded(t)
	reg.Apply([]string{"threshold=0.3", "mode=accurate", "verbose=true"})
	snap := reg.Snapshot()

	fresh := seeded(t)
	sum := fresh.Restore(snap)

	assert.Equal(t, 3, sum.Applied)
	assert.Equal(t, snap, fresh.Snapshot())
}

func TestRestore_ValidatesValues(t *testing.T) {
	reg := seeded(t)

	snap := domain.NewSnapshot()
	snap.Numerics["threshold"] = 7
	snap.Strings["mode"] = "turbo"
	snap.Bools["missing"] = true

	sum := reg.Restore(snap)
	assert.Equal(t, registry.Summary{Rejected: 2, Unknown: 1}, sum)

	v, _ := reg.Param("threshold")
	assert.Equal(t, 0.5, v)

	assert.Equal(t, registry.Summary{}, reg.Restore(nil))
}

func TestHooks_ReceiveEveryOutcome(t *testing.T) {
	var events []*domain.AssignEvent
	reg := seeded(t, registry.WithHooks(domain.Hooks{
		OnAssign: func(e *domain.AssignEvent) { events = append(events, e) },
	}))

	reg.Apply([]string{"threshold=0.4", "threshold=9", "threshold=x", "nope=1", "junk"})

	require.Len(t, events, 5)
	got := make([]domain.Outcome, 0, len(events))
	for _, e := range events {
		got = append(got, e.Outcome)
	}
	assert.Equal(t, []domain.Outcome{
		domain.OutcomeApplied,
		domain.OutcomeRejected,
		domain.OutcomeUnparsable,
		domain.OutcomeUnknown,
		domain.OutcomeMalformed,
	}, got)
	assert.Equal(t, domain.KindNumeric, events[0].Kind)
	assert.Equal(t, "0.4", events[0].Raw)
	assert.False(t, events[0].Timestamp.IsZero())
}

func TestFormatNumeric_RoundTrips(t *testing.T) {
	for _, v := range []float64{0, 0.1, 1e-9, 123456.789, -3} {
		reg := registry.New()
		require.NoError(t, reg.DefineNumeric("n", 0, -1e12, 1e12, 1))
		reg.Set("n", registry.FormatNumeric(v))
		got, _ := reg.Param("n")
		assert.Equal(t, v, got)
	}
}

func TestInfo(t *testing.T) {
	reg := seeded(t)

	info, ok := reg.Info("threshold")
	require.True(t, ok)
	assert.Equal(t, domain.KindNumeric, info.Kind)
	assert.Equal(t, 0.5, info.Value)
	assert.Equal(t, 0.0, *info.Min)
	assert.Equal(t, 1.0, *info.Max)
	assert.Equal(t, 0.1, *info.Step)

	info, ok = reg.Info("mode")
	require.True(t, ok)
	assert.Equal(t, []string{"fast", "accurate"}, info.Options)
	assert.Nil(t, info.Min)

	_, ok = reg.Info("ghost")
	assert.False(t, ok)

	infos := reg.Infos()
	require.Len(t, infos, 3)
	assert.Equal(t, "verbose", infos[2].Name)
	assert.Equal(t, false, infos[2].Value)
}

func TestSet_Idempotent(t *testing.T) {
	once := seeded(t)
	once.Set("threshold", "0.3")
	once.Set("mode", "accurate")

	twice := seeded(t)
	for range 2 {
		twice.Set("threshold", "0.3")
		twice.Set("mode", "accurate")
	}

	assert.Equal(t, once.Snapshot(), twice.Snapshot())
}

func TestSetDescription(t *testing.T) {
	reg := seeded(t)

	require.NoError(t, reg.SetDescription("threshold", "Detection threshold"))
	assert.Equal(t, "Detection threshold", reg.Description("threshold"))

	info, ok := reg.Info("threshold")
	require.True(t, ok)
	assert.Equal(t, "Detection threshold", info.Description)

	assert.Equal(t, "Detection threshold", reg.Clone().Description("threshold"))

	require.NoError(t, reg.SetDescription("threshold", ""))
	assert.Empty(t, reg.Description("threshold"))

	assert.ErrorIs(t, reg.SetDescription("ghost", "boo"), domain.ErrUnknownParameter)
}

func TestSet_NumericGrammar(t *testing.T) {
	tests := []struct {
		raw  string
		want domain.Outcome
	}{
		{"0.5", domain.OutcomeApplied},
		{"-3", domain.OutcomeApplied},
		{"+.25", domain.OutcomeApplied},
		{"7.", domain.OutcomeApplied},
		{"1e3", domain.OutcomeApplied},
		{"2.5E-2", domain.OutcomeApplied},
		{"inf", domain.OutcomeUnparsable},
		{"+Inf", domain.OutcomeUnparsable},
		{"infinity", domain.OutcomeUnparsable},
		{"NaN", domain.OutcomeUnparsable},
		{"0x1p-1", domain.OutcomeUnparsable},
		{"1_000", domain.OutcomeUnparsable},
		{"1e400", domain.OutcomeUnparsable},
		{" 1", domain.OutcomeUnparsable},
		{"", domain.OutcomeUnparsable},
		{"e", domain.OutcomeUnparsable},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			reg := registry.New()
			require.NoError(t, reg.DefineNumeric("gain", 0, -1e12, 1e12, 1))

			assert.Equal(t, tt.want, reg.Set("gain", tt.raw))

			v, err := reg.Param("gain")
			require.NoError(t, err)
			assert.False(t, math.IsInf(v, 0) || math.IsNaN(v))
			if tt.want != domain.OutcomeApplied {
				assert.Equal(t, 0.0, v)
			}
		})
	}
}

func TestRegistration_RejectsInfiniteBounds(t *testing.T) {
	reg := registry.New()
	err := reg.DefineNumeric("gain", 0, math.Inf(-1), math.Inf(1), 1)
	assert.ErrorIs(t, err, domain.ErrInvalidDefault)
	assert.Equal(t, 0, reg.Len())
}
